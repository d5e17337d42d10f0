// Package commands defines the pricklybird CLI.
//
// Commands
//
//   - encode       Encode bytes (file or stdin) as pricklybird words
//   - decode       Decode words back to bytes, verifying the checksum
//   - fingerprint  Print a speakable BLAKE2b fingerprint of a file or key
//   - selftest     Verify the codec against reference vectors and random data
//
// # Implementation
//
// Subcommands call the codec package directly; there is no shared state to
// wire. Handlers return errors to cobra and main exits nonzero on failure.
package commands
