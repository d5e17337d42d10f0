// Package codec implements the pricklybird binary-to-text encoding.
//
// Each byte maps to one of 256 fixed four-letter words, and every encoded
// message carries a trailing CRC-8 checksum word so transcription mistakes
// (typos, misheard words) are caught on decode. The word table is immutable
// package data; all operations are pure and safe for concurrent use.
//
// # Wire format
//
// Lowercase words joined by "-", no surrounding delimiters or whitespace.
// The last word always encodes the checksum, so a message of n words carries
// an n-1 byte payload:
//
//	evil-lady-chip-tutu-hull  ->  01 02 03 04
//
// The checksum detects accidental corruption only. It is not a cryptographic
// integrity guarantee and does not detect a decoder using a different word
// table.
package codec
