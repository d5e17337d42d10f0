package codec

import (
	"errors"
	"fmt"
)

// Decode failures. Callers branch with errors.Is / errors.As rather than
// matching message strings.
var (
	// ErrEmptyInput is returned when the decode input is empty or all
	// whitespace.
	ErrEmptyInput = errors.New("empty input")

	// ErrTooShort is returned when the input splits into fewer than two
	// words. A valid message carries at least one data word plus the
	// checksum word.
	ErrTooShort = errors.New("input too short: need at least two words")

	// ErrCRCMismatch is returned when a structurally valid word sequence
	// fails checksum verification. It usually means a transcription error,
	// not a malformed message.
	ErrCRCMismatch = errors.New("checksum mismatch")
)

// InvalidWordError reports the first token that is not in the word table.
type InvalidWordError struct {
	Word string // the offending token, as supplied
	Pos  int    // zero-based position in the word sequence
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("%q at position %d is not a pricklybird word", e.Word, e.Pos)
}
