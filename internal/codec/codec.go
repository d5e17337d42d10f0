package codec

import "strings"

// Separator joins words in the text form of an encoded message.
const Separator = "-"

// BytesToWords maps each byte of data to its table word, preserving order.
// Every byte value has a word, so this never fails.
func BytesToWords(data []byte) []string {
	words := make([]string, len(data))
	for i, b := range data {
		words[i] = wordTable[b]
	}
	return words
}

// WordsToBytes maps each word back to its byte value. The first token not
// present in the table fails with *InvalidWordError; no further tokens are
// examined. Lookup is case-insensitive.
func WordsToBytes(words []string) ([]byte, error) {
	data := make([]byte, len(words))
	for i, w := range words {
		b, ok := reverseIndex[strings.ToLower(w)]
		if !ok {
			return nil, &InvalidWordError{Word: w, Pos: i}
		}
		data[i] = b
	}
	return data, nil
}

// Encode converts payload to pricklybird words with the CRC-8 checksum word
// appended, joined by Separator.
//
// Decoding the result reproduces payload exactly for any payload of one or
// more bytes. An empty payload encodes to the bare checksum word, which
// Decode rejects as too short; empty payloads are not round-trippable.
func Encode(payload []byte) string {
	withCRC := make([]byte, 0, len(payload)+1)
	withCRC = append(withCRC, payload...)
	withCRC = append(withCRC, CRC8(payload, Poly))
	return strings.Join(BytesToWords(withCRC), Separator)
}

// Decode converts an encoded message back to its payload, verifying the
// checksum. The trailing checksum byte is stripped from the result.
//
// Failures: ErrEmptyInput for empty or all-whitespace text, ErrTooShort for
// fewer than two words, *InvalidWordError for an unknown token, and
// ErrCRCMismatch when verification fails.
func Decode(text string) ([]byte, error) {
	return decode(text, true)
}

// DecodeNoVerify decodes without checksum verification. The payload of a
// corrupted message is returned at face value, so this is only for
// diagnostic work on input already known to be damaged. Structural errors
// are still reported.
func DecodeNoVerify(text string) ([]byte, error) {
	return decode(text, false)
}

func decode(text string, verify bool) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	words := strings.Split(text, Separator)
	if len(words) < 2 {
		return nil, ErrTooShort
	}

	data, err := WordsToBytes(words)
	if err != nil {
		return nil, err
	}

	// A message with its checksum byte appended divides to zero.
	if verify && CRC8(data, Poly) != 0 {
		return nil, ErrCRCMismatch
	}
	return data[:len(data)-1], nil
}
