package codec

// Poly is the fixed CRC-8 polynomial of the pricklybird format.
// Width 8, initial value 0, no input or output reflection, no final XOR.
// A message with its correct checksum byte appended divides to zero.
const Poly byte = 0x07

// CRC8 computes a bit-by-bit CRC-8 of data under the given polynomial.
// It is total over all inputs, including empty data (result 0).
//
// The format always uses Poly; the parameter exists so callers with a
// different profile can reuse the routine.
func CRC8(data []byte, poly byte) byte {
	var crc byte
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
