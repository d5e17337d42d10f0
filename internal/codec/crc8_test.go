package codec_test

import (
	"testing"

	"pricklybird/internal/codec"
	"pricklybird/internal/util/lehmer"
)

func TestCRC8CheckValue(t *testing.T) {
	// Standard check value for the 0x07 profile.
	if got := codec.CRC8([]byte("123456789"), codec.Poly); got != 0xF4 {
		t.Fatalf("CRC8(123456789) = %#02x, want 0xf4", got)
	}
}

func TestCRC8Empty(t *testing.T) {
	if got := codec.CRC8(nil, codec.Poly); got != 0 {
		t.Fatalf("CRC8 of empty input = %#02x, want 0", got)
	}
}

func TestCRC8SingleByte(t *testing.T) {
	if got := codec.CRC8([]byte{0x42}, codec.Poly); got != 0xC9 {
		t.Fatalf("CRC8(0x42) = %#02x, want 0xc9", got)
	}
}

func TestCRC8AppendedRemainderIsZero(t *testing.T) {
	gen := lehmer.New(3)
	for _, n := range []int{1, 2, 9, 64, 1024} {
		data := gen.Bytes(n)
		data = append(data, codec.CRC8(data, codec.Poly))
		if got := codec.CRC8(data, codec.Poly); got != 0 {
			t.Errorf("remainder over %d bytes with checksum appended = %#02x, want 0", n, got)
		}
	}
}
