// Package lehmer implements the Lehmer64 pseudorandom generator used to
// produce deterministic selftest data. It is plain test tooling, not part of
// the codec contract, and is not suitable for anything security-sensitive.
package lehmer

import (
	"encoding/binary"
	"math/bits"
)

// multiplier is the standard Lehmer64 constant. It must be odd: an even
// multiplier drives the 128-bit state to zero within 128 steps.
const multiplier = 0xDA942042E4DD58B5

// warmup steps run at seeding time so small seeds still produce
// well-mixed output.
const warmup = 128

// Generator is a seeded Lehmer64 stream. The zero value is unusable;
// construct with New.
type Generator struct {
	hi, lo uint64
}

// New returns a generator warmed up from seed. The same seed always yields
// the same stream.
func New(seed uint64) *Generator {
	g := &Generator{lo: seed}
	for i := 0; i < warmup; i++ {
		g.step()
	}
	return g
}

// step advances the 128-bit state one multiplication.
func (g *Generator) step() {
	hi, lo := bits.Mul64(g.lo, multiplier)
	hi += g.hi * multiplier
	g.hi, g.lo = hi, lo
}

// Uint64 advances the state and returns the high 64 bits.
func (g *Generator) Uint64() uint64 {
	g.step()
	return g.hi
}

// Bytes returns the next n bytes of the stream, little-endian per 64-bit
// step.
func (g *Generator) Bytes(n int) []byte {
	out := make([]byte, 0, n+7)
	for len(out) < n {
		out = binary.LittleEndian.AppendUint64(out, g.Uint64())
	}
	return out[:n]
}
