package ahash

import (
	"encoding/binary"
	"math/bits"
)

// Portable mixing constants. The multiplier comes from Knuth's MMIX prng
// (empirically better avalanche here than the splitmix constants); the
// increment keeps the per-block stream key moving so that absorbing (a,b)
// never equals absorbing (b,a).
const (
	foldMultiple  uint64 = 6364136223846793005
	foldIncrement uint64 = 1442695040888963407
	foldRot              = 23

	foldBlockSize = 8
)

// foldedMultiply is the core portable combiner: multiply, rotate, multiply.
// A single multiply (FxHash style) is vulnerable to chosen-input attacks
// that place a difference in the top bit, since a multiply never affects
// bits to its right. The rotate plus second multiply makes a single-bit
// difference between two blocks unable to cancel itself.
func foldedMultiply(x uint64) uint64 {
	return bits.RotateLeft64(x*foldMultiple, foldRot) * foldMultiple
}

// foldEngine is the portable absorb strategy: one 64-bit mix buffer plus an
// evolving 64-bit stream key, both derived from the seed.
type foldEngine struct {
	buf uint64
	key uint64
}

func (e *foldEngine) reset(seed Seed) {
	e.buf = seed[0] ^ bits.RotateLeft64(seed[1], foldRot)
	e.key = seed[2] ^ bits.RotateLeft64(seed[3], foldRot)
}

// absorbBlocks folds len(p) > 0 bytes, a multiple of 8, into the state.
// The loop carries no branches and auto-vectorizes on common compilers.
func (e *foldEngine) absorbBlocks(p []byte) {
	buf, key := e.buf, e.key
	for len(p) >= foldBlockSize {
		buf ^= foldedMultiply(binary.LittleEndian.Uint64(p) ^ key)
		key += foldIncrement
		p = p[foldBlockSize:]
	}
	e.buf, e.key = buf, key
}

// sum finalizes over a copy of the state: absorbs the total input length
// and the zero-padded tail (0-7 bytes), then one extra folded multiply so
// a late single-bit change still diffuses across the digest. The length is
// added rather than xored so carefully formed input cannot cancel it.
func (e *foldEngine) sum(tail []byte, total uint64) uint64 {
	buf, key := e.buf, e.key
	buf += total
	var block [foldBlockSize]byte
	copy(block[:], tail)
	buf ^= foldedMultiply(binary.LittleEndian.Uint64(block[:]) ^ key)
	return foldedMultiply(buf)
}
