package ahash

import "encoding/binary"

const aesBlockSize = 16

// aesEngine is the hardware absorb strategy: two 128-bit lanes, each
// advanced per 16-byte block by one AES round keyed with the block xor a
// seed-derived round key. One AES round performs substitution, permutation
// and key addition in a single instruction, so throughput is bounded by
// loads, not by mixing.
type aesEngine struct {
	lanes [2][16]byte
	keys  [2][16]byte
}

func (e *aesEngine) reset(seed Seed) {
	binary.LittleEndian.PutUint64(e.lanes[0][:8], seed[0])
	binary.LittleEndian.PutUint64(e.lanes[0][8:], seed[1])
	binary.LittleEndian.PutUint64(e.lanes[1][:8], seed[2])
	binary.LittleEndian.PutUint64(e.lanes[1][8:], seed[3])
	// Round keys cross-pair the seed words with the portable mixing
	// constants so neither lane's key equals its initial state.
	binary.LittleEndian.PutUint64(e.keys[0][:8], seed[2]^foldMultiple)
	binary.LittleEndian.PutUint64(e.keys[0][8:], seed[3]^foldIncrement)
	binary.LittleEndian.PutUint64(e.keys[1][:8], seed[0]^foldIncrement)
	binary.LittleEndian.PutUint64(e.keys[1][8:], seed[1]^foldMultiple)
}

// absorbBlocks folds len(p) > 0 bytes, a multiple of 16, into the lanes.
// Blocks are copied out of p before mixing; p may be arbitrarily aligned.
func (e *aesEngine) absorbBlocks(p []byte) {
	for len(p) >= aesBlockSize {
		var b [16]byte
		copy(b[:], p[:aesBlockSize])
		t := xor16(b, e.keys[0])
		aesRound(&e.lanes[0], &t)
		t = xor16(b, e.keys[1])
		aesRound(&e.lanes[1], &t)
		p = p[aesBlockSize:]
	}
}

// sum finalizes over a copy of the lanes: the total input length is xored
// into lane 0, the zero-padded tail (0-15 bytes) is absorbed as a normal
// block, then the lanes are merged and run through two more AES rounds so
// every state bit diffuses into the 64-bit fold.
func (e *aesEngine) sum(tail []byte, total uint64) uint64 {
	l0, l1 := e.lanes[0], e.lanes[1]

	var lb [16]byte
	binary.LittleEndian.PutUint64(lb[:8], total)
	l0 = xor16(l0, lb)

	var b [16]byte
	copy(b[:], tail)
	t := xor16(b, e.keys[0])
	aesRound(&l0, &t)
	t = xor16(b, e.keys[1])
	aesRound(&l1, &t)

	aesRound(&l0, &l1)
	aesRound(&l0, &e.keys[0])
	aesRound(&l0, &e.keys[1])

	lo := binary.LittleEndian.Uint64(l0[:8])
	hi := binary.LittleEndian.Uint64(l0[8:])
	return foldedMultiply(lo ^ hi)
}

func xor16(a, b [16]byte) [16]byte {
	x := binary.LittleEndian.Uint64(a[:8]) ^ binary.LittleEndian.Uint64(b[:8])
	y := binary.LittleEndian.Uint64(a[8:]) ^ binary.LittleEndian.Uint64(b[8:])
	var out [16]byte
	binary.LittleEndian.PutUint64(out[:8], x)
	binary.LittleEndian.PutUint64(out[8:], y)
	return out
}
