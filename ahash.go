// Package ahash provides a keyed, non-cryptographic 64-bit hash with
// platform-specific acceleration.
//
// The hash is keyed by four 64-bit seed words. By default the seed is
// generated once per process from the system randomness source, which makes
// digests unpredictable across processes and defeats hash-flooding attacks
// against hash tables built on top of this package. An explicit seed can be
// supplied instead when reproducible digests are needed.
//
// On CPUs with AES instructions (AES-NI on amd64, the Armv8 Cryptographic
// Extension on arm64) input is mixed 16 bytes at a time with hardware AES
// rounds. Everywhere else, and with the purego build tag, a portable
// multiply-rotate-xor mixer processes input 8 bytes at a time. The two
// strategies produce different digests from each other, but each is fully
// deterministic for a fixed seed and independent of how writes are chunked.
//
// This is not a cryptographic hash: the key does not protect against an
// adversary who knows it, and the output must not be used for integrity or
// authentication.
package ahash

import "encoding/binary"

// Seed is the key material for a hasher: four 64-bit words.
// A Seed is immutable once created; copies are free.
type Seed [4]uint64

// SeedFromKeys builds an explicit Seed from caller-supplied words,
// bypassing the process randomness. Two processes that agree on the
// same keys (and run the same mixing strategy) agree on all digests.
func SeedFromKeys(k0, k1, k2, k3 uint64) Seed {
	return Seed{k0, k1, k2, k3}
}

// Hasher is a streaming keyed hasher. Designed for stack allocation:
// the one-shot helpers below hash without touching the heap.
//
// A Hasher must not be shared between goroutines. Instances are cheap;
// create one per key being hashed, or use a Factory. The zero value is
// not keyed: construct through New or NewWithSeed.
type Hasher struct {
	aes   aesEngine
	fold  foldEngine
	hw    bool
	seed  Seed
	buf   [aesBlockSize]byte
	n     int
	bs    int
	total uint64
}

// New returns a Hasher keyed with the process-wide default seed.
func New() *Hasher {
	return NewWithSeed(DefaultSeed())
}

// NewWithSeed returns a Hasher keyed with an explicit seed.
func NewWithSeed(seed Seed) *Hasher {
	h := new(Hasher)
	h.init(seed, hasAESRound)
	return h
}

// init keys the hasher and selects the mixing strategy. The strategy is
// fixed for the lifetime of the instance; Write and Sum64 never re-evaluate
// the capability signal.
func (h *Hasher) init(seed Seed, hw bool) {
	h.seed = seed
	h.hw = hw
	h.n = 0
	h.total = 0
	if hw {
		h.aes.reset(seed)
		h.bs = aesBlockSize
	} else {
		h.fold.reset(seed)
		h.bs = foldBlockSize
	}
}

// Reset restores the hasher to its seed-initial state, as if no bytes
// had been written. The seed and strategy are kept.
func (h *Hasher) Reset() {
	h.init(h.seed, h.hw)
}

// Write absorbs p into the hasher. It may be called any number of times
// with any chunking; only the concatenated byte sequence matters.
func (h *Hasher) Write(p []byte) {
	h.total += uint64(len(p))

	if h.n > 0 {
		c := copy(h.buf[h.n:h.bs], p)
		h.n += c
		p = p[c:]
		if h.n == h.bs {
			h.absorb(h.buf[:h.bs])
			h.n = 0
		}
	}

	// Bulk full blocks straight from p. Block sizes are powers of two.
	if m := len(p) &^ (h.bs - 1); m > 0 {
		h.absorb(p[:m])
		p = p[m:]
	}

	if len(p) > 0 {
		h.n = copy(h.buf[:], p)
	}
}

// absorb feeds len(p) > 0 bytes, a multiple of the block size, to the
// active strategy.
func (h *Hasher) absorb(p []byte) {
	if h.hw {
		h.aes.absorbBlocks(p)
	} else {
		h.fold.absorbBlocks(p)
	}
}

// WriteUint8 absorbs v, equivalent to Write of its single byte.
func (h *Hasher) WriteUint8(v uint8) {
	h.Write([]byte{v})
}

// WriteUint16 absorbs v, equivalent to Write of its 2 little-endian bytes.
func (h *Hasher) WriteUint16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	h.Write(b[:])
}

// WriteUint32 absorbs v, equivalent to Write of its 4 little-endian bytes.
func (h *Hasher) WriteUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	h.Write(b[:])
}

// WriteUint64 absorbs v, equivalent to Write of its 8 little-endian bytes.
func (h *Hasher) WriteUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	h.Write(b[:])
}

// WriteUint128 absorbs a 128-bit value given as two 64-bit halves,
// equivalent to Write of its 16 little-endian bytes (low half first).
func (h *Hasher) WriteUint128(hi, lo uint64) {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], lo)
	binary.LittleEndian.PutUint64(b[8:], hi)
	h.Write(b[:])
}

// Sum64 finalizes and returns the 64-bit digest of everything written
// so far. It does not modify the hasher state: calling it twice returns
// the same value, and further writes continue from the same position.
func (h *Hasher) Sum64() uint64 {
	if h.hw {
		return h.aes.sum(h.buf[:h.n], h.total)
	}
	return h.fold.sum(h.buf[:h.n], h.total)
}

// Sum64 computes the digest of data under the process-wide default seed.
// Zero heap allocations.
func Sum64(data []byte) uint64 {
	return Sum64WithSeed(DefaultSeed(), data)
}

// Sum64WithSeed computes the digest of data under an explicit seed.
func Sum64WithSeed(seed Seed, data []byte) uint64 {
	var h Hasher
	h.init(seed, hasAESRound)
	h.Write(data)
	return h.Sum64()
}

// SumString64 computes the digest of s under the process-wide default seed.
func SumString64(s string) uint64 {
	return Sum64([]byte(s))
}

// Factory mints freshly keyed hashers, one per operation, for consumers
// such as hash tables that hash one key per lookup. The zero value (and
// NewFactory) keys every hasher with the process-wide default seed.
type Factory struct {
	seed   Seed
	seeded bool
}

// NewFactory returns a Factory that keys hashers with the default seed.
func NewFactory() Factory {
	return Factory{}
}

// NewFactoryWithSeed returns a Factory that keys every hasher it mints
// with the given seed.
func NewFactoryWithSeed(seed Seed) Factory {
	return Factory{seed: seed, seeded: true}
}

// Hasher returns a new hasher keyed per the factory's configuration.
func (f Factory) Hasher() *Hasher {
	if f.seeded {
		return NewWithSeed(f.seed)
	}
	return New()
}

// Sum64 hashes key in one shot under the factory's seed.
func (f Factory) Sum64(key []byte) uint64 {
	if f.seeded {
		return Sum64WithSeed(f.seed, key)
	}
	return Sum64(key)
}
