package ahash

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
)

// Fallback seed, used only if the system randomness source is unavailable.
// Hex digits of pi; nothing-up-my-sleeve, but fixed and therefore predictable.
const (
	fallbackK0 = 0x243f6a8885a308d3
	fallbackK1 = 0x13198a2e03707344
	fallbackK2 = 0xa4093822299f31d0
	fallbackK3 = 0x082efa98ec4e6c89
)

// DefaultSeed returns the process-wide seed, generating it from the system
// randomness source on first call and serving the cached value afterwards.
// Safe for concurrent first use.
func DefaultSeed() Seed {
	return defaultSeed()
}

var defaultSeed = sync.OnceValue(func() Seed {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return Seed{fallbackK0, fallbackK1, fallbackK2, fallbackK3}
	}
	return Seed{
		binary.LittleEndian.Uint64(b[0:8]),
		binary.LittleEndian.Uint64(b[8:16]),
		binary.LittleEndian.Uint64(b[16:24]),
		binary.LittleEndian.Uint64(b[24:32]),
	}
})
