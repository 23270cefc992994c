//go:build (!amd64 && !arm64) || purego

package ahash

// No single-round AES primitive: every hasher uses the portable strategy.
const hasAESRound = false

// aesRound is unreachable when hasAESRound is false. Reaching it means the
// strategy selection is broken; halt rather than return a wrong digest.
func aesRound(state, key *[16]byte) {
	panic("ahash: aesRound called without hardware AES support")
}
