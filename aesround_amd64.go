//go:build amd64 && !purego

package ahash

import "golang.org/x/sys/cpu"

// hasAESRound reports whether the single-round AES primitive is available.
// AESENC is all we execute, so AES-NI alone is the gate (the Go runtime's
// aeshash additionally wants SSSE3/SSE4.1 for its shuffle setup; we don't).
var hasAESRound = cpu.X86.HasAES

// aesRound performs one AES encryption round on *state with *key as the
// round key: *state = MixColumns(ShiftRows(SubBytes(*state))) xor *key.
//
//go:noescape
func aesRound(state, key *[16]byte)
