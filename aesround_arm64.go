//go:build arm64 && !purego

package ahash

import "golang.org/x/sys/cpu"

// hasAESRound reports whether the single-round AES primitive is available.
// Armv8 AES instructions are optional; Apple Silicon and almost every
// server core has them, but the feature bit still decides.
var hasAESRound = cpu.ARM64.HasAES

// aesRound performs one AES encryption round on *state with *key as the
// round key, matching the AESENC semantics of the amd64 version:
// *state = MixColumns(ShiftRows(SubBytes(*state))) xor *key.
//
// Armv8 splits the round differently from x86 (AESE xors its round key
// before SubBytes/ShiftRows), so the assembly feeds AESE a zero key and
// xors *key in after AESMC.
//
//go:noescape
func aesRound(state, key *[16]byte)
