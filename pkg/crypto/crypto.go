// Package crypto provides hashing utilities for the demonstration tooling.
//
// Ethereum identifies an RLP encoded transaction by its Keccak-256 digest,
// the legacy pre-standard variant of SHA-3.
package crypto

import "golang.org/x/crypto/sha3"

// Keccak256Length is the digest size in bytes.
const Keccak256Length = 32

// Keccak256 returns the Keccak-256 digest of the concatenation of data.
func Keccak256(data ...[]byte) []byte {
	hasher := sha3.NewLegacyKeccak256()
	for _, d := range data {
		hasher.Write(d)
	}
	return hasher.Sum(nil)
}
