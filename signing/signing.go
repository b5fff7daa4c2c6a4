// Package signing implements the gateway's request-signing and
// response-verification protocol: default value generation, per-type
// canonicalization of signable fields and the two-pass keyed SHA-1 digest.
package signing

import (
	"crypto/sha1"
	"encoding/hex"
)

// Sign computes the keyed integrity digest for a canonical string.
// Pass one hashes the canonical string; pass two hashes the first digest
// concatenated with the shared secret. Both passes render lowercase hex.
//
// SHA-1 is mandated by the gateway protocol for message integrity and is
// not a general security recommendation.
func Sign(canonical, secret string) string {
	first := sha1Hex(canonical)
	return sha1Hex(first + "." + secret)
}

// Verify recomputes the digest for canonical and compares it with the
// received value. The comparison is exact and case sensitive.
func Verify(canonical, secret, received string) bool {
	return Sign(canonical, secret) == received
}

func sha1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
