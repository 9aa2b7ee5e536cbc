package project

import "encoding/hex"

// Digest is a sha256 content hash.
type Digest [32]byte

func (d Digest) Hex() string { return hex.EncodeToString(d[:]) }

// IsZero reports whether the digest is all zeroes (no content hashed).
func (d Digest) IsZero() bool {
	var z Digest
	return d == z
}
