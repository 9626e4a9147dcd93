package audit

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Pseudonymizer produces stable keyed hashes of identifiers so audit events
// can be correlated without storing the identifiers themselves. The key must
// stay secret; without it the hashes cannot be brute-forced from the small
// identifier space.
type Pseudonymizer struct {
	key []byte
}

// NewPseudonymizer creates a Pseudonymizer from a secret key. BLAKE2b keys
// are capped at 64 bytes; longer keys are truncated.
func NewPseudonymizer(key string) *Pseudonymizer {
	k := []byte(key)
	if len(k) > 64 {
		k = k[:64]
	}
	return &Pseudonymizer{key: k}
}

// Subject hashes a normalized identifier. Empty input maps to empty output so
// malformed inputs never produce a correlatable subject.
func (p *Pseudonymizer) Subject(normalized string) string {
	if normalized == "" {
		return ""
	}
	h, err := blake2b.New256(p.key)
	if err != nil {
		// Only reachable with a key over 64 bytes, which the constructor
		// prevents.
		return ""
	}
	_, _ = h.Write([]byte(normalized))
	return hex.EncodeToString(h.Sum(nil))
}
