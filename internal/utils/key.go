package utils // package utils provides helpers for API key minting and identity fallbacks

import (
	"crypto/rand"  // secure random number generation
	"encoding/hex" // hex encoding of random bytes
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// KeyPrefix namespaces every minted API key so a leaked credential can be
// recognized on sight and keys from other systems are rejected cheaply.
const KeyPrefix = "bapa_"

// NewAPIKey returns a fresh opaque bearer credential: the namespace prefix
// followed by 48 hex characters of cryptographically secure randomness.
// Collisions are not checked; 24 random bytes make them vanishingly
// unlikely, which is what keeps token strings unique across all keys.
func NewAPIKey() (string, error) {
	raw, err := randomHex(24) // 24 bytes -> 48 hex chars
	if err != nil {
		return "", err
	}
	return KeyPrefix + raw, nil
}

// PlaceholderEmail synthesizes a pseudo-unique address for submissions that
// arrive without one. Two anonymous submissions never collide because each
// draws a fresh UUID.
func PlaceholderEmail() string {
	frag := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("anon_%s@bapa.local", frag)
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
