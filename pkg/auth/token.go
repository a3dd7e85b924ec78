package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// entropy is swapped out in tests
var entropy io.Reader = rand.Reader

// newTokenID returns 16 random bytes, URL-safe encoded, for the jwt ID claim.
func newTokenID() (string, error) {
	b := make([]byte, 16)
	if _, err := io.ReadFull(entropy, b); err != nil {
		return "", fmt.Errorf("failed to read token id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
