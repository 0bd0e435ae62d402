package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/allisson/authtokens/internal/authtoken/domain"
)

type hexTokenGenerator struct {
	source io.Reader
}

// NewHexTokenGenerator creates a generator backed by crypto/rand.
func NewHexTokenGenerator() TokenGenerator {
	return &hexTokenGenerator{source: rand.Reader}
}

// Generate reads byteLength bytes from the secure source and hex encodes them.
// A failing source is not recoverable and wraps domain.ErrConfigurationFatal.
func (g *hexTokenGenerator) Generate(byteLength int) (string, error) {
	if byteLength < 1 {
		return "", errors.New("byte length must be at least 1")
	}
	if byteLength > domain.MaxTokenLength {
		return "", fmt.Errorf("byte length must not exceed %d", domain.MaxTokenLength)
	}

	buf := make([]byte, byteLength)
	if _, err := io.ReadFull(g.source, buf); err != nil {
		return "", fmt.Errorf("%w: secure random source unavailable: %w", domain.ErrConfigurationFatal, err)
	}

	return hex.EncodeToString(buf), nil
}

// Validate checks that the token is a non-empty, even-length lowercase hex string.
func (g *hexTokenGenerator) Validate(token string) error {
	if len(token) == 0 {
		return errors.New("token cannot be empty")
	}
	if len(token)%2 != 0 {
		return errors.New("token must have an even number of characters")
	}
	for _, c := range token {
		if !isLowerHex(c) {
			return errors.New("token must contain only lowercase hexadecimal characters")
		}
	}
	return nil
}

func isLowerHex(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}
