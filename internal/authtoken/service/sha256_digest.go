package service

import (
	"crypto"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/allisson/authtokens/internal/authtoken/domain"
)

type sha256Digest struct{}

// NewSHA256Digest creates the SHA-256 digest used for hashed tokens.
func NewSHA256Digest() Digest {
	return &sha256Digest{}
}

// Hash computes the SHA-256 digest of raw as lowercase hex.
func (d *sha256Digest) Hash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Matches compares the digest of raw with digestHex without leaking timing.
func (d *sha256Digest) Matches(raw, digestHex string) bool {
	computed := d.Hash(raw)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digestHex)) == 1
}

// CheckPrimitives verifies at startup that the secure random source and the digest work.
// Any failure wraps domain.ErrConfigurationFatal.
func CheckPrimitives(generator TokenGenerator, digest Digest) error {
	if !crypto.SHA256.Available() {
		return fmt.Errorf("%w: sha256 is not available", domain.ErrConfigurationFatal)
	}

	raw, err := generator.Generate(domain.MinTokenLength)
	if err != nil {
		return err
	}
	if err := generator.Validate(raw); err != nil {
		return fmt.Errorf("%w: generator self-check: %w", domain.ErrConfigurationFatal, err)
	}

	hashed := digest.Hash(raw)
	if len(hashed) != sha256.Size*2 || !digest.Matches(raw, hashed) {
		return fmt.Errorf("%w: digest self-check failed", domain.ErrConfigurationFatal)
	}

	return nil
}
