// Package service provides the cryptographic primitives behind token issuance:
// a secure random token generator and the SHA-256 digest used for hashing-at-rest.
package service

// TokenGenerator draws raw tokens from a secure random source.
type TokenGenerator interface {
	// Generate returns byteLength random bytes rendered as lowercase hex.
	Generate(byteLength int) (string, error)
	// Validate checks that token looks like Generate output.
	Validate(token string) error
}

// Digest derives the stored value of a hashed token.
type Digest interface {
	// Hash returns the 64 character lowercase hex SHA-256 digest of raw.
	Hash(raw string) string
	// Matches reports whether raw hashes to digestHex, in constant time.
	Matches(raw, digestHex string) bool
}
