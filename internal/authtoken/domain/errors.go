package domain

import (
	"github.com/allisson/authtokens/internal/errors"
)

var (
	// ErrTokenNotFound indicates no record exists for the stored value.
	ErrTokenNotFound = errors.Wrap(errors.ErrNotFound, "token not found")

	// ErrTokenAlreadyExists indicates a stored value collision on insert.
	ErrTokenAlreadyExists = errors.Wrap(errors.ErrConflict, "token already exists")

	// ErrParameterRequired indicates a blank parameter.
	ErrParameterRequired = errors.Wrap(errors.ErrInvalidInput, "parameter is required")

	// ErrTokenRequired indicates a blank token.
	ErrTokenRequired = errors.Wrap(errors.ErrInvalidInput, "token is required")

	// ErrInvalidUsageLimit indicates an explicit usage limit below one.
	ErrInvalidUsageLimit = errors.Wrap(errors.ErrInvalidInput, "usage limit must be at least 1")

	// ErrInvalidValidity indicates a validity that is not positive or exceeds MaxValidity.
	ErrInvalidValidity = errors.Wrap(errors.ErrInvalidInput, "validity must be positive and at most one year")

	// ErrInvalidHashingMode indicates an unknown hashing mode.
	ErrInvalidHashingMode = errors.Wrap(errors.ErrInvalidInput, "invalid hashing mode")

	// ErrValueTooLong indicates a field exceeds its column size.
	ErrValueTooLong = errors.Wrap(errors.ErrInvalidInput, "value exceeds maximum length")

	// ErrStoreUnavailable indicates the token store could not serve the request.
	ErrStoreUnavailable = errors.Wrap(errors.ErrUnavailable, "token store unavailable")

	// ErrConfigurationFatal indicates a missing cryptographic primitive or an unusable policy.
	// The process must not start when it is returned.
	ErrConfigurationFatal = errors.New("fatal token configuration error")
)
