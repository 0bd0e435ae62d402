// Package repository implements token persistence for PostgreSQL, MySQL and SQLite,
// plus an in-memory store. Every implementation performs the consume step as one
// conditional update so that concurrent validations of the same token can never
// exceed its usage limit.
package repository

import (
	"time"

	"github.com/allisson/authtokens/internal/authtoken/domain"
	apperrors "github.com/allisson/authtokens/internal/errors"
)

// Statuses in which a record can still be consumed or invalidated, as SQL literals.
const consumableStatuses = `('ACTIVE', 'PARTIALLY_USED')`

// nextStatusCase derives the post-increment status from the pre-increment usage_count.
const nextStatusCase = `CASE WHEN usage_limit IS NOT NULL AND usage_count + 1 >= usage_limit ` +
	`THEN 'USED' ELSE 'PARTIALLY_USED' END`

// storeError marks a driver failure as a store outage while keeping the cause.
func storeError(err error, message string) error {
	return apperrors.Join(domain.ErrStoreUnavailable, apperrors.Wrap(err, message))
}

// errZeroCutoff is returned when a cleanup cutoff is not set.
var errZeroCutoff = apperrors.Wrap(apperrors.ErrInvalidInput, "before timestamp cannot be zero")

func checkCutoff(before time.Time) error {
	if before.IsZero() {
		return errZeroCutoff
	}
	return nil
}
