package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds surfaced to the HTTP layer. Controllers map these onto status
// codes; anything unrecognized becomes a generic 500.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// storeErr classifies a persistence failure. A missing row keeps its
// not-found meaning; everything else counts as the store being unreachable.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
