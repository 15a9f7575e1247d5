package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/chick-care/internal/store"
)

// mapStoreError translates repository failures into service errors while
// keeping the original error in the chain.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrUsernameTaken), errors.Is(err, store.ErrEmailTaken):
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case errors.Is(err, store.ErrResetTokenNotFound):
		return fmt.Errorf("%w: %w", ErrInvalidOrExpiredToken, err)
	case errors.Is(err, store.ErrUnknownCategory):
		return fmt.Errorf("%w: %w", ErrUnknownCategory, err)
	case errors.Is(err, store.ErrUnavailable):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		return err
	}
}

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
