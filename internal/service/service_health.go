package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/chick-care/internal/store"
)

type healthService struct {
	checkers []store.HealthChecker
}

func NewHealthService(checkers ...store.HealthChecker) HealthService {
	return &healthService{checkers: checkers}
}

// Check pings every backend and stops at the first failure.
func (h *healthService) Check(ctx context.Context) error {
	for _, checker := range h.checkers {
		if err := checker.Ping(ctx); err != nil {
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
	}

	return nil
}
