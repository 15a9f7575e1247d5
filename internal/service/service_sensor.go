package service

import (
	"context"

	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/store"
	"github.com/MKhiriev/chick-care/models"
)

type sensorService struct {
	sensorRepository store.SensorRepository

	logger *logger.Logger
}

func NewSensorService(sensorRepository store.SensorRepository, logger *logger.Logger) SensorService {
	return &sensorService{
		sensorRepository: sensorRepository,
		logger:           logger,
	}
}

// Latest returns up to n readings of category, newest first. Unknown
// categories are rejected before reaching the store.
func (s *sensorService) Latest(ctx context.Context, category models.SensorCategory, n int) ([]models.SensorReading, error) {
	if _, ok := models.SchemaFor(category); !ok {
		return nil, ErrUnknownCategory
	}

	readings, err := s.sensorRepository.Latest(ctx, category, n)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("category", string(category)).Msg("error reading sensor data")
		return nil, mapStoreError(err)
	}

	return readings, nil
}
