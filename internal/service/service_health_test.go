package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/mock"
	"github.com/MKhiriev/chick-care/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHealthService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	pg := mock.NewMockHealthChecker(ctrl)
	mongo := mock.NewMockHealthChecker(ctrl)
	ctx := context.Background()

	pg.EXPECT().Ping(ctx).Return(nil).Times(2)
	mongo.EXPECT().Ping(ctx).Return(nil)
	mongo.EXPECT().Ping(ctx).Return(errors.New("no primary"))

	svc := NewHealthService(pg, mongo)

	assert.NoError(t, svc.Check(ctx))
	assert.ErrorIs(t, svc.Check(ctx), ErrUnavailable)
}

func TestHealthService_NoCheckers(t *testing.T) {
	assert.NoError(t, NewHealthService().Check(context.Background()))
}

func TestAppInfoService_GetBuildInfo(t *testing.T) {
	info := models.NewAppBuildInfo("1.2.0", "", "abc123")
	svc := NewAppInfoService(info, logger.Nop())

	got := svc.GetBuildInfo(context.Background())

	assert.Equal(t, "1.2.0", got.Version())
	assert.Equal(t, "N/A", got.Date())
	assert.Equal(t, "abc123", got.Commit())
}
