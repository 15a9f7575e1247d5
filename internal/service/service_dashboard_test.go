package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/mock"
	"github.com/MKhiriev/chick-care/internal/store"
	"github.com/MKhiriev/chick-care/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dashboardMocks struct {
	users         *mock.MockUserRepository
	sensors       *mock.MockSensorRepository
	notifications *mock.MockNotificationRepository
}

func newTestDashboardSvc(t *testing.T, shotsDir string) (DashboardService, dashboardMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := dashboardMocks{
		users:         mock.NewMockUserRepository(ctrl),
		sensors:       mock.NewMockSensorRepository(ctrl),
		notifications: mock.NewMockNotificationRepository(ctrl),
	}
	storages := &store.Storages{
		UserRepository:         m.users,
		SensorRepository:       m.sensors,
		NotificationRepository: m.notifications,
	}
	return NewDashboardService(storages, shotsDir, logger.Nop()), m
}

func TestDashboardService_Assemble_User(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.JPG", "notes.txt", "c.gif"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "old.jpg"), 0o700))

	svc, m := newTestDashboardSvc(t, dir)
	ctx := context.Background()

	env := models.SensorReading{Category: models.Environment, Timestamp: time.Now(), Values: map[string]any{"temperature": 31.0}}
	m.sensors.EXPECT().Latest(ctx, models.Environment, 1).Return([]models.SensorReading{env}, nil)
	m.sensors.EXPECT().Latest(ctx, models.Levels, 1).Return([]models.SensorReading{}, nil)
	m.sensors.EXPECT().Latest(ctx, models.Sanitization, 1).Return(nil, nil)
	m.sensors.EXPECT().Latest(ctx, models.Growth, 1).Return(nil, nil)
	m.notifications.EXPECT().Recent(ctx, DashboardNotifications).Return([]models.Notification{{ID: 1, Message: "hello"}}, nil)

	session := models.Session{UserID: 2, Username: "farmer", Role: models.RoleUser}
	view := svc.Assemble(ctx, session)

	assert.Equal(t, session, view.Session)
	require.NotNil(t, view.Environment)
	assert.Equal(t, env, *view.Environment)
	assert.Nil(t, view.Levels)
	assert.Nil(t, view.Sanitization)
	assert.Len(t, view.Notifications, 1)
	assert.Equal(t, []string{"a.JPG", "b.png", "c.gif"}, view.Images)
	assert.Nil(t, view.Admin)
}

func TestDashboardService_Assemble_PartialFailure(t *testing.T) {
	svc, m := newTestDashboardSvc(t, filepath.Join(t.TempDir(), "missing"))
	ctx := context.Background()
	boom := errors.New("boom")

	m.sensors.EXPECT().Latest(ctx, gomock.Any(), 1).Return(nil, boom).Times(4)
	m.notifications.EXPECT().Recent(ctx, DashboardNotifications).Return(nil, boom)
	m.users.EXPECT().ListUsers(ctx).Return(nil, boom)
	m.users.EXPECT().CountUsers(ctx).Return(0, boom)

	view := svc.Assemble(ctx, models.Session{UserID: 1, Username: "admin", Role: models.RoleAdmin})

	assert.Nil(t, view.Environment)
	assert.NotNil(t, view.Notifications)
	assert.Empty(t, view.Notifications)
	assert.NotNil(t, view.Images)
	assert.Empty(t, view.Images)
	require.NotNil(t, view.Admin)
	assert.Empty(t, view.Admin.Users)
	assert.Equal(t, 0, view.Admin.UserCount)
}

func TestDashboardService_Assemble_Admin(t *testing.T) {
	svc, m := newTestDashboardSvc(t, "")
	ctx := context.Background()

	m.sensors.EXPECT().Latest(ctx, gomock.Any(), 1).Return(nil, nil).Times(4)
	m.notifications.EXPECT().Recent(ctx, DashboardNotifications).Return(nil, nil)
	users := []models.User{{UserID: 1, Username: "admin", Role: models.RoleAdmin}, {UserID: 2, Username: "farmer"}}
	m.users.EXPECT().ListUsers(ctx).Return(users, nil)
	m.users.EXPECT().CountUsers(ctx).Return(2, nil)

	view := svc.Assemble(ctx, models.Session{UserID: 1, Username: "admin", Role: models.RoleAdmin})

	require.NotNil(t, view.Admin)
	assert.Equal(t, users, view.Admin.Users)
	assert.Equal(t, 2, view.Admin.UserCount)
}
