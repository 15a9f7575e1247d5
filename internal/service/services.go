package service

import (
	"github.com/MKhiriev/chick-care/internal/config"
	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/store"
	"github.com/MKhiriev/chick-care/models"
)

type Services struct {
	AuthService          AuthService
	SessionService       SessionService
	SensorService        SensorService
	NotificationService  NotificationService
	DashboardService     DashboardService
	PasswordResetService PasswordResetService
	HealthService        HealthService
	AppInfoService       AppInfoService
}

func NewServices(storages *store.Storages, mailer Mailer, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:          NewAuthService(storages.UserRepository, cfg.App, logger),
		SessionService:       NewSessionService(cfg.App, logger),
		SensorService:        NewSensorService(storages.SensorRepository, logger),
		NotificationService:  NewNotificationService(storages.NotificationRepository, logger),
		DashboardService:     NewDashboardService(storages, cfg.App.ShotsDir, logger),
		PasswordResetService: NewPasswordResetService(storages.UserRepository, mailer, cfg.App, logger),
		HealthService:        NewHealthService(storages.Health...),
		AppInfoService:       NewAppInfoService(buildInfo, logger),
	}
}
