// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/store"
	"github.com/MKhiriev/chick-care/models"
)

// DashboardNotifications is how many notifications the dashboard shows.
const DashboardNotifications = 10

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

type dashboardService struct {
	userRepository         store.UserRepository
	sensorRepository       store.SensorRepository
	notificationRepository store.NotificationRepository

	// shotsDir holds the camera snapshots listed on the dashboard.
	shotsDir string

	logger *logger.Logger
}

func NewDashboardService(storages *store.Storages, shotsDir string, logger *logger.Logger) DashboardService {
	return &dashboardService{
		userRepository:         storages.UserRepository,
		sensorRepository:       storages.SensorRepository,
		notificationRepository: storages.NotificationRepository,
		shotsDir:               shotsDir,
		logger:                 logger,
	}
}

func (d *dashboardService) Assemble(ctx context.Context, session models.Session) models.DashboardView {
	view := models.DashboardView{
		Session:       session,
		Environment:   d.latest(ctx, models.Environment),
		Levels:        d.latest(ctx, models.Levels),
		Sanitization:  d.latest(ctx, models.Sanitization),
		Growth:        d.latest(ctx, models.Growth),
		Notifications: d.notifications(ctx),
		Images:        d.images(ctx),
	}

	if session.IsAdmin() {
		view.Admin = d.admin(ctx)
	}

	return view
}

func (d *dashboardService) latest(ctx context.Context, category models.SensorCategory) *models.SensorReading {
	readings, err := d.sensorRepository.Latest(ctx, category, 1)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("category", string(category)).Msg("dashboard: sensor data unavailable")
		return nil
	}
	if len(readings) == 0 {
		return nil
	}

	return &readings[0]
}

func (d *dashboardService) notifications(ctx context.Context) []models.Notification {
	notifications, err := d.notificationRepository.Recent(ctx, DashboardNotifications)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("dashboard: notifications unavailable")
		return []models.Notification{}
	}

	return notifications
}

// images lists snapshot file names sorted by name. A missing directory is
// treated as empty.
func (d *dashboardService) images(ctx context.Context) []string {
	images := []string{}
	if d.shotsDir == "" {
		return images
	}

	entries, err := os.ReadDir(d.shotsDir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.FromContext(ctx).Err(err).Str("dir", d.shotsDir).Msg("dashboard: error listing snapshots")
		}
		return images
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if slices.Contains(imageExtensions, strings.ToLower(filepath.Ext(entry.Name()))) {
			images = append(images, entry.Name())
		}
	}

	return images
}

func (d *dashboardService) admin(ctx context.Context) *models.AdminDashboard {
	log := logger.FromContext(ctx)
	admin := &models.AdminDashboard{Users: []models.User{}}

	users, err := d.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("dashboard: user list unavailable")
	} else {
		admin.Users = users
	}

	count, err := d.userRepository.CountUsers(ctx)
	if err != nil {
		log.Err(err).Msg("dashboard: user count unavailable")
		count = len(admin.Users)
	}
	admin.UserCount = count

	return admin
}
