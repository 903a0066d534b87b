package services

import (
	"context"

	"gorm.io/gorm"

	"drawdesk/internal/repositories"
)

// DbServices aggregates all domain services backed by the database.
type DbServices struct {
	Settings SettingsService
	Recents  RecentDiagramService
}

// NewDbServices constructs the service container using repositories backed
// by db. themeChanged is forwarded to the settings service so updates reach
// open panes.
func NewDbServices(db *gorm.DB, themeChanged func(ctx context.Context, theme string)) *DbServices {
	settingsRepo := repositories.NewSettingsRepository(db)
	recentsRepo := repositories.NewRecentDiagramRepository(db)

	return &DbServices{
		Settings: NewSettingsService(settingsRepo, themeChanged),
		Recents:  NewRecentDiagramService(recentsRepo),
	}
}

// StartDbServices hands the wails context to each database-backed service.
func (s *DbServices) StartDbServices(ctx context.Context) {
	s.Settings.Startup(ctx)
	s.Recents.Startup(ctx)
}
