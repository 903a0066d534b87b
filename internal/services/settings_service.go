package services

import (
	"context"
	"errors"
	"time"

	"drawdesk/internal/models"
	"drawdesk/internal/repositories"
)

type SettingsService interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, theme, defaultFolder string, snapshotOnSave bool) (*models.Settings, error)
	Startup(ctx context.Context)
}

type settingsService struct {
	settings repositories.SettingsRepository
	context  context.Context

	// themeChanged is invoked after a successful update so open panes can
	// refresh their theme. Optional.
	themeChanged func(ctx context.Context, theme string)
}

func (s *settingsService) Startup(ctx context.Context) {
	s.context = ctx
}

func NewSettingsService(settings repositories.SettingsRepository, themeChanged func(ctx context.Context, theme string)) SettingsService {
	return &settingsService{settings: settings, themeChanged: themeChanged}
}

func (s *settingsService) Get(ctx context.Context) (*models.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, theme, defaultFolder string, snapshotOnSave bool) (*models.Settings, error) {
	if theme == "" {
		return nil, errors.New("theme is required")
	}
	if defaultFolder == "" {
		return nil, errors.New("default folder is required")
	}

	// Validate theme values
	if theme != models.ThemeLight && theme != models.ThemeDark && theme != models.ThemeSystem {
		return nil, errors.New("theme must be 'light', 'dark', or 'system'")
	}

	// Get current settings
	current, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	// Update fields. The default folder is stored as given; path syntax is
	// not validated.
	current.Theme = theme
	current.DefaultFolder = defaultFolder
	current.SnapshotOnSave = snapshotOnSave
	current.UpdatedAt = time.Now()

	if err := s.settings.Update(ctx, current); err != nil {
		return nil, err
	}

	if s.themeChanged != nil {
		s.themeChanged(ctx, current.Theme)
	}

	return current, nil
}
