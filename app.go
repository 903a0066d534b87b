package main

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"drawdesk/internal/events"
	"drawdesk/internal/models"
	"drawdesk/internal/services"
)

// App struct
type App struct {
	ctx context.Context

	Settings services.SettingsService
	Recents  services.RecentDiagramService
	Diagrams services.DiagramService
	Panes    *services.PaneService
	Theme    *services.ThemeService

	dbClose func() error

	browseMu    sync.Mutex
	lastBrowsed string
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	if a.Theme != nil {
		a.Theme.StopWatch()
	}

	// Close database connection pool
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to close database: %v", err))
		} else {
			runtime.LogInfo(ctx, "database closed")
		}
		a.dbClose = nil
	}
}

// beforeClose guards window close while any pane holds unsaved edits.
// Returning true prevents the window from closing.
func (a *App) beforeClose(ctx context.Context) bool {
	if a.Panes == nil {
		return false
	}
	return !a.Panes.ConfirmQuit(ctx)
}

// lastBrowsedFolder returns the folder most recently picked in the native
// directory dialog, for the new-diagram folder resolution chain.
func (a *App) lastBrowsedFolder() string {
	a.browseMu.Lock()
	defer a.browseMu.Unlock()
	return a.lastBrowsed
}

// SelectFolder opens a native directory picker dialog
func (a *App) SelectFolder() (string, error) {
	dir, err := runtime.OpenDirectoryDialog(a.ctx, runtime.OpenDialogOptions{
		Title: "Select Folder",
	})
	if err != nil {
		return "", err
	}
	if dir != "" {
		a.browseMu.Lock()
		a.lastBrowsed = dir
		a.browseMu.Unlock()
	}
	return dir, nil
}

// NewDiagram creates a diagram from the empty template in the effective
// folder and opens a pane bound to it. Failures are logged and surfaced as
// a notification, never fatal.
func (a *App) NewDiagram(folder string) (*services.PaneState, error) {
	path, err := a.Diagrams.Create(a.ctx, folder)
	if err != nil {
		runtime.LogError(a.ctx, fmt.Sprintf("failed to create diagram: %v", err))
		events.Emit(a.ctx, events.Notification, events.NewError(fmt.Sprintf("Could not create diagram: %v", err)))
		return nil, err
	}

	paneID, err := a.Panes.OpenPane(path)
	if err != nil {
		runtime.LogError(a.ctx, fmt.Sprintf("failed to open pane for %s: %v", path, err))
		events.Emit(a.ctx, events.Notification, events.NewError(fmt.Sprintf("Could not open diagram: %v", err)))
		return nil, err
	}

	events.Emit(a.ctx, events.Notification, events.NewSuccess(fmt.Sprintf("Created %s", filepath.Base(path))))
	return &services.PaneState{ID: paneID, Path: path}, nil
}

// OpenDiagram opens a pane bound to an existing diagram file.
func (a *App) OpenDiagram(path string) (*services.PaneState, error) {
	paneID, err := a.Panes.OpenPane(path)
	if err != nil {
		runtime.LogError(a.ctx, fmt.Sprintf("failed to open %s: %v", path, err))
		events.Emit(a.ctx, events.Notification, events.NewError(fmt.Sprintf("Could not open diagram: %v", err)))
		return nil, err
	}
	return &services.PaneState{ID: paneID, Path: path}, nil
}

// ListDiagrams lists diagram files under root, falling back to the
// configured default folder when root is empty.
func (a *App) ListDiagrams(root string) ([]string, error) {
	if root == "" {
		settings, err := a.Settings.Get(a.ctx)
		if err != nil {
			return nil, err
		}
		root = settings.DefaultFolder
	}
	return a.Diagrams.List(root)
}

// GetSettings returns the current application settings
func (a *App) GetSettings() (*models.Settings, error) {
	if a.Settings == nil {
		return nil, fmt.Errorf("settings service not available")
	}
	return a.Settings.Get(a.ctx)
}

// UpdateSettings persists theme, default folder, and the snapshot toggle,
// and returns the updated settings. Open panes are notified of the theme.
func (a *App) UpdateSettings(theme, defaultFolder string, snapshotOnSave bool) (*models.Settings, error) {
	if a.Settings == nil {
		return nil, fmt.Errorf("settings service not available")
	}
	return a.Settings.Update(a.ctx, theme, defaultFolder, snapshotOnSave)
}

// GetRecentDiagrams returns recently opened diagrams, newest first.
func (a *App) GetRecentDiagrams(limit int) ([]models.RecentDiagram, error) {
	if a.Recents == nil {
		return nil, fmt.Errorf("recents service not available")
	}
	return a.Recents.List(a.ctx, limit)
}

// ResolvedTheme returns the concrete theme the editor should render with.
func (a *App) ResolvedTheme() (string, error) {
	if a.Theme == nil {
		return models.ThemeLight, nil
	}
	return a.Theme.Resolve(a.ctx)
}
