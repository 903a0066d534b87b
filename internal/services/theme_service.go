package services

import (
	"context"
	"sync"
	"time"

	"drawdesk/internal/events"
	"drawdesk/internal/models"
)

// themePollInterval is how often the OS appearance is re-probed while the
// user's theme preference is "system".
const themePollInterval = 30 * time.Second

// ThemeService resolves the user's theme preference against the OS
// appearance and pushes changes to open panes.
type ThemeService struct {
	context context.Context

	settings  SettingsService
	broadcast func(theme string)

	// probe reports whether the OS is in dark mode. Overridable in tests;
	// defaults to the platform probe.
	probe func() bool

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	last    string
}

func NewThemeService(settings SettingsService, broadcast func(theme string)) *ThemeService {
	return &ThemeService{
		settings:  settings,
		broadcast: broadcast,
		probe:     systemPrefersDark,
	}
}

func (t *ThemeService) Startup(ctx context.Context) {
	t.context = ctx
}

// Resolve maps the stored preference to a concrete "light" or "dark".
func (t *ThemeService) Resolve(ctx context.Context) (string, error) {
	settings, err := t.settings.Get(ctx)
	if err != nil {
		return "", err
	}
	return t.resolve(settings.Theme), nil
}

func (t *ThemeService) resolve(preference string) string {
	if preference == models.ThemeSystem {
		if t.probe() {
			return models.ThemeDark
		}
		return models.ThemeLight
	}
	return preference
}

// StartWatch begins polling the OS appearance, broadcasting a theme command
// whenever the resolved theme changes. No-ops when already running.
func (t *ThemeService) StartWatch() bool {
	t.mu.Lock()
	if t.context == nil || t.running {
		t.mu.Unlock()
		return false
	}
	ctx, cancel := context.WithCancel(t.context)
	t.cancel = cancel
	t.running = true
	t.mu.Unlock()

	go func() {
		ticker := time.NewTicker(themePollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				t.check(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
	return true
}

func (t *ThemeService) check(ctx context.Context) {
	resolved, err := t.Resolve(ctx)
	if err != nil {
		events.Logf(ctx, "theme: resolve failed: %v", err)
		return
	}

	t.mu.Lock()
	changed := resolved != t.last
	t.last = resolved
	t.mu.Unlock()

	if changed && t.broadcast != nil {
		t.broadcast(resolved)
	}
}

// StopWatch cancels the poll loop, if running.
func (t *ThemeService) StopWatch() {
	t.mu.Lock()
	cancel := t.cancel
	running := t.running
	t.running = false
	t.cancel = nil
	t.mu.Unlock()
	if running && cancel != nil {
		cancel()
	}
}
