package unit_tests

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"drawdesk/internal/database"
	"drawdesk/internal/models"
	"drawdesk/internal/repositories"
)

// Round-trip through a real sqlite database: what was saved is what loads.
func TestSettings_RoundTrip(t *testing.T) {
	db, err := database.Init(database.Config{
		Path:     filepath.Join(t.TempDir(), "drawdesk.db"),
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)

	repo := repositories.NewSettingsRepository(db)
	ctx := context.Background()

	// Before anything is stored, defaults apply.
	settings, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, models.ThemeSystem, settings.Theme)
	require.Equal(t, models.DefaultFolder, settings.DefaultFolder)

	settings.Theme = models.ThemeDark
	settings.DefaultFolder = "X"
	require.NoError(t, repo.Update(ctx, settings))

	loaded, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, models.ThemeDark, loaded.Theme)
	require.Equal(t, "X", loaded.DefaultFolder)
}
