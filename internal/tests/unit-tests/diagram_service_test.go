package unit_tests

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"drawdesk/internal/models"
	"drawdesk/internal/services"
	"drawdesk/internal/tests/mocks"
)

func settingsWithFolder(folder string) services.SettingsService {
	return services.NewSettingsService(&mocks.SettingsRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.Settings, error) {
			return &models.Settings{ID: 1, Version: 1, Theme: models.ThemeSystem, DefaultFolder: folder}, nil
		},
	}, nil)
}

func TestDiagramService_Create_DefaultFolder(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "Diagrams")
	service := services.NewDiagramService(settingsWithFolder(folder), nil, nil)

	// No explicit folder, no active pane, no browsed folder: the configured
	// default folder is used and created on demand.
	path, err := service.Create(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, folder, filepath.Dir(path))

	name := filepath.Base(path)
	require.Regexp(t, regexp.MustCompile(`^Drawing \d{4}-\d{2}-\d{2} \d{2}\.\d{2}\.\d{2}\.drawio$`), name)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, services.EmptyDiagram, string(content))
}

func TestDiagramService_Create_EmptyDefaultFolderUsesRoot(t *testing.T) {
	// Equivalent of t.Chdir (Go 1.24+), usable on older toolchains.
	prevDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(prevDir) })
	service := services.NewDiagramService(settingsWithFolder(""), nil, nil)

	path, err := service.Create(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, ".", filepath.Dir(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, services.EmptyDiagram, string(content))
}

func TestDiagramService_Create_ExplicitFolderWins(t *testing.T) {
	explicit := filepath.Join(t.TempDir(), "explicit")
	service := services.NewDiagramService(settingsWithFolder("ignored"),
		func() string { return "also-ignored" },
		func() string { return "also-ignored" },
	)

	path, err := service.Create(context.Background(), explicit)
	require.NoError(t, err)
	require.Equal(t, explicit, filepath.Dir(path))
}

func TestDiagramService_Create_ActiveFolderBeforeBrowsed(t *testing.T) {
	active := filepath.Join(t.TempDir(), "active")
	service := services.NewDiagramService(settingsWithFolder("ignored"),
		func() string { return active },
		func() string { return "ignored" },
	)

	path, err := service.Create(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, active, filepath.Dir(path))
}

func TestDiagramService_Create_BrowsedFolderBeforeDefault(t *testing.T) {
	browsed := filepath.Join(t.TempDir(), "browsed")
	service := services.NewDiagramService(settingsWithFolder("ignored"),
		func() string { return "" },
		func() string { return browsed },
	)

	path, err := service.Create(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, browsed, filepath.Dir(path))
}

func TestDiagramService_Create_UniqueNames(t *testing.T) {
	folder := t.TempDir()
	service := services.NewDiagramService(settingsWithFolder(folder), nil, nil)

	first, err := service.Create(context.Background(), folder)
	require.NoError(t, err)
	second, err := service.Create(context.Background(), folder)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestDiagramService_RoundTrip(t *testing.T) {
	folder := t.TempDir()
	service := services.NewDiagramService(settingsWithFolder(folder), nil, nil)

	path := filepath.Join(folder, "roundtrip.drawio")
	require.NoError(t, service.Write(path, "<mxfile>opaque</mxfile>"))

	content, err := service.Read(path)
	require.NoError(t, err)
	require.Equal(t, "<mxfile>opaque</mxfile>", content)
}

func TestDiagramService_List(t *testing.T) {
	root := t.TempDir()
	service := services.NewDiagramService(settingsWithFolder(root), nil, nil)

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, service.Write(filepath.Join(nested, "one.drawio"), "x"))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "note.md"), []byte("not a diagram"), 0644))

	paths, err := service.List(root)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Equal(t, filepath.Join(nested, "one.drawio"), paths[0])
}
