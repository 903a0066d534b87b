package main

import (
	"context"
	"embed"
	"fmt"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"gorm.io/gorm/logger"

	"drawdesk/internal/database"
	"drawdesk/internal/events"
	"drawdesk/internal/services"
	"drawdesk/internal/utils"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {

	app := NewApp()

	// .env carries optional overrides (editor origin, dev db path)
	_ = utils.LoadEnv()

	db, err := database.Init(database.Config{
		Path:     utils.EnvOr("DRAWDESK_DB_PATH", ""),
		LogLevel: logger.Warn,
	})
	if err != nil {
		fmt.Println("Error opening database:", err)
		return
	}

	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	//Create each service
	dbService := services.NewDbServices(db, func(ctx context.Context, theme string) {
		if app.Panes != nil && app.Theme != nil {
			if resolved, err := app.Theme.Resolve(ctx); err == nil {
				app.Panes.BroadcastTheme(resolved)
			}
		}
	})
	diagramService := services.NewDiagramService(dbService.Settings,
		func() string {
			if app.Panes == nil {
				return ""
			}
			return app.Panes.ActiveFolder()
		},
		app.lastBrowsedFolder,
	)
	snapshotService := services.NewSnapshotService()
	paneService := services.NewPaneService(
		utils.EnvOr("DRAWDESK_EDITOR_ORIGIN", services.DefaultEditorOrigin),
		diagramService, dbService.Settings, dbService.Recents, snapshotService,
	)
	themeService := services.NewThemeService(dbService.Settings, paneService.BroadcastTheme)

	app.Settings = dbService.Settings
	app.Recents = dbService.Recents
	app.Diagrams = diagramService
	app.Panes = paneService
	app.Theme = themeService

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "Drawdesk",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "Drawdesk",
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup: func(ctx context.Context) {
			events.EnableRuntimeEmitter()
			app.startup(ctx)
			dbService.StartDbServices(ctx)
			diagramService.Startup(ctx)
			snapshotService.Startup(ctx)
			paneService.Startup(ctx)
			themeService.Startup(ctx)
			themeService.StartWatch()
		},
		OnBeforeClose: app.beforeClose,
		OnShutdown:    app.shutdown,
		Bind: []interface{}{
			app,
			dbService.Settings,
			dbService.Recents,
			diagramService,
			paneService,
			themeService,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
