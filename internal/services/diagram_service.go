package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yargevad/filepathx"

	"drawdesk/internal/utils"
)

// EmptyDiagram is the fixed skeleton written into every newly created
// diagram file. The embedded editor owns the format; this is used verbatim
// and never parsed.
const EmptyDiagram = `<mxfile host="embed.diagrams.net"><diagram id="page-1" name="Page-1"><mxGraphModel dx="800" dy="600" grid="1" gridSize="10" guides="1" tooltips="1" connect="1" arrows="1" fold="1" page="1" pageScale="1" pageWidth="850" pageHeight="1100" math="0" shadow="0"><root><mxCell id="0"/><mxCell id="1" parent="0"/></root></mxGraphModel></diagram></mxfile>`

// DiagramExt is the file extension for diagram files.
const DiagramExt = ".drawio"

type DiagramService interface {
	Create(ctx context.Context, folder string) (string, error)
	Read(path string) (string, error)
	Write(path, content string) error
	List(root string) ([]string, error)
	Startup(ctx context.Context)
}

type diagramService struct {
	context context.Context

	settings SettingsService
	// activeFolder returns the folder of the active pane's file, or "" when
	// no pane is bound to a file.
	activeFolder func() string
	// browsedFolder returns the folder most recently picked in the native
	// directory dialog, or "".
	browsedFolder func() string
	// now is the clock used for filename timestamps.
	now func() time.Time
}

func NewDiagramService(settings SettingsService, activeFolder, browsedFolder func() string) DiagramService {
	return &diagramService{
		settings:      settings,
		activeFolder:  activeFolder,
		browsedFolder: browsedFolder,
		now:           time.Now,
	}
}

func (s *diagramService) Startup(ctx context.Context) {
	s.context = ctx
}

// resolveFolder picks the effective target folder for a new diagram:
// explicit argument, else the active pane's folder, else the last browsed
// folder, else the configured default folder.
func (s *diagramService) resolveFolder(ctx context.Context, folder string) (string, error) {
	if folder != "" {
		return folder, nil
	}
	if s.activeFolder != nil {
		if f := s.activeFolder(); f != "" {
			return f, nil
		}
	}
	if s.browsedFolder != nil {
		if f := s.browsedFolder(); f != "" {
			return f, nil
		}
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("load settings: %w", err)
	}
	if settings.DefaultFolder == "" {
		// An unset default folder lands new diagrams in the working root.
		return ".", nil
	}
	return settings.DefaultFolder, nil
}

func (s *diagramService) Create(ctx context.Context, folder string) (string, error) {
	target, err := s.resolveFolder(ctx, folder)
	if err != nil {
		return "", err
	}

	if !utils.DirectoryExists(target) {
		if err := os.MkdirAll(target, 0755); err != nil {
			return "", fmt.Errorf("create folder %s: %w", target, err)
		}
	}

	stamp := s.now().UTC().Format("2006-01-02 15.04.05")
	name := fmt.Sprintf("Drawing %s%s", stamp, DiagramExt)
	path := filepath.Join(target, name)
	for i := 1; utils.FileExists(path); i++ {
		name = fmt.Sprintf("Drawing %s %d%s", stamp, i, DiagramExt)
		path = filepath.Join(target, name)
	}

	if err := os.WriteFile(path, []byte(EmptyDiagram), 0644); err != nil {
		return "", fmt.Errorf("create diagram %s: %w", path, err)
	}
	return path, nil
}

func (s *diagramService) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read diagram %s: %w", path, err)
	}
	return string(data), nil
}

// Write overwrites the diagram wholesale. Content is opaque editor output.
func (s *diagramService) Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write diagram %s: %w", path, err)
	}
	return nil
}

// List returns every diagram file under root, recursively.
func (s *diagramService) List(root string) ([]string, error) {
	matches, err := filepathx.Glob(filepath.Join(root, "**", "*"+DiagramExt))
	if err != nil {
		return nil, fmt.Errorf("list diagrams under %s: %w", root, err)
	}
	return matches, nil
}
