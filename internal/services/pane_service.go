package services

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wailsapp/wails/v2/pkg/runtime"
	"golang.org/x/time/rate"

	"drawdesk/internal/events"
	"drawdesk/internal/utils"
)

// DefaultEditorOrigin is the origin inbound editor messages must carry.
const DefaultEditorOrigin = "https://embed.diagrams.net"

// saveNoticeWindow suppresses duplicate save notifications arriving within
// this window. Every save still writes.
const saveNoticeWindow = 2 * time.Second

// RecentsRecorder is the slice of the recents service the relay needs.
type RecentsRecorder interface {
	TouchOpened(ctx context.Context, path string) error
	TouchSaved(ctx context.Context, path string) error
}

// Snapshotter commits a saved diagram into its vault's git history.
type Snapshotter interface {
	SnapshotFile(path string) error
}

type pane struct {
	id          string
	path        string
	dirty       bool
	closing     bool
	lastSavedAt time.Time
	notices     *rate.Limiter
}

// PaneState is the bound-API view of one open pane.
type PaneState struct {
	ID          string    `json:"id"`
	Path        string    `json:"path"`
	Dirty       bool      `json:"dirty"`
	LastSavedAt time.Time `json:"lastSavedAt"`
}

// PaneService tracks open editor panes and relays messages between the
// embedded editor and disk. One pane maps to at most one diagram file; no
// coordination is attempted when two panes point at the same file.
type PaneService struct {
	context context.Context

	mu       sync.Mutex
	panes    map[string]*pane
	activeID string

	trustedOrigin string
	diagrams      DiagramService
	settings      SettingsService
	recents       RecentsRecorder
	snapshots     Snapshotter

	// Confirm shows a yes/no dialog. Replaced in tests; defaults to the
	// native wails question dialog.
	Confirm func(ctx context.Context, title, message string) (bool, error)
}

func NewPaneService(trustedOrigin string, diagrams DiagramService, settings SettingsService, recents RecentsRecorder, snapshots Snapshotter) *PaneService {
	if trustedOrigin == "" {
		trustedOrigin = DefaultEditorOrigin
	}
	return &PaneService{
		panes:         make(map[string]*pane),
		trustedOrigin: trustedOrigin,
		diagrams:      diagrams,
		settings:      settings,
		recents:       recents,
		snapshots:     snapshots,
		Confirm:       nativeConfirm,
	}
}

func (p *PaneService) Startup(ctx context.Context) {
	p.context = ctx
}

func nativeConfirm(ctx context.Context, title, message string) (bool, error) {
	result, err := runtime.MessageDialog(ctx, runtime.MessageDialogOptions{
		Type:          runtime.QuestionDialog,
		Title:         title,
		Message:       message,
		Buttons:       []string{"Yes", "No"},
		DefaultButton: "Yes",
		CancelButton:  "No",
	})
	if err != nil {
		return false, err
	}
	return result == "Yes", nil
}

// OpenPane registers a pane bound to path. An empty path opens an unbound
// pane that the editor starts blank.
func (p *PaneService) OpenPane(path string) (string, error) {
	if path != "" && !utils.FileExists(path) {
		return "", fmt.Errorf("no diagram at %s", path)
	}

	pn := &pane{
		id:      uuid.NewString(),
		path:    path,
		notices: rate.NewLimiter(rate.Every(saveNoticeWindow), 1),
	}

	p.mu.Lock()
	p.panes[pn.id] = pn
	p.activeID = pn.id
	p.mu.Unlock()

	if path != "" && p.recents != nil {
		if err := p.recents.TouchOpened(p.context, path); err != nil {
			events.Logf(p.context, "panes: recents touch failed for %s: %v", path, err)
		}
	}
	return pn.id, nil
}

// SetActivePane marks the pane the user is looking at.
func (p *PaneService) SetActivePane(paneID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.panes[paneID]; ok {
		p.activeID = paneID
	}
}

// ActiveFolder returns the folder of the active pane's file, or "".
func (p *PaneService) ActiveFolder() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	pn := p.panes[p.activeID]
	if pn == nil || pn.path == "" {
		return ""
	}
	return filepath.Dir(pn.path)
}

// ListPanes returns a snapshot of every open pane.
func (p *PaneService) ListPanes() []PaneState {
	p.mu.Lock()
	defer p.mu.Unlock()
	states := make([]PaneState, 0, len(p.panes))
	for _, pn := range p.panes {
		states = append(states, PaneState{ID: pn.id, Path: pn.path, Dirty: pn.dirty, LastSavedAt: pn.lastSavedAt})
	}
	return states
}

// HasDirty reports whether any open pane holds unsaved edits.
func (p *PaneService) HasDirty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, pn := range p.panes {
		if pn.dirty {
			return true
		}
	}
	return false
}

// HandleEditorMessage is the inbound side of the relay. The frontend bridge
// forwards each editor postMessage together with the origin it arrived from.
// Untrusted origins and malformed payloads are dropped silently.
func (p *PaneService) HandleEditorMessage(paneID, origin, payload string) {
	if origin != p.trustedOrigin {
		events.Logf(p.context, "panes: dropped message from origin %q", origin)
		return
	}

	var msg events.EditorMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		events.Logf(p.context, "panes: dropped malformed message: %v", err)
		return
	}

	p.mu.Lock()
	pn := p.panes[paneID]
	p.mu.Unlock()
	if pn == nil {
		events.Logf(p.context, "panes: message for unknown pane %q", paneID)
		return
	}

	switch msg.Event {
	case events.EditorInit:
		p.handleInit(pn)
	case events.EditorSave:
		p.handleSave(pn, msg.XML)
	case events.EditorModified:
		p.mu.Lock()
		pn.dirty = true
		p.mu.Unlock()
	case events.EditorExit:
		p.handleExit(pn)
	default:
		events.Logf(p.context, "panes: unknown editor event %q", msg.Event)
	}
}

func (p *PaneService) command(pn *pane, cmd events.EditorCommand) {
	events.Emit(p.context, events.PaneCommandEvent(pn.id), cmd)
}

func (p *PaneService) notify(pn *pane, notice events.Notice) {
	notice.PaneID = pn.id
	events.Emit(p.context, events.Notification, notice)
}

func (p *PaneService) handleInit(pn *pane) {
	if pn.path == "" || !utils.FileExists(pn.path) {
		p.command(pn, events.EditorCommand{Action: events.ActionBlank})
		return
	}
	content, err := p.diagrams.Read(pn.path)
	if err != nil {
		p.notify(pn, events.NewError(fmt.Sprintf("Could not open diagram: %v", err)))
		return
	}
	if content == "" {
		p.command(pn, events.EditorCommand{Action: events.ActionBlank})
		return
	}
	p.command(pn, events.EditorCommand{Action: events.ActionLoad, XML: content})
}

func (p *PaneService) handleSave(pn *pane, content string) {
	if pn.path == "" {
		p.notify(pn, events.NewError("No file is bound to this pane"))
		return
	}
	if err := p.diagrams.Write(pn.path, content); err != nil {
		p.notify(pn, events.NewError(fmt.Sprintf("Could not save diagram: %v", err)))
		return
	}

	now := time.Now()
	p.mu.Lock()
	pn.dirty = false
	pn.lastSavedAt = now
	closing := pn.closing
	p.mu.Unlock()

	if p.recents != nil {
		if err := p.recents.TouchSaved(p.context, pn.path); err != nil {
			events.Logf(p.context, "panes: recents touch failed for %s: %v", pn.path, err)
		}
	}
	p.snapshot(pn)

	if pn.notices.Allow() {
		p.notify(pn, events.NewSuccess(fmt.Sprintf("Saved %s", filepath.Base(pn.path))))
	}

	if closing {
		p.ClosePane(pn.id)
	}
}

// snapshot commits the save into the vault's git history when the user has
// turned snapshots on. Failures never affect the save itself.
func (p *PaneService) snapshot(pn *pane) {
	if p.snapshots == nil || p.settings == nil {
		return
	}
	settings, err := p.settings.Get(p.context)
	if err != nil || !settings.SnapshotOnSave {
		return
	}
	if err := p.snapshots.SnapshotFile(pn.path); err != nil {
		p.notify(pn, events.NewWarn(fmt.Sprintf("Snapshot failed: %v", err)))
	}
}

func (p *PaneService) handleExit(pn *pane) {
	p.mu.Lock()
	dirty := pn.dirty
	p.mu.Unlock()

	if dirty {
		save, err := p.Confirm(p.context, "Unsaved changes",
			fmt.Sprintf("%s has unsaved changes. Save before closing?", filepath.Base(pn.path)))
		if err != nil {
			events.Logf(p.context, "panes: confirm dialog failed: %v", err)
			save = false
		}
		if save {
			// The editor answers with a save message, which writes the file
			// through the normal path; the pane closes once that lands.
			p.mu.Lock()
			pn.closing = true
			p.mu.Unlock()
			p.command(pn, events.EditorCommand{Action: events.ActionSave})
			return
		}
	}

	p.ClosePane(pn.id)
}

// ClosePane drops the pane and tells the frontend to remove its surface.
func (p *PaneService) ClosePane(paneID string) {
	p.mu.Lock()
	_, ok := p.panes[paneID]
	delete(p.panes, paneID)
	if p.activeID == paneID {
		p.activeID = ""
	}
	p.mu.Unlock()

	if ok {
		events.Emit(p.context, events.PaneClosed, paneID)
	}
}

// BroadcastTheme pushes the resolved theme to every open pane.
func (p *PaneService) BroadcastTheme(theme string) {
	p.mu.Lock()
	panes := make([]*pane, 0, len(p.panes))
	for _, pn := range p.panes {
		panes = append(panes, pn)
	}
	p.mu.Unlock()

	for _, pn := range panes {
		p.command(pn, events.EditorCommand{Action: events.ActionTheme, XML: theme})
	}
	events.Emit(p.context, events.ThemeChanged, theme)
}

// ConfirmQuit is the window-close guard: it blocks shutdown behind a dialog
// while any pane is dirty. Returns true when quitting may proceed.
func (p *PaneService) ConfirmQuit(ctx context.Context) bool {
	if !p.HasDirty() {
		return true
	}
	quit, err := p.Confirm(ctx, "Unsaved changes", "There are unsaved diagrams. Quit anyway?")
	if err != nil {
		events.Logf(ctx, "panes: confirm dialog failed: %v", err)
		return false
	}
	return quit
}
