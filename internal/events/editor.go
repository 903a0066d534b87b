package events

// Message event values sent by the embedded editor.
const (
	EditorInit     = "init"
	EditorSave     = "save"
	EditorModified = "modified"
	EditorExit     = "exit"
)

// Command actions sent back to the embedded editor.
const (
	ActionLoad  = "load"
	ActionBlank = "blank"
	ActionSave  = "save"
	ActionTheme = "theme"
)

const (
	// PaneCommandPrefix + pane ID is the per-pane command channel.
	PaneCommandPrefix = "editor:command:"
	PaneClosed        = "editor:closed"
	Notification      = "app:notify"
	ThemeChanged      = "app:theme"
)

// EditorMessage is an inbound message from the embedded editor, as forwarded
// by the frontend bridge together with the origin it arrived from.
type EditorMessage struct {
	Event    string `json:"event"`
	XML      string `json:"xml,omitempty"`
	Modified bool   `json:"modified,omitempty"`
}

// EditorCommand is an outbound command for the embedded editor. XML doubles
// as the generic payload slot: document content for load/save, the resolved
// theme name for theme.
type EditorCommand struct {
	Action string `json:"action"`
	XML    string `json:"xml,omitempty"`
}

// PaneCommandEvent returns the event name commands for the given pane are
// emitted under.
func PaneCommandEvent(paneID string) string {
	return PaneCommandPrefix + paneID
}
