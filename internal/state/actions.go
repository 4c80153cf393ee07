package state

import "github.com/kk-code-lab/rjump/internal/search"

// Action is the base interface for all session mutations
type Action interface{}

// KeyEvent is one keystroke as delivered by the input source.
type KeyEvent struct {
	Char   rune
	Select bool // shift held: extend the selection to the target
	Meta   bool // alt/meta held: move only
	Delete bool
}

// ===== SESSION ACTIONS =====

type StartSearchAction struct{}
type StartStructuralSearchAction struct {
	Kind search.Kind
}
type CancelAction struct{}
type ToggleTargetModeAction struct{}

// ReplaceDocumentAction swaps the document of an active session without
// retagging, as happens when the underlying text changes under the user.
type ReplaceDocumentAction struct {
	Text string
}

// ===== QUERY ACTIONS =====

type QueryCharAction struct {
	Char rune
}
type QueryBackspaceAction struct{}
type CommitSearchAction struct{}

// ===== JUMP ACTIONS =====

type KeyAction struct {
	Key KeyEvent
}

// ===== VIEW ACTIONS =====
// Handled by the host; Reducer ignores them.

type ScrollAction struct {
	Lines int
}
type ScrollPageAction struct {
	Pages int
}
type ScrollToStartAction struct{}
type ScrollToEndAction struct{}
type ResizeAction struct {
	Width  int
	Height int
}
type HelpToggleAction struct{}
type OpenEditorAction struct{}
type YankAction struct{}
type SuspendAction struct{}
type QuitAction struct{}
