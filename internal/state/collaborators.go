package state

import (
	"github.com/kk-code-lab/rjump/internal/tags"
	"github.com/kk-code-lab/rjump/internal/textindex"
)

// DocumentSource supplies the text a session searches. It is read once
// when a search starts.
type DocumentSource interface {
	Text() (string, error)
}

// JumpExecutor owns the caret and selection.
type JumpExecutor interface {
	Caret() int
	MoveCaret(offset int) error
	ExtendSelection(from, to int) error
	SelectWordAt(offset int) error
}

// Overlay is what an OverlayRenderer needs to draw tags.
type Overlay struct {
	SessionID  string
	State      DispatchState
	Query      string
	Pending    rune
	TargetMode bool
	Document   textindex.Document
	Tags       tags.Table
}

// OverlayRenderer is told about every change to the tag table.
type OverlayRenderer interface {
	ShowTags(Overlay) error
}

// Collaborators groups the host-provided dependencies of a Reducer. Any of
// them may be nil.
type Collaborators struct {
	Source   DocumentSource
	Executor JumpExecutor
	Overlay  OverlayRenderer
}

// DocumentSourceFunc adapts a function to DocumentSource.
type DocumentSourceFunc func() (string, error)

func (f DocumentSourceFunc) Text() (string, error) {
	return f()
}
