package state

import (
	"github.com/google/uuid"
	"github.com/kk-code-lab/rjump/internal/search"
	"github.com/kk-code-lab/rjump/internal/tags"
	"github.com/kk-code-lab/rjump/internal/textindex"
)

// DispatchState is the keystroke interpretation mode of a session.
type DispatchState int

const (
	// Idle means no session is running; keystrokes belong to the host.
	Idle DispatchState = iota
	// Searching means keystrokes edit the query.
	Searching
	// Jumping means keystrokes select tags.
	Jumping
	// AwaitingSecondChar means a tag prefix was typed and its second rune is due.
	AwaitingSecondChar
)

func (s DispatchState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Searching:
		return "searching"
	case Jumping:
		return "jumping"
	case AwaitingSecondChar:
		return "awaiting-second-char"
	default:
		return "unknown"
	}
}

// JumpCommand describes a resolved jump handed to the JumpExecutor.
type JumpCommand struct {
	Target          int
	From            int
	ExtendSelection bool
	SelectWord      bool
}

// Session owns everything a single jump interaction needs. It is mutated
// only by Reducer.
type Session struct {
	id         string
	state      DispatchState
	pending    rune
	query      []rune
	kind       search.Kind
	document   textindex.Document
	table      tags.Table
	alphabet   tags.Alphabet
	targetMode bool
	lastJump   *JumpCommand
}

// NewSession creates an idle session using alphabet for tags.
func NewSession(alphabet tags.Alphabet) *Session {
	return &Session{
		id:       uuid.NewString(),
		alphabet: alphabet,
	}
}

// ID returns the session id used in debug logs.
func (s *Session) ID() string { return s.id }

// State returns the current dispatch state.
func (s *Session) State() DispatchState { return s.state }

// Query returns the literal query typed so far.
func (s *Session) Query() string { return string(s.query) }

// Kind returns the search kind of the running session.
func (s *Session) Kind() search.Kind { return s.kind }

// Document returns the snapshot taken when the search started.
func (s *Session) Document() textindex.Document { return s.document }

// Tags returns the current tag table.
func (s *Session) Tags() tags.Table { return s.table }

// Alphabet returns the runes tags are built from.
func (s *Session) Alphabet() tags.Alphabet { return s.alphabet }

// TargetMode reports whether jumps also select the word at the target.
func (s *Session) TargetMode() bool { return s.targetMode }

// PendingPrefix returns the first rune of a two-rune tag while the session
// waits for the second one.
func (s *Session) PendingPrefix() (rune, bool) {
	if s.state != AwaitingSecondChar {
		return 0, false
	}
	return s.pending, true
}

// LastJump returns the most recent jump the session resolved.
func (s *Session) LastJump() (JumpCommand, bool) {
	if s.lastJump == nil {
		return JumpCommand{}, false
	}
	return *s.lastJump, true
}

// Active reports whether the session is anywhere but Idle.
func (s *Session) Active() bool {
	return s.state != Idle
}

// needsPrefix reports whether the current matches overflow single-rune tags.
func (s *Session) needsPrefix() bool {
	return s.table.MatchCount() > s.alphabet.Size()
}

func (s *Session) reset() {
	s.state = Idle
	s.pending = 0
	s.query = nil
	s.kind = search.Literal
	s.document = textindex.Document{}
	s.table = tags.Table{}
}
