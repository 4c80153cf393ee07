package state

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/kk-code-lab/rjump/internal/debuglog"
	"github.com/kk-code-lab/rjump/internal/search"
	"github.com/kk-code-lab/rjump/internal/tags"
	"github.com/kk-code-lab/rjump/internal/textindex"
)

// ErrNoDocumentSource is returned when a search starts without a source.
var ErrNoDocumentSource = errors.New("no document source")

// Reducer drives a Session through its states. Keystrokes that cannot be
// used are ignored; the only errors it returns come from collaborators,
// and the session is always left in a consistent state first.
type Reducer struct {
	engine *search.Engine
	deps   Collaborators
}

// NewReducer creates a reducer. A nil engine gets a fresh one.
func NewReducer(engine *search.Engine, deps Collaborators) *Reducer {
	if engine == nil {
		engine = search.NewEngine()
	}
	return &Reducer{engine: engine, deps: deps}
}

// Engine returns the search engine the reducer runs queries on.
func (r *Reducer) Engine() *search.Engine {
	return r.engine
}

// StartSearch begins a literal search.
func (r *Reducer) StartSearch(s *Session) error {
	_, err := r.Reduce(s, StartSearchAction{})
	return err
}

// StartStructuralSearch tags every match of kind and goes straight to
// jumping.
func (r *Reducer) StartStructuralSearch(s *Session, kind search.Kind) error {
	_, err := r.Reduce(s, StartStructuralSearchAction{Kind: kind})
	return err
}

// Cancel returns the session to Idle from any state.
func (r *Reducer) Cancel(s *Session) error {
	_, err := r.Reduce(s, CancelAction{})
	return err
}

// Reduce applies action to s.
func (r *Reducer) Reduce(s *Session, action Action) (*Session, error) {
	switch a := action.(type) {

	// ===== SESSION =====

	case StartSearchAction:
		return s, r.start(s, search.Literal)

	case StartStructuralSearchAction:
		return s, r.start(s, a.Kind)

	case CancelAction:
		if s.state != Idle {
			debuglog.Debugf("session %s: cancel in %s", s.id, s.state)
		}
		s.reset()
		return s, r.publish(s)

	case ToggleTargetModeAction:
		s.targetMode = !s.targetMode
		debuglog.Debugf("session %s: target mode %v", s.id, s.targetMode)
		if !s.Active() {
			return s, nil
		}
		return s, r.publish(s)

	case ReplaceDocumentAction:
		if !s.Active() {
			return s, nil
		}
		s.document = textindex.Normalize(a.Text)
		debuglog.Debugf("session %s: document replaced, %d runes", s.id, s.document.Len())
		return s, nil

	// ===== QUERY =====

	case QueryCharAction:
		if s.state != Searching || isDeleteRune(a.Char) || unicode.IsControl(a.Char) {
			return s, nil
		}
		s.query = append(s.query, a.Char)
		return s, r.research(s)

	case QueryBackspaceAction:
		if s.state != Searching || len(s.query) == 0 {
			return s, nil
		}
		s.query = s.query[:len(s.query)-1]
		return s, r.research(s)

	case CommitSearchAction:
		if s.state != Searching {
			return s, nil
		}
		r.setState(s, Jumping)
		return s, r.publish(s)

	// ===== JUMP =====

	case KeyAction:
		switch s.state {
		case Searching:
			if a.Key.Delete || isDeleteRune(a.Key.Char) {
				return r.Reduce(s, QueryBackspaceAction{})
			}
			return r.Reduce(s, QueryCharAction{Char: a.Key.Char})
		case Jumping, AwaitingSecondChar:
			return s, r.resolve(s, a.Key)
		}
		return s, nil
	}

	return s, nil
}

func (r *Reducer) start(s *Session, kind search.Kind) error {
	s.reset()
	text, err := r.snapshot()
	if err != nil {
		debuglog.Debugf("session %s: start failed: %v", s.id, err)
		return errors.Join(err, r.publish(s))
	}

	s.document = textindex.Normalize(text)
	s.kind = kind
	if kind.Structural() {
		matches := r.engine.Search(s.document, "", kind)
		s.table = tags.Assign(matches, s.alphabet)
		r.setState(s, Jumping)
	} else {
		r.setState(s, Searching)
	}
	return r.publish(s)
}

func (r *Reducer) snapshot() (string, error) {
	if r.deps.Source == nil {
		return "", ErrNoDocumentSource
	}
	text, err := r.deps.Source.Text()
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return text, nil
}

func (r *Reducer) research(s *Session) error {
	matches := r.engine.Search(s.document, string(s.query), s.kind)
	s.table = tags.Assign(matches, s.alphabet)
	if dropped := s.table.Dropped(); dropped > 0 {
		debuglog.Debugf("session %s: %d matches beyond tag capacity", s.id, dropped)
	}
	return r.publish(s)
}

func (r *Reducer) resolve(s *Session, key KeyEvent) error {
	if key.Delete || isDeleteRune(key.Char) {
		return nil
	}
	ch := unicode.ToLower(key.Char)
	if ch == ' ' || ch == 0 {
		return nil
	}

	if prefix, ok := s.PendingPrefix(); ok {
		m, found := s.table.Lookup(tags.Tag(string([]rune{prefix, ch})))
		if !found {
			return nil
		}
		return r.jump(s, m.Offset, key)
	}

	if m, found := s.table.Lookup(tags.Tag(string(ch))); found {
		return r.jump(s, m.Offset, key)
	}

	if s.table.HasPrefix(ch) && s.needsPrefix() {
		s.pending = ch
		r.setState(s, AwaitingSecondChar)
		return r.publish(s)
	}
	return nil
}

func (r *Reducer) jump(s *Session, target int, key KeyEvent) error {
	docLen := s.document.Len()
	cmd := JumpCommand{
		Target:          target,
		ExtendSelection: key.Select && !key.Meta,
		SelectWord:      s.targetMode,
	}

	s.reset()
	overlayErr := r.publish(s)

	if target < 0 || target > docLen {
		debuglog.Debugf("session %s: stale offset %d (document has %d runes)", s.id, target, docLen)
		return overlayErr
	}

	if cmd.ExtendSelection && r.deps.Executor != nil {
		cmd.From = r.deps.Executor.Caret()
	}
	s.lastJump = &cmd
	debuglog.Debugf("session %s: jump %+v", s.id, cmd)
	return errors.Join(r.execute(cmd), overlayErr)
}

func (r *Reducer) execute(cmd JumpCommand) error {
	ex := r.deps.Executor
	if ex == nil {
		return nil
	}
	if cmd.ExtendSelection {
		if err := ex.ExtendSelection(cmd.From, cmd.Target); err != nil {
			return fmt.Errorf("extend selection: %w", err)
		}
	}
	if err := ex.MoveCaret(cmd.Target); err != nil {
		return fmt.Errorf("move caret: %w", err)
	}
	if cmd.SelectWord {
		if err := ex.SelectWordAt(cmd.Target); err != nil {
			return fmt.Errorf("select word: %w", err)
		}
	}
	return nil
}

func (r *Reducer) publish(s *Session) error {
	if r.deps.Overlay == nil {
		return nil
	}
	overlay := Overlay{
		SessionID:  s.id,
		State:      s.state,
		Query:      string(s.query),
		TargetMode: s.targetMode,
		Document:   s.document,
		Tags:       s.table,
	}
	if prefix, ok := s.PendingPrefix(); ok {
		overlay.Pending = prefix
	}
	if err := r.deps.Overlay.ShowTags(overlay); err != nil {
		return fmt.Errorf("show tags: %w", err)
	}
	return nil
}

func (r *Reducer) setState(s *Session, next DispatchState) {
	if s.state == next {
		return
	}
	debuglog.Debugf("session %s: %s -> %s", s.id, s.state, next)
	s.state = next
}

// isDeleteRune reports runes some terminals send for backspace; they must
// never act as a tag keystroke.
func isDeleteRune(r rune) bool {
	return r == '\b' || r == 0x7f
}
