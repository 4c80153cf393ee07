package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rjump/internal/search"
	statepkg "github.com/kk-code-lab/rjump/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan  chan statepkg.Action
	session     *statepkg.Session // Reference to current session for mode checking
	helpVisible bool
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetSession sets the session reference for mode checking
func (ih *InputHandler) SetSession(session *statepkg.Session) {
	ih.session = session
}

// SetHelpVisible tells the handler whether the help overlay is open.
func (ih *InputHandler) SetHelpVisible(visible bool) {
	ih.helpVisible = visible
}

// ProcessEvent converts a tcell event into an Action. It returns false
// once the user asked to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) dispatchState() statepkg.DispatchState {
	if ih.session == nil {
		return statepkg.Idle
	}
	return ih.session.State()
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	mode := ih.dispatchState()
	searching := mode == statepkg.Searching
	jumping := mode == statepkg.Jumping || mode == statepkg.AwaitingSecondChar

	if ih.helpVisible {
		switch ev.Key() {
		case tcell.KeyCtrlC:
			ih.actionChan <- statepkg.QuitAction{}
			return false
		case tcell.KeyEscape:
			ih.actionChan <- statepkg.HelpToggleAction{}
		case tcell.KeyRune:
			if r := ev.Rune(); r == '?' || r == 'q' || r == 'Q' {
				ih.actionChan <- statepkg.HelpToggleAction{}
			}
		}
		return true
	}

	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
		return true

	case tcell.KeyEscape:
		if mode != statepkg.Idle {
			ih.actionChan <- statepkg.CancelAction{}
		}
		return true

	case tcell.KeyEnter:
		if searching {
			ih.actionChan <- statepkg.CommitSearchAction{}
		}
		return true

	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		if searching {
			ih.actionChan <- statepkg.QueryBackspaceAction{}
		} else if jumping {
			ih.actionChan <- statepkg.KeyAction{Key: statepkg.KeyEvent{Delete: true}}
		}
		return true

	case tcell.KeyCtrlL:
		ih.actionChan <- statepkg.StartStructuralSearchAction{Kind: search.LineLead}
		return true

	case tcell.KeyCtrlW:
		ih.actionChan <- statepkg.StartStructuralSearchAction{Kind: search.WhitespaceRun}
		return true

	case tcell.KeyCtrlT:
		ih.actionChan <- statepkg.ToggleTargetModeAction{}
		return true

	case tcell.KeyUp:
		ih.actionChan <- statepkg.ScrollAction{Lines: -1}
		return true

	case tcell.KeyDown:
		ih.actionChan <- statepkg.ScrollAction{Lines: 1}
		return true

	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.ScrollPageAction{Pages: -1}
		return true

	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.ScrollPageAction{Pages: 1}
		return true

	case tcell.KeyHome:
		ih.actionChan <- statepkg.ScrollToStartAction{}
		return true

	case tcell.KeyEnd:
		ih.actionChan <- statepkg.ScrollToEndAction{}
		return true

	case tcell.KeyRune:
		r := ev.Rune()
		mods := ev.Modifiers()
		if mods&tcell.ModCtrl != 0 {
			// Some terminals report Ctrl+letter as a modified rune.
			switch unicode.ToLower(r) {
			case 'l':
				ih.actionChan <- statepkg.StartStructuralSearchAction{Kind: search.LineLead}
			case 'w':
				ih.actionChan <- statepkg.StartStructuralSearchAction{Kind: search.WhitespaceRun}
			case 't':
				ih.actionChan <- statepkg.ToggleTargetModeAction{}
			}
			return true
		}

		// Every printable rune belongs to the query or the tag keys while a
		// session is active, including 'q'.
		if searching || jumping {
			key := statepkg.KeyEvent{
				Char:   r,
				Select: mods&tcell.ModShift != 0 || unicode.IsUpper(r),
				Meta:   mods&(tcell.ModAlt|tcell.ModMeta) != 0,
			}
			ih.actionChan <- statepkg.KeyAction{Key: key}
			return true
		}

		switch r {
		case 'q':
			ih.actionChan <- statepkg.QuitAction{}
			return false
		case '/':
			ih.actionChan <- statepkg.StartSearchAction{}
		case '?':
			ih.actionChan <- statepkg.HelpToggleAction{}
		case 'j':
			ih.actionChan <- statepkg.ScrollAction{Lines: 1}
		case 'k':
			ih.actionChan <- statepkg.ScrollAction{Lines: -1}
		case ' ':
			ih.actionChan <- statepkg.ScrollPageAction{Pages: 1}
		case 'g':
			ih.actionChan <- statepkg.ScrollToStartAction{}
		case 'G':
			ih.actionChan <- statepkg.ScrollToEndAction{}
		case 'e':
			ih.actionChan <- statepkg.OpenEditorAction{}
		case 'y':
			ih.actionChan <- statepkg.YankAction{}
		}
		return true

	default:
		return true
	}
}
