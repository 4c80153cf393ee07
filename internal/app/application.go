package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rjump/internal/config"
	"github.com/kk-code-lab/rjump/internal/debuglog"
	fsutil "github.com/kk-code-lab/rjump/internal/fs"
	"github.com/kk-code-lab/rjump/internal/search"
	statepkg "github.com/kk-code-lab/rjump/internal/state"
	"github.com/kk-code-lab/rjump/internal/tags"
	inputui "github.com/kk-code-lab/rjump/internal/ui/input"
	renderui "github.com/kk-code-lab/rjump/internal/ui/render"
	"github.com/kk-code-lab/rjump/internal/watcher"
)

// Application represents the running viewer.
type Application struct {
	screen   tcell.Screen
	path     string
	cfg      config.Config
	buffer   *Buffer
	session  *statepkg.Session
	reducer  *statepkg.Reducer
	renderer *renderui.Renderer
	input    *inputui.InputHandler
	actionCh chan statepkg.Action

	watcher *watcher.Watcher
	changes <-chan struct{}

	width, height int
	topLine       int
	helpVisible   bool
	shouldQuit    bool
	lastResults   int
	message       string
	messageIsErr  bool

	clipboardCmd []string
	editorCmd    []string
}

// NewApplication loads path and prepares the terminal.
func NewApplication(path string, cfg config.Config) (*Application, error) {
	text, err := fsutil.ReadText(path)
	if err != nil {
		return nil, err
	}
	alphabet, err := cfg.TagAlphabet()
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	app := newApplication(screen, path, text, alphabet, cfg)
	app.clipboardCmd, _ = detectClipboard()
	app.editorCmd, _ = detectEditorCommand()

	if w, err := watcher.New(path, 0); err == nil {
		if changes, err := w.Start(); err == nil {
			app.watcher = w
			app.changes = changes
		} else {
			_ = w.Stop()
			debuglog.Debugf("watch %s: %v", path, err)
		}
	} else {
		debuglog.Debugf("watch %s: %v", path, err)
	}
	return app, nil
}

func newApplication(screen tcell.Screen, path, text string, alphabet tags.Alphabet, cfg config.Config) *Application {
	buffer := NewBuffer(text)
	renderer := renderui.NewRenderer(screen)
	engine := search.NewEngine()
	reducer := statepkg.NewReducer(engine, statepkg.Collaborators{
		Source:   buffer,
		Executor: buffer,
		Overlay:  renderer,
	})

	session := statepkg.NewSession(alphabet)
	if cfg.TargetMode {
		_, _ = reducer.Reduce(session, statepkg.ToggleTargetModeAction{})
	}

	actionCh := make(chan statepkg.Action, 10)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetSession(session)

	app := &Application{
		screen:   screen,
		path:     path,
		cfg:      cfg,
		buffer:   buffer,
		session:  session,
		reducer:  reducer,
		renderer: renderer,
		input:    inputHandler,
		actionCh: actionCh,
	}
	app.width, app.height = screen.Size()
	engine.OnResults(app.onResults)
	debuglog.Debugf("session %s: viewing %s (%d runes)", session.ID(), path, buffer.Document().Len())
	return app
}

// Close cleans up resources.
func (app *Application) Close() error {
	var err error
	if app.watcher != nil {
		err = app.watcher.Stop()
	}
	app.screen.Fini()
	if err != nil {
		return fmt.Errorf("stop watcher: %w", err)
	}
	return nil
}

func (app *Application) onResults(res search.Results) {
	app.lastResults = len(res.Matches)
}

func (app *Application) setMessage(msg string, isErr bool) {
	app.message = msg
	app.messageIsErr = isErr
}
