package app

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/rjump/internal/fs"
	"github.com/kk-code-lab/rjump/internal/search"
	statepkg "github.com/kk-code-lab/rjump/internal/state"
	renderui "github.com/kk-code-lab/rjump/internal/ui/render"
)

// Run processes events until the user quits.
func (app *Application) Run() {
	app.render()
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.render()
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-app.changes:
			app.reload()
			renderPending = true
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch a := action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	case statepkg.ResizeAction:
		app.width, app.height = a.Width, a.Height
		app.scrollTo(app.topLine)
		return true
	case statepkg.ScrollAction:
		app.scrollTo(app.topLine + a.Lines)
		return true
	case statepkg.ScrollPageAction:
		page := renderui.ViewportHeight(app.height) - 1
		if page < 1 {
			page = 1
		}
		app.scrollTo(app.topLine + a.Pages*page)
		return true
	case statepkg.ScrollToStartAction:
		app.scrollTo(0)
		return true
	case statepkg.ScrollToEndAction:
		app.scrollTo(app.maxTopLine())
		return true
	case statepkg.HelpToggleAction:
		app.helpVisible = !app.helpVisible
		app.input.SetHelpVisible(app.helpVisible)
		return true
	case statepkg.YankAction:
		if err := app.handleYank(); err != nil {
			app.setMessage(err.Error(), true)
		}
		return true
	case statepkg.OpenEditorAction:
		if app.session.Active() {
			return false
		}
		if err := app.handleEditorOpen(); err != nil {
			app.setMessage(err.Error(), true)
		}
		return true
	}

	app.dispatch(action)
	return true
}

// dispatch hands a session action to the reducer.
func (app *Application) dispatch(action statepkg.Action) {
	if app.cfg.VisibleOnly {
		start, end := renderui.VisibleRange(app.buffer.Document(), app.viewport())
		app.reducer.Engine().SetVisible(search.Range{Start: start, End: end})
	}

	wasActive := app.session.Active()
	if _, ok := action.(statepkg.ReplaceDocumentAction); !ok {
		app.setMessage("", false)
	}
	if _, err := app.reducer.Reduce(app.session, action); err != nil {
		app.setMessage(err.Error(), true)
	}
	if wasActive && !app.session.Active() {
		app.revealCaret()
	}
}

// reload re-reads the file after it changed on disk.
func (app *Application) reload() {
	text, err := fsutil.ReadText(app.path)
	if err != nil {
		app.setMessage(fmt.Sprintf("reload: %v", err), true)
		return
	}
	app.buffer.Replace(text)
	app.dispatch(statepkg.ReplaceDocumentAction{Text: text})
	app.scrollTo(app.topLine)
	app.setMessage("reloaded", false)
}

func (app *Application) viewport() renderui.Viewport {
	return renderui.Viewport{
		TopLine:  app.topLine,
		Height:   renderui.ViewportHeight(app.height),
		Width:    app.width,
		TabWidth: app.cfg.TabWidth,
	}
}

func (app *Application) maxTopLine() int {
	top := app.buffer.Document().LineCount() - renderui.ViewportHeight(app.height)
	if top < 0 {
		return 0
	}
	return top
}

func (app *Application) scrollTo(line int) {
	if line > app.maxTopLine() {
		line = app.maxTopLine()
	}
	if line < 0 {
		line = 0
	}
	app.topLine = line
}

// revealCaret scrolls just enough to bring the caret line on screen.
func (app *Application) revealCaret() {
	line, _ := app.buffer.Document().LineCol(app.buffer.Caret())
	height := renderui.ViewportHeight(app.height)
	switch {
	case line < app.topLine:
		app.scrollTo(line)
	case height > 0 && line >= app.topLine+height:
		app.scrollTo(line - height + 1)
	}
}

func (app *Application) frame() renderui.Frame {
	selLo, selHi := app.buffer.Selection()
	frame := renderui.Frame{
		Title:       filepath.Base(app.path),
		Document:    app.buffer.Document(),
		Caret:       app.buffer.Caret(),
		SelStart:    selLo,
		SelEnd:      selHi,
		TopLine:     app.topLine,
		TabWidth:    app.cfg.TabWidth,
		HelpVisible: app.helpVisible,
		Message:     app.message,
		IsError:     app.messageIsErr,
	}
	if frame.Message == "" && app.session.State() == statepkg.Searching && app.session.Query() != "" && app.lastResults == 0 {
		frame.Message = "no matches"
	}
	return frame
}

func (app *Application) render() {
	app.renderer.Render(app.frame())
}
