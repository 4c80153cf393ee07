package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rjump/internal/config"
	statepkg "github.com/kk-code-lab/rjump/internal/state"
	"github.com/kk-code-lab/rjump/internal/tags"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init screen: %v", err)
	}
	t.Cleanup(func() {
		screen.Fini()
	})
	screen.SetSize(40, 8)
	return screen
}

func newTestApplication(t *testing.T, text string, cfg config.Config) *Application {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return newApplication(newTestScreen(t), path, text, tags.Default(), cfg)
}

func sendKeys(app *Application, keys string) {
	for _, r := range keys {
		app.handleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
		app.processActions()
	}
}

func pressKey(app *Application, key tcell.Key) {
	mod := tcell.ModNone
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ && key != tcell.KeyEnter && key != tcell.KeyTab && key != tcell.KeyBackspace {
		mod = tcell.ModCtrl
	}
	app.handleEvent(tcell.NewEventKey(key, 0, mod))
	app.processActions()
}

func TestSearchAndJumpMovesCaret(t *testing.T) {
	app := newTestApplication(t, "alpha beta\ngamma beta", config.Default())

	sendKeys(app, "/bet")
	if app.session.State() != statepkg.Searching {
		t.Fatalf("expected searching, got %s", app.session.State())
	}
	if app.session.Tags().Len() != 2 {
		t.Fatalf("expected 2 tags, got %d", app.session.Tags().Len())
	}

	pressKey(app, tcell.KeyEnter)
	if app.session.State() != statepkg.Jumping {
		t.Fatalf("expected jumping after Enter, got %s", app.session.State())
	}
	sendKeys(app, "s")
	if app.session.State() != statepkg.Idle {
		t.Fatalf("expected idle after jump, got %s", app.session.State())
	}
	if got := app.buffer.Caret(); got != 17 {
		t.Fatalf("caret = %d, want 17", got)
	}
}

func TestShiftTagExtendsSelection(t *testing.T) {
	app := newTestApplication(t, "one two three", config.Default())

	sendKeys(app, "/thr")
	pressKey(app, tcell.KeyEnter)
	app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModNone))
	app.processActions()

	if lo, hi := app.buffer.Selection(); lo != 0 || hi != 8 {
		t.Fatalf("selection = %d,%d, want 0,8", lo, hi)
	}
	if app.buffer.Caret() != 8 {
		t.Fatalf("caret = %d", app.buffer.Caret())
	}
}

func TestTargetModeFromConfigSelectsWord(t *testing.T) {
	cfg := config.Default()
	cfg.TargetMode = true
	app := newTestApplication(t, "one two three", cfg)

	sendKeys(app, "/tw")
	pressKey(app, tcell.KeyEnter)
	sendKeys(app, "a")
	if got := app.buffer.SelectedText(); got != "two" {
		t.Fatalf("selected %q, want %q", got, "two")
	}
}

func TestJumpRevealsCaretLine(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	b.WriteString("needle\n")
	app := newTestApplication(t, b.String(), config.Default())

	sendKeys(app, "/needle")
	pressKey(app, tcell.KeyEnter)
	sendKeys(app, "a")
	line, _ := app.buffer.Document().LineCol(app.buffer.Caret())
	if line != 30 {
		t.Fatalf("caret line = %d", line)
	}
	// 8 rows leave a 5 line viewport.
	if app.topLine != 26 {
		t.Fatalf("topLine = %d, want 26", app.topLine)
	}
}

func TestVisibleOnlyRestrictsMatches(t *testing.T) {
	cfg := config.Default()
	cfg.VisibleOnly = true
	app := newTestApplication(t, strings.Repeat("x\n", 20), cfg)

	sendKeys(app, "/x")
	if got := app.session.Tags().MatchCount(); got != 5 {
		t.Fatalf("expected only the 5 visible lines to match, got %d", got)
	}
}

func TestVisibleOnlyWithoutDocumentRowsTagsNothing(t *testing.T) {
	cfg := config.Default()
	cfg.VisibleOnly = true
	app := newTestApplication(t, "foo\nfoo\nfoo\n", cfg)
	app.handleEvent(tcell.NewEventResize(40, 3))
	app.processActions()

	sendKeys(app, "/foo")
	if got := app.session.Tags().MatchCount(); got != 0 {
		t.Fatalf("expected no matches with no document rows on screen, got %d", got)
	}
}

func TestStructuralSearchFromControlKey(t *testing.T) {
	app := newTestApplication(t, "a\n\tb\n", config.Default())

	pressKey(app, tcell.KeyCtrlW)
	if app.session.State() != statepkg.Jumping {
		t.Fatalf("expected jumping, got %s", app.session.State())
	}
	sendKeys(app, "a")
	if app.buffer.Caret() != 2 {
		t.Fatalf("caret = %d, want 2", app.buffer.Caret())
	}
}

func TestNoMatchesMessage(t *testing.T) {
	app := newTestApplication(t, "abc", config.Default())
	sendKeys(app, "/zz")
	if got := app.frame().Message; got != "no matches" {
		t.Fatalf("message = %q", got)
	}
}

func TestReloadReplacesDocument(t *testing.T) {
	app := newTestApplication(t, "first version", config.Default())
	sendKeys(app, "/ver")
	pressKey(app, tcell.KeyEnter)

	if err := os.WriteFile(app.path, []byte("short"), 0o600); err != nil {
		t.Fatal(err)
	}
	app.reload()

	if got := app.buffer.Document().Text(); got != "short" {
		t.Fatalf("buffer = %q", got)
	}
	if got := app.session.Document().Text(); got != "short" {
		t.Fatalf("session document = %q", got)
	}

	// The tag still points past the new end and must not move the caret.
	sendKeys(app, "a")
	if app.buffer.Caret() != 0 {
		t.Fatalf("stale tag moved the caret to %d", app.buffer.Caret())
	}
	if app.session.State() != statepkg.Idle {
		t.Fatalf("expected idle, got %s", app.session.State())
	}
}

func TestScrollingClamps(t *testing.T) {
	app := newTestApplication(t, strings.Repeat("row\n", 12), config.Default())

	app.handleAction(statepkg.ScrollToEndAction{})
	if app.topLine != 8 {
		t.Fatalf("topLine = %d, want 8", app.topLine)
	}
	app.handleAction(statepkg.ScrollPageAction{Pages: 1})
	if app.topLine != 8 {
		t.Fatalf("scrolling past the end should clamp, got %d", app.topLine)
	}
	app.handleAction(statepkg.ScrollAction{Lines: -100})
	if app.topLine != 0 {
		t.Fatalf("topLine = %d, want 0", app.topLine)
	}
	app.handleAction(statepkg.ResizeAction{Width: 40, Height: 40})
	if app.topLine != 0 || app.maxTopLine() != 0 {
		t.Fatalf("tall screen should not scroll, got %d/%d", app.topLine, app.maxTopLine())
	}
}

func TestQuitOnlyWhenIdle(t *testing.T) {
	app := newTestApplication(t, "quiet", config.Default())
	sendKeys(app, "/q")
	if app.shouldQuit {
		t.Fatal("q inside a search must not quit")
	}
	pressKey(app, tcell.KeyEscape)
	sendKeys(app, "q")
	if !app.shouldQuit {
		t.Fatal("expected q to quit when idle")
	}
}

func TestHelpToggle(t *testing.T) {
	app := newTestApplication(t, "text", config.Default())
	sendKeys(app, "?")
	if !app.helpVisible {
		t.Fatal("expected help visible")
	}
	sendKeys(app, "/")
	if app.session.Active() {
		t.Fatal("keys must not reach the session while help is open")
	}
	sendKeys(app, "?")
	if app.helpVisible {
		t.Fatal("expected help hidden")
	}
}

func TestRenderShowsDocument(t *testing.T) {
	app := newTestApplication(t, "hello", config.Default())
	app.render()

	screen := app.screen.(tcell.SimulationScreen)
	cells, w, _ := screen.GetContents()
	var row strings.Builder
	for x := 0; x < 5; x++ {
		row.WriteRune(cells[w+x].Runes[0])
	}
	if row.String() != "hello" {
		t.Fatalf("row 1 = %q", row.String())
	}
}
