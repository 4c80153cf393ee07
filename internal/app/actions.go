package app

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

var (
	errNoClipboard = errors.New("no clipboard command available")
	errNoEditor    = errors.New("no editor configured")
)

var commandBuilder = exec.Command

// handleYank copies the selection, or the word under the caret, to the
// system clipboard.
func (app *Application) handleYank() error {
	if len(app.clipboardCmd) == 0 {
		return errNoClipboard
	}
	text := app.buffer.SelectedText()
	if text == "" {
		return nil
	}
	cmd := commandBuilder(app.clipboardCmd[0], app.clipboardCmd[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", app.clipboardCmd[0], err, strings.TrimSpace(string(out)))
	}
	app.setMessage(fmt.Sprintf("yanked %d chars", len([]rune(text))), false)
	return nil
}

// handleEditorOpen opens the file in the external editor at the caret
// line. The watcher picks up any saved changes.
func (app *Application) handleEditorOpen() error {
	if len(app.editorCmd) == 0 {
		return errNoEditor
	}
	line, _ := app.buffer.Document().LineCol(app.buffer.Caret())
	return app.runInTerminal(editorArgs(app.editorCmd, app.path, line+1))
}

// runInTerminal hands the terminal to args until the command exits.
func (app *Application) runInTerminal(args []string) error {
	useTTY := runtime.GOOS != "windows"
	var tty *os.File
	if useTTY {
		var err error
		tty, err = os.OpenFile("/dev/tty", os.O_RDWR, 0)
		if err != nil {
			useTTY = false
		} else {
			defer func() {
				_ = tty.Close()
			}()
		}
	}

	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}

	cmd := commandBuilder(args[0], args[1:]...)
	if useTTY {
		cmd.Stdin, cmd.Stdout, cmd.Stderr = tty, tty, tty
	} else {
		cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	}
	runErr := cmd.Run()

	if err := app.screen.Resume(); err != nil {
		return fmt.Errorf("failed to resume screen: %w", err)
	}
	app.screen.Sync()
	if runErr != nil {
		return fmt.Errorf("%s: %w", args[0], runErr)
	}
	return nil
}
