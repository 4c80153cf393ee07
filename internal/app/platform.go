package app

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"unicode"
)

type lookPathFunc func(string) (string, error)

func detectClipboard() ([]string, bool) {
	return detectClipboardInternal(runtime.GOOS, exec.LookPath)
}

func detectClipboardInternal(goos string, lookPath lookPathFunc) ([]string, bool) {
	if strings.EqualFold(goos, "windows") {
		if path, ok := firstOnPath(lookPath, "clip.exe", "clip"); ok {
			return []string{path}, true
		}
		if path, ok := firstOnPath(lookPath, "powershell", "powershell.exe", "pwsh"); ok {
			return []string{path, "-NoLogo", "-NoProfile", "-Command", "Set-Clipboard"}, true
		}
	}
	if path, ok := firstOnPath(lookPath, "pbcopy", "wl-copy"); ok {
		return []string{path}, true
	}
	if path, ok := firstOnPath(lookPath, "xclip"); ok {
		return []string{path, "-selection", "clipboard"}, true
	}
	if path, ok := firstOnPath(lookPath, "xsel"); ok {
		return []string{path, "--clipboard", "--input"}, true
	}
	return nil, false
}

func firstOnPath(lookPath lookPathFunc, candidates ...string) (string, bool) {
	for _, candidate := range candidates {
		if path, err := lookPath(candidate); err == nil && path != "" {
			return path, true
		}
	}
	return "", false
}

func detectEditorCommand() ([]string, bool) {
	return detectEditorCommandInternal(runtime.GOOS, os.Getenv, exec.LookPath)
}

func detectEditorCommandInternal(goos string, getenv func(string) string, lookPath lookPathFunc) ([]string, bool) {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		args := parseEditorCommand(getenv(env))
		if len(args) == 0 {
			continue
		}
		if path, ok := firstOnPath(lookPath, expandUserPath(args[0])); ok {
			args[0] = path
			return args, true
		}
	}

	defaults := [][]string{{"vim"}, {"nano"}}
	if strings.EqualFold(goos, "windows") {
		defaults = [][]string{{"code", "--wait"}, {"notepad++.exe"}, {"notepad.exe"}}
	}
	for _, def := range defaults {
		if path, ok := firstOnPath(lookPath, def[0]); ok {
			return append([]string{path}, def[1:]...), true
		}
	}
	return nil, false
}

// parseEditorCommand splits an $EDITOR value into arguments, honoring
// single and double quotes.
func parseEditorCommand(cmd string) []string {
	var args []string
	var current strings.Builder
	inSingle, inDouble := false, false
	flush := func() {
		if current.Len() > 0 {
			args = append(args, current.String())
			current.Reset()
		}
	}

	for _, r := range strings.TrimSpace(cmd) {
		switch {
		case r == '\'' && !inDouble:
			inSingle = !inSingle
		case r == '"' && !inSingle:
			inDouble = !inDouble
		case unicode.IsSpace(r) && !inSingle && !inDouble:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	if len(args) > 0 {
		args[0] = expandUserPath(args[0])
	}
	return args
}

func expandUserPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// lineArgEditors accept a +LINE argument before the file name.
var lineArgEditors = map[string]bool{
	"vi": true, "vim": true, "nvim": true, "nano": true, "emacs": true,
	"micro": true, "hx": true, "kak": true, "joe": true,
}

// editorArgs returns the command that opens file at the 1-based line.
func editorArgs(editorCmd []string, file string, line int) []string {
	args := append([]string(nil), editorCmd...)
	name := strings.TrimSuffix(strings.ToLower(filepath.Base(editorCmd[0])), ".exe")
	if lineArgEditors[name] && line > 0 {
		args = append(args, "+"+strconv.Itoa(line))
	}
	return append(args, file)
}
