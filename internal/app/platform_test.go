package app

import (
	"errors"
	"reflect"
	"testing"
)

func fakeLookPath(found map[string]string) lookPathFunc {
	return func(cmd string) (string, error) {
		if path, ok := found[cmd]; ok {
			return path, nil
		}
		return "", errors.New("not found")
	}
}

func TestDetectClipboard(t *testing.T) {
	tests := []struct {
		name   string
		goos   string
		found  map[string]string
		expect []string
	}{
		{
			name:   "pbcopy on unix",
			goos:   "darwin",
			found:  map[string]string{"pbcopy": "/usr/bin/pbcopy"},
			expect: []string{"/usr/bin/pbcopy"},
		},
		{
			name:   "xclip targets the clipboard selection",
			goos:   "linux",
			found:  map[string]string{"xclip": "/usr/bin/xclip"},
			expect: []string{"/usr/bin/xclip", "-selection", "clipboard"},
		},
		{
			name:   "clip on windows",
			goos:   "windows",
			found:  map[string]string{"clip.exe": `C:\Windows\System32\clip.exe`},
			expect: []string{`C:\Windows\System32\clip.exe`},
		},
		{
			name:   "powershell fallback",
			goos:   "windows",
			found:  map[string]string{"pwsh": `C:\pwsh.exe`},
			expect: []string{`C:\pwsh.exe`, "-NoLogo", "-NoProfile", "-Command", "Set-Clipboard"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := detectClipboardInternal(tt.goos, fakeLookPath(tt.found))
			if !ok || !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %v, got %v (ok=%v)", tt.expect, got, ok)
			}
		})
	}

	if _, ok := detectClipboardInternal("linux", fakeLookPath(nil)); ok {
		t.Fatal("expected no clipboard when nothing is installed")
	}
}

func TestDetectEditorCommand(t *testing.T) {
	env := map[string]string{"EDITOR": `"my editor" --wait`}
	getenv := func(key string) string { return env[key] }
	found := map[string]string{"my editor": "/opt/my editor", "vim": "/usr/bin/vim"}

	args, ok := detectEditorCommandInternal("linux", getenv, fakeLookPath(found))
	if !ok || !reflect.DeepEqual(args, []string{"/opt/my editor", "--wait"}) {
		t.Fatalf("expected $EDITOR to win, got %v", args)
	}

	args, ok = detectEditorCommandInternal("linux", func(string) string { return "" }, fakeLookPath(found))
	if !ok || !reflect.DeepEqual(args, []string{"/usr/bin/vim"}) {
		t.Fatalf("expected vim fallback, got %v", args)
	}

	winFound := map[string]string{"notepad++.exe": `C:\npp.exe`}
	args, ok = detectEditorCommandInternal("windows", func(string) string { return "" }, fakeLookPath(winFound))
	if !ok || !reflect.DeepEqual(args, []string{`C:\npp.exe`}) {
		t.Fatalf("expected notepad++ fallback, got %v", args)
	}
}

func TestParseEditorCommand(t *testing.T) {
	tests := map[string][]string{
		"":                     nil,
		"vim":                  {"vim"},
		"  code --wait ":       {"code", "--wait"},
		`'sub l' -n "a 'b'"`:   {"sub l", "-n", "a 'b'"},
		`emacsclient -t -a ""`: {"emacsclient", "-t", "-a"},
	}
	for in, want := range tests {
		if got := parseEditorCommand(in); !reflect.DeepEqual(got, want) {
			t.Fatalf("parseEditorCommand(%q) = %v, want %v", in, got, want)
		}
	}
}
