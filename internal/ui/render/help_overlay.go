package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	textutil "github.com/kk-code-lab/rjump/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

func buildHelpOverlayLines() []string {
	sections := []helpOverlaySection{
		{
			title: "Search & Jump",
			entries: []helpOverlayEntry{
				{keys: "/", desc: "Start a search"},
				{keys: "↵", desc: "Stop typing, keep the tags"},
				{keys: "Ctrl+L", desc: "Tag every line start"},
				{keys: "Ctrl+W", desc: "Tag whitespace runs"},
				{keys: "tag", desc: "Jump to the tagged match"},
				{keys: "Shift+tag", desc: "Extend the selection to the match"},
				{keys: "Alt+tag", desc: "Jump without selecting"},
				{keys: "Ctrl+T", desc: "Toggle target mode (select the word)"},
				{keys: "Esc", desc: "Cancel"},
			},
		},
		{
			title: "Navigation",
			entries: []helpOverlayEntry{
				{keys: "↑/↓ j/k", desc: "Scroll one line"},
				{keys: "PgUp/PgDn", desc: "Scroll one page"},
				{keys: "Home/End g/G", desc: "Go to start or end"},
			},
		},
		{
			title: "Actions",
			entries: []helpOverlayEntry{
				{keys: "y", desc: "Yank selection to clipboard"},
				{keys: "e", desc: "Open in external editor ($EDITOR)"},
			},
		},
		{
			title: "Exit",
			entries: []helpOverlayEntry{
				{keys: "q", desc: "Quit"},
				{keys: "Ctrl+Z", desc: "Suspend"},
				{keys: "Ctrl+C", desc: "Quit immediately"},
				{keys: "?", desc: "Close this help"},
			},
		},
	}

	lines := make([]string, 0, 32)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}

	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	key := textutil.SanitizeTerminalText(entry.keys)
	desc := textutil.SanitizeTerminalText(entry.desc)
	return fmt.Sprintf("  %-14s %s", key, desc)
}

func (r *Renderer) drawHelpOverlay(w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, baseStyle)
		}
	}

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Bold(true)
	titleStart := 0
	titleWidth := textutil.DisplayWidth(title)
	if w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	bodyStyle := baseStyle
	lines := buildHelpOverlayLines()
	row := 2
	maxRow := h - 1
	for _, line := range lines {
		if row >= maxRow {
			break
		}
		text := strings.TrimRight(line, " ")
		text = textutil.Truncate(text, w-4)
		r.drawTextLine(2, row, w-4, text, bodyStyle)
		row++
	}

	footer := "? toggle · Esc/q close"
	if len(footer) > 0 && h > 0 {
		footerText := textutil.Truncate(footer, w)
		r.drawTextLine(0, h-1, w, footerText, headerStyle)
	}
}
