package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const DefaultTabWidth = 4

// RuneCells returns how many terminal cells r takes when drawn at column.
// Tabs stop at the next multiple of tabWidth; zero-width runes still get
// one cell so every rune of the document stays addressable on screen.
func RuneCells(r rune, column, tabWidth int) int {
	if r == '\t' {
		if tabWidth <= 0 {
			tabWidth = DefaultTabWidth
		}
		return tabWidth - (column % tabWidth)
	}
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		w = 1
	}
	return w
}

// Column returns the screen column where line[idx] starts. An idx past the
// end of line gives the column just after the last rune.
func Column(line []rune, idx, tabWidth int) int {
	if idx > len(line) {
		idx = len(line)
	}
	column := 0
	for _, r := range line[:idx] {
		column += RuneCells(r, column, tabWidth)
	}
	return column
}

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += RuneCells(ru, width, DefaultTabWidth)
	}
	return width
}

// Truncate shortens text to fit width cells, ending with an ellipsis when
// anything was cut.
func Truncate(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}
	if DisplayWidth(text) <= width {
		return text
	}

	const ellipsis = "…"
	ellipsisWidth := runewidth.StringWidth(ellipsis)
	if width <= ellipsisWidth {
		return ellipsis
	}

	available := width - ellipsisWidth
	var builder strings.Builder
	current := 0
	for _, ru := range text {
		w := RuneCells(ru, current, DefaultTabWidth)
		if current+w > available {
			break
		}
		builder.WriteRune(ru)
		current += w
	}
	builder.WriteString(ellipsis)
	return builder.String()
}
