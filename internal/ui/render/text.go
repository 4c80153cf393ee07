package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

func runeWidth(ru rune) int {
	w := runewidth.RuneWidth(ru)
	if w < 0 {
		return 0
	}
	return w
}

// drawTextLine draws text from startX, keeping combining runes attached to
// their base, and returns the column after the last drawn cell.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		mainc := runes[i]
		w := runeWidth(mainc)
		if x-startX+w > maxWidth {
			break
		}
		i++

		var combc []rune
		for i < len(runes) && runeWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}

// fillLine paints the rest of row y from x with blanks.
func (r *Renderer) fillLine(x, y, w int, style tcell.Style) {
	for ; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawCells draws ru over cells columns starting at x, padding with blanks.
func (r *Renderer) drawCells(x, y, maxX, cells int, ru rune, style tcell.Style) {
	if x >= maxX {
		return
	}
	if runeWidth(ru) == 2 && x+1 >= maxX {
		ru = ' '
	}
	r.screen.SetContent(x, y, ru, nil, style)
	start := 1
	if runeWidth(ru) == 2 {
		start = 2
	}
	for c := start; c < cells && x+c < maxX; c++ {
		r.screen.SetContent(x+c, y, ' ', nil, style)
	}
}
