package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rjump/internal/debuglog"
	statepkg "github.com/kk-code-lab/rjump/internal/state"
	"github.com/kk-code-lab/rjump/internal/textindex"
	textutil "github.com/kk-code-lab/rjump/internal/textutil"
)

// chromeRows is the header plus the status and footer lines.
const chromeRows = 3

// ViewportHeight returns how many document lines fit on a screen of
// screenHeight rows.
func ViewportHeight(screenHeight int) int {
	if screenHeight <= chromeRows {
		return 0
	}
	return screenHeight - chromeRows
}

// Frame is everything outside the jump session that Render draws.
type Frame struct {
	Title    string
	Document textindex.Document
	Caret    int
	// Selection is [SelStart, SelEnd); empty when both are equal.
	SelStart    int
	SelEnd      int
	TopLine     int
	TabWidth    int
	HelpVisible bool
	Message     string
	IsError     bool
}

func (f Frame) selected(offset int) bool {
	return f.SelStart != f.SelEnd && offset >= f.SelStart && offset < f.SelEnd
}

// Renderer handles all UI rendering. It is also the session's overlay
// renderer: ShowTags records the latest tags and Render draws them.
type Renderer struct {
	screen  tcell.Screen
	theme   ColorTheme
	overlay statepkg.Overlay
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// ShowTags stores overlay for the next Render.
func (r *Renderer) ShowTags(overlay statepkg.Overlay) error {
	r.overlay = overlay
	debuglog.Debugf("overlay %s: %d tags, pending=%q", overlay.State, overlay.Tags.Len(), overlay.Pending)
	return nil
}

// Overlay returns the last overlay passed to ShowTags.
func (r *Renderer) Overlay() statepkg.Overlay {
	return r.overlay
}

// Render draws the entire UI for frame and the current overlay.
func (r *Renderer) Render(frame Frame) {
	r.screen.Clear()
	w, h := r.screen.Size()

	if frame.HelpVisible {
		r.drawHelpOverlay(w, h)
		r.screen.Show()
		return
	}

	vp := Viewport{
		TopLine:  frame.TopLine,
		Height:   ViewportHeight(h),
		Width:    w,
		TabWidth: frame.TabWidth,
	}
	r.drawHeader(frame, w)
	r.drawDocument(frame, vp)
	r.drawTags(frame.Document, vp)
	r.drawStatusLine(frame, w, h)
	r.screen.Show()
}

// drawHeader renders the top bar with title and caret position
func (r *Renderer) drawHeader(frame Frame, w int) {
	if w <= 0 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)

	line, col := frame.Document.LineCol(frame.Caret)
	position := formatPosition(line, col, frame.Document.LineCount())
	posWidth := textutil.DisplayWidth(position)

	titleWidth := w - posWidth - 1
	title := textutil.SanitizeTerminalText("rjump " + frame.Title)
	x := r.drawTextLine(0, 0, titleWidth, textutil.Truncate(title, titleWidth), style.Bold(true))
	r.fillLine(x, 0, w, style)
	if posWidth < w {
		r.drawTextLine(w-posWidth, 0, posWidth, position, style)
	}
}

func (r *Renderer) matchOffsets(vp Viewport, doc textindex.Document) map[int]bool {
	if r.overlay.State == statepkg.Idle {
		return nil
	}
	start, end := VisibleRange(doc, vp)
	marked := make(map[int]bool)
	for _, entry := range r.overlay.Tags.Entries() {
		m := entry.Match
		if m.End() <= start || m.Offset >= end {
			continue
		}
		for off := m.Offset; off < m.End(); off++ {
			marked[off] = true
		}
	}
	return marked
}

// drawDocument renders the visible lines with caret, selection and match
// highlights.
func (r *Renderer) drawDocument(frame Frame, vp Viewport) {
	base := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	caretStyle := base.Background(r.theme.CaretBg).Foreground(r.theme.CaretFg)
	selStyle := base.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
	matchStyle := base.Background(r.theme.MatchBg).Foreground(r.theme.MatchFg).Underline(true)

	doc := frame.Document
	marked := r.matchOffsets(vp, doc)

	for row := 0; row < vp.Height; row++ {
		y := row + 1
		line := vp.TopLine + row
		if line >= doc.LineCount() {
			if line == 0 && frame.Caret == 0 {
				r.drawCells(0, y, vp.Width, 1, ' ', caretStyle)
				r.fillLine(1, y, vp.Width, base)
				continue
			}
			r.drawCells(0, y, vp.Width, 1, '~', base.Foreground(r.theme.DimFg))
			r.fillLine(1, y, vp.Width, base)
			continue
		}

		lineStart := doc.LineStart(line)
		column := 0
		for i, ru := range doc.Line(line) {
			if column >= vp.Width {
				break
			}
			offset := lineStart + i
			cells := textutil.RuneCells(ru, column, vp.TabWidth)
			style := base
			switch {
			case offset == frame.Caret:
				style = caretStyle
			case frame.selected(offset):
				style = selStyle
			case marked[offset]:
				style = matchStyle
			}
			r.drawCells(column, y, vp.Width, cells, textutil.CellRune(ru), style)
			column += cells
		}

		// The caret may sit on the line terminator or at the very end.
		if frame.Caret == doc.LineEnd(line) && column < vp.Width {
			r.drawCells(column, y, vp.Width, 1, ' ', caretStyle)
			column++
		}
		r.fillLine(column, y, vp.Width, base)
	}
}

// drawTags paints tag labels over the start of each visible match.
func (r *Renderer) drawTags(doc textindex.Document, vp Viewport) {
	if r.overlay.State == statepkg.Idle {
		return
	}
	tagStyle := tcell.StyleDefault.Background(r.theme.TagBg).Foreground(r.theme.TagFg).Bold(true)
	typedStyle := tagStyle.Foreground(r.theme.TagTypedFg).Bold(false)

	for _, p := range PlaceTags(doc, r.overlay, vp) {
		x := p.X
		for i, ru := range p.Tag.Runes() {
			if x >= vp.Width {
				break
			}
			style := tagStyle
			if i < p.Typed {
				style = typedStyle
			}
			r.screen.SetContent(x, p.Y+1, ru, nil, style)
			x++
		}
	}
}

// drawStatusLine renders the session status and the contextual help.
func (r *Renderer) drawStatusLine(frame Frame, w, h int) {
	if h < chromeRows || w <= 0 {
		return
	}
	normalStyle := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)

	statusY := h - 2
	status := formatSessionStatus(r.overlay)
	statusStyle := normalStyle.Bold(true)
	if frame.Message != "" {
		if status != "" {
			status += " · "
		}
		status += frame.Message
		if frame.IsError {
			statusStyle = statusStyle.Foreground(r.theme.ErrorFg)
		}
	}
	status = textutil.Truncate(textutil.SanitizeTerminalText(" "+status), w)
	x := r.drawTextLine(0, statusY, w, status, statusStyle)
	r.fillLine(x, statusY, w, normalStyle)

	helpText := textutil.SanitizeTerminalText(buildFooterHelpText(r.overlay))
	helpText = textutil.Truncate(helpText, w)
	x = r.drawTextLine(0, h-1, w, helpText, normalStyle.Foreground(r.theme.DimFg))
	r.fillLine(x, h-1, w, normalStyle)
}
