package render

import (
	"github.com/kk-code-lab/rjump/internal/state"
	"github.com/kk-code-lab/rjump/internal/tags"
	"github.com/kk-code-lab/rjump/internal/textindex"
	"github.com/kk-code-lab/rjump/internal/textutil"
)

// TagPlacement is a tag positioned in viewport coordinates.
type TagPlacement struct {
	X, Y   int
	Tag    tags.Tag
	Offset int
	// Typed is how many leading runes of Tag were already entered.
	Typed int
}

// Viewport is the part of the document on screen.
type Viewport struct {
	TopLine  int
	Height   int
	Width    int
	TabWidth int
}

func (v Viewport) visibleLine(line int) bool {
	return line >= v.TopLine && line < v.TopLine+v.Height
}

// PlaceTags positions every tag of overlay that falls inside vp. While a
// prefix is pending only the tags starting with it are kept.
func PlaceTags(doc textindex.Document, overlay state.Overlay, vp Viewport) []TagPlacement {
	entries := overlay.Tags.Entries()
	if len(entries) == 0 || vp.Height <= 0 || vp.Width <= 0 {
		return nil
	}

	placements := make([]TagPlacement, 0, len(entries))
	for _, entry := range entries {
		runes := entry.Tag.Runes()
		typed := 0
		if overlay.Pending != 0 {
			if runes[0] != overlay.Pending {
				continue
			}
			typed = 1
		}
		offset := entry.Match.Offset
		if offset > doc.Len() {
			continue
		}
		line, col := doc.LineCol(offset)
		if !vp.visibleLine(line) {
			continue
		}
		x := textutil.Column(doc.Line(line), col, vp.TabWidth)
		if x >= vp.Width {
			continue
		}
		placements = append(placements, TagPlacement{
			X:      x,
			Y:      line - vp.TopLine,
			Tag:    entry.Tag,
			Offset: offset,
			Typed:  typed,
		})
	}
	return placements
}

// VisibleRange returns the rune offsets [start, end) covered by vp. The
// range includes the terminator of the last visible line.
func VisibleRange(doc textindex.Document, vp Viewport) (int, int) {
	if doc.Empty() || vp.Height <= 0 {
		return 0, 0
	}
	start := doc.LineStart(vp.TopLine)
	next := vp.TopLine + vp.Height
	if next >= doc.LineCount() {
		return start, doc.Len()
	}
	return start, doc.LineStart(next)
}
