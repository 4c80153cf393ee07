package textindex

import (
	"sort"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Match is a span of the document measured in runes.
type Match struct {
	Offset int
	Length int
}

// End returns the offset one past the last rune of the match.
func (m Match) End() int {
	return m.Offset + m.Length
}

// Document is a read-only snapshot of text prepared for matching.
// The folded copy always has the same rune length as the text, so an
// offset found in one is valid in the other.
type Document struct {
	text       []rune
	folded     []rune
	lineStarts []int
}

// Normalize converts text to NFC and folds its case once.
func Normalize(text string) Document {
	if text == "" {
		return Document{}
	}
	runes := []rune(norm.NFC.String(text))
	folded := make([]rune, len(runes))
	lineStarts := []int{0}
	for i, r := range runes {
		folded[i] = foldRune(r)
		if r == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return Document{text: runes, folded: folded, lineStarts: lineStarts}
}

func foldRune(r rune) rune {
	return unicode.ToLower(r)
}

// FoldQuery applies the document's case folding to a query.
func FoldQuery(query string) []rune {
	if query == "" {
		return nil
	}
	runes := []rune(norm.NFC.String(query))
	for i, r := range runes {
		runes[i] = foldRune(r)
	}
	return runes
}

// Len reports the document length in runes.
func (d Document) Len() int {
	return len(d.text)
}

// Empty reports whether the document has no text.
func (d Document) Empty() bool {
	return len(d.text) == 0
}

// Text returns the normalized, unfolded text.
func (d Document) Text() string {
	return string(d.text)
}

// Folded returns the case-folded text.
func (d Document) Folded() string {
	return string(d.folded)
}

// RuneAt returns the rune at offset, or false when offset is out of range.
func (d Document) RuneAt(offset int) (rune, bool) {
	if offset < 0 || offset >= len(d.text) {
		return 0, false
	}
	return d.text[offset], true
}

// Slice returns the unfolded text in [start, end), clamped to the document.
func (d Document) Slice(start, end int) string {
	start = clamp(start, 0, len(d.text))
	end = clamp(end, start, len(d.text))
	return string(d.text[start:end])
}

// LineCount returns the number of lines. An empty document has none.
func (d Document) LineCount() int {
	if len(d.text) == 0 {
		return 0
	}
	return len(d.lineStarts)
}

// LineStart returns the offset of the first rune of line.
func (d Document) LineStart(line int) int {
	if line <= 0 || len(d.lineStarts) == 0 {
		return 0
	}
	if line >= len(d.lineStarts) {
		return len(d.text)
	}
	return d.lineStarts[line]
}

// LineEnd returns the offset of the newline ending line, or the document
// length for the last line. A trailing carriage return is excluded.
func (d Document) LineEnd(line int) int {
	end := len(d.text)
	if line+1 < len(d.lineStarts) {
		end = d.lineStarts[line+1] - 1
	}
	start := d.LineStart(line)
	if end > start && d.text[end-1] == '\r' {
		end--
	}
	return end
}

// Line returns the runes of line without its terminator.
func (d Document) Line(line int) []rune {
	if line < 0 || line >= d.LineCount() {
		return nil
	}
	return d.text[d.LineStart(line):d.LineEnd(line)]
}

// LineCol maps an offset to a zero-based line and rune column.
func (d Document) LineCol(offset int) (int, int) {
	if len(d.lineStarts) == 0 {
		return 0, 0
	}
	offset = clamp(offset, 0, len(d.text))
	line := sort.Search(len(d.lineStarts), func(i int) bool {
		return d.lineStarts[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}
	return line, offset - d.lineStarts[line]
}

// WordBounds returns the [start, end) span of the word segment containing
// offset, using Unicode word boundaries.
func (d Document) WordBounds(offset int) (int, int) {
	if offset < 0 || offset >= len(d.text) {
		return offset, offset
	}
	line, _ := d.LineCol(offset)
	base := d.LineStart(line)
	rest := string(d.text[base:d.LineEnd(line)])
	pos := base
	state := -1
	var word string
	for rest != "" {
		word, rest, state = uniseg.FirstWordInString(rest, state)
		n := len([]rune(word))
		if offset < pos+n {
			return pos, pos + n
		}
		pos += n
	}
	return offset, offset
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
