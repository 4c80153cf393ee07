package app

import (
	"errors"
	"fmt"

	"github.com/kk-code-lab/rjump/internal/textindex"
)

// ErrOffsetOutOfRange is returned for caret or selection offsets outside
// the document.
var ErrOffsetOutOfRange = errors.New("offset out of range")

// Buffer is the viewer's text with a caret and a selection. It is the
// document source and jump executor of the jump session.
type Buffer struct {
	doc    textindex.Document
	caret  int
	selLo  int
	selHi  int
	extend bool
}

// NewBuffer creates a buffer over text with the caret at the start.
func NewBuffer(text string) *Buffer {
	return &Buffer{doc: textindex.Normalize(text)}
}

// Text returns the normalized document text.
func (b *Buffer) Text() (string, error) {
	return b.doc.Text(), nil
}

// Document returns the indexed text.
func (b *Buffer) Document() textindex.Document {
	return b.doc
}

// Replace swaps in new text. The caret is clamped and the selection cleared.
func (b *Buffer) Replace(text string) {
	b.doc = textindex.Normalize(text)
	if b.caret > b.doc.Len() {
		b.caret = b.doc.Len()
	}
	b.clearSelection()
}

func (b *Buffer) Caret() int {
	return b.caret
}

// MoveCaret places the caret at offset. A selection made by
// ExtendSelection just before survives the move; any other is cleared.
func (b *Buffer) MoveCaret(offset int) error {
	if err := b.check(offset); err != nil {
		return err
	}
	b.caret = offset
	if b.extend {
		b.extend = false
		return nil
	}
	b.clearSelection()
	return nil
}

// ExtendSelection selects the span between from and to.
func (b *Buffer) ExtendSelection(from, to int) error {
	if err := b.check(from); err != nil {
		return err
	}
	if err := b.check(to); err != nil {
		return err
	}
	if from > to {
		from, to = to, from
	}
	b.selLo, b.selHi = from, to
	b.extend = true
	return nil
}

// SelectWordAt selects the word containing offset.
func (b *Buffer) SelectWordAt(offset int) error {
	if err := b.check(offset); err != nil {
		return err
	}
	b.selLo, b.selHi = b.doc.WordBounds(offset)
	b.extend = false
	return nil
}

// Selection returns the selected span [lo, hi). It is empty when lo == hi.
func (b *Buffer) Selection() (int, int) {
	return b.selLo, b.selHi
}

// SelectedText returns the selection, or the word under the caret when
// nothing is selected.
func (b *Buffer) SelectedText() string {
	lo, hi := b.selLo, b.selHi
	if lo == hi {
		lo, hi = b.doc.WordBounds(b.caret)
	}
	return b.doc.Slice(lo, hi)
}

func (b *Buffer) clearSelection() {
	b.selLo, b.selHi = b.caret, b.caret
	b.extend = false
}

func (b *Buffer) check(offset int) error {
	if offset < 0 || offset > b.doc.Len() {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrOffsetOutOfRange, offset, b.doc.Len())
	}
	return nil
}
