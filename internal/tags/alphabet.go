package tags

import (
	"errors"
	"fmt"
	"unicode"
)

// DefaultAlphabet lists the tag runes home row first. It holds 25 runes so
// two-rune tags start once more than 25 matches are visible.
const DefaultAlphabet = "asdfghjklqwertyuiopzxcvbn"

// ErrInvalidAlphabet is returned by NewAlphabet for unusable rune sets.
var ErrInvalidAlphabet = errors.New("invalid tag alphabet")

// Alphabet is an ordered set of runes that tags are built from.
type Alphabet struct {
	runes []rune
	index map[rune]int
}

// NewAlphabet validates s and returns it as an Alphabet. Runes must be
// distinct, lower-case, printable and not whitespace.
func NewAlphabet(s string) (Alphabet, error) {
	if s == "" {
		return Alphabet{}, fmt.Errorf("%w: empty", ErrInvalidAlphabet)
	}
	runes := []rune(s)
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		switch {
		case unicode.IsSpace(r):
			return Alphabet{}, fmt.Errorf("%w: whitespace at position %d", ErrInvalidAlphabet, i)
		case !unicode.IsPrint(r):
			return Alphabet{}, fmt.Errorf("%w: unprintable rune %U", ErrInvalidAlphabet, r)
		case unicode.ToLower(r) != r:
			return Alphabet{}, fmt.Errorf("%w: %q is not lower case", ErrInvalidAlphabet, r)
		}
		if _, dup := index[r]; dup {
			return Alphabet{}, fmt.Errorf("%w: duplicate %q", ErrInvalidAlphabet, r)
		}
		index[r] = i
	}
	return Alphabet{runes: runes, index: index}, nil
}

// Default returns DefaultAlphabet.
func Default() Alphabet {
	a, err := NewAlphabet(DefaultAlphabet)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns the number of runes.
func (a Alphabet) Size() int {
	return len(a.runes)
}

// Capacity returns how many matches can receive a tag.
func (a Alphabet) Capacity() int {
	return len(a.runes) * len(a.runes)
}

// At returns the rune at position i.
func (a Alphabet) At(i int) rune {
	return a.runes[i]
}

// Contains reports whether r belongs to the alphabet.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

func (a Alphabet) String() string {
	return string(a.runes)
}
