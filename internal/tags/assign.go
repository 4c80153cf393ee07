package tags

import (
	"github.com/kk-code-lab/rjump/internal/textindex"
)

// Tag is the keystroke sequence, one or two runes, that selects a match.
type Tag string

// Runes returns the tag as runes.
func (t Tag) Runes() []rune {
	return []rune(string(t))
}

// Entry pairs a tag with the match it selects.
type Entry struct {
	Tag   Tag
	Match textindex.Match
}

// Table maps tags to matches. Within one table every tag has the same
// length, which keeps the tag set prefix-free. The zero Table is empty.
type Table struct {
	entries  []Entry
	byTag    map[Tag]int
	prefixes map[rune]struct{}
	matches  int
	dropped  int
}

// Assign tags matches in order. Up to alphabet-size matches get one rune
// each. Beyond that, matches are grouped alphabet-size at a time; each
// group takes the next alphabet rune as its prefix and each member the
// next rune as its second character. Matches past the capacity of the
// alphabet are left untagged.
func Assign(matches []textindex.Match, alphabet Alphabet) Table {
	size := alphabet.Size()
	table := Table{matches: len(matches)}
	if size == 0 || len(matches) == 0 {
		table.dropped = len(matches)
		return table
	}

	n := len(matches)
	if capacity := alphabet.Capacity(); n > capacity {
		table.dropped = n - capacity
		n = capacity
	}

	table.entries = make([]Entry, 0, n)
	table.byTag = make(map[Tag]int, n)

	if len(matches) <= size {
		for i := 0; i < n; i++ {
			table.add(Tag(string(alphabet.At(i))), matches[i])
		}
		return table
	}

	table.prefixes = make(map[rune]struct{}, (n+size-1)/size)
	for i := 0; i < n; i++ {
		group, member := i/size, i%size
		prefix := alphabet.At(group)
		table.prefixes[prefix] = struct{}{}
		table.add(Tag(string([]rune{prefix, alphabet.At(member)})), matches[i])
	}
	return table
}

func (t *Table) add(tag Tag, m textindex.Match) {
	t.byTag[tag] = len(t.entries)
	t.entries = append(t.entries, Entry{Tag: tag, Match: m})
}

// Lookup returns the match for tag.
func (t Table) Lookup(tag Tag) (textindex.Match, bool) {
	idx, ok := t.byTag[tag]
	if !ok {
		return textindex.Match{}, false
	}
	return t.entries[idx].Match, true
}

// HasPrefix reports whether r starts at least one two-rune tag.
func (t Table) HasPrefix(r rune) bool {
	_, ok := t.prefixes[r]
	return ok
}

// TwoRune reports whether the table uses two-rune tags.
func (t Table) TwoRune() bool {
	return len(t.prefixes) > 0
}

// Len returns the number of tagged matches.
func (t Table) Len() int {
	return len(t.entries)
}

// Empty reports whether no match is tagged.
func (t Table) Empty() bool {
	return len(t.entries) == 0
}

// MatchCount returns the number of matches passed to Assign, tagged or not.
func (t Table) MatchCount() int {
	return t.matches
}

// Dropped returns how many matches did not fit the alphabet's capacity.
func (t Table) Dropped() int {
	return t.dropped
}

// Entries returns a copy of the entries in match order.
func (t Table) Entries() []Entry {
	if len(t.entries) == 0 {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
