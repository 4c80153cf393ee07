package tags

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kk-code-lab/rjump/internal/textindex"
)

func makeMatches(n int) []textindex.Match {
	out := make([]textindex.Match, n)
	for i := range out {
		out[i] = textindex.Match{Offset: i * 2, Length: 1}
	}
	return out
}

func mustAlphabet(t *testing.T, s string) Alphabet {
	t.Helper()
	a, err := NewAlphabet(s)
	if err != nil {
		t.Fatalf("NewAlphabet(%q): %v", s, err)
	}
	return a
}

func TestNewAlphabetRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"space", "ab c"},
		{"tab", "ab\tc"},
		{"upper case", "abC"},
		{"duplicate", "abca"},
		{"control", "ab\x01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewAlphabet(tt.in); !errors.Is(err, ErrInvalidAlphabet) {
				t.Fatalf("expected ErrInvalidAlphabet, got %v", err)
			}
		})
	}
}

func TestDefaultAlphabet(t *testing.T) {
	a := Default()
	if a.Size() != 25 {
		t.Fatalf("expected 25 runes, got %d", a.Size())
	}
	if a.Capacity() != 625 {
		t.Fatalf("expected capacity 625, got %d", a.Capacity())
	}
	if a.At(0) != 'a' || a.At(1) != 's' {
		t.Fatalf("expected home row first, got %q", a.String())
	}
	if a.Contains(' ') || !a.Contains('q') {
		t.Fatal("unexpected membership")
	}
}

func TestAssignSingleRuneTags(t *testing.T) {
	matches := []textindex.Match{{Offset: 0, Length: 3}, {Offset: 8, Length: 3}}
	table := Assign(matches, Default())

	want := []Entry{
		{Tag: "a", Match: matches[0]},
		{Tag: "s", Match: matches[1]},
	}
	if got := table.Entries(); !reflect.DeepEqual(got, want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	if table.TwoRune() {
		t.Fatal("two matches should not need two-rune tags")
	}
	if m, ok := table.Lookup("s"); !ok || m.Offset != 8 {
		t.Fatalf("Lookup(s) = %v,%v", m, ok)
	}
}

func TestAssignFullAlphabetStaysSingle(t *testing.T) {
	a := mustAlphabet(t, "abc")
	table := Assign(makeMatches(3), a)
	if table.TwoRune() || table.Len() != 3 {
		t.Fatalf("expected 3 single tags, got %v", table.Entries())
	}
}

func TestAssignTwoRuneGroups(t *testing.T) {
	a := mustAlphabet(t, "abc")
	table := Assign(makeMatches(7), a)

	var tags []Tag
	for _, e := range table.Entries() {
		tags = append(tags, e.Tag)
	}
	want := []Tag{"aa", "ab", "ac", "ba", "bb", "bc", "ca"}
	if !reflect.DeepEqual(tags, want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	if !table.HasPrefix('a') || !table.HasPrefix('c') {
		t.Fatal("expected a and c to be group prefixes")
	}
	if _, ok := table.Lookup("a"); ok {
		t.Fatal("single rune must not resolve while two-rune tags are active")
	}
	if m, ok := table.Lookup("ca"); !ok || m.Offset != 12 {
		t.Fatalf("Lookup(ca) = %v,%v", m, ok)
	}
}

func TestAssignDropsMatchesBeyondCapacity(t *testing.T) {
	a := mustAlphabet(t, "ab")
	table := Assign(makeMatches(6), a)
	if table.Len() != 4 {
		t.Fatalf("expected 4 tagged matches, got %d", table.Len())
	}
	if table.Dropped() != 2 || table.MatchCount() != 6 {
		t.Fatalf("dropped=%d matchCount=%d", table.Dropped(), table.MatchCount())
	}
	for _, e := range table.Entries() {
		if e.Match.Offset >= 8 {
			t.Fatalf("match %v beyond capacity was tagged", e.Match)
		}
	}
}

func TestAssignEmptyInputs(t *testing.T) {
	if table := Assign(nil, Default()); !table.Empty() || table.Entries() != nil {
		t.Fatal("expected empty table for no matches")
	}
	table := Assign(makeMatches(3), Alphabet{})
	if !table.Empty() || table.Dropped() != 3 {
		t.Fatalf("expected every match dropped for an empty alphabet, got %d", table.Dropped())
	}
	var zero Table
	if _, ok := zero.Lookup("a"); ok || zero.HasPrefix('a') {
		t.Fatal("zero table must resolve nothing")
	}
}

func TestScenarioThirtyMatchesNeedTwoRuneTags(t *testing.T) {
	doc := textindex.Normalize("e e e e e e e e e e e e e e e e e e e e e e e e e e e e e e")
	matches := doc.Find("e")
	if len(matches) != 30 {
		t.Fatalf("expected 30 matches, got %d", len(matches))
	}
	table := Assign(matches, Default())
	if !table.TwoRune() {
		t.Fatal("expected two-rune tags for 30 matches")
	}
	if !table.HasPrefix('a') || !table.HasPrefix('s') || table.HasPrefix('d') {
		t.Fatal("expected exactly prefixes a and s")
	}
	if m, ok := table.Lookup("sa"); !ok || m.Offset != 50 {
		t.Fatalf("Lookup(sa) = %v,%v", m, ok)
	}
}
