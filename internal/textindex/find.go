package textindex

// Structure selects a structural pattern for FindStructural.
type Structure int

const (
	// LineLead matches the first non-blank rune of every line, or the end of
	// the line when it holds only whitespace.
	LineLead Structure = iota
	// WhitespaceRun matches every maximal run of spaces and tabs.
	WhitespaceRun
)

func (s Structure) String() string {
	switch s {
	case LineLead:
		return "line-lead"
	case WhitespaceRun:
		return "whitespace-run"
	default:
		return "unknown"
	}
}

// Find returns every case-insensitive occurrence of query, left to right.
// A scan resumes at the end of the previous match, so overlapping
// occurrences are not reported separately.
func (d Document) Find(query string) []Match {
	needle := FoldQuery(query)
	if len(needle) == 0 || len(d.folded) < len(needle) {
		return nil
	}

	var matches []Match
	searchFrom := 0
	for {
		idx := indexRunes(d.folded, needle, searchFrom)
		if idx == -1 {
			break
		}
		matches = append(matches, Match{Offset: idx, Length: len(needle)})
		searchFrom = idx + len(needle)
	}
	return matches
}

func indexRunes(haystack, needle []rune, from int) int {
	last := len(haystack) - len(needle)
	for i := from; i <= last; i++ {
		if haystack[i] != needle[0] {
			continue
		}
		if equalRunes(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func equalRunes(a, b []rune) bool {
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// FindStructural returns the matches for a structural pattern.
func (d Document) FindStructural(kind Structure) []Match {
	if len(d.folded) == 0 {
		return nil
	}
	switch kind {
	case LineLead:
		return d.lineLeads()
	case WhitespaceRun:
		return d.whitespaceRuns()
	default:
		return nil
	}
}

func (d Document) lineLeads() []Match {
	matches := make([]Match, 0, len(d.lineStarts))
	for line := range d.lineStarts {
		end := d.LineEnd(line)
		i := d.LineStart(line)
		for i < end && isBlank(d.folded[i]) {
			i++
		}
		if i == end {
			matches = append(matches, Match{Offset: end})
			continue
		}
		matches = append(matches, Match{Offset: i, Length: 1})
	}
	return matches
}

func (d Document) whitespaceRuns() []Match {
	var matches []Match
	for i := 0; i < len(d.folded); {
		if !isBlank(d.folded[i]) {
			i++
			continue
		}
		start := i
		for i < len(d.folded) && isBlank(d.folded[i]) {
			i++
		}
		matches = append(matches, Match{Offset: start, Length: i - start})
	}
	return matches
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}
