package search

import (
	"sort"

	"github.com/kk-code-lab/rjump/internal/debuglog"
	"github.com/kk-code-lab/rjump/internal/textindex"
)

// Kind selects how a query is matched against a document.
type Kind int

const (
	// Literal matches the query text, case-insensitively.
	Literal Kind = iota
	// LineLead matches the first non-blank rune of every line.
	LineLead
	// WhitespaceRun matches every run of spaces and tabs.
	WhitespaceRun
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case LineLead:
		return textindex.LineLead.String()
	case WhitespaceRun:
		return textindex.WhitespaceRun.String()
	default:
		return "unknown"
	}
}

// Structural reports whether the kind ignores the query text.
func (k Kind) Structural() bool {
	return k == LineLead || k == WhitespaceRun
}

// Range limits results to offsets in [Start, End).
type Range struct {
	Start int
	End   int
}

func (r Range) contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Results is delivered to every hook when a search completes.
type Results struct {
	Query   string
	Kind    Kind
	Matches []textindex.Match
}

// Engine runs searches over document snapshots. It keeps no match state
// between calls; every search scans the whole document again.
type Engine struct {
	hooks   []func(Results)
	visible Range
	limited bool
}

// NewEngine creates an engine with no hooks and no visible range.
func NewEngine() *Engine {
	return &Engine{}
}

// OnResults registers fn to be called synchronously after each search.
func (e *Engine) OnResults(fn func(Results)) {
	if fn == nil {
		return
	}
	e.hooks = append(e.hooks, fn)
}

// SetVisible restricts future results to r. An empty r yields no results.
func (e *Engine) SetVisible(r Range) {
	if r.End < r.Start {
		r.End = r.Start
	}
	e.visible = r
	e.limited = true
}

// ClearVisible lifts the result range so searches cover the whole document.
func (e *Engine) ClearVisible() {
	e.visible = Range{}
	e.limited = false
}

// Visible returns the current result range and whether one is set.
func (e *Engine) Visible() (Range, bool) {
	return e.visible, e.limited
}

// Search finds the matches for query in doc, ordered by offset.
func (e *Engine) Search(doc textindex.Document, query string, kind Kind) []textindex.Match {
	var matches []textindex.Match
	switch kind {
	case Literal:
		matches = doc.Find(query)
	case LineLead:
		matches = doc.FindStructural(textindex.LineLead)
	case WhitespaceRun:
		matches = doc.FindStructural(textindex.WhitespaceRun)
	}
	matches = e.clip(matches, doc.Len())
	matches = dedupe(matches)

	debuglog.Debugf("search kind=%s query=%q matches=%d", kind, query, len(matches))

	results := Results{Query: query, Kind: kind, Matches: matches}
	for _, hook := range e.hooks {
		hook(results)
	}
	return matches
}

func (e *Engine) clip(matches []textindex.Match, docLen int) []textindex.Match {
	if !e.limited || len(matches) == 0 {
		return matches
	}
	visible := e.visible
	// A match at the very end of the document is still on screen when the
	// range reaches the end.
	if visible.End >= docLen {
		visible.End = docLen + 1
	}
	kept := matches[:0:0]
	for _, m := range matches {
		if visible.contains(m.Offset) {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

func dedupe(matches []textindex.Match) []textindex.Match {
	if len(matches) < 2 {
		return matches
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Offset < matches[j].Offset
	})
	out := matches[:1]
	for _, m := range matches[1:] {
		if m.Offset == out[len(out)-1].Offset {
			continue
		}
		out = append(out, m)
	}
	return out
}
