package textutil

import "testing"

func TestRuneCells(t *testing.T) {
	tests := []struct {
		name   string
		r      rune
		column int
		want   int
	}{
		{"ascii", 'a', 0, 1},
		{"wide", '界', 3, 2},
		{"tab at start", '\t', 0, 4},
		{"tab mid stop", '\t', 5, 3},
		{"combining mark keeps a cell", '\u0301', 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RuneCells(tt.r, tt.column, DefaultTabWidth); got != tt.want {
				t.Fatalf("RuneCells(%q,%d) = %d, want %d", tt.r, tt.column, got, tt.want)
			}
		})
	}
}

func TestColumn(t *testing.T) {
	line := []rune("\tab界c")
	tests := []struct {
		idx  int
		want int
	}{
		{0, 0},
		{1, 4},
		{3, 6},
		{4, 8},
		{99, 9},
	}
	for _, tt := range tests {
		if got := Column(line, tt.idx, DefaultTabWidth); got != tt.want {
			t.Fatalf("Column(%d) = %d, want %d", tt.idx, got, tt.want)
		}
	}
	if got := Column(line, 1, 2); got != 2 {
		t.Fatalf("expected custom tab width to apply, got %d", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		width  int
		expect string
	}{
		{"fits without truncation", "query: foo", 20, "query: foo"},
		{"adds ellipsis when needed", "verylongname", 6, "veryl…"},
		{"only ellipsis when width too small", "example", 1, "…"},
		{"multi-byte characters respected", "你好世界", 5, "你好…"},
		{"returns empty when width is zero", "anything", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.width); got != tt.expect {
				t.Fatalf("expected %q, got %q (width %d)", tt.expect, got, tt.width)
			}
		})
	}
}
