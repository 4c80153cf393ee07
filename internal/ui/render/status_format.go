package render

import (
	"fmt"
	"strings"

	statepkg "github.com/kk-code-lab/rjump/internal/state"
)

// formatSessionStatus describes the jump session for the status line.
func formatSessionStatus(overlay statepkg.Overlay) string {
	var parts []string
	switch overlay.State {
	case statepkg.Idle:
		if overlay.TargetMode {
			return "target mode"
		}
		return ""
	case statepkg.Searching:
		parts = append(parts, "/"+overlay.Query, formatMatchCount(overlay))
	case statepkg.Jumping:
		parts = append(parts, "jump", formatMatchCount(overlay))
	case statepkg.AwaitingSecondChar:
		parts = append(parts, fmt.Sprintf("jump %c_", overlay.Pending), formatMatchCount(overlay))
	}
	if overlay.TargetMode {
		parts = append(parts, "target")
	}
	return strings.Join(parts, " · ")
}

func formatMatchCount(overlay statepkg.Overlay) string {
	total := overlay.Tags.MatchCount()
	label := "matches"
	if total == 1 {
		label = "match"
	}
	text := formatCompactNumber(total) + " " + label
	if dropped := overlay.Tags.Dropped(); dropped > 0 {
		text += fmt.Sprintf(" (%s untagged)", formatCompactNumber(dropped))
	}
	return text
}

// formatPosition renders a 1-based caret position.
func formatPosition(line, col, lines int) string {
	if lines == 0 {
		return "empty"
	}
	return fmt.Sprintf("%d:%d/%d", line+1, col+1, lines)
}

func formatCompactNumber(n int) string {
	switch {
	case n >= 1_000_000:
		return trimTrailingZero(fmt.Sprintf("%.1f", float64(n)/1_000_000.0)) + "M"
	case n >= 10_000:
		return trimTrailingZero(fmt.Sprintf("%.1f", float64(n)/1_000.0)) + "k"
	default:
		return fmt.Sprintf("%d", n)
	}
}

func trimTrailingZero(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}
