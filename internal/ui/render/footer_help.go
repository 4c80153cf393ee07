package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/rjump/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(overlay statepkg.Overlay) string {
	parts := contextualHelpSegments(overlay)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

func contextualHelpSegments(overlay statepkg.Overlay) []string {
	switch overlay.State {
	case statepkg.Searching:
		return []string{
			"type: search",
			"tag: jump",
			"↵: tags only",
			"Esc: cancel",
		}
	case statepkg.Jumping:
		return []string{
			"tag: jump",
			"Shift+tag: select to",
			"^T: target mode",
			"Esc: cancel",
		}
	case statepkg.AwaitingSecondChar:
		return []string{
			"second key: jump",
			"Esc: cancel",
		}
	default:
		return []string{
			"/: search",
			"^L: line starts",
			"^W: whitespace",
			"↑↓/Pg: scroll",
			"?: help",
			"q: quit",
		}
	}
}
