package annotate

import "github.com/charmbracelet/lipgloss"

// SGR sequences used by [DefaultHighlighter]: bold underlined green.
const (
	highlightStart = "\x1b[4;32;1m"
	highlightReset = "\x1b[0m"
)

// Highlighter decorates a location for terminal display.
type Highlighter func(loc string) string

// DefaultHighlighter wraps loc in a fixed bold, underlined, green SGR
// sequence followed by a reset.
func DefaultHighlighter(loc string) string {
	return highlightStart + loc + highlightReset
}

// StyleHighlighter returns a [Highlighter] that renders with style.
// The style's renderer decides which color profile is emitted.
func StyleHighlighter(style lipgloss.Style) Highlighter {
	return func(loc string) string {
		return style.Render(loc)
	}
}

// Format returns loc, wrapped by [DefaultHighlighter] if highlight is true.
func Format(loc string, highlight bool) string {
	if !highlight {
		return loc
	}

	return DefaultHighlighter(loc)
}
