package termtext

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func TruncateLinesANSI(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], maxWidth, "…")
	}
	return strings.Join(lines, "\n")
}

// CenterANSI prefixes s with enough spaces to center it on a row of the
// given width, using floor division: offset = (width - len(s)) / 2.
// Widths are visible widths, so styled text centers the same as plain.
func CenterANSI(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}
