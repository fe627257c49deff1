package ui

import (
	"strings"

	"github.com/astrolul/tinydaw/internal/termtext"
	"github.com/charmbracelet/lipgloss"
)

// Frame lays out one view's screen on a character grid: the title in the
// top-left corner, the label centered at row Height/2, the fixed help line
// on the bottom row. Status (transient errors, the command input) and
// Extra (the expanded help block) stack upwards from the row above the
// help line.
type Frame struct {
	Width, Height int

	Title      string
	Label      string
	LabelStyle lipgloss.Style
	HelpLine   string

	Status string
	Extra  string
}

func (f Frame) Render() string {
	if f.Width <= 0 || f.Height <= 0 {
		return ""
	}

	rows := make([]string, f.Height)
	rows[0] = termtext.TruncateLinesANSI(f.Title, f.Width)

	mid := f.Height / 2
	if mid > 0 {
		label := f.LabelStyle.Render(f.Label)
		rows[mid] = termtext.CenterANSI(termtext.TruncateLinesANSI(label, f.Width), f.Width)
	}

	rows[f.Height-1] = termtext.TruncateLinesANSI(f.HelpLine, f.Width)

	anchor := f.Height - 2
	if f.Status != "" && anchor > 0 {
		rows[anchor] = termtext.TruncateLinesANSI(f.Status, f.Width)
		anchor--
	}
	if f.Extra != "" {
		lines := strings.Split(f.Extra, "\n")
		for i := len(lines) - 1; i >= 0 && anchor > mid; i-- {
			rows[anchor] = termtext.TruncateLinesANSI(lines[i], f.Width)
			anchor--
		}
	}

	return strings.Join(rows, "\n")
}
