package ui

import (
	"github.com/astrolul/tinydaw/internal/view"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Bg, Fg       lipgloss.Color
	Red, Green   lipgloss.Color
	Yellow, Blue lipgloss.Color
	Aqua, Orange lipgloss.Color
	Gray         lipgloss.Color
}

func DefaultTheme() Theme {
	// Gruvbox Dark, Medium-Contrast Color Palette
	return Theme{
		Bg:     lipgloss.Color("#282828"),
		Fg:     lipgloss.Color("#ebdbb2"),
		Red:    lipgloss.Color("#cc241d"),
		Green:  lipgloss.Color("#98971a"),
		Yellow: lipgloss.Color("#d79921"),
		Blue:   lipgloss.Color("#458588"),
		Aqua:   lipgloss.Color("#689d6a"),
		Orange: lipgloss.Color("#d65d0e"),
		Gray:   lipgloss.Color("#928374"),
	}
}

// Color maps a view's color tag onto the palette. Primary and secondary
// keep the stub's green/cyan pairing.
func (t Theme) Color(tag view.ColorTag) lipgloss.Color {
	switch tag {
	case view.Primary:
		return t.Green
	case view.Secondary:
		return t.Aqua
	case view.Accent:
		return t.Orange
	}
	return t.Fg
}

// LabelStyle styles a view label; only the label is colored, the rest of
// the frame stays unstyled.
func (t Theme) LabelStyle(tag view.ColorTag) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Color(tag))
}

func (t Theme) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Red)
}
