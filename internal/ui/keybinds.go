package ui

import (
	"strconv"
	"strings"

	"github.com/astrolul/tinydaw/internal/view"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the global bindings that work regardless of the current
// view. View-switch keys live in each view's own binding table.
type KeyMap struct {
	ForceQuit key.Binding
	Command   key.Binding
	Help      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "Command"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Command,
		k.Help,
		k.ForceQuit,
	}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Command, k.Help, k.ForceQuit},
	}
}

// HelpLine renders the fixed bottom line for a view from its bindings, in
// declaration order, e.g. "F1: Channel View | F2: Channel Assign | q: quit".
func HelpLine(v *view.View) string {
	var parts []string
	for _, b := range v.Bindings() {
		parts = append(parts, displayKey(b.Key)+": "+b.Help)
	}
	return strings.Join(parts, " | ")
}

// displayKey uppercases function keys ("f1" -> "F1"), everything else is
// shown as typed.
func displayKey(k string) string {
	if len(k) > 1 && k[0] == 'f' {
		if _, err := strconv.Atoi(k[1:]); err == nil {
			return "F" + k[1:]
		}
	}
	return k
}
