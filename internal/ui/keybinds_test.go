package ui_test

import (
	"testing"

	"github.com/astrolul/tinydaw/internal/navigation"
	"github.com/astrolul/tinydaw/internal/ui"
	"github.com/astrolul/tinydaw/internal/view"
)

func TestHelpLineMatchesBindingOrder(t *testing.T) {
	v, err := view.New("channel_view", "Channel View", view.Primary, []view.Binding{
		{Key: "f1", Help: "Channel View", Command: navigation.SwitchTo{ViewID: "channel_view"}},
		{Key: "f2", Help: "Channel Assign", Command: navigation.SwitchTo{ViewID: "channel_assign"}},
		{Key: "q", Help: "quit", Command: navigation.Quit{}},
	})
	if err != nil {
		t.Fatalf("unexpected view error: %v", err)
	}

	want := "F1: Channel View | F2: Channel Assign | q: quit"
	if got := ui.HelpLine(v); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestHelpLineLeavesNonFunctionKeysAsTyped(t *testing.T) {
	v, err := view.New("channel_view", "Channel View", view.Primary, []view.Binding{
		{Key: "enter", Help: "select", Command: navigation.Noop{}},
		{Key: "f", Help: "filter", Command: navigation.Noop{}},
	})
	if err != nil {
		t.Fatalf("unexpected view error: %v", err)
	}

	want := "enter: select | f: filter"
	if got := ui.HelpLine(v); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDefaultKeyMapHelpEntries(t *testing.T) {
	keys := ui.DefaultKeyMap()

	if len(keys.ShortHelp()) != 3 {
		t.Fatalf("expected 3 short help entries, got %d", len(keys.ShortHelp()))
	}
	if len(keys.FullHelp()) == 0 {
		t.Fatalf("expected full help groups")
	}
}
