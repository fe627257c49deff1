package app

import (
	"github.com/astrolul/tinydaw/internal/navigation"
	"github.com/astrolul/tinydaw/internal/view"
)

const titleLine = "tinydaw alpha"

// DefaultRegistry builds the startup view set. Both views share the same
// binding table so F1/F2 switch from anywhere; adding a view means adding
// a definition and a binding here, dispatch needs no change.
func DefaultRegistry() (*view.Registry, error) {
	bindings := []view.Binding{
		{Key: "f1", Help: "Channel View", Command: navigation.SwitchTo{ViewID: "channel_view"}},
		{Key: "f2", Help: "Channel Assign", Command: navigation.SwitchTo{ViewID: "channel_assign"}},
		{Key: "q", Help: "quit", Command: navigation.Quit{}},
	}

	registry := view.NewRegistry()

	channelView, err := view.New("channel_view", "Channel View", view.Primary, bindings)
	if err != nil {
		return nil, err
	}
	if err := registry.Register(channelView); err != nil {
		return nil, err
	}

	channelAssign, err := view.New("channel_assign", "Channel Assign", view.Secondary, bindings)
	if err != nil {
		return nil, err
	}
	if err := registry.Register(channelAssign); err != nil {
		return nil, err
	}

	return registry, nil
}
