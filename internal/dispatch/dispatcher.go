package dispatch

import (
	"github.com/astrolul/tinydaw/internal/navigation"
	"github.com/astrolul/tinydaw/internal/view"
)

// Dispatcher owns the current-view pointer. It translates raw keys into
// commands via the current view's binding table and applies those commands
// against the registry. The current id always refers to a registered view;
// Apply refuses switches that would break that.
type Dispatcher struct {
	registry  *view.Registry
	currentID string
}

func New(registry *view.Registry) *Dispatcher {
	return &Dispatcher{
		registry:  registry,
		currentID: registry.Default().ID(),
	}
}

func (d *Dispatcher) CurrentID() string {
	return d.currentID
}

func (d *Dispatcher) Current() *view.View {
	v, _ := d.registry.Lookup(d.currentID)
	return v
}

// HandleKey looks the key up in the current view's bindings. Unbound keys
// dispatch to Noop. Pure function of (current view, key).
func (d *Dispatcher) HandleKey(key string) navigation.Command {
	if cmd, ok := d.Current().Command(key); ok {
		return cmd
	}
	return navigation.Noop{}
}

// Apply executes cmd and reports whether it asked the application to quit.
// A SwitchTo naming an unregistered view returns UnknownViewError and
// leaves the current view unchanged.
func (d *Dispatcher) Apply(cmd navigation.Command) (quit bool, err error) {
	switch c := cmd.(type) {
	case navigation.SwitchTo:
		if _, ok := d.registry.Lookup(c.ViewID); !ok {
			return false, view.UnknownViewError{ID: c.ViewID}
		}
		d.currentID = c.ViewID

	case navigation.Quit:
		return true, nil
	}

	return false, nil
}
