package dispatch_test

import (
	"errors"
	"testing"

	"github.com/astrolul/tinydaw/internal/dispatch"
	"github.com/astrolul/tinydaw/internal/navigation"
	"github.com/astrolul/tinydaw/internal/view"
)

func testRegistry(t *testing.T) *view.Registry {
	t.Helper()

	bindings := []view.Binding{
		{Key: "f1", Help: "Channel View", Command: navigation.SwitchTo{ViewID: "channel_view"}},
		{Key: "f2", Help: "Channel Assign", Command: navigation.SwitchTo{ViewID: "channel_assign"}},
		{Key: "q", Help: "quit", Command: navigation.Quit{}},
	}

	registry := view.NewRegistry()
	for _, def := range []struct {
		id, label string
		color     view.ColorTag
	}{
		{"channel_view", "Channel View", view.Primary},
		{"channel_assign", "Channel Assign", view.Secondary},
	} {
		v, err := view.New(def.id, def.label, def.color, bindings)
		if err != nil {
			t.Fatalf("unexpected view error: %v", err)
		}
		if err := registry.Register(v); err != nil {
			t.Fatalf("unexpected register error: %v", err)
		}
	}

	return registry
}

func TestDispatcherStartsOnRegistryDefault(t *testing.T) {
	d := dispatch.New(testRegistry(t))

	if got := d.CurrentID(); got != "channel_view" {
		t.Fatalf("expected dispatcher to start on default view, got %q", got)
	}
}

func TestHandleKeyReturnsBoundCommand(t *testing.T) {
	d := dispatch.New(testRegistry(t))

	cmd := d.HandleKey("f2")
	switchTo, ok := cmd.(navigation.SwitchTo)
	if !ok {
		t.Fatalf("expected SwitchTo for bound key, got %T", cmd)
	}
	if switchTo.ViewID != "channel_assign" {
		t.Fatalf("unexpected switch target %q", switchTo.ViewID)
	}
}

func TestHandleKeyUnboundReturnsNoop(t *testing.T) {
	d := dispatch.New(testRegistry(t))

	for _, key := range []string{"x", "enter", "f12", " "} {
		if _, ok := d.HandleKey(key).(navigation.Noop); !ok {
			t.Fatalf("expected Noop for unbound key %q", key)
		}
	}
}

func TestApplySwitchToValidIDUpdatesCurrent(t *testing.T) {
	d := dispatch.New(testRegistry(t))

	quit, err := d.Apply(navigation.SwitchTo{ViewID: "channel_assign"})
	if err != nil {
		t.Fatalf("unexpected apply error: %v", err)
	}
	if quit {
		t.Fatalf("switch must not request quit")
	}
	if got := d.CurrentID(); got != "channel_assign" {
		t.Fatalf("expected current view channel_assign, got %q", got)
	}
}

func TestApplySwitchToUnknownIDKeepsCurrent(t *testing.T) {
	d := dispatch.New(testRegistry(t))

	_, err := d.Apply(navigation.SwitchTo{ViewID: "mixer"})
	var unknown view.UnknownViewError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownViewError, got %v", err)
	}
	if unknown.ID != "mixer" {
		t.Fatalf("unexpected id in error: %q", unknown.ID)
	}
	if got := d.CurrentID(); got != "channel_view" {
		t.Fatalf("failed switch moved current view to %q", got)
	}
}

func TestApplyQuitSignalsTermination(t *testing.T) {
	d := dispatch.New(testRegistry(t))

	quit, err := d.Apply(navigation.Quit{})
	if err != nil {
		t.Fatalf("unexpected apply error: %v", err)
	}
	if !quit {
		t.Fatalf("expected quit signal")
	}
	if got := d.CurrentID(); got != "channel_view" {
		t.Fatalf("quit changed current view to %q", got)
	}
}

func TestApplyNoopDoesNothing(t *testing.T) {
	d := dispatch.New(testRegistry(t))

	quit, err := d.Apply(navigation.Noop{})
	if err != nil || quit {
		t.Fatalf("expected noop to do nothing, got quit=%v err=%v", quit, err)
	}
	if got := d.CurrentID(); got != "channel_view" {
		t.Fatalf("noop changed current view to %q", got)
	}
}
