package view

import "github.com/astrolul/tinydaw/internal/navigation"

// ColorTag picks which theme color a view's label is drawn with. The
// mapping to an actual terminal color lives in the ui package.
type ColorTag int

const (
	Primary ColorTag = iota
	Secondary
	Accent
)

func (c ColorTag) String() string {
	switch c {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case Accent:
		return "accent"
	}
	return "unknown"
}

// Binding ties one key to the command it produces within a view. Help is
// the short description shown in the help line.
type Binding struct {
	Key     string
	Help    string
	Command navigation.Command
}

// View is a named screen: a label drawn centered in its color, plus the
// key bindings active while it is current. Views are immutable once built.
type View struct {
	id       string
	label    string
	color    ColorTag
	bindings []Binding
	byKey    map[string]navigation.Command
}

// New validates the definition and builds a view. A key bound twice in the
// same view is rejected here rather than resolved at dispatch time.
func New(id, label string, color ColorTag, bindings []Binding) (*View, error) {
	byKey := make(map[string]navigation.Command, len(bindings))
	for _, b := range bindings {
		if _, ok := byKey[b.Key]; ok {
			return nil, DuplicateBindingError{ViewID: id, Key: b.Key}
		}
		byKey[b.Key] = b.Command
	}

	v := &View{
		id:       id,
		label:    label,
		color:    color,
		bindings: make([]Binding, len(bindings)),
		byKey:    byKey,
	}
	copy(v.bindings, bindings)

	return v, nil
}

func (v *View) ID() string {
	return v.id
}

func (v *View) Label() string {
	return v.label
}

func (v *View) Color() ColorTag {
	return v.color
}

// Command returns the command bound to key, if any.
func (v *View) Command(key string) (navigation.Command, bool) {
	cmd, ok := v.byKey[key]
	return cmd, ok
}

// Bindings returns the view's bindings in declaration order.
func (v *View) Bindings() []Binding {
	out := make([]Binding, len(v.bindings))
	copy(out, v.bindings)
	return out
}
