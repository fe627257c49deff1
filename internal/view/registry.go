package view

// Registry is the ordered collection of views. It is append-only: views
// are registered once at startup and never mutated or removed. The zero
// default id is the first registered view, so Default never fails once a
// single Register has succeeded.
type Registry struct {
	order     []string
	views     map[string]*View
	defaultID string
}

func NewRegistry() *Registry {
	return &Registry{
		views: make(map[string]*View),
	}
}

// Register inserts v, preserving registration order. The first registered
// view becomes the default.
func (r *Registry) Register(v *View) error {
	if _, ok := r.views[v.ID()]; ok {
		return DuplicateIDError{ID: v.ID()}
	}

	r.views[v.ID()] = v
	r.order = append(r.order, v.ID())

	if r.defaultID == "" {
		r.defaultID = v.ID()
	}

	return nil
}

// Lookup returns the view for id. Absence is a recoverable condition for
// callers, never a crash.
func (r *Registry) Lookup(id string) (*View, bool) {
	v, ok := r.views[id]
	return v, ok
}

// SetDefault changes which view a fresh dispatcher starts on. The id must
// already be registered.
func (r *Registry) SetDefault(id string) error {
	if _, ok := r.views[id]; !ok {
		return UnknownViewError{ID: id}
	}
	r.defaultID = id
	return nil
}

// Default returns the default view. It is only valid after at least one
// view has been registered.
func (r *Registry) Default() *View {
	return r.views[r.defaultID]
}

// IDs returns all registered ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Len() int {
	return len(r.order)
}
