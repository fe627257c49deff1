package view

import "fmt"

// DuplicateIDError is returned when a view is registered under an id that
// is already taken. Registration order is the tab order, so this is always
// a programming error and fatal at startup.
type DuplicateIDError struct {
	ID string
}

func (e DuplicateIDError) Error() string {
	return fmt.Sprintf("view %q is already registered", e.ID)
}

// UnknownViewError is returned when a command references a view id that is
// not in the registry. The current view stays valid, so this is recoverable.
type UnknownViewError struct {
	ID string
}

func (e UnknownViewError) Error() string {
	return fmt.Sprintf("unknown view %q", e.ID)
}

// DuplicateBindingError is returned when a view declares two bindings for
// the same key.
type DuplicateBindingError struct {
	ViewID string
	Key    string
}

func (e DuplicateBindingError) Error() string {
	return fmt.Sprintf("view %q binds key %q twice", e.ViewID, e.Key)
}
