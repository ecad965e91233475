// Package guard provides a small helper that lets value objects and commands
// detect whether they were created through their constructor. A zero-value
// struct carries a zero-value guard, so Validate fails for anything that
// bypassed the factory function.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no custom error
// is supplied and the guarded object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built by its constructor.
// Embed it as a field and set it with NewConstructorGuard inside the factory.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns notConstructedErr, or ErrDefaultConstructorGuard when
// notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr != nil {
		return notConstructedErr
	}
	return ErrDefaultConstructorGuard
}
