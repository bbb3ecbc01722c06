package classgen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidName is returned when a class or method name is empty.
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidParent is returned when the parent was not produced by Generate.
	ErrInvalidParent = errors.New("invalid parent")
	// ErrInvalidMethod is returned when a method definition has no function.
	ErrInvalidMethod = errors.New("invalid method")
	// ErrSealed is the panic cause when a Definer is used after Generate returned.
	ErrSealed = errors.New("class already generated")
	// ErrNoMethod is returned when a method name cannot be resolved.
	ErrNoMethod = errors.New("undefined method")
)

// NoMethodError describes a failed method lookup.
type NoMethodError struct {
	Receiver  string
	Name      string
	Singleton bool
}

func (e *NoMethodError) Error() string {
	kind := "method"
	if e.Singleton {
		kind = "singleton method"
	}

	return fmt.Sprintf("undefined %s %q for %s", kind, e.Name, e.Receiver)
}

func (e *NoMethodError) Unwrap() error {
	return ErrNoMethod
}
