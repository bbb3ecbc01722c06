package myspec

import (
	"errors"
	"fmt"
)

var (
	// ErrNameNotFound is returned when a member cannot be resolved in the scope chain.
	ErrNameNotFound = errors.New("name not found")
	// ErrInvalidState is raised when the DSL is used on a group that cannot accept it.
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidDefinition is raised for malformed Def or It calls.
	ErrInvalidDefinition = errors.New("invalid definition")
)

// NameError reports a member lookup that fell off the end of the scope chain.
type NameError struct {
	Name  string
	Scope string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("name %q not found in %s", e.Name, e.Scope)
}

func (e *NameError) Unwrap() error {
	return ErrNameNotFound
}

// StateError reports a DSL call made against a group outside its body evaluation.
type StateError struct {
	Op      string
	Group   string
	State   string
	Example string
}

func (e *StateError) Error() string {
	if e.Example != "" {
		return fmt.Sprintf("%s called on group %q while example %q is running", e.Op, e.Group, e.Example)
	}

	return fmt.Sprintf("%s called on group %q in state %s", e.Op, e.Group, e.State)
}

func (e *StateError) Unwrap() error {
	return ErrInvalidState
}

// ExampleError wraps the failure of a single example.
type ExampleError struct {
	Example string
	Err     error
}

func (e *ExampleError) Error() string {
	return fmt.Sprintf("%s: %v", e.Example, e.Err)
}

func (e *ExampleError) Unwrap() error {
	return e.Err
}

// PanicError carries a value recovered from a panicking hook or example body.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}

	return nil
}

func isUsageError(v any) (error, bool) {
	err, ok := v.(error)
	if !ok {
		return nil, false
	}

	if errors.Is(err, ErrInvalidState) || errors.Is(err, ErrInvalidDefinition) {
		return err, true
	}

	return nil, false
}
