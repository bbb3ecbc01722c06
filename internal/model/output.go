package model

import "fmt"

// OutputMismatchError reports output that differs from what an example expected.
type OutputMismatchError struct {
	Expected string
	Actual   string
}

func (e *OutputMismatchError) Error() string {
	return fmt.Sprintf("expected output %q, got %q", e.Expected, e.Actual)
}
