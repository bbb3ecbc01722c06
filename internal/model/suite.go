package model

import "myspec.dev/pkg/myspec/pkg/myspec"

// Suite is a named, runnable top-level example group.
type Suite struct {
	Name        string
	Summary     string
	Description string
	Body        myspec.Body
}

// SuiteListing describes a suite together with its example count.
type SuiteListing struct {
	Name     string
	Summary  string
	Examples int
}
