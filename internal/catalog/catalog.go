// Package catalog holds the built-in suites the CLI can run.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	m "myspec.dev/pkg/myspec/internal/model"
)

// ErrUnknownSuite is returned when a suite name is not registered.
var ErrUnknownSuite = errors.New("unknown suite")

// Catalog is an ordered registry of suites keyed by name.
type Catalog struct {
	suites map[string]m.Suite
}

// New returns a catalog holding suites. Later suites replace earlier ones
// with the same name.
func New(suites ...m.Suite) *Catalog {
	c := &Catalog{suites: make(map[string]m.Suite, len(suites))}
	for _, s := range suites {
		c.suites[s.Name] = s
	}

	return c
}

// Default returns the catalog of built-in suites.
func Default() *Catalog {
	return New(
		describeSuite(),
		nestedSuite(),
		membersSuite(),
		beforeSuite(),
		afterSuite(),
		stateSuite(),
		classgenSuite(),
	)
}

// Suites returns every suite sorted by name.
func (c *Catalog) Suites() []m.Suite {
	suites := make([]m.Suite, 0, len(c.suites))
	for _, s := range c.suites {
		suites = append(suites, s)
	}

	sort.Slice(suites, func(i, j int) bool {
		return suites[i].Name < suites[j].Name
	})

	return suites
}

// Lookup returns the suite registered under name.
func (c *Catalog) Lookup(name string) (m.Suite, error) {
	s, ok := c.suites[name]
	if !ok {
		return m.Suite{}, fmt.Errorf("%q: %w", name, ErrUnknownSuite)
	}

	return s, nil
}

// expectOutput runs fn against a buffer and compares what it wrote with want.
func expectOutput(want string, fn func(w io.Writer) error) error {
	var buf bytes.Buffer

	if err := fn(&buf); err != nil {
		return err
	}

	if got := buf.String(); got != want {
		return &m.OutputMismatchError{Expected: want, Actual: got}
	}

	return nil
}

func expectEqual(want, got any) error {
	if want != got {
		return fmt.Errorf("expected %v, got %v", want, got)
	}

	return nil
}
