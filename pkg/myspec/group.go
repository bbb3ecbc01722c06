package myspec

import (
	"fmt"
	"strings"
)

// Body is evaluated with the group it populates.
type Body func(g *ExampleGroup)

// Hook runs around every example of the group it is registered on, including
// examples of nested groups.
type Hook func(ex *Example) error

// ExampleFunc is the body of an example.
type ExampleFunc func(ex *Example) error

// Member is a method-like definition visible to examples inside its group.
type Member func(ex *Example, args ...any) (any, error)

type groupState int

const (
	stateCreated groupState = iota
	stateEvaluating
	stateDone
)

func (s groupState) String() string {
	switch s {
	case stateCreated:
		return "created"
	case stateEvaluating:
		return "evaluating"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

// ExampleGroup is the scope created by Describe. It owns its hooks and members
// and links to its enclosing group for hook inheritance and member lookup.
type ExampleGroup struct {
	description string
	parent      *ExampleGroup
	runner      *runner
	state       groupState
	before      []Hook
	after       []Hook
	members     map[string]Member
}

func newGroup(r *runner, parent *ExampleGroup, description string) *ExampleGroup {
	return &ExampleGroup{
		description: description,
		parent:      parent,
		runner:      r,
		state:       stateCreated,
		members:     make(map[string]Member),
	}
}

// evaluate drives the group from created to done. Members and hooks are
// dropped once the body returns, even when it panics.
func (g *ExampleGroup) evaluate(body Body) {
	g.state = stateEvaluating
	g.runner.logger.Debug("evaluating group", "group", g.FullDescription(), "depth", g.depth())

	defer func() {
		g.state = stateDone
		g.members = nil
		g.before = nil
		g.after = nil
		g.runner.logger.Debug("group done", "group", g.FullDescription())
	}()

	if body != nil {
		body(g)
	}
}

func (g *ExampleGroup) mustEvaluate(op string) {
	if g.state != stateEvaluating {
		panic(&StateError{Op: op, Group: g.FullDescription(), State: g.state.String()})
	}

	if ex := g.runner.running; ex != nil {
		panic(&StateError{Op: op, Group: g.FullDescription(), State: g.state.String(), Example: ex.description})
	}
}

// Describe creates a nested group and evaluates body against it before returning.
func (g *ExampleGroup) Describe(description string, body Body) {
	g.nest("Describe", description, body)
}

// Context is an alias for Describe.
func (g *ExampleGroup) Context(description string, body Body) {
	g.nest("Context", description, body)
}

func (g *ExampleGroup) nest(op, description string, body Body) {
	g.mustEvaluate(op)

	child := newGroup(g.runner, g, description)
	child.evaluate(body)
}

// Before registers a hook that runs ahead of every example in this group and
// its descendants. Ancestor hooks run first.
func (g *ExampleGroup) Before(hook Hook) {
	g.mustEvaluate("Before")

	if hook == nil {
		panic(fmt.Errorf("before hook in %q is nil: %w", g.FullDescription(), ErrInvalidDefinition))
	}

	g.before = append(g.before, hook)
}

// After registers a hook that runs once an example finishes. Descendant hooks
// run first, and hooks of one group run in reverse registration order.
func (g *ExampleGroup) After(hook Hook) {
	g.mustEvaluate("After")

	if hook == nil {
		panic(fmt.Errorf("after hook in %q is nil: %w", g.FullDescription(), ErrInvalidDefinition))
	}

	g.after = append(g.after, hook)
}

// Def defines a member. It shadows a member of the same name in an enclosing group.
func (g *ExampleGroup) Def(name string, fn Member) {
	g.mustEvaluate("Def")

	if strings.TrimSpace(name) == "" || fn == nil {
		panic(fmt.Errorf("member %q in %q: %w", name, g.FullDescription(), ErrInvalidDefinition))
	}

	g.members[name] = fn
}

// It runs an example immediately. Without a body only the hooks run and the
// example is reported as pending.
func (g *ExampleGroup) It(description string, body ...ExampleFunc) {
	g.mustEvaluate("It")

	if len(body) > 1 {
		panic(fmt.Errorf("example %q has %d bodies: %w", description, len(body), ErrInvalidDefinition))
	}

	var fn ExampleFunc
	if len(body) == 1 {
		fn = body[0]
	}

	g.runner.run(g, description, fn)
}

// Lookup resolves a member from this group outwards. A group whose body has
// finished evaluating resolves nothing.
func (g *ExampleGroup) Lookup(name string) (Member, error) {
	if g.state == stateDone {
		return nil, &NameError{Name: name, Scope: g.DisplayName()}
	}

	for scope := g; scope != nil; scope = scope.parent {
		if fn, ok := scope.members[name]; ok {
			return fn, nil
		}
	}

	return nil, &NameError{Name: name, Scope: g.DisplayName()}
}

// Description returns the group's own description.
func (g *ExampleGroup) Description() string {
	return g.description
}

// Parent returns the enclosing group, or nil for the root.
func (g *ExampleGroup) Parent() *ExampleGroup {
	return g.parent
}

// ancestry returns the groups from the root down to g.
func (g *ExampleGroup) ancestry() []*ExampleGroup {
	chain := make([]*ExampleGroup, g.depth()+1)
	for scope, i := g, g.depth(); scope != nil; scope, i = scope.parent, i-1 {
		chain[i] = scope
	}

	return chain
}

func (g *ExampleGroup) depth() int {
	n := 0
	for scope := g.parent; scope != nil; scope = scope.parent {
		n++
	}

	return n
}

func (g *ExampleGroup) beforeChain() []Hook {
	var hooks []Hook
	for _, scope := range g.ancestry() {
		hooks = append(hooks, scope.before...)
	}

	return hooks
}

func (g *ExampleGroup) afterChain() []Hook {
	var hooks []Hook
	for scope := g; scope != nil; scope = scope.parent {
		for i := len(scope.after) - 1; i >= 0; i-- {
			hooks = append(hooks, scope.after[i])
		}
	}

	return hooks
}
