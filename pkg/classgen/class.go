// Package classgen builds named runtime types whose method tables are populated
// from definition blocks.
package classgen

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Method is an instance method. It receives the instance it was called on.
type Method func(self *Instance, args ...any) (any, error)

// StaticMethod is a method defined on the class itself.
type StaticMethod func(class *Class, args ...any) (any, error)

// Class is a generated type. Two generated classes are never equal, even when
// they were built from identical specs.
type Class struct {
	id      uuid.UUID
	name    string
	parent  *Class
	methods map[string]Method
	statics map[string]StaticMethod
}

// ID returns the identity minted for the class at generation time.
func (c *Class) ID() uuid.UUID {
	return c.id
}

// Name returns the name the class was generated with.
func (c *Class) Name() string {
	return c.name
}

// Parent returns the exact parent handle passed at generation, or nil.
func (c *Class) Parent() *Class {
	return c.parent
}

func (c *Class) String() string {
	return c.name
}

// New creates an instance of the class.
func (c *Class) New() *Instance {
	return &Instance{class: c, vars: make(map[string]any)}
}

// Call invokes a singleton method, searching the class and then its ancestors.
func (c *Class) Call(name string, args ...any) (any, error) {
	for class := c; class != nil; class = class.parent {
		if fn, ok := class.statics[name]; ok {
			return fn(c, args...)
		}
	}

	return nil, &NoMethodError{Receiver: c.name, Name: name, Singleton: true}
}

// RespondsTo reports whether instances of the class respond to name.
func (c *Class) RespondsTo(name string) bool {
	_, ok := c.lookup(name)
	return ok
}

// IsSubclassOf reports whether other appears in the class's parent chain.
func (c *Class) IsSubclassOf(other *Class) bool {
	for class := c.parent; class != nil; class = class.parent {
		if class == other {
			return true
		}
	}

	return false
}

// Ancestors returns the class followed by each parent, nearest first.
func (c *Class) Ancestors() []*Class {
	var chain []*Class
	for class := c; class != nil; class = class.parent {
		chain = append(chain, class)
	}

	return chain
}

// InstanceMethods returns the names of the methods defined directly on the class.
func (c *Class) InstanceMethods() []string {
	names := make([]string, 0, len(c.methods))
	for name := range c.methods {
		names = append(names, name)
	}

	return names
}

func (c *Class) lookup(name string) (Method, bool) {
	for class := c; class != nil; class = class.parent {
		if fn, ok := class.methods[name]; ok {
			return fn, true
		}
	}

	return nil, false
}

func (c *Class) valid() bool {
	return c != nil && c.id != uuid.Nil && strings.TrimSpace(c.name) != ""
}

// Instance is an object created from a generated class.
type Instance struct {
	class *Class
	vars  map[string]any
}

// Class returns the class the instance was created from.
func (i *Instance) Class() *Class {
	return i.class
}

// Call invokes an instance method, searching the class and then its ancestors.
func (i *Instance) Call(name string, args ...any) (any, error) {
	fn, ok := i.class.lookup(name)
	if !ok {
		return nil, &NoMethodError{Receiver: fmt.Sprintf("#<%s>", i.class.name), Name: name}
	}

	return fn(i, args...)
}

// RespondsTo reports whether the instance responds to name.
func (i *Instance) RespondsTo(name string) bool {
	return i.class.RespondsTo(name)
}

// Set stores an instance variable.
func (i *Instance) Set(name string, value any) {
	i.vars[name] = value
}

// Get returns an instance variable and whether it was set.
func (i *Instance) Get(name string) (any, bool) {
	value, ok := i.vars[name]
	return value, ok
}
