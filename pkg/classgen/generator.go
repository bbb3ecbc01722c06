package classgen

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Body populates a class under construction.
type Body func(d *Definer)

// TypeSpec describes the class to generate.
type TypeSpec struct {
	Name   string
	Parent *Class
	Body   Body
}

// Definer collects definitions while a Body runs. It is sealed once the body
// returns; later definitions panic with an error wrapping ErrSealed.
type Definer struct {
	class  *Class
	err    error
	sealed bool
}

// DefineMethod adds an instance method.
func (d *Definer) DefineMethod(name string, fn Method) {
	d.mustBeOpen(name)

	if d.err != nil {
		return
	}

	if err := validateDefinition(name, fn == nil); err != nil {
		d.err = err
		return
	}

	d.class.methods[name] = fn
}

// DefineSingletonMethod adds a method callable on the class itself.
func (d *Definer) DefineSingletonMethod(name string, fn StaticMethod) {
	d.mustBeOpen(name)

	if d.err != nil {
		return
	}

	if err := validateDefinition(name, fn == nil); err != nil {
		d.err = err
		return
	}

	d.class.statics[name] = fn
}

// Class returns the class being defined, for bodies that need to refer to it.
func (d *Definer) Class() *Class {
	return d.class
}

func (d *Definer) mustBeOpen(name string) {
	if d.sealed {
		panic(fmt.Errorf("method %q defined after %q was generated: %w", name, d.class.name, ErrSealed))
	}
}

func validateDefinition(name string, missing bool) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("method name is empty: %w", ErrInvalidName)
	}

	if missing {
		return fmt.Errorf("method %q has no function: %w", name, ErrInvalidMethod)
	}

	return nil
}

// Generator produces a class from a TypeSpec.
type Generator struct {
	spec TypeSpec
}

// NewGenerator returns a Generator for spec.
func NewGenerator(spec TypeSpec) *Generator {
	return &Generator{spec: spec}
}

// Generate builds the class. An optional body runs after the one in the spec.
func (g *Generator) Generate(bodies ...Body) (*Class, error) {
	spec := g.spec
	if len(bodies) > 0 {
		inner := spec.Body
		spec.Body = func(d *Definer) {
			if inner != nil {
				inner(d)
			}

			for _, body := range bodies {
				if body != nil {
					body(d)
				}
			}
		}
	}

	return Generate(spec)
}

// runBody seals d when body returns, even if it panics.
func runBody(body Body, d *Definer) {
	defer func() { d.sealed = true }()

	body(d)
}

// Generate builds a new class from spec.
func Generate(spec TypeSpec) (*Class, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return nil, fmt.Errorf("class name is empty: %w", ErrInvalidName)
	}

	if spec.Parent != nil && !spec.Parent.valid() {
		return nil, fmt.Errorf("parent of %q was not generated: %w", spec.Name, ErrInvalidParent)
	}

	class := &Class{
		id:      uuid.New(),
		name:    spec.Name,
		parent:  spec.Parent,
		methods: make(map[string]Method),
		statics: make(map[string]StaticMethod),
	}

	if spec.Body != nil {
		definer := &Definer{class: class}
		runBody(spec.Body, definer)

		if definer.err != nil {
			return nil, fmt.Errorf("failed to define %q: %w", spec.Name, definer.err)
		}
	}

	parentName := ""
	if spec.Parent != nil {
		parentName = spec.Parent.name
	}

	slog.Debug("generated class", "name", class.name, "id", class.id, "parent", parentName,
		"methods", len(class.methods), "singletonMethods", len(class.statics))

	return class, nil
}
