package catalog

import (
	"errors"
	"fmt"

	m "myspec.dev/pkg/myspec/internal/model"
	"myspec.dev/pkg/myspec/pkg/classgen"
	"myspec.dev/pkg/myspec/pkg/myspec"
)

func classgenSuite() m.Suite {
	return m.Suite{
		Name:        "classgen",
		Summary:     "generated classes keep names, parents and methods",
		Description: "ClassGenerator",
		Body: func(g *myspec.ExampleGroup) {
			g.Def("generate", generateMember)

			g.It("defines an anonymous class", func(ex *myspec.Example) error {
				v, err := ex.Call("generate", classgen.TypeSpec{Name: "MyClass"})
				if err != nil {
					return err
				}

				return expectEqual("MyClass", v.(*classgen.Class).Name())
			})

			g.Context("with a superclass", func(g *myspec.ExampleGroup) {
				g.Before(func(ex *myspec.Example) error {
					super, err := classgen.Generate(classgen.TypeSpec{Name: "MySuperClass"})
					if err != nil {
						return err
					}

					ex.Set("super", super)

					return nil
				})

				g.It("keeps the parent handle", func(ex *myspec.Example) error {
					v, _ := ex.Get("super")
					super := v.(*classgen.Class)

					sub, err := ex.Call("generate", classgen.TypeSpec{Name: "MySubClass", Parent: super})
					if err != nil {
						return err
					}

					class := sub.(*classgen.Class)
					if err := expectEqual("MySubClass", class.Name()); err != nil {
						return err
					}

					if err := expectEqual(super, class.Parent()); err != nil {
						return err
					}

					return expectEqual("MySuperClass", class.Parent().Name())
				})
			})

			g.Context("with methods", func(g *myspec.ExampleGroup) {
				g.It("defines singleton and instance methods", func(_ *myspec.Example) error {
					lvar := "bar"

					class, err := classgen.NewGenerator(classgen.TypeSpec{Name: "TheClass"}).Generate(func(d *classgen.Definer) {
						d.DefineSingletonMethod("foo", func(_ *classgen.Class, _ ...any) (any, error) {
							return "foo", nil
						})

						d.DefineMethod("bar", func(_ *classgen.Instance, _ ...any) (any, error) {
							return lvar, nil
						})
					})
					if err != nil {
						return err
					}

					foo, err := class.Call("foo")
					if err != nil {
						return err
					}

					if err := expectEqual("foo", foo); err != nil {
						return err
					}

					bar, err := class.New().Call("bar")
					if err != nil {
						return err
					}

					return expectEqual("bar", bar)
				})
			})

			g.It("rejects an empty name", func(_ *myspec.Example) error {
				_, err := classgen.Generate(classgen.TypeSpec{})
				if !errors.Is(err, classgen.ErrInvalidName) {
					return fmt.Errorf("expected %v, got %v", classgen.ErrInvalidName, err)
				}

				return nil
			})
		},
	}
}

// generateMember is the "generate" member: it builds a class from a TypeSpec argument.
func generateMember(_ *myspec.Example, args ...any) (any, error) {
	if len(args) == 0 {
		return nil, errors.New("generate expects a TypeSpec argument")
	}

	spec, ok := args[0].(classgen.TypeSpec)
	if !ok {
		return nil, fmt.Errorf("generate expects a TypeSpec, got %T", args[0])
	}

	return classgen.NewGenerator(spec).Generate()
}
