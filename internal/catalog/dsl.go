package catalog

import (
	"errors"
	"fmt"
	"io"

	m "myspec.dev/pkg/myspec/internal/model"
	"myspec.dev/pkg/myspec/pkg/myspec"
)

// describe runs a throwaway top-level group whose plain report goes to w.
func describe(w io.Writer, description string, body myspec.Body) error {
	return myspec.Describe(description, body, myspec.WithReporter(myspec.PlainReporter(w)))
}

func noop(*myspec.Example) error { return nil }

func describeSuite() m.Suite {
	return m.Suite{
		Name:        "describe",
		Summary:     "a single group reports its examples",
		Description: "MySpec.describe",
		Body: func(g *myspec.ExampleGroup) {
			g.It("prints the example description", func(_ *myspec.Example) error {
				return expectOutput("works", func(w io.Writer) error {
					return describe(w, "foo", func(g *myspec.ExampleGroup) {
						g.It("works")
					})
				})
			})

			g.It("prints examples in execution order", func(_ *myspec.Example) error {
				return expectOutput("onetwothree", func(w io.Writer) error {
					return describe(w, "foo", func(g *myspec.ExampleGroup) {
						g.It("one")
						g.It("two", noop)
						g.It("three")
					})
				})
			})

			g.It("names the group after its description", func(_ *myspec.Example) error {
				var name string

				err := describe(io.Discard, "foo", func(g *myspec.ExampleGroup) {
					name = g.DisplayName()
				})
				if err != nil {
					return err
				}

				return expectEqual("Foo", name)
			})
		},
	}
}

func nestedSuite() m.Suite {
	return m.Suite{
		Name:        "nested",
		Summary:     "nested groups run depth first",
		Description: "MySpec.describe with nested groups",
		Body: func(g *myspec.ExampleGroup) {
			g.It("prints examples of nested groups", func(_ *myspec.Example) error {
				return expectOutput("works", func(w io.Writer) error {
					return describe(w, "foo", func(g *myspec.ExampleGroup) {
						g.Describe("bar", func(g *myspec.ExampleGroup) {
							g.It("works")
						})
					})
				})
			})

			g.It("finishes a nested group before continuing", func(_ *myspec.Example) error {
				return expectOutput("abc", func(w io.Writer) error {
					return describe(w, "outer", func(g *myspec.ExampleGroup) {
						g.It("a")
						g.Describe("inner", func(g *myspec.ExampleGroup) {
							g.It("b")
						})
						g.It("c")
					})
				})
			})

			g.It("joins nested names", func(_ *myspec.Example) error {
				var name string

				err := describe(io.Discard, "foo", func(g *myspec.ExampleGroup) {
					g.Describe("bar", func(g *myspec.ExampleGroup) {
						name = g.DisplayName()
					})
				})
				if err != nil {
					return err
				}

				return expectEqual("Foo::Bar", name)
			})
		},
	}
}

func membersSuite() m.Suite {
	return m.Suite{
		Name:        "members",
		Summary:     "members are scoped to their group",
		Description: "defining members in nested groups",
		Body: func(g *myspec.ExampleGroup) {
			g.It("calls a member from an example in the same group", func(_ *myspec.Example) error {
				return expectOutput("workshoge", func(w io.Writer) error {
					return describe(w, "foo", func(g *myspec.ExampleGroup) {
						g.Describe("bar", func(g *myspec.ExampleGroup) {
							g.Def("hoge", func(_ *myspec.Example, _ ...any) (any, error) {
								_, err := fmt.Fprint(w, "hoge")
								return nil, err
							})

							g.It("works", func(ex *myspec.Example) error {
								_, err := ex.Call("hoge")
								return err
							})
						})
					})
				})
			})

			g.It("does not leak members after the run", func(_ *myspec.Example) error {
				var leaked *myspec.ExampleGroup

				err := describe(io.Discard, "foo", func(g *myspec.ExampleGroup) {
					g.Describe("bar", func(g *myspec.ExampleGroup) {
						g.Def("hoge", func(_ *myspec.Example, _ ...any) (any, error) {
							return nil, nil
						})

						leaked = g
					})
				})
				if err != nil {
					return err
				}

				if _, err := leaked.Lookup("hoge"); !errors.Is(err, myspec.ErrNameNotFound) {
					return fmt.Errorf("expected %v after the run, got %v", myspec.ErrNameNotFound, err)
				}

				return nil
			})

			g.It("does not share members between sibling groups", func(_ *myspec.Example) error {
				err := describe(io.Discard, "foo", func(g *myspec.ExampleGroup) {
					g.Describe("bar", func(g *myspec.ExampleGroup) {
						g.Def("hoge", func(_ *myspec.Example, _ ...any) (any, error) {
							return nil, nil
						})
					})

					g.Describe("baz", func(g *myspec.ExampleGroup) {
						g.It("calls hoge", func(ex *myspec.Example) error {
							_, err := ex.Call("hoge")
							return err
						})
					})
				})
				if !errors.Is(err, myspec.ErrNameNotFound) {
					return fmt.Errorf("expected %v from a sibling group, got %v", myspec.ErrNameNotFound, err)
				}

				return nil
			})
		},
	}
}

func beforeSuite() m.Suite {
	return m.Suite{
		Name:        "before",
		Summary:     "before hooks run outermost first",
		Description: "before hooks",
		Body: func(g *myspec.ExampleGroup) {
			g.It("runs a hook ahead of the example", func(_ *myspec.Example) error {
				return expectOutput("beforeworks", func(w io.Writer) error {
					return describe(w, "foo", func(g *myspec.ExampleGroup) {
						g.Before(func(_ *myspec.Example) error {
							_, err := fmt.Fprint(w, "before")
							return err
						})

						g.It("works")
					})
				})
			})

			g.It("chains hooks across nested groups", func(_ *myspec.Example) error {
				return expectOutput("before1before2works", func(w io.Writer) error {
					return describe(w, "foo", func(g *myspec.ExampleGroup) {
						g.Before(func(_ *myspec.Example) error {
							_, err := fmt.Fprint(w, "before1")
							return err
						})

						g.Describe("bar", func(g *myspec.ExampleGroup) {
							g.Before(func(_ *myspec.Example) error {
								_, err := fmt.Fprint(w, "before2")
								return err
							})

							g.It("works")
						})
					})
				})
			})

			g.It("keeps inner hooks out of outer examples", func(_ *myspec.Example) error {
				return expectOutput("1inner1outer", func(w io.Writer) error {
					return describe(w, "foo", func(g *myspec.ExampleGroup) {
						g.Before(func(_ *myspec.Example) error {
							_, err := fmt.Fprint(w, "1")
							return err
						})

						g.Describe("bar", func(g *myspec.ExampleGroup) {
							g.Before(func(_ *myspec.Example) error {
								_, err := fmt.Fprint(w, "2")
								return err
							})
						})

						g.Describe("baz", func(g *myspec.ExampleGroup) {
							g.It("inner")
						})

						g.It("outer")
					})
				})
			})
		},
	}
}

func afterSuite() m.Suite {
	return m.Suite{
		Name:        "after",
		Summary:     "after hooks run innermost first",
		Description: "after hooks",
		Body: func(g *myspec.ExampleGroup) {
			g.It("runs hooks after the example, innermost first", func(_ *myspec.Example) error {
				return expectOutput("worksafter2after1", func(w io.Writer) error {
					return describe(w, "foo", func(g *myspec.ExampleGroup) {
						g.After(func(_ *myspec.Example) error {
							_, err := fmt.Fprint(w, "after1")
							return err
						})

						g.Describe("bar", func(g *myspec.ExampleGroup) {
							g.After(func(_ *myspec.Example) error {
								_, err := fmt.Fprint(w, "after2")
								return err
							})

							g.It("works")
						})
					})
				})
			})
		},
	}
}

func stateSuite() m.Suite {
	return m.Suite{
		Name:        "state",
		Summary:     "hooks share per-example state with the body",
		Description: "per-example state",
		Body: func(g *myspec.ExampleGroup) {
			g.Before(func(ex *myspec.Example) error {
				ex.Set("greeting", "hello")
				return nil
			})

			g.It("sees values set by before hooks", func(ex *myspec.Example) error {
				v, _ := ex.Get("greeting")
				return expectEqual("hello", v)
			})

			g.Context("with a nested hook", func(g *myspec.ExampleGroup) {
				g.Before(func(ex *myspec.Example) error {
					v, _ := ex.Get("greeting")
					ex.Set("greeting", fmt.Sprintf("%v, world", v))

					return nil
				})

				g.It("sees the outer value refined", func(ex *myspec.Example) error {
					v, _ := ex.Get("greeting")
					return expectEqual("hello, world", v)
				})
			})

			g.It("is reported as pending without a body")
		},
	}
}
