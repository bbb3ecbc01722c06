package classgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Name(t *testing.T) {
	class, err := NewGenerator(TypeSpec{Name: "MyClass"}).Generate()
	require.NoError(t, err)

	assert.Equal(t, "MyClass", class.Name())
	assert.Equal(t, "MyClass", class.String())
	assert.Nil(t, class.Parent())
}

func TestGenerate_WithParent(t *testing.T) {
	super, err := Generate(TypeSpec{
		Name: "MySuperClass",
		Body: func(d *Definer) {
			d.DefineMethod("greet", func(_ *Instance, _ ...any) (any, error) {
				return "hello", nil
			})
		},
	})
	require.NoError(t, err)

	sub, err := Generate(TypeSpec{Name: "MySubClass", Parent: super})
	require.NoError(t, err)

	assert.Equal(t, "MySubClass", sub.Name())
	assert.Same(t, super, sub.Parent())
	assert.Equal(t, "MySuperClass", sub.Parent().Name())
	assert.True(t, sub.IsSubclassOf(super))
	assert.False(t, super.IsSubclassOf(sub))
	assert.Equal(t, []*Class{sub, super}, sub.Ancestors())

	got, err := sub.New().Call("greet")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.True(t, sub.New().RespondsTo("greet"))
}

func TestGenerate_WithMethods(t *testing.T) {
	lvar := "bar"

	class, err := NewGenerator(TypeSpec{Name: "TheClass"}).Generate(func(d *Definer) {
		d.DefineSingletonMethod("foo", func(_ *Class, _ ...any) (any, error) {
			return "foo", nil
		})

		d.DefineMethod("bar", func(_ *Instance, _ ...any) (any, error) {
			return lvar, nil
		})
	})
	require.NoError(t, err)

	assert.Equal(t, "TheClass", class.Name())

	foo, err := class.Call("foo")
	require.NoError(t, err)
	assert.Equal(t, "foo", foo)

	bar, err := class.New().Call("bar")
	require.NoError(t, err)
	assert.Equal(t, "bar", bar)

	lvar = "baz"

	bar, err = class.New().Call("bar")
	require.NoError(t, err)
	assert.Equal(t, "baz", bar, "method should observe the captured variable at call time")

	_, err = class.New().Call("foo")
	require.ErrorIs(t, err, ErrNoMethod)

	_, err = class.Call("bar")
	require.ErrorIs(t, err, ErrNoMethod)
}

func TestGenerate_DistinctClasses(t *testing.T) {
	spec := TypeSpec{Name: "Twin"}

	first, err := Generate(spec)
	require.NoError(t, err)

	second, err := Generate(spec)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec TypeSpec
		want error
	}{
		{"empty name", TypeSpec{Name: ""}, ErrInvalidName},
		{"blank name", TypeSpec{Name: "   "}, ErrInvalidName},
		{"zero parent", TypeSpec{Name: "Child", Parent: &Class{}}, ErrInvalidParent},
		{
			"empty method name",
			TypeSpec{Name: "Broken", Body: func(d *Definer) {
				d.DefineMethod("", func(_ *Instance, _ ...any) (any, error) { return nil, nil })
			}},
			ErrInvalidName,
		},
		{
			"nil singleton method",
			TypeSpec{Name: "Broken", Body: func(d *Definer) {
				d.DefineSingletonMethod("nothing", nil)
			}},
			ErrInvalidMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, err := Generate(tt.spec)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, class)
		})
	}
}

func TestGenerate_DoesNotMutateParent(t *testing.T) {
	parent, err := Generate(TypeSpec{Name: "Base"})
	require.NoError(t, err)

	_, err = Generate(TypeSpec{
		Name:   "Derived",
		Parent: parent,
		Body: func(d *Definer) {
			d.DefineMethod("extra", func(_ *Instance, _ ...any) (any, error) { return nil, nil })
		},
	})
	require.NoError(t, err)

	assert.False(t, parent.RespondsTo("extra"))
	assert.Empty(t, parent.InstanceMethods())
}

func TestInstance_Variables(t *testing.T) {
	class, err := Generate(TypeSpec{
		Name: "Counter",
		Body: func(d *Definer) {
			d.DefineMethod("increment", func(self *Instance, _ ...any) (any, error) {
				n, _ := self.Get("n")
				count, _ := n.(int)
				self.Set("n", count+1)

				return count + 1, nil
			})
		},
	})
	require.NoError(t, err)

	first := class.New()
	second := class.New()

	_, err = first.Call("increment")
	require.NoError(t, err)
	got, err := first.Call("increment")
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	_, ok := second.Get("n")
	assert.False(t, ok)
	assert.Same(t, class, first.Class())
}

func TestNoMethodError_Message(t *testing.T) {
	class, err := Generate(TypeSpec{Name: "Empty"})
	require.NoError(t, err)

	_, err = class.New().Call("missing")

	var noMethod *NoMethodError
	require.ErrorAs(t, err, &noMethod)
	assert.Equal(t, "missing", noMethod.Name)
	assert.Contains(t, err.Error(), `undefined method "missing" for #<Empty>`)
}

func TestGenerate_DefinerSealedAfterBody(t *testing.T) {
	var leaked *Definer

	class, err := Generate(TypeSpec{Name: "Sealed", Body: func(d *Definer) {
		leaked = d
	}})
	require.NoError(t, err)
	require.NotNil(t, leaked)

	assertSealed := func(t *testing.T, define func()) {
		t.Helper()

		defer func() {
			v := recover()
			require.NotNil(t, v, "expected a panic")

			err, ok := v.(error)
			require.True(t, ok, "panic value %v is not an error", v)
			require.ErrorIs(t, err, ErrSealed)
		}()

		define()
	}

	assertSealed(t, func() {
		leaked.DefineMethod("late", func(_ *Instance, _ ...any) (any, error) { return "late", nil })
	})
	assertSealed(t, func() {
		leaked.DefineSingletonMethod("late", func(_ *Class, _ ...any) (any, error) { return "late", nil })
	})

	assert.False(t, class.RespondsTo("late"))

	_, err = class.Call("late")
	require.ErrorIs(t, err, ErrNoMethod)
}
