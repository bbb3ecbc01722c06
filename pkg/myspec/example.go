package myspec

// Example is a single running example. It exists only while its It call runs.
type Example struct {
	description string
	group       *ExampleGroup
	vars        map[string]any
	finished    bool
}

func newExample(g *ExampleGroup, description string) *Example {
	return &Example{
		description: description,
		group:       g,
		vars:        make(map[string]any),
	}
}

// Description returns the description passed to It.
func (ex *Example) Description() string {
	return ex.description
}

// Group returns the group the example was declared in.
func (ex *Example) Group() *ExampleGroup {
	return ex.group
}

// Info returns the identification handed to reporters.
func (ex *Example) Info() ExampleInfo {
	return ExampleInfo{Path: ex.group.Descriptions(), Description: ex.description}
}

// FullDescription joins the group chain and the example description.
func (ex *Example) FullDescription() string {
	return ex.Info().FullDescription()
}

// Call invokes the member called name, resolving it from the example's group outwards.
func (ex *Example) Call(name string, args ...any) (any, error) {
	if ex.finished {
		return nil, &NameError{Name: name, Scope: ex.group.DisplayName()}
	}

	fn, err := ex.group.Lookup(name)
	if err != nil {
		return nil, err
	}

	return fn(ex, args...)
}

// RespondsTo reports whether name resolves from the example's group.
func (ex *Example) RespondsTo(name string) bool {
	if ex.finished {
		return false
	}

	_, err := ex.group.Lookup(name)

	return err == nil
}

// Set stores a value shared by the hooks and body of this example only.
func (ex *Example) Set(key string, value any) {
	ex.vars[key] = value
}

// Get returns a value stored with Set.
func (ex *Example) Get(key string) (any, bool) {
	value, ok := ex.vars[key]
	return value, ok
}
