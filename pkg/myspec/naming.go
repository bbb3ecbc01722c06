package myspec

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const anonymousGroupName = "Anonymous"

// Descriptions returns the descriptions from the root group down to g.
func (g *ExampleGroup) Descriptions() []string {
	chain := g.ancestry()

	descriptions := make([]string, len(chain))
	for i, scope := range chain {
		descriptions[i] = scope.description
	}

	return descriptions
}

// FullDescription joins the non-empty descriptions of the chain with spaces.
func (g *ExampleGroup) FullDescription() string {
	return ExampleInfo{Path: g.Descriptions()}.FullDescription()
}

// DisplayName camel-cases each description of the chain and joins them with
// "::", so describe("foo") { describe("bar") } is named Foo::Bar.
func (g *ExampleGroup) DisplayName() string {
	descriptions := g.Descriptions()

	names := make([]string, len(descriptions))
	for i, description := range descriptions {
		names[i] = camelCase(description)
	}

	return strings.Join(names, "::")
}

// camelCase turns a description into an identifier-like name.
func camelCase(description string) string {
	words := strings.FieldsFunc(description, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	if len(words) == 0 {
		return anonymousGroupName
	}

	// Casers carry state, so each call gets its own.
	caser := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder
	for _, word := range words {
		b.WriteString(caser.String(word))
	}

	return b.String()
}
