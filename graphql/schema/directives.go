/**
 * Copyright (c) 2025, The Quell Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package schema

// DirectiveLocation identifies one place in a document (or a type definition) where a directive
// may appear. String() yields the introspection spelling.
type DirectiveLocation int

// Enumeration of DirectiveLocation
const (
	LocationQuery DirectiveLocation = iota
	LocationMutation
	LocationSubscription
	LocationField
	LocationFragmentDefinition
	LocationFragmentSpread
	LocationInlineFragment
	LocationVariableDefinition

	LocationScalar
	LocationObject
	LocationFieldDefinition
	LocationArgumentDefinition
	LocationInterface
	LocationUnion
	LocationEnum
	LocationEnumValue
	LocationInputObject
	LocationInputFieldDefinition
)

func (location DirectiveLocation) String() string {
	switch location {
	case LocationQuery:
		return "QUERY"
	case LocationMutation:
		return "MUTATION"
	case LocationSubscription:
		return "SUBSCRIPTION"
	case LocationField:
		return "FIELD"
	case LocationFragmentDefinition:
		return "FRAGMENT_DEFINITION"
	case LocationFragmentSpread:
		return "FRAGMENT_SPREAD"
	case LocationInlineFragment:
		return "INLINE_FRAGMENT"
	case LocationVariableDefinition:
		return "VARIABLE_DEFINITION"
	case LocationScalar:
		return "SCALAR"
	case LocationObject:
		return "OBJECT"
	case LocationFieldDefinition:
		return "FIELD_DEFINITION"
	case LocationArgumentDefinition:
		return "ARGUMENT_DEFINITION"
	case LocationInterface:
		return "INTERFACE"
	case LocationUnion:
		return "UNION"
	case LocationEnum:
		return "ENUM"
	case LocationEnumValue:
		return "ENUM_VALUE"
	case LocationInputObject:
		return "INPUT_OBJECT"
	case LocationInputFieldDefinition:
		return "INPUT_FIELD_DEFINITION"
	}
	return "UNKNOWN"
}

// Directive declares a directive to a schema: its name (without "@"), the locations it may appear
// in, and its arguments.
type Directive struct {
	Name        string
	Description string
	Locations   []DirectiveLocation
	Args        []Argument
}

// DirectiveMeta is the registered form of a directive declaration, with argument types resolved.
type DirectiveMeta struct {
	Name        string
	Description string
	Locations   []DirectiveLocation
	Args        []*ArgumentMeta
}

// Argument looks up an argument declaration by name. Returns nil if absent.
func (m *DirectiveMeta) Argument(name string) *ArgumentMeta {
	for _, arg := range m.Args {
		if arg.Name == name {
			return arg
		}
	}
	return nil
}

// HasLocation reports whether the directive may appear at the given location.
func (m *DirectiveMeta) HasLocation(location DirectiveLocation) bool {
	for _, l := range m.Locations {
		if l == location {
			return true
		}
	}
	return false
}

// The built-in directives every schema carries.
//
// Reference: https://spec.graphql.org/October2021/#sec-Type-System.Directives.Built-in-Directives
var builtinDirectives = []*Directive{
	{
		Name:        "skip",
		Description: "Directs the executor to skip this field or fragment when the `if` argument is true.",
		Locations: []DirectiveLocation{
			LocationField,
			LocationFragmentSpread,
			LocationInlineFragment,
		},
		Args: []Argument{
			{Name: "if", Description: "Skipped when true.", Type: TypeOf(Boolean).NonNull()},
		},
	},
	{
		Name:        "include",
		Description: "Directs the executor to include this field or fragment only when the `if` argument is true.",
		Locations: []DirectiveLocation{
			LocationField,
			LocationFragmentSpread,
			LocationInlineFragment,
		},
		Args: []Argument{
			{Name: "if", Description: "Included when true.", Type: TypeOf(Boolean).NonNull()},
		},
	},
	{
		Name:        "deprecated",
		Description: "Marks an element of a GraphQL schema as no longer supported.",
		Locations: []DirectiveLocation{
			LocationFieldDefinition,
			LocationArgumentDefinition,
			LocationInputFieldDefinition,
			LocationEnumValue,
		},
		Args: []Argument{
			{
				Name:        "reason",
				Description: "Explains why this element was deprecated.",
				Type:        TypeOf(String),
			},
		},
	},
	{
		Name:        "specifiedBy",
		Description: "Exposes a URL that specifies the behavior of this scalar.",
		Locations:   []DirectiveLocation{LocationScalar},
		Args: []Argument{
			{
				Name:        "url",
				Description: "The URL that specifies the behavior of this scalar.",
				Type:        TypeOf(String).NonNull(),
			},
		},
	},
}
