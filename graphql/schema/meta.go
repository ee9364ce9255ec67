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

// Package schema builds and holds the named-type graph a document is validated and executed
// against. Applications describe their types with descriptor structs (Object, Interface, Enum,
// ...); New registers them recursively into a Registry of MetaType entries, using a placeholder
// protocol so cyclic type graphs need no forward declarations.
package schema

import (
	"context"

	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/ast"
)

// TypeKind discriminates the MetaType variants. String() yields the introspection spelling.
type TypeKind int

// Enumeration of TypeKind
const (
	KindScalar TypeKind = iota
	KindObject
	KindInterface
	KindUnion
	KindEnum
	KindInputObject
	// KindPlaceholder marks a registry slot whose type is still being built. Placeholders are only
	// observable from inside a descriptor's meta-building callback; a finished registry contains
	// none.
	KindPlaceholder
)

func (kind TypeKind) String() string {
	switch kind {
	case KindScalar:
		return "SCALAR"
	case KindObject:
		return "OBJECT"
	case KindInterface:
		return "INTERFACE"
	case KindUnion:
		return "UNION"
	case KindEnum:
		return "ENUM"
	case KindInputObject:
		return "INPUT_OBJECT"
	case KindPlaceholder:
		return "PLACEHOLDER"
	}
	return "UNKNOWN"
}

// MetaType is one resolved entry in the Registry. The List and NonNull wrappers are not MetaTypes;
// they are spelled structurally as ast.Type references wherever a meta type refers to another
// type.
type MetaType interface {
	Kind() TypeKind
	metaType()
}

// TypeNameOf returns the name under which a meta type is registered.
func TypeNameOf(m MetaType) string {
	switch m := m.(type) {
	case *ScalarMeta:
		return m.Name
	case *ObjectMeta:
		return m.Name
	case *InterfaceMeta:
		return m.Name
	case *UnionMeta:
		return m.Name
	case *EnumMeta:
		return m.Name
	case *InputObjectMeta:
		return m.Name
	case *PlaceholderMeta:
		return m.Name
	}
	return ""
}

// DescriptionOf returns a meta type's description, or "".
func DescriptionOf(m MetaType) string {
	switch m := m.(type) {
	case *ScalarMeta:
		return m.Description
	case *ObjectMeta:
		return m.Description
	case *InterfaceMeta:
		return m.Description
	case *UnionMeta:
		return m.Description
	case *EnumMeta:
		return m.Description
	case *InputObjectMeta:
		return m.Description
	}
	return ""
}

// IsInputType returns true for kinds usable as argument and variable types.
func IsInputType(m MetaType) bool {
	switch m.Kind() {
	case KindScalar, KindEnum, KindInputObject:
		return true
	}
	return false
}

// IsLeafType returns true for kinds at which selection sets must stop.
func IsLeafType(m MetaType) bool {
	switch m.Kind() {
	case KindScalar, KindEnum:
		return true
	}
	return false
}

// IsCompositeType returns true for kinds that require a sub-selection.
func IsCompositeType(m MetaType) bool {
	switch m.Kind() {
	case KindObject, KindInterface, KindUnion:
		return true
	}
	return false
}

// IsAbstractType returns true for kinds that need a runtime decision about the concrete
// implementer.
func IsAbstractType(m MetaType) bool {
	switch m.Kind() {
	case KindInterface, KindUnion:
		return true
	}
	return false
}

//===----------------------------------------------------------------------------------------====//
// Resolvers
//===----------------------------------------------------------------------------------------====//

// ResolveParams carries everything a field resolver receives.
type ResolveParams struct {
	// Context is the request-scoped context. It is shared by reference across all concurrently
	// resolving fields of one request and must be treated as immutable.
	Context context.Context

	// Source is the value the enclosing object resolved to.
	Source interface{}

	// Args holds the coerced argument values, with declared defaults already applied.
	Args map[string]interface{}
}

// FieldResolver produces a field's value. A nil resolver falls back to the executor's default
// resolver (map lookup or struct field access on Source).
type FieldResolver func(params ResolveParams) (interface{}, error)

// TypeResolver names the concrete object type for a value of an abstract type. The returned name
// must be one of the abstract type's possible types; anything else is an execution error, which
// keeps the implementer set closed.
type TypeResolver func(value interface{}) string

//===----------------------------------------------------------------------------------------====//
// Meta type variants
//===----------------------------------------------------------------------------------------====//

// ScalarMeta describes a leaf type with custom result/input coercion.
type ScalarMeta struct {
	Name           string
	Description    string
	SpecifiedByURL string

	// CoerceResult converts a resolver-returned Go value into the wire scalar representation.
	CoerceResult func(value interface{}) (graphql.ScalarValue, error)

	// CoerceInput converts a const literal into the Go value handed to resolvers.
	CoerceInput func(value ast.InputValue) (interface{}, error)
}

func (m *ScalarMeta) Kind() TypeKind { return KindScalar }
func (m *ScalarMeta) metaType()      {}

// ObjectMeta describes a concrete output type with resolvable fields.
type ObjectMeta struct {
	Name        string
	Description string

	// Interfaces lists the names of the interfaces the object implements.
	Interfaces []string

	// Fields are ordered as declared.
	Fields []*FieldMeta
}

func (m *ObjectMeta) Kind() TypeKind { return KindObject }
func (m *ObjectMeta) metaType()      {}

// Field looks up a field definition by name. Returns nil if absent.
func (m *ObjectMeta) Field(name string) *FieldMeta {
	for _, field := range m.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

// FieldMeta describes one output field: its type reference, declared arguments and resolver
// binding.
type FieldMeta struct {
	Name              string
	Description       string
	Type              ast.Type
	Args              []*ArgumentMeta
	Resolve           FieldResolver
	DeprecationReason string
}

// Argument looks up an argument declaration by name. Returns nil if absent.
func (m *FieldMeta) Argument(name string) *ArgumentMeta {
	for _, arg := range m.Args {
		if arg.Name == name {
			return arg
		}
	}
	return nil
}

// IsDeprecated returns true when a deprecation reason is present.
func (m *FieldMeta) IsDeprecated() bool { return m.DeprecationReason != "" }

// ArgumentMeta describes one declared argument (of a field or a directive).
type ArgumentMeta struct {
	Name        string
	Description string
	Type        ast.Type

	// DefaultValue is nil when the argument declares no default. An explicit null default is a
	// non-nil ast.NullValue.
	DefaultValue ast.InputValue
}

// HasDefault returns true when the argument declares a default value.
func (m *ArgumentMeta) HasDefault() bool { return m.DefaultValue != nil }

// InterfaceMeta describes an abstract type over the objects that declare they implement it.
type InterfaceMeta struct {
	Name        string
	Description string
	Fields      []*FieldMeta

	// PossibleTypes is the closed set of implementing object names, filled in when the schema is
	// finalized.
	PossibleTypes []string

	// ResolveType decides the concrete implementer for a resolved value.
	ResolveType TypeResolver
}

func (m *InterfaceMeta) Kind() TypeKind { return KindInterface }
func (m *InterfaceMeta) metaType()      {}

// Field looks up a field definition by name. Returns nil if absent.
func (m *InterfaceMeta) Field(name string) *FieldMeta {
	for _, field := range m.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

// UnionMeta describes an abstract type over an explicit member set.
type UnionMeta struct {
	Name          string
	Description   string
	PossibleTypes []string
	ResolveType   TypeResolver
}

func (m *UnionMeta) Kind() TypeKind { return KindUnion }
func (m *UnionMeta) metaType()      {}

// EnumMeta describes an enum and its declared values.
type EnumMeta struct {
	Name        string
	Description string
	Values      []*EnumValueMeta
}

func (m *EnumMeta) Kind() TypeKind { return KindEnum }
func (m *EnumMeta) metaType()      {}

// Value looks up an enum value by name. Returns nil if absent.
func (m *EnumMeta) Value(name string) *EnumValueMeta {
	for _, value := range m.Values {
		if value.Name == name {
			return value
		}
	}
	return nil
}

// ValueFor finds the enum value whose internal value equals the given resolver result. Falls back
// to matching the name itself.
func (m *EnumMeta) ValueFor(result interface{}) *EnumValueMeta {
	for _, value := range m.Values {
		if value.Value == result {
			return value
		}
	}
	if name, ok := result.(string); ok {
		return m.Value(name)
	}
	return nil
}

// EnumValueMeta is one declared enum value.
type EnumValueMeta struct {
	Name        string
	Description string

	// Value is the internal Go value resolvers produce and receive for this enum value; it defaults
	// to the name.
	Value interface{}

	DeprecationReason string
}

// IsDeprecated returns true when a deprecation reason is present.
func (m *EnumValueMeta) IsDeprecated() bool { return m.DeprecationReason != "" }

// InputObjectMeta describes an input-only composite type.
type InputObjectMeta struct {
	Name        string
	Description string
	Fields      []*InputFieldMeta

	// OneOf marks the input object as requiring exactly one non-null field.
	OneOf bool
}

func (m *InputObjectMeta) Kind() TypeKind { return KindInputObject }
func (m *InputObjectMeta) metaType()      {}

// Field looks up an input field by name. Returns nil if absent.
func (m *InputObjectMeta) Field(name string) *InputFieldMeta {
	for _, field := range m.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

// InputFieldMeta is one field of an input object.
type InputFieldMeta struct {
	Name        string
	Description string
	Type        ast.Type
	DefaultValue ast.InputValue
}

// HasDefault returns true when the field declares a default value.
func (m *InputFieldMeta) HasDefault() bool { return m.DefaultValue != nil }

// PlaceholderMeta is the sentinel occupying a registry slot while its type's meta-building
// callback runs. Lookups performed by the callback on its own name (self-reference or mutual
// recursion) see the placeholder instead of recursing.
type PlaceholderMeta struct {
	Name string
}

func (m *PlaceholderMeta) Kind() TypeKind { return KindPlaceholder }
func (m *PlaceholderMeta) metaType()      {}
