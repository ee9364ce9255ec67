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

import (
	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/ast"
)

//===----------------------------------------------------------------------------------------====//
// Meta fields
//===----------------------------------------------------------------------------------------====//

// The three meta fields. They are not declared on any object type; FieldOf synthesizes them where
// the spec makes them available. Their resolvers are supplied by the executor, which owns the
// schema reference at resolution time.
//
// Reference: https://spec.graphql.org/October2021/#sec-Schema-Introspection
var (
	schemaMetaField = &FieldMeta{
		Name:        "__schema",
		Description: "Access the current type schema of this server.",
		Type:        &ast.NamedType{Name: "__Schema", NonNull: true},
	}

	typeMetaField = &FieldMeta{
		Name:        "__type",
		Description: "Request the type information of a single type.",
		Type:        &ast.NamedType{Name: "__Type"},
		Args: []*ArgumentMeta{
			{Name: "name", Type: &ast.NamedType{Name: "String", NonNull: true}},
		},
	}

	typenameMetaField = &FieldMeta{
		Name:        "__typename",
		Description: "The name of the current Object type at runtime.",
		Type:        &ast.NamedType{Name: "String", NonNull: true},
	}
)

// FieldOf looks up the field named name on a composite type, including the meta fields: __typename
// on every composite type, __schema and __type on the query root only.
func (schema *Schema) FieldOf(parent MetaType, name string) *FieldMeta {
	switch name {
	case "__schema":
		if parent == MetaType(schema.query) {
			return schemaMetaField
		}
		return nil
	case "__type":
		if parent == MetaType(schema.query) {
			return typeMetaField
		}
		return nil
	case "__typename":
		if IsCompositeType(parent) {
			return typenameMetaField
		}
		return nil
	}

	switch parent := parent.(type) {
	case *ObjectMeta:
		return parent.Field(name)
	case *InterfaceMeta:
		return parent.Field(name)
	}
	return nil
}

// IsMetaField reports whether a field definition is one of the synthesized meta fields.
func IsMetaField(field *FieldMeta) bool {
	return field == schemaMetaField || field == typeMetaField || field == typenameMetaField
}

// IntrospectType returns the source value the __type meta field resolves to: a traversable view of
// the named type, or nil when the name is not registered.
func (schema *Schema) IntrospectType(name string) interface{} {
	if schema.registry.Lookup(name) == nil {
		return nil
	}
	return typeView{schema: schema, ref: &ast.NamedType{Name: name}}
}

// IntrospectTypeRef wraps a syntactic type reference (e.g. a field's declared type) into the
// source value the __Type object traverses.
func (schema *Schema) IntrospectTypeRef(ref ast.Type) interface{} {
	return typeView{schema: schema, ref: ref}
}

//===----------------------------------------------------------------------------------------====//
// Source views
//===----------------------------------------------------------------------------------------====//

// typeView is the Source value flowing through __Type selections. It wraps a syntactic reference
// so the NON_NULL and LIST wrapper kinds traverse with the same machinery as named types.
type typeView struct {
	schema *Schema
	ref    ast.Type
}

func (t typeView) kind() string {
	if t.ref.IsNonNull() {
		return "NON_NULL"
	}
	if _, isList := t.ref.(*ast.ListType); isList {
		return "LIST"
	}
	return t.meta().Kind().String()
}

// meta resolves the view's underlying named type. Only valid when the view is not a wrapper.
func (t typeView) meta() MetaType {
	return t.schema.NamedTypeOf(t.ref)
}

// ofType unwraps one NON_NULL or LIST layer, or returns nil for a bare named type.
func (t typeView) ofType() interface{} {
	if t.ref.IsNonNull() {
		return typeView{schema: t.schema, ref: ast.NullableOf(t.ref)}
	}
	if list, isList := t.ref.(*ast.ListType); isList {
		return typeView{schema: t.schema, ref: list.Inner}
	}
	return nil
}

func (t typeView) isWrapper() bool {
	_, isList := t.ref.(*ast.ListType)
	return isList || t.ref.IsNonNull()
}

// fieldView is the Source value for __Field selections.
type fieldView struct {
	schema *Schema
	field  *FieldMeta
}

// inputValueView is the Source value for __InputValue selections; it covers both field arguments
// and input object fields.
type inputValueView struct {
	schema      *Schema
	name        string
	description string
	typ         ast.Type
	def         ast.InputValue
}

// enumValueView is the Source value for __EnumValue selections.
type enumValueView struct {
	value *EnumValueMeta
}

// directiveView is the Source value for __Directive selections.
type directiveView struct {
	schema    *Schema
	directive *DirectiveMeta
}

func argViews(schema *Schema, args []*ArgumentMeta) []interface{} {
	views := make([]interface{}, len(args))
	for i, arg := range args {
		views[i] = inputValueView{
			schema:      schema,
			name:        arg.Name,
			description: arg.Description,
			typ:         arg.Type,
			def:         arg.DefaultValue,
		}
	}
	return views
}

//===----------------------------------------------------------------------------------------====//
// Type registration
//===----------------------------------------------------------------------------------------====//

// registerIntrospectionTypes adds the __Schema/__Type family to a registry. The descriptors are
// built locally because __Type and __Field reference each other; package-level vars would form an
// initialization cycle.
func registerIntrospectionTypes(r *Registry) error {
	schemaType := &Object{Name: "__Schema"}
	typeType := &Object{Name: "__Type"}
	fieldType := &Object{Name: "__Field"}
	inputValueType := &Object{Name: "__InputValue"}
	enumValueType := &Object{Name: "__EnumValue"}
	directiveType := &Object{Name: "__Directive"}

	typeKindType := &Enum{
		Name:        "__TypeKind",
		Description: "An enum describing what kind of type a given `__Type` is.",
		Values: []EnumValue{
			{Name: "SCALAR"},
			{Name: "OBJECT"},
			{Name: "INTERFACE"},
			{Name: "UNION"},
			{Name: "ENUM"},
			{Name: "INPUT_OBJECT"},
			{Name: "LIST"},
			{Name: "NON_NULL"},
		},
	}

	directiveLocationType := &Enum{
		Name: "__DirectiveLocation",
		Description: "A Directive can be adjacent to many parts of the GraphQL language, a " +
			"__DirectiveLocation describes one such possible adjacency.",
		Values: []EnumValue{
			{Name: "QUERY"},
			{Name: "MUTATION"},
			{Name: "SUBSCRIPTION"},
			{Name: "FIELD"},
			{Name: "FRAGMENT_DEFINITION"},
			{Name: "FRAGMENT_SPREAD"},
			{Name: "INLINE_FRAGMENT"},
			{Name: "VARIABLE_DEFINITION"},
			{Name: "SCALAR"},
			{Name: "OBJECT"},
			{Name: "FIELD_DEFINITION"},
			{Name: "ARGUMENT_DEFINITION"},
			{Name: "INTERFACE"},
			{Name: "UNION"},
			{Name: "ENUM"},
			{Name: "ENUM_VALUE"},
			{Name: "INPUT_OBJECT"},
			{Name: "INPUT_FIELD_DEFINITION"},
		},
	}

	falseLiteral := ast.ScalarValue{Value: graphql.BooleanValue(false)}
	includeDeprecatedArg := []Argument{
		{Name: "includeDeprecated", Type: TypeOf(Boolean), Default: falseLiteral},
	}

	schemaType.Description = "A GraphQL Schema defines the capabilities of a GraphQL server."
	schemaType.Fields = []Field{
		{
			Name: "types",
			Type: ListOf(TypeOf(typeType).NonNull()).NonNull(),
			Resolve: func(p ResolveParams) (interface{}, error) {
				schema := p.Source.(*Schema)
				views := make([]interface{}, 0, len(schema.registry.order))
				for _, name := range schema.registry.order {
					views = append(views, schema.IntrospectType(name))
				}
				return views, nil
			},
		},
		{
			Name: "queryType",
			Type: TypeOf(typeType).NonNull(),
			Resolve: func(p ResolveParams) (interface{}, error) {
				schema := p.Source.(*Schema)
				return schema.IntrospectType(schema.query.Name), nil
			},
		},
		{
			Name: "mutationType",
			Type: TypeOf(typeType),
			Resolve: func(p ResolveParams) (interface{}, error) {
				schema := p.Source.(*Schema)
				if schema.mutation == nil {
					return nil, nil
				}
				return schema.IntrospectType(schema.mutation.Name), nil
			},
		},
		{
			Name: "subscriptionType",
			Type: TypeOf(typeType),
			Resolve: func(p ResolveParams) (interface{}, error) {
				schema := p.Source.(*Schema)
				if schema.subscription == nil {
					return nil, nil
				}
				return schema.IntrospectType(schema.subscription.Name), nil
			},
		},
		{
			Name: "directives",
			Type: ListOf(TypeOf(directiveType).NonNull()).NonNull(),
			Resolve: func(p ResolveParams) (interface{}, error) {
				schema := p.Source.(*Schema)
				directives := schema.registry.Directives()
				views := make([]interface{}, len(directives))
				for i, directive := range directives {
					views[i] = directiveView{schema: schema, directive: directive}
				}
				return views, nil
			},
		},
	}

	typeType.Description = "The fundamental unit of any GraphQL Schema is the type."
	typeType.Fields = []Field{
		{
			Name: "kind",
			Type: TypeOf(typeKindType).NonNull(),
			Resolve: func(p ResolveParams) (interface{}, error) {
				return p.Source.(typeView).kind(), nil
			},
		},
		{
			Name: "name",
			Type: TypeOf(String),
			Resolve: func(p ResolveParams) (interface{}, error) {
				t := p.Source.(typeView)
				if t.isWrapper() {
					return nil, nil
				}
				return TypeNameOf(t.meta()), nil
			},
		},
		{
			Name: "description",
			Type: TypeOf(String),
			Resolve: func(p ResolveParams) (interface{}, error) {
				t := p.Source.(typeView)
				if t.isWrapper() {
					return nil, nil
				}
				if description := DescriptionOf(t.meta()); description != "" {
					return description, nil
				}
				return nil, nil
			},
		},
		{
			Name: "specifiedByURL",
			Type: TypeOf(String),
			Resolve: func(p ResolveParams) (interface{}, error) {
				t := p.Source.(typeView)
				if t.isWrapper() {
					return nil, nil
				}
				if scalar, ok := t.meta().(*ScalarMeta); ok && scalar.SpecifiedByURL != "" {
					return scalar.SpecifiedByURL, nil
				}
				return nil, nil
			},
		},
		{
			Name: "fields",
			Type: ListOf(TypeOf(fieldType).NonNull()),
			Args: includeDeprecatedArg,
			Resolve: func(p ResolveParams) (interface{}, error) {
				t := p.Source.(typeView)
				if t.isWrapper() {
					return nil, nil
				}
				var fields []*FieldMeta
				switch meta := t.meta().(type) {
				case *ObjectMeta:
					fields = meta.Fields
				case *InterfaceMeta:
					fields = meta.Fields
				default:
					return nil, nil
				}
				includeDeprecated, _ := p.Args["includeDeprecated"].(bool)
				views := make([]interface{}, 0, len(fields))
				for _, field := range fields {
					if field.IsDeprecated() && !includeDeprecated {
						continue
					}
					views = append(views, fieldView{schema: t.schema, field: field})
				}
				return views, nil
			},
		},
		{
			Name: "interfaces",
			Type: ListOf(TypeOf(typeType).NonNull()),
			Resolve: func(p ResolveParams) (interface{}, error) {
				t := p.Source.(typeView)
				if t.isWrapper() {
					return nil, nil
				}
				switch meta := t.meta().(type) {
				case *ObjectMeta:
					views := make([]interface{}, len(meta.Interfaces))
					for i, name := range meta.Interfaces {
						views[i] = t.schema.IntrospectType(name)
					}
					return views, nil
				case *InterfaceMeta:
					return []interface{}{}, nil
				}
				return nil, nil
			},
		},
		{
			Name: "possibleTypes",
			Type: ListOf(TypeOf(typeType).NonNull()),
			Resolve: func(p ResolveParams) (interface{}, error) {
				t := p.Source.(typeView)
				if t.isWrapper() {
					return nil, nil
				}
				meta := t.meta()
				if !IsAbstractType(meta) {
					return nil, nil
				}
				possible := t.schema.PossibleTypes(meta)
				views := make([]interface{}, len(possible))
				for i, name := range possible {
					views[i] = t.schema.IntrospectType(name)
				}
				return views, nil
			},
		},
		{
			Name: "enumValues",
			Type: ListOf(TypeOf(enumValueType).NonNull()),
			Args: includeDeprecatedArg,
			Resolve: func(p ResolveParams) (interface{}, error) {
				t := p.Source.(typeView)
				if t.isWrapper() {
					return nil, nil
				}
				enum, ok := t.meta().(*EnumMeta)
				if !ok {
					return nil, nil
				}
				includeDeprecated, _ := p.Args["includeDeprecated"].(bool)
				views := make([]interface{}, 0, len(enum.Values))
				for _, value := range enum.Values {
					if value.IsDeprecated() && !includeDeprecated {
						continue
					}
					views = append(views, enumValueView{value: value})
				}
				return views, nil
			},
		},
		{
			Name: "inputFields",
			Type: ListOf(TypeOf(inputValueType).NonNull()),
			Resolve: func(p ResolveParams) (interface{}, error) {
				t := p.Source.(typeView)
				if t.isWrapper() {
					return nil, nil
				}
				input, ok := t.meta().(*InputObjectMeta)
				if !ok {
					return nil, nil
				}
				views := make([]interface{}, len(input.Fields))
				for i, field := range input.Fields {
					views[i] = inputValueView{
						schema:      t.schema,
						name:        field.Name,
						description: field.Description,
						typ:         field.Type,
						def:         field.DefaultValue,
					}
				}
				return views, nil
			},
		},
		{
			Name: "isOneOf",
			Type: TypeOf(Boolean),
			Resolve: func(p ResolveParams) (interface{}, error) {
				t := p.Source.(typeView)
				if t.isWrapper() {
					return nil, nil
				}
				if input, ok := t.meta().(*InputObjectMeta); ok {
					return input.OneOf, nil
				}
				return nil, nil
			},
		},
		{
			Name: "ofType",
			Type: TypeOf(typeType),
			Resolve: func(p ResolveParams) (interface{}, error) {
				return p.Source.(typeView).ofType(), nil
			},
		},
	}

	fieldType.Description = "Object and Interface types are described by a list of Fields."
	fieldType.Fields = []Field{
		{
			Name: "name",
			Type: TypeOf(String).NonNull(),
			Resolve: func(p ResolveParams) (interface{}, error) {
				return p.Source.(fieldView).field.Name, nil
			},
		},
		{
			Name: "description",
			Type: TypeOf(String),
			Resolve: func(p ResolveParams) (interface{}, error) {
				if description := p.Source.(fieldView).field.Description; description != "" {
					return description, nil
				}
				return nil, nil
			},
		},
		{
			Name: "args",
			Type: ListOf(TypeOf(inputValueType).NonNull()).NonNull(),
			Resolve: func(p ResolveParams) (interface{}, error) {
				view := p.Source.(fieldView)
				return argViews(view.schema, view.field.Args), nil
			},
		},
		{
			Name: "type",
			Type: TypeOf(typeType).NonNull(),
			Resolve: func(p ResolveParams) (interface{}, error) {
				view := p.Source.(fieldView)
				return view.schema.IntrospectTypeRef(view.field.Type), nil
			},
		},
		{
			Name: "isDeprecated",
			Type: TypeOf(Boolean).NonNull(),
			Resolve: func(p ResolveParams) (interface{}, error) {
				return p.Source.(fieldView).field.IsDeprecated(), nil
			},
		},
		{
			Name: "deprecationReason",
			Type: TypeOf(String),
			Resolve: func(p ResolveParams) (interface{}, error) {
				if reason := p.Source.(fieldView).field.DeprecationReason; reason != "" {
					return reason, nil
				}
				return nil, nil
			},
		},
	}

	inputValueType.Description = "Arguments provided to Fields or Directives and the input fields " +
		"of an InputObject are represented as Input Values."
	inputValueType.Fields = []Field{
		{
			Name: "name",
			Type: TypeOf(String).NonNull(),
			Resolve: func(p ResolveParams) (interface{}, error) {
				return p.Source.(inputValueView).name, nil
			},
		},
		{
			Name: "description",
			Type: TypeOf(String),
			Resolve: func(p ResolveParams) (interface{}, error) {
				if description := p.Source.(inputValueView).description; description != "" {
					return description, nil
				}
				return nil, nil
			},
		},
		{
			Name: "type",
			Type: TypeOf(typeType).NonNull(),
			Resolve: func(p ResolveParams) (interface{}, error) {
				view := p.Source.(inputValueView)
				return view.schema.IntrospectTypeRef(view.typ), nil
			},
		},
		{
			Name: "defaultValue",
			Type: TypeOf(String),
			Resolve: func(p ResolveParams) (interface{}, error) {
				view := p.Source.(inputValueView)
				if view.def == nil {
					return nil, nil
				}
				return view.def.String(), nil
			},
		},
	}

	enumValueType.Description = "One possible value for a given Enum."
	enumValueType.Fields = []Field{
		{
			Name: "name",
			Type: TypeOf(String).NonNull(),
			Resolve: func(p ResolveParams) (interface{}, error) {
				return p.Source.(enumValueView).value.Name, nil
			},
		},
		{
			Name: "description",
			Type: TypeOf(String),
			Resolve: func(p ResolveParams) (interface{}, error) {
				if description := p.Source.(enumValueView).value.Description; description != "" {
					return description, nil
				}
				return nil, nil
			},
		},
		{
			Name: "isDeprecated",
			Type: TypeOf(Boolean).NonNull(),
			Resolve: func(p ResolveParams) (interface{}, error) {
				return p.Source.(enumValueView).value.IsDeprecated(), nil
			},
		},
		{
			Name: "deprecationReason",
			Type: TypeOf(String),
			Resolve: func(p ResolveParams) (interface{}, error) {
				if reason := p.Source.(enumValueView).value.DeprecationReason; reason != "" {
					return reason, nil
				}
				return nil, nil
			},
		},
	}

	directiveType.Description = "A Directive provides a way to describe alternate runtime " +
		"execution and type validation behavior in a GraphQL document."
	directiveType.Fields = []Field{
		{
			Name: "name",
			Type: TypeOf(String).NonNull(),
			Resolve: func(p ResolveParams) (interface{}, error) {
				return p.Source.(directiveView).directive.Name, nil
			},
		},
		{
			Name: "description",
			Type: TypeOf(String),
			Resolve: func(p ResolveParams) (interface{}, error) {
				if description := p.Source.(directiveView).directive.Description; description != "" {
					return description, nil
				}
				return nil, nil
			},
		},
		{
			Name: "locations",
			Type: ListOf(TypeOf(directiveLocationType).NonNull()).NonNull(),
			Resolve: func(p ResolveParams) (interface{}, error) {
				locations := p.Source.(directiveView).directive.Locations
				names := make([]interface{}, len(locations))
				for i, location := range locations {
					names[i] = location.String()
				}
				return names, nil
			},
		},
		{
			Name: "args",
			Type: ListOf(TypeOf(inputValueType).NonNull()).NonNull(),
			Resolve: func(p ResolveParams) (interface{}, error) {
				view := p.Source.(directiveView)
				return argViews(view.schema, view.directive.Args), nil
			},
		},
		{
			Name: "isRepeatable",
			Type: TypeOf(Boolean).NonNull(),
			Resolve: func(p ResolveParams) (interface{}, error) {
				return false, nil
			},
		},
	}

	for _, d := range []Descriptor{
		schemaType,
		typeType,
		fieldType,
		inputValueType,
		enumValueType,
		directiveType,
		typeKindType,
		directiveLocationType,
	} {
		if err := r.addType(d); err != nil {
			return err
		}
	}
	return nil
}
