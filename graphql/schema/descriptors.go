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
	"fmt"

	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/ast"
)

// Descriptor describes one named type to be registered into a schema. Applications construct
// descriptor values (Object, Interface, Union, Enum, Scalar, InputObject) and connect them with
// TypeRefs; New walks the references and registers every reachable descriptor.
//
// Descriptor identity matters: registering two distinct descriptors under the same type name is an
// error, while reaching the same descriptor value through many references is the common case and
// registers it once.
type Descriptor interface {
	// TypeName returns the name the type registers under.
	TypeName() string

	buildMeta(r *Registry) (MetaType, error)
}

//===----------------------------------------------------------------------------------------====//
// Type references
//===----------------------------------------------------------------------------------------====//

// TypeRef is a reference from one descriptor to another, with optional list and non-null
// modifiers. The zero TypeRef is invalid and rejected during registration.
type TypeRef struct {
	named   Descriptor
	list    *TypeRef
	nonNull bool
}

// TypeOf references the given descriptor as a nullable named type.
func TypeOf(d Descriptor) TypeRef {
	return TypeRef{named: d}
}

// ListOf wraps an element reference in a nullable list.
func ListOf(element TypeRef) TypeRef {
	return TypeRef{list: &element}
}

// NonNull returns the same reference with the non-null modifier set.
func (ref TypeRef) NonNull() TypeRef {
	ref.nonNull = true
	return ref
}

// resolve registers every descriptor the reference reaches and renders it as a syntactic type.
// Field and argument types are stored as ast.Type so the validator and executor compare declared
// and queried types with one representation.
func (ref TypeRef) resolve(r *Registry) (ast.Type, error) {
	switch {
	case ref.named != nil:
		named, err := r.refType(ref.named)
		if err != nil {
			return nil, err
		}
		named.NonNull = ref.nonNull
		return named, nil

	case ref.list != nil:
		inner, err := ref.list.resolve(r)
		if err != nil {
			return nil, err
		}
		return &ast.ListType{Inner: inner, NonNull: ref.nonNull}, nil
	}
	return nil, fmt.Errorf("empty type reference")
}

func (ref TypeRef) isZero() bool {
	return ref.named == nil && ref.list == nil
}

//===----------------------------------------------------------------------------------------====//
// Output type descriptors
//===----------------------------------------------------------------------------------------====//

// Object describes a concrete output type.
type Object struct {
	Name        string
	Description string

	// Interfaces lists the interfaces this object implements. The schema's finalize pass records
	// the object into each interface's possible types.
	Interfaces []*Interface

	Fields []Field
}

// TypeName implements Descriptor.
func (d *Object) TypeName() string { return d.Name }

func (d *Object) buildMeta(r *Registry) (MetaType, error) {
	meta := &ObjectMeta{
		Name:        d.Name,
		Description: d.Description,
	}

	for _, iface := range d.Interfaces {
		if _, err := r.refType(iface); err != nil {
			return nil, err
		}
		meta.Interfaces = append(meta.Interfaces, iface.Name)
	}

	fields, err := buildFields(r, d.Name, d.Fields)
	if err != nil {
		return nil, err
	}
	meta.Fields = fields
	return meta, nil
}

// Field describes one output field of an Object or Interface.
type Field struct {
	Name        string
	Description string
	Type        TypeRef
	Args        []Argument

	// Resolve produces the field's value; nil selects the default resolver.
	Resolve FieldResolver

	DeprecationReason string
}

// Argument describes one declared argument of a field or directive.
type Argument struct {
	Name        string
	Description string
	Type        TypeRef

	// Default is the declared default value as a const literal; nil means no default. Use
	// ast.NullValue{} for an explicit null default.
	Default ast.InputValue
}

// Interface describes an abstract output type. Its possible types are the objects that list it in
// their Interfaces; the set is computed when the schema is finalized.
type Interface struct {
	Name        string
	Description string
	Fields      []Field

	// ResolveType names the concrete object type for a resolved value. Required when the interface
	// is used as a field type.
	ResolveType TypeResolver
}

// TypeName implements Descriptor.
func (d *Interface) TypeName() string { return d.Name }

func (d *Interface) buildMeta(r *Registry) (MetaType, error) {
	fields, err := buildFields(r, d.Name, d.Fields)
	if err != nil {
		return nil, err
	}
	return &InterfaceMeta{
		Name:        d.Name,
		Description: d.Description,
		Fields:      fields,
		ResolveType: d.ResolveType,
	}, nil
}

// Union describes an abstract output type over an explicit list of object members.
type Union struct {
	Name        string
	Description string
	Members     []*Object

	// ResolveType names the concrete member type for a resolved value.
	ResolveType TypeResolver
}

// TypeName implements Descriptor.
func (d *Union) TypeName() string { return d.Name }

func (d *Union) buildMeta(r *Registry) (MetaType, error) {
	meta := &UnionMeta{
		Name:        d.Name,
		Description: d.Description,
		ResolveType: d.ResolveType,
	}
	if len(d.Members) == 0 {
		return nil, fmt.Errorf("union %q must define one or more member types", d.Name)
	}
	for _, member := range d.Members {
		if _, err := r.refType(member); err != nil {
			return nil, err
		}
		meta.PossibleTypes = append(meta.PossibleTypes, member.Name)
	}
	return meta, nil
}

func buildFields(r *Registry, typeName string, fields []Field) ([]*FieldMeta, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("type %q must define one or more fields", typeName)
	}

	metas := make([]*FieldMeta, 0, len(fields))
	for _, field := range fields {
		if field.Type.isZero() {
			return nil, fmt.Errorf("field %q of type %q has no type", field.Name, typeName)
		}
		fieldType, err := field.Type.resolve(r)
		if err != nil {
			return nil, err
		}
		args, err := buildArguments(r, field.Args)
		if err != nil {
			return nil, err
		}
		metas = append(metas, &FieldMeta{
			Name:              field.Name,
			Description:       field.Description,
			Type:              fieldType,
			Args:              args,
			Resolve:           field.Resolve,
			DeprecationReason: field.DeprecationReason,
		})
	}
	return metas, nil
}

func buildArguments(r *Registry, args []Argument) ([]*ArgumentMeta, error) {
	if len(args) == 0 {
		return nil, nil
	}
	metas := make([]*ArgumentMeta, 0, len(args))
	for _, arg := range args {
		if arg.Type.isZero() {
			return nil, fmt.Errorf("argument %q has no type", arg.Name)
		}
		argType, err := arg.Type.resolve(r)
		if err != nil {
			return nil, err
		}
		if arg.Default != nil && !ast.IsConst(arg.Default) {
			return nil, fmt.Errorf("default value of argument %q must be constant", arg.Name)
		}
		metas = append(metas, &ArgumentMeta{
			Name:         arg.Name,
			Description:  arg.Description,
			Type:         argType,
			DefaultValue: arg.Default,
		})
	}
	return metas, nil
}

//===----------------------------------------------------------------------------------------====//
// Leaf and input type descriptors
//===----------------------------------------------------------------------------------------====//

// Scalar describes a custom leaf type. The builtin scalars (Int, Float, String, Boolean, ID) are
// predeclared package variables and need no descriptor of their own.
type Scalar struct {
	Name        string
	Description string

	// SpecifiedByURL optionally points at the scalar's behavior specification.
	SpecifiedByURL string

	// CoerceResult converts resolver output to the wire representation. Required.
	CoerceResult func(value interface{}) (graphql.ScalarValue, error)

	// CoerceInput converts a const literal to the Go value resolvers receive. Required.
	CoerceInput func(value ast.InputValue) (interface{}, error)
}

// TypeName implements Descriptor.
func (d *Scalar) TypeName() string { return d.Name }

func (d *Scalar) buildMeta(r *Registry) (MetaType, error) {
	if d.CoerceResult == nil || d.CoerceInput == nil {
		return nil, fmt.Errorf("scalar %q must provide both result and input coercion", d.Name)
	}
	return &ScalarMeta{
		Name:           d.Name,
		Description:    d.Description,
		SpecifiedByURL: d.SpecifiedByURL,
		CoerceResult:   d.CoerceResult,
		CoerceInput:    d.CoerceInput,
	}, nil
}

// Enum describes an enum type and its values.
type Enum struct {
	Name        string
	Description string
	Values      []EnumValue
}

// EnumValue describes one declared enum value.
type EnumValue struct {
	Name        string
	Description string

	// Value is the internal Go value for this enum value; defaults to the name.
	Value interface{}

	DeprecationReason string
}

// TypeName implements Descriptor.
func (d *Enum) TypeName() string { return d.Name }

func (d *Enum) buildMeta(r *Registry) (MetaType, error) {
	if len(d.Values) == 0 {
		return nil, fmt.Errorf("enum %q must define one or more values", d.Name)
	}
	meta := &EnumMeta{
		Name:        d.Name,
		Description: d.Description,
	}
	for _, value := range d.Values {
		internal := value.Value
		if internal == nil {
			internal = value.Name
		}
		meta.Values = append(meta.Values, &EnumValueMeta{
			Name:              value.Name,
			Description:       value.Description,
			Value:             internal,
			DeprecationReason: value.DeprecationReason,
		})
	}
	return meta, nil
}

// InputObject describes an input-only composite type.
type InputObject struct {
	Name        string
	Description string
	Fields      []InputField

	// OneOf requires exactly one field to be provided, with a non-null value.
	OneOf bool
}

// InputField describes one field of an InputObject.
type InputField struct {
	Name        string
	Description string
	Type        TypeRef

	// Default is the declared default value as a const literal; nil means no default.
	Default ast.InputValue
}

// TypeName implements Descriptor.
func (d *InputObject) TypeName() string { return d.Name }

func (d *InputObject) buildMeta(r *Registry) (MetaType, error) {
	if len(d.Fields) == 0 {
		return nil, fmt.Errorf("input object %q must define one or more fields", d.Name)
	}
	meta := &InputObjectMeta{
		Name:        d.Name,
		Description: d.Description,
		OneOf:       d.OneOf,
	}
	for _, field := range d.Fields {
		if field.Type.isZero() {
			return nil, fmt.Errorf("field %q of input object %q has no type", field.Name, d.Name)
		}
		fieldType, err := field.Type.resolve(r)
		if err != nil {
			return nil, err
		}
		if field.Default != nil && !ast.IsConst(field.Default) {
			return nil, fmt.Errorf(
				"default value of input field %q.%q must be constant", d.Name, field.Name)
		}
		if d.OneOf {
			if fieldType.IsNonNull() {
				return nil, fmt.Errorf(
					"field %q of oneOf input object %q must be nullable", field.Name, d.Name)
			}
			if field.Default != nil {
				return nil, fmt.Errorf(
					"field %q of oneOf input object %q cannot declare a default value",
					field.Name, d.Name)
			}
		}
		meta.Fields = append(meta.Fields, &InputFieldMeta{
			Name:         field.Name,
			Description:  field.Description,
			Type:         fieldType,
			DefaultValue: field.Default,
		})
	}
	return meta, nil
}
