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

// Package ast defines the syntax tree for executable GraphQL documents. Nodes are built by the
// parser, are immutable after construction, and each embeds a token.Span locating it in the
// source.
package ast

import (
	"github.com/quellgo/quell/graphql/token"
)

// Node is implemented by every syntax tree node.
type Node interface {
	token.Spanned
}

//===----------------------------------------------------------------------------------------====//
// Document and definitions
//===----------------------------------------------------------------------------------------====//

// Document is the root of a parsed GraphQL source: an ordered sequence of operation and fragment
// definitions.
//
// Reference: https://spec.graphql.org/October2021/#sec-Document
type Document struct {
	token.Span
	Definitions []Definition
}

// Operations returns the operation definitions in document order.
func (doc *Document) Operations() []*OperationDefinition {
	var operations []*OperationDefinition
	for _, definition := range doc.Definitions {
		if operation, ok := definition.(*OperationDefinition); ok {
			operations = append(operations, operation)
		}
	}
	return operations
}

// Fragments returns the fragment definitions in document order.
func (doc *Document) Fragments() []*FragmentDefinition {
	var fragments []*FragmentDefinition
	for _, definition := range doc.Definitions {
		if fragment, ok := definition.(*FragmentDefinition); ok {
			fragments = append(fragments, fragment)
		}
	}
	return fragments
}

// Definition is either an *OperationDefinition or a *FragmentDefinition.
type Definition interface {
	Node
	definitionNode()
}

// OperationKind enumerates the three operation types.
type OperationKind int

// Enumeration of OperationKind
const (
	OperationQuery OperationKind = iota
	OperationMutation
	OperationSubscription
)

func (kind OperationKind) String() string {
	switch kind {
	case OperationMutation:
		return "mutation"
	case OperationSubscription:
		return "subscription"
	}
	return "query"
}

// Name is an identifier together with its source span.
type Name struct {
	token.Span
	Value string
}

// OperationDefinition describes one operation (query, mutation or subscription) to execute.
//
// Reference: https://spec.graphql.org/October2021/#sec-Language.Operations
type OperationDefinition struct {
	token.Span
	Kind OperationKind

	// Name is nil for an anonymous operation (including the query shorthand).
	Name *Name

	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        *SelectionSet

	// Shorthand is true when the operation was written without the leading keyword ("{ ... }").
	Shorthand bool
}

func (*OperationDefinition) definitionNode() {}

// NameValue returns the operation name, or "" for an anonymous operation.
func (op *OperationDefinition) NameValue() string {
	if op.Name == nil {
		return ""
	}
	return op.Name.Value
}

// FragmentDefinition describes a named fragment and the composite type it conditions on.
//
// Reference: https://spec.graphql.org/October2021/#sec-Language.Fragments
type FragmentDefinition struct {
	token.Span
	Name          *Name
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

func (*FragmentDefinition) definitionNode() {}

//===----------------------------------------------------------------------------------------====//
// Selections
//===----------------------------------------------------------------------------------------====//

// SelectionSet is the braced list of selections requested at one level of a query.
type SelectionSet struct {
	token.Span
	Selections []Selection
}

// Selection is a *Field, a *FragmentSpread or an *InlineFragment.
type Selection interface {
	Node
	selectionNode()
}

// Field requests one field on the enclosing type, optionally under an alias.
type Field struct {
	token.Span

	// Alias is nil when the field is requested under its own name.
	Alias *Name

	Name       *Name
	Arguments  []*Argument
	Directives []*Directive

	// SelectionSet is nil for leaf fields.
	SelectionSet *SelectionSet
}

func (*Field) selectionNode() {}

// ResponseKey returns the key under which the field appears in the response: the alias if one was
// given, the field name otherwise.
func (f *Field) ResponseKey() string {
	if f.Alias != nil {
		return f.Alias.Value
	}
	return f.Name.Value
}

// FragmentSpread includes a named fragment's selections at this position.
type FragmentSpread struct {
	token.Span
	Name       *Name
	Directives []*Directive
}

func (*FragmentSpread) selectionNode() {}

// InlineFragment applies its selections when the enclosing value matches the (optional) type
// condition.
type InlineFragment struct {
	token.Span

	// TypeCondition is nil when the fragment applies unconditionally.
	TypeCondition *NamedType

	Directives   []*Directive
	SelectionSet *SelectionSet
}

func (*InlineFragment) selectionNode() {}

//===----------------------------------------------------------------------------------------====//
// Arguments, directives and variable definitions
//===----------------------------------------------------------------------------------------====//

// Argument is one name/value pair supplied to a field or directive.
type Argument struct {
	token.Span
	Name  *Name
	Value InputValue
}

// ArgumentList provides lookup by name over a field's or directive's arguments.
type ArgumentList []*Argument

// Lookup finds an argument by name. Returns nil if absent.
func (list ArgumentList) Lookup(name string) *Argument {
	for _, argument := range list {
		if argument.Name.Value == name {
			return argument
		}
	}
	return nil
}

// Directive is one "@name(args)" annotation on a selection, operation or fragment.
type Directive struct {
	token.Span
	Name      *Name
	Arguments []*Argument
}

// VariableDefinition declares one operation variable with its type and optional default.
type VariableDefinition struct {
	token.Span

	// Variable names the variable (without the leading "$").
	Variable *Name

	Type Type

	// DefaultValue is nil when no default was given. It is always a const value (the parser rejects
	// variable references inside defaults).
	DefaultValue InputValue
}

//===----------------------------------------------------------------------------------------====//
// Type literals
//===----------------------------------------------------------------------------------------====//

// Type is a syntactic type reference as written in a document: a *NamedType or a *ListType, each
// optionally non-null. It carries no guarantee that the name exists in any schema.
type Type interface {
	Node
	typeNode()

	// String renders the reference in document syntax, e.g. "[Episode!]!".
	String() string

	// IsNonNull reports whether the reference carries the trailing "!".
	IsNonNull() bool
}

// NamedType references a type by name, e.g. "Episode" or "Episode!".
type NamedType struct {
	token.Span
	Name    string
	NonNull bool
}

func (*NamedType) typeNode() {}

// IsNonNull implements Type.
func (t *NamedType) IsNonNull() bool { return t.NonNull }

func (t *NamedType) String() string {
	if t.NonNull {
		return t.Name + "!"
	}
	return t.Name
}

// ListType wraps an element type reference, e.g. "[Episode]" or "[Episode]!".
type ListType struct {
	token.Span
	Inner   Type
	NonNull bool
}

func (*ListType) typeNode() {}

// IsNonNull implements Type.
func (t *ListType) IsNonNull() bool { return t.NonNull }

func (t *ListType) String() string {
	s := "[" + t.Inner.String() + "]"
	if t.NonNull {
		s += "!"
	}
	return s
}

// NullableOf returns the same type reference without the outer non-null marker. It returns t
// unchanged when t is already nullable.
func NullableOf(t Type) Type {
	switch t := t.(type) {
	case *NamedType:
		if t.NonNull {
			nullable := *t
			nullable.NonNull = false
			return &nullable
		}
	case *ListType:
		if t.NonNull {
			nullable := *t
			nullable.NonNull = false
			return &nullable
		}
	}
	return t
}

// NonNullOf returns the same type reference with the non-null marker set.
func NonNullOf(t Type) Type {
	switch t := t.(type) {
	case *NamedType:
		if !t.NonNull {
			nonNull := *t
			nonNull.NonNull = true
			return &nonNull
		}
	case *ListType:
		if !t.NonNull {
			nonNull := *t
			nonNull.NonNull = true
			return &nonNull
		}
	}
	return t
}

// NamedTypeOf unwraps list and non-null wrappers down to the underlying named reference.
func NamedTypeOf(t Type) *NamedType {
	for {
		switch tt := t.(type) {
		case *NamedType:
			return tt
		case *ListType:
			t = tt.Inner
		default:
			return nil
		}
	}
}
