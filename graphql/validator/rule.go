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

// Package validator checks an executable document against a schema in a single walk over the
// syntax tree. Each rule under validator/rules implements one section of the spec's "Validation"
// chapter; the walker dispatches every node to the rules that subscribed to its kind.
package validator

import (
	"github.com/quellgo/quell/graphql/ast"
	"github.com/quellgo/quell/graphql/schema"
)

// NextCheckAction is returned from a rule's Check function. It specifies which action to take when
// the rule would next be invoked in the current validation request.
type NextCheckAction int

// Enumeration of NextCheckAction
const (
	// Continue running the rule
	ContinueCheck NextCheckAction = iota

	// Don't run the rule on any of the child nodes of the current one
	SkipCheckForChildNodes

	// Stop running the rule in the current validation request
	StopCheck
)

// OperationRule validates an OperationDefinition.
type OperationRule interface {
	CheckOperation(ctx *ValidationContext, operation *ast.OperationDefinition) NextCheckAction
}

// VariableDefinitionRule validates one variable definition of an operation.
type VariableDefinitionRule interface {
	CheckVariableDefinition(
		ctx *ValidationContext,
		operation *ast.OperationDefinition,
		definition *ast.VariableDefinition) NextCheckAction
}

// FragmentRule validates a FragmentDefinition.
type FragmentRule interface {
	CheckFragment(ctx *ValidationContext, fragment *FragmentInfo) NextCheckAction
}

// FieldInfo carries the resolved context of the field being checked for FieldRule and
// FieldArgumentRule.
type FieldInfo struct {
	parentType    schema.MetaType
	def           *schema.FieldMeta
	node          *ast.Field
	knownArgNames []string
}

// ParentType returns the composite type the field is selected on. It is nil when an enclosing
// selection already failed to resolve.
func (info *FieldInfo) ParentType() schema.MetaType {
	return info.parentType
}

// Def returns the field definition the node resolved to in the schema, or nil for unknown fields.
func (info *FieldInfo) Def() *schema.FieldMeta {
	return info.def
}

// Type returns the declared type of the field, or nil if the definition is unavailable.
func (info *FieldInfo) Type() ast.Type {
	if info.def != nil {
		return info.def.Type
	}
	return nil
}

// Node returns the AST node that selects the field.
func (info *FieldInfo) Node() *ast.Field {
	return info.node
}

// Name returns the field name.
func (info *FieldInfo) Name() string {
	return info.node.Name.Value
}

// KnownArgNames returns the names of the arguments the field declares. KnownArgumentNames uses it
// to build suggestions for an unknown argument. Computed on first call.
func (info *FieldInfo) KnownArgNames() []string {
	if info.knownArgNames == nil && info.def != nil {
		names := make([]string, len(info.def.Args))
		for i, arg := range info.def.Args {
			names[i] = arg.Name
		}
		info.knownArgNames = names
	}
	return info.knownArgNames
}

// FieldRule validates a Field.
type FieldRule interface {
	CheckField(ctx *ValidationContext, field *FieldInfo) NextCheckAction
}

// FieldArgumentRule validates an Argument of a Field.
type FieldArgumentRule interface {
	CheckFieldArgument(
		ctx *ValidationContext,
		field *FieldInfo,
		argDef *schema.ArgumentMeta,
		argument *ast.Argument) NextCheckAction
}

// InlineFragmentRule validates an InlineFragment. typeCondition is nil when the fragment has no
// type condition or when the condition names an unknown type.
type InlineFragmentRule interface {
	CheckInlineFragment(
		ctx *ValidationContext,
		parentType schema.MetaType,
		typeCondition schema.MetaType,
		fragment *ast.InlineFragment) NextCheckAction
}

// FragmentSpreadRule validates a FragmentSpread. fragment is nil when the spread names an unknown
// fragment.
type FragmentSpreadRule interface {
	CheckFragmentSpread(
		ctx *ValidationContext,
		parentType schema.MetaType,
		fragment *FragmentInfo,
		spread *ast.FragmentSpread) NextCheckAction
}

// DirectiveInfo carries the resolved context of the directive being checked for DirectiveRule and
// DirectiveArgumentRule.
type DirectiveInfo struct {
	def           *schema.DirectiveMeta
	node          *ast.Directive
	location      schema.DirectiveLocation
	knownArgNames []string
}

// Def returns the directive declaration the node resolved to in the schema, or nil for unknown
// directives.
func (info *DirectiveInfo) Def() *schema.DirectiveMeta {
	return info.def
}

// Node returns the AST node that applies the directive.
func (info *DirectiveInfo) Node() *ast.Directive {
	return info.node
}

// Name returns the directive name (without "@").
func (info *DirectiveInfo) Name() string {
	return info.node.Name.Value
}

// Location indicates the place in the document where the directive appears.
func (info *DirectiveInfo) Location() schema.DirectiveLocation {
	return info.location
}

// KnownArgNames returns the names of the arguments the directive declares. Computed on first call.
func (info *DirectiveInfo) KnownArgNames() []string {
	if info.knownArgNames == nil && info.def != nil {
		names := make([]string, len(info.def.Args))
		for i, arg := range info.def.Args {
			names[i] = arg.Name
		}
		info.knownArgNames = names
	}
	return info.knownArgNames
}

// DirectivesRule validates the list of directives applied at one location as a whole.
type DirectivesRule interface {
	CheckDirectives(
		ctx *ValidationContext,
		directives []*ast.Directive,
		location schema.DirectiveLocation) NextCheckAction
}

// DirectiveRule validates a single Directive.
type DirectiveRule interface {
	CheckDirective(ctx *ValidationContext, directive *DirectiveInfo) NextCheckAction
}

// DirectiveArgumentRule validates an Argument of a Directive.
type DirectiveArgumentRule interface {
	CheckDirectiveArgument(
		ctx *ValidationContext,
		directive *DirectiveInfo,
		argDef *schema.ArgumentMeta,
		argument *ast.Argument) NextCheckAction
}

// ValueRule validates an input value at a position expecting the given type: an argument value or
// a variable definition's default. The walker hands over the complete value once; rules descend
// into lists and objects themselves. expectedType is nil when the position failed to resolve.
type ValueRule interface {
	CheckValue(
		ctx *ValidationContext,
		expectedType ast.Type,
		value ast.InputValue) NextCheckAction
}

// PostWalkRule runs once after the whole document has been walked. Rules that need the complete
// picture (e.g. the transitive variable usages of every operation) implement this.
type PostWalkRule interface {
	CheckDocument(ctx *ValidationContext)
}
