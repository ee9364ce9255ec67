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

package validator

import (
	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/ast"
	"github.com/quellgo/quell/graphql/schema"
)

// FragmentInfo stores information about a fragment definition during validation. It is the value
// type of the fragment map in ValidationContext and is exposed to FragmentRules and
// FragmentSpreadRules.
type FragmentInfo struct {
	def *ast.FragmentDefinition

	// typeCondition is nil when the condition names an unknown type.
	typeCondition schema.MetaType

	// used is set once the fragment is referenced (directly or transitively) from an operation.
	// Consumed by NoUnusedFragments.
	used bool
}

// Definition returns the fragment's definition node.
func (info *FragmentInfo) Definition() *ast.FragmentDefinition {
	return info.def
}

// Name returns the fragment name.
func (info *FragmentInfo) Name() string {
	return info.def.Name.Value
}

// TypeCondition returns the resolved type condition, or nil for an unknown type name.
func (info *FragmentInfo) TypeCondition() schema.MetaType {
	return info.typeCondition
}

// TypeConditionName returns the type name the fragment conditions on.
func (info *FragmentInfo) TypeConditionName() string {
	return info.def.TypeCondition.Name
}

// Used returns true once the fragment has been marked used via RecursivelyMarkUsed, directly or
// through another used fragment.
func (info *FragmentInfo) Used() bool {
	return info.used
}

// RecursivelyMarkUsed marks this fragment used, together with every fragment it spreads, directly
// or indirectly.
func (info *FragmentInfo) RecursivelyMarkUsed(ctx *ValidationContext) {
	if info.used {
		return
	}

	stack := []*FragmentInfo{info}
	for len(stack) > 0 {
		var fragment *FragmentInfo
		fragment, stack = stack[len(stack)-1], stack[:len(stack)-1]
		fragment.used = true

		for _, spreadName := range spreadNamesIn(fragment.def.SelectionSet) {
			if f := ctx.FragmentInfo(spreadName); f != nil && !f.used {
				stack = append(stack, f)
			}
		}
	}
}

func spreadNamesIn(selectionSet *ast.SelectionSet) []string {
	var names []string
	var collect func(set *ast.SelectionSet)
	collect = func(set *ast.SelectionSet) {
		if set == nil {
			return
		}
		for _, selection := range set.Selections {
			switch selection := selection.(type) {
			case *ast.FragmentSpread:
				names = append(names, selection.Name.Value)
			case *ast.Field:
				collect(selection.SelectionSet)
			case *ast.InlineFragment:
				collect(selection.SelectionSet)
			}
		}
	}
	collect(selectionSet)
	return names
}

// VariableUsage records one variable reference together with the type (and declared default) of
// the position it appears in. NoUndefinedVariables, NoUnusedVariables and
// VariablesInAllowedPosition consume these after the walk.
type VariableUsage struct {
	Node ast.Variable

	// ExpectedType is the input type of the position; nil when the position failed to resolve.
	ExpectedType ast.Type

	// LocationDefault is the declared default of the argument or input field the variable flows
	// into, or nil.
	LocationDefault ast.InputValue
}

// usageScope accumulates the variable usages and fragment spreads recorded while walking one
// operation or one fragment definition.
type usageScope struct {
	usages  []VariableUsage
	spreads []string
}

// A ValidationContext carries the state shared between the walk functions and the validation
// rules.
type ValidationContext struct {
	schema   *schema.Schema
	document *ast.Document
	rules    *rules

	// Mapping from fragment names to FragmentInfo, lazily built on the first FragmentInfo call. A
	// duplicated name keeps the first definition.
	fragmentInfos map[string]*FragmentInfo

	errs graphql.Errors

	// Skipping state for the rule at index i. Possible values:
	//
	//  - nil: run the rule
	//  - StopCheck: stop applying the rule to any node
	//  - an ast.Node: don't apply the rule below the given node
	skippingRules []interface{}

	// Operation currently being walked; nil while walking fragment definitions.
	currentOperation *ast.OperationDefinition

	// Scope usages are recorded into; switched at operation and fragment definition boundaries.
	currentScope *usageScope

	operationScopes map[*ast.OperationDefinition]*usageScope
	fragmentScopes  map[string]*usageScope

	//===--------------------------------------------------------------------------------------====//
	// States owned by individual rules
	//===--------------------------------------------------------------------------------------====//

	// UniqueOperationNames
	KnownOperationNames map[string]*ast.Name

	// UniqueFragmentNames
	KnownFragmentNames map[string]*ast.Name

	// UniqueVariableNames: per operation, the variable names seen so far.
	KnownVariableNames map[*ast.OperationDefinition]map[string]*ast.Name

	// NoFragmentCycles: fragments whose spread graph has already been traversed.
	VisitedFragments map[string]bool

	// KnownTypeNames: cached list of schema type names for suggestions.
	existingTypeNames []string
}

func newValidationContext(s *schema.Schema, document *ast.Document, rules *rules) *ValidationContext {
	return &ValidationContext{
		schema:   s,
		document: document,
		rules:    rules,

		skippingRules: make([]interface{}, rules.numRules),

		operationScopes: map[*ast.OperationDefinition]*usageScope{},
		fragmentScopes:  map[string]*usageScope{},

		KnownOperationNames: map[string]*ast.Name{},
		KnownFragmentNames:  map[string]*ast.Name{},
		KnownVariableNames:  map[*ast.OperationDefinition]map[string]*ast.Name{},
		VisitedFragments:    map[string]bool{},
	}
}

// Schema returns the schema the document is validated against.
func (ctx *ValidationContext) Schema() *schema.Schema {
	return ctx.schema
}

// Document returns the document being validated.
func (ctx *ValidationContext) Document() *ast.Document {
	return ctx.document
}

// CurrentOperation returns the operation currently being walked, or nil while walking fragment
// definitions.
func (ctx *ValidationContext) CurrentOperation() *ast.OperationDefinition {
	return ctx.currentOperation
}

// FragmentInfo looks up the FragmentInfo for the given fragment name in the current document.
func (ctx *ValidationContext) FragmentInfo(name string) *FragmentInfo {
	fragmentInfos := ctx.fragmentInfos
	if fragmentInfos == nil {
		fragmentInfos = map[string]*FragmentInfo{}
		for _, fragment := range ctx.document.Fragments() {
			fragmentName := fragment.Name.Value
			if _, exists := fragmentInfos[fragmentName]; exists {
				continue
			}
			fragmentInfos[fragmentName] = &FragmentInfo{
				def:           fragment,
				typeCondition: ctx.schema.TypeByName(fragment.TypeCondition.Name),
			}
		}
		ctx.fragmentInfos = fragmentInfos
	}
	return fragmentInfos[name]
}

// Fragment looks up the fragment definition for the given name in the current document.
func (ctx *ValidationContext) Fragment(name string) *ast.FragmentDefinition {
	if info := ctx.FragmentInfo(name); info != nil {
		return info.Definition()
	}
	return nil
}

// fragmentInfoFor returns the context's info entry for the definition, or a transient one when the
// definition is shadowed by an earlier fragment with the same name.
func (ctx *ValidationContext) fragmentInfoFor(fragment *ast.FragmentDefinition) *FragmentInfo {
	if info := ctx.FragmentInfo(fragment.Name.Value); info != nil && info.def == fragment {
		return info
	}
	return &FragmentInfo{
		def:           fragment,
		typeCondition: ctx.schema.TypeByName(fragment.TypeCondition.Name),
	}
}

// ReportError appends a validation error to the context.
func (ctx *ValidationContext) ReportError(message string, locations ...graphql.ErrorLocation) {
	ctx.errs.Append(graphql.NewValidationError(message, locations))
}

// ExistingTypeNames returns the names of the types declared in the schema, in registration order.
func (ctx *ValidationContext) ExistingTypeNames() []string {
	if ctx.existingTypeNames == nil {
		ctx.existingTypeNames = ctx.schema.Registry().TypeNames()
	}
	return ctx.existingTypeNames
}

func (ctx *ValidationContext) scopeForOperation(operation *ast.OperationDefinition) *usageScope {
	scope := ctx.operationScopes[operation]
	if scope == nil {
		scope = &usageScope{}
		ctx.operationScopes[operation] = scope
	}
	return scope
}

func (ctx *ValidationContext) scopeForFragment(name string) *usageScope {
	scope := ctx.fragmentScopes[name]
	if scope == nil {
		scope = &usageScope{}
		ctx.fragmentScopes[name] = scope
	}
	return scope
}

// recordValueUsages walks an input value against the type of the position it appears in, recording
// every variable reference into the current scope with the type expected at exactly that position.
func (ctx *ValidationContext) recordValueUsages(
	expected ast.Type, locationDefault ast.InputValue, value ast.InputValue) {

	scope := ctx.currentScope
	if scope == nil {
		return
	}

	switch value := value.(type) {
	case ast.Variable:
		scope.usages = append(scope.usages, VariableUsage{
			Node:            value,
			ExpectedType:    expected,
			LocationDefault: locationDefault,
		})

	case ast.ListValue:
		var elementType ast.Type
		if list, ok := expected.(*ast.ListType); ok {
			elementType = list.Inner
		}
		for _, element := range value.Values {
			ctx.recordValueUsages(elementType, nil, element)
		}

	case ast.ObjectValue:
		var inputObject *schema.InputObjectMeta
		if expected != nil {
			inputObject, _ = ctx.schema.NamedTypeOf(expected).(*schema.InputObjectMeta)
		}
		for _, field := range value.Fields {
			var (
				fieldType    ast.Type
				fieldDefault ast.InputValue
			)
			if inputObject != nil {
				if fieldDef := inputObject.Field(field.Name.Value); fieldDef != nil {
					fieldType = fieldDef.Type
					fieldDefault = fieldDef.DefaultValue
				}
			}
			ctx.recordValueUsages(fieldType, fieldDefault, field.Value)
		}
	}
}

// RecursiveVariableUsages returns the variable usages of an operation, including those of every
// fragment the operation spreads, directly or transitively.
func (ctx *ValidationContext) RecursiveVariableUsages(
	operation *ast.OperationDefinition) []VariableUsage {

	scope := ctx.operationScopes[operation]
	if scope == nil {
		return nil
	}

	usages := append([]VariableUsage(nil), scope.usages...)
	visited := map[string]bool{}
	pending := append([]string(nil), scope.spreads...)
	for len(pending) > 0 {
		var name string
		name, pending = pending[len(pending)-1], pending[:len(pending)-1]
		if visited[name] {
			continue
		}
		visited[name] = true

		if fragmentScope := ctx.fragmentScopes[name]; fragmentScope != nil {
			usages = append(usages, fragmentScope.usages...)
			pending = append(pending, fragmentScope.spreads...)
		}
	}
	return usages
}
