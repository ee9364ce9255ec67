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
	"fmt"

	"github.com/quellgo/quell/graphql/ast"
	"github.com/quellgo/quell/graphql/schema"
)

// rules contains the collection of checks to run on nodes during the walk, fanned out per node
// kind so the walker dispatches without type switches over the rule set.
type rules struct {
	numRules                int
	operationRules          operationRules
	variableDefinitionRules variableDefinitionRules
	fragmentRules           fragmentRules
	fieldRules              fieldRules
	fieldArgumentRules      fieldArgumentRules
	inlineFragmentRules     inlineFragmentRules
	fragmentSpreadRules     fragmentSpreadRules
	directivesRules         directivesRules
	directiveRules          directiveRules
	directiveArgumentRules  directiveArgumentRules
	valueRules              valueRules
	postWalkRules           []PostWalkRule
}

func buildRules(rs ...interface{}) *rules {
	rules := &rules{
		numRules: len(rs),
	}
	for i, rule := range rs {
		isRule := false
		if r, ok := rule.(OperationRule); ok {
			rules.operationRules.add(i, r)
			isRule = true
		}
		if r, ok := rule.(VariableDefinitionRule); ok {
			rules.variableDefinitionRules.add(i, r)
			isRule = true
		}
		if r, ok := rule.(FragmentRule); ok {
			rules.fragmentRules.add(i, r)
			isRule = true
		}
		if r, ok := rule.(FieldRule); ok {
			rules.fieldRules.add(i, r)
			isRule = true
		}
		if r, ok := rule.(FieldArgumentRule); ok {
			rules.fieldArgumentRules.add(i, r)
			isRule = true
		}
		if r, ok := rule.(InlineFragmentRule); ok {
			rules.inlineFragmentRules.add(i, r)
			isRule = true
		}
		if r, ok := rule.(FragmentSpreadRule); ok {
			rules.fragmentSpreadRules.add(i, r)
			isRule = true
		}
		if r, ok := rule.(DirectivesRule); ok {
			rules.directivesRules.add(i, r)
			isRule = true
		}
		if r, ok := rule.(DirectiveRule); ok {
			rules.directiveRules.add(i, r)
			isRule = true
		}
		if r, ok := rule.(DirectiveArgumentRule); ok {
			rules.directiveArgumentRules.add(i, r)
			isRule = true
		}
		if r, ok := rule.(ValueRule); ok {
			rules.valueRules.add(i, r)
			isRule = true
		}
		if r, ok := rule.(PostWalkRule); ok {
			rules.postWalkRules = append(rules.postWalkRules, r)
			isRule = true
		}
		if !isRule {
			panic(fmt.Sprintf(`"%T" is not a validation rule`, rule))
		}
	}
	return rules
}

func shouldSkipRule(ctx *ValidationContext, ruleIndex int) bool {
	return ctx.skippingRules[ruleIndex] != nil
}

func setSkipping(ctx *ValidationContext, ruleIndex int, node ast.Node, action NextCheckAction) {
	switch action {
	case ContinueCheck:
		/* Nothing to do */

	case SkipCheckForChildNodes:
		ctx.skippingRules[ruleIndex] = node

	case StopCheck:
		ctx.skippingRules[ruleIndex] = StopCheck
	}
}

// leaveNode re-enables the rules that skipped their checks below the given node.
func leaveNode(ctx *ValidationContext, node ast.Node) {
	skippingRules := ctx.skippingRules
	for i, skipping := range skippingRules {
		if skippingNode, ok := skipping.(ast.Node); ok && skippingNode == node {
			skippingRules[i] = nil
		}
	}
}

type operationRules struct {
	indices []int
	rules   []OperationRule
}

func (r *operationRules) add(index int, rule OperationRule) {
	r.indices = append(r.indices, index)
	r.rules = append(r.rules, rule)
}

func (r *operationRules) Run(ctx *ValidationContext, operation *ast.OperationDefinition) {
	for i, rule := range r.rules {
		index := r.indices[i]
		if !shouldSkipRule(ctx, index) {
			setSkipping(ctx, index, operation, rule.CheckOperation(ctx, operation))
		}
	}
}

type variableDefinitionRules struct {
	indices []int
	rules   []VariableDefinitionRule
}

func (r *variableDefinitionRules) add(index int, rule VariableDefinitionRule) {
	r.indices = append(r.indices, index)
	r.rules = append(r.rules, rule)
}

func (r *variableDefinitionRules) Run(
	ctx *ValidationContext,
	operation *ast.OperationDefinition,
	definition *ast.VariableDefinition) {

	for i, rule := range r.rules {
		index := r.indices[i]
		if !shouldSkipRule(ctx, index) {
			setSkipping(ctx, index, definition,
				rule.CheckVariableDefinition(ctx, operation, definition))
		}
	}
}

type fragmentRules struct {
	indices []int
	rules   []FragmentRule
}

func (r *fragmentRules) add(index int, rule FragmentRule) {
	r.indices = append(r.indices, index)
	r.rules = append(r.rules, rule)
}

func (r *fragmentRules) Run(ctx *ValidationContext, fragment *FragmentInfo) {
	for i, rule := range r.rules {
		index := r.indices[i]
		if !shouldSkipRule(ctx, index) {
			setSkipping(ctx, index, fragment.def, rule.CheckFragment(ctx, fragment))
		}
	}
}

type fieldRules struct {
	indices []int
	rules   []FieldRule
}

func (r *fieldRules) add(index int, rule FieldRule) {
	r.indices = append(r.indices, index)
	r.rules = append(r.rules, rule)
}

func (r *fieldRules) Run(ctx *ValidationContext, field *FieldInfo) {
	for i, rule := range r.rules {
		index := r.indices[i]
		if !shouldSkipRule(ctx, index) {
			setSkipping(ctx, index, field.node, rule.CheckField(ctx, field))
		}
	}
}

type fieldArgumentRules struct {
	indices []int
	rules   []FieldArgumentRule
}

func (r *fieldArgumentRules) add(index int, rule FieldArgumentRule) {
	r.indices = append(r.indices, index)
	r.rules = append(r.rules, rule)
}

func (r *fieldArgumentRules) Run(
	ctx *ValidationContext,
	field *FieldInfo,
	argDef *schema.ArgumentMeta,
	argument *ast.Argument) {

	for i, rule := range r.rules {
		index := r.indices[i]
		if !shouldSkipRule(ctx, index) {
			setSkipping(ctx, index, argument, rule.CheckFieldArgument(ctx, field, argDef, argument))
		}
	}
}

type inlineFragmentRules struct {
	indices []int
	rules   []InlineFragmentRule
}

func (r *inlineFragmentRules) add(index int, rule InlineFragmentRule) {
	r.indices = append(r.indices, index)
	r.rules = append(r.rules, rule)
}

func (r *inlineFragmentRules) Run(
	ctx *ValidationContext,
	parentType schema.MetaType,
	typeCondition schema.MetaType,
	fragment *ast.InlineFragment) {

	for i, rule := range r.rules {
		index := r.indices[i]
		if !shouldSkipRule(ctx, index) {
			setSkipping(ctx, index, fragment,
				rule.CheckInlineFragment(ctx, parentType, typeCondition, fragment))
		}
	}
}

type fragmentSpreadRules struct {
	indices []int
	rules   []FragmentSpreadRule
}

func (r *fragmentSpreadRules) add(index int, rule FragmentSpreadRule) {
	r.indices = append(r.indices, index)
	r.rules = append(r.rules, rule)
}

func (r *fragmentSpreadRules) Run(
	ctx *ValidationContext,
	parentType schema.MetaType,
	fragment *FragmentInfo,
	spread *ast.FragmentSpread) {

	for i, rule := range r.rules {
		index := r.indices[i]
		if !shouldSkipRule(ctx, index) {
			setSkipping(ctx, index, spread,
				rule.CheckFragmentSpread(ctx, parentType, fragment, spread))
		}
	}
}

type directivesRules struct {
	indices []int
	rules   []DirectivesRule
}

func (r *directivesRules) add(index int, rule DirectivesRule) {
	r.indices = append(r.indices, index)
	r.rules = append(r.rules, rule)
}

func (r *directivesRules) Run(
	ctx *ValidationContext,
	directives []*ast.Directive,
	location schema.DirectiveLocation) {

	for i, rule := range r.rules {
		index := r.indices[i]
		if !shouldSkipRule(ctx, index) {
			if rule.CheckDirectives(ctx, directives, location) == StopCheck {
				ctx.skippingRules[index] = StopCheck
			}
		}
	}
}

type directiveRules struct {
	indices []int
	rules   []DirectiveRule
}

func (r *directiveRules) add(index int, rule DirectiveRule) {
	r.indices = append(r.indices, index)
	r.rules = append(r.rules, rule)
}

func (r *directiveRules) Run(ctx *ValidationContext, directive *DirectiveInfo) {
	for i, rule := range r.rules {
		index := r.indices[i]
		if !shouldSkipRule(ctx, index) {
			setSkipping(ctx, index, directive.node, rule.CheckDirective(ctx, directive))
		}
	}
}

type directiveArgumentRules struct {
	indices []int
	rules   []DirectiveArgumentRule
}

func (r *directiveArgumentRules) add(index int, rule DirectiveArgumentRule) {
	r.indices = append(r.indices, index)
	r.rules = append(r.rules, rule)
}

func (r *directiveArgumentRules) Run(
	ctx *ValidationContext,
	directive *DirectiveInfo,
	argDef *schema.ArgumentMeta,
	argument *ast.Argument) {

	for i, rule := range r.rules {
		index := r.indices[i]
		if !shouldSkipRule(ctx, index) {
			setSkipping(ctx, index, argument,
				rule.CheckDirectiveArgument(ctx, directive, argDef, argument))
		}
	}
}

type valueRules struct {
	indices []int
	rules   []ValueRule
}

func (r *valueRules) add(index int, rule ValueRule) {
	r.indices = append(r.indices, index)
	r.rules = append(r.rules, rule)
}

func (r *valueRules) Run(ctx *ValidationContext, expectedType ast.Type, value ast.InputValue) {
	for i, rule := range r.rules {
		index := r.indices[i]
		if !shouldSkipRule(ctx, index) {
			setSkipping(ctx, index, value, rule.CheckValue(ctx, expectedType, value))
		}
	}
}

//===----------------------------------------------------------------------------------------====//
// Walk functions
//===----------------------------------------------------------------------------------------====//

func walk(ctx *ValidationContext) {
	for _, definition := range ctx.Document().Definitions {
		switch definition := definition.(type) {
		case *ast.OperationDefinition:
			walkOperationDefinition(ctx, definition)

		case *ast.FragmentDefinition:
			walkFragmentDefinition(ctx, definition)
		}
	}

	for _, rule := range ctx.rules.postWalkRules {
		rule.CheckDocument(ctx)
	}
}

func walkOperationDefinition(ctx *ValidationContext, operation *ast.OperationDefinition) {
	ctx.currentOperation = operation
	ctx.currentScope = ctx.scopeForOperation(operation)

	ctx.rules.operationRules.Run(ctx, operation)

	for _, definition := range operation.VariableDefinitions {
		ctx.rules.variableDefinitionRules.Run(ctx, operation, definition)
		if definition.DefaultValue != nil {
			walkValue(ctx, definition.Type, nil, definition.DefaultValue)
		}
		leaveNode(ctx, definition)
	}

	// Determine the root type of the operation and the directive location.
	var location schema.DirectiveLocation
	switch operation.Kind {
	case ast.OperationMutation:
		location = schema.LocationMutation
	case ast.OperationSubscription:
		location = schema.LocationSubscription
	default:
		location = schema.LocationQuery
	}
	rootType := ctx.Schema().RootType(operation.Kind)

	walkDirectives(ctx, operation.Directives, location)

	if rootType != nil {
		walkSelectionSet(ctx, rootType, operation.SelectionSet)
	} else {
		walkSelectionSet(ctx, nil, operation.SelectionSet)
	}

	leaveNode(ctx, operation)
	ctx.currentOperation = nil
	ctx.currentScope = nil
}

func walkFragmentDefinition(ctx *ValidationContext, fragment *ast.FragmentDefinition) {
	info := ctx.fragmentInfoFor(fragment)
	ctx.currentScope = ctx.scopeForFragment(fragment.Name.Value)

	ctx.rules.fragmentRules.Run(ctx, info)

	walkDirectives(ctx, fragment.Directives, schema.LocationFragmentDefinition)
	walkSelectionSet(ctx, info.TypeCondition(), fragment.SelectionSet)

	leaveNode(ctx, fragment)
	ctx.currentScope = nil
}

func walkSelectionSet(ctx *ValidationContext, parentType schema.MetaType, selectionSet *ast.SelectionSet) {
	if selectionSet == nil {
		return
	}

	for _, selection := range selectionSet.Selections {
		switch selection := selection.(type) {
		case *ast.Field:
			walkField(ctx, parentType, selection)

		case *ast.FragmentSpread:
			walkFragmentSpread(ctx, parentType, selection)

		case *ast.InlineFragment:
			walkInlineFragment(ctx, parentType, selection)
		}
	}

	leaveNode(ctx, selectionSet)
}

func walkField(ctx *ValidationContext, parentType schema.MetaType, field *ast.Field) {
	var fieldDef *schema.FieldMeta
	if parentType != nil {
		fieldDef = ctx.Schema().FieldOf(parentType, field.Name.Value)
	}

	info := &FieldInfo{
		parentType: parentType,
		def:        fieldDef,
		node:       field,
	}
	ctx.rules.fieldRules.Run(ctx, info)

	for _, argument := range field.Arguments {
		var argDef *schema.ArgumentMeta
		if fieldDef != nil {
			argDef = fieldDef.Argument(argument.Name.Value)
		}
		ctx.rules.fieldArgumentRules.Run(ctx, info, argDef, argument)

		if argDef != nil {
			walkValue(ctx, argDef.Type, argDef.DefaultValue, argument.Value)
		} else {
			walkValue(ctx, nil, nil, argument.Value)
		}
		leaveNode(ctx, argument)
	}

	walkDirectives(ctx, field.Directives, schema.LocationField)

	if field.SelectionSet != nil {
		var fieldType schema.MetaType
		if fieldDef != nil {
			fieldType = ctx.Schema().NamedTypeOf(fieldDef.Type)
		}
		walkSelectionSet(ctx, fieldType, field.SelectionSet)
	}

	leaveNode(ctx, field)
}

func walkFragmentSpread(ctx *ValidationContext, parentType schema.MetaType, spread *ast.FragmentSpread) {
	info := ctx.FragmentInfo(spread.Name.Value)

	ctx.rules.fragmentSpreadRules.Run(ctx, parentType, info, spread)

	walkDirectives(ctx, spread.Directives, schema.LocationFragmentSpread)

	if scope := ctx.currentScope; scope != nil {
		scope.spreads = append(scope.spreads, spread.Name.Value)
	}

	leaveNode(ctx, spread)
}

func walkInlineFragment(ctx *ValidationContext, parentType schema.MetaType, fragment *ast.InlineFragment) {
	var typeCondition schema.MetaType
	innerType := parentType
	if fragment.TypeCondition != nil {
		typeCondition = ctx.Schema().TypeByName(fragment.TypeCondition.Name)
		innerType = typeCondition
	}

	ctx.rules.inlineFragmentRules.Run(ctx, parentType, typeCondition, fragment)

	walkDirectives(ctx, fragment.Directives, schema.LocationInlineFragment)
	walkSelectionSet(ctx, innerType, fragment.SelectionSet)

	leaveNode(ctx, fragment)
}

func walkDirectives(
	ctx *ValidationContext,
	directives []*ast.Directive,
	location schema.DirectiveLocation) {

	if len(directives) == 0 {
		return
	}

	ctx.rules.directivesRules.Run(ctx, directives, location)

	for _, directive := range directives {
		info := &DirectiveInfo{
			def:      ctx.Schema().Directive(directive.Name.Value),
			node:     directive,
			location: location,
		}
		ctx.rules.directiveRules.Run(ctx, info)

		for _, argument := range directive.Arguments {
			var argDef *schema.ArgumentMeta
			if info.def != nil {
				argDef = info.def.Argument(argument.Name.Value)
			}
			ctx.rules.directiveArgumentRules.Run(ctx, info, argDef, argument)

			if argDef != nil {
				walkValue(ctx, argDef.Type, argDef.DefaultValue, argument.Value)
			} else {
				walkValue(ctx, nil, nil, argument.Value)
			}
			leaveNode(ctx, argument)
		}

		leaveNode(ctx, directive)
	}
}

// walkValue dispatches a complete input value appearing at a position of the expected type: value
// rules see it once and descend themselves, while the context records the variable usages inside
// it.
func walkValue(
	ctx *ValidationContext,
	expectedType ast.Type,
	locationDefault ast.InputValue,
	value ast.InputValue) {

	ctx.rules.valueRules.Run(ctx, expectedType, value)
	ctx.recordValueUsages(expectedType, locationDefault, value)
	leaveNode(ctx, value)
}
