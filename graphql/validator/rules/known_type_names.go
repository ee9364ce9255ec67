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

package rules

import (
	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/ast"
	messages "github.com/quellgo/quell/graphql/internal/validator"
	"github.com/quellgo/quell/graphql/schema"
	"github.com/quellgo/quell/graphql/validator"
	"github.com/quellgo/quell/internal/util"
)

// KnownTypeNames implements the "Fragment Spread Type Existence" validation rule, extended to
// every type reference an executable document can contain: variable definition types and the type
// conditions of fragment definitions and inline fragments.
//
// Reference: https://spec.graphql.org/October2021/#sec-Fragment-Spread-Type-Existence
type KnownTypeNames struct{}

// CheckVariableDefinition implements validator.VariableDefinitionRule.
func (rule KnownTypeNames) CheckVariableDefinition(
	ctx *validator.ValidationContext,
	operation *ast.OperationDefinition,
	definition *ast.VariableDefinition) validator.NextCheckAction {

	named := ast.NamedTypeOf(definition.Type)
	if named != nil && ctx.Schema().TypeByName(named.Name) == nil {
		reportUnknownType(ctx, named.Name, named)
	}
	return validator.ContinueCheck
}

// CheckFragment implements validator.FragmentRule.
func (rule KnownTypeNames) CheckFragment(
	ctx *validator.ValidationContext,
	fragment *validator.FragmentInfo) validator.NextCheckAction {

	if fragment.TypeCondition() == nil {
		condition := fragment.Definition().TypeCondition
		reportUnknownType(ctx, condition.Name, condition)
	}
	return validator.ContinueCheck
}

// CheckInlineFragment implements validator.InlineFragmentRule.
func (rule KnownTypeNames) CheckInlineFragment(
	ctx *validator.ValidationContext,
	parentType schema.MetaType,
	typeCondition schema.MetaType,
	fragment *ast.InlineFragment) validator.NextCheckAction {

	if fragment.TypeCondition != nil && typeCondition == nil {
		reportUnknownType(ctx, fragment.TypeCondition.Name, fragment.TypeCondition)
	}
	return validator.ContinueCheck
}

func reportUnknownType(ctx *validator.ValidationContext, name string, node ast.Node) {
	ctx.ReportError(
		messages.UnknownTypeMessage(
			name,
			util.SuggestionList(name, ctx.ExistingTypeNames()),
		),
		graphql.LocationsOf(node)...,
	)
}
