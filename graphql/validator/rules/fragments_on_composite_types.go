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
)

// FragmentsOnCompositeTypes implements the "Fragments on Composite Types" validation rule.
//
// Reference: https://spec.graphql.org/October2021/#sec-Fragments-On-Composite-Types
type FragmentsOnCompositeTypes struct{}

// CheckFragment implements validator.FragmentRule.
func (rule FragmentsOnCompositeTypes) CheckFragment(
	ctx *validator.ValidationContext,
	fragment *validator.FragmentInfo) validator.NextCheckAction {

	// Fragments use a type condition to determine if they apply; since types with no subfields
	// cannot be the subject of a selection set, that condition must be a composite type.

	condition := fragment.TypeCondition()
	if condition != nil && !schema.IsCompositeType(condition) {
		ctx.ReportError(
			messages.FragmentOnNonCompositeMessage(
				fragment.Name(), fragment.TypeConditionName()),
			graphql.LocationsOf(fragment.Definition().TypeCondition)...,
		)
	}
	return validator.ContinueCheck
}

// CheckInlineFragment implements validator.InlineFragmentRule.
func (rule FragmentsOnCompositeTypes) CheckInlineFragment(
	ctx *validator.ValidationContext,
	parentType schema.MetaType,
	typeCondition schema.MetaType,
	fragment *ast.InlineFragment) validator.NextCheckAction {

	if typeCondition != nil && !schema.IsCompositeType(typeCondition) {
		ctx.ReportError(
			messages.InlineFragmentOnNonCompositeMessage(fragment.TypeCondition.Name),
			graphql.LocationsOf(fragment.TypeCondition)...,
		)
	}
	return validator.ContinueCheck
}
