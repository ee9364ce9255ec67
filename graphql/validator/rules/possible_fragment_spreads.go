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

// PossibleFragmentSpreads implements the "Fragment spread is possible" validation rule.
//
// Reference: https://spec.graphql.org/October2021/#sec-Fragment-spread-is-possible
type PossibleFragmentSpreads struct{}

// CheckFragmentSpread implements validator.FragmentSpreadRule.
func (rule PossibleFragmentSpreads) CheckFragmentSpread(
	ctx *validator.ValidationContext,
	parentType schema.MetaType,
	fragment *validator.FragmentInfo,
	spread *ast.FragmentSpread) validator.NextCheckAction {

	// A fragment spread is only valid if the fragment's type condition could ever possibly be true:
	// the parent type and the condition must share at least one concrete type.

	if fragment == nil || parentType == nil {
		return validator.ContinueCheck
	}
	fragmentType := fragment.TypeCondition()
	if fragmentType == nil ||
		!schema.IsCompositeType(fragmentType) ||
		!schema.IsCompositeType(parentType) ||
		ctx.Schema().TypesOverlap(parentType, fragmentType) {
		return validator.ContinueCheck
	}

	ctx.ReportError(
		messages.TypeIncompatibleSpreadMessage(
			fragment.Name(),
			schema.TypeNameOf(parentType),
			schema.TypeNameOf(fragmentType),
		),
		graphql.LocationsOf(spread)...,
	)
	return validator.ContinueCheck
}

// CheckInlineFragment implements validator.InlineFragmentRule.
func (rule PossibleFragmentSpreads) CheckInlineFragment(
	ctx *validator.ValidationContext,
	parentType schema.MetaType,
	typeCondition schema.MetaType,
	fragment *ast.InlineFragment) validator.NextCheckAction {

	if parentType == nil || typeCondition == nil ||
		!schema.IsCompositeType(typeCondition) ||
		!schema.IsCompositeType(parentType) ||
		ctx.Schema().TypesOverlap(parentType, typeCondition) {
		return validator.ContinueCheck
	}

	ctx.ReportError(
		messages.TypeIncompatibleAnonSpreadMessage(
			schema.TypeNameOf(parentType),
			schema.TypeNameOf(typeCondition),
		),
		graphql.LocationsOf(fragment)...,
	)
	return validator.ContinueCheck
}
