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
	"github.com/quellgo/quell/graphql/validator"
)

// SingleFieldSubscriptions implements the "Single root field" validation rule.
//
// Reference: https://spec.graphql.org/October2021/#sec-Single-root-field
type SingleFieldSubscriptions struct{}

// CheckOperation implements validator.OperationRule.
func (rule SingleFieldSubscriptions) CheckOperation(
	ctx *validator.ValidationContext,
	operation *ast.OperationDefinition) validator.NextCheckAction {

	// A GraphQL subscription is valid only if it selects exactly one root field, counted after
	// expanding fragments.

	if operation.Kind != ast.OperationSubscription {
		return validator.ContinueCheck
	}

	fields := rootFields(ctx, operation.SelectionSet, map[string]bool{})
	if len(fields) > 1 {
		extra := make([]graphql.ErrorLocation, 0, len(fields)-1)
		for _, field := range fields[1:] {
			extra = append(extra, graphql.LocationsOf(field)...)
		}
		ctx.ReportError(messages.SingleFieldOnlyMessage(operation.NameValue()), extra...)
	}

	return validator.ContinueCheck
}

// rootFields collects the fields grounded at the top level of a subscription, following fragment
// spreads and inline fragments. visited guards against fragment cycles, which NoFragmentCycles
// reports separately.
func rootFields(
	ctx *validator.ValidationContext,
	selectionSet *ast.SelectionSet,
	visited map[string]bool) []*ast.Field {

	if selectionSet == nil {
		return nil
	}

	var fields []*ast.Field
	for _, selection := range selectionSet.Selections {
		switch selection := selection.(type) {
		case *ast.Field:
			fields = append(fields, selection)

		case *ast.InlineFragment:
			fields = append(fields, rootFields(ctx, selection.SelectionSet, visited)...)

		case *ast.FragmentSpread:
			name := selection.Name.Value
			if visited[name] {
				continue
			}
			visited[name] = true
			if fragment := ctx.Fragment(name); fragment != nil {
				fields = append(fields, rootFields(ctx, fragment.SelectionSet, visited)...)
			}
		}
	}
	return fields
}
