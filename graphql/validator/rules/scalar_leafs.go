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
	messages "github.com/quellgo/quell/graphql/internal/validator"
	"github.com/quellgo/quell/graphql/schema"
	"github.com/quellgo/quell/graphql/validator"
)

// ScalarLeafs implements the "Leaf Field Selections" validation rule.
//
// Reference: https://spec.graphql.org/October2021/#sec-Leaf-Field-Selections
type ScalarLeafs struct{}

// CheckField implements validator.FieldRule.
func (rule ScalarLeafs) CheckField(
	ctx *validator.ValidationContext,
	field *validator.FieldInfo) validator.NextCheckAction {

	// A GraphQL document is valid only if all leaf fields (fields without sub selections) are of
	// scalar or enum types, and all composite fields carry a sub selection.

	fieldDef := field.Def()
	if fieldDef == nil {
		return validator.ContinueCheck
	}

	var (
		fieldType    = ctx.Schema().NamedTypeOf(fieldDef.Type)
		selectionSet = field.Node().SelectionSet
	)
	if fieldType == nil {
		return validator.ContinueCheck
	}

	if schema.IsLeafType(fieldType) {
		if selectionSet != nil {
			ctx.ReportError(
				messages.NoSubselectionAllowedMessage(field.Name(), fieldDef.Type.String()),
				graphql.LocationsOf(selectionSet)...,
			)
		}
	} else if selectionSet == nil {
		ctx.ReportError(
			messages.RequiredSubselectionMessage(field.Name(), fieldDef.Type.String()),
			graphql.LocationsOf(field.Node())...,
		)
	}

	return validator.ContinueCheck
}
