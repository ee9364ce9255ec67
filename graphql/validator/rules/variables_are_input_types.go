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

// VariablesAreInputTypes implements the "Variables Are Input Types" validation rule.
//
// Reference: https://spec.graphql.org/October2021/#sec-Variables-Are-Input-Types
type VariablesAreInputTypes struct{}

// CheckVariableDefinition implements validator.VariableDefinitionRule.
func (rule VariablesAreInputTypes) CheckVariableDefinition(
	ctx *validator.ValidationContext,
	operation *ast.OperationDefinition,
	definition *ast.VariableDefinition) validator.NextCheckAction {

	// Variables can only be input types: scalars, enums and input objects. Unknown type names are
	// reported by KnownTypeNames.

	meta := ctx.Schema().NamedTypeOf(definition.Type)
	if meta != nil && !schema.IsInputType(meta) {
		ctx.ReportError(
			messages.NonInputTypeOnVarMessage(
				definition.Variable.Value, definition.Type.String()),
			graphql.LocationsOf(definition.Type)...,
		)
	}
	return validator.ContinueCheck
}
