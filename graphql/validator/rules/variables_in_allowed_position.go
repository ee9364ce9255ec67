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

// VariablesInAllowedPosition implements the "All Variable Usages are Allowed" validation rule: a
// variable may only flow into a position whose type it is a subtype of, with an exception for
// defaulted positions.
//
// Reference: https://spec.graphql.org/October2021/#sec-All-Variable-Usages-are-Allowed
type VariablesInAllowedPosition struct{}

// CheckDocument implements validator.PostWalkRule. It runs after the walk because an operation's
// variable usages include those of every fragment it spreads, directly or transitively.
func (rule VariablesInAllowedPosition) CheckDocument(ctx *validator.ValidationContext) {
	for _, operation := range ctx.Document().Operations() {
		definitions := map[string]*ast.VariableDefinition{}
		for _, definition := range operation.VariableDefinitions {
			definitions[definition.Variable.Value] = definition
		}

		for _, usage := range ctx.RecursiveVariableUsages(operation) {
			definition := definitions[usage.Node.Name]
			if definition == nil || usage.ExpectedType == nil {
				continue
			}
			if allowedVariableUsage(ctx.Schema(), definition, usage) {
				continue
			}
			ctx.ReportError(
				messages.BadVarPosMessage(
					usage.Node.Name, definition.Type.String(), usage.ExpectedType.String()),
				graphql.LocationsOf(definition, usage.Node)...,
			)
		}
	}
}

// allowedVariableUsage reports whether a variable of the definition's type may be used at the
// usage's position. A nullable variable is allowed at a non-null position when either side supplies
// a usable default, since a missing value can never surface as null there.
func allowedVariableUsage(
	s *schema.Schema, definition *ast.VariableDefinition, usage validator.VariableUsage) bool {

	varType := definition.Type
	locationType := usage.ExpectedType

	if locationType.IsNonNull() && !varType.IsNonNull() {
		hasNonNullDefault := false
		if definition.DefaultValue != nil {
			if _, isNull := definition.DefaultValue.(ast.NullValue); !isNull {
				hasNonNullDefault = true
			}
		}
		if !hasNonNullDefault && usage.LocationDefault == nil {
			return false
		}
		return s.IsSubtype(varType, ast.NullableOf(locationType))
	}
	return s.IsSubtype(varType, locationType)
}
