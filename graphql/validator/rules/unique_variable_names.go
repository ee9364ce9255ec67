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

// UniqueVariableNames implements the "Variable Uniqueness" validation rule.
//
// Reference: https://spec.graphql.org/October2021/#sec-Variable-Uniqueness
type UniqueVariableNames struct{}

// CheckVariableDefinition implements validator.VariableDefinitionRule.
func (rule UniqueVariableNames) CheckVariableDefinition(
	ctx *validator.ValidationContext,
	operation *ast.OperationDefinition,
	definition *ast.VariableDefinition) validator.NextCheckAction {

	// If any operation defines more than one variable with the same name, it is ambiguous and
	// invalid.

	known := ctx.KnownVariableNames[operation]
	if known == nil {
		known = map[string]*ast.Name{}
		ctx.KnownVariableNames[operation] = known
	}

	name := definition.Variable.Value
	if previous, exists := known[name]; exists {
		ctx.ReportError(
			messages.DuplicateVariableMessage(name),
			graphql.LocationsOf(previous, definition.Variable)...,
		)
	} else {
		known[name] = definition.Variable
	}

	return validator.ContinueCheck
}
