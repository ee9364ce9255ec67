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

// KnownArgumentNames implements the "Argument Names" validation rule for both field and directive
// arguments.
//
// Reference: https://spec.graphql.org/October2021/#sec-Argument-Names
type KnownArgumentNames struct{}

// CheckFieldArgument implements validator.FieldArgumentRule.
func (rule KnownArgumentNames) CheckFieldArgument(
	ctx *validator.ValidationContext,
	field *validator.FieldInfo,
	argDef *schema.ArgumentMeta,
	argument *ast.Argument) validator.NextCheckAction {

	// An unknown field already fails FieldsOnCorrectType; only report arguments that are unknown on
	// a known field.
	if argDef != nil || field.Def() == nil {
		return validator.ContinueCheck
	}

	argName := argument.Name.Value
	ctx.ReportError(
		messages.UnknownArgMessage(
			argName,
			field.Name(),
			schema.TypeNameOf(field.ParentType()),
			util.SuggestionList(argName, field.KnownArgNames()),
		),
		graphql.LocationsOf(argument)...,
	)
	return validator.ContinueCheck
}

// CheckDirectiveArgument implements validator.DirectiveArgumentRule.
func (rule KnownArgumentNames) CheckDirectiveArgument(
	ctx *validator.ValidationContext,
	directive *validator.DirectiveInfo,
	argDef *schema.ArgumentMeta,
	argument *ast.Argument) validator.NextCheckAction {

	if argDef != nil || directive.Def() == nil {
		return validator.ContinueCheck
	}

	argName := argument.Name.Value
	ctx.ReportError(
		messages.UnknownDirectiveArgMessage(
			argName,
			directive.Name(),
			util.SuggestionList(argName, directive.KnownArgNames()),
		),
		graphql.LocationsOf(argument)...,
	)
	return validator.ContinueCheck
}
