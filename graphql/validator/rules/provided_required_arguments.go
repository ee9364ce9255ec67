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

// ProvidedRequiredArguments implements the "Required Arguments" validation rule: every argument
// declared with a non-null type and no default must be supplied.
//
// Reference: https://spec.graphql.org/October2021/#sec-Required-Arguments
type ProvidedRequiredArguments struct{}

// CheckField implements validator.FieldRule.
func (rule ProvidedRequiredArguments) CheckField(
	ctx *validator.ValidationContext,
	field *validator.FieldInfo) validator.NextCheckAction {

	def := field.Def()
	if def == nil {
		return validator.ContinueCheck
	}

	supplied := ast.ArgumentList(field.Node().Arguments)
	for _, arg := range def.Args {
		if !arg.Type.IsNonNull() || arg.HasDefault() || supplied.Lookup(arg.Name) != nil {
			continue
		}
		ctx.ReportError(
			messages.MissingFieldArgMessage(field.Name(), arg.Name, arg.Type.String()),
			graphql.LocationsOf(field.Node())...,
		)
	}
	return validator.ContinueCheck
}

// CheckDirective implements validator.DirectiveRule.
func (rule ProvidedRequiredArguments) CheckDirective(
	ctx *validator.ValidationContext,
	directive *validator.DirectiveInfo) validator.NextCheckAction {

	def := directive.Def()
	if def == nil {
		return validator.ContinueCheck
	}

	supplied := ast.ArgumentList(directive.Node().Arguments)
	for _, arg := range def.Args {
		if !arg.Type.IsNonNull() || arg.HasDefault() || supplied.Lookup(arg.Name) != nil {
			continue
		}
		ctx.ReportError(
			messages.MissingDirectiveArgMessage(directive.Name(), arg.Name, arg.Type.String()),
			graphql.LocationsOf(directive.Node())...,
		)
	}
	return validator.ContinueCheck
}
