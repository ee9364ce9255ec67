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

// UniqueArgumentNames implements the "Argument Uniqueness" validation rule for both field and
// directive arguments.
//
// Reference: https://spec.graphql.org/October2021/#sec-Argument-Uniqueness
type UniqueArgumentNames struct{}

// CheckField implements validator.FieldRule.
func (rule UniqueArgumentNames) CheckField(
	ctx *validator.ValidationContext,
	field *validator.FieldInfo) validator.NextCheckAction {

	rule.checkDuplicates(ctx, field.Node().Arguments)
	return validator.ContinueCheck
}

// CheckDirective implements validator.DirectiveRule.
func (rule UniqueArgumentNames) CheckDirective(
	ctx *validator.ValidationContext,
	directive *validator.DirectiveInfo) validator.NextCheckAction {

	rule.checkDuplicates(ctx, directive.Node().Arguments)
	return validator.ContinueCheck
}

func (rule UniqueArgumentNames) checkDuplicates(
	ctx *validator.ValidationContext, arguments []*ast.Argument) {

	if len(arguments) < 2 {
		return
	}

	seen := make(map[string]*ast.Name, len(arguments))
	for _, argument := range arguments {
		name := argument.Name.Value
		if previous, exists := seen[name]; exists {
			ctx.ReportError(
				messages.DuplicateArgMessage(name),
				graphql.LocationsOf(previous, argument.Name)...,
			)
		} else {
			seen[name] = argument.Name
		}
	}
}
