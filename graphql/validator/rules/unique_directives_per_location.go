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

// UniqueDirectivesPerLocation implements the "Directives Are Unique Per Location" validation rule.
//
// Reference: https://spec.graphql.org/October2021/#sec-Directives-Are-Unique-Per-Location
type UniqueDirectivesPerLocation struct{}

// CheckDirectives implements validator.DirectivesRule. The walker hands over the directive list of
// one location at a time, so uniqueness is scoped correctly for free.
func (rule UniqueDirectivesPerLocation) CheckDirectives(
	ctx *validator.ValidationContext,
	directives []*ast.Directive,
	location schema.DirectiveLocation) validator.NextCheckAction {

	if len(directives) < 2 {
		return validator.ContinueCheck
	}

	seen := make(map[string]*ast.Directive, len(directives))
	for _, directive := range directives {
		name := directive.Name.Value
		if previous, exists := seen[name]; exists {
			ctx.ReportError(
				messages.DuplicateDirectiveMessage(name),
				graphql.LocationsOf(previous, directive)...,
			)
		} else {
			seen[name] = directive
		}
	}
	return validator.ContinueCheck
}
