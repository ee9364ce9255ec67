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

// UniqueInputFieldNames implements the "Input Object Field Uniqueness" validation rule.
//
// Reference: https://spec.graphql.org/October2021/#sec-Input-Object-Field-Uniqueness
type UniqueInputFieldNames struct{}

// CheckValue implements validator.ValueRule. The walker hands over the complete value once; the
// rule descends into nested lists and objects itself.
func (rule UniqueInputFieldNames) CheckValue(
	ctx *validator.ValidationContext,
	expectedType ast.Type,
	value ast.InputValue) validator.NextCheckAction {

	rule.checkValue(ctx, value)
	return validator.ContinueCheck
}

func (rule UniqueInputFieldNames) checkValue(ctx *validator.ValidationContext, value ast.InputValue) {
	switch value := value.(type) {
	case ast.ListValue:
		for _, element := range value.Values {
			rule.checkValue(ctx, element)
		}

	case ast.ObjectValue:
		seen := make(map[string]*ast.Name, len(value.Fields))
		for _, field := range value.Fields {
			name := field.Name.Value
			if previous, exists := seen[name]; exists {
				ctx.ReportError(
					messages.DuplicateInputFieldMessage(name),
					graphql.LocationsOf(previous, field.Name)...,
				)
			} else {
				seen[name] = field.Name
			}
			rule.checkValue(ctx, field.Value)
		}
	}
}
