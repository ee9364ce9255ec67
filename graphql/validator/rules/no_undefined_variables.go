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
	"github.com/quellgo/quell/graphql/validator"
)

// NoUndefinedVariables implements the "All Variable Uses Defined" validation rule.
//
// Reference: https://spec.graphql.org/October2021/#sec-All-Variable-Uses-Defined
type NoUndefinedVariables struct{}

// CheckDocument implements validator.PostWalkRule. It runs after the walk because an operation's
// variable usages include those of every fragment it spreads, directly or transitively.
func (rule NoUndefinedVariables) CheckDocument(ctx *validator.ValidationContext) {
	for _, operation := range ctx.Document().Operations() {
		defined := map[string]bool{}
		for _, definition := range operation.VariableDefinitions {
			defined[definition.Variable.Value] = true
		}

		reported := map[string]bool{}
		for _, usage := range ctx.RecursiveVariableUsages(operation) {
			name := usage.Node.Name
			if defined[name] || reported[name] {
				continue
			}
			reported[name] = true
			ctx.ReportError(
				messages.UndefinedVarMessage(name, operation.NameValue()),
				graphql.LocationsOf(usage.Node, operation)...,
			)
		}
	}
}
