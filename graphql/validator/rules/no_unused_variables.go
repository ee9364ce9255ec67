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

// NoUnusedVariables implements the "All Variables Used" validation rule.
//
// Reference: https://spec.graphql.org/October2021/#sec-All-Variables-Used
type NoUnusedVariables struct{}

// CheckDocument implements validator.PostWalkRule. It runs after the walk because a variable
// counts as used when any transitively spread fragment references it.
func (rule NoUnusedVariables) CheckDocument(ctx *validator.ValidationContext) {
	for _, operation := range ctx.Document().Operations() {
		used := map[string]bool{}
		for _, usage := range ctx.RecursiveVariableUsages(operation) {
			used[usage.Node.Name] = true
		}

		for _, definition := range operation.VariableDefinitions {
			name := definition.Variable.Value
			if used[name] {
				continue
			}
			ctx.ReportError(
				messages.UnusedVariableMessage(name, operation.NameValue()),
				graphql.LocationsOf(definition)...,
			)
		}
	}
}
