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

package validator

import (
	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/ast"
	"github.com/quellgo/quell/graphql/schema"
)

// Validate implements the "Validation" section of the spec.
//
// Validation runs synchronously, returning a graphql.Errors containing the encountered rule
// failures, or graphql.NoErrors when the document is valid. Rule failures are collected, never
// fail-fast: a document with three problems reports all three.
//
// It runs the rules defined by the GraphQL specification on the given document.
func Validate(s *schema.Schema, document *ast.Document) graphql.Errors {
	ctx := newValidationContext(s, document, StandardRules())
	walk(ctx)
	return ctx.errs
}

// ValidateWithRules runs a specific list of validation rules on the given document. Every rule in
// rs must implement at least one of the following interfaces:
//
//	OperationRule
//	VariableDefinitionRule
//	FragmentRule
//	FieldRule
//	FieldArgumentRule
//	InlineFragmentRule
//	FragmentSpreadRule
//	DirectivesRule
//	DirectiveRule
//	DirectiveArgumentRule
//	ValueRule
//	PostWalkRule
func ValidateWithRules(s *schema.Schema, document *ast.Document, rs ...interface{}) graphql.Errors {
	if len(rs) == 0 {
		// No rules are provided to run which effectively disables validation.
		return graphql.NoErrors()
	}

	ctx := newValidationContext(s, document, buildRules(rs...))
	walk(ctx)
	return ctx.errs
}
