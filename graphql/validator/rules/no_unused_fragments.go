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

// NoUnusedFragments implements the "Fragments must be used" validation rule.
//
// Reference: https://spec.graphql.org/October2021/#sec-Fragments-Must-Be-Used
type NoUnusedFragments struct{}

// CheckFragmentSpread implements validator.FragmentSpreadRule. A spread reached from an operation
// marks its fragment, and everything that fragment spreads, as used.
func (rule NoUnusedFragments) CheckFragmentSpread(
	ctx *validator.ValidationContext,
	parentType schema.MetaType,
	fragment *validator.FragmentInfo,
	spread *ast.FragmentSpread) validator.NextCheckAction {

	if fragment != nil && ctx.CurrentOperation() != nil {
		fragment.RecursivelyMarkUsed(ctx)
	}
	return validator.ContinueCheck
}

// CheckDocument implements validator.PostWalkRule.
func (rule NoUnusedFragments) CheckDocument(ctx *validator.ValidationContext) {
	for _, fragment := range ctx.Document().Fragments() {
		info := ctx.FragmentInfo(fragment.Name.Value)
		if info != nil && !info.Used() {
			ctx.ReportError(
				messages.UnusedFragmentMessage(fragment.Name.Value),
				graphql.LocationsOf(fragment)...,
			)
		}
	}
}
