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

// KnownFragmentNames implements the "Fragment spread target defined" validation rule.
//
// Reference: https://spec.graphql.org/October2021/#sec-Fragment-spread-target-defined
type KnownFragmentNames struct{}

// CheckFragmentSpread implements validator.FragmentSpreadRule.
func (rule KnownFragmentNames) CheckFragmentSpread(
	ctx *validator.ValidationContext,
	parentType schema.MetaType,
	fragment *validator.FragmentInfo,
	spread *ast.FragmentSpread) validator.NextCheckAction {

	// Named fragment spreads must refer to fragments defined within the document.

	if fragment == nil {
		ctx.ReportError(
			messages.UnknownFragmentMessage(spread.Name.Value),
			graphql.LocationsOf(spread.Name)...,
		)
	}
	return validator.ContinueCheck
}
