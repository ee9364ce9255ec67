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

// UniqueFragmentNames implements the "Fragment Name Uniqueness" validation rule.
//
// Reference: https://spec.graphql.org/October2021/#sec-Fragment-Name-Uniqueness
type UniqueFragmentNames struct{}

// CheckFragment implements validator.FragmentRule.
func (rule UniqueFragmentNames) CheckFragment(
	ctx *validator.ValidationContext,
	fragment *validator.FragmentInfo) validator.NextCheckAction {

	// A GraphQL document is only valid if all defined fragments have unique names.

	var (
		name     = fragment.Name()
		nameNode = fragment.Definition().Name
	)
	if previous, exists := ctx.KnownFragmentNames[name]; exists {
		ctx.ReportError(
			messages.DuplicateFragmentNameMessage(name),
			graphql.LocationsOf(previous, nameNode)...,
		)
	} else {
		ctx.KnownFragmentNames[name] = nameNode
	}

	return validator.ContinueCheck
}
