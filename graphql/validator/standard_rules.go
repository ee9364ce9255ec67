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

// The rule set required by the specification for validating executable documents. It lives in the
// rules package, which cannot be imported from here without a cycle; the rules package injects it
// through InitStandardRules from its package init function.
var standardRules *rules

// InitStandardRules initializes the standard rule set. It is called from the init function of the
// rules package and must not be called anywhere else.
func InitStandardRules(rs ...interface{}) {
	standardRules = buildRules(rs...)
}

// StandardRules returns the rule set required by the specification for validating executable
// documents.
func StandardRules() *rules {
	if standardRules == nil {
		panic(`Please import "github.com/quellgo/quell/graphql/validator/rules" for loading standard validation rules:

import (
	...

	// Load standard rules required by specification for validating queries.
	_ "github.com/quellgo/quell/graphql/validator/rules"
)
`)
	}
	return standardRules
}
