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

package rules_test

import (
	"github.com/quellgo/quell/graphql"
	messages "github.com/quellgo/quell/graphql/internal/validator"
	"github.com/quellgo/quell/graphql/validator/rules"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Validate: Known directives", func() {
	expectErrors := func(queryStr string) Assertion {
		return expectValidationErrors(rules.KnownDirectives{}, queryStr)
	}

	expectValid := func(queryStr string) {
		expectErrors(queryStr).Should(Equal(graphql.NoErrors()))
	}

	unknownDirective := func(directiveName string, line int, column int) *graphql.Error {
		return graphql.NewValidationError(
			messages.UnknownDirectiveMessage(directiveName),
			[]graphql.ErrorLocation{{Line: line, Column: column}},
		)
	}

	misplacedDirective := func(
		directiveName string, location string, line int, column int) *graphql.Error {

		return graphql.NewValidationError(
			messages.MisplacedDirectiveMessage(directiveName, location),
			[]graphql.ErrorLocation{{Line: line, Column: column}},
		)
	}

	It("accepts a document with no directives", func() {
		expectValid(`
query Foo {
  dog {
    name
  }
}
`)
	})

	It("accepts the built-in directives at field locations", func() {
		expectValid(`
{
  dog @include(if: true) {
    name
  }
  human @skip(if: false) {
    name
  }
}
`)
	})

	It("accepts declared directives in their declared locations", func() {
		expectValid(`
query Foo @onQuery {
  dog @onField {
    name
  }
  ...Frag @include(if: true)
}

fragment Frag on Dog @onFragmentDefinition {
  name
}
`)
	})

	It("reports an unknown directive", func() {
		expectErrors(`
{
  dog @unknown(directive: "value") {
    name
  }
}
`).Should(Equal(graphql.ErrorsOf(unknownDirective("unknown", 3, 7))))
	})

	It("reports every unknown directive", func() {
		expectErrors(`
{
  dog @unknown(directive: "value") {
    name
  }
  human @unknown(directive: "value") {
    name
  }
}
`).Should(Equal(graphql.ErrorsOf(
			unknownDirective("unknown", 3, 7),
			unknownDirective("unknown", 6, 9),
		)))
	})

	It("reports a known directive in a disallowed location", func() {
		expectErrors(`
query Foo @onFragmentDefinition {
  dog {
    name
  }
}
`).Should(Equal(graphql.ErrorsOf(
			misplacedDirective("onFragmentDefinition", "QUERY", 2, 11),
		)))
	})

	It("reports misplaced built-in directives", func() {
		expectErrors(`
query Foo @include(if: true) {
  dog {
    name
  }
}
`).Should(Equal(graphql.ErrorsOf(misplacedDirective("include", "QUERY", 2, 11))))
	})
})
