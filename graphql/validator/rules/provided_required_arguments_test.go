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

var _ = Describe("Validate: Provided required arguments", func() {
	expectErrors := func(queryStr string) Assertion {
		return expectValidationErrors(rules.ProvidedRequiredArguments{}, queryStr)
	}

	expectValid := func(queryStr string) {
		expectErrors(queryStr).Should(Equal(graphql.NoErrors()))
	}

	missingFieldArg := func(
		fieldName string, argName string, typeName string, line int, column int) *graphql.Error {

		return graphql.NewValidationError(
			messages.MissingFieldArgMessage(fieldName, argName, typeName),
			[]graphql.ErrorLocation{{Line: line, Column: column}},
		)
	}

	It("accepts a field with no declared arguments", func() {
		expectValid(`
{
  dog {
    name
  }
}
`)
	})

	It("accepts omitted arguments that declare defaults", func() {
		expectValid(`
{
  complicatedArgs {
    multipleOpts
  }
  dog {
    isHousetrained
  }
}
`)
	})

	It("accepts required arguments given in any order", func() {
		expectValid(`
{
  complicatedArgs {
    multipleReqs(req2: 2, req1: 1)
  }
}
`)
	})

	It("reports one missing required argument", func() {
		expectErrors(`
{
  complicatedArgs {
    multipleReqs(req2: 2)
  }
}
`).Should(Equal(graphql.ErrorsOf(
			missingFieldArg("multipleReqs", "req1", "Int!", 4, 5),
		)))
	})

	It("reports each missing required argument", func() {
		expectErrors(`
{
  complicatedArgs {
    multipleReqs
  }
}
`).Should(Equal(graphql.ErrorsOf(
			missingFieldArg("multipleReqs", "req1", "Int!", 4, 5),
			missingFieldArg("multipleReqs", "req2", "Int!", 4, 5),
		)))
	})

	It("reports a directive missing its required argument", func() {
		expectErrors(`
{
  dog @include {
    name
  }
}
`).Should(Equal(graphql.ErrorsOf(graphql.NewValidationError(
			messages.MissingDirectiveArgMessage("include", "if", "Boolean!"),
			[]graphql.ErrorLocation{{Line: 3, Column: 7}},
		))))
	})
})
