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

var _ = Describe("Validate: No undefined variables", func() {
	expectErrors := func(queryStr string) Assertion {
		return expectValidationErrors(rules.NoUndefinedVariables{}, queryStr)
	}

	expectValid := func(queryStr string) {
		expectErrors(queryStr).Should(Equal(graphql.NoErrors()))
	}

	undefinedVar := func(
		varName string,
		varLine int,
		varColumn int,
		opName string,
		opLine int,
		opColumn int) *graphql.Error {

		return graphql.NewValidationError(
			messages.UndefinedVarMessage(varName, opName),
			[]graphql.ErrorLocation{
				{Line: varLine, Column: varColumn},
				{Line: opLine, Column: opColumn},
			},
		)
	}

	It("accepts an operation using all of its variables", func() {
		expectValid(`
query Foo($a: String, $b: String, $c: String) {
  complicatedArgs {
    stringArgField(stringArg: $a)
    anotherField: stringArgField(stringArg: $b)
    thirdField: stringArgField(stringArg: $c)
  }
}
`)
	})

	It("accepts variables reached through a fragment", func() {
		expectValid(`
query Foo($a: String) {
  complicatedArgs {
    ...FieldFragment
  }
}

fragment FieldFragment on ComplicatedArgs {
  stringArgField(stringArg: $a)
}
`)
	})

	It("reports a variable the operation never defines", func() {
		expectErrors(`
query Foo($a: String) {
  complicatedArgs {
    stringArgField(stringArg: $a)
    intArgField(intArg: $b)
  }
}
`).Should(Equal(graphql.ErrorsOf(undefinedVar("b", 5, 25, "Foo", 2, 1))))
	})

	It("reports undefined variables used inside fragments", func() {
		expectErrors(`
query Foo {
  complicatedArgs {
    ...FieldFragment
  }
}

fragment FieldFragment on ComplicatedArgs {
  stringArgField(stringArg: $a)
}
`).Should(Equal(graphql.ErrorsOf(undefinedVar("a", 9, 29, "Foo", 2, 1))))
	})

	It("scopes definitions to their own operation", func() {
		expectErrors(`
query Foo($a: String) {
  complicatedArgs {
    stringArgField(stringArg: $a)
  }
}

query Bar {
  complicatedArgs {
    stringArgField(stringArg: $a)
  }
}
`).Should(Equal(graphql.ErrorsOf(undefinedVar("a", 10, 31, "Bar", 8, 1))))
	})
})
