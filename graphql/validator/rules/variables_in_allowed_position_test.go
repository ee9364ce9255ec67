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

var _ = Describe("Validate: Variables are in allowed positions", func() {
	expectErrors := func(queryStr string) Assertion {
		return expectValidationErrors(rules.VariablesInAllowedPosition{}, queryStr)
	}

	expectValid := func(queryStr string) {
		expectErrors(queryStr).Should(Equal(graphql.NoErrors()))
	}

	badVarPos := func(
		varName string,
		varType string,
		expectedType string,
		defLine int,
		defColumn int,
		useLine int,
		useColumn int) *graphql.Error {

		return graphql.NewValidationError(
			messages.BadVarPosMessage(varName, varType, expectedType),
			[]graphql.ErrorLocation{
				{Line: defLine, Column: defColumn},
				{Line: useLine, Column: useColumn},
			},
		)
	}

	It("accepts a variable whose type matches the argument exactly", func() {
		expectValid(`
query Foo($booleanArg: Boolean) {
  complicatedArgs {
    booleanArgField(booleanArg: $booleanArg)
  }
}
`)
	})

	It("accepts a non-null variable at a nullable position", func() {
		expectValid(`
query Foo($nonNullIntArg: Int!) {
  complicatedArgs {
    intArgField(intArg: $nonNullIntArg)
  }
}
`)
	})

	It("accepts a nullable variable at a non-null position when it declares a default", func() {
		expectValid(`
query Foo($intArg: Int = 1) {
  complicatedArgs {
    nonNullIntArgField(nonNullIntArg: $intArg)
  }
}
`)
	})

	It("accepts a nullable variable where the argument declares a default", func() {
		expectValid(`
query Foo($atOtherHomes: Boolean) {
  dog {
    isHousetrained(atOtherHomes: $atOtherHomes)
  }
}
`)
	})

	It("checks usages reached through fragments", func() {
		expectValid(`
query Foo($booleanArg: Boolean) {
  complicatedArgs {
    ...BooleanArgFragment
  }
}

fragment BooleanArgFragment on ComplicatedArgs {
  booleanArgField(booleanArg: $booleanArg)
}
`)
	})

	It("rejects a nullable variable at a non-null position", func() {
		expectErrors(`
query Foo($intArg: Int) {
  complicatedArgs {
    nonNullIntArgField(nonNullIntArg: $intArg)
  }
}
`).Should(Equal(graphql.ErrorsOf(
			badVarPos("intArg", "Int", "Int!", 2, 11, 4, 39),
		)))
	})

	It("rejects a variable of an unrelated type", func() {
		expectErrors(`
query Foo($stringVar: String) {
  complicatedArgs {
    booleanArgField(booleanArg: $stringVar)
  }
}
`).Should(Equal(graphql.ErrorsOf(
			badVarPos("stringVar", "String", "Boolean", 2, 11, 4, 33),
		)))
	})

	It("accepts a variable used as a list element of matching type", func() {
		expectErrors(`
query Foo($stringVar: String) {
  complicatedArgs {
    stringListArgField(stringListArg: [$stringVar])
  }
}
`).Should(Equal(graphql.NoErrors()))
	})
})
