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
	"github.com/quellgo/quell/internal/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Validate: Values of correct type", func() {
	expectErrors := func(queryStr string) Assertion {
		return expectValidationErrors(rules.ValuesOfCorrectType{}, queryStr)
	}

	expectValid := func(queryStr string) {
		expectErrors(queryStr).Should(Equal(graphql.NoErrors()))
	}

	badValue := func(typeName string, valueRepr string, line int, column int) *graphql.Error {
		return graphql.NewValidationError(
			messages.BadValueMessage(typeName, valueRepr, ""),
			[]graphql.ErrorLocation{{Line: line, Column: column}},
		)
	}

	It("accepts literals of the argument's type", func() {
		expectValid(`
{
  complicatedArgs {
    intArgField(intArg: 2)
    stringArgField(stringArg: "foo")
    booleanArgField(booleanArg: true)
    floatArgField(floatArg: 1.1)
    idArgField(idArg: "someIdString")
    enumArgField(enumArg: BROWN)
    stringListArgField(stringListArg: ["one", null, "two"])
  }
}
`)
	})

	It("accepts int literals into float and id positions", func() {
		expectValid(`
{
  complicatedArgs {
    floatArgField(floatArg: 1)
    idArgField(idArg: 1)
  }
}
`)
	})

	It("accepts null at a nullable position", func() {
		expectValid(`
{
  complicatedArgs {
    intArgField(intArg: null)
  }
}
`)
	})

	It("accepts a single value at a list position", func() {
		expectValid(`
{
  complicatedArgs {
    stringListArgField(stringListArg: "one")
  }
}
`)
	})

	It("accepts a full complex input literal", func() {
		expectValid(`
{
  complicatedArgs {
    complexArgField(complexArg: {requiredField: true, intField: 4})
  }
}
`)
	})

	It("skips values bound through variables", func() {
		expectValid(`
query Foo($intArg: Int) {
  complicatedArgs {
    intArgField(intArg: $intArg)
  }
}
`)
	})

	It("rejects an int literal at a string position", func() {
		expectErrors(`
{
  complicatedArgs {
    stringArgField(stringArg: 1)
  }
}
`).Should(Equal(graphql.ErrorsOf(badValue("String", "1", 4, 31))))
	})

	It("rejects a string literal at an enum position", func() {
		expectErrors(`
{
  complicatedArgs {
    enumArgField(enumArg: "BROWN")
  }
}
`).Should(Equal(graphql.ErrorsOf(badValue("FurColor", `"BROWN"`, 4, 27))))
	})

	It("rejects an unknown enum value with suggestions", func() {
		expectErrors(`
{
  complicatedArgs {
    enumArgField(enumArg: BROWNS)
  }
}
`).Should(Equal(graphql.ErrorsOf(graphql.NewValidationError(
			messages.UnknownEnumValueMessage(
				"FurColor", "BROWNS", util.SuggestionList("BROWNS", []string{"BROWN", "BLACK", "TAN"})),
			[]graphql.ErrorLocation{{Line: 4, Column: 27}},
		))))
	})

	It("rejects null at a non-null position", func() {
		expectErrors(`
{
  complicatedArgs {
    nonNullIntArgField(nonNullIntArg: null)
  }
}
`).Should(Equal(graphql.ErrorsOf(badValue("Int!", "null", 4, 39))))
	})

	It("checks every element of a list literal", func() {
		expectErrors(`
{
  complicatedArgs {
    stringListArgField(stringListArg: ["one", 2])
  }
}
`).Should(Equal(graphql.ErrorsOf(badValue("String", "2", 4, 47))))
	})

	It("rejects a complex input missing a required field", func() {
		expectErrors(`
{
  complicatedArgs {
    complexArgField(complexArg: {intField: 4})
  }
}
`).Should(Equal(graphql.ErrorsOf(graphql.NewValidationError(
			messages.RequiredInputFieldMessage("ComplexInput", "requiredField", "Boolean!"),
			[]graphql.ErrorLocation{{Line: 4, Column: 33}},
		))))
	})

	It("rejects an unknown input field", func() {
		fieldNames := []string{
			"requiredField", "nonNullField", "intField",
			"stringField", "booleanField", "stringListField",
		}
		expectErrors(`
{
  complicatedArgs {
    complexArgField(complexArg: {requiredField: true, unknownField: "value"})
  }
}
`).Should(Equal(graphql.ErrorsOf(graphql.NewValidationError(
			messages.UnknownInputFieldMessage(
				"ComplexInput", "unknownField", util.SuggestionList("unknownField", fieldNames)),
			[]graphql.ErrorLocation{{Line: 4, Column: 55}},
		))))
	})

	It("requires exactly one field of a oneOf input", func() {
		expectErrors(`
{
  complicatedArgs {
    oneOfArgField(oneOfArg: {stringField: "abc", intField: 3})
  }
}
`).Should(Equal(graphql.ErrorsOf(graphql.NewValidationError(
			messages.OneOfRequiresExactlyOneFieldMessage("OneOfInput"),
			[]graphql.ErrorLocation{{Line: 4, Column: 29}},
		))))
	})
})
