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

var _ = Describe("Validate: Unique operation names", func() {
	expectErrors := func(queryStr string) Assertion {
		return expectValidationErrors(rules.UniqueOperationNames{}, queryStr)
	}

	expectValid := func(queryStr string) {
		expectErrors(queryStr).Should(Equal(graphql.NoErrors()))
	}

	It("accepts a single operation", func() {
		expectValid(`
query Foo {
  dog {
    name
  }
}
`)
	})

	It("accepts several operations with distinct names", func() {
		expectValid(`
query Foo {
  dog {
    name
  }
}

query Bar {
  dog {
    name
  }
}
`)
	})

	It("accepts one anonymous operation", func() {
		expectValid(`
{
  dog {
    name
  }
}
`)
	})

	It("reports two operations sharing a name", func() {
		expectErrors(`
query Foo {
  dog {
    name
  }
}

query Foo {
  cat {
    name
  }
}
`).Should(Equal(graphql.ErrorsOf(graphql.NewValidationError(
			messages.DuplicateOperationNameMessage("Foo"),
			[]graphql.ErrorLocation{{Line: 2, Column: 7}, {Line: 8, Column: 7}},
		))))
	})

	It("reports duplicates across operation kinds", func() {
		expectErrors(`
query Foo {
  dog {
    name
  }
}

mutation Foo {
  dog {
    name
  }
}
`).Should(Equal(graphql.ErrorsOf(graphql.NewValidationError(
			messages.DuplicateOperationNameMessage("Foo"),
			[]graphql.ErrorLocation{{Line: 2, Column: 7}, {Line: 8, Column: 10}},
		))))
	})
})
