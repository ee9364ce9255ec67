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

var _ = Describe("Validate: No circular fragment spreads", func() {
	expectErrors := func(queryStr string) Assertion {
		return expectValidationErrors(rules.NoFragmentCycles{}, queryStr)
	}

	expectValid := func(queryStr string) {
		expectErrors(queryStr).Should(Equal(graphql.NoErrors()))
	}

	It("accepts a single-level spread chain", func() {
		expectValid(`
fragment fragA on Dog { ...fragB }
fragment fragB on Dog { name }
`)
	})

	It("accepts spreading the same fragment twice", func() {
		expectValid(`
fragment fragA on Dog { ...fragB, ...fragB }
fragment fragB on Dog { name }
`)
	})

	It("accepts a diamond of spreads", func() {
		expectValid(`
fragment fragA on Dog { ...fragB, ...fragC }
fragment fragB on Dog { ...fragD }
fragment fragC on Dog { ...fragD }
fragment fragD on Dog { name }
`)
	})

	It("ignores an unknown spread target", func() {
		expectValid(`
fragment fragA on Dog { ...fragDoesNotExist }
`)
	})

	It("reports a fragment spreading itself directly", func() {
		expectErrors(`
fragment fragA on Dog {
  name
  ...fragA
}
`).Should(Equal(graphql.ErrorsOf(graphql.NewValidationError(
			messages.CycleErrorMessage("fragA", nil),
			[]graphql.ErrorLocation{{Line: 4, Column: 3}},
		))))
	})

	It("reports a self spread inside an inline fragment", func() {
		expectErrors(`
fragment fragA on Pet {
  ... on Dog {
    ...fragA
  }
}
`).Should(Equal(graphql.ErrorsOf(graphql.NewValidationError(
			messages.CycleErrorMessage("fragA", nil),
			[]graphql.ErrorLocation{{Line: 4, Column: 5}},
		))))
	})

	It("reports a two-fragment cycle once", func() {
		expectErrors(`
fragment fragA on Dog {
  ...fragB
}

fragment fragB on Dog {
  ...fragA
}
`).Should(Equal(graphql.ErrorsOf(graphql.NewValidationError(
			messages.CycleErrorMessage("fragA", []string{"fragB"}),
			[]graphql.ErrorLocation{{Line: 3, Column: 3}, {Line: 7, Column: 3}},
		))))
	})

	It("traces a longer cycle through every hop", func() {
		expectErrors(`
fragment fragA on Dog {
  ...fragB
}

fragment fragB on Dog {
  ...fragC
}

fragment fragC on Dog {
  ...fragA
}
`).Should(Equal(graphql.ErrorsOf(graphql.NewValidationError(
			messages.CycleErrorMessage("fragA", []string{"fragB", "fragC"}),
			[]graphql.ErrorLocation{
				{Line: 3, Column: 3},
				{Line: 7, Column: 3},
				{Line: 11, Column: 3},
			},
		))))
	})
})
