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

package graphql_test

import (
	"errors"

	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/token"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ResponsePath", func() {
	It("starts empty", func() {
		var path graphql.ResponsePath
		Expect(path.Empty()).Should(BeTrue())
		Expect(path.Keys()).Should(BeEmpty())
		Expect(path.String()).Should(Equal(""))
	})

	It("renders field keys and list indices", func() {
		var path graphql.ResponsePath
		path = path.WithFieldName("a").WithFieldName("b").WithIndex(2).WithFieldName("c")
		Expect(path.Empty()).Should(BeFalse())
		Expect(path.Keys()).Should(Equal([]interface{}{"a", "b", 2, "c"}))
		Expect(path.String()).Should(Equal("a.b[2].c"))
	})

	It("extends copies without aliasing the receiver", func() {
		var base graphql.ResponsePath
		base = base.WithFieldName("hero")

		left := base.WithFieldName("name")
		right := base.WithIndex(0)

		Expect(base.String()).Should(Equal("hero"))
		Expect(left.String()).Should(Equal("hero.name"))
		Expect(right.String()).Should(Equal("hero[0]"))
	})
})

var _ = Describe("Error", func() {
	It("derives locations from source positions", func() {
		location := graphql.LocationOf(token.SourcePosition{Index: 10, Line: 2, Col: 4})
		Expect(location).Should(Equal(graphql.ErrorLocation{Line: 2, Column: 4}))
	})

	It("prefixes syntax errors with the standard heading", func() {
		err := graphql.NewSyntaxError(token.SourcePosition{Index: 0, Line: 1, Col: 1}, `Unexpected character '?'.`)
		Expect(err.Kind).Should(Equal(graphql.ErrKindSyntax))
		Expect(err.Message).Should(Equal(`Syntax Error: Unexpected character '?'.`))
		Expect(err.Locations).Should(Equal([]graphql.ErrorLocation{{Line: 1, Column: 1}}))
		Expect(err.Error()).Should(Equal(err.Message))
	})

	It("carries the underlying resolver error for errors.Is", func() {
		cause := errors.New("database unavailable")
		err := graphql.NewExecutionError(
			"Could not fetch hero.",
			graphql.ErrorLocation{Line: 1, Column: 3},
			graphql.ResponsePath{}.WithFieldName("hero"),
			cause,
		)
		Expect(err.Kind).Should(Equal(graphql.ErrKindExecution))
		Expect(errors.Is(err, cause)).Should(BeTrue())
		Expect(err.Path.String()).Should(Equal("hero"))
	})

	It("names the phase in the kind description", func() {
		Expect(graphql.ErrKindSyntax.String()).Should(Equal("syntax error"))
		Expect(graphql.ErrKindValidation.String()).Should(Equal("validation error"))
		Expect(graphql.ErrKindCoercion.String()).Should(Equal("coercion error"))
		Expect(graphql.ErrKindExecution.String()).Should(Equal("execution error"))
		Expect(graphql.ErrKindOther.String()).Should(Equal("error"))
	})
})

var _ = Describe("Errors", func() {
	It("reports emptiness", func() {
		Expect(graphql.NoErrors()).Should(BeNil())
		Expect(graphql.NoErrors().HaveOccurred()).Should(BeFalse())
		Expect(graphql.ErrorsOf(graphql.NewError("boom")).HaveOccurred()).Should(BeTrue())
	})

	It("appends in reporting order", func() {
		first := graphql.NewError("first")
		second := graphql.NewError("second")
		third := graphql.NewError("third")

		var errs graphql.Errors
		errs.Append(first)
		errs.AppendErrors(graphql.ErrorsOf(second, third))
		Expect(errs).Should(Equal(graphql.ErrorsOf(first, second, third)))
	})
})
