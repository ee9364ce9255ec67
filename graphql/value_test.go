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
	"github.com/quellgo/quell/graphql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Value", func() {
	It("treats the zero value and nil as null", func() {
		var zero graphql.Value
		Expect(zero.IsNull()).Should(BeTrue())
		Expect((*graphql.Value)(nil).IsNull()).Should(BeTrue())
		Expect(graphql.NewNullValue().IsNull()).Should(BeTrue())
		Expect(graphql.NewScalarValue(graphql.IntValue(0)).IsNull()).Should(BeFalse())
	})

	It("resets to null in place", func() {
		value := graphql.NewScalarValue(graphql.StringValue("Luke"))
		Expect(value.IsNull()).Should(BeFalse())
		value.SetNull()
		Expect(value.IsNull()).Should(BeTrue())
		Expect(value.Scalar).Should(BeNil())
	})

	It("looks up object fields by response key", func() {
		name := graphql.NewScalarValue(graphql.StringValue("R2-D2"))
		value := &graphql.Value{
			Kind: graphql.ValueKindObject,
			Fields: []graphql.ObjectField{
				{Name: "id", Value: graphql.NewScalarValue(graphql.StringValue("2001"))},
				{Name: "name", Value: name},
			},
		}
		Expect(value.FieldValue("name")).Should(BeIdenticalTo(name))
		Expect(value.FieldValue("missing")).Should(BeNil())
		Expect(name.FieldValue("name")).Should(BeNil())
	})

	It("converts to plain Go values", func() {
		value := &graphql.Value{
			Kind: graphql.ValueKindObject,
			Fields: []graphql.ObjectField{
				{Name: "name", Value: graphql.NewScalarValue(graphql.StringValue("R2-D2"))},
				{Name: "primaryFunction", Value: graphql.NewNullValue()},
				{Name: "appearsIn", Value: &graphql.Value{
					Kind: graphql.ValueKindList,
					Values: []*graphql.Value{
						graphql.NewScalarValue(graphql.IntValue(4)),
						graphql.NewScalarValue(graphql.FloatValue(5.5)),
						graphql.NewScalarValue(graphql.BooleanValue(true)),
					},
				}},
			},
		}
		Expect(value.GoValue()).Should(Equal(map[string]interface{}{
			"name":            "R2-D2",
			"primaryFunction": nil,
			"appearsIn":       []interface{}{int32(4), 5.5, true},
		}))
	})
})
