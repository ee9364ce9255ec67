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

package ast_test

import (
	"github.com/google/go-cmp/cmp"

	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/ast"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("InputValueFromGo", func() {
	It("converts scalars", func() {
		Expect(ast.InputValueFromGo(nil)).Should(Equal(ast.NullValue{}))
		Expect(ast.InputValueFromGo(true)).Should(Equal(ast.ScalarValue{Value: graphql.BooleanValue(true)}))
		Expect(ast.InputValueFromGo("hello")).Should(Equal(ast.ScalarValue{Value: graphql.StringValue("hello")}))
		Expect(ast.InputValueFromGo(42)).Should(Equal(ast.ScalarValue{Value: graphql.IntValue(42)}))
		Expect(ast.InputValueFromGo(int64(-7))).Should(Equal(ast.ScalarValue{Value: graphql.IntValue(-7)}))
		Expect(ast.InputValueFromGo(3.5)).Should(Equal(ast.ScalarValue{Value: graphql.FloatValue(3.5)}))
	})

	It("converts lists recursively", func() {
		value, err := ast.InputValueFromGo([]interface{}{1, "two", nil})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal(ast.ListValue{
			Values: []ast.InputValue{
				ast.ScalarValue{Value: graphql.IntValue(1)},
				ast.ScalarValue{Value: graphql.StringValue("two")},
				ast.NullValue{},
			},
		}))
	})

	It("converts maps into objects with sorted fields", func() {
		value, err := ast.InputValueFromGo(map[string]interface{}{
			"b": 2,
			"a": 1,
			"c": []interface{}{true},
		})
		Expect(err).ShouldNot(HaveOccurred())

		expected := ast.InputValue(ast.ObjectValue{
			Fields: []*ast.ObjectField{
				{Name: &ast.Name{Value: "a"}, Value: ast.ScalarValue{Value: graphql.IntValue(1)}},
				{Name: &ast.Name{Value: "b"}, Value: ast.ScalarValue{Value: graphql.IntValue(2)}},
				{Name: &ast.Name{Value: "c"}, Value: ast.ListValue{
					Values: []ast.InputValue{ast.ScalarValue{Value: graphql.BooleanValue(true)}},
				}},
			},
		})
		Expect(cmp.Diff(expected, value)).Should(BeEmpty())
	})

	It("rejects unsupported Go types", func() {
		_, err := ast.InputValueFromGo(struct{}{})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(Equal("cannot represent struct {} as an input value"))
	})

	It("rejects integers outside the 32-bit range", func() {
		_, err := ast.InputValueFromGo(int64(1) << 40)
		Expect(err).Should(HaveOccurred())
	})
})

var _ = Describe("VariablesFromGo", func() {
	It("returns nil for empty input", func() {
		Expect(ast.VariablesFromGo(nil)).Should(BeNil())
		Expect(ast.VariablesFromGo(map[string]interface{}{})).Should(BeNil())
	})

	It("converts each variable", func() {
		vars, err := ast.VariablesFromGo(map[string]interface{}{
			"id":    "1000",
			"first": 10,
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(vars).Should(Equal(ast.Variables{
			"id":    ast.ScalarValue{Value: graphql.StringValue("1000")},
			"first": ast.ScalarValue{Value: graphql.IntValue(10)},
		}))
	})

	It("names the offending variable on failure", func() {
		_, err := ast.VariablesFromGo(map[string]interface{}{"bad": struct{}{}})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(HavePrefix(`variable "$bad": `))
	})
})

var _ = Describe("ResolveVariables", func() {
	vars := ast.Variables{
		"id": ast.ScalarValue{Value: graphql.StringValue("1000")},
	}

	It("substitutes variable references", func() {
		resolved := ast.ResolveVariables(ast.Variable{Name: "id"}, vars)
		Expect(resolved).Should(Equal(ast.ScalarValue{Value: graphql.StringValue("1000")}))
	})

	It("resolves missing variables to null", func() {
		resolved := ast.ResolveVariables(ast.Variable{Name: "unknown"}, vars)
		Expect(resolved).Should(Equal(ast.NullValue{}))
	})

	It("descends into lists and objects without mutating the input", func() {
		original := ast.ObjectValue{
			Fields: []*ast.ObjectField{
				{Name: &ast.Name{Value: "id"}, Value: ast.Variable{Name: "id"}},
				{Name: &ast.Name{Value: "tags"}, Value: ast.ListValue{
					Values: []ast.InputValue{ast.Variable{Name: "id"}, ast.EnumValue{Value: "DROID"}},
				}},
			},
		}

		resolved := ast.ResolveVariables(original, vars)

		expected := ast.InputValue(ast.ObjectValue{
			Fields: []*ast.ObjectField{
				{Name: &ast.Name{Value: "id"}, Value: ast.ScalarValue{Value: graphql.StringValue("1000")}},
				{Name: &ast.Name{Value: "tags"}, Value: ast.ListValue{
					Values: []ast.InputValue{
						ast.ScalarValue{Value: graphql.StringValue("1000")},
						ast.EnumValue{Value: "DROID"},
					},
				}},
			},
		})
		Expect(cmp.Diff(expected, resolved)).Should(BeEmpty())

		// The original tree still references the variable.
		Expect(original.Fields[0].Value).Should(Equal(ast.Variable{Name: "id"}))
		Expect(ast.IsConst(original)).Should(BeFalse())
		Expect(ast.IsConst(resolved)).Should(BeTrue())
	})
})

var _ = Describe("IsConst", func() {
	It("accepts values without variable references", func() {
		Expect(ast.IsConst(ast.NullValue{})).Should(BeTrue())
		Expect(ast.IsConst(ast.ScalarValue{Value: graphql.IntValue(1)})).Should(BeTrue())
		Expect(ast.IsConst(ast.ListValue{
			Values: []ast.InputValue{ast.EnumValue{Value: "SIT"}},
		})).Should(BeTrue())
	})

	It("rejects variables at any depth", func() {
		Expect(ast.IsConst(ast.Variable{Name: "v"})).Should(BeFalse())
		Expect(ast.IsConst(ast.ListValue{
			Values: []ast.InputValue{ast.Variable{Name: "v"}},
		})).Should(BeFalse())
		Expect(ast.IsConst(ast.ObjectValue{
			Fields: []*ast.ObjectField{
				{Name: &ast.Name{Value: "f"}, Value: ast.Variable{Name: "v"}},
			},
		})).Should(BeFalse())
	})
})

var _ = Describe("InputValue rendering", func() {
	It("renders document syntax", func() {
		Expect(ast.NullValue{}.String()).Should(Equal("null"))
		Expect(ast.Variable{Name: "id"}.String()).Should(Equal("$id"))
		Expect(ast.EnumValue{Value: "DROID"}.String()).Should(Equal("DROID"))
		Expect(ast.ScalarValue{Value: graphql.StringValue("a\nb")}.String()).Should(Equal(`"a\nb"`))
		Expect(ast.ListValue{
			Values: []ast.InputValue{
				ast.ScalarValue{Value: graphql.IntValue(1)},
				ast.ScalarValue{Value: graphql.FloatValue(2.5)},
			},
		}.String()).Should(Equal("[1, 2.5]"))
	})
})
