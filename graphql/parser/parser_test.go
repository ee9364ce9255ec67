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

package parser_test

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/ast"
	"github.com/quellgo/quell/graphql/parser"
	"github.com/quellgo/quell/graphql/token"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// ignoreSpans compares syntax trees structurally; span equality is only asserted where a test pins
// positions explicitly.
var ignoreSpans = cmpopts.IgnoreTypes(token.Span{})

func parse(source string) *ast.Document {
	document, err := parser.Parse(source)
	Expect(err).ShouldNot(HaveOccurred())
	return document
}

func expectSyntaxError(source string, description string, location graphql.ErrorLocation) *parser.Error {
	_, err := parser.Parse(source)
	Expect(err).Should(HaveOccurred())

	e, ok := err.(*graphql.Error)
	Expect(ok).Should(BeTrue())
	Expect(e.Kind).Should(Equal(graphql.ErrKindSyntax))
	Expect(e.Message).Should(Equal("Syntax Error: " + description))
	Expect(e.Locations).Should(Equal([]graphql.ErrorLocation{location}))

	parseErr, ok := e.Err.(*parser.Error)
	Expect(ok).Should(BeTrue())
	return parseErr
}

func pos(index int, line int, col int) token.SourcePosition {
	return token.SourcePosition{Index: index, Line: line, Col: col}
}

func span(start token.SourcePosition, end token.SourcePosition) token.Span {
	return token.Span{Start: start, End: end}
}

var _ = Describe("Parser", func() {
	It("parses a simple query", func() {
		document := parse(`{ node(id: 4) { id, name } }`)

		expected := &ast.Document{
			Definitions: []ast.Definition{
				&ast.OperationDefinition{
					Kind:      ast.OperationQuery,
					Shorthand: true,
					SelectionSet: &ast.SelectionSet{
						Selections: []ast.Selection{
							&ast.Field{
								Name: &ast.Name{Value: "node"},
								Arguments: []*ast.Argument{
									{
										Name:  &ast.Name{Value: "id"},
										Value: ast.ScalarValue{Value: graphql.IntValue(4)},
									},
								},
								SelectionSet: &ast.SelectionSet{
									Selections: []ast.Selection{
										&ast.Field{Name: &ast.Name{Value: "id"}},
										&ast.Field{Name: &ast.Name{Value: "name"}},
									},
								},
							},
						},
					},
				},
			},
		}
		Expect(cmp.Diff(expected, document, ignoreSpans)).Should(BeEmpty())
	})

	It("parses aliases, fragments and directives", func() {
		document := parse(`
query Hero {
  hero: character @include(if: true) {
    ...nameParts
    ... on Droid {
      primaryFunction
    }
  }
}

fragment nameParts on Character {
  name
}
`)

		expected := &ast.Document{
			Definitions: []ast.Definition{
				&ast.OperationDefinition{
					Kind: ast.OperationQuery,
					Name: &ast.Name{Value: "Hero"},
					SelectionSet: &ast.SelectionSet{
						Selections: []ast.Selection{
							&ast.Field{
								Alias: &ast.Name{Value: "hero"},
								Name:  &ast.Name{Value: "character"},
								Directives: []*ast.Directive{
									{
										Name: &ast.Name{Value: "include"},
										Arguments: []*ast.Argument{
											{
												Name:  &ast.Name{Value: "if"},
												Value: ast.ScalarValue{Value: graphql.BooleanValue(true)},
											},
										},
									},
								},
								SelectionSet: &ast.SelectionSet{
									Selections: []ast.Selection{
										&ast.FragmentSpread{Name: &ast.Name{Value: "nameParts"}},
										&ast.InlineFragment{
											TypeCondition: &ast.NamedType{Name: "Droid"},
											SelectionSet: &ast.SelectionSet{
												Selections: []ast.Selection{
													&ast.Field{Name: &ast.Name{Value: "primaryFunction"}},
												},
											},
										},
									},
								},
							},
						},
					},
				},
				&ast.FragmentDefinition{
					Name:          &ast.Name{Value: "nameParts"},
					TypeCondition: &ast.NamedType{Name: "Character"},
					SelectionSet: &ast.SelectionSet{
						Selections: []ast.Selection{
							&ast.Field{Name: &ast.Name{Value: "name"}},
						},
					},
				},
			},
		}
		Expect(cmp.Diff(expected, document, ignoreSpans)).Should(BeEmpty())
	})

	It("records source spans", func() {
		document := parse(`query Foo($id: ID = 4) { node(id: $id) }`)

		Expect(document.Span).Should(Equal(span(pos(0, 1, 1), pos(40, 1, 41))))

		operation := document.Definitions[0].(*ast.OperationDefinition)
		Expect(operation.Span).Should(Equal(span(pos(0, 1, 1), pos(40, 1, 41))))
		Expect(operation.Name.Span).Should(Equal(span(pos(6, 1, 7), pos(9, 1, 10))))

		definition := operation.VariableDefinitions[0]
		Expect(definition.Span).Should(Equal(span(pos(10, 1, 11), pos(21, 1, 22))))
		Expect(definition.Variable.Span).Should(Equal(span(pos(11, 1, 12), pos(13, 1, 14))))
		Expect(definition.Type.SourceSpan()).Should(Equal(span(pos(15, 1, 16), pos(17, 1, 18))))

		field := operation.SelectionSet.Selections[0].(*ast.Field)
		argument := field.Arguments[0]
		Expect(argument.Span).Should(Equal(span(pos(30, 1, 31), pos(37, 1, 38))))

		variable := argument.Value.(ast.Variable)
		Expect(variable.SourceSpan()).Should(Equal(span(pos(34, 1, 35), pos(37, 1, 38))))
	})

	It("distinguishes operation kinds", func() {
		document := parse(`
query Q { a }
mutation M { a }
subscription S { a }
`)
		operations := document.Operations()
		Expect(operations).Should(HaveLen(3))
		Expect(operations[0].Kind).Should(Equal(ast.OperationQuery))
		Expect(operations[1].Kind).Should(Equal(ast.OperationMutation))
		Expect(operations[2].Kind).Should(Equal(ast.OperationSubscription))
		Expect(operations[0].Shorthand).Should(BeFalse())
	})

	Describe("Syntax errors", func() {
		It("reports an unterminated selection set", func() {
			parseErr := expectSyntaxError("{",
				"Expected Name, found <EOF>.", graphql.ErrorLocation{Line: 1, Column: 2})
			Expect(parseErr.Kind).Should(Equal(parser.UnexpectedEndOfFile))
		})

		It("reports an empty selection set", func() {
			expectSyntaxError("{ }",
				"Unexpected }.", graphql.ErrorLocation{Line: 1, Column: 3})
		})

		It("reports a missing field name after an alias", func() {
			expectSyntaxError("{ field: {} }",
				"Expected Name, found {.", graphql.ErrorLocation{Line: 1, Column: 10})
		})

		It("reports an unknown definition keyword", func() {
			parseErr := expectSyntaxError("notAnOperation Foo { field }",
				`Unexpected Name "notAnOperation".`, graphql.ErrorLocation{Line: 1, Column: 1})
			Expect(parseErr.Kind).Should(Equal(parser.UnexpectedToken))
		})

		It("reports a stray spread", func() {
			expectSyntaxError("...",
				"Unexpected ....", graphql.ErrorLocation{Line: 1, Column: 1})
		})

		It("reports a missing selection set after the operation keyword", func() {
			expectSyntaxError("query",
				"Expected {, found <EOF>.", graphql.ErrorLocation{Line: 1, Column: 6})
		})

		It(`rejects a fragment named "on"`, func() {
			expectSyntaxError("fragment on on on { on }",
				`Unexpected Name "on".`, graphql.ErrorLocation{Line: 1, Column: 10})
		})

		It("rejects a variable reference inside a default value", func() {
			expectSyntaxError("query Foo($x: Boolean = $var) { field }",
				"Unexpected $.", graphql.ErrorLocation{Line: 1, Column: 25})
		})

		It("rejects descriptions on executable definitions", func() {
			expectSyntaxError(`"description" { field }`,
				"Unexpected description; descriptions are not supported on query shorthand.",
				graphql.ErrorLocation{Line: 1, Column: 1})
		})

		It("rejects integers outside the 32-bit range", func() {
			parseErr := expectSyntaxError("{ field(arg: 3000000000) }",
				"Int cannot represent non 32-bit signed integer value: 3000000000.",
				graphql.ErrorLocation{Line: 1, Column: 14})
			Expect(parseErr.Kind).Should(Equal(parser.ExpectedScalar))
		})
	})

	Describe("ParseValue", func() {
		It("parses list literals", func() {
			value, err := parser.ParseValue(`[123 "abc"]`)
			Expect(err).ShouldNot(HaveOccurred())

			expected := ast.ListValue{
				Values: []ast.InputValue{
					ast.ScalarValue{Value: graphql.IntValue(123)},
					ast.ScalarValue{Value: graphql.StringValue("abc")},
				},
			}
			Expect(cmp.Diff(ast.InputValue(expected), value, ignoreSpans)).Should(BeEmpty())
		})

		It("parses object literals with ordered fields", func() {
			value, err := parser.ParseValue(`{enabled: false, tags: [PUBLIC, null]}`)
			Expect(err).ShouldNot(HaveOccurred())

			object, ok := value.(ast.ObjectValue)
			Expect(ok).Should(BeTrue())
			Expect(object.Fields).Should(HaveLen(2))
			Expect(object.Fields[0].Name.Value).Should(Equal("enabled"))
			Expect(object.Fields[1].Name.Value).Should(Equal("tags"))
			Expect(object.String()).Should(Equal("{enabled: false, tags: [PUBLIC, null]}"))
		})

		It("rejects variables", func() {
			_, err := parser.ParseValue(`$var`)
			Expect(err).Should(HaveOccurred())
			Expect(err.(*graphql.Error).Message).Should(Equal("Syntax Error: Unexpected $."))
		})
	})

	Describe("ParseType", func() {
		It("parses named and wrapped types", func() {
			for _, source := range []string{"Episode", "Episode!", "[Episode]", "[Episode!]!", "[[Episode]!]"} {
				t, err := parser.ParseType(source)
				Expect(err).ShouldNot(HaveOccurred())
				Expect(t.String()).Should(Equal(source))
			}

			t, err := parser.ParseType("[Episode!]!")
			Expect(err).ShouldNot(HaveOccurred())
			listType, ok := t.(*ast.ListType)
			Expect(ok).Should(BeTrue())
			Expect(listType.NonNull).Should(BeTrue())
			inner, ok := listType.Inner.(*ast.NamedType)
			Expect(ok).Should(BeTrue())
			Expect(inner.Name).Should(Equal("Episode"))
			Expect(inner.NonNull).Should(BeTrue())
		})

		It("reports an unterminated list type", func() {
			_, err := parser.ParseType("[Episode")
			Expect(err).Should(HaveOccurred())
			Expect(err.(*graphql.Error).Message).Should(Equal("Syntax Error: Expected ], found <EOF>."))
		})
	})

	Describe("Printing", func() {
		It("prints with two-space indentation", func() {
			document := parse(`{ node(id: 4) { id name } }`)
			Expect(ast.Print(document)).Should(Equal("{\n  node(id: 4) {\n    id\n    name\n  }\n}\n"))
		})

		It("round-trips through the printer", func() {
			document := parse(`
query Search($text: String!, $first: Int = 10) @onQuery {
  results: search(text: $text, first: $first) {
    __typename
    ... on Human {
      name
      friends @include(if: true) {
        name
      }
    }
    ...droidFields @onSpread
    ... @skip(if: false) {
      id
    }
  }
}

mutation Rename {
  rename(input: {id: "1000", name: "Artoo", tags: [DROID, null]}) {
    name
  }
}

fragment droidFields on Droid {
  primaryFunction
}
`)
			reparsed := parse(ast.Print(document))
			Expect(ast.EqualIgnoringSpans(document, reparsed)).Should(BeTrue())
		})
	})
})
