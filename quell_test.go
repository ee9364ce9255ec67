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

package quell_test

import (
	"context"

	"github.com/quellgo/quell"
	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/schema"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// newHelloSchema is the end-to-end fixture: a query root with a constant field and an echoing
// field, plus a subscription root fed from the request's root value.
func newHelloSchema() *schema.Schema {
	query := &schema.Object{
		Name: "Query",
		Fields: []schema.Field{
			{
				Name: "hello",
				Type: schema.TypeOf(schema.String),
				Resolve: func(schema.ResolveParams) (interface{}, error) {
					return "world", nil
				},
			},
			{
				Name: "echo",
				Type: schema.TypeOf(schema.String),
				Args: []schema.Argument{
					{Name: "message", Type: schema.TypeOf(schema.String)},
				},
				Resolve: func(params schema.ResolveParams) (interface{}, error) {
					return params.Args["message"], nil
				},
			},
		},
	}

	subscription := &schema.Object{
		Name: "Subscription",
		Fields: []schema.Field{
			{
				Name: "messageAdded",
				Type: schema.TypeOf(schema.String),
				Resolve: func(params schema.ResolveParams) (interface{}, error) {
					return params.Source.(map[string]interface{})["messages"], nil
				},
			},
		},
	}

	s, err := schema.New(schema.Config{
		Query:        query,
		Subscription: subscription,
	})
	Expect(err).ShouldNot(HaveOccurred())
	return s
}

var _ = Describe("Do", func() {
	var s *schema.Schema

	BeforeEach(func() {
		s = newHelloSchema()
	})

	encode := func(response *graphql.Response) string {
		bytes, err := response.MarshalJSON()
		Expect(err).ShouldNot(HaveOccurred())
		return string(bytes)
	}

	It("runs a request end to end", func() {
		response := quell.Do(context.Background(), s, quell.Request{
			Query: `{ hello }`,
		})
		Expect(encode(response)).Should(Equal(`{"data":{"hello":"world"}}`))
	})

	It("passes request variables to resolvers", func() {
		response := quell.Do(context.Background(), s, quell.Request{
			Query:     `query Echo($message: String) { echo(message: $message) }`,
			Variables: map[string]interface{}{"message": "hi"},
		})
		Expect(encode(response)).Should(Equal(`{"data":{"echo":"hi"}}`))
	})

	It("returns a syntax error without a data key", func() {
		response := quell.Do(context.Background(), s, quell.Request{
			Query: `{`,
		})
		Expect(response.Data).Should(BeNil())
		Expect(response.Errors).Should(HaveLen(1))
		Expect(response.Errors[0].Kind).Should(Equal(graphql.ErrKindSyntax))
		Expect(response.Errors[0].Message).Should(Equal("Syntax Error: Expected Name, found <EOF>."))
		Expect(encode(response)).Should(Equal(
			`{"errors":[{"message":"Syntax Error: Expected Name, found <EOF>.",` +
				`"locations":[{"line":1,"column":2}]}]}`,
		))
	})

	It("returns validation errors without a data key", func() {
		response := quell.Do(context.Background(), s, quell.Request{
			Query: `{ unknownField }`,
		})
		Expect(response.Data).Should(BeNil())
		Expect(response.Errors).Should(Equal(graphql.ErrorsOf(graphql.NewValidationError(
			`Cannot query field "unknownField" on type "Query".`,
			[]graphql.ErrorLocation{{Line: 1, Column: 3}},
		))))
	})

	It("rejects variables that have no GraphQL representation", func() {
		response := quell.Do(context.Background(), s, quell.Request{
			Query:     `query Echo($message: String) { echo(message: $message) }`,
			Variables: map[string]interface{}{"message": struct{}{}},
		})
		Expect(response.Data).Should(BeNil())
		Expect(response.Errors).Should(HaveLen(1))
		Expect(response.Errors[0].Kind).Should(Equal(graphql.ErrKindCoercion))
		Expect(response.Errors[0].Message).Should(HavePrefix(`variable "$message": `))
	})

	It("reports an unknown operation name", func() {
		response := quell.Do(context.Background(), s, quell.Request{
			Query:         `query A { hello }`,
			OperationName: "Missing",
		})
		Expect(response.Data).Should(BeNil())
		Expect(response.Errors).Should(HaveLen(1))
		Expect(response.Errors[0].Message).Should(Equal(`Unknown operation named "Missing".`))
	})

	It("runs serially through DoSerial", func() {
		response := quell.DoSerial(context.Background(), s, quell.Request{
			Query: `{ hello echo(message: "again") }`,
		})
		Expect(encode(response)).Should(Equal(`{"data":{"hello":"world","echo":"again"}}`))
	})
})

var _ = Describe("Subscribe", func() {
	var s *schema.Schema

	BeforeEach(func() {
		s = newHelloSchema()
	})

	It("streams one response per source event", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		events := make(chan interface{}, 2)
		events <- "hello"
		events <- "world"
		close(events)

		responses, errs := quell.Subscribe(ctx, s, quell.Request{
			Query:     `subscription { messageAdded }`,
			RootValue: map[string]interface{}{"messages": events},
		})
		Expect(errs).Should(Equal(graphql.NoErrors()))

		var first, second *graphql.Response
		Eventually(responses).Should(Receive(&first))
		Eventually(responses).Should(Receive(&second))
		Eventually(responses).Should(BeClosed())

		Expect(first.Data.FieldValue("messageAdded").GoValue()).Should(Equal("hello"))
		Expect(second.Data.FieldValue("messageAdded").GoValue()).Should(Equal("world"))
	})

	It("rejects non-subscription operations", func() {
		responses, errs := quell.Subscribe(context.Background(), s, quell.Request{
			Query: `{ hello }`,
		})
		Expect(responses).Should(BeNil())
		Expect(errs).Should(HaveLen(1))
		Expect(errs[0].Message).Should(Equal("Subscribe requires a subscription operation."))
	})
})
