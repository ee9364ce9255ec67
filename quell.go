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

// Package quell ties the engine's phases together: Do runs a request from source text through
// parse, validate and execute, and Subscribe does the same for subscription operations. The
// individual phases live in graphql/parser, graphql/validator and graphql/executor for callers
// that need them separately.
package quell

import (
	"context"
	"errors"

	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/ast"
	"github.com/quellgo/quell/graphql/executor"
	"github.com/quellgo/quell/graphql/parser"
	"github.com/quellgo/quell/graphql/schema"
	"github.com/quellgo/quell/graphql/validator"

	// Register the standard validation rules.
	_ "github.com/quellgo/quell/graphql/validator/rules"
)

// Request is one GraphQL request as carried by any transport.
type Request struct {
	// Query is the GraphQL source text.
	Query string

	// OperationName selects the operation to run when the document defines more than one.
	OperationName string

	// Variables are the request variables as decoded from the transport envelope.
	Variables map[string]interface{}

	// RootValue is the Source value handed to the root type's resolvers.
	RootValue interface{}
}

// Do runs a request end to end. The response carries no data key when the request fails before
// execution starts (syntax errors, validation failures, unusable variables); execution-phase field
// errors appear alongside the data they nulled out.
func Do(ctx context.Context, s *schema.Schema, request Request, opts ...executor.Option) *graphql.Response {
	document, params, errs := prepare(s, request)
	if errs.HaveOccurred() {
		return &graphql.Response{Errors: errs}
	}
	return executor.Execute(ctx, s, document, params, opts...)
}

// DoSerial is Do with the serial executor: every field resolves depth-first in selection order.
func DoSerial(ctx context.Context, s *schema.Schema, request Request, opts ...executor.Option) *graphql.Response {
	document, params, errs := prepare(s, request)
	if errs.HaveOccurred() {
		return &graphql.Response{Errors: errs}
	}
	return executor.ExecuteSerial(ctx, s, document, params, opts...)
}

// Subscribe runs a subscription request end to end, returning the response stream. The stream
// closes when the source event channel closes or ctx is done.
func Subscribe(
	ctx context.Context,
	s *schema.Schema,
	request Request,
	opts ...executor.Option) (<-chan *graphql.Response, graphql.Errors) {

	document, params, errs := prepare(s, request)
	if errs.HaveOccurred() {
		return nil, errs
	}
	return executor.Subscribe(ctx, s, document, params, opts...)
}

// prepare runs the pre-execution phases shared by Do and Subscribe: parse, validate, and variable
// conversion.
func prepare(s *schema.Schema, request Request) (*ast.Document, executor.Params, graphql.Errors) {
	var params executor.Params

	document, err := parser.Parse(request.Query)
	if err != nil {
		var gqlErr *graphql.Error
		if !errors.As(err, &gqlErr) {
			gqlErr = graphql.NewError(err.Error())
		}
		return nil, params, graphql.ErrorsOf(gqlErr)
	}

	if errs := validator.Validate(s, document); errs.HaveOccurred() {
		return nil, params, errs
	}

	vars, err := ast.VariablesFromGo(request.Variables)
	if err != nil {
		return nil, params, graphql.ErrorsOf(graphql.NewCoercionError(err.Error()))
	}

	params = executor.Params{
		OperationName: request.OperationName,
		RootValue:     request.RootValue,
		Variables:     vars,
	}
	return document, params, graphql.NoErrors()
}
