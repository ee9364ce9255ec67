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

// Package executor evaluates a validated document against a schema, producing the ordered result
// tree and the field errors defined by the spec's "Execution" section. Execute resolves
// independent sibling fields concurrently; ExecuteSerial resolves depth-first, one field at a
// time; Subscribe turns a subscription operation into a response stream.
package executor

import (
	"context"

	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/ast"
	"github.com/quellgo/quell/graphql/schema"
)

// Params carries the per-request inputs shared by Execute, ExecuteSerial and Subscribe.
type Params struct {
	// OperationName selects the operation to run. It may be empty when the document defines exactly
	// one operation.
	OperationName string

	// RootValue is the Source value handed to the root type's resolvers.
	RootValue interface{}

	// Variables are the request variables, usually built with ast.VariablesFromGo from a decoded
	// transport envelope.
	Variables ast.Variables
}

// Option configures an execution.
type Option func(*options)

type options struct {
	maxConcurrency int
}

// WithMaxConcurrency bounds the number of resolvers running at the same time across the whole
// request. n <= 0 means unbounded, the default.
func WithMaxConcurrency(n int) Option {
	return func(o *options) {
		o.maxConcurrency = n
	}
}

// Execute runs a query or mutation operation from the given document. Sibling fields of a query
// resolve concurrently; mutation root fields always resolve in selection order as the spec
// requires. The returned response carries the data tree (with fields in selection order) and any
// field errors.
//
// The document must have been validated; execution of an invalid document has unspecified results.
func Execute(
	ctx context.Context,
	s *schema.Schema,
	document *ast.Document,
	params Params,
	opts ...Option) *graphql.Response {

	return execute(ctx, s, document, params, false, opts...)
}

// ExecuteSerial is Execute with concurrency disabled: every field, at every depth, resolves
// depth-first in selection order.
func ExecuteSerial(
	ctx context.Context,
	s *schema.Schema,
	document *ast.Document,
	params Params,
	opts ...Option) *graphql.Response {

	return execute(ctx, s, document, params, true, opts...)
}

func execute(
	ctx context.Context,
	s *schema.Schema,
	document *ast.Document,
	params Params,
	serial bool,
	opts ...Option) *graphql.Response {

	operation, opErr := selectOperation(document, params.OperationName)
	if opErr != nil {
		return &graphql.Response{Errors: graphql.ErrorsOf(opErr)}
	}

	rootType := s.RootType(operation.Kind)
	if rootType == nil {
		return &graphql.Response{Errors: graphql.ErrorsOf(graphql.NewError(
			"Schema is not configured for " + operation.Kind.String() + "s.",
			graphql.LocationsOf(operation)...,
		))}
	}

	vars, varErrs := coerceVariableValues(s, operation, params.Variables)
	if varErrs.HaveOccurred() {
		// A request with unusable variables never starts executing; like a validation failure, the
		// response carries no data key.
		return &graphql.Response{Errors: varErrs}
	}

	ec := newExecutionContext(ctx, s, document, vars, serial, opts...)

	// Mutations execute their root fields serially even in the concurrent executor.
	rootSerial := serial || operation.Kind == ast.OperationMutation

	data := &graphql.Value{}
	root := &resultNode{value: data}
	ec.executeSelectionSet(root, rootType, operation.SelectionSet, params.RootValue,
		graphql.ResponsePath{}, rootSerial)

	return &graphql.Response{Data: data, Errors: ec.errs}
}

// selectOperation picks the operation to run, by name or as the document's sole operation.
func selectOperation(document *ast.Document, name string) (*ast.OperationDefinition, *graphql.Error) {
	operations := document.Operations()

	if name == "" {
		switch len(operations) {
		case 0:
			return nil, graphql.NewError("Must provide an operation.")
		case 1:
			return operations[0], nil
		}
		return nil, graphql.NewError(
			"Must provide operation name if query contains multiple operations.")
	}

	for _, operation := range operations {
		if operation.NameValue() == name {
			return operation, nil
		}
	}
	return nil, graphql.NewError(`Unknown operation named "` + name + `".`)
}
