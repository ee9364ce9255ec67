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

package executor

import (
	"context"
	"errors"
	"reflect"

	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/ast"
	"github.com/quellgo/quell/graphql/schema"
)

// SourceStream is the channel of source events a subscription field resolver returns. Resolvers
// may also return any other channel type; events are received through reflection in that case.
type SourceStream <-chan interface{}

// Subscribe sets up a subscription operation: it resolves the root field once to obtain the source
// stream, then executes the field's selection for every event. The returned stream closes when the
// source closes or ctx is done.
//
// Setup failures (unknown operation, variable coercion, a failing root resolver) are returned
// immediately with a nil stream.
//
// Reference: https://spec.graphql.org/October2021/#sec-Subscription
func Subscribe(
	ctx context.Context,
	s *schema.Schema,
	document *ast.Document,
	params Params,
	opts ...Option) (<-chan *graphql.Response, graphql.Errors) {

	operation, opErr := selectOperation(document, params.OperationName)
	if opErr != nil {
		return nil, graphql.ErrorsOf(opErr)
	}
	if operation.Kind != ast.OperationSubscription {
		return nil, graphql.ErrorsOf(graphql.NewError(
			"Subscribe requires a subscription operation.",
			graphql.LocationsOf(operation)...,
		))
	}
	rootType := s.Subscription()
	if rootType == nil {
		return nil, graphql.ErrorsOf(graphql.NewError(
			"Schema is not configured for subscriptions.",
			graphql.LocationsOf(operation)...,
		))
	}

	vars, varErrs := coerceVariableValues(s, operation, params.Variables)
	if varErrs.HaveOccurred() {
		return nil, varErrs
	}

	ec := newExecutionContext(ctx, s, document, vars, false, opts...)

	groups := ec.collectFields(rootType, operation.SelectionSet, graphql.ResponsePath{})
	if len(groups) != 1 {
		// SingleFieldSubscriptions guarantees this for validated documents.
		return nil, graphql.ErrorsOf(graphql.NewError(
			"Subscription must select exactly one top level field.",
			graphql.LocationsOf(operation)...,
		))
	}
	group := groups[0]
	field := group.fields[0]
	path := graphql.ResponsePath{}.WithFieldName(group.responseKey)

	fieldDef := ec.schema.FieldOf(rootType, field.Name.Value)
	if fieldDef == nil {
		return nil, graphql.ErrorsOf(ec.fieldError(
			`Subscription field "`+field.Name.Value+`" is not defined.`, field, path, nil))
	}

	args, argErr := ec.coerceArgumentValues(
		fieldDef.Args, ast.ArgumentList(field.Arguments), field, path)
	if argErr != nil {
		return nil, graphql.ErrorsOf(argErr)
	}

	result, err := ec.callResolver(fieldDef, params.RootValue, args)
	if err != nil {
		return nil, graphql.ErrorsOf(ec.fieldError(err.Error(), field, path, err))
	}
	source, err := sourceStreamOf(result)
	if err != nil {
		return nil, graphql.ErrorsOf(ec.fieldError(err.Error(), field, path, err))
	}

	responses := make(chan *graphql.Response)
	go func() {
		defer close(responses)
		for {
			event, ok := source.recv(ctx)
			if !ok {
				return
			}

			response := executeTick(ctx, s, document, vars, fieldDef, group, event, opts...)
			select {
			case responses <- response:
			case <-ctx.Done():
				return
			}
		}
	}()
	return responses, graphql.NoErrors()
}

// executeTick runs one source event through the subscription field's selection. Each tick carries
// its own error list; a failing tick yields an error response without ending the stream.
func executeTick(
	ctx context.Context,
	s *schema.Schema,
	document *ast.Document,
	vars ast.Variables,
	fieldDef *schema.FieldMeta,
	group *fieldGroup,
	event interface{},
	opts ...Option) *graphql.Response {

	ec := newExecutionContext(ctx, s, document, vars, false, opts...)

	slot := &graphql.Value{}
	data := &graphql.Value{
		Kind:   graphql.ValueKindObject,
		Fields: []graphql.ObjectField{{Name: group.responseKey, Value: slot}},
	}
	root := &resultNode{value: data}
	child := &resultNode{parent: root, nonNull: fieldDef.Type.IsNonNull(), value: slot}

	path := graphql.ResponsePath{}.WithFieldName(group.responseKey)
	fieldRef := s.Subscription().Name + "." + group.fields[0].Name.Value
	ec.completeValue(child, fieldDef.Type, group, event, path, fieldRef)

	return &graphql.Response{Data: data, Errors: ec.errs}
}

// eventSource receives source events from a resolver-returned channel, either directly or through
// reflection for typed channels.
type eventSource struct {
	stream <-chan interface{}
	value  reflect.Value
}

func sourceStreamOf(result interface{}) (*eventSource, error) {
	switch result := result.(type) {
	case SourceStream:
		return &eventSource{stream: result}, nil
	case <-chan interface{}:
		return &eventSource{stream: result}, nil
	case chan interface{}:
		return &eventSource{stream: result}, nil
	}

	rv := reflect.ValueOf(result)
	if rv.Kind() == reflect.Chan && rv.Type().ChanDir()&reflect.RecvDir != 0 {
		return &eventSource{value: rv}, nil
	}
	return nil, errors.New("Subscription field resolver must return a source event channel.")
}

// recv waits for the next event, also honoring context cancellation. ok is false when the source
// closed or the context is done.
func (s *eventSource) recv(ctx context.Context) (event interface{}, ok bool) {
	if s.stream != nil {
		select {
		case event, ok = <-s.stream:
			return event, ok
		case <-ctx.Done():
			return nil, false
		}
	}

	chosen, value, ok := reflect.Select([]reflect.SelectCase{
		{Dir: reflect.SelectRecv, Chan: s.value},
		{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(ctx.Done())},
	})
	if chosen != 0 || !ok {
		return nil, false
	}
	return value.Interface(), true
}
