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
	"fmt"
	"reflect"
	"sync"

	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/ast"
	"github.com/quellgo/quell/graphql/schema"
	"github.com/quellgo/quell/graphql/token"
)

// executeSelectionSet fills node's value with an object holding one slot per collected field
// group, in selection order. When serial is false, sibling groups resolve on their own goroutines
// and write results into their pre-reserved slots, so the output order never depends on completion
// order.
func (ec *executionContext) executeSelectionSet(
	node *resultNode,
	objectType *schema.ObjectMeta,
	selectionSet *ast.SelectionSet,
	source interface{},
	path graphql.ResponsePath,
	serial bool) {

	groups := ec.collectFields(objectType, selectionSet, path)

	fields := make([]graphql.ObjectField, len(groups))
	for i, group := range groups {
		fields[i] = graphql.ObjectField{Name: group.responseKey, Value: &graphql.Value{}}
	}
	*node.value = graphql.Value{Kind: graphql.ValueKindObject, Fields: fields}

	if serial {
		for i, group := range groups {
			child := &resultNode{parent: node, value: fields[i].Value}
			ec.resolveField(child, objectType, group, source, path.WithFieldName(group.responseKey))
		}
		return
	}

	var wg sync.WaitGroup
	for i, group := range groups {
		child := &resultNode{parent: node, value: fields[i].Value}
		fieldPath := path.WithFieldName(group.responseKey)

		wg.Add(1)
		go func(child *resultNode, group *fieldGroup, fieldPath graphql.ResponsePath) {
			defer wg.Done()
			if ec.sem != nil {
				ec.sem <- struct{}{}
				defer func() { <-ec.sem }()
			}
			ec.resolveField(child, objectType, group, source, fieldPath)
		}(child, group, fieldPath)
	}
	wg.Wait()
}

// resolveField runs one field group: argument coercion, the resolver, then value completion into
// the group's slot.
func (ec *executionContext) resolveField(
	node *resultNode,
	objectType *schema.ObjectMeta,
	group *fieldGroup,
	source interface{},
	path graphql.ResponsePath) {

	field := group.fields[0]
	fieldDef := ec.schema.FieldOf(objectType, field.Name.Value)
	if fieldDef == nil {
		// Validation guarantees this for user documents; leave the slot null otherwise.
		return
	}
	node.nonNull = fieldDef.Type.IsNonNull()
	fieldRef := objectType.Name + "." + field.Name.Value

	if err := ec.ctx.Err(); err != nil {
		ec.appendError(ec.fieldError(err.Error(), field, path, err))
		node.fail(ec)
		return
	}

	args, argErr := ec.coerceArgumentValues(
		fieldDef.Args, ast.ArgumentList(field.Arguments), field, path)
	if argErr != nil {
		ec.appendError(argErr)
		node.fail(ec)
		return
	}

	var result interface{}
	var err error
	if schema.IsMetaField(fieldDef) {
		switch field.Name.Value {
		case "__typename":
			*node.value = graphql.Value{
				Kind:   graphql.ValueKindScalar,
				Scalar: graphql.StringValue(objectType.Name),
			}
			return
		case "__schema":
			result = ec.schema
		case "__type":
			name, _ := args["name"].(string)
			result = ec.schema.IntrospectType(name)
		}
	} else {
		result, err = ec.callResolver(fieldDef, source, args)
		if err != nil {
			ec.appendError(ec.fieldError(err.Error(), field, path, err))
			node.fail(ec)
			return
		}
	}

	ec.completeValue(node, fieldDef.Type, group, result, path, fieldRef)
}

// callResolver invokes the field's resolver (or the default one) with a panic guard, so a panicking
// resolver surfaces as a field error instead of tearing down the request.
func (ec *executionContext) callResolver(
	fieldDef *schema.FieldMeta,
	source interface{},
	args map[string]interface{}) (result interface{}, err error) {

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("resolver panic: %v", r)
		}
	}()

	params := schema.ResolveParams{Context: ec.ctx, Source: source, Args: args}
	if fieldDef.Resolve != nil {
		return fieldDef.Resolve(params)
	}
	return defaultResolve(fieldDef.Name, source)
}

// completeValue converts a resolver result into the slot's output value per the field's declared
// type. fieldRef is the "Type.field" spelling used in null-constraint error messages.
//
// Reference: https://spec.graphql.org/October2021/#sec-Value-Completion
func (ec *executionContext) completeValue(
	node *resultNode,
	typ ast.Type,
	group *fieldGroup,
	result interface{},
	path graphql.ResponsePath,
	fieldRef string) {

	if isNilResult(result) {
		if typ.IsNonNull() {
			ec.appendError(ec.fieldError(
				fmt.Sprintf("Cannot return null for non-nullable field %s.", fieldRef),
				group.fields[0], path, nil))
			node.fail(ec)
		}
		// The slot is already null.
		return
	}

	if typ.IsNonNull() {
		ec.completeValue(node, ast.NullableOf(typ), group, result, path, fieldRef)
		return
	}

	if listType, isList := typ.(*ast.ListType); isList {
		ec.completeList(node, listType, group, result, path, fieldRef)
		return
	}

	metaType := ec.schema.NamedTypeOf(typ)
	if metaType == nil {
		node.fail(ec)
		return
	}

	switch metaType := metaType.(type) {
	case *schema.ScalarMeta:
		scalar, err := coerceScalarResult(metaType, result)
		if err != nil {
			ec.appendError(ec.fieldError(err.Error(), group.fields[0], path, err))
			node.fail(ec)
			return
		}
		*node.value = graphql.Value{Kind: graphql.ValueKindScalar, Scalar: scalar}

	case *schema.EnumMeta:
		declared := metaType.ValueFor(result)
		if declared == nil {
			err := fmt.Errorf(`Enum "%s" cannot represent value: %v`, metaType.Name, result)
			ec.appendError(ec.fieldError(err.Error(), group.fields[0], path, err))
			node.fail(ec)
			return
		}
		*node.value = graphql.Value{
			Kind:   graphql.ValueKindScalar,
			Scalar: graphql.StringValue(declared.Name),
		}

	case *schema.ObjectMeta:
		ec.executeSelectionSet(node, metaType, mergeSubSelections(group), result, path, ec.serial)

	case *schema.InterfaceMeta, *schema.UnionMeta:
		concrete, err := ec.resolveConcreteType(metaType, result, fieldRef)
		if err != nil {
			ec.appendError(ec.fieldError(err.Error(), group.fields[0], path, err))
			node.fail(ec)
			return
		}
		ec.executeSelectionSet(node, concrete, mergeSubSelections(group), result, path, ec.serial)

	default:
		node.fail(ec)
	}
}

func (ec *executionContext) completeList(
	node *resultNode,
	listType *ast.ListType,
	group *fieldGroup,
	result interface{},
	path graphql.ResponsePath,
	fieldRef string) {

	rv := reflect.ValueOf(result)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		err := fmt.Errorf(
			`Expected a list for field %s, but the resolver returned %T`, fieldRef, result)
		ec.appendError(ec.fieldError(err.Error(), group.fields[0], path, err))
		node.fail(ec)
		return
	}

	length := rv.Len()
	values := make([]*graphql.Value, length)
	for i := range values {
		values[i] = &graphql.Value{}
	}
	*node.value = graphql.Value{Kind: graphql.ValueKindList, Values: values}

	for i := 0; i < length; i++ {
		child := &resultNode{parent: node, nonNull: listType.Inner.IsNonNull(), value: values[i]}
		ec.completeValue(child, listType.Inner, group, rv.Index(i).Interface(),
			path.WithIndex(i), fieldRef)
	}
}

// resolveConcreteType runs an abstract type's TypeResolver and checks the answer against the
// closed possible-type set.
func (ec *executionContext) resolveConcreteType(
	abstract schema.MetaType, result interface{}, fieldRef string) (*schema.ObjectMeta, error) {

	var resolve schema.TypeResolver
	switch abstract := abstract.(type) {
	case *schema.InterfaceMeta:
		resolve = abstract.ResolveType
	case *schema.UnionMeta:
		resolve = abstract.ResolveType
	}
	abstractName := schema.TypeNameOf(abstract)
	if resolve == nil {
		return nil, fmt.Errorf(
			`Abstract type "%s" must provide a TypeResolver to resolve field %s`,
			abstractName, fieldRef)
	}

	name := resolve(result)
	for _, possible := range ec.schema.PossibleTypes(abstract) {
		if possible == name {
			// Membership in the possible set implies the name is a registered object.
			return ec.schema.TypeByName(name).(*schema.ObjectMeta), nil
		}
	}
	return nil, fmt.Errorf(
		`Runtime Object type "%s" is not a possible type for "%s"`, name, abstractName)
}

// mergeSubSelections concatenates the sub-selections of every field node in a group, so fragments
// selecting the same response key execute as one combined selection set.
func mergeSubSelections(group *fieldGroup) *ast.SelectionSet {
	if len(group.fields) == 1 {
		return group.fields[0].SelectionSet
	}

	merged := &ast.SelectionSet{}
	for _, field := range group.fields {
		if field.SelectionSet == nil {
			continue
		}
		if len(merged.Selections) == 0 {
			merged.Span = field.SelectionSet.Span
		}
		merged.Selections = append(merged.Selections, field.SelectionSet.Selections...)
	}
	if len(merged.Selections) == 0 {
		return nil
	}
	return merged
}

func coerceScalarResult(metaType *schema.ScalarMeta, result interface{}) (graphql.ScalarValue, error) {
	if metaType.CoerceResult != nil {
		return metaType.CoerceResult(result)
	}
	if scalar, ok := graphql.ScalarFromGo(result); ok {
		return scalar, nil
	}
	return nil, fmt.Errorf(`Scalar "%s" cannot represent value: %v`, metaType.Name, result)
}

// isNilResult treats both a nil interface and a typed nil (pointer, map, slice, ...) as null.
func isNilResult(result interface{}) bool {
	if result == nil {
		return true
	}
	rv := reflect.ValueOf(result)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func (ec *executionContext) fieldError(
	message string,
	node token.Spanned,
	path graphql.ResponsePath,
	err error) *graphql.Error {

	return graphql.NewExecutionError(
		message, graphql.LocationOf(node.SourceSpan().Start), path, err)
}
