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

	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/ast"
	"github.com/quellgo/quell/graphql/schema"
)

// coerceArgumentValues produces the Go argument map handed to a resolver: declared arguments
// matched by name, defaults applied, variables substituted. A failure is scoped to the field; the
// caller nulls the field without touching its siblings.
//
// Reference: https://spec.graphql.org/October2021/#sec-Coercing-Argument-Values
func (ec *executionContext) coerceArgumentValues(
	argDefs []*schema.ArgumentMeta,
	arguments ast.ArgumentList,
	node ast.Node,
	path graphql.ResponsePath) (map[string]interface{}, *graphql.Error) {

	if len(argDefs) == 0 {
		return nil, nil
	}

	coerced := make(map[string]interface{}, len(argDefs))
	for _, argDef := range argDefs {
		argument := arguments.Lookup(argDef.Name)

		var value ast.InputValue
		if argument != nil {
			if variable, isVariable := argument.Value.(ast.Variable); isVariable {
				// A variable the request left unset (as opposed to explicitly null) falls back to the
				// argument's declared default.
				resolved, provided := ec.vars[variable.Name]
				switch {
				case provided:
					value = resolved
				case argDef.HasDefault():
					value = argDef.DefaultValue
				default:
					value = ast.NullValue{Span: variable.Span}
				}
			} else {
				value = ast.ResolveVariables(argument.Value, ec.vars)
			}
		} else if argDef.HasDefault() {
			value = argDef.DefaultValue
		} else if argDef.Type.IsNonNull() {
			return nil, ec.fieldError(
				fmt.Sprintf(
					`Argument "%s" of required type "%s" was not provided.`,
					argDef.Name, argDef.Type),
				node, path, nil)
		} else {
			continue
		}

		goValue, err := coerceInput(ec.schema, argDef.Type, value)
		if err != nil {
			location := node
			if argument != nil {
				location = argument.Value
			}
			return nil, ec.fieldError(
				fmt.Sprintf(`Argument "%s" has invalid value %s. %s`,
					argDef.Name, value, err),
				location, path, err)
		}
		coerced[argDef.Name] = goValue
	}
	return coerced, nil
}

// coerceInput converts a const input value into the Go value resolvers receive for the given type:
// scalars through their CoerceInput, enums to their internal value, lists to []interface{} and
// input objects to map[string]interface{} with field defaults applied.
func coerceInput(s *schema.Schema, expected ast.Type, value ast.InputValue) (interface{}, error) {
	if expected.IsNonNull() {
		if _, isNull := value.(ast.NullValue); isNull {
			return nil, fmt.Errorf(`Expected "%s", found null`, expected)
		}
		return coerceInput(s, ast.NullableOf(expected), value)
	}

	if _, isNull := value.(ast.NullValue); isNull {
		return nil, nil
	}

	if listType, isList := expected.(*ast.ListType); isList {
		list, ok := value.(ast.ListValue)
		if !ok {
			element, err := coerceInput(s, listType.Inner, value)
			if err != nil {
				return nil, err
			}
			return []interface{}{element}, nil
		}
		elements := make([]interface{}, len(list.Values))
		for i, item := range list.Values {
			element, err := coerceInput(s, listType.Inner, item)
			if err != nil {
				return nil, err
			}
			elements[i] = element
		}
		return elements, nil
	}

	metaType := s.NamedTypeOf(expected)
	if metaType == nil {
		return nil, fmt.Errorf(`Unknown type "%s"`, expected)
	}

	switch metaType := metaType.(type) {
	case *schema.ScalarMeta:
		if metaType.CoerceInput == nil {
			return nil, fmt.Errorf(`Scalar "%s" does not accept input values`, metaType.Name)
		}
		return metaType.CoerceInput(value)

	case *schema.EnumMeta:
		name, ok := enumNameOf(value)
		if !ok {
			return nil, fmt.Errorf(`Enum "%s" cannot represent value: %s`, metaType.Name, value)
		}
		declared := metaType.Value(name)
		if declared == nil {
			return nil, fmt.Errorf(`Value "%s" does not exist in "%s" enum`, name, metaType.Name)
		}
		if declared.Value != nil {
			return declared.Value, nil
		}
		return declared.Name, nil

	case *schema.InputObjectMeta:
		return coerceInputObject(s, metaType, value)
	}
	return nil, fmt.Errorf(`Type "%s" is not an input type`, expected)
}

func coerceInputObject(
	s *schema.Schema, metaType *schema.InputObjectMeta, value ast.InputValue) (interface{}, error) {

	object, ok := value.(ast.ObjectValue)
	if !ok {
		return nil, fmt.Errorf(`Expected type "%s" to be an object`, metaType.Name)
	}

	fields := make(map[string]interface{}, len(metaType.Fields))
	for _, fieldDef := range metaType.Fields {
		field := object.Field(fieldDef.Name)
		if field == nil {
			if fieldDef.HasDefault() {
				coerced, err := coerceInput(s, fieldDef.Type, fieldDef.DefaultValue)
				if err != nil {
					return nil, err
				}
				fields[fieldDef.Name] = coerced
			} else if fieldDef.Type.IsNonNull() {
				return nil, fmt.Errorf(
					`Field "%s.%s" of required type "%s" was not provided`,
					metaType.Name, fieldDef.Name, fieldDef.Type)
			}
			continue
		}
		coerced, err := coerceInput(s, fieldDef.Type, field.Value)
		if err != nil {
			return nil, fmt.Errorf(`In field "%s": %s`, fieldDef.Name, err)
		}
		fields[fieldDef.Name] = coerced
	}

	for _, field := range object.Fields {
		if metaType.Field(field.Name.Value) == nil {
			return nil, fmt.Errorf(
				`Field "%s" is not defined by type "%s"`, field.Name.Value, metaType.Name)
		}
	}

	if metaType.OneOf && len(fields) != 1 {
		return nil, fmt.Errorf(
			`OneOf Input Object "%s" must specify exactly one key`, metaType.Name)
	}
	return fields, nil
}
