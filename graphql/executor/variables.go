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
	"strconv"

	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/ast"
	"github.com/quellgo/quell/graphql/schema"
)

// coerceVariableValues checks the request variables against the operation's variable declarations
// and applies declared defaults. Every failure produces one error; any failure aborts the request
// before execution starts.
//
// Reference: https://spec.graphql.org/October2021/#sec-Coercing-Variable-Values
func coerceVariableValues(
	s *schema.Schema,
	operation *ast.OperationDefinition,
	provided ast.Variables) (ast.Variables, graphql.Errors) {

	var errs graphql.Errors
	coerced := make(ast.Variables, len(operation.VariableDefinitions))

	for _, definition := range operation.VariableDefinitions {
		name := definition.Variable.Value

		value, present := provided[name]
		if !present {
			if definition.DefaultValue != nil {
				coerced[name] = definition.DefaultValue
				continue
			}
			if definition.Type.IsNonNull() {
				errs.Append(graphql.NewCoercionError(
					fmt.Sprintf(
						`Variable "$%s" of required type "%s" was not provided.`,
						name, definition.Type),
					graphql.LocationsOf(definition)...,
				))
			}
			continue
		}

		for _, problem := range checkVariableValue(s, definition.Type, value) {
			errs.Append(graphql.NewCoercionError(
				fmt.Sprintf(`Variable "$%s" got invalid value. %s`, name, problem),
				graphql.LocationsOf(definition)...,
			))
		}
		coerced[name] = value
	}

	return coerced, errs
}

// checkVariableValue walks a const value against the expected type and collects one problem string
// per mismatch, each prefixed with the path of input fields and list elements leading to it.
func checkVariableValue(s *schema.Schema, expected ast.Type, value ast.InputValue) []string {
	return checkValueAt(s, expected, value, "")
}

func checkValueAt(s *schema.Schema, expected ast.Type, value ast.InputValue, prefix string) []string {
	if expected.IsNonNull() {
		if _, isNull := value.(ast.NullValue); isNull {
			return []string{badValueProblem(prefix, expected, value)}
		}
		return checkValueAt(s, ast.NullableOf(expected), value, prefix)
	}

	if _, isNull := value.(ast.NullValue); isNull {
		return nil
	}

	if listType, isList := expected.(*ast.ListType); isList {
		list, ok := value.(ast.ListValue)
		if !ok {
			// A single value coerces to a one-element list.
			return checkValueAt(s, listType.Inner, value, prefix)
		}
		var problems []string
		for i, element := range list.Values {
			elementPrefix := prefix + "In element #" + strconv.Itoa(i) + ": "
			problems = append(problems, checkValueAt(s, listType.Inner, element, elementPrefix)...)
		}
		return problems
	}

	metaType := s.NamedTypeOf(expected)
	if metaType == nil {
		return []string{badValueProblem(prefix, expected, value)}
	}

	switch metaType := metaType.(type) {
	case *schema.ScalarMeta:
		if metaType.CoerceInput != nil {
			if _, err := metaType.CoerceInput(value); err != nil {
				return []string{badValueProblem(prefix, expected, value)}
			}
		}
		return nil

	case *schema.EnumMeta:
		// Transport-decoded enum values arrive as strings; document literals as enum names.
		name, ok := enumNameOf(value)
		if !ok || metaType.Value(name) == nil {
			return []string{badValueProblem(prefix, expected, value)}
		}
		return nil

	case *schema.InputObjectMeta:
		return checkInputObjectValue(s, metaType, expected, value, prefix)
	}
	return nil
}

func checkInputObjectValue(
	s *schema.Schema,
	metaType *schema.InputObjectMeta,
	expected ast.Type,
	value ast.InputValue,
	prefix string) []string {

	object, ok := value.(ast.ObjectValue)
	if !ok {
		return []string{badValueProblem(prefix, expected, value)}
	}

	var problems []string
	for _, field := range object.Fields {
		if metaType.Field(field.Name.Value) == nil {
			problems = append(problems, fmt.Sprintf(
				`%sField "%s" is not defined by type "%s".`, prefix, field.Name.Value, metaType.Name))
		}
	}

	for _, fieldDef := range metaType.Fields {
		fieldPrefix := prefix + `In field "` + fieldDef.Name + `": `
		field := object.Field(fieldDef.Name)
		if field == nil {
			if fieldDef.Type.IsNonNull() && !fieldDef.HasDefault() {
				// A missing required field reads as a null at the field's position.
				problems = append(problems,
					badValueProblem(fieldPrefix, fieldDef.Type, ast.NullValue{}))
			}
			continue
		}
		problems = append(problems, checkValueAt(s, fieldDef.Type, field.Value, fieldPrefix)...)
	}

	if metaType.OneOf {
		valid := len(object.Fields) == 1
		if valid {
			_, isNull := object.Fields[0].Value.(ast.NullValue)
			valid = !isNull
		}
		if !valid {
			problems = append(problems, fmt.Sprintf(
				`%sOneOf Input Object "%s" must specify exactly one key.`, prefix, metaType.Name))
		}
	}
	return problems
}

func badValueProblem(prefix string, expected ast.Type, value ast.InputValue) string {
	return fmt.Sprintf(`%sExpected "%s", found %s.`, prefix, expected, value)
}

// enumNameOf extracts the enum value name from either a document literal or a transport-decoded
// string.
func enumNameOf(value ast.InputValue) (string, bool) {
	switch value := value.(type) {
	case ast.EnumValue:
		return value.Value, true
	case ast.ScalarValue:
		if s, ok := value.Value.AsString(); ok {
			return s, true
		}
	}
	return "", false
}
