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

package ast

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/token"
)

// InputValue is the tagged union of literal (or variable-referencing) values that appear inside a
// document: null, a scalar literal, an enum name, a variable reference, a list, or an input
// object with ordered fields.
//
// Reference: https://spec.graphql.org/October2021/#sec-Input-Values
type InputValue interface {
	Node
	inputValueNode()

	// String renders the value in document syntax; it is what error messages quote ("found null").
	String() string
}

// NullValue is the literal "null".
type NullValue struct {
	token.Span
}

func (NullValue) inputValueNode() {}

func (NullValue) String() string { return "null" }

// ScalarValue is an int, float, string or boolean literal carried in the engine's pluggable scalar
// representation.
type ScalarValue struct {
	token.Span
	Value graphql.ScalarValue
}

func (ScalarValue) inputValueNode() {}

func (v ScalarValue) String() string {
	if s, ok := v.Value.AsString(); ok {
		return quoteString(s)
	}
	return v.Value.String()
}

// EnumValue is an unquoted name literal denoting an enum value.
type EnumValue struct {
	token.Span
	Value string
}

func (EnumValue) inputValueNode() {}

func (v EnumValue) String() string { return v.Value }

// Variable references an operation variable, e.g. "$id".
type Variable struct {
	token.Span
	Name string
}

func (Variable) inputValueNode() {}

func (v Variable) String() string { return "$" + v.Name }

// ListValue is a bracketed list of values.
type ListValue struct {
	token.Span
	Values []InputValue
}

func (ListValue) inputValueNode() {}

func (v ListValue) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, value := range v.Values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(value.String())
	}
	b.WriteByte(']')
	return b.String()
}

// ObjectValue is a braced list of name/value pairs. Field order is the order written in the
// document (or, for values built from Go maps, the sorted key order).
type ObjectValue struct {
	token.Span
	Fields []*ObjectField
}

func (ObjectValue) inputValueNode() {}

func (v ObjectValue) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, field := range v.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(field.Name.Value)
		b.WriteString(": ")
		b.WriteString(field.Value.String())
	}
	b.WriteByte('}')
	return b.String()
}

// Field looks up an object field by name. Returns nil if absent.
func (v ObjectValue) Field(name string) *ObjectField {
	for _, field := range v.Fields {
		if field.Name.Value == name {
			return field
		}
	}
	return nil
}

// ObjectField is one name/value pair inside an ObjectValue.
type ObjectField struct {
	token.Span
	Name  *Name
	Value InputValue
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

//===----------------------------------------------------------------------------------------====//
// Variables and variable substitution
//===----------------------------------------------------------------------------------------====//

// Variables maps variable names (without "$") to values supplied alongside a request. The engine
// only reads it; it is never mutated during execution.
type Variables map[string]InputValue

// VariablesFromGo converts transport-decoded variables (e.g. from a request's JSON envelope) into
// a Variables map. Map keys become object fields in sorted order so the conversion is
// deterministic.
func VariablesFromGo(values map[string]interface{}) (Variables, error) {
	if len(values) == 0 {
		return nil, nil
	}
	vars := make(Variables, len(values))
	for name, value := range values {
		converted, err := InputValueFromGo(value)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", "$"+name, err)
		}
		vars[name] = converted
	}
	return vars, nil
}

// InputValueFromGo converts a plain Go value into a const InputValue. Supported shapes are nil,
// booleans, strings, Go integer and float types, []interface{} and map[string]interface{}.
func InputValueFromGo(value interface{}) (InputValue, error) {
	switch value := value.(type) {
	case nil:
		return NullValue{}, nil

	case []interface{}:
		values := make([]InputValue, len(value))
		for i, element := range value {
			converted, err := InputValueFromGo(element)
			if err != nil {
				return nil, err
			}
			values[i] = converted
		}
		return ListValue{Values: values}, nil

	case map[string]interface{}:
		names := make([]string, 0, len(value))
		for name := range value {
			names = append(names, name)
		}
		sort.Strings(names)

		fields := make([]*ObjectField, len(names))
		for i, name := range names {
			converted, err := InputValueFromGo(value[name])
			if err != nil {
				return nil, err
			}
			fields[i] = &ObjectField{Name: &Name{Value: name}, Value: converted}
		}
		return ObjectValue{Fields: fields}, nil

	default:
		if scalar, ok := graphql.ScalarFromGo(value); ok {
			return ScalarValue{Value: scalar}, nil
		}
		return nil, fmt.Errorf("cannot represent %T as an input value", value)
	}
}

// ResolveVariables substitutes every variable reference in value using vars, producing a const
// InputValue. A reference to a variable absent from vars resolves to null. The input value is not
// modified.
func ResolveVariables(value InputValue, vars Variables) InputValue {
	switch value := value.(type) {
	case Variable:
		if resolved, ok := vars[value.Name]; ok {
			return resolved
		}
		return NullValue{Span: value.Span}

	case ListValue:
		values := make([]InputValue, len(value.Values))
		for i, element := range value.Values {
			values[i] = ResolveVariables(element, vars)
		}
		return ListValue{Span: value.Span, Values: values}

	case ObjectValue:
		fields := make([]*ObjectField, len(value.Fields))
		for i, field := range value.Fields {
			fields[i] = &ObjectField{
				Span:  field.Span,
				Name:  field.Name,
				Value: ResolveVariables(field.Value, vars),
			}
		}
		return ObjectValue{Span: value.Span, Fields: fields}

	default:
		return value
	}
}

// IsConst returns true when the value contains no variable references.
func IsConst(value InputValue) bool {
	switch value := value.(type) {
	case Variable:
		return false
	case ListValue:
		for _, element := range value.Values {
			if !IsConst(element) {
				return false
			}
		}
	case ObjectValue:
		for _, field := range value.Fields {
			if !IsConst(field.Value) {
				return false
			}
		}
	}
	return true
}
