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

package schema

import (
	"fmt"
	"math"

	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/ast"
)

// The five built-in scalars. They are ordinary Scalar descriptors; referencing one from a field or
// argument registers it like any application type.
//
// Reference: https://spec.graphql.org/October2021/#sec-Scalars
var (
	Int = &Scalar{
		Name:        "Int",
		Description: "The `Int` scalar type represents non-fractional signed whole numeric values.",
		CoerceResult: coerceIntResult,
		CoerceInput:  coerceIntInput,
	}

	Float = &Scalar{
		Name: "Float",
		Description: "The `Float` scalar type represents signed double-precision fractional " +
			"values as specified by IEEE 754.",
		CoerceResult: coerceFloatResult,
		CoerceInput:  coerceFloatInput,
	}

	String = &Scalar{
		Name: "String",
		Description: "The `String` scalar type represents textual data, represented as UTF-8 " +
			"character sequences.",
		CoerceResult: coerceStringResult,
		CoerceInput:  coerceStringInput,
	}

	Boolean = &Scalar{
		Name:         "Boolean",
		Description:  "The `Boolean` scalar type represents `true` or `false`.",
		CoerceResult: coerceBooleanResult,
		CoerceInput:  coerceBooleanInput,
	}

	ID = &Scalar{
		Name: "ID",
		Description: "The `ID` scalar type represents a unique identifier. It is serialized as a " +
			"String, but accepts both string and integer input values.",
		CoerceResult: coerceIDResult,
		CoerceInput:  coerceIDInput,
	}
)

func coerceIntResult(value interface{}) (graphql.ScalarValue, error) {
	switch value := value.(type) {
	case graphql.IntValue:
		return value, nil
	case float32:
		return intFromFloat(float64(value))
	case float64:
		return intFromFloat(value)
	}
	if scalar, ok := graphql.ScalarFromGo(value); ok {
		if _, isInt := scalar.(graphql.IntValue); isInt {
			return scalar, nil
		}
	}
	return nil, fmt.Errorf("Int cannot represent non-integer value: %v", value)
}

func intFromFloat(f float64) (graphql.ScalarValue, error) {
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("Int cannot represent non-integer value: %v", f)
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return nil, fmt.Errorf("Int cannot represent non 32-bit signed integer value: %v", f)
	}
	return graphql.IntValue(f), nil
}

func coerceIntInput(value ast.InputValue) (interface{}, error) {
	if scalar, ok := value.(ast.ScalarValue); ok {
		if i, isInt := scalar.Value.(graphql.IntValue); isInt {
			return int32(i), nil
		}
	}
	return nil, fmt.Errorf("Int cannot represent non-integer value: %s", value)
}

func coerceFloatResult(value interface{}) (graphql.ScalarValue, error) {
	if scalar, ok := graphql.ScalarFromGo(value); ok {
		if f, isNumeric := scalar.AsFloat(); isNumeric {
			return graphql.FloatValue(f), nil
		}
	}
	return nil, fmt.Errorf("Float cannot represent non numeric value: %v", value)
}

func coerceFloatInput(value ast.InputValue) (interface{}, error) {
	if scalar, ok := value.(ast.ScalarValue); ok {
		switch v := scalar.Value.(type) {
		case graphql.IntValue:
			return float64(v), nil
		case graphql.FloatValue:
			return float64(v), nil
		}
	}
	return nil, fmt.Errorf("Float cannot represent non numeric value: %s", value)
}

func coerceStringResult(value interface{}) (graphql.ScalarValue, error) {
	switch value := value.(type) {
	case string:
		return graphql.StringValue(value), nil
	case graphql.StringValue:
		return value, nil
	case fmt.Stringer:
		return graphql.StringValue(value.String()), nil
	}
	return nil, fmt.Errorf("String cannot represent a non string value: %v", value)
}

func coerceStringInput(value ast.InputValue) (interface{}, error) {
	if scalar, ok := value.(ast.ScalarValue); ok {
		if s, isString := scalar.Value.AsString(); isString {
			return s, nil
		}
	}
	return nil, fmt.Errorf("String cannot represent a non string value: %s", value)
}

func coerceBooleanResult(value interface{}) (graphql.ScalarValue, error) {
	switch value := value.(type) {
	case bool:
		return graphql.BooleanValue(value), nil
	case graphql.BooleanValue:
		return value, nil
	}
	return nil, fmt.Errorf("Boolean cannot represent a non boolean value: %v", value)
}

func coerceBooleanInput(value ast.InputValue) (interface{}, error) {
	if scalar, ok := value.(ast.ScalarValue); ok {
		if b, isBool := scalar.Value.AsBoolean(); isBool {
			return b, nil
		}
	}
	return nil, fmt.Errorf("Boolean cannot represent a non boolean value: %s", value)
}

// ID serializes as a string but accepts integer results and literals as well, so numeric database
// keys round-trip without application conversion.
func coerceIDResult(value interface{}) (graphql.ScalarValue, error) {
	switch value := value.(type) {
	case string:
		return graphql.StringValue(value), nil
	case graphql.StringValue:
		return value, nil
	case fmt.Stringer:
		return graphql.StringValue(value.String()), nil
	}
	if scalar, ok := graphql.ScalarFromGo(value); ok {
		if i, isInt := scalar.(graphql.IntValue); isInt {
			return graphql.StringValue(i.String()), nil
		}
	}
	return nil, fmt.Errorf("ID cannot represent value: %v", value)
}

func coerceIDInput(value ast.InputValue) (interface{}, error) {
	if scalar, ok := value.(ast.ScalarValue); ok {
		switch v := scalar.Value.(type) {
		case graphql.StringValue:
			return string(v), nil
		case graphql.IntValue:
			return v.String(), nil
		}
	}
	return nil, fmt.Errorf("ID cannot represent value: %s", value)
}
