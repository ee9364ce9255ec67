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

package graphql

// ValueKind discriminates the variants of Value.
type ValueKind int

// Enumeration of ValueKind
const (
	ValueKindNull ValueKind = iota
	ValueKindScalar
	ValueKindList
	ValueKindObject
)

// Value is the runtime output tree produced by the executor. Only the field matching the Kind is
// meaningful. Object fields are ordered: their order always equals the selection order in the
// query, never the completion order of resolvers.
//
// The zero Value is null.
type Value struct {
	Kind ValueKind

	// Set for ValueKindScalar. Enum results are carried as StringValue.
	Scalar ScalarValue

	// Set for ValueKindList.
	Values []*Value

	// Set for ValueKindObject, in selection order.
	Fields []ObjectField
}

// ObjectField is one name/value pair in an object result.
type ObjectField struct {
	Name  string
	Value *Value
}

// SetNull resets the value to null in place. The executor uses this when a field error propagates
// to the nearest nullable ancestor.
func (v *Value) SetNull() {
	*v = Value{Kind: ValueKindNull}
}

// IsNull returns true for a null value.
func (v *Value) IsNull() bool {
	return v == nil || v.Kind == ValueKindNull
}

// FieldValue looks up a field by response key in an object value. It returns nil when the value is
// not an object or has no such field.
func (v *Value) FieldValue(name string) *Value {
	if v == nil || v.Kind != ValueKindObject {
		return nil
	}
	for _, field := range v.Fields {
		if field.Name == name {
			return field.Value
		}
	}
	return nil
}

// GoValue converts the value tree into plain Go values: nil, int32, float64, string, bool,
// []interface{} and ordered-key pairs flattened into map[string]interface{}. Mostly useful in
// tests; the wire encoding goes through Response.MarshalJSON which preserves field order.
func (v *Value) GoValue() interface{} {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case ValueKindNull:
		return nil

	case ValueKindScalar:
		scalar := v.Scalar
		if i, ok := scalar.AsInt(); ok {
			return i
		}
		if f, ok := scalar.AsFloat(); ok {
			return f
		}
		if s, ok := scalar.AsString(); ok {
			return s
		}
		if b, ok := scalar.AsBoolean(); ok {
			return b
		}
		return scalar.String()

	case ValueKindList:
		values := make([]interface{}, len(v.Values))
		for i, value := range v.Values {
			values[i] = value.GoValue()
		}
		return values

	case ValueKindObject:
		fields := make(map[string]interface{}, len(v.Fields))
		for _, field := range v.Fields {
			fields[field.Name] = field.Value.GoValue()
		}
		return fields
	}
	return nil
}

// NewScalarValue wraps a ScalarValue into a leaf Value.
func NewScalarValue(scalar ScalarValue) *Value {
	return &Value{Kind: ValueKindScalar, Scalar: scalar}
}

// NewNullValue allocates a null Value.
func NewNullValue() *Value {
	return &Value{Kind: ValueKindNull}
}
