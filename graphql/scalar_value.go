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

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ScalarValue is the pluggable representation for leaf values. The lexer, the executor and the
// coercion helpers only depend on this conversion surface, so custom scalar kinds (e.g. a decimal
// or a timestamp representation) share one code path with the four built-in variants below.
//
// Each conversion reports false when the underlying representation cannot provide the requested
// view (e.g. AsInt on a StringValue).
type ScalarValue interface {
	// String renders the value the way it appears in a GraphQL document, except that string values
	// are rendered without quotes. Used by the AST printer and in error messages.
	fmt.Stringer

	AsInt() (int32, bool)
	AsFloat() (float64, bool)
	AsString() (string, bool)
	AsBoolean() (bool, bool)

	// scalarValue limits the implementations to this package. Custom scalar kinds wrap one of the
	// built-in variants rather than implementing the interface themselves.
	scalarValue()
}

//===----------------------------------------------------------------------------------------====//
// IntValue
//===----------------------------------------------------------------------------------------====//

// IntValue is a ScalarValue holding a 32-bit integer, the range required for the Int type.
type IntValue int32

var _ ScalarValue = IntValue(0)

// AsInt implements ScalarValue.
func (v IntValue) AsInt() (int32, bool) { return int32(v), true }

// AsFloat implements ScalarValue. Every Int is exactly representable as a float.
func (v IntValue) AsFloat() (float64, bool) { return float64(v), true }

// AsString implements ScalarValue.
func (v IntValue) AsString() (string, bool) { return "", false }

// AsBoolean implements ScalarValue.
func (v IntValue) AsBoolean() (bool, bool) { return false, false }

func (v IntValue) String() string { return strconv.FormatInt(int64(v), 10) }

func (v IntValue) scalarValue() {}

//===----------------------------------------------------------------------------------------====//
// FloatValue
//===----------------------------------------------------------------------------------------====//

// FloatValue is a ScalarValue holding a double-precision float.
type FloatValue float64

var _ ScalarValue = FloatValue(0)

// AsInt implements ScalarValue. It only succeeds for integral values within the Int range.
func (v FloatValue) AsInt() (int32, bool) {
	f := float64(v)
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int32(f), true
}

// AsFloat implements ScalarValue.
func (v FloatValue) AsFloat() (float64, bool) { return float64(v), true }

// AsString implements ScalarValue.
func (v FloatValue) AsString() (string, bool) { return "", false }

// AsBoolean implements ScalarValue.
func (v FloatValue) AsBoolean() (bool, bool) { return false, false }

// String keeps a decimal point or exponent in the output so re-parsing yields a Float token again.
func (v FloatValue) String() string {
	s := strconv.FormatFloat(float64(v), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (v FloatValue) scalarValue() {}

//===----------------------------------------------------------------------------------------====//
// StringValue
//===----------------------------------------------------------------------------------------====//

// StringValue is a ScalarValue holding a string.
type StringValue string

var _ ScalarValue = StringValue("")

// AsInt implements ScalarValue.
func (v StringValue) AsInt() (int32, bool) { return 0, false }

// AsFloat implements ScalarValue.
func (v StringValue) AsFloat() (float64, bool) { return 0, false }

// AsString implements ScalarValue.
func (v StringValue) AsString() (string, bool) { return string(v), true }

// AsBoolean implements ScalarValue.
func (v StringValue) AsBoolean() (bool, bool) { return false, false }

func (v StringValue) String() string { return string(v) }

func (v StringValue) scalarValue() {}

//===----------------------------------------------------------------------------------------====//
// BooleanValue
//===----------------------------------------------------------------------------------------====//

// BooleanValue is a ScalarValue holding a boolean.
type BooleanValue bool

var _ ScalarValue = BooleanValue(false)

// AsInt implements ScalarValue.
func (v BooleanValue) AsInt() (int32, bool) { return 0, false }

// AsFloat implements ScalarValue.
func (v BooleanValue) AsFloat() (float64, bool) { return 0, false }

// AsString implements ScalarValue.
func (v BooleanValue) AsString() (string, bool) { return "", false }

// AsBoolean implements ScalarValue.
func (v BooleanValue) AsBoolean() (bool, bool) { return bool(v), true }

func (v BooleanValue) String() string { return strconv.FormatBool(bool(v)) }

func (v BooleanValue) scalarValue() {}

//===----------------------------------------------------------------------------------------====//
// Conversion from Go values
//===----------------------------------------------------------------------------------------====//

// ScalarFromGo converts a plain Go value (e.g. one decoded from a transport's variables JSON, or
// one returned from a resolver) into a ScalarValue. The second return value is false when the Go
// value has no scalar representation (or an integer is out of the 32-bit range).
func ScalarFromGo(value interface{}) (ScalarValue, bool) {
	switch value := value.(type) {
	case bool:
		return BooleanValue(value), true
	case string:
		return StringValue(value), true
	case int:
		return intScalar(int64(value))
	case int8:
		return IntValue(value), true
	case int16:
		return IntValue(value), true
	case int32:
		return IntValue(value), true
	case int64:
		return intScalar(value)
	case uint:
		return intScalar(int64(value))
	case uint8:
		return IntValue(value), true
	case uint16:
		return IntValue(value), true
	case uint32:
		return intScalar(int64(value))
	case uint64:
		if value > math.MaxInt32 {
			return nil, false
		}
		return IntValue(value), true
	case float32:
		return FloatValue(value), true
	case float64:
		return FloatValue(value), true
	case ScalarValue:
		return value, true
	}
	return nil, false
}

func intScalar(value int64) (ScalarValue, bool) {
	if value < math.MinInt32 || value > math.MaxInt32 {
		return nil, false
	}
	return IntValue(value), true
}
