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
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var jsonConfig = jsoniter.ConfigCompatibleWithStandardLibrary

// Response is the engine's answer to one request, serializing into the standard {data, errors}
// envelope.
//
// Data is nil, and the "data" key is absent from the encoding, when the request failed before
// execution began (a syntax error, validation errors, or an unresolvable operation). Once
// execution has started the "data" key is always present, even if field errors forced the whole
// result to null.
type Response struct {
	Data   *Value
	Errors Errors
}

var _ json.Marshaler = (*Response)(nil)

// MarshalJSON encodes the response with a jsoniter stream so object fields keep their selection
// order.
func (r *Response) MarshalJSON() ([]byte, error) {
	stream := jsonConfig.BorrowStream(nil)
	defer jsonConfig.ReturnStream(stream)

	writeResponse(stream, r)
	if stream.Error != nil {
		return nil, stream.Error
	}

	// The stream buffer is reused after ReturnStream; hand back a copy.
	buf := stream.Buffer()
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}

func writeResponse(stream *jsoniter.Stream, r *Response) {
	stream.WriteObjectStart()

	first := true
	if r.Errors.HaveOccurred() {
		stream.WriteObjectField("errors")
		writeErrors(stream, r.Errors)
		first = false
	}

	if r.Data != nil {
		if !first {
			stream.WriteMore()
		}
		stream.WriteObjectField("data")
		WriteValue(stream, r.Data)
	}

	stream.WriteObjectEnd()
}

// WriteValue encodes a result value to a jsoniter stream, preserving object field order.
func WriteValue(stream *jsoniter.Stream, value *Value) {
	if value == nil {
		stream.WriteNil()
		return
	}

	switch value.Kind {
	case ValueKindNull:
		stream.WriteNil()

	case ValueKindScalar:
		writeScalar(stream, value.Scalar)

	case ValueKindList:
		stream.WriteArrayStart()
		for i, element := range value.Values {
			if i > 0 {
				stream.WriteMore()
			}
			WriteValue(stream, element)
		}
		stream.WriteArrayEnd()

	case ValueKindObject:
		stream.WriteObjectStart()
		for i, field := range value.Fields {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(field.Name)
			WriteValue(stream, field.Value)
		}
		stream.WriteObjectEnd()

	default:
		stream.Error = fmt.Errorf("unsupported value kind %d", value.Kind)
	}
}

func writeScalar(stream *jsoniter.Stream, scalar ScalarValue) {
	if scalar == nil {
		stream.WriteNil()
		return
	}
	if i, ok := scalar.AsInt(); ok {
		stream.WriteInt32(i)
		return
	}
	if f, ok := scalar.AsFloat(); ok {
		stream.WriteFloat64(f)
		return
	}
	if b, ok := scalar.AsBoolean(); ok {
		stream.WriteBool(b)
		return
	}
	if s, ok := scalar.AsString(); ok {
		stream.WriteString(s)
		return
	}
	// Custom representations without a native view serialize through their display form.
	stream.WriteString(scalar.String())
}

func writeErrors(stream *jsoniter.Stream, errs Errors) {
	stream.WriteArrayStart()
	for i, err := range errs {
		if i > 0 {
			stream.WriteMore()
		}
		writeError(stream, err)
	}
	stream.WriteArrayEnd()
}

func writeError(stream *jsoniter.Stream, err *Error) {
	stream.WriteObjectStart()
	stream.WriteObjectField("message")
	stream.WriteString(err.Message)

	if len(err.Locations) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("locations")
		stream.WriteArrayStart()
		for i, location := range err.Locations {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectStart()
			stream.WriteObjectField("line")
			stream.WriteInt(location.Line)
			stream.WriteMore()
			stream.WriteObjectField("column")
			stream.WriteInt(location.Column)
			stream.WriteObjectEnd()
		}
		stream.WriteArrayEnd()
	}

	if !err.Path.Empty() {
		stream.WriteMore()
		stream.WriteObjectField("path")
		stream.WriteArrayStart()
		for i, key := range err.Path.Keys() {
			if i > 0 {
				stream.WriteMore()
			}
			switch key := key.(type) {
			case string:
				stream.WriteString(key)
			case int:
				stream.WriteInt(key)
			default:
				stream.Error = fmt.Errorf("unsupported key %T in response path", key)
				return
			}
		}
		stream.WriteArrayEnd()
	}

	stream.WriteObjectEnd()
}
