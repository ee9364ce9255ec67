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

package rules

import (
	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/ast"
	messages "github.com/quellgo/quell/graphql/internal/validator"
	"github.com/quellgo/quell/graphql/schema"
	"github.com/quellgo/quell/graphql/validator"
	"github.com/quellgo/quell/internal/util"
)

// ValuesOfCorrectType implements the "Values of Correct Type" validation rule: every literal value
// must be coercible to the input type of the position it appears in.
//
// Reference: https://spec.graphql.org/October2021/#sec-Values-of-Correct-Type
type ValuesOfCorrectType struct{}

// CheckValue implements validator.ValueRule. The walker hands over the complete value once; the
// rule descends into nested lists and objects itself, tracking the expected type position by
// position.
func (rule ValuesOfCorrectType) CheckValue(
	ctx *validator.ValidationContext,
	expectedType ast.Type,
	value ast.InputValue) validator.NextCheckAction {

	rule.checkValue(ctx, expectedType, value)
	return validator.ContinueCheck
}

func (rule ValuesOfCorrectType) checkValue(
	ctx *validator.ValidationContext, expectedType ast.Type, value ast.InputValue) {

	// Variables are checked against their declared type by VariablesInAllowedPosition; their runtime
	// values are coerced per request.
	if _, isVariable := value.(ast.Variable); isVariable {
		return
	}
	// An unresolvable position was already reported by KnownTypeNames (or the argument rules).
	if expectedType == nil {
		return
	}

	if expectedType.IsNonNull() {
		if _, isNull := value.(ast.NullValue); isNull {
			ctx.ReportError(
				messages.BadValueMessage(expectedType.String(), value.String(), ""),
				graphql.LocationsOf(value)...,
			)
			return
		}
		rule.checkValue(ctx, ast.NullableOf(expectedType), value)
		return
	}

	if _, isNull := value.(ast.NullValue); isNull {
		return
	}

	if listType, isList := expectedType.(*ast.ListType); isList {
		if list, ok := value.(ast.ListValue); ok {
			for _, element := range list.Values {
				rule.checkValue(ctx, listType.Inner, element)
			}
		} else {
			// A single value at a list position coerces to a one-element list.
			rule.checkValue(ctx, listType.Inner, value)
		}
		return
	}

	metaType := ctx.Schema().NamedTypeOf(expectedType)
	if metaType == nil {
		return
	}

	switch metaType := metaType.(type) {
	case *schema.ScalarMeta:
		if metaType.CoerceInput == nil {
			return
		}
		if _, err := metaType.CoerceInput(value); err != nil {
			ctx.ReportError(
				messages.BadValueMessage(metaType.Name, value.String(), ""),
				graphql.LocationsOf(value)...,
			)
		}

	case *schema.EnumMeta:
		enumValue, ok := value.(ast.EnumValue)
		if !ok {
			ctx.ReportError(
				messages.BadValueMessage(metaType.Name, value.String(), ""),
				graphql.LocationsOf(value)...,
			)
			return
		}
		if metaType.Value(enumValue.Value) == nil {
			names := make([]string, len(metaType.Values))
			for i, declared := range metaType.Values {
				names[i] = declared.Name
			}
			ctx.ReportError(
				messages.UnknownEnumValueMessage(
					metaType.Name, enumValue.Value, util.SuggestionList(enumValue.Value, names)),
				graphql.LocationsOf(value)...,
			)
		}

	case *schema.InputObjectMeta:
		rule.checkInputObject(ctx, metaType, value)
	}
}

func (rule ValuesOfCorrectType) checkInputObject(
	ctx *validator.ValidationContext, metaType *schema.InputObjectMeta, value ast.InputValue) {

	object, ok := value.(ast.ObjectValue)
	if !ok {
		ctx.ReportError(
			messages.BadValueMessage(metaType.Name, value.String(), ""),
			graphql.LocationsOf(value)...,
		)
		return
	}

	for _, field := range object.Fields {
		fieldDef := metaType.Field(field.Name.Value)
		if fieldDef == nil {
			names := make([]string, len(metaType.Fields))
			for i, declared := range metaType.Fields {
				names[i] = declared.Name
			}
			ctx.ReportError(
				messages.UnknownInputFieldMessage(
					metaType.Name, field.Name.Value, util.SuggestionList(field.Name.Value, names)),
				graphql.LocationsOf(field.Name)...,
			)
			continue
		}
		rule.checkValue(ctx, fieldDef.Type, field.Value)
	}

	for _, fieldDef := range metaType.Fields {
		if !fieldDef.Type.IsNonNull() || fieldDef.HasDefault() {
			continue
		}
		if object.Field(fieldDef.Name) == nil {
			ctx.ReportError(
				messages.RequiredInputFieldMessage(
					metaType.Name, fieldDef.Name, fieldDef.Type.String()),
				graphql.LocationsOf(object)...,
			)
		}
	}

	if metaType.OneOf {
		valid := len(object.Fields) == 1
		if valid {
			if _, isNull := object.Fields[0].Value.(ast.NullValue); isNull {
				valid = false
			}
		}
		if !valid {
			ctx.ReportError(
				messages.OneOfRequiresExactlyOneFieldMessage(metaType.Name),
				graphql.LocationsOf(object)...,
			)
		}
	}
}
