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
	messages "github.com/quellgo/quell/graphql/internal/validator"
	"github.com/quellgo/quell/graphql/schema"
	"github.com/quellgo/quell/graphql/validator"
	"github.com/quellgo/quell/internal/util"
)

// FieldsOnCorrectType implements the "Field Selections" validation rule.
//
// Reference: https://spec.graphql.org/October2021/#sec-Field-Selections
type FieldsOnCorrectType struct{}

// CheckField implements validator.FieldRule.
func (rule FieldsOnCorrectType) CheckField(
	ctx *validator.ValidationContext,
	field *validator.FieldInfo) validator.NextCheckAction {

	// A GraphQL document is only valid if all fields selected are defined by the parent type, or
	// are an allowed meta field such as __typename.

	parentType := field.ParentType()
	if parentType == nil || field.Def() != nil {
		return validator.ContinueCheck
	}

	fieldName := field.Name()
	ctx.ReportError(
		messages.UndefinedFieldMessage(
			fieldName,
			schema.TypeNameOf(parentType),
			suggestedTypesWithField(ctx, parentType, fieldName),
			suggestedFieldNames(parentType, fieldName),
		),
		graphql.LocationsOf(field.Node())...,
	)
	return validator.ContinueCheck
}

// suggestedTypesWithField returns, for an abstract parent, the possible concrete types that define
// the field; suggesting an inline fragment on one of them fixes the selection.
func suggestedTypesWithField(
	ctx *validator.ValidationContext,
	parentType schema.MetaType,
	fieldName string) []string {

	if !schema.IsAbstractType(parentType) {
		return nil
	}

	var suggestions []string
	for _, typeName := range ctx.Schema().PossibleTypes(parentType) {
		object, ok := ctx.Schema().TypeByName(typeName).(*schema.ObjectMeta)
		if ok && object.Field(fieldName) != nil {
			suggestions = append(suggestions, typeName)
		}
	}
	return suggestions
}

func suggestedFieldNames(parentType schema.MetaType, fieldName string) []string {
	var fields []*schema.FieldMeta
	switch parentType := parentType.(type) {
	case *schema.ObjectMeta:
		fields = parentType.Fields
	case *schema.InterfaceMeta:
		fields = parentType.Fields
	default:
		// Unions define no fields of their own.
		return nil
	}

	names := make([]string, len(fields))
	for i, field := range fields {
		names[i] = field.Name
	}
	return util.SuggestionList(fieldName, names)
}
