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

// Package validator holds the message formatting shared between the validation rules. Keeping the
// exact wording in one place makes it testable independently from the rules that emit it.
package validator

import (
	"fmt"
	"strings"

	"github.com/quellgo/quell/internal/util"
)

// DuplicateOperationNameMessage is reported by rules.UniqueOperationNames.
func DuplicateOperationNameMessage(operationName string) string {
	return fmt.Sprintf(`There can be only one operation named "%s".`, operationName)
}

// AnonOperationNotAloneMessage is reported by rules.LoneAnonymousOperation.
func AnonOperationNotAloneMessage() string {
	return "This anonymous operation must be the only defined operation."
}

// SingleFieldOnlyMessage is reported by rules.SingleFieldSubscriptions.
func SingleFieldOnlyMessage(name string) string {
	if len(name) == 0 {
		return "Anonymous Subscription must select only one top level field."
	}
	return fmt.Sprintf(`Subscription "%s" must select only one top level field.`, name)
}

// UnknownTypeMessage is reported by rules.KnownTypeNames.
func UnknownTypeMessage(typeName string, suggestedTypes []string) string {
	var message strings.Builder
	fmt.Fprintf(&message, `Unknown type "%s".`, typeName)
	writeDidYouMean(&message, suggestedTypes)
	return message.String()
}

// FragmentOnNonCompositeMessage is reported by rules.FragmentsOnCompositeTypes for a named
// fragment definition.
func FragmentOnNonCompositeMessage(fragmentName string, typeName string) string {
	return fmt.Sprintf(
		`Fragment "%s" cannot condition on non composite type "%s".`, fragmentName, typeName)
}

// InlineFragmentOnNonCompositeMessage is reported by rules.FragmentsOnCompositeTypes for an inline
// fragment.
func InlineFragmentOnNonCompositeMessage(typeName string) string {
	return fmt.Sprintf(`Fragment cannot condition on non composite type "%s".`, typeName)
}

// NonInputTypeOnVarMessage is reported by rules.VariablesAreInputTypes.
func NonInputTypeOnVarMessage(variableName string, typeName string) string {
	return fmt.Sprintf(`Variable "$%s" cannot be non-input type "%s".`, variableName, typeName)
}

// NoSubselectionAllowedMessage is reported by rules.ScalarLeafs when a leaf field carries a
// selection set.
func NoSubselectionAllowedMessage(fieldName string, typeName string) string {
	return fmt.Sprintf(
		`Field "%s" must not have a selection since type "%s" has no subfields.`,
		fieldName, typeName)
}

// RequiredSubselectionMessage is reported by rules.ScalarLeafs when a composite field has no
// selection set.
func RequiredSubselectionMessage(fieldName string, typeName string) string {
	return fmt.Sprintf(
		`Field "%s" of type "%s" must have a selection of subfields. Did you mean "%s { ... }"?`,
		fieldName, typeName, fieldName)
}

// UndefinedFieldMessage is reported by rules.FieldsOnCorrectType.
func UndefinedFieldMessage(
	fieldName string,
	parentTypeName string,
	suggestedTypeNames []string,
	suggestedFieldNames []string) string {

	var message strings.Builder
	fmt.Fprintf(&message, `Cannot query field "%s" on type "%s".`, fieldName, parentTypeName)
	if len(suggestedTypeNames) > 0 {
		message.WriteString(" Did you mean to use an inline fragment on ")
		message.WriteString(util.OrList(suggestedTypeNames, 5, true))
		message.WriteString("?")
	} else {
		writeDidYouMean(&message, suggestedFieldNames)
	}
	return message.String()
}

// DuplicateFragmentNameMessage is reported by rules.UniqueFragmentNames.
func DuplicateFragmentNameMessage(fragmentName string) string {
	return fmt.Sprintf(`There can be only one fragment named "%s".`, fragmentName)
}

// UnknownFragmentMessage is reported by rules.KnownFragmentNames.
func UnknownFragmentMessage(fragmentName string) string {
	return fmt.Sprintf(`Unknown fragment "%s".`, fragmentName)
}

// UnusedFragmentMessage is reported by rules.NoUnusedFragments.
func UnusedFragmentMessage(fragmentName string) string {
	return fmt.Sprintf(`Fragment "%s" is never used.`, fragmentName)
}

// TypeIncompatibleSpreadMessage is reported by rules.PossibleFragmentSpreads for a named spread.
func TypeIncompatibleSpreadMessage(
	fragmentName string, parentTypeName string, fragmentTypeName string) string {
	return fmt.Sprintf(
		`Fragment "%s" cannot be spread here as objects of type "%s" can never be of type "%s".`,
		fragmentName, parentTypeName, fragmentTypeName)
}

// TypeIncompatibleAnonSpreadMessage is reported by rules.PossibleFragmentSpreads for an inline
// fragment.
func TypeIncompatibleAnonSpreadMessage(parentTypeName string, fragmentTypeName string) string {
	return fmt.Sprintf(
		`Fragment cannot be spread here as objects of type "%s" can never be of type "%s".`,
		parentTypeName, fragmentTypeName)
}

// CycleErrorMessage is reported by rules.NoFragmentCycles. spreadNames traces the path back to the
// offending fragment, excluding it at both ends.
func CycleErrorMessage(fragmentName string, spreadNames []string) string {
	var message strings.Builder
	fmt.Fprintf(&message, `Cannot spread fragment "%s" within itself`, fragmentName)
	if len(spreadNames) > 0 {
		message.WriteString(` via "`)
		message.WriteString(strings.Join(spreadNames, `", "`))
		message.WriteString(`"`)
	}
	message.WriteString(".")
	return message.String()
}

// DuplicateVariableMessage is reported by rules.UniqueVariableNames.
func DuplicateVariableMessage(variableName string) string {
	return fmt.Sprintf(`There can be only one variable named "$%s".`, variableName)
}

// UndefinedVarMessage is reported by rules.NoUndefinedVariables.
func UndefinedVarMessage(variableName string, operationName string) string {
	if len(operationName) == 0 {
		return fmt.Sprintf(`Variable "$%s" is not defined.`, variableName)
	}
	return fmt.Sprintf(
		`Variable "$%s" is not defined by operation "%s".`, variableName, operationName)
}

// UnusedVariableMessage is reported by rules.NoUnusedVariables.
func UnusedVariableMessage(variableName string, operationName string) string {
	if len(operationName) == 0 {
		return fmt.Sprintf(`Variable "$%s" is never used.`, variableName)
	}
	return fmt.Sprintf(
		`Variable "$%s" is never used in operation "%s".`, variableName, operationName)
}

// UnknownDirectiveMessage is reported by rules.KnownDirectives.
func UnknownDirectiveMessage(directiveName string) string {
	return fmt.Sprintf(`Unknown directive "@%s".`, directiveName)
}

// MisplacedDirectiveMessage is reported by rules.KnownDirectives when a known directive appears at
// a location its declaration does not allow.
func MisplacedDirectiveMessage(directiveName string, location string) string {
	return fmt.Sprintf(`Directive "@%s" may not be used on %s.`, directiveName, location)
}

// DuplicateDirectiveMessage is reported by rules.UniqueDirectivesPerLocation.
func DuplicateDirectiveMessage(directiveName string) string {
	return fmt.Sprintf(
		`The directive "@%s" can only be used once at this location.`, directiveName)
}

// UnknownArgMessage is reported by rules.KnownArgumentNames for a field argument.
func UnknownArgMessage(
	argName string, fieldName string, typeName string, suggestedArgs []string) string {

	var message strings.Builder
	fmt.Fprintf(&message, `Unknown argument "%s" on field "%s.%s".`, argName, typeName, fieldName)
	writeDidYouMean(&message, suggestedArgs)
	return message.String()
}

// UnknownDirectiveArgMessage is reported by rules.KnownArgumentNames for a directive argument.
func UnknownDirectiveArgMessage(
	argName string, directiveName string, suggestedArgs []string) string {

	var message strings.Builder
	fmt.Fprintf(&message, `Unknown argument "%s" on directive "@%s".`, argName, directiveName)
	writeDidYouMean(&message, suggestedArgs)
	return message.String()
}

// DuplicateArgMessage is reported by rules.UniqueArgumentNames.
func DuplicateArgMessage(argName string) string {
	return fmt.Sprintf(`There can be only one argument named "%s".`, argName)
}

// MissingFieldArgMessage is reported by rules.ProvidedRequiredArguments for a field.
func MissingFieldArgMessage(fieldName string, argName string, typeName string) string {
	return fmt.Sprintf(
		`Field "%s" argument "%s" of type "%s" is required, but it was not provided.`,
		fieldName, argName, typeName)
}

// MissingDirectiveArgMessage is reported by rules.ProvidedRequiredArguments for a directive.
func MissingDirectiveArgMessage(directiveName string, argName string, typeName string) string {
	return fmt.Sprintf(
		`Directive "@%s" argument "%s" of type "%s" is required, but it was not provided.`,
		directiveName, argName, typeName)
}

// BadValueMessage is reported by rules.ValuesOfCorrectType.
func BadValueMessage(typeName string, valueRepr string, extra string) string {
	var message strings.Builder
	fmt.Fprintf(&message, `Expected value of type "%s", found %s.`, typeName, valueRepr)
	if len(extra) > 0 {
		message.WriteString(" ")
		message.WriteString(extra)
	}
	return message.String()
}

// UnknownEnumValueMessage is reported by rules.ValuesOfCorrectType for an undeclared enum value.
func UnknownEnumValueMessage(typeName string, valueRepr string, suggestedValues []string) string {
	var message strings.Builder
	fmt.Fprintf(&message, `Value "%s" does not exist in "%s" enum.`, valueRepr, typeName)
	writeDidYouMean(&message, suggestedValues)
	return message.String()
}

// RequiredInputFieldMessage is reported by rules.ValuesOfCorrectType when a required input object
// field is missing.
func RequiredInputFieldMessage(typeName string, fieldName string, fieldTypeName string) string {
	return fmt.Sprintf(
		`Field "%s.%s" of required type "%s" was not provided.`, typeName, fieldName, fieldTypeName)
}

// UnknownInputFieldMessage is reported by rules.ValuesOfCorrectType for an undeclared input object
// field.
func UnknownInputFieldMessage(typeName string, fieldName string, suggestedFields []string) string {
	var message strings.Builder
	fmt.Fprintf(&message, `Field "%s" is not defined by type "%s".`, fieldName, typeName)
	writeDidYouMean(&message, suggestedFields)
	return message.String()
}

// OneOfRequiresExactlyOneFieldMessage is reported by rules.ValuesOfCorrectType for a literal of a
// oneOf input object that does not provide exactly one non-null field.
func OneOfRequiresExactlyOneFieldMessage(typeName string) string {
	return fmt.Sprintf(
		`OneOf Input Object "%s" must specify exactly one key.`, typeName)
}

// DuplicateInputFieldMessage is reported by rules.UniqueInputFieldNames.
func DuplicateInputFieldMessage(fieldName string) string {
	return fmt.Sprintf(`There can be only one input field named "%s".`, fieldName)
}

// BadVarPosMessage is reported by rules.VariablesInAllowedPosition.
func BadVarPosMessage(variableName string, varTypeName string, expectedTypeName string) string {
	return fmt.Sprintf(
		`Variable "$%s" of type "%s" used in position expecting type "%s".`,
		variableName, varTypeName, expectedTypeName)
}

func writeDidYouMean(message *strings.Builder, suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	message.WriteString(" Did you mean ")
	message.WriteString(util.OrList(suggestions, 5, true))
	message.WriteString("?")
}
