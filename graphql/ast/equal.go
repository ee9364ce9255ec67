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

// EqualIgnoringSpans compares two syntax trees structurally, ignoring every source span. This is
// the comparison the round-trip property is stated in terms of: printing a document and re-parsing
// it yields a tree equal under this relation, never under ==.
func EqualIgnoringSpans(a, b Node) bool {
	switch a := a.(type) {
	case *Document:
		b, ok := b.(*Document)
		if !ok || len(a.Definitions) != len(b.Definitions) {
			return false
		}
		for i := range a.Definitions {
			if !EqualIgnoringSpans(a.Definitions[i], b.Definitions[i]) {
				return false
			}
		}
		return true

	case *OperationDefinition:
		b, ok := b.(*OperationDefinition)
		return ok &&
			a.Kind == b.Kind &&
			a.Shorthand == b.Shorthand &&
			equalNames(a.Name, b.Name) &&
			equalVariableDefinitions(a.VariableDefinitions, b.VariableDefinitions) &&
			equalDirectives(a.Directives, b.Directives) &&
			equalSelectionSets(a.SelectionSet, b.SelectionSet)

	case *FragmentDefinition:
		b, ok := b.(*FragmentDefinition)
		return ok &&
			equalNames(a.Name, b.Name) &&
			equalTypes(a.TypeCondition, b.TypeCondition) &&
			equalDirectives(a.Directives, b.Directives) &&
			equalSelectionSets(a.SelectionSet, b.SelectionSet)

	case *SelectionSet:
		b, ok := b.(*SelectionSet)
		return ok && equalSelectionSets(a, b)

	case *Field:
		b, ok := b.(*Field)
		return ok &&
			equalNames(a.Alias, b.Alias) &&
			equalNames(a.Name, b.Name) &&
			equalArguments(a.Arguments, b.Arguments) &&
			equalDirectives(a.Directives, b.Directives) &&
			equalSelectionSets(a.SelectionSet, b.SelectionSet)

	case *FragmentSpread:
		b, ok := b.(*FragmentSpread)
		return ok && equalNames(a.Name, b.Name) && equalDirectives(a.Directives, b.Directives)

	case *InlineFragment:
		b, ok := b.(*InlineFragment)
		return ok &&
			equalTypes(a.TypeCondition, b.TypeCondition) &&
			equalDirectives(a.Directives, b.Directives) &&
			equalSelectionSets(a.SelectionSet, b.SelectionSet)

	case *NamedType:
		b, ok := b.(*NamedType)
		return ok && a.Name == b.Name && a.NonNull == b.NonNull

	case *ListType:
		b, ok := b.(*ListType)
		return ok && a.NonNull == b.NonNull && EqualIgnoringSpans(a.Inner, b.Inner)

	case *Name:
		b, ok := b.(*Name)
		return ok && a.Value == b.Value

	case InputValue:
		b, ok := b.(InputValue)
		return ok && EqualValuesIgnoringSpans(a, b)
	}
	return false
}

// EqualValuesIgnoringSpans compares two input values structurally, ignoring source spans. Object
// field order is significant, matching the ordered representation.
func EqualValuesIgnoringSpans(a, b InputValue) bool {
	switch a := a.(type) {
	case NullValue:
		_, ok := b.(NullValue)
		return ok

	case ScalarValue:
		b, ok := b.(ScalarValue)
		return ok && a.Value == b.Value

	case EnumValue:
		b, ok := b.(EnumValue)
		return ok && a.Value == b.Value

	case Variable:
		b, ok := b.(Variable)
		return ok && a.Name == b.Name

	case ListValue:
		b, ok := b.(ListValue)
		if !ok || len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !EqualValuesIgnoringSpans(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true

	case ObjectValue:
		b, ok := b.(ObjectValue)
		if !ok || len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i].Name.Value != b.Fields[i].Name.Value ||
				!EqualValuesIgnoringSpans(a.Fields[i].Value, b.Fields[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

func equalNames(a, b *Name) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Value == b.Value
}

func equalTypes(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return EqualIgnoringSpans(a, b)
}

func equalSelectionSets(a, b *SelectionSet) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if len(a.Selections) != len(b.Selections) {
		return false
	}
	for i := range a.Selections {
		if !EqualIgnoringSpans(a.Selections[i], b.Selections[i]) {
			return false
		}
	}
	return true
}

func equalArguments(a, b []*Argument) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalNames(a[i].Name, b[i].Name) || !EqualValuesIgnoringSpans(a[i].Value, b[i].Value) {
			return false
		}
	}
	return true
}

func equalDirectives(a, b []*Directive) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalNames(a[i].Name, b[i].Name) || !equalArguments(a[i].Arguments, b[i].Arguments) {
			return false
		}
	}
	return true
}

func equalVariableDefinitions(a, b []*VariableDefinition) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalNames(a[i].Variable, b[i].Variable) || !EqualIgnoringSpans(a[i].Type, b[i].Type) {
			return false
		}
		ad, bd := a[i].DefaultValue, b[i].DefaultValue
		if ad == nil || bd == nil {
			if !(ad == nil && bd == nil) {
				return false
			}
		} else if !EqualValuesIgnoringSpans(ad, bd) {
			return false
		}
	}
	return true
}
