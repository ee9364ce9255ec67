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
	"github.com/quellgo/quell/graphql/ast"
)

// IsSubtype reports whether maybeSubtype may be used where superType is expected. A non-null type
// is a subtype of its nullable form, a list is covariant in its element type, and an object is a
// subtype of every abstract type it belongs to.
//
// Reference: https://spec.graphql.org/October2021/#IsSubType()
func (schema *Schema) IsSubtype(maybeSubtype, superType ast.Type) bool {
	// Strip matching non-null markers. A nullable type is never a subtype of a non-null one.
	if superType.IsNonNull() {
		if !maybeSubtype.IsNonNull() {
			return false
		}
		return schema.IsSubtype(ast.NullableOf(maybeSubtype), ast.NullableOf(superType))
	}
	if maybeSubtype.IsNonNull() {
		return schema.IsSubtype(ast.NullableOf(maybeSubtype), superType)
	}

	switch superType := superType.(type) {
	case *ast.ListType:
		subList, ok := maybeSubtype.(*ast.ListType)
		if !ok {
			return false
		}
		return schema.IsSubtype(subList.Inner, superType.Inner)

	case *ast.NamedType:
		subNamed, ok := maybeSubtype.(*ast.NamedType)
		if !ok {
			return false
		}
		if subNamed.Name == superType.Name {
			return true
		}
		superMeta := schema.TypeByName(superType.Name)
		if superMeta == nil || !IsAbstractType(superMeta) {
			return false
		}
		for _, possible := range schema.PossibleTypes(superMeta) {
			if possible == subNamed.Name {
				return true
			}
		}
	}
	return false
}

// TypesOverlap reports whether two composite types share at least one possible concrete type, i.e.
// whether a value could simultaneously be of both.
func (schema *Schema) TypesOverlap(a, b MetaType) bool {
	if a == b {
		return true
	}
	bPossible := schema.PossibleTypes(b)
	for _, aName := range schema.PossibleTypes(a) {
		for _, bName := range bPossible {
			if aName == bName {
				return true
			}
		}
	}
	return false
}
