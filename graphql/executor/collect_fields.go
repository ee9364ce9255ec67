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

package executor

import (
	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/ast"
	"github.com/quellgo/quell/graphql/schema"
)

// fieldGroup is the set of field nodes sharing one response key on an object, in selection order.
// Several nodes occur when fragments select the same key; they execute as one field whose
// sub-selections merge.
type fieldGroup struct {
	responseKey string
	fields      []*ast.Field
}

// collectFields flattens a selection set for a concrete object type: fragments are expanded in
// place (each named fragment at most once per set), inapplicable type conditions and
// @skip/@include'd selections drop out, and fields merge by response key in first-appearance
// order.
//
// Reference: https://spec.graphql.org/October2021/#sec-Field-Collection
func (ec *executionContext) collectFields(
	objectType *schema.ObjectMeta,
	selectionSet *ast.SelectionSet,
	path graphql.ResponsePath) []*fieldGroup {

	var groups []*fieldGroup
	index := map[string]*fieldGroup{}
	visited := map[string]bool{}
	ec.collectFieldsInto(objectType, selectionSet, path, &groups, index, visited)
	return groups
}

func (ec *executionContext) collectFieldsInto(
	objectType *schema.ObjectMeta,
	selectionSet *ast.SelectionSet,
	path graphql.ResponsePath,
	groups *[]*fieldGroup,
	index map[string]*fieldGroup,
	visited map[string]bool) {

	if selectionSet == nil {
		return
	}

	for _, selection := range selectionSet.Selections {
		switch selection := selection.(type) {
		case *ast.Field:
			if !ec.includeSelection(selection.Directives, selection, path) {
				continue
			}
			key := selection.ResponseKey()
			group := index[key]
			if group == nil {
				group = &fieldGroup{responseKey: key}
				index[key] = group
				*groups = append(*groups, group)
			}
			group.fields = append(group.fields, selection)

		case *ast.FragmentSpread:
			// Directives come first: a skipped spread must not mark the fragment visited, or a
			// later spread of the same fragment would be dropped.
			if !ec.includeSelection(selection.Directives, selection, path) {
				continue
			}
			if visited[selection.Name.Value] {
				continue
			}
			visited[selection.Name.Value] = true
			fragment := ec.fragments[selection.Name.Value]
			if fragment == nil || !ec.fragmentApplies(objectType, fragment.TypeCondition) {
				continue
			}
			ec.collectFieldsInto(objectType, fragment.SelectionSet, path, groups, index, visited)

		case *ast.InlineFragment:
			if !ec.includeSelection(selection.Directives, selection, path) {
				continue
			}
			if !ec.fragmentApplies(objectType, selection.TypeCondition) {
				continue
			}
			ec.collectFieldsInto(objectType, selection.SelectionSet, path, groups, index, visited)
		}
	}
}

// fragmentApplies reports whether a type condition matches the concrete object type being
// executed. A nil condition always applies.
func (ec *executionContext) fragmentApplies(
	objectType *schema.ObjectMeta, condition *ast.NamedType) bool {

	if condition == nil || condition.Name == objectType.Name {
		return true
	}
	conditionType := ec.schema.TypeByName(condition.Name)
	if conditionType == nil {
		return false
	}
	for _, possible := range ec.schema.PossibleTypes(conditionType) {
		if possible == objectType.Name {
			return true
		}
	}
	return false
}

// includeSelection evaluates @skip and @include on one selection from coerced argument values.
// A malformed directive argument is reported as a request error and drops the selection.
//
// Reference: https://spec.graphql.org/October2021/#sec--skip
func (ec *executionContext) includeSelection(
	directives []*ast.Directive, node ast.Node, path graphql.ResponsePath) bool {

	for _, directive := range directives {
		var skipWhen bool
		switch directive.Name.Value {
		case "skip":
			skipWhen = true
		case "include":
			skipWhen = false
		default:
			continue
		}

		def := ec.schema.Directive(directive.Name.Value)
		if def == nil {
			continue
		}
		args, err := ec.coerceArgumentValues(
			def.Args, ast.ArgumentList(directive.Arguments), directive, path)
		if err != nil {
			ec.appendError(err)
			return false
		}
		condition, _ := args["if"].(bool)
		if condition == skipWhen {
			return false
		}
	}
	return true
}
