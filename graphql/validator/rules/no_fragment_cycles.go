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
	"github.com/quellgo/quell/graphql/token"
	"github.com/quellgo/quell/graphql/validator"
)

// NoFragmentCycles implements the "Fragments must not form cycles" validation rule.
//
// Reference: https://spec.graphql.org/October2021/#sec-Fragment-spreads-must-not-form-cycles
type NoFragmentCycles struct{}

// CheckFragment implements validator.FragmentRule. Starting from each fragment definition it
// traverses the spread graph depth-first with an explicit stack, reporting every spread that closes
// a cycle back onto a fragment already on the current path.
func (rule NoFragmentCycles) CheckFragment(
	ctx *validator.ValidationContext,
	fragment *validator.FragmentInfo) validator.NextCheckAction {

	if ctx.VisitedFragments[fragment.Name()] {
		return validator.ContinueCheck
	}

	// The DFS is driven by an explicit frame stack: spread graphs are document-controlled and may be
	// adversarially deep.
	type frame struct {
		name    string
		spreads []*ast.FragmentSpread
		next    int
	}

	// pathIndex maps the fragments on the current path to their position, so a closing spread can
	// report the path segment that forms the cycle.
	pathIndex := map[string]int{}
	var path []*ast.FragmentSpread

	stack := []*frame{{
		name:    fragment.Name(),
		spreads: spreadsIn(fragment.Definition().SelectionSet),
	}}
	ctx.VisitedFragments[fragment.Name()] = true
	pathIndex[fragment.Name()] = 0

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.spreads) {
			delete(pathIndex, top.name)
			stack = stack[:len(stack)-1]
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
			continue
		}

		spread := top.spreads[top.next]
		top.next++
		spreadName := spread.Name.Value

		if cycleStart, onPath := pathIndex[spreadName]; onPath {
			cyclePath := path[cycleStart:]
			spreadNames := make([]string, len(cyclePath))
			for i, via := range cyclePath {
				spreadNames[i] = via.Name.Value
			}
			nodes := make([]token.Spanned, 0, len(cyclePath)+1)
			for _, via := range cyclePath {
				nodes = append(nodes, via)
			}
			nodes = append(nodes, spread)
			ctx.ReportError(
				messages.CycleErrorMessage(spreadName, spreadNames),
				graphql.LocationsOf(nodes...)...,
			)
			continue
		}

		if ctx.VisitedFragments[spreadName] {
			continue
		}
		target := ctx.FragmentInfo(spreadName)
		if target == nil {
			continue
		}

		ctx.VisitedFragments[spreadName] = true
		pathIndex[spreadName] = len(path) + 1
		path = append(path, spread)
		stack = append(stack, &frame{
			name:    spreadName,
			spreads: spreadsIn(target.Definition().SelectionSet),
		})
	}

	return validator.ContinueCheck
}

// spreadsIn collects every fragment spread nested anywhere under a selection set, in document
// order.
func spreadsIn(selectionSet *ast.SelectionSet) []*ast.FragmentSpread {
	var spreads []*ast.FragmentSpread
	sets := []*ast.SelectionSet{selectionSet}
	for len(sets) > 0 {
		var set *ast.SelectionSet
		set, sets = sets[0], sets[1:]
		if set == nil {
			continue
		}
		for _, selection := range set.Selections {
			switch selection := selection.(type) {
			case *ast.FragmentSpread:
				spreads = append(spreads, selection)
			case *ast.Field:
				if selection.SelectionSet != nil {
					sets = append(sets, selection.SelectionSet)
				}
			case *ast.InlineFragment:
				sets = append(sets, selection.SelectionSet)
			}
		}
	}
	return spreads
}
