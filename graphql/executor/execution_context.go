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
	"context"
	"sync"

	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/ast"
	"github.com/quellgo/quell/graphql/schema"
)

// executionContext is the per-request state shared by every resolving field. The mutex guards the
// error list and the result tree's null propagation; everything else is read-only after
// construction.
type executionContext struct {
	ctx       context.Context
	schema    *schema.Schema
	vars      ast.Variables
	serial    bool
	fragments map[string]*ast.FragmentDefinition

	mu   sync.Mutex
	errs graphql.Errors

	// sem bounds concurrently running resolvers; nil means unbounded.
	sem chan struct{}
}

func newExecutionContext(
	ctx context.Context,
	s *schema.Schema,
	document *ast.Document,
	vars ast.Variables,
	serial bool,
	opts ...Option) *executionContext {

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	fragments := map[string]*ast.FragmentDefinition{}
	for _, fragment := range document.Fragments() {
		if _, exists := fragments[fragment.Name.Value]; !exists {
			fragments[fragment.Name.Value] = fragment
		}
	}

	ec := &executionContext{
		ctx:       ctx,
		schema:    s,
		vars:      vars,
		serial:    serial,
		fragments: fragments,
	}
	if o.maxConcurrency > 0 {
		ec.sem = make(chan struct{}, o.maxConcurrency)
	}
	return ec
}

func (ec *executionContext) appendError(err *graphql.Error) {
	ec.mu.Lock()
	ec.errs.Append(err)
	ec.mu.Unlock()
}

// resultNode links one slot of the result tree to its parent so a field error can null out the
// nearest nullable ancestor.
type resultNode struct {
	parent  *resultNode
	nonNull bool
	value   *graphql.Value
}

// fail nulls this node and, while the nulled node is non-null, keeps bubbling up to its parent.
// Reaching a non-null root leaves the root null; the caller surfaces that as a nil data tree.
func (node *resultNode) fail(ec *executionContext) {
	ec.mu.Lock()
	defer ec.mu.Unlock()

	for {
		node.value.SetNull()
		if !node.nonNull || node.parent == nil {
			return
		}
		node = node.parent
	}
}
