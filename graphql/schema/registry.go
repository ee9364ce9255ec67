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
	"fmt"

	"github.com/quellgo/quell/graphql/ast"
)

// Registry is the name-to-MetaType map built once per schema. It is mutated only during New (the
// placeholder insert and replace) and is read-only and freely shareable afterwards; no locking is
// needed because construction happens on one goroutine before any reader exists.
type Registry struct {
	types       map[string]MetaType
	order       []string
	descriptors map[string]Descriptor

	directives     map[string]*DirectiveMeta
	directiveOrder []string
}

func newRegistry() *Registry {
	return &Registry{
		types:       make(map[string]MetaType),
		descriptors: make(map[string]Descriptor),
		directives:  make(map[string]*DirectiveMeta),
	}
}

// Lookup finds a type by name. During schema construction it may return a *PlaceholderMeta; on a
// finished registry it returns the resolved meta type or nil.
func (r *Registry) Lookup(name string) MetaType {
	return r.types[name]
}

// TypeNames returns all registered names in registration order.
func (r *Registry) TypeNames() []string {
	return r.order
}

// Directive finds a declared directive by name (without "@"). Returns nil if absent.
func (r *Registry) Directive(name string) *DirectiveMeta {
	return r.directives[name]
}

// Directives returns all declared directives in declaration order.
func (r *Registry) Directives() []*DirectiveMeta {
	directives := make([]*DirectiveMeta, len(r.directiveOrder))
	for i, name := range r.directiveOrder {
		directives[i] = r.directives[name]
	}
	return directives
}

// addType registers a descriptor under its type name, invoking its meta-building callback.
//
// The placeholder protocol: before the callback runs, a *PlaceholderMeta is inserted under the
// name. Any lookup the callback performs on that name (a self-reference, or mutual recursion
// through another descriptor) sees the placeholder and terminates instead of recursing. When the
// callback returns, the placeholder is replaced in place by the resolved meta type, so a finished
// registry holds at most one non-placeholder entry per name.
func (r *Registry) addType(d Descriptor) error {
	name := d.TypeName()
	if name == "" {
		return fmt.Errorf("type descriptor %T has no name", d)
	}

	if prev, registered := r.descriptors[name]; registered {
		if prev != d {
			return fmt.Errorf(
				"schema must contain unique named types but contains multiple types named %q", name)
		}
		return nil
	}

	r.descriptors[name] = d
	r.types[name] = &PlaceholderMeta{Name: name}
	r.order = append(r.order, name)

	meta, err := d.buildMeta(r)
	if err != nil {
		return err
	}
	r.types[name] = meta
	return nil
}

// refType ensures the descriptor is registered and returns a named reference to it. This is what
// TypeRef resolution calls for every named type a field, argument or member reaches.
func (r *Registry) refType(d Descriptor) (*ast.NamedType, error) {
	if err := r.addType(d); err != nil {
		return nil, err
	}
	return &ast.NamedType{Name: d.TypeName()}, nil
}

func (r *Registry) addDirective(d *Directive) error {
	if d.Name == "" {
		return fmt.Errorf("directive descriptor has no name")
	}
	if _, exists := r.directives[d.Name]; exists {
		return fmt.Errorf("schema contains multiple directives named %q", d.Name)
	}

	args, err := buildArguments(r, d.Args)
	if err != nil {
		return err
	}
	r.directives[d.Name] = &DirectiveMeta{
		Name:        d.Name,
		Description: d.Description,
		Locations:   d.Locations,
		Args:        args,
	}
	r.directiveOrder = append(r.directiveOrder, d.Name)
	return nil
}
