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

// Config collects everything a schema is built from. Query is required; the other roots and the
// extra type and directive lists are optional.
type Config struct {
	Query        *Object
	Mutation     *Object
	Subscription *Object

	// Types forces registration of types unreachable from the roots, e.g. an object that only
	// appears behind an interface.
	Types []Descriptor

	// Directives declares additional executable directives beyond the built-in @skip, @include,
	// @deprecated and @specifiedBy.
	Directives []*Directive
}

// Schema is an immutable, validated type registry together with its operation roots. A Schema is
// safe for concurrent use by any number of requests.
type Schema struct {
	registry *Registry

	query        *ObjectMeta
	mutation     *ObjectMeta
	subscription *ObjectMeta
}

// New builds a Schema by recursively registering every type reachable from the config. Type
// references between descriptors may form cycles of any shape; the registry's placeholder protocol
// resolves them without forward declarations.
func New(config Config) (*Schema, error) {
	if config.Query == nil {
		return nil, fmt.Errorf("schema must provide a query root type")
	}

	r := newRegistry()

	for _, d := range builtinDirectives {
		if err := r.addDirective(d); err != nil {
			return nil, err
		}
	}
	for _, d := range config.Directives {
		if err := r.addDirective(d); err != nil {
			return nil, err
		}
	}

	roots := []*Object{config.Query, config.Mutation, config.Subscription}
	for _, root := range roots {
		if root == nil {
			continue
		}
		if err := r.addType(root); err != nil {
			return nil, err
		}
	}
	for _, d := range config.Types {
		if err := r.addType(d); err != nil {
			return nil, err
		}
	}
	if err := registerIntrospectionTypes(r); err != nil {
		return nil, err
	}

	schema := &Schema{registry: r}
	schema.query = r.types[config.Query.Name].(*ObjectMeta)
	if config.Mutation != nil {
		schema.mutation = r.types[config.Mutation.Name].(*ObjectMeta)
	}
	if config.Subscription != nil {
		schema.subscription = r.types[config.Subscription.Name].(*ObjectMeta)
	}

	if err := schema.finalize(); err != nil {
		return nil, err
	}
	return schema, nil
}

// finalize runs once after registration: it checks that no placeholder survived and computes every
// interface's possible-type set from the objects that declare it.
func (schema *Schema) finalize() error {
	r := schema.registry

	for _, name := range r.order {
		if _, placeholder := r.types[name].(*PlaceholderMeta); placeholder {
			return fmt.Errorf("type %q was never resolved", name)
		}
	}

	for _, name := range r.order {
		object, ok := r.types[name].(*ObjectMeta)
		if !ok {
			continue
		}
		for _, ifaceName := range object.Interfaces {
			iface, ok := r.types[ifaceName].(*InterfaceMeta)
			if !ok {
				return fmt.Errorf(
					"type %q declares %q as an interface, but %q is not an interface type",
					object.Name, ifaceName, ifaceName)
			}
			for _, ifaceField := range iface.Fields {
				if object.Field(ifaceField.Name) == nil {
					return fmt.Errorf(
						"interface field %s.%s expected but %s does not provide it",
						iface.Name, ifaceField.Name, object.Name)
				}
			}
			iface.PossibleTypes = append(iface.PossibleTypes, object.Name)
		}
	}
	return nil
}

// Registry exposes the schema's type registry.
func (schema *Schema) Registry() *Registry { return schema.registry }

// Query returns the query root type.
func (schema *Schema) Query() *ObjectMeta { return schema.query }

// Mutation returns the mutation root type, or nil.
func (schema *Schema) Mutation() *ObjectMeta { return schema.mutation }

// Subscription returns the subscription root type, or nil.
func (schema *Schema) Subscription() *ObjectMeta { return schema.subscription }

// RootType returns the root object type for an operation kind, or nil when the schema does not
// support the kind.
func (schema *Schema) RootType(kind ast.OperationKind) *ObjectMeta {
	switch kind {
	case ast.OperationMutation:
		return schema.mutation
	case ast.OperationSubscription:
		return schema.subscription
	}
	return schema.query
}

// TypeByName finds a registered type by name. Returns nil if absent.
func (schema *Schema) TypeByName(name string) MetaType {
	return schema.registry.Lookup(name)
}

// NamedTypeOf resolves a syntactic type reference down to its underlying registered type. Returns
// nil when the name is not registered.
func (schema *Schema) NamedTypeOf(t ast.Type) MetaType {
	named := ast.NamedTypeOf(t)
	if named == nil {
		return nil
	}
	return schema.registry.Lookup(named.Name)
}

// Directive finds a declared directive by name. Returns nil if absent.
func (schema *Schema) Directive(name string) *DirectiveMeta {
	return schema.registry.Directive(name)
}

// PossibleTypes returns the concrete object type names a composite type can resolve to: the type
// itself for an object, the computed implementer set for an interface, the member set for a union.
func (schema *Schema) PossibleTypes(m MetaType) []string {
	switch m := m.(type) {
	case *ObjectMeta:
		return []string{m.Name}
	case *InterfaceMeta:
		return m.PossibleTypes
	case *UnionMeta:
		return m.PossibleTypes
	}
	return nil
}
