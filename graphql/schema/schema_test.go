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

package schema_test

import (
	"github.com/quellgo/quell/graphql/ast"
	"github.com/quellgo/quell/graphql/schema"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// newPetSchema builds the fixture used across this suite: a Pet interface implemented by Dog and
// Cat, a CatOrDog union, two enums and a self-referential Node type.
func newPetSchema() *schema.Schema {
	pet := &schema.Interface{
		Name: "Pet",
		Fields: []schema.Field{
			{Name: "name", Type: schema.TypeOf(schema.String)},
		},
	}

	dog := &schema.Object{
		Name:       "Dog",
		Interfaces: []*schema.Interface{pet},
		Fields: []schema.Field{
			{Name: "name", Type: schema.TypeOf(schema.String)},
			{Name: "nickname", Type: schema.TypeOf(schema.String)},
		},
	}

	cat := &schema.Object{
		Name:       "Cat",
		Interfaces: []*schema.Interface{pet},
		Fields: []schema.Field{
			{Name: "name", Type: schema.TypeOf(schema.String)},
			{Name: "meows", Type: schema.TypeOf(schema.Boolean)},
		},
	}

	catOrDog := &schema.Union{
		Name:    "CatOrDog",
		Members: []*schema.Object{cat, dog},
	}

	color := &schema.Enum{
		Name: "Color",
		Values: []schema.EnumValue{
			{Name: "RED", Value: 0},
			{Name: "GREEN", Value: 1},
			{Name: "BLUE", Value: 2},
		},
	}

	command := &schema.Enum{
		Name: "Command",
		Values: []schema.EnumValue{
			{Name: "SIT"},
			{Name: "DOWN"},
		},
	}

	// Node refers to itself; the field list is attached after the descriptor exists.
	node := &schema.Object{Name: "Node"}
	node.Fields = []schema.Field{
		{Name: "id", Type: schema.TypeOf(schema.ID).NonNull()},
		{Name: "next", Type: schema.TypeOf(node)},
	}

	query := &schema.Object{
		Name: "Query",
		Fields: []schema.Field{
			{Name: "dog", Type: schema.TypeOf(dog)},
			{Name: "cat", Type: schema.TypeOf(cat)},
			{Name: "pet", Type: schema.TypeOf(pet)},
			{Name: "catOrDog", Type: schema.TypeOf(catOrDog)},
			{Name: "color", Type: schema.TypeOf(color)},
			{Name: "command", Type: schema.TypeOf(command)},
			{Name: "node", Type: schema.TypeOf(node)},
		},
	}

	s, err := schema.New(schema.Config{
		Query: query,
		Directives: []*schema.Directive{
			{Name: "onQuery", Locations: []schema.DirectiveLocation{schema.LocationQuery}},
		},
	})
	Expect(err).ShouldNot(HaveOccurred())
	return s
}

var _ = Describe("New", func() {
	It("requires a query root", func() {
		_, err := schema.New(schema.Config{})
		Expect(err).Should(MatchError("schema must provide a query root type"))
	})

	It("registers every type reachable from the roots", func() {
		s := newPetSchema()
		for _, name := range []string{"Query", "Dog", "Cat", "Pet", "CatOrDog", "Color", "Command", "Node"} {
			Expect(s.TypeByName(name)).ShouldNot(BeNil(), name)
		}

		// Builtin scalars register on first reference.
		Expect(s.TypeByName("String").Kind()).Should(Equal(schema.KindScalar))
		Expect(s.TypeByName("ID").Kind()).Should(Equal(schema.KindScalar))
	})

	It("resolves self-referential types through the placeholder protocol", func() {
		s := newPetSchema()

		object, ok := s.TypeByName("Node").(*schema.ObjectMeta)
		Expect(ok).Should(BeTrue())

		next := object.Field("next")
		Expect(next).ShouldNot(BeNil())
		Expect(next.Type.String()).Should(Equal("Node"))
		Expect(s.NamedTypeOf(next.Type)).Should(Equal(schema.MetaType(object)))
	})

	It("resolves mutually recursive types", func() {
		person := &schema.Object{Name: "Person"}
		company := &schema.Object{Name: "Company"}
		person.Fields = []schema.Field{
			{Name: "name", Type: schema.TypeOf(schema.String)},
			{Name: "employer", Type: schema.TypeOf(company)},
		}
		company.Fields = []schema.Field{
			{Name: "name", Type: schema.TypeOf(schema.String)},
			{Name: "employees", Type: schema.ListOf(schema.TypeOf(person))},
		}
		query := &schema.Object{
			Name:   "Query",
			Fields: []schema.Field{{Name: "person", Type: schema.TypeOf(person)}},
		}

		s, err := schema.New(schema.Config{Query: query})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(s.TypeByName("Person").Kind()).Should(Equal(schema.KindObject))
		Expect(s.TypeByName("Company").Kind()).Should(Equal(schema.KindObject))

		employees := s.TypeByName("Company").(*schema.ObjectMeta).Field("employees")
		Expect(employees.Type.String()).Should(Equal("[Person]"))
	})

	It("rejects two distinct types sharing a name", func() {
		first := &schema.Object{
			Name:   "Dupe",
			Fields: []schema.Field{{Name: "a", Type: schema.TypeOf(schema.String)}},
		}
		second := &schema.Object{
			Name:   "Dupe",
			Fields: []schema.Field{{Name: "b", Type: schema.TypeOf(schema.String)}},
		}
		query := &schema.Object{
			Name: "Query",
			Fields: []schema.Field{
				{Name: "first", Type: schema.TypeOf(first)},
				{Name: "second", Type: schema.TypeOf(second)},
			},
		}

		_, err := schema.New(schema.Config{Query: query})
		Expect(err).Should(MatchError(
			`schema must contain unique named types but contains multiple types named "Dupe"`))
	})

	It("rejects an object missing a declared interface field", func() {
		pet := &schema.Interface{
			Name:   "Pet",
			Fields: []schema.Field{{Name: "name", Type: schema.TypeOf(schema.String)}},
		}
		dog := &schema.Object{
			Name:       "Dog",
			Interfaces: []*schema.Interface{pet},
			Fields:     []schema.Field{{Name: "nickname", Type: schema.TypeOf(schema.String)}},
		}
		query := &schema.Object{
			Name:   "Query",
			Fields: []schema.Field{{Name: "dog", Type: schema.TypeOf(dog)}},
		}

		_, err := schema.New(schema.Config{Query: query})
		Expect(err).Should(MatchError("interface field Pet.name expected but Dog does not provide it"))
	})

	It("rejects an object without fields", func() {
		query := &schema.Object{Name: "Query"}
		_, err := schema.New(schema.Config{Query: query})
		Expect(err).Should(MatchError(`type "Query" must define one or more fields`))
	})

	It("rejects a union without members", func() {
		empty := &schema.Union{Name: "Mystery"}
		query := &schema.Object{
			Name:   "Query",
			Fields: []schema.Field{{Name: "mystery", Type: schema.TypeOf(empty)}},
		}
		_, err := schema.New(schema.Config{Query: query})
		Expect(err).Should(MatchError(`union "Mystery" must define one or more member types`))
	})

	It("computes interface possible types from the implementing objects", func() {
		s := newPetSchema()

		pet := s.TypeByName("Pet").(*schema.InterfaceMeta)
		Expect(pet.PossibleTypes).Should(ConsistOf("Dog", "Cat"))

		union := s.TypeByName("CatOrDog").(*schema.UnionMeta)
		Expect(union.PossibleTypes).Should(Equal([]string{"Cat", "Dog"}))
	})
})

var _ = Describe("FieldOf", func() {
	var s *schema.Schema

	BeforeEach(func() {
		s = newPetSchema()
	})

	It("finds declared fields on objects and interfaces", func() {
		dog := s.TypeByName("Dog").(*schema.ObjectMeta)
		Expect(s.FieldOf(dog, "nickname")).Should(Equal(dog.Field("nickname")))

		pet := s.TypeByName("Pet").(*schema.InterfaceMeta)
		Expect(s.FieldOf(pet, "name")).Should(Equal(pet.Field("name")))

		Expect(s.FieldOf(dog, "unknown")).Should(BeNil())
	})

	It("offers __typename on every composite type", func() {
		for _, name := range []string{"Dog", "Pet", "CatOrDog"} {
			field := s.FieldOf(s.TypeByName(name), "__typename")
			Expect(field).ShouldNot(BeNil(), name)
			Expect(schema.IsMetaField(field)).Should(BeTrue())
			Expect(field.Type.String()).Should(Equal("String!"))
		}

		Expect(s.FieldOf(s.TypeByName("Color"), "__typename")).Should(BeNil())
	})

	It("offers __schema and __type on the query root only", func() {
		query := s.Query()
		Expect(s.FieldOf(query, "__schema")).ShouldNot(BeNil())
		Expect(s.FieldOf(query, "__type")).ShouldNot(BeNil())
		Expect(schema.IsMetaField(s.FieldOf(query, "__schema"))).Should(BeTrue())

		dog := s.TypeByName("Dog")
		Expect(s.FieldOf(dog, "__schema")).Should(BeNil())
		Expect(s.FieldOf(dog, "__type")).Should(BeNil())
	})
})

var _ = Describe("Directives", func() {
	It("declares the builtin directives", func() {
		s := newPetSchema()
		for _, name := range []string{"skip", "include", "deprecated", "specifiedBy"} {
			Expect(s.Directive(name)).ShouldNot(BeNil(), name)
		}

		skip := s.Directive("skip")
		ifArg := skip.Argument("if")
		Expect(ifArg).ShouldNot(BeNil())
		Expect(ifArg.Type.String()).Should(Equal("Boolean!"))
		Expect(skip.Locations).Should(ContainElement(schema.LocationField))
	})

	It("registers configured directives after the builtins", func() {
		s := newPetSchema()
		Expect(s.Directive("onQuery")).ShouldNot(BeNil())

		directives := s.Registry().Directives()
		names := make([]string, len(directives))
		for i, directive := range directives {
			names[i] = directive.Name
		}
		Expect(names).Should(Equal([]string{"skip", "include", "deprecated", "specifiedBy", "onQuery"}))
	})

	It("rejects a directive clashing with a builtin", func() {
		query := &schema.Object{
			Name:   "Query",
			Fields: []schema.Field{{Name: "a", Type: schema.TypeOf(schema.String)}},
		}
		_, err := schema.New(schema.Config{
			Query: query,
			Directives: []*schema.Directive{
				{Name: "skip", Locations: []schema.DirectiveLocation{schema.LocationField}},
			},
		})
		Expect(err).Should(MatchError(`schema contains multiple directives named "skip"`))
	})
})

var _ = Describe("IsSubtype", func() {
	var s *schema.Schema

	named := func(name string, nonNull bool) ast.Type {
		return &ast.NamedType{Name: name, NonNull: nonNull}
	}
	list := func(inner ast.Type, nonNull bool) ast.Type {
		return &ast.ListType{Inner: inner, NonNull: nonNull}
	}

	BeforeEach(func() {
		s = newPetSchema()
	})

	It("treats every type as a subtype of itself", func() {
		Expect(s.IsSubtype(named("Dog", false), named("Dog", false))).Should(BeTrue())
		Expect(s.IsSubtype(list(named("Dog", false), false), list(named("Dog", false), false))).Should(BeTrue())
	})

	It("treats objects as subtypes of their abstract types", func() {
		Expect(s.IsSubtype(named("Dog", false), named("Pet", false))).Should(BeTrue())
		Expect(s.IsSubtype(named("Dog", false), named("CatOrDog", false))).Should(BeTrue())
		Expect(s.IsSubtype(named("Pet", false), named("Dog", false))).Should(BeFalse())
		Expect(s.IsSubtype(named("Node", false), named("Pet", false))).Should(BeFalse())
	})

	It("lets non-null stand in for nullable but not the reverse", func() {
		Expect(s.IsSubtype(named("Dog", true), named("Dog", false))).Should(BeTrue())
		Expect(s.IsSubtype(named("Dog", false), named("Dog", true))).Should(BeFalse())
	})

	It("is covariant in list element types", func() {
		Expect(s.IsSubtype(list(named("Dog", false), false), list(named("Pet", false), false))).Should(BeTrue())
		Expect(s.IsSubtype(list(named("Dog", true), true), list(named("Dog", false), false))).Should(BeTrue())
		Expect(s.IsSubtype(named("Dog", false), list(named("Pet", false), false))).Should(BeFalse())
		Expect(s.IsSubtype(list(named("Dog", false), false), named("Pet", false))).Should(BeFalse())
	})
})

var _ = Describe("TypesOverlap", func() {
	var s *schema.Schema

	BeforeEach(func() {
		s = newPetSchema()
	})

	It("overlaps types sharing a possible concrete type", func() {
		dog := s.TypeByName("Dog")
		cat := s.TypeByName("Cat")
		pet := s.TypeByName("Pet")
		union := s.TypeByName("CatOrDog")
		node := s.TypeByName("Node")

		Expect(s.TypesOverlap(dog, dog)).Should(BeTrue())
		Expect(s.TypesOverlap(dog, pet)).Should(BeTrue())
		Expect(s.TypesOverlap(pet, union)).Should(BeTrue())
		Expect(s.TypesOverlap(dog, cat)).Should(BeFalse())
		Expect(s.TypesOverlap(node, pet)).Should(BeFalse())
	})
})

var _ = Describe("EnumMeta", func() {
	var s *schema.Schema

	BeforeEach(func() {
		s = newPetSchema()
	})

	It("looks up values by name", func() {
		color := s.TypeByName("Color").(*schema.EnumMeta)
		Expect(color.Value("GREEN").Value).Should(Equal(1))
		Expect(color.Value("MAUVE")).Should(BeNil())
	})

	It("maps internal values back to declared values", func() {
		color := s.TypeByName("Color").(*schema.EnumMeta)
		Expect(color.ValueFor(2).Name).Should(Equal("BLUE"))
		Expect(color.ValueFor(7)).Should(BeNil())
	})

	It("defaults the internal value to the name", func() {
		command := s.TypeByName("Command").(*schema.EnumMeta)
		Expect(command.Value("SIT").Value).Should(Equal("SIT"))
		Expect(command.ValueFor("DOWN").Name).Should(Equal("DOWN"))
	})
})

var _ = Describe("IntrospectType", func() {
	It("wraps registered types and rejects unknown names", func() {
		s := newPetSchema()
		Expect(s.IntrospectType("Dog")).ShouldNot(BeNil())
		Expect(s.IntrospectType("Missing")).Should(BeNil())
	})
})
