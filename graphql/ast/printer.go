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

import (
	"strings"
)

// Print re-serializes a document to GraphQL source text using two-space indentation. Parsing the
// output yields a tree that is EqualIgnoringSpans-equal to the input.
func Print(doc *Document) string {
	var p printer
	for i, definition := range doc.Definitions {
		if i > 0 {
			p.WriteString("\n")
		}
		switch definition := definition.(type) {
		case *OperationDefinition:
			p.printOperation(definition)
		case *FragmentDefinition:
			p.printFragment(definition)
		}
	}
	return p.String()
}

type printer struct {
	strings.Builder
	indent int
}

func (p *printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.WriteString("  ")
	}
}

func (p *printer) printOperation(op *OperationDefinition) {
	if op.Shorthand {
		p.printSelectionSet(op.SelectionSet)
		p.WriteString("\n")
		return
	}

	p.WriteString(op.Kind.String())
	if op.Name != nil {
		p.WriteString(" ")
		p.WriteString(op.Name.Value)
	}

	if len(op.VariableDefinitions) > 0 {
		p.WriteString("(")
		for i, def := range op.VariableDefinitions {
			if i > 0 {
				p.WriteString(", ")
			}
			p.WriteString("$")
			p.WriteString(def.Variable.Value)
			p.WriteString(": ")
			p.WriteString(def.Type.String())
			if def.DefaultValue != nil {
				p.WriteString(" = ")
				p.WriteString(def.DefaultValue.String())
			}
		}
		p.WriteString(")")
	}

	p.printDirectives(op.Directives)
	p.WriteString(" ")
	p.printSelectionSet(op.SelectionSet)
	p.WriteString("\n")
}

func (p *printer) printFragment(fragment *FragmentDefinition) {
	p.WriteString("fragment ")
	p.WriteString(fragment.Name.Value)
	p.WriteString(" on ")
	p.WriteString(fragment.TypeCondition.Name)
	p.printDirectives(fragment.Directives)
	p.WriteString(" ")
	p.printSelectionSet(fragment.SelectionSet)
	p.WriteString("\n")
}

func (p *printer) printSelectionSet(selectionSet *SelectionSet) {
	if selectionSet == nil || len(selectionSet.Selections) == 0 {
		p.WriteString("{}")
		return
	}

	p.WriteString("{\n")
	p.indent++
	for _, selection := range selectionSet.Selections {
		p.writeIndent()
		switch selection := selection.(type) {
		case *Field:
			p.printField(selection)
		case *FragmentSpread:
			p.WriteString("...")
			p.WriteString(selection.Name.Value)
			p.printDirectives(selection.Directives)
		case *InlineFragment:
			p.WriteString("...")
			if selection.TypeCondition != nil {
				p.WriteString(" on ")
				p.WriteString(selection.TypeCondition.Name)
			}
			p.printDirectives(selection.Directives)
			p.WriteString(" ")
			p.printSelectionSet(selection.SelectionSet)
		}
		p.WriteString("\n")
	}
	p.indent--
	p.writeIndent()
	p.WriteString("}")
}

func (p *printer) printField(field *Field) {
	if field.Alias != nil {
		p.WriteString(field.Alias.Value)
		p.WriteString(": ")
	}
	p.WriteString(field.Name.Value)

	if len(field.Arguments) > 0 {
		p.WriteString("(")
		for i, argument := range field.Arguments {
			if i > 0 {
				p.WriteString(", ")
			}
			p.WriteString(argument.Name.Value)
			p.WriteString(": ")
			p.WriteString(argument.Value.String())
		}
		p.WriteString(")")
	}

	p.printDirectives(field.Directives)

	if field.SelectionSet != nil {
		p.WriteString(" ")
		p.printSelectionSet(field.SelectionSet)
	}
}

func (p *printer) printDirectives(directives []*Directive) {
	for _, directive := range directives {
		p.WriteString(" @")
		p.WriteString(directive.Name.Value)
		if len(directive.Arguments) > 0 {
			p.WriteString("(")
			for i, argument := range directive.Arguments {
				if i > 0 {
					p.WriteString(", ")
				}
				p.WriteString(argument.Name.Value)
				p.WriteString(": ")
				p.WriteString(argument.Value.String())
			}
			p.WriteString(")")
		}
	}
}
