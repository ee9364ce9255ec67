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

// Package parser builds a span-annotated syntax tree from GraphQL source text by recursive
// descent. Parsing stops at the first error; there is no recovery and no partial tree.
package parser

import (
	"fmt"
	"strconv"

	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/ast"
	"github.com/quellgo/quell/graphql/lexer"
	"github.com/quellgo/quell/graphql/token"
)

// ErrorKind classifies parse failures. Every parse failure surfaces as a *graphql.Error whose
// underlying error is an *Error carrying one of these kinds.
type ErrorKind int

// Enumeration of ErrorKind
const (
	// The parser met a token that no production allows at this position.
	UnexpectedToken ErrorKind = iota
	// The document ended in the middle of a production.
	UnexpectedEndOfFile
	// A numeric literal that the scalar representation cannot hold (e.g. Int overflow).
	ExpectedScalar
)

// Error is the structured payload behind a syntax error.
type Error struct {
	Kind  ErrorKind
	Token token.Token
}

var _ error = (*Error)(nil)

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedEndOfFile:
		return "unexpected end of file"
	case ExpectedScalar:
		return fmt.Sprintf("expected scalar value, found %s", e.Token.Description())
	}
	return fmt.Sprintf("unexpected token %s", e.Token.Description())
}

// Parse parses a complete executable document.
func Parse(source string) (*ast.Document, error) {
	p := &parser{lexer: lexer.New(source)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseDocument()
}

// ParseValue parses a standalone input value, e.g. a default value in configuration.
func ParseValue(source string) (ast.InputValue, error) {
	p := &parser{lexer: lexer.New(source)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	value, err := p.parseValue(true)
	if err != nil {
		return nil, err
	}
	if p.token.Kind != token.KindEOF {
		return nil, p.unexpected()
	}
	return value, nil
}

// ParseType parses a standalone type reference such as "[Episode!]!".
func ParseType(source string) (ast.Type, error) {
	p := &parser{lexer: lexer.New(source)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.token.Kind != token.KindEOF {
		return nil, p.unexpected()
	}
	return t, nil
}

type parser struct {
	lexer *lexer.Lexer

	// The token currently under the cursor.
	token token.Token
}

func (p *parser) advance() error {
	tok, err := p.lexer.Next()
	if err != nil {
		return err
	}
	p.token = tok
	return nil
}

// expect consumes a token of the given kind, or fails with an UnexpectedToken error.
func (p *parser) expect(kind token.Kind) (token.Token, error) {
	tok := p.token
	if tok.Kind != kind {
		return token.Token{}, p.syntaxError(
			fmt.Sprintf("Expected %s, found %s.", kind, tok.Description()))
	}
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

// skip consumes the current token if it has the given kind.
func (p *parser) skip(kind token.Kind) (bool, error) {
	if p.token.Kind != kind {
		return false, nil
	}
	return true, p.advance()
}

func (p *parser) expectKeyword(keyword string) (token.Token, error) {
	tok := p.token
	if tok.Kind != token.KindName || tok.Value != keyword {
		return token.Token{}, p.syntaxError(
			fmt.Sprintf("Expected %q, found %s.", keyword, tok.Description()))
	}
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

func (p *parser) unexpected() error {
	return p.syntaxError(fmt.Sprintf("Unexpected %s.", p.token.Description()))
}

func (p *parser) syntaxError(description string) error {
	kind := UnexpectedToken
	if p.token.Kind == token.KindEOF {
		kind = UnexpectedEndOfFile
	}
	return p.syntaxErrorOfKind(kind, description)
}

func (p *parser) syntaxErrorOfKind(kind ErrorKind, description string) error {
	err := graphql.NewSyntaxError(p.token.Span.Start, description)
	err.Err = &Error{Kind: kind, Token: p.token}
	return err
}

//===----------------------------------------------------------------------------------------====//
// Documents and definitions
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseDocument() (*ast.Document, error) {
	start := p.token.Span.Start

	var definitions []ast.Definition
	for p.token.Kind != token.KindEOF {
		definition, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, definition)
	}

	return &ast.Document{
		Span:        token.Span{Start: start, End: p.token.Span.End},
		Definitions: definitions,
	}, nil
}

func (p *parser) parseDefinition() (ast.Definition, error) {
	switch p.token.Kind {
	case token.KindLeftBrace:
		return p.parseShorthandQuery()

	case token.KindString, token.KindBlockString:
		// Descriptions never precede executable definitions. Calling the shorthand case out
		// explicitly gives a far better message than a bare unexpected-token error.
		desc := p.token
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.token.Kind == token.KindLeftBrace {
			err := graphql.NewSyntaxError(desc.Span.Start,
				"Unexpected description; descriptions are not supported on query shorthand.")
			err.Err = &Error{Kind: UnexpectedToken, Token: desc}
			return nil, err
		}
		err := graphql.NewSyntaxError(desc.Span.Start,
			fmt.Sprintf("Unexpected %s.", desc.Description()))
		err.Err = &Error{Kind: UnexpectedToken, Token: desc}
		return nil, err

	case token.KindName:
		switch p.token.Value {
		case "query", "mutation", "subscription":
			return p.parseOperation()
		case "fragment":
			return p.parseFragment()
		}
	}

	return nil, p.unexpected()
}

func (p *parser) parseShorthandQuery() (*ast.OperationDefinition, error) {
	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return &ast.OperationDefinition{
		Span:         selectionSet.Span,
		Kind:         ast.OperationQuery,
		SelectionSet: selectionSet,
		Shorthand:    true,
	}, nil
}

func (p *parser) parseOperation() (*ast.OperationDefinition, error) {
	start := p.token.Span.Start

	var kind ast.OperationKind
	switch p.token.Value {
	case "mutation":
		kind = ast.OperationMutation
	case "subscription":
		kind = ast.OperationSubscription
	default:
		kind = ast.OperationQuery
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var name *ast.Name
	if p.token.Kind == token.KindName {
		parsed, err := p.parseName()
		if err != nil {
			return nil, err
		}
		name = parsed
	}

	variableDefinitions, err := p.parseVariableDefinitions()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.OperationDefinition{
		Span:                token.Span{Start: start, End: selectionSet.Span.End},
		Kind:                kind,
		Name:                name,
		VariableDefinitions: variableDefinitions,
		Directives:          directives,
		SelectionSet:        selectionSet,
	}, nil
}

func (p *parser) parseFragment() (*ast.FragmentDefinition, error) {
	start := p.token.Span.Start
	if _, err := p.expectKeyword("fragment"); err != nil {
		return nil, err
	}

	if p.token.Kind == token.KindName && p.token.Value == "on" {
		return nil, p.unexpected()
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	typeCondition, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.FragmentDefinition{
		Span:          token.Span{Start: start, End: selectionSet.Span.End},
		Name:          name,
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
	}, nil
}

func (p *parser) parseName() (*ast.Name, error) {
	tok, err := p.expect(token.KindName)
	if err != nil {
		return nil, err
	}
	return &ast.Name{Span: tok.Span, Value: tok.Value}, nil
}

//===----------------------------------------------------------------------------------------====//
// Selections
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseSelectionSet() (*ast.SelectionSet, error) {
	open, err := p.expect(token.KindLeftBrace)
	if err != nil {
		return nil, err
	}

	var selections []ast.Selection
	for p.token.Kind != token.KindRightBrace {
		selection, err := p.parseSelection()
		if err != nil {
			return nil, err
		}
		selections = append(selections, selection)
	}
	if len(selections) == 0 {
		return nil, p.unexpected()
	}

	closing, err := p.expect(token.KindRightBrace)
	if err != nil {
		return nil, err
	}

	return &ast.SelectionSet{
		Span:       token.Span{Start: open.Span.Start, End: closing.Span.End},
		Selections: selections,
	}, nil
}

func (p *parser) parseSelection() (ast.Selection, error) {
	if p.token.Kind == token.KindSpread {
		return p.parseFragmentSelection()
	}
	return p.parseField()
}

func (p *parser) parseField() (*ast.Field, error) {
	start := p.token.Span.Start

	var alias *ast.Name
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if colon, err := p.skip(token.KindColon); err != nil {
		return nil, err
	} else if colon {
		alias = name
		name, err = p.parseName()
		if err != nil {
			return nil, err
		}
	}

	arguments, err := p.parseArguments(false)
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}

	field := &ast.Field{
		Span:       token.Span{Start: start, End: p.token.Span.Start},
		Alias:      alias,
		Name:       name,
		Arguments:  arguments,
		Directives: directives,
	}

	if p.token.Kind == token.KindLeftBrace {
		selectionSet, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		field.SelectionSet = selectionSet
		field.Span.End = selectionSet.Span.End
	}

	return field, nil
}

func (p *parser) parseFragmentSelection() (ast.Selection, error) {
	spread, err := p.expect(token.KindSpread)
	if err != nil {
		return nil, err
	}

	// "... Name" (except "on") is a fragment spread; anything else is an inline fragment.
	if p.token.Kind == token.KindName && p.token.Value != "on" {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		directives, err := p.parseDirectives(false)
		if err != nil {
			return nil, err
		}
		end := name.Span.End
		if len(directives) > 0 {
			end = directives[len(directives)-1].Span.End
		}
		return &ast.FragmentSpread{
			Span:       token.Span{Start: spread.Span.Start, End: end},
			Name:       name,
			Directives: directives,
		}, nil
	}

	var typeCondition *ast.NamedType
	if p.token.Kind == token.KindName && p.token.Value == "on" {
		if err := p.advance(); err != nil {
			return nil, err
		}
		typeCondition, err = p.parseNamedType()
		if err != nil {
			return nil, err
		}
	}

	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.InlineFragment{
		Span:          token.Span{Start: spread.Span.Start, End: selectionSet.Span.End},
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
	}, nil
}

//===----------------------------------------------------------------------------------------====//
// Arguments, directives and variable definitions
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseArguments(constant bool) ([]*ast.Argument, error) {
	if open, err := p.skip(token.KindLeftParen); err != nil || !open {
		return nil, err
	}

	var arguments []*ast.Argument
	for p.token.Kind != token.KindRightParen {
		argument, err := p.parseArgument(constant)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, argument)
	}
	if len(arguments) == 0 {
		return nil, p.unexpected()
	}

	if _, err := p.expect(token.KindRightParen); err != nil {
		return nil, err
	}
	return arguments, nil
}

func (p *parser) parseArgument(constant bool) (*ast.Argument, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}
	value, err := p.parseValue(constant)
	if err != nil {
		return nil, err
	}
	return &ast.Argument{
		Span:  token.Span{Start: name.Span.Start, End: value.SourceSpan().End},
		Name:  name,
		Value: value,
	}, nil
}

func (p *parser) parseDirectives(constant bool) ([]*ast.Directive, error) {
	var directives []*ast.Directive
	for p.token.Kind == token.KindAt {
		at := p.token
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		arguments, err := p.parseArguments(constant)
		if err != nil {
			return nil, err
		}
		end := name.Span.End
		if len(arguments) > 0 {
			end = arguments[len(arguments)-1].Span.End
		}
		directives = append(directives, &ast.Directive{
			Span:      token.Span{Start: at.Span.Start, End: end},
			Name:      name,
			Arguments: arguments,
		})
	}
	return directives, nil
}

func (p *parser) parseVariableDefinitions() ([]*ast.VariableDefinition, error) {
	if open, err := p.skip(token.KindLeftParen); err != nil || !open {
		return nil, err
	}

	var definitions []*ast.VariableDefinition
	for p.token.Kind != token.KindRightParen {
		definition, err := p.parseVariableDefinition()
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, definition)
	}
	if len(definitions) == 0 {
		return nil, p.unexpected()
	}

	if _, err := p.expect(token.KindRightParen); err != nil {
		return nil, err
	}
	return definitions, nil
}

func (p *parser) parseVariableDefinition() (*ast.VariableDefinition, error) {
	dollar, err := p.expect(token.KindDollar)
	if err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}
	varType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	definition := &ast.VariableDefinition{
		Span:     token.Span{Start: dollar.Span.Start, End: varType.SourceSpan().End},
		Variable: name,
		Type:     varType,
	}

	if equals, err := p.skip(token.KindEquals); err != nil {
		return nil, err
	} else if equals {
		defaultValue, err := p.parseValue(true)
		if err != nil {
			return nil, err
		}
		definition.DefaultValue = defaultValue
		definition.Span.End = defaultValue.SourceSpan().End
	}

	return definition, nil
}

//===----------------------------------------------------------------------------------------====//
// Types
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseType() (ast.Type, error) {
	if p.token.Kind == token.KindLeftBracket {
		openSpan := p.token.Span
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		closing, err := p.expect(token.KindRightBracket)
		if err != nil {
			return nil, err
		}
		listType := &ast.ListType{
			Span:  token.Span{Start: openSpan.Start, End: closing.Span.End},
			Inner: inner,
		}
		if bang, err := p.skip(token.KindBang); err != nil {
			return nil, err
		} else if bang {
			listType.NonNull = true
		}
		return listType, nil
	}

	return p.parseNamedType()
}

func (p *parser) parseNamedType() (*ast.NamedType, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	namedType := &ast.NamedType{Span: name.Span, Name: name.Value}
	if bang, err := p.skip(token.KindBang); err != nil {
		return nil, err
	} else if bang {
		namedType.NonNull = true
	}
	return namedType, nil
}

//===----------------------------------------------------------------------------------------====//
// Values
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseValue(constant bool) (ast.InputValue, error) {
	tok := p.token
	switch tok.Kind {
	case token.KindDollar:
		if constant {
			return nil, p.unexpected()
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		return ast.Variable{
			Span: token.Span{Start: tok.Span.Start, End: name.Span.End},
			Name: name.Value,
		}, nil

	case token.KindInt:
		value, err := strconv.ParseInt(tok.Value, 10, 32)
		if err != nil {
			return nil, p.syntaxErrorOfKind(ExpectedScalar,
				fmt.Sprintf("Int cannot represent non 32-bit signed integer value: %s.", tok.Value))
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.ScalarValue{Span: tok.Span, Value: graphql.IntValue(value)}, nil

	case token.KindFloat:
		value, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, p.syntaxErrorOfKind(ExpectedScalar,
				fmt.Sprintf("Float cannot represent non numeric value: %s.", tok.Value))
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.ScalarValue{Span: tok.Span, Value: graphql.FloatValue(value)}, nil

	case token.KindString, token.KindBlockString:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.ScalarValue{Span: tok.Span, Value: graphql.StringValue(tok.Value)}, nil

	case token.KindName:
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch tok.Value {
		case "true":
			return ast.ScalarValue{Span: tok.Span, Value: graphql.BooleanValue(true)}, nil
		case "false":
			return ast.ScalarValue{Span: tok.Span, Value: graphql.BooleanValue(false)}, nil
		case "null":
			return ast.NullValue{Span: tok.Span}, nil
		}
		return ast.EnumValue{Span: tok.Span, Value: tok.Value}, nil

	case token.KindLeftBracket:
		return p.parseListValue(constant)

	case token.KindLeftBrace:
		return p.parseObjectValue(constant)
	}

	return nil, p.unexpected()
}

func (p *parser) parseListValue(constant bool) (ast.InputValue, error) {
	open, err := p.expect(token.KindLeftBracket)
	if err != nil {
		return nil, err
	}

	var values []ast.InputValue
	for p.token.Kind != token.KindRightBracket {
		value, err := p.parseValue(constant)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	closing, err := p.expect(token.KindRightBracket)
	if err != nil {
		return nil, err
	}

	return ast.ListValue{
		Span:   token.Span{Start: open.Span.Start, End: closing.Span.End},
		Values: values,
	}, nil
}

func (p *parser) parseObjectValue(constant bool) (ast.InputValue, error) {
	open, err := p.expect(token.KindLeftBrace)
	if err != nil {
		return nil, err
	}

	var fields []*ast.ObjectField
	for p.token.Kind != token.KindRightBrace {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.KindColon); err != nil {
			return nil, err
		}
		value, err := p.parseValue(constant)
		if err != nil {
			return nil, err
		}
		fields = append(fields, &ast.ObjectField{
			Span:  token.Span{Start: name.Span.Start, End: value.SourceSpan().End},
			Name:  name,
			Value: value,
		})
	}

	closing, err := p.expect(token.KindRightBrace)
	if err != nil {
		return nil, err
	}

	return ast.ObjectValue{
		Span:   token.Span{Start: open.Span.Start, End: closing.Span.End},
		Fields: fields,
	}, nil
}
