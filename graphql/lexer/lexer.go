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

// Package lexer turns GraphQL source text into a stream of tokens with exact source positions.
package lexer

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/quellgo/quell/graphql"
	"github.com/quellgo/quell/graphql/token"
)

// Lexer is a stateful token stream over one source document. Every call to Next returns the next
// non-ignored token; once the source is exhausted it keeps returning the EOF token.
type Lexer struct {
	source string

	// pos is the position of the next unconsumed byte.
	pos token.SourcePosition
}

// New initializes a Lexer for the given source text.
func New(source string) *Lexer {
	l := &Lexer{
		source: source,
		pos:    token.SourcePosition{Index: 0, Line: 1, Col: 1},
	}
	// Skip a UTF-8 BOM at the very beginning of the source.
	if len(source) >= 3 && source[0] == '\xEF' && source[1] == '\xBB' && source[2] == '\xBF' {
		l.pos.Index = 3
		l.pos.Col = 4
	}
	return l
}

// Next returns the next non-ignored token. The returned error, if any, is a syntax error carrying
// the offending position.
func (l *Lexer) Next() (token.Token, error) {
	l.skipIgnored()

	start := l.pos
	if l.atEOF() {
		return token.Token{Kind: token.KindEOF, Span: token.Span{Start: start, End: start}}, nil
	}

	char := l.peek()
	switch char {
	case '!':
		return l.punctuator(token.KindBang), nil
	case '$':
		return l.punctuator(token.KindDollar), nil
	case '&':
		return l.punctuator(token.KindAmp), nil
	case '(':
		return l.punctuator(token.KindLeftParen), nil
	case ')':
		return l.punctuator(token.KindRightParen), nil
	case '.':
		// The only valid token starting with a dot is the spread ("...").
		l.consume()
		if l.peek() != '.' {
			return token.Token{}, l.unexpectedCharacterError(start)
		}
		l.consume()
		if l.peek() != '.' {
			return token.Token{}, l.unexpectedCharacterError(start)
		}
		l.consume()
		return l.makeToken(token.KindSpread, start, ""), nil
	case ':':
		return l.punctuator(token.KindColon), nil
	case '=':
		return l.punctuator(token.KindEquals), nil
	case '@':
		return l.punctuator(token.KindAt), nil
	case '[':
		return l.punctuator(token.KindLeftBracket), nil
	case ']':
		return l.punctuator(token.KindRightBracket), nil
	case '{':
		return l.punctuator(token.KindLeftBrace), nil
	case '|':
		return l.punctuator(token.KindPipe), nil
	case '}':
		return l.punctuator(token.KindRightBrace), nil
	case '"':
		if l.remaining() >= 3 && l.source[l.pos.Index:l.pos.Index+3] == `"""` {
			return l.lexBlockString()
		}
		return l.lexString()
	}

	if isNameStart(char) {
		return l.lexName(), nil
	}
	if char == '-' || isDigit(char) {
		return l.lexNumber()
	}

	return token.Token{}, l.unexpectedCharacterError(start)
}

//===----------------------------------------------------------------------------------------====//
// Low-level scanning
//===----------------------------------------------------------------------------------------====//

func (l *Lexer) atEOF() bool {
	return l.pos.Index >= len(l.source)
}

func (l *Lexer) remaining() int {
	return len(l.source) - l.pos.Index
}

// peek returns the byte at the current position, or 0 at EOF.
func (l *Lexer) peek() byte {
	if l.atEOF() {
		return 0
	}
	return l.source[l.pos.Index]
}

// consume reads the byte at the current position and advances, maintaining line/column tracking.
// A "\r\n" pair advances the line exactly once.
func (l *Lexer) consume() byte {
	char := l.source[l.pos.Index]
	l.pos.Index++
	switch char {
	case '\n':
		l.pos.Line++
		l.pos.Col = 1
	case '\r':
		if l.pos.Index < len(l.source) && l.source[l.pos.Index] == '\n' {
			l.pos.Index++
		}
		l.pos.Line++
		l.pos.Col = 1
	default:
		l.pos.Col++
	}
	return char
}

// skipIgnored consumes whitespace, commas and comments, which are all insignificant between
// tokens.
//
// Reference: https://spec.graphql.org/October2021/#sec-Language.Source-Text.Ignored-Tokens
func (l *Lexer) skipIgnored() {
	for !l.atEOF() {
		switch l.peek() {
		case '\t', ' ', ',', '\n', '\r':
			l.consume()
		case '#':
			// A comment runs to the end of the line.
			l.consume()
			for !l.atEOF() {
				char := l.peek()
				if char == '\n' || char == '\r' {
					break
				}
				l.consume()
			}
		default:
			return
		}
	}
}

func (l *Lexer) punctuator(kind token.Kind) token.Token {
	start := l.pos
	l.consume()
	return l.makeToken(kind, start, "")
}

func (l *Lexer) makeToken(kind token.Kind, start token.SourcePosition, value string) token.Token {
	return token.Token{
		Kind:  kind,
		Value: value,
		Span:  token.Span{Start: start, End: l.pos},
	}
}

func isNameStart(char byte) bool {
	return char == '_' || (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z')
}

func isNameContinue(char byte) bool {
	return isNameStart(char) || isDigit(char)
}

func isDigit(char byte) bool {
	return char >= '0' && char <= '9'
}

//===----------------------------------------------------------------------------------------====//
// Names and numbers
//===----------------------------------------------------------------------------------------====//

// lexName lexes a Name token (/[_A-Za-z][_0-9A-Za-z]*/).
func (l *Lexer) lexName() token.Token {
	start := l.pos
	l.consume()
	for !l.atEOF() && isNameContinue(l.peek()) {
		l.consume()
	}
	return l.makeToken(token.KindName, start, l.source[start.Index:l.pos.Index])
}

// lexNumber lexes an Int or Float token depending on whether a fraction or exponent appears.
//
// Reference: https://spec.graphql.org/October2021/#sec-Int-Value
func (l *Lexer) lexNumber() (token.Token, error) {
	start := l.pos
	kind := token.KindInt

	char := l.consume()
	if char == '-' {
		char = l.peek()
		if !isDigit(char) {
			return token.Token{}, graphql.NewSyntaxError(l.pos,
				fmt.Sprintf("Invalid number, expected digit after '-' but got: %s.", l.describeCurrentChar()))
		}
		char = l.consume()
	}

	if char == '0' {
		if isDigit(l.peek()) {
			return token.Token{}, graphql.NewSyntaxError(l.pos,
				fmt.Sprintf("Invalid number, unexpected digit after 0: %s.", l.describeCurrentChar()))
		}
	} else {
		l.consumeDigits()
	}

	if l.peek() == '.' {
		kind = token.KindFloat
		l.consume()
		if !isDigit(l.peek()) {
			return token.Token{}, graphql.NewSyntaxError(l.pos,
				fmt.Sprintf("Invalid number, expected digit after decimal point ('.') but got: %s.",
					l.describeCurrentChar()))
		}
		l.consumeDigits()
	}

	if char := l.peek(); char == 'e' || char == 'E' {
		kind = token.KindFloat
		l.consume()
		if char := l.peek(); char == '+' || char == '-' {
			l.consume()
		}
		if !isDigit(l.peek()) {
			return token.Token{}, graphql.NewSyntaxError(l.pos,
				fmt.Sprintf("Invalid number, expected digit but got: %s.", l.describeCurrentChar()))
		}
		l.consumeDigits()
	}

	// A number must not run directly into a name ("123abc").
	if !l.atEOF() && (isNameStart(l.peek()) || l.peek() == '.') {
		return token.Token{}, graphql.NewSyntaxError(l.pos,
			fmt.Sprintf("Invalid number, expected digit but got: %s.", l.describeCurrentChar()))
	}

	return l.makeToken(kind, start, l.source[start.Index:l.pos.Index]), nil
}

func (l *Lexer) consumeDigits() {
	for !l.atEOF() && isDigit(l.peek()) {
		l.consume()
	}
}

//===----------------------------------------------------------------------------------------====//
// Strings
//===----------------------------------------------------------------------------------------====//

// lexString lexes a single-quoted ('"') string, processing escape sequences.
//
// Reference: https://spec.graphql.org/October2021/#sec-String-Value
func (l *Lexer) lexString() (token.Token, error) {
	start := l.pos
	// Consume the opening quote.
	l.consume()

	var value bytes.Buffer
	for !l.atEOF() {
		char := l.peek()

		// A line terminator inside a single-quoted string is unterminated.
		if char == '\n' || char == '\r' {
			break
		}

		if char == '"' {
			l.consume()
			return l.makeToken(token.KindString, start, value.String()), nil
		}

		if char < 0x20 && char != '\t' {
			return token.Token{}, graphql.NewSyntaxError(l.pos,
				fmt.Sprintf("Invalid character within String: %s.", l.describeCurrentChar()))
		}

		l.consume()
		if char != '\\' {
			value.WriteByte(char)
			continue
		}

		// Escape sequence.
		escapePos := l.pos
		if l.atEOF() {
			break
		}
		switch escaped := l.consume(); escaped {
		case '"':
			value.WriteByte('"')
		case '\\':
			value.WriteByte('\\')
		case '/':
			value.WriteByte('/')
		case 'b':
			value.WriteByte('\b')
		case 'f':
			value.WriteByte('\f')
		case 'n':
			value.WriteByte('\n')
		case 'r':
			value.WriteByte('\r')
		case 't':
			value.WriteByte('\t')
		case 'u':
			if l.remaining() < 4 {
				return token.Token{}, graphql.NewSyntaxError(escapePos,
					fmt.Sprintf("Invalid character escape sequence: \\u%s.", l.source[l.pos.Index:]))
			}
			hex := l.source[l.pos.Index : l.pos.Index+4]
			code := unicodeCharCode(hex)
			if code < 0 {
				return token.Token{}, graphql.NewSyntaxError(escapePos,
					fmt.Sprintf("Invalid character escape sequence: \\u%s.", hex))
			}
			for i := 0; i < 4; i++ {
				l.consume()
			}
			value.WriteRune(code)
		default:
			return token.Token{}, graphql.NewSyntaxError(escapePos,
				fmt.Sprintf("Invalid character escape sequence: \\%c.", escaped))
		}
	}

	return token.Token{}, graphql.NewSyntaxError(l.pos, "Unterminated string.")
}

// lexBlockString lexes a triple-quoted string, handling the \""" escape and dedenting the result
// per the BlockStringValue algorithm.
func (l *Lexer) lexBlockString() (token.Token, error) {
	start := l.pos
	// Consume the opening triple-quote.
	l.consume()
	l.consume()
	l.consume()

	var raw bytes.Buffer
	for !l.atEOF() {
		char := l.peek()

		if char == '"' && l.remaining() >= 3 && l.source[l.pos.Index:l.pos.Index+3] == `"""` {
			l.consume()
			l.consume()
			l.consume()
			return l.makeToken(token.KindBlockString, start, blockStringValue(raw.String())), nil
		}

		if char == '\\' && l.remaining() >= 4 && l.source[l.pos.Index:l.pos.Index+4] == `\"""` {
			l.consume()
			raw.WriteString(`"""`)
			l.consume()
			l.consume()
			l.consume()
			continue
		}

		if char < 0x20 && char != '\t' && char != '\n' && char != '\r' {
			return token.Token{}, graphql.NewSyntaxError(l.pos,
				fmt.Sprintf("Invalid character within String: %s.", l.describeCurrentChar()))
		}

		l.consume()
		if char == '\r' {
			// Line terminators normalize to a single newline in the value.
			raw.WriteByte('\n')
		} else {
			raw.WriteByte(char)
		}
	}

	return token.Token{}, graphql.NewSyntaxError(l.pos, "Unterminated string.")
}

// unicodeCharCode converts four hexadecimal characters to the rune they encode, or a negative
// value if any character is not a hex digit.
func unicodeCharCode(hex string) rune {
	var code rune
	for i := 0; i < 4; i++ {
		code = code<<4 | char2hex(hex[i])
		if code < 0 {
			return -1
		}
	}
	return code
}

func char2hex(a byte) rune {
	switch {
	case a >= '0' && a <= '9':
		return rune(a - '0')
	case a >= 'A' && a <= 'F':
		return rune(a - 'A' + 10)
	case a >= 'a' && a <= 'f':
		return rune(a - 'a' + 10)
	}
	return -1 << 16
}

//===----------------------------------------------------------------------------------------====//
// Error helpers
//===----------------------------------------------------------------------------------------====//

func (l *Lexer) describeCurrentChar() string {
	return l.describeCharAt(l.pos)
}

func (l *Lexer) describeCharAt(pos token.SourcePosition) string {
	if pos.Index >= len(l.source) {
		return "<EOF>"
	}
	r, _ := utf8.DecodeRuneInString(l.source[pos.Index:])
	if r >= 0x20 && r < 0x7F {
		return fmt.Sprintf("%q", r)
	}
	return fmt.Sprintf(`"\u%04X"`, r)
}

func (l *Lexer) unexpectedCharacterError(pos token.SourcePosition) error {
	char := l.source[pos.Index]
	var message string
	switch {
	case char < 0x20 && char != '\t' && char != '\n' && char != '\r':
		message = fmt.Sprintf("Cannot contain the invalid character %s.", l.describeCharAt(pos))
	case char == '\'':
		message = "Unexpected single quote character ('), did you mean to use a double quote (\")?"
	default:
		message = fmt.Sprintf("Cannot parse the unexpected character %s.", l.describeCharAt(pos))
	}
	return graphql.NewSyntaxError(pos, message)
}
