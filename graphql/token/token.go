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

package token

import (
	"fmt"
)

// Kind describes the different kinds of tokens that the lexer emits.
//
// Reference: https://spec.graphql.org/October2021/#sec-Appendix-Grammar-Summary.Lexical-Tokens
type Kind int

// Enumeration of Kind
const (
	// <EOF>
	KindEOF Kind = iota + 1
	// !
	KindBang
	// $
	KindDollar
	// &
	KindAmp
	// (
	KindLeftParen
	// )
	KindRightParen
	// ...
	KindSpread
	// :
	KindColon
	// =
	KindEquals
	// @
	KindAt
	// [
	KindLeftBracket
	// ]
	KindRightBracket
	// {
	KindLeftBrace
	// |
	KindPipe
	// }
	KindRightBrace
	// A lexical token such as "query" or "id"
	KindName
	// An integer literal such as "-4"
	KindInt
	// A float literal such as "3.1e-7"
	KindFloat
	// A quoted string such as `"foo"`
	KindString
	// A triple-quoted string such as `"""foo"""`
	KindBlockString
)

// String returns the kind in the form used by syntax error messages.
func (kind Kind) String() string {
	switch kind {
	case KindEOF:
		return "<EOF>"
	case KindBang:
		return "!"
	case KindDollar:
		return "$"
	case KindAmp:
		return "&"
	case KindLeftParen:
		return "("
	case KindRightParen:
		return ")"
	case KindSpread:
		return "..."
	case KindColon:
		return ":"
	case KindEquals:
		return "="
	case KindAt:
		return "@"
	case KindLeftBracket:
		return "["
	case KindRightBracket:
		return "]"
	case KindLeftBrace:
		return "{"
	case KindPipe:
		return "|"
	case KindRightBrace:
		return "}"
	case KindName:
		return "Name"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBlockString:
		return "BlockString"
	}
	return fmt.Sprintf("<invalid kind %d>", int(kind))
}

// Token is a lexical token in a GraphQL document.
type Token struct {
	Kind Kind

	// Value contains the interpreted value for Name, Int, Float, String and BlockString tokens (e.g.,
	// escape sequences in a String token have been processed). It is empty for punctuators.
	Value string

	// Span covers the raw source text of the token, including any quotes.
	Span
}

// Description renders the token for syntax error messages, e.g. `Name "query"` or "}".
func (tok Token) Description() string {
	switch tok.Kind {
	case KindName, KindInt, KindFloat, KindString, KindBlockString:
		return fmt.Sprintf("%s %q", tok.Kind, tok.Value)
	}
	return tok.Kind.String()
}
