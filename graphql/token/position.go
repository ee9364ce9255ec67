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

// SourcePosition locates a byte in a GraphQL source document. Index is a 0-based byte offset into
// the document; Line and Col are 1-based and are measured in bytes, not runes, matching the
// positions reported in response error locations.
type SourcePosition struct {
	Index int
	Line  int
	Col   int
}

// NoSourcePosition is the zero SourcePosition. It doesn't refer to any position in any document.
var NoSourcePosition = SourcePosition{}

// IsValid returns true if the position refers to an actual location in a document.
func (pos SourcePosition) IsValid() bool {
	return pos.Line > 0
}

// String formats the position as "line:col" for diagnostics.
func (pos SourcePosition) String() string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Col)
}

// Span is a half-open range [Start, End) over the source document. Every AST node embeds a Span so
// diagnostics can point back at the exact source text the node was parsed from. Comparing two AST
// nodes while ignoring their spans is an explicit, separate operation (see ast.EqualIgnoringSpans);
// Span itself compares like any other struct.
type Span struct {
	Start SourcePosition
	End   SourcePosition
}

// SourceSpan makes any value that embeds a Span satisfy the Spanned interface. The method cannot
// be named Span: the embedded field of that name would shadow it and break promotion.
func (span Span) SourceSpan() Span {
	return span
}

// IsValid returns true if both endpoints refer to actual locations.
func (span Span) IsValid() bool {
	return span.Start.IsValid() && span.End.IsValid()
}

// Spanned is satisfied by values that carry a source span. All AST nodes are Spanned.
type Spanned interface {
	SourceSpan() Span
}
