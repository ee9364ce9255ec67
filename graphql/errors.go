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

package graphql

import (
	"strconv"
	"strings"

	"github.com/quellgo/quell/graphql/token"
)

// ErrKind classifies an Error by the phase that produced it.
type ErrKind uint8

// Enumeration of ErrKind
const (
	// Unclassified error
	ErrKindOther ErrKind = iota
	// A syntax error in the GraphQL source; parsing stops at the first one.
	ErrKindSyntax
	// A validation rule failure; these are collected, not fail-fast.
	ErrKindValidation
	// Failure to coerce an input or result value to the desired GraphQL type.
	ErrKindCoercion
	// A field-scoped error raised while executing a query.
	ErrKindExecution
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindSyntax:
		return "syntax error"
	case ErrKindValidation:
		return "validation error"
	case ErrKindCoercion:
		return "coercion error"
	case ErrKindExecution:
		return "execution error"
	}
	return "error"
}

// ErrorLocation points at the beginning of the syntax element associated with an error. Both line
// and column are positive numbers starting from 1.
type ErrorLocation struct {
	Line   int
	Column int
}

// LocationOf converts a source position into an ErrorLocation.
func LocationOf(pos token.SourcePosition) ErrorLocation {
	return ErrorLocation{Line: pos.Line, Column: pos.Col}
}

// LocationsOf collects the start locations of the given AST nodes.
func LocationsOf(nodes ...token.Spanned) []ErrorLocation {
	locations := make([]ErrorLocation, len(nodes))
	for i, node := range nodes {
		locations[i] = LocationOf(node.SourceSpan().Start)
	}
	return locations
}

// ResponsePath addresses a field in the response tree: a sequence of keys where each key is either
// a field response key (string) or a list index (int).
type ResponsePath struct {
	keys []interface{}
}

// Empty returns true if the path doesn't contain any keys.
func (path ResponsePath) Empty() bool {
	return len(path.keys) == 0
}

// Keys returns the path keys. Callers must not mutate the returned slice.
func (path ResponsePath) Keys() []interface{} {
	return path.keys
}

// WithFieldName returns a copy of the path extended by a field response key.
func (path ResponsePath) WithFieldName(name string) ResponsePath {
	return path.with(name)
}

// WithIndex returns a copy of the path extended by a list index.
func (path ResponsePath) WithIndex(index int) ResponsePath {
	return path.with(index)
}

func (path ResponsePath) with(key interface{}) ResponsePath {
	keys := make([]interface{}, len(path.keys), len(path.keys)+1)
	copy(keys, path.keys)
	return ResponsePath{keys: append(keys, key)}
}

// String renders the path in the "a.b[2].c" form used in diagnostics.
func (path ResponsePath) String() string {
	var b strings.Builder
	for _, key := range path.keys {
		switch key := key.(type) {
		case string:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(key)
		case int:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(key))
			b.WriteByte(']')
		}
	}
	return b.String()
}

// Error is the error value surfaced in a Response. Every error produced by the parser, the
// validator and the executor is an *Error.
type Error struct {
	Kind ErrKind

	// Message describes the failure in the wording defined by the GraphQL spec's error contract.
	Message string

	// Locations point at the syntax elements involved; rule errors may carry more than one (e.g. a
	// variable definition and the usage that conflicts with it).
	Locations []ErrorLocation

	// Path addresses the response field the error is scoped to. Only execution errors carry one.
	Path ResponsePath

	// Err is the underlying error, such as one returned from a resolver.
	Err error
}

var _ error = (*Error)(nil)

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying error to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an unclassified error with optional locations.
func NewError(message string, locations ...ErrorLocation) *Error {
	return &Error{Message: message, Locations: locations}
}

// NewSyntaxError creates an error representing a syntax error at the given position.
func NewSyntaxError(pos token.SourcePosition, description string) *Error {
	return &Error{
		Kind:      ErrKindSyntax,
		Message:   "Syntax Error: " + description,
		Locations: []ErrorLocation{LocationOf(pos)},
	}
}

// NewValidationError creates an error representing a validation rule failure.
func NewValidationError(message string, locations []ErrorLocation) *Error {
	return &Error{
		Kind:      ErrKindValidation,
		Message:   message,
		Locations: locations,
	}
}

// NewCoercionError creates an error representing an input coercion failure.
func NewCoercionError(message string, locations ...ErrorLocation) *Error {
	return &Error{
		Kind:      ErrKindCoercion,
		Message:   message,
		Locations: locations,
	}
}

// NewExecutionError creates a field-scoped execution error.
func NewExecutionError(message string, location ErrorLocation, path ResponsePath, err error) *Error {
	return &Error{
		Kind:      ErrKindExecution,
		Message:   message,
		Locations: []ErrorLocation{location},
		Path:      path,
		Err:       err,
	}
}

// Errors collects multiple errors, preserving the order they were reported in.
type Errors []*Error

// NoErrors is the empty error collection. Tests compare against it to assert validity.
func NoErrors() Errors {
	return nil
}

// HaveOccurred returns true if the collection contains any error.
func (errs Errors) HaveOccurred() bool {
	return len(errs) > 0
}

// Append adds an error to the collection.
func (errs *Errors) Append(err *Error) {
	*errs = append(*errs, err)
}

// AppendErrors merges another collection into this one.
func (errs *Errors) AppendErrors(other Errors) {
	*errs = append(*errs, other...)
}

// ErrorsOf builds a collection from the given errors.
func ErrorsOf(errs ...*Error) Errors {
	return Errors(errs)
}
