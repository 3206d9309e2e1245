// File: parser.go
// Title: Slice Expression Parser
// Description: Implements a single-pass scanner for bracketed slice
//              expressions. Produces slyce.Slice descriptors and reports
//              malformed input as ParseError values carrying the byte
//              position of the offending character.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-13
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-13 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"strconv"

	"github.com/msto63/slyce"
)

// ParseError represents a parsing error with position information
type ParseError struct {
	Input    string // The input being parsed
	Position int    // Byte position of the error (0-based)
	Message  string // Human-readable description
	cause    error  // Underlying error, if any
}

// Error returns a string representation of the parse error
func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s at position %d", pe.Input, pe.Message, pe.Position)
}

// Unwrap returns the underlying cause, if any
func (pe *ParseError) Unwrap() error {
	return pe.cause
}

// parser is a single-pass scanner over a slice expression
type parser struct {
	input string
	pos   int
}

// Parse converts a bracketed slice expression into a Slice descriptor.
// The expression has the form "[<start>:<end>:<step>]" where each field is
// an optional signed decimal integer; empty fields are unspecified. The
// grammar admits no whitespace. All errors are *ParseError values.
//
//	Parse("[1:-2:1]")  // arr[1:-2:1]
//	Parse("[::-1]")    // arr reversed
//	Parse("[::]")      // every element
func Parse(input string) (slyce.Slice, error) {
	p := &parser{input: input}

	if err := p.expect('['); err != nil {
		return slyce.Slice{}, err
	}
	start, err := p.field()
	if err != nil {
		return slyce.Slice{}, err
	}
	if err := p.expect(':'); err != nil {
		return slyce.Slice{}, err
	}
	end, err := p.field()
	if err != nil {
		return slyce.Slice{}, err
	}
	if err := p.expect(':'); err != nil {
		return slyce.Slice{}, err
	}
	step, err := p.field()
	if err != nil {
		return slyce.Slice{}, err
	}
	if err := p.expect(']'); err != nil {
		return slyce.Slice{}, err
	}
	if p.pos != len(p.input) {
		return slyce.Slice{}, p.errorf("unexpected trailing input")
	}

	return slyce.FromParts(start, end, step), nil
}

// expect consumes the given character or fails
func (p *parser) expect(ch byte) error {
	if p.pos >= len(p.input) || p.input[p.pos] != ch {
		return p.errorf("expected %q", ch)
	}
	p.pos++
	return nil
}

// field consumes an optional signed decimal integer. It returns nil for an
// empty field, which the caller maps to an unspecified bound.
func (p *parser) field() (*int64, error) {
	begin := p.pos
	if p.pos < len(p.input) && p.input[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
		p.pos++
	}
	text := p.input[begin:p.pos]
	if text == "" {
		return nil, nil
	}
	if text == "-" {
		return nil, p.errorf("expected digits after '-'")
	}

	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, &ParseError{
			Input:    p.input,
			Position: begin,
			Message:  fmt.Sprintf("invalid integer %q", text),
			cause:    err,
		}
	}
	return &v, nil
}

// errorf builds a ParseError at the current scan position
func (p *parser) errorf(format string, args ...any) *ParseError {
	return &ParseError{
		Input:    p.input,
		Position: p.pos,
		Message:  fmt.Sprintf(format, args...),
	}
}

// isDigit reports whether ch is an ASCII decimal digit
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
