// Package parser implements the textual slice-expression parser for slyce.
//
// Package: parser
// Title: Slice Expression Parser
// Description: This package converts bracketed slice expressions of the form
//              "[<start>:<end>:<step>]" into slyce.Slice descriptors. Each
//              field is an optional signed decimal integer; empty fields map
//              to the unspecified bound or the default step. Malformed input
//              is reported as a ParseError with byte-position information.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-13
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-13 v0.1.0: Initial parser implementation
//
// The accepted grammar mirrors the rendering produced by slyce.Slice.String
// exactly, with no whitespace:
//
//	expression = "[" field ":" field ":" field "]"
//	field      = [ "-" ] { digit }
//
// Parsing a rendered descriptor reproduces it, with one documented
// exception: Tail(0) renders as "-0", which reads back as Head(0).
package parser
