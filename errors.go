// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// A Code classifies the cause of a parse failure.
type Code byte

// Constants defining the valid Code values.
const (
	Unknown     Code = iota // unclassified failure
	Syntax                  // malformed grammar at a specific byte
	EndOfInput              // input exhausted inside an incomplete construct
	BadEscape               // malformed or mismatched Unicode escape
	NumOverflow             // number does not fit a finite double
	BadKey                  // object key rejected by the key policy
	NoDecimal               // decimal mode requested without a backend
)

var codeStr = [...]string{
	Unknown:     "unsupported value",
	Syntax:      "syntax error",
	EndOfInput:  "unexpected end of input",
	BadEscape:   "invalid escape",
	NumOverflow: "numeric overflow",
	BadKey:      "invalid object key",
	NoDecimal:   "missing decimal backend",
}

func (c Code) String() string {
	if int(c) >= len(codeStr) {
		return codeStr[Unknown]
	}
	return codeStr[c]
}

// ParseError is the concrete type of all errors reported by Parse.
//
// During the descent only Code, Offset, and Raw are populated; Parse
// attaches the human-facing Pos at its outer boundary so the recursive
// helpers never carry the input buffer.
type ParseError struct {
	Code   Code
	Offset int      // byte offset into the original input
	Raw    string   // the offending fragment, if available
	Pos    Position // position of Offset, filled in by Parse

	located bool
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	where := "offset " + strconv.Itoa(e.Offset)
	if e.located {
		where = e.Pos.String()
	}
	if e.Code == NoDecimal {
		return fmt.Sprintf("%s: %s", e.Code, e.Raw)
	}
	if e.Raw != "" {
		return fmt.Sprintf("at %s: %s: %s", where, e.Code, e.Raw)
	}
	return fmt.Sprintf("at %s: %s", where, e.Code)
}

// locate attaches position information from data to e. An error whose
// offset lies at the end of the input is reclassified as EndOfInput; a
// syntax error inside the input reports the code point at its offset.
func (e *ParseError) locate(data []byte) *ParseError {
	if e.Code == NoDecimal {
		return e
	}
	if e.Offset >= len(data) {
		if e.Code == Syntax {
			e.Code = EndOfInput
		}
		e.Offset = len(data)
	} else if e.Raw == "" {
		r, _ := utf8.DecodeRune(data[e.Offset:])
		e.Raw = strconv.QuoteRune(r)
	}
	e.Pos = PositionAt(data, e.Offset)
	e.located = true
	return e
}

func syntaxErr(pos int) *ParseError { return &ParseError{Code: Syntax, Offset: pos} }

func eofErr(pos int) *ParseError { return &ParseError{Code: EndOfInput, Offset: pos} }

func escapeErr(pos int, raw string) *ParseError {
	return &ParseError{Code: BadEscape, Offset: pos, Raw: raw}
}

func overflowErr(pos int, text string) *ParseError {
	return &ParseError{Code: NumOverflow, Offset: pos, Raw: text}
}

func keyErr(pos int, raw string) *ParseError {
	return &ParseError{Code: BadKey, Offset: pos, Raw: raw}
}
