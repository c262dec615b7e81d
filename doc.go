// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jparse implements a recursive-descent parser for JSON
// (RFC 7159) over a fully materialized byte buffer.
//
// # Parsing
//
// The Parse function consumes a byte slice containing a single JSON
// value and returns the corresponding Value, or an error of concrete
// type [*ParseError]:
//
//	v, err := jparse.Parse(data)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// The input must contain exactly one value; anything other than
// whitespace after the value is a syntax error. Parse never modifies
// the input, and the returned Value does not alias it, so the caller
// may reuse the buffer freely once Parse returns.
//
// # Values
//
// A parsed value is one of the concrete types Null, Bool, Int, Float,
// Dec, String, Array, or Object. Integers without a fraction or
// exponent are kept exact at any magnitude:
//
//	v, _ := jparse.Parse([]byte(`123456789012345678901234567890`))
//	z := v.(jparse.Int).Big() // *big.Int, no precision loss
//
// Numbers with a fraction or exponent become Float values by default.
// With OptNumeric(NumDecimal) and a linked DecimalMaker (see the bigdec
// subpackage), they instead become Dec values built directly from the
// scanned sign, coefficient, and exponent, bypassing floating point.
//
// # Errors
//
// Every failure aborts the parse and reports a *ParseError carrying a
// classification code and the byte offset of the offending input.
// The position in code points, and the line and column, are computed
// from the offset only when an error is actually reported:
//
//	var pe *jparse.ParseError
//	if errors.As(err, &pe) {
//	   fmt.Println(pe.Code, pe.Pos.Line, pe.Pos.Column)
//	}
//
// # Object keys
//
// Object keys are processed under a policy selected by OptKeys. The
// default (KeyRaw) keeps each key as scanned. KeyValidated accepts
// only keys present in a caller-provided set (see OptKnownKeys) and
// reports a key error otherwise. KeyIntern caches every distinct key
// so repeated keys across a document share storage.
package jparse
