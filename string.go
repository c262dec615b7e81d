// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"unicode/utf8"

	"go4.org/mem"
)

// parseString scans the body of a string whose opening quotation mark
// has already been consumed; pos is the offset of the first content
// byte. It returns the decoded text and the offset just past the
// closing quotation mark.
//
// The scanner runs in two modes. The fast path tracks a run of bytes
// needing no interpretation; a string without escapes resolves to a
// single slice of the input. The first backslash flushes the run into
// an accumulator and escape decoding takes over until the fast path
// can resume.
func (p *parser) parseString(pos int) (string, int, *ParseError) {
	src := mem.B(p.buf)
	var dec []byte // nil until the first escape is seen
	var nonASCII bool
	run := pos
	i := pos
	for i < len(p.buf) {
		switch c := p.buf[i]; {
		case c == '"':
			if dec == nil {
				return finishString(p.buf[run:i], nonASCII), i + 1, nil
			}
			dec = mem.Append(dec, src.SliceFrom(run).SliceTo(i-run))
			return finishString(dec, nonASCII), i + 1, nil

		case c == '\\':
			dec = mem.Append(dec, src.SliceFrom(run).SliceTo(i-run))
			var err *ParseError
			dec, i, err = p.unescape(dec, i)
			if err != nil {
				return "", 0, err
			}
			run = i

		case c < 0x20:
			// Unescaped control bytes are not permitted in strings.
			return "", 0, syntaxErr(i)

		case c >= 0x80:
			nonASCII = true
			i++

		default:
			i++
		}
	}
	return "", 0, eofErr(len(p.buf))
}

// finishString converts accumulated string content to text. Content
// that stayed ASCII is used as-is; content with multi-byte sequences
// gets a validity pass that replaces malformed encoding with U+FFFD.
func finishString(b []byte, nonASCII bool) string {
	if !nonASCII || utf8.Valid(b) {
		return string(b)
	}
	out := make([]byte, 0, len(b))
	for len(b) > 0 {
		r, n := utf8.DecodeRune(b)
		out = utf8.AppendRune(out, r)
		b = b[n:]
	}
	return string(out)
}

// unescape decodes one escape sequence whose backslash is at pos,
// appending the decoded bytes to dec. It returns the offset just past
// the sequence.
func (p *parser) unescape(dec []byte, pos int) ([]byte, int, *ParseError) {
	i := pos + 1
	if i >= len(p.buf) {
		return nil, 0, eofErr(len(p.buf))
	}
	switch c := p.buf[i]; c {
	case '"', '\\', '/':
		return append(dec, c), i + 1, nil
	case 'b':
		return append(dec, '\b'), i + 1, nil
	case 'f':
		return append(dec, '\f'), i + 1, nil
	case 'n':
		return append(dec, '\n'), i + 1, nil
	case 'r':
		return append(dec, '\r'), i + 1, nil
	case 't':
		return append(dec, '\t'), i + 1, nil
	case 'u':
		return p.unescapeRune(dec, pos)
	}
	return nil, 0, syntaxErr(i)
}

// unescapeRune decodes a \uXXXX escape at pos, joining a surrogate
// pair into a single code point when the first code unit is a high
// surrogate. A high surrogate without a low surrogate immediately
// after it, or a bare low surrogate, is an escape error whose Raw text
// covers the offending escape(s).
func (p *parser) unescapeRune(dec []byte, pos int) ([]byte, int, *ParseError) {
	hi, end, err := p.hex4(pos)
	if err != nil {
		return nil, 0, err
	}
	r := rune(hi)
	switch {
	case hi >= 0xD800 && hi <= 0xDBFF:
		if end+6 > len(p.buf) || p.buf[end] != '\\' || p.buf[end+1] != 'u' {
			return nil, 0, escapeErr(pos, string(p.buf[pos:min(end+6, len(p.buf))]))
		}
		lo, end2, err := p.hex4(end)
		if err != nil {
			return nil, 0, err
		}
		if lo < 0xDC00 || lo > 0xDFFF {
			return nil, 0, escapeErr(pos, string(p.buf[pos:end2]))
		}
		r = 0x10000 + rune(hi&0x3FF)<<10 + rune(lo&0x3FF)
		end = end2
	case hi >= 0xDC00 && hi <= 0xDFFF:
		return nil, 0, escapeErr(pos, string(p.buf[pos:end]))
	}
	return utf8.AppendRune(dec, r), end, nil
}

// hex4 decodes the four hexadecimal digits of a \uXXXX escape whose
// backslash is at pos, returning the code unit and the offset just
// past the final digit.
func (p *parser) hex4(pos int) (int, int, *ParseError) {
	i := pos + 2
	if i+4 > len(p.buf) {
		return 0, 0, eofErr(len(p.buf))
	}
	var v int
	for j := 0; j < 4; j++ {
		b := p.buf[i+j]
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += int(b - '0')
		case 'a' <= b && b <= 'f':
			v += int(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += int(b - 'A' + 10)
		default:
			return 0, 0, syntaxErr(i + j)
		}
	}
	return v, i + 4, nil
}
