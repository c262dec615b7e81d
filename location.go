// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"fmt"
	"unicode/utf8"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A Position describes the location of a single byte offset in source
// text, in terms a human reader of the text can use.
type Position struct {
	Offset    int // byte offset, 0-based
	CodePoint int // code point index, 0-based
	Line      int // line number, 1-based
	Column    int // column offset in the line, 0-based, in code points
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d (code point %d)", p.Line, p.Column, p.CodePoint)
}

// PositionAt translates a byte offset into data to a Position by
// counting code points in data[0:offset]. Offsets beyond the end of
// data are clamped to the end. The cost is linear in offset, so the
// parser calls this only when reporting an error.
func PositionAt(data []byte, offset int) Position {
	if offset > len(data) {
		offset = len(data)
	}
	pos := Position{Offset: offset, Line: 1}
	for i := 0; i < offset; {
		r, n := utf8.DecodeRune(data[i:])
		if n == 0 {
			break
		}
		pos.CodePoint++
		pos.Column++
		if r == '\n' {
			pos.Line++
			pos.Column = 0
		}
		i += n
	}
	return pos
}
