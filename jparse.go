// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse

import "go4.org/mem"

// A NumericMode selects the representation of numbers that carry a
// fraction or exponent. Numbers with neither are always exact Int
// values, regardless of mode.
type NumericMode byte

// Constants defining the valid NumericMode values.
const (
	NumFloat   NumericMode = iota // fractional numbers become Float values
	NumDecimal                    // fractional numbers become Dec values
)

// defaultMaxDepth bounds array/object nesting unless overridden, so a
// pathologically nested input fails cleanly instead of exhausting the
// goroutine stack.
const defaultMaxDepth = 10000

type config struct {
	keys     KeyPolicy
	known    map[string]string
	numeric  NumericMode
	dec      DecimalMaker
	maxDepth int
}

// An Option adjusts the behavior of a call to Parse.
type Option func(*config)

// OptKeys sets the object key policy (default KeyRaw).
func OptKeys(policy KeyPolicy) Option {
	return func(c *config) { c.keys = policy }
}

// OptKnownKeys supplies the known-key set consulted by the
// KeyValidated policy. Keys not listed cause a parse under that policy
// to fail.
func OptKnownKeys(keys ...string) Option {
	return func(c *config) {
		c.known = make(map[string]string, len(keys))
		for _, k := range keys {
			c.known[k] = k
		}
	}
}

// OptNumeric sets the numeric mode (default NumFloat). NumDecimal
// additionally requires a DecimalMaker; a parse in decimal mode with
// no maker linked fails with a NoDecimal error.
func OptNumeric(mode NumericMode) Option {
	return func(c *config) { c.numeric = mode }
}

// OptDecimalMaker links the backend used to construct Dec values in
// decimal mode.
func OptDecimalMaker(m DecimalMaker) Option {
	return func(c *config) { c.dec = m }
}

// OptMaxDepth sets the maximum array/object nesting depth. Zero
// removes the limit.
func OptMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// Parse parses data, which must contain exactly one JSON value
// surrounded by optional whitespace, and returns the corresponding
// Value. In case of error the result is nil and the error has
// concrete type [*ParseError]; no partial value is ever returned.
func Parse(data []byte, opts ...Option) (Value, error) {
	cfg := config{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.numeric == NumDecimal && cfg.dec == nil {
		return nil, &ParseError{
			Code: NoDecimal,
			Raw:  "decimal mode requires a jparse.DecimalMaker (see the bigdec package)",
		}
	}

	p := &parser{buf: data, cfg: cfg}
	v, pos, err := p.parseValue(0, 0)
	if err != nil {
		return nil, err.locate(data)
	}
	if pos = skipSpace(data, pos); pos < len(data) {
		return nil, syntaxErr(pos).locate(data)
	}
	return v, nil
}

// A parser holds the state of one Parse call: the input buffer, the
// configuration, and the key intern cache. Offsets are threaded
// through arguments and results, never stored, so the descent reads
// the buffer purely.
type parser struct {
	buf  []byte
	cfg  config
	keys interner
}

// asciiSpace marks the bytes JSON treats as whitespace.
var asciiSpace = [256]bool{' ': true, '\t': true, '\n': true, '\r': true}

func skipSpace(buf []byte, pos int) int {
	for pos < len(buf) && asciiSpace[buf[pos]] {
		pos++
	}
	return pos
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// parseValue scans a single value of any type starting at or after
// pos, returning the value and the offset just past its last byte.
func (p *parser) parseValue(pos, depth int) (Value, int, *ParseError) {
	pos = skipSpace(p.buf, pos)
	if pos >= len(p.buf) {
		return nil, 0, eofErr(len(p.buf))
	}
	switch c := p.buf[pos]; {
	case c == 't':
		end, err := p.literal(pos, "true")
		if err != nil {
			return nil, 0, err
		}
		return Bool{span: span{pos, end}, value: true}, end, nil
	case c == 'f':
		end, err := p.literal(pos, "false")
		if err != nil {
			return nil, 0, err
		}
		return Bool{span: span{pos, end}}, end, nil
	case c == 'n':
		end, err := p.literal(pos, "null")
		if err != nil {
			return nil, 0, err
		}
		return Null{span: span{pos, end}}, end, nil
	case c == '-' || isDigit(c):
		return p.parseNumber(pos)
	case c == '"':
		text, end, err := p.parseString(pos + 1)
		if err != nil {
			return nil, 0, err
		}
		return String{span: span{pos, end}, text: text}, end, nil
	case c == '[':
		return p.parseArray(pos, depth)
	case c == '{':
		return p.parseObject(pos, depth)
	}
	return nil, 0, syntaxErr(pos)
}

// literal matches an exact constant name at pos.
func (p *parser) literal(pos int, name string) (int, *ParseError) {
	end := pos + len(name)
	if end > len(p.buf) || !mem.B(p.buf[pos:end]).EqualString(name) {
		return 0, syntaxErr(pos)
	}
	return end, nil
}

// parseArray scans an array whose opening bracket is at pos. Elements
// are appended in encounter order, so the finished sequence preserves
// source order exactly.
func (p *parser) parseArray(pos, depth int) (Value, int, *ParseError) {
	open := pos
	if err := p.checkDepth(open, depth); err != nil {
		return nil, 0, err
	}
	pos = skipSpace(p.buf, pos+1)
	if pos < len(p.buf) && p.buf[pos] == ']' {
		return Array{span: span{open, pos + 1}}, pos + 1, nil
	}

	var vs []Value
	for {
		v, next, err := p.parseValue(pos, depth+1)
		if err != nil {
			return nil, 0, err
		}
		vs = append(vs, v)

		pos = skipSpace(p.buf, next)
		if pos >= len(p.buf) {
			return nil, 0, eofErr(len(p.buf))
		}
		switch p.buf[pos] {
		case ',':
			pos++
		case ']':
			return Array{span: span{open, pos + 1}, Values: vs}, pos + 1, nil
		default:
			return nil, 0, syntaxErr(pos)
		}
	}
}

// parseObject scans an object whose opening brace is at pos. Members
// accumulate in source order; the resolved mapping built at the end
// lets the last occurrence of a duplicate key win.
func (p *parser) parseObject(pos, depth int) (Value, int, *ParseError) {
	open := pos
	if err := p.checkDepth(open, depth); err != nil {
		return nil, 0, err
	}
	pos = skipSpace(p.buf, pos+1)
	if pos < len(p.buf) && p.buf[pos] == '}' {
		o := Object{span: span{open, pos + 1}}
		o.seal()
		return o, pos + 1, nil
	}

	var members []*Member
	for {
		pos = skipSpace(p.buf, pos)
		if pos >= len(p.buf) {
			return nil, 0, eofErr(len(p.buf))
		}
		if p.buf[pos] != '"' {
			return nil, 0, syntaxErr(pos)
		}
		keyPos := pos
		text, next, err := p.parseString(pos + 1)
		if err != nil {
			return nil, 0, err
		}
		key, kerr := p.applyKey(text, keyPos)
		if kerr != nil {
			return nil, 0, kerr
		}

		pos = skipSpace(p.buf, next)
		if pos >= len(p.buf) {
			return nil, 0, eofErr(len(p.buf))
		}
		if p.buf[pos] != ':' {
			return nil, 0, syntaxErr(pos)
		}

		v, vend, err := p.parseValue(pos+1, depth+1)
		if err != nil {
			return nil, 0, err
		}
		members = append(members, &Member{
			span:  span{keyPos, vend},
			Key:   key,
			Value: v,
		})

		pos = skipSpace(p.buf, vend)
		if pos >= len(p.buf) {
			return nil, 0, eofErr(len(p.buf))
		}
		switch p.buf[pos] {
		case ',':
			pos++
		case '}':
			o := Object{span: span{open, pos + 1}, Members: members}
			o.seal()
			return o, pos + 1, nil
		default:
			return nil, 0, syntaxErr(pos)
		}
	}
}

func (p *parser) checkDepth(pos, depth int) *ParseError {
	if p.cfg.maxDepth > 0 && depth >= p.cfg.maxDepth {
		return &ParseError{Code: Syntax, Offset: pos, Raw: "nesting too deep"}
	}
	return nil
}
