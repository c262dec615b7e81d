// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse

import "math/big"

// A Kind identifies the JSON type of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	DecKind
	StringKind
	ArrayKind
	ObjectKind
)

var kindStr = [...]string{
	NullKind:   "null",
	BoolKind:   "bool",
	IntKind:    "integer",
	FloatKind:  "float",
	DecKind:    "decimal",
	StringKind: "string",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid"
	}
	return kindStr[k]
}

// A Value is an arbitrary JSON value.
type Value interface {
	Kind() Kind
	Span() Span // the byte span of the value in the original input
}

type span struct{ pos, end int }

func (s span) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Null represents the null constant.
type Null struct{ span }

// Kind satisfies the Value interface.
func (Null) Kind() Kind { return NullKind }

// A Bool is a Boolean constant, true or false.
type Bool struct {
	span
	value bool
}

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return BoolKind }

// Value reports the truth value of b.
func (b Bool) Value() bool { return b.value }

// An Int is an integer value of unbounded magnitude.
type Int struct {
	span
	z *big.Int
}

// Kind satisfies the Value interface.
func (Int) Kind() Kind { return IntKind }

// Big returns the exact value of z. The caller must not modify the
// result.
func (z Int) Big() *big.Int { return z.z }

// Int64 returns the value of z as an int64, or panics if the value is
// not representable in 64 bits. Use Big for values of any magnitude.
func (z Int) Int64() int64 {
	if !z.z.IsInt64() {
		panic("integer out of range for int64")
	}
	return z.z.Int64()
}

// A Float is a floating-point value.
type Float struct {
	span
	f float64
}

// Kind satisfies the Value interface.
func (Float) Kind() Kind { return FloatKind }

// Float64 reports the value of f.
func (f Float) Float64() float64 { return f.f }

// A Dec is an exact decimal value constructed by a DecimalMaker when
// decimal mode is enabled.
type Dec struct {
	span
	dec Decimal
}

// Kind satisfies the Value interface.
func (Dec) Kind() Kind { return DecKind }

// Value returns the backend decimal value.
func (d Dec) Value() Decimal { return d.dec }

// A String is a string value. Its text is fully unescaped.
type String struct {
	span
	text string
}

// Kind satisfies the Value interface.
func (String) Kind() Kind { return StringKind }

// Text reports the unescaped text of s.
func (s String) Text() string { return s.text }

// An Array is an ordered sequence of values. The order of Values is
// the order of the corresponding elements in the source.
type Array struct {
	span
	Values []Value
}

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return ArrayKind }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a.Values) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	span

	Key   string
	Value Value
}

// An Object is a collection of key-value members. Members preserves
// every member in source order, including duplicates; the resolved
// mapping, in which the last occurrence of a key wins, is available
// via Find and Index.
type Object struct {
	span
	Members []*Member

	index map[string]*Member
}

// Kind satisfies the Value interface.
func (Object) Kind() Kind { return ObjectKind }

// Len reports the number of members of o, counting duplicates.
func (o Object) Len() int { return len(o.Members) }

// Find returns the member of o with the given key, or nil. If key
// occurs multiple times, Find returns its last occurrence.
func (o Object) Find(key string) *Member {
	return o.index[key]
}

// Index returns the resolved mapping of o, in which a key occurring
// multiple times maps to its last occurrence in the source. The caller
// must not modify the result.
func (o Object) Index() map[string]*Member { return o.index }

// seal builds the resolved key index. Later occurrences overwrite
// earlier ones, so the last occurrence of a duplicate key wins.
func (o *Object) seal() {
	o.index = make(map[string]*Member, len(o.Members))
	for _, m := range o.Members {
		o.index[m.Key] = m
	}
}
