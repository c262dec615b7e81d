// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"math"
	"math/big"
	"strconv"
)

// A numScan accumulates the parts of a JSON number as they are
// scanned: a sign, an exact integer coefficient, and a running
// base-10 exponent. The coefficient stays in a uint64 until it no
// longer fits, then spills into a big.Int, so small numbers never
// allocate.
type numScan struct {
	sign int
	coef uint64
	zed  *big.Int // non-nil once coef has overflowed uint64
	exp  int
}

var (
	big10     = big.NewInt(10)
	smallInts [10]*big.Int
)

func init() {
	for i := range smallInts {
		smallInts[i] = big.NewInt(int64(i))
	}
}

// digit folds one decimal digit into the coefficient.
func (n *numScan) digit(d byte) {
	v := uint64(d - '0')
	if n.zed == nil {
		if n.coef <= (math.MaxUint64-9)/10 {
			n.coef = n.coef*10 + v
			return
		}
		n.zed = new(big.Int).SetUint64(n.coef)
	}
	n.zed.Mul(n.zed, big10)
	n.zed.Add(n.zed, smallInts[v])
}

// coefficient returns the exact accumulated coefficient. The result is
// freshly allocated unless the coefficient already spilled.
func (n *numScan) coefficient() *big.Int {
	if n.zed != nil {
		return n.zed
	}
	return new(big.Int).SetUint64(n.coef)
}

// expLimit saturates exponent accumulation. Any magnitude beyond it is
// far outside double range already, so further digits cannot change
// the outcome.
const expLimit = 1 << 22

// parseNumber scans a number starting at pos, where buf[pos] is known
// to be '-' or a digit. It returns the value and the offset just past
// the last byte of the number.
func (p *parser) parseNumber(pos int) (Value, int, *ParseError) {
	start := pos
	n := numScan{sign: 1}

	if p.buf[pos] == '-' {
		n.sign = -1
		pos++
		if pos >= len(p.buf) || !isDigit(p.buf[pos]) {
			return nil, 0, syntaxErr(start)
		}
	}

	// Integer part. A leading zero is a complete integer part by
	// itself; only a fraction, exponent, or terminator may follow it.
	if p.buf[pos] == '0' {
		pos++
		if pos < len(p.buf) && isDigit(p.buf[pos]) {
			return nil, 0, syntaxErr(pos)
		}
	} else {
		for pos < len(p.buf) && isDigit(p.buf[pos]) {
			n.digit(p.buf[pos])
			pos++
		}
	}

	// Fraction: "." requires at least one digit after it. Each digit
	// extends the coefficient and shifts the exponent down by one.
	if pos < len(p.buf) && p.buf[pos] == '.' {
		pos++
		if pos >= len(p.buf) || !isDigit(p.buf[pos]) {
			return nil, 0, syntaxErr(pos)
		}
		for pos < len(p.buf) && isDigit(p.buf[pos]) {
			n.digit(p.buf[pos])
			n.exp--
			pos++
		}
	}

	// Exponent: "e"/"E", an optional sign, then at least one digit.
	if pos < len(p.buf) && (p.buf[pos] == 'e' || p.buf[pos] == 'E') {
		pos++
		esign := 1
		if pos < len(p.buf) && (p.buf[pos] == '+' || p.buf[pos] == '-') {
			if p.buf[pos] == '-' {
				esign = -1
			}
			pos++
		}
		if pos >= len(p.buf) || !isDigit(p.buf[pos]) {
			return nil, 0, syntaxErr(pos)
		}
		var mag int
		for pos < len(p.buf) && isDigit(p.buf[pos]) {
			if mag < expLimit {
				mag = mag*10 + int(p.buf[pos]-'0')
			}
			pos++
		}
		n.exp += esign * mag
	}

	v, err := p.completeNumber(&n, start, pos)
	if err != nil {
		return nil, 0, err
	}
	return v, pos, nil
}

// completeNumber combines the scanned parts into a Value. An exponent
// of zero yields an exact integer. Otherwise the result is a Dec in
// decimal mode, or a double computed through the power-of-ten table.
func (p *parser) completeNumber(n *numScan, start, end int) (Value, *ParseError) {
	sp := span{pos: start, end: end}
	if n.exp == 0 {
		z := n.coefficient()
		if n.sign < 0 {
			z.Neg(z)
		}
		return Int{span: sp, z: z}, nil
	}
	if p.cfg.numeric == NumDecimal {
		d, err := p.cfg.dec.Make(n.sign, n.coefficient(), n.exp)
		if err != nil {
			return nil, overflowErr(start, string(p.buf[start:end]))
		}
		return Dec{span: sp, dec: d}, nil
	}
	f := n.float64()
	if math.IsInf(f, 0) {
		return nil, overflowErr(start, string(p.buf[start:end]))
	}
	return Float{span: sp, f: f}, nil
}

// float64 collapses the scanned parts into a double. Negative
// exponents divide rather than multiply by a reciprocal, which keeps
// short decimals like 1.5 exact. Values below double range flush to
// zero; values above it return an infinity for the caller to reject.
func (n *numScan) float64() float64 {
	var c float64
	if n.zed != nil {
		c, _ = new(big.Float).SetInt(n.zed).Float64()
	} else {
		c = float64(n.coef)
	}
	if c == 0 {
		return math.Copysign(0, float64(n.sign))
	}

	var f float64
	switch e := n.exp; {
	case e > 308:
		f = math.Inf(1)
	case e > 0:
		f = c * pow10tab[e]
	case e >= -308:
		f = c / pow10tab[-e]
	case e >= -616:
		// Two steps, so values near the bottom of the double range can
		// land on a subnormal instead of flushing to zero early.
		f = c / pow10tab[308] / pow10tab[-e-308]
	default:
		f = 0
	}
	if n.sign < 0 {
		return -f
	}
	return f
}

// pow10tab holds the nonnegative powers of ten representable as a
// float64, each correctly rounded. Entries up to 1e22 are exact.
var pow10tab [309]float64

func init() {
	for i := range pow10tab {
		pow10tab[i], _ = strconv.ParseFloat("1e"+strconv.Itoa(i), 64)
	}
}
