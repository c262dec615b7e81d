// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse

import "math/big"

// A Decimal is an exact decimal value produced by a DecimalMaker.
// The parser requires nothing of the value beyond a text rendering.
type Decimal interface {
	String() string
}

// A DecimalMaker constructs an exact decimal value from a sign, a
// nonnegative integer coefficient, and a base-10 exponent, so that the
// result equals sign * coef * 10^exp. The parser calls Make for each
// number scanned in decimal mode; it is the only operation required of
// a backend.
//
// The core carries no decimal implementation. The bigdec subpackage
// provides one over github.com/shopspring/decimal; callers may supply
// their own instead.
type DecimalMaker interface {
	Make(sign int, coef *big.Int, exp int) (Decimal, error)
}
