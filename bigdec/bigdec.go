// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package bigdec provides a decimal backend for jparse over the
// github.com/shopspring/decimal package. Linking it via
// jparse.OptDecimalMaker enables decimal numeric mode:
//
//	v, err := jparse.Parse(data,
//	   jparse.OptNumeric(jparse.NumDecimal),
//	   jparse.OptDecimalMaker(bigdec.Maker{}),
//	)
package bigdec

import (
	"fmt"
	"math"
	"math/big"

	"github.com/creachadair/jparse"
	"github.com/shopspring/decimal"
)

// Maker implements the jparse.DecimalMaker interface using
// shopspring decimal values. The zero value is ready for use.
type Maker struct{}

// Make constructs the decimal value sign * coef * 10^exp. It reports
// an error if exp exceeds the backend's exponent range.
func (Maker) Make(sign int, coef *big.Int, exp int) (jparse.Decimal, error) {
	if exp < math.MinInt32 || exp > math.MaxInt32 {
		return nil, fmt.Errorf("exponent %d out of range", exp)
	}
	d := decimal.NewFromBigInt(coef, int32(exp))
	if sign < 0 {
		d = d.Neg()
	}
	return d, nil
}
