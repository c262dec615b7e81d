// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"math"
	"math/big"
	"testing"
)

func TestPow10Tab(t *testing.T) {
	checks := map[int]float64{
		0:   1,
		1:   10,
		10:  1e10,
		22:  1e22, // the largest exact power of ten
		308: 1e308,
	}
	for n, want := range checks {
		if got := pow10tab[n]; got != want {
			t.Errorf("pow10tab[%d]: got %g, want %g", n, got, want)
		}
	}
}

func TestNumScanSpill(t *testing.T) {
	// Feeding more digits than a uint64 can hold must spill into the
	// big coefficient without losing any.
	const text = "184467440737095516250000000001"
	var n numScan
	for i := 0; i < len(text); i++ {
		n.digit(text[i])
	}
	if n.zed == nil {
		t.Fatal("coefficient did not spill to big.Int")
	}
	want, _ := new(big.Int).SetString(text, 10)
	if got := n.coefficient(); got.Cmp(want) != 0 {
		t.Errorf("coefficient: got %s, want %s", got, want)
	}
}

func TestNumScanFloat(t *testing.T) {
	tests := []struct {
		sign int
		coef uint64
		exp  int
		want float64
	}{
		{1, 15, -1, 1.5},
		{-1, 15, -1, -1.5},
		{1, 1, 10, 1e10},
		{1, 0, -5, 0},
		{1, 5, -324, 5e-324}, // smallest subnormal survives two-step scaling
		{1, 2, 308, math.Inf(1)},
		{-1, 2, 308, math.Inf(-1)},
		{1, 1, -5000, 0},
	}
	for _, test := range tests {
		n := numScan{sign: test.sign, coef: test.coef, exp: test.exp}
		if got := n.float64(); got != test.want {
			t.Errorf("(%d, %d, %d).float64(): got %g, want %g",
				test.sign, test.coef, test.exp, got, test.want)
		}
	}
}
