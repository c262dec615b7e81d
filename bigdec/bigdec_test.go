// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package bigdec_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/creachadair/jparse"
	"github.com/creachadair/jparse/bigdec"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	testCases := []struct {
		name string
		sign int
		coef int64
		exp  int
		want string
	}{
		{name: "positive fraction", sign: 1, coef: 150, exp: -2, want: "1.5"},
		{name: "negative fraction", sign: -1, coef: 15, exp: -1, want: "-1.5"},
		{name: "scaled integer", sign: 1, coef: 42, exp: 3, want: "42000"},
		{name: "zero", sign: 1, coef: 0, exp: -5, want: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := bigdec.Maker{}.Make(tc.sign, big.NewInt(tc.coef), tc.exp)
			require.NoError(t, err)

			want := decimal.RequireFromString(tc.want)
			assert.True(t, d.(decimal.Decimal).Equal(want),
				"got %s, want %s", d, want)
		})
	}
}

func TestMakeExponentRange(t *testing.T) {
	_, err := bigdec.Maker{}.Make(1, big.NewInt(1), math.MaxInt32+1)
	assert.Error(t, err)
}

func TestParseDecimalMode(t *testing.T) {
	opts := []jparse.Option{
		jparse.OptNumeric(jparse.NumDecimal),
		jparse.OptDecimalMaker(bigdec.Maker{}),
	}

	v, err := jparse.Parse([]byte(`-0.1`), opts...)
	require.NoError(t, err)

	d, ok := v.(jparse.Dec)
	require.True(t, ok, "got %T, want jparse.Dec", v)
	assert.Equal(t, "-0.1", d.Value().String())

	// Exponents far outside double range parse without overflow.
	v, err = jparse.Parse([]byte(`2e400`), opts...)
	require.NoError(t, err)
	got := v.(jparse.Dec).Value().(decimal.Decimal)
	want := decimal.New(2, 400)
	assert.True(t, got.Equal(want), "got %s, want %s", got, want)
}
