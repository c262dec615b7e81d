// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jparse"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		input string
		want  []string // substrings of the rendered error
	}{
		{``, []string{"unexpected end of input"}},
		{`1 x`, []string{"syntax error", "'x'", "1:2"}},
		{`"\ud800"`, []string{"invalid escape", `\ud800`}},
		{`1e999`, []string{"numeric overflow", "1e999"}},
	}
	for _, test := range tests {
		_, err := jparse.Parse([]byte(test.input))
		if err == nil {
			t.Errorf("Parse %#q: expected an error", test.input)
			continue
		}
		for _, want := range test.want {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("Parse %#q: error %q does not mention %q", test.input, err, want)
			}
		}
	}
}

func TestCodeString(t *testing.T) {
	tests := []struct {
		code jparse.Code
		want string
	}{
		{jparse.Syntax, "syntax error"},
		{jparse.EndOfInput, "unexpected end of input"},
		{jparse.BadEscape, "invalid escape"},
		{jparse.NumOverflow, "numeric overflow"},
		{jparse.BadKey, "invalid object key"},
		{jparse.NoDecimal, "missing decimal backend"},
		{jparse.Code(100), "unsupported value"},
	}
	for _, test := range tests {
		if got := test.code.String(); got != test.want {
			t.Errorf("Code(%d).String(): got %q, want %q", test.code, got, test.want)
		}
	}
}
