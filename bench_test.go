// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/creachadair/jparse"
)

func BenchmarkParse(b *testing.B) {
	input := benchDocument(200)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := jparse.Parse(input); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}

func BenchmarkParseInterned(b *testing.B) {
	input := benchDocument(200)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := jparse.Parse(input, jparse.OptKeys(jparse.KeyIntern)); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}

// benchDocument generates an array of n records mixing the value types
// the parser dispatches on.
func benchDocument(n int) []byte {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"id": %d, "frac": %d.%d, "name": "record é%d", "tags": ["a", "b"], "ok": %v, "gap": null}`,
			i, i, i%10, i, i%2 == 0)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}
