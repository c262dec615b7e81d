// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse

import "strconv"

// A KeyPolicy governs how object keys are processed during a parse.
type KeyPolicy byte

// Constants defining the valid KeyPolicy values.
const (
	// KeyRaw keeps each key exactly as scanned. This is the default.
	KeyRaw KeyPolicy = iota

	// KeyValidated accepts only keys present in the known-key set
	// provided via OptKnownKeys, and resolves each accepted key to the
	// canonical copy from that set. An unknown key aborts the parse.
	KeyValidated

	// KeyIntern caches every distinct key seen during the parse, so
	// that repeated keys across the document share one string.
	KeyIntern
)

var keyPolicyStr = [...]string{
	KeyRaw:       "raw",
	KeyValidated: "validated-intern",
	KeyIntern:    "always-intern",
}

func (k KeyPolicy) String() string {
	if int(k) >= len(keyPolicyStr) {
		return "invalid"
	}
	return keyPolicyStr[k]
}

// An interner caches distinct key strings so that duplicate keys in a
// single parse share storage. Each parse call owns its own interner;
// nothing is shared across calls.
type interner struct {
	cache map[string]string
}

func (n *interner) intern(s string) string {
	if c, ok := n.cache[s]; ok {
		return c
	}
	if n.cache == nil {
		n.cache = make(map[string]string)
	}
	n.cache[s] = s
	return s
}

// applyKey resolves a scanned object key under the configured policy.
// pos is the offset of the key's opening quote, used for error
// reporting.
func (p *parser) applyKey(key string, pos int) (string, *ParseError) {
	switch p.cfg.keys {
	case KeyValidated:
		if c, ok := p.cfg.known[key]; ok {
			return c, nil
		}
		return "", keyErr(pos, strconv.Quote(key))
	case KeyIntern:
		return p.keys.intern(key), nil
	default:
		return key, nil
	}
}
