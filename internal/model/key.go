package model

import (
	"math"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const keyCacheSize = 4096

// Road ids and LRP codes repeat on every row; normalized forms are cached.
var keyCache, _ = lru.New[string, string](keyCacheSize)

// NormalizeKey canonicalizes a join key (road id or LRP code) so that keys
// compare case-insensitively and ignore surrounding whitespace.
func NormalizeKey(s string) string {
	if k, ok := keyCache.Get(s); ok {
		return k
	}
	k := normalizeKey(s)
	keyCache.Add(s, k)
	return k
}

func normalizeKey(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// A Caser is stateful; build one per call so roads can be keyed concurrently.
	return cases.Upper(language.Und).String(s)
}

// SameKey reports whether two raw keys are equal after normalization.
func SameKey(a, b string) bool {
	return NormalizeKey(a) == NormalizeKey(b)
}

// Missing returns the marker used for an absent numeric value.
func Missing() float64 {
	return math.NaN()
}

// IsMissing reports whether v is an absent numeric value.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}
