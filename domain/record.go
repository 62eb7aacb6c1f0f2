package domain

import (
	"strings"
)

// RawRecord is a provider-native article document as decoded from JSON.
// Field access goes through ordered fallback lookups instead of per-provider
// structs, since providers disagree on both field names and nesting.
type RawRecord map[string]any

// FirstString returns the first non-empty string found under the given keys,
// evaluated in order. A key may be a dotted path into nested objects
// ("headline.main"). Values that are not strings are skipped, so a plain
// "byline" key does not match a byline object.
func (r RawRecord) FirstString(keys ...string) string {
	for _, key := range keys {
		if s, ok := r.lookupString(key); ok {
			return s
		}
	}

	return ""
}

func (r RawRecord) lookupString(path string) (string, bool) {
	var current any = map[string]any(r)

	for _, segment := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return "", false
		}

		current, ok = obj[segment]
		if !ok {
			return "", false
		}
	}

	s, ok := current.(string)
	if !ok || s == "" {
		return "", false
	}

	return s, true
}

// Slice returns the array value under the given key, or nil.
func (r RawRecord) Slice(key string) []any {
	values, _ := r[key].([]any)
	return values
}
