package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips markup from provider-supplied text fragments before they
// are persisted. Providers occasionally embed HTML in titles and bodies.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer with a strict text-only policy.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Clean removes all markup from the given fragment and trims surrounding
// whitespace.
func (s *Sanitizer) Clean(fragment string) string {
	return strings.TrimSpace(s.policy.Sanitize(fragment))
}
