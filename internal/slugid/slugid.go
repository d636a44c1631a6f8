// Package slugid derives URL-safe identifiers from display names.
// Collision handling (the base-N suffix loop) lives in the store save path,
// next to the uniqueness lookups it depends on.
package slugid

import (
	"fmt"

	"github.com/gosimple/slug"
)

// Make normalizes a display name to a URL-safe base slug. Cyrillic and other
// non-ASCII input is transliterated, whitespace collapses to hyphens.
func Make(name string) string {
	return slug.Make(name)
}

// WithSuffix returns the candidate for the n-th collision-resolution attempt.
func WithSuffix(base string, n int) string {
	return fmt.Sprintf("%s-%d", base, n)
}
