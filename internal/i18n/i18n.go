// Package i18n models the per-language satellite text of a content entity:
// a map from language code to a fixed set of localized fields, with an
// any-language fallback so a record never renders empty while at least one
// translation exists.
package i18n

import "sort"

// Table holds the language-variant fields of one entity, keyed by language
// code ("ru", "kk", "en", ...).
type Table[T any] map[string]T

// Resolve returns the text for the requested language. When the requested
// language has no row it falls back to the configured default language, and
// finally to the lexicographically smallest remaining code so that "any
// available language" is deterministic. ok is false only for an empty table.
func (t Table[T]) Resolve(requested, fallback string) (text T, lang string, ok bool) {
	if len(t) == 0 {
		return text, "", false
	}
	if v, found := t[requested]; found {
		return v, requested, true
	}
	if v, found := t[fallback]; found {
		return v, fallback, true
	}
	codes := t.Languages()
	return t[codes[0]], codes[0], true
}

// Languages lists the language codes present in the table, sorted.
func (t Table[T]) Languages() []string {
	codes := make([]string, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Has reports whether a translation row exists for the given language.
func (t Table[T]) Has(lang string) bool {
	_, found := t[lang]
	return found
}
