package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type text struct {
	Name string
}

func TestTable_Resolve_RequestedLanguage(t *testing.T) {
	tbl := Table[text]{
		"ru": {Name: "Насос"},
		"en": {Name: "Pump"},
	}

	got, lang, ok := tbl.Resolve("en", "ru")
	require.True(t, ok)
	assert.Equal(t, "en", lang)
	assert.Equal(t, "Pump", got.Name)
}

func TestTable_Resolve_FallsBackToDefault(t *testing.T) {
	tbl := Table[text]{
		"ru": {Name: "Насос"},
		"en": {Name: "Pump"},
	}

	got, lang, ok := tbl.Resolve("kk", "ru")
	require.True(t, ok)
	assert.Equal(t, "ru", lang)
	assert.Equal(t, "Насос", got.Name)
}

func TestTable_Resolve_AnyLanguageIsDeterministic(t *testing.T) {
	// Neither the requested nor the default language has a row; the smallest
	// remaining code wins, and the result is never empty.
	tbl := Table[text]{
		"kk": {Name: "Сорғы"},
		"en": {Name: "Pump"},
	}

	got, lang, ok := tbl.Resolve("de", "ru")
	require.True(t, ok)
	assert.Equal(t, "en", lang)
	assert.NotEmpty(t, got.Name)
}

func TestTable_Resolve_EmptyTable(t *testing.T) {
	var tbl Table[text]

	_, lang, ok := tbl.Resolve("ru", "ru")
	assert.False(t, ok)
	assert.Empty(t, lang)
}

func TestTable_Languages_Sorted(t *testing.T) {
	tbl := Table[text]{"ru": {}, "en": {}, "kk": {}}
	assert.Equal(t, []string{"en", "kk", "ru"}, tbl.Languages())
}
