package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{"en", language.English},
		{"en-GB", language.English},
		{"ru", language.Russian},
		{"ru-RU", language.Russian},
		{" RU ", language.Russian},
		{"", language.English},
		{"not a locale!", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, Lookup(tt.locale).Tag)
		})
	}
}

func TestParseBool(t *testing.T) {
	truthy := []string{"1", "true", "TRUE", "y", "Y", "yes", "Yes", "да", "Да", "д", " y "}
	for _, in := range truthy {
		v, ok := ParseBool(in)
		assert.True(t, ok, in)
		assert.True(t, v, in)
	}

	falsy := []string{"0", "false", "n", "no", "NO", "нет", "Нет", "н"}
	for _, in := range falsy {
		v, ok := ParseBool(in)
		assert.True(t, ok, in)
		assert.False(t, v, in)
	}

	for _, in := range []string{"", "maybe", "2", "yess", "ja"} {
		_, ok := ParseBool(in)
		assert.False(t, ok, in)
	}
}

func TestFormatBool(t *testing.T) {
	assert.Equal(t, "Yes", Default().FormatBool(true))
	assert.Equal(t, "No", Default().FormatBool(false))
	assert.Equal(t, "Да", Lookup("ru").FormatBool(true))
	assert.Equal(t, "Нет", Lookup("ru").FormatBool(false))
}
