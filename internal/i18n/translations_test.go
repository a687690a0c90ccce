package i18n

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator_Label(t *testing.T) {
	tr, err := NewTranslator()
	require.NoError(t, err)

	tests := []struct {
		key    string
		locale Locale
		want   string
	}{
		{LabelAddress, English, "Address"},
		{LabelAddress, German, "Adresse"},
		{LabelAddress, French, "Adresse"},
		{LabelPhone, English, "Phone"},
		{LabelPhone, German, "Telefon"},
		{LabelPhone, French, "Téléphone"},
		{LabelNoEnd, English, "Present"},
		{LabelNoEnd, German, "Heute"},
		{LabelNoEnd, French, "Maintenant"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"/"+string(tt.locale), func(t *testing.T) {
			got, err := tr.Label(tt.key, tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslator_UnsupportedLocale(t *testing.T) {
	tr, err := NewTranslator()
	require.NoError(t, err)

	_, err = tr.Label(LabelNoEnd, Locale("es"))
	require.Error(t, err)

	var lookupErr *LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "es", lookupErr.Locale)
	assert.Contains(t, err.Error(), "unsupported locale")
}

func TestTranslator_UnknownKey(t *testing.T) {
	tr, err := NewTranslator()
	require.NoError(t, err)

	_, err = tr.Label("email", English)
	require.Error(t, err)

	var lookupErr *LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "email", lookupErr.Key)
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		code    string
		want    Locale
		wantErr bool
	}{
		{"en", English, false},
		{"EN", English, false},
		{" fr ", French, false},
		{"de", German, false},
		{"es", "", true},
		{"de-DE", "", true},
		{"", "", true},
		{"not a locale", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseLocale(tt.code)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLocales(t *testing.T) {
	locales, err := ParseLocales([]string{"fr", "en"})
	require.NoError(t, err)
	assert.Equal(t, []Locale{French, English}, locales)

	_, err = ParseLocales([]string{"en", "EN"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than once")
}
