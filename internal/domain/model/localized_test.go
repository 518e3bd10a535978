package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrefersRequestedLocale(t *testing.T) {
	text := Localized(map[Locale]string{LocaleEnglish: "Red", LocaleArabic: "أحمر"})
	assert.Equal(t, "أحمر", text.Resolve(LocaleArabic))
	assert.Equal(t, "Red", text.Resolve(LocaleEnglish))
}

func TestResolveFallbackOrder(t *testing.T) {
	cases := []struct {
		name   string
		text   LocalizedText
		locale Locale
		want   string
	}{
		{"english fallback", Localized(map[Locale]string{LocaleEnglish: "Red"}), LocaleArabic, "Red"},
		{"arabic fallback", Localized(map[Locale]string{LocaleArabic: "أحمر", "fr_FR": "Rouge"}), "de_DE", "أحمر"},
		{"first by code", Localized(map[Locale]string{"fr_FR": "Rouge", "de_DE": "Rot"}), "it_IT", "Rot"},
		{"empty values skipped", Localized(map[Locale]string{LocaleEnglish: "", "fr_FR": "Rouge"}), LocaleEnglish, "Rouge"},
		{"all empty", Localized(map[Locale]string{LocaleEnglish: ""}), LocaleEnglish, ""},
		{"plain", PlainText("Plain"), LocaleArabic, "Plain"},
		{"zero", LocalizedText{}, LocaleArabic, ""},
		{"no locale", Localized(map[Locale]string{LocaleArabic: "أحمر"}), "", "أحمر"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.text.Resolve(tc.locale))
		})
	}
}

func TestResolveIsPure(t *testing.T) {
	values := map[Locale]string{"fr_FR": "Rouge", "de_DE": "Rot", "es_ES": "Rojo"}
	text := Localized(values)
	first := text.Resolve("it_IT")
	for i := 0; i < 50; i++ {
		require.Equal(t, first, text.Resolve("it_IT"))
	}
	assert.Equal(t, values, text.Values())
	values["de_DE"] = "changed"
	assert.Equal(t, "Rot", text.Resolve("de_DE"))
}

func TestParseLocalizedText(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		kind TextKind
		want string
	}{
		{"null", `null`, TextPlain, ""},
		{"odoo false", `false`, TextPlain, ""},
		{"string", `"Engine Size"`, TextPlain, "Engine Size"},
		{"object", `{"en_US":"Engine","ar_001":"المحرك"}`, TextLocalized, "المحرك"},
		{"object with false", `{"en_US":false,"ar_001":"المحرك"}`, TextLocalized, "المحرك"},
		{"number", `42`, TextPlain, "42"},
		{"empty", ``, TextPlain, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text := ParseLocalizedText(json.RawMessage(tc.raw))
			assert.Equal(t, tc.kind, text.Kind())
			assert.Equal(t, tc.want, text.Resolve(LocaleArabic))
		})
	}
}

func TestConvertToTranslationsRoundTrip(t *testing.T) {
	for _, original := range []LocalizedText{
		PlainText("Sunroof"),
		Localized(map[Locale]string{LocaleArabic: "فتحة سقف"}),
		Localized(map[Locale]string{"fr_FR": "Toit ouvrant"}),
	} {
		resolved := original.Resolve(LocaleEnglish)
		roundTrip := ConvertToTranslations(resolved).Resolve(LocaleEnglish)
		assert.Equal(t, resolved, roundTrip)
	}

	converted := ConvertToTranslations("Blue")
	assert.Equal(t, []Translation{{Code: LocaleArabic, Value: "Blue"}, {Code: LocaleEnglish, Value: "Blue"}}, converted.Translations())
}

func TestWithLocaleAndSuffix(t *testing.T) {
	base := PlainText("Wheels")
	edited := base.WithLocale(LocaleArabic, "عجلات")
	assert.Equal(t, TextLocalized, edited.Kind())
	assert.Equal(t, "Wheels", edited.Resolve(LocaleEnglish))
	assert.Equal(t, "عجلات", edited.Resolve(LocaleArabic))
	assert.Equal(t, "Wheels", base.Resolve(LocaleArabic))

	copied := edited.WithSuffix(" (Copy)")
	assert.Equal(t, "Wheels (Copy)", copied.Resolve(LocaleEnglish))
	assert.Equal(t, "عجلات (Copy)", copied.Resolve(LocaleArabic))
	assert.Equal(t, "", LocalizedText{}.WithSuffix(" (Copy)").Resolve(LocaleEnglish))
}

func TestLocalizedTextJSON(t *testing.T) {
	var holder struct {
		Name LocalizedText `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"name":{"en_US":"Trim","ar_001":"الفئة"}}`), &holder))
	assert.Equal(t, "الفئة", holder.Name.Resolve(LocaleArabic))

	out, err := json.Marshal(holder)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":{"en_US":"Trim","ar_001":"الفئة"}}`, string(out))

	out, err = json.Marshal(PlainText("x"))
	require.NoError(t, err)
	assert.Equal(t, `"x"`, string(out))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, LocalizedText{}.IsBlank())
	assert.True(t, PlainText("  ").IsBlank())
	assert.True(t, Localized(map[Locale]string{LocaleEnglish: " "}).IsBlank())
	assert.False(t, Localized(map[Locale]string{LocaleArabic: "اسم"}).IsBlank())
}
