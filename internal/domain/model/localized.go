package model

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

type Locale string

const (
	LocaleEnglish Locale = "en_US"
	LocaleArabic  Locale = "ar_001"
)

func (l Locale) OrDefault() Locale {
	if strings.TrimSpace(string(l)) == "" {
		return LocaleEnglish
	}
	return l
}

type TextKind int

const (
	TextPlain TextKind = iota
	TextLocalized
)

// LocalizedText is either one plain string or a set of per-language values.
// The zero value is an empty plain text.
type LocalizedText struct {
	kind   TextKind
	plain  string
	values map[Locale]string
}

type Translation struct {
	Code  Locale `json:"code"`
	Value string `json:"value"`
}

func PlainText(value string) LocalizedText {
	return LocalizedText{kind: TextPlain, plain: value}
}

func Localized(values map[Locale]string) LocalizedText {
	copied := make(map[Locale]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return LocalizedText{kind: TextLocalized, values: copied}
}

// ConvertToTranslations fans a single string out to both dashboard languages.
func ConvertToTranslations(value string) LocalizedText {
	return Localized(map[Locale]string{
		LocaleEnglish: value,
		LocaleArabic:  value,
	})
}

func (t LocalizedText) Kind() TextKind {
	return t.kind
}

func (t LocalizedText) Plain() string {
	return t.plain
}

func (t LocalizedText) Values() map[Locale]string {
	copied := make(map[Locale]string, len(t.values))
	for k, v := range t.values {
		copied[k] = v
	}
	return copied
}

// IsBlank reports whether no language carries a non-empty value.
func (t LocalizedText) IsBlank() bool {
	if t.kind == TextPlain {
		return strings.TrimSpace(t.plain) == ""
	}
	for _, v := range t.values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Resolve picks the display string: requested locale, en_US, ar_001, then the
// first non-empty value by language code, then "".
func (t LocalizedText) Resolve(locale Locale) string {
	if t.kind == TextPlain {
		return t.plain
	}
	for _, candidate := range []Locale{locale, LocaleEnglish, LocaleArabic} {
		if candidate == "" {
			continue
		}
		if v := t.values[candidate]; v != "" {
			return v
		}
	}
	for _, code := range t.sortedCodes() {
		if v := t.values[code]; v != "" {
			return v
		}
	}
	return ""
}

// WithLocale returns a copy with one language replaced. A plain text is
// promoted to localized, keeping its value under en_US.
func (t LocalizedText) WithLocale(locale Locale, value string) LocalizedText {
	values := t.Values()
	if t.kind == TextPlain && t.plain != "" {
		values[LocaleEnglish] = t.plain
	}
	values[locale.OrDefault()] = value
	return Localized(values)
}

// WithSuffix appends suffix to every non-empty value.
func (t LocalizedText) WithSuffix(suffix string) LocalizedText {
	if t.kind == TextPlain {
		if t.plain == "" {
			return t
		}
		return PlainText(t.plain + suffix)
	}
	values := t.Values()
	for k, v := range values {
		if v != "" {
			values[k] = v + suffix
		}
	}
	return Localized(values)
}

func (t LocalizedText) Translations() []Translation {
	if t.kind == TextPlain {
		if t.plain == "" {
			return nil
		}
		return ConvertToTranslations(t.plain).Translations()
	}
	res := make([]Translation, 0, len(t.values))
	for _, code := range t.sortedCodes() {
		res = append(res, Translation{Code: code, Value: t.values[code]})
	}
	return res
}

func (t LocalizedText) sortedCodes() []Locale {
	codes := make([]Locale, 0, len(t.values))
	for code := range t.values {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// ParseLocalizedText decides the shape of a raw GraphQL value once.
// Odoo sends false for unset char fields.
func ParseLocalizedText(raw json.RawMessage) LocalizedText {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return LocalizedText{}
	}
	switch trimmed[0] {
	case 'n', 'f':
		return LocalizedText{}
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return PlainText(string(trimmed))
		}
		return PlainText(s)
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return PlainText(string(trimmed))
		}
		values := make(map[Locale]string, len(obj))
		for code, v := range obj {
			inner := ParseLocalizedText(v)
			if inner.kind == TextPlain && inner.plain == "" {
				continue
			}
			values[Locale(code)] = inner.Resolve(LocaleEnglish)
		}
		return Localized(values)
	default:
		return PlainText(string(trimmed))
	}
}

func (t LocalizedText) MarshalJSON() ([]byte, error) {
	if t.kind == TextPlain {
		return json.Marshal(t.plain)
	}
	out := make(map[string]string, len(t.values))
	for k, v := range t.values {
		out[string(k)] = v
	}
	return json.Marshal(out)
}

func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	*t = ParseLocalizedText(data)
	return nil
}
