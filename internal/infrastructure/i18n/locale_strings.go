package i18n

import "locobot/internal/ports/output"

var _ output.StringRepository = (*LocaleStrings)(nil)

// LocaleStrings is a Translator pinned to one locale.
type LocaleStrings struct {
	translator *Translator
	locale     string
}

func (s *LocaleStrings) Locale() string { return s.locale }

func (s *LocaleStrings) String(key string) string {
	return s.translator.T(s.locale, key, nil)
}

func (s *LocaleStrings) Format(key string, data map[string]any) string {
	return s.translator.T(s.locale, key, data)
}
