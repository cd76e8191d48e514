package domain

import (
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/language"
)

// MaxKeyLength is the longest accepted string key, in bytes.
const MaxKeyLength = 128

// ValidateKey checks that key is a catalogue identifier such as "welcome.title".
func ValidateKey(key string) error {
	if key == "" || len(key) > MaxKeyLength {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_' || r == '.' || r == '-':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return nil
}

// ParseLocale parses a BCP 47 locale and returns its canonical form.
func ParseLocale(locale string) (language.Tag, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.Und, fmt.Errorf("%w: vide", ErrInvalidLocale)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, locale, err)
	}
	return tag, nil
}

// ValidateValue checks that value is a non-blank message that renders as a
// go-i18n template.
func ValidateValue(key, value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrEmptyValue
	}
	if _, err := template.New(key).Parse(value); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return nil
}
