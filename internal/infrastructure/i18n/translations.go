package i18n

import (
	"embed"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"locobot/internal/domain"
	"locobot/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var catalogueFiles = []string{"active.en.toml", "active.fr.toml"}

// Ensure Translator implements the output.Translator port.
var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
//
// Overrides added with AddMessages are kept so the bundle can be rebuilt
// from the embedded catalogue when one of them is removed.
type Translator struct {
	mu              sync.RWMutex
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	overrides       map[language.Tag]map[string]string
}

// NewTranslator builds a Translator backed by go-i18n using the given default
// locale (e.g. "fr").
//
// It loads translations from the embedded active.*.toml files.
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	t := &Translator{
		defaultLanguage: tag,
		overrides:       map[language.Tag]map[string]string{},
	}
	t.bundle = t.newBundle()
	return t
}

func (t *Translator) newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(t.defaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range catalogueFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("i18n: failed to load %s: %v", file, err)
		}
	}
	for tag, msgs := range t.overrides {
		if err := bundle.AddMessages(tag, toMessages(msgs)...); err != nil {
			log.Printf("i18n: failed to restore overrides for %s: %v", tag, err)
		}
	}
	return bundle
}

func toMessages(msgs map[string]string) []*i18n.Message {
	out := make([]*i18n.Message, 0, len(msgs))
	for id, other := range msgs {
		out = append(out, &i18n.Message{ID: id, Other: other})
	}
	return out
}

// DefaultLocale returns the locale used when a key is missing in the requested one.
func (t *Translator) DefaultLocale() string {
	return t.defaultLanguage.String()
}

// Resolve renders the message identified by key for locale, falling back to
// the default locale. It returns domain.ErrStringNotFound when neither has it.
func (t *Translator) Resolve(locale, key string, data map[string]any) (string, error) {
	if key == "" {
		return "", fmt.Errorf("%w: clé vide", domain.ErrStringNotFound)
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	t.mu.RLock()
	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	t.mu.RUnlock()
	if err != nil {
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) {
			return "", fmt.Errorf("%w: %s (%v)", domain.ErrStringNotFound, key, languages)
		}
		return "", fmt.Errorf("localize %s: %w", key, err)
	}
	return msg, nil
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := t.Resolve(locale, key, data)
	if err != nil {
		log.Printf("i18n: localize failed (key=%s, locale=%s): %v", key, locale, err)
		return key
	}
	return msg
}

// AddMessages merges msgs (key -> value) into the catalogue of locale.
func (t *Translator) AddMessages(locale string, msgs map[string]string) error {
	tag, err := domain.ParseLocale(locale)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.bundle.AddMessages(tag, toMessages(msgs)...); err != nil {
		return fmt.Errorf("i18n: add messages for %s: %w", tag, err)
	}
	if t.overrides[tag] == nil {
		t.overrides[tag] = map[string]string{}
	}
	for k, v := range msgs {
		t.overrides[tag][k] = v
	}
	return nil
}

// ReplaceOverrides swaps every override for overrides (locale -> key -> value)
// and rebuilds the bundle, so overrides missing from the new set disappear.
func (t *Translator) ReplaceOverrides(overrides map[string]map[string]string) error {
	next := make(map[language.Tag]map[string]string, len(overrides))
	for locale, msgs := range overrides {
		tag, err := domain.ParseLocale(locale)
		if err != nil {
			return err
		}
		if len(msgs) == 0 {
			continue
		}
		if next[tag] == nil {
			next[tag] = map[string]string{}
		}
		for k, v := range msgs {
			next[tag][k] = v
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.overrides = next
	t.bundle = t.newBundle()
	return nil
}

// RemoveMessage drops an override. The embedded value for key, if any,
// becomes visible again.
func (t *Translator) RemoveMessage(locale, key string) error {
	tag, err := domain.ParseLocale(locale)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.overrides[tag][key]; !ok {
		return nil
	}
	delete(t.overrides[tag], key)
	if len(t.overrides[tag]) == 0 {
		delete(t.overrides, tag)
	}
	t.bundle = t.newBundle()
	return nil
}

// Locales lists the locales known to the catalogue, default first.
func (t *Translator) Locales() []string {
	t.mu.RLock()
	tags := t.bundle.LanguageTags()
	t.mu.RUnlock()

	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == t.defaultLanguage {
			continue
		}
		out = append(out, tag.String())
	}
	sort.Strings(out)
	return append([]string{t.defaultLanguage.String()}, out...)
}

// Match returns the supported locale closest to raw (e.g. Discord's "en-US").
// Unknown or malformed input yields the default locale.
func (t *Translator) Match(raw string) string {
	t.mu.RLock()
	tags := t.bundle.LanguageTags()
	t.mu.RUnlock()

	requested, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(requested) == 0 {
		return t.defaultLanguage.String()
	}
	_, i, confidence := language.NewMatcher(tags).Match(requested...)
	if confidence == language.No {
		return t.defaultLanguage.String()
	}
	return tags[i].String()
}

// For returns a StringRepository view resolving strings in locale.
func (t *Translator) For(locale string) *LocaleStrings {
	return &LocaleStrings{translator: t, locale: t.Match(locale)}
}
