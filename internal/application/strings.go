package application

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"locobot/internal/domain"
	"locobot/internal/domain/entities"
	"locobot/internal/ports/input"
	"locobot/internal/ports/output"
)

// Catalogue is the in-process message catalogue the service keeps in sync
// with the store.
type Catalogue interface {
	Resolve(locale, key string, data map[string]any) (string, error)
	AddMessages(locale string, msgs map[string]string) error
	ReplaceOverrides(overrides map[string]map[string]string) error
	RemoveMessage(locale, key string) error
	Locales() []string
	DefaultLocale() string
}

var _ input.StringUseCase = (*StringService)(nil)

type StringService struct {
	catalogue Catalogue
	store     output.StringStore
}

// NewStringService creates a StringService. store may be nil, in which case
// the service is read-only.
func NewStringService(catalogue Catalogue, store output.StringStore) *StringService {
	return &StringService{
		catalogue: catalogue,
		store:     store,
	}
}

// Load rebuilds the catalogue overrides from the store, so rows deleted since
// the last load disappear. Rows that do not validate are skipped.
func (s *StringService) Load(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, nil
	}
	entries, err := s.store.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	byLocale := map[string]map[string]string{}
	loaded := 0
	for _, e := range entries {
		tag, err := domain.ParseLocale(e.Locale)
		if err == nil {
			err = domain.ValidateValue(e.Key, e.Value)
		}
		if err != nil {
			log.Printf("⚠️ Chaîne ignorée %s/%s: %v", e.Locale, e.Key, err)
			continue
		}
		locale := tag.String()
		if byLocale[locale] == nil {
			byLocale[locale] = map[string]string{}
		}
		byLocale[locale][e.Key] = e.Value
		loaded++
	}
	if err := s.catalogue.ReplaceOverrides(byLocale); err != nil {
		return 0, fmt.Errorf("load strings: %w", err)
	}
	return loaded, nil
}

func (s *StringService) Lookup(ctx context.Context, locale, key string, data map[string]any) (string, error) {
	if err := domain.ValidateKey(key); err != nil {
		return "", err
	}
	if strings.TrimSpace(locale) == "" {
		locale = s.catalogue.DefaultLocale()
	}
	tag, err := domain.ParseLocale(locale)
	if err != nil {
		return "", err
	}
	return s.catalogue.Resolve(tag.String(), key, data)
}

func (s *StringService) Set(ctx context.Context, locale, key, value string) error {
	if s.store == nil {
		return domain.ErrReadOnly
	}
	if err := domain.ValidateKey(key); err != nil {
		return err
	}
	tag, err := domain.ParseLocale(locale)
	if err != nil {
		return err
	}
	if err := domain.ValidateValue(key, value); err != nil {
		return err
	}

	entry := &entities.StringEntry{Locale: tag.String(), Key: key, Value: value}
	if err := s.store.Upsert(ctx, entry); err != nil {
		return err
	}
	return s.catalogue.AddMessages(entry.Locale, map[string]string{entry.Key: entry.Value})
}

func (s *StringService) Remove(ctx context.Context, locale, key string) error {
	if s.store == nil {
		return domain.ErrReadOnly
	}
	if err := domain.ValidateKey(key); err != nil {
		return err
	}
	tag, err := domain.ParseLocale(locale)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, tag.String(), key); err != nil {
		return err
	}
	return s.catalogue.RemoveMessage(tag.String(), key)
}

// Locales lists the catalogue locales plus any locale only present in the store.
func (s *StringService) Locales(ctx context.Context) ([]string, error) {
	locales := s.catalogue.Locales()
	if s.store == nil {
		return locales, nil
	}
	stored, err := s.store.Locales(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(locales))
	for _, l := range locales {
		seen[l] = true
	}
	var extra []string
	for _, l := range stored {
		if !seen[l] {
			seen[l] = true
			extra = append(extra, l)
		}
	}
	sort.Strings(extra)
	return append(locales, extra...), nil
}
