package output

import (
	"context"

	"locobot/internal/domain/entities"
)

// StringStore persists string overrides keyed by (locale, key).
type StringStore interface {
	ListAll(ctx context.Context) ([]entities.StringEntry, error)
	ListByLocale(ctx context.Context, locale string) ([]entities.StringEntry, error)
	Upsert(ctx context.Context, entry *entities.StringEntry) error
	Delete(ctx context.Context, locale, key string) error
	Locales(ctx context.Context) ([]string, error)
}
