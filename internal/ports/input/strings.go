package input

import "context"

// StringUseCase looks up, overrides and lists localized strings.
type StringUseCase interface {
	Load(ctx context.Context) (int, error)
	Lookup(ctx context.Context, locale, key string, data map[string]any) (string, error)
	Set(ctx context.Context, locale, key, value string) error
	Remove(ctx context.Context, locale, key string) error
	Locales(ctx context.Context) ([]string, error)
}
