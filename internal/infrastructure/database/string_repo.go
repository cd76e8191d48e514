package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"locobot/internal/domain"
	"locobot/internal/domain/entities"
	"locobot/internal/ports/output"
)

var _ output.StringStore = (*StringRepository)(nil)

const (
	listAllStrings = `SELECT id, locale, key, value, created_at, updated_at
FROM strings ORDER BY locale, key`

	listStringsByLocale = `SELECT id, locale, key, value, created_at, updated_at
FROM strings WHERE locale = $1 ORDER BY key`

	upsertString = `INSERT INTO strings (locale, key, value)
VALUES ($1, $2, $3)
ON CONFLICT (locale, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
RETURNING id, locale, key, value, created_at, updated_at`

	deleteString = `DELETE FROM strings WHERE locale = $1 AND key = $2`

	listLocales = `SELECT DISTINCT locale FROM strings ORDER BY locale`
)

type StringRepository struct {
	db DBTX
}

func NewStringRepository(db DBTX) *StringRepository {
	return &StringRepository{db: db}
}

func (r *StringRepository) ListAll(ctx context.Context) ([]entities.StringEntry, error) {
	out, err := r.list(ctx, listAllStrings)
	if err != nil {
		return nil, fmt.Errorf("list strings: %w", err)
	}
	return out, nil
}

func (r *StringRepository) ListByLocale(ctx context.Context, locale string) ([]entities.StringEntry, error) {
	out, err := r.list(ctx, listStringsByLocale, locale)
	if err != nil {
		return nil, fmt.Errorf("list strings by locale: %w", err)
	}
	return out, nil
}

func (r *StringRepository) list(ctx context.Context, query string, args ...any) ([]entities.StringEntry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[stringRow])
	if err != nil {
		return nil, err
	}
	out := make([]entities.StringEntry, len(collected))
	for i := range collected {
		out[i] = stringEntryToDomain(collected[i])
	}
	return out, nil
}

func (r *StringRepository) Upsert(ctx context.Context, entry *entities.StringEntry) error {
	rows, err := r.db.Query(ctx, upsertString, entry.Locale, entry.Key, entry.Value)
	if err != nil {
		return fmt.Errorf("upsert string: %w", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[stringRow])
	if err != nil {
		return fmt.Errorf("upsert string: %w", err)
	}
	*entry = stringEntryToDomain(row)
	return nil
}

func (r *StringRepository) Delete(ctx context.Context, locale, key string) error {
	tag, err := r.db.Exec(ctx, deleteString, locale, key)
	if err != nil {
		return fmt.Errorf("delete string: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete string %s/%s: %w", locale, key, domain.ErrStringNotFound)
	}
	return nil
}

func (r *StringRepository) Locales(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, listLocales)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	locales, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	return locales, nil
}
