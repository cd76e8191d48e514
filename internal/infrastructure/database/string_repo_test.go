package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locobot/internal/domain"
	"locobot/internal/domain/entities"
)

func TestStringEntryToDomain(t *testing.T) {
	now := time.Date(2026, 2, 15, 14, 0, 0, 0, time.UTC)

	got := stringEntryToDomain(stringRow{
		ID:        7,
		Locale:    "fr",
		Key:       "greeting",
		Value:     "Salut",
		CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
	})

	assert.Equal(t, entities.StringEntry{
		ID:        7,
		Locale:    "fr",
		Key:       "greeting",
		Value:     "Salut",
		CreatedAt: now,
	}, got)
	assert.True(t, got.UpdatedAt.IsZero())
}

// Runs against a real PostgreSQL when LOCOBOT_TEST_DATABASE_URL is set.
func TestStringRepositoryPostgres(t *testing.T) {
	dsn := os.Getenv("LOCOBOT_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("LOCOBOT_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	version, err := RunMigrations(dsn)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	pool, err := NewPool(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()
	_, err = pool.Exec(ctx, "TRUNCATE strings")
	require.NoError(t, err)

	repo := NewStringRepository(pool)

	entry := &entities.StringEntry{Locale: "fr", Key: "greeting", Value: "Salut"}
	require.NoError(t, repo.Upsert(ctx, entry))
	assert.NotZero(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())

	entry.Value = "Coucou"
	require.NoError(t, repo.Upsert(ctx, entry))
	require.NoError(t, repo.Upsert(ctx, &entities.StringEntry{Locale: "en", Key: "greeting", Value: "Hi"}))

	fr, err := repo.ListByLocale(ctx, "fr")
	require.NoError(t, err)
	require.Len(t, fr, 1)
	assert.Equal(t, "Coucou", fr[0].Value)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	locales, err := repo.Locales(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "fr"}, locales)

	require.NoError(t, repo.Delete(ctx, "fr", "greeting"))
	assert.ErrorIs(t, repo.Delete(ctx, "fr", "greeting"), domain.ErrStringNotFound)
}
