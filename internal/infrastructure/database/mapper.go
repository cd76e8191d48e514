package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"locobot/internal/domain/entities"
)

type stringRow struct {
	ID        int64              `db:"id"`
	Locale    string             `db:"locale"`
	Key       string             `db:"key"`
	Value     string             `db:"value"`
	CreatedAt pgtype.Timestamptz `db:"created_at"`
	UpdatedAt pgtype.Timestamptz `db:"updated_at"`
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func stringEntryToDomain(r stringRow) entities.StringEntry {
	return entities.StringEntry{
		ID:        uint(r.ID),
		Locale:    r.Locale,
		Key:       r.Key,
		Value:     r.Value,
		CreatedAt: pgtypeTimestamptzToTime(r.CreatedAt),
		UpdatedAt: pgtypeTimestamptzToTime(r.UpdatedAt),
	}
}
