package entities

import "time"

// StringEntry is a localized string override persisted outside the embedded catalogue.
type StringEntry struct {
	ID        uint
	Locale    string
	Key       string
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
