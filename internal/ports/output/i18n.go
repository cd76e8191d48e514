package output

// Translator exposes a minimal i18n contract for user-facing messages.
// Implementations provide message lookup + templating for a given locale.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}

// StringRepository resolves localized strings for a single locale.
// It is the capability bound once at startup and read by shared code.
type StringRepository interface {
	// Locale is the BCP 47 tag the repository resolves strings for.
	Locale() string
	// String returns the value of key, or key itself when it is unknown.
	String(key string) string
	// Format is String with template placeholders filled from data.
	Format(key string, data map[string]any) string
}
