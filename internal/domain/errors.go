package domain

import "errors"

// Domain errors.
var (
	ErrAlreadyInitialized = errors.New("dépôt de chaînes déjà initialisé")
	ErrNotInitialized     = errors.New("dépôt de chaînes non initialisé")
	ErrNilRepository      = errors.New("dépôt de chaînes nil")
	ErrStringNotFound     = errors.New("chaîne non trouvée")
	ErrInvalidLocale      = errors.New("locale invalide")
	ErrInvalidKey         = errors.New("clé invalide")
	ErrEmptyValue         = errors.New("la valeur ne peut pas être vide")
	ErrInvalidValue       = errors.New("la valeur n'est pas un modèle valide")
	ErrReadOnly           = errors.New("aucun stockage configuré, dépôt en lecture seule")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrAlreadyInitialized, "already_initialized"},
	{ErrNotInitialized, "not_initialized"},
	{ErrNilRepository, "nil_repository"},
	{ErrStringNotFound, "string_not_found"},
	{ErrInvalidLocale, "invalid_locale"},
	{ErrInvalidKey, "invalid_key"},
	{ErrEmptyValue, "empty_value"},
	{ErrInvalidValue, "invalid_value"},
	{ErrReadOnly, "read_only"},
}

// Code returns the stable code of the domain error wrapped in err,
// or "" when err is not a domain error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
