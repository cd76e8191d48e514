package discord

import (
	"locobot/internal/domain"
	"locobot/internal/ports/output"
)

// TranslateDomainError maps a domain error code to a user-facing message
// resolved from the catalogue of strs.
func TranslateDomainError(strs output.StringRepository, code string) string {
	switch code {
	case "already_initialized",
		"not_initialized",
		"nil_repository",
		"string_not_found",
		"invalid_locale",
		"invalid_key",
		"empty_value",
		"invalid_value",
		"read_only":
		return strs.String("error_" + code)
	default:
		return strs.String("error_generic")
	}
}

// DomainErrorMessage is a convenience helper that extracts the domain error code
// and immediately resolves it to a user-facing message.
func DomainErrorMessage(strs output.StringRepository, err error) string {
	if err == nil {
		return ""
	}
	return TranslateDomainError(strs, domain.Code(err))
}
