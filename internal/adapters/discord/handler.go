package discord

import (
	"locobot/internal/ports/input"
	"locobot/internal/ports/output"
	"locobot/internal/repository"
)

// LocalizerFunc returns the strings of the locale closest to a client locale.
type LocalizerFunc func(locale string) output.StringRepository

// Handler handles Discord interactions using use cases.
type Handler struct {
	stringUseCase input.StringUseCase
	localize      LocalizerFunc
	strs          *repository.Holder
}

// NewHandler creates a Handler. strs must be bound before interactions arrive;
// its repository answers users whose client locale is unknown.
func NewHandler(
	stringUseCase input.StringUseCase,
	localize LocalizerFunc,
	strs *repository.Holder,
) *Handler {
	return &Handler{
		stringUseCase: stringUseCase,
		localize:      localize,
		strs:          strs,
	}
}

// stringsFor picks the repository used to answer a user with the given client locale.
func (h *Handler) stringsFor(locale string) output.StringRepository {
	if locale != "" && h.localize != nil {
		return h.localize(locale)
	}
	return h.strs.MustGet()
}
