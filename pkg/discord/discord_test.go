package discord

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locobot/internal/domain"
	"locobot/internal/infrastructure/i18n"
)

func TestDomainErrorMessage(t *testing.T) {
	fr := i18n.NewTranslator("en").For("fr")

	assert.Equal(t, "", DomainErrorMessage(fr, nil))
	assert.Equal(t, "Aucune chaîne pour cette clé.",
		DomainErrorMessage(fr, fmt.Errorf("lookup: %w", domain.ErrStringNotFound)))
	assert.Equal(t, "Le dépôt de chaînes est déjà initialisé.",
		DomainErrorMessage(fr, domain.ErrAlreadyInitialized))
	assert.Equal(t, "Une erreur est survenue.", DomainErrorMessage(fr, errors.New("boom")))
}

func TestTranslateDomainErrorCoversEveryCode(t *testing.T) {
	en := i18n.NewTranslator("en").For("en")
	for _, err := range []error{
		domain.ErrAlreadyInitialized,
		domain.ErrNotInitialized,
		domain.ErrNilRepository,
		domain.ErrStringNotFound,
		domain.ErrInvalidLocale,
		domain.ErrInvalidKey,
		domain.ErrEmptyValue,
		domain.ErrInvalidValue,
		domain.ErrReadOnly,
	} {
		code := domain.Code(err)
		require.NotEmpty(t, code, err.Error())
		msg := TranslateDomainError(en, code)
		assert.NotEqual(t, "error_"+code, msg, "missing catalogue entry for %s", code)
		assert.NotEqual(t, "Something went wrong.", msg)
	}
}

func TestBuildEmbeds(t *testing.T) {
	en := i18n.NewTranslator("en").For("en")

	e := BuildStringEmbed(en, "greeting", "fr", "Salut")
	assert.Equal(t, "LocoBot", e.Title)
	assert.Equal(t, "**greeting** (fr) : Salut", e.Description)

	e = BuildLocalesEmbed(en, []string{"en", "fr"})
	assert.Equal(t, "Available locales: `en`, `fr`", e.Description)
}

func TestExtractCommandOptions(t *testing.T) {
	data := discordgo.ApplicationCommandInteractionData{
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "key", Type: discordgo.ApplicationCommandOptionString, Value: " greeting "},
			{Name: "locale", Type: discordgo.ApplicationCommandOptionString, Value: "fr "},
			{Name: "value", Type: discordgo.ApplicationCommandOptionString, Value: "  indented\n"},
			{Name: "count", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(3)},
			nil,
		},
	}

	opts := ExtractCommandOptions(data)
	assert.Equal(t, "greeting", opts.Get("key"))
	assert.Equal(t, "fr", opts.Get("locale"))
	assert.Equal(t, "", opts.Get("count"))
	assert.Equal(t, "  indented\n", opts.Raw("value"), "free text keeps its whitespace")
	assert.Equal(t, "", opts.Get("missing"))
}
