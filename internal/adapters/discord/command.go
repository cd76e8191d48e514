package discord

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"locobot/internal/ports/output"
	pkgdiscord "locobot/pkg/discord"
)

const (
	cmdStr        = "str"
	cmdStrSet     = "str-set"
	cmdStrUnset   = "str-unset"
	cmdStrLocales = "str-locales"

	optKey    = "key"
	optLocale = "locale"
	optValue  = "value"

	commandTimeout = 5 * time.Second
)

var manageGuild int64 = discordgo.PermissionManageGuild

// Commands builds the slash commands, described in the bound repository's
// locale and localized for every Discord locale the catalogue supports.
func (h *Handler) Commands(locales []string) []*discordgo.ApplicationCommand {
	strs := h.strs.MustGet()
	desc := func(key string) (string, *map[discordgo.Locale]string) {
		return strs.String(key), h.descriptionLocalizations(locales, key)
	}
	option := func(name, key string, required bool) *discordgo.ApplicationCommandOption {
		d, loc := desc(key)
		return &discordgo.ApplicationCommandOption{
			Type:                     discordgo.ApplicationCommandOptionString,
			Name:                     name,
			Description:              d,
			DescriptionLocalizations: *loc,
			Required:                 required,
		}
	}

	strDesc, strLoc := desc("cmd_str_description")
	setDesc, setLoc := desc("cmd_str_set_description")
	unsetDesc, unsetLoc := desc("cmd_str_unset_description")
	localesDesc, localesLoc := desc("cmd_str_locales_description")

	return []*discordgo.ApplicationCommand{
		{
			Name:                     cmdStr,
			Description:              strDesc,
			DescriptionLocalizations: strLoc,
			Options: []*discordgo.ApplicationCommandOption{
				option(optKey, "opt_key_description", true),
				option(optLocale, "opt_locale_description", false),
			},
		},
		{
			Name:                     cmdStrSet,
			Description:              setDesc,
			DescriptionLocalizations: setLoc,
			DefaultMemberPermissions: &manageGuild,
			Options: []*discordgo.ApplicationCommandOption{
				option(optLocale, "opt_locale_description", true),
				option(optKey, "opt_key_description", true),
				option(optValue, "opt_value_description", true),
			},
		},
		{
			Name:                     cmdStrUnset,
			Description:              unsetDesc,
			DescriptionLocalizations: unsetLoc,
			DefaultMemberPermissions: &manageGuild,
			Options: []*discordgo.ApplicationCommandOption{
				option(optLocale, "opt_locale_description", true),
				option(optKey, "opt_key_description", true),
			},
		},
		{
			Name:                     cmdStrLocales,
			Description:              localesDesc,
			DescriptionLocalizations: localesLoc,
		},
	}
}

// descriptionLocalizations maps each catalogue locale Discord knows about to
// the value of key in that locale.
func (h *Handler) descriptionLocalizations(locales []string, key string) *map[discordgo.Locale]string {
	out := map[discordgo.Locale]string{}
	if h.localize == nil {
		return &out
	}
	for _, l := range locales {
		dl := discordgo.Locale(l)
		if _, ok := discordgo.Locales[dl]; !ok {
			continue
		}
		out[dl] = h.localize(l).String(key)
	}
	return &out
}

// HandleCommand dispatches a slash command to its handler.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	strs := h.stringsFor(string(i.Locale))
	opts := pkgdiscord.ExtractCommandOptions(data)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	switch data.Name {
	case cmdStr:
		h.handleLookup(ctx, s, i, strs, opts)
	case cmdStrSet, cmdStrUnset:
		if !canManage(i.Interaction) {
			respondEphemeral(s, i.Interaction, strs.String("error_forbidden"))
			return
		}
		if data.Name == cmdStrSet {
			h.handleSet(ctx, s, i, strs, opts)
		} else {
			h.handleUnset(ctx, s, i, strs, opts)
		}
	case cmdStrLocales:
		locales, err := h.stringUseCase.Locales(ctx)
		if err != nil {
			log.Printf("⚠️ Erreur lors de la liste des locales: %v", err)
			respondEphemeral(s, i.Interaction, pkgdiscord.DomainErrorMessage(strs, err))
			return
		}
		respondEmbed(s, i.Interaction, pkgdiscord.BuildLocalesEmbed(strs, locales))
	}
}

func (h *Handler) handleLookup(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, strs output.StringRepository, opts pkgdiscord.CommandOptions) {
	locale := opts.Get(optLocale)
	if locale == "" {
		locale = strs.Locale()
	}
	key := opts.Get(optKey)

	value, err := h.stringUseCase.Lookup(ctx, locale, key, nil)
	if err != nil {
		respondEphemeral(s, i.Interaction, pkgdiscord.DomainErrorMessage(strs, err))
		return
	}
	respondEmbed(s, i.Interaction, pkgdiscord.BuildStringEmbed(strs, key, locale, value))
}

func (h *Handler) handleSet(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, strs output.StringRepository, opts pkgdiscord.CommandOptions) {
	locale, key := opts.Get(optLocale), opts.Get(optKey)

	if err := h.stringUseCase.Set(ctx, locale, key, opts.Raw(optValue)); err != nil {
		log.Printf("⚠️ Erreur lors de l'enregistrement de %s/%s: %v", locale, key, err)
		respondEphemeral(s, i.Interaction, pkgdiscord.DomainErrorMessage(strs, err))
		return
	}
	respondEphemeral(s, i.Interaction, strs.Format("str_saved", map[string]any{"Key": key, "Locale": locale}))
}

func (h *Handler) handleUnset(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, strs output.StringRepository, opts pkgdiscord.CommandOptions) {
	locale, key := opts.Get(optLocale), opts.Get(optKey)

	if err := h.stringUseCase.Remove(ctx, locale, key); err != nil {
		log.Printf("⚠️ Erreur lors de la suppression de %s/%s: %v", locale, key, err)
		respondEphemeral(s, i.Interaction, pkgdiscord.DomainErrorMessage(strs, err))
		return
	}
	respondEphemeral(s, i.Interaction, strs.Format("str_removed", map[string]any{"Key": key, "Locale": locale}))
}
