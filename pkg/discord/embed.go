package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"locobot/internal/ports/output"
)

const embedColor = 0x5865F2

// BuildStringEmbed renders a resolved string, labelled in the reader's locale.
func BuildStringEmbed(strs output.StringRepository, key, locale, value string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: strs.String("app_name"),
		Description: strs.Format("str_result", map[string]any{
			"Key":    key,
			"Locale": locale,
			"Value":  value,
		}),
		Color: embedColor,
	}
}

// BuildLocalesEmbed lists the locales the bot can answer in.
func BuildLocalesEmbed(strs output.StringRepository, locales []string) *discordgo.MessageEmbed {
	quoted := make([]string, len(locales))
	for i, l := range locales {
		quoted[i] = "`" + l + "`"
	}
	return &discordgo.MessageEmbed{
		Title:       strs.String("app_name"),
		Description: strs.Format("locales_list", map[string]any{"Locales": strings.Join(quoted, ", ")}),
		Color:       embedColor,
	}
}
