package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// CommandOptions indexes the string options of a slash command by name,
// keeping values exactly as typed.
type CommandOptions map[string]string

func ExtractCommandOptions(data discordgo.ApplicationCommandInteractionData) CommandOptions {
	out := CommandOptions{}
	for _, opt := range data.Options {
		if opt == nil || opt.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		out[opt.Name] = opt.StringValue()
	}
	return out
}

// Get returns the option trimmed of surrounding whitespace, for identifiers
// such as keys and locales.
func (o CommandOptions) Get(name string) string {
	return strings.TrimSpace(o[name])
}

// Raw returns the option as typed, for free text such as string values.
func (o CommandOptions) Raw(name string) string {
	return o[name]
}
