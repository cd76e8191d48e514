package discord

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"locobot/internal/config"
	"locobot/internal/ports/input"
	"locobot/internal/repository"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
}

// NewBot creates a Bot and wires ports: application (use cases) -> handler.
func NewBot(cfg *config.Config, stringUC input.StringUseCase, localize LocalizerFunc, strs *repository.Holder) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la création de la session Discord: %w", err)
	}

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: NewHandler(stringUC, localize, strs),
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	switch i.ApplicationCommandData().Name {
	case cmdStr, cmdStrSet, cmdStrUnset, cmdStrLocales:
		b.handler.HandleCommand(s, i)
	}
}

// Start runs the bot until interrupted. locales are the catalogue locales used
// to localize command descriptions.
func (b *Bot) Start(locales []string) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	defer b.session.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if b.config.HasDatabase() {
		go b.handler.RunScheduledTasks(ctx, ReloadInterval)
	}

	for _, cmd := range b.handler.Commands(locales) {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			log.Printf("⚠️ Erreur lors de l'enregistrement de la commande %s: %v", cmd.Name, err)
		}
	}

	fmt.Println("🤖 Bot en ligne ! Appuyez sur CTRL+C pour quitter.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
