package main

import (
	"context"
	"log"
	"os"

	"locobot/internal/adapters/discord"
	"locobot/internal/application"
	"locobot/internal/config"
	"locobot/internal/infrastructure/database"
	"locobot/internal/infrastructure/i18n"
	"locobot/internal/ports/output"
	"locobot/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	ctx := context.Background()
	translator := i18n.NewTranslator(cfg.DefaultLocale)

	var store output.StringStore
	if cfg.HasDatabase() {
		if _, err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("❌ Erreur lors des migrations: %v", err)
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Erreur lors de l'initialisation de la base de données: %v", err)
		}
		defer pool.Close()
		store = database.NewStringRepository(pool)
	} else {
		log.Println("ℹ️ DATABASE_URL absent : chaînes en lecture seule.")
	}

	stringService := application.NewStringService(translator, store)
	n, err := stringService.Load(ctx)
	if err != nil {
		log.Fatalf("❌ Erreur lors du chargement des chaînes: %v", err)
	}
	log.Printf("✅ %d chaîne(s) personnalisée(s) chargée(s).", n)

	if err := repository.InitInstance(translator.For(cfg.DefaultLocale)); err != nil {
		log.Fatalf("❌ %v", err)
	}

	localize := func(locale string) output.StringRepository { return translator.For(locale) }
	bot, err := discord.NewBot(cfg, stringService, localize, repository.Default())
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := bot.Start(translator.Locales()); err != nil {
		log.Printf("❌ Erreur lors du démarrage du bot: %v", err)
		os.Exit(1)
	}
}
