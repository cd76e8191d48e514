package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	Token         string `env:"TOKEN"`
	GuildID       string `env:"GUILD_ID"`
	DatabaseURL   string `env:"DATABASE_URL"`
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// HasDatabase indique si un stockage PostgreSQL est configuré.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN est requis et ne peut pas être vide")
	}

	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID doit être un ID de serveur Discord (chiffres uniquement)")
		}
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en"
	}
	tag, err := language.Parse(strings.TrimSpace(c.DefaultLocale))
	if err != nil {
		return fmt.Errorf("config: DEFAULT_LOCALE invalide (%q): %w", c.DefaultLocale, err)
	}
	c.DefaultLocale = tag.String()

	// Sans DATABASE_URL, les chaînes restent en lecture seule (catalogue embarqué).
	c.DatabaseURL = strings.TrimSpace(c.DatabaseURL)
	if c.DatabaseURL == "" {
		return nil
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
	}

	return nil
}
