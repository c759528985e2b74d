package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"truco-server/internal/util"
)

// Config provides configuration for the truco server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	Log            struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Timing Timing `yaml:"timing"`
	Bot    Bot    `yaml:"bot"`
}

// Timing holds the pacing of deferred actions
type Timing struct {
	// BotDelay is how long a bot "thinks" before playing a card or raising
	BotDelay time.Duration `yaml:"botDelay" envconfig:"bot_delay"`
	// BotResponseDelay is how long a bot takes to answer a raise
	BotResponseDelay time.Duration `yaml:"botResponseDelay" envconfig:"bot_response_delay"`
	// TrickDelay is the pause between the last card of a trick and its resolution
	TrickDelay time.Duration `yaml:"trickDelay" envconfig:"trick_delay"`
	// HandDelay is the pause between the end of a hand and the next deal
	HandDelay time.Duration `yaml:"handDelay" envconfig:"hand_delay"`
	// SetDelay is the pause between the end of a set and the next deal
	SetDelay time.Duration `yaml:"setDelay" envconfig:"set_delay"`
	// LivenessInterval is how often idle occupants are swept
	LivenessInterval time.Duration `yaml:"livenessInterval" envconfig:"liveness_interval"`
	// IdleTimeout is how long an occupant may stay silent before forfeiting
	IdleTimeout time.Duration `yaml:"idleTimeout" envconfig:"idle_timeout"`
}

// Bot holds the odds used by the bot policy
type Bot struct {
	StrongRaiseOdds float64 `yaml:"strongRaiseOdds" envconfig:"strong_raise_odds"`
	MediumRaiseOdds float64 `yaml:"mediumRaiseOdds" envconfig:"medium_raise_odds"`
	BluffOdds       float64 `yaml:"bluffOdds" envconfig:"bluff_odds"`
	AcceptOdds      float64 `yaml:"acceptOdds" envconfig:"accept_odds"`
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	c := Config{
		MigrationsPath: "./sql",
		Timing: Timing{
			BotDelay:         time.Millisecond * 1500,
			BotResponseDelay: time.Second * 2,
			TrickDelay:       time.Millisecond * 1500,
			HandDelay:        time.Second * 3,
			SetDelay:         time.Second * 4,
			LivenessInterval: time.Second,
			IdleTimeout:      time.Minute,
		},
		Bot: Bot{
			StrongRaiseOdds: 0.8,
			MediumRaiseOdds: 0.4,
			BluffOdds:       0.05,
			AcceptOdds:      2.0 / 3.0,
		},
	}
	c.Log.Level = "info"

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values are layered: defaults, the YAML file, a .env file, then the environment.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("TRUCO_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	// an absent .env is normal outside of local development
	if err := godotenv.Load(util.Getenv("TRUCO_ENV_FILE", ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("truco", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
