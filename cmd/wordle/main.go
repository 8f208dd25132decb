// Package main is the entry point for the terminal Wordle game.
package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/wordle/internal/config"
	"github.com/samdwyer/wordle/internal/game"
	"github.com/samdwyer/wordle/internal/gamedata"
	"github.com/samdwyer/wordle/internal/logging"
	"github.com/samdwyer/wordle/internal/telemetry"
	"github.com/samdwyer/wordle/internal/ui"
	"github.com/samdwyer/wordle/internal/wordle"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	ctx := context.Background()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			APIKey:  cfg.HoneycombAPIKey,
			Dataset: cfg.HoneycombDataset,
		})
		if err != nil {
			// Game still works without observability
			logger.Warn().Err(err).Msg("telemetry setup failed")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("telemetry shutdown failed")
				}
			}()
		}
	}

	words, err := loadWords(cfg)
	if err != nil {
		log.Fatalf("Failed to load words: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	state, err := wordle.NewGameState(cfg.Game(), words, wordle.RandomPicker(rand.New(rand.NewSource(seed))))
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}
	logger.Info().Int("words", len(words)).Int64("seed", seed).Msg("word list loaded")

	palette := ui.DefaultPalette()
	screen, err := ui.NewScreen(palette.Background, palette.Text)
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}

	g := game.New(screen, palette, state, logger)
	if err := g.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("game error")
		log.Fatalf("Game error: %v", err)
	}
}

// loadWords returns the configured word list, falling back to the embedded
// one. Word lengths are checked when the game state is built.
func loadWords(cfg config.Config) ([]string, error) {
	if cfg.WordsFile != "" {
		return gamedata.LoadWordsFile(cfg.WordsFile)
	}
	return gamedata.LoadWords()
}
