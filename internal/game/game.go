// Package game runs the terminal event loop around a wordle.GameState.
package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/wordle/internal/telemetry"
	"github.com/samdwyer/wordle/internal/ui"
	"github.com/samdwyer/wordle/internal/wordle"
)

// Game holds the screen, the renderer and the state of one game.
type Game struct {
	id       string
	screen   *ui.Screen
	renderer *ui.Renderer
	state    *wordle.GameState
	log      zerolog.Logger
	tracer   trace.Tracer
	running  bool
}

// New creates a game drawing to screen.
func New(screen *ui.Screen, palette ui.Palette, state *wordle.GameState, log zerolog.Logger) *Game {
	id := uuid.NewString()
	return &Game{
		id:       id,
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		state:    state,
		log:      log.With().Str("game_id", id).Logger(),
		tracer:   telemetry.Tracer("game"),
		running:  true,
	}
}

// ID returns the unique identifier of this game.
func (g *Game) ID() string { return g.id }

// State returns the game state driven by this loop.
func (g *Game) State() *wordle.GameState { return g.state }

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	_, initSpan := g.tracer.Start(ctx, "game.init")
	cfg := g.state.Config()
	initSpan.SetAttributes(
		attribute.String("game.id", g.id),
		attribute.Int("game.word_length", cfg.WordLength),
		attribute.Int("game.attempts_limit", cfg.AttemptsLimit),
	)
	initSpan.End()

	g.log.Info().
		Int("word_length", cfg.WordLength).
		Int("attempts_limit", cfg.AttemptsLimit).
		Msg("game started")
	g.log.Debug().Str("secret", g.state.SecretWord()).Msg("secret word chosen")

	// Render first so a frame never shows a half-applied event
	for g.running {
		g.renderer.Render(g.state.Snapshot())

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	g.log.Info().Str("status", g.state.Status().String()).Msg("game closed")
	g.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		if gameEv, ok := translateKey(ev.Key(), ev.Rune()); ok {
			g.apply(ctx, gameEv)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized
		g.running = false
	}
}

// apply forwards one event to the game state.
func (g *Game) apply(ctx context.Context, ev wordle.Event) {
	if ev.Kind != wordle.EventSubmit {
		if g.state.Apply(ev) {
			g.running = false
		}
		return
	}
	g.submit(ctx)
}

// submit applies a submit event inside a span and logs the outcome.
func (g *Game) submit(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "guess.submit")
	defer span.End()

	if g.state.Status() != wordle.StatusInProgress {
		span.SetAttributes(attribute.Bool("guess.ignored", true))
		return
	}

	row := g.state.CurrentAttemptIndex()
	guess := ""
	if a, ok := g.state.Attempt(row); ok {
		guess = a.Word()
	}

	g.state.Submit()

	evaluated := g.state.CurrentAttemptIndex() != row
	span.SetAttributes(
		attribute.String("game.id", g.id),
		attribute.Int("guess.attempt", row),
		attribute.Bool("guess.evaluated", evaluated),
		attribute.Bool("game.win", g.state.IsWin()),
		attribute.String("game.status", g.state.Status().String()),
	)

	if !evaluated {
		g.log.Debug().Int("attempt", row).Str("guess", guess).Msg("incomplete guess")
		return
	}
	g.log.Info().
		Int("attempt", row).
		Str("guess", guess).
		Bool("win", g.state.IsWin()).
		Int("attempts_left", g.state.AttemptsLeft()).
		Msg("guess submitted")

	if status := g.state.Status(); status != wordle.StatusInProgress {
		g.log.Info().
			Str("status", status.String()).
			Int("attempts_used", g.state.CurrentAttemptIndex()).
			Msg("game over")
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
