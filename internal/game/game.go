// Package game composes quiz rounds from font sizes and Hangul syllables.
package game

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/sizeguess/internal/gamedata"
	"github.com/samdwyer/sizeguess/internal/random"
	"github.com/samdwyer/sizeguess/internal/telemetry"
)

// Game generates rounds for a configured unit. It is safe for concurrent use.
type Game struct {
	rng    *random.Locked
	preset *gamedata.PresetDef
	seed   int64
	rounds int
}

// New creates a game from cfg, loading the embedded presets.
func New(cfg Config) (*Game, error) {
	presets, err := gamedata.LoadPresetRegistry()
	if err != nil {
		return nil, err
	}

	preset, err := presets.ForUnit(cfg.Unit)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed, err = random.NewSeed()
		if err != nil {
			return nil, err
		}
	}

	rounds := cfg.Rounds
	if rounds < 1 {
		rounds = 1
	}

	return &Game{
		rng:    random.NewLocked(seed),
		preset: preset,
		seed:   seed,
		rounds: rounds,
	}, nil
}

// Seed returns the seed the game's random source was created with.
func (g *Game) Seed() int64 {
	return g.seed
}

// NewRound generates the next round.
func (g *Game) NewRound(ctx context.Context) (Round, error) {
	return StartNewRound(ctx, g.rng, g.preset)
}

// Run writes the configured number of rounds to w, one JSON object per line.
func (g *Game) Run(ctx context.Context, w io.Writer) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("game.seed", g.seed),
		attribute.String("game.unit", g.preset.Unit.String()),
		attribute.Int("game.rounds", g.rounds),
	)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for i := 0; i < g.rounds; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		round, err := g.NewRound(ctx)
		if err != nil {
			return fmt.Errorf("round %d: %w", i+1, err)
		}
		if err := enc.Encode(round); err != nil {
			return fmt.Errorf("write round %d: %w", i+1, err)
		}
	}

	return nil
}
