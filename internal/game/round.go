package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/sizeguess/internal/fontsize"
	"github.com/samdwyer/sizeguess/internal/gamedata"
	"github.com/samdwyer/sizeguess/internal/hangul"
	"github.com/samdwyer/sizeguess/internal/telemetry"
)

// Round is a single question: a character shown at FontSize, and the
// choices the player picks from.
type Round struct {
	Character string   `json:"character"`
	Jamo      string   `json:"jamo"`
	FontSize  string   `json:"fontSize"`
	Options   []string `json:"options"`
}

// IsCorrect reports whether choice is the answer.
func (r Round) IsCorrect(choice string) bool {
	return choice == r.FontSize
}

// StartNewRound draws a Hangul syllable, an answer within the preset range,
// and the answer's options.
func StartNewRound(ctx context.Context, rng fontsize.Rand, preset *gamedata.PresetDef) (Round, error) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "round.start")
	defer span.End()

	syllable := hangul.RandomSyllable(rng)

	min, max := preset.PixelRange()
	fontSize := fontsize.Generate(rng, min, max, preset.Unit)

	options, err := fontsize.Options(rng, fontSize)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate options")
		return Round{}, fmt.Errorf("options for %s: %w", fontSize, err)
	}

	span.SetAttributes(
		attribute.String("round.unit", preset.Unit.String()),
		attribute.String("round.font_size", fontSize),
		attribute.Int("round.character", int(syllable)),
	)

	return Round{
		Character: string(syllable),
		Jamo:      hangul.Jamo(syllable),
		FontSize:  fontSize,
		Options:   options,
	}, nil
}
