package fontsize

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

const (
	// OptionCount is the number of choices offered per question.
	OptionCount = 4

	// MaxAttempts bounds the distractor draws for a single call to Options.
	MaxAttempts = 1000

	pxSpread  = 20.0
	pxFloor   = 10.0
	remSpread = 1.25
	remFloor  = 0.625 // 10px
)

// ErrExhaustedRange is returned when the distractor window cannot supply
// enough distinct options within MaxAttempts draws.
var ErrExhaustedRange = errors.New("distractor range exhausted")

// Options returns OptionCount distinct font size strings in random order,
// one of which is correct. Distractors are drawn near the correct value:
// within 20px (never below 10px) for px, within 1.25rem (never below
// 0.625rem) for rem. Options are compared as strings.
func Options(rng Rand, correct string) ([]string, error) {
	size, err := Parse(correct)
	if err != nil {
		return nil, err
	}

	min, max, err := distractorWindow(size)
	if err != nil {
		return nil, err
	}

	options := make([]string, 0, OptionCount)
	options = append(options, correct)

	for attempt := 0; len(options) < OptionCount; attempt++ {
		if attempt >= MaxAttempts {
			return nil, fmt.Errorf("%w: %s after %d attempts (%d of %d options)",
				ErrExhaustedRange, correct, MaxAttempts, len(options), OptionCount)
		}

		option := Generate(rng, min, max, size.Unit)
		if !slices.Contains(options, option) {
			options = append(options, option)
		}
	}

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options, nil
}

// distractorWindow returns the pixel bounds distractors are drawn from.
func distractorWindow(size FontSize) (float64, float64, error) {
	switch size.Unit {
	case UnitPx:
		return math.Max(size.Value-pxSpread, pxFloor), size.Value + pxSpread, nil
	case UnitRem:
		min := math.Max(size.Value-remSpread, remFloor)
		max := size.Value + remSpread
		return min * PixelsPerRem, max * PixelsPerRem, nil
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrUnsupportedUnit, string(size.Unit))
	}
}
