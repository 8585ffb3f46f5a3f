// Package fontsize generates, formats and parses CSS font sizes for the quiz.
package fontsize

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// PixelsPerRem is the fixed conversion ratio used for rem values.
const PixelsPerRem = 16

var (
	// ErrInvalidFormat is returned when a string is not "<number><unit>".
	ErrInvalidFormat = errors.New("invalid font size string")
	// ErrUnsupportedUnit is returned for units outside px and rem.
	ErrUnsupportedUnit = errors.New("unsupported font size unit")
)

// Rand is the random source used by the generators.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Unit is a CSS length unit.
type Unit string

const (
	// UnitPx is absolute pixels.
	UnitPx Unit = "px"
	// UnitRem is root-relative, 1rem = 16px.
	UnitRem Unit = "rem"
)

// Valid reports whether the unit is px or rem.
func (u Unit) Valid() bool {
	return u == UnitPx || u == UnitRem
}

// String returns the unit suffix.
func (u Unit) String() string {
	return string(u)
}

// UnmarshalText parses a unit, rejecting anything but px and rem.
func (u *Unit) UnmarshalText(text []byte) error {
	unit := Unit(text)
	if !unit.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedUnit, string(text))
	}
	*u = unit
	return nil
}

// FontSize is a numeric value paired with its unit.
type FontSize struct {
	Value float64
	Unit  Unit
}

// String formats the size as "<number><unit>".
// Rem values always carry two decimals.
func (f FontSize) String() string {
	if f.Unit == UnitRem {
		return strconv.FormatFloat(f.Value, 'f', 2, 64) + string(f.Unit)
	}
	return strconv.FormatFloat(f.Value, 'f', -1, 64) + string(f.Unit)
}

// Pixels returns the size in pixels.
func (f FontSize) Pixels() float64 {
	if f.Unit == UnitRem {
		return f.Value * PixelsPerRem
	}
	return f.Value
}

var fontSizePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)(\w+)$`)

// Parse reads a "<number><unit>" string such as "42px" or "3.50rem".
// The unit token is any run of word characters and is not checked against
// the known units; use Unit.Valid for that.
func Parse(s string) (FontSize, error) {
	match := fontSizePattern.FindStringSubmatch(s)
	if match == nil {
		return FontSize{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return FontSize{}, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, s, err)
	}

	return FontSize{Value: value, Unit: Unit(match[2])}, nil
}

// Generate draws a whole pixel size uniformly from [min, max] and formats it
// in the requested unit. Bounds are pixel values even for rem; fractional
// bounds are narrowed to the integers inside them. An empty window yields
// the lower bound. Units other than rem format as px.
func Generate(rng Rand, min, max float64, unit Unit) string {
	return generate(rng, min, max, unit).String()
}

func generate(rng Rand, min, max float64, unit Unit) FontSize {
	lo := int(math.Ceil(min))
	hi := int(math.Floor(max))

	px := lo
	if hi > lo {
		px = lo + rng.Intn(hi-lo+1)
	}

	if unit == UnitRem {
		// Round to the formatted precision so Value matches String.
		rem := math.Round(float64(px)/PixelsPerRem*100) / 100
		return FontSize{Value: rem, Unit: UnitRem}
	}
	return FontSize{Value: float64(px), Unit: UnitPx}
}
