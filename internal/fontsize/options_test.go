package fontsize

import (
	"errors"
	"math/rand"
	"regexp"
	"slices"
	"testing"
)

// fixedRand always draws the same value and never reorders.
type fixedRand struct{}

func (fixedRand) Intn(n int) int                    { return 0 }
func (fixedRand) Shuffle(n int, swap func(i, j int)) {}

func assertOptions(t *testing.T, correct string, options []string) {
	t.Helper()

	if len(options) != OptionCount {
		t.Fatalf("Options(%q) returned %d options, want %d", correct, len(options), OptionCount)
	}

	seen := make(map[string]bool)
	correctCount := 0
	for _, opt := range options {
		if seen[opt] {
			t.Errorf("Options(%q) has duplicate %q in %v", correct, opt, options)
		}
		seen[opt] = true
		if opt == correct {
			correctCount++
		}
	}
	if correctCount != 1 {
		t.Errorf("Options(%q) contains the answer %d times, want 1: %v", correct, correctCount, options)
	}
}

func TestOptionsPx(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))

	for i := 0; i < 200; i++ {
		options, err := Options(rng, "50px")
		if err != nil {
			t.Fatalf("Options(50px) error = %v", err)
		}
		assertOptions(t, "50px", options)

		for _, opt := range options {
			size, err := Parse(opt)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", opt, err)
			}
			if size.Unit != UnitPx || size.Value < 30 || size.Value > 70 {
				t.Errorf("Options(50px) produced %q, want px in [30, 70]", opt)
			}
		}
	}
}

func TestOptionsPxFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		options, err := Options(rng, "12px")
		if err != nil {
			t.Fatalf("Options(12px) error = %v", err)
		}
		assertOptions(t, "12px", options)

		for _, opt := range options {
			size, _ := Parse(opt)
			if size.Value < 10 {
				t.Errorf("Options(12px) produced %q, below the 10px floor", opt)
			}
		}
	}
}

func TestOptionsRem(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	remPattern := regexp.MustCompile(`^\d+\.\d{2}rem$`)

	for i := 0; i < 200; i++ {
		options, err := Options(rng, "2.50rem")
		if err != nil {
			t.Fatalf("Options(2.50rem) error = %v", err)
		}
		assertOptions(t, "2.50rem", options)

		for _, opt := range options {
			if !remPattern.MatchString(opt) {
				t.Errorf("Options(2.50rem) produced %q, want two-decimal rem", opt)
			}
			size, _ := Parse(opt)
			if size.Value < 1.25 || size.Value > 3.75 {
				t.Errorf("Options(2.50rem) produced %q, outside [1.25, 3.75]", opt)
			}
		}
	}
}

func TestOptionsStringEquality(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	// "2.5rem" never comes out of Generate, so a generated "2.50rem" is a
	// distinct option even though the values are equal.
	for i := 0; i < 50; i++ {
		options, err := Options(rng, "2.5rem")
		if err != nil {
			t.Fatalf("Options(2.5rem) error = %v", err)
		}
		assertOptions(t, "2.5rem", options)
	}
}

func TestOptionsDeterministic(t *testing.T) {
	rng1 := rand.New(rand.NewSource(42))
	rng2 := rand.New(rand.NewSource(42))

	for i := 0; i < 20; i++ {
		o1, err1 := Options(rng1, "64px")
		o2, err2 := Options(rng2, "64px")
		if err1 != nil || err2 != nil {
			t.Fatalf("Options errors: %v, %v", err1, err2)
		}
		if !slices.Equal(o1, o2) {
			t.Fatalf("same seed produced %v and %v", o1, o2)
		}
	}
}

func TestOptionsShufflesAnswerPosition(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	positions := make(map[int]int)

	for i := 0; i < 400; i++ {
		options, err := Options(rng, "50px")
		if err != nil {
			t.Fatalf("Options(50px) error = %v", err)
		}
		positions[slices.Index(options, "50px")]++
	}

	for pos := 0; pos < OptionCount; pos++ {
		if positions[pos] == 0 {
			t.Errorf("answer never appeared at position %d: %v", pos, positions)
		}
	}
}

func TestOptionsInvalidFormat(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := Options(rng, "abc")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Options(abc) error = %v, want ErrInvalidFormat", err)
	}
}

func TestOptionsUnsupportedUnit(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := Options(rng, "12em")
	if !errors.Is(err, ErrUnsupportedUnit) {
		t.Errorf("Options(12em) error = %v, want ErrUnsupportedUnit", err)
	}
}

func TestOptionsExhaustedRange(t *testing.T) {
	_, err := Options(fixedRand{}, "50px")
	if !errors.Is(err, ErrExhaustedRange) {
		t.Errorf("Options with a stuck source error = %v, want ErrExhaustedRange", err)
	}
}
