// Package hangul picks precomposed Korean syllables for quiz rounds.
package hangul

import "golang.org/x/text/unicode/norm"

const (
	// First is the first code point of the Hangul Syllables block (가).
	First rune = 0xAC00
	// Last is the last code point of the Hangul Syllables block (힣).
	Last rune = 0xD7A3
)

// Intn is the random source used to pick syllables.
type Intn interface {
	Intn(n int) int
}

// RandomSyllable returns a uniformly random Hangul syllable.
func RandomSyllable(rng Intn) rune {
	return First + rune(rng.Intn(int(Last-First)+1))
}

// RandomChar returns a random Hangul syllable as a one-character string.
func RandomChar(rng Intn) string {
	return string(RandomSyllable(rng))
}

// IsSyllable reports whether r is in the Hangul Syllables block.
func IsSyllable(r rune) bool {
	return r >= First && r <= Last
}

// Jamo splits a syllable into its conjoining jamo (initial, medial and an
// optional final), e.g. 한 -> ᄒ ᅡ ᆫ. Other runes are returned unchanged.
func Jamo(r rune) string {
	return norm.NFD.String(string(r))
}
