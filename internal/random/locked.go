package random

import (
	"math/rand"
	"sync"
)

// Locked wraps a *rand.Rand so it can be shared between goroutines.
type Locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLocked creates a source seeded with seed.
func NewLocked(seed int64) *Locked {
	return &Locked{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a non-negative pseudo-random number in [0, n).
func (l *Locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// Shuffle pseudo-randomizes the order of n elements.
func (l *Locked) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}
