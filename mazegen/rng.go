// Package mazegen - RNG utilities for maze generation.
//
// All randomness in the generator flows through a single *rand.Rand created
// here, so a fixed seed reproduces a maze bit for bit. math/rand.Rand is not
// goroutine-safe; each Generate call owns its RNG exclusively.
package mazegen

import (
	"math/rand"
	"time"

	"github.com/Anirdq/maze-quest-explorer-ai/grid"
)

// rngFromSeed returns a deterministic *rand.Rand for seed > 0, or a
// time-seeded one otherwise.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s <= 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

// shufflePositionsInPlace performs an in-place Fisher–Yates shuffle of ps.
//
// Complexity: O(n) time, O(1) extra space.
func shufflePositionsInPlace(ps []grid.Position, rng *rand.Rand) {
	for i := len(ps) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		ps[i], ps[j] = ps[j], ps[i]
	}
}
