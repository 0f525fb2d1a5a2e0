package cards

import "math/rand/v2"

// ShuffleDeck returns a shuffled copy of deck. Identical seeds yield
// identical permutations across runs and platforms, per spec §4.1. The PRNG
// is math/rand/v2's PCG generator, seeded deterministically from the
// caller-supplied seed.
func ShuffleDeck(deck []Card, seed uint64) []Card {
	rng := rand.New(rand.NewPCG(seed, seed))
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
