package services

import (
	"math/rand/v2"
	"slices"

	"pokedeck-seed/models"
)

// StarterDeckSize is the number of slots in a starter deck.
const StarterDeckSize = 10

// SampleStarterDeck draws min(size, len(pool)) distinct cards from a fresh
// shuffle of a copy of pool. pool itself is left untouched, so consecutive
// calls sample independently.
func SampleStarterDeck(rng *rand.Rand, pool []models.Card, size int) []models.Card {
	shuffled := slices.Clone(pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	size = max(0, min(size, len(shuffled)))
	return shuffled[:size:size]
}
