package ismcts

import (
	"math/rand/v2"

	"github.com/signalnine/cuttlecore/cards"
	"github.com/signalnine/cuttlecore/state"
)

// Determinize samples a concrete GameState consistent with perspective's
// information set: perspective's own hand is kept exact, and so are any
// known cards in the opponent's hand; every card not known to be somewhere
// specific is shuffled and redealt between the rest of the opponent's hand
// and the deck, preserving their sizes. Everything else
// (fields, permanents, jacks, scrap, phase substates) is copied verbatim,
// per the reference _determinize.
func Determinize(s state.GameState, perspective int, known *Knowledge, rng *rand.Rand) state.GameState {
	opponent := 1 - perspective

	knownLocations := make(map[cards.Card]bool)
	for _, c := range s.Players[perspective].Hand {
		knownLocations[c] = true
	}
	for i := 0; i < 2; i++ {
		p := s.Players[i]
		for _, c := range p.PointsField {
			knownLocations[c] = true
		}
		for _, c := range p.Permanents {
			knownLocations[c] = true
		}
		for _, j := range p.Jacks {
			knownLocations[j.Jack] = true
			knownLocations[j.Stolen] = true
		}
	}
	for _, c := range s.Scrap {
		knownLocations[c] = true
	}
	if s.SevenState != nil {
		for _, c := range s.SevenState.RevealedCards {
			knownLocations[c] = true
		}
	}
	for c := range known.KnownCards {
		knownLocations[c] = true
	}

	var unknown []cards.Card
	for _, c := range cards.CreateDeck() {
		if !knownLocations[c] {
			unknown = append(unknown, c)
		}
	}
	rng.Shuffle(len(unknown), func(i, j int) { unknown[i], unknown[j] = unknown[j], unknown[i] })

	opponentHandSize := len(s.Players[opponent].Hand)
	var sampledOpponentHand []cards.Card
	for _, c := range s.Players[opponent].Hand {
		if knownLocations[c] {
			sampledOpponentHand = append(sampledOpponentHand, c)
		}
	}
	dealt := min(opponentHandSize-len(sampledOpponentHand), len(unknown))
	sampledOpponentHand = append(sampledOpponentHand, unknown[:dealt]...)
	sampledDeck := append([]cards.Card(nil), unknown[dealt:]...)

	det := s
	players := s.Players
	players[opponent] = s.Players[opponent].WithHand(sampledOpponentHand)
	det.Players = players
	det.Deck = sampledDeck
	return det
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
