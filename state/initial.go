package state

import "github.com/signalnine/cuttlecore/cards"

// InitialState deals a fresh game from a shuffled 52-card deck, per spec
// §3's lifecycle: player 0 gets 5 cards, player 1 gets 6, and the rest of
// the deck becomes the draw pile. Identical seeds produce identical deals
// across runs, since ShuffleDeck's PCG generator is seeded deterministically.
func InitialState(seed uint64) GameState {
	deck := cards.ShuffleDeck(cards.CreateDeck(), seed)

	hand0 := append([]cards.Card{}, deck[:5]...)
	hand1 := append([]cards.Card{}, deck[5:11]...)
	remaining := append([]cards.Card{}, deck[11:]...)

	var s GameState
	s.Players[0] = PlayerState{Hand: hand0}
	s.Players[1] = PlayerState{Hand: hand1}
	s.Deck = remaining
	s.Phase = PhaseMain
	s.CurrentPlayer = 0
	s.TurnNumber = 1
	return s
}
