package mcts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/cuttlecore/cards"
	"github.com/signalnine/cuttlecore/moves"
	"github.com/signalnine/cuttlecore/state"
)

func TestSearchSingleLegalMoveShortCircuits(t *testing.T) {
	s := state.GameState{Phase: state.PhaseMain}
	s.Players[0] = state.PlayerState{Hand: []cards.Card{{Rank: cards.RankFive, Suit: cards.Clubs}}}
	s.Players[1] = state.PlayerState{Hand: []cards.Card{{Rank: cards.RankTwo, Suit: cards.Clubs}}}
	// No deck and a non-empty hand with only one playable card for points
	// still yields multiple moves (PlayPoints plus Pass, since an empty deck
	// makes Pass legal and doesn't block PlayPoints); use a state with
	// exactly one legal move instead: DiscardFour with a single-card hand.
	s.Phase = state.PhaseDiscardFour
	s.FourState = &state.FourState{Player: 0, CardsToDiscard: 1}

	move := Search(s, Config{Iterations: 10})
	assert.Equal(t, moves.Discard, move.Type)
}

func TestSearchNoLegalMovesReturnsZeroMove(t *testing.T) {
	s := state.GameState{Phase: state.PhaseMain}
	s = s.WithWinner(0, state.WinReasonPoints)
	move := Search(s, Config{Iterations: 10})
	assert.Equal(t, moves.Move{}, move)
}

func TestSearchFavorsImmediateWin(t *testing.T) {
	s := state.GameState{Phase: state.PhaseMain, Deck: []cards.Card{{Rank: cards.RankThree, Suit: cards.Hearts}}}
	winCard := cards.Card{Rank: cards.RankTen, Suit: cards.Clubs}
	other := cards.Card{Rank: cards.RankTwo, Suit: cards.Diamonds}
	// One King: threshold 14, so 9 on the field has not won yet, 9+10
	// reaches it, and 9+2 does not.
	s.Players[0] = state.PlayerState{
		Hand:       []cards.Card{winCard, other},
		Permanents: []cards.Card{{Rank: cards.RankKing, Suit: cards.Spades}},
		PointsField: []cards.Card{
			{Rank: cards.RankNine, Suit: cards.Clubs},
		},
	}
	s.Players[1] = state.PlayerState{Hand: []cards.Card{{Rank: cards.RankFour, Suit: cards.Clubs}}}

	move, stats := SearchWithStats(s, Config{Iterations: 200, Seed: 42})
	require.NotEmpty(t, stats)
	assert.Equal(t, moves.PlayPoints, move.Type)
	assert.Equal(t, winCard, move.Card)
}

func TestSearchParallelAgreesOnObviousWin(t *testing.T) {
	s := state.GameState{Phase: state.PhaseMain, Deck: []cards.Card{{Rank: cards.RankThree, Suit: cards.Hearts}}}
	winCard := cards.Card{Rank: cards.RankTen, Suit: cards.Clubs}
	s.Players[0] = state.PlayerState{
		Hand:       []cards.Card{winCard, {Rank: cards.RankTwo, Suit: cards.Diamonds}},
		Permanents: []cards.Card{{Rank: cards.RankKing, Suit: cards.Spades}},
		PointsField: []cards.Card{
			{Rank: cards.RankNine, Suit: cards.Clubs},
		},
	}
	s.Players[1] = state.PlayerState{Hand: []cards.Card{{Rank: cards.RankFour, Suit: cards.Clubs}}}

	move := SearchParallel(s, Config{Iterations: 200, Workers: 4, Seed: 7})
	assert.Equal(t, moves.PlayPoints, move.Type)
	assert.Equal(t, winCard, move.Card)
}
