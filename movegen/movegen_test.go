package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/signalnine/cuttlecore/cards"
	"github.com/signalnine/cuttlecore/moves"
	"github.com/signalnine/cuttlecore/state"
)

func hasMoveType(ms []moves.Move, t moves.Type) bool {
	for _, m := range ms {
		if m.Type == t {
			return true
		}
	}
	return false
}

func countMoveType(ms []moves.Move, t moves.Type) int {
	n := 0
	for _, m := range ms {
		if m.Type == t {
			n++
		}
	}
	return n
}

func TestGenerateEmptyDeckNoDrawButPass(t *testing.T) {
	s := state.InitialState(1)
	s.Deck = nil
	out := Generate(s)
	assert.False(t, hasMoveType(out, moves.Draw))
	assert.True(t, hasMoveType(out, moves.Pass))
}

func TestGenerateNonEmptyDeckHasDrawNoPass(t *testing.T) {
	s := state.InitialState(1)
	out := Generate(s)
	assert.True(t, hasMoveType(out, moves.Draw))
	assert.False(t, hasMoveType(out, moves.Pass))
}

func TestGenerateThreeWithEmptyScrapHasNoOneOff(t *testing.T) {
	s := state.InitialState(1)
	s.Players[0] = s.Players[0].WithHand([]cards.Card{{Rank: cards.RankThree, Suit: cards.Clubs}})
	s.Scrap = nil
	out := Generate(s)
	for _, m := range out {
		if m.Card.Rank == cards.RankThree {
			assert.NotEqual(t, moves.PlayOneOff, m.Type)
		}
	}
}

func TestGenerateQueenProtectsFromTwo(t *testing.T) {
	s := state.InitialState(1)
	s.Players[0] = s.Players[0].WithHand([]cards.Card{{Rank: cards.RankTwo, Suit: cards.Clubs}})
	s.Players[1] = s.Players[1].WithPermanents([]cards.Card{
		{Rank: cards.RankQueen, Suit: cards.Diamonds},
		{Rank: cards.RankKing, Suit: cards.Spades},
	})

	out := Generate(s)
	for _, m := range out {
		if m.Type == moves.PlayOneOff && m.Effect == moves.TwoDestroyPermanent {
			assert.NotEqual(t, cards.RankKing, m.TargetCard.Rank, "King must be protected by Queen")
		}
	}

	foundQueenTarget := false
	for _, m := range out {
		if m.Type == moves.PlayOneOff && m.Effect == moves.TwoDestroyPermanent && m.TargetCard.Rank == cards.RankQueen {
			foundQueenTarget = true
		}
	}
	assert.True(t, foundQueenTarget, "Queen itself must remain targetable")
}

func TestGenerateSevenPhaseEmitsDiscardWhenNoLegalPlay(t *testing.T) {
	s := state.InitialState(1)
	s.Phase = state.PhaseResolveSeven
	s.SevenState = &state.SevenState{
		RevealedCards: []cards.Card{{Rank: cards.RankJack, Suit: cards.Clubs}},
		Player:        0,
	}
	// Opponent has no points field and no jacks, so the Jack has no steal target.
	out := Generate(s)
	assert.Equal(t, 1, len(out))
	assert.Equal(t, moves.Discard, out[0].PlayAs)
}

func TestGenerateCounterPhaseAlwaysHasDecline(t *testing.T) {
	s := state.InitialState(1)
	s.Phase = state.PhaseCounter
	s.CounterState = &state.CounterState{
		OneOffCard:   cards.Card{Rank: cards.RankAce, Suit: cards.Clubs},
		OneOffPlayer: 0,
	}
	out := Generate(s)
	assert.True(t, hasMoveType(out, moves.DeclineCounter))
}

func TestGenerateDiscardFourOnePerHandCard(t *testing.T) {
	s := state.InitialState(1)
	s.Phase = state.PhaseDiscardFour
	s.Players[1] = s.Players[1].WithHand([]cards.Card{
		{Rank: cards.RankAce, Suit: cards.Clubs},
		{Rank: cards.RankTwo, Suit: cards.Hearts},
	})
	s.FourState = &state.FourState{Player: 1, CardsToDiscard: 2}
	out := Generate(s)
	assert.Equal(t, 2, countMoveType(out, moves.Discard))
}

func TestGenerateGameOverReturnsNoMoves(t *testing.T) {
	s := state.InitialState(1)
	s = s.WithWinner(0, state.WinReasonPoints)
	out := Generate(s)
	assert.Empty(t, out)
}

func TestGenerateHandLimitDisablesDraw(t *testing.T) {
	s := state.InitialState(1)
	out := GenerateWithOptions(s, Options{HandLimit: 5})
	assert.False(t, hasMoveType(out, moves.Draw))
}
