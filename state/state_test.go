package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/cuttlecore/cards"
)

func TestPointThresholdReducedByKings(t *testing.T) {
	s := InitialState(1)
	s.Players[0] = s.Players[0].WithPermanents([]cards.Card{
		{Rank: cards.RankKing, Suit: cards.Clubs},
		{Rank: cards.RankKing, Suit: cards.Spades},
	})
	assert.Equal(t, 7, s.PointThreshold(0))
}

func TestPointThresholdFloorsAtSeven(t *testing.T) {
	s := InitialState(1)
	kings := make([]cards.Card, 0)
	for _, suit := range []cards.Suit{cards.Clubs, cards.Diamonds, cards.Hearts, cards.Spades} {
		kings = append(kings, cards.Card{Rank: cards.RankKing, Suit: suit})
	}
	s.Players[0] = s.Players[0].WithPermanents(kings)
	assert.Equal(t, 7, s.PointThreshold(0))
}

func TestCheckWinnerThresholdWin(t *testing.T) {
	s := InitialState(1)
	s.Players[0] = s.Players[0].WithPointsField([]cards.Card{
		{Rank: cards.RankTen, Suit: cards.Clubs},
		{Rank: cards.RankTen, Suit: cards.Spades},
		{Rank: cards.RankAce, Suit: cards.Hearts},
	})
	winner, reason := s.CheckWinner()
	require.NotNil(t, winner)
	assert.Equal(t, 0, *winner)
	assert.Equal(t, WinReasonPoints, reason)
}

func TestCheckWinnerEmptyDeckHigherPoints(t *testing.T) {
	s := InitialState(1)
	s.Deck = nil
	s.Players[0] = s.Players[0].WithPointsField([]cards.Card{{Rank: cards.RankNine, Suit: cards.Clubs}})
	s.Players[1] = s.Players[1].WithPointsField([]cards.Card{{Rank: cards.RankTwo, Suit: cards.Clubs}})
	winner, reason := s.CheckWinner()
	require.NotNil(t, winner)
	assert.Equal(t, 0, *winner)
	assert.Equal(t, WinReasonEmptyDeckPoints, reason)
}

func TestCheckWinnerEmptyDeckEmptyHand(t *testing.T) {
	s := InitialState(1)
	s.Deck = nil
	s.Players[0] = s.Players[0].WithHand(nil)
	winner, reason := s.CheckWinner()
	require.NotNil(t, winner)
	assert.Equal(t, 1, *winner)
	assert.Equal(t, WinReasonOpponentEmptyHand, reason)
}

func TestCheckWinnerNoneYet(t *testing.T) {
	s := InitialState(1)
	winner, reason := s.CheckWinner()
	assert.Nil(t, winner)
	assert.Equal(t, WinReasonNone, reason)
}

func TestWithWinnerForcesGameOverPhase(t *testing.T) {
	s := InitialState(1)
	s = s.WithWinner(0, WinReasonPoints)
	assert.True(t, s.IsGameOver())
	require.NotNil(t, s.Winner)
	assert.Equal(t, 0, *s.Winner)
}

func TestActingPlayerDuringCounterPhase(t *testing.T) {
	s := InitialState(1)
	s = s.WithPhase(PhaseCounter).WithCounterState(&CounterState{
		OneOffCard:   cards.Card{Rank: cards.RankAce, Suit: cards.Clubs},
		OneOffPlayer: 0,
	})
	assert.Equal(t, 1, s.ActingPlayer())
}

func TestCounterStateParity(t *testing.T) {
	cs := CounterState{OneOffPlayer: 0}
	assert.True(t, cs.Resolves())
	assert.Equal(t, 1, cs.WaitingForPlayer())

	cs.CounterChain = []cards.Card{{Rank: cards.RankTwo, Suit: cards.Clubs}}
	assert.False(t, cs.Resolves())
	assert.Equal(t, 0, cs.WaitingForPlayer())
}

func TestWithersShareUnchangedSlices(t *testing.T) {
	s := InitialState(1)
	s2 := s.WithTurnNumber(5)
	assert.Same(t, &s.Deck[0], &s2.Deck[0])
}
