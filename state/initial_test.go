package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialStateDealsFiveAndSix(t *testing.T) {
	s := InitialState(1)
	assert.Len(t, s.Players[0].Hand, 5)
	assert.Len(t, s.Players[1].Hand, 6)
	assert.Len(t, s.Deck, 52-5-6)
	assert.Equal(t, PhaseMain, s.Phase)
	assert.Equal(t, 0, s.CurrentPlayer)
}

func TestInitialStateIsDeterministicForSameSeed(t *testing.T) {
	a := InitialState(42)
	b := InitialState(42)
	assert.Equal(t, a, b)
}

func TestInitialStateDiffersAcrossSeeds(t *testing.T) {
	a := InitialState(1)
	b := InitialState(2)
	assert.NotEqual(t, a.Players[0].Hand, b.Players[0].Hand)
}

func TestInitialStateConservesFiftyTwoCards(t *testing.T) {
	s := InitialState(7)
	total := len(s.Players[0].Hand) + len(s.Players[1].Hand) + len(s.Deck) + len(s.Scrap)
	assert.Equal(t, 52, total)
}
