package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/signalnine/cuttlecore/cards"
	"github.com/signalnine/cuttlecore/moves"
	"github.com/signalnine/cuttlecore/state"
)

func TestScoreWinningPlayPointsOutscoresEverything(t *testing.T) {
	s := state.GameState{Phase: state.PhaseMain}
	s.Players[0] = state.PlayerState{PointsField: []cards.Card{{Rank: cards.RankTen, Suit: cards.Clubs}, {Rank: cards.RankAce, Suit: cards.Clubs}}}
	win := moves.Move{Type: moves.PlayPoints, Card: cards.Card{Rank: cards.RankTen, Suit: cards.Hearts}}
	other := moves.Move{Type: moves.PlayPermanent, Card: cards.Card{Rank: cards.RankKing, Suit: cards.Clubs}}
	assert.Greater(t, ScoreMove(s, win), ScoreMove(s, other))
}

func TestScoreAceFavorsBehind(t *testing.T) {
	s := state.GameState{Phase: state.PhaseMain}
	s.Players[0] = state.PlayerState{}
	s.Players[1] = state.PlayerState{PointsField: []cards.Card{{Rank: cards.RankTen, Suit: cards.Clubs}}}
	m := moves.Move{Type: moves.PlayOneOff, Effect: moves.AceScrapAllPoints}
	assert.Equal(t, DefaultWeights().AceBehind, ScoreMove(s, m))
}

func TestSortedByScoreDescendingIsStableOnTies(t *testing.T) {
	s := state.GameState{Phase: state.PhaseMain}
	a := moves.Move{Type: moves.Pass}
	b := moves.Move{Type: moves.Pass}
	out := SortedByScoreDescending(s, []moves.Move{a, b}, DefaultWeights())
	assert.Equal(t, []moves.Move{a, b}, out)
}

func TestLoadWeightsFallsBackOnMissingFile(t *testing.T) {
	w, err := LoadWeights("/nonexistent/weights.json")
	assert.Error(t, err)
	assert.Equal(t, DefaultWeights(), w)
}
