package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/cuttlecore/cards"
	"github.com/signalnine/cuttlecore/moves"
	"github.com/signalnine/cuttlecore/state"
)

func emptyState() state.GameState {
	return state.GameState{Phase: state.PhaseMain, CurrentPlayer: 0, TurnNumber: 1}
}

func TestExecuteGameOverRejectsAnyMove(t *testing.T) {
	s := emptyState()
	s = s.WithWinner(0, state.WinReasonPoints)
	_, err := Execute(s, moves.Move{Type: moves.Pass})
	require.Error(t, err)
	assert.IsType(t, &GameAlreadyOverError{}, errorsCause(err))
}

func TestExecutePlayPointsWinsOnThreshold(t *testing.T) {
	s := emptyState()
	ten := cards.Card{Rank: cards.RankTen, Suit: cards.Clubs}
	nine := cards.Card{Rank: cards.RankNine, Suit: cards.Clubs}
	s.Players[0] = state.PlayerState{
		Hand:        []cards.Card{ten},
		PointsField: []cards.Card{nine},
	}
	// 9 + 10 = 19 < 21 threshold unless a King lowers it; use two Kings
	// (threshold 21-14=7) so 19 already clears it.
	s.Players[0].Permanents = []cards.Card{
		{Rank: cards.RankKing, Suit: cards.Diamonds},
		{Rank: cards.RankKing, Suit: cards.Hearts},
	}

	next, err := Execute(s, moves.Move{Type: moves.PlayPoints, Card: ten})
	require.NoError(t, err)
	assert.True(t, next.IsGameOver())
	require.NotNil(t, next.Winner)
	assert.Equal(t, 0, *next.Winner)
}

func TestExecuteCounterCanceledOnOddChain(t *testing.T) {
	s := emptyState()
	ace := cards.Card{Rank: cards.RankAce, Suit: cards.Clubs}
	two := cards.Card{Rank: cards.RankTwo, Suit: cards.Hearts}
	s.Players[0] = state.PlayerState{Hand: []cards.Card{ace}}
	s.Players[1] = state.PlayerState{Hand: []cards.Card{two}, PointsField: []cards.Card{
		{Rank: cards.RankFive, Suit: cards.Clubs},
	}}
	// A non-empty deck keeps the empty-deck win check from ending the game.
	s.Deck = []cards.Card{{Rank: cards.RankThree, Suit: cards.Spades}}

	next, err := Execute(s, moves.Move{Type: moves.PlayOneOff, Card: ace, Effect: moves.AceScrapAllPoints})
	require.NoError(t, err)
	assert.Equal(t, state.PhaseCounter, next.Phase)

	next, err = Execute(next, moves.Move{Type: moves.Counter, Card: two})
	require.NoError(t, err)
	assert.Equal(t, state.PhaseCounter, next.Phase)
	assert.Equal(t, 1, next.CounterState.CounterCount())

	next, err = Execute(next, moves.Move{Type: moves.DeclineCounter})
	require.NoError(t, err)
	assert.Equal(t, state.PhaseMain, next.Phase)
	assert.Nil(t, next.CounterState)
	// odd chain length -> canceled, opponent's points field untouched.
	assert.Len(t, next.Players[1].PointsField, 1)
}

func TestExecuteScuttleOfJackStolenCardSendsThreeToScrap(t *testing.T) {
	s := emptyState()
	jack := cards.Card{Rank: cards.RankJack, Suit: cards.Clubs}
	stolen := cards.Card{Rank: cards.RankFive, Suit: cards.Diamonds}
	scuttler := cards.Card{Rank: cards.RankKing, Suit: cards.Spades}
	// King can't scuttle; use a point card instead.
	scuttler = cards.Card{Rank: cards.RankSix, Suit: cards.Spades}

	s.Players[0] = state.PlayerState{Hand: []cards.Card{scuttler}}
	s.Players[1] = state.PlayerState{Jacks: []state.JackTheft{{Jack: jack, Stolen: stolen}}}

	next, err := Execute(s, moves.Move{Type: moves.Scuttle, Card: scuttler, Target: stolen})
	require.NoError(t, err)
	assert.Empty(t, next.Players[1].Jacks)
	assert.Len(t, next.Scrap, 3)
	assert.Equal(t, state.PhaseMain, next.Phase)
	assert.Equal(t, 1, next.CurrentPlayer)
}

func TestResolveSevenRevealsAndPlaysFromDeck(t *testing.T) {
	s := emptyState()
	seven := cards.Card{Rank: cards.RankSeven, Suit: cards.Clubs}
	revealed := cards.Card{Rank: cards.RankFive, Suit: cards.Diamonds}
	s.Players[0] = state.PlayerState{Hand: []cards.Card{seven}}
	s.Deck = []cards.Card{revealed, {Rank: cards.RankTwo, Suit: cards.Hearts}}

	next, err := Execute(s, moves.Move{Type: moves.PlayOneOff, Card: seven, Effect: moves.SevenPlayFromDeck})
	require.NoError(t, err)
	assert.Equal(t, state.PhaseCounter, next.Phase)

	next, err = Execute(next, moves.Move{Type: moves.DeclineCounter})
	require.NoError(t, err)
	require.NotNil(t, next.SevenState)
	assert.Equal(t, []cards.Card{revealed}, next.SevenState.RevealedCards)
	assert.Equal(t, state.PhaseResolveSeven, next.Phase)

	next, err = Execute(next, moves.Move{Type: moves.ResolveSeven, Card: revealed, PlayAs: moves.PlayPoints})
	require.NoError(t, err)
	assert.Equal(t, state.PhaseMain, next.Phase)
	assert.Contains(t, next.Players[0].PointsField, revealed)
}

func TestExecutePassIllegalWithNonEmptyDeck(t *testing.T) {
	s := emptyState()
	s.Deck = []cards.Card{{Rank: cards.RankAce, Suit: cards.Clubs}}
	_, err := Execute(s, moves.Move{Type: moves.Pass})
	require.Error(t, err)
}

func TestExecuteDoublePassEmptyDeckHigherPointsWins(t *testing.T) {
	s := emptyState()
	s.Players[0] = state.PlayerState{PointsField: []cards.Card{{Rank: cards.RankFive, Suit: cards.Clubs}}}
	s.Players[1] = state.PlayerState{PointsField: []cards.Card{{Rank: cards.RankTwo, Suit: cards.Clubs}}}

	next, err := Execute(s, moves.Move{Type: moves.Pass})
	require.NoError(t, err)
	assert.Equal(t, 1, next.ConsecutivePasses)
	assert.False(t, next.IsGameOver())

	next, err = Execute(next, moves.Move{Type: moves.Pass})
	require.NoError(t, err)
	assert.True(t, next.IsGameOver())
	require.NotNil(t, next.Winner)
	assert.Equal(t, 0, *next.Winner)
	assert.Equal(t, state.WinReasonEmptyDeckPoints, next.WinReason)
}

func TestExecuteDoublePassTieContinuesPlay(t *testing.T) {
	s := emptyState()
	s.Players[0] = state.PlayerState{PointsField: []cards.Card{{Rank: cards.RankFive, Suit: cards.Clubs}}}
	s.Players[1] = state.PlayerState{PointsField: []cards.Card{{Rank: cards.RankFive, Suit: cards.Diamonds}}}

	next, err := Execute(s, moves.Move{Type: moves.Pass})
	require.NoError(t, err)
	next, err = Execute(next, moves.Move{Type: moves.Pass})
	require.NoError(t, err)
	assert.False(t, next.IsGameOver())
	assert.Equal(t, 0, next.ConsecutivePasses)
}

func TestExecuteQueenProtectionIsGeneratorOnly(t *testing.T) {
	// Queen protection is enforced by movegen (see movegen_test.go); the
	// executor's resolveTwo itself only checks that the target exists, so
	// a Two cast (bypassing generation) against a protected King still
	// resolves. This mirrors the reference _resolve_two, which has no
	// queen check of its own.
	s := emptyState()
	two := cards.Card{Rank: cards.RankTwo, Suit: cards.Clubs}
	king := cards.Card{Rank: cards.RankKing, Suit: cards.Spades}
	queen := cards.Card{Rank: cards.RankQueen, Suit: cards.Diamonds}
	s.Players[0] = state.PlayerState{Hand: []cards.Card{two}}
	s.Players[1] = state.PlayerState{Permanents: []cards.Card{king, queen}}

	opp := 1
	next, err := Execute(s, moves.Move{Type: moves.PlayOneOff, Card: two, Effect: moves.TwoDestroyPermanent, TargetCard: &king, TargetPlayer: &opp})
	require.NoError(t, err)

	next, err = Execute(next, moves.Move{Type: moves.DeclineCounter})
	require.NoError(t, err)
	assert.NotContains(t, next.Players[1].Permanents, king)
}

func TestExecuteDiscardFourStopsWhenHandEmpty(t *testing.T) {
	s := emptyState()
	card := cards.Card{Rank: cards.RankAce, Suit: cards.Clubs}
	s.Phase = state.PhaseDiscardFour
	s.Players[1] = state.PlayerState{Hand: []cards.Card{card}}
	s.FourState = &state.FourState{Player: 1, CardsToDiscard: 2}
	// A non-empty deck keeps the empty-deck win check from ending the game.
	s.Deck = []cards.Card{{Rank: cards.RankThree, Suit: cards.Spades}}

	next, err := Execute(s, moves.Move{Type: moves.Discard, Card: card})
	require.NoError(t, err)
	assert.Nil(t, next.FourState)
	assert.Equal(t, state.PhaseMain, next.Phase)
}

func TestMaxTurnsEndsGameDefensively(t *testing.T) {
	s := emptyState()
	s.TurnNumber = MaxTurns
	s.CurrentPlayer = 1
	s.Deck = []cards.Card{{Rank: cards.RankAce, Suit: cards.Clubs}}
	s.Players[0] = state.PlayerState{Hand: []cards.Card{{Rank: cards.RankTwo, Suit: cards.Clubs}}}

	next, err := Execute(s, moves.Move{Type: moves.Draw})
	require.NoError(t, err)
	assert.True(t, next.IsGameOver())
}

func errorsCause(err error) error {
	type causer interface{ Cause() error }
	for err != nil {
		c, ok := err.(causer)
		if !ok {
			return err
		}
		err = c.Cause()
	}
	return err
}
