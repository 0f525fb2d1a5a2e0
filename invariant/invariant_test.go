package invariant

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/signalnine/cuttlecore/state"
)

func TestCheckNonTerminalNoopsWhenMovesExist(t *testing.T) {
	log, hook := test.NewNullLogger()
	assert.NotPanics(t, func() {
		CheckNonTerminal(log, state.GameState{Phase: state.PhaseMain}, 3)
	})
	assert.Empty(t, hook.Entries)
}

func TestCheckNonTerminalNoopsWhenGameOver(t *testing.T) {
	log, hook := test.NewNullLogger()
	s := state.GameState{}.WithWinner(0, state.WinReasonPoints)
	assert.NotPanics(t, func() {
		CheckNonTerminal(log, s, 0)
	})
	assert.Empty(t, hook.Entries)
}

func TestCheckNonTerminalPanicsAndLogsOnViolation(t *testing.T) {
	log, hook := test.NewNullLogger()
	s := state.GameState{Phase: state.PhaseMain, TurnNumber: 12}

	assert.Panics(t, func() {
		CheckNonTerminal(log, s, 0)
	})
	assert.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, 12, hook.LastEntry().Data["turn_number"])
}
