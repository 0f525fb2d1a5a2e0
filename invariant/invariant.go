// Package invariant guards a layer-1 failure spec §7 distinguishes from
// ordinary contract errors: a non-terminal state with no legal moves is a
// bug, not a caller mistake. It is fatal — the search that hit it aborts and
// the offending state is logged before it does. This package checks only
// that case; a win-check that disagrees with the state's recorded winner is
// not checked here.
//
// Structured field logging here is grounded on the retrieval pack's
// vasic-digital-SuperAgent planning/mcts.go (a logrus.Logger threaded
// through the search for exactly this kind of abort-and-report use), since
// none of the pack's complete teacher repos carry a logging dependency of
// their own.
package invariant

import (
	"github.com/sirupsen/logrus"

	"github.com/signalnine/cuttlecore/executor"
	"github.com/signalnine/cuttlecore/state"
)

// Violation is panicked with when a layer-1 invariant breaks mid-search, so
// a single bad iteration aborts loudly instead of corrupting statistics
// silently. Cause is the underlying typed error (e.g.
// *executor.NoLegalMovesError) that the boundary would otherwise have
// surfaced as an ordinary contract failure.
type Violation struct {
	Cause error
	State state.GameState
}

func (v *Violation) Error() string {
	return "invariant violation: " + v.Cause.Error()
}

func (v *Violation) Unwrap() error {
	return v.Cause
}

// Log records a Violation at Error level with the offending state's shape
// before the caller panics, per spec §7's "report the offending (state,
// move) pair".
func Log(log logrus.FieldLogger, v *Violation) {
	log.WithFields(logrus.Fields{
		"turn_number":    v.State.TurnNumber,
		"phase":          v.State.Phase.String(),
		"current_player": v.State.CurrentPlayer,
	}).Error(v.Cause)
}

// CheckNonTerminal panics with a logged Violation if s is not game-over but
// legalMoveCount is zero — the generator returning nothing for a live state
// is a contradiction the executor and generator should never produce.
func CheckNonTerminal(log logrus.FieldLogger, s state.GameState, legalMoveCount int) {
	if s.IsGameOver() || legalMoveCount > 0 {
		return
	}
	v := &Violation{Cause: &executor.NoLegalMovesError{}, State: s}
	Log(log, v)
	panic(v)
}
