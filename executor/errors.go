package executor

import (
	"fmt"

	"github.com/pkg/errors"
)

// IllegalMoveError reports a move that violates the rules for the state it
// was attempted against, per spec §6/§7 layer 2.
type IllegalMoveError struct {
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return "illegal move: " + e.Reason
}

// NoLegalMovesError reports that the generator produced no moves for a
// non-terminal state — an invariant violation per spec §7 layer 1.
type NoLegalMovesError struct{}

func (e *NoLegalMovesError) Error() string {
	return "no legal moves available for non-terminal state"
}

// GameAlreadyOverError reports Execute called on a terminal state.
type GameAlreadyOverError struct{}

func (e *GameAlreadyOverError) Error() string {
	return "game is already over"
}

// illegalMove wraps a formatted IllegalMoveError with a stack trace, so a
// misapplied move deep inside a search carries its origin back to the
// caller per spec §7's "report the offending (state, move) pair".
func illegalMove(format string, args ...interface{}) error {
	return errors.WithStack(&IllegalMoveError{Reason: fmt.Sprintf(format, args...)})
}
