// Package ismcts implements Information-Set Monte Carlo tree search, per
// spec §4.7. It searches over the acting player's information set rather
// than the true state, determinizing an unknown opponent hand at every
// iteration and sharing a single tree across determinizations via
// move-keyed child lookup.
//
// Grounded on strategies/ismcts.py (no teacher equivalent exists — the
// teacher is a perfect-information game); the determinize/KnowledgeTracker
// split below follows the shape of BigInteger28-Azen's pkg/game/knowledge.go
// and pkg/engine/engine.go's determinize, adapted from rank-counting canasta
// knowledge to per-card Cuttle knowledge.
package ismcts

import (
	"github.com/signalnine/cuttlecore/cards"
	"github.com/signalnine/cuttlecore/moves"
	"github.com/signalnine/cuttlecore/state"
)

// Knowledge tracks which specific cards a player has observed, beyond
// what's directly visible in the current GameState (their own hand, both
// players' fields, the scrap, and any revealed Seven cards are always
// fully known and don't need tracking here).
type Knowledge struct {
	PlayerIndex int
	KnownCards  map[cards.Card]bool
}

// NewKnowledge starts tracking for playerIndex, seeded with their own
// starting hand, per the reference on_game_start.
func NewKnowledge(playerIndex int, ownHand []cards.Card) *Knowledge {
	k := &Knowledge{PlayerIndex: playerIndex, KnownCards: make(map[cards.Card]bool)}
	for _, c := range ownHand {
		k.KnownCards[c] = true
	}
	return k
}

// Observe records cards revealed by a just-made move, per the reference
// on_move_made: playing, countering, discarding, or resolving a Seven with
// a card reveals that card (and any explicit target) to both players.
func (k *Knowledge) Observe(s state.GameState, m moves.Move) {
	switch m.Type {
	case moves.PlayPoints, moves.Scuttle, moves.PlayOneOff, moves.Counter, moves.Discard, moves.ResolveSeven:
		k.KnownCards[m.Card] = true
	case moves.PlayPermanent:
		k.KnownCards[m.Card] = true
		if m.TargetCard != nil {
			k.KnownCards[*m.TargetCard] = true
		}
	}
	if m.TargetCard != nil {
		k.KnownCards[*m.TargetCard] = true
	}
	if m.Type == moves.Scuttle {
		k.KnownCards[m.Target] = true
	}

	for _, c := range s.Players[k.PlayerIndex].Hand {
		k.KnownCards[c] = true
	}
}
