// Package heuristic scores a legal move for a given state, per spec §4.5.
// The score function is pure and deterministic: it never mutates state or
// consults randomness. It doubles as move-ordering for the search packages
// and as the greedy half of an epsilon-greedy rollout policy.
package heuristic

import (
	"github.com/signalnine/cuttlecore/cards"
	"github.com/signalnine/cuttlecore/moves"
	"github.com/signalnine/cuttlecore/state"
)

// ScoreMove scores m against s using DefaultWeights.
func ScoreMove(s state.GameState, m moves.Move) float64 {
	return ScoreMoveWithWeights(s, m, DefaultWeights())
}

// ScoreMoveWithWeights scores m against s using w, grounded on the
// reference _score_move's per-variant match (strategies/heuristic.py).
func ScoreMoveWithWeights(s state.GameState, m moves.Move, w Weights) float64 {
	player := s.ActingPlayer()
	opponent := 1 - player
	us := s.Players[player]
	them := s.Players[opponent]

	switch m.Type {
	case moves.PlayPoints:
		threshold := s.PointThreshold(player)
		if us.PointTotal()+m.Card.PointValue() >= threshold {
			return w.WinningMove
		}
		return w.PlayPointsBase + float64(m.Card.PointValue())

	case moves.Scuttle:
		return w.ScuttleBase + float64(m.Target.PointValue()) - float64(m.Card.PointValue())

	case moves.PlayPermanent:
		switch m.Card.Rank {
		case cards.RankKing:
			return w.PlayKing
		case cards.RankQueen:
			return w.PlayQueen
		case cards.RankJack:
			if m.TargetCard != nil {
				if us.PointTotal()+m.TargetCard.PointValue() >= s.PointThreshold(player) {
					return w.WinningMove
				}
				return w.PlayJackBase + float64(m.TargetCard.PointValue())
			}
			return w.PlayJackBase
		case cards.RankEight:
			return w.PlayEight
		}
		return 0

	case moves.PlayOneOff:
		return scoreOneOff(m.Effect, us, them, w)

	case moves.Counter:
		return w.Counter

	case moves.DeclineCounter:
		if s.CounterState == nil {
			return 0
		}
		if s.CounterState.Resolves() {
			return w.DeclineBad
		}
		return w.DeclineGood

	case moves.Draw:
		return w.Draw

	case moves.Pass:
		return w.Pass

	case moves.Discard:
		return w.DiscardLowValueBonus - float64(m.Card.PointValue())

	case moves.ResolveSeven:
		switch m.PlayAs {
		case moves.PlayPoints:
			return w.SevenPlayPointsBase + float64(m.Card.PointValue())
		case moves.PlayPermanent:
			return w.SevenPlayPermanent
		}
		return w.SevenOther
	}

	return 0
}

func scoreOneOff(effect moves.OneOffEffect, us, them state.PlayerState, w Weights) float64 {
	switch effect {
	case moves.AceScrapAllPoints:
		if them.PointTotal() > us.PointTotal() {
			return w.AceBehind
		}
		return w.AceAhead
	case moves.TwoDestroyPermanent:
		return w.TwoDestroyPermanent
	case moves.FourDiscard:
		return w.FourDiscard
	case moves.FiveDrawTwo:
		return w.FiveDrawTwo
	case moves.SixScrapAllPermanents:
		if countPermanentLike(them) > countPermanentLike(us) {
			return w.SixBehind
		}
		return w.SixAhead
	default: // ThreeRevive, SevenPlayFromDeck, NineReturnPermanent
		return w.OtherOneOff
	}
}

func countPermanentLike(p state.PlayerState) int {
	return len(p.Permanents) + len(p.Jacks)
}

type scoredMove struct {
	move  moves.Move
	score float64
	idx   int
}

// less orders a before b: higher score first, lower original index first
// on a tie (stable sort).
func (a scoredMove) less(b scoredMove) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	return a.idx < b.idx
}

// SortedByScoreDescending returns a new slice of ms ordered by
// ScoreMoveWithWeights descending, ties broken by original index (stable),
// mirroring the reference MCTSNode's untried_moves ordering.
func SortedByScoreDescending(s state.GameState, ms []moves.Move, w Weights) []moves.Move {
	ss := make([]scoredMove, len(ms))
	for i, m := range ms {
		ss[i] = scoredMove{move: m, score: ScoreMoveWithWeights(s, m, w), idx: i}
	}
	for i := 1; i < len(ss); i++ {
		j := i
		for j > 0 && ss[j].less(ss[j-1]) {
			ss[j], ss[j-1] = ss[j-1], ss[j]
			j--
		}
	}
	out := make([]moves.Move, len(ss))
	for i, sc := range ss {
		out[i] = sc.move
	}
	return out
}
