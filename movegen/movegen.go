// Package movegen enumerates legal moves for a GameState, dispatching by
// phase per spec §4.3.
package movegen

import (
	"github.com/signalnine/cuttlecore/cards"
	"github.com/signalnine/cuttlecore/moves"
	"github.com/signalnine/cuttlecore/state"
)

// Options configures generation-time filters that sit outside the
// executor's rule contract, per spec §9's "hand limit as a variant".
type Options struct {
	// HandLimit, if > 0, removes Draw once the acting player's hand has
	// reached this size. Zero means unlimited.
	HandLimit int
}

// Generate returns every legal move for whichever player must act in s.
// Returns an empty slice if the game is over.
func Generate(s state.GameState) []moves.Move {
	return GenerateWithOptions(s, Options{})
}

// GenerateWithOptions is Generate with the hand-limit filter applied.
func GenerateWithOptions(s state.GameState, opts Options) []moves.Move {
	if s.IsGameOver() {
		return nil
	}

	switch s.Phase {
	case state.PhaseMain:
		return generateMain(s, opts)
	case state.PhaseCounter:
		return generateCounter(s)
	case state.PhaseResolveSeven:
		return generateResolveSeven(s)
	case state.PhaseDiscardFour:
		return generateDiscardFour(s)
	default:
		return nil
	}
}

func generateMain(s state.GameState, opts Options) []moves.Move {
	var out []moves.Move
	player := s.CurrentPlayerState()
	opponent := s.OpponentState()

	if len(s.Deck) > 0 {
		if opts.HandLimit <= 0 || len(player.Hand) < opts.HandLimit {
			out = append(out, moves.Move{Type: moves.Draw})
		}
	} else {
		out = append(out, moves.Move{Type: moves.Pass})
	}

	for _, c := range player.Hand {
		if c.CanPlayForPoints() {
			out = append(out, moves.Move{Type: moves.PlayPoints, Card: c})
			for _, target := range scuttleableTargets(opponent, c) {
				out = append(out, moves.Move{Type: moves.Scuttle, Card: c, Target: target})
			}
		}
		out = append(out, oneOffMoves(s, c)...)
		out = append(out, permanentMoves(opponent, c)...)
	}

	return out
}

// scuttleableTargets returns opponent point cards (direct or Jack-stolen)
// that card can scuttle and that are not Queen-protected.
func scuttleableTargets(opponent state.PlayerState, card cards.Card) []cards.Card {
	var targets []cards.Card
	for _, target := range opponent.PointsField {
		if card.CanScuttle(target) && !isProtectedByQueen(opponent, target) {
			targets = append(targets, target)
		}
	}
	for _, j := range opponent.Jacks {
		if card.CanScuttle(j.Stolen) && !isProtectedByQueen(opponent, j.Stolen) {
			targets = append(targets, j.Stolen)
		}
	}
	return targets
}

// isProtectedByQueen implements §4.3.3: a Queen protects every other card
// its owner controls from being targeted; the Queen itself stays targetable.
func isProtectedByQueen(owner state.PlayerState, card cards.Card) bool {
	if card.Rank == cards.RankQueen {
		return false
	}
	return owner.QueensCount() > 0
}

func oneOffMoves(s state.GameState, card cards.Card) []moves.Move {
	if !card.CanPlayAsOneOff() {
		return nil
	}
	opponent := s.OpponentState()
	opponentIdx := s.Opponent()
	current := s.CurrentPlayerState()
	currentIdx := s.CurrentPlayer

	var out []moves.Move
	switch card.Rank {
	case cards.RankAce:
		if hasAnyPoints(s) {
			out = append(out, moves.Move{Type: moves.PlayOneOff, Card: card, Effect: moves.AceScrapAllPoints})
		}

	case cards.RankTwo:
		for _, target := range destroyableTargets(opponent) {
			t := target
			p := opponentIdx
			out = append(out, moves.Move{
				Type: moves.PlayOneOff, Card: card, Effect: moves.TwoDestroyPermanent,
				TargetCard: &t, TargetPlayer: &p,
			})
		}

	case cards.RankThree:
		for _, target := range s.Scrap {
			t := target
			out = append(out, moves.Move{Type: moves.PlayOneOff, Card: card, Effect: moves.ThreeRevive, TargetCard: &t})
		}

	case cards.RankFour:
		if len(opponent.Hand) > 0 {
			p := opponentIdx
			out = append(out, moves.Move{Type: moves.PlayOneOff, Card: card, Effect: moves.FourDiscard, TargetPlayer: &p})
		}

	case cards.RankFive:
		if len(s.Deck) >= 1 {
			out = append(out, moves.Move{Type: moves.PlayOneOff, Card: card, Effect: moves.FiveDrawTwo})
		}

	case cards.RankSix:
		if hasAnyPermanents(s) {
			out = append(out, moves.Move{Type: moves.PlayOneOff, Card: card, Effect: moves.SixScrapAllPermanents})
		}

	case cards.RankSeven:
		if len(s.Deck) >= 1 {
			out = append(out, moves.Move{Type: moves.PlayOneOff, Card: card, Effect: moves.SevenPlayFromDeck})
		}

	case cards.RankNine:
		for _, target := range destroyableTargets(opponent) {
			t := target
			p := opponentIdx
			out = append(out, moves.Move{
				Type: moves.PlayOneOff, Card: card, Effect: moves.NineReturnPermanent,
				TargetCard: &t, TargetPlayer: &p,
			})
		}
		for _, target := range allPermanentLikeCards(current) {
			t := target
			p := currentIdx
			out = append(out, moves.Move{
				Type: moves.PlayOneOff, Card: card, Effect: moves.NineReturnPermanent,
				TargetCard: &t, TargetPlayer: &p,
			})
		}
	}
	return out
}

func permanentMoves(opponent state.PlayerState, card cards.Card) []moves.Move {
	if !card.CanPlayAsPermanent() {
		return nil
	}
	switch card.Rank {
	case cards.RankEight, cards.RankQueen, cards.RankKing:
		return []moves.Move{{Type: moves.PlayPermanent, Card: card}}
	case cards.RankJack:
		var out []moves.Move
		for _, target := range jackStealTargets(opponent) {
			t := target
			out = append(out, moves.Move{Type: moves.PlayPermanent, Card: card, TargetCard: &t})
		}
		return out
	}
	return nil
}

// jackStealTargets returns opponent point-field cards and Jack-stolen cards
// not protected by a Queen.
func jackStealTargets(opponent state.PlayerState) []cards.Card {
	var targets []cards.Card
	for _, target := range opponent.PointsField {
		if !isProtectedByQueen(opponent, target) {
			targets = append(targets, target)
		}
	}
	for _, j := range opponent.Jacks {
		if !isProtectedByQueen(opponent, j.Stolen) {
			targets = append(targets, j.Stolen)
		}
	}
	return targets
}

// destroyableTargets returns a player's permanents (8/Q/K and Jacks) not
// protected by their own Queen.
func destroyableTargets(owner state.PlayerState) []cards.Card {
	var targets []cards.Card
	for _, p := range owner.Permanents {
		if !isProtectedByQueen(owner, p) {
			targets = append(targets, p)
		}
	}
	for _, j := range owner.Jacks {
		if !isProtectedByQueen(owner, j.Jack) {
			targets = append(targets, j.Jack)
		}
	}
	return targets
}

// allPermanentLikeCards returns a player's own permanents and Jacks with no
// Queen filter (used for a Nine's own-board retreat option, which is
// unrestricted by the caster's own Queen).
func allPermanentLikeCards(owner state.PlayerState) []cards.Card {
	var targets []cards.Card
	targets = append(targets, owner.Permanents...)
	for _, j := range owner.Jacks {
		targets = append(targets, j.Jack)
	}
	return targets
}

func hasAnyPoints(s state.GameState) bool {
	for i := 0; i < 2; i++ {
		if len(s.Players[i].PointsField) > 0 || len(s.Players[i].Jacks) > 0 {
			return true
		}
	}
	return false
}

func hasAnyPermanents(s state.GameState) bool {
	for i := 0; i < 2; i++ {
		if len(s.Players[i].Permanents) > 0 || len(s.Players[i].Jacks) > 0 {
			return true
		}
	}
	return false
}

func generateCounter(s state.GameState) []moves.Move {
	if s.CounterState == nil {
		return nil
	}
	waiting := s.CounterState.WaitingForPlayer()
	player := s.Players[waiting]

	var out []moves.Move
	for _, c := range player.Hand {
		if c.Rank == cards.RankTwo {
			out = append(out, moves.Move{Type: moves.Counter, Card: c})
		}
	}
	out = append(out, moves.Move{Type: moves.DeclineCounter})
	return out
}

func generateResolveSeven(s state.GameState) []moves.Move {
	if s.SevenState == nil {
		return nil
	}
	player := s.SevenState.Player
	opponent := s.Players[1-player]
	current := s.Players[player]

	var out []moves.Move
	for _, card := range s.SevenState.RevealedCards {
		cardMoves := resolveSevenOptionsForCard(s, card, player, opponent, current)
		if len(cardMoves) == 0 {
			cardMoves = append(cardMoves, moves.Move{Type: moves.ResolveSeven, Card: card, PlayAs: moves.Discard})
		}
		out = append(out, cardMoves...)
	}
	return out
}

func resolveSevenOptionsForCard(s state.GameState, card cards.Card, player int, opponent, current state.PlayerState) []moves.Move {
	var out []moves.Move

	if card.CanPlayForPoints() {
		out = append(out, moves.Move{Type: moves.ResolveSeven, Card: card, PlayAs: moves.PlayPoints})
		for _, target := range scuttleableTargets(opponent, card) {
			t := target
			out = append(out, moves.Move{Type: moves.ResolveSeven, Card: card, PlayAs: moves.Scuttle, TargetCard: &t})
		}
	}

	if card.CanPlayAsOneOff() {
		out = append(out, resolveSevenOneOffOptions(s, card, player, opponent, current)...)
	}

	if card.CanPlayAsPermanent() {
		out = append(out, resolveSevenPermanentOptions(card, opponent)...)
	}

	return out
}

func resolveSevenOneOffOptions(s state.GameState, card cards.Card, player int, opponent, current state.PlayerState) []moves.Move {
	opponentIdx := 1 - player
	var out []moves.Move
	switch card.Rank {
	case cards.RankAce:
		if hasAnyPoints(s) {
			out = append(out, moves.Move{Type: moves.ResolveSeven, Card: card, PlayAs: moves.PlayOneOff})
		}
	case cards.RankTwo, cards.RankNine:
		for _, target := range destroyableTargets(opponent) {
			t := target
			p := opponentIdx
			out = append(out, moves.Move{Type: moves.ResolveSeven, Card: card, PlayAs: moves.PlayOneOff, TargetCard: &t, TargetPlayer: &p})
		}
		if card.Rank == cards.RankNine {
			for _, target := range allPermanentLikeCards(current) {
				t := target
				p := player
				out = append(out, moves.Move{Type: moves.ResolveSeven, Card: card, PlayAs: moves.PlayOneOff, TargetCard: &t, TargetPlayer: &p})
			}
		}
	case cards.RankThree:
		for _, target := range s.Scrap {
			t := target
			out = append(out, moves.Move{Type: moves.ResolveSeven, Card: card, PlayAs: moves.PlayOneOff, TargetCard: &t})
		}
	case cards.RankFour:
		if len(opponent.Hand) > 0 {
			p := opponentIdx
			out = append(out, moves.Move{Type: moves.ResolveSeven, Card: card, PlayAs: moves.PlayOneOff, TargetPlayer: &p})
		}
	case cards.RankFive, cards.RankSeven:
		if len(s.Deck) >= 1 {
			out = append(out, moves.Move{Type: moves.ResolveSeven, Card: card, PlayAs: moves.PlayOneOff})
		}
	case cards.RankSix:
		if hasAnyPermanents(s) {
			out = append(out, moves.Move{Type: moves.ResolveSeven, Card: card, PlayAs: moves.PlayOneOff})
		}
	}
	return out
}

func resolveSevenPermanentOptions(card cards.Card, opponent state.PlayerState) []moves.Move {
	switch card.Rank {
	case cards.RankEight, cards.RankQueen, cards.RankKing:
		return []moves.Move{{Type: moves.ResolveSeven, Card: card, PlayAs: moves.PlayPermanent}}
	case cards.RankJack:
		var out []moves.Move
		for _, target := range jackStealTargets(opponent) {
			t := target
			out = append(out, moves.Move{Type: moves.ResolveSeven, Card: card, PlayAs: moves.PlayPermanent, TargetCard: &t})
		}
		return out
	}
	return nil
}

func generateDiscardFour(s state.GameState) []moves.Move {
	if s.FourState == nil {
		return nil
	}
	player := s.Players[s.FourState.Player]
	var out []moves.Move
	for _, c := range player.Hand {
		out = append(out, moves.Move{Type: moves.Discard, Card: c})
	}
	return out
}
