// Package state implements the immutable Cuttle game state: PlayerState,
// GameState, and the phase-specific substates (Counter, Seven, Four).
//
// Every mutator returns a new value; nothing here is ever edited in place,
// per spec §3's "every mutation returns a new state" and §9's "observational
// immutability" contract. Unchanged sub-slices are shared between the old
// and new states rather than copied, since the search tree retains many
// millions of these.
package state

import "github.com/signalnine/cuttlecore/cards"

// GamePhase is the observable automaton driving whose move is legal.
type GamePhase uint8

const (
	PhaseMain GamePhase = iota
	PhaseCounter
	PhaseResolveSeven
	PhaseDiscardFour
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseMain:
		return "Main"
	case PhaseCounter:
		return "Counter"
	case PhaseResolveSeven:
		return "ResolveSeven"
	case PhaseDiscardFour:
		return "DiscardFour"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// WinReason records why the game ended.
type WinReason uint8

const (
	WinReasonNone WinReason = iota
	WinReasonPoints
	WinReasonEmptyDeckPoints
	WinReasonOpponentEmptyHand
)

func (w WinReason) String() string {
	switch w {
	case WinReasonPoints:
		return "Points"
	case WinReasonEmptyDeckPoints:
		return "EmptyDeckPoints"
	case WinReasonOpponentEmptyHand:
		return "OpponentEmptyHand"
	default:
		return "None"
	}
}

// JackTheft pairs a Jack with the point card it stole.
type JackTheft struct {
	Jack   cards.Card
	Stolen cards.Card
}

// PlayerState is one player's immutable view of the board: hand, points
// field, non-Jack permanents (8/Q/K), and Jack thefts.
type PlayerState struct {
	Hand        []cards.Card
	PointsField []cards.Card
	Permanents  []cards.Card
	Jacks       []JackTheft
}

// PointTotal is the sum of point values on the field plus every card a
// Jack has stolen.
func (p PlayerState) PointTotal() int {
	total := 0
	for _, c := range p.PointsField {
		total += c.PointValue()
	}
	for _, j := range p.Jacks {
		total += j.Stolen.PointValue()
	}
	return total
}

// QueensCount counts Queens among permanents.
func (p PlayerState) QueensCount() int {
	return countRank(p.Permanents, cards.RankQueen)
}

// KingsCount counts Kings among permanents.
func (p PlayerState) KingsCount() int {
	return countRank(p.Permanents, cards.RankKing)
}

// HasGlasses reports whether this player has an 8 in play.
func (p PlayerState) HasGlasses() bool {
	return countRank(p.Permanents, cards.RankEight) > 0
}

func countRank(cs []cards.Card, r cards.Rank) int {
	n := 0
	for _, c := range cs {
		if c.Rank == r {
			n++
		}
	}
	return n
}

// WithHand returns a copy of p with Hand replaced.
func (p PlayerState) WithHand(hand []cards.Card) PlayerState {
	p.Hand = hand
	return p
}

// WithPointsField returns a copy of p with PointsField replaced.
func (p PlayerState) WithPointsField(pf []cards.Card) PlayerState {
	p.PointsField = pf
	return p
}

// WithPermanents returns a copy of p with Permanents replaced.
func (p PlayerState) WithPermanents(perms []cards.Card) PlayerState {
	p.Permanents = perms
	return p
}

// WithJacks returns a copy of p with Jacks replaced.
func (p PlayerState) WithJacks(jacks []JackTheft) PlayerState {
	p.Jacks = jacks
	return p
}

// CounterState tracks a pending one-off awaiting counter resolution.
// waiting_for_player is derived from chain parity, never stored, per
// spec §9's "do not encode as nullable booleans" / derive-don't-store rule.
type CounterState struct {
	OneOffCard   cards.Card
	OneOffPlayer int
	TargetCard   *cards.Card
	TargetPlayer *int
	CounterChain []cards.Card
}

// CounterCount is the length of the counter chain.
func (c CounterState) CounterCount() int {
	return len(c.CounterChain)
}

// Resolves reports whether the one-off resolves (even chain length,
// including zero) rather than being canceled.
func (c CounterState) Resolves() bool {
	return c.CounterCount()%2 == 0
}

// WaitingForPlayer is the player who must respond next: the original
// caster if the chain length is odd, the other player if even.
func (c CounterState) WaitingForPlayer() int {
	if c.CounterCount()%2 == 1 {
		return c.OneOffPlayer
	}
	return 1 - c.OneOffPlayer
}

// SevenState tracks cards revealed by a Seven awaiting resolution.
type SevenState struct {
	RevealedCards []cards.Card
	Player        int
}

// FourState tracks a forced discard in progress.
type FourState struct {
	Player          int
	CardsToDiscard  int
}

// GameState is the complete immutable snapshot of a Cuttle game.
type GameState struct {
	Players           [2]PlayerState
	Deck              []cards.Card
	Scrap             []cards.Card
	CurrentPlayer     int
	Phase             GamePhase
	TurnNumber        int
	ConsecutivePasses int
	CounterState      *CounterState
	SevenState        *SevenState
	FourState         *FourState
	Winner            *int
	WinReason         WinReason
}

// Opponent returns the index of the player who is not CurrentPlayer.
func (s GameState) Opponent() int {
	return 1 - s.CurrentPlayer
}

// CurrentPlayerState is a convenience accessor for Players[CurrentPlayer].
func (s GameState) CurrentPlayerState() PlayerState {
	return s.Players[s.CurrentPlayer]
}

// OpponentState is a convenience accessor for Players[Opponent()].
func (s GameState) OpponentState() PlayerState {
	return s.Players[s.Opponent()]
}

// IsGameOver reports whether the phase is GameOver.
func (s GameState) IsGameOver() bool {
	return s.Phase == PhaseGameOver
}

// PointThreshold is the score required for player to win: 21 minus 7 per
// King they control, floored at 7.
func (s GameState) PointThreshold(player int) int {
	threshold := 21 - 7*s.Players[player].KingsCount()
	if threshold < 7 {
		return 7
	}
	return threshold
}

// CheckWinner implements §4.4.12's exact win-check order: threshold win for
// either player, then empty-deck point comparison, then empty-deck-and-
// empty-hand. Returns (nil, WinReasonNone) if nobody has won yet.
func (s GameState) CheckWinner() (*int, WinReason) {
	for player := 0; player < 2; player++ {
		if s.Players[player].PointTotal() >= s.PointThreshold(player) {
			w := player
			return &w, WinReasonPoints
		}
	}

	if len(s.Deck) == 0 {
		p0 := s.Players[0].PointTotal()
		p1 := s.Players[1].PointTotal()
		if p0 > p1 {
			w := 0
			return &w, WinReasonEmptyDeckPoints
		}
		if p1 > p0 {
			w := 1
			return &w, WinReasonEmptyDeckPoints
		}
		for player := 0; player < 2; player++ {
			if len(s.Players[player].Hand) == 0 {
				w := 1 - player
				return &w, WinReasonOpponentEmptyHand
			}
		}
	}

	return nil, WinReasonNone
}

// WithPlayers returns a copy of s with Players replaced.
func (s GameState) WithPlayers(players [2]PlayerState) GameState {
	s.Players = players
	return s
}

// WithDeck returns a copy of s with Deck replaced.
func (s GameState) WithDeck(deck []cards.Card) GameState {
	s.Deck = deck
	return s
}

// WithScrap returns a copy of s with Scrap replaced.
func (s GameState) WithScrap(scrap []cards.Card) GameState {
	s.Scrap = scrap
	return s
}

// WithCurrentPlayer returns a copy of s with CurrentPlayer replaced.
func (s GameState) WithCurrentPlayer(player int) GameState {
	s.CurrentPlayer = player
	return s
}

// WithPhase returns a copy of s with Phase replaced.
func (s GameState) WithPhase(phase GamePhase) GameState {
	s.Phase = phase
	return s
}

// WithTurnNumber returns a copy of s with TurnNumber replaced.
func (s GameState) WithTurnNumber(n int) GameState {
	s.TurnNumber = n
	return s
}

// WithConsecutivePasses returns a copy of s with ConsecutivePasses replaced.
func (s GameState) WithConsecutivePasses(n int) GameState {
	s.ConsecutivePasses = n
	return s
}

// WithCounterState returns a copy of s with CounterState replaced.
func (s GameState) WithCounterState(cs *CounterState) GameState {
	s.CounterState = cs
	return s
}

// WithSevenState returns a copy of s with SevenState replaced.
func (s GameState) WithSevenState(ss *SevenState) GameState {
	s.SevenState = ss
	return s
}

// WithFourState returns a copy of s with FourState replaced.
func (s GameState) WithFourState(fs *FourState) GameState {
	s.FourState = fs
	return s
}

// WithWinner returns a copy of s with the winner and reason set, and Phase
// forced to GameOver, per §3's invariant "winner ≠ none ⟺ phase = GameOver".
func (s GameState) WithWinner(player int, reason WinReason) GameState {
	s.Winner = &player
	s.WinReason = reason
	s.Phase = PhaseGameOver
	return s
}

// ActingPlayer is the player whose move must be generated/executed next.
// It differs from CurrentPlayer during Counter/ResolveSeven/DiscardFour,
// per spec §9's "never as the parent state's current_player" warning.
func (s GameState) ActingPlayer() int {
	switch s.Phase {
	case PhaseCounter:
		if s.CounterState != nil {
			return s.CounterState.WaitingForPlayer()
		}
	case PhaseDiscardFour:
		if s.FourState != nil {
			return s.FourState.Player
		}
	case PhaseResolveSeven:
		if s.SevenState != nil {
			return s.SevenState.Player
		}
	}
	return s.CurrentPlayer
}

