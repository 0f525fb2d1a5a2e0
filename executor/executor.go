// Package executor applies moves to a GameState and returns the successor
// state, per spec §4.4. Execute is the only component that produces
// successor states; the generator, MCTS, and ISMCTS all call through it.
package executor

import (
	"github.com/signalnine/cuttlecore/cards"
	"github.com/signalnine/cuttlecore/moves"
	"github.com/signalnine/cuttlecore/state"
)

// MaxTurns bounds the stalemate loop flagged as an open question in spec
// §9: a tied double-pass resets consecutive_passes and continues, which can
// loop forever in principle. Past this many turns, the higher-scoring
// player (or player 0 on an exact tie) is declared the winner so that a
// search never spins on a pathological state.
const MaxTurns = 500

// Execute applies move to state and returns the successor state, or an
// *IllegalMoveError / *GameAlreadyOverError.
func Execute(s state.GameState, m moves.Move) (state.GameState, error) {
	if s.IsGameOver() {
		return s, &GameAlreadyOverError{}
	}

	switch m.Type {
	case moves.Draw:
		return executeDraw(s)
	case moves.PlayPoints:
		return executePlayPoints(s, m)
	case moves.Scuttle:
		return executeScuttle(s, m)
	case moves.PlayOneOff:
		return executePlayOneOff(s, m)
	case moves.PlayPermanent:
		return executePlayPermanent(s, m)
	case moves.Counter:
		return executeCounter(s, m)
	case moves.DeclineCounter:
		return executeDeclineCounter(s)
	case moves.ResolveSeven:
		return executeResolveSeven(s, m)
	case moves.Discard:
		return executeDiscard(s, m)
	case moves.Pass:
		return executePass(s)
	default:
		return s, illegalMove("unknown move type %v", m.Type)
	}
}

func executeDraw(s state.GameState) (state.GameState, error) {
	if s.Phase != state.PhaseMain {
		return s, illegalMove("can only draw during main phase")
	}
	if len(s.Deck) == 0 {
		return s, illegalMove("deck is empty")
	}

	drawn := s.Deck[0]
	newDeck := s.Deck[1:]

	player := s.CurrentPlayerState()
	newPlayer := player.WithHand(append(append([]cards.Card(nil), player.Hand...), drawn))

	players := s.Players
	players[s.CurrentPlayer] = newPlayer

	next := s.WithPlayers(players).WithDeck(newDeck).WithConsecutivePasses(0)
	return endTurn(next), nil
}

func executePlayPoints(s state.GameState, m moves.Move) (state.GameState, error) {
	if s.Phase != state.PhaseMain {
		return s, illegalMove("can only play for points during main phase")
	}
	player := s.CurrentPlayerState()
	if !containsCard(player.Hand, m.Card) {
		return s, illegalMove("card %s not in hand", m.Card)
	}
	if !m.Card.CanPlayForPoints() {
		return s, illegalMove("card %s cannot be played for points", m.Card)
	}

	newHand := removeCard(player.Hand, m.Card)
	newPoints := append(append([]cards.Card(nil), player.PointsField...), m.Card)
	newPlayer := player.WithHand(newHand).WithPointsField(newPoints)

	players := s.Players
	players[s.CurrentPlayer] = newPlayer
	next := s.WithPlayers(players).WithConsecutivePasses(0)

	next = checkWin(next)
	if next.IsGameOver() {
		return next, nil
	}
	return endTurn(next), nil
}

func executeScuttle(s state.GameState, m moves.Move) (state.GameState, error) {
	if s.Phase != state.PhaseMain {
		return s, illegalMove("can only scuttle during main phase")
	}
	player := s.CurrentPlayerState()
	opponent := s.OpponentState()

	if !containsCard(player.Hand, m.Card) {
		return s, illegalMove("card %s not in hand", m.Card)
	}
	if !m.Card.CanScuttle(m.Target) {
		return s, illegalMove("card %s cannot scuttle %s", m.Card, m.Target)
	}

	targetInField := containsCard(opponent.PointsField, m.Target)
	targetInJacks, jackCard := findJackByStolen(opponent.Jacks, m.Target)

	if !targetInField && !targetInJacks {
		return s, illegalMove("target %s not in opponent's points", m.Target)
	}

	newPlayer := player.WithHand(removeCard(player.Hand, m.Card))
	players := s.Players
	players[s.CurrentPlayer] = newPlayer

	var newScrap []cards.Card
	if targetInField {
		newOpponent := opponent.WithPointsField(removeCard(opponent.PointsField, m.Target))
		players[s.Opponent()] = newOpponent
		newScrap = append(append([]cards.Card(nil), s.Scrap...), m.Card, m.Target)
	} else {
		newOpponent := opponent.WithJacks(removeJackByStolen(opponent.Jacks, m.Target))
		players[s.Opponent()] = newOpponent
		newScrap = append(append([]cards.Card(nil), s.Scrap...), m.Card, m.Target, jackCard)
	}

	next := s.WithPlayers(players).WithScrap(newScrap).WithConsecutivePasses(0)
	return endTurn(next), nil
}

func executePlayOneOff(s state.GameState, m moves.Move) (state.GameState, error) {
	if s.Phase != state.PhaseMain {
		return s, illegalMove("can only play one-off during main phase")
	}
	player := s.CurrentPlayerState()
	if !containsCard(player.Hand, m.Card) {
		return s, illegalMove("card %s not in hand", m.Card)
	}

	newPlayer := player.WithHand(removeCard(player.Hand, m.Card))
	players := s.Players
	players[s.CurrentPlayer] = newPlayer

	cs := &state.CounterState{
		OneOffCard:   m.Card,
		OneOffPlayer: s.CurrentPlayer,
		TargetCard:   m.TargetCard,
		TargetPlayer: m.TargetPlayer,
	}

	next := s.WithPlayers(players).
		WithPhase(state.PhaseCounter).
		WithCounterState(cs).
		WithConsecutivePasses(0)
	return next, nil
}

func executePlayPermanent(s state.GameState, m moves.Move) (state.GameState, error) {
	if s.Phase != state.PhaseMain {
		return s, illegalMove("can only play permanent during main phase")
	}
	player := s.CurrentPlayerState()
	opponent := s.OpponentState()

	if !containsCard(player.Hand, m.Card) {
		return s, illegalMove("card %s not in hand", m.Card)
	}

	newHand := removeCard(player.Hand, m.Card)
	players := s.Players
	next := s

	if m.Card.Rank == cards.RankJack {
		if m.TargetCard == nil {
			return s, illegalMove("jack requires a target card")
		}
		target := *m.TargetCard
		targetInField := containsCard(opponent.PointsField, target)
		targetInJacks, oldJack := findJackByStolen(opponent.Jacks, target)
		if !targetInField && !targetInJacks {
			return s, illegalMove("target %s not in opponent's points", target)
		}

		var newOpponent state.PlayerState
		if targetInField {
			newOpponent = opponent.WithPointsField(removeCard(opponent.PointsField, target))
		} else {
			newOpponent = opponent.WithJacks(removeJackByStolen(opponent.Jacks, target))
			next = next.WithScrap(append(append([]cards.Card(nil), next.Scrap...), oldJack))
		}

		newJacks := append(append([]state.JackTheft(nil), player.Jacks...), state.JackTheft{Jack: m.Card, Stolen: target})
		newPlayer := player.WithHand(newHand).WithJacks(newJacks)

		players[s.CurrentPlayer] = newPlayer
		players[s.Opponent()] = newOpponent
	} else {
		newPermanents := append(append([]cards.Card(nil), player.Permanents...), m.Card)
		newPlayer := player.WithHand(newHand).WithPermanents(newPermanents)
		players[s.CurrentPlayer] = newPlayer
	}

	next = next.WithPlayers(players).WithConsecutivePasses(0)
	next = checkWin(next)
	if next.IsGameOver() {
		return next, nil
	}
	return endTurn(next), nil
}

func executeCounter(s state.GameState, m moves.Move) (state.GameState, error) {
	if s.Phase != state.PhaseCounter {
		return s, illegalMove("can only counter during counter phase")
	}
	if s.CounterState == nil {
		return s, illegalMove("no counter state")
	}

	waiting := s.CounterState.WaitingForPlayer()
	player := s.Players[waiting]

	if !containsCard(player.Hand, m.Card) {
		return s, illegalMove("card %s not in hand", m.Card)
	}
	if m.Card.Rank != cards.RankTwo {
		return s, illegalMove("can only counter with a two")
	}

	newPlayer := player.WithHand(removeCard(player.Hand, m.Card))
	players := s.Players
	players[waiting] = newPlayer

	newChain := append(append([]cards.Card(nil), s.CounterState.CounterChain...), m.Card)
	newCounterState := &state.CounterState{
		OneOffCard:   s.CounterState.OneOffCard,
		OneOffPlayer: s.CounterState.OneOffPlayer,
		TargetCard:   s.CounterState.TargetCard,
		TargetPlayer: s.CounterState.TargetPlayer,
		CounterChain: newChain,
	}

	return s.WithPlayers(players).WithCounterState(newCounterState), nil
}

func executeDeclineCounter(s state.GameState) (state.GameState, error) {
	if s.Phase != state.PhaseCounter {
		return s, illegalMove("can only decline counter during counter phase")
	}
	if s.CounterState == nil {
		return s, illegalMove("no counter state")
	}

	cs := s.CounterState
	toScrap := append([]cards.Card{cs.OneOffCard}, cs.CounterChain...)
	next := s.WithScrap(append(append([]cards.Card(nil), s.Scrap...), toScrap...))

	if cs.Resolves() {
		var err error
		next, err = resolveOneOff(next, *cs)
		if err != nil {
			return s, err
		}
	}

	next = next.WithCounterState(nil)

	if next.Phase == state.PhaseCounter {
		next = next.WithPhase(state.PhaseMain)
		next = checkWin(next)
		if !next.IsGameOver() {
			next = endTurn(next)
		}
	}

	return next, nil
}

func resolveOneOff(s state.GameState, cs state.CounterState) (state.GameState, error) {
	switch cs.OneOffCard.Rank {
	case cards.RankAce:
		return resolveAce(s), nil
	case cards.RankTwo:
		return resolveTwo(s, cs.TargetCard, cs.TargetPlayer)
	case cards.RankThree:
		return resolveThree(s, cs.OneOffPlayer, cs.TargetCard)
	case cards.RankFour:
		return resolveFour(s, cs.TargetPlayer), nil
	case cards.RankFive:
		return resolveFive(s, cs.OneOffPlayer), nil
	case cards.RankSix:
		return resolveSix(s), nil
	case cards.RankSeven:
		return resolveSeven(s, cs.OneOffPlayer)
	case cards.RankNine:
		return resolveNine(s, cs.TargetCard, cs.TargetPlayer)
	default:
		return s, illegalMove("invalid one-off card %s", cs.OneOffCard)
	}
}

func resolveAce(s state.GameState) state.GameState {
	var toScrap []cards.Card
	players := s.Players
	for i := 0; i < 2; i++ {
		p := players[i]
		toScrap = append(toScrap, p.PointsField...)
		for _, j := range p.Jacks {
			toScrap = append(toScrap, j.Jack, j.Stolen)
		}
		players[i] = p.WithPointsField(nil).WithJacks(nil)
	}
	newScrap := append(append([]cards.Card(nil), s.Scrap...), toScrap...)
	return s.WithPlayers(players).WithScrap(newScrap)
}

func resolveTwo(s state.GameState, targetCard *cards.Card, targetPlayer *int) (state.GameState, error) {
	if targetCard == nil || targetPlayer == nil {
		return s, illegalMove("two requires a target")
	}
	player := s.Players[*targetPlayer]
	target := *targetCard

	var newPlayer state.PlayerState
	next := s
	if containsCard(player.Permanents, target) {
		newPlayer = player.WithPermanents(removeCard(player.Permanents, target))
	} else if ok, _ := findJackByJack(player.Jacks, target); ok {
		stolen := stolenByJack(player.Jacks, target)
		newPlayer = player.WithJacks(removeJackByJack(player.Jacks, target))
		next = next.WithScrap(append(append([]cards.Card(nil), next.Scrap...), stolen))
	} else {
		return s, illegalMove("target %s not found", target)
	}

	players := next.Players
	players[*targetPlayer] = newPlayer
	next = next.WithPlayers(players)
	next = next.WithScrap(append(append([]cards.Card(nil), next.Scrap...), target))
	return next, nil
}

func resolveThree(s state.GameState, caster int, targetCard *cards.Card) (state.GameState, error) {
	if targetCard == nil {
		return s, illegalMove("three requires a target card from scrap")
	}
	if !containsCard(s.Scrap, *targetCard) {
		return s, illegalMove("card %s not in scrap", *targetCard)
	}

	newScrap := removeCard(s.Scrap, *targetCard)
	player := s.Players[caster]
	newHand := append(append([]cards.Card(nil), player.Hand...), *targetCard)
	newPlayer := player.WithHand(newHand)

	players := s.Players
	players[caster] = newPlayer
	return s.WithPlayers(players).WithScrap(newScrap), nil
}

func resolveFour(s state.GameState, targetPlayer *int) state.GameState {
	if targetPlayer == nil {
		return s
	}
	player := s.Players[*targetPlayer]
	toDiscard := min(2, len(player.Hand))
	if toDiscard == 0 {
		return s
	}
	fs := &state.FourState{Player: *targetPlayer, CardsToDiscard: toDiscard}
	return s.WithPhase(state.PhaseDiscardFour).WithFourState(fs)
}

func resolveFive(s state.GameState, caster int) state.GameState {
	toDraw := min(2, len(s.Deck))
	if toDraw == 0 {
		return s
	}
	drawn := s.Deck[:toDraw]
	newDeck := s.Deck[toDraw:]

	player := s.Players[caster]
	newHand := append(append([]cards.Card(nil), player.Hand...), drawn...)
	newPlayer := player.WithHand(newHand)

	players := s.Players
	players[caster] = newPlayer
	return s.WithPlayers(players).WithDeck(newDeck)
}

func resolveSix(s state.GameState) state.GameState {
	var toScrap []cards.Card
	players := s.Players
	for i := 0; i < 2; i++ {
		p := players[i]
		toScrap = append(toScrap, p.Permanents...)
		for _, j := range p.Jacks {
			toScrap = append(toScrap, j.Jack, j.Stolen)
		}
		players[i] = p.WithPermanents(nil).WithJacks(nil)
	}
	newScrap := append(append([]cards.Card(nil), s.Scrap...), toScrap...)
	return s.WithPlayers(players).WithScrap(newScrap)
}

func resolveSeven(s state.GameState, caster int) (state.GameState, error) {
	if len(s.Deck) == 0 {
		return s, illegalMove("deck is empty")
	}
	revealed := []cards.Card{s.Deck[0]}
	newDeck := s.Deck[1:]

	ss := &state.SevenState{RevealedCards: revealed, Player: caster}
	return s.WithDeck(newDeck).WithPhase(state.PhaseResolveSeven).WithSevenState(ss), nil
}

func resolveNine(s state.GameState, targetCard *cards.Card, targetPlayer *int) (state.GameState, error) {
	if targetCard == nil || targetPlayer == nil {
		return s, illegalMove("nine requires a target")
	}
	player := s.Players[*targetPlayer]
	target := *targetCard

	if containsCard(player.Permanents, target) {
		newPermanents := removeCard(player.Permanents, target)
		newHand := append(append([]cards.Card(nil), player.Hand...), target)
		newPlayer := player.WithPermanents(newPermanents).WithHand(newHand)
		players := s.Players
		players[*targetPlayer] = newPlayer
		return s.WithPlayers(players), nil
	}

	if ok, _ := findJackByJack(player.Jacks, target); ok {
		stolen := stolenByJack(player.Jacks, target)
		newJacks := removeJackByJack(player.Jacks, target)
		newHand := append(append([]cards.Card(nil), player.Hand...), target)
		newPlayer := player.WithJacks(newJacks).WithHand(newHand)

		opponentIdx := 1 - *targetPlayer
		opponent := s.Players[opponentIdx]
		newOpponentPoints := append(append([]cards.Card(nil), opponent.PointsField...), stolen)
		newOpponent := opponent.WithPointsField(newOpponentPoints)

		players := s.Players
		players[*targetPlayer] = newPlayer
		players[opponentIdx] = newOpponent
		return s.WithPlayers(players), nil
	}

	return s, illegalMove("target %s not found", target)
}

func executeResolveSeven(s state.GameState, m moves.Move) (state.GameState, error) {
	if s.Phase != state.PhaseResolveSeven {
		return s, illegalMove("not in seven resolution phase")
	}
	if s.SevenState == nil {
		return s, illegalMove("no seven state")
	}
	if !containsCard(s.SevenState.RevealedCards, m.Card) {
		return s, illegalMove("card %s not in revealed cards", m.Card)
	}

	playerIdx := s.SevenState.Player
	opponentIdx := 1 - playerIdx

	otherCards := removeCard(s.SevenState.RevealedCards, m.Card)
	newDeck := append(append([]cards.Card(nil), otherCards...), s.Deck...)

	next := s.WithDeck(newDeck).
		WithSevenState(nil).
		WithPhase(state.PhaseMain).
		WithCurrentPlayer(playerIdx)

	switch m.PlayAs {
	case moves.PlayPoints:
		player := next.Players[playerIdx]
		newPoints := append(append([]cards.Card(nil), player.PointsField...), m.Card)
		newPlayer := player.WithPointsField(newPoints)
		players := next.Players
		players[playerIdx] = newPlayer
		next = next.WithPlayers(players)

	case moves.Scuttle:
		if m.TargetCard == nil {
			return s, illegalMove("scuttle requires target")
		}
		opponent := next.Players[opponentIdx]
		targetInField := containsCard(opponent.PointsField, *m.TargetCard)
		targetInJacks, jackCard := findJackByStolen(opponent.Jacks, *m.TargetCard)
		if !targetInField && !targetInJacks {
			return s, illegalMove("target not found")
		}

		var newOpponent state.PlayerState
		var newScrap []cards.Card
		if targetInField {
			newOpponent = opponent.WithPointsField(removeCard(opponent.PointsField, *m.TargetCard))
			newScrap = append(append([]cards.Card(nil), next.Scrap...), m.Card, *m.TargetCard)
		} else {
			newOpponent = opponent.WithJacks(removeJackByStolen(opponent.Jacks, *m.TargetCard))
			newScrap = append(append([]cards.Card(nil), next.Scrap...), m.Card, *m.TargetCard, jackCard)
		}
		players := next.Players
		players[opponentIdx] = newOpponent
		next = next.WithPlayers(players).WithScrap(newScrap)

	case moves.PlayOneOff:
		cs := &state.CounterState{
			OneOffCard:   m.Card,
			OneOffPlayer: playerIdx,
			TargetCard:   m.TargetCard,
			TargetPlayer: m.TargetPlayer,
		}
		return next.WithPhase(state.PhaseCounter).WithCounterState(cs), nil

	case moves.PlayPermanent:
		if m.Card.Rank == cards.RankJack {
			if m.TargetCard == nil {
				return s, illegalMove("jack requires target")
			}
			opponent := next.Players[opponentIdx]
			player := next.Players[playerIdx]
			targetInField := containsCard(opponent.PointsField, *m.TargetCard)
			targetInJacks, oldJack := findJackByStolen(opponent.Jacks, *m.TargetCard)
			if !targetInField && !targetInJacks {
				return s, illegalMove("target not found")
			}
			var newOpponent state.PlayerState
			if targetInField {
				newOpponent = opponent.WithPointsField(removeCard(opponent.PointsField, *m.TargetCard))
			} else {
				newOpponent = opponent.WithJacks(removeJackByStolen(opponent.Jacks, *m.TargetCard))
				next = next.WithScrap(append(append([]cards.Card(nil), next.Scrap...), oldJack))
			}
			newJacks := append(append([]state.JackTheft(nil), player.Jacks...), state.JackTheft{Jack: m.Card, Stolen: *m.TargetCard})
			newPlayer := player.WithJacks(newJacks)

			players := next.Players
			players[playerIdx] = newPlayer
			players[opponentIdx] = newOpponent
			next = next.WithPlayers(players)
		} else {
			player := next.Players[playerIdx]
			newPermanents := append(append([]cards.Card(nil), player.Permanents...), m.Card)
			newPlayer := player.WithPermanents(newPermanents)
			players := next.Players
			players[playerIdx] = newPlayer
			next = next.WithPlayers(players)
		}

	case moves.Discard:
		next = next.WithScrap(append(append([]cards.Card(nil), next.Scrap...), m.Card))

	default:
		return s, illegalMove("unsupported seven play_as %v", m.PlayAs)
	}

	next = checkWin(next)
	if !next.IsGameOver() {
		next = endTurn(next)
	}
	return next, nil
}

func executeDiscard(s state.GameState, m moves.Move) (state.GameState, error) {
	if s.Phase != state.PhaseDiscardFour {
		return s, illegalMove("not in discard phase")
	}
	if s.FourState == nil {
		return s, illegalMove("no four state")
	}

	playerIdx := s.FourState.Player
	player := s.Players[playerIdx]
	if !containsCard(player.Hand, m.Card) {
		return s, illegalMove("card %s not in hand", m.Card)
	}

	newHand := removeCard(player.Hand, m.Card)
	newPlayer := player.WithHand(newHand)
	newScrap := append(append([]cards.Card(nil), s.Scrap...), m.Card)

	players := s.Players
	players[playerIdx] = newPlayer

	remaining := s.FourState.CardsToDiscard - 1

	if remaining > 0 && len(newHand) > 0 {
		fs := &state.FourState{Player: playerIdx, CardsToDiscard: remaining}
		return s.WithPlayers(players).WithScrap(newScrap).WithFourState(fs), nil
	}

	next := s.WithPlayers(players).WithScrap(newScrap).WithFourState(nil).WithPhase(state.PhaseMain)
	next = checkWin(next)
	if !next.IsGameOver() {
		next = endTurn(next)
	}
	return next, nil
}

func executePass(s state.GameState) (state.GameState, error) {
	if s.Phase != state.PhaseMain {
		return s, illegalMove("can only pass during main phase")
	}
	if len(s.Deck) > 0 {
		return s, illegalMove("cannot pass when deck is not empty")
	}

	newPasses := s.ConsecutivePasses + 1

	if newPasses >= 2 {
		p0 := s.Players[0].PointTotal()
		p1 := s.Players[1].PointTotal()
		if p0 > p1 {
			return s.WithWinner(0, state.WinReasonEmptyDeckPoints), nil
		}
		if p1 > p0 {
			return s.WithWinner(1, state.WinReasonEmptyDeckPoints), nil
		}
		newPasses = 0
	}

	return endTurn(s.WithConsecutivePasses(newPasses)), nil
}

func endTurn(s state.GameState) state.GameState {
	newTurn := s.TurnNumber
	if s.CurrentPlayer == 1 {
		newTurn++
	}
	next := s.WithCurrentPlayer(s.Opponent()).WithTurnNumber(newTurn)

	if next.TurnNumber > MaxTurns {
		p0 := next.Players[0].PointTotal()
		p1 := next.Players[1].PointTotal()
		if p1 > p0 {
			return next.WithWinner(1, state.WinReasonEmptyDeckPoints)
		}
		return next.WithWinner(0, state.WinReasonEmptyDeckPoints)
	}

	return next
}

func checkWin(s state.GameState) state.GameState {
	winner, reason := s.CheckWinner()
	if winner != nil {
		return s.WithWinner(*winner, reason)
	}
	return s
}

func containsCard(cs []cards.Card, target cards.Card) bool {
	for _, c := range cs {
		if c == target {
			return true
		}
	}
	return false
}

func removeCard(cs []cards.Card, target cards.Card) []cards.Card {
	out := make([]cards.Card, 0, len(cs))
	removed := false
	for _, c := range cs {
		if !removed && c == target {
			removed = true
			continue
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func findJackByStolen(jacks []state.JackTheft, stolen cards.Card) (bool, cards.Card) {
	for _, j := range jacks {
		if j.Stolen == stolen {
			return true, j.Jack
		}
	}
	return false, cards.Card{}
}

func removeJackByStolen(jacks []state.JackTheft, stolen cards.Card) []state.JackTheft {
	out := make([]state.JackTheft, 0, len(jacks))
	for _, j := range jacks {
		if j.Stolen != stolen {
			out = append(out, j)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func findJackByJack(jacks []state.JackTheft, jack cards.Card) (bool, cards.Card) {
	for _, j := range jacks {
		if j.Jack == jack {
			return true, j.Stolen
		}
	}
	return false, cards.Card{}
}

func stolenByJack(jacks []state.JackTheft, jack cards.Card) cards.Card {
	for _, j := range jacks {
		if j.Jack == jack {
			return j.Stolen
		}
	}
	return cards.Card{}
}

func removeJackByJack(jacks []state.JackTheft, jack cards.Card) []state.JackTheft {
	out := make([]state.JackTheft, 0, len(jacks))
	for _, j := range jacks {
		if j.Jack != jack {
			out = append(out, j)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
