// Package moves defines the Cuttle move algebra: a closed set of ten
// tagged variants (spec §4.2) modeled as a Go sum type via a discriminant
// tag plus a single struct carrying every variant's fields. The executor
// and generator switch exhaustively on Type; unused fields for a given
// variant are zero-valued.
package moves

import "github.com/signalnine/cuttlecore/cards"

// Type tags which of the ten move variants a Move carries.
type Type uint8

const (
	Draw Type = iota
	PlayPoints
	Scuttle
	PlayOneOff
	PlayPermanent
	Counter
	DeclineCounter
	ResolveSeven
	Discard
	Pass
)

func (t Type) String() string {
	switch t {
	case Draw:
		return "Draw"
	case PlayPoints:
		return "PlayPoints"
	case Scuttle:
		return "Scuttle"
	case PlayOneOff:
		return "PlayOneOff"
	case PlayPermanent:
		return "PlayPermanent"
	case Counter:
		return "Counter"
	case DeclineCounter:
		return "DeclineCounter"
	case ResolveSeven:
		return "ResolveSeven"
	case Discard:
		return "Discard"
	case Pass:
		return "Pass"
	default:
		return "Unknown"
	}
}

// OneOffEffect tags the effect a PlayOneOff (or a ResolveSeven playing a
// card as a one-off) triggers, keyed by the casting card's rank.
type OneOffEffect uint8

const (
	AceScrapAllPoints OneOffEffect = iota
	TwoDestroyPermanent
	ThreeRevive
	FourDiscard
	FiveDrawTwo
	SixScrapAllPermanents
	SevenPlayFromDeck
	NineReturnPermanent
)

func (e OneOffEffect) String() string {
	switch e {
	case AceScrapAllPoints:
		return "AceScrapAllPoints"
	case TwoDestroyPermanent:
		return "TwoDestroyPermanent"
	case ThreeRevive:
		return "ThreeRevive"
	case FourDiscard:
		return "FourDiscard"
	case FiveDrawTwo:
		return "FiveDrawTwo"
	case SixScrapAllPermanents:
		return "SixScrapAllPermanents"
	case SevenPlayFromDeck:
		return "SevenPlayFromDeck"
	case NineReturnPermanent:
		return "NineReturnPermanent"
	default:
		return "Unknown"
	}
}

// Move is the closed sum type over every legal action. Only the fields
// relevant to Type are meaningful; see the per-variant doc comments below.
type Move struct {
	Type Type

	// Card is the card being played: PlayPoints, Scuttle, PlayOneOff,
	// PlayPermanent, Counter, ResolveSeven, Discard.
	Card cards.Card

	// Target is the opponent point/Jack-stolen card being destroyed:
	// Scuttle only.
	Target cards.Card

	// Effect tags the one-off being triggered: PlayOneOff and
	// ResolveSeven-as-one-off.
	Effect OneOffEffect

	// TargetCard is an optional targeted card: PlayOneOff (2, 3, 9),
	// PlayPermanent (Jack's steal target), ResolveSeven.
	TargetCard *cards.Card

	// TargetPlayer is an optional targeted player index: PlayOneOff (2, 4, 9).
	TargetPlayer *int

	// PlayAs is how a revealed Seven card is being committed: ResolveSeven only.
	PlayAs Type
}

// Key is a fully comparable value derived from a Move, suitable for map
// keys. Move itself carries pointer fields (TargetCard, TargetPlayer) so
// that movegen can represent "no target" as nil; comparing Move values
// directly compares those pointers, not the pointees, so two Moves built
// from separate allocations never compare equal even when they represent
// the same action. Search trees key children by Key instead.
type Key struct {
	Type            Type
	Card            cards.Card
	Target          cards.Card
	Effect          OneOffEffect
	TargetCard      cards.Card
	HasTargetCard   bool
	TargetPlayer    int
	HasTargetPlayer bool
	PlayAs          Type
}

// Key derives m's comparable Key, dereferencing TargetCard/TargetPlayer.
func (m Move) Key() Key {
	k := Key{
		Type:   m.Type,
		Card:   m.Card,
		Target: m.Target,
		Effect: m.Effect,
		PlayAs: m.PlayAs,
	}
	if m.TargetCard != nil {
		k.TargetCard = *m.TargetCard
		k.HasTargetCard = true
	}
	if m.TargetPlayer != nil {
		k.TargetPlayer = *m.TargetPlayer
		k.HasTargetPlayer = true
	}
	return k
}

// Less gives moves.Key a total, arbitrary-but-deterministic order, field by
// field. Used as the last resort in a search tie-break chain once wins,
// visits, and heuristic score have all tied.
func (k Key) Less(other Key) bool {
	if k.Type != other.Type {
		return k.Type < other.Type
	}
	if k.Card != other.Card {
		return k.Card.Less(other.Card)
	}
	if k.Target != other.Target {
		return k.Target.Less(other.Target)
	}
	if k.Effect != other.Effect {
		return k.Effect < other.Effect
	}
	if k.TargetCard != other.TargetCard {
		return k.TargetCard.Less(other.TargetCard)
	}
	if k.HasTargetCard != other.HasTargetCard {
		return !k.HasTargetCard
	}
	if k.TargetPlayer != other.TargetPlayer {
		return k.TargetPlayer < other.TargetPlayer
	}
	if k.HasTargetPlayer != other.HasTargetPlayer {
		return !k.HasTargetPlayer
	}
	return k.PlayAs < other.PlayAs
}

// String renders a human-readable description, mirroring the reference
// implementation's per-variant __str__ methods.
func (m Move) String() string {
	switch m.Type {
	case Draw:
		return "Draw"
	case PlayPoints:
		return "Play " + m.Card.String() + " for points"
	case Scuttle:
		return "Scuttle " + m.Target.String() + " with " + m.Card.String()
	case PlayOneOff:
		return "Play " + m.Card.String() + " as one-off (" + m.Effect.String() + ")"
	case PlayPermanent:
		if m.Card.Rank == cards.RankJack && m.TargetCard != nil {
			return "Play " + m.Card.String() + " to steal " + m.TargetCard.String()
		}
		switch m.Card.Rank {
		case cards.RankEight:
			return "Play " + m.Card.String() + " as Glasses"
		case cards.RankQueen:
			return "Play " + m.Card.String() + " for protection"
		case cards.RankKing:
			return "Play " + m.Card.String() + " to reduce win threshold"
		}
		return "Play " + m.Card.String() + " as permanent"
	case Counter:
		return "Counter with " + m.Card.String()
	case DeclineCounter:
		return "Decline to counter"
	case ResolveSeven:
		return "Seven: play " + m.Card.String() + " as " + m.PlayAs.String()
	case Discard:
		return "Discard " + m.Card.String()
	case Pass:
		return "Pass"
	default:
		return "Unknown move"
	}
}
