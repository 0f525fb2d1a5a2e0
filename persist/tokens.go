// Package persist implements spec §6's compact on-disk snapshot format: a
// single-table FlatBuffers record covering turn number, current player,
// phase, deck/scrap sizes, and per-player hand/points/permanents/jack
// tokens.
//
// The teacher's only use of FlatBuffers was cgo/bridge.go, a cgo→Python FFI
// bridge against a generated "bindings/cardsim" package whose .fbs schema
// was never retrieved (see DESIGN.md) — that bridge is deleted, but its
// Builder Start/Add/End idiom (serializeStats) is reused here directly
// against the flatbuffers.Builder API, hand-written rather than
// flatc-generated since no schema file exists to generate from.
package persist

import "github.com/signalnine/cuttlecore/cards"

// cardToken packs a Card into a single uint16: rank in the high byte, suit
// in the low byte.
func cardToken(c cards.Card) uint16 {
	return uint16(c.Rank)<<8 | uint16(c.Suit)
}

func tokenToCard(t uint16) cards.Card {
	return cards.Card{Rank: cards.Rank(t >> 8), Suit: cards.Suit(t & 0xFF)}
}

func cardsToTokens(cs []cards.Card) []uint16 {
	out := make([]uint16, len(cs))
	for i, c := range cs {
		out[i] = cardToken(c)
	}
	return out
}

func tokensToCards(ts []uint16) []cards.Card {
	if len(ts) == 0 {
		return nil
	}
	out := make([]cards.Card, len(ts))
	for i, t := range ts {
		out[i] = tokenToCard(t)
	}
	return out
}
