package persist

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/signalnine/cuttlecore/cards"
	"github.com/signalnine/cuttlecore/state"
)

// Field slots, in the order the vtable records them. Kept as named
// constants rather than magic numbers at each Prepend*Slot call, mirroring
// the field-index constants flatc bakes into generated accessors.
const (
	fieldTurnNumber = 0
	fieldCurrentPlayer = 1
	fieldPhase = 2
	fieldConsecutivePasses = 3
	fieldHasWinner = 4
	fieldWinner = 5
	fieldWinReason = 6
	fieldDeck = 7
	fieldScrap = 8
	fieldHand0 = 9
	fieldPoints0 = 10
	fieldPermanents0 = 11
	fieldJacks0 = 12
	fieldStolen0 = 13
	fieldHand1 = 14
	fieldPoints1 = 15
	fieldPermanents1 = 16
	fieldJacks1 = 17
	fieldStolen1 = 18

	numFields = 19
)

// Encode serializes s into a FlatBuffers byte slice.
func Encode(s state.GameState) []byte {
	b := flatbuffers.NewBuilder(512)

	jacks0, stolen0 := splitJacks(s.Players[0].Jacks)
	jacks1, stolen1 := splitJacks(s.Players[1].Jacks)

	// Vectors and strings must be built before StartObject, since the
	// builder writes the buffer back-to-front and can't interleave two
	// open objects.
	deckOff := buildUint16Vector(b, cardsToTokens(s.Deck))
	scrapOff := buildUint16Vector(b, cardsToTokens(s.Scrap))
	hand0Off := buildUint16Vector(b, cardsToTokens(s.Players[0].Hand))
	points0Off := buildUint16Vector(b, cardsToTokens(s.Players[0].PointsField))
	perm0Off := buildUint16Vector(b, cardsToTokens(s.Players[0].Permanents))
	jacks0Off := buildUint16Vector(b, cardsToTokens(jacks0))
	stolen0Off := buildUint16Vector(b, cardsToTokens(stolen0))
	hand1Off := buildUint16Vector(b, cardsToTokens(s.Players[1].Hand))
	points1Off := buildUint16Vector(b, cardsToTokens(s.Players[1].PointsField))
	perm1Off := buildUint16Vector(b, cardsToTokens(s.Players[1].Permanents))
	jacks1Off := buildUint16Vector(b, cardsToTokens(jacks1))
	stolen1Off := buildUint16Vector(b, cardsToTokens(stolen1))

	b.StartObject(numFields)
	b.PrependInt32Slot(fieldTurnNumber, int32(s.TurnNumber), 0)
	b.PrependInt32Slot(fieldCurrentPlayer, int32(s.CurrentPlayer), 0)
	b.PrependByteSlot(fieldPhase, byte(s.Phase), 0)
	b.PrependInt32Slot(fieldConsecutivePasses, int32(s.ConsecutivePasses), 0)
	if s.Winner != nil {
		b.PrependByteSlot(fieldHasWinner, 1, 0)
		b.PrependInt32Slot(fieldWinner, int32(*s.Winner), 0)
	} else {
		b.PrependByteSlot(fieldHasWinner, 0, 0)
		b.PrependInt32Slot(fieldWinner, 0, 0)
	}
	b.PrependByteSlot(fieldWinReason, byte(s.WinReason), 0)
	b.PrependUOffsetTSlot(fieldDeck, deckOff, 0)
	b.PrependUOffsetTSlot(fieldScrap, scrapOff, 0)
	b.PrependUOffsetTSlot(fieldHand0, hand0Off, 0)
	b.PrependUOffsetTSlot(fieldPoints0, points0Off, 0)
	b.PrependUOffsetTSlot(fieldPermanents0, perm0Off, 0)
	b.PrependUOffsetTSlot(fieldJacks0, jacks0Off, 0)
	b.PrependUOffsetTSlot(fieldStolen0, stolen0Off, 0)
	b.PrependUOffsetTSlot(fieldHand1, hand1Off, 0)
	b.PrependUOffsetTSlot(fieldPoints1, points1Off, 0)
	b.PrependUOffsetTSlot(fieldPermanents1, perm1Off, 0)
	b.PrependUOffsetTSlot(fieldJacks1, jacks1Off, 0)
	b.PrependUOffsetTSlot(fieldStolen1, stolen1Off, 0)
	record := b.EndObject()

	b.Finish(record)
	return b.FinishedBytes()
}

func buildUint16Vector(b *flatbuffers.Builder, tokens []uint16) flatbuffers.UOffsetT {
	b.StartVector(2, len(tokens), 2)
	for i := len(tokens) - 1; i >= 0; i-- {
		b.PrependUint16(tokens[i])
	}
	return b.EndVector(len(tokens))
}

// splitJacks separates a player's Jack thefts into two parallel card
// slices (the Jack cards and what each stole), so both can be stored as
// plain uint16 vectors rather than a nested table.
func splitJacks(jacks []state.JackTheft) (jackCards, stolenCards []cards.Card) {
	if len(jacks) == 0 {
		return nil, nil
	}
	jackCards = make([]cards.Card, len(jacks))
	stolenCards = make([]cards.Card, len(jacks))
	for i, j := range jacks {
		jackCards[i] = j.Jack
		stolenCards[i] = j.Stolen
	}
	return jackCards, stolenCards
}
