package persist

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/signalnine/cuttlecore/state"
)

// record is a thin hand-written accessor over a flatbuffers.Table, playing
// the role flatc would normally generate from a .fbs schema.
type record struct {
	tab flatbuffers.Table
}

func rootRecord(buf []byte) *record {
	n := flatbuffers.GetUOffsetT(buf)
	r := &record{}
	r.tab.Bytes = buf
	r.tab.Pos = n
	return r
}

func (r *record) int32Field(slot flatbuffers.VOffsetT) int32 {
	o := r.tab.Offset(slot)
	if o == 0 {
		return 0
	}
	return r.tab.GetInt32(o + r.tab.Pos)
}

func (r *record) byteField(slot flatbuffers.VOffsetT) byte {
	o := r.tab.Offset(slot)
	if o == 0 {
		return 0
	}
	return r.tab.GetByte(o + r.tab.Pos)
}

func (r *record) uint16Vector(slot flatbuffers.VOffsetT) []uint16 {
	o := r.tab.Offset(slot)
	if o == 0 {
		return nil
	}
	vecStart := r.tab.Vector(o + r.tab.Pos)
	n := r.tab.VectorLen(o + r.tab.Pos)
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = r.tab.GetUint16(vecStart + flatbuffers.UOffsetT(i*2))
	}
	return out
}

func slotOf(field int) flatbuffers.VOffsetT {
	// flatbuffers vtable slots start at 4 (after the soffset-to-vtable and
	// vtable-size/object-size header words) and advance by 2 bytes each.
	return flatbuffers.VOffsetT(4 + field*2)
}

// Decode deserializes a FlatBuffers byte slice produced by Encode back
// into a GameState.
func Decode(buf []byte) state.GameState {
	r := rootRecord(buf)

	var s state.GameState
	s.TurnNumber = int(r.int32Field(slotOf(fieldTurnNumber)))
	s.CurrentPlayer = int(r.int32Field(slotOf(fieldCurrentPlayer)))
	s.Phase = state.GamePhase(r.byteField(slotOf(fieldPhase)))
	s.ConsecutivePasses = int(r.int32Field(slotOf(fieldConsecutivePasses)))
	s.WinReason = state.WinReason(r.byteField(slotOf(fieldWinReason)))

	if r.byteField(slotOf(fieldHasWinner)) == 1 {
		w := int(r.int32Field(slotOf(fieldWinner)))
		s.Winner = &w
	}

	s.Deck = tokensToCards(r.uint16Vector(slotOf(fieldDeck)))
	s.Scrap = tokensToCards(r.uint16Vector(slotOf(fieldScrap)))

	s.Players[0] = decodePlayer(r, fieldHand0, fieldPoints0, fieldPermanents0, fieldJacks0, fieldStolen0)
	s.Players[1] = decodePlayer(r, fieldHand1, fieldPoints1, fieldPermanents1, fieldJacks1, fieldStolen1)

	return s
}

func decodePlayer(r *record, handField, pointsField, permField, jacksField, stolenField int) state.PlayerState {
	jackCards := tokensToCards(r.uint16Vector(slotOf(jacksField)))
	stolenCards := tokensToCards(r.uint16Vector(slotOf(stolenField)))

	var jacks []state.JackTheft
	for i := range jackCards {
		jacks = append(jacks, state.JackTheft{Jack: jackCards[i], Stolen: stolenCards[i]})
	}

	return state.PlayerState{
		Hand:        tokensToCards(r.uint16Vector(slotOf(handField))),
		PointsField: tokensToCards(r.uint16Vector(slotOf(pointsField))),
		Permanents:  tokensToCards(r.uint16Vector(slotOf(permField))),
		Jacks:       jacks,
	}
}
