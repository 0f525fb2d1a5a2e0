package heuristic

import (
	"encoding/json"
	"os"
)

// Weights holds every tunable score constant used by ScoreMove, grounded
// on the reference heuristic table (strategies/heuristic.py) but exposed as
// JSON so a tuning run can adjust them without a recompile, per the
// weights.json pattern used elsewhere in the example pack.
type Weights struct {
	WinningMove          float64 `json:"winning_move"`
	PlayPointsBase        float64 `json:"play_points_base"`
	ScuttleBase          float64 `json:"scuttle_base"`
	PlayKing             float64 `json:"play_king"`
	PlayQueen            float64 `json:"play_queen"`
	PlayJackBase         float64 `json:"play_jack_base"`
	PlayEight            float64 `json:"play_eight"`
	AceBehind            float64 `json:"ace_behind"`
	AceAhead             float64 `json:"ace_ahead"`
	TwoDestroyPermanent  float64 `json:"two_destroy_permanent"`
	FourDiscard          float64 `json:"four_discard"`
	FiveDrawTwo          float64 `json:"five_draw_two"`
	SixBehind            float64 `json:"six_behind"`
	SixAhead             float64 `json:"six_ahead"`
	OtherOneOff          float64 `json:"other_one_off"`
	Counter              float64 `json:"counter"`
	DeclineGood          float64 `json:"decline_good"`
	DeclineBad           float64 `json:"decline_bad"`
	Draw                 float64 `json:"draw"`
	Pass                 float64 `json:"pass"`
	DiscardLowValueBonus float64 `json:"discard_low_value_bonus"`
	SevenPlayPointsBase  float64 `json:"seven_play_points_base"`
	SevenPlayPermanent   float64 `json:"seven_play_permanent"`
	SevenOther           float64 `json:"seven_other"`
}

// DefaultWeights mirrors the reference implementation's hardcoded table.
func DefaultWeights() Weights {
	return Weights{
		WinningMove:          10000,
		PlayPointsBase:       100,
		ScuttleBase:          200,
		PlayKing:             500,
		PlayQueen:            400,
		PlayJackBase:         300,
		PlayEight:            150,
		AceBehind:            250,
		AceAhead:             50,
		TwoDestroyPermanent:  200,
		FourDiscard:          150,
		FiveDrawTwo:          100,
		SixBehind:            200,
		SixAhead:             30,
		OtherOneOff:          80,
		Counter:              300,
		DeclineGood:          50,
		DeclineBad:           -100,
		Draw:                 50,
		Pass:                 0,
		DiscardLowValueBonus: 10,
		SevenPlayPointsBase:  100,
		SevenPlayPermanent:   150,
		SevenOther:           80,
	}
}

// LoadWeights reads weights from a JSON file, falling back to
// DefaultWeights (with the load error) if the file is missing or invalid.
// Starting from the defaults before unmarshaling means a partial JSON file
// only overrides the fields it names.
func LoadWeights(path string) (Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultWeights(), err
	}
	w := DefaultWeights()
	if err := json.Unmarshal(data, &w); err != nil {
		return DefaultWeights(), err
	}
	return w, nil
}

// SaveWeights writes w to path as indented JSON.
func SaveWeights(w Weights, path string) error {
	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
