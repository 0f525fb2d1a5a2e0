// Package config provides JSON-driven load/save for the two tunable
// surfaces exposed at the search boundary: SearchConfig (iterations,
// exploration constant, simulation depth, seed, hand limit) and
// heuristic.Weights. Grounded on the teacher's evolution/checkpoint.go
// JSON-persistence idiom (CheckpointData, SaveCheckpoint/LoadCheckpoint)
// and Azen's engine.LoadWeights/SaveWeights, already followed once in
// heuristic/weights.go — this package generalizes that pattern to the
// search parameters the teacher's EvolutionConfig/DefaultConfig covers
// for its own evolutionary run.
package config

import (
	"encoding/json"
	"os"

	"github.com/signalnine/cuttlecore/heuristic"
	"github.com/signalnine/cuttlecore/mcts"
	"github.com/signalnine/cuttlecore/movegen"
)

// SearchConfig is the serializable form of the knobs mcts.Config and
// ismcts.Config share, plus the movegen.Options hand-limit filter that sits
// outside the search loop. Zero values mean "use the package default" once
// translated into mcts.Config by MCTSConfig.
type SearchConfig struct {
	Iterations       int     `json:"iterations"`
	ExplorationParam float64 `json:"exploration_param"`
	MaxSimDepth      int     `json:"max_sim_depth"`
	Epsilon          float64 `json:"epsilon"`
	Seed             uint64  `json:"seed"`
	Workers          int     `json:"workers"`
	HandLimit        int     `json:"hand_limit"`
}

// DefaultSearchConfig mirrors mcts's package-level defaults plus an
// unlimited hand, matching the teacher's DefaultConfig convention of giving
// every tunable an explicit, named default rather than relying on the zero
// value silently.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Iterations:       1000,
		ExplorationParam: mcts.DefaultExplorationParam,
		MaxSimDepth:      mcts.DefaultMaxSimulationDepth,
		Epsilon:          mcts.DefaultEpsilon,
		Seed:             0,
		Workers:          1,
		HandLimit:        0,
	}
}

// MCTSConfig translates to mcts.Config, carrying w as the scorer weights.
func (c SearchConfig) MCTSConfig(w heuristic.Weights) mcts.Config {
	return mcts.Config{
		Iterations:       c.Iterations,
		ExplorationParam: c.ExplorationParam,
		MaxSimDepth:      c.MaxSimDepth,
		Epsilon:          c.Epsilon,
		Weights:          w,
		Seed:             c.Seed,
		Workers:          c.Workers,
	}
}

// MovegenOptions translates the hand-limit filter to movegen.Options.
func (c SearchConfig) MovegenOptions() movegen.Options {
	return movegen.Options{HandLimit: c.HandLimit}
}

// LoadSearchConfig reads a SearchConfig from path, starting from
// DefaultSearchConfig so a partial file only overrides the fields it names.
// A missing or invalid file returns the defaults alongside the error, per
// heuristic.LoadWeights's fallback contract.
func LoadSearchConfig(path string) (SearchConfig, error) {
	cfg := DefaultSearchConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultSearchConfig(), err
	}
	return cfg, nil
}

// SaveSearchConfig writes cfg to path as indented JSON.
func SaveSearchConfig(cfg SearchConfig, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
