// Package main provides the cuttlebench CLI: a self-play benchmark driven
// only by the core's four external functions (spec §6) — initial_state,
// legal_moves, execute, select_move — with no game logic of its own.
// Grounded on the teacher's cmd/evolve/main.go flag/banner idiom.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/signalnine/cuttlecore/config"
	"github.com/signalnine/cuttlecore/executor"
	"github.com/signalnine/cuttlecore/heuristic"
	"github.com/signalnine/cuttlecore/mcts"
	"github.com/signalnine/cuttlecore/movegen"
	"github.com/signalnine/cuttlecore/state"
)

var (
	games         int
	iterations    int
	workers       int
	seed          int64
	configPath    string
	weightsPath   string
	handLimit     int
	verbose       bool
	showVersion   bool
)

// Version is set by build flags, matching the teacher's cmd/evolve convention.
var Version = "dev"

func init() {
	flag.IntVar(&games, "games", 10, "Number of self-play games to run")
	flag.IntVar(&iterations, "iterations", 1000, "MCTS iterations per move")
	flag.IntVar(&workers, "workers", 1, "Root-parallel MCTS workers per move")
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 = use current time)")
	flag.StringVar(&configPath, "config", "", "Path to a SearchConfig JSON file")
	flag.StringVar(&weightsPath, "weights", "", "Path to a heuristic Weights JSON file")
	flag.IntVar(&handLimit, "hand-limit", 0, "Maximum hand size before Draw is disabled (0 = unlimited)")
	flag.BoolVar(&verbose, "verbose", false, "Print each game's result as it finishes")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("cuttlebench %s\n", Version)
		os.Exit(0)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := config.DefaultSearchConfig()
	if configPath != "" {
		loaded, err := config.LoadSearchConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading config %s: %v\n", configPath, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg.Iterations = iterations
	cfg.Workers = workers
	if handLimit > 0 {
		cfg.HandLimit = handLimit
	}

	weights := heuristic.DefaultWeights()
	if weightsPath != "" {
		loaded, err := heuristic.LoadWeights(weightsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading weights %s: %v\n", weightsPath, err)
			os.Exit(1)
		}
		weights = loaded
	}

	wins := [2]int{}
	draws := 0
	for g := 0; g < games; g++ {
		winner := playGame(uint64(seed)+uint64(g), cfg, weights)
		switch {
		case winner == nil:
			draws++
		default:
			wins[*winner]++
		}
		if verbose {
			if winner == nil {
				fmt.Printf("game %d: draw\n", g)
			} else {
				fmt.Printf("game %d: winner=%d\n", g, *winner)
			}
		}
	}

	fmt.Printf("played %d games: player0=%d player1=%d draws=%d\n", games, wins[0], wins[1], draws)
}

// playGame drives one game end-to-end using only initial_state, legal_moves,
// execute, and select_move — the core's four external functions.
func playGame(seed uint64, cfg config.SearchConfig, weights heuristic.Weights) *int {
	s := state.InitialState(seed) // initial_state(seed)

	for !s.IsGameOver() {
		legal := movegen.GenerateWithOptions(s, cfg.MovegenOptions()) // legal_moves(state)
		if len(legal) == 0 {
			break
		}

		searchCfg := cfg.MCTSConfig(weights)
		searchCfg.Seed = seed ^ uint64(s.TurnNumber)
		move := mcts.Search(s, searchCfg) // select_move(strategy, state, legal_moves)

		next, err := executor.Execute(s, move) // execute(state, move)
		if err != nil {
			break
		}
		s = next
	}

	return s.Winner
}
