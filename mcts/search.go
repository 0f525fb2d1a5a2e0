package mcts

import (
	"math/rand/v2"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/signalnine/cuttlecore/executor"
	"github.com/signalnine/cuttlecore/heuristic"
	"github.com/signalnine/cuttlecore/invariant"
	"github.com/signalnine/cuttlecore/movegen"
	"github.com/signalnine/cuttlecore/moves"
	"github.com/signalnine/cuttlecore/state"
)

// Logger receives invariant-violation reports (spec §7 layer 1). Normal
// search iterations never log; only a generator/executor contradiction
// reaches this. Callers may swap it for a logger with different output
// wiring before running a search.
var Logger logrus.FieldLogger = logrus.New()

// DefaultExplorationParam is the standard UCB1 exploration constant
// (sqrt(2)), matching the teacher's mcts.DefaultExplorationParam and the
// reference MCTSStrategy's default exploration_constant.
const DefaultExplorationParam = 1.414

// DefaultMaxSimulationDepth caps a rollout's ply count, per the reference
// MCTSStrategy's max_simulation_depth.
const DefaultMaxSimulationDepth = 200

// DefaultEpsilon is the probability a simulation rollout picks a uniformly
// random move instead of the heuristic's top choice, per the reference
// EpsilonGreedyStrategy.
const DefaultEpsilon = 0.2

// Config configures a Search call. Zero values fall back to the defaults
// above.
type Config struct {
	Iterations       int
	ExplorationParam float64
	MaxSimDepth      int
	Epsilon          float64
	Weights          heuristic.Weights
	Seed             uint64

	// Workers, if > 1, runs that many independent trees in parallel
	// (root-parallelism) and merges root-child statistics by visit count,
	// grounded on the teacher pack's Azen engine.go BestMove pattern.
	Workers int
}

func (c Config) withDefaults() Config {
	if c.ExplorationParam == 0 {
		c.ExplorationParam = DefaultExplorationParam
	}
	if c.MaxSimDepth == 0 {
		c.MaxSimDepth = DefaultMaxSimulationDepth
	}
	if c.Epsilon == 0 {
		c.Epsilon = DefaultEpsilon
	}
	if c.Weights == (heuristic.Weights{}) {
		c.Weights = heuristic.DefaultWeights()
	}
	if c.Iterations == 0 {
		c.Iterations = 1000
	}
	return c
}

// MoveStats reports one root child's search statistics, grounded on the
// reference get_move_statistics / Azen's MoveDetail.
type MoveStats struct {
	Move    moves.Move
	Visits  int
	Wins    float64
	WinRate float64
	UCB1    float64
}

// Search runs MCTS from s and returns the move with the most root-level
// visits. Returns the zero Move if s has no legal moves.
func Search(s state.GameState, cfg Config) moves.Move {
	move, _ := SearchWithStats(s, cfg)
	return move
}

// SearchWithStats is Search plus per-root-child statistics, grounded on
// the reference select_move_with_stats.
func SearchWithStats(s state.GameState, cfg Config) (moves.Move, []MoveStats) {
	cfg = cfg.withDefaults()

	if cfg.Workers > 1 {
		return searchParallel(s, cfg)
	}

	legalMoves := movegen.Generate(s)
	if len(legalMoves) == 0 {
		return moves.Move{}, nil
	}
	if len(legalMoves) == 1 {
		return legalMoves[0], nil
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x5DEECE66D))
	root := NewNode(s, legalMoves, cfg.Weights)

	for i := 0; i < cfg.Iterations; i++ {
		runIteration(root, cfg, rng)
	}

	best := root.MostVisitedChild()
	if best == nil {
		return legalMoves[rng.IntN(len(legalMoves))], nil
	}
	return best.Move, collectStats(root, cfg.ExplorationParam)
}

// SearchParallel runs Search with root-parallelism across cfg.Workers
// independent trees, per the root-parallel supplement in SPEC_FULL.md.
func SearchParallel(s state.GameState, cfg Config) moves.Move {
	move, _ := searchParallel(s, cfg.withDefaults())
	return move
}

func searchParallel(s state.GameState, cfg Config) (moves.Move, []MoveStats) {
	legalMoves := movegen.Generate(s)
	if len(legalMoves) == 0 {
		return moves.Move{}, nil
	}
	if len(legalMoves) == 1 {
		return legalMoves[0], nil
	}

	workers := cfg.Workers
	itersPerWorker := cfg.Iterations / workers
	if itersPerWorker < 1 {
		itersPerWorker = 1
	}

	type result struct {
		move   map[moves.Key]moves.Move
		visits map[moves.Key]int
		wins   map[moves.Key]float64
	}

	results := make([]result, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			iters := itersPerWorker
			if idx == workers-1 {
				iters = cfg.Iterations - itersPerWorker*(workers-1)
			}
			workerCfg := cfg
			workerCfg.Workers = 1
			workerCfg.Iterations = iters
			workerCfg.Seed = cfg.Seed + uint64(idx)*0x9E3779B97F4A7C15

			rng := rand.New(rand.NewPCG(workerCfg.Seed, workerCfg.Seed^0x5DEECE66D))
			root := NewNode(s, legalMoves, workerCfg.Weights)
			for i := 0; i < iters; i++ {
				runIteration(root, workerCfg, rng)
			}

			r := result{
				move:   map[moves.Key]moves.Move{},
				visits: map[moves.Key]int{},
				wins:   map[moves.Key]float64{},
			}
			for key, child := range root.Children {
				r.move[key] = child.Move
				r.visits[key] += child.Visits
				r.wins[key] += child.Wins
			}
			results[idx] = r
		}(w)
	}
	wg.Wait()

	moveByKey := map[moves.Key]moves.Move{}
	totalVisits := map[moves.Key]int{}
	totalWins := map[moves.Key]float64{}
	for _, r := range results {
		for key, m := range r.move {
			moveByKey[key] = m
		}
		for key, v := range r.visits {
			totalVisits[key] += v
		}
		for key, w := range r.wins {
			totalWins[key] += w
		}
	}

	var best moves.Move
	var bestKey moves.Key
	bestVisits := -1
	bestWinRate := 0.0
	hasBest := false
	var stats []MoveStats
	for key, v := range totalVisits {
		wr := 0.0
		if v > 0 {
			wr = totalWins[key] / float64(v)
		}
		m := moveByKey[key]
		stats = append(stats, MoveStats{Move: m, Visits: v, Wins: totalWins[key], WinRate: wr})

		switch {
		case !hasBest, v > bestVisits:
			hasBest, bestVisits, bestWinRate, best, bestKey = true, v, wr, m, key
		case v == bestVisits:
			sa := heuristic.ScoreMoveWithWeights(s, m, cfg.Weights)
			sb := heuristic.ScoreMoveWithWeights(s, best, cfg.Weights)
			if wr > bestWinRate || (wr == bestWinRate && (sa > sb || (sa == sb && key.Less(bestKey)))) {
				bestVisits, bestWinRate, best, bestKey = v, wr, m, key
			}
		}
	}
	if !hasBest {
		return legalMoves[0], nil
	}
	return best, stats
}

func collectStats(root *Node, exploration float64) []MoveStats {
	stats := make([]MoveStats, 0, len(root.Children))
	for _, child := range root.Children {
		winRate := 0.0
		if child.Visits > 0 {
			winRate = child.Wins / float64(child.Visits)
		}
		stats = append(stats, MoveStats{
			Move:    child.Move,
			Visits:  child.Visits,
			Wins:    child.Wins,
			WinRate: winRate,
			UCB1:    child.UCB1(exploration),
		})
	}
	return stats
}

func runIteration(root *Node, cfg Config, rng *rand.Rand) {
	node := root

	// Selection.
	for !node.IsTerminal() && node.IsFullyExpanded() && len(node.Children) > 0 {
		next := node.BestChild(cfg.ExplorationParam)
		if next == nil {
			break
		}
		node = next
	}

	// Expansion: try untried moves best-first until one applies cleanly.
	var playerJustMoved int
	var hasPlayerJustMoved bool
	for !node.IsTerminal() && len(node.UntriedMoves) > 0 {
		move := node.UntriedMoves[0]
		actingPlayer := node.State.ActingPlayer()

		childState, err := executor.Execute(node.State, move)
		if err != nil {
			node.UntriedMoves = node.UntriedMoves[1:]
			continue
		}

		childLegalMoves := movegen.Generate(childState)
		invariant.CheckNonTerminal(Logger, childState, len(childLegalMoves))
		node = node.AddChild(move, childState, childLegalMoves, actingPlayer, cfg.Weights)
		playerJustMoved = actingPlayer
		hasPlayerJustMoved = true
		break
	}
	if !hasPlayerJustMoved {
		playerJustMoved = node.PlayerJustMoved
		hasPlayerJustMoved = node.HasPlayerJustMoved
	}

	// Simulation.
	var perspective int
	var hasPerspective bool
	if hasPlayerJustMoved {
		perspective = playerJustMoved
		hasPerspective = true
	}
	result := simulate(node.State, perspective, hasPerspective, cfg, rng)

	// Backpropagation: flip perspective at every ancestor level, per the
	// reference strategies/mcts.py (the teacher's mcts/search.go does not
	// flip, which double-counts one player's wins up the tree).
	for node != nil {
		if node.HasPlayerJustMoved {
			node.Update(result)
			result = 1.0 - result
		}
		node = node.Parent
	}
}

// simulate plays a random/epsilon-greedy rollout to a terminal state or
// cfg.MaxSimDepth plies, then scores the outcome from perspective's point
// of view, per the reference _simulate.
func simulate(s state.GameState, perspective int, hasPerspective bool, cfg Config, rng *rand.Rand) float64 {
	depth := 0
	for !s.IsGameOver() && depth < cfg.MaxSimDepth {
		legalMoves := movegen.Generate(s)
		if len(legalMoves) == 0 {
			break
		}

		move := pickRolloutMove(s, legalMoves, cfg, rng)
		next, err := executor.Execute(s, move)
		if err != nil {
			break
		}
		s = next
		depth++
	}

	if s.IsGameOver() {
		if !hasPerspective {
			return 0.5
		}
		if s.Winner == nil {
			return 0.5
		}
		if *s.Winner == perspective {
			return 1.0
		}
		return 0.0
	}

	if !hasPerspective {
		return 0.5
	}
	my := s.Players[perspective].PointTotal()
	opp := s.Players[1-perspective].PointTotal()
	if my > opp {
		return 0.7
	}
	if opp > my {
		return 0.3
	}
	return 0.5
}

func pickRolloutMove(s state.GameState, legalMoves []moves.Move, cfg Config, rng *rand.Rand) moves.Move {
	if rng.Float64() < cfg.Epsilon {
		return legalMoves[rng.IntN(len(legalMoves))]
	}
	best := legalMoves[0]
	bestScore := heuristic.ScoreMoveWithWeights(s, best, cfg.Weights)
	for _, m := range legalMoves[1:] {
		score := heuristic.ScoreMoveWithWeights(s, m, cfg.Weights)
		if score > bestScore {
			bestScore = score
			best = m
		}
	}
	return best
}
