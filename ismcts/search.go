package ismcts

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/signalnine/cuttlecore/executor"
	"github.com/signalnine/cuttlecore/heuristic"
	"github.com/signalnine/cuttlecore/invariant"
	"github.com/signalnine/cuttlecore/movegen"
	"github.com/signalnine/cuttlecore/moves"
	"github.com/signalnine/cuttlecore/state"
)

// Logger receives invariant-violation reports (spec §7 layer 1). See
// mcts.Logger for the same contract.
var Logger logrus.FieldLogger = logrus.New()

// DefaultExplorationParam is lower than perfect-information MCTS's, per
// the reference ISMCTSStrategy's exploration_constant=0.7: availability
// counts grow faster than true visit counts, so a smaller constant keeps
// exploration proportionate.
const DefaultExplorationParam = 0.7

const DefaultMaxSimulationDepth = 200

// Config configures a Search call. Zero values fall back to defaults. The
// reference ISMCTSStrategy defaults its rollout policy to uniformly random
// play (Epsilon left at 0 here reproduces that; set Epsilon>0 for an
// epsilon-greedy rollout as in the mcts package).
type Config struct {
	Iterations       int
	ExplorationParam float64
	MaxSimDepth      int
	Epsilon          float64
	Weights          heuristic.Weights
	Seed             uint64
}

func (c Config) withDefaults() Config {
	if c.ExplorationParam == 0 {
		c.ExplorationParam = DefaultExplorationParam
	}
	if c.MaxSimDepth == 0 {
		c.MaxSimDepth = DefaultMaxSimulationDepth
	}
	if c.Weights == (heuristic.Weights{}) {
		c.Weights = heuristic.DefaultWeights()
	}
	if c.Iterations == 0 {
		c.Iterations = 1000
	}
	return c
}

// MoveStats reports one root child's statistics, grounded on the reference
// get_move_statistics.
type MoveStats struct {
	Move         moves.Move
	Visits       int
	Wins         float64
	WinRate      float64
	Availability int
}

// pathEntry is one step of the selection/expansion descent: the node
// visited and the player who was acting when it was reached (zero value /
// hasPlayer=false for the root).
type pathEntry struct {
	node      *Node
	player    int
	hasPlayer bool
}

// Search runs ISMCTS from s, from the point of view of whichever player
// must act (per state.GameState.ActingPlayer), and returns the move with
// the most root-level visits.
func Search(s state.GameState, known *Knowledge, cfg Config) moves.Move {
	move, _ := SearchWithStats(s, known, cfg)
	return move
}

// SearchWithStats is Search plus per-root-child statistics.
func SearchWithStats(s state.GameState, known *Knowledge, cfg Config) (moves.Move, []MoveStats) {
	cfg = cfg.withDefaults()

	legalMoves := movegen.Generate(s)
	if len(legalMoves) == 0 {
		return moves.Move{}, nil
	}
	if len(legalMoves) == 1 {
		return legalMoves[0], nil
	}

	perspective := s.ActingPlayer()
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x2545F4914F6CDD1D))
	root := NewNode()

	for i := 0; i < cfg.Iterations; i++ {
		det := Determinize(s, perspective, known, rng)
		runIteration(root, det, perspective, cfg, rng)
	}

	best := mostVisitedChild(s, root, cfg.Weights)
	if best == nil {
		return legalMoves[rng.IntN(len(legalMoves))], nil
	}
	return best.Move, collectStats(root, cfg.ExplorationParam)
}

// mostVisitedChild is root.Children's max-visit child — the "most robust"
// final choice per §4.7 ("as §4.6, by visit count"). Ties use the §4.6
// chain (wins/visits, then heuristic score, then moves.Key's canonical
// order) instead of Go's randomized map iteration order, since root is a
// map[moves.Key]*Node and a bare range-and->-compare loop would pick a
// different "first-seen" winner across runs.
func mostVisitedChild(s state.GameState, root *Node, w heuristic.Weights) *Node {
	var best *Node
	bestVisits := -1
	for _, child := range root.Children {
		if best == nil || child.Visits > bestVisits || (child.Visits == bestVisits && isBetterChild(s, w, child, best)) {
			bestVisits = child.Visits
			best = child
		}
	}
	return best
}

func childWinRate(n *Node) float64 {
	if n.Visits == 0 {
		return 0
	}
	return n.Wins / float64(n.Visits)
}

func isBetterChild(s state.GameState, w heuristic.Weights, a, b *Node) bool {
	if wa, wb := childWinRate(a), childWinRate(b); wa != wb {
		return wa > wb
	}
	sa := heuristic.ScoreMoveWithWeights(s, a.Move, w)
	sb := heuristic.ScoreMoveWithWeights(s, b.Move, w)
	if sa != sb {
		return sa > sb
	}
	return a.Move.Key().Less(b.Move.Key())
}

func collectStats(root *Node, exploration float64) []MoveStats {
	stats := make([]MoveStats, 0, len(root.Children))
	for _, child := range root.Children {
		winRate := 0.0
		if child.Visits > 0 {
			winRate = child.Wins / float64(child.Visits)
		}
		stats = append(stats, MoveStats{
			Move:         child.Move,
			Visits:       child.Visits,
			Wins:         child.Wins,
			WinRate:      winRate,
			Availability: child.AvailabilityCount,
		})
	}
	return stats
}

func runIteration(root *Node, detState state.GameState, perspective int, cfg Config, rng *rand.Rand) {
	node := root
	current := detState
	path := []pathEntry{{node: root}}

	for !current.IsGameOver() {
		legalMoves := movegen.Generate(current)
		invariant.CheckNonTerminal(Logger, current, len(legalMoves))
		actingPlayer := current.ActingPlayer()

		var unvisited []moves.Move
		for _, m := range legalMoves {
			child := node.GetOrCreateChild(m)
			child.AvailabilityCount++
			if child.Visits == 0 {
				unvisited = append(unvisited, m)
			}
		}

		if len(unvisited) > 0 {
			move := unvisited[rng.IntN(len(unvisited))]
			next, err := executor.Execute(current, move)
			if err != nil {
				break
			}
			child := node.Children[move.Key()]
			current = next
			path = append(path, pathEntry{node: child, player: actingPlayer, hasPlayer: true})
			node = child
			break
		}

		best := bestAvailableChild(node, legalMoves, cfg.ExplorationParam)
		if best == nil {
			break
		}
		next, err := executor.Execute(current, best.Move)
		if err != nil {
			break
		}
		current = next
		path = append(path, pathEntry{node: best, player: actingPlayer, hasPlayer: true})
		node = best
	}

	result := simulate(current, perspective, cfg, rng)

	for _, entry := range path {
		if !entry.hasPlayer {
			entry.node.Visits++
			continue
		}
		if entry.player == perspective {
			entry.node.Update(result)
		} else {
			entry.node.Update(1.0 - result)
		}
	}
}

// bestAvailableChild selects by UCB1 among children for moves currently
// legal (a child's availability can be nonzero from an earlier
// determinization even if its move isn't legal here).
func bestAvailableChild(node *Node, legalMoves []moves.Move, exploration float64) *Node {
	var best *Node
	bestValue := -1.0
	first := true
	for _, m := range legalMoves {
		child, ok := node.Children[m.Key()]
		if !ok {
			continue
		}
		v := child.UCB1(exploration)
		if first || v > bestValue {
			bestValue = v
			best = child
			first = false
		}
	}
	return best
}

func simulate(s state.GameState, perspective int, cfg Config, rng *rand.Rand) float64 {
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
		if s.Winner == nil {
			return 0.5
		}
		if *s.Winner == perspective {
			return 1.0
		}
		return 0.0
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
	if cfg.Epsilon <= 0 || rng.Float64() < cfg.Epsilon {
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
