// Package mcts implements perfect-information Monte Carlo tree search over
// GameState, per spec §4.6. Adapted from the teacher's mcts/node.go and
// mcts/search.go: the node shape (UCB1, BestChild, MostVisitedChild) and
// the map-free parent/children tree structure come from there, but node
// identity is keyed by moves.Key (children map[moves.Key]*Node) rather than
// held in a slice, since moves here are values, not pointers into a pool,
// and UntriedMoves is heuristic-ordered rather than expanded in random
// pool-allocation order.
package mcts

import (
	"math"

	"github.com/signalnine/cuttlecore/heuristic"
	"github.com/signalnine/cuttlecore/moves"
	"github.com/signalnine/cuttlecore/state"
)

// Node is one node of the search tree. UntriedMoves is heuristic-sorted
// best-first at construction time, so expansion always tries the
// highest-scoring untried move next, per the reference MCTSNode's
// __post_init__ sort.
type Node struct {
	State  state.GameState
	Parent *Node
	Move   moves.Move

	Children map[moves.Key]*Node
	Visits   int
	Wins     float64

	UntriedMoves []moves.Move

	// Weights is the heuristic weight set this node's tree was built with,
	// kept around for tie-breaking selection by heuristic score (§4.6).
	Weights heuristic.Weights

	// PlayerJustMoved is the acting player of Parent's state who produced
	// this node's Move. HasPlayerJustMoved is false only for the root.
	PlayerJustMoved    int
	HasPlayerJustMoved bool
}

// NewNode creates a node for s with its legal moves heuristic-sorted.
func NewNode(s state.GameState, legalMoves []moves.Move, w heuristic.Weights) *Node {
	return &Node{
		State:        s,
		Children:     make(map[moves.Key]*Node),
		UntriedMoves: heuristic.SortedByScoreDescending(s, legalMoves, w),
		Weights:      w,
	}
}

// IsFullyExpanded reports whether every legal move from this node has a
// child.
func (n *Node) IsFullyExpanded() bool {
	return len(n.UntriedMoves) == 0
}

// IsTerminal reports whether this node's state ends the game.
func (n *Node) IsTerminal() bool {
	return n.State.IsGameOver()
}

// UCB1 is the Upper Confidence Bound for Trees value used for selection.
// Unvisited nodes, and nodes whose parent hasn't been visited, are +Inf so
// they are always explored first.
func (n *Node) UCB1(exploration float64) float64 {
	if n.Visits == 0 || n.Parent == nil || n.Parent.Visits == 0 {
		return math.Inf(1)
	}
	exploitation := n.Wins / float64(n.Visits)
	explorationTerm := exploration * math.Sqrt(math.Log(float64(n.Parent.Visits))/float64(n.Visits))
	return exploitation + explorationTerm
}

// BestChild returns the child with the highest UCB1 value, or nil if this
// node has no children. Ties (most commonly several unvisited children at
// +Inf) are broken by the §4.6 chain: wins/visits, then heuristic score,
// then moves.Key's canonical order — never by map iteration order, which Go
// randomizes per process and would break the deterministic-seed contract.
func (n *Node) BestChild(exploration float64) *Node {
	var best *Node
	bestValue := math.Inf(-1)
	for _, child := range n.Children {
		v := child.UCB1(exploration)
		if best == nil || v > bestValue || (v == bestValue && n.isBetterChild(child, best)) {
			bestValue = v
			best = child
		}
	}
	return best
}

// MostVisitedChild returns the child with the highest visit count — the
// "most robust" final move choice per the reference select_move — with the
// same deterministic tie-break chain as BestChild.
func (n *Node) MostVisitedChild() *Node {
	var best *Node
	bestVisits := -1
	for _, child := range n.Children {
		if best == nil || child.Visits > bestVisits || (child.Visits == bestVisits && n.isBetterChild(child, best)) {
			bestVisits = child.Visits
			best = child
		}
	}
	return best
}

func winRate(n *Node) float64 {
	if n.Visits == 0 {
		return 0
	}
	return n.Wins / float64(n.Visits)
}

// isBetterChild reports whether a should be preferred over b once their
// primary selection criterion (UCB1 or visit count) has already tied,
// applying §4.6's "max wins/visits, then heuristic score, then a
// deterministic rule" chain.
func (n *Node) isBetterChild(a, b *Node) bool {
	if wa, wb := winRate(a), winRate(b); wa != wb {
		return wa > wb
	}
	sa := heuristic.ScoreMoveWithWeights(n.State, a.Move, n.Weights)
	sb := heuristic.ScoreMoveWithWeights(n.State, b.Move, n.Weights)
	if sa != sb {
		return sa > sb
	}
	return a.Move.Key().Less(b.Move.Key())
}

// AddChild removes move from UntriedMoves, creates a child for childState,
// and links it into the tree.
func (n *Node) AddChild(move moves.Move, childState state.GameState, childLegalMoves []moves.Move, playerJustMoved int, w heuristic.Weights) *Node {
	key := move.Key()
	for i, m := range n.UntriedMoves {
		if m.Key() == key {
			n.UntriedMoves = append(n.UntriedMoves[:i], n.UntriedMoves[i+1:]...)
			break
		}
	}

	child := NewNode(childState, childLegalMoves, w)
	child.Parent = n
	child.Move = move
	child.PlayerJustMoved = playerJustMoved
	child.HasPlayerJustMoved = true
	n.Children[key] = child
	return child
}

// Update records one simulation result against this node.
func (n *Node) Update(result float64) {
	n.Visits++
	n.Wins += result
}
