package ismcts

import (
	"math"

	"github.com/signalnine/cuttlecore/moves"
)

// Node is a single information-set node, shared across every
// determinization that passes through it. Children are keyed by
// moves.Key rather than by state, per the reference ISMCTSNode's
// get_or_create_child — a determinization is a random lens, not a branch
// of the tree. moves.Key is used instead of moves.Move itself because
// Move carries pointer fields (TargetCard, TargetPlayer) that compare by
// identity, not value, under Go's map-key equality.
type Node struct {
	Move     moves.Move
	Children map[moves.Key]*Node

	Visits            int
	Wins              float64
	AvailabilityCount int
}

// NewNode creates an empty node (the root has the zero Move).
func NewNode() *Node {
	return &Node{Children: make(map[moves.Key]*Node)}
}

// GetOrCreateChild lazily creates children[move.Key()] if absent.
func (n *Node) GetOrCreateChild(move moves.Move) *Node {
	key := move.Key()
	child, ok := n.Children[key]
	if !ok {
		child = NewNode()
		child.Move = move
		n.Children[key] = child
	}
	return child
}

// UCB1 uses AvailabilityCount rather than a parent's visit count in the
// exploration term, per spec §4.7: in ISMCTS, siblings are not all
// available in every determinization, so availability must be tracked
// directly rather than inferred from the parent.
func (n *Node) UCB1(exploration float64) float64 {
	if n.Visits == 0 {
		return math.Inf(1)
	}
	exploitation := n.Wins / float64(n.Visits)
	explorationTerm := exploration * math.Sqrt(math.Log(float64(n.AvailabilityCount))/float64(n.Visits))
	return exploitation + explorationTerm
}

// Update records one simulation result against this node.
func (n *Node) Update(result float64) {
	n.Visits++
	n.Wins += result
}
