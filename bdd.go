// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

import "fmt"

// BDD is an immutable, reduced, ordered binary decision diagram. The zero
// value is not valid; construct one with NewFalse, NewTrue or NewVariable, or
// obtain one as the result of Apply, SortPreorder, SortPostorder or Parse.
//
// A BDD's node array is laid out with node 0 always the false terminal, node
// 1 (when present) the true terminal, and the root at the highest index. In
// the BDDs built by the constructors, Apply and SortPostorder every child also
// has a strictly smaller index than its parent, so a single forward pass over
// the array is enough to process every node after its children. SortPreorder
// (see its doc) and Parse do not guarantee that order.
type BDD struct {
	variableCount int
	nodes         []packedNode
}

// NewFalse returns the constant-false BDD: a single node, the false
// terminal.
func NewFalse() *BDD {
	return &BDD{nodes: []packedNode{zeroNode}}
}

// NewTrue returns the constant-true BDD: the false terminal followed by the
// true terminal (which is the root).
func NewTrue() *BDD {
	return &BDD{nodes: []packedNode{zeroNode, oneNode}}
}

// NewVariable returns the BDD for a single positive literal of variable v:
// {false, true, (v, false, true)}, with the decision node as root. It panics
// if v is at or beyond VariableUndefined, the reserved sentinel: a caller
// that can generate such a variable id has already gone wrong before
// reaching here, so this is a programming-error panic rather than a
// recoverable condition, matching Eval's treatment of ErrAssignmentLength.
func NewVariable(v VariableID) *BDD {
	if v >= VariableUndefined {
		panic(ErrVariableRange)
	}
	return &BDD{
		variableCount: int(v) + 1,
		nodes:         []packedNode{zeroNode, oneNode, packNode(v, ZeroID, OneID)},
	}
}

// NodeCount returns the number of nodes in the diagram, including the
// terminals.
func (b *BDD) NodeCount() int { return len(b.nodes) }

// VariableCount returns one plus the largest variable index used in the
// diagram, or zero for a constant BDD.
func (b *BDD) VariableCount() int { return b.variableCount }

// RootNode returns the id of the root node, always the highest index in the
// node array: every node array this package produces holds exactly the set
// of nodes reachable from the root, discovered and numbered so the root
// comes last (see nodeCache.export in nodecache.go and compactPreorder in
// sort.go).
func (b *BDD) RootNode() NodeID { return NodeID(len(b.nodes) - 1) }

// Node returns the unpacked (variable, low, high) triple at id, after a
// bounds check.
func (b *BDD) Node(id NodeID) (Node, error) {
	if int(id) < 0 || int(id) >= len(b.nodes) {
		return Node{}, fmt.Errorf("obdd: node id %d out of range [0,%d): %w", id, len(b.nodes), ErrNodeRange)
	}
	return b.nodes[id].exported(), nil
}

// nodeAt is the unchecked variant of Node, usable only once the caller has
// established id < NodeCount(); it is the hot-path accessor used throughout
// Apply.
func (b *BDD) nodeAt(id NodeID) packedNode { return b.nodes[id] }

// GetVariable is a cheap projection returning only the variable field of the
// node at id, used during apply reduction where low/high are not needed.
func (b *BDD) GetVariable(id NodeID) VariableID { return b.nodes[id].variable() }

// prefetch is a performance-only hint that a node will be read shortly. Go
// has no portable prefetch intrinsic reachable without cgo or assembly, so
// this is a documented no-op: correctness never depends on it.
func (b *BDD) prefetch(NodeID) {}

// updateVariableCount widens the recorded variable count to at least vars,
// used by Apply to set a non-constant result's variable count to
// max(L.VariableCount(), R.VariableCount()).
func (b *BDD) updateVariableCount(vars int) {
	if vars > b.variableCount {
		b.variableCount = vars
	}
}

// Equal reports whether two BDDs have node-for-node identical arrays and
// variable counts. Two semantically-equivalent but differently-sorted BDDs
// are not necessarily Equal; see SortPreorder for a canonical layout.
func (b *BDD) Equal(other *BDD) bool {
	if b == other {
		return true
	}
	if b.variableCount != other.variableCount || len(b.nodes) != len(other.nodes) {
		return false
	}
	for i := range b.nodes {
		if b.nodes[i] != other.nodes[i] {
			return false
		}
	}
	return true
}
