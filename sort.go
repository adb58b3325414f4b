// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

// SortPreorder returns a BDD equivalent to b whose node order is the DFS
// pre-order reachable from the root: a node gets the next (descending) id
// when it is first visited, and the low child is pushed last on the explicit
// stack so it is visited, and numbered, before the high child. Terminals keep
// indices 0 and 1; the root keeps the highest index. A node reachable through
// two branches is numbered on its first visit, so the result does not always
// give every child a smaller index than its parent; SortPostorder does.
func SortPreorder(b *BDD) *BDD {
	return compactPreorder(b.nodes, b.RootNode(), b.variableCount)
}

// SortPostorder returns a BDD equivalent to b whose node order is the DFS
// post-order from the terminals up: a node is assigned an (ascending) id only
// after both of its children have been. This is the dual of SortPreorder.
func SortPostorder(b *BDD) *BDD {
	if len(b.nodes) < 2 {
		return &BDD{variableCount: b.variableCount, nodes: append([]packedNode(nil), b.nodes...)}
	}

	newID := make([]NodeID, len(b.nodes))
	newID[ZeroID] = ZeroID
	newID[OneID] = OneID

	// done marks a node once it has its new id. A node shared by two parents
	// can be pushed a second time, above a copy that is still waiting on the
	// stack; the upper copy is finished first and the lower one is dropped
	// when it comes back to the top, so every node is numbered after all of
	// its children.
	done := make([]bool, len(b.nodes))

	type frame struct {
		id       NodeID
		expanded bool
	}
	stack := make([]frame, 0, 3*b.variableCount+4)
	stack = append(stack, frame{id: b.RootNode()})

	push := func(id NodeID) {
		if id.IsTerminal() || done[id] {
			return
		}
		stack = append(stack, frame{id: id})
	}

	nextID := NodeID(2)
	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if done[top.id] {
			stack = stack[:len(stack)-1]
			continue
		}
		if top.expanded {
			stack = stack[:len(stack)-1]
			newID[top.id] = nextID
			done[top.id] = true
			nextID++
			continue
		}

		stack[len(stack)-1].expanded = true
		n := b.nodeAt(top.id)
		// Low is pushed last so it is processed (and therefore assigned a
		// lower id) before high, mirroring the low-before-high convention
		// used throughout apply.
		push(n.highLink())
		push(n.lowLink())
	}

	return reindex(b.nodes, b.variableCount, newID)
}

// reindex rebuilds the node array under the permutation newID (old id -> new
// id; terminals fixed at 0 and 1), producing a fresh BDD. The root of the
// result is implicitly the highest new id, which newID must map the original
// root to.
func reindex(nodes []packedNode, variableCount int, newID []NodeID) *BDD {
	out := make([]packedNode, len(nodes))
	out[ZeroID] = zeroNode
	if len(nodes) > 1 {
		out[OneID] = oneNode
	}
	for old := 2; old < len(nodes); old++ {
		variable, low, high := nodes[old].unpack()
		out[newID[old]] = packNode(variable, newID[low], newID[high])
	}
	return &BDD{variableCount: variableCount, nodes: out}
}

// compactPreorder discards whatever in nodes is not reachable from root and
// renumbers what remains into pre-order, root last: a node gets the next
// descending id when it is first popped, and a low child is popped before
// its high child. It is the implementation of SortPreorder, and Apply's node
// cache uses it to turn its working array into the result (see
// nodeCache.export).
func compactPreorder(nodes []packedNode, root NodeID, variableCount int) *BDD {
	if root.IsZero() {
		return &BDD{variableCount: variableCount, nodes: []packedNode{zeroNode}}
	}
	if root.IsOne() {
		return &BDD{variableCount: variableCount, nodes: []packedNode{zeroNode, oneNode}}
	}

	visited := make([]bool, len(nodes))
	order := make([]NodeID, 0, len(nodes))
	stack := make([]NodeID, 0, 64)
	stack = append(stack, root)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.IsTerminal() || visited[top] {
			continue
		}
		visited[top] = true
		order = append(order, top)
		n := nodes[top]
		stack = append(stack, n.highLink(), n.lowLink())
	}

	newID := make([]NodeID, len(nodes))
	newID[ZeroID] = ZeroID
	newID[OneID] = OneID
	total := len(order)
	for i, old := range order {
		newID[old] = NodeID(total + 1 - i)
	}

	out := make([]packedNode, total+2)
	out[ZeroID] = zeroNode
	out[OneID] = oneNode
	for _, old := range order {
		variable, low, high := nodes[old].unpack()
		out[newID[old]] = packNode(variable, newID[low], newID[high])
	}
	return &BDD{variableCount: variableCount, nodes: out}
}
