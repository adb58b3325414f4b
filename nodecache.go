// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// nodeCache is a unicity table: a hash table mapping a canonical
// (variable, low, high) triple to the id assigned to its first occurrence.
// The growing node array doubles as the output BDD's node sequence -- ensure
// returns an index directly into it, so there is no separate export pass.
type nodeCache struct {
	nodes []packedNode // index 0 = false, 1 = true (if present); grows with ensure
	table []nodeCacheSlot
	mask  uint64
	count int
}

type nodeCacheSlot struct {
	occupied bool
	key      packedNode
	id       NodeID
}

// newNodeCache seeds the cache with the two terminals -- they are never
// looked up through the hash table, only addressed directly by id 0 and 1 --
// and sizes the hash table near sizeHint, the larger of the two input node
// counts.
func newNodeCache(sizeHint int) *nodeCache {
	capacity := nextPow2(sizeHint)
	if capacity < 16 {
		capacity = 16
	}
	return &nodeCache{
		nodes: []packedNode{zeroNode, oneNode},
		table: make([]nodeCacheSlot, capacity),
		mask:  uint64(capacity - 1),
	}
}

// ensure returns the id for node, inserting it if this is its first
// occurrence. When low != high, c.nodes[id] holds the packed (variable, low,
// high) triple after ensure returns; when low == high nothing is stored and
// the returned id is low.
func (c *nodeCache) ensure(variable VariableID, low, high NodeID) NodeID {
	if low == high {
		// Redundant node: a reduced diagram never keeps a node whose two
		// children are identical, since the decision it represents can never
		// change the outcome.
		return low
	}
	node := packNode(variable, low, high)
	if c.count*4 >= len(c.table)*3 {
		c.grow()
	}
	idx := nodeHash(node) & c.mask
	for {
		slot := &c.table[idx]
		if !slot.occupied {
			id := NodeID(len(c.nodes))
			c.nodes = append(c.nodes, node)
			slot.occupied = true
			slot.key = node
			slot.id = id
			c.count++
			return id
		}
		if slot.key == node {
			return slot.id
		}
		idx = (idx + 1) & c.mask
	}
}

func (c *nodeCache) grow() {
	old := c.table
	c.table = make([]nodeCacheSlot, len(old)*2)
	c.mask = uint64(len(c.table) - 1)
	for _, slot := range old {
		if !slot.occupied {
			continue
		}
		idx := nodeHash(slot.key) & c.mask
		for c.table[idx].occupied {
			idx = (idx + 1) & c.mask
		}
		c.table[idx] = slot
	}
}

// export builds the final, well-formed BDD rooted at root: the working
// array (nodes seeded with both terminals up front, regardless of whether
// the computation ends up needing the true terminal at all) is compacted
// down to exactly the nodes reachable from root and renumbered so the root
// is the last index, via compactPreorder. The caller is responsible for
// setting the variable count on the result.
func (c *nodeCache) export(root NodeID) *BDD {
	return compactPreorder(c.nodes, root, 0)
}

// nodeHash mixes the packed triple's two words with xxhash.Sum64, a real,
// dependency-free non-cryptographic hash from the ecosystem rather than a
// hand-rolled multiply-shift.
func nodeHash(n packedNode) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], n.w0)
	binary.LittleEndian.PutUint64(buf[8:16], n.w1)
	return xxhash.Sum64(buf[:])
}

func nextPow2(n int) int {
	if n <= 0 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
