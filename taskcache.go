// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// taskCache is the C4 component: memoization of in-flight Apply subproblems
// keyed by the pair of operand node ids, scoped to a single Apply call and
// discarded with it. There are two implementations, selected once at the
// start of Apply by canUseCompact: taskCache32 packs both ids into the
// pairEncode 63-bit key used by the compact stack encoding, taskCache64
// keeps them as a plain struct for diagrams too large for that encoding.

const taskCacheEmpty = NodeIDUndefined

// taskCache32 backs Apply's compact path. Its key space is exactly the
// pairEncode range, so the key itself doubles as the hash table probe seed
// after an xxhash mix.
type taskCache32 struct {
	keys    []uint64 // pairEncode(left, right); absent entries hold ^uint64(0)
	results []NodeID
	mask    uint64
}

func newTaskCache32(sizeHint int) *taskCache32 {
	capacity := nextPow2(sizeHint)
	if capacity < 64 {
		capacity = 64
	}
	keys := make([]uint64, capacity)
	for i := range keys {
		keys[i] = ^uint64(0)
	}
	return &taskCache32{
		keys:    keys,
		results: make([]NodeID, capacity),
		mask:    uint64(capacity - 1),
	}
}

func (c *taskCache32) read(left, right NodeID) (NodeID, bool) {
	key := pairEncode(left, right)
	idx := hashUint64(key) & c.mask
	for {
		k := c.keys[idx]
		if k == ^uint64(0) {
			return taskCacheEmpty, false
		}
		if k == key {
			return c.results[idx], true
		}
		idx = (idx + 1) & c.mask
	}
}

func (c *taskCache32) write(left, right NodeID, result NodeID) {
	key := pairEncode(left, right)
	idx := hashUint64(key) & c.mask
	for {
		k := c.keys[idx]
		if k == ^uint64(0) || k == key {
			c.keys[idx] = key
			c.results[idx] = result
			return
		}
		idx = (idx + 1) & c.mask
	}
}

// taskCache64 backs Apply's wide path: operand ids are not restricted to
// the compact encoding's 32/31-bit split, so the key is kept as a plain
// pair and hashed over its two raw words.
type taskCache64 struct {
	slots []taskSlot64
	mask  uint64
}

type taskSlot64 struct {
	occupied    bool
	left, right NodeID
	result      NodeID
}

func newTaskCache64(sizeHint int) *taskCache64 {
	capacity := nextPow2(sizeHint)
	if capacity < 64 {
		capacity = 64
	}
	return &taskCache64{
		slots: make([]taskSlot64, capacity),
		mask:  uint64(capacity - 1),
	}
}

func (c *taskCache64) read(left, right NodeID) (NodeID, bool) {
	idx := hashPair(left, right) & c.mask
	for {
		s := &c.slots[idx]
		if !s.occupied {
			return taskCacheEmpty, false
		}
		if s.left == left && s.right == right {
			return s.result, true
		}
		idx = (idx + 1) & c.mask
	}
}

func (c *taskCache64) write(left, right NodeID, result NodeID) {
	idx := hashPair(left, right) & c.mask
	for {
		s := &c.slots[idx]
		if !s.occupied || (s.left == left && s.right == right) {
			s.occupied = true
			s.left, s.right, s.result = left, right, result
			return
		}
		idx = (idx + 1) & c.mask
	}
}

func hashUint64(x uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], x)
	return xxhash.Sum64(buf[:])
}

func hashPair(left, right NodeID) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(left))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(right))
	return xxhash.Sum64(buf[:])
}
