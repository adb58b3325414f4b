// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package obdd defines a concrete type for standalone, immutable Reduced Ordered
Binary Decision Diagrams (BDD), a data structure used to efficiently represent
Boolean functions over a fixed set of variables or, equivalently, sets of
Boolean vectors with a fixed size.

Basics

A BDD has a variable count computed as one plus the largest variable index
used in the diagram (zero for a constant). Each variable is represented by an
(integer) index, called a level, with the convention that smaller levels sit
closer to the root. Nodes are addressed with a NodeID, with the convention
that 0 (respectively 1) is the address of the constant function False
(respectively True).

Unlike a pooled, reference-counted BDD package, a *BDD produced by this
package is immutable and self-contained: there is no shared unicity table, no
garbage collector, and no finalizers. Combining two BDDs with Apply always
allocates a fresh diagram; the inputs are never mutated and can be reused and
shared freely, including across goroutines (see ParallelApply).

Apply

Apply is the coupled depth-first traversal that computes a two-argument
Boolean operation between two BDDs. It replaces recursion with an explicit
task/result stack so that diagrams with millions of nodes and height in the
thousands do not blow the native call stack. Internally it maintains a task
cache (memoizing in-flight subproblems) and a node cache (canonicalizing new
nodes so the result stays reduced); both caches are scoped to a single Apply
call and discarded once it returns.

Pointer widths

Apply picks, from the node counts of its two operands, between a compact,
cache-friendly 32/31-bit pointer-pair encoding and a wider encoding able to
address arbitrarily large diagrams. If a compact-mode invariant is ever
violated mid-operation, the in-progress caches and stack are discarded and the
operation restarts using the wider encoding; see widen.go.
*/
package obdd
