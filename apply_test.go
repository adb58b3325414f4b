// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// allAssignments enumerates every boolean vector of length n, smallest bit
// first, for brute-force semantic comparisons on small variable counts.
func allAssignments(n int) [][]bool {
	total := 1 << n
	out := make([][]bool, total)
	for mask := 0; mask < total; mask++ {
		a := make([]bool, n)
		for i := 0; i < n; i++ {
			a[i] = mask&(1<<i) != 0
		}
		out[mask] = a
	}
	return out
}

func TestApplyBasicOperators(t *testing.T) {
	x0 := NewVariable(0)
	x1 := NewVariable(1)

	cases := []struct {
		name string
		op   Operator
		want func(a, b bool) bool
	}{
		{"and", And, func(a, b bool) bool { return a && b }},
		{"or", Or, func(a, b bool) bool { return a || b }},
		{"xor", Xor, func(a, b bool) bool { return a != b }},
		{"iff", Iff, func(a, b bool) bool { return a == b }},
		{"imp", Imp, func(a, b bool) bool { return !a || b }},
		{"inv_imp", InvImp, func(a, b bool) bool { return a || !b }},
		{"and_not", AndNot, func(a, b bool) bool { return a && !b }},
		{"not_and", NotAnd, func(a, b bool) bool { return !a && b }},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			result, err := Apply(c.op, x0, x1)
			if err != nil {
				t.Fatal(err)
			}
			for _, assign := range allAssignments(2) {
				got := Eval(result, assign)
				want := c.want(assign[0], assign[1])
				if got != want {
					t.Errorf("%s%v = %v, want %v", c.name, assign, got, want)
				}
			}
		})
	}
}

func TestApplyWithConstants(t *testing.T) {
	require := require.New(t)
	x := NewVariable(5)
	f := NewFalse()
	tr := NewTrue()

	r, err := Apply(And, x, f)
	require.NoError(err)
	require.Equal(1, r.NodeCount(), "x AND false should reduce to a single-node constant false BDD")
	require.Equal(ZeroID, r.RootNode())

	r, err = Apply(Or, x, f)
	require.NoError(err)
	for _, a := range allAssignments(6) {
		require.Equal(a[5], Eval(r, a))
	}

	r, err = Apply(And, x, tr)
	require.NoError(err)
	for _, a := range allAssignments(6) {
		require.Equal(a[5], Eval(r, a))
	}
}

func TestApplyUnknownOperator(t *testing.T) {
	_, err := Apply(Operator(99), NewTrue(), NewTrue())
	if err == nil {
		t.Fatal("expected an error for an unknown operator")
	}
}

// TestApplySemanticEquivalence builds a small multi-variable formula two
// different ways -- directly, and by distributing "or" over "and" -- and
// checks Apply agrees with both forms on every assignment, regardless of how
// the diagram ends up shaped internally.
func TestApplySemanticEquivalence(t *testing.T) {
	req := require.New(t)
	x0, x1, x2 := NewVariable(0), NewVariable(1), NewVariable(2)

	left, err := Apply(And, x0, x1)
	req.NoError(err)
	left, err = Apply(Or, left, x2)
	req.NoError(err)

	// (x0 and x1) or x2, computed in the distributed form (x0 or x2) and
	// (x1 or x2).
	right, err := Apply(Or, x0, x2)
	req.NoError(err)
	right2, err := Apply(Or, x1, x2)
	req.NoError(err)
	right, err = Apply(And, right, right2)
	req.NoError(err)

	for _, a := range allAssignments(3) {
		got := Eval(left, a)
		want := (a[0] && a[1]) || a[2]
		req.Equal(want, got)
		req.Equal(want, Eval(right, a), "distributed form disagrees on %v", a)
	}
}

func TestApplyForceWidePointersMatchesCompact(t *testing.T) {
	req := require.New(t)
	x0, x1, x2 := NewVariable(0), NewVariable(1), NewVariable(2)
	tmp, err := Apply(Xor, x0, x1)
	req.NoError(err)
	compact, err := Apply(Or, tmp, x2)
	req.NoError(err)

	tmp, err = Apply(Xor, x0, x1, ForceWidePointers())
	req.NoError(err)
	wide, err := Apply(Or, tmp, x2, ForceWidePointers())
	req.NoError(err)

	for _, a := range allAssignments(3) {
		req.Equal(Eval(compact, a), Eval(wide, a))
	}
}

// TestApplyLiteralScenarios walks a handful of small end-to-end cases with
// hand-checked expected node layouts, from plain constants up through two
// variables.
func TestApplyLiteralScenarios(t *testing.T) {
	req := require.New(t)

	// Constants.
	r, err := Apply(And, NewFalse(), NewFalse())
	req.NoError(err)
	req.True(r.Equal(NewFalse()), "and(false,false) = false")

	r, err = Apply(Or, NewFalse(), NewTrue())
	req.NoError(err)
	req.True(r.Equal(NewTrue()), "or(false,true) = true")

	r, err = Apply(Xor, NewTrue(), NewTrue())
	req.NoError(err)
	req.True(r.Equal(NewFalse()), "xor(true,true) = false")

	// Single variable.
	x := NewVariable(0)
	r, err = Apply(And, x, x)
	req.NoError(err)
	req.Equal(3, r.NodeCount())
	req.True(r.Equal(x), "and(x,x) = x")

	r, err = Apply(Or, x, x)
	req.NoError(err)
	req.True(r.Equal(x), "or(x,x) = x")

	r, err = Apply(Xor, x, x)
	req.NoError(err)
	req.True(r.Equal(NewFalse()), "xor(x,x) = false")

	// Two-variable and.
	x0, x1 := NewVariable(0), NewVariable(1)
	r, err = Apply(And, x0, x1)
	req.NoError(err)
	req.Equal(4, r.NodeCount())
	req.Equal(NodeID(3), r.RootNode())
	n2, _ := r.Node(2)
	req.Equal(Node{Variable: 1, Low: 0, High: 1}, n2)
	n3, _ := r.Node(3)
	// High must point at node 2, not back at node 3 itself: a node can never
	// be its own child, since that would make it impossible to ever finish
	// building the node (its own high link would still be unresolved).
	req.Equal(Node{Variable: 0, Low: 0, High: 2}, n3)

	// Two-variable or.
	r, err = Apply(Or, x0, x1)
	req.NoError(err)
	req.Equal(4, r.NodeCount())
	n2, _ = r.Node(2)
	req.Equal(Node{Variable: 1, Low: 0, High: 1}, n2)
	n3, _ = r.Node(3)
	req.Equal(Node{Variable: 0, Low: 2, High: 1}, n3)

	// Xor canonicalization, and argument-order independence.
	r, err = Apply(Xor, x0, x1)
	req.NoError(err)
	req.Equal(5, r.NodeCount())
	swapped, err := Apply(Xor, x1, x0)
	req.NoError(err)
	req.Equal(5, swapped.NodeCount())
	multiset := func(b *BDD) map[packedNode]int {
		out := map[packedNode]int{}
		for _, n := range b.nodes {
			out[n]++
		}
		return out
	}
	req.Equal(multiset(r), multiset(swapped), "xor(x0,x1) and xor(x1,x0) must have the same node multiset")
}

// TestApplyCommutativity checks that and, or, xor, iff agree with their
// argument-swapped form on every assignment (not necessarily node for node,
// since the two input node counts need not match, but always in value).
func TestApplyCommutativity(t *testing.T) {
	req := require.New(t)
	x0, x1, x2 := NewVariable(0), NewVariable(1), NewVariable(2)
	left, err := Apply(And, x0, x1)
	req.NoError(err)
	left, err = Apply(Xor, left, x2)
	req.NoError(err)
	right, err := Apply(And, x1, x0)
	req.NoError(err)
	right, err = Apply(Xor, x2, right)
	req.NoError(err)

	for _, op := range []Operator{And, Or, Xor, Iff} {
		r1, err := Apply(op, left, right)
		req.NoError(err)
		r2, err := Apply(op, right, left)
		req.NoError(err)
		for _, a := range allAssignments(3) {
			req.Equal(Eval(r1, a), Eval(r2, a), "%s not commutative on %v", op, a)
		}
	}
}

// TestApplyIdentities checks the Boolean identities every operator must
// satisfy against the false constant and against itself.
func TestApplyIdentities(t *testing.T) {
	req := require.New(t)
	f := NewFalse()
	b, err := Apply(And, NewVariable(0), NewVariable(1))
	req.NoError(err)
	b, err = Apply(Or, b, NewVariable(2))
	req.NoError(err)

	r, err := Apply(And, b, f)
	req.NoError(err)
	req.True(r.Equal(f), "and(B, false) = false")

	r, err = Apply(Or, b, f)
	req.NoError(err)
	req.True(r.Equal(b), "or(B, false) = B")

	r, err = Apply(Xor, b, b)
	req.NoError(err)
	req.True(r.Equal(f), "xor(B, B) = false")

	r, err = Apply(Iff, b, b)
	req.NoError(err)
	for _, a := range allAssignments(3) {
		req.True(Eval(r, a), "iff(B, B) must be true over every assignment of B's variables")
	}

	r, err = Apply(AndNot, b, b)
	req.NoError(err)
	req.True(r.Equal(f), "and_not(B, B) = false")
}

func TestApplyIsReduced(t *testing.T) {
	x0, x1 := NewVariable(0), NewVariable(1)
	result, err := Apply(And, x0, x1)
	if err != nil {
		t.Fatal(err)
	}
	seen := map[packedNode]bool{}
	for i := 2; i < result.NodeCount(); i++ {
		n := result.nodes[i]
		variable, low, high := n.unpack()
		if low == high {
			t.Errorf("node %d is redundant: low == high == %v", i, low)
		}
		if seen[n] {
			t.Errorf("duplicate node %v (variable %v) at index %d", n, variable, i)
		}
		seen[n] = true
	}
}
