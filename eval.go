// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

// Eval interprets b under assignment, a slice of booleans indexed by
// VariableID, and returns the value of the represented Boolean function.
// len(assignment) must be at least b.VariableCount(); Eval panics otherwise,
// since this is a programming error at the call site rather than a
// recoverable condition.
//
// Eval walks from the root following low or high at each decision node
// according to assignment[node.Variable], stopping at whichever terminal is
// reached. It is not on Apply's hot path; it exists to state and check
// semantic equivalence between two BDDs built in different ways (see
// apply_test.go).
func Eval(b *BDD, assignment []bool) bool {
	if len(assignment) < b.VariableCount() {
		panic(ErrAssignmentLength)
	}
	id := b.RootNode()
	for !id.IsTerminal() {
		n := b.nodeAt(id)
		if assignment[n.variable()] {
			id = n.highLink()
		} else {
			id = n.lowLink()
		}
	}
	return id.IsOne()
}
