// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

// Operator names one of the eight binary Boolean connectives Apply can
// compute.
type Operator int

// The eight supported binary operators.
const (
	And Operator = iota
	Or
	Xor
	Iff
	Imp
	InvImp
	AndNot
	NotAnd
)

var operatorNames = [...]string{
	And:    "and",
	Or:     "or",
	Xor:    "xor",
	Iff:    "iff",
	Imp:    "imp",
	InvImp: "inv_imp",
	AndNot: "and_not",
	NotAnd: "not_and",
}

func (op Operator) String() string {
	if int(op) < 0 || int(op) >= len(operatorNames) {
		return "operator(?)"
	}
	return operatorNames[op]
}

// terminalRule is a pair of short-circuit predicates: given what is
// currently known about the left and right operand of a subproblem (each
// either "known zero", "known one", or "not a known terminal"), isZero
// reports whether that is already enough to settle the whole subproblem to
// false, and isOne whether it settles it to true. If neither holds, Apply
// must still descend into whichever operand is not a terminal.
//
// Each predicate receives (leftIsZero, leftIsOne, rightIsZero, rightIsOne);
// an operand that is not a known terminal has both of its booleans false.
type terminalRule struct {
	isZero func(leftIsZero, leftIsOne, rightIsZero, rightIsOne bool) bool
	isOne  func(leftIsZero, leftIsOne, rightIsZero, rightIsOne bool) bool
}

// rules holds the terminal predicate pair for each Operator. InvImp is
// "right implies left" (zero only when left=0, right=1) and NotAnd is
// "not-left-and right" (one only when left=0, right=1); despite the family
// resemblance to AndNot and Imp, all eight operators have distinct truth
// tables and so distinct predicate pairs below.
var rules = [...]terminalRule{
	And: {
		isZero: func(lz, _, rz, _ bool) bool { return lz || rz },
		isOne:  func(_, lo, _, ro bool) bool { return lo && ro },
	},
	Or: {
		isZero: func(lz, _, rz, _ bool) bool { return lz && rz },
		isOne:  func(_, lo, _, ro bool) bool { return lo || ro },
	},
	Xor: {
		isZero: func(lz, lo, rz, ro bool) bool { return (lz && rz) || (lo && ro) },
		isOne:  func(lz, lo, rz, ro bool) bool { return (lz && ro) || (lo && rz) },
	},
	Iff: {
		isZero: func(lz, lo, rz, ro bool) bool { return (lz && ro) || (lo && rz) },
		isOne:  func(lz, lo, rz, ro bool) bool { return (lz && rz) || (lo && ro) },
	},
	Imp: {
		isZero: func(_, lo, rz, _ bool) bool { return lo && rz },
		isOne:  func(lz, _, _, ro bool) bool { return lz || ro },
	},
	InvImp: {
		isZero: func(lz, _, _, ro bool) bool { return lz && ro },
		isOne:  func(_, lo, rz, _ bool) bool { return lo || rz },
	},
	AndNot: {
		isZero: func(lz, _, _, ro bool) bool { return lz || ro },
		isOne:  func(_, lo, rz, _ bool) bool { return lo && rz },
	},
	NotAnd: {
		isZero: func(_, lo, rz, _ bool) bool { return lo || rz },
		isOne:  func(lz, _, _, ro bool) bool { return lz && ro },
	},
}
