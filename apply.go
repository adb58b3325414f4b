// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

import "fmt"

// Apply computes the binary Boolean operation op between left and right and
// returns a fresh, standalone, reduced BDD: the C5 component. It replaces
// recursion with an explicit stack of pending frames so that the depth of
// the traversal is bounded only by available memory, not the Go call stack.
//
// Apply picks between a compact and a wide internal pointer encoding for its
// task cache based on the operand node counts (see widen.go); if the compact
// encoding's bound is violated mid-operation it discards the in-progress
// caches and stack and restarts with the wide encoding.
func Apply(op Operator, left, right *BDD, opts ...ApplyOption) (*BDD, error) {
	if int(op) < 0 || int(op) >= len(rules) {
		return nil, fmt.Errorf("obdd: apply: operator %d: %w", op, ErrOperator)
	}
	cfg := defaultApplyConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	compact := !cfg.forceWide && canUseCompact(left, right)
	for {
		result, restart := runApply(op, left, right, cfg, compact)
		if !restart {
			return result, nil
		}
		debugLog("obdd: apply: compact bound exceeded, restarting with wide pointers (op=%s)", op)
		compact = false
	}
}

// runApply performs one attempt at the traversal. It returns restart=true
// when a widenSignal was raised, signalling the caller to retry with
// compact=false.
func runApply(op Operator, left, right *BDD, cfg *applyConfig, compact bool) (result *BDD, restart bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(widenSignal); ok {
				restart = true
				return
			}
			panic(r)
		}
	}()

	a := newApplyState(op, left, right, cfg, compact)
	var root NodeID
	a.solve(left.RootNode(), right.RootNode(), &root)
	a.run()

	out := a.nodes.export(root)
	if !root.IsTerminal() {
		out.updateVariableCount(maxInt(left.VariableCount(), right.VariableCount()))
	}
	return out, false
}

// applyState carries everything one Apply attempt needs: the two operands,
// the terminal predicate pair for the chosen operator, the node cache, the
// task cache (exactly one of cache32/cache64 is non-nil), and the explicit
// stack of pending frames.
type applyState struct {
	left, right *BDD
	rule        terminalRule
	compact     bool

	nodes    *nodeCache
	cache32  *taskCache32
	cache64  *taskCache64
	prefetch bool

	stack []*pendingFrame
}

// pendingFrame is one still-unresolved (left, right) subproblem. It is
// pushed once, expanded on its first visit (its own children are queued),
// and combined into a node on its second visit once both children are
// known -- the classic explicit-stack simulation of a two-way recursive
// descent.
type pendingFrame struct {
	left, right NodeID
	variable    VariableID
	expanded    bool
	lowResult   NodeID
	highResult  NodeID
	resultSlot  *NodeID
}

func newApplyState(op Operator, left, right *BDD, cfg *applyConfig, compact bool) *applyState {
	nodeHint := cfg.nodeSizeHint
	if nodeHint == 0 {
		nodeHint = maxInt(left.NodeCount(), right.NodeCount())
	}
	taskHint := cfg.taskSizeHint
	if taskHint == 0 {
		taskHint = left.NodeCount() + right.NodeCount()
	}

	a := &applyState{
		left:     left,
		right:    right,
		rule:     rules[op],
		compact:  compact,
		prefetch: cfg.prefetch,
		nodes:    newNodeCache(nodeHint),
	}
	if compact {
		a.cache32 = newTaskCache32(taskHint)
	} else {
		a.cache64 = newTaskCache64(taskHint)
	}
	return a
}

func (a *applyState) readTask(left, right NodeID) (NodeID, bool) {
	if a.compact {
		return a.cache32.read(left, right)
	}
	return a.cache64.read(left, right)
}

func (a *applyState) writeTask(left, right, result NodeID) {
	if a.compact {
		a.cache32.write(left, right, result)
	} else {
		a.cache64.write(left, right, result)
	}
}

// resolve reports whether (left, right) is already settled, either because
// the operator's terminal predicates decide it outright or because an
// identical subproblem was already solved earlier in this same Apply call.
func (a *applyState) resolve(left, right NodeID) (NodeID, bool) {
	lz, lo := left.IsZero(), left.IsOne()
	rz, ro := right.IsZero(), right.IsOne()
	if a.rule.isZero(lz, lo, rz, ro) {
		return ZeroID, true
	}
	if a.rule.isOne(lz, lo, rz, ro) {
		return OneID, true
	}
	return a.readTask(left, right)
}

// solve either resolves (left, right) immediately and writes the answer to
// slot, or pushes a new pending frame that will write to slot once its own
// children are resolved.
func (a *applyState) solve(left, right NodeID, slot *NodeID) {
	if result, ok := a.resolve(left, right); ok {
		*slot = result
		return
	}
	a.stack = append(a.stack, &pendingFrame{left: left, right: right, resultSlot: slot})
}

func (a *applyState) variableOf(b *BDD, id NodeID) VariableID {
	if id.IsTerminal() {
		return VariableUndefined
	}
	return b.GetVariable(id)
}

// run drains the stack, expanding each frame's children on its first visit
// and combining the two child results into a canonical node on its second.
func (a *applyState) run() {
	for len(a.stack) > 0 {
		top := a.stack[len(a.stack)-1]

		if !top.expanded {
			top.expanded = true
			if a.prefetch {
				a.left.prefetch(top.left)
				a.right.prefetch(top.right)
			}

			lv := a.variableOf(a.left, top.left)
			rv := a.variableOf(a.right, top.right)

			var lowLeft, highLeft, lowRight, highRight NodeID
			switch {
			case lv == rv:
				top.variable = lv
				ln := a.left.nodeAt(top.left)
				rn := a.right.nodeAt(top.right)
				lowLeft, highLeft = ln.lowLink(), ln.highLink()
				lowRight, highRight = rn.lowLink(), rn.highLink()
			case rv == VariableUndefined || (lv != VariableUndefined && lv < rv):
				top.variable = lv
				ln := a.left.nodeAt(top.left)
				lowLeft, highLeft = ln.lowLink(), ln.highLink()
				lowRight, highRight = top.right, top.right
			default:
				top.variable = rv
				lowLeft, highLeft = top.left, top.left
				rn := a.right.nodeAt(top.right)
				lowRight, highRight = rn.lowLink(), rn.highLink()
			}

			a.solve(lowLeft, lowRight, &top.lowResult)
			a.solve(highLeft, highRight, &top.highResult)
			continue
		}

		id := a.nodes.ensure(top.variable, top.lowResult, top.highResult)
		if a.compact {
			checkCompactBound(id)
		}
		a.writeTask(top.left, top.right, id)
		*top.resultSlot = id
		a.stack = a.stack[:len(a.stack)-1]
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
