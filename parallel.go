// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

import "golang.org/x/sync/errgroup"

// Task describes one independent Apply call for ParallelApply.
type Task struct {
	Op          Operator
	Left, Right *BDD
	Options     []ApplyOption
}

// ParallelApply runs a batch of independent Apply calls concurrently and
// returns their results in the same order as tasks. Each Apply call owns
// its own node cache and task cache (see doc.go), so no synchronization is
// needed between goroutines beyond collecting the results; errgroup.Group
// is used only for that fan-out and to propagate the first error, matching
// the pattern's usual role in the ecosystem rather than introducing shared
// mutable state the core engine does not need.
//
// If any task fails, ParallelApply returns the first error encountered and
// a nil slice.
func ParallelApply(tasks []Task) ([]*BDD, error) {
	results := make([]*BDD, len(tasks))
	var g errgroup.Group
	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			result, err := Apply(t.Op, t.Left, t.Right, t.Options...)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
