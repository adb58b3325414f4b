// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

// applyConfig holds the tunable parameters of a single Apply call. These
// only ever affect the caches of the one call they are passed to: every
// Apply starts from an empty node cache and task cache (see doc.go).
type applyConfig struct {
	nodeSizeHint  int  // initial size hint for the node cache; 0 picks a default from operand sizes
	taskSizeHint  int  // initial size hint for the task cache; 0 picks a default from operand sizes
	forceWide     bool // skip the compact pointer-pair path even when it would fit
	prefetch      bool // call BDD.prefetch ahead of node lookups on the hot path
}

func defaultApplyConfig() *applyConfig {
	return &applyConfig{prefetch: true}
}

// ApplyOption configures a single call to Apply via the functional-options
// pattern. NodeCacheSize and TaskCacheSize ignore a size that is not
// positive.
type ApplyOption func(*applyConfig)

// NodeCacheSize overrides the initial size of the node cache. Apply
// otherwise picks a size from the operand node counts.
func NodeCacheSize(size int) ApplyOption {
	return func(c *applyConfig) {
		if size > 0 {
			c.nodeSizeHint = size
		}
	}
}

// TaskCacheSize overrides the initial size of the task cache.
func TaskCacheSize(size int) ApplyOption {
	return func(c *applyConfig) {
		if size > 0 {
			c.taskSizeHint = size
		}
	}
}

// ForceWidePointers disables the compact 32/31-bit pointer-pair path even
// when both operands would fit it, forcing the wide task cache and skipping
// checkCompactBound entirely. Exposed for tests that exercise the wide path
// without needing to build operands past the compact bound.
func ForceWidePointers() ApplyOption {
	return func(c *applyConfig) { c.forceWide = true }
}

// WithPrefetch toggles the prefetch hints Apply issues while walking node
// arrays. Since BDD.prefetch is a documented no-op on this platform, this
// option currently has no observable effect; it is kept so that call sites
// written against a future prefetch-capable build do not need to change.
func WithPrefetch(enabled bool) ApplyOption {
	return func(c *applyConfig) { c.prefetch = enabled }
}
