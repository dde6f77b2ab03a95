// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package splitend

import (
	"errors"
)

// ErrRootNotPermitted is returned when a stack is anchored to a root
// value unknown to a registry that forbids creating new roots.
var ErrRootNotPermitted = errors.New("splitend: registry does not permit new roots")

// Roots caches one root node per distinct root value, so that every
// stack anchored to the same value within one registry shares the same
// bottom node. Registries are independent of each other; pass one
// explicitly to New rather than sharing a process-wide instance.
type Roots[T comparable] struct {
	nodes     map[T]*node[T]
	permitNew bool
}

// NewRoots returns a registry, optionally pre-seeded. If permitNew is
// false, only seeded or Registered values may anchor stacks.
func NewRoots[T comparable](permitNew bool, seed ...T) *Roots[T] {
	r := &Roots[T]{nodes: make(map[T]*node[T], len(seed)), permitNew: permitNew}
	for _, v := range seed {
		r.Register(v)
	}
	return r
}

// Register pre-seeds a root value. Idempotent: registering a value
// twice keeps the original root node.
func (r *Roots[T]) Register(v T) {
	if _, ok := r.nodes[v]; !ok {
		r.nodes[v] = &node[T]{data: v}
	}
}

// rootNode returns the cached root node for v, creating it if the
// registry permits new roots.
func (r *Roots[T]) rootNode(v T) (*node[T], error) {
	if n, ok := r.nodes[v]; ok {
		return n, nil
	}
	if !r.permitNew {
		return nil, ErrRootNotPermitted
	}
	n := &node[T]{data: v}
	r.nodes[v] = n
	return n, nil
}
