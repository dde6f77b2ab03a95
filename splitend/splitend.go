// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

// Package splitend implements LIFO stacks that safely share immutable
// data between themselves.
//
// A SplitEnd is a small mutable handle (head node, count) into an
// immutable chain of nodes anchored at a registry-owned root node.
// Because nodes never change after construction, any number of handles
// may reference overlapping suffixes of the same chain without copying
// or coordination; Push and Pop move only the owning handle. Many
// handles fanning out from shared suffixes form bush-like structures.
//
// The root is sticky: a stack always contains at least its root
// element, and popping at the root returns the root's data without
// shrinking the stack. This makes every operation except construction
// total.
package splitend

import (
	"iter"
)

// SplitEnd is a mutable stack handle over a shared immutable chain.
// Mutating a single handle from several goroutines without external
// locking is not supported; distinct handles over shared chains are
// independent.
type SplitEnd[T comparable] struct {
	roots *Roots[T]
	root  *node[T]
	head  *node[T]
	count int // nodes from head to root inclusive, always >= 1
}

// New returns a stack anchored at root, with vs pushed above it in
// order. Fails only when the registry does not know root and forbids
// new roots.
func New[T comparable](roots *Roots[T], root T, vs ...T) (*SplitEnd[T], error) {
	rn, err := roots.rootNode(root)
	if err != nil {
		return nil, err
	}
	s := &SplitEnd[T]{roots: roots, root: rn, head: rn, count: 1}
	for _, v := range vs {
		s.Push(v)
	}
	return s, nil
}

func (s *SplitEnd[T]) Len() int {
	return s.count
}

// AtRoot reports whether the handle sits on its root node.
func (s *SplitEnd[T]) AtRoot() bool {
	return s.head == s.root
}

// Push puts v on top of the stack. Only this handle is mutated; the
// existing chain is shared, never copied.
func (s *SplitEnd[T]) Push(v T) {
	s.head = &node[T]{data: v, next: s.head}
	s.count++
}

// Pop removes and returns the top element. At the root it returns the
// root's data and changes nothing, so Pop never fails and the stack
// never shrinks below one element.
func (s *SplitEnd[T]) Pop() T {
	if s.head == s.root {
		return s.root.data
	}
	data := s.head.data
	s.head = s.head.next
	s.count--
	return data
}

// Peek returns the top element without removing it.
func (s *SplitEnd[T]) Peek() T {
	return s.head.data
}

// Cons is the pure counterpart of Push: it returns a new independent
// handle whose top is v over this stack's chain, leaving the receiver
// untouched.
func (s *SplitEnd[T]) Cons(v T) *SplitEnd[T] {
	return &SplitEnd[T]{
		roots: s.roots,
		root:  s.root,
		head:  &node[T]{data: v, next: s.head},
		count: s.count + 1,
	}
}

// Tail is the pure counterpart of Pop: it returns a handle one element
// below the top. The tail of a root is itself, keeping Tail total.
func (s *SplitEnd[T]) Tail() *SplitEnd[T] {
	if s.head == s.root {
		return s
	}
	return &SplitEnd[T]{roots: s.roots, root: s.root, head: s.head.next, count: s.count - 1}
}

// Copy duplicates the handle in O(1); both handles then share the
// entire chain and diverge only through their own Push and Pop.
func (s *SplitEnd[T]) Copy() *SplitEnd[T] {
	return &SplitEnd[T]{roots: s.roots, root: s.root, head: s.head, count: s.count}
}

// All iterates from the top of the stack down to and including the
// root.
func (s *SplitEnd[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

// Equal reports whether two stacks hold equal data top to root. The
// walk stops early, as equal, the moment both sides stand on the same
// node: nodes are immutable, so converging chains cannot differ below
// the convergence point. Stacks from different registries never share
// nodes, so for them the comparison is fully structural.
func (s *SplitEnd[T]) Equal(other *SplitEnd[T]) bool {
	if s == other {
		return true
	}
	if s.count != other.count {
		return false
	}
	left, right := s.head, other.head
	for n := s.count; n > 0; n-- {
		if left == right {
			return true
		}
		if left.data != right.data {
			return false
		}
		left, right = left.next, right.next
	}
	return true
}

// Fold reduces the stack in LIFO order, top to root, starting from
// init.
func Fold[T comparable, U any](s *SplitEnd[T], init U, f func(U, T) U) U {
	acc := init
	for n := s.head; n != nil; n = n.next {
		acc = f(acc, n.data)
	}
	return acc
}

// Reduce is Fold seeded with the top element, folding from the one
// below it.
func Reduce[T comparable](s *SplitEnd[T], f func(T, T) T) T {
	acc := s.head.data
	for n := s.head.next; n != nil; n = n.next {
		acc = f(acc, n.data)
	}
	return acc
}
