// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

// Package queues provides FIFO and LIFO facades over deque.Deque.
// Every operation delegates directly with no added semantics.
package queues

import (
	"github.com/hrissan/containers/deque"
)

// FIFO is a first-in-first-out queue: Push enqueues on the right,
// Pop dequeues from the left.
type FIFO[T any] struct {
	d deque.Deque[T]
}

func NewFIFO[T any](vs ...T) *FIFO[T] {
	return &FIFO[T]{d: *deque.From(vs...)}
}

func (q *FIFO[T]) Push(v T) { q.d.PushRight(v) }
func (q *FIFO[T]) Pop() (T, bool) { return q.d.PopLeft() }
func (q *FIFO[T]) Peek() (T, bool) { return q.d.PeekLeft() }
func (q *FIFO[T]) Len() int { return q.d.Len() }
func (q *FIFO[T]) IsEmpty() bool { return q.d.IsEmpty() }
func (q *FIFO[T]) Capacity() int { return q.d.Capacity() }
func (q *FIFO[T]) FractionFilled() float64 { return q.d.FractionFilled() }

func (q *FIFO[T]) Copy() *FIFO[T] {
	return &FIFO[T]{d: *q.d.Copy()}
}

// LIFO is a last-in-first-out stack view: Push and Pop both work the
// right end.
type LIFO[T any] struct {
	d deque.Deque[T]
}

func NewLIFO[T any](vs ...T) *LIFO[T] {
	return &LIFO[T]{d: *deque.From(vs...)}
}

func (q *LIFO[T]) Push(v T) { q.d.PushRight(v) }
func (q *LIFO[T]) Pop() (T, bool) { return q.d.PopRight() }
func (q *LIFO[T]) Peek() (T, bool) { return q.d.PeekRight() }
func (q *LIFO[T]) Len() int { return q.d.Len() }
func (q *LIFO[T]) IsEmpty() bool { return q.d.IsEmpty() }
func (q *LIFO[T]) Capacity() int { return q.d.Capacity() }
func (q *LIFO[T]) FractionFilled() float64 { return q.d.FractionFilled() }

func (q *LIFO[T]) Copy() *LIFO[T] {
	return &LIFO[T]{d: *q.d.Copy()}
}
