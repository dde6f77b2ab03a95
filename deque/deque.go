// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

// Package deque implements a double-ended queue on top of a
// circular.Buffer. Every Deque owns its backing buffer exclusively;
// Copy and Map always produce independent storage.
package deque

import (
	"iter"

	"github.com/hrissan/containers/circular"
)

// Deque is a double-ended queue. The zero value is empty and ready
// for use.
type Deque[T any] struct {
	buf circular.Buffer[T]
}

// New returns an empty deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{buf: *circular.New[T]()}
}

// From returns a deque holding vs in order, left to right.
func From[T any](vs ...T) *Deque[T] {
	return &Deque[T]{buf: *circular.From(vs...)}
}

func (d *Deque[T]) Len() int {
	return d.buf.Len()
}

func (d *Deque[T]) IsEmpty() bool {
	return d.buf.Len() == 0
}

func (d *Deque[T]) PushLeft(v T) {
	d.buf.PushFront(v)
}

func (d *Deque[T]) PushRight(v T) {
	d.buf.PushBack(v)
}

// PopLeft removes and returns the leftmost element, or false if empty.
func (d *Deque[T]) PopLeft() (T, bool) {
	return d.buf.PopFront()
}

// PopRight removes and returns the rightmost element, or false if empty.
func (d *Deque[T]) PopRight() (T, bool) {
	return d.buf.PopBack()
}

func (d *Deque[T]) PeekLeft() (T, bool) {
	return d.buf.Front()
}

func (d *Deque[T]) PeekRight() (T, bool) {
	return d.buf.Back()
}

// At returns the element at pos. Negative positions count from the
// right. Out-of-range positions yield a *circular.BoundsError.
func (d *Deque[T]) At(pos int) (T, error) {
	return d.buf.At(pos)
}

func (d *Deque[T]) SetAt(pos int, v T) error {
	return d.buf.SetAt(pos, v)
}

// Copy returns an independent deque; the backing buffer is never
// shared between deques.
func (d *Deque[T]) Copy() *Deque[T] {
	return &Deque[T]{buf: *d.buf.Copy()}
}

// All iterates left to right over a snapshot taken when the range
// starts; mutating the deque mid-iteration does not affect the walk.
func (d *Deque[T]) All() iter.Seq[T] {
	return d.buf.All()
}

// Backward is like All, right to left.
func (d *Deque[T]) Backward() iter.Seq[T] {
	return d.buf.Backward()
}

// Capacity reports the current backing capacity. Diagnostic only; no
// behavior depends on it.
func (d *Deque[T]) Capacity() int {
	return d.buf.Cap()
}

// FractionFilled reports Len()/Capacity(). Diagnostic only.
func (d *Deque[T]) FractionFilled() float64 {
	if d.buf.Cap() == 0 {
		return 0
	}
	return float64(d.buf.Len()) / float64(d.buf.Cap())
}

// Equal reports elementwise equality of two deques.
func Equal[T comparable](a, b *Deque[T]) bool {
	return circular.Equal(&a.buf, &b.buf)
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T, U any](a *Deque[T], b *Deque[U], eq func(T, U) bool) bool {
	return circular.EqualFunc(&a.buf, &b.buf, eq)
}

// Map builds a new independent deque by applying f to every element
// left to right, dropping elements for which f reports false.
func Map[T, U any](d *Deque[T], f func(T) (U, bool)) *Deque[U] {
	return &Deque[U]{buf: *circular.Map(&d.buf, f)}
}

// FlatMap applies f to every element left to right and concatenates
// the resulting deques into a new independent one.
func FlatMap[T, U any](d *Deque[T], f func(T) *Deque[U]) *Deque[U] {
	out := New[U]()
	for v := range d.All() {
		for mapped := range f(v).All() {
			out.PushRight(mapped)
		}
	}
	return out
}

// MergeMap applies f to every element and interleaves the resulting
// deques round-robin, stopping once any of them is exhausted.
func MergeMap[T, U any](d *Deque[T], f func(T) *Deque[U]) *Deque[U] {
	var parts []*Deque[U]
	for v := range d.All() {
		parts = append(parts, f(v).Copy())
	}
	out := New[U]()
	if len(parts) == 0 {
		return out
	}
	for {
		round := make([]U, 0, len(parts))
		for _, p := range parts {
			v, ok := p.PopLeft()
			if !ok {
				return out
			}
			round = append(round, v)
		}
		for _, v := range round {
			out.PushRight(v)
		}
	}
}
