// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

// Package flarray implements a fixed-length array that is guaranteed
// never to change size after construction. Storage is a
// circular.Buffer compacted to the array's length.
package flarray

import (
	"iter"

	"github.com/hrissan/containers/circular"
)

// Array is a fixed-length array with a pad value used to fill unset
// slots. Length is always >= 1 and never changes.
type Array[T any] struct {
	buf circular.Buffer[T]
	pad T
}

// New constructs an array of |size| elements from vs.
//
// size > 0 pads or truncates on the right, size < 0 on the left, and
// size == 0 takes the length of vs itself. With no data and no size
// the array holds a single pad value.
func New[T any](size int, pad T, vs ...T) *Array[T] {
	want := size
	if want < 0 {
		want = -want
	}
	data := vs
	switch {
	case want == 0 || want == len(vs):
		if len(data) == 0 {
			data = []T{pad}
		}
	case want > len(vs):
		padding := make([]T, want-len(vs))
		for i := range padding {
			padding[i] = pad
		}
		if size > 0 {
			data = append(append([]T(nil), vs...), padding...)
		} else {
			data = append(padding, vs...)
		}
	default: // want < len(vs): slice off the excess
		if size > 0 {
			data = vs[:want]
		} else {
			data = vs[len(vs)-want:]
		}
	}
	a := &Array[T]{pad: pad}
	a.buf.Resize(len(data))
	for _, v := range data {
		a.buf.PushBack(v)
	}
	a.buf.Compact()
	return a
}

func (a *Array[T]) Len() int {
	return a.buf.Len()
}

// At returns the element at pos. Negative positions count from the
// end. Out-of-range positions yield a *circular.BoundsError.
func (a *Array[T]) At(pos int) (T, error) {
	return a.buf.At(pos)
}

func (a *Array[T]) SetAt(pos int, v T) error {
	return a.buf.SetAt(pos, v)
}

// All iterates over a snapshot of the array.
func (a *Array[T]) All() iter.Seq[T] {
	return a.buf.All()
}

// Copy returns an independent array of the same length.
func (a *Array[T]) Copy() *Array[T] {
	out := &Array[T]{pad: a.pad}
	out.buf.Resize(a.buf.Len())
	for v := range a.buf.All() {
		out.buf.PushBack(v)
	}
	out.buf.Compact()
	return out
}

// Equal reports elementwise equality. Pad values only matter where
// they were actually stored.
func Equal[T comparable](a, b *Array[T]) bool {
	return circular.Equal(&a.buf, &b.buf)
}

// Map builds a new array of the same length by applying f in order.
// Where f reports false the new array's pad is stored instead; a
// fixed-length array cannot drop elements.
func Map[T, U any](a *Array[T], pad U, f func(T) (U, bool)) *Array[U] {
	out := &Array[U]{pad: pad}
	out.buf.Resize(a.buf.Len())
	for v := range a.buf.All() {
		if mapped, ok := f(v); ok {
			out.buf.PushBack(mapped)
		} else {
			out.buf.PushBack(pad)
		}
	}
	out.buf.Compact()
	return out
}
