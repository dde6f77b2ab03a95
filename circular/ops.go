// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package circular

// Equal reports whether two buffers hold equal elements in the same
// order. Capacity and window offsets do not participate.
func Equal[T comparable](a, b *Buffer[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T, U any](a *Buffer[T], b *Buffer[U], eq func(T, U) bool) bool {
	if a.count != b.count {
		return false
	}
	for i := 0; i < a.count; i++ {
		if !eq(a.elements[(a.front+i)%len(a.elements)], b.elements[(b.front+i)%len(b.elements)]) {
			return false
		}
	}
	return true
}

// Map builds a new buffer by applying f to every element in order.
// Elements for which f reports false are dropped.
func Map[T, U any](b *Buffer[T], f func(T) (U, bool)) *Buffer[U] {
	out := New[U]()
	for element := range b.All() {
		if mapped, ok := f(element); ok {
			out.PushBack(mapped)
		}
	}
	return out
}
