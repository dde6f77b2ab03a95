// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package circular

import (
	"iter"
)

// snapshot copies the live window into a fresh slice, front to back.
// Iteration works on the copy, so mutating the buffer after an
// iteration has started cannot corrupt or change the walk.
func (b *Buffer[T]) snapshot() []T {
	window := make([]T, 0, b.count)
	s1, s2 := b.Slices()
	window = append(window, s1...)
	return append(window, s2...)
}

// All iterates front to back over a snapshot of the buffer taken when
// the range starts. Ranging again takes a fresh snapshot.
func (b *Buffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, element := range b.snapshot() {
			if !yield(element) {
				return
			}
		}
	}
}

// Backward is like All, back to front.
func (b *Buffer[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		window := b.snapshot()
		for i := len(window) - 1; i >= 0; i-- {
			if !yield(window[i]) {
				return
			}
		}
	}
}
