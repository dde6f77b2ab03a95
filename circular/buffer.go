// Package circular implements an auto-resizing circular buffer, the
// backing store for the double-ended containers in this module.
//
// The buffer keeps its logical window at (front+i) % cap. Pushing to a
// full buffer doubles the capacity and relinearizes the window to start
// at slot 0, so a sequence of n pushes costs O(n) in total. Shrinking
// never happens implicitly, only through Compact or Resize.
package circular

// Buffer is an auto-resizing circular buffer. The zero value is an
// empty buffer ready for use; storage is allocated on first push.
//
// A Buffer is owned by exactly one caller. Mutating it from several
// goroutines without external locking is not supported.
type Buffer[T any] struct {
	elements []T // length == capacity, at least 2 once allocated
	front    int
	count    int
}

// New returns an empty buffer with the minimum 2 slots of storage.
func New[T any]() *Buffer[T] {
	return &Buffer[T]{elements: make([]T, 2)}
}

// From returns a buffer seeded with vs in order, front to back,
// with two spare slots of headroom.
func From[T any](vs ...T) *Buffer[T] {
	b := &Buffer[T]{elements: make([]T, len(vs)+2), count: len(vs)}
	copy(b.elements, vs)
	return b
}

func (b *Buffer[T]) Len() int {
	return b.count
}

func (b *Buffer[T]) Cap() int {
	return len(b.elements)
}

// Slices returns the live window as two contiguous parts.
func (b *Buffer[T]) Slices() ([]T, []T) {
	if b.count == 0 {
		return nil, nil
	}
	end := b.front + b.count
	if end <= len(b.elements) {
		return b.elements[b.front:end], nil
	}
	return b.elements[b.front:], b.elements[:end-len(b.elements)]
}

// grow doubles capacity and relinearizes so that front == 0.
func (b *Buffer[T]) grow() {
	capacity := len(b.elements)
	if capacity == 0 {
		b.elements = make([]T, 2)
		return
	}
	elements := make([]T, capacity*2)
	s1, s2 := b.Slices()
	off := copy(elements, s1)
	off += copy(elements[off:], s2)
	if off != b.count {
		panic("circular buffer invariant violated in grow")
	}
	b.front = 0
	b.elements = elements
}

func (b *Buffer[T]) PushBack(element T) {
	if b.count == len(b.elements) {
		b.grow()
	}
	b.elements[(b.front+b.count)%len(b.elements)] = element
	b.count++
}

func (b *Buffer[T]) PushFront(element T) {
	if b.count == len(b.elements) {
		b.grow()
	}
	b.front = (b.front - 1 + len(b.elements)) % len(b.elements)
	b.elements[b.front] = element
	b.count++
}

// PopFront removes and returns the front element, or false if empty.
func (b *Buffer[T]) PopFront() (T, bool) {
	var empty T
	if b.count == 0 {
		return empty, false
	}
	element := b.elements[b.front]
	b.elements[b.front] = empty // do not have dangling references in unused parts of buffer
	b.front = (b.front + 1) % len(b.elements)
	b.count--
	return element, true
}

// PopBack removes and returns the rear element, or false if empty.
func (b *Buffer[T]) PopBack() (T, bool) {
	var empty T
	if b.count == 0 {
		return empty, false
	}
	offset := (b.front + b.count - 1) % len(b.elements)
	element := b.elements[offset]
	b.elements[offset] = empty
	b.count--
	return element, true
}

func (b *Buffer[T]) Front() (T, bool) {
	var empty T
	if b.count == 0 {
		return empty, false
	}
	return b.elements[b.front], true
}

func (b *Buffer[T]) Back() (T, bool) {
	var empty T
	if b.count == 0 {
		return empty, false
	}
	return b.elements[(b.front+b.count-1)%len(b.elements)], true
}

// resolve maps a logical position to a slot index. Negative positions
// in [-count, -1] address the window from the rear.
func (b *Buffer[T]) resolve(pos int) (int, bool) {
	switch {
	case pos >= 0 && pos < b.count:
		return (b.front + pos) % len(b.elements), true
	case pos >= -b.count && pos < 0:
		return (b.front + b.count + pos) % len(b.elements), true
	default:
		return 0, false
	}
}

// At returns the element at pos, or a *BoundsError if pos is outside
// [-Len(), Len()-1].
func (b *Buffer[T]) At(pos int) (T, error) {
	i, ok := b.resolve(pos)
	if !ok {
		var empty T
		return empty, &BoundsError{Index: pos, Count: b.count}
	}
	return b.elements[i], nil
}

// SetAt replaces the element at pos, or returns a *BoundsError.
func (b *Buffer[T]) SetAt(pos int, element T) error {
	i, ok := b.resolve(pos)
	if !ok {
		return &BoundsError{Index: pos, Count: b.count}
	}
	b.elements[i] = element
	return nil
}

// Index is the panicking variant of At for callers that have already
// validated pos.
func (b *Buffer[T]) Index(pos int) T {
	return *b.IndexRef(pos)
}

func (b *Buffer[T]) IndexRef(pos int) *T {
	i, ok := b.resolve(pos)
	if !ok {
		panic((&BoundsError{Index: pos, Count: b.count}).Error())
	}
	return &b.elements[i]
}

// Compact relinearizes storage to exactly max(Len(), 2) slots with
// front == 0.
func (b *Buffer[T]) Compact() {
	elements := make([]T, max(b.count, 2))
	s1, s2 := b.Slices()
	off := copy(elements, s1)
	copy(elements[off:], s2)
	b.front = 0
	b.elements = elements
}

// Resize compacts the buffer, then adds extra empty slots of capacity.
func (b *Buffer[T]) Resize(extra int) {
	b.Compact()
	if extra > 0 {
		b.elements = append(b.elements, make([]T, extra)...)
	}
}

func (b *Buffer[T]) Clear() {
	var empty T
	s1, s2 := b.Slices()
	for i := range s1 {
		s1[i] = empty
	}
	for i := range s2 {
		s2[i] = empty
	}
	b.front = 0
	b.count = 0
}

// Copy returns an independent buffer with the same contents and two
// spare slots of headroom. The backing storage is never shared.
func (b *Buffer[T]) Copy() *Buffer[T] {
	elements := make([]T, b.count+2)
	s1, s2 := b.Slices()
	off := copy(elements, s1)
	copy(elements[off:], s2)
	return &Buffer[T]{elements: elements, count: b.count}
}
