// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

// Package maybe provides minimal optional and union value containers.
// Both types are immutable single-value leaves with no dependency on
// the rest of the module.
package maybe

// Maybe holds zero or one value of type T. Unlike a nil-sentinel
// scheme, the zero value of T is a perfectly legitimate payload;
// presence is tracked separately.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Just returns a Maybe holding v.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust reports whether a value is present.
func (m Maybe[T]) IsJust() bool {
	return m.ok
}

// Get returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

// GetOr returns the value if present, otherwise alt.
func (m Maybe[T]) GetOr(alt T) T {
	if m.ok {
		return m.value
	}
	return alt
}

// Map applies f to the contained value, if any.
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if !m.ok {
		return Nothing[U]()
	}
	return Just(f(m.value))
}

// FlatMap applies f to the contained value and flattens the result.
func FlatMap[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if !m.ok {
		return Nothing[U]()
	}
	return f(m.value)
}
