// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package maybe

// Either holds exactly one of a left or a right value. It is
// left-biased: Map and FlatMap transform the left side and pass
// rights through untouched.
type Either[L, R any] struct {
	left   L
	right  R
	isLeft bool
}

// Left returns an Either holding a left value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l, isLeft: true}
}

// Right returns an Either holding a right value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r}
}

// IsLeft reports whether the left side is populated.
func (e Either[L, R]) IsLeft() bool {
	return e.isLeft
}

// Left returns the left value and whether it is populated.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, e.isLeft
}

// Right returns the right value and whether it is populated.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, !e.isLeft
}

// LeftOr returns the left value if populated, otherwise alt.
func (e Either[L, R]) LeftOr(alt L) L {
	if e.isLeft {
		return e.left
	}
	return alt
}

// RightOr returns the right value if populated, otherwise alt.
func (e Either[L, R]) RightOr(alt R) R {
	if !e.isLeft {
		return e.right
	}
	return alt
}

// MapLeft applies f to a left value; a right passes through.
func MapLeft[L, M, R any](e Either[L, R], f func(L) M) Either[M, R] {
	if !e.isLeft {
		return Right[M](e.right)
	}
	return Left[M, R](f(e.left))
}

// FlatMapLeft applies f to a left value and flattens; a right passes
// through.
func FlatMapLeft[L, M, R any](e Either[L, R], f func(L) Either[M, R]) Either[M, R] {
	if !e.isLeft {
		return Right[M](e.right)
	}
	return f(e.left)
}

// ToMaybe keeps a left value and discards a right.
func ToMaybe[L, R any](e Either[L, R]) Maybe[L] {
	if !e.isLeft {
		return Nothing[L]()
	}
	return Just(e.left)
}

// FromMaybe turns a present value into a left, and an absence into the
// given right.
func FromMaybe[L, R any](m Maybe[L], right R) Either[L, R] {
	if v, ok := m.Get(); ok {
		return Left[L, R](v)
	}
	return Right[L](right)
}
