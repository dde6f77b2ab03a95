// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package maybe_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrissan/containers/maybe"
)

func TestMaybeBasics(t *testing.T) {
	j := maybe.Just(42)
	require.True(t, j.IsJust())
	v, ok := j.Get()
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 42, j.GetOr(-1))

	n := maybe.Nothing[int]()
	assert.False(t, n.IsJust())
	_, ok = n.Get()
	assert.False(t, ok)
	assert.Equal(t, -1, n.GetOr(-1))
}

func TestMaybeZeroValuePayload(t *testing.T) {
	z := maybe.Just(0)
	assert.True(t, z.IsJust(), "zero value is a real payload, not absence")
	assert.Equal(t, 0, z.GetOr(7))
}

func TestMaybeMapFlatMap(t *testing.T) {
	j := maybe.Just(21)
	doubled := maybe.Map(j, func(v int) string { return strconv.Itoa(v * 2) })
	assert.Equal(t, "42", doubled.GetOr(""))

	n := maybe.Nothing[int]()
	assert.False(t, maybe.Map(n, func(v int) int { return v }).IsJust())

	half := func(v int) maybe.Maybe[int] {
		if v%2 != 0 {
			return maybe.Nothing[int]()
		}
		return maybe.Just(v / 2)
	}
	assert.Equal(t, 21, maybe.FlatMap(maybe.Just(42), half).GetOr(-1))
	assert.False(t, maybe.FlatMap(maybe.Just(43), half).IsJust())
}

func TestEitherBasics(t *testing.T) {
	l := maybe.Left[int, string](5)
	require.True(t, l.IsLeft())
	v, ok := l.Left()
	require.True(t, ok)
	assert.Equal(t, 5, v)
	_, ok = l.Right()
	assert.False(t, ok)
	assert.Equal(t, 5, l.LeftOr(-1))
	assert.Equal(t, "alt", l.RightOr("alt"))

	r := maybe.Right[int]("boom")
	assert.False(t, r.IsLeft())
	s, ok := r.Right()
	require.True(t, ok)
	assert.Equal(t, "boom", s)
	assert.Equal(t, -1, r.LeftOr(-1))
}

func TestEitherLeftBias(t *testing.T) {
	l := maybe.Left[int, string](10)
	mapped := maybe.MapLeft(l, strconv.Itoa)
	assert.Equal(t, "10", mapped.LeftOr(""))

	r := maybe.Right[int]("err")
	through := maybe.MapLeft(r, strconv.Itoa)
	assert.Equal(t, "err", through.RightOr(""))

	flat := maybe.FlatMapLeft(l, func(v int) maybe.Either[string, string] {
		return maybe.Left[string, string](strconv.Itoa(v + 1))
	})
	assert.Equal(t, "11", flat.LeftOr(""))
}

func TestConversions(t *testing.T) {
	l := maybe.Left[int, string](3)
	assert.Equal(t, 3, maybe.ToMaybe(l).GetOr(-1))
	assert.False(t, maybe.ToMaybe(maybe.Right[int]("x")).IsJust())

	e := maybe.FromMaybe(maybe.Just(4), "absent")
	assert.Equal(t, 4, e.LeftOr(-1))
	e = maybe.FromMaybe(maybe.Nothing[int](), "absent")
	assert.Equal(t, "absent", e.RightOr(""))
}
