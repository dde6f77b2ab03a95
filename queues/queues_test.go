// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package queues_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrissan/containers/queues"
)

func TestFIFOOrder(t *testing.T) {
	q := queues.NewFIFO(1, 2)
	q.Push(3)
	assert.Equal(t, 3, q.Len())

	front, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, front)

	for _, want := range []int{1, 2, 3} {
		v, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	_, ok = q.Pop()
	assert.False(t, ok)
	assert.True(t, q.IsEmpty())
}

func TestLIFOOrder(t *testing.T) {
	s := queues.NewLIFO[string]()
	s.Push("a")
	s.Push("b")
	s.Push("c")

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "c", top)

	for _, want := range []string{"c", "b", "a"} {
		v, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	_, ok = s.Peek()
	assert.False(t, ok)
}

func TestCopyIndependence(t *testing.T) {
	q := queues.NewFIFO(1, 2, 3)
	c := q.Copy()
	c.Pop()
	c.Push(4)
	assert.Equal(t, 3, q.Len())
	v, _ := q.Peek()
	assert.Equal(t, 1, v)
}

func TestDiagnostics(t *testing.T) {
	q := queues.NewLIFO(1, 2)
	assert.Equal(t, 4, q.Capacity())
	assert.InDelta(t, 0.5, q.FractionFilled(), 1e-9)
}
