package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(3, 2)
	assert.True(t, g.In(0, 0))
	assert.True(t, g.In(2, 1))
	assert.False(t, g.In(3, 0))
	assert.False(t, g.In(0, -1))

	g.Set(2, 1, 7)
	assert.Equal(t, uint8(7), g.At(2, 1))
	assert.Equal(t, uint8(7), g.Cells()[g.Index(2, 1)])

	assert.Panics(t, func() { g.At(3, 0) })
	assert.Panics(t, func() { g.Set(-1, 0, 1) })
}

func TestByteGridFillRowsClamps(t *testing.T) {
	g := NewByteGrid(2, 3)
	g.FillRows(-4, 2, 1)
	assert.Equal(t, []uint8{1, 1, 1, 1, 0, 0}, g.Cells())
	g.FillRows(2, 10, 5)
	assert.Equal(t, []uint8{1, 1, 1, 1, 5, 5}, g.Cells())
}

func TestByteGridCopyFromRejectsMismatch(t *testing.T) {
	g := NewByteGrid(2, 2)
	require.Error(t, g.CopyFrom(NewByteGrid(3, 2)))

	src := NewByteGrid(2, 2)
	src.Fill(4)
	require.NoError(t, g.CopyFrom(src))
	assert.Equal(t, []uint8{4, 4, 4, 4}, g.Cells())
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(9)
	b := NewRNG(9)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
		j := a.Jitter()
		require.Equal(t, j, b.Jitter())
		require.GreaterOrEqual(t, j, -1)
		require.LessOrEqual(t, j, 1)
	}
	assert.Equal(t, 0, a.IntN(0))
}

func TestFixedStep(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(100, 0)
	assert.True(t, fs.ShouldStepAt(start), "first call fires with a primed accumulator")
	assert.False(t, fs.ShouldStepAt(start.Add(50*time.Millisecond)))
	assert.True(t, fs.ShouldStepAt(start.Add(100*time.Millisecond)))
	assert.False(t, fs.Manual())
}

func TestFixedStepManual(t *testing.T) {
	fs := NewFixedStep(0)
	assert.True(t, fs.Manual())
	now := time.Unix(0, 0)
	for i := 0; i < 5; i++ {
		now = now.Add(time.Second)
		assert.False(t, fs.ShouldStepAt(now))
	}
}

func TestParameterSnapshotValues(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "b", Params: []Parameter{{Key: "y", Value: "0.5"}, {Key: "x", Value: "2"}}},
	}}
	assert.Equal(t, map[string]string{"x": "2", "y": "0.5"}, snap.Values(), "later groups win")
	assert.Empty(t, ParameterSnapshot{}.Values())
}
