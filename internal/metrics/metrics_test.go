package metrics

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomWalk_StaysInBounds(t *testing.T) {
	w := NewRandomWalk(Initial, rand.New(rand.NewPCG(1, 2)))
	prev := Initial

	for i := 0; i < 5000; i++ {
		s := w.Next()

		assert.GreaterOrEqual(t, s.CPU, 5.0)
		assert.LessOrEqual(t, s.CPU, 95.0)
		assert.GreaterOrEqual(t, s.Memory, 40.0)
		assert.LessOrEqual(t, s.Memory, 85.0)
		assert.GreaterOrEqual(t, s.Network, 0.0)
		assert.LessOrEqual(t, s.Network, 100.0)
		assert.Equal(t, Initial.Disk, s.Disk)

		assert.LessOrEqual(t, abs(s.CPU-prev.CPU), 5.0)
		assert.LessOrEqual(t, abs(s.Memory-prev.Memory), 2.0)
		assert.LessOrEqual(t, abs(s.Network-prev.Network), 10.0)
		prev = s
	}
}

func TestRandomWalk_Deterministic(t *testing.T) {
	a := NewRandomWalk(Initial, rand.New(rand.NewPCG(7, 7)))
	b := NewRandomWalk(Initial, rand.New(rand.NewPCG(7, 7)))

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestHistory_KeepsMostRecent(t *testing.T) {
	h := NewHistory(0)
	for i := 0; i < 45; i++ {
		h.Push(Sample{CPU: float64(i)})
	}

	require.Equal(t, DefaultHistorySize, h.Len())
	cpu := h.Series(func(s Sample) float64 { return s.CPU })
	assert.Len(t, cpu, DefaultHistorySize)
	assert.Equal(t, 15.0, cpu[0])
	assert.Equal(t, 44.0, cpu[len(cpu)-1])
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
