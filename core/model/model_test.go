// core/model/model_test.go
package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJC69Prob(t *testing.T) {
	m, err := NewDNA("JC69", nil)
	require.NoError(t, err)

	p, err := m.Prob(0.1)
	require.NoError(t, err)
	// closed form: p_same = 1/4 + 3/4 exp(-4t/3)
	same := 0.25 + 0.75*math.Exp(-4.0/3.0*0.1)
	diff := (1 - same) / 3
	for i := 0; i < 4; i++ {
		rowSum := 0.0
		for j := 0; j < 4; j++ {
			rowSum += p.At(i, j)
			if i == j {
				assert.InDelta(t, same, p.At(i, j), 1e-9)
			} else {
				assert.InDelta(t, diff, p.At(i, j), 1e-9)
			}
		}
		assert.InDelta(t, 1.0, rowSum, 1e-9)
	}

	p0, err := m.Prob(0)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		assert.InDelta(t, 1.0, p0.At(i, i), 1e-9)
	}
}

func TestJC69ScoringAverages(t *testing.T) {
	m, err := NewDNA("jc69", nil)
	require.NoError(t, err)

	scorings, err := m.GenerateScorings([]float64{0.1, 0.7}, false, RoundZero())
	require.NoError(t, err)

	s01 := scorings[0.1]
	assert.InDelta(t, 2.25, s01.Avg, 1e-12)
	assert.Equal(t, 0.0, s01.Costs.At(0, 0))
	assert.Equal(t, 3.0, s01.Costs.At(0, 1))

	s07 := scorings[0.7]
	assert.InDelta(t, 1.75, s07.Avg, 1e-12)
	assert.Equal(t, 1.0, s07.Costs.At(0, 0))
	assert.Equal(t, 2.0, s07.Costs.At(0, 1))
}

func TestJC69ScoringZeroDiag(t *testing.T) {
	m, err := NewDNA("jc69", nil)
	require.NoError(t, err)

	scorings, err := m.GenerateScorings([]float64{0.1, 0.7}, true, RoundZero())
	require.NoError(t, err)

	// at t=0.1 the rounded diagonal is already zero
	assert.InDelta(t, 2.25, scorings[0.1].Avg, 1e-12)
	// at t=0.7 zeroing the diagonal shifts the average
	assert.InDelta(t, 1.5, scorings[0.7].Avg, 1e-12)
	for i := 0; i < 4; i++ {
		assert.Equal(t, 0.0, scorings[0.7].Costs.At(i, i))
	}
}

func TestK80TransitionBias(t *testing.T) {
	m, err := NewDNA("k80", []float64{4, 1})
	require.NoError(t, err)
	p, err := m.Prob(0.2)
	require.NoError(t, err)
	// T->C is a transition, T->A a transversion
	assert.Greater(t, p.At(nT, nC), p.At(nT, nA))
	assert.InDelta(t, p.At(nT, nA), p.At(nT, nG), 1e-9)
}

func TestDNAModelValidation(t *testing.T) {
	tests := []struct {
		name   string
		model  string
		params []float64
	}{
		{"unknown model", "f81", nil},
		{"jc69 rejects params", "jc69", []float64{1}},
		{"k80 wrong arity", "k80", []float64{1, 2, 3}},
		{"hky wrong arity", "hky", []float64{0.25, 0.25, 0.25, 0.25}},
		{"hky bad freqs", "hky", []float64{0.5, 0.5, 0.5, 0.5, 2, 1}},
		{"gtr wrong arity", "gtr", []float64{0.25, 0.25, 0.25, 0.25}},
		{"gtr negative freq", "gtr", []float64{-0.25, 0.5, 0.5, 0.25, 1, 1, 1, 1, 1, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDNA(tc.model, tc.params)
			assert.Error(t, err)
		})
	}
}

func TestWAGStructure(t *testing.T) {
	m, err := NewProtein("WAG")
	require.NoError(t, err)
	require.Len(t, m.Freqs, 20)

	sum := 0.0
	for _, f := range m.Freqs {
		sum += f
	}
	assert.InDelta(t, 1.0, sum, 1e-4)

	// generator rows sum to zero, detailed balance holds
	for i := 0; i < 20; i++ {
		row := 0.0
		for j := 0; j < 20; j++ {
			row += m.Q.At(i, j)
			assert.InDelta(t, m.Freqs[i]*m.Q.At(i, j), m.Freqs[j]*m.Q.At(j, i), 1e-9)
		}
		assert.InDelta(t, 0.0, row, 1e-9)
	}

	// unit mean rate after normalization
	rate := 0.0
	for i := 0; i < 20; i++ {
		rate -= m.Freqs[i] * m.Q.At(i, i)
	}
	assert.InDelta(t, 1.0, rate, 1e-9)

	p, err := m.Prob(0.5)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		row := 0.0
		for j := 0; j < 20; j++ {
			row += p.At(i, j)
			assert.GreaterOrEqual(t, p.At(i, j), 0.0)
		}
		assert.InDelta(t, 1.0, row, 1e-9)
	}
}

func TestModelIndex(t *testing.T) {
	m, err := NewDNA("jc69", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Index('T'))
	assert.Equal(t, 0, m.Index('t'))
	assert.Equal(t, 3, m.Index('G'))
	assert.Equal(t, -1, m.Index('Z'))
}

func TestPercentileTimes(t *testing.T) {
	lengths := []float64{1, 2, 3, 4, 5, 6, 7}
	got := PercentileTimes(lengths, 3, RoundNone())
	require.Len(t, got, 3)
	assert.InDelta(t, 2.5, got[0], 1e-12)
	assert.InDelta(t, 4.0, got[1], 1e-12)
	assert.InDelta(t, 5.5, got[2], 1e-12)

	rounded := PercentileTimes(lengths, 3, RoundFour())
	assert.Equal(t, []float64{2.5, 4, 5.5}, rounded)

	assert.Nil(t, PercentileTimes(nil, 4, RoundNone()))
	assert.Nil(t, PercentileTimes(lengths, 0, RoundNone()))

	single := PercentileTimes([]float64{0.3}, 2, RoundNone())
	assert.Equal(t, []float64{0.3, 0.3}, single)
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 3.0, RoundZero().Apply(3.4671))
	assert.Equal(t, 1.886, RoundFour().Apply(1.886))
	assert.InDelta(t, 3.4671, RoundFour().Apply(3.46714), 1e-12)
	x := 2.718281828
	assert.Equal(t, x, RoundNone().Apply(x))

	r, ok := ParseRounding("zero")
	assert.True(t, ok)
	assert.True(t, r.Enabled)
	_, ok = ParseRounding("two")
	assert.False(t, ok)
}
