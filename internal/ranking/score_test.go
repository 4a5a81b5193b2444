package ranking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScore_RejectsNegative(t *testing.T) {
	_, err := NewScore(decimal.NewFromInt(-1))
	require.Error(t, err)
}

func TestScore_AddIsNonNegativeAndRounds(t *testing.T) {
	a := ScoreFromFloat(1.005)
	b := ScoreFromFloat(2.005)

	sum := a.Add(b)
	assert.False(t, sum.Decimal().IsNegative())
	assert.Equal(t, "3.01", sum.String())
}

func TestScore_DecayMonotonicallyNonIncreasing(t *testing.T) {
	s := ScoreFromFloat(100)

	factors := []float64{1.0, 0.9, 0.5, 0.1, 0}
	prev := s.Float64() + 1 // sentinel larger than anything produced below
	for _, f := range factors {
		decayed := s.MustDecay(decimal.NewFromFloat(f))
		assert.False(t, decayed.Decimal().IsNegative())
		assert.LessOrEqual(t, decayed.Float64(), prev)
		prev = decayed.Float64()
	}
}

func TestScore_DecayRejectsOutOfRangeFactor(t *testing.T) {
	s := ScoreFromFloat(10)

	_, err := s.Decay(decimal.NewFromFloat(-0.01))
	require.Error(t, err)

	_, err = s.Decay(decimal.NewFromFloat(1.01))
	require.Error(t, err)
}

func TestScore_DecayRounding(t *testing.T) {
	s := ScoreFromFloat(612.00)
	decayed := s.MustDecay(decimal.NewFromFloat(0.9))
	assert.Equal(t, "550.80", decayed.String())
}

func TestZero(t *testing.T) {
	assert.True(t, Zero.IsZero())
	assert.Equal(t, "0.00", Zero.String())
}
