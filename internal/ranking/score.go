// Package ranking holds the core value types and scoring formula shared by
// every batch job and read-path query: Score, Period, weights and the
// calculator that turns raw metric rows into ranked scores.
package ranking

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// scale is the fixed decimal scale (2 places) every score, weight and amount
// in this package rounds to. HALF_UP matches the rounding mode the spec
// requires throughout the scoring pipeline.
const scale = 2

// Zero is the shared zero-value Score.
var Zero = Score{value: decimal.Zero}

// Score is a non-negative decimal value, rounded to 2 places with HALF_UP
// rounding. It is immutable: Add and Decay both return a new Score.
type Score struct {
	value decimal.Decimal
}

// NewScore constructs a Score from a non-negative decimal value. It fails
// fast on a negative input — a negative score is a programming bug in the
// caller, not a runtime-recoverable condition.
func NewScore(value decimal.Decimal) (Score, error) {
	if value.IsNegative() {
		return Score{}, fmt.Errorf("ranking: negative score %s", value)
	}
	return Score{value: round(value)}, nil
}

// MustScore is NewScore but panics on error, for constants and tests.
func MustScore(value decimal.Decimal) Score {
	s, err := NewScore(value)
	if err != nil {
		panic(err)
	}
	return s
}

// ScoreFromFloat builds a Score from a float64 literal, primarily for tests
// and constants where a decimal.Decimal literal would be noisy.
func ScoreFromFloat(f float64) Score {
	return MustScore(decimal.NewFromFloat(f))
}

// Decimal returns the underlying decimal value.
func (s Score) Decimal() decimal.Decimal {
	return s.value
}

// Float64 converts the score to a float64, the only place floating point is
// permitted in the scoring pipeline: Redis sorted-set members are scored by
// a double and ZSET ordering operates on float64.
func (s Score) Float64() float64 {
	f, _ := s.value.Float64()
	return f
}

// Add returns s + other, rounded to scale with HALF_UP. Both operands are
// non-negative by construction, so the sum is non-negative.
func (s Score) Add(other Score) Score {
	return Score{value: round(s.value.Add(other.value))}
}

// Decay returns s scaled by factor, rounded to scale with HALF_UP. factor
// must be in [0, 1]; it fails fast outside that range since a decay factor
// outside the unit interval is a calculation bug, not a user input.
func (s Score) Decay(factor decimal.Decimal) (Score, error) {
	if factor.IsNegative() || factor.GreaterThan(decimal.NewFromInt(1)) {
		return Score{}, fmt.Errorf("ranking: decay factor %s out of [0,1]", factor)
	}
	return Score{value: round(s.value.Mul(factor))}, nil
}

// MustDecay is Decay but panics on error.
func (s Score) MustDecay(factor decimal.Decimal) Score {
	d, err := s.Decay(factor)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero reports whether the score equals ZERO.
func (s Score) IsZero() bool {
	return s.value.IsZero()
}

// String renders the score with its fixed scale, e.g. "599.76".
func (s Score) String() string {
	return s.value.StringFixed(scale)
}

func round(d decimal.Decimal) decimal.Decimal {
	return d.RoundHalfUp(scale)
}
