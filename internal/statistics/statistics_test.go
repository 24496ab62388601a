package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	t.Parallel()

	s := New(20)
	assert.Zero(t, s.Mean())
	assert.Zero(t, s.Variance())
	assert.Zero(t, s.StdDev())
	assert.Zero(t, s.StdError())
	assert.Zero(t, s.Median())
	assert.Zero(t, s.Percentile(0.5))
	assert.ErrorContains(t, s.Validate(), "invalid hands count")
}

func TestAddTracksShowdownAndPosition(t *testing.T) {
	t.Parallel()

	s := New(20)
	results := []HandResult{
		{NetBB: 1.0, Position: 0, WentToShowdown: false},
		{NetBB: -2.0, Position: 1, WentToShowdown: true},
		{NetBB: 3.0, Position: 2, WentToShowdown: true},
		{NetBB: 0.0, Position: 0, WentToShowdown: false},
		{NetBB: -1.0, Position: 1, WentToShowdown: false},
	}
	for _, r := range results {
		s.Add(r)
	}

	assert.Equal(t, 5, s.Hands)
	assert.InDelta(t, 0.2, s.Mean(), 1e-9)
	assert.Zero(t, s.Median())
	assert.Equal(t, 1, s.ShowdownWins)
	assert.Equal(t, 1, s.NonShowdownWins)
	assert.InDelta(t, 1.0, s.ShowdownBB, 1e-9)
	assert.InDelta(t, 0.0, s.NonShowdownBB, 1e-9)
	assert.Equal(t, 2, s.PositionResults[0].Hands)
	assert.Equal(t, 2, s.PositionResults[1].Hands)
	assert.Equal(t, 1, s.PositionResults[2].Hands)
	assert.True(t, s.IsLedgerBalanced())
	require.NoError(t, s.Validate())
}

func TestPercentiles(t *testing.T) {
	t.Parallel()

	s := New(20)
	for i := 1; i <= 5; i++ {
		s.Add(HandResult{NetBB: float64(i)})
	}

	tests := []struct {
		p    float64
		want float64
	}{
		{0.0, 1.0},
		{0.25, 2.0},
		{0.5, 3.0},
		{0.6, 3.4},
		{1.0, 5.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, s.Percentile(tt.p), 1e-9, "p=%.2f", tt.p)
	}
}

func TestVarianceAndConfidenceInterval(t *testing.T) {
	t.Parallel()

	s := New(20)
	for _, v := range []float64{1, 3, 5} {
		s.Add(HandResult{NetBB: v})
	}

	assert.InDelta(t, 4.0, s.Variance(), 1e-9)
	assert.InDelta(t, 2.0, s.StdDev(), 1e-9)

	low, high := s.ConfidenceInterval95()
	assert.InDelta(t, s.Mean(), (low+high)/2, 1e-9)
	assert.Greater(t, high, low)
}

func TestPositionMean(t *testing.T) {
	t.Parallel()

	s := New(20)
	s.Add(HandResult{NetBB: 2.0, Position: 0})
	s.Add(HandResult{NetBB: 3.0, Position: 0})
	s.Add(HandResult{NetBB: -1.0, Position: 9})
	s.Add(HandResult{NetBB: 1.0, Position: 9})

	assert.InDelta(t, 2.5, s.PositionMean(0), 1e-9)
	assert.InDelta(t, 0.0, s.PositionMean(9), 1e-9)
	assert.Zero(t, s.PositionMean(-1))
	assert.Zero(t, s.PositionMean(MaxPositions))
}

func TestPotSizeTracking(t *testing.T) {
	t.Parallel()

	s := New(20)
	s.Add(HandResult{NetBB: 1.0, FinalPotSize: 200})  // 10bb
	s.Add(HandResult{NetBB: 5.0, FinalPotSize: 2000}) // 100bb
	s.Add(HandResult{NetBB: -1.0, FinalPotSize: 40})  // 2bb

	assert.Equal(t, 2000, s.MaxPotChips)
	assert.InDelta(t, 100.0, s.MaxPotBB, 1e-9)
	assert.Equal(t, 1, s.BigPots)
	assert.InDelta(t, 5.0, s.BigPotsBB, 1e-9)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	a, b, all := New(20), New(20), New(20)
	for i, v := range []float64{1, -2, 4, 0.5, -3} {
		r := HandResult{NetBB: v, Position: i % 3, WentToShowdown: i%2 == 0, FinalPotSize: 100 * i}
		all.Add(r)
		if i < 2 {
			a.Add(r)
		} else {
			b.Add(r)
		}
	}

	merged := &Statistics{}
	merged.Merge(a)
	merged.Merge(b)
	assert.Equal(t, all, merged)
	require.NoError(t, merged.Validate())
}

func TestValidateDetectsInconsistencies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stats  Statistics
		errMsg string
	}{
		{
			name: "ledger mismatch",
			stats: func() Statistics {
				s := Statistics{Hands: 1, Values: []float64{1}, AllBB: 1, ShowdownBB: 0.5, NonShowdownBB: 0.6}
				s.PositionResults[0].Hands = 1
				return s
			}(),
			errMsg: "ledger mismatch",
		},
		{
			name:   "values mismatch",
			stats:  Statistics{Hands: 2, Values: []float64{1}, AllBB: 1, NonShowdownBB: 1},
			errMsg: "values array length",
		},
		{
			name: "too many wins",
			stats: func() Statistics {
				s := Statistics{Hands: 2, Values: []float64{1, 1}, AllBB: 2, ShowdownBB: 1, NonShowdownBB: 1, ShowdownWins: 2, NonShowdownWins: 2}
				s.PositionResults[0].Hands = 2
				return s
			}(),
			errMsg: "exceeds total hands",
		},
		{
			name: "position mismatch",
			stats: func() Statistics {
				s := Statistics{Hands: 2, Values: []float64{1, 1}, AllBB: 2, ShowdownBB: 1, NonShowdownBB: 1}
				s.PositionResults[3].Hands = 1
				return s
			}(),
			errMsg: "position hands total",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorContains(t, tt.stats.Validate(), tt.errMsg)
		})
	}
}
