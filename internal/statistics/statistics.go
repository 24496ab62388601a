// Package statistics accumulates per-hand results of simulated play and
// summarises them in big blinds.
package statistics

import (
	"fmt"
	"math"
	"slices"
)

// MaxPositions is the largest table size tracked by position
const MaxPositions = 10

// bigPotBB marks a pot as high action
const bigPotBB = 50

// HandResult is one seat's outcome in one hand
type HandResult struct {
	NetBB          float64 // chips won or lost, in big blinds
	Seed           int64   // session seed, for replay
	Hand           int     // hand number within the session
	Position       int     // seats after the button, 0 is the button
	WentToShowdown bool
	FinalPotSize   int    // largest net gain in the hand, in chips
	StreetReached  string // street on which the hand ended
}

// PositionStats tracks results for one position relative to the button
type PositionStats struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
}

// Statistics aggregates hand results
type Statistics struct {
	BigBlind int // chips per big blind, for pot size analytics

	Hands  int
	SumBB  float64
	SumBB2 float64   // sum of squares for variance
	Values []float64 // every result, for median and percentiles

	ShowdownWins    int
	NonShowdownWins int
	ShowdownBB      float64 // showdown results, wins and losses
	NonShowdownBB   float64
	AllBB           float64

	PositionResults [MaxPositions]PositionStats

	MaxPotChips int
	MaxPotBB    float64
	BigPots     int
	BigPotsBB   float64
}

// New returns empty statistics for a table with the given big blind
func New(bigBlind int) *Statistics {
	return &Statistics{BigBlind: bigBlind}
}

// Mean returns the average result in big blinds per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

func (s *Statistics) StdDev() float64 {
	return math.Sqrt(math.Max(0, s.Variance()))
}

func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates one hand result
func (s *Statistics) Add(result HandResult) {
	netBB := result.NetBB
	s.Hands++
	s.SumBB += netBB
	s.SumBB2 += netBB * netBB
	s.Values = append(s.Values, netBB)

	if netBB > 0 {
		if result.WentToShowdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
	}
	if result.WentToShowdown {
		s.ShowdownBB += netBB
	} else {
		s.NonShowdownBB += netBB
	}
	s.AllBB += netBB

	if pos := result.Position; pos >= 0 && pos < MaxPositions {
		s.PositionResults[pos].Hands++
		s.PositionResults[pos].SumBB += netBB
		s.PositionResults[pos].SumBB2 += netBB * netBB
	}

	potChips := result.FinalPotSize
	potBB := 0.0
	if s.BigBlind > 0 {
		potBB = float64(potChips) / float64(s.BigBlind)
	}
	if potChips > s.MaxPotChips {
		s.MaxPotChips = potChips
		s.MaxPotBB = potBB
	}
	if potBB >= bigPotBB {
		s.BigPots++
		s.BigPotsBB += netBB
	}
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	if s.BigBlind == 0 {
		s.BigBlind = other.BigBlind
	}
	s.Hands += other.Hands
	s.SumBB += other.SumBB
	s.SumBB2 += other.SumBB2
	s.Values = append(s.Values, other.Values...)
	s.ShowdownWins += other.ShowdownWins
	s.NonShowdownWins += other.NonShowdownWins
	s.ShowdownBB += other.ShowdownBB
	s.NonShowdownBB += other.NonShowdownBB
	s.AllBB += other.AllBB
	for i := range s.PositionResults {
		s.PositionResults[i].Hands += other.PositionResults[i].Hands
		s.PositionResults[i].SumBB += other.PositionResults[i].SumBB
		s.PositionResults[i].SumBB2 += other.PositionResults[i].SumBB2
	}
	if other.MaxPotChips > s.MaxPotChips {
		s.MaxPotChips = other.MaxPotChips
		s.MaxPotBB = other.MaxPotBB
	}
	s.BigPots += other.BigPots
	s.BigPotsBB += other.BigPotsBB
}

func (s *Statistics) sorted() []float64 {
	out := slices.Clone(s.Values)
	slices.Sort(out)
	return out
}

// Median returns the median result
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at percentile p in [0, 1], interpolating
// between neighbouring results.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()
	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// PositionMean returns the mean result for a position relative to the button
func (s *Statistics) PositionMean(position int) float64 {
	if position < 0 || position >= MaxPositions {
		return 0
	}
	ps := s.PositionResults[position]
	if ps.Hands == 0 {
		return 0
	}
	return ps.SumBB / float64(ps.Hands)
}

// IsLedgerBalanced checks showdown and non-showdown results add up
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllBB-s.ShowdownBB-s.NonShowdownBB) <= 1e-6
}

// Validate checks the accumulated data is internally consistent
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: AllBB=%.6f, ShowdownBB=%.6f, NonShowdownBB=%.6f",
			s.AllBB, s.ShowdownBB, s.NonShowdownBB)
	}
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values array length (%d) does not match hands count (%d)", len(s.Values), s.Hands)
	}
	if wins := s.ShowdownWins + s.NonShowdownWins; wins > s.Hands {
		return fmt.Errorf("total wins (%d) exceeds total hands (%d)", wins, s.Hands)
	}

	positionHands := 0
	for _, ps := range s.PositionResults {
		positionHands += ps.Hands
	}
	if positionHands != s.Hands {
		return fmt.Errorf("position hands total (%d) does not match total hands (%d)", positionHands, s.Hands)
	}
	return nil
}
