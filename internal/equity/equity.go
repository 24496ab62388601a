// Package equity estimates how often each hand wins against the others by
// dealing out the rest of the board many times.
package equity

import (
	"context"
	"errors"
	"fmt"
	"math"
	rand "math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-cli/internal/deck"
	"github.com/lox/holdem-cli/internal/evaluator"
	"github.com/lox/holdem-cli/internal/randutil"
)

// ErrDuplicateCard is returned when a card appears more than once
var ErrDuplicateCard = errors.New("duplicate card")

const (
	boardSize         = 5
	defaultIterations = 100_000
	cancelCheck       = 1024
)

// Options configures a calculation
type Options struct {
	Iterations int // boards dealt; ignored when the board is complete
	Workers    int
	Seed       int64
}

// Result is one hand's share of the outcomes
type Result struct {
	Hand       []deck.Card
	Wins       int // outright wins
	Ties       int // split pots
	Equity     float64
	Categories map[evaluator.Category]int // final hand categories
}

// WinPct returns outright wins as a percentage of boards dealt
func (r Result) WinPct(iterations int) float64 {
	return pct(r.Wins, iterations)
}

// TiePct returns split pots as a percentage of boards dealt
func (r Result) TiePct(iterations int) float64 {
	return pct(r.Ties, iterations)
}

// ConfidenceInterval returns the 95% interval for Equity over iterations
// boards
func (r Result) ConfidenceInterval(iterations int) (lower, upper float64) {
	if iterations == 0 {
		return 0, 0
	}
	margin := 1.96 * math.Sqrt(r.Equity*(1-r.Equity)/float64(iterations))
	return math.Max(0, r.Equity-margin), math.Min(1, r.Equity+margin)
}

// Report holds the results for every hand
type Report struct {
	Board      []deck.Card
	Iterations int
	Exact      bool // the board was complete, so one evaluation decided it
	Players    []Result
}

// Calculate runs the simulation for hands on board
func Calculate(ctx context.Context, hands [][]deck.Card, board []deck.Card, opts Options) (*Report, error) {
	if err := validate(hands, board); err != nil {
		return nil, err
	}

	report := &Report{Board: board}
	if len(board) == boardSize {
		report.Exact = true
		report.Iterations = 1
		report.Players = newResults(hands)
		settle(report.Players, hands, board)
		finish(report)
		return report, nil
	}

	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = defaultIterations
	}
	workers := max(1, min(opts.Workers, iterations))
	remaining := remainingCards(hands, board)

	partials := make([][]Result, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		n := iterations / workers
		if w < iterations%workers {
			n++
		}
		g.Go(func() error {
			rng := randutil.New(opts.Seed + int64(w))
			results, err := simulate(ctx, hands, board, remaining, n, rng)
			partials[w] = results
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Iterations = iterations
	report.Players = newResults(hands)
	for _, part := range partials {
		for i, r := range part {
			p := &report.Players[i]
			p.Wins += r.Wins
			p.Ties += r.Ties
			p.Equity += r.Equity
			for c, count := range r.Categories {
				p.Categories[c] += count
			}
		}
	}
	finish(report)
	return report, nil
}

func simulate(ctx context.Context, hands [][]deck.Card, board, remaining []deck.Card, n int, rng *rand.Rand) ([]Result, error) {
	results := newResults(hands)
	pool := append([]deck.Card(nil), remaining...)
	need := boardSize - len(board)
	full := make([]deck.Card, boardSize)
	copy(full, board)

	for i := range n {
		if i%cancelCheck == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		// partial Fisher-Yates: the first need cards of pool are a uniform draw
		for j := range need {
			k := j + rng.IntN(len(pool)-j)
			pool[j], pool[k] = pool[k], pool[j]
		}
		copy(full[len(board):], pool[:need])
		settle(results, hands, full)
	}
	return results, nil
}

// settle scores every hand on a complete board and credits the winners
func settle(results []Result, hands [][]deck.Card, board []deck.Card) {
	var best evaluator.Score
	winners := make([]int, 0, len(hands))
	for i, hand := range hands {
		score := evaluator.MustEval7(hand, board)
		results[i].Categories[score.Category]++
		switch c := evaluator.Compare(score, best); {
		case len(winners) == 0 || c > 0:
			best = score
			winners = append(winners[:0], i)
		case c == 0:
			winners = append(winners, i)
		}
	}
	share := 1 / float64(len(winners))
	for _, i := range winners {
		if len(winners) == 1 {
			results[i].Wins++
		} else {
			results[i].Ties++
		}
		results[i].Equity += share
	}
}

func finish(r *Report) {
	for i := range r.Players {
		r.Players[i].Equity /= float64(r.Iterations)
	}
}

func newResults(hands [][]deck.Card) []Result {
	results := make([]Result, len(hands))
	for i, hand := range hands {
		results[i] = Result{Hand: hand, Categories: make(map[evaluator.Category]int)}
	}
	return results
}

func validate(hands [][]deck.Card, board []deck.Card) error {
	if len(hands) < 2 {
		return fmt.Errorf("need at least two hands, got %d", len(hands))
	}
	if len(board) > boardSize {
		return fmt.Errorf("board cannot have more than %d cards, got %d", boardSize, len(board))
	}
	if len(board) > 0 && len(board) < 3 {
		return fmt.Errorf("board must have 0, 3, 4 or 5 cards, got %d", len(board))
	}
	if boardSize+2*len(hands) > deck.Size {
		return fmt.Errorf("too many hands for one deck: %d", len(hands))
	}

	seen := make(map[deck.Card]bool)
	for _, c := range board {
		if seen[c] {
			return fmt.Errorf("%w on board: %s", ErrDuplicateCard, c)
		}
		seen[c] = true
	}
	for i, hand := range hands {
		if len(hand) != 2 {
			return fmt.Errorf("hand %d: must contain exactly 2 cards, got %d", i+1, len(hand))
		}
		for _, c := range hand {
			if seen[c] {
				return fmt.Errorf("%w in hand %d: %s", ErrDuplicateCard, i+1, c)
			}
			seen[c] = true
		}
	}
	return nil
}

func remainingCards(hands [][]deck.Card, board []deck.Card) []deck.Card {
	used := make(map[deck.Card]bool)
	for _, c := range board {
		used[c] = true
	}
	for _, hand := range hands {
		for _, c := range hand {
			used[c] = true
		}
	}
	out := make([]deck.Card, 0, deck.Size)
	for _, suit := range deck.Suits {
		for rank := deck.Two; rank <= deck.Ace; rank++ {
			if c := deck.NewCard(rank, suit); !used[c] {
				out = append(out, c)
			}
		}
	}
	return out
}

func pct(n, of int) float64 {
	if of == 0 {
		return 0
	}
	return float64(n) / float64(of) * 100
}
