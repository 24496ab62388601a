// Package evaluator scores Texas Hold'em hands exactly.
//
// Eval5 scores a five-card hand. Eval7 finds the best five-card hand among
// six or seven cards by trying every five-card subset, which is at most 21
// combinations for a full Hold'em board.
package evaluator

import (
	"errors"
	"fmt"
	"math/bits"
	"slices"

	"github.com/lox/holdem-cli/internal/deck"
)

// ErrInvalidHand is returned when the evaluator is handed malformed input
var ErrInvalidHand = errors.New("invalid hand")

// Eval5 scores exactly five distinct, well-formed cards
func Eval5(cards []deck.Card) (Score, error) {
	if len(cards) != 5 {
		return Score{}, fmt.Errorf("%w: need 5 cards, got %d", ErrInvalidHand, len(cards))
	}
	seen := make(map[deck.Card]bool, 5)
	for _, c := range cards {
		if !c.Valid() {
			return Score{}, fmt.Errorf("%w: malformed card %+v", ErrInvalidHand, c)
		}
		if seen[c] {
			return Score{}, fmt.Errorf("%w: duplicate card %s", ErrInvalidHand, c)
		}
		seen[c] = true
	}
	return eval5(cards), nil
}

// MustEval5 is Eval5 for callers that control their input; it panics on error
func MustEval5(cards []deck.Card) Score {
	s, err := Eval5(cards)
	if err != nil {
		panic(err)
	}
	return s
}

type rankGroup struct {
	rank  int
	count int
}

func eval5(cards []deck.Card) Score {
	hand := slices.Clone(cards)

	var rankCounts [15]int
	flush := true
	for _, c := range hand {
		rankCounts[c.Rank]++
		if c.Suit != hand[0].Suit {
			flush = false
		}
	}

	groups := make([]rankGroup, 0, 5)
	for r := int(deck.Ace); r >= int(deck.Two); r-- {
		if rankCounts[r] > 0 {
			groups = append(groups, rankGroup{rank: r, count: rankCounts[r]})
		}
	}
	// Bigger groups first, higher rank breaks ties. groups is already rank-descending.
	slices.SortStableFunc(groups, func(a, b rankGroup) int { return b.count - a.count })

	straightHigh := 0
	if len(groups) == 5 {
		hi, lo := groups[0].rank, groups[4].rank
		switch {
		case hi-lo == 4:
			straightHigh = hi
		case hi == int(deck.Ace) && groups[1].rank == int(deck.Five):
			straightHigh = int(deck.Five)
		}
	}

	mk := func(cat Category, ranks ...int) Score {
		return Score{Category: cat, Key: append([]int{int(cat)}, ranks...), Cards: hand}
	}
	ranksOf := func(gs []rankGroup) []int {
		out := make([]int, len(gs))
		for i, g := range gs {
			out[i] = g.rank
		}
		return out
	}

	switch {
	case flush && straightHigh > 0:
		return mk(StraightFlush, straightHigh)
	case groups[0].count == 4:
		return mk(FourOfAKind, groups[0].rank, groups[1].rank)
	case groups[0].count == 3 && groups[1].count == 2:
		return mk(FullHouse, groups[0].rank, groups[1].rank)
	case flush:
		return mk(Flush, ranksOf(groups)...)
	case straightHigh > 0:
		return mk(Straight, straightHigh)
	case groups[0].count == 3:
		return mk(ThreeOfAKind, ranksOf(groups)...)
	case groups[0].count == 2 && groups[1].count == 2:
		return mk(TwoPair, ranksOf(groups)...)
	case groups[0].count == 2:
		return mk(OnePair, ranksOf(groups)...)
	default:
		return mk(HighCard, ranksOf(groups)...)
	}
}

// Eval7 returns the best score among every five-card subset of hole+board.
// Between five and seven cards in total are accepted.
func Eval7(hole, board []deck.Card) (Score, error) {
	cards := make([]deck.Card, 0, len(hole)+len(board))
	cards = append(cards, hole...)
	cards = append(cards, board...)

	n := len(cards)
	if n < 5 || n > 7 {
		return Score{}, fmt.Errorf("%w: need 5 to 7 cards, got %d", ErrInvalidHand, n)
	}

	var best Score
	found := false
	subset := make([]deck.Card, 0, 5)
	for mask := uint(0); mask < 1<<n; mask++ {
		if bits.OnesCount(mask) != 5 {
			continue
		}
		subset = subset[:0]
		for i := range n {
			if mask&(1<<i) != 0 {
				subset = append(subset, cards[i])
			}
		}
		score, err := Eval5(subset)
		if err != nil {
			return Score{}, err
		}
		if !found || score.Beats(best) {
			best = score
			found = true
		}
	}
	return best, nil
}

// MustEval7 is Eval7 for callers that control their input; it panics on error
func MustEval7(hole, board []deck.Card) Score {
	s, err := Eval7(hole, board)
	if err != nil {
		panic(err)
	}
	return s
}

// Subsets returns the number of five-card combinations Eval7 examines for n cards
func Subsets(n int) int {
	if n < 5 {
		return 0
	}
	c := 1
	for i := 0; i < 5; i++ {
		c = c * (n - i) / (i + 1)
	}
	return c
}
