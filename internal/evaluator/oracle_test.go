package evaluator

import (
	"testing"

	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-cli/internal/deck"
	"github.com/lox/holdem-cli/internal/randutil"
)

// toOracle converts a card to the paulhankin/poker representation (ace is rank 1).
func toOracle(t *testing.T, c deck.Card) poker.Card {
	t.Helper()
	var s poker.Suit
	switch c.Suit {
	case deck.Clubs:
		s = poker.Club
	case deck.Diamonds:
		s = poker.Diamond
	case deck.Hearts:
		s = poker.Heart
	default:
		s = poker.Spade
	}
	r := poker.Rank(c.Rank)
	if c.Rank == deck.Ace {
		r = poker.Rank(1)
	}
	pc, err := poker.MakeCard(s, r)
	require.NoError(t, err)
	return pc
}

func oracleEval7(t *testing.T, cards []deck.Card) int16 {
	t.Helper()
	var a [7]poker.Card
	for i, c := range cards {
		a[i] = toOracle(t, c)
	}
	return poker.Eval7(&a)
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// TestEval7AgreesWithOracle checks that pairwise ordering of random 7-card
// hands matches an independent evaluator.
func TestEval7AgreesWithOracle(t *testing.T) {
	t.Parallel()

	// Establish which direction the oracle scores in.
	strong := oracleEval7(t, deck.MustParseCards("AsKsQsJsTs2c3d"))
	weak := oracleEval7(t, deck.MustParseCards("7s5h4d3c9s2cJd"))
	orientation := sign(int(strong) - int(weak))
	require.NotZero(t, orientation)

	rng := randutil.New(2024)
	d := deck.New(rng)
	for i := range 2000 {
		d.Reset()
		d.Shuffle()
		a := d.DealN(7)
		b := d.DealN(7)

		ours := Compare(MustEval7(a[:2], a[2:]), MustEval7(b[:2], b[2:]))
		theirs := orientation * sign(int(oracleEval7(t, a))-int(oracleEval7(t, b)))
		require.Equal(t, theirs, ours, "iteration %d: %v vs %v", i, a, b)
	}
}
