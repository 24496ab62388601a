package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-cli/internal/randutil"
)

func TestNewDeckIsCanonical(t *testing.T) {
	t.Parallel()

	d := New(randutil.New(1))
	require.Equal(t, Size, d.Remaining())

	cards := d.Cards()
	assert.Equal(t, NewCard(Two, Clubs), cards[0])
	assert.Equal(t, NewCard(Ace, Spades), cards[Size-1])

	seen := make(map[Card]bool, Size)
	for _, c := range cards {
		require.True(t, c.Valid(), "card %v", c)
		require.False(t, seen[c], "duplicate card %v", c)
		seen[c] = true
	}
}

func TestDealPopsFromTail(t *testing.T) {
	t.Parallel()

	d := New(randutil.New(1))
	assert.Equal(t, NewCard(Ace, Spades), d.Deal())
	assert.Equal(t, NewCard(King, Spades), d.Deal())
	assert.Equal(t, Size-2, d.Remaining())
}

func TestShuffleKeepsAllCards(t *testing.T) {
	t.Parallel()

	d := New(randutil.New(42))
	d.Shuffle()

	seen := make(map[Card]bool, Size)
	for d.Remaining() > 0 {
		before := d.Remaining()
		c := d.Deal()
		require.Equal(t, before-1, d.Remaining())
		require.False(t, seen[c], "card %v dealt twice", c)
		seen[c] = true
	}
	assert.Len(t, seen, Size)
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	a := New(randutil.New(7))
	b := New(randutil.New(7))
	a.Shuffle()
	b.Shuffle()
	assert.Equal(t, a.Cards(), b.Cards())

	c := New(randutil.New(8))
	c.Shuffle()
	assert.NotEqual(t, a.Cards(), c.Cards())
}

func TestShuffleSpreadsCards(t *testing.T) {
	t.Parallel()

	// Over many shuffles every card should land on top at least once.
	rng := randutil.New(99)
	top := make(map[Card]int)
	d := New(rng)
	for range 5000 {
		d.Reset()
		d.Shuffle()
		top[d.Deal()]++
	}
	assert.Len(t, top, Size)
	for c, n := range top {
		assert.Greater(t, n, 30, "card %v on top only %d times", c, n)
	}
}

func TestCryptoDeck(t *testing.T) {
	t.Parallel()

	d := New(randutil.NewCrypto())
	d.Shuffle()
	assert.Equal(t, Size, d.Remaining())
}

func TestDealEmptyPanics(t *testing.T) {
	t.Parallel()

	d := New(randutil.New(1))
	d.DealN(Size)
	assert.Panics(t, func() { d.Deal() })
}

func TestStack(t *testing.T) {
	t.Parallel()

	d := New(randutil.New(1))
	d.Stack(MustParseCards("2c3d4h"))
	assert.Equal(t, NewCard(Four, Hearts), d.Deal())
	assert.Equal(t, 2, d.Remaining())
}
