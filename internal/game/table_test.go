package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextAliveFromSkipsOutSeats(t *testing.T) {
	t.Parallel()

	s := newTestState(100, 100, 100, 100)
	s.Seats[1].Folded = true
	s.Seats[2].Out = true

	assert.Equal(t, 1, NextAliveFrom(s, 0), "folded seats are still alive")
	assert.Equal(t, 3, NextAliveFrom(s, 1))
	assert.Equal(t, 0, NextAliveFrom(s, 3), "wraps around the table")
}

func TestNextIdxScansPastOutSeats(t *testing.T) {
	t.Parallel()

	s := newTestState(100, 0, 100, 100)
	s.Seats[1].Out = true

	assert.Equal(t, 2, NextIdx(s, 0))
	assert.Equal(t, 3, NextIdx(s, 2))
	assert.Equal(t, 0, NextIdx(s, 3))
}

func TestNextAliveFromLoneSeatReturnsItself(t *testing.T) {
	t.Parallel()

	s := newTestState(100, 0, 0)
	s.Seats[1].Out = true
	s.Seats[2].Out = true

	assert.Equal(t, 0, NextAliveFrom(s, 0))
	assert.Equal(t, 0, NextIdx(s, 0))
}

func TestAliveAndActive(t *testing.T) {
	t.Parallel()

	s := newTestState(100, 0, 100, 100)
	s.Seats[1].AllIn = true
	s.Seats[2].Folded = true
	s.Seats[3].Out = true

	assert.True(t, IsAlive(s, 0))
	assert.True(t, IsActive(s, 0))
	assert.True(t, IsAlive(s, 1))
	assert.False(t, IsActive(s, 1), "all-in seats cannot act")
	assert.True(t, IsAlive(s, 2), "folded seats are alive until busted")
	assert.False(t, IsActive(s, 2))
	assert.False(t, IsAlive(s, 3))
	assert.False(t, IsActive(s, 3))
}

func TestOnlyContender(t *testing.T) {
	t.Parallel()

	s := newTestState(100, 100, 100)
	assert.Equal(t, NoSeat, OnlyContender(s))

	s.Seats[0].Folded = true
	assert.Equal(t, NoSeat, OnlyContender(s))

	s.Seats[2].Out = true
	assert.Equal(t, 1, OnlyContender(s))

	s.Seats[1].Folded = true
	assert.Equal(t, NoSeat, OnlyContender(s), "nobody alive")
}

func TestRotateDealerSkipsOutSeats(t *testing.T) {
	t.Parallel()

	s := newTestState(100, 0, 0, 100)
	s.Seats[1].Out = true
	s.Seats[2].Out = true

	RotateDealer(s)
	assert.Equal(t, 3, s.Dealer)
	RotateDealer(s)
	assert.Equal(t, 0, s.Dealer)
}

func TestTotalChipsCountsStacksAndPot(t *testing.T) {
	t.Parallel()

	s := newTestState(100, 200)
	s.Seats[0].commit(30)
	assert.Equal(t, 300, s.TotalChips())
	assert.Equal(t, 30, s.Pot())
}
