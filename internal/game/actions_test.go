package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostBlinds(t *testing.T) {
	t.Parallel()

	s := newTestState(1000, 1000, 1000)
	var log tableLog
	PostBlinds(s, log.log)

	assert.Equal(t, 1, s.SBIdx)
	assert.Equal(t, 2, s.BBIdx)
	assert.Equal(t, 990, s.Seats[1].Stack)
	assert.Equal(t, 980, s.Seats[2].Stack)
	assert.Equal(t, 20, s.CurrentBet)
	assert.Equal(t, 20, s.LastRaise)
	assert.Equal(t, 2, s.LastRaiser)
	assert.Equal(t, []string{"Blinds posted: P1 SB $10, P2 BB $20"}, log.Lines())
}

func TestPostBlindsSkipsOutSeats(t *testing.T) {
	t.Parallel()

	s := newTestState(1000, 0, 1000, 1000)
	s.Seats[1].Out = true
	PostBlinds(s, nil)

	assert.Equal(t, 2, s.SBIdx)
	assert.Equal(t, 3, s.BBIdx)
}

func TestPostBlindsShortStackGoesAllIn(t *testing.T) {
	t.Parallel()

	s := newTestState(1000, 1000, 15)
	var log tableLog
	PostBlinds(s, log.log)

	bb := s.Seats[2]
	assert.Equal(t, 0, bb.Stack)
	assert.Equal(t, 15, bb.RoundBet)
	assert.True(t, bb.AllIn)
	assert.Equal(t, 15, s.CurrentBet, "current bet is the larger blind actually posted")
	assert.Equal(t, 20, s.LastRaise)
	assert.Equal(t, []string{"Blinds posted: P1 SB $10, P2 BB $15"}, log.Lines())
}

func TestPostBlindsNeedsTwoSeats(t *testing.T) {
	t.Parallel()

	s := newTestState(1000, 1000)
	s.Seats[1].Out = true
	PostBlinds(s, nil)

	assert.Equal(t, 0, s.Pot())
	assert.Equal(t, 0, s.CurrentBet)
}

func TestApplyCall(t *testing.T) {
	t.Parallel()

	s := newTestState(1000, 1000, 1000)
	PostBlinds(s, nil)
	var log tableLog

	ApplyCall(s, 0, log.log)
	assert.Equal(t, 980, s.Seats[0].Stack)
	assert.Equal(t, 20, s.Seats[0].RoundBet)

	ApplyCall(s, 2, log.log)
	assert.Equal(t, 980, s.Seats[2].Stack, "nothing owed means a check")
	assert.Equal(t, []string{"P0 calls $20", "P2 checks"}, log.Lines())
}

func TestApplyCallShortStack(t *testing.T) {
	t.Parallel()

	s := newTestState(5, 1000, 1000)
	PostBlinds(s, nil)
	var log tableLog

	ApplyCall(s, 0, log.log)
	assert.Equal(t, 0, s.Seats[0].Stack)
	assert.True(t, s.Seats[0].AllIn)
	assert.Equal(t, 5, s.Seats[0].TotalBet)
	assert.Equal(t, []string{"P0 calls $5", "P0 is all-in ($5 in this street)"}, log.Lines())
}

func TestApplyRaiseTo(t *testing.T) {
	t.Parallel()

	s := newTestState(1000, 1000, 1000)
	PostBlinds(s, nil)
	var log tableLog

	ApplyRaiseTo(s, 0, 60, log.log)
	assert.Equal(t, 60, s.CurrentBet)
	assert.Equal(t, 40, s.LastRaise)
	assert.Equal(t, 0, s.LastRaiser)
	assert.Equal(t, 940, s.Seats[0].Stack)

	ApplyRaiseTo(s, 1, 200, log.log)
	assert.Equal(t, 200, s.CurrentBet)
	assert.Equal(t, 140, s.LastRaise)
	assert.Equal(t, 1, s.LastRaiser)
	assert.Equal(t, 800, s.Seats[1].Stack, "small blind only adds the difference")

	assert.Equal(t, []string{"P0 raises to $60", "P1 raises to $200"}, log.Lines())
}

func TestApplyRaiseToShortAllInIsACall(t *testing.T) {
	t.Parallel()

	s := newTestState(1000, 1000, 1000, 50)
	PostBlinds(s, nil)
	ApplyRaiseTo(s, 0, 100, nil)
	var log tableLog

	ApplyRaiseTo(s, 3, 500, log.log)
	seat := s.Seats[3]
	assert.Equal(t, 50, seat.RoundBet)
	assert.True(t, seat.AllIn)
	assert.Equal(t, 100, s.CurrentBet, "short all-in does not raise")
	assert.Equal(t, 80, s.LastRaise)
	assert.Equal(t, 0, s.LastRaiser)
	assert.Equal(t, []string{"P3 calls $50 (all-in short)", "P3 is all-in ($50 in this street)"}, log.Lines())
}

func TestApplyRaiseToBelowContributionStillPaysAChip(t *testing.T) {
	t.Parallel()

	s := newTestState(1000, 1000)
	s.Street = Flop
	ApplyRaiseTo(s, 0, 0, nil)

	assert.Equal(t, 1, s.Seats[0].RoundBet)
	assert.Equal(t, 1, s.CurrentBet)
}

func TestOpeningBetVerb(t *testing.T) {
	t.Parallel()

	s := newTestState(1000, 1000)
	var log tableLog
	ApplyRaiseTo(s, 0, 20, log.log)

	s.Street = Flop
	ResetRoundBets(s)
	ApplyRaiseTo(s, 1, 20, log.log)

	assert.Equal(t, []string{"P0 bets to $20", "P1 raises to $20"}, log.Lines())
}

func TestApplyFoldAndCheck(t *testing.T) {
	t.Parallel()

	s := newTestState(1000, 1000)
	var log tableLog
	ApplyCheck(s, 0, log.log)
	ApplyFold(s, 1, log.log)

	assert.True(t, s.Seats[1].Folded)
	assert.Equal(t, 1000, s.Seats[0].Stack)
	assert.Equal(t, []string{"P0 checks", "P1 folds"}, log.Lines())
}

func TestResetRoundBetsKeepsTotals(t *testing.T) {
	t.Parallel()

	s := newTestState(1000, 1000, 1000)
	PostBlinds(s, nil)
	ApplyCall(s, 0, nil)
	ResetRoundBets(s)

	for _, seat := range s.Seats {
		assert.Zero(t, seat.RoundBet)
	}
	assert.Zero(t, s.CurrentBet)
	assert.Zero(t, s.LastRaise)
	assert.Equal(t, NoSeat, s.LastRaiser)
	assert.Equal(t, 50, s.Pot())
}

func TestParseAction(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]Action{"f": Fold, "CHECK": Check, " call ": Call, "bet": Raise} {
		got, err := ParseAction(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
	_, err := ParseAction("shove")
	assert.Error(t, err)
}
