package game

import (
	"context"
	"errors"
	"fmt"
)

// RoundResult reports how a betting round finished
type RoundResult int

const (
	// RoundOK means every remaining seat has matched or is all-in
	RoundOK RoundResult = iota
	// RoundEnded means everyone else folded and the pot was awarded
	RoundEnded
)

func (r RoundResult) String() string {
	if r == RoundEnded {
		return "ended"
	}
	return "ok"
}

// ErrRoundStalled is returned when a betting round exceeds its iteration
// guard, which indicates corrupted betting state.
var ErrRoundStalled = errors.New("betting round exceeded iteration limit")

const maxRoundIterations = 500

// buildQueue lists active seats in clockwise order starting at start,
// visiting each seat at most once and leaving out skip.
func buildQueue(s *State, start, skip int) []int {
	n := len(s.Seats)
	queue := make([]int, 0, n)
	for step := range n {
		j := (start + step) % n
		if j != skip && IsActive(s, j) {
			queue = append(queue, j)
		}
	}
	return queue
}

// SettleUncontested awards the whole pot to the last seat standing and
// returns the amount won.
func SettleUncontested(s *State, winner int, log LogFunc) int {
	pot := s.Pot()
	s.Seats[winner].Stack += pot
	for _, seat := range s.Seats {
		seat.TotalBet = 0
	}
	ResetRoundBets(s)
	log.printf("%s wins uncontested pot %s", s.Seats[winner].Name, money(pot))
	return pot
}

// RunBettingRound runs one street of betting starting with the seat at start.
//
// Seats act in queue order. When an action raises the current bet the queue
// is rebuilt from the seat after the raiser so everyone else gets to respond.
// The round ends when the queue drains, or early when a single contender
// remains, in which case the pot is settled and RoundEnded returned.
func RunBettingRound(ctx context.Context, s *State, start int, deps Deps) (RoundResult, error) {
	logger := deps.logger()
	queue := buildQueue(s, start, NoSeat)
	defer func() {
		s.Current = NoSeat
		s.Awaiting = false
	}()

	for guard := 0; len(queue) > 0; guard++ {
		if guard >= maxRoundIterations {
			return RoundOK, fmt.Errorf("%w: street %s", ErrRoundStalled, s.Street)
		}
		if winner := OnlyContender(s); winner != NoSeat {
			SettleUncontested(s, winner, deps.Log)
			return RoundEnded, nil
		}

		idx := queue[0]
		queue = queue[1:]
		if !IsActive(s, idx) {
			continue
		}

		s.Current = idx
		before := s.CurrentBet
		decision, err := decide(ctx, s, idx, deps)
		if err != nil {
			return RoundOK, err
		}
		logger.Debug("Seat acted", "street", s.Street, "seat", s.Seats[idx].Name, "decision", decision)
		Apply(s, idx, decision, deps.Log)
		deps.observe(s, idx, decision)
		deps.render()
		if s.Seats[idx].IsAI {
			if err := deps.pace(ctx); err != nil {
				return RoundOK, err
			}
		}

		if winner := OnlyContender(s); winner != NoSeat {
			SettleUncontested(s, winner, deps.Log)
			return RoundEnded, nil
		}
		if s.CurrentBet > before {
			queue = buildQueue(s, NextIdx(s, idx), idx)
		}
	}

	logger.Debug("Betting round complete", "street", s.Street, "pot", s.Pot())
	return RoundOK, nil
}

// decide asks the AI policy or the human provider for the seat's action
func decide(ctx context.Context, s *State, idx int, deps Deps) (Decision, error) {
	if s.Seats[idx].IsAI {
		if deps.Policy == nil {
			return Decision{}, fmt.Errorf("seat %s: no AI policy configured", s.Seats[idx].Name)
		}
		return deps.Policy.Decide(s, idx), nil
	}

	if deps.Human == nil {
		return Decision{}, ErrNoHumanProvider
	}
	s.Awaiting = true
	deps.render()
	defer func() { s.Awaiting = false }()

	for {
		view := NewView(s, idx)
		d, err := deps.Human.NextAction(ctx, view)
		if err != nil {
			return Decision{}, fmt.Errorf("seat %s: %w", s.Seats[idx].Name, err)
		}
		if verr := view.Validate(d); verr != nil {
			deps.Log.printf("Invalid action: %v", verr)
			deps.render()
			continue
		}
		return d, nil
	}
}
