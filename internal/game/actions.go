package game

import (
	"fmt"
	"strings"
)

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise // raise, bet or all-in to Decision.Amount
	Skip  // seat cannot act
)

func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	case Skip:
		return "skip"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// ParseAction converts user input such as "call" or "r" into an Action
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f", "fold":
		return Fold, nil
	case "k", "check":
		return Check, nil
	case "c", "call":
		return Call, nil
	case "r", "raise", "bet":
		return Raise, nil
	}
	return Skip, fmt.Errorf("unknown action %q", s)
}

// Decision is a seat's chosen action. Amount is the raise target, the total
// RoundBet the seat wants to reach, and only matters for Raise.
type Decision struct {
	Action    Action
	Amount    int
	Reasoning string
}

func (d Decision) String() string {
	if d.Action == Raise {
		return fmt.Sprintf("raise to %d", d.Amount)
	}
	return d.Action.String()
}

// LogFunc receives one human-readable table log line
type LogFunc func(line string)

func (f LogFunc) printf(format string, args ...any) {
	if f != nil {
		f(fmt.Sprintf(format, args...))
	}
}

// PostBlinds assigns and posts the small and big blinds. The small blind is
// the first alive seat after the dealer and the big blind the next one. A seat
// short of the blind posts its whole stack and is all-in.
func PostBlinds(s *State, log LogFunc) {
	sb := NextAliveFrom(s, s.Dealer)
	bb := NextAliveFrom(s, sb)
	s.SBIdx, s.BBIdx = sb, bb
	if !IsAlive(s, sb) || !IsAlive(s, bb) || sb == bb {
		return
	}

	sbPaid := s.Seats[sb].commit(s.SmallBlind)
	bbPaid := s.Seats[bb].commit(s.BigBlind)

	s.CurrentBet = max(s.Seats[sb].RoundBet, s.Seats[bb].RoundBet)
	s.LastRaise = s.BigBlind
	s.LastRaiser = bb
	log.printf("Blinds posted: %s SB %s, %s BB %s",
		s.Seats[sb].Name, money(sbPaid), s.Seats[bb].Name, money(bbPaid))
}

// ApplyFold folds the seat
func ApplyFold(s *State, idx int, log LogFunc) {
	s.Seats[idx].Folded = true
	log.printf("%s folds", s.Seats[idx].Name)
}

// ApplyCheck logs a check. Nothing changes in the betting state.
func ApplyCheck(s *State, idx int, log LogFunc) {
	log.printf("%s checks", s.Seats[idx].Name)
}

// ApplyCall matches the current bet, or as much of it as the stack allows
func ApplyCall(s *State, idx int, log LogFunc) {
	seat := s.Seats[idx]
	toCall := s.ToCall(idx)
	paid := seat.commit(toCall)
	if toCall == 0 {
		log.printf("%s checks", seat.Name)
	} else {
		log.printf("%s calls %s", seat.Name, money(paid))
	}
	if seat.AllIn {
		log.printf("%s is all-in (%s in this street)", seat.Name, money(seat.RoundBet))
	}
}

// ApplyRaiseTo moves the seat's RoundBet toward target. Only a result above
// the current bet is a raise: it records the raise size and the raiser. A
// stack too short to exceed the current bet is an all-in call.
func ApplyRaiseTo(s *State, idx int, target int, log LogFunc) {
	seat := s.Seats[idx]
	target = max(target, seat.RoundBet+1)
	paid := seat.commit(target - seat.RoundBet)

	if seat.RoundBet > s.CurrentBet {
		s.LastRaise = seat.RoundBet - s.CurrentBet
		s.CurrentBet = seat.RoundBet
		s.LastRaiser = idx
		verb := "raises"
		if s.Street == Preflop && seat.RoundBet <= s.BigBlind {
			verb = "bets"
		}
		log.printf("%s %s to %s", seat.Name, verb, money(seat.RoundBet))
	} else {
		log.printf("%s calls %s (all-in short)", seat.Name, money(paid))
	}
	if seat.AllIn {
		log.printf("%s is all-in (%s in this street)", seat.Name, money(seat.RoundBet))
	}
}

// Apply executes a decision for the seat. Skip does nothing.
func Apply(s *State, idx int, d Decision, log LogFunc) {
	switch d.Action {
	case Fold:
		ApplyFold(s, idx, log)
	case Check:
		ApplyCheck(s, idx, log)
	case Call:
		ApplyCall(s, idx, log)
	case Raise:
		ApplyRaiseTo(s, idx, d.Amount, log)
	}
}

// ResetRoundBets clears the street's betting state ahead of the next street
func ResetRoundBets(s *State) {
	for _, seat := range s.Seats {
		seat.RoundBet = 0
	}
	s.CurrentBet = 0
	s.LastRaise = 0
	s.LastRaiser = NoSeat
}
