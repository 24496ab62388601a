package game

import (
	"slices"

	"github.com/lox/holdem-cli/internal/evaluator"
)

// Pot is one layer of the pot. Eligible seats are the contributors at this
// level that have not folded.
type Pot struct {
	Amount       int
	Level        int // contribution cap of this layer
	Contributors []int
	Eligible     []int
}

// Payout records chips awarded to a seat at showdown
type Payout struct {
	Seat   int
	Amount int
	Score  evaluator.Score
	Side   bool // won from a side pot
	Refund bool // returned because no contributor was still in the hand
}

// BuildPots layers the hand's contributions into a main pot and side pots.
// Each distinct positive TotalBet among seats still at the table caps a layer
// whose amount is the level difference times the seats that reached it.
func BuildPots(s *State) []Pot {
	var levels []int
	for _, seat := range s.Seats {
		if !seat.Out && seat.TotalBet > 0 {
			levels = append(levels, seat.TotalBet)
		}
	}
	slices.Sort(levels)
	levels = slices.Compact(levels)

	pots := make([]Pot, 0, len(levels))
	prev := 0
	for _, level := range levels {
		var pot Pot
		pot.Level = level
		for i, seat := range s.Seats {
			if seat.Out || seat.TotalBet < level {
				continue
			}
			pot.Contributors = append(pot.Contributors, i)
			if !seat.Folded {
				pot.Eligible = append(pot.Eligible, i)
			}
		}
		pot.Amount = (level - prev) * len(pot.Contributors)
		pots = append(pots, pot)
		prev = level
	}
	return pots
}

// SettleShowdown reveals the live hands and distributes the pot. Without any
// all-in seat the whole pot goes to the best hand. Otherwise every pot layer
// is awarded to the best eligible hand. Ties split evenly with odd chips
// going one at a time in seat order.
func SettleShowdown(s *State, log LogFunc) []Payout {
	s.Reveal = true
	scores := make(map[int]evaluator.Score)
	score := func(idx int) evaluator.Score {
		if sc, ok := scores[idx]; ok {
			return sc
		}
		sc := evaluator.MustEval7(s.Seats[idx].Hand, s.Board)
		scores[idx] = sc
		return sc
	}

	var payouts []Payout
	anyAllIn := slices.ContainsFunc(s.Seats, func(seat *Seat) bool {
		return !seat.Out && seat.AllIn
	})

	if !anyAllIn {
		pot := s.Pot()
		if alive := Contenders(s); len(alive) > 0 && pot > 0 {
			payouts = award(s, pot, bestOf(alive, score), score, false, log)
		}
	} else {
		for i, pot := range BuildPots(s) {
			if len(pot.Eligible) == 0 {
				payouts = append(payouts, refund(s, pot)...)
				continue
			}
			payouts = append(payouts, award(s, pot.Amount, bestOf(pot.Eligible, score), score, i > 0, log)...)
		}
	}

	for _, seat := range s.Seats {
		seat.TotalBet = 0
	}
	return payouts
}

// bestOf returns the seats holding the strongest hand, in seat order
func bestOf(seats []int, score func(int) evaluator.Score) []int {
	var best []int
	var top evaluator.Score
	for _, idx := range seats {
		sc := score(idx)
		switch {
		case len(best) == 0 || evaluator.Compare(sc, top) > 0:
			best = []int{idx}
			top = sc
		case evaluator.Compare(sc, top) == 0:
			best = append(best, idx)
		}
	}
	return best
}

func award(s *State, amount int, winners []int, score func(int) evaluator.Score, side bool, log LogFunc) []Payout {
	share := amount / len(winners)
	remainder := amount - share*len(winners)
	from := ""
	if side {
		from = " from a side pot"
	}

	payouts := make([]Payout, 0, len(winners))
	for _, idx := range winners {
		seat := s.Seats[idx]
		sc := score(idx)
		seat.Stack += share
		log.printf("%s wins %s%s with %s.", seat.Name, money(share), from, sc)
		won := share
		if remainder > 0 {
			seat.Stack++
			remainder--
			won++
			log.printf("%s receives +$1 (rounding).", seat.Name)
		}
		payouts = append(payouts, Payout{Seat: idx, Amount: won, Score: sc, Side: side})
	}
	return payouts
}

// refund returns a layer nobody can win to the seats that paid into it
func refund(s *State, pot Pot) []Payout {
	share := pot.Amount / len(pot.Contributors)
	payouts := make([]Payout, 0, len(pot.Contributors))
	for _, idx := range pot.Contributors {
		s.Seats[idx].Stack += share
		payouts = append(payouts, Payout{Seat: idx, Amount: share, Refund: true})
	}
	return payouts
}
