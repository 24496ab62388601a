package game

import (
	"math"
	rand "math/rand/v2"
	"slices"

	"github.com/lox/holdem-cli/internal/deck"
	"github.com/lox/holdem-cli/internal/evaluator"
)

// PersonaProfile holds the tuning constants of a persona
type PersonaProfile struct {
	Aggression float64 // chance of acting on a strong hand
	Looseness  float64 // how wide a range the persona plays
	Bluff      float64 // chance of betting with nothing

	RaiseGate  int     // preflop raises only when (hand+seat) % RaiseGate == 0
	CallAnyway float64 // chance of calling any bet
	RescueCall float64 // chance of calling instead of folding
}

var personaProfiles = map[Persona]PersonaProfile{
	Rock:    {Aggression: 0.12, Looseness: 0.18, Bluff: 0.01, RaiseGate: 4},
	Maniac:  {Aggression: 0.9, Looseness: 0.75, Bluff: 0.25, RaiseGate: 2, RescueCall: 0.25},
	Station: {Aggression: 0.12, Looseness: 0.7, Bluff: 0, RaiseGate: 4, CallAnyway: 0.92},
	Pro:     {Aggression: 0.48, Looseness: 0.38, Bluff: 0.06, RaiseGate: 3},
}

// Profile returns the tuning constants for a persona. Human seats play with
// the Pro profile when the policy drives them.
func Profile(p Persona) PersonaProfile {
	if prof, ok := personaProfiles[p]; ok {
		return prof
	}
	return personaProfiles[Pro]
}

// earlyHands is how many hands after a reset the AI keeps raises small
const earlyHands = 9

// Policy makes decisions for AI seats
type Policy struct {
	rng *rand.Rand
}

// NewPolicy returns a policy drawing randomness from rng
func NewPolicy(rng *rand.Rand) *Policy {
	return &Policy{rng: rng}
}

// Decide picks an action for the seat from its hand strength, position,
// persona and the price of continuing.
func (p *Policy) Decide(s *State, idx int) Decision {
	seat := s.Seats[idx]
	if seat.Folded || seat.AllIn || seat.Out {
		return Decision{Action: Skip}
	}

	prof := Profile(seat.Persona)
	toCall := s.ToCall(idx)
	pot := s.Pot()
	strength := HandStrength(seat.Hand, s.Board)

	n := len(s.Seats)
	position := float64((idx-s.Dealer+n)%n) / float64(max(n-1, 1))
	aggression := clamp(prof.Aggression*(0.8+0.4*position), 0, 1)
	early := s.HandCount <= earlyHands
	gateOpen := s.Street != Preflop || (s.HandNum+idx)%prof.RaiseGate == 0

	lo, hi := seat.RoundBet+toCall, seat.RoundBet+seat.Stack

	if toCall > 0 {
		potOdds := float64(toCall) / float64(max(1, pot+toCall))
		wantCall := strength > potOdds*0.9 || p.chance(prof.CallAnyway) || strength > 0.45
		wantRaise := (strength > 0.62 && p.rng.Float64() < aggression) || p.rng.Float64() < prof.Bluff*0.4
		if !gateOpen {
			wantRaise = false
		}
		if early {
			wantRaise = wantRaise && p.rng.Float64() < 0.5
		}

		if !wantCall && !wantRaise {
			if p.chance(prof.RescueCall) {
				return Decision{Action: Call, Reasoning: "rescue call"}
			}
			return Decision{Action: Fold, Reasoning: "price too high"}
		}
		if !wantRaise {
			return Decision{Action: Call, Reasoning: "calling"}
		}

		var bump int
		if early {
			bump = roundTens(20 + p.rng.Float64()*130)
		} else {
			bump = roundTens(float64(pot+toCall) * (0.6 + p.rng.Float64()*0.8))
		}
		target := max(s.MinRaiseTo(), seat.RoundBet+toCall+bump)
		if !early && strength > 0.85 && p.rng.Float64() < 0.35 {
			target = hi
		}
		target = clampInt(target, lo, hi)
		if target <= s.CurrentBet && target < hi {
			return Decision{Action: Call, Reasoning: "raise too small"}
		}
		return Decision{Action: Raise, Amount: target, Reasoning: "raising"}
	}

	wantBet := (strength > 0.5 && p.rng.Float64() < aggression) ||
		(p.rng.Float64() < prof.Bluff && p.rng.Float64() < 0.6)
	if !gateOpen {
		wantBet = false
	}
	if !wantBet {
		return Decision{Action: Check, Reasoning: "checking"}
	}

	var base int
	if early {
		base = roundTens(20 + p.rng.Float64()*130)
	} else {
		sizing := pot
		if sizing == 0 {
			sizing = s.BigBlind
		}
		base = max(s.BigBlind, roundTens(float64(sizing)*(0.6+p.rng.Float64()*0.6)))
	}
	target := clampInt(max(s.MinRaiseTo(), base), lo, hi)
	if target <= s.CurrentBet {
		return Decision{Action: Check, Reasoning: "bet too small"}
	}
	return Decision{Action: Raise, Amount: target, Reasoning: "betting"}
}

// chance draws only when the probability is positive, so personas without a
// given trait do not consume randomness for it.
func (p *Policy) chance(prob float64) bool {
	return prob > 0 && p.rng.Float64() < prob
}

// HandStrength returns a 0..1 estimate of the hand's value. Before the flop
// it scores the hole cards alone.
func HandStrength(hole, board []deck.Card) float64 {
	if len(board) == 0 {
		return PreflopStrength(hole)
	}
	return PostflopStrength(hole, board)
}

// PreflopStrength scores two hole cards on high cards, pairs, suitedness
// and connectedness.
func PreflopStrength(hole []deck.Card) float64 {
	if len(hole) != 2 {
		return 0
	}
	hi, lo := hole[0], hole[1]
	if lo.Value() > hi.Value() {
		hi, lo = lo, hi
	}
	v1, v2 := float64(hi.Value()), float64(lo.Value())

	score := (v1 + v2) / 28
	if hi.Rank == lo.Rank {
		score += 0.4 * v1 / 14
	}
	if hi.Suit == lo.Suit {
		score += 0.08
	}
	gap := hi.Value() - lo.Value()
	if gap == 1 {
		score += 0.05
	}
	if gap >= 4 {
		score -= 0.04 * float64(gap-3)
	}
	if hi.Value() >= int(deck.King) {
		score += 0.03
	}
	return clamp(score, 0, 1)
}

// PostflopStrength scores the best made hand by category and kickers, with
// small bonuses for flush and straight draws.
func PostflopStrength(hole, board []deck.Card) float64 {
	sc, err := evaluator.Eval7(hole, board)
	if err != nil {
		return 0
	}

	kickers := 0
	for _, v := range sc.Key[1:] {
		kickers += v
	}
	score := float64(sc.Category-1)/8 + float64(kickers)/(14*5)*0.08

	cards := append(slices.Clone(hole), board...)
	var suits [4]int
	for _, c := range cards {
		suits[c.Suit]++
	}
	if slices.Contains(suits[:], 4) {
		score += 0.06
	}
	if hasFourStraight(cards) {
		score += 0.05
	}
	return clamp(score, 0, 1)
}

// hasFourStraight reports four consecutive distinct ranks
func hasFourStraight(cards []deck.Card) bool {
	ranks := make([]int, 0, len(cards))
	for _, c := range cards {
		ranks = append(ranks, c.Value())
	}
	slices.Sort(ranks)
	ranks = slices.Compact(ranks)
	for i := 0; i+3 < len(ranks); i++ {
		if ranks[i+3]-ranks[i] == 3 {
			return true
		}
	}
	return false
}

func roundTens(v float64) int {
	return int(math.Round(v/10)) * 10
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
