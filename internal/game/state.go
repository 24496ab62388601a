package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/holdem-cli/internal/deck"
)

// Street identifies the current betting stage of a hand
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	default:
		return fmt.Sprintf("street(%d)", int(s))
	}
}

// NoSeat marks an unset seat index such as LastRaiser before any bet
const NoSeat = -1

// State is the whole game: seats, dealer button, board and betting state.
// It is owned by one goroutine and mutated in place by the engine functions.
type State struct {
	Seats  []*Seat
	Dealer int

	Deck  *deck.Deck
	Board []deck.Card
	Burn  []deck.Card

	Street     Street
	CurrentBet int // highest RoundBet on this street
	LastRaise  int // size of the last full raise on this street
	LastRaiser int

	SmallBlind int
	BigBlind   int
	SBIdx      int
	BBIdx      int

	HandNum   int // hands started since the table opened
	HandCount int // hands started since the last game reset

	Current  int  // seat whose decision is pending, or NoSeat
	Awaiting bool // waiting on the human seat
	Reveal   bool // hole cards of live seats are public

	stacked []deck.Card
}

// NewState creates a table with the dealer on seat 0
func NewState(rng *rand.Rand, smallBlind, bigBlind int, seats ...*Seat) *State {
	return &State{
		Seats:      seats,
		Deck:       deck.New(rng),
		SmallBlind: smallBlind,
		BigBlind:   bigBlind,
		LastRaiser: NoSeat,
		SBIdx:      NoSeat,
		BBIdx:      NoSeat,
		Current:    NoSeat,
	}
}

// Pot returns the chips committed by all seats this hand
func (s *State) Pot() int {
	total := 0
	for _, seat := range s.Seats {
		total += seat.TotalBet
	}
	return total
}

// TotalChips returns every chip on the table, stacks plus pot
func (s *State) TotalChips() int {
	total := 0
	for _, seat := range s.Seats {
		total += seat.Stack + seat.TotalBet
	}
	return total
}

// ToCall returns how much the seat must add to match the current bet
func (s *State) ToCall(idx int) int {
	return max(0, s.CurrentBet-s.Seats[idx].RoundBet)
}

// MinRaiseTo returns the smallest legal full-raise target on this street
func (s *State) MinRaiseTo() int {
	return s.CurrentBet + max(s.LastRaise, s.BigBlind)
}

// StackDeck makes the next hand deal cards in the given order instead of
// shuffling. The first card is dealt first.
func (s *State) StackDeck(cards []deck.Card) {
	s.stacked = append([]deck.Card(nil), cards...)
}

// prepareDeck resets the deck for a new hand
func (s *State) prepareDeck() {
	if s.stacked == nil {
		s.Deck.Reset()
		s.Deck.Shuffle()
		return
	}
	reversed := make([]deck.Card, len(s.stacked))
	for i, c := range s.stacked {
		reversed[len(s.stacked)-1-i] = c
	}
	s.Deck.Stack(reversed)
	s.stacked = nil
}

// Restart restores every seat to the given stack and clears hand counters
func (s *State) Restart(stack int) {
	for _, seat := range s.Seats {
		seat.Stack = stack
		seat.Out = false
		seat.ResetForHand()
	}
	s.Dealer = 0
	s.HandCount = 0
	s.Board = nil
	s.Burn = nil
	s.Reveal = false
	s.Street = Preflop
	s.Current = NoSeat
	s.Awaiting = false
	ResetRoundBets(s)
}

func money(v int) string {
	return fmt.Sprintf("$%d", v)
}
