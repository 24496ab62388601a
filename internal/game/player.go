package game

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-cli/internal/deck"
)

// Persona is the behavioural archetype of a seat
type Persona int

const (
	Human Persona = iota
	Rock
	Maniac
	Station
	Pro
)

var personaNames = [...]string{"human", "rock", "maniac", "station", "pro"}

func (p Persona) String() string {
	if p < Human || p > Pro {
		return "unknown"
	}
	return personaNames[p]
}

// ParsePersona converts a persona name such as "rock" into a Persona
func ParsePersona(name string) (Persona, error) {
	for i, n := range personaNames {
		if strings.EqualFold(n, name) {
			return Persona(i), nil
		}
	}
	return 0, fmt.Errorf("unknown persona %q", name)
}

// Seat is a player at the table. Stack and Out persist across hands, the
// remaining fields are reset at the start of every hand.
type Seat struct {
	Name    string
	IsAI    bool
	Persona Persona

	Stack int
	Out   bool // busted, no longer dealt in

	Hand     []deck.Card
	Folded   bool
	AllIn    bool
	RoundBet int // contribution on the current street
	TotalBet int // contribution over the whole hand
}

// NewSeat creates a seat. Every persona other than Human is AI controlled.
func NewSeat(name string, persona Persona, stack int) *Seat {
	return &Seat{
		Name:    name,
		IsAI:    persona != Human,
		Persona: persona,
		Stack:   stack,
	}
}

// ResetForHand clears private cards and per-hand betting state
func (s *Seat) ResetForHand() {
	s.Hand = s.Hand[:0]
	s.Folded = false
	s.AllIn = false
	s.RoundBet = 0
	s.TotalBet = 0
}

// commit moves up to amount chips from the stack into the pot and returns
// what was actually paid. Reaching a zero stack marks the seat all-in.
func (s *Seat) commit(amount int) int {
	pay := min(max(amount, 0), s.Stack)
	s.Stack -= pay
	s.RoundBet += pay
	s.TotalBet += pay
	if s.Stack == 0 {
		s.AllIn = true
	}
	return pay
}

func (s *Seat) String() string {
	return fmt.Sprintf("%s (%s, %s)", s.Name, s.Persona, money(s.Stack))
}
