package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lox/holdem-cli/internal/deck"
)

// ErrChipsNotConserved is returned when a hand creates or destroys chips
var ErrChipsNotConserved = errors.New("chip total changed during hand")

// HandOutcome summarises a finished hand
type HandOutcome struct {
	// GameOver is set when fewer than two seats had chips, in which case no
	// hand was dealt and Winner holds the last seat standing (or NoSeat).
	GameOver bool
	Winner   int

	Uncontested bool
	Street      Street // street on which the hand ended
	Payouts     []Payout
}

// PlayHand plays one complete hand: busting broke seats, dealing, blinds,
// the four betting streets and the showdown.
func PlayHand(ctx context.Context, s *State, deps Deps) (HandOutcome, error) {
	logger := deps.logger()
	s.HandNum++
	s.HandCount++
	s.Reveal = false
	s.Board = s.Board[:0]
	s.Burn = s.Burn[:0]
	ResetRoundBets(s)

	for _, seat := range s.Seats {
		if seat.Stack == 0 && !seat.Out {
			seat.Out = true
			if seat.IsAI {
				deps.Log.printf("%s is out.", seat.Name)
			}
		}
		seat.ResetForHand()
	}

	if alive := Contenders(s); len(alive) <= 1 {
		outcome := HandOutcome{GameOver: true, Winner: NoSeat}
		if len(alive) == 1 {
			outcome.Winner = alive[0]
			if s.Seats[alive[0]].IsAI {
				deps.Log.printf("Game over. Winner: %s.", s.Seats[alive[0]].Name)
			} else {
				deps.Log.printf("Congratulations! You won the game.")
			}
		}
		deps.render()
		return outcome, nil
	}

	chips := s.TotalChips()
	logger.Debug("Starting hand", "hand", s.HandNum, "dealer", s.Seats[s.Dealer].Name, "chips", chips)

	s.prepareDeck()
	for range 2 {
		for _, seat := range s.Seats {
			if !seat.Out {
				seat.Hand = append(seat.Hand, s.Deck.Deal())
			}
		}
	}

	PostBlinds(s, deps.Log)
	s.Street = Preflop
	deps.render()

	outcome, err := playStreets(ctx, s, deps)
	if err != nil {
		return outcome, err
	}
	deps.render()

	if err := ValidateChips(s, chips); err != nil {
		return outcome, err
	}
	logger.Debug("Hand complete", "hand", s.HandNum, "street", outcome.Street, "uncontested", outcome.Uncontested)
	return outcome, nil
}

func playStreets(ctx context.Context, s *State, deps Deps) (HandOutcome, error) {
	start := s.Dealer
	if s.BBIdx != NoSeat {
		start = s.BBIdx
	}
	res, err := RunBettingRound(ctx, s, NextIdx(s, start), deps)
	if err != nil {
		return HandOutcome{Winner: NoSeat}, err
	}
	if res == RoundEnded {
		return uncontested(s), nil
	}

	for _, street := range []Street{Flop, Turn, River} {
		ResetRoundBets(s)
		s.Street = street
		s.Burn = append(s.Burn, s.Deck.Deal())
		if street == Flop {
			s.Board = append(s.Board, s.Deck.DealN(3)...)
		} else {
			s.Board = append(s.Board, s.Deck.Deal())
		}
		logStreet(s, deps.Log)
		deps.render()

		res, err := RunBettingRound(ctx, s, NextIdx(s, s.Dealer), deps)
		if err != nil {
			return HandOutcome{Winner: NoSeat, Street: street}, err
		}
		if res == RoundEnded {
			return uncontested(s), nil
		}
	}

	ResetRoundBets(s)
	s.Street = Showdown
	deps.Log.printf("=== SHOWDOWN ===")
	payouts := SettleShowdown(s, deps.Log)
	return HandOutcome{Winner: NoSeat, Street: Showdown, Payouts: payouts}, nil
}

func uncontested(s *State) HandOutcome {
	ResetRoundBets(s)
	return HandOutcome{Winner: OnlyContender(s), Uncontested: true, Street: s.Street}
}

func logStreet(s *State, log LogFunc) {
	switch s.Street {
	case Flop:
		log.printf("=== FLOP: %s ===", formatCards(s.Board))
	case Turn:
		log.printf("=== TURN: %s | Board: %s ===", s.Board[3], formatCards(s.Board))
	case River:
		log.printf("=== RIVER: %s | Board: %s ===", s.Board[4], formatCards(s.Board))
	}
}

func formatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// ValidateChips checks that the table still holds exactly want chips
func ValidateChips(s *State, want int) error {
	if got := s.TotalChips(); got != want {
		return fmt.Errorf("%w: have %d, want %d", ErrChipsNotConserved, got, want)
	}
	return nil
}
