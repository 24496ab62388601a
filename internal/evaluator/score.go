package evaluator

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-cli/internal/deck"
)

// Category is the class of a five-card poker hand, ordered weakest to strongest
type Category int

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Score is the comparable strength of a five-card hand.
//
// Key holds the category followed by the tie-break ranks in significance
// order, so comparing two keys left to right (missing slots count as zero)
// orders hands exactly as poker does.
type Score struct {
	Category Category
	Key      []int
	Cards    []deck.Card // the five cards that produced this score
}

// Compare compares two scores and returns:
// -1 if a is weaker than b
//
//	0 if a and b tie
//	1 if a is stronger than b
func Compare(a, b Score) int {
	n := max(len(a.Key), len(b.Key))
	for i := 0; i < n; i++ {
		left, right := keyAt(a.Key, i), keyAt(b.Key, i)
		if left != right {
			if left > right {
				return 1
			}
			return -1
		}
	}
	return 0
}

func keyAt(key []int, i int) int {
	if i < len(key) {
		return key[i]
	}
	return 0
}

// Beats reports whether s is strictly stronger than other
func (s Score) Beats(other Score) bool {
	return Compare(s, other) > 0
}

func (s Score) ranks() []deck.Rank {
	if len(s.Key) < 2 {
		return nil
	}
	out := make([]deck.Rank, len(s.Key)-1)
	for i, v := range s.Key[1:] {
		out[i] = deck.Rank(v)
	}
	return out
}

// String returns a full description, e.g. "Full House, Kings over Sevens"
func (s Score) String() string {
	r := s.ranks()
	switch s.Category {
	case StraightFlush:
		return fmt.Sprintf("Straight Flush, %s-High", r[0].Name())
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind, %s%s", r[0].Plural(), kickerText(r[1:]))
	case FullHouse:
		return fmt.Sprintf("Full House, %s over %s", r[0].Plural(), r[1].Plural())
	case Flush:
		return "Flush, " + hyphenNames(r)
	case Straight:
		return fmt.Sprintf("Straight, %s-High", r[0].Name())
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %s%s", r[0].Plural(), kickerText(r[1:]))
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s%s", r[0].Plural(), r[1].Plural(), kickerText(r[2:]))
	case OnePair:
		return fmt.Sprintf("One Pair, %s%s", r[0].Plural(), kickerText(r[1:]))
	case HighCard:
		return "High Card, " + hyphenNames(r)
	default:
		return "Unknown"
	}
}

// Short returns a compact description, e.g. "Straight (5-high)"
func (s Score) Short() string {
	r := s.ranks()
	switch s.Category {
	case StraightFlush:
		return fmt.Sprintf("Straight Flush (%s-high)", r[0])
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind (%s)", r[0].Plural())
	case FullHouse:
		return fmt.Sprintf("Full House (%s over %s)", r[0].Plural(), r[1].Plural())
	case Flush:
		return fmt.Sprintf("Flush (%s)", hyphenSymbols(r))
	case Straight:
		return fmt.Sprintf("Straight (%s-high)", r[0])
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind (%s)", r[0].Plural())
	case TwoPair:
		return fmt.Sprintf("Two Pair (%s and %s, %s kicker)", r[0].Plural(), r[1].Plural(), r[2].Name())
	case OnePair:
		return fmt.Sprintf("One Pair (%s, %s kickers)", r[0].Plural(), hyphenSymbols(r[1:]))
	case HighCard:
		return fmt.Sprintf("High Card (%s)", hyphenSymbols(r))
	default:
		return "Unknown"
	}
}

func hyphenNames(ranks []deck.Rank) string {
	names := make([]string, len(ranks))
	for i, r := range ranks {
		names[i] = r.Name()
	}
	return strings.Join(names, "-")
}

func hyphenSymbols(ranks []deck.Rank) string {
	syms := make([]string, len(ranks))
	for i, r := range ranks {
		syms[i] = r.String()
	}
	return strings.Join(syms, "-")
}

func kickerText(kickers []deck.Rank) string {
	switch len(kickers) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf(" (%s kicker)", kickers[0].Name())
	case 2:
		return fmt.Sprintf(" (%s and %s kickers)", kickers[0].Name(), kickers[1].Name())
	}
	names := make([]string, len(kickers)-1)
	for i, k := range kickers[:len(kickers)-1] {
		names[i] = k.Name()
	}
	return fmt.Sprintf(" (%s and %s kickers)", strings.Join(names, ", "), kickers[len(kickers)-1].Name())
}
