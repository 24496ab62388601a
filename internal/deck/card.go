package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in canonical deck order
var Suits = [...]Suit{Clubs, Diamonds, Hearts, Spades}

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

// Rank represents a card rank, valued 2 (deuce) through 14 (ace)
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r >= Two && r <= Nine {
		return string(rune('0' + int(r)))
	}
	return "?"
}

// Name returns the spoken name of the rank ("Ace", "Seven")
func (r Rank) Name() string {
	return rankNames[r]
}

// Plural returns the plural spoken name of the rank ("Aces", "Sixes")
func (r Rank) Plural() string {
	if r == Six {
		return "Sixes"
	}
	return rankNames[r] + "s"
}

var rankNames = map[Rank]string{
	Two: "Two", Three: "Three", Four: "Four", Five: "Five", Six: "Six",
	Seven: "Seven", Eight: "Eight", Nine: "Nine", Ten: "Ten",
	Jack: "Jack", Queen: "Queen", King: "King", Ace: "Ace",
}

// Valid reports whether r is within 2..14
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Value returns the numeric rank value (2-14)
func (c Card) Value() int {
	return int(c.Rank)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Valid reports whether the card has a legal rank and suit
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// ASCII returns the two-letter form used by ParseCards (e.g., "As")
func (c Card) ASCII() string {
	return c.Rank.String() + string("cdhs"[c.Suit])
}
