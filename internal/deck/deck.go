package deck

import (
	"math/rand/v2"
)

// Size is the number of cards in a standard deck
const Size = 52

// Deck represents a deck of playing cards. Cards are dealt from the tail.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a full, unshuffled 52-card deck drawing randomness from rng.
// Callers should pass randutil.NewCrypto() outside of tests.
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("deck: rng is required")
	}
	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}
	d.Reset()
	return d
}

// Reset restores the canonical 52-card order without shuffling
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
}

// Shuffle permutes the remaining cards in place using Fisher-Yates.
// rand.IntN draws without modulo bias.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the card at the tail of the deck.
// Dealing from an empty deck is a programming error and panics.
func (d *Deck) Deal() Card {
	n := len(d.cards)
	if n == 0 {
		panic("deck: deal from empty deck")
	}
	card := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return card
}

// DealN deals n cards from the tail
func (d *Deck) DealN(n int) []Card {
	cards := make([]Card, n)
	for i := range cards {
		cards[i] = d.Deal()
	}
	return cards
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, tail last
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Stack replaces the deck contents with cards so that the last element is
// dealt first. Used to set up deterministic hands.
func (d *Deck) Stack(cards []Card) {
	d.cards = append(d.cards[:0], cards...)
}
