package poker

import (
	"fmt"
	"strings"
)

// HandSize is the number of cards in every evaluated hand.
const HandSize = 5

// Hand is a five card poker hand. The order of the cards is kept for display
// but never affects evaluation.
type Hand []Card

// NewHand builds a Hand from exactly five cards.
func NewHand(cards ...Card) (Hand, error) {
	if len(cards) != HandSize {
		return nil, fmt.Errorf("a hand needs %d cards, got %d", HandSize, len(cards))
	}
	h := make(Hand, HandSize)
	copy(h, cards)
	return h, nil
}

// MustHand parses five card tokens into a Hand and panics on error.
func MustHand(tokens ...string) Hand {
	h, err := NewHand(MustParseCards(tokens...)...)
	if err != nil {
		panic(err)
	}
	return h
}

// Tokens returns the hand notation of every card, in hand order.
func (h Hand) Tokens() []string {
	tokens := make([]string, len(h))
	for i, c := range h {
		tokens[i] = c.String()
	}
	return tokens
}

// String renders the hand as space separated card tokens.
func (h Hand) String() string {
	return strings.Join(h.Tokens(), " ")
}

// Symbols renders the hand with suit glyphs.
func (h Hand) Symbols() string {
	s := make([]string, len(h))
	for i, c := range h {
		s[i] = c.Symbol()
	}
	return strings.Join(s, " ")
}

func (h Hand) clone() Hand {
	c := make(Hand, len(h))
	copy(c, h)
	return c
}

// mustBeFive enforces the evaluation precondition.
func (h Hand) mustBeFive() {
	if len(h) != HandSize {
		panic(fmt.Sprintf("poker: hand has %d cards, want %d", len(h), HandSize))
	}
}
