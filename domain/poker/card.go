package poker

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
)

var (
	ErrInvalidRank    = errors.New("invalid rank")
	ErrInvalidSuit    = errors.New("invalid suit")
	ErrMalformedToken = errors.New("malformed card token")
)

// Rank is the face value of a card, from 2 to 14 (Ace).
type Rank int

// Rank constants for face cards and ace
const (
	Jack  Rank = 11 // J
	Queen Rank = 12 // Q
	King  Rank = 13 // K
	Ace   Rank = 14 // A (high, except in the A-2-3-4-5 straight)
)

// aceLow is the value an Ace takes in the A-2-3-4-5 straight.
const aceLow Rank = 1

// Ranks returns every rank from 2 to Ace in ascending order.
func Ranks() []Rank {
	ranks := make([]Rank, 0, 13)
	for r := Rank(2); r <= Ace; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// rankTokens maps every rank token to its Rank.
var rankTokens = map[string]Rank{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9, "10": 10,
	"J": Jack, "Q": Queen, "K": King, "A": Ace,
}

// ParseRank converts a rank token ("2".."10", "J", "Q", "K", "A") to a Rank.
func ParseRank(token string) (Rank, error) {
	if r, ok := rankTokens[token]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRank, token)
}

// Valid reports whether r is in the 2..14 range.
func (r Rank) Valid() bool {
	return r >= 2 && r <= Ace
}

// String returns the canonical token of the rank.
func (r Rank) String() string {
	switch r {
	case Ace, aceLow:
		return "A"
	case King:
		return "K"
	case Queen:
		return "Q"
	case Jack:
		return "J"
	default:
		return strconv.Itoa(int(r))
	}
}

// Suit is one of the four French suits, identified by its letter.
type Suit byte

const (
	Diamonds Suit = 'D'
	Clubs    Suit = 'C'
	Hearts   Suit = 'H'
	Spades   Suit = 'S'
)

// suitWeight ranks suits for tie-breaks only: Diamonds < Clubs < Hearts < Spades.
// It plays no part in deciding a hand's category.
var suitWeight = map[Suit]int{
	Diamonds: 1,
	Clubs:    2,
	Hearts:   3,
	Spades:   4,
}

// Suits returns the four suits in the order a fresh deck is built.
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

// ParseSuit converts a one letter suit token (D, C, H, S) to a Suit.
func ParseSuit(token string) (Suit, error) {
	if len(token) == 1 {
		s := Suit(token[0])
		if _, ok := suitWeight[s]; ok {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, token)
}

// Weight returns the tie-break ordinal of the suit, 0 for an unknown suit.
func (s Suit) Weight() int {
	return suitWeight[s]
}

func (s Suit) String() string {
	return string(s)
}

// symbol returns the suit glyph, coloured like a physical card.
func (s Suit) symbol() string {
	switch s {
	case Clubs:
		return pterm.Black("♣")
	case Diamonds:
		return pterm.LightRed("♦")
	case Hearts:
		return pterm.LightRed("♥")
	case Spades:
		return pterm.Black("♠")
	default:
		return "?"
	}
}

// Card represents a playing card with rank and suit. Cards are values: two
// cards are equal when both rank and suit are equal.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a Card from a rank token and a suit token.
//
// Parameters:
//   - rank: "2".."10", "J", "Q", "K" or "A"
//   - suit: "D", "C", "H" or "S"
//
// Returns the Card, or an error wrapping ErrInvalidRank or ErrInvalidSuit.
func NewCard(rank string, suit string) (Card, error) {
	r, err := ParseRank(rank)
	if err != nil {
		return Card{}, err
	}
	s, err := ParseSuit(suit)
	if err != nil {
		return Card{}, err
	}
	return Card{rank: r, suit: s}, nil
}

// MakeCard creates a Card from already typed values.
func MakeCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidRank, int(rank))
	}
	if suit.Weight() == 0 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidSuit, string(suit))
	}
	return Card{rank: rank, suit: suit}, nil
}

// ParseCard parses the hand notation of a card, a rank token followed by a
// suit letter ("10D", "AS"). Tokens shorter than two characters wrap
// ErrMalformedToken.
func ParseCard(token string) (Card, error) {
	if len(token) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrMalformedToken, token)
	}
	return NewCard(token[:len(token)-1], token[len(token)-1:])
}

// MustParseCards parses every token and panics on the first error. It is meant
// for card literals in tests.
func MustParseCards(tokens ...string) []Card {
	cards := make([]Card, 0, len(tokens))
	for _, t := range tokens {
		c, err := ParseCard(t)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return cards
}

// Rank returns the rank of the card (2-14).
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit of the card.
func (c Card) Suit() Suit {
	return c.suit
}

// String returns the hand notation of the card, e.g. "10D" or "AS".
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// Symbol returns the card with a coloured suit glyph, e.g. "A♠".
func (c Card) Symbol() string {
	return c.rank.String() + c.suit.symbol()
}
