package deck

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/poker-hand-analyzer/domain/poker"
)

// Size is the number of cards in a standard deck.
const Size = 52

var ErrNotEnoughCards = errors.New("not enough cards left in the deck")

// Deck is an ordered pile of cards. Cards are dealt from the top, which is
// the first element.
type Deck struct {
	cards []poker.Card
}

// New returns the 52 card deck in its factory order: hearts, diamonds, clubs
// and spades, each from 2 up to the Ace.
func New() *Deck {
	cards := make([]poker.Card, 0, Size)
	for _, suit := range poker.Suits() {
		for _, rank := range poker.Ranks() {
			card, err := poker.MakeCard(rank, suit)
			if err != nil {
				// Ranks and Suits only yield valid values.
				panic(err)
			}
			cards = append(cards, card)
		}
	}
	return &Deck{cards: cards}
}

// FromCards builds a deck holding a copy of cards, top card first.
func FromCards(cards []poker.Card) *Deck {
	return &Deck{cards: append([]poker.Card(nil), cards...)}
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the cards left in the deck, top card first.
func (d *Deck) Cards() []poker.Card {
	return append([]poker.Card(nil), d.cards...)
}

// Shuffle reorders the remaining cards with s.
func (d *Deck) Shuffle(s Shuffler) error {
	if err := s.Shuffle(d.cards); err != nil {
		return fmt.Errorf("shuffle deck: %w", err)
	}
	return nil
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (poker.Card, error) {
	if len(d.cards) == 0 {
		return poker.Card{}, ErrNotEnoughCards
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

// Deal deals five card hands to the given number of players, one card to
// each player per round, the way a dealer goes around the table. Nothing is
// dealt when the deck cannot cover every hand.
func (d *Deck) Deal(players int) ([]poker.Hand, error) {
	if players <= 0 {
		return nil, fmt.Errorf("cannot deal to %d players", players)
	}
	need := players * poker.HandSize
	if need > len(d.cards) {
		return nil, fmt.Errorf("%w: %d hands need %d cards, %d left", ErrNotEnoughCards, players, need, len(d.cards))
	}

	hands := make([]poker.Hand, players)
	for i := range hands {
		hands[i] = make(poker.Hand, 0, poker.HandSize)
	}
	for round := 0; round < poker.HandSize; round++ {
		for i := range hands {
			card, err := d.Draw()
			if err != nil {
				return nil, err
			}
			hands[i] = append(hands[i], card)
		}
	}
	return hands, nil
}
