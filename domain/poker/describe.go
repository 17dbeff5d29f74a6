package poker

import (
	"fmt"

	phpoker "github.com/paulhankin/poker"
)

// Describe returns the short notation of the hand, such as "AA-KK-2" for two
// pair with a deuce, "KJ962 flush" or "5 straight" for A-2-3-4-5. Tens are
// written "T". The category is decided by Classify; this text is only for
// display.
func Describe(h Hand) (string, error) {
	h.mustBeFive()
	cards := make([]phpoker.Card, 0, HandSize)
	for _, c := range h {
		pc, err := toDescribeCard(c)
		if err != nil {
			return "", err
		}
		cards = append(cards, pc)
	}
	return phpoker.Describe(cards)
}

// toDescribeCard converts a card to the describer's representation, where
// suits count clubs, diamonds, hearts, spades from 0 and an Ace is rank 1.
func toDescribeCard(c Card) (phpoker.Card, error) {
	var (
		none phpoker.Card
		suit uint8
	)
	switch c.suit {
	case Clubs:
		suit = 0
	case Diamonds:
		suit = 1
	case Hearts:
		suit = 2
	case Spades:
		suit = 3
	default:
		return none, fmt.Errorf("%w: %q", ErrInvalidSuit, string(c.suit))
	}
	rank := c.rank
	if rank == Ace {
		rank = aceLow
	}
	card, err := phpoker.MakeCard(phpoker.Suit(suit), phpoker.Rank(rank))
	if err != nil {
		return none, fmt.Errorf("invalid card %s: %w", c, err)
	}
	return card, nil
}
