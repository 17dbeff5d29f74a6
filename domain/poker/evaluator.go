package poker

import (
	"cmp"
	"slices"
)

// Evaluation holds the facts derived from a hand that decide how it ranks.
// Only the fields relevant to Category are meaningful.
type Evaluation struct {
	Category Category

	// High is the highest card of the hand with Ace high. Between cards of
	// equal rank the one with the heavier suit is taken.
	High Card
	// StraightHigh is the top card of a straight, the 5 for A-2-3-4-5.
	StraightHigh Card

	Quad    Rank
	Triplet Rank
	// Pairs lists the paired ranks, highest first.
	Pairs []Rank
	// Kicker is the highest card whose rank occurs exactly once.
	Kicker    Card
	HasKicker bool
}

// Classify maps a five card hand to its category. Passing a hand of any other
// size is a programming error and panics.
func Classify(h Hand) Category {
	return Evaluate(h).Category
}

// Evaluate classifies the hand and collects its tie-break attributes.
func Evaluate(h Hand) Evaluation {
	h.mustBeFive()
	cards := h.clone()

	var occurrences [int(Ace) + 1]int
	suits := make(map[Suit]int, 4)
	for _, c := range cards {
		occurrences[c.rank]++
		suits[c.suit]++
	}

	e := Evaluation{High: highest(cards)}

	flush := len(suits) == 1
	straight := isStraight(occurrences)
	aceLowStraight := straight && isAceLow(occurrences)
	if straight {
		e.StraightHigh = e.High
		if aceLowStraight {
			e.StraightHigh = straightTopOfWheel(cards)
		}
	}

	threeCount, pairCount := 0, 0
	for r := Ace; r >= 2; r-- {
		switch occurrences[r] {
		case 4:
			e.Quad = r
		case 3:
			e.Triplet = r
			threeCount++
		case 2:
			e.Pairs = append(e.Pairs, r)
			pairCount++
		}
	}
	for _, c := range cards {
		if occurrences[c.rank] != 1 {
			continue
		}
		if !e.HasKicker || cardCompare(c, e.Kicker) > 0 {
			e.Kicker = c
			e.HasKicker = true
		}
	}

	switch {
	case flush && straight && !aceLowStraight && minRank(occurrences) == 10:
		e.Category = RoyalFlush
	case flush && straight:
		e.Category = StraightFlush
	case e.Quad != 0:
		e.Category = FourOfAKind
	case threeCount == 1 && pairCount == 1:
		e.Category = FullHouse
	case flush:
		e.Category = Flush
	case straight:
		e.Category = Straight
	case threeCount == 1:
		e.Category = ThreeOfAKind
	case pairCount == 2:
		e.Category = TwoPair
	case pairCount == 1:
		e.Category = Pair
	default:
		e.Category = HighCard
	}
	return e
}

// Compare orders two hands. It returns a positive number when a beats b, a
// negative number when b beats a and 0 when no rule tells them apart.
func Compare(a, b Hand) int {
	return Evaluate(a).Compare(Evaluate(b))
}

// Compare orders two evaluations, see Compare for the meaning of the result.
func (e Evaluation) Compare(o Evaluation) int {
	if e.Category != o.Category {
		return cmp.Compare(e.Category.Strength(), o.Category.Strength())
	}

	switch e.Category {
	case Flush, StraightFlush, RoyalFlush, HighCard:
		return cardCompare(e.High, o.High)
	case Straight:
		return cardCompare(e.StraightHigh, o.StraightHigh)
	case TwoPair:
		if c := cmp.Compare(e.Pairs[0], o.Pairs[0]); c != 0 {
			return c
		}
		if c := cmp.Compare(e.Pairs[1], o.Pairs[1]); c != 0 {
			return c
		}
		return cmp.Compare(e.Kicker.suit.Weight(), o.Kicker.suit.Weight())
	case Pair:
		if c := cmp.Compare(e.Pairs[0], o.Pairs[0]); c != 0 {
			return c
		}
		// Only the kicker's suit counts, its rank is ignored.
		return cmp.Compare(e.Kicker.suit.Weight(), o.Kicker.suit.Weight())
	case FourOfAKind:
		return cmp.Compare(e.Quad, o.Quad)
	case ThreeOfAKind:
		return cmp.Compare(e.Triplet, o.Triplet)
	case FullHouse:
		if c := cmp.Compare(e.Triplet, o.Triplet); c != 0 {
			return c
		}
		return cmp.Compare(e.Pairs[0], o.Pairs[0])
	}
	return 0
}

// cardCompare orders cards by rank, then by suit weight.
func cardCompare(a, b Card) int {
	if c := cmp.Compare(a.rank, b.rank); c != 0 {
		return c
	}
	return cmp.Compare(a.suit.Weight(), b.suit.Weight())
}

func highest(cards []Card) Card {
	return slices.MaxFunc(cards, cardCompare)
}

// isStraight reports five distinct consecutive ranks, or the A-2-3-4-5 wheel.
func isStraight(occurrences [int(Ace) + 1]int) bool {
	distinct := 0
	for r := 2; r <= int(Ace); r++ {
		if occurrences[r] > 1 {
			return false
		}
		distinct += occurrences[r]
	}
	if distinct != HandSize {
		return false
	}
	if isAceLow(occurrences) {
		return true
	}
	low := minRank(occurrences)
	for r := low; r < low+HandSize; r++ {
		if r > Ace || occurrences[r] != 1 {
			return false
		}
	}
	return true
}

func isAceLow(occurrences [int(Ace) + 1]int) bool {
	for _, r := range []Rank{2, 3, 4, 5, Ace} {
		if occurrences[r] != 1 {
			return false
		}
	}
	return true
}

func minRank(occurrences [int(Ace) + 1]int) Rank {
	for r := Rank(2); r <= Ace; r++ {
		if occurrences[r] > 0 {
			return r
		}
	}
	return 0
}

// straightTopOfWheel returns the highest card of A-2-3-4-5 once the Ace counts
// as 1, which is the 5.
func straightTopOfWheel(cards []Card) Card {
	low := make([]Card, len(cards))
	for i, c := range cards {
		if c.rank == Ace {
			c.rank = aceLow
		}
		low[i] = c
	}
	return highest(low)
}
