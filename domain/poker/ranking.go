package poker

import "slices"

// RankedHand is a hand placed in a Ranking.
type RankedHand struct {
	Hand     Hand
	Category Category
	// Position is the index of the hand in the slice given to RankHands.
	Position int

	eval Evaluation
}

// Ranking is the outcome of ordering a set of hands.
type Ranking struct {
	// Ordered lists the hands from strongest to weakest.
	Ordered []RankedHand
	// Categories holds the category of each hand in input order.
	Categories []Category
}

// RankHands orders hands from strongest to weakest using Compare. Hands that
// Compare reports as tied keep their input order. The input is not modified.
func RankHands(hands []Hand) Ranking {
	r := Ranking{
		Ordered:    make([]RankedHand, len(hands)),
		Categories: make([]Category, len(hands)),
	}
	for i, h := range hands {
		e := Evaluate(h)
		r.Ordered[i] = RankedHand{Hand: h.clone(), Category: e.Category, Position: i, eval: e}
		r.Categories[i] = e.Category
	}
	slices.SortStableFunc(r.Ordered, func(a, b RankedHand) int {
		return b.eval.Compare(a.eval)
	})
	return r
}

// SortHands returns a copy of hands ordered from strongest to weakest.
func SortHands(hands []Hand) []Hand {
	ranking := RankHands(hands)
	sorted := make([]Hand, len(ranking.Ordered))
	for i, rh := range ranking.Ordered {
		sorted[i] = rh.Hand
	}
	return sorted
}

// Winner returns the strongest hand of the ranking.
func (r Ranking) Winner() (RankedHand, bool) {
	if len(r.Ordered) == 0 {
		return RankedHand{}, false
	}
	return r.Ordered[0], true
}
