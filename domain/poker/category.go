package poker

// Category is the classification of a five card hand.
type Category uint8

const (
	HighCard Category = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// categoryStrength is the total order between categories, weakest first. It
// is the primary key when comparing two hands and does not depend on the
// declaration order above.
var categoryStrength = map[Category]int{
	HighCard:      1,
	Pair:          2,
	TwoPair:       3,
	ThreeOfAKind:  4,
	Straight:      5,
	Flush:         6,
	FullHouse:     7,
	FourOfAKind:   8,
	StraightFlush: 9,
	RoyalFlush:    10,
}

var categoryLabel = map[Category]string{
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three Of A Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four Of A Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Straight Flush",
}

// Categories returns all categories from strongest to weakest.
func Categories() []Category {
	return []Category{
		RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
		Straight, ThreeOfAKind, TwoPair, Pair, HighCard,
	}
}

// Strength returns the position of the category in the ranking table, 1 for
// HighCard up to 10 for RoyalFlush. Unknown categories have strength 0.
func (c Category) Strength() int {
	return categoryStrength[c]
}

// Beats reports whether c is a strictly stronger category than o.
func (c Category) Beats(o Category) bool {
	return c.Strength() > o.Strength()
}

// String returns the human readable label of the category.
func (c Category) String() string {
	if l, ok := categoryLabel[c]; ok {
		return l
	}
	return "Unknown"
}
