package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankHands_SixDistinctCategories(t *testing.T) {
	t.Parallel()

	hands := []Hand{
		MustHand("QD", "QC", "2H", "5S", "9D"),   // pair
		MustHand("10D", "JD", "QH", "KD", "AD"),  // straight
		MustHand("7D", "7C", "7H", "7S", "2D"),   // four of a kind
		MustHand("2C", "6C", "9C", "JC", "KC"),   // flush
		MustHand("3D", "4C", "8H", "JS", "KH"),   // high card
		MustHand("10H", "JH", "QS", "KS", "AS"), // straight, ace high
	}

	r := RankHands(hands)
	require.Len(t, r.Ordered, len(hands))

	want := []Category{FourOfAKind, Flush, Straight, Straight, Pair, HighCard}
	for i, rh := range r.Ordered {
		assert.Equal(t, want[i], rh.Category, "position %d", i)
	}
	for i := 0; i < len(r.Ordered)-1; i++ {
		assert.GreaterOrEqual(t, r.Ordered[i].Category.Strength(), r.Ordered[i+1].Category.Strength())
	}

	// The two ace high straights split on the suit of the Ace.
	assert.Equal(t, 5, r.Ordered[2].Position)
	assert.Equal(t, 1, r.Ordered[3].Position)
}

func TestRankHands_StrictCategoryOrder(t *testing.T) {
	t.Parallel()

	hands := []Hand{
		MustHand("2D", "5C", "9H", "JS", "KD"),
		MustHand("8D", "8C", "8H", "4S", "4D"),
		MustHand("10C", "JC", "QC", "KC", "AC"),
		MustHand("6D", "6C", "3H", "3S", "QD"),
		MustHand("9S", "10S", "JS", "QS", "KS"),
		MustHand("AH", "AS", "5D", "7H", "JD"),
	}
	r := RankHands(hands)

	got := make([]Category, len(r.Ordered))
	for i, rh := range r.Ordered {
		got[i] = rh.Category
	}
	assert.Equal(t, []Category{RoyalFlush, StraightFlush, FullHouse, TwoPair, Pair, HighCard}, got)

	winner, ok := r.Winner()
	require.True(t, ok)
	assert.Equal(t, 2, winner.Position)
}

func TestRankHands_CategoriesInInputOrder(t *testing.T) {
	t.Parallel()

	hands := []Hand{
		MustHand("2D", "5C", "9H", "JS", "KD"),
		MustHand("10C", "JC", "QC", "KC", "AC"),
		MustHand("AH", "AS", "5D", "7H", "JD"),
	}
	r := RankHands(hands)
	assert.Equal(t, []Category{HighCard, RoyalFlush, Pair}, r.Categories)
	assert.Equal(t, []int{1, 2, 0}, []int{r.Ordered[0].Position, r.Ordered[1].Position, r.Ordered[2].Position})
}

func TestRankHands_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	hands := []Hand{
		MustHand("2D", "5C", "9H", "JS", "KD"),
		MustHand("10C", "JC", "QC", "KC", "AC"),
	}
	before := []string{hands[0].String(), hands[1].String()}
	RankHands(hands)
	assert.Equal(t, before, []string{hands[0].String(), hands[1].String()})
}

func TestRankHands_TiesKeepInputOrder(t *testing.T) {
	t.Parallel()

	a := MustHand("JD", "JC", "AS", "3S", "4D")
	b := MustHand("4D", "3S", "AS", "JC", "JD")
	r := RankHands([]Hand{a, b})
	assert.Equal(t, 0, r.Ordered[0].Position)
	assert.Equal(t, 1, r.Ordered[1].Position)

	sorted := SortHands([]Hand{b, a})
	assert.Equal(t, b.String(), sorted[0].String())
}

func TestRankHands_Empty(t *testing.T) {
	t.Parallel()

	r := RankHands(nil)
	assert.Empty(t, r.Ordered)
	_, ok := r.Winner()
	assert.False(t, ok)
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hand Hand
		want string
	}{
		{MustHand("AD", "AC", "KD", "KC", "2S"), "AA-KK-2"},
		{MustHand("2D", "3C", "4H", "5S", "AD"), "5 straight"},
		{MustHand("2C", "6C", "9C", "JC", "KC"), "KJ962 flush"},
		{MustHand("3H", "9H", "QH", "10H", "AH"), "AQT93 flush"},
		{MustHand("10D", "JD", "QD", "KD", "AD"), "A straight flush"},
		{MustHand("QD", "QC", "2H", "5S", "9D"), "QQ-9-5-2"},
		{MustHand("9D", "10C", "7S", "2S", "AH"), "A-T-9-7-2"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got, err := Describe(tc.hand)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToDescribeCardSuits(t *testing.T) {
	t.Parallel()

	for token, want := range map[string]string{
		"AC":  "CA",
		"10D": "DT",
		"KH":  "HK",
		"2S":  "S2",
	} {
		c, err := toDescribeCard(MustParseCards(token)[0])
		require.NoError(t, err)
		assert.Equal(t, want, c.String(), token)
	}
}
