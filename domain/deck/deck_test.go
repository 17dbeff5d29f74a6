package deck

import (
	"errors"
	"testing"

	"github.com/luca-patrignani/poker-hand-analyzer/domain/poker"
)

func TestNewDeckHasUniqueCards(t *testing.T) {
	t.Parallel()

	d := New()
	if d.Len() != Size {
		t.Fatalf("expected %d cards, got %d", Size, d.Len())
	}

	seen := map[poker.Card]struct{}{}
	suits := map[poker.Suit]int{}
	ranks := map[poker.Rank]int{}
	for _, c := range d.Cards() {
		if _, ok := seen[c]; ok {
			t.Fatalf("duplicate card %s", c)
		}
		seen[c] = struct{}{}
		suits[c.Suit()]++
		ranks[c.Rank()]++
	}
	if len(suits) != 4 {
		t.Fatalf("expected 4 suits, got %d", len(suits))
	}
	if len(ranks) != 13 {
		t.Fatalf("expected 13 ranks, got %d", len(ranks))
	}
}

func TestNewDeckOrder(t *testing.T) {
	t.Parallel()

	cards := New().Cards()
	if cards[0].String() != "2H" || cards[12].String() != "AH" {
		t.Fatalf("expected hearts first, got %s ... %s", cards[0], cards[12])
	}
	if cards[13].String() != "2D" || cards[51].String() != "AS" {
		t.Fatalf("unexpected order: %s ... %s", cards[13], cards[51])
	}
}

func TestDealIsRoundRobin(t *testing.T) {
	t.Parallel()

	d := New()
	top := d.Cards()
	hands, err := d.Deal(6)
	if err != nil {
		t.Fatal(err)
	}
	if len(hands) != 6 {
		t.Fatalf("expected 6 hands, got %d", len(hands))
	}
	for i, h := range hands {
		if len(h) != poker.HandSize {
			t.Fatalf("hand %d has %d cards", i, len(h))
		}
		for round, c := range h {
			if want := top[round*6+i]; c != want {
				t.Fatalf("hand %d round %d: expected %s, got %s", i, round, want, c)
			}
		}
	}
	if d.Len() != Size-30 {
		t.Fatalf("expected %d cards left, got %d", Size-30, d.Len())
	}
	if d.Cards()[0] != top[30] {
		t.Fatalf("expected %s on top, got %s", top[30], d.Cards()[0])
	}
}

func TestDealRejectsTooManyPlayers(t *testing.T) {
	t.Parallel()

	d := New()
	if _, err := d.Deal(11); !errors.Is(err, ErrNotEnoughCards) {
		t.Fatalf("expected ErrNotEnoughCards, got %v", err)
	}
	if d.Len() != Size {
		t.Fatalf("a failed deal must not consume cards, %d left", d.Len())
	}
	if _, err := d.Deal(0); err == nil {
		t.Fatal("expected error for 0 players")
	}
	if _, err := d.Deal(10); err != nil {
		t.Fatalf("10 hands fit in a deck: %v", err)
	}
}

func TestDrawEmptyDeck(t *testing.T) {
	t.Parallel()

	d := FromCards(poker.MustParseCards("AS"))
	if _, err := d.Draw(); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Draw(); !errors.Is(err, ErrNotEnoughCards) {
		t.Fatalf("expected ErrNotEnoughCards, got %v", err)
	}
}
