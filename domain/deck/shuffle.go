package deck

import (
	"math/big"
	"math/rand"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"

	"github.com/luca-patrignani/poker-hand-analyzer/domain/poker"
)

// Shuffler reorders a pile of cards in place.
type Shuffler interface {
	Shuffle(cards []poker.Card) error
}

var suite suites.Suite = suites.MustFind("Ed25519")

type cryptoShuffler struct{}

type seededShuffler struct {
	rng *rand.Rand
}

// NewCryptoShuffler returns a Shuffler that draws every swap index from the
// Ed25519 suite's random stream, so the order cannot be predicted.
func NewCryptoShuffler() Shuffler {
	return cryptoShuffler{}
}

// NewSeededShuffler returns a Shuffler that produces the same order for the
// same seed.
func NewSeededShuffler(seed int64) Shuffler {
	return seededShuffler{rng: rand.New(rand.NewSource(seed))}
}

// Shuffle runs a Fisher-Yates pass over cards.
func (cryptoShuffler) Shuffle(cards []poker.Card) error {
	stream := suite.RandomStream()
	for i := len(cards) - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), stream).Int64())
		cards[i], cards[j] = cards[j], cards[i]
	}
	return nil
}

// Shuffle runs a Fisher-Yates pass over cards.
func (s seededShuffler) Shuffle(cards []poker.Card) error {
	for i := len(cards) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return nil
}
