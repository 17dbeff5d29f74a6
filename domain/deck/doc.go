// Package deck supplies cards to the hand engine: a standard 52 card deck,
// the shufflers that randomize it and the dealer that hands out five card
// hands one card per player per round.
//
// # Shufflers
//
// NewCryptoShuffler draws every swap from the Ed25519 suite's random stream.
// NewSeededShuffler gives the same order for the same seed, for tests and
// reproducible runs.
package deck
