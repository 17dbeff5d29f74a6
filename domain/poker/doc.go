// Package poker implements the five card hand engine: the card model, hand
// classification, the tie-break comparator and the ordering of a set of hands.
//
// # Core Types
//
// Card: An immutable rank and suit pair, parsed from and rendered to the hand
// notation used by hand files ("10D", "AS").
//
// Hand: Exactly five cards evaluated together.
//
// Category: One of the ten hand classifications, from High Card to Royal
// Straight Flush.
//
// # Ordering
//
// Two independent tables drive every decision. The category strength table
// is the primary key between hands. The suit weight table (Diamonds < Clubs <
// Hearts < Spades) is consulted only when every rank based rule is equal.
//
// Compare returns 0 for hands that no rule tells apart, and RankHands keeps
// such hands in input order.
//
// # Contract
//
// The engine assumes valid input: five distinct cards per hand. Validating
// hand files and detecting duplicated cards is the job of the loader.
package poker
