// Package handsource loads hands from a text description, one hand per line:
//
//	10D, JD, QD, KD, AD
//	2C,3C,4C,5C,7H
//
// Every card is validated and a card may appear only once in the whole
// source. Failures wrap one of the package sentinels, or the card parsing
// errors of the poker package, and carry the line number.
package handsource
