package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/luca-patrignani/poker-hand-analyzer/domain/poker"
)

// DeckLineWidth is the number of cards per line when a full deck is printed.
const DeckLineWidth = 13

const (
	Banner        = "*** P O K E R    H A N D    A N A L Y Z E R ***"
	RandomHeader  = "*** USING RANDOMIZED DECK OF CARDS ***"
	FileHeader    = "*** USING TEST DECK ***"
	RankingHeader = "--- WINNING HAND ORDER ---"
	DuplicateCard = "*** ERROR - DUPLICATED CARD FOUND IN DECK ***"
)

var countWords = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}

// Writer renders the sections of an analysis report as plain text.
// After the first failed write every method is a no-op returning that error.
type Writer struct {
	w        io.Writer
	describe bool
	err      error
}

type Option func(*Writer)

// WithDescribe appends the detailed hand description to every ranking line.
func WithDescribe(describe bool) Option {
	return func(w *Writer) {
		w.describe = describe
	}
}

func NewWriter(w io.Writer, opts ...Option) *Writer {
	rw := &Writer{w: w}
	for _, opt := range opts {
		opt(rw)
	}
	return rw
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

func (w *Writer) Banner() error {
	w.printf("%s\n", Banner)
	return w.err
}

// ShuffledDeck writes the randomized mode header followed by the deck,
// DeckLineWidth cards per line.
func (w *Writer) ShuffledDeck(cards []poker.Card) error {
	w.printf("\n\n%s\n", RandomHeader)
	w.printf("\n*** Shuffled %d card deck:\n", len(cards))
	for start := 0; start < len(cards); start += DeckLineWidth {
		end := min(start+DeckLineWidth, len(cards))
		w.printf("%s\n", joinCards(cards[start:end]))
	}
	w.printf("\n")
	return w.err
}

// Hands writes the dealt or loaded hands, one per line.
func (w *Writer) Hands(hands []poker.Hand) error {
	w.printf("*** Here are the %s hands...\n", countWord(len(hands)))
	for _, h := range hands {
		w.printf("%s\n", h)
	}
	w.printf("\n")
	return w.err
}

// Remaining writes the undealt cards on a single line.
func (w *Writer) Remaining(cards []poker.Card) error {
	w.printf("*** Here is what remains in the deck...\n")
	w.printf("%s\n\n", joinCards(cards))
	return w.err
}

// Source writes the file mode header and echoes the file content.
func (w *Writer) Source(path string, lines []string) error {
	w.printf("\n\n%s\n", FileHeader)
	w.printf("\n*** File: %s\n", path)
	for _, l := range lines {
		w.printf("%s\n", l)
	}
	w.printf("\n")
	return w.err
}

// Duplicate writes the duplicated card diagnostic.
func (w *Writer) Duplicate(card poker.Card) error {
	w.printf("\n%s\n", DuplicateCard)
	w.printf("\n\n*** DUPLICATE: %s ***\n", card)
	return w.err
}

// Ranking writes the hands strongest first, one "tokens - label" line each.
func (w *Writer) Ranking(r poker.Ranking) error {
	w.printf("%s\n", RankingHeader)
	for _, line := range FormatRanking(r, w.describe) {
		w.printf("%s\n", line)
	}
	w.printf("\n")
	return w.err
}

// FormatRanking returns the ranking lines, strongest hand first. With
// describe set a line reads "tokens - label (description)".
func FormatRanking(r poker.Ranking, describe bool) []string {
	lines := make([]string, 0, len(r.Ordered))
	for _, rh := range r.Ordered {
		lines = append(lines, FormatLine(rh, describe))
	}
	return lines
}

// FormatLine renders a single ranked hand.
func FormatLine(rh poker.RankedHand, describe bool) string {
	line := fmt.Sprintf("%s - %s", rh.Hand, rh.Category)
	if !describe {
		return line
	}
	desc, err := poker.Describe(rh.Hand)
	if err != nil || desc == "" {
		return line
	}
	return fmt.Sprintf("%s (%s)", line, desc)
}

func joinCards(cards []poker.Card) string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}

func countWord(n int) string {
	if n >= 0 && n < len(countWords) {
		return countWords[n]
	}
	return fmt.Sprint(n)
}
