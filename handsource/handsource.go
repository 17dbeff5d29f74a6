package handsource

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/luca-patrignani/poker-hand-analyzer/domain/poker"
)

var (
	ErrDuplicateCard     = errors.New("duplicated card")
	ErrSourceUnavailable = errors.New("hand source unavailable")
	ErrHandSize          = errors.New("wrong number of cards in hand")
	ErrTooFewHands       = errors.New("not enough hands in source")
)

// DuplicateCardError reports a card seen twice in one source.
type DuplicateCardError struct {
	Card  poker.Card
	Line  int
	First int
}

func (e *DuplicateCardError) Error() string {
	return fmt.Sprintf("%v: %s on line %d, first seen on line %d", ErrDuplicateCard, e.Card, e.Line, e.First)
}

func (e *DuplicateCardError) Unwrap() error {
	return ErrDuplicateCard
}

// Source is the result of a load.
type Source struct {
	// Hands holds the requested number of hands, in file order.
	Hands []poker.Hand
	// Lines holds the raw text of every line read, blank ones included.
	Lines []string
}

// seenCards is the duplicate accumulator of a single load.
type seenCards map[poker.Card]int

// add records c as seen on line and fails if it was already seen.
func (s seenCards) add(c poker.Card, line int) error {
	if first, ok := s[c]; ok {
		return &DuplicateCardError{Card: c, Line: line, First: first}
	}
	s[c] = line
	return nil
}

// LoadFile opens path and loads hands hands from it.
func LoadFile(path string, hands int) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return Source{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()
	return Load(f, hands)
}

// Load reads one hand per non-blank line from r. A line holds five comma
// separated card tokens. Lines after the last requested hand are kept in
// Source.Lines but not parsed. The first error aborts the whole load: the
// returned Source then holds the lines read but no hands.
func Load(r io.Reader, hands int) (Source, error) {
	if hands <= 0 {
		return Source{}, fmt.Errorf("cannot load %d hands", hands)
	}

	var src Source
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		src.Lines = append(src.Lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Source{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	seen := seenCards{}
	for i, line := range src.Lines {
		if len(src.Hands) == hands {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		h, err := parseLine(line, i+1, seen)
		if err != nil {
			return Source{Lines: src.Lines}, err
		}
		src.Hands = append(src.Hands, h)
	}
	if len(src.Hands) < hands {
		return Source{Lines: src.Lines}, fmt.Errorf("%w: want %d, found %d", ErrTooFewHands, hands, len(src.Hands))
	}
	return src, nil
}

func parseLine(line string, lineNo int, seen seenCards) (poker.Hand, error) {
	tokens := strings.Split(strings.TrimSpace(line), ",")
	if len(tokens) != poker.HandSize {
		return nil, fmt.Errorf("line %d: %w: want %d, got %d", lineNo, ErrHandSize, poker.HandSize, len(tokens))
	}
	cards := make([]poker.Card, 0, poker.HandSize)
	for _, tok := range tokens {
		c, err := poker.ParseCard(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := seen.add(c, lineNo); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return poker.NewHand(cards...)
}
