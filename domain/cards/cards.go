package cards

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paulhankin/poker"

	"pokerledger/domain/entities"
)

const (
	MinCards = 5
	MaxCards = 7
)

var (
	ErrMalformedCards = errors.New("malformed cards")
	ErrCardCount      = errors.New("a shown hand needs between 5 and 7 cards")
	ErrDuplicateCard  = errors.New("duplicate card")
	ErrHighCard       = errors.New("high card is not a recordable combination")
)

var rankSymbols = map[byte]poker.Rank{
	'2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'T': 10, 'J': 11, 'Q': 12, 'K': 13, 'A': 1,
}

var suitSymbols = map[byte]poker.Suit{
	'c': poker.Club,
	'd': poker.Diamond,
	'h': poker.Heart,
	's': poker.Spade,
}

// Card is one parsed card; rank runs 2..14 with the ace high
type Card struct {
	Rank int
	Suit poker.Suit
	card poker.Card
}

// Hand is a set of shown cards
type Hand []Card

// Parse reads cards written as rank+suit pairs, e.g. "AsKsQsJsTs" or "Ah Kd 7c 7s 2h".
// Whitespace and commas between cards are ignored.
func Parse(s string) (Hand, error) {
	compact := strings.NewReplacer(" ", "", ",", "", "\t", "").Replace(strings.TrimSpace(s))
	if compact == "" || len(compact)%2 != 0 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedCards, s)
	}

	n := len(compact) / 2
	if n < MinCards || n > MaxCards {
		return nil, fmt.Errorf("%w: got %d", ErrCardCount, n)
	}

	hand := make(Hand, 0, n)
	seen := make(map[string]bool, n)
	for i := 0; i < len(compact); i += 2 {
		symbol := strings.ToUpper(compact[i:i+1]) + strings.ToLower(compact[i+1:i+2])
		if seen[symbol] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, symbol)
		}
		seen[symbol] = true

		c, err := parseCard(symbol)
		if err != nil {
			return nil, err
		}
		hand = append(hand, c)
	}
	return hand, nil
}

func parseCard(symbol string) (Card, error) {
	rank, ok := rankSymbols[symbol[0]]
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank in %s", ErrMalformedCards, symbol)
	}
	suit, ok := suitSymbols[symbol[1]]
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit in %s", ErrMalformedCards, symbol)
	}

	pc, err := poker.MakeCard(suit, rank)
	if err != nil {
		return Card{}, fmt.Errorf("failed to make card %s: %w", symbol, err)
	}

	high := int(rank)
	if high == 1 {
		high = 14
	}
	return Card{Rank: high, Suit: suit, card: pc}, nil
}

// Classify returns the best combination the hand contains
func (h Hand) Classify() (entities.Combination, error) {
	if len(h) < MinCards || len(h) > MaxCards {
		return "", fmt.Errorf("%w: got %d", ErrCardCount, len(h))
	}

	bySuit := map[poker.Suit][]int{}
	rankCounts := map[int]int{}
	ranks := []int{}
	for _, c := range h {
		bySuit[c.Suit] = append(bySuit[c.Suit], c.Rank)
		rankCounts[c.Rank]++
		ranks = append(ranks, c.Rank)
	}

	for _, suited := range bySuit {
		if len(suited) < 5 {
			continue
		}
		if high := straightHigh(suited); high == 14 {
			return entities.CombinationRoyalFlush, nil
		} else if high > 0 {
			return entities.CombinationStraightFlush, nil
		}
	}

	var trips, pairs int
	for _, n := range rankCounts {
		switch {
		case n == 4:
			return entities.CombinationFourOfAKind, nil
		case n == 3:
			trips++
		case n == 2:
			pairs++
		}
	}

	switch {
	case trips >= 2 || (trips == 1 && pairs >= 1):
		return entities.CombinationFullHouse, nil
	case hasFlush(bySuit):
		return entities.CombinationFlush, nil
	case straightHigh(ranks) > 0:
		return entities.CombinationStraight, nil
	case trips == 1:
		return entities.CombinationThreeOfAKind, nil
	case pairs >= 2:
		return entities.CombinationTwoPair, nil
	case pairs == 1:
		return entities.CombinationPair, nil
	}
	return "", ErrHighCard
}

// Describe renders the hand the way the poker evaluator names it, e.g. "full house, 7s over 2s".
// Six-card hands have no evaluator description.
func (h Hand) Describe() (string, error) {
	if len(h) != 5 && len(h) != 7 {
		return "", fmt.Errorf("%w: cannot describe %d cards", ErrCardCount, len(h))
	}
	pcs := make([]poker.Card, len(h))
	for i, c := range h {
		pcs[i] = c.card
	}
	desc, err := poker.Describe(pcs)
	if err != nil {
		return "", fmt.Errorf("failed to describe hand: %w", err)
	}
	return desc, nil
}

// straightHigh returns the top rank of the highest straight in ranks, or 0
func straightHigh(ranks []int) int {
	present := make(map[int]bool, len(ranks)+1)
	for _, r := range ranks {
		present[r] = true
		if r == 14 {
			present[1] = true
		}
	}
	for top := 14; top >= 5; top-- {
		run := true
		for r := top; r > top-5; r-- {
			if !present[r] {
				run = false
				break
			}
		}
		if run {
			return top
		}
	}
	return 0
}

func hasFlush(bySuit map[poker.Suit][]int) bool {
	for _, suited := range bySuit {
		if len(suited) >= 5 {
			return true
		}
	}
	return false
}

// IsCardError reports whether err came from parsing or classifying a hand
func IsCardError(err error) bool {
	return errors.Is(err, ErrMalformedCards) ||
		errors.Is(err, ErrCardCount) ||
		errors.Is(err, ErrDuplicateCard) ||
		errors.Is(err, ErrHighCard)
}
