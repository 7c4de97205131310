package entities

import (
	"fmt"
	"strings"
)

// Combination is the winning hand category recorded for a round
type Combination string

const (
	CombinationPair          Combination = "pair"
	CombinationTwoPair       Combination = "two_pair"
	CombinationThreeOfAKind  Combination = "three_of_a_kind"
	CombinationStraight      Combination = "straight"
	CombinationFlush         Combination = "flush"
	CombinationFullHouse     Combination = "full_house"
	CombinationFourOfAKind   Combination = "four_of_a_kind"
	CombinationStraightFlush Combination = "straight_flush"
	CombinationRoyalFlush    Combination = "royal_flush"
)

// UndeterminedCombination is shown for players without a recorded win
const UndeterminedCombination = "Undetermined"

// UndeterminedDealer is shown for players without a recorded win
const UndeterminedDealer = "Undetermined"

// AllCombinations lists the recognised combinations in ascending hand strength
var AllCombinations = []Combination{
	CombinationPair,
	CombinationTwoPair,
	CombinationThreeOfAKind,
	CombinationStraight,
	CombinationFlush,
	CombinationFullHouse,
	CombinationFourOfAKind,
	CombinationStraightFlush,
	CombinationRoyalFlush,
}

var combinationLabels = map[Combination]string{
	CombinationPair:          "Pair",
	CombinationTwoPair:       "Two Pair",
	CombinationThreeOfAKind:  "Three of a Kind",
	CombinationStraight:      "Straight",
	CombinationFlush:         "Flush",
	CombinationFullHouse:     "Full House",
	CombinationFourOfAKind:   "Four of a Kind",
	CombinationStraightFlush: "Straight Flush",
	CombinationRoyalFlush:    "Royal Flush",
}

// CombinationPalette is the cyclic display palette for combination charts
var CombinationPalette = []string{
	"#10b981", "#06b6d4", "#8b5cf6", "#f59e0b", "#ef4444",
	"#ec4899", "#84cc16", "#6366f1", "#f97316",
}

// IsValid returns true if c is one of the recognised combinations
func (c Combination) IsValid() bool {
	_, ok := combinationLabels[c]
	return ok
}

// Label returns the human readable name of the combination
func (c Combination) Label() string {
	if label, ok := combinationLabels[c]; ok {
		return label
	}
	return string(c)
}

// Strength returns the 1-based rank of the combination, 0 if unknown
func (c Combination) Strength() int {
	for i, known := range AllCombinations {
		if known == c {
			return i + 1
		}
	}
	return 0
}

// ParseCombination accepts either a code ("full_house") or a label ("Full House"),
// case-insensitively
func ParseCombination(s string) (Combination, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return "", fmt.Errorf("combination is required")
	}
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)

	c := Combination(normalized)
	if c.IsValid() {
		return c, nil
	}
	return "", fmt.Errorf("unknown combination %q", s)
}

// ColorForIndex returns the palette color for the i-th distinct combination
func ColorForIndex(i int) string {
	return CombinationPalette[i%len(CombinationPalette)]
}
