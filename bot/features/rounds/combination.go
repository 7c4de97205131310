package rounds

import (
	"fmt"

	"pokerledger/bot/common"
	"pokerledger/domain/cards"
	"pokerledger/domain/entities"
)

// resolveCombination picks the round's combination from the explicit choice or
// from shown cards. When both are given they must agree. The returned description
// is empty unless the evaluator could name the hand.
func resolveCombination(choice, shown string) (entities.Combination, string, error) {
	if shown == "" {
		if choice == "" {
			return "", "", common.NewUserError("Give either a combination or the shown cards", "no combination")
		}
		c, err := entities.ParseCombination(choice)
		if err != nil {
			return "", "", common.NewUserError(err.Error(), "invalid combination")
		}
		return c, "", nil
	}

	hand, err := cards.Parse(shown)
	if err != nil {
		return "", "", err
	}
	classified, err := hand.Classify()
	if err != nil {
		return "", "", err
	}

	if choice != "" {
		c, err := entities.ParseCombination(choice)
		if err != nil {
			return "", "", common.NewUserError(err.Error(), "invalid combination")
		}
		if c != classified {
			return "", "", common.NewUserError(
				fmt.Sprintf("The cards show %s, not %s", classified.Label(), c.Label()),
				"combination does not match cards",
			)
		}
	}

	description, err := hand.Describe()
	if err != nil {
		description = ""
	}
	return classified, description, nil
}
