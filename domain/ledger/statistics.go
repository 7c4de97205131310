package ledger

import (
	"math"
	"sort"

	"pokerledger/domain/entities"
)

// WinnerStats counts wins per player. Percentages are relative to the total number of
// rounds, so split pots can make them sum past 100. Ties keep first-encounter order.
func WinnerStats(rounds []*entities.Round) []entities.WinnerStat {
	order := []string{}
	wins := map[string]int{}
	for _, r := range rounds {
		for _, w := range r.Winners {
			if _, seen := wins[w]; !seen {
				order = append(order, w)
			}
			wins[w]++
		}
	}

	stats := make([]entities.WinnerStat, 0, len(order))
	for _, name := range order {
		stats = append(stats, entities.WinnerStat{
			Name:       name,
			Wins:       wins[name],
			Percentage: percentOf(wins[name], len(rounds)),
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Wins > stats[j].Wins
	})
	return stats
}

// CombinationStats groups rounds by combination. Colors follow first-seen order.
func CombinationStats(rounds []*entities.Round) []entities.CombinationStat {
	order := []entities.Combination{}
	counts := map[entities.Combination]int{}
	for _, r := range rounds {
		if _, seen := counts[r.Combination]; !seen {
			order = append(order, r.Combination)
		}
		counts[r.Combination]++
	}

	stats := make([]entities.CombinationStat, 0, len(order))
	for i, c := range order {
		stats = append(stats, entities.CombinationStat{
			Combination: c,
			Count:       counts[c],
			Percentage:  percentOf(counts[c], len(rounds)),
			Color:       entities.ColorForIndex(i),
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	return stats
}

// BestDealerStats returns, for every player with at least one win, the dealer(s)
// under whom that player won most often
func BestDealerStats(players []string, rounds []*entities.Round) []entities.DealerStat {
	stats := []entities.DealerStat{}
	for _, player := range players {
		dealers := []string{}
		for _, r := range rounds {
			if r.HasWinner(player) {
				dealers = append(dealers, r.Dealer)
			}
		}
		if len(dealers) == 0 {
			continue
		}

		best, top := modes(dealers)
		stats = append(stats, entities.DealerStat{
			Player:     player,
			Dealers:    best,
			Wins:       top,
			Percentage: percentOf(top, len(dealers)),
		})
	}
	return stats
}

// PlayerGameStats summarises one participant of a game
func PlayerGameStats(game *entities.Game, name string) entities.PlayerGameStats {
	var combos, dealers []string
	for _, r := range game.Rounds {
		if r.HasWinner(name) {
			combos = append(combos, string(r.Combination))
			dealers = append(dealers, r.Dealer)
		}
	}

	stats := entities.PlayerGameStats{
		Name:                name,
		Wins:                len(combos),
		WinRate:             entities.WinRatePercent(len(combos), len(game.Rounds)),
		BuyIns:              game.BuyInCount(name),
		BuyInChips:          int64(game.BuyInCount(name)) * game.Settings.StartingStack,
		FavoriteCombination: entities.UndeterminedCombination,
		BestDealer:          entities.UndeterminedDealer,
	}
	if len(combos) > 0 {
		stats.FavoriteCombination = mostFrequent(combos)
		stats.BestDealer = mostFrequent(dealers)
	}
	return stats
}

// modes returns every value at the maximum frequency in first-seen order
func modes(values []string) ([]string, int) {
	order := []string{}
	counts := map[string]int{}
	for _, v := range values {
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	top := 0
	for _, v := range order {
		if counts[v] > top {
			top = counts[v]
		}
	}
	best := []string{}
	for _, v := range order {
		if counts[v] == top {
			best = append(best, v)
		}
	}
	return best, top
}

// mostFrequent returns the single most frequent value; ties go to the first seen
func mostFrequent(values []string) string {
	best, _ := modes(values)
	if len(best) == 0 {
		return ""
	}
	return best[0]
}

func percentOf(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(total) * 100))
}
