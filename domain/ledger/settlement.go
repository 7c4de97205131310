package ledger

import (
	"fmt"

	"pokerledger/domain/entities"
)

// ComputeSettlement converts buy-ins and final chip counts to rubles for every
// participant, in participant order. It does not modify the game.
func ComputeSettlement(game *entities.Game, finalChips map[string]int64) []entities.SettlementResult {
	stack := game.Settings.StartingStack
	rate := game.Settings.ChipToRuble

	results := make([]entities.SettlementResult, 0, len(game.Players))
	for _, p := range game.Players {
		count := game.BuyInCount(p)
		buyInChips := int64(count) * stack
		buyInRubles := float64(buyInChips) * rate
		final := finalChips[p]
		finalRubles := float64(final) * rate

		results = append(results, entities.SettlementResult{
			PlayerName:  p,
			BuyInCount:  count,
			BuyInChips:  buyInChips,
			BuyInRubles: buyInRubles,
			FinalChips:  final,
			FinalRubles: finalRubles,
			Profit:      finalRubles - buyInRubles,
		})
	}
	return results
}

// RefreshPlayerLifetimeStats folds one finished game into a player's lifetime totals.
// Favorite combination and best dealer are replaced by this game's values, not merged.
func RefreshPlayerLifetimeStats(player *entities.Player, game *entities.Game) error {
	if !game.IsFinished() {
		return fmt.Errorf("game %d: %w", game.ID, ErrGameNotFinished)
	}
	if !game.HasPlayer(player.Name) {
		return fmt.Errorf("player %q in game %d: %w", player.Name, game.ID, ErrNotParticipant)
	}

	stats := PlayerGameStats(game, player.Name)

	player.TotalGames++
	player.TotalWins += stats.Wins
	player.RecalculateWinRate()
	player.TotalBuyIns += int64(stats.BuyIns)
	player.TotalBuyInChips += stats.BuyInChips
	player.FavoriteCombination = stats.FavoriteCombination
	player.BestDealer = stats.BestDealer
	return nil
}
