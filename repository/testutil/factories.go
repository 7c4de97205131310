package testutil

import (
	"time"

	"pokerledger/domain/entities"

	"github.com/google/uuid"
)

// CreateTestPlayer returns an unsaved roster player
func CreateTestPlayer(name string) *entities.Player {
	return entities.NewPlayer(name)
}

// CreateTestGame returns an unsaved active game with one buy-in per player.
// ids maps each player to a saved roster ID.
func CreateTestGame(name string, ids map[string]int64, players ...string) *entities.Game {
	started := time.Now().UTC().Truncate(time.Second)
	game := &entities.Game{
		Name:      name,
		Players:   players,
		PlayerIDs: map[string]int64{},
		Settings:  entities.DefaultGameSettings(),
		BuyIns:    map[string]int{},
		Rounds:    []*entities.Round{},
		Status:    entities.GameStatusActive,
		StartedAt: &started,
	}
	for _, p := range players {
		game.PlayerIDs[p] = ids[p]
		game.BuyIns[p] = 1
	}
	return game
}

// CreateTestRound returns an unsaved round of game
func CreateTestRound(game *entities.Game, number int, dealer string, combination entities.Combination, winners ...string) *entities.Round {
	return &entities.Round{
		ID:          uuid.New(),
		GameID:      game.ID,
		Number:      number,
		Winners:     winners,
		Dealer:      dealer,
		DealerID:    game.PlayerIDs[dealer],
		Combination: combination,
		Timestamp:   time.Now().UTC().Truncate(time.Millisecond),
	}
}

// WinnerIDs resolves the roster IDs of a round's winners
func WinnerIDs(game *entities.Game, round *entities.Round) []int64 {
	ids := make([]int64, 0, len(round.Winners))
	for _, w := range round.Winners {
		ids = append(ids, game.PlayerIDs[w])
	}
	return ids
}
