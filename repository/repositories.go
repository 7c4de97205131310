package repository

import (
	"pokerledger/domain/interfaces"
)

// Repositories bundles the ledger repositories bound to one connection or transaction
type Repositories struct {
	Players interfaces.PlayerRepository
	Games   interfaces.GameRepository
	Rounds  interfaces.RoundRepository
	BuyIns  interfaces.BuyInRepository
	Results interfaces.GameResultRepository
}

// NewRepositories binds every repository to q, typically a read-only transaction
func NewRepositories(q Queryable) *Repositories {
	return &Repositories{
		Players: newPlayerRepository(q),
		Games:   newGameRepository(q),
		Rounds:  newRoundRepository(q),
		BuyIns:  newBuyInRepository(q),
		Results: newGameResultRepository(q),
	}
}
