package repository

import (
	"context"
	"fmt"

	"pokerledger/database"
	"pokerledger/domain/entities"
	"pokerledger/domain/interfaces"
)

// BuyInRepository implements the BuyInRepository interface
type BuyInRepository struct {
	q Queryable
}

// NewBuyInRepository creates a buy-in repository on the pool
func NewBuyInRepository(db *database.DB) *BuyInRepository {
	return &BuyInRepository{q: db.Pool}
}

func newBuyInRepository(q Queryable) interfaces.BuyInRepository {
	return &BuyInRepository{q: q}
}

// Create inserts a buy-in numbered after the player's previous buy-ins in the game
func (r *BuyInRepository) Create(ctx context.Context, buyIn *entities.BuyIn) error {
	query := `
		INSERT INTO buy_ins (game_id, player_id, buy_in_number, chips_amount, ruble_amount)
		SELECT $1, $2, COALESCE(MAX(buy_in_number), 0) + 1, $3, $4
		FROM buy_ins
		WHERE game_id = $1 AND player_id = $2
		RETURNING id, buy_in_number, created_at
	`

	err := r.q.QueryRow(ctx, query,
		buyIn.GameID,
		buyIn.PlayerID,
		buyIn.ChipsAmount,
		buyIn.RubleAmount,
	).Scan(&buyIn.ID, &buyIn.BuyInNumber, &buyIn.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create buy-in for player %d in game %d: %w", buyIn.PlayerID, buyIn.GameID, err)
	}
	return nil
}

// GetByGameID returns the buy-ins of a game in insertion order
func (r *BuyInRepository) GetByGameID(ctx context.Context, gameID int64) ([]*entities.BuyIn, error) {
	query := `
		SELECT b.id, b.game_id, b.player_id, p.name, b.buy_in_number, b.chips_amount, b.ruble_amount, b.created_at
		FROM buy_ins b
		JOIN players p ON p.id = b.player_id
		WHERE b.game_id = $1
		ORDER BY b.id
	`

	rows, err := r.q.Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query buy-ins of game %d: %w", gameID, err)
	}
	defer rows.Close()

	buyIns := []*entities.BuyIn{}
	for rows.Next() {
		var b entities.BuyIn
		err := rows.Scan(
			&b.ID,
			&b.GameID,
			&b.PlayerID,
			&b.PlayerName,
			&b.BuyInNumber,
			&b.ChipsAmount,
			&b.RubleAmount,
			&b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan buy-in: %w", err)
		}
		buyIns = append(buyIns, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating buy-ins: %w", err)
	}
	return buyIns, nil
}
