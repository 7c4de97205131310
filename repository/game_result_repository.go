package repository

import (
	"context"
	"fmt"

	"pokerledger/database"
	"pokerledger/domain/entities"
	"pokerledger/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// GameResultRepository implements the GameResultRepository interface
type GameResultRepository struct {
	q Queryable
}

// NewGameResultRepository creates a result repository on the pool
func NewGameResultRepository(db *database.DB) *GameResultRepository {
	return &GameResultRepository{q: db.Pool}
}

func newGameResultRepository(q Queryable) interfaces.GameResultRepository {
	return &GameResultRepository{q: q}
}

// CreateBatch stores the settlement rows of a game
func (r *GameResultRepository) CreateBatch(ctx context.Context, results []*entities.GameResult) error {
	if len(results) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, result := range results {
		batch.Queue(`
			INSERT INTO game_results (
				game_id, player_id, total_buy_ins, total_buy_in_chips, total_buy_in_rubles,
				final_chips, final_rubles, profit_loss
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, created_at
		`,
			result.GameID,
			result.PlayerID,
			result.BuyInCount,
			result.BuyInChips,
			result.BuyInRubles,
			result.FinalChips,
			result.FinalRubles,
			result.Profit,
		)
	}

	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for _, result := range results {
		if err := br.QueryRow().Scan(&result.ID, &result.CreatedAt); err != nil {
			return fmt.Errorf("failed to store result of player %d in game %d: %w", result.PlayerID, result.GameID, err)
		}
	}
	return nil
}

// GetByGameID returns the settlement of a game, biggest winner first
func (r *GameResultRepository) GetByGameID(ctx context.Context, gameID int64) ([]*entities.GameResult, error) {
	query := `
		SELECT gr.id, gr.game_id, gr.player_id, p.name, gr.total_buy_ins, gr.total_buy_in_chips,
			gr.total_buy_in_rubles, gr.final_chips, gr.final_rubles, gr.profit_loss, gr.created_at
		FROM game_results gr
		JOIN players p ON p.id = gr.player_id
		WHERE gr.game_id = $1
		ORDER BY gr.profit_loss DESC, p.name
	`

	rows, err := r.q.Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results of game %d: %w", gameID, err)
	}
	defer rows.Close()

	results := []*entities.GameResult{}
	for rows.Next() {
		var gr entities.GameResult
		err := rows.Scan(
			&gr.ID,
			&gr.GameID,
			&gr.PlayerID,
			&gr.PlayerName,
			&gr.BuyInCount,
			&gr.BuyInChips,
			&gr.BuyInRubles,
			&gr.FinalChips,
			&gr.FinalRubles,
			&gr.Profit,
			&gr.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game result: %w", err)
		}
		results = append(results, &gr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game results: %w", err)
	}
	return results, nil
}
