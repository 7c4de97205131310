package repository

import (
	"context"
	"fmt"

	"pokerledger/database"
	"pokerledger/domain/entities"
	"pokerledger/domain/interfaces"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RoundRepository implements the RoundRepository interface
type RoundRepository struct {
	q Queryable
}

// NewRoundRepository creates a round repository on the pool
func NewRoundRepository(db *database.DB) *RoundRepository {
	return &RoundRepository{q: db.Pool}
}

func newRoundRepository(q Queryable) interfaces.RoundRepository {
	return &RoundRepository{q: q}
}

// Create inserts the round and its winners. A nil round ID is replaced with a fresh UUID.
func (r *RoundRepository) Create(ctx context.Context, round *entities.Round, winnerIDs []int64) error {
	if len(winnerIDs) != len(round.Winners) {
		return fmt.Errorf("round has %d winners but %d winner IDs", len(round.Winners), len(winnerIDs))
	}
	if round.ID == uuid.Nil {
		round.ID = uuid.New()
	}

	query := `
		INSERT INTO rounds (id, game_id, round_number, dealer_id, combination, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.q.Exec(ctx, query,
		round.ID,
		round.GameID,
		round.Number,
		round.DealerID,
		round.Combination,
		round.Comment,
		round.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to create round %d of game %d: %w", round.Number, round.GameID, err)
	}

	batch := &pgx.Batch{}
	for i, playerID := range winnerIDs {
		batch.Queue(`
			INSERT INTO round_winners (round_id, player_id, position)
			VALUES ($1, $2, $3)
		`, round.ID, playerID, i)
	}

	results := r.q.SendBatch(ctx, batch)
	defer results.Close()
	for range winnerIDs {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to record winners of round %s: %w", round.ID, err)
		}
	}
	return nil
}

// GetByGameID returns the rounds of a game ordered by round number, winners in entry order
func (r *RoundRepository) GetByGameID(ctx context.Context, gameID int64) ([]*entities.Round, error) {
	query := `
		SELECT r.id, r.game_id, r.round_number, r.dealer_id, d.name, r.combination, r.comment, r.created_at,
			COALESCE(
				ARRAY(
					SELECT p.name
					FROM round_winners rw
					JOIN players p ON p.id = rw.player_id
					WHERE rw.round_id = r.id
					ORDER BY rw.position
				),
				'{}'
			) AS winners
		FROM rounds r
		JOIN players d ON d.id = r.dealer_id
		WHERE r.game_id = $1
		ORDER BY r.round_number
	`

	rows, err := r.q.Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rounds of game %d: %w", gameID, err)
	}
	defer rows.Close()

	rounds := []*entities.Round{}
	for rows.Next() {
		var round entities.Round
		err := rows.Scan(
			&round.ID,
			&round.GameID,
			&round.Number,
			&round.DealerID,
			&round.Dealer,
			&round.Combination,
			&round.Comment,
			&round.Timestamp,
			&round.Winners,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan round: %w", err)
		}
		rounds = append(rounds, &round)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rounds: %w", err)
	}
	return rounds, nil
}
