package repository

import (
	"context"
	"errors"
	"fmt"

	"pokerledger/database"
	"pokerledger/domain/entities"
	"pokerledger/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

const playerColumns = `
	id, name, total_games, total_wins, win_rate, favorite_combination, best_dealer,
	total_buy_ins, total_buy_in_chips, created_at, updated_at`

// PlayerRepository implements the PlayerRepository interface
type PlayerRepository struct {
	q Queryable
}

// NewPlayerRepository creates a player repository on the pool
func NewPlayerRepository(db *database.DB) *PlayerRepository {
	return &PlayerRepository{q: db.Pool}
}

func newPlayerRepository(q Queryable) interfaces.PlayerRepository {
	return &PlayerRepository{q: q}
}

// Create inserts a new player
func (r *PlayerRepository) Create(ctx context.Context, player *entities.Player) error {
	query := `
		INSERT INTO players (name, favorite_combination, best_dealer)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.q.QueryRow(ctx, query, player.Name, player.FavoriteCombination, player.BestDealer).
		Scan(&player.ID, &player.CreatedAt, &player.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create player %q: %w", player.Name, err)
	}
	return nil
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (*entities.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	player, err := scanPlayer(r.q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player %d: %w", id, err)
	}
	return player, nil
}

// GetByName retrieves a player by exact name
func (r *PlayerRepository) GetByName(ctx context.Context, name string) (*entities.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE name = $1`

	player, err := scanPlayer(r.q.QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player %q: %w", name, err)
	}
	return player, nil
}

// GetAll returns the roster ordered by name
func (r *PlayerRepository) GetAll(ctx context.Context) ([]*entities.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players ORDER BY name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := []*entities.Player{}
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating players: %w", err)
	}
	return players, nil
}

// Rename changes a player's name
func (r *PlayerRepository) Rename(ctx context.Context, id int64, name string) error {
	query := `UPDATE players SET name = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.q.Exec(ctx, query, id, name)
	if err != nil {
		return fmt.Errorf("failed to rename player %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("player %d not found", id)
	}
	return nil
}

// UpdateStats writes the lifetime statistics of a player
func (r *PlayerRepository) UpdateStats(ctx context.Context, player *entities.Player) error {
	query := `
		UPDATE players
		SET total_games = $2,
			total_wins = $3,
			win_rate = $4,
			favorite_combination = $5,
			best_dealer = $6,
			total_buy_ins = $7,
			total_buy_in_chips = $8,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.q.QueryRow(ctx, query,
		player.ID,
		player.TotalGames,
		player.TotalWins,
		player.WinRate,
		player.FavoriteCombination,
		player.BestDealer,
		player.TotalBuyIns,
		player.TotalBuyInChips,
	).Scan(&player.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("player %d not found", player.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update stats of player %d: %w", player.ID, err)
	}
	return nil
}

func scanPlayer(row pgx.Row) (*entities.Player, error) {
	var p entities.Player
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.TotalGames,
		&p.TotalWins,
		&p.WinRate,
		&p.FavoriteCombination,
		&p.BestDealer,
		&p.TotalBuyIns,
		&p.TotalBuyInChips,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
