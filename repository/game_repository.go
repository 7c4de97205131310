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

const gameColumns = `
	g.id, g.name, g.status, g.starting_stack, g.small_blind, g.big_blind, g.chip_to_ruble,
	g.started_at, g.ended_at, g.duration_seconds, g.created_at, g.updated_at`

// GameRepository implements the GameRepository interface. A game is stored across
// games, game_players, rounds and round_winners and is always loaded as a whole.
type GameRepository struct {
	q Queryable
}

// NewGameRepository creates a game repository on the pool
func NewGameRepository(db *database.DB) *GameRepository {
	return &GameRepository{q: db.Pool}
}

func newGameRepository(q Queryable) interfaces.GameRepository {
	return &GameRepository{q: q}
}

// Create inserts the game row and its participants in roster order
func (r *GameRepository) Create(ctx context.Context, game *entities.Game) error {
	query := `
		INSERT INTO games (
			name, status, starting_stack, small_blind, big_blind, chip_to_ruble,
			started_at, ended_at, duration_seconds
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.q.QueryRow(ctx, query,
		game.Name,
		game.Status,
		game.Settings.StartingStack,
		game.Settings.SmallBlind,
		game.Settings.BigBlind,
		game.Settings.ChipToRuble,
		game.StartedAt,
		game.EndedAt,
		game.DurationSeconds,
	).Scan(&game.ID, &game.CreatedAt, &game.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	for i, name := range game.Players {
		playerID, ok := game.PlayerIDs[name]
		if !ok {
			return fmt.Errorf("failed to create game: no player ID for %q", name)
		}
		if err := r.AddParticipant(ctx, game.ID, playerID, i, game.BuyIns[name]); err != nil {
			return err
		}
	}
	return nil
}

// GetByID loads the full game aggregate
func (r *GameRepository) GetByID(ctx context.Context, id int64) (*entities.Game, error) {
	return r.load(ctx, id, false)
}

// GetByIDForUpdate loads the game aggregate and locks the game row
func (r *GameRepository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Game, error) {
	return r.load(ctx, id, true)
}

func (r *GameRepository) load(ctx context.Context, id int64, forUpdate bool) (*entities.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games g WHERE g.id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	game, err := scanGame(r.q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game %d: %w", id, err)
	}

	if err := r.loadParticipants(ctx, []*entities.Game{game}); err != nil {
		return nil, err
	}

	rounds, err := newRoundRepository(r.q).GetByGameID(ctx, id)
	if err != nil {
		return nil, err
	}
	game.Rounds = rounds

	return game, nil
}

// GetAll returns game headers with participants, newest first. Rounds are not loaded.
func (r *GameRepository) GetAll(ctx context.Context, limit int) ([]*entities.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games g
		ORDER BY g.created_at DESC, g.id DESC
		LIMIT $1
	`

	return r.queryGames(ctx, query, limit)
}

// GetActive returns every running game with participants and rounds
func (r *GameRepository) GetActive(ctx context.Context) ([]*entities.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games g
		WHERE g.status = $1
		ORDER BY g.id
	`

	games, err := r.queryGames(ctx, query, entities.GameStatusActive)
	if err != nil {
		return nil, err
	}

	rounds := newRoundRepository(r.q)
	for _, game := range games {
		if game.Rounds, err = rounds.GetByGameID(ctx, game.ID); err != nil {
			return nil, err
		}
	}
	return games, nil
}

// AddParticipant links a player to a game
func (r *GameRepository) AddParticipant(ctx context.Context, gameID, playerID int64, position, buyIns int) error {
	query := `
		INSERT INTO game_players (game_id, player_id, position, buy_in_count)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := r.q.Exec(ctx, query, gameID, playerID, position, buyIns); err != nil {
		return fmt.Errorf("failed to add player %d to game %d: %w", playerID, gameID, err)
	}
	return nil
}

// Update writes the mutable columns of the game and the buy-in count of every participant
func (r *GameRepository) Update(ctx context.Context, game *entities.Game) error {
	query := `
		UPDATE games
		SET name = $2,
			status = $3,
			starting_stack = $4,
			small_blind = $5,
			big_blind = $6,
			chip_to_ruble = $7,
			started_at = $8,
			ended_at = $9,
			duration_seconds = $10,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.q.QueryRow(ctx, query,
		game.ID,
		game.Name,
		game.Status,
		game.Settings.StartingStack,
		game.Settings.SmallBlind,
		game.Settings.BigBlind,
		game.Settings.ChipToRuble,
		game.StartedAt,
		game.EndedAt,
		game.DurationSeconds,
	).Scan(&game.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("game %d not found", game.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update game %d: %w", game.ID, err)
	}

	if len(game.Players) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, name := range game.Players {
		batch.Queue(`
			UPDATE game_players gp
			SET buy_in_count = $3
			FROM players p
			WHERE gp.player_id = p.id AND gp.game_id = $1 AND p.name = $2
		`, game.ID, name, game.BuyIns[name])
	}

	results := r.q.SendBatch(ctx, batch)
	defer results.Close()
	for range game.Players {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to update buy-in counts of game %d: %w", game.ID, err)
		}
	}
	return nil
}

func (r *GameRepository) queryGames(ctx context.Context, query string, args ...any) ([]*entities.Game, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	games := []*entities.Game{}
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating games: %w", err)
	}

	if err := r.loadParticipants(ctx, games); err != nil {
		return nil, err
	}
	return games, nil
}

// loadParticipants fills Players, PlayerIDs and BuyIns of each game in a single query
func (r *GameRepository) loadParticipants(ctx context.Context, games []*entities.Game) error {
	if len(games) == 0 {
		return nil
	}

	byID := make(map[int64]*entities.Game, len(games))
	ids := make([]int64, 0, len(games))
	for _, game := range games {
		game.Players = []string{}
		game.PlayerIDs = map[string]int64{}
		game.BuyIns = map[string]int{}
		byID[game.ID] = game
		ids = append(ids, game.ID)
	}

	query := `
		SELECT gp.game_id, p.id, p.name, gp.buy_in_count
		FROM game_players gp
		JOIN players p ON p.id = gp.player_id
		WHERE gp.game_id = ANY($1)
		ORDER BY gp.game_id, gp.position
	`

	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query game participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			gameID, playerID int64
			name             string
			buyIns           int
		)
		if err := rows.Scan(&gameID, &playerID, &name, &buyIns); err != nil {
			return fmt.Errorf("failed to scan game participant: %w", err)
		}
		game := byID[gameID]
		game.Players = append(game.Players, name)
		game.PlayerIDs[name] = playerID
		game.BuyIns[name] = buyIns
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating game participants: %w", err)
	}
	return nil
}

func scanGame(row pgx.Row) (*entities.Game, error) {
	var g entities.Game
	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Status,
		&g.Settings.StartingStack,
		&g.Settings.SmallBlind,
		&g.Settings.BigBlind,
		&g.Settings.ChipToRuble,
		&g.StartedAt,
		&g.EndedAt,
		&g.DurationSeconds,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	g.Rounds = []*entities.Round{}
	return &g, nil
}
