package services

import (
	"context"
	"fmt"
	"time"

	"pokerledger/config"
	"pokerledger/domain/entities"
	"pokerledger/domain/events"
	"pokerledger/domain/interfaces"
	"pokerledger/domain/ledger"

	"github.com/coder/quartz"
	log "github.com/sirupsen/logrus"
)

type gameService struct {
	config         *config.Config
	gameRepo       interfaces.GameRepository
	playerRepo     interfaces.PlayerRepository
	roundRepo      interfaces.RoundRepository
	buyInRepo      interfaces.BuyInRepository
	resultRepo     interfaces.GameResultRepository
	eventPublisher interfaces.EventPublisher
	timers         *ledger.TimerRegistry
	clock          quartz.Clock
	errors         *ErrorSlot
}

// NewGameService creates a new game session service. Every call loads the game from the
// repositories, applies one ledger operation and writes the change back; the caller owns
// the surrounding transaction.
func NewGameService(
	gameRepo interfaces.GameRepository,
	playerRepo interfaces.PlayerRepository,
	roundRepo interfaces.RoundRepository,
	buyInRepo interfaces.BuyInRepository,
	resultRepo interfaces.GameResultRepository,
	eventPublisher interfaces.EventPublisher,
	timers *ledger.TimerRegistry,
	clock quartz.Clock,
	errorSlot *ErrorSlot,
) interfaces.GameService {
	return &gameService{
		config:         config.Get(),
		gameRepo:       gameRepo,
		playerRepo:     playerRepo,
		roundRepo:      roundRepo,
		buyInRepo:      buyInRepo,
		resultRepo:     resultRepo,
		eventPublisher: eventPublisher,
		timers:         timers,
		clock:          clock,
		errors:         errorSlot,
	}
}

// CreateGame validates the request, stores the game with one buy-in per participant and starts it
func (s *gameService) CreateGame(ctx context.Context, req interfaces.CreateGameRequest) (*entities.Game, error) {
	settings := s.config.DefaultGameSettings()
	if req.Settings != nil {
		settings = *req.Settings
	}

	l, err := ledger.NewGame(req.Name, req.Players, settings, s.clock)
	if err != nil {
		return nil, err
	}
	if err := l.Start(); err != nil {
		return nil, err
	}

	game := l.Game()
	for _, name := range game.Players {
		player, err := s.playerRepo.GetByName(ctx, name)
		if err != nil {
			return nil, s.errors.Capture(fmt.Errorf("failed to get player: %w", err))
		}
		if player == nil {
			return nil, fmt.Errorf("%q: %w", name, ErrPlayerNotFound)
		}
		game.PlayerIDs[name] = player.ID
	}

	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to create game: %w", err))
	}

	for _, name := range game.Players {
		buyIn := &entities.BuyIn{
			GameID:      game.ID,
			PlayerID:    game.PlayerIDs[name],
			PlayerName:  name,
			ChipsAmount: settings.StartingStack,
			RubleAmount: float64(settings.StartingStack) * settings.ChipToRuble,
			CreatedAt:   game.CreatedAt,
		}
		if err := s.buyInRepo.Create(ctx, buyIn); err != nil {
			return nil, s.errors.Capture(fmt.Errorf("failed to record initial buy-in: %w", err))
		}
	}

	if err := s.eventPublisher.Publish(events.GameCreatedEvent{
		GameID:  game.ID,
		Name:    game.Name,
		Players: game.Players,
	}); err != nil {
		log.WithError(err).Error("Failed to publish game created event")
	}

	log.WithFields(log.Fields{
		"gameID":  game.ID,
		"name":    game.Name,
		"players": len(game.Players),
	}).Info("Game created")

	return game, nil
}

// GetGame loads a game aggregate
func (s *gameService) GetGame(ctx context.Context, gameID int64) (*entities.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to get game: %w", err))
	}
	if game == nil {
		return nil, fmt.Errorf("game %d: %w", gameID, ErrGameNotFound)
	}
	return game, nil
}

// ListGames returns recent games, newest first
func (s *gameService) ListGames(ctx context.Context, limit int) ([]*entities.Game, error) {
	games, err := s.gameRepo.GetAll(ctx, limit)
	if err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to list games: %w", err))
	}
	return games, nil
}

// UpdateSettings applies a settings patch to a game that is not finished
func (s *gameService) UpdateSettings(ctx context.Context, gameID int64, patch entities.SettingsPatch) (*entities.Game, error) {
	l, err := s.loadForUpdate(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if err := l.UpdateSettings(patch); err != nil {
		return nil, err
	}

	game := l.Game()
	if err := s.gameRepo.Update(ctx, game); err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to update game settings: %w", err))
	}
	return game, nil
}

// AddPlayerToGame adds a roster player to a game with one initial buy-in
func (s *gameService) AddPlayerToGame(ctx context.Context, gameID int64, name string) (*entities.Game, error) {
	player, err := s.playerRepo.GetByName(ctx, name)
	if err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to get player: %w", err))
	}
	if player == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrPlayerNotFound)
	}

	game, err := s.lockGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	game.PlayerIDs[player.Name] = player.ID

	l := s.restore(game)
	buyIn, err := l.AddPlayer(player.Name)
	if err != nil {
		return nil, err
	}

	updated := l.Game()
	if err := s.gameRepo.AddParticipant(ctx, gameID, player.ID, len(updated.Players), 1); err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to add participant: %w", err))
	}
	if err := s.buyInRepo.Create(ctx, buyIn); err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to record initial buy-in: %w", err))
	}
	if err := s.gameRepo.Update(ctx, updated); err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to update game: %w", err))
	}

	if err := s.eventPublisher.Publish(events.PlayerAddedEvent{
		GameID:     gameID,
		PlayerName: player.Name,
	}); err != nil {
		log.WithError(err).Error("Failed to publish player added event")
	}

	return updated, nil
}

// RecordRound appends a round with its winners to an active game
func (s *gameService) RecordRound(ctx context.Context, gameID int64, in ledger.RoundInput) (*entities.Round, error) {
	l, err := s.loadForUpdate(ctx, gameID)
	if err != nil {
		return nil, err
	}
	round, err := l.AddRound(in)
	if err != nil {
		return nil, err
	}

	game := l.Game()
	winnerIDs := make([]int64, 0, len(round.Winners))
	for _, w := range round.Winners {
		winnerIDs = append(winnerIDs, game.PlayerIDs[w])
	}
	round.DealerID = game.PlayerIDs[round.Dealer]

	if err := s.roundRepo.Create(ctx, round, winnerIDs); err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to create round: %w", err))
	}
	if err := s.gameRepo.Update(ctx, game); err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to update game: %w", err))
	}

	if err := s.eventPublisher.Publish(events.RoundRecordedEvent{
		GameID:      gameID,
		RoundID:     round.ID.String(),
		Number:      round.Number,
		Winners:     round.Winners,
		Dealer:      round.Dealer,
		Combination: string(round.Combination),
		Timestamp:   round.Timestamp,
	}); err != nil {
		log.WithError(err).Error("Failed to publish round recorded event")
	}

	return round, nil
}

// AddBuyIns records one rebuy per selected player. An empty selection writes nothing.
func (s *gameService) AddBuyIns(ctx context.Context, gameID int64, players []string, amount *int64) ([]*entities.BuyIn, error) {
	l, err := s.loadForUpdate(ctx, gameID)
	if err != nil {
		return nil, err
	}
	rows, err := l.AddBuyIns(players, amount)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		if err := s.buyInRepo.Create(ctx, row); err != nil {
			return nil, s.errors.Capture(fmt.Errorf("failed to record buy-in: %w", err))
		}
		names = append(names, row.PlayerName)
	}
	if err := s.gameRepo.Update(ctx, l.Game()); err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to update game: %w", err))
	}

	if err := s.eventPublisher.Publish(events.BuyInsAddedEvent{
		GameID:  gameID,
		Players: names,
		Amount:  rows[0].ChipsAmount,
	}); err != nil {
		log.WithError(err).Error("Failed to publish buy-ins added event")
	}

	return rows, nil
}

// PreviewSettlement computes the settlement of the current state without changing it
func (s *gameService) PreviewSettlement(ctx context.Context, gameID int64, finalChips map[string]int64) ([]entities.SettlementResult, error) {
	game, err := s.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return ledger.ComputeSettlement(game, finalChips), nil
}

// FinishGame settles the game, stores the results and folds the game into every
// participant's lifetime statistics
func (s *gameService) FinishGame(ctx context.Context, gameID int64, finalChips map[string]int64) ([]entities.SettlementResult, error) {
	l, err := s.loadForUpdate(ctx, gameID)
	if err != nil {
		return nil, err
	}
	settlement, err := l.Finish(finalChips)
	if err != nil {
		return nil, err
	}

	game := l.Game()
	if err := s.gameRepo.Update(ctx, game); err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to update game: %w", err))
	}

	rows := make([]*entities.GameResult, 0, len(settlement))
	for _, r := range settlement {
		rows = append(rows, &entities.GameResult{
			GameID:           gameID,
			PlayerID:         game.PlayerIDs[r.PlayerName],
			SettlementResult: r,
		})
	}
	if err := s.resultRepo.CreateBatch(ctx, rows); err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to save game results: %w", err))
	}

	for _, name := range game.Players {
		if err := s.refreshLifetimeStats(ctx, game, name); err != nil {
			return nil, err
		}
	}

	if s.timers != nil {
		s.timers.Remove(gameID)
	}

	results := make([]events.PlayerResult, 0, len(settlement))
	for _, r := range settlement {
		results = append(results, events.PlayerResult{
			PlayerName: r.PlayerName,
			FinalChips: r.FinalChips,
			Profit:     r.Profit,
		})
	}
	if err := s.eventPublisher.Publish(events.GameFinishedEvent{
		GameID:          gameID,
		Name:            game.Name,
		DurationSeconds: game.DurationSeconds,
		Rounds:          len(game.Rounds),
		Results:         results,
	}); err != nil {
		log.WithError(err).Error("Failed to publish game finished event")
	}

	log.WithFields(log.Fields{
		"gameID":   gameID,
		"rounds":   len(game.Rounds),
		"duration": game.Duration().String(),
	}).Info("Game finished")

	return settlement, nil
}

// GetResults returns the stored settlement of a finished game
func (s *gameService) GetResults(ctx context.Context, gameID int64) ([]*entities.GameResult, error) {
	results, err := s.resultRepo.GetByGameID(ctx, gameID)
	if err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to get game results: %w", err))
	}
	return results, nil
}

// Dashboard returns the overview of a game, using the live timer when one exists
func (s *gameService) Dashboard(ctx context.Context, gameID int64) (*entities.Dashboard, error) {
	game, err := s.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	dashboard := s.restore(game).Dashboard()
	return &dashboard, nil
}

// Statistics returns every table derived from the rounds of a game
func (s *gameService) Statistics(ctx context.Context, gameID int64) (*interfaces.GameStatistics, error) {
	game, err := s.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	l := s.restore(game)
	stats := &interfaces.GameStatistics{
		Game:         game,
		Winners:      l.WinnerStats(),
		Combinations: l.CombinationStats(),
		Dealers:      l.BestDealerStats(),
		Players:      make([]entities.PlayerGameStats, 0, len(game.Players)),
	}
	for _, name := range game.Players {
		stats.Players = append(stats.Players, ledger.PlayerGameStats(game, name))
	}
	return stats, nil
}

// ControlTimer drives the session timer of an active game
func (s *gameService) ControlTimer(ctx context.Context, gameID int64, action interfaces.TimerAction) (*interfaces.TimerStatus, error) {
	if s.timers == nil {
		return nil, fmt.Errorf("session timers are not available")
	}

	game, err := s.lockGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.IsActive() {
		return nil, fmt.Errorf("game %d: %w", gameID, ledger.ErrGameNotActive)
	}

	timer, existed := s.timers.Lookup(gameID)
	if !existed {
		timer = s.timers.Get(gameID)
		timer.SetElapsed(game.Duration())
	}

	switch action {
	case interfaces.TimerStart:
		timer.Start()
	case interfaces.TimerPause:
		timer.Pause()
	case interfaces.TimerReset:
		timer.Reset()
	default:
		return nil, fmt.Errorf("timer action %q: %w", action, ErrUnknownTimerAction)
	}

	if action != interfaces.TimerStart {
		game.DurationSeconds = int64(timer.Elapsed() / time.Second)
		game.UpdatedAt = s.clock.Now()
		if err := s.gameRepo.Update(ctx, game); err != nil {
			return nil, s.errors.Capture(fmt.Errorf("failed to store elapsed time: %w", err))
		}
	}

	return &interfaces.TimerStatus{
		Elapsed: timer.Elapsed(),
		Running: timer.Running(),
	}, nil
}

// RestoreTimers recreates a paused timer for each active game
func (s *gameService) RestoreTimers(ctx context.Context) error {
	if s.timers == nil {
		return nil
	}

	games, err := s.gameRepo.GetActive(ctx)
	if err != nil {
		return s.errors.Capture(fmt.Errorf("failed to load active games: %w", err))
	}
	for _, game := range games {
		s.timers.Get(game.ID).SetElapsed(game.Duration())
	}

	log.WithField("games", len(games)).Info("Restored session timers")
	return nil
}

func (s *gameService) refreshLifetimeStats(ctx context.Context, game *entities.Game, name string) error {
	player, err := s.playerRepo.GetByID(ctx, game.PlayerIDs[name])
	if err != nil {
		return s.errors.Capture(fmt.Errorf("failed to get player %q: %w", name, err))
	}
	if player == nil {
		return s.errors.Capture(fmt.Errorf("participant %q missing from roster", name))
	}
	if err := ledger.RefreshPlayerLifetimeStats(player, game); err != nil {
		return err
	}
	if err := s.playerRepo.UpdateStats(ctx, player); err != nil {
		return s.errors.Capture(fmt.Errorf("failed to update stats of %q: %w", name, err))
	}
	return nil
}

// lockGame loads the game row under a row lock
func (s *gameService) lockGame(ctx context.Context, gameID int64) (*entities.Game, error) {
	game, err := s.gameRepo.GetByIDForUpdate(ctx, gameID)
	if err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to load game: %w", err))
	}
	if game == nil {
		return nil, fmt.Errorf("game %d: %w", gameID, ErrGameNotFound)
	}
	return game, nil
}

func (s *gameService) loadForUpdate(ctx context.Context, gameID int64) (*ledger.SessionLedger, error) {
	game, err := s.lockGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return s.restore(game), nil
}

// restore wraps a loaded game and links its live timer if there is one
func (s *gameService) restore(game *entities.Game) *ledger.SessionLedger {
	l := ledger.Restore(game, s.clock)
	if s.timers != nil {
		if t, ok := s.timers.Lookup(game.ID); ok {
			l.AttachTimer(t)
		}
	}
	return l
}
