package services

import (
	"context"
	"fmt"
	"strings"

	"pokerledger/domain/entities"
	"pokerledger/domain/interfaces"
	"pokerledger/domain/ledger"

	log "github.com/sirupsen/logrus"
)

// playerService implements the PlayerService interface
type playerService struct {
	playerRepo interfaces.PlayerRepository
	errors     *ErrorSlot
}

// NewPlayerService creates a new roster service
func NewPlayerService(playerRepo interfaces.PlayerRepository, errorSlot *ErrorSlot) interfaces.PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		errors:     errorSlot,
	}
}

// AddPlayer registers a new player with zeroed lifetime statistics
func (s *playerService) AddPlayer(ctx context.Context, name string) (*entities.Player, error) {
	player := entities.NewPlayer(name)
	if player.Name == "" {
		return nil, fmt.Errorf("player name: %w", ledger.ErrBlankName)
	}

	existing, err := s.playerRepo.GetByName(ctx, player.Name)
	if err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to check player name: %w", err))
	}
	if existing != nil {
		return nil, fmt.Errorf("%q: %w", player.Name, ErrPlayerExists)
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to create player: %w", err))
	}

	log.WithFields(log.Fields{
		"playerID": player.ID,
		"name":     player.Name,
	}).Info("Player added to roster")

	return player, nil
}

// RenamePlayer renames a roster player. Past games follow the new name.
func (s *playerService) RenamePlayer(ctx context.Context, oldName, newName string) (*entities.Player, error) {
	player, err := s.GetPlayer(ctx, oldName)
	if err != nil {
		return nil, err
	}

	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, fmt.Errorf("player name: %w", ledger.ErrBlankName)
	}
	if newName == player.Name {
		return player, nil
	}

	clash, err := s.playerRepo.GetByName(ctx, newName)
	if err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to check player name: %w", err))
	}
	if clash != nil {
		return nil, fmt.Errorf("%q: %w", newName, ErrPlayerExists)
	}

	if err := s.playerRepo.Rename(ctx, player.ID, newName); err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to rename player: %w", err))
	}
	player.Name = newName
	return player, nil
}

// ListPlayers returns the roster ordered by name
func (s *playerService) ListPlayers(ctx context.Context) ([]*entities.Player, error) {
	players, err := s.playerRepo.GetAll(ctx)
	if err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to list players: %w", err))
	}
	return players, nil
}

// GetPlayer looks up a player by trimmed name
func (s *playerService) GetPlayer(ctx context.Context, name string) (*entities.Player, error) {
	name = strings.TrimSpace(name)
	player, err := s.playerRepo.GetByName(ctx, name)
	if err != nil {
		return nil, s.errors.Capture(fmt.Errorf("failed to get player: %w", err))
	}
	if player == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrPlayerNotFound)
	}
	return player, nil
}
