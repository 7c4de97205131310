package services

import (
	"context"
	"errors"
	"testing"

	"pokerledger/domain/entities"
	"pokerledger/domain/ledger"
	"pokerledger/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlayerService_AddPlayer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		setupMock    func(*testhelpers.MockPlayerRepository)
		wantErr      error
		errContains  string
		wantRecorded bool
		wantFavorite string
	}{
		{
			name:  "creates player with trimmed name",
			input: "  Alice ",
			setupMock: func(repo *testhelpers.MockPlayerRepository) {
				repo.On("GetByName", mock.Anything, "Alice").Return(nil, nil)
				repo.On("Create", mock.Anything, mock.MatchedBy(func(p *entities.Player) bool {
					return p.Name == "Alice"
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*entities.Player).ID = 11
				}).Return(nil)
			},
			wantFavorite: entities.UndeterminedCombination,
		},
		{
			name:      "blank name",
			input:     "   ",
			setupMock: func(repo *testhelpers.MockPlayerRepository) {},
			wantErr:   ledger.ErrBlankName,
		},
		{
			name:  "duplicate name",
			input: "Alice",
			setupMock: func(repo *testhelpers.MockPlayerRepository) {
				repo.On("GetByName", mock.Anything, "Alice").Return(rosterPlayer(1, "Alice"), nil)
			},
			wantErr: ErrPlayerExists,
		},
		{
			name:  "backend failure is recorded",
			input: "Alice",
			setupMock: func(repo *testhelpers.MockPlayerRepository) {
				repo.On("GetByName", mock.Anything, "Alice").Return(nil, nil)
				repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))
			},
			errContains:  "failed to create player",
			wantRecorded: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := new(testhelpers.MockPlayerRepository)
			tt.setupMock(repo)
			slot := NewErrorSlot()
			service := NewPlayerService(repo, slot)

			player, err := service.AddPlayer(context.Background(), tt.input)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, player)
			case tt.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(11), player.ID)
				assert.Equal(t, tt.wantFavorite, player.FavoriteCombination)
			}

			if tt.wantRecorded {
				assert.Equal(t, err, slot.Last())
			} else {
				assert.NoError(t, slot.Last())
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestPlayerService_RenamePlayer(t *testing.T) {
	t.Parallel()

	t.Run("renames", func(t *testing.T) {
		t.Parallel()

		repo := new(testhelpers.MockPlayerRepository)
		repo.On("GetByName", mock.Anything, "Alice").Return(rosterPlayer(1, "Alice"), nil)
		repo.On("GetByName", mock.Anything, "Alicia").Return(nil, nil)
		repo.On("Rename", mock.Anything, int64(1), "Alicia").Return(nil)

		player, err := NewPlayerService(repo, NewErrorSlot()).RenamePlayer(context.Background(), "Alice", " Alicia ")
		require.NoError(t, err)
		assert.Equal(t, "Alicia", player.Name)
		repo.AssertExpectations(t)
	})

	t.Run("unknown player", func(t *testing.T) {
		t.Parallel()

		repo := new(testhelpers.MockPlayerRepository)
		repo.On("GetByName", mock.Anything, "Nobody").Return(nil, nil)

		_, err := NewPlayerService(repo, NewErrorSlot()).RenamePlayer(context.Background(), "Nobody", "Somebody")
		assert.ErrorIs(t, err, ErrPlayerNotFound)
	})

	t.Run("name taken", func(t *testing.T) {
		t.Parallel()

		repo := new(testhelpers.MockPlayerRepository)
		repo.On("GetByName", mock.Anything, "Alice").Return(rosterPlayer(1, "Alice"), nil)
		repo.On("GetByName", mock.Anything, "Bob").Return(rosterPlayer(2, "Bob"), nil)

		_, err := NewPlayerService(repo, NewErrorSlot()).RenamePlayer(context.Background(), "Alice", "Bob")
		assert.ErrorIs(t, err, ErrPlayerExists)
		repo.AssertNotCalled(t, "Rename", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("blank new name", func(t *testing.T) {
		t.Parallel()

		repo := new(testhelpers.MockPlayerRepository)
		repo.On("GetByName", mock.Anything, "Alice").Return(rosterPlayer(1, "Alice"), nil)

		_, err := NewPlayerService(repo, NewErrorSlot()).RenamePlayer(context.Background(), "Alice", "  ")
		assert.ErrorIs(t, err, ledger.ErrBlankName)
	})
}

func TestPlayerService_ListPlayers(t *testing.T) {
	t.Parallel()

	repo := new(testhelpers.MockPlayerRepository)
	roster := []*entities.Player{rosterPlayer(1, "Alice"), rosterPlayer(2, "Bob")}
	repo.On("GetAll", mock.Anything).Return(roster, nil)

	players, err := NewPlayerService(repo, NewErrorSlot()).ListPlayers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, roster, players)
}
