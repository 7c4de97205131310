package services

import (
	"testing"
	"time"

	"pokerledger/domain/entities"
	"pokerledger/domain/interfaces"
	"pokerledger/domain/ledger"
	"pokerledger/domain/testhelpers"

	"github.com/coder/quartz"
)

// TestMocks aggregates all repository mocks for testing
type TestMocks struct {
	PlayerRepo     *testhelpers.MockPlayerRepository
	GameRepo       *testhelpers.MockGameRepository
	RoundRepo      *testhelpers.MockRoundRepository
	BuyInRepo      *testhelpers.MockBuyInRepository
	ResultRepo     *testhelpers.MockGameResultRepository
	EventPublisher *testhelpers.MockEventPublisher
}

// NewTestMocks creates a new set of mocks
func NewTestMocks() *TestMocks {
	return &TestMocks{
		PlayerRepo:     &testhelpers.MockPlayerRepository{},
		GameRepo:       &testhelpers.MockGameRepository{},
		RoundRepo:      &testhelpers.MockRoundRepository{},
		BuyInRepo:      &testhelpers.MockBuyInRepository{},
		ResultRepo:     &testhelpers.MockGameResultRepository{},
		EventPublisher: &testhelpers.MockEventPublisher{},
	}
}

// AssertAllExpectations verifies all mock expectations were met
func (m *TestMocks) AssertAllExpectations(t *testing.T) {
	m.PlayerRepo.AssertExpectations(t)
	m.GameRepo.AssertExpectations(t)
	m.RoundRepo.AssertExpectations(t)
	m.BuyInRepo.AssertExpectations(t)
	m.ResultRepo.AssertExpectations(t)
	m.EventPublisher.AssertExpectations(t)
}

type gameFixture struct {
	mocks   *TestMocks
	clock   *quartz.Mock
	timers  *ledger.TimerRegistry
	errors  *ErrorSlot
	service interfaces.GameService
}

func newGameFixture(t *testing.T) *gameFixture {
	t.Helper()

	mocks := NewTestMocks()
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2024, 3, 1, 19, 0, 0, 0, time.UTC))
	timers := ledger.NewTimerRegistry(clock)
	slot := NewErrorSlot()

	return &gameFixture{
		mocks:  mocks,
		clock:  clock,
		timers: timers,
		errors: slot,
		service: NewGameService(
			mocks.GameRepo,
			mocks.PlayerRepo,
			mocks.RoundRepo,
			mocks.BuyInRepo,
			mocks.ResultRepo,
			mocks.EventPublisher,
			timers,
			clock,
			slot,
		),
	}
}

// activeGame builds a running game whose players have roster IDs 1, 2, 3...
func activeGame(id int64, players ...string) *entities.Game {
	started := time.Date(2024, 3, 1, 19, 0, 0, 0, time.UTC)
	game := &entities.Game{
		ID:        id,
		Name:      "Friday game",
		Players:   players,
		PlayerIDs: make(map[string]int64, len(players)),
		Settings:  entities.DefaultGameSettings(),
		BuyIns:    make(map[string]int, len(players)),
		Rounds:    []*entities.Round{},
		Status:    entities.GameStatusActive,
		StartedAt: &started,
		CreatedAt: started,
		UpdatedAt: started,
	}
	for i, p := range players {
		game.PlayerIDs[p] = int64(i + 1)
		game.BuyIns[p] = 1
	}
	return game
}

func rosterPlayer(id int64, name string) *entities.Player {
	p := entities.NewPlayer(name)
	p.ID = id
	return p
}
