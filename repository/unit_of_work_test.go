package repository

import (
	"context"
	"testing"

	"pokerledger/domain/entities"
	"pokerledger/domain/events"
	"pokerledger/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	published []events.Event
	flushed   bool
	discarded bool
}

func (p *recordingPublisher) Publish(event events.Event) error {
	p.published = append(p.published, event)
	return nil
}

func (p *recordingPublisher) Flush(ctx context.Context) error {
	p.flushed = true
	return nil
}

func (p *recordingPublisher) Discard() {
	p.discarded = true
}

func TestUnitOfWork(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	factory := NewUnitOfWorkFactory(testDB.DB)
	ctx := context.Background()

	t.Run("getters panic before begin", func(t *testing.T) {
		uow := factory.CreateWithPublisher(&recordingPublisher{})
		assert.Panics(t, func() { uow.PlayerRepository() })
		assert.Panics(t, func() { uow.GameRepository() })
	})

	t.Run("commit persists", func(t *testing.T) {
		publisher := &recordingPublisher{}
		uow := factory.CreateWithPublisher(publisher)
		require.NoError(t, uow.Begin(ctx))
		assert.Error(t, uow.Begin(ctx), "already started")

		require.NoError(t, uow.PlayerRepository().Create(ctx, testutil.CreateTestPlayer("Committed")))
		require.NoError(t, uow.EventBus().Publish(events.PlayerAddedEvent{PlayerName: "Committed"}))
		require.NoError(t, uow.Commit())
		require.NoError(t, uow.Rollback())

		player, err := NewPlayerRepository(testDB.DB).GetByName(ctx, "Committed")
		require.NoError(t, err)
		assert.NotNil(t, player)
		assert.Len(t, publisher.published, 1)
	})

	t.Run("rollback leaves no orphan rows", func(t *testing.T) {
		ids := seedPlayers(t, testDB, "Rolled")

		uow := factory.CreateWithPublisher(&recordingPublisher{})
		require.NoError(t, uow.Begin(ctx))

		game := testutil.CreateTestGame("Aborted", ids, "Rolled")
		require.NoError(t, uow.GameRepository().Create(ctx, game))
		round := testutil.CreateTestRound(game, 1, "Rolled", entities.CombinationPair, "Rolled")
		require.NoError(t, uow.RoundRepository().Create(ctx, round, testutil.WinnerIDs(game, round)))
		require.NoError(t, uow.Rollback())

		loaded, err := NewGameRepository(testDB.DB).GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("commit without begin", func(t *testing.T) {
		assert.Error(t, factory.CreateWithPublisher(&recordingPublisher{}).Commit())
	})
}
