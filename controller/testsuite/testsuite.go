package testsuite

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jrissiusp/SnakeGameMultiplayer/controller"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller/pb"
	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"
)

func newGame(key string) *pb.Game {
	return &pb.Game{
		ID:       key,
		Width:    rules.DefaultBoardWidth,
		Height:   rules.DefaultBoardHeight,
		CellSize: rules.DefaultCellSize,
		Status:   string(rules.GameStatusRunning),
		Players: []*pb.PlayerInfo{
			{ID: "player1", Name: "Player 1", Skin: int(rules.SkinGreen), Color: rules.SkinGreen.Color()},
			{ID: "player2", Name: "Player 2", Skin: int(rules.SkinRed), Color: rules.SkinRed.Color()},
		},
		Created: time.Now().UTC().Truncate(time.Second),
	}
}

func testStoreGames(t *testing.T, s controller.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	// Create and fetch a game.
	err := s.CreateGame(ctx, newGame(key), nil)
	require.Nil(t, err)
	g, err := s.GetGame(ctx, key)
	require.Nil(t, err)
	require.Equal(t, key, g.ID)
	require.Equal(t, rules.DefaultBoardWidth, g.Width)
	require.Len(t, g.Players, 2)
	require.Equal(t, rules.SkinRed.Color(), g.Players[1].Color)

	// NotFound error thrown.
	_, err = s.GetGame(ctx, key+"-missing")
	require.Equal(t, controller.ErrNotFound, err)
}

func testStoreListGames(t *testing.T, s controller.Store) {
	ctx := context.Background()

	older := newGame(uuid.NewV4().String())
	older.Created = time.Now().UTC().Add(time.Hour).Truncate(time.Second)
	newer := newGame(uuid.NewV4().String())
	newer.Created = older.Created.Add(time.Hour)

	require.Nil(t, s.CreateGame(ctx, older, nil))
	require.Nil(t, s.CreateGame(ctx, newer, nil))

	games, err := s.ListGames(ctx, 2)
	require.Nil(t, err)
	require.Len(t, games, 2)
	require.Equal(t, newer.ID, games[0].ID)
	require.Equal(t, older.ID, games[1].ID)

	games, err = s.ListGames(ctx, 1)
	require.Nil(t, err)
	require.Len(t, games, 1)
	require.Equal(t, newer.ID, games[0].ID)
}

func testStoreGameStatus(t *testing.T, s controller.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	err := s.CreateGame(ctx, newGame(key), nil)
	require.Nil(t, err)

	// Set game to complete.
	err = s.SetGameStatus(ctx, key, rules.GameStatusComplete)
	require.Nil(t, err)
	g, err := s.GetGame(ctx, key)
	require.Nil(t, err)
	require.Equal(t, string(rules.GameStatusComplete), g.Status)

	// Set game to error.
	err = s.SetGameStatus(ctx, key, rules.GameStatusError)
	require.Nil(t, err)
	g, err = s.GetGame(ctx, key)
	require.Nil(t, err)
	require.Equal(t, string(rules.GameStatusError), g.Status)

	// Missing game.
	err = s.SetGameStatus(ctx, key+"-missing", rules.GameStatusStopped)
	require.Equal(t, controller.ErrNotFound, err)
}

func testStoreGameFrames(t *testing.T, s controller.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	// Create and fetch a game.
	err := s.CreateGame(ctx, newGame(key), nil)
	require.Nil(t, err)

	// Read game frames, too high offset.
	frames, err := s.ListGameFrames(ctx, key, 10, 100)
	require.Nil(t, err)
	require.Equal(t, 0, len(frames))

	// Read game frames, 0 offset.
	frames, err = s.ListGameFrames(ctx, key, 10, 0)
	require.Nil(t, err)
	require.Equal(t, 0, len(frames))

	// Push a game frame.
	err = s.PushGameFrame(ctx, key, &pb.GameFrame{
		Turn: 1,
		Snakes: []*pb.Snake{
			{ID: "player1", Body: []*pb.Point{{X: 2, Y: 1}, {X: 1, Y: 1}}, Score: 1, SpeedModifier: 8},
		},
		Food: []*pb.Food{{X: 4, Y: 5, Type: rules.FoodSilver}},
	})
	require.Nil(t, err)

	// Read the game frames.
	frames, err = s.ListGameFrames(ctx, key, 1, 0)
	require.Nil(t, err)
	require.Equal(t, 1, len(frames))
	require.Equal(t, int64(1), frames[0].Turn)
	require.Equal(t, 2, frames[0].Snakes[0].Body[0].X)
	require.Equal(t, rules.FoodSilver, frames[0].Food[0].Type)

	// Read game frames that don't exist.
	frames, err = s.ListGameFrames(ctx, key+"-missing", 1, 0)
	require.Equal(t, controller.ErrNotFound, err)
	require.Equal(t, 0, len(frames))

	// Pushing to a missing game fails.
	err = s.PushGameFrame(ctx, key+"-missing", &pb.GameFrame{Turn: 2})
	require.Equal(t, controller.ErrNotFound, err)

	// Read the game frames, too high offset.
	frames, err = s.ListGameFrames(ctx, key, 10, 100)
	require.Nil(t, err)
	require.Equal(t, 0, len(frames))
}

func testStoreFrameSequence(t *testing.T, s controller.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	err := s.CreateGame(ctx, newGame(key), []*pb.GameFrame{{Turn: 0}})
	require.Nil(t, err)

	// Gaps are allowed, turns only have to increase.
	require.Nil(t, s.PushGameFrame(ctx, key, &pb.GameFrame{Turn: 1}))
	require.Nil(t, s.PushGameFrame(ctx, key, &pb.GameFrame{Turn: 5}))

	// Replays and rewinds are rejected.
	require.Equal(t, controller.ErrInvalidSequence, s.PushGameFrame(ctx, key, &pb.GameFrame{Turn: 5}))
	require.Equal(t, controller.ErrInvalidSequence, s.PushGameFrame(ctx, key, &pb.GameFrame{Turn: 3}))

	frames, err := s.ListGameFrames(ctx, key, 10, 0)
	require.Nil(t, err)
	require.Len(t, frames, 3)

	// Negative offsets count from the end.
	frames, err = s.ListGameFrames(ctx, key, 1, -1)
	require.Nil(t, err)
	require.Len(t, frames, 1)
	require.Equal(t, int64(5), frames[0].Turn)

	frames, err = s.ListGameFrames(ctx, key, 10, -2)
	require.Nil(t, err)
	require.Len(t, frames, 2)
	require.Equal(t, int64(1), frames[0].Turn)
}

func testStoreConcurrentWriters(t *testing.T, s controller.Store) {
	ctx := context.Background()

	keys := make([]string, 10)
	for i := range keys {
		keys[i] = uuid.NewV4().String()
		require.Nil(t, s.CreateGame(ctx, newGame(keys[i]), nil))
	}

	var wg sync.WaitGroup
	wg.Add(len(keys))
	errs := make(chan error, len(keys)*20)

	for _, key := range keys {
		go func(key string) {
			defer wg.Done()
			for turn := int64(1); turn <= 20; turn++ {
				if err := s.PushGameFrame(ctx, key, &pb.GameFrame{Turn: turn}); err != nil {
					errs <- err
				}
			}
		}(key)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	for _, key := range keys {
		frames, err := s.ListGameFrames(ctx, key, 100, 0)
		require.Nil(t, err)
		require.Len(t, frames, 20)
	}
}

// Suite will execute the store testsuite.
func Suite(t *testing.T, s controller.Store, pretest func()) {
	s = controller.InstrumentStore(s)
	t.Run("Games", func(t *testing.T) { pretest(); testStoreGames(t, s) })
	t.Run("ListGames", func(t *testing.T) { pretest(); testStoreListGames(t, s) })
	t.Run("GameStatus", func(t *testing.T) { pretest(); testStoreGameStatus(t, s) })
	t.Run("GameFrames", func(t *testing.T) { pretest(); testStoreGameFrames(t, s) })
	t.Run("FrameSequence", func(t *testing.T) { pretest(); testStoreFrameSequence(t, s) })
	t.Run("ConcurrentWriters", func(t *testing.T) { pretest(); testStoreConcurrentWriters(t, s) })
}
