package e2e

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/jrissiusp/SnakeGameMultiplayer/api"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller/pb"
	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
	"github.com/jrissiusp/SnakeGameMultiplayer/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newClient(url string) *client {
	return &client{
		apiURL: url,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

var directions = []rules.Direction{rules.DirectionUp, rules.DirectionDown, rules.DirectionLeft, rules.DirectionRight}

var boards = map[string]rules.Settings{
	"Small":   {Width: 6, Height: 6},
	"Default": {Width: rules.DefaultBoardWidth, Height: rules.DefaultBoardHeight},
	"Wide":    {Width: 40, Height: 12},
}

// randomMatch plays both snakes with random key presses.
func randomMatch(t *testing.T, r *worker.Runner, settings rules.Settings, seed int64) *pb.Game {
	rng := rand.New(rand.NewSource(seed))
	match := rules.NewMatch(settings, rng)
	game := worker.NewGame(match.Settings(), [2]rules.Skin{rules.SkinGreen, rules.SkinRed})
	input := &worker.Input{}

	_, err := r.Run(context.Background(), game, match, input, func(snap rules.Snapshot, events []rules.Event) {
		for _, p := range rules.Players {
			if rng.Intn(10) == 0 {
				input.Set(p, directions[rng.Intn(len(directions))])
			}
		}
	})
	require.NoError(t, err)
	return game
}

func Test(t *testing.T) {
	const multiplier = 3

	store := controller.InMemStore()
	srv := httptest.NewServer(api.New(":0", store).Handler())
	defer srv.Close()
	c := newClient(srv.URL)

	runner := &worker.Runner{Store: store, TickRate: rate.Inf, RecordEvery: 8}

	var lock sync.Mutex
	created := map[string]bool{}

	t.Run("Matches", func(t *testing.T) {
		for i := 0; i < multiplier; i++ {
			for name, settings := range boards {
				seed := int64(i*100 + len(name))
				settings := settings
				t.Run(fmt.Sprintf("%s#%d", name, i), func(t *testing.T) {
					t.Parallel()

					game := randomMatch(t, runner, settings, seed)
					lock.Lock()
					created[game.ID] = true
					lock.Unlock()

					st, frames, err := c.gameStatus(game.ID)
					require.NoError(t, err)

					assert.Equal(t, string(rules.GameStatusComplete), st.Game.Status)
					assert.Equal(t, settings.Width, st.Game.Width)
					if !assert.NotEmpty(t, frames.Frames) {
						return
					}

					last := frames.Frames[len(frames.Frames)-1]
					if !assert.Equal(t, st.LastFrame.Turn, last.Turn) {
						spew.Dump(st)
					}
					assert.NotZero(t, last.Winner)
					assert.NotEmpty(t, last.DeadSnakes())
					assert.Equal(t, int64(0), frames.Frames[0].Turn)
					for i := 1; i < len(frames.Frames); i++ {
						if !assert.True(t, frames.Frames[i].Turn > frames.Frames[i-1].Turn) {
							spew.Dump(frames.Frames[i-1 : i+1])
						}
					}
				})
			}
		}
	})

	t.Run("ListGames", func(t *testing.T) {
		games, err := c.listGames()
		require.NoError(t, err)
		require.Len(t, games.Games, len(created))
		for _, g := range games.Games {
			require.True(t, created[g.ID], g.ID)
		}
	})
}
