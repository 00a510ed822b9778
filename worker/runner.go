package worker

import (
	"context"
	"time"

	"github.com/jrissiusp/SnakeGameMultiplayer/controller"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller/pb"
	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Observer is told about every tick, the presentation layer draws the
// snapshot and plays sounds for the events.
type Observer func(snap rules.Snapshot, events []rules.Event)

// Runner will run an individual match to completion, pacing ticks and
// recording frames into the store.
type Runner struct {
	Store controller.Store
	// TickRate is the number of ticks per second, rate.Inf runs unpaced.
	TickRate rate.Limit
	// Burst is how many ticks may run back to back after a stall.
	Burst int
	// RecordEvery records one frame every n ticks. Frames with events and
	// the final frame are always recorded.
	RecordEvery int
}

// NewGame builds the header of a match between two skins.
func NewGame(settings rules.Settings, skins [2]rules.Skin) *pb.Game {
	game := &pb.Game{
		ID:       uuid.NewV4().String(),
		Width:    settings.Width,
		Height:   settings.Height,
		CellSize: settings.CellSize,
		Status:   string(rules.GameStatusRunning),
		Created:  time.Now().UTC(),
	}
	for i, p := range rules.Players {
		game.Players = append(game.Players, &pb.PlayerInfo{
			ID:    p.String(),
			Name:  "Player " + string('1'+rune(i)),
			Skin:  int(skins[i]),
			Color: skins[i].Color(),
		})
	}
	return game
}

func (r *Runner) shouldRecord(turn int, events []rules.Event, over bool) bool {
	if over || len(events) > 0 {
		return true
	}
	return r.RecordEvery <= 1 || turn%r.RecordEvery == 0
}

// Run creates the game record and ticks match until it is over or ctx is
// done. It returns the last recorded frame.
func (r *Runner) Run(ctx context.Context, game *pb.Game, match *rules.Match, input *Input, observe Observer) (*pb.GameFrame, error) {
	burst := r.Burst
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(r.TickRate, burst)

	snap := match.Snapshot()
	last := pb.NewGameFrame(game, snap, nil)
	game.Status = string(rules.GameStatusRunning)
	if err := r.Store.CreateGame(ctx, game, []*pb.GameFrame{last}); err != nil {
		return nil, err
	}
	logger := log.WithField("GameID", game.ID)
	logger.WithFields(log.Fields{
		"Width":  game.Width,
		"Height": game.Height,
	}).Info("match started")

	if observe != nil {
		observe(snap, nil)
	}

	for !match.Over() {
		if err := limiter.Wait(ctx); err != nil {
			logger.WithField("Turn", match.Turn()).Info("match stopped")
			r.finish(game.ID, rules.GameStatusStopped)
			return last, ctx.Err()
		}

		var in rules.Input
		if input != nil {
			in = input.Drain()
		}
		events := match.Tick(in)
		snap = match.Snapshot()
		if observe != nil {
			observe(snap, events)
		}

		if !r.shouldRecord(snap.Turn, events, snap.Over) {
			continue
		}
		frame := pb.NewGameFrame(game, snap, events)
		if err := r.Store.PushGameFrame(ctx, game.ID, frame); err != nil {
			logger.WithError(err).WithField("Turn", snap.Turn).Error("unable to record frame")
			r.finish(game.ID, rules.GameStatusError)
			return last, err
		}
		last = frame
	}

	logger.WithFields(log.Fields{
		"Turn":   match.Turn(),
		"Winner": match.Winner().String(),
	}).Info("match ended")
	r.finish(game.ID, rules.GameStatusComplete)
	return last, nil
}

// finish uses its own context, the match context may already be cancelled.
func (r *Runner) finish(id string, status rules.GameStatus) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.Store.SetGameStatus(ctx, id, status); err != nil {
		log.WithError(err).WithField("GameID", id).Error("unable to set game status")
	}
}
