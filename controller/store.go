// Package controller records matches: a header per match and the frames the
// runner produces tick after tick. Stores are read back by the api and by the
// replay command.
package controller

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jrissiusp/SnakeGameMultiplayer/controller/pb"
	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
)

var (
	// ErrNotFound is thrown when a game is not found.
	ErrNotFound = errors.New("controller: game not found")
	// ErrInvalidSequence is returned when a frame does not come after the
	// last recorded frame.
	ErrInvalidSequence = errors.New("controller: invalid frame sequence")
)

// Store is the interface to the backend store.
type Store interface {
	// CreateGame will insert a game with the initial game frames.
	CreateGame(c context.Context, g *pb.Game, frames []*pb.GameFrame) error
	// SetGameStatus is used to set a specific game status.
	SetGameStatus(c context.Context, id string, status rules.GameStatus) error
	// PushGameFrame will push a game frame onto the list of frames. Turns
	// must be strictly increasing.
	PushGameFrame(c context.Context, id string, f *pb.GameFrame) error
	// ListGameFrames will list frames by an offset and limit, it supports
	// negative offset.
	ListGameFrames(c context.Context, id string, limit, offset int) ([]*pb.GameFrame, error)
	// GetGame will fetch the game.
	GetGame(c context.Context, id string) (*pb.Game, error)
	// ListGames returns up to limit games, newest first.
	ListGames(c context.Context, limit int) ([]*pb.Game, error)
}

// InMemStore returns an in memory implementation of the Store interface.
func InMemStore() Store {
	return &inmem{
		games:  map[string]*pb.Game{},
		frames: map[string][]*pb.GameFrame{},
	}
}

type inmem struct {
	games  map[string]*pb.Game
	frames map[string][]*pb.GameFrame
	lock   sync.Mutex
}

func (in *inmem) CreateGame(ctx context.Context, g *pb.Game, frames []*pb.GameFrame) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	in.games[g.ID] = g.Clone()
	in.frames[g.ID] = nil
	for _, f := range frames {
		if err := in.appendFrame(g.ID, f); err != nil {
			return err
		}
	}
	return nil
}

func (in *inmem) SetGameStatus(ctx context.Context, id string, status rules.GameStatus) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	g, ok := in.games[id]
	if !ok {
		return ErrNotFound
	}
	g.Status = string(status)
	return nil
}

func (in *inmem) PushGameFrame(ctx context.Context, id string, f *pb.GameFrame) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	if _, ok := in.games[id]; !ok {
		return ErrNotFound
	}
	return in.appendFrame(id, f)
}

func (in *inmem) appendFrame(id string, f *pb.GameFrame) error {
	frames := in.frames[id]
	if err := CheckSequence(frames, f); err != nil {
		return err
	}
	in.frames[id] = append(frames, f)
	return nil
}

func (in *inmem) ListGameFrames(ctx context.Context, id string, limit, offset int) ([]*pb.GameFrame, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	if _, ok := in.games[id]; !ok {
		return nil, ErrNotFound
	}
	return PageFrames(in.frames[id], limit, offset), nil
}

func (in *inmem) GetGame(ctx context.Context, id string) (*pb.Game, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	if g, ok := in.games[id]; ok {
		return g.Clone(), nil
	}
	return nil, ErrNotFound
}

func (in *inmem) ListGames(ctx context.Context, limit int) ([]*pb.Game, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	games := make([]*pb.Game, 0, len(in.games))
	for _, g := range in.games {
		games = append(games, g.Clone())
	}
	return NewestFirst(games, limit), nil
}

// CheckSequence returns ErrInvalidSequence unless next comes after the last
// of the recorded frames.
func CheckSequence(recorded []*pb.GameFrame, next *pb.GameFrame) error {
	if len(recorded) == 0 {
		return nil
	}
	if next.Turn <= recorded[len(recorded)-1].Turn {
		return ErrInvalidSequence
	}
	return nil
}

// PageFrames applies limit and offset to frames. A negative offset counts
// from the end.
func PageFrames(frames []*pb.GameFrame, limit, offset int) []*pb.GameFrame {
	if offset < 0 {
		offset = len(frames) + offset
		if offset < 0 {
			offset = 0
		}
	}

	if len(frames) == 0 || offset >= len(frames) || limit <= 0 {
		return nil
	}
	if offset+limit >= len(frames) {
		limit = len(frames) - offset
	}
	return frames[offset : offset+limit]
}

// NewestFirst sorts games by creation time, newest first, and truncates the
// result to limit when limit is positive.
func NewestFirst(games []*pb.Game, limit int) []*pb.Game {
	sort.Slice(games, func(i, j int) bool {
		if games[i].Created.Equal(games[j].Created) {
			return games[i].ID < games[j].ID
		}
		return games[i].Created.After(games[j].Created)
	})
	if limit > 0 && len(games) > limit {
		games = games[:limit]
	}
	return games
}
