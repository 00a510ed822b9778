// Package redisstore keeps match recordings in redis. A game header is a JSON
// string, its frames a list of JSON strings, and a sorted set indexes games by
// creation time.
package redisstore

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller/pb"
	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
	"github.com/pkg/errors"
)

const gameIndexKey = "snakebattle:games"

func gameKey(id string) string   { return "snakebattle:game:" + id }
func framesKey(id string) string { return "snakebattle:game:" + id + ":frames" }
func turnKey(id string) string   { return "snakebattle:game:" + id + ":turn" }

// pushFrame appends a frame only when the game exists and the turn moves
// forward. Returns -1 for a missing game and -2 for a stale turn.
var pushFrame = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return -1
end
local last = redis.call('GET', KEYS[3])
if last and tonumber(last) >= tonumber(ARGV[1]) then
	return -2
end
redis.call('SET', KEYS[3], ARGV[1])
redis.call('RPUSH', KEYS[2], ARGV[2])
return 0
`)

// RedisStore is a controller.Store backed by redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore will create a new instance of an underlying redis client, so it should not be re-created across "threads"
// - connectURL see: github.com/go-redis/redis/options.go for URL specifics
// The underlying redis client will be immediately tested for connectivity, so don't call this until you know redis can connect.
// Returns a new instance OR an error if unable (meaning an issue connecting to your redis URL)
func NewRedisStore(connectURL string) (*RedisStore, error) {
	o, err := redis.ParseURL(connectURL)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse redis URL")
	}

	client := redis.NewClient(o)

	// Validate it's connected
	err = client.Ping().Err()
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect")
	}

	return &RedisStore{client: client}, nil
}

// Close closes the underlying redis client.
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}

// CreateGame will insert a game with the initial game frames.
func (rs *RedisStore) CreateGame(c context.Context, g *pb.Game, frames []*pb.GameFrame) error {
	data, err := json.Marshal(g)
	if err != nil {
		return errors.Wrap(err, "unable to marshal game")
	}

	_, err = rs.client.TxPipelined(func(pipe redis.Pipeliner) error {
		pipe.Set(gameKey(g.ID), data, 0)
		pipe.Del(framesKey(g.ID), turnKey(g.ID))
		pipe.ZAdd(gameIndexKey, redis.Z{Score: float64(g.Created.UnixNano()), Member: g.ID})
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "unable to create game")
	}

	for _, f := range frames {
		if err := rs.PushGameFrame(c, g.ID, f); err != nil {
			return err
		}
	}
	return nil
}

// SetGameStatus is used to set a specific game status.
func (rs *RedisStore) SetGameStatus(c context.Context, id string, status rules.GameStatus) error {
	g, err := rs.GetGame(c, id)
	if err != nil {
		return err
	}
	g.Status = string(status)

	data, err := json.Marshal(g)
	if err != nil {
		return errors.Wrap(err, "unable to marshal game")
	}
	return errors.Wrap(rs.client.Set(gameKey(id), data, 0).Err(), "unable to set game status")
}

// PushGameFrame will push a game frame onto the list of frames.
func (rs *RedisStore) PushGameFrame(c context.Context, id string, f *pb.GameFrame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return errors.Wrap(err, "unable to marshal frame")
	}

	res, err := pushFrame.Run(rs.client, []string{gameKey(id), framesKey(id), turnKey(id)}, f.Turn, data).Result()
	if err != nil {
		return errors.Wrap(err, "unable to push frame")
	}

	switch res.(int64) {
	case -1:
		return controller.ErrNotFound
	case -2:
		return controller.ErrInvalidSequence
	}
	return nil
}

// ListGameFrames will list frames by an offset and limit, it supports
// negative offset.
func (rs *RedisStore) ListGameFrames(c context.Context, id string, limit, offset int) ([]*pb.GameFrame, error) {
	exists, err := rs.client.Exists(gameKey(id)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "unable to check game")
	}
	if exists == 0 {
		return nil, controller.ErrNotFound
	}

	total, err := rs.client.LLen(framesKey(id)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "unable to count frames")
	}

	start, stop, ok := frameRange(int(total), limit, offset)
	if !ok {
		return nil, nil
	}

	raw, err := rs.client.LRange(framesKey(id), int64(start), int64(stop)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "unable to list frames")
	}

	frames := make([]*pb.GameFrame, 0, len(raw))
	for _, r := range raw {
		f := &pb.GameFrame{}
		if err := json.Unmarshal([]byte(r), f); err != nil {
			return nil, errors.Wrap(err, "unable to unmarshal frame")
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// frameRange converts limit and offset into an inclusive LRANGE window.
func frameRange(total, limit, offset int) (int, int, bool) {
	if offset < 0 {
		offset = total + offset
		if offset < 0 {
			offset = 0
		}
	}
	if total == 0 || offset >= total || limit <= 0 {
		return 0, 0, false
	}
	stop := offset + limit - 1
	if stop >= total {
		stop = total - 1
	}
	return offset, stop, true
}

// GetGame will fetch the game.
func (rs *RedisStore) GetGame(c context.Context, id string) (*pb.Game, error) {
	data, err := rs.client.Get(gameKey(id)).Bytes()
	if err == redis.Nil {
		return nil, controller.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to get game")
	}

	g := &pb.Game{}
	if err := json.Unmarshal(data, g); err != nil {
		return nil, errors.Wrap(err, "unable to unmarshal game")
	}
	return g, nil
}

// ListGames returns the newest games from the creation index.
func (rs *RedisStore) ListGames(c context.Context, limit int) ([]*pb.Game, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	ids, err := rs.client.ZRevRange(gameIndexKey, 0, stop).Result()
	if err != nil {
		return nil, errors.Wrap(err, "unable to list games")
	}

	games := make([]*pb.Game, 0, len(ids))
	for _, id := range ids {
		g, err := rs.GetGame(c, id)
		if err == controller.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}
