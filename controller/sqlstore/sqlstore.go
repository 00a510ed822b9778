package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/lib/pq" // Import pq driver.

	"github.com/jrissiusp/SnakeGameMultiplayer/config"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller/pb"
	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const migrations = `
CREATE TABLE IF NOT EXISTS games (
	id VARCHAR(255) PRIMARY KEY,
	value jsonb,
	created timestamp default now()
);
CREATE TABLE IF NOT EXISTS game_frames (
	id VARCHAR(255),
	turn INTEGER,
	value jsonb,
	PRIMARY KEY (id, turn)
);
`

// NewSQLStore returns a new store using a postgres database.
func NewSQLStore(url string) (*Store, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)

	if err = db.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to connect")
	}

	_, err = db.ExecContext(ctx, migrations)
	if err != nil {
		return nil, errors.Wrap(err, "unable to migrate")
	}
	return &Store{db: db}, nil
}

// Store represents an SQL store.
type Store struct {
	db *sql.DB
}

// Close closes the database handle.
func (s *Store) Close() error { return s.db.Close() }

// transact is a transaction wrapper, helps avoid failed to close connections.
func (s *Store) transact(
	ctx context.Context, txFunc func(*sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			if rErr := tx.Rollback(); rErr != nil {
				log.WithError(rErr).Error("rollback failed")
			}
			panic(p) // re-throw panic after Rollback
		} else if err != nil {
			// err is non-nil; don't change it
			if rErr := tx.Rollback(); rErr != nil {
				log.WithError(rErr).Error("rollback failed")
			}
		} else {
			err = tx.Commit() // err is nil; if Commit returns error update err
		}
	}()
	err = txFunc(tx)
	return err
}

// SetGameStatus is used to set a specific game status. This operation
// should be atomic.
func (s *Store) SetGameStatus(
	ctx context.Context, id string, status rules.GameStatus) error {
	return s.transact(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE games SET value = jsonb_set(value, '{"Status"}', to_jsonb($2::text)) WHERE id = $1`,
			id, string(status))
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return controller.ErrNotFound
		}
		return nil
	})
}

// CreateGame will insert a game with the initial game frames.
func (s *Store) CreateGame(
	ctx context.Context, g *pb.Game, frames []*pb.GameFrame) error {
	return s.transact(ctx, func(tx *sql.Tx) error {
		data, err := json.Marshal(g)
		if err != nil {
			return err
		}
		// Upsert games.
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO games (id, value, created) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET value=$2, created=$3`,
			g.ID, data, g.Created,
		); err != nil {
			return err
		}
		return s.pushFrames(ctx, tx, g.ID, frames...)
	})
}

func (s *Store) pushFrames(
	ctx context.Context, tx *sql.Tx, id string, frames ...*pb.GameFrame) error {
	r := tx.QueryRowContext(
		ctx, "SELECT MAX(turn) FROM game_frames where id=$1", id)

	var last sql.NullInt64
	if err := r.Scan(&last); err != nil {
		if err != sql.ErrNoRows {
			return err
		}
	}
	for _, f := range frames {
		if last.Valid && f.Turn <= last.Int64 {
			return controller.ErrInvalidSequence
		}
		last = sql.NullInt64{Int64: f.Turn, Valid: true}
	}

	for _, frame := range frames {
		frameData, err := json.Marshal(frame)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(
			ctx, `INSERT INTO game_frames (id, turn, value) VALUES ($1, $2, $3)`,
			id, frame.Turn, frameData,
		); err != nil {
			return err
		}
	}
	return nil
}

// PushGameFrame will push a game frame onto the list of frames.
func (s *Store) PushGameFrame(
	ctx context.Context, id string, t *pb.GameFrame) error {
	if _, err := s.GetGame(ctx, id); err != nil {
		return err
	}
	return s.transact(ctx, func(tx *sql.Tx) error {
		return s.pushFrames(ctx, tx, id, t)
	})
}

// ListGameFrames will list frames by an offset and limit, it supports
// negative offset.
func (s *Store) ListGameFrames(ctx context.Context, id string, limit, offset int) ([]*pb.GameFrame, error) {
	if _, err := s.GetGame(ctx, id); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, nil
	}

	if offset < 0 {
		var count int
		r := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM game_frames WHERE id=$1", id)
		if err := r.Scan(&count); err != nil {
			return nil, err
		}
		offset = count + offset
		if offset < 0 {
			offset = 0
		}
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT value FROM game_frames WHERE id=$1 ORDER BY turn ASC LIMIT $2 OFFSET $3`,
		id, limit, offset,
	)
	if err != nil {
		return nil, err
	}

	var frames []*pb.GameFrame
	defer rows.Close()
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}

		frame := &pb.GameFrame{}
		if err := json.Unmarshal(data, frame); err != nil {
			return nil, err
		}

		frames = append(frames, frame)
	}

	return frames, rows.Err()
}

// GetGame will fetch the game.
func (s *Store) GetGame(c context.Context, id string) (*pb.Game, error) {
	r := s.db.QueryRowContext(c, "SELECT value FROM games WHERE id=$1", id)

	var data []byte
	if err := r.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, controller.ErrNotFound
		}
		return nil, err
	}

	g := &pb.Game{}
	if err := json.Unmarshal(data, g); err != nil {
		return nil, err
	}
	return g, nil
}

// ListGames returns the newest games first.
func (s *Store) ListGames(c context.Context, limit int) ([]*pb.Game, error) {
	query := "SELECT value FROM games ORDER BY created DESC, id ASC"
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(c, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := []*pb.Game{}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		g := &pb.Game{}
		if err := json.Unmarshal(data, g); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}
