package filestore

import (
	"context"
	"os/user"
	"path"
	"sync"

	"github.com/jrissiusp/SnakeGameMultiplayer/controller"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller/pb"
	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
	log "github.com/sirupsen/logrus"
)

const fileExt = ".snake"

// DefaultDir is where matches are archived when no directory is given.
func DefaultDir() string {
	return path.Join(homeDir(), ".snakebattle/games")
}

func homeDir() string {
	usr, err := user.Current()
	if err != nil {
		return "."
	}
	return usr.HomeDir
}

// NewFileStore returns a file based store implementation (1 file per game).
func NewFileStore(directory string) controller.Store {
	if directory == "" {
		directory = DefaultDir()
	}

	return &fileStore{
		games:     map[string]*pb.Game{},
		frames:    map[string][]*pb.GameFrame{},
		writers:   map[string]writer{},
		directory: directory,
	}
}

type fileStore struct {
	games     map[string]*pb.Game
	frames    map[string][]*pb.GameFrame
	writers   map[string]writer
	lock      sync.Mutex
	directory string
}

// closeGame removes the game from in-memory cache and closes the handle to its
// file. Should be called when game is complete.
func (fs *fileStore) closeGame(id string) {
	if w, ok := fs.writers[id]; ok {
		err := w.Close()
		if err != nil {
			log.WithError(err).WithField("GameID", id).Error("Error while closing file writer")
		}
	}
	delete(fs.games, id)
	delete(fs.frames, id)
	delete(fs.writers, id)
}

func (fs *fileStore) CreateGame(ctx context.Context, g *pb.Game, frames []*pb.GameFrame) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	handle, err := fs.requireHandle(g.ID, true)
	if err != nil {
		return err
	}
	game := g.Clone()
	if err := writeGameInfo(handle, game); err != nil {
		return err
	}

	fs.games[g.ID] = game
	fs.frames[g.ID] = []*pb.GameFrame{}
	for _, f := range frames {
		if err := fs.appendFrame(g.ID, f); err != nil {
			return err
		}
	}
	return nil
}

func (fs *fileStore) SetGameStatus(ctx context.Context, id string, status rules.GameStatus) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	game, err := fs.requireGame(id)
	if err != nil {
		return err
	}
	handle, err := fs.requireHandle(id, false)
	if err != nil {
		return err
	}

	game.Status = string(status)
	if err := writeGameInfo(handle, game); err != nil {
		return err
	}
	if status != rules.GameStatusRunning {
		fs.closeGame(id)
	}
	return nil
}

func (fs *fileStore) PushGameFrame(ctx context.Context, id string, f *pb.GameFrame) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	return fs.appendFrame(id, f)
}

func (fs *fileStore) ListGameFrames(ctx context.Context, id string, limit, offset int) ([]*pb.GameFrame, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	frames, err := fs.requireFrames(id)
	if err != nil {
		return nil, err
	}
	return controller.PageFrames(frames, limit, offset), nil
}

func (fs *fileStore) GetGame(ctx context.Context, id string) (*pb.Game, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	g, err := fs.requireGame(id)
	if err != nil {
		return nil, err
	}

	// The cached header is mutated by SetGameStatus.
	return g.Clone(), nil
}

func (fs *fileStore) ListGames(ctx context.Context, limit int) ([]*pb.Game, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	ids, err := listArchiveIDs(fs.directory)
	if err != nil {
		return nil, err
	}

	games := []*pb.Game{}
	for _, id := range ids {
		g, err := fs.requireGame(id)
		if err != nil {
			log.WithError(err).WithField("GameID", id).Warn("skipping unreadable archive")
			continue
		}
		games = append(games, g.Clone())
	}
	return controller.NewestFirst(games, limit), nil
}

func (fs *fileStore) requireHandle(id string, mustBeNew bool) (writer, error) {
	if w, ok := fs.writers[id]; ok {
		return w, nil
	}

	handle, err := openFileWriter(fs.directory, id, mustBeNew)
	if err != nil {
		return nil, err
	}

	fs.writers[id] = handle
	return handle, nil
}

func (fs *fileStore) requireGame(id string) (*pb.Game, error) {
	// Do nothing if game already loaded.
	if g, ok := fs.games[id]; ok {
		return g, nil
	}

	g, err := ReadGame(fs.directory, id)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (fs *fileStore) requireFrames(id string) ([]*pb.GameFrame, error) {
	// Do nothing if frames already loaded.
	if frames, ok := fs.frames[id]; ok {
		return frames, nil
	}

	return ReadGameFrames(fs.directory, id)
}

func (fs *fileStore) appendFrame(id string, f *pb.GameFrame) error {
	if _, ok := fs.games[id]; !ok {
		// Only running games are cached, a closed archive is read only.
		if _, err := ReadGame(fs.directory, id); err != nil {
			return err
		}
		return controller.ErrInvalidSequence
	}

	if err := controller.CheckSequence(fs.frames[id], f); err != nil {
		return err
	}

	handle, err := fs.requireHandle(id, false)
	if err != nil {
		return err
	}

	// Add frame to archive file
	if err := writeFrame(handle, f); err != nil {
		return err
	}

	// Add frame to in-memory cache
	fs.frames[id] = append(fs.frames[id], f)
	return nil
}

func getFilePath(directory string, id string) string {
	return path.Join(directory, id) + fileExt
}
