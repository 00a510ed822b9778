package filestore

import (
	"bufio"
	"encoding/json"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/jrissiusp/SnakeGameMultiplayer/controller"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller/pb"
	"github.com/pkg/errors"
)

var openFileReader = fileReader

type reader interface {
	ReadBytes(delim byte) ([]byte, error)
	Close() error
}

type fileHandle struct {
	*bufio.Reader
	f *os.File
}

func (h *fileHandle) Close() error { return h.f.Close() }

func fileReader(directory, id string) (reader, error) {
	f, err := os.OpenFile(getFilePath(directory, id), os.O_RDONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &fileHandle{Reader: bufio.NewReader(f), f: f}, nil
}

type gameArchive struct {
	game   *pb.Game
	frames []*pb.GameFrame
}

// readArchive loads every record of a match file. Lines that do not decode are
// skipped, a crash can leave a partial last line behind.
func readArchive(directory, id string) (gameArchive, error) {
	r, err := openFileReader(directory, id)
	if err != nil {
		if os.IsNotExist(err) {
			return gameArchive{}, controller.ErrNotFound
		}
		return gameArchive{}, errors.Wrap(err, "unable to open archive")
	}
	defer r.Close()

	archive := gameArchive{}
	for {
		line, err := r.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return gameArchive{}, errors.Wrap(err, "unable to read archive")
		}

		rec := record{}
		if jerr := json.Unmarshal(line, &rec); jerr == nil {
			if rec.Game != nil {
				archive.game = rec.Game
			}
			if rec.Frame != nil {
				archive.frames = append(archive.frames, rec.Frame)
			}
		}

		if err == io.EOF {
			break
		}
	}

	if archive.game == nil {
		return gameArchive{}, errors.Errorf("archive %s has no game header", id)
	}
	return archive, nil
}

// ReadGame loads the game header stored in the file with the given id.
func ReadGame(directory, id string) (*pb.Game, error) {
	archive, err := readArchive(directory, id)
	if err != nil {
		return nil, err
	}
	return archive.game, nil
}

// ReadGameFrames loads all frames stored in the file with the given id.
func ReadGameFrames(directory, id string) ([]*pb.GameFrame, error) {
	archive, err := readArchive(directory, id)
	if err != nil {
		return nil, err
	}
	return archive.frames, nil
}

// listArchiveIDs returns the ids of every match file in directory.
func listArchiveIDs(directory string) ([]string, error) {
	infos, err := ioutil.ReadDir(directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "unable to list archives")
	}

	ids := []string{}
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() || filepath.Ext(name) != fileExt {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, fileExt))
	}
	return ids, nil
}
