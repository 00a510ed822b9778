package filestore

import (
	"encoding/json"
	"os"

	"github.com/jrissiusp/SnakeGameMultiplayer/controller/pb"
)

var openFileWriter = appendOnlyFileWriter

type writer interface {
	WriteString(s string) (int, error)
	Close() error
}

// record is one line of an archive. A line carries either a game header or a
// frame. Headers are appended again whenever the status changes, the last one
// wins.
type record struct {
	Game  *pb.Game      `json:"game,omitempty"`
	Frame *pb.GameFrame `json:"frame,omitempty"`
}

func writeLine(w writer, data interface{}) error {
	j, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = w.WriteString(string(j) + "\n")
	return err
}

func writeFrame(w writer, f *pb.GameFrame) error {
	return writeLine(w, &record{Frame: f})
}

func writeGameInfo(w writer, game *pb.Game) error {
	return writeLine(w, &record{Game: game})
}

func appendOnlyFileWriter(directory, id string, mustCreate bool) (writer, error) {
	if err := os.MkdirAll(directory, 0775); err != nil {
		return nil, err
	}

	flags := os.O_APPEND | os.O_WRONLY | os.O_CREATE
	if mustCreate {
		flags |= os.O_EXCL
	}
	return os.OpenFile(getFilePath(directory, id), flags, 0644)
}
