package csv

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
)

var errWrongSnakeCount = errors.New("wrong snake count")

// readMetadata extracts the metadata from the json on the first line of the
// file. The line is expected to start with a '#' so that it is ignored by
// standard CSV tools.
func readMetadata(reader *bufio.Reader) (*gameArchive, error) {
	line, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, err
	}

	if len(line) < 2 || line[0] != '#' {
		return nil, errors.New("invalid metadata line")
	}

	// Chop off the '#' character before the json
	metaJSON := line[1:]

	meta := &gameArchive{}
	err = json.Unmarshal(metaJSON, meta)
	return meta, err
}

func parseLine(line string, snakeCount int) (Turn, error) {
	trimmed := strings.TrimSpace(line)
	fields := strings.Split(trimmed, ",")

	if len(fields) != snakeCount+1 {
		return Turn{}, errWrongSnakeCount
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return Turn{}, err
	}
	return Turn{Number: n, Moves: fields[1:]}, nil
}

func readTurns(reader *bufio.Reader, snakeCount int) ([]Turn, error) {
	turns := []Turn{}
	eof := false

	for !eof {
		line, err := reader.ReadString('\n')
		eof = err == io.EOF
		if err != nil && !eof {
			return nil, err
		}
		if eof && strings.TrimSpace(line) == "" {
			break
		}

		turn, err := parseLine(line, snakeCount)

		// Wrong count on last line could mean that the process was interrupted
		// in the middle of writing a turn. Don't consider that an error, just
		// resume from the previous turn.
		if err == errWrongSnakeCount && eof {
			break
		} else if err != nil {
			return nil, err
		}

		turns = append(turns, turn)
	}

	return turns, nil
}

// Read parses a move log written by Write. It returns the match id, the
// player ids and the turns.
func Read(r io.Reader) (string, []string, []Turn, error) {
	reader := bufio.NewReader(r)

	// Read metadata from first line
	meta, err := readMetadata(reader)
	if err != nil {
		return "", nil, nil, err
	}

	// Skip a line because the CSV column headers are not needed
	if _, err = reader.ReadBytes('\n'); err != nil && err != io.EOF {
		return "", nil, nil, err
	}

	// Read turns from rest of the lines
	turns, err := readTurns(reader, len(meta.Snakes))
	if err != nil {
		return "", nil, nil, err
	}

	players := []string{}
	for _, s := range meta.Snakes {
		players = append(players, s.ID)
	}
	return meta.Board.ID, players, turns, nil
}
