package csv

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/jrissiusp/SnakeGameMultiplayer/controller/pb"
)

func findSnake(snakeID string, frame *pb.GameFrame) *pb.Snake {
	for _, s := range frame.Snakes {
		if s.ID == snakeID {
			return s
		}
	}
	return nil
}

func directionBetween(a, b *pb.Point) string {
	if b.X < a.X {
		return "l"
	} else if b.X > a.X {
		return "r"
	} else if b.Y < a.Y {
		return "u"
	} else if b.Y > a.Y {
		return "d"
	}
	return "_"
}

func findMove(snakeID string, thisFrame, previousFrame *pb.GameFrame) string {
	thisFrameSnake := findSnake(snakeID, thisFrame)
	previousFrameSnake := findSnake(snakeID, previousFrame)
	if thisFrameSnake == nil || previousFrameSnake == nil ||
		len(thisFrameSnake.Body) == 0 || len(previousFrameSnake.Body) == 0 {
		return "_"
	}

	return directionBetween(previousFrameSnake.Head(), thisFrameSnake.Head())
}

func getSnakes(game *pb.Game, frames []*pb.GameFrame) []snakeArchive {
	snakes := []snakeArchive{}
	if len(frames) == 0 {
		return snakes
	}

	for i, s := range frames[0].Snakes {
		archive := snakeArchive{ID: s.ID, Name: s.Name, Color: s.Color}
		if head := s.Head(); head != nil {
			archive.Start = pointArchive{X: head.X, Y: head.Y}
		}
		if archive.Color == "" && i < len(game.Players) {
			archive.Color = game.Players[i].Color
		}
		snakes = append(snakes, archive)
	}
	return snakes
}

func getTurns(snakes []snakeArchive, frames []*pb.GameFrame) []Turn {
	turns := []Turn{}

	if len(frames) > 1 {
		for frameIndex := range frames[1:] {
			thisFrame := frames[frameIndex+1]
			previousFrame := frames[frameIndex]
			moves := []string{}
			for _, s := range snakes {
				moves = append(moves, findMove(s.ID, thisFrame, previousFrame))
			}
			turns = append(turns, Turn{Number: int(thisFrame.Turn), Moves: moves})
		}
	}

	return turns
}

func toArchive(game *pb.Game, frames []*pb.GameFrame) (gameArchive, []Turn) {
	snakes := getSnakes(game, frames)
	turns := getTurns(snakes, frames)
	metadata := gameArchive{
		Board: boardArchive{
			ID:     game.ID,
			Width:  game.Width,
			Height: game.Height,
		},
		Snakes: snakes,
	}

	return metadata, turns
}

func writeCSVMetadata(w io.Writer, metaJSON []byte) error {
	line := "#" + string(metaJSON) + "\n"
	_, err := io.WriteString(w, line)
	return err
}

func writeCSVColumnHeaders(w io.Writer, snakeCount int) error {
	line := "turn"
	for i := 0; i < snakeCount; i++ {
		line += ",player" + strconv.Itoa(i+1)
	}
	line += "\n"
	_, err := io.WriteString(w, line)
	return err
}

func writeCSVRow(w io.Writer, moves []string, turnNumber int) error {
	line := strconv.Itoa(turnNumber)
	for _, move := range moves {
		line += "," + move
	}
	line += "\n"

	_, err := io.WriteString(w, line)
	return err
}

// Write exports a recorded match as a move log. Each row compares the heads of
// two consecutive recorded frames.
func Write(w io.Writer, game *pb.Game, frames []*pb.GameFrame) error {
	metadata, turns := toArchive(game, frames)
	metaJSON, err := json.Marshal(metadata)
	if err != nil {
		return err
	}

	// First line: commented out metadata.
	if err := writeCSVMetadata(w, metaJSON); err != nil {
		return err
	}

	// Second line: column headers
	if err := writeCSVColumnHeaders(w, len(metadata.Snakes)); err != nil {
		return err
	}

	// Subsequent lines: actual CSV data
	for _, turn := range turns {
		if err := writeCSVRow(w, turn.Moves, turn.Number); err != nil {
			return err
		}
	}
	return nil
}
