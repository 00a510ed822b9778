package filestore

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jrissiusp/SnakeGameMultiplayer/controller/pb"
	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
	"github.com/stretchr/testify/require"
)

type mockWriter struct {
	text   string
	err    error
	closed bool
}

func (w *mockWriter) WriteString(s string) (int, error) {
	if w.err != nil {
		return 0, w.err
	}

	w.text += s
	return len(s), nil
}

func (w *mockWriter) Close() error {
	w.closed = true
	return nil
}

func basicGame() *pb.Game {
	return &pb.Game{
		ID:       "myid",
		Status:   string(rules.GameStatusRunning),
		Width:    10,
		Height:   15,
		CellSize: 30,
		Players: []*pb.PlayerInfo{
			{ID: "snake1", Name: "snake1", Skin: 4, Color: "red"},
			{ID: "snake2", Name: "snake2", Skin: 1, Color: "green"},
		},
		Created: time.Date(2018, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func deadSnake() *pb.Snake {
	return &pb.Snake{
		ID:   "snake1",
		Name: "snake1",
		Body: []*pb.Point{
			{X: 4, Y: 4}, {X: 4, Y: 3},
		},
		Death: &pb.Death{
			Cause: rules.DeathCauseWallCollision,
			Turn:  1,
		},
		Color: "red",
	}
}

func basicSnakes() []*pb.Snake {
	return []*pb.Snake{
		{
			ID:   "snake1",
			Name: "snake1",
			Body: []*pb.Point{
				{X: 4, Y: 4}, {X: 4, Y: 3},
			},
			Score:         1,
			SpeedModifier: 8,
			Color:         "red",
		},
		{
			ID:   "snake2",
			Name: "snake2",
			Body: []*pb.Point{
				{X: 6, Y: 4}, {X: 6, Y: 3},
			},
			Score:         1,
			SpeedModifier: 8,
			Color:         "green",
		},
	}
}

func basicFrames() []*pb.GameFrame {
	return []*pb.GameFrame{
		{
			Turn:   1,
			Food:   []*pb.Food{{X: 1, Y: 1}},
			Snakes: basicSnakes(),
		},
		{
			Turn:   2,
			Food:   []*pb.Food{{X: 1, Y: 1, Type: rules.FoodSlow}},
			Snakes: basicSnakes(),
			Events: []rules.Event{{Kind: rules.EventFoodEaten, Player: rules.PlayerOne, Food: rules.FoodSlow, Effect: rules.EffectSlow}},
		},
	}
}

var frameWithDeadSnake = &pb.GameFrame{
	Turn:   1,
	Food:   []*pb.Food{{X: 1, Y: 1}},
	Snakes: []*pb.Snake{deadSnake()},
}

func decodeRecord(t *testing.T, j string) record {
	rec := record{}
	err := json.Unmarshal([]byte(strings.TrimSpace(j)), &rec)
	require.NoError(t, err)
	return rec
}

func TestWriteGameInfo(t *testing.T) {
	w := &mockWriter{}
	err := writeGameInfo(w, basicGame())
	require.NoError(t, err)

	rec := decodeRecord(t, w.text)
	require.Nil(t, rec.Frame)
	require.Equal(t, basicGame(), rec.Game)
}

func TestWriteGameInfoError(t *testing.T) {
	w := &mockWriter{
		err: errors.New("fail"),
	}
	err := writeGameInfo(w, basicGame())
	require.NotNil(t, err)
}

func TestWriteFrame(t *testing.T) {
	w := &mockWriter{}
	err := writeFrame(w, basicFrames()[1])
	require.NoError(t, err)

	rec := decodeRecord(t, w.text)
	require.Nil(t, rec.Game)
	require.Equal(t, int64(2), rec.Frame.Turn)
	require.Len(t, rec.Frame.Food, 1)
	require.Equal(t, rules.FoodSlow, rec.Frame.Food[0].Type)
	require.Len(t, rec.Frame.Snakes, 2)
	require.Equal(t, "snake1", rec.Frame.Snakes[0].ID)
	require.Equal(t, "snake2", rec.Frame.Snakes[1].ID)
	require.Nil(t, rec.Frame.Snakes[0].Death)
	require.Equal(t, rules.EffectSlow, rec.Frame.Events[0].Effect)
}

func TestWriteFrameDeadSnake(t *testing.T) {
	w := &mockWriter{}
	err := writeFrame(w, frameWithDeadSnake)
	require.NoError(t, err)

	rec := decodeRecord(t, w.text)
	require.Len(t, rec.Frame.Snakes, 1)
	require.NotNil(t, rec.Frame.Snakes[0].Death)
	require.Equal(t, rules.DeathCauseWallCollision, rec.Frame.Snakes[0].Death.Cause)
	require.Equal(t, int64(1), rec.Frame.Snakes[0].Death.Turn)
}

func TestWriteFrameError(t *testing.T) {
	w := &mockWriter{
		err: errors.New("fail"),
	}
	err := writeFrame(w, basicFrames()[0])
	require.NotNil(t, err)
}
