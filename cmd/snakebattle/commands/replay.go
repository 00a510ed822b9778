package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jrissiusp/SnakeGameMultiplayer/audio"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller/pb"
	"github.com/jrissiusp/SnakeGameMultiplayer/render"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var replayDelay = 75 * time.Millisecond

func init() {
	replayCmd.Flags().StringVarP(&gameID, "game-id", "g", "", "the game id of the game to replay")
	replayCmd.Flags().DurationVar(&replayDelay, "delay", replayDelay, "time between two frames")
	replayCmd.Flags().BoolVar(&mute, "mute", mute, "disable sound")
}

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "replays a recorded battle from the api server",
	Args: func(c *cobra.Command, args []string) error {
		if len(gameID) == 0 {
			return errors.New("game id is required")
		}
		return nil
	},
	Run: func(*cobra.Command, []string) {
		if err := replayGame(); err != nil {
			log.WithError(err).WithField("GameID", gameID).Fatal("replay failed")
		}
	},
}

func moveFrameForwards(frameIndex int, frames *frameHolder) (int, *pb.GameFrame, bool) {
	frameIndex++
	if frameIndex >= frames.count() {
		return frameIndex, nil, true
	}
	return frameIndex, frames.get(frameIndex), false
}

func moveFrameBackwards(frameIndex int, frames *frameHolder) (int, *pb.GameFrame) {
	frameIndex--
	if frameIndex <= 0 {
		frameIndex = 0
	}
	return frameIndex, frames.get(frameIndex)
}

// socketURL turns the http api address into the websocket url of a game.
func socketURL(addr, id string) string {
	u := url.URL{Scheme: "ws", Path: fmt.Sprintf("/socket/%s", id)}
	switch {
	case strings.HasPrefix(addr, "https://"):
		u.Scheme = "wss"
		u.Host = strings.TrimPrefix(addr, "https://")
	default:
		u.Host = strings.TrimPrefix(addr, "http://")
	}
	u.Host = strings.TrimSuffix(u.Host, "/")
	return u.String()
}

func loadGame() (*pb.Game, *frameHolder, error) {
	s, err := getStatus(gameID)
	if err != nil {
		return nil, nil, err
	}

	frames := &frameHolder{}
	addr := socketURL(apiAddr, gameID)
	log.WithField("url", addr).Debug("connecting to game socket")

	c, _, err := websocket.DefaultDialer.Dial(addr, nil)
	if err != nil {
		return nil, nil, err
	}

	go func() {
		defer func() {
			if err := c.Close(); err != nil {
				log.WithError(err).Warn("failure to close websocket connection")
			}
		}()

		for {
			mt, message, err := c.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					log.WithError(err).Warn("read failed")
				}
				return
			}

			switch mt {
			case websocket.TextMessage:
				frame := &pb.GameFrame{}
				if err = json.Unmarshal(message, frame); err != nil {
					log.WithError(err).Warn("unable to unmarshal frame")
					return
				}
				frames.append(frame)
			case websocket.CloseMessage:
				return
			default:
				log.WithField("type", mt).Warn("unhandled message type")
			}
		}
	}()

	return s.Game, frames, nil
}

func replayGame() error {
	game, frames, err := loadGame()
	if err != nil {
		return err
	}

	restoreLog := logToFile()
	defer restoreLog()

	sounds := audio.NewSoundManager()
	if !mute {
		_ = sounds.Initialize()
	}
	defer sounds.Cleanup()

	currentFrame, err := getInitialFrame(frames)
	if err != nil {
		return err
	}

	if err = termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	canvas := render.Termbox{}
	eventQueue := setupEventQueue()

	show := func(frame *pb.GameFrame) error {
		if frame == nil {
			return nil
		}
		sounds.PlayEvents(frame.Events)
		return render.Frame(canvas, game, frame)
	}

	cycle := time.NewTicker(replayDelay)
	defer cycle.Stop()
	frameIndex := 0
	paused := false
	done := false

	for !done {
		select {
		case ev := <-eventQueue:
			if ev.Type != termbox.EventKey {
				continue
			}
			switch ev.Key {
			case termbox.KeyEsc:
				return nil
			case termbox.KeySpace:
				paused = !paused
			case termbox.KeyArrowLeft:
				paused = true
				frameIndex, currentFrame = moveFrameBackwards(frameIndex, frames)
				if err = show(currentFrame); err != nil {
					return err
				}
			case termbox.KeyArrowRight:
				paused = true
				frameIndex, currentFrame, done = moveFrameForwards(frameIndex, frames)
				if err = show(currentFrame); err != nil {
					return err
				}
			}
		case <-cycle.C:
			if paused {
				continue
			}
			if err = show(currentFrame); err != nil {
				return err
			}
			frameIndex, currentFrame, done = moveFrameForwards(frameIndex, frames)
		}
	}

	w, h := canvas.Size()
	msg := "Press any key to exit..."
	for i, r := range msg {
		termbox.SetCell((w-len(msg))/2+i, h-1, r, termbox.ColorDefault, termbox.ColorDefault)
	}
	if err = termbox.Flush(); err != nil {
		return err
	}
	<-eventQueue
	return nil
}

func getInitialFrame(frames *frameHolder) (*pb.GameFrame, error) {
	select {
	case frame := <-frames.initialFrame():
		return frame, nil
	case <-time.After(2 * time.Second):
		return nil, errors.New("unable to find initial frame for game")
	}
}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
}
