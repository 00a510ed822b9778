package commands

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/jrissiusp/SnakeGameMultiplayer/api"
	"github.com/jrissiusp/SnakeGameMultiplayer/audio"
	"github.com/jrissiusp/SnakeGameMultiplayer/config"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller/pb"
	"github.com/jrissiusp/SnakeGameMultiplayer/render"
	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
	"github.com/jrissiusp/SnakeGameMultiplayer/worker"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	skinOne     = 0
	skinTwo     = 0
	boardWidth  = rules.DefaultBoardWidth
	boardHeight = rules.DefaultBoardHeight
	mute        = false
	serveListen = ""
)

func init() {
	playCmd.Flags().IntVar(&skinOne, "skin1", skinOne, "skin of player 1 (1-5), 0 chooses on screen")
	playCmd.Flags().IntVar(&skinTwo, "skin2", skinTwo, "skin of player 2 (1-5), 0 chooses on screen")
	playCmd.Flags().IntVar(&boardWidth, "width", boardWidth, "board width in cells")
	playCmd.Flags().IntVar(&boardHeight, "height", boardHeight, "board height in cells")
	playCmd.Flags().BoolVar(&mute, "mute", mute, "disable sound")
	playCmd.Flags().StringVar(&serveListen, "serve", serveListen, "serve the spectator api on this address while playing")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays a local two player battle",
	Run: func(c *cobra.Command, args []string) {
		if err := play(); err != nil {
			log.WithError(err).Fatal("snake battle failed")
		}
	},
}

// logToFile keeps log lines from tearing the terminal ui.
func logToFile() func() {
	path := filepath.Join(os.TempDir(), "snakebattle.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.WithError(err).Warn("unable to open log file, logging disabled")
		log.SetLevel(log.PanicLevel)
		return func() {}
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}
}

func play() error {
	store, release, err := openStore()
	if err != nil {
		return err
	}
	defer release()

	if serveListen != "" {
		srv := api.New(serveListen, store)
		go srv.WaitForExit()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	restoreLog := logToFile()
	defer restoreLog()

	sounds := audio.NewSoundManager()
	if !mute {
		// Failure leaves the manager silent.
		_ = sounds.Initialize()
	}
	defer sounds.Cleanup()

	if err = termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	canvas := render.Termbox{}
	events := setupEventQueue()
	m := newMenu([2]rules.Skin{rules.Skin(skinOne), rules.Skin(skinTwo)})
	if err = m.draw(canvas); err != nil {
		return err
	}

	for ev := range events {
		if ev.Type == termbox.EventResize {
			if err = m.draw(canvas); err != nil {
				return err
			}
			continue
		}

		switch m.key(ev) {
		case actionQuit:
			return nil
		case actionRedraw:
			sounds.Play(audio.CueChoose)
		case actionStartMatch:
			sounds.Play(audio.CueChoose)
			snap, quit, err := battle(store, canvas, sounds, events, m.skins)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			m.finish(snap)
		default:
			continue
		}
		if err = m.draw(canvas); err != nil {
			return err
		}
	}
	return nil
}

// battle runs one match, reading steering keys until it ends. quit is true
// when the players pressed Esc.
func battle(store controller.Store, canvas render.Canvas, sounds *audio.SoundManager, events <-chan termbox.Event, skins [2]rules.Skin) (snap rules.Snapshot, quit bool, err error) {
	settings := rules.DefaultSettings()
	settings.Width = boardWidth
	settings.Height = boardHeight

	match := rules.NewMatch(settings, rand.New(rand.NewSource(time.Now().UnixNano())))
	game := worker.NewGame(match.Settings(), skins)
	input := &worker.Input{}
	runner := &worker.Runner{
		Store:       store,
		TickRate:    config.TickRate,
		Burst:       config.TickBurst,
		RecordEvery: config.RecordEvery,
	}

	observe := func(snap rules.Snapshot, events []rules.Event) {
		sounds.PlayEvents(events)
		if err := render.Frame(canvas, game, pb.NewGameFrame(game, snap, events)); err != nil {
			log.WithError(err).Error("unable to draw frame")
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The match-ended event stops the music again.
	sounds.StartMusic()
	done := make(chan error, 1)
	go func() {
		_, err := runner.Run(ctx, game, match, input, observe)
		done <- err
	}()

	for {
		select {
		case err := <-done:
			if err != nil {
				return snap, false, err
			}
			return match.Snapshot(), false, nil
		case ev := <-events:
			if ev.Type == termbox.EventKey && ev.Key == termbox.KeyEsc {
				cancel()
				<-done
				sounds.StopMusic()
				return match.Snapshot(), true, nil
			}
			if p, d, ok := steer(ev); ok {
				input.Set(p, d)
			}
		}
	}
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
