package commands

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/jrissiusp/SnakeGameMultiplayer/controller"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller/csv"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller/pb"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const exportPageSize = 500

var exportOutput = ""

func init() {
	exportCmd.Flags().StringVarP(&gameID, "game-id", "g", "", "the game id of the game to export")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", exportOutput, "file to write, stdout when empty")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "exports the moves of a recorded battle as csv",
	Args: func(c *cobra.Command, args []string) error {
		if len(gameID) == 0 {
			return errors.New("game id is required")
		}
		return nil
	},
	Run: func(c *cobra.Command, args []string) {
		store, release, err := openStore()
		if err != nil {
			log.WithError(err).Fatal("unable to start up backend store")
		}
		defer release()

		var w io.Writer = os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				log.WithError(err).Fatal("unable to create output file")
			}
			defer f.Close()
			w = f
		}

		if err := exportGame(context.Background(), store, gameID, w); err != nil {
			log.WithError(err).WithField("GameID", gameID).Error("export failed")
		}
	},
}

// exportGame pages through all recorded frames of a game and writes them
// as csv.
func exportGame(ctx context.Context, store controller.Store, id string, w io.Writer) error {
	game, err := store.GetGame(ctx, id)
	if err != nil {
		return err
	}

	var frames []*pb.GameFrame
	for {
		page, err := store.ListGameFrames(ctx, id, exportPageSize, len(frames))
		if err != nil {
			return err
		}
		frames = append(frames, page...)
		if len(page) < exportPageSize {
			break
		}
	}
	return csv.Write(w, game, frames)
}
