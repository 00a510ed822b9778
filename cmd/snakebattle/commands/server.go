package commands

import (
	"github.com/jrissiusp/SnakeGameMultiplayer/api"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	apiListen = ":3005"
)

func init() {
	serverCmd.Flags().StringVarP(&apiListen, "listen", "l", apiListen, "api address to listen on")
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "serves recorded battles to spectators and replays",
	Run: func(c *cobra.Command, args []string) {
		store, release, err := openStore()
		if err != nil {
			log.WithError(err).Error("unable to start up backend store")
			return
		}
		defer release()

		log.WithFields(log.Fields{
			"listen": apiListen,
			"store":  storeBackend,
		}).Info("Snake battle api serving")
		api.New(apiListen, store).WaitForExit()
	},
}
