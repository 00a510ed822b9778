package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/davecgh/go-spew/spew"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller/pb"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "gets the status of a recorded battle from the api server",
	Args: func(c *cobra.Command, args []string) error {
		if len(gameID) == 0 {
			return errors.New("game id is required")
		}
		return nil
	},
	Run: func(*cobra.Command, []string) {
		status, err := getStatus(gameID)
		if err != nil {
			log.WithError(err).WithField("GameID", gameID).Fatal("unable to get status")
		}
		spew.Dump(status)
	},
}

var (
	gameID string
)

func init() {
	statusCmd.Flags().StringVarP(&gameID, "game-id", "g", "", "the game id of the game to get the status of")
}

func getStatus(id string) (*pb.StatusResponse, error) {
	resp, err := httpClient.Get(fmt.Sprintf("%s/games/%s", apiAddr, id))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api returned %d: %s", resp.StatusCode, string(data))
	}

	sr := &pb.StatusResponse{}
	if err = json.Unmarshal(data, sr); err != nil {
		log.WithFields(log.Fields{
			"resp": string(data),
			"id":   id,
		}).Info("unable to unmarshal status response")
		return nil, err
	}

	return sr, nil
}
