// Package e2e drives recorded matches through the spectator api.
package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jrissiusp/SnakeGameMultiplayer/controller/pb"
)

type client struct {
	apiURL string
	client *http.Client
}

func (c *client) getJSON(path string, out interface{}) error {
	resp, err := c.client.Get(c.apiURL + path)
	if err != nil {
		return err
	}
	err = json.NewDecoder(resp.Body).Decode(out)
	if cErr := resp.Body.Close(); err == nil {
		err = cErr
	}
	if err == nil && resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("GET %s: %s", path, resp.Status)
	}
	return err
}

func (c *client) listGames() (*pb.ListGamesResponse, error) {
	games := &pb.ListGamesResponse{}
	if err := c.getJSON("/games", games); err != nil {
		return nil, err
	}
	return games, nil
}

func (c *client) gameStatus(gameID string) (*pb.StatusResponse, *pb.ListGameFramesResponse, error) {
	st := &pb.StatusResponse{}
	frames := &pb.ListGameFramesResponse{}

	if err := c.getJSON(fmt.Sprintf("/games/%s", gameID), st); err != nil {
		return nil, nil, err
	}
	if err := c.getJSON(fmt.Sprintf("/games/%s/frames?limit=100000", gameID), frames); err != nil {
		return nil, nil, err
	}
	return st, frames, nil
}
