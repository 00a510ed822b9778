package pb

import "time"

// Game is the header of a recorded match.
type Game struct {
	ID       string        `json:"ID"`
	Width    int           `json:"Width"`
	Height   int           `json:"Height"`
	CellSize int           `json:"CellSize"`
	Status   string        `json:"Status"`
	Players  []*PlayerInfo `json:"Players"`
	Created  time.Time     `json:"Created"`
}

// PlayerInfo describes who controls one of the snakes.
type PlayerInfo struct {
	ID    string `json:"ID"`
	Name  string `json:"Name"`
	Skin  int    `json:"Skin"`
	Color string `json:"Color"`
}

// Clone returns a deep copy of the game header.
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	clone := *g
	clone.Players = make([]*PlayerInfo, len(g.Players))
	for i, p := range g.Players {
		info := *p
		clone.Players[i] = &info
	}
	return &clone
}

// StatusResponse is returned by the api for a single match.
type StatusResponse struct {
	Game      *Game      `json:"Game"`
	LastFrame *GameFrame `json:"LastFrame"`
}

// ListGamesResponse is returned by the api when listing matches.
type ListGamesResponse struct {
	Games []*Game `json:"Games"`
}

// ListGameFramesResponse is a page of frames.
type ListGameFramesResponse struct {
	Frames []*GameFrame `json:"Frames"`
	Count  int          `json:"Count"`
}
