// Package csv exports recorded matches as move logs. The file looks like this,
// with the metadata json on one line:
//
//	#{"board":{"id":"1234","width":30,"height":30},"snakes":[...]}
//	turn,player1,player2
//	1,r,l
//	2,r,u
//	3,d,u
//
// Moves are u, d, l and r in screen coordinates, "_" means the head did not
// move between two recorded frames.
package csv

type gameArchive struct {
	Board  boardArchive   `json:"board"`
	Snakes []snakeArchive `json:"snakes"`
}

type boardArchive struct {
	ID     string `json:"id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type pointArchive struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type snakeArchive struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Color string       `json:"color"`
	Start pointArchive `json:"start"`
}

// Turn is one row of the move log.
type Turn struct {
	Number int
	Moves  []string
}
