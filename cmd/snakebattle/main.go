package main

import (
	"math/rand"
	"time"

	"github.com/jrissiusp/SnakeGameMultiplayer/cmd/snakebattle/commands"
)

func main() {
	rand.Seed(time.Now().UnixNano())
	commands.Execute()
}
