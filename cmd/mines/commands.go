package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var errQuit = errors.New("quit")

var quitCommands = map[string]bool{
	"q":    true,
	"quit": true,
	"exit": true,
	"stop": true,
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("column must be an int")
		return
	}
	return
}

// executeCommand runs one line of input such as "r 3 4" against the game.
// Quitting reveals the mine layout and returns errQuit.
func executeCommand(g *mines.Game, c string) (mines.Outcome, error) {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return mines.Rejected, errors.New("empty command")
	}
	if quitCommands[strings.ToLower(parts[0])] {
		g.ForceRevealAll()
		return mines.Applied, errQuit
	}
	move, err := mines.ParseMove(parts[0])
	if err != nil {
		return mines.Rejected, errors.New("unknown command")
	}
	if len(parts) != 3 {
		return mines.Rejected, errors.New("invalid number of arguments")
	}
	row, col, err := parseRowCol(parts[1:])
	if err != nil {
		return mines.Rejected, err
	}
	return g.Apply(move, row, col)
}
