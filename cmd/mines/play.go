package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

const prompt = "Would you like to reveal (r), flag (f), unflag (u) or chord (c) a location?\n" +
	"Type the action followed by row and column, e.g. 'r 3 4', or 'quit' - "

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// play drives g from in until the game ends, printing to w. Running out of
// input counts as quitting.
func play(in io.Reader, w io.Writer, g *mines.Game) error {
	scanner := bufio.NewScanner(in)
	for !g.Ended() {
		fmt.Fprintf(w, "Attempt %d. Current board:\n\n%s\n", g.Attempts()+1, g)
		left := g.Remaining()
		fmt.Fprintf(w, "You have %d dot%s left to uncover.\n", left, plural(left))
		fmt.Fprint(w, prompt)

		if !scanner.Scan() {
			g.ForceRevealAll()
			fmt.Fprintln(w)
			break
		}

		out, err := executeCommand(g, scanner.Text())
		switch {
		case errors.Is(err, errQuit):
		case errors.Is(err, mines.ErrOutOfBounds):
			p := g.Params()
			fmt.Fprintf(w, "Invalid input: row must be between 0-%d and column between 0-%d\n",
				p.Rows-1, p.Cols-1)
		case err != nil:
			fmt.Fprintf(w, "Invalid input: %s\n", err)
		case out.Informational():
			fmt.Fprintf(w, "%s!\n", capitalize(out.String()))
		}

		g.CheckOutcome()
	}

	result := "lost"
	if g.Won() {
		result = "won"
	}
	log.WithFields(logrus.Fields{
		"won":      g.Won(),
		"attempts": g.Attempts(),
	}).Debug("game finished")

	fmt.Fprintf(w, "%s\nYou have %s Minesweeper!\nTotal attempts: %d\nThanks for playing!\n",
		g, result, g.Attempts())
	return scanner.Err()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
