package mines

import (
	"fmt"
	"strings"
)

type Move uint8

const (
	Reveal Move = iota + 1
	Flag
	Unflag
	Chord
	lastMove
)

var moveNames = map[Move]string{
	Reveal: "reveal",
	Flag:   "flag",
	Unflag: "unflag",
	Chord:  "chord",
}

func (m Move) String() string {
	if name, ok := moveNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Move(%d)", m)
}

var ErrBadMove error

func init() {
	var allowedMoves []string
	for m := Reveal; m < lastMove; m++ {
		allowedMoves = append(allowedMoves, "'"+m.String()+"'")
	}
	ErrBadMove = fmt.Errorf("move must be one of %s", strings.Join(allowedMoves, ", "))
}

// ParseMove accepts a move name or its first letter, in any case.
func ParseMove(s string) (move Move, err error) {
	switch strings.ToLower(s) {
	case "r", "reveal":
		move = Reveal
	case "f", "flag":
		move = Flag
	case "u", "unflag":
		move = Unflag
	case "c", "chord":
		move = Chord
	default:
		err = ErrBadMove
	}
	return
}

// Apply performs move on the cell at row, col.
func (g *Game) Apply(move Move, row, col int) (Outcome, error) {
	switch move {
	case Reveal:
		return g.Reveal(row, col)
	case Flag:
		return g.Flag(row, col)
	case Unflag:
		return g.Unflag(row, col)
	case Chord:
		return g.Chord(row, col)
	}
	return Rejected, ErrBadMove
}
