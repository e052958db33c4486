package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Hidden       CellState = -2
	Flagged      CellState = -1
	RevealedMine CellState = 64
	/*
	 * 0 to 8 mean the cell is revealed and holds the number of mined
	 * neighbours; 0 is a blank cell the cascade spreads through.
	 */
)

func (s CellState) Revealed() bool {
	return 0 <= s && s <= 8 || s == RevealedMine
}

// RevealedSafe reports a revealed cell that is not a mine.
func (s CellState) RevealedSafe() bool {
	return 0 <= s && s <= 8
}

func (s CellState) String() string {
	switch {
	case s == Hidden:
		return "."
	case s == Flagged:
		return "F"
	case s == RevealedMine:
		return "X"
	case s == 0:
		return " "
	case 1 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Grid is the player visible board, indexed row*cols+col.
type Grid []CellState

func newGrid(size int) Grid {
	g := make(Grid, size)
	for i := range g {
		g[i] = Hidden
	}
	return g
}

func (g Grid) At(p GameParams, row, col int) CellState {
	return g[p.index(row, col)]
}

// Rows returns one string per board row, cells separated by spaces.
func (g Grid) Rows(cols int) []string {
	rows := make([]string, 0, len(g)/cols)
	for y := range len(g) / cols {
		cells := make([]string, cols)
		for x := range cols {
			cells[x] = g[y*cols+x].String()
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return rows
}

// Render draws the board the way the terminal driver prints it: a header of
// column indices, a separator rule and one line per row.
func (g Grid) Render(cols int) string {
	var b strings.Builder
	header := make([]string, cols)
	for x := range cols {
		header[x] = strconv.Itoa(x)
	}
	fmt.Fprintf(&b, "   %s\n", strings.Join(header, " "))
	fmt.Fprintf(&b, "   %s\n", strings.Repeat("-", max(cols*2-1, 0)))
	for y, row := range g.Rows(cols) {
		fmt.Fprintf(&b, "%d| %s\n", y, row)
	}
	return b.String()
}
