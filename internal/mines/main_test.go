package mines

import (
	"math/rand/v2"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	os.Exit(m.Run())
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// layout turns rows of '*' (mine) and '.' (safe) into params and a mine mask.
func layout(rows ...string) (GameParams, []bool) {
	p := GameParams{Rows: len(rows), Cols: len(rows[0])}
	mines := make([]bool, 0, p.Size())
	for _, row := range rows {
		for _, c := range row {
			mines = append(mines, c == '*')
			if c == '*' {
				p.MineCount++
			}
		}
	}
	return p, mines
}

// mineFieldFromMines builds a field from an explicit layout.
func mineFieldFromMines(p GameParams, mines []bool) MineField {
	if len(mines) != p.Size() {
		panic(AssertionError{"mine layout does not match board size"})
	}
	field := make(MineField, p.Size())
	for i, m := range mines {
		if m {
			field[i] = Mine
		}
	}
	field.countNeighbours(p)
	return field
}

// newGameWithMines starts a session over a fixed layout.
func newGameWithMines(params GameParams, mines []bool) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		params: params,
		field:  mineFieldFromMines(params, mines),
		board:  newGrid(params.Size()),
	}
	if n := g.field.MineCount(); n != params.MineCount {
		return nil, AssertionError{"layout mine count differs from params"}
	}
	return g, nil
}
