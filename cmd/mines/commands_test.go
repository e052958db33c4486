package main

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func newTestGame(t *testing.T, p mines.GameParams) *mines.Game {
	t.Helper()
	g, err := mines.NewGame(p, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	return g
}

func TestExecuteCommand(t *testing.T) {
	g := newTestGame(t, mines.DefaultParams())

	tests := []struct {
		command string
		outcome mines.Outcome
		errText string
	}{
		{"", mines.Rejected, "empty command"},
		{"open 1 1", mines.Rejected, "unknown command"},
		{"r 1", mines.Rejected, "invalid number of arguments"},
		{"r a 1", mines.Rejected, "row must be an int"},
		{"r 1 b", mines.Rejected, "column must be an int"},
		{"r 1 10", mines.Rejected, "cell out of bounds"},
		{"f 0 0", mines.Applied, ""},
		{"u 0 0", mines.Applied, ""},
		{"unflag 0 0", mines.NotFlagged, ""},
		{"reveal 4 4", mines.Applied, ""},
		{"R 4 4", mines.AlreadySettled, ""},
		{"flag 4 4", mines.AlreadyRevealed, ""},
	}

	for _, test := range tests {
		out, err := executeCommand(g, test.command)
		if test.errText != "" {
			assert.ErrorContains(t, err, test.errText, test.command)
		} else {
			assert.NoError(t, err, test.command)
		}
		assert.Equal(t, test.outcome, out, test.command)
	}
	assert.Equal(t, 1, g.Attempts())
}

func TestQuitRevealsMines(t *testing.T) {
	for _, c := range []string{"q", "quit", "EXIT", "stop"} {
		g := newTestGame(t, mines.DefaultParams())
		_, err := executeCommand(g, "r 0 0")
		require.NoError(t, err)

		_, err = executeCommand(g, c)
		assert.ErrorIs(t, err, errQuit)
		assert.True(t, g.Ended())
		assert.False(t, g.CheckOutcome())
		assert.Contains(t, g.String(), "X")
	}
}

func TestPlayWins(t *testing.T) {
	g := newTestGame(t, mines.GameParams{Rows: 1, Cols: 2, MineCount: 1})
	in := strings.NewReader("x\nr 5 5 5\nr 0 9\nf 0 0\nr 0 0\nu 0 0\nr 0 0\n")
	var out bytes.Buffer

	require.NoError(t, play(in, &out, g))

	text := out.String()
	assert.Contains(t, text, "Invalid input: unknown command")
	assert.Contains(t, text, "Invalid input: invalid number of arguments")
	assert.Contains(t, text, "Invalid input: row must be between 0-0 and column between 0-1")
	assert.Contains(t, text, "This location has already been revealed or flagged!")
	assert.Contains(t, text, "You have 1 dot left to uncover.")
	assert.Contains(t, text, "You have won Minesweeper!")
	assert.Contains(t, text, "Total attempts: 1")
	assert.Contains(t, text, "0| 1 X\n")
}

func TestPlayEndOfInputLoses(t *testing.T) {
	g := newTestGame(t, mines.GameParams{Rows: 10, Cols: 10, MineCount: 30})
	var out bytes.Buffer

	require.NoError(t, play(strings.NewReader("r 5 5\n"), &out, g))

	text := out.String()
	assert.Contains(t, text, "Attempt 1. Current board:")
	assert.Contains(t, text, "Attempt 2. Current board:")
	assert.Contains(t, text, "You have 70 dots left to uncover.")
	assert.True(t, g.Ended())
	assert.Contains(t, text, "Total attempts: 1")
}
