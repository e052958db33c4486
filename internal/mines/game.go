package mines

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Game is one session: the hidden field, the visible board and the turn
// counters. It is not safe for concurrent use.
type Game struct {
	params GameParams
	rnd    *rand.Rand

	field MineField // nil until the first effective reveal
	board Grid

	attempts   int
	ended, won bool

	// called every time the cascade uncovers a cell
	trace func(i int)
}

type Status struct {
	Attempts  int  `json:"attempts"`
	Revealed  int  `json:"revealed"`
	Remaining int  `json:"remaining"`
	Flags     int  `json:"flags"`
	Started   bool `json:"started"`
	Ended     bool `json:"ended"`
	Won       bool `json:"won"`
}

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// NewGame starts a session. Mines are placed on the first reveal so that the
// revealed cell is never a mine. A nil r is replaced with a randomly seeded
// source.
func NewGame(params GameParams, r *rand.Rand) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = NewRand()
	}
	g := &Game{
		params: params,
		rnd:    r,
		board:  newGrid(params.Size()),
	}
	return g, nil
}

func (g *Game) Params() GameParams { return g.params }
func (g *Game) Attempts() int      { return g.attempts }
func (g *Game) Ended() bool        { return g.ended }
func (g *Game) Won() bool          { return g.won }
func (g *Game) Started() bool      { return g.field != nil }

// Reveal is the player's move on a cell. Revealing a flagged or already
// revealed cell is a no-op and is not charged as an attempt.
func (g *Game) Reveal(row, col int) (Outcome, error) {
	if err := g.params.checkPoint(row, col); err != nil {
		return Rejected, err
	}
	if g.ended {
		return GameOver, nil
	}

	i := g.params.index(row, col)
	g.attempts++
	if g.board[i] != Hidden {
		g.attempts--
		return AlreadySettled, nil
	}

	if g.field == nil {
		g.field = newMineField(g.params, i, g.rnd)
	}

	out := g.cascade(i)
	Log.WithFields(logrus.Fields{
		"row":      row,
		"col":      col,
		"attempts": g.attempts,
		"outcome":  out.String(),
	}).Debug("reveal")
	return out, nil
}

// Flag toggles a flag on a hidden cell.
func (g *Game) Flag(row, col int) (Outcome, error) {
	if err := g.params.checkPoint(row, col); err != nil {
		return Rejected, err
	}
	if g.ended {
		return GameOver, nil
	}

	i := g.params.index(row, col)
	switch g.board[i] {
	case Hidden:
		g.board[i] = Flagged
	case Flagged:
		g.board[i] = Hidden
	default:
		return AlreadyRevealed, nil
	}
	return Applied, nil
}

func (g *Game) Unflag(row, col int) (Outcome, error) {
	if err := g.params.checkPoint(row, col); err != nil {
		return Rejected, err
	}
	if g.ended {
		return GameOver, nil
	}

	i := g.params.index(row, col)
	if g.board[i] != Flagged {
		return NotFlagged, nil
	}
	g.board[i] = Hidden
	return Applied, nil
}

// Chord opens every hidden neighbour of a revealed number once the number of
// flagged neighbours matches it. It is charged as a single attempt.
func (g *Game) Chord(row, col int) (Outcome, error) {
	if err := g.params.checkPoint(row, col); err != nil {
		return Rejected, err
	}
	if g.ended {
		return GameOver, nil
	}

	i := g.params.index(row, col)
	c := g.board[i]
	if !c.RevealedSafe() || c == 0 {
		return NothingToChord, nil
	}

	var flags CellState
	hidden := make([]int, 0, 8)
	g.params.neighbours(i, func(j int) {
		switch g.board[j] {
		case Flagged:
			flags++
		case Hidden:
			hidden = append(hidden, j)
		}
	})
	if flags != c || len(hidden) == 0 {
		return NothingToChord, nil
	}

	g.attempts++
	for _, j := range hidden {
		if g.cascade(j) == Detonated {
			return Detonated, nil
		}
	}
	return Applied, nil
}

// RevealedCount is the number of safe cells the player has uncovered.
func (g *Game) RevealedCount() (n int) {
	for _, s := range g.board {
		if s.RevealedSafe() {
			n++
		}
	}
	return
}

// Remaining is the number of safe cells still to be revealed.
func (g *Game) Remaining() int {
	return g.params.SafeCells() - g.RevealedCount()
}

func (g *Game) FlagCount() (n int) {
	for _, s := range g.board {
		if s == Flagged {
			n++
		}
	}
	return
}

// CheckOutcome latches a win once every safe cell is revealed and reports
// whether the game is won. A detonated mine keeps the game lost.
func (g *Game) CheckOutcome() bool {
	for _, s := range g.board {
		if s == RevealedMine {
			return g.won
		}
	}

	if g.RevealedCount() == g.params.SafeCells() {
		g.revealAll()
		g.won = true
		Log.WithField("attempts", g.attempts).Debug("game won")
	}
	return g.won
}

// ForceRevealAll ends the game showing the mine layout, e.g. when the player
// quits.
func (g *Game) ForceRevealAll() {
	g.revealAll()
}

func (g *Game) Status() Status {
	return Status{
		Attempts:  g.attempts,
		Revealed:  g.RevealedCount(),
		Remaining: g.Remaining(),
		Flags:     g.FlagCount(),
		Started:   g.Started(),
		Ended:     g.ended,
		Won:       g.won,
	}
}

// Snapshot returns a copy of the visible board.
func (g *Game) Snapshot() Grid {
	snapshot := make(Grid, len(g.board))
	copy(snapshot, g.board)
	return snapshot
}

func (g *Game) String() string {
	return g.board.Render(g.params.Cols)
}
