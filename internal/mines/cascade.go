package mines

import "github.com/sirupsen/logrus"

// cascade reveals cell i and, through blank cells, the whole connected blank
// region plus its numbered border. It never counts as an attempt and never
// places mines.
func (g *Game) cascade(i int) Outcome {
	if g.board[i] != Hidden {
		return AlreadySettled
	}

	if g.field.IsMine(i) {
		/*
		 * The player has landed on a mine. Show the one that killed them
		 * and then the rest of the layout.
		 */
		g.uncover(i)
		g.revealAll()
		Log.WithField("cell", i).Debug("mine detonated")
		return Detonated
	}

	g.uncover(i)
	if g.board[i] != 0 {
		return Applied
	}

	/*
	 * Every blank cell queues its hidden neighbours. A cell is uncovered
	 * before it is queued, so it can never be queued twice.
	 */
	opened := 1
	todo := newCelltodo(len(g.board))
	todo.add(i)
	for j, ok := todo.pop(); ok; j, ok = todo.pop() {
		g.params.neighbours(j, func(k int) {
			if g.board[k] != Hidden {
				return
			}
			g.uncover(k)
			opened++
			if g.board[k] == 0 {
				todo.add(k)
			}
		})
	}

	Log.WithFields(logrus.Fields{
		"cell":   i,
		"opened": opened,
	}).Debug("cascade finished")

	return Applied
}

func (g *Game) uncover(i int) {
	if g.field.IsMine(i) {
		g.board[i] = RevealedMine
	} else {
		g.board[i] = CellState(g.field[i])
	}
	if g.trace != nil {
		g.trace(i)
	}
}

// revealAll shows every mine, flagged or not, and ends the game. Safe cells
// keep their state.
func (g *Game) revealAll() {
	for i := range g.field {
		if g.field.IsMine(i) {
			g.board[i] = RevealedMine
		}
	}
	g.ended = true
}
