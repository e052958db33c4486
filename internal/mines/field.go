package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

const Mine int8 = -1

// MineField is the hidden layout: [Mine] or the number of mined neighbours
// for every cell, indexed row*cols+col.
type MineField []int8

func (f MineField) IsMine(i int) bool {
	return f[i] == Mine
}

func (f MineField) MineCount() (n int) {
	for _, v := range f {
		if v == Mine {
			n++
		}
	}
	return
}

// newMineField places p.MineCount mines anywhere but the avoided cell.
func newMineField(p GameParams, avoid int, r *rand.Rand) MineField {
	field := make(MineField, p.Size())

	/*
	 * Rejection sampling stays cheap while at most half of the candidate
	 * cells are mined. Past that, retries pile up, so pick off a shuffled
	 * candidate list instead.
	 */
	if p.MineCount <= (p.Size()-1)/2 {
		for placed := 0; placed < p.MineCount; {
			i := r.IntN(p.Size())
			if i == avoid || field[i] == Mine {
				continue
			}
			field[i] = Mine
			placed++
		}
	} else {
		candidates := make([]int, 0, p.Size()-1)
		for i := range p.Size() {
			if i != avoid {
				candidates = append(candidates, i)
			}
		}
		k := len(candidates)
		for range p.MineCount {
			i := r.IntN(k)
			field[candidates[i]] = Mine
			k--
			candidates[i] = candidates[k]
		}
	}

	field.countNeighbours(p)

	Log.WithFields(logrus.Fields{
		"params": p.Seed(),
		"avoid":  avoid,
	}).Debug("mine field generated")

	return field
}

func (f MineField) countNeighbours(p GameParams) {
	for i := range f {
		if f[i] == Mine {
			continue
		}
		var n int8
		p.neighbours(i, func(j int) {
			if f[j] == Mine {
				n++
			}
		})
		f[i] = n
	}
}
