package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		params GameParams
		valid  bool
	}{
		{"default", DefaultParams(), true},
		{"1x2(1)", GameParams{Rows: 1, Cols: 2, MineCount: 1}, true},
		{"no rows", GameParams{Rows: 0, Cols: 5, MineCount: 1}, false},
		{"negative cols", GameParams{Rows: 5, Cols: -1, MineCount: 1}, false},
		{"no mines", GameParams{Rows: 5, Cols: 5, MineCount: 0}, false},
		{"full board", GameParams{Rows: 3, Cols: 3, MineCount: 9}, false},
		{"dense", GameParams{Rows: 3, Cols: 3, MineCount: 8}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.params.Validate()
			if test.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidParams)
			}
		})
	}
}

func TestSeed(t *testing.T) {
	p := GameParams{Rows: 16, Cols: 30, MineCount: 99}
	assert.Equal(t, "16:30:99", p.Seed())

	parsed, err := ParseSeed(p.Seed())
	require.NoError(t, err)
	assert.Equal(t, p, *parsed)

	_, err = ParseSeed("16:30")
	assert.Error(t, err)

	_, err = ParseSeed("2:2:4")
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestPointInBounds(t *testing.T) {
	p := GameParams{Rows: 2, Cols: 3, MineCount: 1}
	assert.True(t, p.PointInBounds(0, 0))
	assert.True(t, p.PointInBounds(1, 2))
	assert.False(t, p.PointInBounds(2, 0))
	assert.False(t, p.PointInBounds(0, 3))
	assert.False(t, p.PointInBounds(-1, 1))
	assert.ErrorIs(t, p.checkPoint(5, 5), ErrOutOfBounds)
}

func TestNeighbours(t *testing.T) {
	p := GameParams{Rows: 3, Cols: 4, MineCount: 1}
	collect := func(row, col int) []int {
		var js []int
		p.neighbours(p.index(row, col), func(j int) { js = append(js, j) })
		return js
	}

	assert.ElementsMatch(t, []int{1, 4, 5}, collect(0, 0))
	assert.ElementsMatch(t, []int{0, 1, 2, 4, 6, 8, 9, 10}, collect(1, 1))
	assert.ElementsMatch(t, []int{6, 7, 10}, collect(2, 3))
}

func TestCelltodo(t *testing.T) {
	todo := newCelltodo(5)
	_, ok := todo.pop()
	assert.False(t, ok)

	todo.add(3)
	todo.add(0)
	i, _ := todo.pop()
	assert.Equal(t, 3, i)
	todo.add(4)
	i, _ = todo.pop()
	assert.Equal(t, 0, i)
	i, _ = todo.pop()
	assert.Equal(t, 4, i)
	_, ok = todo.pop()
	assert.False(t, ok)

	todo.add(1)
	i, ok = todo.pop()
	assert.True(t, ok)
	assert.Equal(t, 1, i)
}
