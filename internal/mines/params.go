package mines

import (
	"fmt"
	"strings"
)

const (
	DefaultRows      = 10
	DefaultCols      = 10
	DefaultMineCount = 10
)

type GameParams struct {
	Rows, Cols, MineCount int
}

func DefaultParams() GameParams {
	return GameParams{
		Rows:      DefaultRows,
		Cols:      DefaultCols,
		MineCount: DefaultMineCount,
	}
}

func (p GameParams) Unpack() (rows int, cols int, mc int) {
	return p.Rows, p.Cols, p.MineCount
}

func (p GameParams) Size() int {
	return p.Rows * p.Cols
}

// SafeCells is the number of cells that have to be revealed to win.
func (p GameParams) SafeCells() int {
	return p.Size() - p.MineCount
}

func (p GameParams) Validate() error {
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d",
			ErrInvalidParams, p.Rows, p.Cols)
	}
	if p.MineCount <= 0 {
		return fmt.Errorf("%w: mine count must be positive, got %d",
			ErrInvalidParams, p.MineCount)
	}
	if p.MineCount >= p.Size() {
		return fmt.Errorf("%w: %d mines do not fit a %dx%d board",
			ErrInvalidParams, p.MineCount, p.Rows, p.Cols)
	}
	return nil
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Rows, p.Cols, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Rows, &p.Cols, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p GameParams) PointInBounds(row, col int) bool {
	return 0 <= row && row < p.Rows && 0 <= col && col < p.Cols
}

func (p GameParams) index(row, col int) int {
	return row*p.Cols + col
}

func (p GameParams) point(i int) (row, col int) {
	return i / p.Cols, i % p.Cols
}

func (p GameParams) checkPoint(row, col int) error {
	if !p.PointInBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d) is outside of %dx%d board",
			ErrOutOfBounds, row, col, p.Rows, p.Cols)
	}
	return nil
}
