package handlers

import (
	"time"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type CreateNewGameDTO struct {
	Rows      int `schema:"rows"`
	Cols      int `schema:"cols"`
	MineCount int `schema:"mine_count"`
}

// ParseCreateNewGameDTO decodes board params, falling back to fallback for
// every missing one.
func ParseCreateNewGameDTO(src map[string][]string, fallback mines.GameParams) (mines.GameParams, error) {
	dto := CreateNewGameDTO(fallback)
	if err := decoder.Decode(&dto, src); err != nil {
		return mines.GameParams{}, err
	}
	return mines.GameParams(dto), nil
}

type Position struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func ParsePosition(src map[string][]string) (Position, error) {
	var pos Position
	err := decoder.Decode(&pos, src)
	return pos, err
}

type GameSessionDTO struct {
	Board     []string `json:"board"`
	Rows      int      `json:"rows"`
	Cols      int      `json:"cols"`
	MineCount int      `json:"mine_count"`
	mines.Status
	Notice    string `json:"notice,omitempty"`
	StartedAt int64  `json:"started_at"`
	EndedAt   *int64 `json:"ended_at,omitempty"`
}

func NewGameSessionDTO(
	startedAt time.Time,
	endedAt *time.Time,
	g *mines.Game,
	notice string,
) *GameSessionDTO {
	var endedAtInt *int64
	if endedAt != nil {
		e := endedAt.UnixMilli()
		endedAtInt = &e
	}
	p := g.Params()
	dto := &GameSessionDTO{
		Board:     g.Snapshot().Rows(p.Cols),
		Rows:      p.Rows,
		Cols:      p.Cols,
		MineCount: p.MineCount,
		Status:    g.Status(),
		Notice:    notice,
		StartedAt: startedAt.UnixMilli(),
		EndedAt:   endedAtInt,
	}
	return dto
}
