package engine

import (
	"time"

	"quortex/game"
	"quortex/searcher"
)

// Seat binds a player snapshot to the advisor that moves for it.
type Seat struct {
	Player  game.Player
	Advisor *searcher.Advisor
}

// MoveLog records one applied action for experiment output and replay
// inspection.
type MoveLog struct {
	Step          int
	Player        string
	Tile          game.TileType
	Position      game.HexPosition
	Rotation      int
	Score         int
	Candidates    int
	IsReplacement bool
	Duration      time.Duration
}

// Engine drives one game to completion over immutable snapshots.
type Engine interface {
	Run() (game.Result, []MoveLog, error)
}
