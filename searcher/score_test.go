package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quortex/game"
)

func place(t *testing.T, b *game.Board, tiles ...game.PlacedTile) *game.Board {
	t.Helper()
	for _, tile := range tiles {
		next, err := b.Place(tile)
		require.NoError(t, err)
		b = next
	}
	return b
}

// column returns straight tiles down column 0 for the given row range.
func column(fromRow, toRow int) []game.PlacedTile {
	var tiles []game.PlacedTile
	for row := fromRow; row <= toRow; row++ {
		tiles = append(tiles, game.PlacedTile{Type: game.NoSharps, Rotation: 0, Position: game.HexPosition{Row: row, Col: 0}})
	}
	return tiles
}

// doubleWall seals rows 0 and -1 and runs a straight chain up column 0
// from the SW edge, leaving both facing players without a route.
func doubleWall(t *testing.T) *game.Board {
	b := game.NewBoard(game.NewGrid(3))
	var tiles []game.PlacedTile
	for col := -3; col <= 3; col++ {
		tiles = append(tiles, game.PlacedTile{Type: game.ThreeSharps, Rotation: 0, Position: game.HexPosition{Row: 0, Col: col}})
	}
	for col := -2; col <= 3; col++ {
		tiles = append(tiles, game.PlacedTile{Type: game.ThreeSharps, Rotation: 0, Position: game.HexPosition{Row: -1, Col: col}})
	}
	tiles = append(tiles, column(1, 3)...)
	return place(t, b, tiles...)
}

func TestShortestPathLength(t *testing.T) {
	alice := game.Player{ID: "alice", Edge: 3}
	bob := game.Player{ID: "bob", Edge: 0}

	t.Run("empty board needs one tile per row", func(t *testing.T) {
		b := game.NewBoard(game.NewGrid(3))
		n, err := ShortestPathLength(b, alice, 0)
		require.NoError(t, err)
		require.Equal(t, 7, n)
	})

	t.Run("own flow costs nothing", func(t *testing.T) {
		b := place(t, game.NewBoard(game.NewGrid(3)), column(1, 3)...)
		n, err := ShortestPathLength(b, bob, 3)
		require.NoError(t, err)
		require.Equal(t, 4, n)
	})

	t.Run("no route is PathInfinity", func(t *testing.T) {
		n, err := ShortestPathLength(doubleWall(t), bob, 3)
		require.NoError(t, err)
		require.Equal(t, PathInfinity, n)
	})
}

func TestEvaluatePosition(t *testing.T) {
	alice := game.Player{ID: "alice", Edge: 3}
	bob := game.Player{ID: "bob", Edge: 0}
	players := []game.Player{alice, bob}

	t.Run("quadratic distance trade-off", func(t *testing.T) {
		b := place(t, game.NewBoard(game.NewGrid(3)), column(3, 3)...)
		// bob needs 6 more tiles, alice still 7: -2*36 + 49.
		score, err := EvaluatePosition(b, bob, players, nil, game.Rules{})
		require.NoError(t, err)
		require.Equal(t, -23, score)
	})

	t.Run("winning board scores WinScore", func(t *testing.T) {
		tiles := append([]game.PlacedTile{{Type: game.OneSharp, Rotation: 0, Position: game.HexPosition{Row: -3, Col: 0}}}, column(-2, 3)...)
		b := place(t, game.NewBoard(game.NewGrid(3)), tiles...)
		score, err := EvaluatePosition(b, bob, players, nil, game.Rules{})
		require.NoError(t, err)
		require.Equal(t, WinScore, score)
	})

	t.Run("opponent win scores LossScore", func(t *testing.T) {
		// With bob on a side edge the crossing belongs to alice alone.
		sideBob := game.Player{ID: "bob", Edge: 1}
		tiles := append([]game.PlacedTile{{Type: game.OneSharp, Rotation: 0, Position: game.HexPosition{Row: -3, Col: 0}}}, column(-2, 3)...)
		b := place(t, game.NewBoard(game.NewGrid(3)), tiles...)
		score, err := EvaluatePosition(b, sideBob, []game.Player{alice, sideBob}, nil, game.Rules{})
		require.NoError(t, err)
		require.Equal(t, LossScore, score)
	})

	t.Run("sealing yourself in", func(t *testing.T) {
		b := doubleWall(t)
		score, err := EvaluatePosition(b, bob, players, nil, game.Rules{})
		require.NoError(t, err)
		require.Equal(t, selfBlockPenalty, score)

		score, err = EvaluatePosition(b, bob, players, nil, game.Rules{Supermove: true})
		require.NoError(t, err)
		require.Equal(t, selfBlockBonus, score)
	})

	t.Run("sealing an opponent in", func(t *testing.T) {
		// Wall off the W edge: bob (playing W to E) has no route, alice
		// (NE to SW) is untouched.
		sideBob := game.Player{ID: "bob", Edge: 1}
		var tiles []game.PlacedTile
		for row := -1; row <= 3; row++ {
			tiles = append(tiles, game.PlacedTile{Type: game.ThreeSharps, Rotation: 0, Position: game.HexPosition{Row: row, Col: -2}})
		}
		b := place(t, game.NewBoard(game.NewGrid(3)), tiles...)
		score, err := EvaluatePosition(b, alice, []game.Player{alice, sideBob}, nil, game.Rules{})
		require.NoError(t, err)
		require.Equal(t, -2*7*7+BlockingPenalty, score)
	})

	t.Run("opponent one tile from winning", func(t *testing.T) {
		// bob's chain lacks only the NE corner cell; alice has to detour
		// around the chain.
		b := place(t, game.NewBoard(game.NewGrid(3)), column(-2, 3)...)
		score, err := EvaluatePosition(b, alice, players, nil, game.Rules{})
		require.NoError(t, err)
		require.Equal(t, -2*7*7+1*1+BlockThreatPenalty, score)
	})
}
