package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardPlace(t *testing.T) {
	tile := PlacedTile{Type: TwoSharps, Rotation: 2, Position: HexPosition{Row: 1, Col: -1}}

	t.Run("returns a new snapshot", func(t *testing.T) {
		b := NewBoard(NewGrid(3))
		next, err := b.Place(tile)
		require.NoError(t, err)

		require.Equal(t, 0, b.TileCount())
		require.False(t, b.IsOccupied(tile.Position))

		require.Equal(t, 1, next.TileCount())
		got, ok := next.TileAt(tile.Position)
		require.True(t, ok)
		require.Equal(t, tile, got)
	})

	t.Run("rejects an occupied cell", func(t *testing.T) {
		b := buildBoard(t, tile)
		_, err := b.Place(tile)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects off-board and malformed tiles", func(t *testing.T) {
		b := NewBoard(NewGrid(3))
		_, err := b.Place(PlacedTile{Type: NoSharps, Position: HexPosition{Row: 2, Col: 2}})
		require.ErrorIs(t, err, ErrInvalidInput)

		_, err = b.Place(PlacedTile{Type: TileType(9), Position: HexPosition{Row: 0, Col: 0}})
		require.ErrorIs(t, err, ErrInvalidInput)

		_, err = b.Place(PlacedTile{Type: NoSharps, Rotation: 6, Position: HexPosition{Row: 0, Col: 0}})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestBoardReplace(t *testing.T) {
	tile := PlacedTile{Type: ThreeSharps, Rotation: 0, Position: HexPosition{Row: 0, Col: 0}}
	swap := PlacedTile{Type: NoSharps, Rotation: 1, Position: HexPosition{Row: 0, Col: 0}}

	t.Run("swaps without touching the receiver", func(t *testing.T) {
		b := buildBoard(t, tile)
		next, err := b.Replace(swap)
		require.NoError(t, err)

		got, ok := b.TileAt(tile.Position)
		require.True(t, ok)
		require.Equal(t, tile, got)

		got, ok = next.TileAt(tile.Position)
		require.True(t, ok)
		require.Equal(t, swap, got)
		require.Equal(t, 1, next.TileCount())
	})

	t.Run("rejects an empty cell", func(t *testing.T) {
		b := NewBoard(NewGrid(3))
		_, err := b.Replace(swap)
		require.Error(t, err)
	})
}

func TestBoardEnumeration(t *testing.T) {
	tiles := []PlacedTile{
		{Type: NoSharps, Rotation: 0, Position: HexPosition{Row: -1, Col: 0}},
		{Type: OneSharp, Rotation: 3, Position: HexPosition{Row: 2, Col: 1}},
	}
	b := buildBoard(t, tiles...)

	require.Len(t, b.EmptyPositions(), 35)
	require.ElementsMatch(t, tiles, b.Tiles())
}
