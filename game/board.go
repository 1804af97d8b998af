package game

import "fmt"

// Board is an immutable placement snapshot over a shared Grid. Cells are
// append-once: placing or replacing a tile returns a new snapshot and
// never touches the receiver, so snapshots can be handed to concurrent
// readers freely.
type Board struct {
	grid  *Grid
	cells []*PlacedTile // indexed by grid cell index, nil when empty
	count int
}

// NewBoard returns an empty board over the grid.
func NewBoard(grid *Grid) *Board {
	return &Board{
		grid:  grid,
		cells: make([]*PlacedTile, grid.Size()),
	}
}

// Grid returns the shared arena.
func (b *Board) Grid() *Grid {
	return b.grid
}

// TileCount returns the number of placed tiles.
func (b *Board) TileCount() int {
	return b.count
}

// TileAt returns the tile at p, if any.
func (b *Board) TileAt(p HexPosition) (PlacedTile, bool) {
	i, ok := b.grid.IndexOf(p)
	if !ok || b.cells[i] == nil {
		return PlacedTile{}, false
	}
	return *b.cells[i], true
}

// tileAtIndex returns the tile at cell index i, or nil.
func (b *Board) tileAtIndex(i int) *PlacedTile {
	return b.cells[i]
}

// IsOccupied reports whether p holds a tile. Off-board positions are
// never occupied.
func (b *Board) IsOccupied(p HexPosition) bool {
	i, ok := b.grid.IndexOf(p)
	return ok && b.cells[i] != nil
}

// EmptyPositions returns the unoccupied cells in row-major order.
func (b *Board) EmptyPositions() []HexPosition {
	empty := make([]HexPosition, 0, b.grid.Size()-b.count)
	for i, t := range b.cells {
		if t == nil {
			empty = append(empty, b.grid.PositionAt(i))
		}
	}
	return empty
}

// Tiles returns every placed tile in row-major order.
func (b *Board) Tiles() []PlacedTile {
	tiles := make([]PlacedTile, 0, b.count)
	for _, t := range b.cells {
		if t != nil {
			tiles = append(tiles, *t)
		}
	}
	return tiles
}

func (b *Board) clone() *Board {
	cells := make([]*PlacedTile, len(b.cells))
	copy(cells, b.cells)
	return &Board{grid: b.grid, cells: cells, count: b.count}
}

// Place returns a new snapshot with the tile added at its position. The
// position must be an empty cell of the grid; a position outside the
// grid is invalid input.
func (b *Board) Place(t PlacedTile) (*Board, error) {
	i, ok := b.grid.IndexOf(t.Position)
	if !ok {
		return nil, fmt.Errorf("%w: position %s outside radius-%d board", ErrInvalidInput, t.Position.Key(), b.grid.Radius())
	}
	if !t.Type.Valid() || t.Rotation < 0 || t.Rotation >= NumDirections {
		return nil, fmt.Errorf("%w: malformed tile %+v", ErrInvalidInput, t)
	}
	if b.cells[i] != nil {
		return nil, fmt.Errorf("position %s is occupied", t.Position.Key())
	}
	next := b.clone()
	next.cells[i] = &t
	next.count++
	return next, nil
}

// Replace returns a new snapshot with the tile at t.Position swapped for
// t. The position must already hold a tile; this is the supermove path.
func (b *Board) Replace(t PlacedTile) (*Board, error) {
	i, ok := b.grid.IndexOf(t.Position)
	if !ok {
		return nil, fmt.Errorf("%w: position %s outside radius-%d board", ErrInvalidInput, t.Position.Key(), b.grid.Radius())
	}
	if !t.Type.Valid() || t.Rotation < 0 || t.Rotation >= NumDirections {
		return nil, fmt.Errorf("%w: malformed tile %+v", ErrInvalidInput, t)
	}
	if b.cells[i] == nil {
		return nil, fmt.Errorf("position %s is empty", t.Position.Key())
	}
	next := b.clone()
	next.cells[i] = &t
	return next, nil
}
