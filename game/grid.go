package game

import "fmt"

// Grid precomputes the board arena for one radius: the cell list, the
// position-to-index mapping, a per-cell neighbor table, the six edge
// cell lists and each cell's off-board directions. Boards share a Grid
// the way game states share a static map; it is never mutated after
// construction.
type Grid struct {
	radius    int
	positions []HexPosition
	index     map[HexPosition]int
	neighbors [][NumDirections]int // cell index per direction, -1 off board
	outward   [][]Direction        // directions leaving the board, per cell
	edges     [NumDirections][]int // cell indices per edge
}

// NewGrid builds the arena for the given radius.
func NewGrid(radius int) *Grid {
	positions := AllBoardPositions(radius)
	g := &Grid{
		radius:    radius,
		positions: positions,
		index:     make(map[HexPosition]int, len(positions)),
		neighbors: make([][NumDirections]int, len(positions)),
		outward:   make([][]Direction, len(positions)),
	}
	for i, p := range positions {
		g.index[p] = i
	}
	for i, p := range positions {
		for d := Direction(0); d < NumDirections; d++ {
			n := p.Neighbor(d)
			if j, ok := g.index[n]; ok {
				g.neighbors[i][d] = j
			} else {
				g.neighbors[i][d] = -1
				g.outward[i] = append(g.outward[i], d)
			}
		}
		for e := 0; e < NumDirections; e++ {
			if OnEdge(p, e, radius) {
				g.edges[e] = append(g.edges[e], i)
			}
		}
	}
	return g
}

// Radius returns the board radius the grid was built for.
func (g *Grid) Radius() int {
	return g.radius
}

// Size returns the number of cells (3R^2+3R+1).
func (g *Grid) Size() int {
	return len(g.positions)
}

// Positions returns all cell positions in row-major order. The caller
// must not modify the returned slice.
func (g *Grid) Positions() []HexPosition {
	return g.positions
}

// Contains reports whether p is a cell of this grid.
func (g *Grid) Contains(p HexPosition) bool {
	_, ok := g.index[p]
	return ok
}

// IndexOf returns the linear cell index of p.
func (g *Grid) IndexOf(p HexPosition) (int, bool) {
	i, ok := g.index[p]
	return i, ok
}

// PositionAt returns the position of cell index i.
func (g *Grid) PositionAt(i int) HexPosition {
	return g.positions[i]
}

// NeighborIndex returns the cell index adjacent to cell i in direction d,
// or -1 when that neighbor is off the board.
func (g *Grid) NeighborIndex(i int, d Direction) int {
	return g.neighbors[i][d]
}

// OutwardDirections returns the directions in which cell i faces off the
// board. Interior cells have none; edge cells have one or more, corner
// cells up to three.
func (g *Grid) OutwardDirections(i int) []Direction {
	return g.outward[i]
}

// EdgeCellIndices returns the cell indices of edge e.
func (g *Grid) EdgeCellIndices(e int) ([]int, error) {
	if e < 0 || e >= NumDirections {
		return nil, fmt.Errorf("%w: edge %d out of range", ErrInvalidInput, e)
	}
	return g.edges[e], nil
}

// OnEdge reports whether cell i lies on edge e.
func (g *Grid) OnEdge(i int, e int) bool {
	return OnEdge(g.positions[i], e, g.radius)
}
