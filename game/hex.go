package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction is one of the six hex directions. Opposite directions are
// always three steps apart.
type Direction int

const (
	SW Direction = iota
	W
	NW
	NE
	E
	SE
)

const NumDirections = 6

var directionNames = [NumDirections]string{"SW", "W", "NW", "NE", "E", "SE"}

func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Valid reports whether d is one of the six directions.
func (d Direction) Valid() bool {
	return d >= 0 && d < NumDirections
}

// Opposite returns the direction pointing the other way (E<->W, NE<->SW, NW<->SE).
func (d Direction) Opposite() Direction {
	return (d + 3) % NumDirections
}

// Rotate returns d rotated by r 60-degree steps.
func Rotate(d Direction, r int) Direction {
	return Direction((int(d) + r) % NumDirections)
}

// HexPosition is an axial coordinate on the board.
type HexPosition struct {
	Row int
	Col int
}

// directionOffsets maps each direction to its axial coordinate offset.
// Offsets for opposite directions are negations of each other.
var directionOffsets = [NumDirections]HexPosition{
	SW: {Row: 1, Col: -1},
	W:  {Row: 0, Col: -1},
	NW: {Row: -1, Col: 0},
	NE: {Row: -1, Col: 1},
	E:  {Row: 0, Col: 1},
	SE: {Row: 1, Col: 0},
}

// Neighbor returns the adjacent position in direction d, without any
// bounds check.
func (p HexPosition) Neighbor(d Direction) HexPosition {
	off := directionOffsets[d]
	return HexPosition{Row: p.Row + off.Row, Col: p.Col + off.Col}
}

// Key returns the canonical string form of p, e.g. "2,-1".
func (p HexPosition) Key() string {
	return strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col)
}

// PositionFromKey parses a key produced by Key back into a position.
func PositionFromKey(key string) (HexPosition, error) {
	row, col, ok := strings.Cut(key, ",")
	if !ok {
		return HexPosition{}, fmt.Errorf("%w: malformed position key %q", ErrInvalidInput, key)
	}
	r, err := strconv.Atoi(row)
	if err != nil {
		return HexPosition{}, fmt.Errorf("%w: malformed position key %q", ErrInvalidInput, key)
	}
	c, err := strconv.Atoi(col)
	if err != nil {
		return HexPosition{}, fmt.Errorf("%w: malformed position key %q", ErrInvalidInput, key)
	}
	return HexPosition{Row: r, Col: c}, nil
}

// IsValidPosition reports whether p lies on the board of the given radius:
// |row| <= R, |col| <= R, |row+col| <= R.
func IsValidPosition(p HexPosition, radius int) bool {
	return abs(p.Row) <= radius && abs(p.Col) <= radius && abs(p.Row+p.Col) <= radius
}

// AllBoardPositions enumerates every position of the board in row-major
// order. The count is always 3R^2+3R+1.
func AllBoardPositions(radius int) []HexPosition {
	positions := make([]HexPosition, 0, 3*radius*radius+3*radius+1)
	for row := -radius; row <= radius; row++ {
		lo := max(-radius, -radius-row)
		hi := min(radius, radius-row)
		for col := lo; col <= hi; col++ {
			positions = append(positions, HexPosition{Row: row, Col: col})
		}
	}
	return positions
}

// Neighbors returns the valid neighbors of p: 3 at a corner, up to 6 in
// the interior.
func Neighbors(p HexPosition, radius int) []HexPosition {
	result := make([]HexPosition, 0, NumDirections)
	for d := Direction(0); d < NumDirections; d++ {
		n := p.Neighbor(d)
		if IsValidPosition(n, radius) {
			result = append(result, n)
		}
	}
	return result
}

// DirectionBetween returns the direction from a to an adjacent b, and
// false if the two positions are not adjacent.
func DirectionBetween(a, b HexPosition) (Direction, bool) {
	for d := Direction(0); d < NumDirections; d++ {
		if a.Neighbor(d) == b {
			return d, true
		}
	}
	return 0, false
}

// OppositeEdge returns the edge facing edge e across the board.
func OppositeEdge(e int) int {
	return (e + 3) % NumDirections
}

// OnEdge reports whether p lies on edge e of the board. Edge e is the
// side of the hexagon whose outward normal is direction e; corner cells
// belong to two edges.
func OnEdge(p HexPosition, e int, radius int) bool {
	if !IsValidPosition(p, radius) {
		return false
	}
	switch Direction(e) {
	case SW:
		return p.Row == radius
	case W:
		return p.Col == -radius
	case NW:
		return p.Row+p.Col == -radius
	case NE:
		return p.Row == -radius
	case E:
		return p.Col == radius
	case SE:
		return p.Row+p.Col == radius
	default:
		return false
	}
}

// EdgePositions returns the R+1 boundary cells of edge e in row-major
// order, or nil for an out-of-range edge.
func EdgePositions(e int, radius int) []HexPosition {
	if e < 0 || e >= NumDirections {
		return nil
	}
	var positions []HexPosition
	for _, p := range AllBoardPositions(radius) {
		if OnEdge(p, e, radius) {
			positions = append(positions, p)
		}
	}
	return positions
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
