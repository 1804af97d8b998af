package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// TileType identifies one of the four tile flow patterns. Each type is a
// perfect matching of the six directions into three connection pairs;
// the types differ in how many of those pairs are sharp (adjacent-side)
// curves.
type TileType int

const (
	NoSharps TileType = iota
	OneSharp
	TwoSharps
	ThreeSharps
)

const NumTileTypes = 4

// CopiesPerType is how many of each tile type a fresh deck holds.
const CopiesPerType = 10

var tileTypeNames = [NumTileTypes]string{"NoSharps", "OneSharp", "TwoSharps", "ThreeSharps"}

func (t TileType) String() string {
	if t < 0 || t >= NumTileTypes {
		return fmt.Sprintf("TileType(%d)", int(t))
	}
	return tileTypeNames[t]
}

// Valid reports whether t is one of the four tile types.
func (t TileType) Valid() bool {
	return t >= 0 && t < NumTileTypes
}

// ConnectionPair joins two tile sides: flow entering at A leaves at B and
// vice versa.
type ConnectionPair struct {
	A Direction
	B Direction
}

// baseConnections holds each type's canonical matching at rotation 0.
// Every matching covers all six directions exactly once.
var baseConnections = [NumTileTypes][3]ConnectionPair{
	NoSharps:    {{SW, NE}, {W, E}, {NW, SE}},
	OneSharp:    {{SW, W}, {NW, E}, {NE, SE}},
	TwoSharps:   {{SW, W}, {NE, E}, {NW, SE}},
	ThreeSharps: {{SW, W}, {NW, NE}, {E, SE}},
}

// FlowConnections returns the three connection pairs of a tile type at
// the given rotation (0-5, 60-degree steps).
func FlowConnections(t TileType, rotation int) [3]ConnectionPair {
	base := baseConnections[t]
	if rotation == 0 {
		return base
	}
	var pairs [3]ConnectionPair
	for i, p := range base {
		pairs[i] = ConnectionPair{A: Rotate(p.A, rotation), B: Rotate(p.B, rotation)}
	}
	return pairs
}

// PlacedTile is a tile fixed on the board. It is immutable once placed;
// a supermove swaps the whole value for a new one.
type PlacedTile struct {
	Type     TileType
	Rotation int
	Position HexPosition
}

// FlowExit returns the side where flow entering at entry leaves the
// tile. The matching covers all six directions, so the second return is
// false only for an out-of-range entry.
func (t PlacedTile) FlowExit(entry Direction) (Direction, bool) {
	if !entry.Valid() || !t.Type.Valid() {
		return 0, false
	}
	for _, p := range FlowConnections(t.Type, t.Rotation) {
		if p.A == entry {
			return p.B, true
		}
		if p.B == entry {
			return p.A, true
		}
	}
	return 0, false
}

// NewTileDeck returns the standard 40-tile deck: ten copies of each type,
// in type order. Shuffle before dealing.
func NewTileDeck() []TileType {
	deck := make([]TileType, 0, NumTileTypes*CopiesPerType)
	for t := TileType(0); t < NumTileTypes; t++ {
		for i := 0; i < CopiesPerType; i++ {
			deck = append(deck, t)
		}
	}
	return deck
}

// ShuffleDeck permutes the deck in place with a Fisher-Yates shuffle
// driven by a deterministic seeded generator. Every peer replaying the
// same seed gets the identical permutation, which the event-sourced
// action log depends on.
func ShuffleDeck(deck []TileType, seed uint64) {
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}
