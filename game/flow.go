package game

import "fmt"

// OffBoardExit records a flow leaving the board: the cell it left from
// and the outward direction. Victory checks only care about these.
type OffBoardExit struct {
	Position  HexPosition
	Direction Direction
}

// FlowTrace is the result of following one flow chain.
type FlowTrace struct {
	// Positions are the cells the flow passed through.
	Positions map[HexPosition]bool
	// Directions records, per cell, which tile sides carry the flow.
	Directions map[HexPosition]map[Direction]bool
	// Exits are the points where the flow ran off the board.
	Exits []OffBoardExit
}

func newFlowTrace() FlowTrace {
	return FlowTrace{
		Positions:  make(map[HexPosition]bool),
		Directions: make(map[HexPosition]map[Direction]bool),
	}
}

func (ft *FlowTrace) mark(p HexPosition, d Direction) {
	m := ft.Directions[p]
	if m == nil {
		m = make(map[Direction]bool)
		ft.Directions[p] = m
	}
	m[d] = true
}

// TraceFlow follows a flow entering the tile at start on side entry,
// hopping tile to tile until it reaches an empty cell or leaves the
// board. A visited-position guard terminates the walk even on malformed
// replayed boards where the chain loops.
func TraceFlow(b *Board, start HexPosition, entry Direction) FlowTrace {
	trace := newFlowTrace()
	pos, dir := start, entry
	for {
		tile, ok := b.TileAt(pos)
		if !ok {
			return trace
		}
		if trace.Positions[pos] {
			return trace
		}
		trace.Positions[pos] = true
		exit, ok := tile.FlowExit(dir)
		if !ok {
			return trace
		}
		trace.mark(pos, dir)
		trace.mark(pos, exit)
		next := pos.Neighbor(exit)
		if !b.grid.Contains(next) {
			trace.Exits = append(trace.Exits, OffBoardExit{Position: pos, Direction: exit})
			return trace
		}
		if !b.IsOccupied(next) {
			return trace
		}
		pos, dir = next, exit.Opposite()
	}
}

// Flows is the merged flow picture for a set of players: which cells each
// player's flow covers, which tile sides carry whose flow, and where each
// player's flow leaves the board.
type Flows struct {
	Positions map[string]map[HexPosition]bool
	Edges     map[HexPosition]map[Direction]string
	Exits     map[string][]OffBoardExit
}

// Carries reports whether the player's flow covers p.
func (f Flows) Carries(playerID string, p HexPosition) bool {
	return f.Positions[playerID][p]
}

// CalculateFlows traces every player's flow from their board edge. Each
// occupied cell on a player's edge is seeded once per direction that
// faces off the board there, and the per-seed traces are unioned. The
// result is a pure function of (board, players).
func CalculateFlows(b *Board, players []Player) (Flows, error) {
	flows := Flows{
		Positions: make(map[string]map[HexPosition]bool, len(players)),
		Edges:     make(map[HexPosition]map[Direction]string),
		Exits:     make(map[string][]OffBoardExit, len(players)),
	}
	for _, p := range players {
		cells, err := b.grid.EdgeCellIndices(p.Edge)
		if err != nil {
			return Flows{}, fmt.Errorf("player %q: %w", p.ID, err)
		}
		positions := make(map[HexPosition]bool)
		flows.Positions[p.ID] = positions
		for _, i := range cells {
			if b.tileAtIndex(i) == nil {
				continue
			}
			pos := b.grid.PositionAt(i)
			for _, d := range b.grid.OutwardDirections(i) {
				trace := TraceFlow(b, pos, d)
				for tp := range trace.Positions {
					positions[tp] = true
				}
				for tp, dirs := range trace.Directions {
					m := flows.Edges[tp]
					if m == nil {
						m = make(map[Direction]string)
						flows.Edges[tp] = m
					}
					for td := range dirs {
						m[td] = p.ID
					}
				}
				flows.Exits[p.ID] = append(flows.Exits[p.ID], trace.Exits...)
			}
		}
	}
	return flows, nil
}
