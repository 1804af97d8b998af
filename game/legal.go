package game

import "fmt"

// PathResult is the outcome of a viability search. Path is the cell
// sequence from a start-edge cell to a target-edge cell when one exists;
// the AI uses it, plain legality checks only look at Found.
type PathResult struct {
	Found bool
	Path  []HexPosition
}

// ViablePath searches for a route from the player's edge to targetEdge.
// A cell is traversable when it already carries the player's flow, when
// it is empty and allowEmpty is set, or when it holds any tile and
// allowSupermove is set (optimistically replaceable later).
func ViablePath(b *Board, player Player, targetEdge int, allowEmpty, allowSupermove bool) (PathResult, error) {
	flows, err := CalculateFlows(b, []Player{player})
	if err != nil {
		return PathResult{}, err
	}
	starts, err := b.grid.EdgeCellIndices(player.Edge)
	if err != nil {
		return PathResult{}, fmt.Errorf("player %q: %w", player.ID, err)
	}
	if targetEdge < 0 || targetEdge >= NumDirections {
		return PathResult{}, fmt.Errorf("%w: target edge %d out of range", ErrInvalidInput, targetEdge)
	}

	traversable := func(i int) bool {
		tile := b.tileAtIndex(i)
		switch {
		case tile == nil:
			return allowEmpty
		case flows.Carries(player.ID, b.grid.PositionAt(i)):
			return true
		default:
			return allowSupermove
		}
	}

	parent := make([]int, b.grid.Size())
	visited := make([]bool, b.grid.Size())
	var queue []int
	for _, i := range starts {
		if traversable(i) {
			visited[i] = true
			parent[i] = -1
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if b.grid.OnEdge(cur, targetEdge) {
			return PathResult{Found: true, Path: b.reconstructPath(parent, cur)}, nil
		}
		for d := Direction(0); d < NumDirections; d++ {
			next := b.grid.NeighborIndex(cur, d)
			if next < 0 || visited[next] || !traversable(next) {
				continue
			}
			visited[next] = true
			parent[next] = cur
			queue = append(queue, next)
		}
	}
	return PathResult{}, nil
}

func (b *Board) reconstructPath(parent []int, end int) []HexPosition {
	var rev []HexPosition
	for i := end; i >= 0; i = parent[i] {
		rev = append(rev, b.grid.PositionAt(i))
	}
	path := make([]HexPosition, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}

// HasViablePath reports whether ViablePath finds a route.
func HasViablePath(b *Board, player Player, targetEdge int, allowEmpty, allowSupermove bool) (bool, error) {
	res, err := ViablePath(b, player, targetEdge, allowEmpty, allowSupermove)
	return res.Found, err
}

// IsPlayerBlocked reports whether the player has no viable path even
// through empty cells. Supermove optimism is deliberately excluded here:
// blocked is the state that entitles a player to a supermove.
func IsPlayerBlocked(b *Board, player Player, players []Player, teams []Team) (bool, error) {
	target, err := TargetEdge(player, players, teams)
	if err != nil {
		return false, err
	}
	ok, err := HasViablePath(b, player, target, true, false)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// unitViable reports whether any member of the unit keeps a viable path
// on the board.
func unitViable(b *Board, u Unit, players []Player, teams []Team, allowSupermove bool) (bool, error) {
	for _, m := range u.Members {
		target, err := TargetEdge(m, players, teams)
		if err != nil {
			return false, err
		}
		ok, err := HasViablePath(b, m, target, true, allowSupermove)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// IsLegalMove decides whether placing the candidate tile is allowed. A
// move onto an occupied cell is not. A move that immediately wins the
// game for anyone is always legal: the no-blocking rule can never veto a
// winning placement. Any other move must leave every player, or every
// team via either member, a viable path to their target edge.
func IsLegalMove(b *Board, candidate PlacedTile, players []Player, teams []Team, rules Rules) (bool, error) {
	if err := ValidatePlayers(players); err != nil {
		return false, err
	}
	units, err := Units(players, teams)
	if err != nil {
		return false, err
	}
	if !b.grid.Contains(candidate.Position) {
		return false, fmt.Errorf("%w: position %s outside radius-%d board", ErrInvalidInput, candidate.Position.Key(), b.grid.Radius())
	}
	if b.IsOccupied(candidate.Position) {
		return false, nil
	}
	sim, err := b.Place(candidate)
	if err != nil {
		return false, err
	}
	victory, err := CheckFlowVictory(sim, players, teams)
	if err != nil {
		return false, err
	}
	if len(victory.Winners) > 0 {
		return true, nil
	}
	for _, u := range units {
		ok, err := unitViable(sim, u, players, teams, rules.Supermove)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// WouldReplacementUnblock reports whether swapping the tile at newTile's
// position for newTile turns the player from blocked into unblocked. A
// player who was never blocked gains nothing, so the answer is false.
func WouldReplacementUnblock(b *Board, newTile PlacedTile, player Player, players []Player, teams []Team) (bool, error) {
	blocked, err := IsPlayerBlocked(b, player, players, teams)
	if err != nil {
		return false, err
	}
	if !blocked {
		return false, nil
	}
	sim, err := b.Replace(newTile)
	if err != nil {
		return false, err
	}
	stillBlocked, err := IsPlayerBlocked(sim, player, players, teams)
	if err != nil {
		return false, err
	}
	return !stillBlocked, nil
}

// IsValidReplacementMove decides whether the acting player may supermove
// the tile at newTile's position out for newTile. The target must be
// occupied, and the swap must unblock the actor - or, when any-player
// supermoves are enabled, unblock somebody who is blocked. A replacement
// that helps no one is illegal.
func IsValidReplacementMove(b *Board, newTile PlacedTile, actor Player, players []Player, teams []Team, rules Rules) (bool, error) {
	if err := ValidatePlayers(players); err != nil {
		return false, err
	}
	if err := ValidateTeams(players, teams); err != nil {
		return false, err
	}
	if !b.grid.Contains(newTile.Position) {
		return false, fmt.Errorf("%w: position %s outside radius-%d board", ErrInvalidInput, newTile.Position.Key(), b.grid.Radius())
	}
	if !b.IsOccupied(newTile.Position) {
		return false, nil
	}
	ok, err := WouldReplacementUnblock(b, newTile, actor, players, teams)
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}
	if !rules.SupermoveAnyPlayer {
		return false, nil
	}
	for _, p := range players {
		if p.ID == actor.ID {
			continue
		}
		ok, err := WouldReplacementUnblock(b, newTile, p, players, teams)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// FindLegalMoves returns every empty position where the tile may legally
// be placed at the given rotation.
func FindLegalMoves(b *Board, tileType TileType, rotation int, players []Player, teams []Team, rules Rules) ([]HexPosition, error) {
	var legal []HexPosition
	for _, pos := range b.EmptyPositions() {
		ok, err := IsLegalMove(b, PlacedTile{Type: tileType, Rotation: rotation, Position: pos}, players, teams, rules)
		if err != nil {
			return nil, err
		}
		if ok {
			legal = append(legal, pos)
		}
	}
	return legal, nil
}

// CanTileBePlacedAnywhere reports whether any rotation of the tile has a
// legal placement. When it returns false the holder is stuck, which is
// the constraint-victory condition.
func CanTileBePlacedAnywhere(b *Board, tileType TileType, players []Player, teams []Team, rules Rules) (bool, error) {
	for _, pos := range b.EmptyPositions() {
		for rotation := 0; rotation < NumDirections; rotation++ {
			ok, err := IsLegalMove(b, PlacedTile{Type: tileType, Rotation: rotation, Position: pos}, players, teams, rules)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
	}
	return false, nil
}
