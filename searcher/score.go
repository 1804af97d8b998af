package searcher

import (
	"math"

	"quortex/game"
	"quortex/utils"
)

// Scoring constants. The ordering matters more than the magnitudes:
// losing at once is strictly worse than every penalty, and sealing an
// opponent in is strictly worse than any positional score.
const (
	// WinScore marks a placement that wins the game outright.
	WinScore = 100000
	// LossScore marks a placement after which an opponent has won.
	LossScore = -200000
	// BlockingPenalty applies when a candidate leaves some opponent with
	// no viable path at all.
	BlockingPenalty = -75000
	// BlockThreatPenalty applies when an opponent is one tile from
	// winning, forcing the move to address the threat.
	BlockThreatPenalty = -50000
	// selfBlockBonus rewards sealing yourself in when supermove is on:
	// a recoverable sacrifice that earns a replacement later.
	selfBlockBonus = 16
	// selfBlockPenalty punishes sealing yourself in when supermove is
	// off, where it is unrecoverable.
	selfBlockPenalty = -100000
)

// PathInfinity is the shortest-path sentinel for "no viable route".
const PathInfinity = math.MaxInt32

// ShortestPathLength returns how many empty cells the player still needs
// to fill to connect their edge to targetEdge. Cells already carrying
// the player's flow cost nothing; cells holding other tiles are
// impassable. PathInfinity means no viable route exists.
func ShortestPathLength(b *game.Board, player game.Player, targetEdge int) (int, error) {
	flows, err := game.CalculateFlows(b, []game.Player{player})
	if err != nil {
		return 0, err
	}
	grid := b.Grid()
	starts, err := grid.EdgeCellIndices(player.Edge)
	if err != nil {
		return 0, err
	}
	targets, err := grid.EdgeCellIndices(targetEdge)
	if err != nil {
		return 0, err
	}

	// Entering cost per cell: 0 on own flow, 1 on an empty cell, blocked
	// otherwise.
	cost := func(i int) (int, bool) {
		if _, occupied := b.TileAt(grid.PositionAt(i)); !occupied {
			return 1, true
		}
		if flows.Carries(player.ID, grid.PositionAt(i)) {
			return 0, true
		}
		return 0, false
	}

	dist := make([]int, grid.Size())
	for i := range dist {
		dist[i] = PathInfinity
	}
	var dq deque
	for _, i := range starts {
		if c, ok := cost(i); ok && c < dist[i] {
			dist[i] = c
			if c == 0 {
				dq.pushFront(i)
			} else {
				dq.pushBack(i)
			}
		}
	}
	// 0-1 BFS: zero-cost hops go to the front of the deque so cells are
	// settled in nondecreasing distance order.
	for !dq.empty() {
		cur := dq.popFront()
		for d := game.Direction(0); d < game.NumDirections; d++ {
			next := grid.NeighborIndex(cur, d)
			if next < 0 {
				continue
			}
			c, ok := cost(next)
			if !ok || dist[cur]+c >= dist[next] {
				continue
			}
			dist[next] = dist[cur] + c
			if c == 0 {
				dq.pushFront(next)
			} else {
				dq.pushBack(next)
			}
		}
	}

	best := PathInfinity
	for _, i := range targets {
		if dist[i] < best {
			best = dist[i]
		}
	}
	return best, nil
}

// unitPathLength is the best (shortest) path length among unit members.
func unitPathLength(b *game.Board, u game.Unit, players []game.Player, teams []game.Team) (int, error) {
	best := PathInfinity
	for _, m := range u.Members {
		target, err := game.TargetEdge(m, players, teams)
		if err != nil {
			return 0, err
		}
		n, err := ShortestPathLength(b, m, target)
		if err != nil {
			return 0, err
		}
		if n < best {
			best = n
		}
	}
	return best, nil
}

// EvaluatePosition scores a board snapshot from the mover's point of
// view, after the mover's candidate has been applied. Wins and losses
// dominate; otherwise the score is -2*own^2 + bestEnemy^2, quadratic so
// that shortening the mover's remaining distance and stretching the
// opponents' both compound, with blocking and block-threat penalties
// folded in.
func EvaluatePosition(b *game.Board, mover game.Player, players []game.Player, teams []game.Team, rules game.Rules) (int, error) {
	victory, err := game.CheckFlowVictory(b, players, teams)
	if err != nil {
		return 0, err
	}
	if utils.FindIndex(victory.Winners, mover.ID) >= 0 {
		return WinScore, nil
	}
	if len(victory.Winners) > 0 {
		return LossScore, nil
	}

	units, err := game.Units(players, teams)
	if err != nil {
		return 0, err
	}
	own := PathInfinity
	enemy := PathInfinity
	for _, u := range units {
		n, err := unitPathLength(b, u, players, teams)
		if err != nil {
			return 0, err
		}
		if u.Contains(mover.ID) {
			own = n
		} else if n < enemy {
			enemy = n
		}
	}

	if own == PathInfinity {
		if rules.Supermove {
			return selfBlockBonus, nil
		}
		return selfBlockPenalty, nil
	}

	score := -2 * own * own
	if enemy == PathInfinity {
		score += BlockingPenalty
	} else {
		score += enemy * enemy
		if enemy == 1 {
			score += BlockThreatPenalty
		}
	}
	return score, nil
}

// deque is a minimal int deque for the 0-1 BFS.
type deque struct {
	items []int
}

func (d *deque) empty() bool {
	return len(d.items) == 0
}

func (d *deque) pushFront(v int) {
	d.items = append(d.items, 0)
	copy(d.items[1:], d.items)
	d.items[0] = v
}

func (d *deque) pushBack(v int) {
	d.items = append(d.items, v)
}

func (d *deque) popFront() int {
	v := d.items[0]
	d.items = d.items[1:]
	return v
}
