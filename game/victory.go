package game

import "fmt"

// WinType classifies how a game ended.
type WinType string

const (
	WinNone       WinType = ""
	WinFlow       WinType = "flow"
	WinTie        WinType = "tie"
	WinConstraint WinType = "constraint"
)

// Result names the winning players and how they won. An empty Winners
// slice means the game goes on.
type Result struct {
	Winners []string
	WinType WinType
}

// exitsOnEdge reports whether any of the flow's off-board exits leaves
// from a cell of the given edge. Merely reaching an edge cell without
// exiting the board there does not count.
func exitsOnEdge(exits []OffBoardExit, edge int, grid *Grid) bool {
	for _, e := range exits {
		if OnEdge(e.Position, edge, grid.Radius()) {
			return true
		}
	}
	return false
}

// CheckPlayerFlowVictory reports whether the player's flow crosses the
// board: entering at their own edge and exiting off the board from a
// cell of the opposite edge.
func CheckPlayerFlowVictory(b *Board, player Player) (bool, error) {
	flows, err := CalculateFlows(b, []Player{player})
	if err != nil {
		return false, err
	}
	return exitsOnEdge(flows.Exits[player.ID], OppositeEdge(player.Edge), b.grid), nil
}

// CheckTeamFlowVictory reports whether either teammate's flow exits
// through the other's edge.
func CheckTeamFlowVictory(b *Board, team Team, players []Player) (bool, error) {
	a, ok := PlayerByID(players, team.PlayerA)
	if !ok {
		return false, fmt.Errorf("%w: team references unknown player %q", ErrInvalidInput, team.PlayerA)
	}
	bb, ok := PlayerByID(players, team.PlayerB)
	if !ok {
		return false, fmt.Errorf("%w: team references unknown player %q", ErrInvalidInput, team.PlayerB)
	}
	flows, err := CalculateFlows(b, []Player{a, bb})
	if err != nil {
		return false, err
	}
	if exitsOnEdge(flows.Exits[a.ID], bb.Edge, b.grid) {
		return true, nil
	}
	return exitsOnEdge(flows.Exits[bb.ID], a.Edge, b.grid), nil
}

// CheckFlowVictory evaluates flow victory for every player or team. One
// completed unit wins outright; two or more independent units completing
// on the same placement is a tie, crediting every completing member.
func CheckFlowVictory(b *Board, players []Player, teams []Team) (Result, error) {
	if err := ValidatePlayers(players); err != nil {
		return Result{}, err
	}
	units, err := Units(players, teams)
	if err != nil {
		return Result{}, err
	}
	var winners []string
	winningUnits := 0
	for _, u := range units {
		won := false
		if len(u.Members) == 2 {
			won, err = CheckTeamFlowVictory(b, Team{PlayerA: u.Members[0].ID, PlayerB: u.Members[1].ID}, players)
		} else {
			won, err = CheckPlayerFlowVictory(b, u.Members[0])
		}
		if err != nil {
			return Result{}, err
		}
		if won {
			winners = append(winners, u.IDs()...)
			winningUnits++
		}
	}
	switch {
	case winningUnits == 0:
		return Result{}, nil
	case winningUnits == 1:
		return Result{Winners: winners, WinType: WinFlow}, nil
	default:
		return Result{Winners: winners, WinType: WinTie}, nil
	}
}

// CheckConstraintVictory reports whether the active player wins by
// holding a tile that cannot legally be placed anywhere. The win credits
// the whole unit in team games.
func CheckConstraintVictory(b *Board, handTile TileType, active Player, players []Player, teams []Team, rules Rules) (Result, error) {
	placeable, err := CanTileBePlacedAnywhere(b, handTile, players, teams, rules)
	if err != nil {
		return Result{}, err
	}
	if placeable {
		return Result{}, nil
	}
	winners := []string{active.ID}
	if team, ok := TeamOf(teams, active.ID); ok {
		mate := team.PlayerA
		if mate == active.ID {
			mate = team.PlayerB
		}
		winners = append(winners, mate)
	}
	return Result{Winners: winners, WinType: WinConstraint}, nil
}

// StuckCheck asks CheckVictory to also test constraint victory for the
// player holding the given tile. It is only passed when the caller has
// established that the player cannot move.
type StuckCheck struct {
	Tile   TileType
	Player Player
}

// CheckVictory is the single entry point the session layer calls after
// reconstructing a snapshot: flow victory first, since any placement can
// complete a path, then constraint victory when a stuck position is
// being checked explicitly.
func CheckVictory(b *Board, players []Player, teams []Team, rules Rules, stuck *StuckCheck) (Result, error) {
	res, err := CheckFlowVictory(b, players, teams)
	if err != nil {
		return Result{}, err
	}
	if len(res.Winners) > 0 {
		return res, nil
	}
	if stuck != nil {
		return CheckConstraintVictory(b, stuck.Tile, stuck.Player, players, teams, rules)
	}
	return Result{}, nil
}
