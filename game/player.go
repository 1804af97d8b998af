package game

import "fmt"

// Player is an immutable seat snapshot. Edge is the board side (0-5) the
// player's flow enters from; an individual player's target is the
// opposite edge, a teamed player's target is the teammate's edge.
type Player struct {
	ID         string
	Color      string
	Edge       int
	IsAI       bool
	ExternalID string
}

// Team pairs two player IDs in 4-6 player games.
type Team struct {
	PlayerA string
	PlayerB string
}

// ValidatePlayers checks that every player has a distinct ID and an edge
// in range.
func ValidatePlayers(players []Player) error {
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		if p.ID == "" {
			return fmt.Errorf("%w: player with empty id", ErrInvalidInput)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate player id %q", ErrInvalidInput, p.ID)
		}
		seen[p.ID] = true
		if p.Edge < 0 || p.Edge >= NumDirections {
			return fmt.Errorf("%w: player %q edge %d out of range", ErrInvalidInput, p.ID, p.Edge)
		}
	}
	return nil
}

// ValidateTeams checks that every team references two distinct known
// players and no player appears on two teams.
func ValidateTeams(players []Player, teams []Team) error {
	ids := make(map[string]bool, len(players))
	for _, p := range players {
		ids[p.ID] = true
	}
	teamed := make(map[string]bool)
	for _, t := range teams {
		for _, id := range []string{t.PlayerA, t.PlayerB} {
			if !ids[id] {
				return fmt.Errorf("%w: team references unknown player %q", ErrInvalidInput, id)
			}
			if teamed[id] {
				return fmt.Errorf("%w: player %q appears on two teams", ErrInvalidInput, id)
			}
			teamed[id] = true
		}
		if t.PlayerA == t.PlayerB {
			return fmt.Errorf("%w: team pairs player %q with itself", ErrInvalidInput, t.PlayerA)
		}
	}
	return nil
}

// TeamOf returns the team containing the player, if any.
func TeamOf(teams []Team, playerID string) (Team, bool) {
	for _, t := range teams {
		if t.PlayerA == playerID || t.PlayerB == playerID {
			return t, true
		}
	}
	return Team{}, false
}

// PlayerByID returns the player with the given ID.
func PlayerByID(players []Player, id string) (Player, bool) {
	for _, p := range players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// TargetEdge returns the edge the player must connect to: the teammate's
// edge when teamed, otherwise the edge opposite their own.
func TargetEdge(p Player, players []Player, teams []Team) (int, error) {
	team, ok := TeamOf(teams, p.ID)
	if !ok {
		return OppositeEdge(p.Edge), nil
	}
	mateID := team.PlayerA
	if mateID == p.ID {
		mateID = team.PlayerB
	}
	mate, ok := PlayerByID(players, mateID)
	if !ok {
		return 0, fmt.Errorf("%w: team references unknown player %q", ErrInvalidInput, mateID)
	}
	return mate.Edge, nil
}

// Unit is a scoring/legality unit: a team, or a single player treated as
// its own side. Viability and victory are judged per unit, satisfied by
// any one member.
type Unit struct {
	Members []Player
}

// Units groups players into teams where teams are defined and singleton
// units otherwise.
func Units(players []Player, teams []Team) ([]Unit, error) {
	if err := ValidateTeams(players, teams); err != nil {
		return nil, err
	}
	var units []Unit
	claimed := make(map[string]bool)
	for _, t := range teams {
		a, _ := PlayerByID(players, t.PlayerA)
		b, _ := PlayerByID(players, t.PlayerB)
		units = append(units, Unit{Members: []Player{a, b}})
		claimed[a.ID] = true
		claimed[b.ID] = true
	}
	for _, p := range players {
		if !claimed[p.ID] {
			units = append(units, Unit{Members: []Player{p}})
		}
	}
	return units, nil
}

// Contains reports whether the unit includes the player.
func (u Unit) Contains(playerID string) bool {
	for _, m := range u.Members {
		if m.ID == playerID {
			return true
		}
	}
	return false
}

// IDs returns the member player IDs in seat order.
func (u Unit) IDs() []string {
	ids := make([]string, len(u.Members))
	for i, m := range u.Members {
		ids[i] = m.ID
	}
	return ids
}
