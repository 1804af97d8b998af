package searcher

import (
	"sync"

	"quortex/game"
	"quortex/utils"
)

// Candidate is one scored option for the acting player: a placement of
// the drawn tile, or with supermove a replacement of a placed tile. A
// replacement carries the follow-up placement the displaced tile must
// immediately re-enter play with, unless the replacement itself wins.
type Candidate struct {
	Position      game.HexPosition
	Rotation      int
	Score         int
	IsReplacement bool
	IsWinningMove bool
	FollowUp      *Candidate
}

// Option configures an Advisor.
type Option func(a *Advisor)

// WithGoroutines sets the size of the candidate-scoring worker pool.
// Scoring works on immutable snapshots, so workers share nothing.
func WithGoroutines(goroutines int) Option {
	return func(a *Advisor) {
		if goroutines > 0 {
			a.goroutines = goroutines
		}
	}
}

// Advisor generates and scores candidate moves for one turn.
type Advisor struct {
	goroutines int
}

// New returns an advisor; by default scoring is sequential.
func New(options ...Option) *Advisor {
	a := &Advisor{goroutines: 1}
	for _, option := range options {
		option(a)
	}
	return a
}

type placementJob struct {
	rotation int
	position game.HexPosition
}

// Candidates enumerates every legal option for mover holding tileType.
// Placements are restricted to the frontier: empty cells adjacent to an
// existing flow or lying on any player's edge, which prunes the interior
// of a sparse board without losing any move that could matter. With
// supermove enabled every occupied cell is also tried as a replacement
// target. Candidate order is deterministic for a given snapshot.
func (a *Advisor) Candidates(b *game.Board, tileType game.TileType, mover game.Player, players []game.Player, teams []game.Team, rules game.Rules) ([]Candidate, error) {
	if err := game.ValidatePlayers(players); err != nil {
		return nil, err
	}
	if err := game.ValidateTeams(players, teams); err != nil {
		return nil, err
	}

	frontier, err := a.frontier(b, players)
	if err != nil {
		return nil, err
	}

	jobs := make([]placementJob, 0, game.NumDirections*len(frontier))
	for rotation := 0; rotation < game.NumDirections; rotation++ {
		for _, pos := range frontier {
			jobs = append(jobs, placementJob{rotation: rotation, position: pos})
		}
	}

	results := make([]*Candidate, len(jobs))
	errs := make([]error, len(jobs))
	var wg sync.WaitGroup
	next := make(chan int, len(jobs))
	for i := range jobs {
		next <- i
	}
	close(next)

	worker := func() {
		defer wg.Done()
		for i := range next {
			job := jobs[i]
			tile := game.PlacedTile{Type: tileType, Rotation: job.rotation, Position: job.position}
			results[i], errs[i] = a.scorePlacement(b, tile, mover, players, teams, rules)
		}
	}
	for i := 0; i < a.goroutines; i++ {
		wg.Add(1)
		go worker()
	}
	wg.Wait()

	var candidates []Candidate
	for i, c := range results {
		if errs[i] != nil {
			return nil, errs[i]
		}
		if c != nil {
			candidates = append(candidates, *c)
		}
	}

	if rules.Supermove {
		replacements, err := a.replacementCandidates(b, tileType, mover, players, teams, rules)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, replacements...)
	}
	return candidates, nil
}

// frontier returns the empty cells worth trying: on any player's edge or
// adjacent to a cell carrying flow.
func (a *Advisor) frontier(b *game.Board, players []game.Player) ([]game.HexPosition, error) {
	flows, err := game.CalculateFlows(b, players)
	if err != nil {
		return nil, err
	}
	grid := b.Grid()
	covered := make(map[game.HexPosition]bool)
	for _, positions := range flows.Positions {
		for p := range positions {
			covered[p] = true
		}
	}
	onPlayerEdge := func(p game.HexPosition) bool {
		for _, pl := range players {
			if game.OnEdge(p, pl.Edge, grid.Radius()) {
				return true
			}
		}
		return false
	}
	nearFlow := func(p game.HexPosition) bool {
		for d := game.Direction(0); d < game.NumDirections; d++ {
			if covered[p.Neighbor(d)] {
				return true
			}
		}
		return false
	}
	var frontier []game.HexPosition
	for _, p := range b.EmptyPositions() {
		if onPlayerEdge(p) || nearFlow(p) {
			frontier = append(frontier, p)
		}
	}
	return frontier, nil
}

// scorePlacement returns the scored candidate for one placement, or nil
// when the placement is illegal.
func (a *Advisor) scorePlacement(b *game.Board, tile game.PlacedTile, mover game.Player, players []game.Player, teams []game.Team, rules game.Rules) (*Candidate, error) {
	legal, err := game.IsLegalMove(b, tile, players, teams, rules)
	if err != nil {
		return nil, err
	}
	if !legal {
		return nil, nil
	}
	sim, err := b.Place(tile)
	if err != nil {
		return nil, err
	}
	score, err := EvaluatePosition(sim, mover, players, teams, rules)
	if err != nil {
		return nil, err
	}
	return &Candidate{
		Position:      tile.Position,
		Rotation:      tile.Rotation,
		Score:         score,
		IsWinningMove: score == WinScore,
	}, nil
}

// replacementCandidates tries every occupied cell as a supermove target.
// A replacement that wins on the spot scores by its own resulting board;
// otherwise the displaced tile must re-enter play at once, so it scores
// by the best legal follow-up placement - no follow-up, no candidate.
func (a *Advisor) replacementCandidates(b *game.Board, tileType game.TileType, mover game.Player, players []game.Player, teams []game.Team, rules game.Rules) ([]Candidate, error) {
	var candidates []Candidate
	for _, displaced := range b.Tiles() {
		for rotation := 0; rotation < game.NumDirections; rotation++ {
			tile := game.PlacedTile{Type: tileType, Rotation: rotation, Position: displaced.Position}
			valid, err := game.IsValidReplacementMove(b, tile, mover, players, teams, rules)
			if err != nil {
				return nil, err
			}
			if !valid {
				continue
			}
			sim, err := b.Replace(tile)
			if err != nil {
				return nil, err
			}
			score, err := EvaluatePosition(sim, mover, players, teams, rules)
			if err != nil {
				return nil, err
			}
			if score == WinScore {
				candidates = append(candidates, Candidate{
					Position:      tile.Position,
					Rotation:      rotation,
					Score:         score,
					IsReplacement: true,
					IsWinningMove: true,
				})
				continue
			}
			followUp, err := a.bestFollowUp(sim, displaced.Type, mover, players, teams, rules)
			if err != nil {
				return nil, err
			}
			if followUp == nil {
				continue
			}
			candidates = append(candidates, Candidate{
				Position:      tile.Position,
				Rotation:      rotation,
				Score:         followUp.Score,
				IsReplacement: true,
				IsWinningMove: followUp.IsWinningMove,
				FollowUp:      followUp,
			})
		}
	}
	return candidates, nil
}

// bestFollowUp finds the best legal placement of the displaced tile on
// the board left by a replacement.
func (a *Advisor) bestFollowUp(b *game.Board, displaced game.TileType, mover game.Player, players []game.Player, teams []game.Team, rules game.Rules) (*Candidate, error) {
	var best *Candidate
	for rotation := 0; rotation < game.NumDirections; rotation++ {
		for _, pos := range b.EmptyPositions() {
			tile := game.PlacedTile{Type: displaced, Rotation: rotation, Position: pos}
			c, err := a.scorePlacement(b, tile, mover, players, teams, rules)
			if err != nil {
				return nil, err
			}
			if c != nil && (best == nil || c.Score > best.Score) {
				best = c
			}
		}
	}
	return best, nil
}

// Choose picks from scored candidates: the first winning one, else the
// highest score with a stable first-wins tie-break so replays stay
// deterministic. Nil means the player cannot move.
func Choose(candidates []Candidate) *Candidate {
	if len(candidates) == 0 {
		return nil
	}
	for _, c := range candidates {
		if c.IsWinningMove {
			return &c
		}
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return &best
}

// SelectMove generates candidates and picks the move to play.
func (a *Advisor) SelectMove(b *game.Board, tileType game.TileType, mover game.Player, players []game.Player, teams []game.Team, rules game.Rules) (*Candidate, error) {
	candidates, err := a.Candidates(b, tileType, mover, players, teams, rules)
	if err != nil {
		return nil, err
	}
	return Choose(candidates), nil
}

// SelectEdge picks a starting edge: the first available edge that is not
// opposite the player's own, falling back to the opposite edge only when
// nothing else is left.
func SelectEdge(playerEdge int, available []int) (int, bool) {
	opposite := game.OppositeEdge(playerEdge)
	for _, e := range available {
		if e != opposite && e != playerEdge {
			return e, true
		}
	}
	if utils.FindIndex(available, opposite) >= 0 {
		return opposite, true
	}
	return 0, false
}
