package engine

import (
	"fmt"
	"time"

	"quortex/game"
	"quortex/searcher"

	"github.com/rs/zerolog/log"
)

// LocalEngine owns the totally-ordered action sequence a session layer
// would normally supply: it deals tiles from a seeded deck, asks each
// seat's advisor for a move, applies it to produce the next snapshot and
// checks victory after every action. Two engines built with the same
// seats and seed play the identical game.
type LocalEngine struct {
	board         *game.Board
	seats         []Seat
	teams         []game.Team
	rules         game.Rules
	radius        int
	seed          uint64
	deck          []game.TileType
	supermoveUsed map[string]bool
}

type Option func(e *LocalEngine)

// WithRadius sets the board radius (default 3).
func WithRadius(radius int) Option {
	return func(e *LocalEngine) {
		if radius > 0 {
			e.radius = radius
		}
	}
}

// WithSeed sets the deck shuffle seed shared by all peers.
func WithSeed(seed uint64) Option {
	return func(e *LocalEngine) {
		e.seed = seed
	}
}

// WithRules sets the feature flags for the game.
func WithRules(rules game.Rules) Option {
	return func(e *LocalEngine) {
		e.rules = rules
	}
}

// WithTeams pairs players for 4-6 player team games.
func WithTeams(teams []game.Team) Option {
	return func(e *LocalEngine) {
		e.teams = teams
	}
}

// NewLocalEngine validates the setup and prepares the shuffled deck.
func NewLocalEngine(seats []Seat, options ...Option) (*LocalEngine, error) {
	if len(seats) < 2 {
		return nil, fmt.Errorf("%w: need at least two seats", game.ErrInvalidInput)
	}
	e := &LocalEngine{
		seats:         seats,
		radius:        3,
		seed:          1,
		supermoveUsed: make(map[string]bool),
	}
	for _, option := range options {
		option(e)
	}
	players := e.players()
	if err := game.ValidatePlayers(players); err != nil {
		return nil, err
	}
	if err := game.ValidateTeams(players, e.teams); err != nil {
		return nil, err
	}
	for _, s := range seats {
		if s.Advisor == nil {
			return nil, fmt.Errorf("%w: seat %q has no advisor", game.ErrInvalidInput, s.Player.ID)
		}
	}
	e.board = game.NewBoard(game.NewGrid(e.radius))
	e.deck = game.NewTileDeck()
	game.ShuffleDeck(e.deck, e.seed)
	return e, nil
}

// Board returns the current snapshot.
func (e *LocalEngine) Board() *game.Board {
	return e.board
}

func (e *LocalEngine) players() []game.Player {
	players := make([]game.Player, len(e.seats))
	for i, s := range e.seats {
		players[i] = s.Player
	}
	return players
}

// effectiveRules disables supermove for a player who already spent
// theirs under the single-supermove rule.
func (e *LocalEngine) effectiveRules(playerID string) game.Rules {
	rules := e.rules
	if rules.Supermove && rules.SingleSupermove && e.supermoveUsed[playerID] {
		rules.Supermove = false
	}
	return rules
}

// Run plays until a flow, tie or constraint victory, or until the deck
// runs out with no winner.
func (e *LocalEngine) Run() (game.Result, []MoveLog, error) {
	players := e.players()
	log.Info().Msgf("starting game: %d players, radius %d, seed %d, %d tiles", len(players), e.radius, e.seed, len(e.deck))

	var moves []MoveLog
	for step := 1; len(e.deck) > 0; step++ {
		seat := e.seats[(step-1)%len(e.seats)]
		tile := e.deck[0]
		rules := e.effectiveRules(seat.Player.ID)

		start := time.Now()
		candidates, err := seat.Advisor.Candidates(e.board, tile, seat.Player, players, e.teams, rules)
		if err != nil {
			return game.Result{}, moves, err
		}
		choice := searcher.Choose(candidates)
		if choice == nil {
			choice, err = e.fallbackMove(tile, seat.Player, players, rules)
			if err != nil {
				return game.Result{}, moves, err
			}
		}
		if choice == nil {
			res, err := game.CheckVictory(e.board, players, e.teams, rules, &game.StuckCheck{Tile: tile, Player: seat.Player})
			if err != nil {
				return game.Result{}, moves, err
			}
			if len(res.Winners) > 0 {
				log.Info().Msgf("player %s cannot place %s anywhere: constraint victory for %v", seat.Player.ID, tile, res.Winners)
				return res, moves, nil
			}
			log.Info().Msgf("player %s has no move but the tile is placeable elsewhere: game drawn", seat.Player.ID)
			return game.Result{}, moves, nil
		}

		if err := e.apply(tile, choice, seat.Player); err != nil {
			return game.Result{}, moves, err
		}
		e.deck = e.deck[1:]
		moves = append(moves, MoveLog{
			Step:          step,
			Player:        seat.Player.ID,
			Tile:          tile,
			Position:      choice.Position,
			Rotation:      choice.Rotation,
			Score:         choice.Score,
			Candidates:    len(candidates),
			IsReplacement: choice.IsReplacement,
			Duration:      time.Since(start),
		})
		log.Info().Msgf("step %d: player %s %s %s at %s rot %d score %d", step, seat.Player.ID, moveVerb(choice), tile, choice.Position.Key(), choice.Rotation, choice.Score)

		res, err := game.CheckVictory(e.board, players, e.teams, e.rules, nil)
		if err != nil {
			return game.Result{}, moves, err
		}
		if len(res.Winners) > 0 {
			log.Info().Msgf("game over after %d moves: %s victory for %v", step, res.WinType, res.Winners)
			return res, moves, nil
		}
	}
	log.Info().Msg("deck exhausted with no winner")
	return game.Result{}, moves, nil
}

// fallbackMove covers the rare position where no frontier candidate is
// legal but the tile still fits somewhere on the board: the player must
// place it rather than lock the game.
func (e *LocalEngine) fallbackMove(tile game.TileType, mover game.Player, players []game.Player, rules game.Rules) (*searcher.Candidate, error) {
	for rotation := 0; rotation < game.NumDirections; rotation++ {
		positions, err := game.FindLegalMoves(e.board, tile, rotation, players, e.teams, rules)
		if err != nil {
			return nil, err
		}
		if len(positions) > 0 {
			return &searcher.Candidate{Position: positions[0], Rotation: rotation}, nil
		}
	}
	return nil, nil
}

func (e *LocalEngine) apply(tile game.TileType, choice *searcher.Candidate, mover game.Player) error {
	if !choice.IsReplacement {
		next, err := e.board.Place(game.PlacedTile{Type: tile, Rotation: choice.Rotation, Position: choice.Position})
		if err != nil {
			return err
		}
		e.board = next
		return nil
	}

	displaced, ok := e.board.TileAt(choice.Position)
	if !ok {
		return fmt.Errorf("replacement target %s is empty", choice.Position.Key())
	}
	next, err := e.board.Replace(game.PlacedTile{Type: tile, Rotation: choice.Rotation, Position: choice.Position})
	if err != nil {
		return err
	}
	if choice.FollowUp != nil {
		// The displaced tile re-enters play immediately.
		next, err = next.Place(game.PlacedTile{Type: displaced.Type, Rotation: choice.FollowUp.Rotation, Position: choice.FollowUp.Position})
		if err != nil {
			return err
		}
	}
	e.board = next
	e.supermoveUsed[mover.ID] = true
	return nil
}

func moveVerb(c *searcher.Candidate) string {
	if c.IsReplacement {
		return "supermoved"
	}
	return "placed"
}
