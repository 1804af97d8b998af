package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quortex/game"
)

func TestCandidates(t *testing.T) {
	alice := game.Player{ID: "alice", Edge: 3}
	bob := game.Player{ID: "bob", Edge: 0}
	players := []game.Player{alice, bob}

	t.Run("empty board tries every edge cell at every rotation", func(t *testing.T) {
		b := game.NewBoard(game.NewGrid(3))
		candidates, err := New().Candidates(b, game.NoSharps, bob, players, nil, game.Rules{})
		require.NoError(t, err)
		// Four cells on each player's edge, six rotations each.
		require.Len(t, candidates, 48)
		for _, c := range candidates {
			require.False(t, c.IsWinningMove)
			require.False(t, c.IsReplacement)
		}
	})

	t.Run("worker pool matches sequential scoring", func(t *testing.T) {
		b := place(t, game.NewBoard(game.NewGrid(3)), column(1, 3)...)
		sequential, err := New().Candidates(b, game.OneSharp, bob, players, nil, game.Rules{})
		require.NoError(t, err)
		parallel, err := New(WithGoroutines(8)).Candidates(b, game.OneSharp, bob, players, nil, game.Rules{})
		require.NoError(t, err)
		require.Equal(t, sequential, parallel)
	})

	t.Run("no candidates when stuck", func(t *testing.T) {
		b := doubleWall(t)
		candidates, err := New().Candidates(b, game.NoSharps, bob, players, nil, game.Rules{})
		require.NoError(t, err)
		require.Empty(t, candidates)
	})

	t.Run("supermove adds replacement candidates", func(t *testing.T) {
		b := doubleWall(t)
		rules := game.Rules{Supermove: true}
		candidates, err := New().Candidates(b, game.NoSharps, bob, players, nil, rules)
		require.NoError(t, err)

		var replacements []Candidate
		for _, c := range candidates {
			if c.IsReplacement {
				replacements = append(replacements, c)
				require.True(t, b.IsOccupied(c.Position))
				require.NotNil(t, c.FollowUp)
				require.False(t, b.IsOccupied(c.FollowUp.Position))
			}
		}
		require.NotEmpty(t, replacements)

		// Swapping the wall tile in front of bob's chain for a straight
		// one is the known unblocking replacement.
		found := false
		for _, c := range replacements {
			if c.Position == (game.HexPosition{Row: 0, Col: 0}) {
				found = true
			}
		}
		require.True(t, found)
	})
}

func TestSelectMove(t *testing.T) {
	alice := game.Player{ID: "alice", Edge: 3}
	bob := game.Player{ID: "bob", Edge: 0}
	players := []game.Player{alice, bob}

	t.Run("always moves on an open board", func(t *testing.T) {
		b := game.NewBoard(game.NewGrid(3))
		c, err := New().SelectMove(b, game.TwoSharps, bob, players, nil, game.Rules{})
		require.NoError(t, err)
		require.NotNil(t, c)
		require.Greater(t, c.Score, LossScore)
		require.Less(t, c.Score, WinScore)
	})

	t.Run("takes the winning move", func(t *testing.T) {
		// Wall across row 0 with a gap at col 0 bridged by a crossing
		// chain; only completing the chain at (3,0) is legal, and it wins.
		tiles := []game.PlacedTile{
			{Type: game.OneSharp, Rotation: 0, Position: game.HexPosition{Row: -3, Col: 0}},
		}
		tiles = append(tiles, column(-2, 2)...)
		for _, col := range []int{-3, -2, -1, 1, 2, 3} {
			tiles = append(tiles, game.PlacedTile{Type: game.ThreeSharps, Rotation: 0, Position: game.HexPosition{Row: 0, Col: col}})
		}
		b := place(t, game.NewBoard(game.NewGrid(3)), tiles...)

		c, err := New().SelectMove(b, game.NoSharps, bob, players, nil, game.Rules{})
		require.NoError(t, err)
		require.NotNil(t, c)
		require.True(t, c.IsWinningMove)
		require.Equal(t, WinScore, c.Score)
		require.Equal(t, game.HexPosition{Row: 3, Col: 0}, c.Position)
	})

	t.Run("nil when no move exists", func(t *testing.T) {
		c, err := New().SelectMove(doubleWall(t), game.NoSharps, bob, players, nil, game.Rules{})
		require.NoError(t, err)
		require.Nil(t, c)
	})
}

func TestSelectEdge(t *testing.T) {
	t.Run("prefers a non-facing edge", func(t *testing.T) {
		e, ok := SelectEdge(0, []int{1, 2, 3, 4, 5})
		require.True(t, ok)
		require.Equal(t, 1, e)
	})

	t.Run("skips the player's own edge", func(t *testing.T) {
		e, ok := SelectEdge(0, []int{0, 2})
		require.True(t, ok)
		require.Equal(t, 2, e)
	})

	t.Run("falls back to the facing edge", func(t *testing.T) {
		e, ok := SelectEdge(0, []int{3})
		require.True(t, ok)
		require.Equal(t, 3, e)
	})

	t.Run("fails with nothing available", func(t *testing.T) {
		_, ok := SelectEdge(0, nil)
		require.False(t, ok)
	})
}
