package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.validate())
	require.NotEmpty(t, cfg.Agents)
	require.NotEmpty(t, cfg.Matchups)
}

func TestLoadConfig(t *testing.T) {
	t.Run("overrides defaults from yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		data := `
name: supermove-study
games: 3
seed: 99
supermove: true
single_supermove: true
agents:
  - id: 1
    goroutines: 4
matchups:
  - [1, 1]
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.NoError(t, cfg.validate())
		require.Equal(t, "supermove-study", cfg.Name)
		require.Equal(t, 3, cfg.Games)
		require.Equal(t, uint64(99), cfg.Seed)
		require.True(t, cfg.Supermove)
		require.True(t, cfg.SingleSupermove)
		require.False(t, cfg.SupermoveAnyPlayer)
		require.Len(t, cfg.Agents, 1)
		require.Equal(t, 4, cfg.Agents[0].Goroutines)
		require.Equal(t, [][2]int{{1, 1}}, cfg.Matchups)
		// Unset fields keep their defaults.
		require.Equal(t, 3, cfg.Radius)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("games: [not a number"), 0o644))
		_, err := LoadConfig(path)
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("rejects non-positive game count", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Games = 0
		require.Error(t, cfg.validate())
	})

	t.Run("rejects unknown agent id in a matchup", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Matchups = append(cfg.Matchups, [2]int{1, 9})
		require.Error(t, cfg.validate())
	})
}
