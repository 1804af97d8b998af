package experiments

import (
	"fmt"
	"os"

	"quortex/experiments/metrics"

	"gopkg.in/yaml.v3"
)

// Config describes one experiment run: the board setup, the advisor
// configurations under test and which pairs play each other.
type Config struct {
	Name               string                `yaml:"name"`
	Games              int                   `yaml:"games"`
	Radius             int                   `yaml:"radius"`
	Seed               uint64                `yaml:"seed"`
	Supermove          bool                  `yaml:"supermove"`
	SingleSupermove    bool                  `yaml:"single_supermove"`
	SupermoveAnyPlayer bool                  `yaml:"supermove_any_player"`
	Agents             []metrics.AgentConfig `yaml:"agents"`
	Matchups           [][2]int              `yaml:"matchups"` // pairs of agent IDs
}

// DefaultConfig pits a sequential advisor against a parallel one.
func DefaultConfig() Config {
	return Config{
		Name:   "matchups",
		Games:  10,
		Radius: 3,
		Seed:   1,
		Agents: []metrics.AgentConfig{
			{ID: 1, Goroutines: 1},
			{ID: 2, Goroutines: 8},
		},
		Matchups: [][2]int{{1, 1}, {1, 2}, {2, 2}},
	}
}

// LoadConfig reads an experiment config from a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	byID := c.agentsByID()
	for _, mu := range c.Matchups {
		for _, id := range mu {
			if _, ok := byID[id]; !ok {
				return fmt.Errorf("matchup references unknown agent id %d", id)
			}
		}
	}
	return nil
}

func (c Config) agentsByID() map[int]metrics.AgentConfig {
	byID := make(map[int]metrics.AgentConfig, len(c.Agents))
	for _, a := range c.Agents {
		byID[a.ID] = a
	}
	return byID
}
