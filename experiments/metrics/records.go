package metrics

import "time"

// AgentConfig describes one advisor configuration under test.
type AgentConfig struct {
	ID         int `yaml:"id"`
	Goroutines int `yaml:"goroutines"`
}

// GameRecord is one finished game of a matchup.
type GameRecord struct {
	ID        int
	Agent1    int // AgentConfig.ID
	Agent2    int // AgentConfig.ID
	Seed      uint64
	Winners   string
	WinType   string
	Moves     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// MoveRecord is one applied move within a recorded game.
type MoveRecord struct {
	Game          int // GameRecord.ID
	Step          int
	Player        string
	Tile          string
	Position      string
	Rotation      int
	Score         int
	Candidates    int
	IsReplacement bool
	Duration      time.Duration
}
