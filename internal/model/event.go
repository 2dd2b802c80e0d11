package model

import "time"

// GenerationEvent records that a password was generated. The password
// itself is never part of the event.
type GenerationEvent struct {
	ID        string
	Length    int
	PoolSize  int
	Classes   string
	Entropy   int
	Strength  string
	Source    string
	CreatedAt time.Time
}

// Event sources.
const (
	SourceAPI = "api"
	SourceCLI = "cli"
)

// StrengthCount is the number of generations that received a label.
type StrengthCount struct {
	Strength string `json:"strength"`
	Count    int64  `json:"count"`
}

// StatsResponse summarizes recorded generations.
type StatsResponse struct {
	Total          int64           `json:"total"`
	AverageEntropy float64         `json:"average_entropy"`
	ByStrength     []StrengthCount `json:"by_strength"`
	Recent         []EventResponse `json:"recent"`
}

// EventResponse is a generation event safe for API responses.
type EventResponse struct {
	ID        string    `json:"id"`
	Length    int       `json:"length"`
	PoolSize  int       `json:"pool_size"`
	Classes   string    `json:"classes"`
	Entropy   int       `json:"entropy"`
	Strength  string    `json:"strength"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}
