package model

import "time"

type SimulationRequest struct {
	Strategy string
	Samples  int
	// Seed makes the run reproducible. Nil means every session is seeded from crypto/rand.
	Seed *int64
}

// SessionResult - stake after every round of one session
type SessionResult struct {
	Stakes   []int
	Maximum  int
	Duration int
}

type Statistics struct {
	Values []int
	Mean   float64
	Stdev  float64
}

type SimulationResult struct {
	ID         string
	Strategy   string
	Samples    int
	Sessions   []SessionResult
	Maxima     Statistics
	Durations  Statistics
	StartedAt  time.Time
	FinishedAt time.Time
}
