package simulation

import "time"

type RunRequest struct {
	Strategy string `json:"strategy"`                          // Strategy name, config default when empty
	Samples  int    `json:"samples" validate:"gte=0,lte=10000"` // Sessions to play, config default when 0
	Seed     *int64 `json:"seed,omitempty"`                    // Fixed seed for a reproducible run
}

type Statistics struct {
	Values []int   `json:"values"`
	Mean   float64 `json:"mean"`
	Stdev  float64 `json:"stdev"`
}

type Session struct {
	Maximum  int   `json:"maximum"`
	Duration int   `json:"duration"`
	Stakes   []int `json:"stakes,omitempty"`
}

type RunResponse struct {
	ID         string     `json:"id"`
	Strategy   string     `json:"strategy"`
	Samples    int        `json:"samples"`
	Maxima     Statistics `json:"maxima"`
	Durations  Statistics `json:"durations"`
	Sessions   []Session  `json:"sessions,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt time.Time  `json:"finished_at"`
}

type StrategiesResponse struct {
	Strategies []string `json:"strategies"`
}

type Outcome struct {
	Name string `json:"name"`
	Odds int    `json:"odds"`
}

type BinResponse struct {
	Index    int       `json:"index"`
	Label    string    `json:"label"` // "00" for bin 37
	Outcomes []Outcome `json:"outcomes"`
}

type OutcomesResponse struct {
	Count    int       `json:"count"`
	Outcomes []Outcome `json:"outcomes"`
}
