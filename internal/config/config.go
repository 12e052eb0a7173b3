package config

import (
	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type SimulationConfig interface {
	TableMinimum() int
	TableLimit() int
	// InitStake is the starting stake as a multiple of the table minimum
	InitStake() int
	InitDuration() int
	Samples() int
	Strategy() string
	Seed() (int64, bool)
}

type HTTPConfig interface {
	Address() string
}

type LoggerConfig interface {
	Env() string
}
