package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"roulette_sim/internal/config"
)

type simulationFile struct {
	Table struct {
		Minimum int `yaml:"minimum" validate:"gt=0"`
		Limit   int `yaml:"limit" validate:"gtefield=Minimum"`
	} `yaml:"table"`
	Player struct {
		InitStake    int `yaml:"init_stake" validate:"gt=0"`
		InitDuration int `yaml:"init_duration" validate:"gt=0"`
	} `yaml:"player"`
	Simulation struct {
		Samples  int    `yaml:"samples" validate:"gt=0"`
		Strategy string `yaml:"strategy" validate:"required"`
		Seed     *int64 `yaml:"seed"`
	} `yaml:"simulation"`
}

type simulationConfig struct {
	file simulationFile
}

func defaultSimulationFile() simulationFile {
	var f simulationFile
	f.Table.Minimum = 10
	f.Table.Limit = 100
	f.Player.InitStake = 100
	f.Player.InitDuration = 250
	f.Simulation.Samples = 50
	f.Simulation.Strategy = "fibonacci"
	return f
}

// NewDefaultSimulationConfig returns the documented defaults
func NewDefaultSimulationConfig() config.SimulationConfig {
	return &simulationConfig{file: defaultSimulationFile()}
}

// NewSimulationConfigFromYAML reads the simulation settings from path on top of the
// defaults. A missing file leaves the defaults in place.
func NewSimulationConfigFromYAML(path string) (config.SimulationConfig, error) {
	f := defaultSimulationFile()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read simulation config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse simulation config: %w", err)
		}
	}

	if err := validator.New().Struct(f); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	return &simulationConfig{file: f}, nil
}

func (c *simulationConfig) TableMinimum() int {
	return c.file.Table.Minimum
}

func (c *simulationConfig) TableLimit() int {
	return c.file.Table.Limit
}

func (c *simulationConfig) InitStake() int {
	return c.file.Player.InitStake
}

func (c *simulationConfig) InitDuration() int {
	return c.file.Player.InitDuration
}

func (c *simulationConfig) Samples() int {
	return c.file.Simulation.Samples
}

func (c *simulationConfig) Strategy() string {
	return c.file.Simulation.Strategy
}

func (c *simulationConfig) Seed() (int64, bool) {
	if c.file.Simulation.Seed == nil {
		return 0, false
	}
	return *c.file.Simulation.Seed, true
}
