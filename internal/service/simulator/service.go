package simulator

import (
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/exp/slog"

	"roulette_sim/internal/config"
	"roulette_sim/internal/service"
	"roulette_sim/internal/service/player"
)

const (
	resultTTL             = 30 * time.Minute
	resultCleanupInterval = 10 * time.Minute
)

type serv struct {
	cfg      config.SimulationConfig
	registry *player.Registry
	results  *cache.Cache
	log      *slog.Logger
}

// NewSimulatorService creates a simulator that plays strategies from registry
// with the table and session settings of cfg
func NewSimulatorService(
	cfg config.SimulationConfig,
	registry *player.Registry,
	log *slog.Logger,
) service.SimulatorService {
	return &serv{
		cfg:      cfg,
		registry: registry,
		results:  cache.New(resultTTL, resultCleanupInterval),
		log:      log,
	}
}

func (s *serv) Strategies() []string {
	return s.registry.Names()
}
