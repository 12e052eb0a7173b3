package app

import (
	"context"
	"net/http"

	"golang.org/x/exp/slog"

	"roulette_sim/internal/config"
	"roulette_sim/internal/lib/logger/sl"
	"roulette_sim/internal/model"
)

type App struct {
	ServiceProvider *ServiceProvider
	configPath      string
}

// NewApp creates an application reading its simulation settings from configPath
func NewApp(configPath string) *App {
	return &App{configPath: configPath}
}

func (s *App) init() {
	if s.ServiceProvider != nil {
		return
	}
	err := config.Load(".env")
	s.ServiceProvider = newServiceProvider(s.configPath)
	if err != nil {
		s.ServiceProvider.Logger().Debug("no .env file loaded", sl.Err(err))
	}
}

// Run serves the HTTP API
func (s *App) Run() error {
	s.init()

	ctx := context.Background()
	r := s.ServiceProvider.Router(ctx)
	log := s.ServiceProvider.Logger()

	addr := s.ServiceProvider.HTTPCfg().Address()
	log.Info("starting server", slog.String("address", addr))

	err := http.ListenAndServe(addr, r)
	if err != nil {
		log.Error("server stopped", sl.Err(err))
	}
	return err
}

// Simulate runs a single simulation without the HTTP layer
func (s *App) Simulate(ctx context.Context, req model.SimulationRequest) (*model.SimulationResult, error) {
	s.init()
	return s.ServiceProvider.SimulatorService().Gather(ctx, req)
}
