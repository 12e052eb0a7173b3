package app

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/exp/slog"

	simulationAPI "roulette_sim/internal/api/simulation"
	wheelAPI "roulette_sim/internal/api/wheel"
	"roulette_sim/internal/config"
	"roulette_sim/internal/config/env"
	"roulette_sim/internal/service"
	"roulette_sim/internal/service/catalog"
	"roulette_sim/internal/service/player"
	"roulette_sim/internal/service/simulator"
)

type ServiceProvider struct {
	configPath string

	// Logging
	loggerCfg config.LoggerConfig
	log       *slog.Logger

	// Simulation bits
	simulationCfg  config.SimulationConfig
	registry       *player.Registry
	simulatorServ  service.SimulatorService
	simulationHand *simulationAPI.Handler

	// Wheel catalog bits
	catalogServ service.CatalogService
	wheelHand   *wheelAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(configPath string) *ServiceProvider {
	return &ServiceProvider{configPath: configPath}
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.loggerCfg == nil {
		cfg, err := env.NewLoggerConfig()
		if err != nil {
			panic("failed to get logger config: " + err.Error())
		}
		sp.loggerCfg = cfg
	}
	return sp.loggerCfg
}

func (sp *ServiceProvider) Logger() *slog.Logger {
	if sp.log == nil {
		sp.log = setupLogger(sp.LoggerCfg().Env())
	}
	return sp.log
}

func setupLogger(environment string) *slog.Logger {
	switch environment {
	case env.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case env.EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func (sp *ServiceProvider) SimulationCfg() config.SimulationConfig {
	if sp.simulationCfg == nil {
		cfg, err := env.NewSimulationConfigFromYAML(sp.configPath)
		if err != nil {
			panic("failed to get simulation config: " + err.Error())
		}
		sp.simulationCfg = cfg
	}
	return sp.simulationCfg
}

func (sp *ServiceProvider) StrategyRegistry() *player.Registry {
	if sp.registry == nil {
		sp.registry = player.DefaultRegistry()
	}
	return sp.registry
}

func (sp *ServiceProvider) SimulatorService() service.SimulatorService {
	if sp.simulatorServ == nil {
		sp.simulatorServ = simulator.NewSimulatorService(sp.SimulationCfg(), sp.StrategyRegistry(), sp.Logger())
	}
	return sp.simulatorServ
}

func (sp *ServiceProvider) SimulationHandler() *simulationAPI.Handler {
	if sp.simulationHand == nil {
		sp.simulationHand = simulationAPI.NewHandler(simulationAPI.HandlerDeps{
			Serv: sp.SimulatorService(),
			Log:  sp.Logger(),
		})
	}
	return sp.simulationHand
}

func (sp *ServiceProvider) CatalogService() service.CatalogService {
	if sp.catalogServ == nil {
		serv, err := catalog.NewCatalogService()
		if err != nil {
			panic("failed to build wheel catalog: " + err.Error())
		}
		sp.catalogServ = serv
	}
	return sp.catalogServ
}

func (sp *ServiceProvider) WheelHandler() *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{Serv: sp.CatalogService()})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Simulation endpoints
		simulationHandler := sp.SimulationHandler()
		r.Route("/simulation", func(rr chi.Router) {
			rr.Post("/run", simulationHandler.Run)
			rr.Get("/strategies", simulationHandler.Strategies)
			rr.Get("/{id}", simulationHandler.Get)
		})

		// Wheel endpoints
		wheelHandler := sp.WheelHandler()
		r.Route("/wheel", func(rr chi.Router) {
			rr.Get("/bins/{index}", wheelHandler.Bin)
			rr.Get("/outcomes", wheelHandler.Outcomes)
		})

		sp.router = r
	}

	return sp.router
}
