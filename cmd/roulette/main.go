package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"roulette_sim/internal/app"
	"roulette_sim/internal/converter"
	"roulette_sim/internal/lib/logger/sl"
	"roulette_sim/internal/model"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to the simulation config")
		serve      = flag.Bool("serve", false, "serve the HTTP API instead of running once")
		strategy   = flag.String("strategy", "", "player strategy, defaults to the configured one")
		samples    = flag.Int("samples", 0, "number of sessions, defaults to the configured count")
		seed       = flag.Int64("seed", 0, "master seed for a reproducible run")
		stakes     = flag.Bool("stakes", false, "include per-round stakes of every session")
	)
	flag.Parse()

	a := app.NewApp(*configPath)

	if *serve {
		if err := a.Run(); err != nil {
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := model.SimulationRequest{Strategy: *strategy, Samples: *samples}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			r.Seed = seed
		}
	})

	res, err := a.Simulate(ctx, r)
	if err != nil {
		a.ServiceProvider.Logger().Error("simulation failed", sl.Err(err))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(converter.ToRunResponse(*res, *stakes)); err != nil {
		a.ServiceProvider.Logger().Error("failed to write result", sl.Err(err))
		os.Exit(1)
	}
}
