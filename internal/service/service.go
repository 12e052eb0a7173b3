package service

import (
	"context"

	"roulette_sim/internal/model"
)

type SimulatorService interface {
	// Gather runs the requested number of sessions and aggregates their statistics
	Gather(ctx context.Context, req model.SimulationRequest) (*model.SimulationResult, error)
	// Result returns a recently finished simulation by id
	Result(id string) (*model.SimulationResult, bool)
	Strategies() []string
}

type CatalogService interface {
	Bin(index int) (model.Bin, error)
	Outcomes() []model.Outcome
}
