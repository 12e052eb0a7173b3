package catalog

import (
	"roulette_sim/internal/model"
	"roulette_sim/internal/service"
	"roulette_sim/internal/service/roulette"
)

type serv struct {
	wheel *roulette.Wheel
}

// NewCatalogService builds a wheel once and serves its bins and outcomes
func NewCatalogService() (service.CatalogService, error) {
	wheel, err := roulette.NewWheel(nil)
	if err != nil {
		return nil, err
	}
	return &serv{wheel: wheel}, nil
}

func (s *serv) Bin(index int) (model.Bin, error) {
	return s.wheel.Get(index)
}

func (s *serv) Outcomes() []model.Outcome {
	return s.wheel.AllOutcomes()
}
