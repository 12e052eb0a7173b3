package player

import (
	"fmt"
	"math/rand"

	"roulette_sim/internal/model"
	"roulette_sim/internal/service/roulette"
)

// Random bets a fixed amount on an outcome drawn uniformly from the whole catalog
type Random struct {
	base
	amount   int
	outcomes []model.Outcome
	rng      roulette.Rand
}

func NewRandom(table *roulette.Table, amount int, rng roulette.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Random{
		base:     newBase(table),
		amount:   amount,
		outcomes: table.Wheel().AllOutcomes(),
		rng:      rng,
	}
}

func (p *Random) Name() string {
	return "random"
}

func (p *Random) Reseed(seed int64) {
	p.rng = rand.New(rand.NewSource(seed))
}

func (p *Random) PlaceBets() error {
	if len(p.outcomes) == 0 {
		return fmt.Errorf("%w: empty catalog", model.ErrOutcomeNotFound)
	}
	outcome := p.outcomes[p.rng.Intn(len(p.outcomes))]
	p.place(model.NewBet(p.amount, outcome))
	return nil
}

func (p *Random) Reset() {}
