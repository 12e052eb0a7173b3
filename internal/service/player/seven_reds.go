package player

import (
	"roulette_sim/internal/model"
	"roulette_sim/internal/service/roulette"
)

const redsBeforeBet = 7

// SevenReds is a Martingale player that waits for seven reds in a row before betting on Black
type SevenReds struct {
	*Martingale
	redCount int
}

func NewSevenReds(table *roulette.Table) (*SevenReds, error) {
	m, err := NewMartingale(table)
	if err != nil {
		return nil, err
	}
	return &SevenReds{
		Martingale: m,
		redCount:   redsBeforeBet,
	}, nil
}

func (p *SevenReds) Name() string {
	return "seven_reds"
}

func (p *SevenReds) RedCount() int {
	return p.redCount
}

func (p *SevenReds) PlaceBets() error {
	if p.redCount != 0 {
		return nil
	}
	if err := p.Martingale.PlaceBets(); err != nil {
		return err
	}
	p.redCount = redsBeforeBet
	return nil
}

// Winners counts down on Red and starts over on Black. Zero bins change nothing.
func (p *SevenReds) Winners(bin model.Bin) {
	if bin.Has("Red") {
		p.redCount--
	}
	if bin.Has("Black") {
		p.redCount = redsBeforeBet
	}
}

func (p *SevenReds) Reset() {
	p.Martingale.Reset()
	p.redCount = redsBeforeBet
}
