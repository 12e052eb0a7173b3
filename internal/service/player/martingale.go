package player

import (
	"roulette_sim/internal/model"
	"roulette_sim/internal/service/roulette"
)

// Martingale bets on Black, doubling the wager after every loss and
// returning to the table minimum after a win
type Martingale struct {
	base
	black     model.Outcome
	lossCount int
}

func NewMartingale(table *roulette.Table) (*Martingale, error) {
	black, err := table.Wheel().GetOutcome("black")
	if err != nil {
		return nil, err
	}
	return &Martingale{
		base:  newBase(table),
		black: black,
	}, nil
}

func (p *Martingale) Name() string {
	return "martingale"
}

func (p *Martingale) LossCount() int {
	return p.lossCount
}

// BetMultiple is 2^lossCount
func (p *Martingale) BetMultiple() int {
	return 1 << p.lossCount
}

// Wager is the amount the next bet will carry
func (p *Martingale) Wager() int {
	return p.table.Minimum() * p.BetMultiple()
}

func (p *Martingale) PlaceBets() error {
	p.place(model.NewBet(p.Wager(), p.black))
	return nil
}

// SetRounds also starts a fresh progression
func (p *Martingale) SetRounds(rounds int) {
	p.base.SetRounds(rounds)
	p.lossCount = 0
}

func (p *Martingale) Win(bet model.Bet) error {
	if err := p.base.Win(bet); err != nil {
		return err
	}
	p.lossCount = 0
	return nil
}

func (p *Martingale) Lose(bet model.Bet) {
	p.base.Lose(bet)
	p.lossCount++
}

func (p *Martingale) InvalidBet() {
	p.lossCount = 0
}

func (p *Martingale) Reset() {
	p.lossCount = 0
}
