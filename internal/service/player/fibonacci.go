package player

import (
	"roulette_sim/internal/model"
	"roulette_sim/internal/service/roulette"
)

const fibonacciUnit = 10

// Fibonacci bets on Red, stepping the wager along the Fibonacci sequence after each loss
type Fibonacci struct {
	base
	red      model.Outcome
	recent   int
	previous int
}

func NewFibonacci(table *roulette.Table) (*Fibonacci, error) {
	red, err := table.Wheel().GetOutcome("Red")
	if err != nil {
		return nil, err
	}
	p := &Fibonacci{
		base: newBase(table),
		red:  red,
	}
	p.Reset()
	return p, nil
}

func (p *Fibonacci) Name() string {
	return "fibonacci"
}

func (p *Fibonacci) Recent() int {
	return p.recent
}

func (p *Fibonacci) Previous() int {
	return p.previous
}

func (p *Fibonacci) PlaceBets() error {
	p.place(model.NewBet((p.recent+p.previous)*fibonacciUnit, p.red))
	return nil
}

func (p *Fibonacci) Win(bet model.Bet) error {
	if err := p.base.Win(bet); err != nil {
		return err
	}
	p.Reset()
	return nil
}

// Lose advances the sequence unless the next wager would exceed the table limit
func (p *Fibonacci) Lose(bet model.Bet) {
	p.base.Lose(bet)

	next := p.recent + p.previous
	if next*fibonacciUnit > p.table.Limit() {
		p.Reset()
		return
	}
	p.previous, p.recent = p.recent, next
}

func (p *Fibonacci) InvalidBet() {
	p.Reset()
}

func (p *Fibonacci) Reset() {
	p.recent, p.previous = 1, 0
}
