package player

import (
	"roulette_sim/internal/model"
	"roulette_sim/internal/service/roulette"
)

// Cancellation bets the sum of the first and last numbers of its sequence on Red.
// A win cancels both ends, a loss appends the lost amount. The session ends once
// the sequence is used up.
type Cancellation struct {
	base
	red      model.Outcome
	sequence []int
}

func NewCancellation(table *roulette.Table) (*Cancellation, error) {
	red, err := table.Wheel().GetOutcome("Red")
	if err != nil {
		return nil, err
	}
	p := &Cancellation{
		base: newBase(table),
		red:  red,
	}
	p.ResetSequence()
	return p, nil
}

func (p *Cancellation) Name() string {
	return "cancellation"
}

func (p *Cancellation) Sequence() []int {
	return append([]int(nil), p.sequence...)
}

func (p *Cancellation) ResetSequence() {
	p.sequence = []int{1, 2, 3, 4, 5, 6}
}

func (p *Cancellation) PlaceBets() error {
	if len(p.sequence) == 0 {
		p.SetRounds(0)
		return nil
	}
	p.place(model.NewBet(p.sequence[0]+p.sequence[len(p.sequence)-1], p.red))
	return nil
}

func (p *Cancellation) Win(bet model.Bet) error {
	if err := p.base.Win(bet); err != nil {
		return err
	}
	if len(p.sequence) > 0 {
		p.sequence = p.sequence[1:]
	}
	if len(p.sequence) > 0 {
		p.sequence = p.sequence[:len(p.sequence)-1]
	}
	if len(p.sequence) == 0 {
		p.SetRounds(0)
	}
	return nil
}

func (p *Cancellation) Lose(bet model.Bet) {
	p.base.Lose(bet)
	p.sequence = append(p.sequence, bet.Amount)
}

func (p *Cancellation) InvalidBet() {
	p.ResetSequence()
}

func (p *Cancellation) Reset() {
	p.ResetSequence()
}
