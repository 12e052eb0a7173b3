package player

import (
	"roulette_sim/internal/model"
	"roulette_sim/internal/service/roulette"
)

const fixedBetAmount = 15

// FixedBet always bets the same amount on Black
type FixedBet struct {
	base
	bet model.Bet
}

func NewFixedBet(table *roulette.Table, amount int) (*FixedBet, error) {
	black, err := table.Wheel().GetOutcome("black")
	if err != nil {
		return nil, err
	}
	return &FixedBet{
		base: newBase(table),
		bet:  model.NewBet(amount, black),
	}, nil
}

func (p *FixedBet) Name() string {
	return "passenger57"
}

func (p *FixedBet) Bet() model.Bet {
	return p.bet
}

func (p *FixedBet) PlaceBets() error {
	p.place(p.bet)
	return nil
}

func (p *FixedBet) Reset() {}
