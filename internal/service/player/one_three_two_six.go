package player

import (
	"roulette_sim/internal/model"
	"roulette_sim/internal/service/roulette"
)

// State of the 1-3-2-6 progression, counted in consecutive wins
type State int

const (
	NoWins State = iota
	OneWin
	TwoWins
	ThreeWins
)

var stateNames = map[State]string{
	NoWins:    "NoWins",
	OneWin:    "OneWin",
	TwoWins:   "TwoWins",
	ThreeWins: "ThreeWins",
}

func (s State) String() string {
	return stateNames[s]
}

// Multiplier of the table minimum wagered in this state
func (s State) Multiplier() int {
	switch s {
	case OneWin:
		return 3
	case TwoWins:
		return 2
	case ThreeWins:
		return 6
	default:
		return 1
	}
}

// NextState moves one step along the progression on a win and back to NoWins on a loss
func NextState(current State, won bool) State {
	if !won {
		return NoWins
	}
	switch current {
	case NoWins:
		return OneWin
	case OneWin:
		return TwoWins
	case TwoWins:
		return ThreeWins
	default:
		return NoWins
	}
}

// OneThreeTwoSix bets on Black following the 1-3-2-6 progression
type OneThreeTwoSix struct {
	base
	black model.Outcome
	state State
}

func NewOneThreeTwoSix(table *roulette.Table) (*OneThreeTwoSix, error) {
	black, err := table.Wheel().GetOutcome("black")
	if err != nil {
		return nil, err
	}
	return &OneThreeTwoSix{
		base:  newBase(table),
		black: black,
		state: NoWins,
	}, nil
}

func (p *OneThreeTwoSix) Name() string {
	return "1326"
}

func (p *OneThreeTwoSix) State() State {
	return p.state
}

// CurrentBet is the bet for the current state
func (p *OneThreeTwoSix) CurrentBet() model.Bet {
	return model.NewBet(p.table.Minimum()*p.state.Multiplier(), p.black)
}

func (p *OneThreeTwoSix) PlaceBets() error {
	p.place(p.CurrentBet())
	return nil
}

func (p *OneThreeTwoSix) Win(bet model.Bet) error {
	if err := p.base.Win(bet); err != nil {
		return err
	}
	p.state = NextState(p.state, true)
	return nil
}

func (p *OneThreeTwoSix) Lose(bet model.Bet) {
	p.base.Lose(bet)
	p.state = NextState(p.state, false)
}

func (p *OneThreeTwoSix) Reset() {
	p.state = NoWins
}
