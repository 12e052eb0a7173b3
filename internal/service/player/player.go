package player

import (
	"roulette_sim/internal/model"
	"roulette_sim/internal/service/roulette"
)

const (
	defaultStake  = 1000
	defaultRounds = 250
)

// Strategy is a player with a betting policy that can be put back to its initial state
type Strategy interface {
	roulette.Player
	Name() string
	// Reset restores the strategy's internal state before a new session
	Reset()
}

// base implements the bookkeeping every strategy shares
type base struct {
	table      *roulette.Table
	stake      int
	roundsToGo int
}

func newBase(table *roulette.Table) base {
	return base{
		table:      table,
		stake:      defaultStake,
		roundsToGo: defaultRounds,
	}
}

func (b *base) Stake() int {
	return b.stake
}

func (b *base) SetStake(stake int) {
	b.stake = stake
}

func (b *base) RoundsToGo() int {
	return b.roundsToGo
}

func (b *base) SetRounds(rounds int) {
	b.roundsToGo = rounds
}

func (b *base) DecrementRounds() {
	b.roundsToGo--
}

// Playing is true while rounds remain and the stake covers the table minimum.
// A stake below the minimum ends the session.
func (b *base) Playing() bool {
	if b.stake < b.table.Minimum() {
		b.roundsToGo = 0
	}
	return b.roundsToGo > 0
}

// Win credits the stake with the winnings and the returned wager
func (b *base) Win(bet model.Bet) error {
	amount, err := bet.WinAmount()
	if err != nil {
		return err
	}
	b.stake += amount
	return nil
}

func (b *base) Lose(model.Bet) {}

func (b *base) Winners(model.Bin) {}

func (b *base) InvalidBet() {}

// place puts a bet on the table and takes the wager from the stake
func (b *base) place(bet model.Bet) {
	b.table.PlaceBet(bet)
	b.stake -= bet.Amount
}

func (b *base) outcome(name string) (model.Outcome, error) {
	return b.table.Wheel().GetOutcome(name)
}
