package model

import "fmt"

// Bet is an amount wagered on one outcome
type Bet struct {
	Amount  int
	Outcome Outcome
}

func NewBet(amount int, outcome Outcome) Bet {
	return Bet{Amount: amount, Outcome: outcome}
}

// WinAmount is the payout plus the returned wager
func (b Bet) WinAmount() (int, error) {
	win, err := b.Outcome.WinAmount(b.Amount)
	if err != nil {
		return 0, err
	}
	return win + b.Amount, nil
}

func (b Bet) LoseAmount() int {
	return b.Amount
}

func (b Bet) Equal(other Bet) bool {
	return b.Amount == other.Amount && b.Outcome.Equal(other.Outcome)
}

func (b Bet) String() string {
	return fmt.Sprintf("%d on %s", b.Amount, b.Outcome.Name)
}
