package model

import "fmt"

// Outcome is a named bet target with fixed payout odds.
// Two outcomes are the same outcome when their names match.
type Outcome struct {
	Name string
	Odds int
}

func NewOutcome(name string, odds int) Outcome {
	return Outcome{Name: name, Odds: odds}
}

// WinAmount multiplies amount by the odds. Negative amounts are rejected.
func (o Outcome) WinAmount(amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: negative amount %d", ErrInvalidArgument, amount)
	}
	return amount * o.Odds, nil
}

func (o Outcome) Equal(other Outcome) bool {
	return o.Name == other.Name
}

// Is compares the outcome against a plain name
func (o Outcome) Is(name string) bool {
	return o.Name == name
}

func (o Outcome) Less(other Outcome) bool {
	return o.Name < other.Name
}

func (o Outcome) String() string {
	return fmt.Sprintf("%s (%d:1)", o.Name, o.Odds)
}
