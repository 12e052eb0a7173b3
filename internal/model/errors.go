package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument - negative amount passed to a payout computation
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange - bin index outside [0,38)
	ErrOutOfRange = errors.New("bin index out of range")
	// ErrLookup - outcome lookup by name failed
	ErrLookup           = errors.New("outcome lookup failed")
	ErrOutcomeNotFound  = fmt.Errorf("%w: outcome not found", ErrLookup)
	ErrAmbiguousOutcome = fmt.Errorf("%w: outcome name is ambiguous", ErrLookup)
	// ErrInvalidBet - table limit exceeded
	ErrInvalidBet = errors.New("invalid bet")
)

// InvalidBetError is returned by the table when the sum of placed bets exceeds its limit
type InvalidBetError struct {
	Total int
	Count int
}

func (e *InvalidBetError) Error() string {
	return fmt.Sprintf("total betting amount exceeds table limit (%d in %d bets)", e.Total, e.Count)
}

func (e *InvalidBetError) Is(target error) bool {
	return target == ErrInvalidBet
}
