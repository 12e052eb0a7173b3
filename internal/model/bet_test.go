package model_test

import (
	"errors"
	"testing"

	"roulette_sim/internal/model"
)

func TestBetWinAmount(t *testing.T) {
	tests := []struct {
		name string
		bet  model.Bet
		want int
	}{
		{name: "straight", bet: model.NewBet(15, model.NewOutcome("Straight 1", model.StraightBet)), want: 540},
		{name: "black", bet: model.NewBet(15, model.NewOutcome("Black", model.EvenMoneyBet)), want: 30},
		{name: "corner", bet: model.NewBet(10, model.NewOutcome("1, 2, 4, 5 Corner", model.CornerBet)), want: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.bet.WinAmount()
			if err != nil {
				t.Fatalf("WinAmount() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("WinAmount() = %d, want %d", got, tt.want)
			}
			if lose := tt.bet.LoseAmount(); lose != tt.bet.Amount {
				t.Errorf("LoseAmount() = %d, want %d", lose, tt.bet.Amount)
			}
		})
	}
}

func TestBetNegativeAmount(t *testing.T) {
	_, err := model.NewBet(-5, model.NewOutcome("Red", 1)).WinAmount()
	if !errors.Is(err, model.ErrInvalidArgument) {
		t.Fatalf("WinAmount() error = %v, want ErrInvalidArgument", err)
	}
}

func TestBetString(t *testing.T) {
	bet := model.NewBet(15, model.NewOutcome("Straight 1", model.StraightBet))
	if got := bet.String(); got != "15 on Straight 1" {
		t.Errorf("String() = %q, want %q", got, "15 on Straight 1")
	}
}

func TestInvalidBetError(t *testing.T) {
	var err error = &model.InvalidBetError{Total: 125, Count: 3}

	if !errors.Is(err, model.ErrInvalidBet) {
		t.Errorf("InvalidBetError should match ErrInvalidBet")
	}
	want := "total betting amount exceeds table limit (125 in 3 bets)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var ibe *model.InvalidBetError
	if !errors.As(err, &ibe) || ibe.Total != 125 || ibe.Count != 3 {
		t.Errorf("errors.As did not recover the totals")
	}
}

func TestLookupErrors(t *testing.T) {
	if !errors.Is(model.ErrOutcomeNotFound, model.ErrLookup) {
		t.Errorf("ErrOutcomeNotFound should wrap ErrLookup")
	}
	if !errors.Is(model.ErrAmbiguousOutcome, model.ErrLookup) {
		t.Errorf("ErrAmbiguousOutcome should wrap ErrLookup")
	}
}
