package roulette

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"roulette_sim/internal/lib/logger/sl"
	"roulette_sim/internal/model"
)

// Player is a betting strategy seated at the table
type Player interface {
	// Playing reports whether the player takes part in the next round
	Playing() bool
	// PlaceBets puts this round's bets on the table
	PlaceBets() error
	Win(bet model.Bet) error
	Lose(bet model.Bet)
	// Winners announces the winning bin, whether the player bet or not
	Winners(bin model.Bin)
	// InvalidBet is called after the table rejected the player's bets
	InvalidBet()

	Stake() int
	SetStake(stake int)
	RoundsToGo() int
	SetRounds(rounds int)
	DecrementRounds()
}

// Game runs rounds of roulette for one player
type Game struct {
	wheel *Wheel
	table *Table
	log   *slog.Logger
}

func NewGame(wheel *Wheel, table *Table, log *slog.Logger) *Game {
	return &Game{
		wheel: wheel,
		table: table,
		log:   log,
	}
}

func (g *Game) Wheel() *Wheel {
	return g.wheel
}

func (g *Game) Table() *Table {
	return g.table
}

// Cycle plays one round: bets, validation, spin, resolution.
// The winning bin is announced and the round counter decremented even when
// the player sat the round out.
func (g *Game) Cycle(player Player) error {
	const op = "roulette.Game.Cycle"

	g.table.Clear()

	playing := player.Playing()
	if playing {
		if err := player.PlaceBets(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if err := g.table.IsValid(); err != nil {
			if !errors.Is(err, model.ErrInvalidBet) {
				return fmt.Errorf("%s: %w", op, err)
			}

			// Refund and sit the round out
			for _, bet := range g.table.Bets() {
				player.SetStake(player.Stake() + bet.Amount)
			}
			g.log.Debug("bets rejected by table", sl.Err(err), slog.Int("stake", player.Stake()))

			player.InvalidBet()
			g.table.Clear()
		}
	}

	winning := g.wheel.Spin()
	player.Winners(winning)

	if playing {
		for _, bet := range g.table.Bets() {
			if winning.Contains(bet.Outcome) {
				if err := player.Win(bet); err != nil {
					return fmt.Errorf("%s: %w", op, err)
				}
				continue
			}
			player.Lose(bet)
		}
	}

	player.DecrementRounds()

	g.log.Debug("round resolved",
		slog.Bool("playing", playing),
		slog.Int("stake", player.Stake()),
		slog.Int("rounds_to_go", player.RoundsToGo()),
	)

	return nil
}
