package roulette

import (
	"fmt"
	"strings"

	"roulette_sim/internal/model"
)

type betKey struct {
	amount  int
	outcome string
}

// Table holds the bets of the current round and the wheel they are placed against.
// Identical (amount, outcome) bets collapse into one.
type Table struct {
	minimum int
	limit   int
	wheel   *Wheel

	bets  map[betKey]model.Bet
	order []betKey
}

func NewTable(minimum, limit int, wheel *Wheel) *Table {
	return &Table{
		minimum: minimum,
		limit:   limit,
		wheel:   wheel,
		bets:    make(map[betKey]model.Bet),
	}
}

func (t *Table) Minimum() int {
	return t.minimum
}

func (t *Table) Limit() int {
	return t.limit
}

func (t *Table) Wheel() *Wheel {
	return t.wheel
}

// Clear removes every bet from the table
func (t *Table) Clear() {
	t.bets = make(map[betKey]model.Bet)
	t.order = t.order[:0]
}

// PlaceBet puts bet on the table. Limits are checked later by IsValid.
func (t *Table) PlaceBet(bet model.Bet) {
	t.checkBetLimits(bet)

	key := betKey{amount: bet.Amount, outcome: bet.Outcome.Name}
	if _, ok := t.bets[key]; ok {
		return
	}
	t.bets[key] = bet
	t.order = append(t.order, key)
}

// checkBetLimits is where a per-bet minimum/limit check would go. Only the
// aggregate limit in IsValid is enforced.
func (t *Table) checkBetLimits(model.Bet) {}

// Bets returns the placed bets in placement order
func (t *Table) Bets() []model.Bet {
	res := make([]model.Bet, 0, len(t.order))
	for _, key := range t.order {
		res = append(res, t.bets[key])
	}
	return res
}

// Len returns the number of distinct bets on the table
func (t *Table) Len() int {
	return len(t.order)
}

// IsValid fails with *model.InvalidBetError when the bets sum above the table limit
func (t *Table) IsValid() error {
	total := 0
	for _, bet := range t.bets {
		total += bet.Amount
	}
	if total > t.limit {
		return &model.InvalidBetError{Total: total, Count: len(t.bets)}
	}
	return nil
}

func (t *Table) String() string {
	lines := make([]string, 0, len(t.order))
	for _, bet := range t.Bets() {
		lines = append(lines, fmt.Sprintf("%20s", bet.String()))
	}
	return "Current bets:\n" + strings.Join(lines, "\n")
}
