package roulette

import (
	"fmt"
	"strconv"
	"strings"

	"roulette_sim/internal/model"
)

// Red numbers. Everything else in 1..36 is black.
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true,
	12: true, 14: true, 16: true, 18: true, 19: true,
	21: true, 23: true, 25: true, 27: true, 30: true,
	32: true, 34: true, 36: true,
}

// IsRed reports whether number is on the red set
func IsRed(number int) bool {
	return redNumbers[number]
}

// BinBuilder creates the outcomes of every bet on the layout and attaches them to the wheel
type BinBuilder struct{}

func NewBinBuilder() *BinBuilder {
	return &BinBuilder{}
}

// BuildBins populates all 38 bins
func (b *BinBuilder) BuildBins(w *Wheel) error {
	steps := []func(*Wheel) error{
		b.Straight,
		b.Five,
		b.SplitBets,
		b.StreetBets,
		b.CornerBets,
		b.LineBets,
		b.DozenBets,
		b.ColumnBets,
		b.EvenMoneyBets,
	}
	for _, step := range steps {
		if err := step(w); err != nil {
			return fmt.Errorf("build bins: %w", err)
		}
	}
	return nil
}

// addAll attaches one outcome to several bins
func addAll(w *Wheel, outcome model.Outcome, bins ...int) error {
	for _, bin := range bins {
		if err := w.Add(bin, outcome); err != nil {
			return err
		}
	}
	return nil
}

func joinNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

func (b *BinBuilder) Straight(w *Wheel) error {
	for n := 0; n < 37; n++ {
		if err := w.Add(n, model.NewOutcome(fmt.Sprintf("Straight %d", n), model.StraightBet)); err != nil {
			return err
		}
	}
	return w.Add(DoubleZero, model.NewOutcome("Straight 00", model.StraightBet))
}

// Five covers 00, 0, 1, 2 and 3
func (b *BinBuilder) Five(w *Wheel) error {
	return addAll(w, model.NewOutcome("00-0-1-2-3", model.FiveBet), DoubleZero, 0, 1, 2, 3)
}

func (b *BinBuilder) SplitBets(w *Wheel) error {
	// Side by side in a row: 1-2 and 2-3
	for row := 0; row < 12; row++ {
		for _, first := range []int{3*row + 1, 3*row + 2} {
			pair := []int{first, first + 1}
			if err := addAll(w, model.NewOutcome(joinNumbers(pair)+" Split", model.SplitBet), pair...); err != nil {
				return err
			}
		}
	}
	// One above the other: n and n+3
	for n := 1; n < 34; n++ {
		pair := []int{n, n + 3}
		if err := addAll(w, model.NewOutcome(joinNumbers(pair)+" Split", model.SplitBet), pair...); err != nil {
			return err
		}
	}
	return nil
}

func (b *BinBuilder) StreetBets(w *Wheel) error {
	for row := 0; row < 12; row++ {
		n := 3*row + 1
		street := []int{n, n + 1, n + 2}
		if err := addAll(w, model.NewOutcome(joinNumbers(street)+" Street", model.StreetBet), street...); err != nil {
			return err
		}
	}
	return nil
}

func (b *BinBuilder) CornerBets(w *Wheel) error {
	for row := 0; row < 11; row++ {
		for _, first := range []int{3*row + 1, 3*row + 2} {
			corner := []int{first, first + 1, first + 3, first + 4}
			if err := addAll(w, model.NewOutcome(joinNumbers(corner)+" Corner", model.CornerBet), corner...); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *BinBuilder) LineBets(w *Wheel) error {
	for row := 0; row < 11; row++ {
		n := 3*row + 1
		line := make([]int, 6)
		for i := range line {
			line[i] = n + i
		}
		if err := addAll(w, model.NewOutcome(joinNumbers(line)+" Line", model.LineBet), line...); err != nil {
			return err
		}
	}
	return nil
}

func (b *BinBuilder) DozenBets(w *Wheel) error {
	for dozen := 0; dozen < 3; dozen++ {
		outcome := model.NewOutcome(fmt.Sprintf("Dozen %d", dozen+1), model.DozenBet)
		for i := 0; i < 12; i++ {
			if err := w.Add(12*dozen+i+1, outcome); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *BinBuilder) ColumnBets(w *Wheel) error {
	for col := 0; col < 3; col++ {
		outcome := model.NewOutcome(fmt.Sprintf("Column %d", col+1), model.ColumnBet)
		for row := 0; row < 12; row++ {
			if err := w.Add(3*row+col+1, outcome); err != nil {
				return err
			}
		}
	}
	return nil
}

// EvenMoneyBets - Low, High, Even, Odd, Red and Black. 0 and 00 take part in none of them.
func (b *BinBuilder) EvenMoneyBets(w *Wheel) error {
	var (
		low   = model.NewOutcome("Low", model.EvenMoneyBet)
		high  = model.NewOutcome("High", model.EvenMoneyBet)
		even  = model.NewOutcome("Even", model.EvenMoneyBet)
		odd   = model.NewOutcome("Odd", model.EvenMoneyBet)
		red   = model.NewOutcome("Red", model.EvenMoneyBet)
		black = model.NewOutcome("Black", model.EvenMoneyBet)
	)

	for n := 1; n < 37; n++ {
		outcomes := make([]model.Outcome, 0, 3)

		if n < 19 {
			outcomes = append(outcomes, low)
		} else {
			outcomes = append(outcomes, high)
		}

		if n%2 == 0 {
			outcomes = append(outcomes, even)
		} else {
			outcomes = append(outcomes, odd)
		}

		if IsRed(n) {
			outcomes = append(outcomes, red)
		} else {
			outcomes = append(outcomes, black)
		}

		for _, o := range outcomes {
			if err := w.Add(n, o); err != nil {
				return err
			}
		}
	}
	return nil
}
