package simulator

import (
	"math"

	"github.com/shopspring/decimal"

	"roulette_sim/internal/model"
)

const statisticsPlaces = 6

// NewStatistics computes the mean and population standard deviation of values,
// both rounded to six decimal places
func NewStatistics(values []int) model.Statistics {
	st := model.Statistics{Values: values}
	if len(values) == 0 {
		return st
	}

	n := decimal.NewFromInt(int64(len(values)))
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromInt(int64(v)))
	}
	mean := sum.Div(n)

	squares := decimal.Zero
	for _, v := range values {
		diff := decimal.NewFromInt(int64(v)).Sub(mean)
		squares = squares.Add(diff.Mul(diff))
	}
	variance := squares.Div(n)

	st.Mean = mean.Round(statisticsPlaces).InexactFloat64()
	st.Stdev = decimal.NewFromFloat(math.Sqrt(variance.InexactFloat64())).Round(statisticsPlaces).InexactFloat64()

	return st
}
