package roulette

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"roulette_sim/internal/model"
)

const (
	// Pockets 0..36 plus 00
	binCount = 38
	// Index of the "00" pocket
	DoubleZero = 37
)

// Rand is the random source used to pick a bin. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Wheel holds the 38 bins, the catalog of every outcome and a random source
type Wheel struct {
	bins        [binCount]model.Bin
	allOutcomes map[string]model.Outcome
	rng         Rand
}

// NewEmptyWheel creates a wheel with empty bins. Outcomes must be added with Add.
func NewEmptyWheel(rng Rand) *Wheel {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	w := &Wheel{
		allOutcomes: make(map[string]model.Outcome),
		rng:         rng,
	}
	for i := range w.bins {
		w.bins[i] = model.NewBin()
	}
	return w
}

// NewWheel creates a wheel with every standard outcome attached to its bins
func NewWheel(rng Rand) (*Wheel, error) {
	w := NewEmptyWheel(rng)
	if err := NewBinBuilder().BuildBins(w); err != nil {
		return nil, err
	}
	return w, nil
}

// Add attaches outcome to the bin and registers it in the catalog
func (w *Wheel) Add(bin int, outcome model.Outcome) error {
	if bin < 0 || bin >= binCount {
		return fmt.Errorf("%w: %d", model.ErrOutOfRange, bin)
	}
	w.bins[bin] = w.bins[bin].With(outcome)

	if _, ok := w.allOutcomes[outcome.Name]; !ok {
		w.allOutcomes[outcome.Name] = outcome
	}
	return nil
}

// Spin selects one of the bins uniformly
func (w *Wheel) Spin() model.Bin {
	return w.bins[w.rng.Intn(binCount)]
}

// SetRand swaps the random source
func (w *Wheel) SetRand(rng Rand) {
	w.rng = rng
}

// Reseed installs a fresh source seeded with seed
func (w *Wheel) Reseed(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))
}

func (w *Wheel) Get(bin int) (model.Bin, error) {
	if bin < 0 || bin >= binCount {
		return model.Bin{}, fmt.Errorf("%w: %d", model.ErrOutOfRange, bin)
	}
	return w.bins[bin], nil
}

// Len returns the number of bins
func (w *Wheel) Len() int {
	return binCount
}

// GetOutcome finds an outcome by name, ignoring case. Exactly one match is required.
func (w *Wheel) GetOutcome(name string) (model.Outcome, error) {
	var found []model.Outcome
	for _, o := range w.allOutcomes {
		if strings.EqualFold(o.Name, name) {
			found = append(found, o)
		}
	}

	switch len(found) {
	case 0:
		return model.Outcome{}, fmt.Errorf("%w: %q", model.ErrOutcomeNotFound, name)
	case 1:
		return found[0], nil
	default:
		return model.Outcome{}, fmt.Errorf("%w: %q matches %d outcomes", model.ErrAmbiguousOutcome, name, len(found))
	}
}

// AllOutcomes returns the catalog ordered by name
func (w *Wheel) AllOutcomes() []model.Outcome {
	res := make([]model.Outcome, 0, len(w.allOutcomes))
	for _, o := range w.allOutcomes {
		res = append(res, o)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Less(res[j]) })
	return res
}
