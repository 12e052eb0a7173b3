package model

import (
	"sort"
	"strings"
)

// Bin is one pocket of the wheel together with every outcome it satisfies.
// A Bin is never modified in place: With returns a new Bin.
type Bin struct {
	outcomes map[string]Outcome
}

func NewBin(outcomes ...Outcome) Bin {
	b := Bin{outcomes: make(map[string]Outcome, len(outcomes))}
	for _, o := range outcomes {
		if _, ok := b.outcomes[o.Name]; !ok {
			b.outcomes[o.Name] = o
		}
	}
	return b
}

// With returns a copy of the bin that also holds outcome
func (b Bin) With(outcome Outcome) Bin {
	if b.Has(outcome.Name) {
		return b
	}
	next := Bin{outcomes: make(map[string]Outcome, len(b.outcomes)+1)}
	for name, o := range b.outcomes {
		next.outcomes[name] = o
	}
	next.outcomes[outcome.Name] = outcome
	return next
}

func (b Bin) Contains(outcome Outcome) bool {
	return b.Has(outcome.Name)
}

func (b Bin) Has(name string) bool {
	_, ok := b.outcomes[name]
	return ok
}

func (b Bin) Len() int {
	return len(b.outcomes)
}

// Outcomes returns the bin's outcomes ordered by name
func (b Bin) Outcomes() []Outcome {
	res := make([]Outcome, 0, len(b.outcomes))
	for _, o := range b.outcomes {
		res = append(res, o)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Less(res[j]) })
	return res
}

func (b Bin) String() string {
	names := make([]string, 0, len(b.outcomes))
	for _, o := range b.Outcomes() {
		names = append(names, o.String())
	}
	return "[" + strings.Join(names, ", ") + "]"
}
