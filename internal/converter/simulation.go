package converter

import (
	"strconv"

	dto "roulette_sim/internal/api/dto/simulation"
	"roulette_sim/internal/model"
	"roulette_sim/internal/service/roulette"
)

func ToSimulationRequest(req dto.RunRequest) model.SimulationRequest {
	return model.SimulationRequest{
		Strategy: req.Strategy,
		Samples:  req.Samples,
		Seed:     req.Seed,
	}
}

// ToRunResponse converts a result. Per-round stakes are included only when withStakes is set.
func ToRunResponse(res model.SimulationResult, withStakes bool) dto.RunResponse {
	sessions := make([]dto.Session, len(res.Sessions))
	for i, s := range res.Sessions {
		sessions[i] = dto.Session{
			Maximum:  s.Maximum,
			Duration: s.Duration,
		}
		if withStakes {
			sessions[i].Stakes = s.Stakes
		}
	}

	return dto.RunResponse{
		ID:         res.ID,
		Strategy:   res.Strategy,
		Samples:    res.Samples,
		Maxima:     toStatistics(res.Maxima),
		Durations:  toStatistics(res.Durations),
		Sessions:   sessions,
		StartedAt:  res.StartedAt,
		FinishedAt: res.FinishedAt,
	}
}

func toStatistics(st model.Statistics) dto.Statistics {
	return dto.Statistics{
		Values: st.Values,
		Mean:   st.Mean,
		Stdev:  st.Stdev,
	}
}

func ToOutcomes(outcomes []model.Outcome) []dto.Outcome {
	result := make([]dto.Outcome, len(outcomes))
	for i, o := range outcomes {
		result[i] = dto.Outcome{
			Name: o.Name,
			Odds: o.Odds,
		}
	}
	return result
}

func ToBinResponse(index int, bin model.Bin) dto.BinResponse {
	label := strconv.Itoa(index)
	if index == roulette.DoubleZero {
		label = "00"
	}
	return dto.BinResponse{
		Index:    index,
		Label:    label,
		Outcomes: ToOutcomes(bin.Outcomes()),
	}
}
