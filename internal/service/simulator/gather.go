package simulator

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/exp/slog"

	"roulette_sim/internal/lib/logger/sl"
	"roulette_sim/internal/model"
	"roulette_sim/internal/service/player"
	"roulette_sim/internal/service/roulette"
)

// reseeder is implemented by strategies that draw from their own random source
type reseeder interface {
	Reseed(seed int64)
}

// Gather runs req.Samples independent sessions of one strategy
func (s *serv) Gather(ctx context.Context, req model.SimulationRequest) (*model.SimulationResult, error) {
	const op = "simulator.Gather"

	req = s.withDefaults(req)
	log := s.log.With(sl.Op(op), slog.String("strategy", req.Strategy), slog.Int("samples", req.Samples))

	wheel, err := roulette.NewWheel(nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	table := roulette.NewTable(s.cfg.TableMinimum(), s.cfg.TableLimit(), wheel)
	game := roulette.NewGame(wheel, table, s.log)

	p, err := s.registry.New(req.Strategy, table)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	nextSeed := seedSource(req.Seed)

	res := &model.SimulationResult{
		ID:        uuid.NewString(),
		Strategy:  req.Strategy,
		Samples:   req.Samples,
		Sessions:  make([]model.SessionResult, 0, req.Samples),
		StartedAt: time.Now(),
	}

	maxima := make([]int, 0, req.Samples)
	durations := make([]int, 0, req.Samples)

	for i := 0; i < req.Samples; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		session, err := s.session(game, p, nextSeed)
		if err != nil {
			log.Error("session failed", sl.Err(err), slog.Int("session", i))
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		res.Sessions = append(res.Sessions, session)
		maxima = append(maxima, session.Maximum)
		durations = append(durations, session.Duration)
	}

	res.Maxima = NewStatistics(maxima)
	res.Durations = NewStatistics(durations)
	res.FinishedAt = time.Now()

	s.results.Set(res.ID, res, cache.DefaultExpiration)

	log.Info("simulation finished",
		slog.String("id", res.ID),
		slog.Float64("maxima_mean", res.Maxima.Mean),
		slog.Float64("duration_mean", res.Durations.Mean),
	)

	return res, nil
}

func (s *serv) Result(id string) (*model.SimulationResult, bool) {
	v, found := s.results.Get(id)
	if !found {
		return nil, false
	}
	return v.(*model.SimulationResult), true
}

func (s *serv) withDefaults(req model.SimulationRequest) model.SimulationRequest {
	if req.Strategy == "" {
		req.Strategy = s.cfg.Strategy()
	}
	if req.Samples <= 0 {
		req.Samples = s.cfg.Samples()
	}
	if req.Seed == nil {
		if seed, ok := s.cfg.Seed(); ok {
			req.Seed = &seed
		}
	}
	return req
}

// session plays one player from a fresh stake until it stops and records the
// stake after every round
func (s *serv) session(game *roulette.Game, p player.Strategy, nextSeed func() (int64, error)) (model.SessionResult, error) {
	initial := s.cfg.InitStake() * game.Table().Minimum()

	p.SetStake(initial)
	p.SetRounds(s.cfg.InitDuration())
	p.Reset()

	seed, err := nextSeed()
	if err != nil {
		return model.SessionResult{}, err
	}
	game.Wheel().Reseed(seed)

	if r, ok := p.(reseeder); ok {
		seed, err := nextSeed()
		if err != nil {
			return model.SessionResult{}, err
		}
		r.Reseed(seed)
	}

	var stakes []int
	for p.Playing() {
		if err := game.Cycle(p); err != nil {
			return model.SessionResult{}, err
		}
		stakes = append(stakes, p.Stake())
	}

	return newSessionResult(initial, stakes), nil
}

// newSessionResult - a session that never played reports its starting stake as the maximum
func newSessionResult(initial int, stakes []int) model.SessionResult {
	maximum := initial
	if len(stakes) > 0 {
		maximum = stakes[0]
		for _, stake := range stakes[1:] {
			if stake > maximum {
				maximum = stake
			}
		}
	}
	return model.SessionResult{
		Stakes:   stakes,
		Maximum:  maximum,
		Duration: len(stakes),
	}
}

// seedSource derives every session seed from seed when given, otherwise from crypto/rand
func seedSource(seed *int64) func() (int64, error) {
	if seed != nil {
		master := mrand.New(mrand.NewSource(*seed))
		return func() (int64, error) {
			return master.Int63(), nil
		}
	}
	return func() (int64, error) {
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, fmt.Errorf("read seed: %w", err)
		}
		return int64(binary.LittleEndian.Uint64(buf[:])), nil
	}
}
