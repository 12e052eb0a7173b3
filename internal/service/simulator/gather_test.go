package simulator_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"roulette_sim/internal/config/env"
	"roulette_sim/internal/lib/logger/sl"
	"roulette_sim/internal/model"
	"roulette_sim/internal/service"
	"roulette_sim/internal/service/player"
	"roulette_sim/internal/service/simulator"
)

func newService() service.SimulatorService {
	return simulator.NewSimulatorService(env.NewDefaultSimulationConfig(), player.DefaultRegistry(), sl.Discard())
}

func seed(v int64) *int64 {
	return &v
}

func TestGatherIsReproducibleWithSeed(t *testing.T) {
	s := newService()

	for _, name := range s.Strategies() {
		t.Run(name, func(t *testing.T) {
			req := model.SimulationRequest{Strategy: name, Samples: 5, Seed: seed(42)}

			a, err := s.Gather(context.Background(), req)
			if err != nil {
				t.Fatalf("Gather: %v", err)
			}
			b, err := s.Gather(context.Background(), req)
			if err != nil {
				t.Fatalf("Gather: %v", err)
			}

			if a.ID == b.ID {
				t.Errorf("every run should get its own id")
			}
			if !reflect.DeepEqual(a.Maxima, b.Maxima) || !reflect.DeepEqual(a.Durations, b.Durations) {
				t.Errorf("same seed gave different statistics: %v / %v", a.Maxima.Values, b.Maxima.Values)
			}
			for i := range a.Sessions {
				if !reflect.DeepEqual(a.Sessions[i].Stakes, b.Sessions[i].Stakes) {
					t.Fatalf("session %d stakes differ", i)
				}
			}
		})
	}
}

func TestGatherSessions(t *testing.T) {
	s := newService()

	res, err := s.Gather(context.Background(), model.SimulationRequest{Strategy: "martingale", Samples: 10, Seed: seed(7)})
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	if res.Strategy != "martingale" || res.Samples != 10 {
		t.Errorf("result describes %s x %d", res.Strategy, res.Samples)
	}
	if len(res.Sessions) != 10 || len(res.Maxima.Values) != 10 || len(res.Durations.Values) != 10 {
		t.Fatalf("expected 10 sessions, got %d", len(res.Sessions))
	}

	for i, session := range res.Sessions {
		if session.Duration != len(session.Stakes) {
			t.Errorf("session %d: duration %d, %d stakes", i, session.Duration, len(session.Stakes))
		}
		if session.Duration > 250 {
			t.Errorf("session %d ran %d rounds, more than 250", i, session.Duration)
		}
		for _, stake := range session.Stakes {
			if stake > session.Maximum {
				t.Errorf("session %d: stake %d above maximum %d", i, stake, session.Maximum)
			}
		}
		if res.Maxima.Values[i] != session.Maximum || res.Durations.Values[i] != session.Duration {
			t.Errorf("session %d does not match the aggregated values", i)
		}
	}

	if res.FinishedAt.Before(res.StartedAt) {
		t.Errorf("finished before it started")
	}
}

func TestGatherDefaults(t *testing.T) {
	s := newService()

	res, err := s.Gather(context.Background(), model.SimulationRequest{})
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if res.Strategy != "fibonacci" {
		t.Errorf("Strategy = %s, want the configured fibonacci", res.Strategy)
	}
	if res.Samples != 50 || len(res.Sessions) != 50 {
		t.Errorf("Samples = %d, want the configured 50", res.Samples)
	}
}

func TestGatherUnknownStrategy(t *testing.T) {
	_, err := newService().Gather(context.Background(), model.SimulationRequest{Strategy: "d'Alembert"})
	if !errors.Is(err, player.ErrUnknownStrategy) {
		t.Fatalf("Gather error = %v, want ErrUnknownStrategy", err)
	}
}

func TestGatherCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newService().Gather(ctx, model.SimulationRequest{Strategy: "martingale", Samples: 3})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Gather error = %v, want context.Canceled", err)
	}
}

func TestResult(t *testing.T) {
	s := newService()

	res, err := s.Gather(context.Background(), model.SimulationRequest{Strategy: "1326", Samples: 2, Seed: seed(1)})
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	got, ok := s.Result(res.ID)
	if !ok || got != res {
		t.Fatalf("Result(%s) did not return the finished run", res.ID)
	}
	if _, ok := s.Result("missing"); ok {
		t.Errorf("Result should miss for an unknown id")
	}
}

func TestStrategies(t *testing.T) {
	want := player.DefaultRegistry().Names()
	if got := newService().Strategies(); !reflect.DeepEqual(got, want) {
		t.Errorf("Strategies() = %v, want %v", got, want)
	}
}
