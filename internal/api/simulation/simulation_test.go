package simulation_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	dto "roulette_sim/internal/api/dto/simulation"
	"roulette_sim/internal/api/simulation"
	"roulette_sim/internal/config/env"
	"roulette_sim/internal/lib/logger/sl"
	"roulette_sim/internal/service/player"
	"roulette_sim/internal/service/simulator"
	"roulette_sim/pkg/resp"
)

func newRouter() http.Handler {
	log := sl.Discard()
	serv := simulator.NewSimulatorService(env.NewDefaultSimulationConfig(), player.DefaultRegistry(), log)
	h := simulation.NewHandler(simulation.HandlerDeps{Serv: serv, Log: log})

	r := chi.NewRouter()
	r.Post("/simulation/run", h.Run)
	r.Get("/simulation/strategies", h.Strategies)
	r.Get("/simulation/{id}", h.Get)
	return r
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestRunAndGet(t *testing.T) {
	router := newRouter()

	rec := do(router, http.MethodPost, "/simulation/run?stakes=true", `{"strategy":"martingale","samples":3,"seed":11}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("run status = %d: %s", rec.Code, rec.Body.String())
	}

	var run dto.RunResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &run); err != nil {
		t.Fatalf("decode run: %v", err)
	}
	if run.ID == "" || run.Strategy != "martingale" || run.Samples != 3 {
		t.Fatalf("unexpected run %+v", run)
	}
	if len(run.Sessions) != 3 || len(run.Maxima.Values) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(run.Sessions))
	}
	for i, s := range run.Sessions {
		if len(s.Stakes) != s.Duration {
			t.Errorf("session %d: %d stakes for %d rounds", i, len(s.Stakes), s.Duration)
		}
	}

	rec = do(router, http.MethodGet, "/simulation/"+run.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d: %s", rec.Code, rec.Body.String())
	}
	var got dto.RunResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode get: %v", err)
	}
	if got.ID != run.ID || got.Maxima.Mean != run.Maxima.Mean {
		t.Errorf("stored run differs from the returned one")
	}
	for _, s := range got.Sessions {
		if s.Stakes != nil {
			t.Errorf("stakes should be omitted without ?stakes=true")
		}
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown strategy", body: `{"strategy":"d'Alembert","samples":1}`},
		{name: "negative samples", body: `{"strategy":"martingale","samples":-1}`},
		{name: "too many samples", body: `{"strategy":"martingale","samples":100000}`},
		{name: "malformed json", body: `{"strategy":`},
	}

	router := newRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(router, http.MethodPost, "/simulation/run", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}

			var body resp.Response
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Status != http.StatusBadRequest || body.Error == "" {
				t.Errorf("unexpected error body %+v", body)
			}
		})
	}
}

func TestGetMissing(t *testing.T) {
	rec := do(newRouter(), http.MethodGet, "/simulation/unknown", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestStrategies(t *testing.T) {
	rec := do(newRouter(), http.MethodGet, "/simulation/strategies", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body dto.StrategiesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Strategies) != 7 {
		t.Errorf("got %d strategies, want 7", len(body.Strategies))
	}
}
