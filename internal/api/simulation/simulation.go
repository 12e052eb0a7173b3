package simulation

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	dto "roulette_sim/internal/api/dto/simulation"
	"roulette_sim/internal/converter"
	"roulette_sim/internal/lib/logger/sl"
	"roulette_sim/internal/service"
	"roulette_sim/internal/service/player"
	"roulette_sim/pkg/req"
	"roulette_sim/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SimulatorService
	Log  *slog.Logger
}

type Handler struct {
	serv service.SimulatorService
	log  *slog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Run plays a simulation and returns its aggregated statistics.
// ?stakes=true adds the per-round stakes of every session.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	const op = "api.simulation.Run"

	payload, err := req.Decode[dto.RunRequest](r.Body)
	if err != nil {
		resp.WriteError(w, r, resp.BadRequest(err))
		return
	}

	result, err := h.serv.Gather(r.Context(), converter.ToSimulationRequest(payload))
	if err != nil {
		if errors.Is(err, player.ErrUnknownStrategy) {
			resp.WriteError(w, r, resp.Error(err.Error(), http.StatusBadRequest))
			return
		}
		h.log.Error("simulation failed", sl.Op(op), sl.Err(err))
		resp.WriteError(w, r, resp.Error("simulation failed", http.StatusInternalServerError))
		return
	}

	withStakes := r.URL.Query().Get("stakes") == "true"
	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToRunResponse(*result, withStakes))
}

// Get returns a finished simulation kept in memory
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, ok := h.serv.Result(id)
	if !ok {
		resp.WriteError(w, r, resp.Error("simulation not found", http.StatusNotFound))
		return
	}

	withStakes := r.URL.Query().Get("stakes") == "true"
	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToRunResponse(*result, withStakes))
}

func (h *Handler) Strategies(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, r, http.StatusOK, dto.StrategiesResponse{
		Strategies: h.serv.Strategies(),
	})
}
