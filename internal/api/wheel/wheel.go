package wheel

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	dto "roulette_sim/internal/api/dto/simulation"
	"roulette_sim/internal/converter"
	"roulette_sim/internal/service"
	"roulette_sim/pkg/resp"
)

type HandlerDeps struct {
	Serv service.CatalogService
}

type Handler struct {
	serv service.CatalogService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Bin returns the outcomes of one bin, 37 being "00"
func (h *Handler) Bin(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		resp.WriteError(w, r, resp.Error("bin index must be a number", http.StatusBadRequest))
		return
	}

	bin, err := h.serv.Bin(index)
	if err != nil {
		resp.WriteError(w, r, resp.Error(err.Error(), http.StatusNotFound))
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToBinResponse(index, bin))
}

func (h *Handler) Outcomes(w http.ResponseWriter, r *http.Request) {
	outcomes := h.serv.Outcomes()
	resp.WriteJSONResponse(w, r, http.StatusOK, dto.OutcomesResponse{
		Count:    len(outcomes),
		Outcomes: converter.ToOutcomes(outcomes),
	})
}
