package handler

import (
	"net/http"

	"medical-appointment-api/internal/usecase"
	"medical-appointment-api/pkg/response"
)

type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
}

func NewStatsHandler(statsUsecase usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{
		statsUsecase: statsUsecase,
	}
}

func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUsecase.GetStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get stats")
		return
	}

	response.Success(w, stats)
}
