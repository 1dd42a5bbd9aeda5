package handler

import (
	"net/http"

	"github.com/aidar/turmas/internal/domain"
	"github.com/aidar/turmas/internal/service"
)

// StatsHandler отдает количество игроков по командам
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler создает новый StatsHandler
func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GroupStatsResponse содержит статистику одной группы
type GroupStatsResponse struct {
	Stats *domain.GroupStats `json:"stats"`
}

// GetStats обрабатывает GET /stats: все группы и общие итоги
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.GetStats(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, stats)
}

// GetGroupStats обрабатывает GET /groups/{group}/stats
func (h *StatsHandler) GetGroupStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.GroupStats(r.Context(), urlParam(r, "group"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, GroupStatsResponse{Stats: stats})
}
