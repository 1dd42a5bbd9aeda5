package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aidar/turmas/internal/domain"
	"github.com/aidar/turmas/internal/service"
)

// PlayerHandler обрабатывает эндпоинты состава группы
type PlayerHandler struct {
	playerService *service.PlayerService
}

// NewPlayerHandler создает новый PlayerHandler
func NewPlayerHandler(playerService *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// PlayersResponse содержит список игроков
type PlayersResponse struct {
	Players []domain.Player `json:"players"`
}

// AddPlayerResponse представляет ответ на добавление игрока
type AddPlayerResponse struct {
	Player *domain.Player `json:"player"`
}

// ListPlayers обрабатывает GET /groups/{group}/players?team=...
func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	team := r.URL.Query().Get("team")
	if team == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "team query parameter is required")
		return
	}

	players, err := h.playerService.PlayersByTeam(r.Context(), urlParam(r, "group"), team)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if players == nil {
		players = []domain.Player{}
	}
	RespondWithJSON(w, r, http.StatusOK, PlayersResponse{Players: players})
}

// AddPlayer обрабатывает POST /groups/{group}/players
func (h *PlayerHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var player domain.Player
	if err := json.NewDecoder(r.Body).Decode(&player); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	added, err := h.playerService.AddPlayer(r.Context(), urlParam(r, "group"), player)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, AddPlayerResponse{Player: added})
}

// RemovePlayer обрабатывает DELETE /groups/{group}/players/{player}
func (h *PlayerHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	err := h.playerService.RemovePlayer(r.Context(), urlParam(r, "group"), urlParam(r, "player"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondNoContent(w, r)
}

// ShuffleTeams обрабатывает POST /groups/{group}/shuffle
func (h *PlayerHandler) ShuffleTeams(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.ShuffleTeams(r.Context(), urlParam(r, "group"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if players == nil {
		players = []domain.Player{}
	}
	RespondWithJSON(w, r, http.StatusOK, PlayersResponse{Players: players})
}
