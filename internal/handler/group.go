package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aidar/turmas/internal/domain"
	"github.com/aidar/turmas/internal/service"
)

// GroupHandler обрабатывает эндпоинты групп
type GroupHandler struct {
	groupService *service.GroupService
}

// NewGroupHandler создает новый GroupHandler
func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
	}
}

// CreateGroupRequest представляет тело запроса на создание группы
type CreateGroupRequest struct {
	Name string `json:"name"`
}

// CreateGroupResponse представляет ответ на создание группы
type CreateGroupResponse struct {
	Group *domain.Group `json:"group"`
}

// ListGroupsResponse содержит имена групп в порядке создания
type ListGroupsResponse struct {
	Groups []string `json:"groups"`
}

// ListGroups обрабатывает GET /groups
func (h *GroupHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	names, err := h.groupService.GroupNames(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, ListGroupsResponse{Groups: names})
}

// CreateGroup обрабатывает POST /groups
func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	// Валидация имени выполняется в сервисе, чтобы клиент получил доменную ошибку
	group, err := h.groupService.CreateGroup(r.Context(), req.Name)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, CreateGroupResponse{Group: group})
}

// RemoveGroup обрабатывает DELETE /groups/{group}
func (h *GroupHandler) RemoveGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.groupService.RemoveGroup(r.Context(), urlParam(r, "group")); err != nil {
		HandleError(w, r, err)
		return
	}

	RespondNoContent(w, r)
}
