package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/aidar/turmas/internal/service"
)

// AuthHandler выдает токены устройствам
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler создает новый AuthHandler
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// LoginRequest тело POST /auth/login
type LoginRequest struct {
	DeviceID string `json:"device_id"`
}

// LoginResponse содержит токен и срок его действия в секундах
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// Login обрабатывает POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	deviceID := strings.TrimSpace(req.DeviceID)
	if deviceID == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "device_id is required")
		return
	}

	token, err := h.auth.Login(r.Context(), deviceID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresIn: int64(h.auth.TokenTTL().Seconds()),
	})
}
