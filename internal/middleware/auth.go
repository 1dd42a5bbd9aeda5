package middleware

import (
	"net/http"
	"strings"

	"github.com/aidar/turmas/internal/domain"
	"github.com/aidar/turmas/internal/events"
	"github.com/aidar/turmas/internal/handler"
	"github.com/aidar/turmas/internal/service"
)

// AuthMiddleware создает middleware для валидации JWT токенов
func AuthMiddleware(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Получаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				handler.RespondWithError(w, r, http.StatusUnauthorized, string(domain.CodeUnauthorized), "missing authorization header")
				return
			}

			// Проверяем формат Bearer
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				handler.RespondWithError(w, r, http.StatusUnauthorized, string(domain.CodeUnauthorized), "invalid authorization header format")
				return
			}

			claims, err := authService.ValidateToken(parts[1])
			if err != nil {
				handler.RespondWithError(w, r, http.StatusUnauthorized, string(domain.CodeUnauthorized), "invalid or expired token")
				return
			}

			// ID устройства попадает в публикуемые события
			next.ServeHTTP(w, r.WithContext(events.WithDevice(r.Context(), claims.DeviceID)))
		})
	}
}
