package handler

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/aidar/turmas/internal/domain"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail содержит код и описание ошибки
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// HandleError преобразует доменные ошибки в HTTP ответы.
// Сообщение доменной ошибки передается клиенту без изменений.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.MapErrorToCode(err)

	switch code {
	case domain.CodeNotFound:
		RespondWithError(w, r, http.StatusNotFound, string(code), err.Error())
	case domain.CodeUnauthorized:
		RespondWithError(w, r, http.StatusUnauthorized, string(code), "unauthorized")
	case domain.CodeInternal:
		RespondWithError(w, r, http.StatusInternalServerError, string(code), "internal server error")
	default:
		// Остались только доменные ошибки
		message := err.Error()
		if domainErr, ok := domain.AsDomainError(err); ok {
			message = domainErr.Message
		}
		RespondWithError(w, r, codeStatus(code), string(code), message)
	}
}

// codeStatus: конфликты имен - 409, остальное - ошибки валидации
func codeStatus(code domain.ErrorCode) int {
	switch code {
	case domain.CodeGroupExists, domain.CodePlayerExists:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
