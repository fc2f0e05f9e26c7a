package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/KAMASDM/franchise-sub002/pkg/errors"
)

// sessionHeader carries the anonymous browsing session that favorites,
// views, and inquiries are keyed on.
const sessionHeader = "X-Session-ID"

func sessionID(r *http.Request) string {
	if sid := r.Header.Get(sessionHeader); sid != "" {
		return sid
	}
	return r.URL.Query().Get("session_id")
}

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithServiceError maps typed application errors onto HTTP
// status codes. Untyped errors surface as 500 without leaking detail.
func respondWithServiceError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
		case apperrors.ErrorTypeExternal:
			respondWithError(w, http.StatusBadGateway, appErr.Message)
		default:
			respondWithError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}
