package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/shoply-app/shoply-backend/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
		writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func decode(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrAccessDenied),
		errors.Is(err, domain.ErrOwnerRemoval):
		return http.StatusForbidden

	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrStoreNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrInviteNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInviteUsed),
		errors.Is(err, domain.ErrInviteRevoked),
		errors.Is(err, domain.ErrActiveInviteExists),
		errors.Is(err, domain.ErrAlreadyMember),
		errors.Is(err, domain.ErrNotTeamMember),
		errors.Is(err, domain.ErrStoreHasApp),
		errors.Is(err, domain.ErrSlugTaken):
		return http.StatusConflict

	case errors.Is(err, domain.ErrInviteExpired):
		return http.StatusGone

	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidTransactionType),
		errors.Is(err, domain.ErrInvalidTransactionStatus):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
