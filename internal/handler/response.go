package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"cyber-bank-auth/internal/model"
	"cyber-bank-auth/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, model.APIResponse{Success: true, Data: data})
}

// writeError renders a structured error envelope. Anything that is not an
// explicit API error collapses into a generic server error; the detail only
// goes to the log.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := &model.APIError{
		Code:    "INTERNAL_ERROR",
		Message: "Unexpected server error",
	}

	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.HTTPStatus
		body.Code = apiErr.Code
		body.Message = apiErr.Message
		body.Details = apiErr.Details
	} else {
		slog.Error("request failed", "error", err)
	}

	writeJSON(w, status, model.APIResponse{Success: false, Error: body})
}

// writeForbidden is the single shape every authentication failure takes:
// status only, no body, no hint of which check failed.
func writeForbidden(w http.ResponseWriter) {
	w.WriteHeader(http.StatusForbidden)
}
