package handler

import (
	"errors"
	"net/http"

	"cyber-bank-auth/internal/middleware"
	"cyber-bank-auth/internal/model"
	"cyber-bank-auth/internal/service"
	"cyber-bank-auth/internal/token"
)

type UserHandler struct {
	service *service.AuthService
}

func NewUserHandler(service *service.AuthService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeForbidden(w)
		return
	}

	profile, err := h.service.Profile(r.Context(), claims.Subject)
	if errors.Is(err, model.ErrCredentialNotFound) {
		// Token subject no longer maps to a record. Same opaque outcome as
		// any other auth failure.
		writeForbidden(w)
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, profile)
}

func (h *UserHandler) Session(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeForbidden(w)
		return
	}

	writeSuccess(w, http.StatusOK, model.SessionInfo{
		Subject:   claims.Subject,
		Scopes:    token.Strings(claims.Scopes),
		IssuedAt:  claims.IssuedAt,
		ExpiresAt: claims.ExpiresAt,
	})
}
