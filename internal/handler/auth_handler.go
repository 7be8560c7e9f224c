package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"cyber-bank-auth/internal/model"
	"cyber-bank-auth/internal/service"
	"cyber-bank-auth/pkg/apierror"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register creates a new credential. Success is an empty 201; policy and
// uniqueness violations come back together as an ordered list with a 400.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	violations, err := h.service.Register(r.Context(), payload.Email, payload.Username, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(violations) > 0 {
		writeJSON(w, http.StatusBadRequest, violations)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Login exchanges valid credentials for a signed scoped token. Unknown
// usernames and wrong passwords are both a bare forbidden.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	signed, err := h.service.Login(r.Context(), payload.Username, payload.Password)
	if errors.Is(err, model.ErrInvalidCredentials) {
		writeForbidden(w)
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.LoginResponse{Token: signed})
}
