package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kovfs/api/internal/services"
)

// AuthHandlers serves the admin login endpoint.
type AuthHandlers struct {
	auth services.AuthService
}

// NewAuthHandlers constructs the login handler set.
func NewAuthHandlers(auth services.AuthService) *AuthHandlers {
	return &AuthHandlers{auth: auth}
}

// Register mounts the auth routes.
func (h *AuthHandlers) Register(r chi.Router) {
	r.Post("/login", h.login)
}

func (h *AuthHandlers) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	token, err := h.auth.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": token})
}
