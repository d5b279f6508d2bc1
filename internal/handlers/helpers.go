package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/kovfs/api/internal/platform/httpx"
	"github.com/kovfs/api/internal/platform/requestctx"
	"github.com/kovfs/api/internal/repositories"
	"github.com/kovfs/api/internal/services"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// decodeJSON reads and decodes the request body, rejecting unknown garbage
// with a 400 envelope. It returns false when a response has been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, out any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(out); err != nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("invalid_body", "request body is not valid JSON", http.StatusBadRequest))
		return false
	}
	return true
}

// writeServiceError translates service and repository failures into the
// canonical error envelope.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	switch {
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrPasswordMismatch):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_credentials", err.Error(), http.StatusUnauthorized))
		return
	case errors.Is(err, services.ErrCategoryExists):
		httpx.WriteError(ctx, w, httpx.NewError("conflict", err.Error(), http.StatusConflict))
		return
	case errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrAnnouncementNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrNoteNotFound),
		errors.Is(err, services.ErrButtonNotFound),
		errors.Is(err, services.ErrBannerNotFound):
		httpx.WriteError(ctx, w, httpx.NewError("not_found", err.Error(), http.StatusNotFound))
		return
	case errors.Is(err, services.ErrClientRequired), services.IsValidation(err):
		httpx.WriteError(ctx, w, httpx.NewError("validation_error", err.Error(), http.StatusBadRequest))
		return
	}

	var repoErr repositories.RepositoryError
	if errors.As(err, &repoErr) {
		switch {
		case repoErr.IsNotFound():
			httpx.WriteError(ctx, w, httpx.NewError("not_found", "record not found", http.StatusNotFound))
			return
		case repoErr.IsConflict():
			httpx.WriteError(ctx, w, httpx.NewError("conflict", "conflicting update", http.StatusConflict))
			return
		case repoErr.IsUnavailable():
			httpx.WriteError(ctx, w, httpx.NewError("store_unavailable", "backing store is unavailable", http.StatusServiceUnavailable))
			return
		}
	}

	httpx.WriteError(ctx, w, httpx.NewError("internal_server_error", "internal server error", http.StatusInternalServerError))
}

// clientIDFromQuery pulls the caller's device identifier from the query
// string, falling back to the value stashed on the context by clientContext.
func clientIDFromQuery(r *http.Request) string {
	if id := strings.TrimSpace(r.URL.Query().Get("clientId")); id != "" {
		return id
	}
	return requestctx.ClientID(r.Context())
}

// clientContext lifts the X-Client-ID header onto the request context so
// handlers and log fields can reach it without re-parsing the request.
func clientContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := strings.TrimSpace(r.Header.Get("X-Client-ID"))
		if clientID != "" {
			r = r.WithContext(requestctx.WithClientID(r.Context(), clientID))
		}
		next.ServeHTTP(w, r)
	})
}
