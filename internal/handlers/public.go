package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kovfs/api/internal/services"
)

// PublicHandlers serves the read-mostly catalog surface.
type PublicHandlers struct {
	catalog       services.CatalogService
	announcements services.AnnouncementService
	categories    services.CategoryService
	settings      services.SettingsService
	buttons       services.ButtonService
	banner        services.BannerService
	engagement    services.EngagementService
}

// PublicHandlersDeps groups constructor parameters for the public handlers.
type PublicHandlersDeps struct {
	Catalog       services.CatalogService
	Announcements services.AnnouncementService
	Categories    services.CategoryService
	Settings      services.SettingsService
	Buttons       services.ButtonService
	Banner        services.BannerService
	Engagement    services.EngagementService
}

// NewPublicHandlers constructs the public handler set.
func NewPublicHandlers(deps PublicHandlersDeps) *PublicHandlers {
	return &PublicHandlers{
		catalog:       deps.Catalog,
		announcements: deps.Announcements,
		categories:    deps.Categories,
		settings:      deps.Settings,
		buttons:       deps.Buttons,
		banner:        deps.Banner,
		engagement:    deps.Engagement,
	}
}

// Register mounts the public routes.
func (h *PublicHandlers) Register(r chi.Router) {
	r.Use(clientContext)

	r.Get("/items", h.listItems)
	r.Get("/items/{itemID}", h.getItem)
	r.Post("/items/{itemID}/download", h.recordDownload)
	r.Post("/items/{itemID}/rating", h.rateItem)
	r.Get("/announcements", h.listAnnouncements)
	r.Get("/categories", h.listCategories)
	r.Get("/site-settings", h.siteSettings)
	r.Get("/theme-colors", h.themeColors)
	r.Get("/admin-buttons", h.listButtons)
	r.Get("/stats", h.stats)
	r.Get("/ad-banner", h.adBanner)
	r.Post("/ad-banner/dismiss", h.dismissBanner)
}

func (h *PublicHandlers) listItems(w http.ResponseWriter, r *http.Request) {
	filter := services.ItemFilter{
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
	}
	items, err := h.catalog.ListActiveItems(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *PublicHandlers) getItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.catalog.GetItem(r.Context(), chi.URLParam(r, "itemID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *PublicHandlers) recordDownload(w http.ResponseWriter, r *http.Request) {
	count, err := h.engagement.RecordDownload(r.Context(), chi.URLParam(r, "itemID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"downloadCount": count})
}

func (h *PublicHandlers) rateItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ClientID string `json:"clientId"`
		Score    int    `json:"score"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	result, err := h.engagement.RateItem(r.Context(), chi.URLParam(r, "itemID"), body.ClientID, body.Score)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"rating":      result.Rating,
		"ratingCount": result.RatingCount,
	})
}

func (h *PublicHandlers) listAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcements.ListActive(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"announcements": announcements})
}

func (h *PublicHandlers) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

func (h *PublicHandlers) siteSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.SiteSettings(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *PublicHandlers) themeColors(w http.ResponseWriter, r *http.Request) {
	colors, err := h.settings.ThemeColors(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, colors)
}

func (h *PublicHandlers) listButtons(w http.ResponseWriter, r *http.Request) {
	buttons, err := h.buttons.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"buttons": buttons})
}

func (h *PublicHandlers) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.catalog.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *PublicHandlers) adBanner(w http.ResponseWriter, r *http.Request) {
	banner, visible, err := h.banner.BannerFor(r.Context(), clientIDFromQuery(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !visible {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, banner)
}

func (h *PublicHandlers) dismissBanner(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ClientID string `json:"clientId"`
		Minutes  int    `json:"minutes"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	if err := h.banner.Dismiss(r.Context(), body.ClientID, body.Minutes); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
