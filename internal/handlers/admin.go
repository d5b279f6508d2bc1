package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"

	"github.com/kovfs/api/internal/services"
)

// AdminHandlers serves the authenticated management surface.
type AdminHandlers struct {
	catalog       services.CatalogService
	announcements services.AnnouncementService
	categories    services.CategoryService
	notes         services.NoteService
	buttons       services.ButtonService
	settings      services.SettingsService
	banner        services.BannerService
	auth          services.AuthService

	htmlPolicy *bluemonday.Policy
}

// AdminHandlersDeps groups constructor parameters for the admin handlers.
type AdminHandlersDeps struct {
	Catalog       services.CatalogService
	Announcements services.AnnouncementService
	Categories    services.CategoryService
	Notes         services.NoteService
	Buttons       services.ButtonService
	Settings      services.SettingsService
	Banner        services.BannerService
	Auth          services.AuthService
}

// NewAdminHandlers constructs the admin handler set.
func NewAdminHandlers(deps AdminHandlersDeps) *AdminHandlers {
	return &AdminHandlers{
		catalog:       deps.Catalog,
		announcements: deps.Announcements,
		categories:    deps.Categories,
		notes:         deps.Notes,
		buttons:       deps.Buttons,
		settings:      deps.Settings,
		banner:        deps.Banner,
		auth:          deps.Auth,
		htmlPolicy:    newRichTextPolicy(),
	}
}

// newRichTextPolicy builds the sanitiser applied to admin-submitted HTML
// before it is stored and later rendered by public clients.
func newRichTextPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("p", "span")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

// Register mounts the admin routes.
func (h *AdminHandlers) Register(r chi.Router) {
	r.Get("/items", h.listItems)
	r.Post("/items", h.createItem)
	r.Put("/items/{itemID}", h.updateItem)
	r.Post("/items/{itemID}/toggle", h.toggleItem)
	r.Delete("/items/{itemID}", h.deleteItem)

	r.Get("/announcements", h.listAnnouncements)
	r.Post("/announcements", h.createAnnouncement)
	r.Post("/announcements/{announcementID}/toggle", h.toggleAnnouncement)
	r.Delete("/announcements/{announcementID}", h.deleteAnnouncement)

	r.Get("/categories", h.listCategories)
	r.Post("/categories", h.addCategory)
	r.Put("/categories/{name}", h.renameCategory)
	r.Delete("/categories/{name}", h.deleteCategory)

	r.Get("/notes", h.listNotes)
	r.Post("/notes", h.createNote)
	r.Put("/notes/{noteID}", h.updateNote)
	r.Delete("/notes/{noteID}", h.deleteNote)

	r.Get("/buttons", h.listButtons)
	r.Post("/buttons", h.addButton)
	r.Put("/buttons", h.replaceButtons)
	r.Delete("/buttons/{buttonID}", h.deleteButton)

	r.Get("/site-settings", h.siteSettings)
	r.Put("/site-settings", h.saveSiteSettings)
	r.Get("/theme-colors", h.themeColors)
	r.Put("/theme-colors", h.saveThemeColors)

	r.Get("/ad-banner", h.adBanner)
	r.Put("/ad-banner", h.saveAdBanner)
	r.Delete("/ad-banner", h.removeAdBanner)

	r.Post("/password", h.changePassword)
}

type itemRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	SubDescription string   `json:"subDescription"`
	ImageURL       string   `json:"imageUrl"`
	GalleryImages  []string `json:"galleryImages"`
	AppIcon        string   `json:"appIcon"`
	Category       string   `json:"category"`
	Quantity       int      `json:"quantity"`
	ContactInfo    string   `json:"contactInfo"`
	Location       string   `json:"location"`
	Publisher      string   `json:"publisher"`
	Version        string   `json:"version"`
	Size           string   `json:"size"`
	Requirements   string   `json:"requirements"`
	UpdatedDate    string   `json:"updatedDate"`
	DownloadCount  string   `json:"downloadCount"`
}

func (h *AdminHandlers) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListAllItems(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *AdminHandlers) createItem(w http.ResponseWriter, r *http.Request) {
	var body itemRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	item, err := h.catalog.CreateItem(r.Context(), services.CreateItemCommand{
		Title:          body.Title,
		Description:    body.Description,
		SubDescription: body.SubDescription,
		ImageURL:       body.ImageURL,
		GalleryImages:  body.GalleryImages,
		AppIcon:        body.AppIcon,
		Category:       body.Category,
		Quantity:       body.Quantity,
		ContactInfo:    body.ContactInfo,
		Location:       body.Location,
		Publisher:      body.Publisher,
		Version:        body.Version,
		Size:           body.Size,
		Requirements:   body.Requirements,
		UpdatedDate:    body.UpdatedDate,
		DownloadCount:  body.DownloadCount,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *AdminHandlers) updateItem(w http.ResponseWriter, r *http.Request) {
	var body itemRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	item, err := h.catalog.UpdateItem(r.Context(), services.UpdateItemCommand{
		ID:             chi.URLParam(r, "itemID"),
		Title:          body.Title,
		Description:    body.Description,
		SubDescription: body.SubDescription,
		ImageURL:       body.ImageURL,
		GalleryImages:  body.GalleryImages,
		AppIcon:        body.AppIcon,
		Category:       body.Category,
		Quantity:       body.Quantity,
		ContactInfo:    body.ContactInfo,
		Location:       body.Location,
		Publisher:      body.Publisher,
		Version:        body.Version,
		Size:           body.Size,
		Requirements:   body.Requirements,
		UpdatedDate:    body.UpdatedDate,
		DownloadCount:  body.DownloadCount,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *AdminHandlers) toggleItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.catalog.ToggleItem(r.Context(), chi.URLParam(r, "itemID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *AdminHandlers) deleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteItem(r.Context(), chi.URLParam(r, "itemID")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandlers) listAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcements.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"announcements": announcements})
}

func (h *AdminHandlers) createAnnouncement(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	announcement, err := h.announcements.Create(r.Context(), body.Title, h.htmlPolicy.Sanitize(body.Content))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, announcement)
}

func (h *AdminHandlers) toggleAnnouncement(w http.ResponseWriter, r *http.Request) {
	announcement, err := h.announcements.Toggle(r.Context(), chi.URLParam(r, "announcementID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, announcement)
}

func (h *AdminHandlers) deleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	if err := h.announcements.Delete(r.Context(), chi.URLParam(r, "announcementID")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandlers) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

func (h *AdminHandlers) addCategory(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	categories, err := h.categories.Add(r.Context(), body.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"categories": categories})
}

func (h *AdminHandlers) renameCategory(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	categories, err := h.categories.Rename(r.Context(), chi.URLParam(r, "name"), body.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

func (h *AdminHandlers) deleteCategory(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.Delete(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

func (h *AdminHandlers) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notes.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"notes": notes})
}

func (h *AdminHandlers) createNote(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Content string `json:"content"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	note, err := h.notes.Create(r.Context(), body.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

func (h *AdminHandlers) updateNote(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Content string `json:"content"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	note, err := h.notes.Update(r.Context(), chi.URLParam(r, "noteID"), body.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (h *AdminHandlers) deleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.notes.Delete(r.Context(), chi.URLParam(r, "noteID")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandlers) listButtons(w http.ResponseWriter, r *http.Request) {
	buttons, err := h.buttons.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"buttons": buttons})
}

func (h *AdminHandlers) addButton(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Label string `json:"label"`
		URL   string `json:"url"`
		Icon  string `json:"icon"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	button, err := h.buttons.Add(r.Context(), body.Label, body.URL, body.Icon)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, button)
}

func (h *AdminHandlers) replaceButtons(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Buttons []services.AdminButton `json:"buttons"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	if err := h.buttons.ReplaceAll(r.Context(), body.Buttons); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"buttons": body.Buttons})
}

func (h *AdminHandlers) deleteButton(w http.ResponseWriter, r *http.Request) {
	if err := h.buttons.Delete(r.Context(), chi.URLParam(r, "buttonID")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandlers) siteSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.SiteSettings(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *AdminHandlers) saveSiteSettings(w http.ResponseWriter, r *http.Request) {
	var body services.SiteSettings
	if !decodeJSON(w, r, &body) {
		return
	}

	settings, err := h.settings.SaveSiteSettings(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *AdminHandlers) themeColors(w http.ResponseWriter, r *http.Request) {
	colors, err := h.settings.ThemeColors(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, colors)
}

func (h *AdminHandlers) saveThemeColors(w http.ResponseWriter, r *http.Request) {
	var body services.ThemeColors
	if !decodeJSON(w, r, &body) {
		return
	}

	colors, err := h.settings.SaveThemeColors(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, colors)
}

func (h *AdminHandlers) adBanner(w http.ResponseWriter, r *http.Request) {
	banner, found, err := h.banner.Current(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, banner)
}

func (h *AdminHandlers) saveAdBanner(w http.ResponseWriter, r *http.Request) {
	var body services.AdBanner
	if !decodeJSON(w, r, &body) {
		return
	}

	body.Content = h.htmlPolicy.Sanitize(body.Content)
	banner, err := h.banner.Save(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, banner)
}

func (h *AdminHandlers) removeAdBanner(w http.ResponseWriter, r *http.Request) {
	if err := h.banner.Remove(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandlers) changePassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	if err := h.auth.ChangePassword(r.Context(), body.CurrentPassword, body.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
