package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kovfs/api/internal/platform/auth"
	"github.com/kovfs/api/internal/services"
)

func newAdminRouter(deps AdminHandlersDeps) http.Handler {
	return NewRouter(WithAdminRoutes(NewAdminHandlers(deps).Register))
}

func TestCreateItemForwardsFields(t *testing.T) {
	catalog := &stubCatalogService{item: services.Item{ID: "1748779200000", Title: "Mouse"}}
	router := newAdminRouter(AdminHandlersDeps{Catalog: catalog})

	payload := strings.NewReader(`{"title":"Mouse","category":"อิเล็กทรอนิกส์","quantity":3,"galleryImages":["a.png","b.png"]}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/items", payload))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if catalog.created.Title != "Mouse" || catalog.created.Category != "อิเล็กทรอนิกส์" || catalog.created.Quantity != 3 {
		t.Errorf("command = %+v", catalog.created)
	}
	if len(catalog.created.GalleryImages) != 2 {
		t.Errorf("galleryImages = %v", catalog.created.GalleryImages)
	}
}

func TestUpdateItemUsesPathID(t *testing.T) {
	catalog := &stubCatalogService{item: services.Item{ID: "99", Title: "Keyboard"}}
	router := newAdminRouter(AdminHandlersDeps{Catalog: catalog})

	payload := strings.NewReader(`{"title":"Keyboard","category":"อิเล็กทรอนิกส์"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/admin/items/99", payload))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if catalog.updated.ID != "99" {
		t.Errorf("id = %q", catalog.updated.ID)
	}
}

func TestToggleAndDeleteItem(t *testing.T) {
	catalog := &stubCatalogService{item: services.Item{ID: "7", IsActive: false}}
	router := newAdminRouter(AdminHandlersDeps{Catalog: catalog})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/items/7/toggle", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle status = %d", rec.Code)
	}
	if catalog.toggled != "7" {
		t.Errorf("toggled = %q", catalog.toggled)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/items/7", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if catalog.deleted != "7" {
		t.Errorf("deleted = %q", catalog.deleted)
	}
}

func TestCreateAnnouncementSanitisesContent(t *testing.T) {
	announcements := &stubAnnouncementService{announcement: services.Announcement{ID: "1"}}
	router := newAdminRouter(AdminHandlersDeps{Announcements: announcements})

	payload := strings.NewReader(`{"title":"ประกาศ","content":"<p>ok</p><script>alert(1)</script>"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/announcements", payload))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(announcements.createdContent, "script") {
		t.Errorf("content not sanitised: %q", announcements.createdContent)
	}
	if !strings.Contains(announcements.createdContent, "<p>ok</p>") {
		t.Errorf("safe markup stripped: %q", announcements.createdContent)
	}
}

func TestRenameCategory(t *testing.T) {
	categories := &stubCategoryService{categories: []string{"หนังสือ", "นิยาย"}}
	router := newAdminRouter(AdminHandlersDeps{Categories: categories})

	payload := strings.NewReader(`{"name":"นิยาย"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/admin/categories/"+"หนังสือ", payload))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if categories.renamedFrom != "หนังสือ" || categories.renamedTo != "นิยาย" {
		t.Errorf("rename = %q -> %q", categories.renamedFrom, categories.renamedTo)
	}
}

func TestAddCategoryConflict(t *testing.T) {
	categories := &stubCategoryService{err: services.ErrCategoryExists}
	router := newAdminRouter(AdminHandlersDeps{Categories: categories})

	payload := strings.NewReader(`{"name":"อาหาร"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/categories", payload))

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d", rec.Code)
	}
	var envelope map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope["error"] != "conflict" {
		t.Errorf("error = %v", envelope["error"])
	}
}

func TestReplaceButtons(t *testing.T) {
	buttons := &stubButtonService{}
	router := newAdminRouter(AdminHandlersDeps{Buttons: buttons})

	payload := strings.NewReader(`{"buttons":[{"id":"b1","label":"Line","url":"https://line.me","icon":"chat"}]}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/admin/buttons", payload))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(buttons.replaced) != 1 || buttons.replaced[0].Label != "Line" {
		t.Errorf("replaced = %+v", buttons.replaced)
	}
}

func TestSaveAdBannerSanitisesContent(t *testing.T) {
	banner := &stubBannerService{}
	router := newAdminRouter(AdminHandlersDeps{Banner: banner})

	payload := strings.NewReader(`{"title":"Sale","content":"<b>now</b><img src=x onerror=alert(1)>","isActive":true}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/admin/ad-banner", payload))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(banner.saved.Content, "onerror") {
		t.Errorf("content not sanitised: %q", banner.saved.Content)
	}
	if !strings.Contains(banner.saved.Content, "<b>now</b>") {
		t.Errorf("safe markup stripped: %q", banner.saved.Content)
	}
}

func TestRemoveAdBanner(t *testing.T) {
	banner := &stubBannerService{}
	router := newAdminRouter(AdminHandlersDeps{Banner: banner})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/ad-banner", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if !banner.removed {
		t.Error("banner not removed")
	}
}

func TestChangePasswordMismatch(t *testing.T) {
	authSvc := &stubAuthService{err: services.ErrPasswordMismatch}
	router := newAdminRouter(AdminHandlersDeps{Auth: authSvc})

	payload := strings.NewReader(`{"currentPassword":"wrong","newPassword":"longenough"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/password", payload))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAdminRoutesRequireSession(t *testing.T) {
	manager, err := auth.NewSessionManager("test-secret", time.Hour, time.Now)
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	router := NewRouter(
		WithAdminRoutes(NewAdminHandlers(AdminHandlersDeps{Catalog: &stubCatalogService{}}).Register),
		WithAdminMiddlewares(auth.RequireAdmin(manager)),
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/items", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous status = %d", rec.Code)
	}

	token, issueErr := manager.Issue("raze")
	if issueErr != nil {
		t.Fatalf("issue: %v", issueErr)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("authenticated status = %d, body %s", rec.Code, rec.Body.String())
	}
}
