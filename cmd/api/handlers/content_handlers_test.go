package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"trustgate/cmd/api/auth"
	"trustgate/cmd/api/handlers"
	"trustgate/cmd/api/middleware"
	"trustgate/cmd/api/services"
	"trustgate/models"
	"trustgate/repositories"
)

const testAdminPassword = "hunter2"

// newContentTestRouter wires the content routes the way the real router
// does: optional auth on listing, required auth on writes.
func newContentTestRouter(t *testing.T) (*gin.Engine, *auth.AdminGate) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := repositories.NewDocumentRepository(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error creating repository: %v", err)
	}
	svc := services.NewContentService(repo)
	gate := auth.NewAdminGate(testAdminPassword, "secret-for-test", "", time.Hour)

	r := gin.New()
	g := r.Group("/api/blog/posts")
	g.GET("", middleware.TryAdminAuth(gate), handlers.ListDocumentsHandler(svc, models.ClassPost))
	g.GET("/:slug", handlers.GetDocumentHandler(svc, models.ClassPost))
	g.POST("", middleware.AdminAuth(gate), handlers.CreateDocumentHandler(svc, models.ClassPost))
	g.PUT("/:slug", middleware.AdminAuth(gate), handlers.UpdateDocumentHandler(svc, models.ClassPost))
	g.DELETE("/:slug", middleware.AdminAuth(gate), handlers.DeleteDocumentHandler(svc, models.ClassPost))
	r.POST("/api/auth/login", handlers.LoginHandler(gate))

	return r, gate
}

func adminToken(t *testing.T, gate *auth.AdminGate) string {
	t.Helper()
	token, err := gate.Login(testAdminPassword)
	if err != nil {
		t.Fatalf("unexpected login error: %v", err)
	}
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func TestContentLifecycle(t *testing.T) {
	r, gate := newContentTestRouter(t)
	token := adminToken(t, gate)

	// Create a draft; the slug is derived from the title.
	created := doJSON(t, r, http.MethodPost, "/api/blog/posts", token, map[string]any{
		"title":   "Phishing Trends 2025",
		"content": "<p>Body</p>",
		"status":  "draft",
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", created.Code, created.Body.String())
	}
	var doc models.ContentDocument
	if err := json.Unmarshal(created.Body.Bytes(), &doc); err != nil {
		t.Fatalf("failed to decode created document: %v", err)
	}
	if doc.Slug != "phishing-trends-2025" {
		t.Fatalf("expected derived slug, got %q", doc.Slug)
	}
	if doc.PublishedAt != nil {
		t.Fatalf("expected nil publishedAt on a draft")
	}

	// Anonymous listing hides the draft.
	listed := doJSON(t, r, http.MethodGet, "/api/blog/posts", "", nil)
	if listed.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", listed.Code)
	}
	var docs []models.ContentDocument
	if err := json.Unmarshal(listed.Body.Bytes(), &docs); err != nil {
		t.Fatalf("failed to decode listing: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected anonymous listing to hide drafts, got %d items", len(docs))
	}

	// The admin sees it.
	listed = doJSON(t, r, http.MethodGet, "/api/blog/posts", token, nil)
	if err := json.Unmarshal(listed.Body.Bytes(), &docs); err != nil {
		t.Fatalf("failed to decode listing: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected admin listing to include the draft, got %d items", len(docs))
	}

	// Publish it.
	updated := doJSON(t, r, http.MethodPut, "/api/blog/posts/phishing-trends-2025", token, map[string]any{
		"title":   "Phishing Trends 2025",
		"content": "<p>Body</p>",
		"status":  "published",
	})
	if updated.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", updated.Code, updated.Body.String())
	}
	if err := json.Unmarshal(updated.Body.Bytes(), &doc); err != nil {
		t.Fatalf("failed to decode updated document: %v", err)
	}
	if doc.PublishedAt == nil {
		t.Fatalf("expected publishedAt after publishing")
	}

	// Now the public listing carries it.
	listed = doJSON(t, r, http.MethodGet, "/api/blog/posts", "", nil)
	if err := json.Unmarshal(listed.Body.Bytes(), &docs); err != nil {
		t.Fatalf("failed to decode listing: %v", err)
	}
	if len(docs) != 1 || docs[0].Slug != "phishing-trends-2025" {
		t.Fatalf("expected published post in public listing, got %+v", docs)
	}

	// Delete, then the slug is gone.
	deleted := doJSON(t, r, http.MethodDelete, "/api/blog/posts/phishing-trends-2025", token, nil)
	if deleted.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", deleted.Code)
	}
	gone := doJSON(t, r, http.MethodGet, "/api/blog/posts/phishing-trends-2025", "", nil)
	if gone.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", gone.Code)
	}
}

func TestContentWritesRequireAdminToken(t *testing.T) {
	r, _ := newContentTestRouter(t)

	resp := doJSON(t, r, http.MethodPost, "/api/blog/posts", "", map[string]any{"title": "No Auth"})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}

	resp = doJSON(t, r, http.MethodPost, "/api/blog/posts", "not-a-token", map[string]any{"title": "Bad Auth"})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bogus token, got %d", resp.Code)
	}
}

func TestCreateDuplicateSlugReturnsConflict(t *testing.T) {
	r, gate := newContentTestRouter(t)
	token := adminToken(t, gate)

	body := map[string]any{"title": "Same Title"}
	if resp := doJSON(t, r, http.MethodPost, "/api/blog/posts", token, body); resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	resp := doJSON(t, r, http.MethodPost, "/api/blog/posts", token, body)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate slug, got %d: %s", resp.Code, resp.Body.String())
	}

	var errBody map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if errBody["code"] != "slug_conflict" {
		t.Fatalf("expected slug_conflict code, got %q", errBody["code"])
	}
}

func TestCreateRejectsMissingTitle(t *testing.T) {
	r, gate := newContentTestRouter(t)
	token := adminToken(t, gate)

	resp := doJSON(t, r, http.MethodPost, "/api/blog/posts", token, map[string]any{"content": "<p>no title</p>"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing title, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestLoginHandler(t *testing.T) {
	r, _ := newContentTestRouter(t)

	resp := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]any{"password": testAdminPassword})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if body["token"] == "" {
		t.Fatalf("expected a token in the response")
	}

	resp = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]any{"password": "wrong"})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", resp.Code)
	}
}
