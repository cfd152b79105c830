package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	authdomain "github.com/ishanperera/portfolio-backend/internal/auth/domain"
	authmw "github.com/ishanperera/portfolio-backend/internal/auth/middleware"
	authservice "github.com/ishanperera/portfolio-backend/internal/auth/service"
	"github.com/ishanperera/portfolio-backend/internal/projects/domain"
	"github.com/ishanperera/portfolio-backend/internal/projects/service"
	"github.com/ishanperera/portfolio-backend/internal/projects/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProjectRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := store.NewMemory()
	require.NoError(t, m.Seed(context.Background(), store.SeedProjects()))

	tokens := authservice.NewTokenService("test-secret", time.Hour)
	token, err := tokens.Issue(authdomain.AdminIdentity{ID: "1", Email: "admin@test.local", Name: "Admin"})
	require.NoError(t, err)

	h := New(service.New(m))

	r := gin.New()
	api := r.Group("/api")
	h.RegisterAdmin(api.Group("/admin"), authmw.RequireAuth(tokens))
	h.RegisterPublic(api.Group("/projects"))
	return r, token
}

func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestAdminList_RequiresToken(t *testing.T) {
	r, _ := setupProjectRouter(t)

	rr := doJSON(r, http.MethodGet, "/api/admin/projects", "", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminList_ReturnsFullCollection(t *testing.T) {
	r, token := setupProjectRouter(t)

	rr := doJSON(r, http.MethodGet, "/api/admin/projects", token, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var items []domain.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Len(t, items, 6)
	// Admin view keeps insertion order.
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "6", items[5].ID)
}

func TestAdminCreate(t *testing.T) {
	r, token := setupProjectRouter(t)

	body := `{
		"title": "Chat App",
		"description": "Realtime chat.",
		"image": "https://example.com/chat.png",
		"technologies": "Go, WebSocket , Redis",
		"githubUrl": "https://github.com/yourusername/chat-app",
		"liveUrl": "https://chat.example.com",
		"category": "Backend"
	}`
	rr := doJSON(r, http.MethodPost, "/api/admin/projects", token, body)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp struct {
		Message string         `json:"message"`
		Project domain.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Project created successfully", resp.Message)
	assert.Equal(t, "7", resp.Project.ID)
	// Comma-separated technologies are split and trimmed.
	assert.Equal(t, []string{"Go", "WebSocket", "Redis"}, resp.Project.Technologies)
	assert.False(t, resp.Project.Featured)
}

func TestAdminCreate_MissingFields(t *testing.T) {
	r, token := setupProjectRouter(t)

	rr := doJSON(r, http.MethodPost, "/api/admin/projects", token, `{"title":"Only title"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "All fields are required")
	assert.Contains(t, rr.Body.String(), "description")
}

func TestAdminUpdate_PartialMerge(t *testing.T) {
	r, token := setupProjectRouter(t)

	rr := doJSON(r, http.MethodPut, "/api/admin/projects/2", token, `{"title":"Kanban Board"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Project domain.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Kanban Board", resp.Project.Title)
	assert.Equal(t, "Frontend", resp.Project.Category)
	assert.NotNil(t, resp.Project.UpdatedAt)
}

func TestAdminUpdate_NotFound(t *testing.T) {
	r, token := setupProjectRouter(t)

	rr := doJSON(r, http.MethodPut, "/api/admin/projects/99", token, `{"title":"X"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Project not found")
}

func TestAdminDelete_ReturnsRemovedRecord(t *testing.T) {
	r, token := setupProjectRouter(t)

	rr := doJSON(r, http.MethodDelete, "/api/admin/projects/4", token, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Message string         `json:"message"`
		Project domain.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Project deleted successfully", resp.Message)
	assert.Equal(t, "Weather Dashboard", resp.Project.Title)

	rr = doJSON(r, http.MethodGet, "/api/projects/4", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAdminToggleFeatured(t *testing.T) {
	r, token := setupProjectRouter(t)

	rr := doJSON(r, http.MethodPatch, "/api/admin/projects/3/featured", token, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Project featured successfully")

	rr = doJSON(r, http.MethodPatch, "/api/admin/projects/3/featured", token, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Project unfeatured successfully")
}

func TestAdminStats(t *testing.T) {
	r, token := setupProjectRouter(t)

	rr := doJSON(r, http.MethodGet, "/api/admin/stats", token, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var stats domain.Stats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 6, stats.TotalProjects)
	assert.Equal(t, 3, stats.FeaturedProjects)
	assert.Len(t, stats.RecentProjects, 5)
}

func TestPublicList_QueryFilters(t *testing.T) {
	r, _ := setupProjectRouter(t)

	rr := doJSON(r, http.MethodGet, "/api/projects?category=Frontend", "", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var items []domain.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	assert.Len(t, items, 2)

	rr = doJSON(r, http.MethodGet, "/api/projects?featured=true&limit=2", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	items = nil
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Len(t, items, 2)
	for _, p := range items {
		assert.True(t, p.Featured)
	}
}

func TestPublicGet(t *testing.T) {
	r, _ := setupProjectRouter(t)

	rr := doJSON(r, http.MethodGet, "/api/projects/1", "", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var p domain.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	assert.Equal(t, "E-Commerce Platform", p.Title)
}

func TestPublicCategories(t *testing.T) {
	r, _ := setupProjectRouter(t)

	rr := doJSON(r, http.MethodGet, "/api/projects/meta/categories", "", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var categories []string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &categories))
	assert.ElementsMatch(t, []string{"Full Stack", "Frontend", "Backend"}, categories)
}

func TestPublicStats(t *testing.T) {
	r, _ := setupProjectRouter(t)

	rr := doJSON(r, http.MethodGet, "/api/projects/meta/stats", "", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var stats domain.PublicStats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 3, stats.Featured)
	assert.Greater(t, stats.Technologies, 0)
}
