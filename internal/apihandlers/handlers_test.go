package apihandlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitmind/internal/models"
	"gitmind/internal/store"
)

// fakeStore is a minimal store.Store for handler tests; only the methods
// the API reads from are given behavior.
type fakeStore struct {
	categories []*models.Category
	commits    []*models.Commit
	repos      map[int64]*models.Repository
	summary    *models.RepositorySummary
	pingErr    error
	listErr    error
}

func (f *fakeStore) ListCategoryNames(ctx context.Context) ([]string, error) { return nil, nil }
func (f *fakeStore) CreateCategoryIfAbsent(ctx context.Context, name, description string) (bool, error) {
	return false, nil
}
func (f *fakeStore) IncrementCategoryUsage(ctx context.Context, name string) error { return nil }
func (f *fakeStore) ListCategories(ctx context.Context, limit, offset int) ([]*models.Category, error) {
	return f.categories, f.listErr
}
func (f *fakeStore) CreateCommitIfAbsent(ctx context.Context, commit *models.Commit) (bool, error) {
	return false, nil
}
func (f *fakeStore) UpdateCommitCategory(ctx context.Context, repositoryID int64, hash, category string, confidence int, description string) error {
	return nil
}
func (f *fakeStore) ListUncategorizedCommits(ctx context.Context, repositoryID int64, limit int) ([]*models.Commit, error) {
	return nil, nil
}
func (f *fakeStore) ListCommitsByCategory(ctx context.Context, category string, limit, offset int) ([]*models.Commit, error) {
	return f.commits, f.listErr
}
func (f *fakeStore) GetRepositorySummary(ctx context.Context, repositoryID int64) (*models.RepositorySummary, error) {
	return f.summary, nil
}
func (f *fakeStore) GetOrCreateRepository(ctx context.Context, name, path string) (*models.Repository, error) {
	return nil, nil
}
func (f *fakeStore) GetRepositoryByName(ctx context.Context, name string) (*models.Repository, error) {
	return nil, store.ErrNotFound
}
func (f *fakeStore) GetRepository(ctx context.Context, id int64) (*models.Repository, error) {
	if repo, ok := f.repos[id]; ok {
		return repo, nil
	}
	return nil, store.ErrNotFound
}
func (f *fakeStore) ListRepositories(ctx context.Context) ([]*models.Repository, error) {
	return nil, nil
}
func (f *fakeStore) WithTransaction(ctx context.Context, fn func(tx store.Store) error) error {
	return fn(f)
}
func (f *fakeStore) Ping(ctx context.Context) error { return f.pingErr }

var _ store.Store = (*fakeStore)(nil)

func setupRouter(f *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAPIHandler(f).RegisterRoutes(router)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListCategoriesHandler(t *testing.T) {
	router := setupRouter(&fakeStore{
		categories: []*models.Category{
			{ID: 1, Name: "BILLING", UsageCount: 12},
		},
	})

	w := doRequest(t, router, http.MethodGet, "/api/v1/categories")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []*models.Category `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "BILLING", body.Data[0].Name)
}

func TestListCategoriesHandler_BadPagination(t *testing.T) {
	router := setupRouter(&fakeStore{})

	assert.Equal(t, http.StatusBadRequest, doRequest(t, router, http.MethodGet, "/api/v1/categories?limit=-1").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(t, router, http.MethodGet, "/api/v1/categories?offset=abc").Code)
}

func TestListCategoriesHandler_StoreError(t *testing.T) {
	router := setupRouter(&fakeStore{listErr: errors.New("boom")})
	assert.Equal(t, http.StatusInternalServerError, doRequest(t, router, http.MethodGet, "/api/v1/categories").Code)
}

func TestListCommitsByCategoryHandler(t *testing.T) {
	cat := "BILLING"
	router := setupRouter(&fakeStore{
		commits: []*models.Commit{
			{ID: 1, Hash: "abc123", Category: &cat},
		},
	})

	w := doRequest(t, router, http.MethodGet, "/api/v1/categories/BILLING/commits")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "abc123")
}

func TestRepositorySummaryHandler(t *testing.T) {
	router := setupRouter(&fakeStore{
		repos: map[int64]*models.Repository{
			7: {ID: 7, Name: "gitmind"},
		},
		summary: &models.RepositorySummary{RepositoryID: 7, Total: 10, Categorized: 4},
	})

	w := doRequest(t, router, http.MethodGet, "/api/v1/repositories/7/summary")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data models.RepositorySummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(10), body.Data.Total)
	assert.Equal(t, int64(4), body.Data.Categorized)
}

func TestRepositorySummaryHandler_Errors(t *testing.T) {
	router := setupRouter(&fakeStore{})

	assert.Equal(t, http.StatusNotFound, doRequest(t, router, http.MethodGet, "/api/v1/repositories/99/summary").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(t, router, http.MethodGet, "/api/v1/repositories/abc/summary").Code)
}

func TestHealthHandler(t *testing.T) {
	router := setupRouter(&fakeStore{})
	w := doRequest(t, router, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestHealthHandler_Degraded(t *testing.T) {
	router := setupRouter(&fakeStore{pingErr: errors.New("connection refused")})
	w := doRequest(t, router, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "degraded")
}
