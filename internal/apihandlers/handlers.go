package apihandlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gitmind/internal/store"
)

// APIHandler exposes read-only views over the categorization data.
type APIHandler struct {
	Store store.Store
}

func NewAPIHandler(st store.Store) *APIHandler {
	return &APIHandler{Store: st}
}

// RegisterRoutes wires the v1 API onto the router.
func (h *APIHandler) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		v1.GET("/categories", h.ListCategoriesHandler)
		v1.GET("/categories/:name/commits", h.ListCommitsByCategoryHandler)
		v1.GET("/repositories", h.ListRepositoriesHandler)
		v1.GET("/repositories/:id/summary", h.RepositorySummaryHandler)
	}
	router.GET("/healthz", h.HealthHandler)
}

func (h *APIHandler) ListCategoriesHandler(c *gin.Context) {
	limit, offset, err := parsePagination(c)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	categories, err := h.Store.ListCategories(c.Request.Context(), limit, offset)
	if err != nil {
		Internal(c, fmt.Sprintf("ListCategories failed: %v", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

func (h *APIHandler) ListCommitsByCategoryHandler(c *gin.Context) {
	name := c.Param("name")
	limit, offset, err := parsePagination(c)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	commits, err := h.Store.ListCommitsByCategory(c.Request.Context(), name, limit, offset)
	if err != nil {
		Internal(c, fmt.Sprintf("ListCommitsByCategory(%q) failed: %v", name, err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": commits})
}

func (h *APIHandler) ListRepositoriesHandler(c *gin.Context) {
	repos, err := h.Store.ListRepositories(c.Request.Context())
	if err != nil {
		Internal(c, fmt.Sprintf("ListRepositories failed: %v", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": repos})
}

func (h *APIHandler) RepositorySummaryHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		BadRequest(c, "repository id must be an integer")
		return
	}
	if _, err := h.Store.GetRepository(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, fmt.Sprintf("repository %d not found", id))
			return
		}
		Internal(c, fmt.Sprintf("GetRepository(%d) failed: %v", id, err))
		return
	}
	summary, err := h.Store.GetRepositorySummary(c.Request.Context(), id)
	if err != nil {
		Internal(c, fmt.Sprintf("GetRepositorySummary(%d) failed: %v", id, err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summary})
}

func (h *APIHandler) HealthHandler(c *gin.Context) {
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parsePagination(c *gin.Context) (limit, offset int, err error) {
	limit = 50
	offset = 0
	if v := c.Query("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit <= 0 {
			return 0, 0, fmt.Errorf("limit must be a positive integer")
		}
	}
	if v := c.Query("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("offset must be a non-negative integer")
		}
	}
	return limit, offset, nil
}
