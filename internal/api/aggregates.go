package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/aggregate"
)

// GetPortfolio computes the portfolio KPI block over the filtered dataset.
// GET /api/aggregates/portfolio
func (h *Handler) GetPortfolio(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.engine.Portfolio(h.datasets.Records(), f))
}

// GetWorkload computes the per-assignee workload table.
// GET /api/aggregates/workload
func (h *Handler) GetWorkload(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.engine.Workload(h.datasets.Records(), f))
}

// GetCategories counts records per strategic category.
// GET /api/aggregates/categories
func (h *Handler) GetCategories(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.engine.CategoryCounts(h.datasets.Records(), f))
}

// GetAreas counts business-area label frequencies.
// GET /api/aggregates/areas
func (h *Handler) GetAreas(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := aggregate.DefaultAreaLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "parámetro limit inválido"})
			return
		}
		limit = n
	}

	c.JSON(http.StatusOK, h.engine.AreaCounts(h.datasets.Records(), f, limit))
}
