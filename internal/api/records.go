package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/aggregate"
	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/model"
)

type recordsResponse struct {
	Total    int                `json:"total"`
	Filtered int                `json:"filtered"`
	Items    []model.TaskRecord `json:"items"`
}

// ListRecords returns the normalized records of the current dataset,
// optionally filtered.
// GET /api/records
func (h *Handler) ListRecords(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records := h.datasets.Records()
	items := named(aggregate.Apply(records, f))

	c.JSON(http.StatusOK, recordsResponse{
		Total:    len(records),
		Filtered: len(items),
		Items:    items,
	})
}

// named drops records without a task name. Nameless rows stay in the
// dataset and in every aggregate; they are only hidden from the detail feed.
func named(records []model.TaskRecord) []model.TaskRecord {
	out := make([]model.TaskRecord, 0, len(records))
	for _, rec := range records {
		if rec.Name != "" {
			out = append(out, rec)
		}
	}
	return out
}
