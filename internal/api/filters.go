package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/model"
)

// parseFilter builds a record filter from query parameters. Repeatable
// params (assignee, category, progress, priority) AND together across
// dimensions and OR within one.
func parseFilter(c *gin.Context) (model.Filter, error) {
	f := model.Filter{
		Assignees:  c.QueryArray("assignee"),
		Progress:   c.QueryArray("progress"),
		Priorities: c.QueryArray("priority"),
	}

	for _, raw := range c.QueryArray("category") {
		f.Categories = append(f.Categories, model.Category(raw))
	}

	if raw := c.Query("from"); raw != "" {
		ts, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return model.Filter{}, fmt.Errorf("parámetro from inválido: %q", raw)
		}
		f.CreatedFrom = &ts
	}
	if raw := c.Query("to"); raw != "" {
		ts, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return model.Filter{}, fmt.Errorf("parámetro to inválido: %q", raw)
		}
		f.CreatedTo = &ts
	}

	f.LateOnly = c.Query("late") == "1"
	f.OverdueOnly = c.Query("overdue") == "1"

	return f, nil
}

// parseFilterOrZero is parseFilter with malformed date params dropped
// instead of rejected. Used where a partial result beats a failure.
func parseFilterOrZero(c *gin.Context) model.Filter {
	f, err := parseFilter(c)
	if err != nil {
		return model.Filter{}
	}
	return f
}
