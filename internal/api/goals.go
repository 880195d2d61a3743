package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/model"
)

type goalsResponse struct {
	Snapshot     model.PortfolioSnapshot `json:"snapshot"`
	Milestones   []model.Milestone       `json:"milestones"`
	Deliverables []model.Deliverable     `json:"deliverables"`
}

// GetGoals returns the strategic snapshot plus the editable tables.
// GET /api/goals
func (h *Handler) GetGoals(c *gin.Context) {
	c.JSON(http.StatusOK, goalsResponse{
		Snapshot:     h.tracker.Compute(),
		Milestones:   h.tracker.Milestones(),
		Deliverables: h.tracker.Deliverables(),
	})
}

type updateObjectiveRequest struct {
	Target *int `json:"target"`
	Actual *int `json:"actual"`
}

// UpdateObjective edits an objective's target and/or actual. Values are
// clamped to the objective's valid range.
// PATCH /api/goals/objectives/:key
func (h *Handler) UpdateObjective(c *gin.Context) {
	var req updateObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cuerpo de la solicitud inválido"})
		return
	}
	if req.Target == nil && req.Actual == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "se requiere target o actual"})
		return
	}

	key := model.ObjectiveKey(c.Param("key"))

	// Target first so a new actual clamps against the new ceiling.
	if req.Target != nil {
		if err := h.tracker.SetTarget(key, *req.Target); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
	}
	if req.Actual != nil {
		if err := h.tracker.SetActual(key, *req.Actual); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, h.tracker.Compute())
}

// ReplaceMilestones replaces the whole milestone table.
// PUT /api/goals/milestones
func (h *Handler) ReplaceMilestones(c *gin.Context) {
	var rows []model.Milestone
	if err := c.ShouldBindJSON(&rows); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cuerpo de la solicitud inválido"})
		return
	}
	if err := h.tracker.SetMilestones(rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows)})
}

// ReplaceDeliverables replaces the whole deliverables table.
// PUT /api/goals/deliverables
func (h *Handler) ReplaceDeliverables(c *gin.Context) {
	var rows []model.Deliverable
	if err := c.ShouldBindJSON(&rows); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cuerpo de la solicitud inválido"})
		return
	}
	if err := h.tracker.SetDeliverables(rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows)})
}
