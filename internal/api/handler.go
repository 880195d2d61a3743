// Package api exposes the dashboard over HTTP. Handlers are thin: they parse
// the request, delegate to the dataset store, the aggregation engine or the
// goals tracker, and encode the result.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/aggregate"
	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/config"
	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/dataset"
	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/goals"
)

// Handler bundles the API's dependencies.
type Handler struct {
	datasets *dataset.Store
	tracker  *goals.Tracker
	engine   *aggregate.Engine
	cfg      *config.AppConfig
}

// NewHandler creates the API handler.
func NewHandler(datasets *dataset.Store, tracker *goals.Tracker, cfg *config.AppConfig) *Handler {
	return &Handler{
		datasets: datasets,
		tracker:  tracker,
		engine:   aggregate.NewEngine(),
		cfg:      cfg,
	}
}

// RegisterRoutes mounts the API under the given group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	router.POST("/upload", h.Upload)
	router.GET("/records", h.ListRecords)

	router.GET("/aggregates/portfolio", h.GetPortfolio)
	router.GET("/aggregates/workload", h.GetWorkload)
	router.GET("/aggregates/categories", h.GetCategories)
	router.GET("/aggregates/areas", h.GetAreas)

	router.GET("/goals", h.GetGoals)
	router.PATCH("/goals/objectives/:key", h.UpdateObjective)
	router.PUT("/goals/milestones", h.ReplaceMilestones)
	router.PUT("/goals/deliverables", h.ReplaceDeliverables)

	router.GET("/export/records.csv", h.ExportRecordsCSV)
	router.GET("/export/records.xlsx", h.ExportRecordsXLSX)
	router.GET("/export/workload.csv", h.ExportWorkloadCSV)
	router.GET("/export/report.pdf", h.ExportReportPDF)
}
