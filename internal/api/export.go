package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/aggregate"
	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/exporter"
	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/report"
)

const (
	mimeCSV  = "text/csv; charset=utf-8"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

func attachment(c *gin.Context, name string) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
}

// ExportRecordsCSV downloads the filtered record set as CSV.
// GET /api/export/records.csv
func (h *Handler) ExportRecordsCSV(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records := aggregate.Apply(h.datasets.Records(), f)
	out, err := exporter.RecordsCSV(records)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	attachment(c, "records.csv")
	c.Data(http.StatusOK, mimeCSV, out)
}

// ExportRecordsXLSX downloads the filtered record set as an Excel workbook.
// GET /api/export/records.xlsx
func (h *Handler) ExportRecordsXLSX(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records := aggregate.Apply(h.datasets.Records(), f)
	out, err := exporter.RecordsXLSX(records)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	attachment(c, "records.xlsx")
	c.Data(http.StatusOK, mimeXLSX, out)
}

// ExportWorkloadCSV downloads the per-assignee workload table as CSV.
// GET /api/export/workload.csv
func (h *Handler) ExportWorkloadCSV(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows := h.engine.Workload(h.datasets.Records(), f)
	out, err := exporter.WorkloadCSV(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	attachment(c, "workload.csv")
	c.Data(http.StatusOK, mimeCSV, out)
}

// ExportReportPDF builds and downloads the executive PDF report. The
// operational section is included only when a dataset is loaded.
// GET /api/export/report.pdf
func (h *Handler) ExportReportPDF(c *gin.Context) {
	now := time.Now()

	data := report.Data{
		Snapshot:     h.tracker.Compute(),
		Milestones:   h.tracker.Milestones(),
		Deliverables: h.tracker.Deliverables(),
		Title:        h.cfg.Report.Title,
		Author:       h.cfg.Report.Author,
		Period:       h.cfg.Report.Period,
		GeneratedAt:  now,
	}

	if records := h.datasets.Records(); len(records) > 0 {
		f := parseFilterOrZero(c)
		data.Operational = &report.OperationalData{
			KPIs:       h.engine.Portfolio(records, f),
			Workload:   h.engine.Workload(records, f),
			Categories: h.engine.CategoryCounts(records, f),
		}
	}

	out, err := report.Build(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	attachment(c, report.FileName(now))
	c.Data(http.StatusOK, mimePDF, out)
}
