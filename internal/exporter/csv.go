// Package exporter renders the normalized record set and the workload table
// as downloadable artifacts: UTF-8 delimited text and xlsx.
package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/model"
	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/parser"
)

// recordColumns is the export schema: the canonical fields in resolver order
// plus the derived fields. The header row re-resolves cleanly, so an exported
// file round-trips through the ingestion pipeline.
func recordColumns() []string {
	cols := make([]string, 0, 15)
	for _, f := range parser.Fields() {
		cols = append(cols, string(f))
	}
	return append(cols, "category", "lead_time_days", "completion_month", "overdue_open")
}

func recordRow(rec model.TaskRecord) []string {
	return []string{
		rec.Name,
		rec.Stage,
		rec.Progress.String(),
		rec.Priority,
		rec.AssigneesRaw,
		formatDate(rec.CreatedAt),
		formatDate(rec.StartedAt),
		formatDate(rec.DueAt),
		formatDate(rec.CompletedAt),
		strconv.FormatBool(rec.IsLate),
		rec.LabelsRaw,
		string(rec.Category),
		formatIntPtr(rec.LeadTimeDays),
		rec.CompletionMonth,
		strconv.FormatBool(rec.IsOverdueOpen),
	}
}

// RecordsCSV renders the record set as delimited text, one row per record.
func RecordsCSV(records []model.TaskRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(recordColumns()); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(recordRow(rec)); err != nil {
			return nil, fmt.Errorf("failed to write record %q: %w", rec.Name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var workloadColumns = []string{
	"assignee", "total", "active", "completed", "in_progress", "not_started",
	"late", "overdue_open", "compliance_pct", "avg_lead_time_days",
}

// WorkloadCSV renders the workload table as delimited text.
func WorkloadCSV(rows []model.WorkloadRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(workloadColumns); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Assignee,
			strconv.Itoa(row.Total),
			strconv.Itoa(row.Active),
			strconv.Itoa(row.Completed),
			strconv.Itoa(row.InProgress),
			strconv.Itoa(row.NotStarted),
			strconv.Itoa(row.Late),
			strconv.Itoa(row.OverdueOpen),
			strconv.FormatFloat(row.CompliancePct, 'f', 1, 64),
			formatFloatPtr(row.AvgLeadTimeDays),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write row %q: %w", row.Assignee, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}
