package parser

import (
	"strings"
	"time"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/model"
)

// dateLayouts are tried in order. Planner exports use the day-first locale
// convention; the ISO layout covers re-imports of our own CSV export.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"2006-01-02",
	"02/01/2006 15:04",
	"2/1/2006 15:04",
	"02/01/06",
}

// ParseDate parses a day-first date value. Unparsable input yields nil —
// a bad cell must never abort the batch.
func ParseDate(raw string) *time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return &t
		}
	}
	return nil
}

// lateTokens are the truthy spellings seen across tenant locales.
var lateTokens = map[string]bool{
	"true": true,
	"yes":  true,
	"si":   true,
	"sí":   true,
	"1":    true,
}

// ParseLate parses the heterogeneous late flag; anything unrecognized is false.
func ParseLate(raw string) bool {
	return lateTokens[strings.ToLower(strings.TrimSpace(raw))]
}

// Normalize turns a raw table into the canonical record set. It resolves
// columns, parses every row (absorbing per-value failures locally) and
// computes the derived fields. The missing-fields list is returned for
// caller-side diagnostics.
//
// The routine is pure given (table, today): callers may cache its result
// keyed on the source file's identity.
func Normalize(table Table, today time.Time) ([]model.TaskRecord, []Field) {
	res := ResolveColumns(table.Headers)
	records := make([]model.TaskRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		records = append(records, normalizeRow(row, res, today))
	}
	return records, res.Missing
}

func normalizeRow(row []string, res Resolution, today time.Time) model.TaskRecord {
	cell := func(f Field) string {
		idx, ok := res.Columns[f]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	rec := model.TaskRecord{
		Name:         cell(FieldName),
		Stage:        cell(FieldStage),
		Progress:     model.ProgressFromString(cell(FieldProgress)),
		Priority:     cell(FieldPriority),
		AssigneesRaw: cell(FieldAssignee),
		LabelsRaw:    cell(FieldLabels),
		CreatedAt:    ParseDate(cell(FieldCreated)),
		StartedAt:    ParseDate(cell(FieldStarted)),
		DueAt:        ParseDate(cell(FieldDue)),
		CompletedAt:  ParseDate(cell(FieldCompleted)),
		IsLate:       ParseLate(cell(FieldLate)),
	}
	if rec.AssigneesRaw == "" {
		rec.AssigneesRaw = model.Unassigned
	}

	// Derived fields, in dependency order.
	if rec.CreatedAt != nil && rec.CompletedAt != nil {
		days := int(rec.CompletedAt.Sub(*rec.CreatedAt).Hours() / 24)
		rec.LeadTimeDays = &days
	}
	if rec.CompletedAt != nil {
		rec.CompletionMonth = rec.CompletedAt.Format("2006-01")
	}
	rec.IsOverdueOpen = rec.DueAt != nil &&
		rec.DueAt.Before(today) &&
		!rec.Progress.IsCompleted()
	rec.Category = Classify(rec.LabelsRaw)

	return rec
}
