package aggregate

import (
	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/model"
)

// Apply returns the subset of records the filter admits. Records are never
// mutated; the result is a fresh slice.
//
// Semantics: every dimension is a conjunction, an empty multi-select means
// "unrestricted", and a nil creation date always passes the date range —
// incomplete data is included by default, never silently dropped.
func Apply(records []model.TaskRecord, f model.Filter) []model.TaskRecord {
	if f.IsZero() {
		out := make([]model.TaskRecord, len(records))
		copy(out, records)
		return out
	}

	out := make([]model.TaskRecord, 0, len(records))
	for _, rec := range records {
		if admits(rec, f) {
			out = append(out, rec)
		}
	}
	return out
}

func admits(rec model.TaskRecord, f model.Filter) bool {
	if len(f.Assignees) > 0 && !anyAssigneeIn(rec, f.Assignees) {
		return false
	}
	if len(f.Categories) > 0 && !containsCategory(f.Categories, rec.Category) {
		return false
	}
	if len(f.Progress) > 0 && !containsString(f.Progress, rec.Progress.String()) {
		return false
	}
	if len(f.Priorities) > 0 && !containsString(f.Priorities, rec.Priority) {
		return false
	}
	if rec.CreatedAt != nil {
		if f.CreatedFrom != nil && rec.CreatedAt.Before(*f.CreatedFrom) {
			return false
		}
		if f.CreatedTo != nil && rec.CreatedAt.After(*f.CreatedTo) {
			return false
		}
	}
	if f.LateOnly && !rec.IsLate {
		return false
	}
	if f.OverdueOnly && !rec.IsOverdueOpen {
		return false
	}
	return true
}

func anyAssigneeIn(rec model.TaskRecord, selected []string) bool {
	for _, a := range rec.Assignees() {
		if containsString(selected, a) {
			return true
		}
	}
	return false
}

func containsString(items []string, v string) bool {
	for _, it := range items {
		if it == v {
			return true
		}
	}
	return false
}

func containsCategory(items []model.Category, v model.Category) bool {
	for _, it := range items {
		if it == v {
			return true
		}
	}
	return false
}
