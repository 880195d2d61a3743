package model

import (
	"encoding/json"
	"strings"
	"time"
)

// Unassigned is the sentinel assignee for records with no usable assignee token.
const Unassigned = "Sin asignar"

// Progress is the normalized pipeline state of a task. The known states form
// a closed set, but tokens outside the synonym table pass through verbatim:
// a Progress with Known()==false carries the trimmed original string. This is
// intentional — Planner tenants can configure extra states and the pipeline
// must not swallow them.
type Progress struct {
	value string
	known bool
}

var (
	ProgressNotStarted = Progress{value: "No iniciado", known: true}
	ProgressInProgress = Progress{value: "En curso", known: true}
	ProgressCompleted  = Progress{value: "Completado", known: true}
)

// progressSynonyms maps lowered/trimmed raw tokens onto canonical states.
var progressSynonyms = map[string]Progress{
	"completado":  ProgressCompleted,
	"completed":   ProgressCompleted,
	"en curso":    ProgressInProgress,
	"in progress": ProgressInProgress,
	"no iniciado": ProgressNotStarted,
	"not started": ProgressNotStarted,
}

// ProgressFromString normalizes a raw progress value. Empty input maps to
// NotStarted; unrecognized tokens pass through as an open state.
func ProgressFromString(raw string) Progress {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ProgressNotStarted
	}
	if p, ok := progressSynonyms[strings.ToLower(trimmed)]; ok {
		return p
	}
	return Progress{value: trimmed}
}

// String returns the canonical display value.
func (p Progress) String() string {
	if p.value == "" {
		return ProgressNotStarted.value
	}
	return p.value
}

// Known reports whether the state belongs to the closed set.
func (p Progress) Known() bool {
	return p.known
}

// IsCompleted reports whether the task is done.
func (p Progress) IsCompleted() bool {
	return p == ProgressCompleted
}

// MarshalJSON serializes the display value.
func (p Progress) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON re-normalizes through the synonym table.
func (p *Progress) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = ProgressFromString(s)
	return nil
}

// Category is a strategic objective tag derived from free-text labels.
type Category string

const (
	CategoryERPExcellence         Category = "Excelencia ERP"
	CategoryOperationalEfficiency Category = "Eficiencia Operativa"
	CategoryInfoSecurity          Category = "Seguridad de la Información"
	CategoryDataReliability       Category = "Datos Confiables"
	CategoryIntegration           Category = "Integración"
	CategoryUnclassified          Category = "Sin clasificar"
)

// Categories lists the taxonomy in classification priority order.
// The order is a documented business rule, not an iteration artifact: when a
// label matches more than one pattern the earliest category wins.
func Categories() []Category {
	return []Category{
		CategoryERPExcellence,
		CategoryOperationalEfficiency,
		CategoryInfoSecurity,
		CategoryDataReliability,
		CategoryIntegration,
	}
}

// TaskRecord is one normalized row of the imported Planner export.
// Records are immutable once normalized; filtering produces new subsets.
type TaskRecord struct {
	Name         string     `json:"name"`
	Stage        string     `json:"stage"`
	Progress     Progress   `json:"progress"`
	Priority     string     `json:"priority,omitempty"`
	AssigneesRaw string     `json:"assignees"`
	LabelsRaw    string     `json:"labels"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	StartedAt    *time.Time `json:"startedAt,omitempty"`
	DueAt        *time.Time `json:"dueAt,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	IsLate       bool       `json:"isLate"`

	// Derived fields, computed once during normalization.
	Category        Category `json:"category"`
	LeadTimeDays    *int     `json:"leadTimeDays,omitempty"`
	CompletionMonth string   `json:"completionMonth,omitempty"` // YYYY-MM
	IsOverdueOpen   bool     `json:"isOverdueOpen"`
}

// Assignees expands the raw semicolon-delimited assignee list. A record with
// no usable tokens yields exactly the Unassigned sentinel.
func (r TaskRecord) Assignees() []string {
	out := make([]string, 0, 2)
	for _, part := range strings.Split(r.AssigneesRaw, ";") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{Unassigned}
	}
	return out
}

// IsAssigned reports whether the record has at least one real assignee.
func (r TaskRecord) IsAssigned() bool {
	a := r.Assignees()
	return len(a) > 1 || a[0] != Unassigned
}
