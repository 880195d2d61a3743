package model

import "time"

// PortfolioKPIs is the executive rollup over a (possibly filtered) record set.
type PortfolioKPIs struct {
	Total       int `json:"total"`
	Completed   int `json:"completed"`
	InProgress  int `json:"inProgress"`
	NotStarted  int `json:"notStarted"`
	Late        int `json:"late"`
	OverdueOpen int `json:"overdueOpen"`

	PctCompleted  float64 `json:"pctCompleted"`
	PctInProgress float64 `json:"pctInProgress"`
	PctNotStarted float64 `json:"pctNotStarted"`
	PctLate       float64 `json:"pctLate"`

	// Lead time statistics over completed tasks only.
	LeadTimeAvg    *float64 `json:"leadTimeAvg,omitempty"`
	LeadTimeMedian *float64 `json:"leadTimeMedian,omitempty"`

	// MonthlyCompletions is sparse: one entry per month with at least one
	// completion, sorted ascending. Months without completions do not appear.
	MonthlyCompletions []MonthCount `json:"monthlyCompletions"`

	AssignmentRatePct float64 `json:"assignmentRatePct"`
}

// MonthCount is a completions-per-month series point (month is YYYY-MM).
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// CategoryCount is a per-strategic-category record count.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// AreaCount is a per-business-area tag frequency.
type AreaCount struct {
	Area  string `json:"area"`
	Count int    `json:"count"`
}

// WorkloadRow is the per-assignee rollup. A task with N assignees contributes
// to N rows; unassigned tasks contribute to the Unassigned row.
type WorkloadRow struct {
	Assignee        string   `json:"assignee"`
	Total           int      `json:"total"`
	Active          int      `json:"active"`
	Completed       int      `json:"completed"`
	InProgress      int      `json:"inProgress"`
	NotStarted      int      `json:"notStarted"`
	Late            int      `json:"late"`
	OverdueOpen     int      `json:"overdueOpen"`
	CompliancePct   float64  `json:"compliancePct"`
	AvgLeadTimeDays *float64 `json:"avgLeadTimeDays,omitempty"`
}

// Filter is a conjunction of restrictions over the record set. An empty slice
// on any dimension means that dimension is unrestricted.
type Filter struct {
	Assignees   []string   `json:"assignees,omitempty"`
	Categories  []Category `json:"categories,omitempty"`
	Progress    []string   `json:"progress,omitempty"`
	Priorities  []string   `json:"priorities,omitempty"`
	CreatedFrom *time.Time `json:"createdFrom,omitempty"`
	CreatedTo   *time.Time `json:"createdTo,omitempty"`
	LateOnly    bool       `json:"lateOnly,omitempty"`
	OverdueOnly bool       `json:"overdueOnly,omitempty"`
}

// IsZero reports whether the filter restricts nothing.
func (f Filter) IsZero() bool {
	return len(f.Assignees) == 0 && len(f.Categories) == 0 &&
		len(f.Progress) == 0 && len(f.Priorities) == 0 &&
		f.CreatedFrom == nil && f.CreatedTo == nil &&
		!f.LateOnly && !f.OverdueOnly
}
