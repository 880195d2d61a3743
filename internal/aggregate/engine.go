package aggregate

import (
	"math"
	"sort"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/model"
	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/parser"
)

// DefaultAreaLimit caps the business-area frequency table.
const DefaultAreaLimit = 15

// Engine computes portfolio aggregates from a normalized record set. It holds
// no state: every call recomputes from scratch, so the caller may cache
// results keyed on (filter, record-set hash) if it needs to.
type Engine struct{}

// NewEngine creates the aggregation engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Portfolio computes the executive KPIs over the filtered record set.
func (e *Engine) Portfolio(records []model.TaskRecord, f model.Filter) model.PortfolioKPIs {
	subset := Apply(records, f)

	kpis := model.PortfolioKPIs{
		MonthlyCompletions: []model.MonthCount{},
	}
	kpis.Total = len(subset)

	var leadTimes []float64
	months := make(map[string]int)
	assigned := 0

	for _, rec := range subset {
		switch {
		case rec.Progress.IsCompleted():
			kpis.Completed++
		case rec.Progress == model.ProgressInProgress:
			kpis.InProgress++
		case rec.Progress == model.ProgressNotStarted:
			kpis.NotStarted++
		}
		if rec.IsLate {
			kpis.Late++
		}
		if rec.IsOverdueOpen {
			kpis.OverdueOpen++
		}
		if rec.Progress.IsCompleted() && rec.LeadTimeDays != nil {
			leadTimes = append(leadTimes, float64(*rec.LeadTimeDays))
		}
		if rec.Progress.IsCompleted() && rec.CompletionMonth != "" {
			months[rec.CompletionMonth]++
		}
		if rec.IsAssigned() {
			assigned++
		}
	}

	if kpis.Total > 0 {
		kpis.PctCompleted = pct(kpis.Completed, kpis.Total)
		kpis.PctInProgress = pct(kpis.InProgress, kpis.Total)
		kpis.PctNotStarted = pct(kpis.NotStarted, kpis.Total)
		kpis.PctLate = pct(kpis.Late, kpis.Total)
		kpis.AssignmentRatePct = pct(assigned, kpis.Total)
	}

	if len(leadTimes) > 0 {
		avg := round1(mean(leadTimes))
		med := round1(median(leadTimes))
		kpis.LeadTimeAvg = &avg
		kpis.LeadTimeMedian = &med
	}

	for m, n := range months {
		kpis.MonthlyCompletions = append(kpis.MonthlyCompletions, model.MonthCount{Month: m, Count: n})
	}
	sort.Slice(kpis.MonthlyCompletions, func(i, j int) bool {
		return kpis.MonthlyCompletions[i].Month < kpis.MonthlyCompletions[j].Month
	})

	return kpis
}

// assignment is the one-to-many join of (task, person): a record with N
// semicolon-separated assignees produces N assignments. All per-assignee
// aggregates are built from this join, never from ad hoc splitting.
type assignment struct {
	Assignee string
	Record   model.TaskRecord
}

func expandAssignments(records []model.TaskRecord) []assignment {
	out := make([]assignment, 0, len(records))
	for _, rec := range records {
		for _, person := range rec.Assignees() {
			out = append(out, assignment{Assignee: person, Record: rec})
		}
	}
	return out
}

// Workload computes the per-assignee rollup, sorted by active count
// descending with assignee name ascending as the deterministic tie-break.
func (e *Engine) Workload(records []model.TaskRecord, f model.Filter) []model.WorkloadRow {
	subset := Apply(records, f)

	byAssignee := make(map[string]*model.WorkloadRow)
	leadTotals := make(map[string]float64)
	leadCounts := make(map[string]int)

	for _, a := range expandAssignments(subset) {
		row, ok := byAssignee[a.Assignee]
		if !ok {
			row = &model.WorkloadRow{Assignee: a.Assignee}
			byAssignee[a.Assignee] = row
		}

		row.Total++
		rec := a.Record
		switch {
		case rec.Progress.IsCompleted():
			row.Completed++
		case rec.Progress == model.ProgressInProgress:
			row.InProgress++
		case rec.Progress == model.ProgressNotStarted:
			row.NotStarted++
		}
		if rec.IsLate {
			row.Late++
		}
		if rec.IsOverdueOpen {
			row.OverdueOpen++
		}
		if rec.Progress.IsCompleted() && rec.LeadTimeDays != nil {
			leadTotals[a.Assignee] += float64(*rec.LeadTimeDays)
			leadCounts[a.Assignee]++
		}
	}

	rows := make([]model.WorkloadRow, 0, len(byAssignee))
	for name, row := range byAssignee {
		row.Active = row.Total - row.Completed
		if row.Total > 0 {
			row.CompliancePct = pct(row.Completed, row.Total)
		}
		if n := leadCounts[name]; n > 0 {
			avg := round1(leadTotals[name] / float64(n))
			row.AvgLeadTimeDays = &avg
		}
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Active != rows[j].Active {
			return rows[i].Active > rows[j].Active
		}
		return rows[i].Assignee < rows[j].Assignee
	})
	return rows
}

// CategoryCounts tallies records per strategic category, descending by count
// with the taxonomy order as tie-break. Categories without records are
// omitted.
func (e *Engine) CategoryCounts(records []model.TaskRecord, f model.Filter) []model.CategoryCount {
	subset := Apply(records, f)

	counts := make(map[model.Category]int)
	for _, rec := range subset {
		counts[rec.Category]++
	}

	ordered := append(model.Categories(), model.CategoryUnclassified)
	out := make([]model.CategoryCount, 0, len(counts))
	for _, cat := range ordered {
		if n := counts[cat]; n > 0 {
			out = append(out, model.CategoryCount{Category: cat, Count: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// AreaCounts builds the business-area frequency table from the label field,
// surfacing only the limit most frequent tags (DefaultAreaLimit when <= 0).
func (e *Engine) AreaCounts(records []model.TaskRecord, f model.Filter, limit int) []model.AreaCount {
	if limit <= 0 {
		limit = DefaultAreaLimit
	}
	subset := Apply(records, f)

	counts := make(map[string]int)
	for _, rec := range subset {
		for _, area := range parser.ExtractBusinessAreas(rec.LabelsRaw) {
			counts[area]++
		}
	}

	out := make([]model.AreaCount, 0, len(counts))
	for area, n := range counts {
		out = append(out, model.AreaCount{Area: area, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Area < out[j].Area
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func pct(part, total int) float64 {
	return round1(float64(part) / float64(total) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func median(vals []float64) float64 {
	sorted := append([]float64{}, vals...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
