package aggregate

import (
	"testing"
	"time"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/model"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func intp(v int) *int { return &v }

func completedTask(name, assignees string, lead int, month string) model.TaskRecord {
	return model.TaskRecord{
		Name:            name,
		Progress:        model.ProgressFromString("completado"),
		AssigneesRaw:    assignees,
		LeadTimeDays:    intp(lead),
		CompletionMonth: month,
		Category:        model.CategoryUnclassified,
	}
}

func openTask(name, assignees string) model.TaskRecord {
	return model.TaskRecord{
		Name:         name,
		Progress:     model.ProgressFromString("en curso"),
		AssigneesRaw: assignees,
		Category:     model.CategoryUnclassified,
	}
}

func TestPortfolioEmptyDataset(t *testing.T) {
	t.Parallel()

	kpis := NewEngine().Portfolio(nil, model.Filter{})
	if kpis.Total != 0 {
		t.Fatalf("total=%d, want 0", kpis.Total)
	}
	if kpis.PctCompleted != 0 || kpis.PctLate != 0 || kpis.AssignmentRatePct != 0 {
		t.Fatalf("percents must be 0 on empty dataset: %+v", kpis)
	}
	if kpis.LeadTimeAvg != nil || kpis.LeadTimeMedian != nil {
		t.Fatalf("lead stats must be nil on empty dataset")
	}
	if len(kpis.MonthlyCompletions) != 0 {
		t.Fatalf("monthly completions=%v, want empty", kpis.MonthlyCompletions)
	}
}

func TestPortfolioCountsAndLeadStats(t *testing.T) {
	t.Parallel()

	records := []model.TaskRecord{
		completedTask("a", "Ana Ruiz", 10, "2026-01"),
		completedTask("b", "Ana Ruiz", 20, "2026-01"),
		completedTask("c", "Beto Paz", 31, "2026-03"),
		completedTask("d", "Beto Paz", 5, "2026-03"),
		openTask("e", ""),
	}
	records[4].IsLate = true

	kpis := NewEngine().Portfolio(records, model.Filter{})
	if kpis.Total != 5 || kpis.Completed != 4 || kpis.InProgress != 1 {
		t.Fatalf("counts wrong: %+v", kpis)
	}
	if kpis.PctCompleted != 80.0 {
		t.Fatalf("pctCompleted=%v, want 80.0", kpis.PctCompleted)
	}
	if kpis.PctLate != 20.0 {
		t.Fatalf("pctLate=%v, want 20.0", kpis.PctLate)
	}
	if kpis.LeadTimeAvg == nil || *kpis.LeadTimeAvg != 16.5 {
		t.Fatalf("leadAvg=%v, want 16.5", kpis.LeadTimeAvg)
	}
	// Even count: median averages the middle pair (10, 20).
	if kpis.LeadTimeMedian == nil || *kpis.LeadTimeMedian != 15.0 {
		t.Fatalf("leadMedian=%v, want 15.0", kpis.LeadTimeMedian)
	}
	if kpis.AssignmentRatePct != 80.0 {
		t.Fatalf("assignmentRate=%v, want 80.0", kpis.AssignmentRatePct)
	}
}

func TestPortfolioMonthlyCompletionsSparseAndSorted(t *testing.T) {
	t.Parallel()

	records := []model.TaskRecord{
		completedTask("a", "x", 1, "2026-03"),
		completedTask("b", "x", 1, "2026-01"),
		completedTask("c", "x", 1, "2026-03"),
	}

	kpis := NewEngine().Portfolio(records, model.Filter{})
	want := []model.MonthCount{{Month: "2026-01", Count: 1}, {Month: "2026-03", Count: 2}}
	if len(kpis.MonthlyCompletions) != len(want) {
		t.Fatalf("months=%v, want %v (no zero-filled gaps)", kpis.MonthlyCompletions, want)
	}
	for i := range want {
		if kpis.MonthlyCompletions[i] != want[i] {
			t.Fatalf("months[%d]=%v, want %v", i, kpis.MonthlyCompletions[i], want[i])
		}
	}
}

func TestWorkloadSharedAssignment(t *testing.T) {
	t.Parallel()

	records := []model.TaskRecord{
		completedTask("a", "Ana Ruiz; Beto Paz", 8, "2026-01"),
		openTask("b", "Ana Ruiz; Beto Paz"),
	}

	rows := NewEngine().Workload(records, model.Filter{})
	if len(rows) != 2 {
		t.Fatalf("rows=%d, want 2", len(rows))
	}
	for _, row := range rows {
		if row.Total != 2 || row.Completed != 1 || row.Active != 1 {
			t.Fatalf("row %s: %+v, want total=2 completed=1 active=1", row.Assignee, row)
		}
		if row.CompliancePct != 50.0 {
			t.Fatalf("row %s compliance=%v, want 50.0", row.Assignee, row.CompliancePct)
		}
	}
}

func TestWorkloadUnassignedRow(t *testing.T) {
	t.Parallel()

	records := []model.TaskRecord{openTask("a", ""), openTask("b", " ; ")}

	rows := NewEngine().Workload(records, model.Filter{})
	if len(rows) != 1 || rows[0].Assignee != model.Unassigned {
		t.Fatalf("rows=%v, want single %q row", rows, model.Unassigned)
	}
	if rows[0].Total != 2 {
		t.Fatalf("unassigned total=%d, want 2", rows[0].Total)
	}
}

func TestWorkloadSortActiveDescNameAsc(t *testing.T) {
	t.Parallel()

	records := []model.TaskRecord{
		openTask("a", "Zoe"),
		openTask("b", "Ana"),
		openTask("c", "Ana"),
		openTask("d", "Mia"),
	}

	rows := NewEngine().Workload(records, model.Filter{})
	got := []string{rows[0].Assignee, rows[1].Assignee, rows[2].Assignee}
	want := []string{"Ana", "Mia", "Zoe"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order=%v, want %v", got, want)
		}
	}
}

func TestWorkloadComplianceBounds(t *testing.T) {
	t.Parallel()

	records := []model.TaskRecord{
		completedTask("a", "Ana", 1, "2026-01"),
		completedTask("b", "Ana", 2, "2026-01"),
		openTask("c", "Beto"),
	}

	for _, row := range NewEngine().Workload(records, model.Filter{}) {
		if row.CompliancePct < 0 || row.CompliancePct > 100 {
			t.Fatalf("compliance out of bounds: %+v", row)
		}
	}
}

func TestApplyEmptySelectionsAreUnrestricted(t *testing.T) {
	t.Parallel()

	records := []model.TaskRecord{openTask("a", "Ana"), completedTask("b", "Beto", 1, "2026-01")}

	got := Apply(records, model.Filter{Assignees: []string{}, Progress: []string{}})
	if len(got) != 2 {
		t.Fatalf("empty selections filtered records: got %d, want 2", len(got))
	}
}

func TestApplyAssigneeMatchesAnyToken(t *testing.T) {
	t.Parallel()

	records := []model.TaskRecord{
		openTask("a", "Ana Ruiz; Beto Paz"),
		openTask("b", "Carla Gil"),
	}

	got := Apply(records, model.Filter{Assignees: []string{"Beto Paz"}})
	if len(got) != 1 || got[0].Name != "a" {
		t.Fatalf("got=%v, want only the shared record", got)
	}
}

func TestApplyDateRangeKeepsNilCreated(t *testing.T) {
	t.Parallel()

	withDate := openTask("dated", "Ana")
	withDate.CreatedAt = date(2025, time.June, 1)
	noDate := openTask("undated", "Ana")

	f := model.Filter{CreatedFrom: date(2026, time.January, 1), CreatedTo: date(2026, time.December, 31)}
	got := Apply([]model.TaskRecord{withDate, noDate}, f)
	if len(got) != 1 || got[0].Name != "undated" {
		t.Fatalf("got=%v, want only the undated record", got)
	}
}

func TestApplyLateAndOverdueFlags(t *testing.T) {
	t.Parallel()

	late := openTask("late", "Ana")
	late.IsLate = true
	overdue := openTask("overdue", "Ana")
	overdue.IsOverdueOpen = true
	plain := openTask("plain", "Ana")

	records := []model.TaskRecord{late, overdue, plain}

	if got := Apply(records, model.Filter{LateOnly: true}); len(got) != 1 || got[0].Name != "late" {
		t.Fatalf("lateOnly got=%v", got)
	}
	if got := Apply(records, model.Filter{OverdueOnly: true}); len(got) != 1 || got[0].Name != "overdue" {
		t.Fatalf("overdueOnly got=%v", got)
	}
}

func TestCategoryCountsOrdering(t *testing.T) {
	t.Parallel()

	records := []model.TaskRecord{
		{Name: "a", Category: model.CategoryIntegration},
		{Name: "b", Category: model.CategoryIntegration},
		{Name: "c", Category: model.CategoryERPExcellence},
	}

	counts := NewEngine().CategoryCounts(records, model.Filter{})
	if len(counts) != 2 {
		t.Fatalf("counts=%v, want 2 entries", counts)
	}
	if counts[0].Category != model.CategoryIntegration || counts[0].Count != 2 {
		t.Fatalf("counts[0]=%v, want Integración x2", counts[0])
	}
}

func TestAreaCountsTopN(t *testing.T) {
	t.Parallel()

	records := []model.TaskRecord{
		{Name: "a", LabelsRaw: "🟦 Proceso interno; Tesorería"},
		{Name: "b", LabelsRaw: "Tesorería"},
		{Name: "c", LabelsRaw: "Compras"},
	}

	areas := NewEngine().AreaCounts(records, model.Filter{}, 2)
	if len(areas) != 2 {
		t.Fatalf("areas=%v, want 2 entries", areas)
	}
	if areas[0].Area != "Tesorería" || areas[0].Count != 2 {
		t.Fatalf("areas[0]=%v, want Tesorería x2", areas[0])
	}
}
