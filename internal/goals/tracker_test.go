package goals

import (
	"testing"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/model"
)

func newTracker(t *testing.T) *Tracker {
	t.Helper()

	tr, err := NewTracker(nil)
	if err != nil {
		t.Fatalf("NewTracker failed: %v", err)
	}
	return tr
}

func objByKey(t *testing.T, snap model.PortfolioSnapshot, key model.ObjectiveKey) model.ObjectiveResult {
	t.Helper()

	for _, o := range snap.Objectives {
		if o.Key == key {
			return o
		}
	}
	t.Fatalf("objective %s missing from snapshot", key)
	return model.ObjectiveResult{}
}

func TestComputeDefaultsAllAtRisk(t *testing.T) {
	t.Parallel()

	snap := newTracker(t).Compute()
	if len(snap.Objectives) != 5 {
		t.Fatalf("objectives=%d, want 5", len(snap.Objectives))
	}
	if snap.GlobalPercent != 0 {
		t.Fatalf("globalPercent=%v, want 0", snap.GlobalPercent)
	}
	for _, o := range snap.Objectives {
		if o.Status != model.StatusAtRisk {
			t.Fatalf("%s status=%s, want %s", o.Key, o.Status, model.StatusAtRisk)
		}
	}
}

func TestPercentCompleteClampedAt100(t *testing.T) {
	t.Parallel()

	tr := newTracker(t)
	if err := tr.SetTarget(model.ObjectiveOperationalEfficiency, 20); err != nil {
		t.Fatalf("SetTarget failed: %v", err)
	}
	// 25 > target: the write itself clamps, and percent caps at 100 either way.
	if err := tr.SetActual(model.ObjectiveOperationalEfficiency, 25); err != nil {
		t.Fatalf("SetActual failed: %v", err)
	}

	got := objByKey(t, tr.Compute(), model.ObjectiveOperationalEfficiency)
	if got.PercentComplete != 100.0 {
		t.Fatalf("percentComplete=%v, want 100.0", got.PercentComplete)
	}
	if got.Status != model.StatusOnTarget {
		t.Fatalf("status=%s, want %s", got.Status, model.StatusOnTarget)
	}
}

func TestSetActualClampsNegative(t *testing.T) {
	t.Parallel()

	tr := newTracker(t)
	if err := tr.SetActual(model.ObjectiveDataReliability, -3); err != nil {
		t.Fatalf("SetActual failed: %v", err)
	}
	got := objByKey(t, tr.Compute(), model.ObjectiveDataReliability)
	if got.Actual != 0 || got.PercentComplete != 0 {
		t.Fatalf("actual=%d pct=%v, want 0/0", got.Actual, got.PercentComplete)
	}
}

func TestSecurityObjectiveIsPercentTyped(t *testing.T) {
	t.Parallel()

	tr := newTracker(t)
	// Actual is already a percentage: 60% of an 80% target.
	if err := tr.SetActual(model.ObjectiveInfoSecurity, 60); err != nil {
		t.Fatalf("SetActual failed: %v", err)
	}
	got := objByKey(t, tr.Compute(), model.ObjectiveInfoSecurity)
	if got.PercentComplete != 75.0 {
		t.Fatalf("percentComplete=%v, want 75.0", got.PercentComplete)
	}
	if got.Status != model.StatusTracking {
		t.Fatalf("status=%s, want %s", got.Status, model.StatusTracking)
	}

	// Percent-typed values clamp to 100, not to the target.
	if err := tr.SetActual(model.ObjectiveInfoSecurity, 150); err != nil {
		t.Fatalf("SetActual failed: %v", err)
	}
	got = objByKey(t, tr.Compute(), model.ObjectiveInfoSecurity)
	if got.Actual != 100 {
		t.Fatalf("actual=%d, want 100", got.Actual)
	}
}

func TestShrinkingTargetReclampsActual(t *testing.T) {
	t.Parallel()

	tr := newTracker(t)
	if err := tr.SetActual(model.ObjectiveERPExcellence, 8); err != nil {
		t.Fatalf("SetActual failed: %v", err)
	}
	if err := tr.SetTarget(model.ObjectiveERPExcellence, 4); err != nil {
		t.Fatalf("SetTarget failed: %v", err)
	}
	got := objByKey(t, tr.Compute(), model.ObjectiveERPExcellence)
	if got.Actual != 4 {
		t.Fatalf("actual=%d, want re-clamped to 4", got.Actual)
	}
}

func TestGlobalPercentIsMeanOfFive(t *testing.T) {
	t.Parallel()

	tr := newTracker(t)
	// eo 10/20=50, dc 5/5=100, others 0.
	if err := tr.SetActual(model.ObjectiveOperationalEfficiency, 10); err != nil {
		t.Fatalf("SetActual failed: %v", err)
	}
	if err := tr.SetActual(model.ObjectiveDataReliability, 5); err != nil {
		t.Fatalf("SetActual failed: %v", err)
	}

	snap := tr.Compute()
	if snap.GlobalPercent != 30.0 {
		t.Fatalf("globalPercent=%v, want 30.0", snap.GlobalPercent)
	}
}

func TestUnknownObjectiveRejected(t *testing.T) {
	t.Parallel()

	tr := newTracker(t)
	if err := tr.SetTarget(model.ObjectiveKey("nope"), 1); err == nil {
		t.Fatalf("expected error for unknown objective")
	}
}

func TestMilestoneTableReplaceAll(t *testing.T) {
	t.Parallel()

	tr := newTracker(t)
	if got := len(tr.Milestones()); got != 5 {
		t.Fatalf("default milestones=%d, want 5", got)
	}

	next := []model.Milestone{{Objective: "Integración", Title: "Go live", Date: "2026-10-01", Owner: "Ana"}}
	if err := tr.SetMilestones(next); err != nil {
		t.Fatalf("SetMilestones failed: %v", err)
	}
	got := tr.Milestones()
	if len(got) != 1 || got[0].Title != "Go live" {
		t.Fatalf("milestones=%v, want replaced table", got)
	}

	// Returned slices are copies: mutating them must not leak in.
	got[0].Title = "mutated"
	if tr.Milestones()[0].Title != "Go live" {
		t.Fatalf("tracker state mutated through returned slice")
	}
}
