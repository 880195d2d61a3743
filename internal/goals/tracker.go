// Package goals holds the strategic-objectives tracker: the one piece of
// session state that is independent of the imported dataset. All of it lives
// in a single caller-owned structure with one mutation entry point per field;
// switching views or re-running aggregations can never clear it.
package goals

import (
	"fmt"
	"math"
	"sync"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/model"
)

// maxCountTarget is a sanity cap on count-typed targets.
const maxCountTarget = 1000

// Persister stores explicit tracker edits so they survive restarts.
// A nil Persister keeps the tracker purely in-memory.
type Persister interface {
	SaveObjective(key model.ObjectiveKey, target, actual int) error
	LoadObjectives() (map[model.ObjectiveKey][2]int, error)
	ReplaceMilestones([]model.Milestone) error
	LoadMilestones() ([]model.Milestone, error)
	ReplaceDeliverables([]model.Deliverable) error
	LoadDeliverables() ([]model.Deliverable, error)
}

// Tracker is the mutable strategic-goals state: five fixed objectives plus
// the editable milestone and deliverable tables.
type Tracker struct {
	mu           sync.RWMutex
	objectives   map[model.ObjectiveKey]*model.Objective
	milestones   []model.Milestone
	deliverables []model.Deliverable
	persist      Persister
}

// NewTracker seeds the fixed defaults and overlays whatever the persister
// has: edits are durable, defaults fill the gaps.
func NewTracker(p Persister) (*Tracker, error) {
	t := &Tracker{
		objectives:   defaultObjectives(),
		milestones:   DefaultMilestones(),
		deliverables: DefaultDeliverables(),
		persist:      p,
	}
	if p == nil {
		return t, nil
	}

	saved, err := p.LoadObjectives()
	if err != nil {
		return nil, fmt.Errorf("failed to load objectives: %w", err)
	}
	for key, pair := range saved {
		if obj, ok := t.objectives[key]; ok {
			obj.Target = pair[0]
			obj.Actual = pair[1]
		}
	}

	if ms, err := p.LoadMilestones(); err != nil {
		return nil, fmt.Errorf("failed to load milestones: %w", err)
	} else if ms != nil {
		t.milestones = ms
	}
	if ds, err := p.LoadDeliverables(); err != nil {
		return nil, fmt.Errorf("failed to load deliverables: %w", err)
	} else if ds != nil {
		t.deliverables = ds
	}

	return t, nil
}

// SetTarget updates an objective's target, clamping to its valid range.
// Out-of-range input is corrected silently, never rejected. Shrinking the
// target re-clamps the actual of count-typed objectives.
func (t *Tracker) SetTarget(key model.ObjectiveKey, value int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	obj, ok := t.objectives[key]
	if !ok {
		return fmt.Errorf("unknown objective: %s", key)
	}

	if obj.IsPercent {
		obj.Target = clamp(value, 0, 100)
	} else {
		obj.Target = clamp(value, 0, maxCountTarget)
		if obj.Actual > obj.Target {
			obj.Actual = obj.Target
		}
	}
	return t.saveObjective(obj)
}

// SetActual updates an objective's progress value, clamping to its range:
// [0, target] for count-typed objectives, [0, 100] for the percent-typed one.
func (t *Tracker) SetActual(key model.ObjectiveKey, value int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	obj, ok := t.objectives[key]
	if !ok {
		return fmt.Errorf("unknown objective: %s", key)
	}

	if obj.IsPercent {
		obj.Actual = clamp(value, 0, 100)
	} else {
		obj.Actual = clamp(value, 0, obj.Target)
	}
	return t.saveObjective(obj)
}

func (t *Tracker) saveObjective(obj *model.Objective) error {
	if t.persist == nil {
		return nil
	}
	return t.persist.SaveObjective(obj.Key, obj.Target, obj.Actual)
}

// Objectives returns a copy of the objective states in display order.
func (t *Tracker) Objectives() []model.Objective {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]model.Objective, 0, len(t.objectives))
	for _, key := range model.ObjectiveKeys() {
		out = append(out, *t.objectives[key])
	}
	return out
}

// SetMilestones replaces the milestone table wholesale.
func (t *Tracker) SetMilestones(ms []model.Milestone) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.milestones = append([]model.Milestone{}, ms...)
	if t.persist == nil {
		return nil
	}
	return t.persist.ReplaceMilestones(t.milestones)
}

// Milestones returns a copy of the milestone table.
func (t *Tracker) Milestones() []model.Milestone {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]model.Milestone{}, t.milestones...)
}

// SetDeliverables replaces the deliverables table wholesale.
func (t *Tracker) SetDeliverables(ds []model.Deliverable) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.deliverables = append([]model.Deliverable{}, ds...)
	if t.persist == nil {
		return nil
	}
	return t.persist.ReplaceDeliverables(t.deliverables)
}

// Deliverables returns a copy of the deliverables table.
func (t *Tracker) Deliverables() []model.Deliverable {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]model.Deliverable{}, t.deliverables...)
}

// Compute derives the portfolio snapshot from current state. Pure read:
// per-objective percent complete (clamped to 100), traffic light, and the
// blended global percent.
func (t *Tracker) Compute() model.PortfolioSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snap := model.PortfolioSnapshot{
		Objectives: make([]model.ObjectiveResult, 0, len(t.objectives)),
	}

	sum := 0.0
	for _, key := range model.ObjectiveKeys() {
		obj := t.objectives[key]
		pct := percentComplete(obj.Actual, obj.Target)
		sum += pct
		snap.Objectives = append(snap.Objectives, model.ObjectiveResult{
			Objective:       *obj,
			PercentComplete: pct,
			Status:          model.StatusForPercent(pct),
		})
	}
	snap.GlobalPercent = round1(sum / float64(len(snap.Objectives)))
	return snap
}

func percentComplete(actual, target int) float64 {
	if actual < 0 {
		actual = 0
	}
	if target < 1 {
		target = 1
	}
	pct := round1(float64(actual) / float64(target) * 100)
	return math.Min(pct, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
