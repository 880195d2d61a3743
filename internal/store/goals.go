package store

import (
	"fmt"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/model"
)

// SaveObjective upserts the editable state of one objective.
func (s *Store) SaveObjective(key model.ObjectiveKey, target, actual int) error {
	_, err := s.db.Exec(`
		INSERT INTO objectives (key, target, actual) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET target = ?, actual = ?, updated_at = CURRENT_TIMESTAMP
	`, string(key), target, actual, target, actual)
	if err != nil {
		return fmt.Errorf("failed to save objective %s: %w", key, err)
	}
	return nil
}

// LoadObjectives returns the persisted (target, actual) pairs. Objectives
// never edited are absent from the result.
func (s *Store) LoadObjectives() (map[model.ObjectiveKey][2]int, error) {
	rows, err := s.db.Query("SELECT key, target, actual FROM objectives")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[model.ObjectiveKey][2]int)
	for rows.Next() {
		var key string
		var target, actual int
		if err := rows.Scan(&key, &target, &actual); err != nil {
			return nil, err
		}
		out[model.ObjectiveKey(key)] = [2]int{target, actual}
	}
	return out, rows.Err()
}

// ReplaceMilestones persists the milestone table wholesale, matching the
// replace-all edit semantics of the tracker.
func (s *Store) ReplaceMilestones(milestones []model.Milestone) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM milestones"); err != nil {
		return err
	}
	for i, m := range milestones {
		_, err := tx.Exec(`
			INSERT INTO milestones (position, objective, title, date, owner, progress_pct, comment)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, i, m.Objective, m.Title, m.Date, m.Owner, m.ProgressPct, m.Comment)
		if err != nil {
			return fmt.Errorf("failed to insert milestone %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// LoadMilestones returns the persisted milestone table in edit order.
// (nil, nil) means nothing was ever persisted.
func (s *Store) LoadMilestones() ([]model.Milestone, error) {
	rows, err := s.db.Query(`
		SELECT objective, title, date, owner, progress_pct, comment
		FROM milestones ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Milestone
	for rows.Next() {
		var m model.Milestone
		if err := rows.Scan(&m.Objective, &m.Title, &m.Date, &m.Owner, &m.ProgressPct, &m.Comment); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ReplaceDeliverables persists the deliverables table wholesale.
func (s *Store) ReplaceDeliverables(deliverables []model.Deliverable) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM deliverables"); err != nil {
		return err
	}
	for i, d := range deliverables {
		_, err := tx.Exec(`
			INSERT INTO deliverables (position, objective, title, owner, due_date, priority, status, progress_pct)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, i, d.Objective, d.Title, d.Owner, d.DueDate, d.Priority, d.Status, d.ProgressPct)
		if err != nil {
			return fmt.Errorf("failed to insert deliverable %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// LoadDeliverables returns the persisted deliverables table in edit order.
func (s *Store) LoadDeliverables() ([]model.Deliverable, error) {
	rows, err := s.db.Query(`
		SELECT objective, title, owner, due_date, priority, status, progress_pct
		FROM deliverables ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Deliverable
	for rows.Next() {
		var d model.Deliverable
		if err := rows.Scan(&d.Objective, &d.Title, &d.Owner, &d.DueDate, &d.Priority, &d.Status, &d.ProgressPct); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
