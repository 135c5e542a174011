package store

import (
	"context"
	"fmt"
	"time"

	"github.com/salmon302/DSATrain-sub001/ent"
	"github.com/salmon302/DSATrain-sub001/ent/pathplan"
	"github.com/salmon302/DSATrain-sub001/internal/planner"
)

// PlanRepo persists plans. A plan is one row with JSON columns, so saves
// and loads are atomic without a surrounding transaction.
type PlanRepo struct {
	client *ent.Client
}

func (s *Store) PlanRepo() *PlanRepo {
	return &PlanRepo{client: s.client}
}

// Save inserts or fully replaces a plan.
func (r *PlanRepo) Save(ctx context.Context, p *planner.PathPlan, now time.Time) error {
	existing, err := r.client.PathPlan.Query().
		Where(pathplan.PlanID(p.ID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.PathPlan.Create().
			SetPlanID(p.ID).
			SetUserID(p.UserID).
			SetGoal(p.Goal).
			SetDurationWeeks(p.DurationWeeks).
			SetHoursPerWeek(p.HoursPerWeek).
			SetStatus(string(p.Status)).
			SetPartial(p.Partial).
			SetPartialReasons(p.PartialReasons).
			SetAssignments(p.Assignments).
			SetMilestones(p.Milestones).
			SetAdaptationLog(p.AdaptationLog).
			SetDifficultyBoost(p.DifficultyBoost).
			SetCreatedAt(p.CreatedAt).
			SetUpdatedAt(now).
			Save(ctx)
	case err == nil:
		_, err = existing.Update().
			SetGoal(p.Goal).
			SetDurationWeeks(p.DurationWeeks).
			SetHoursPerWeek(p.HoursPerWeek).
			SetStatus(string(p.Status)).
			SetPartial(p.Partial).
			SetPartialReasons(p.PartialReasons).
			SetAssignments(p.Assignments).
			SetMilestones(p.Milestones).
			SetAdaptationLog(p.AdaptationLog).
			SetDifficultyBoost(p.DifficultyBoost).
			SetUpdatedAt(now).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save plan %s: %w", p.ID, err)
	}
	return nil
}

// Get loads a plan by ID, or nil when it does not exist.
func (r *PlanRepo) Get(ctx context.Context, planID string) (*planner.PathPlan, error) {
	row, err := r.client.PathPlan.Query().
		Where(pathplan.PlanID(planID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query plan %s: %w", planID, err)
	}
	return planFromRow(row), nil
}

// ActiveForUser returns the user's active plan, or nil when there is none.
func (r *PlanRepo) ActiveForUser(ctx context.Context, userID string) (*planner.PathPlan, error) {
	row, err := r.client.PathPlan.Query().
		Where(pathplan.UserID(userID), pathplan.Status(string(planner.StatusActive))).
		Order(ent.Desc(pathplan.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query active plan for %s: %w", userID, err)
	}
	return planFromRow(row), nil
}

// AllForUser returns every plan the user has, newest first.
func (r *PlanRepo) AllForUser(ctx context.Context, userID string) ([]*planner.PathPlan, error) {
	rows, err := r.client.PathPlan.Query().
		Where(pathplan.UserID(userID)).
		Order(ent.Desc(pathplan.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query plans for %s: %w", userID, err)
	}
	out := make([]*planner.PathPlan, 0, len(rows))
	for _, row := range rows {
		out = append(out, planFromRow(row))
	}
	return out, nil
}

func planFromRow(row *ent.PathPlan) *planner.PathPlan {
	return &planner.PathPlan{
		ID:              row.PlanID,
		UserID:          row.UserID,
		Goal:            row.Goal,
		DurationWeeks:   row.DurationWeeks,
		HoursPerWeek:    row.HoursPerWeek,
		Status:          planner.PlanStatus(row.Status),
		Partial:         row.Partial,
		PartialReasons:  row.PartialReasons,
		Assignments:     row.Assignments,
		Milestones:      row.Milestones,
		AdaptationLog:   row.AdaptationLog,
		DifficultyBoost: row.DifficultyBoost,
		CreatedAt:       row.CreatedAt,
	}
}
