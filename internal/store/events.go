package store

import (
	"context"
	"fmt"

	"github.com/salmon302/DSATrain-sub001/ent"
	"github.com/salmon302/DSATrain-sub001/ent/outcomeevent"
	"github.com/salmon302/DSATrain-sub001/internal/adapt"
	"github.com/salmon302/DSATrain-sub001/internal/planner"
)

// EventRepo appends outcome and adaptation events and serves the rolling
// windows the adaptation engine reads. Events are append-only: nothing
// here updates or deletes.
type EventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (s *Store) EventRepo() *EventRepo {
	return &EventRepo{client: s.client, seq: s.seq}
}

// AppendOutcome writes one outcome event with the next global sequence.
func (r *EventRepo) AppendOutcome(ctx context.Context, e adapt.OutcomeEvent) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = r.client.OutcomeEvent.Create().
		SetSequence(seq).
		SetOccurredAt(e.At).
		SetUserID(e.UserID).
		SetSkillID(e.SkillID).
		SetPlanID(e.PlanID).
		SetAssignmentID(e.AssignmentID).
		SetItemID(e.ItemID).
		SetSuccess(e.Success).
		SetTimeSpentMinutes(e.TimeSpentMins).
		SetEstimatedMinutes(e.EstimatedMins).
		SetHintsUsed(e.HintsUsed).
		SetSignal(e.Signal).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append outcome event: %w", err)
	}
	return nil
}

// AppendAdaptation writes one adaptation event with the next global sequence.
func (r *EventRepo) AppendAdaptation(ctx context.Context, userID, planID string, entry planner.AdaptationEntry) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = r.client.AdaptationEvent.Create().
		SetSequence(seq).
		SetOccurredAt(entry.At).
		SetUserID(userID).
		SetPlanID(planID).
		SetSkillID(entry.SkillID).
		SetTrigger(entry.Trigger).
		SetReason(entry.Reason).
		SetInsertedItems(entry.InsertedItems).
		SetSkippedItems(entry.SkippedItems).
		SetDurationWeeks(entry.DurationWeeks).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append adaptation event: %w", err)
	}
	return nil
}

// RecentOutcomes returns the newest outcome records for (user, skill),
// newest first, satisfying adapt.History.
func (r *EventRepo) RecentOutcomes(ctx context.Context, userID, skillID string, limit int) ([]adapt.Record, error) {
	rows, err := r.client.OutcomeEvent.Query().
		Where(outcomeevent.UserID(userID), outcomeevent.SkillID(skillID)).
		Order(ent.Desc(outcomeevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent outcomes %s/%s: %w", userID, skillID, err)
	}
	out := make([]adapt.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, adapt.Record{
			At:            row.OccurredAt,
			Success:       row.Success,
			TimeSpentMins: row.TimeSpentMinutes,
			EstimatedMins: row.EstimatedMinutes,
		})
	}
	return out, nil
}
