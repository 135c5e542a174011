package store

import (
	"context"
	"fmt"

	"github.com/salmon302/DSATrain-sub001/ent"
	"github.com/salmon302/DSATrain-sub001/ent/skillmastery"
	"github.com/salmon302/DSATrain-sub001/internal/profile"
)

// MasteryRepo implements profile.Store on the SkillMastery table.
type MasteryRepo struct {
	client *ent.Client
}

func (s *Store) MasteryRepo() *MasteryRepo {
	return &MasteryRepo{client: s.client}
}

func (r *MasteryRepo) Get(ctx context.Context, userID, skillID string) (*profile.SkillMastery, error) {
	row, err := r.client.SkillMastery.Query().
		Where(skillmastery.UserID(userID), skillmastery.SkillID(skillID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query mastery %s/%s: %w", userID, skillID, err)
	}
	return masteryFromRow(row), nil
}

func (r *MasteryRepo) All(ctx context.Context, userID string) ([]*profile.SkillMastery, error) {
	rows, err := r.client.SkillMastery.Query().
		Where(skillmastery.UserID(userID)).
		Order(ent.Asc(skillmastery.FieldSkillID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query masteries for %s: %w", userID, err)
	}
	out := make([]*profile.SkillMastery, 0, len(rows))
	for _, row := range rows {
		out = append(out, masteryFromRow(row))
	}
	return out, nil
}

func (r *MasteryRepo) Put(ctx context.Context, sm *profile.SkillMastery) error {
	existing, err := r.client.SkillMastery.Query().
		Where(skillmastery.UserID(sm.UserID), skillmastery.SkillID(sm.SkillID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.SkillMastery.Create().
			SetUserID(sm.UserID).
			SetSkillID(sm.SkillID).
			SetMastery(sm.Mastery).
			SetConfidence(sm.Confidence).
			SetTrend(string(sm.Trend)).
			SetObservations(sm.Observations).
			SetDecayedDays(sm.DecayedDays).
			SetLastUpdated(sm.LastUpdated).
			Save(ctx)
	case err == nil:
		_, err = existing.Update().
			SetMastery(sm.Mastery).
			SetConfidence(sm.Confidence).
			SetTrend(string(sm.Trend)).
			SetObservations(sm.Observations).
			SetDecayedDays(sm.DecayedDays).
			SetLastUpdated(sm.LastUpdated).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("store mastery %s/%s: %w", sm.UserID, sm.SkillID, err)
	}
	return nil
}

func masteryFromRow(row *ent.SkillMastery) *profile.SkillMastery {
	return &profile.SkillMastery{
		UserID:       row.UserID,
		SkillID:      row.SkillID,
		Mastery:      row.Mastery,
		Confidence:   row.Confidence,
		Trend:        profile.Trend(row.Trend),
		Observations: row.Observations,
		DecayedDays:  row.DecayedDays,
		LastUpdated:  row.LastUpdated,
	}
}
