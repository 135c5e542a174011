package profile

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Config holds the estimator tunables.
type Config struct {
	// Alpha is the learning rate of the exponential mastery update:
	// m' = m + Alpha*(signal - m).
	Alpha float64

	// DecayBase < 1 controls passive forgetting. For a skill idle d days
	// beyond the grace period, mastery is multiplied by DecayBase^(d/GraceDays).
	DecayBase float64

	// GraceDays is the idle period before decay starts.
	GraceDays int

	// TrendEpsilon is the minimum mastery delta considered a real move;
	// smaller changes leave the trend flat.
	TrendEpsilon float64

	// ConfidenceStep is how much each observation raises confidence,
	// capped at 1.
	ConfidenceStep float64
}

// DefaultConfig returns the recommended estimator settings.
func DefaultConfig() Config {
	return Config{
		Alpha:          0.25,
		DecayBase:      0.9,
		GraceDays:      14,
		TrendEpsilon:   0.01,
		ConfidenceStep: 0.1,
	}
}

// Estimator derives and updates per-skill mastery from attempt outcomes.
// It is the only writer of SkillMastery rows.
type Estimator struct {
	cfg   Config
	store Store
}

// NewEstimator creates an estimator over the given profile store.
func NewEstimator(cfg Config, store Store) *Estimator {
	return &Estimator{cfg: cfg, store: store}
}

// Estimate returns the current mastery for (user, skill), or a zero-value
// default (mastery=0, confidence=0) if the skill has never been attempted.
func (e *Estimator) Estimate(ctx context.Context, userID, skillID string) (SkillMastery, error) {
	row, err := e.store.Get(ctx, userID, skillID)
	if err != nil {
		return SkillMastery{}, fmt.Errorf("load mastery %s/%s: %w", userID, skillID, err)
	}
	if row == nil {
		return defaultMastery(userID, skillID), nil
	}
	return *row, nil
}

// EstimateAll returns the user's full mastery map keyed by skill ID.
func (e *Estimator) EstimateAll(ctx context.Context, userID string) (map[string]SkillMastery, error) {
	rows, err := e.store.All(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load masteries for %s: %w", userID, err)
	}
	out := make(map[string]SkillMastery, len(rows))
	for _, r := range rows {
		out[r.SkillID] = *r
	}
	return out, nil
}

// ApplyOutcome folds an outcome signal in [0,1] into the skill's mastery:
// m' = m + Alpha*(signal - m), clamped to [0,1]. It also advances the
// confidence and trend and resets the decay counter.
func (e *Estimator) ApplyOutcome(ctx context.Context, userID, skillID string, signal float64, now time.Time) (SkillMastery, error) {
	sm, err := e.Estimate(ctx, userID, skillID)
	if err != nil {
		return SkillMastery{}, err
	}

	signal = clamp01(signal)
	next := clamp01(sm.Mastery + e.cfg.Alpha*(signal-sm.Mastery))

	delta := next - sm.Mastery
	switch {
	case delta > e.cfg.TrendEpsilon:
		sm.Trend = TrendRising
	case delta < -e.cfg.TrendEpsilon:
		sm.Trend = TrendFalling
	default:
		sm.Trend = TrendFlat
	}

	sm.Mastery = next
	sm.Observations++
	sm.Confidence = clamp01(sm.Confidence + e.cfg.ConfidenceStep)
	sm.LastUpdated = now
	sm.DecayedDays = 0

	if err := e.store.Put(ctx, &sm); err != nil {
		return SkillMastery{}, fmt.Errorf("store mastery %s/%s: %w", userID, skillID, err)
	}
	return sm, nil
}

// Decay applies passive forgetting across all of a user's skills and
// returns the rows that changed. Idle time is measured in whole days, and
// already-decayed days are tracked per row, so running Decay twice in the
// same calendar day is a no-op (safe to re-run after a crash).
func (e *Estimator) Decay(ctx context.Context, userID string, now time.Time) ([]SkillMastery, error) {
	rows, err := e.store.All(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load masteries for decay: %w", err)
	}

	var changed []SkillMastery
	for _, row := range rows {
		sm := *row
		idleDays := int(now.Sub(sm.LastUpdated).Hours() / 24)
		beyondGrace := idleDays - e.cfg.GraceDays
		if beyondGrace <= 0 || beyondGrace <= sm.DecayedDays {
			continue
		}

		newDays := beyondGrace - sm.DecayedDays
		factor := math.Pow(e.cfg.DecayBase, float64(newDays)/float64(e.cfg.GraceDays))
		sm.Mastery = clamp01(sm.Mastery * factor)
		sm.DecayedDays = beyondGrace
		if sm.Mastery < row.Mastery {
			sm.Trend = TrendFalling
		}

		if err := e.store.Put(ctx, &sm); err != nil {
			return changed, fmt.Errorf("store decayed mastery %s/%s: %w", userID, sm.SkillID, err)
		}
		changed = append(changed, sm)
	}
	return changed, nil
}
