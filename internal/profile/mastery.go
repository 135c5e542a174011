package profile

import "time"

// Trend summarizes the recent direction of a skill's mastery.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFlat    Trend = "flat"
	TrendFalling Trend = "falling"
)

// SkillMastery holds the per-user, per-skill proficiency estimate.
// Mastery is always kept in [0,1]; it changes only through
// Estimator.ApplyOutcome and Estimator.Decay.
type SkillMastery struct {
	UserID       string    `json:"user_id"`
	SkillID      string    `json:"skill_id"`
	Mastery      float64   `json:"mastery"`    // [0,1]
	Confidence   float64   `json:"confidence"` // [0,1], grows with observations
	Trend        Trend     `json:"trend"`
	Observations int       `json:"observations"`
	LastUpdated  time.Time `json:"last_updated"` // last attempt, not last decay
	DecayedDays  int       `json:"decayed_days"` // idle days already decayed
}

// defaultMastery is the estimate for a skill the user has never attempted.
func defaultMastery(userID, skillID string) SkillMastery {
	return SkillMastery{
		UserID:  userID,
		SkillID: skillID,
		Trend:   TrendFlat,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
