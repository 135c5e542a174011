package review

import "time"

// Rating grades a completed review.
type Rating string

const (
	RatingAgain Rating = "again"
	RatingHard  Rating = "hard"
	RatingGood  Rating = "good"
	RatingEasy  Rating = "easy"
)

// Valid reports whether r is one of the four recognised grades.
func (r Rating) Valid() bool {
	switch r {
	case RatingAgain, RatingHard, RatingGood, RatingEasy:
		return true
	}
	return false
}

// Card holds the spaced repetition state for a single mastered skill.
type Card struct {
	UserID       string    `json:"user_id"`
	SkillID      string    `json:"skill_id"`
	IntervalDays float64   `json:"interval_days"`
	Ease         float64   `json:"ease"`
	Repetitions  int       `json:"repetitions"`
	Lapses       int       `json:"lapses"`
	LastReviewAt time.Time `json:"last_review_at"`
	NextReviewAt time.Time `json:"next_review_at"`
}

// Config carries the scheduling constants. Ease never drops below MinEase,
// so intervals keep growing as long as reviews succeed.
type Config struct {
	InitialIntervalDays float64
	InitialEase         float64
	MinEase             float64
	HardMultiplier      float64
	EasyBonus           float64
	AgainEasePenalty    float64
	HardEasePenalty     float64
	EasyEaseBonus       float64
}

func DefaultConfig() Config {
	return Config{
		InitialIntervalDays: 1,
		InitialEase:         2.5,
		MinEase:             1.3,
		HardMultiplier:      1.2,
		EasyBonus:           1.3,
		AgainEasePenalty:    0.2,
		HardEasePenalty:     0.15,
		EasyEaseBonus:       0.15,
	}
}

// NewCard creates a card due immediately, so the first review happens as
// soon as the skill graduates into the review queue.
func NewCard(cfg Config, userID, skillID string, now time.Time) Card {
	return Card{
		UserID:       userID,
		SkillID:      skillID,
		IntervalDays: cfg.InitialIntervalDays,
		Ease:         cfg.InitialEase,
		LastReviewAt: now,
		NextReviewAt: now,
	}
}

// IsDue returns true once the card's next review date has arrived.
func (c *Card) IsDue(now time.Time) bool {
	return !now.Before(c.NextReviewAt)
}

// OverdueDays returns how many days past due the card is, 0 if not yet due.
func (c *Card) OverdueDays(now time.Time) float64 {
	if now.Before(c.NextReviewAt) {
		return 0
	}
	return now.Sub(c.NextReviewAt).Hours() / 24.0
}

// Apply grades a review and returns the card's next state. The transition
// is pure: the stored card is not mutated.
//
//	again  interval resets, ease drops by AgainEasePenalty
//	hard   interval x HardMultiplier, ease drops by HardEasePenalty
//	good   interval x ease
//	easy   interval x ease x EasyBonus, then ease grows by EasyEaseBonus
func Apply(cfg Config, c Card, rating Rating, now time.Time) Card {
	next := c

	switch rating {
	case RatingAgain:
		next.IntervalDays = cfg.InitialIntervalDays
		next.Ease = c.Ease - cfg.AgainEasePenalty
		next.Repetitions = 0
		next.Lapses = c.Lapses + 1
	case RatingHard:
		next.IntervalDays = c.IntervalDays * cfg.HardMultiplier
		next.Ease = c.Ease - cfg.HardEasePenalty
		next.Repetitions = c.Repetitions + 1
	case RatingGood:
		next.IntervalDays = c.IntervalDays * c.Ease
		next.Repetitions = c.Repetitions + 1
	case RatingEasy:
		next.IntervalDays = c.IntervalDays * c.Ease * cfg.EasyBonus
		next.Ease = c.Ease + cfg.EasyEaseBonus
		next.Repetitions = c.Repetitions + 1
	}

	if next.Ease < cfg.MinEase {
		next.Ease = cfg.MinEase
	}

	next.LastReviewAt = now
	next.NextReviewAt = now.Add(time.Duration(next.IntervalDays * 24 * float64(time.Hour)))
	return next
}
