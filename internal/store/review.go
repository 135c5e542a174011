package store

import (
	"context"
	"fmt"
	"time"

	"github.com/salmon302/DSATrain-sub001/ent"
	"github.com/salmon302/DSATrain-sub001/ent/reviewcard"
	"github.com/salmon302/DSATrain-sub001/internal/review"
)

// ReviewRepo persists spaced repetition cards.
type ReviewRepo struct {
	client *ent.Client
}

func (s *Store) ReviewRepo() *ReviewRepo {
	return &ReviewRepo{client: s.client}
}

// Get loads the card for (user, skill), or nil when none exists yet.
func (r *ReviewRepo) Get(ctx context.Context, userID, skillID string) (*review.Card, error) {
	row, err := r.client.ReviewCard.Query().
		Where(reviewcard.UserID(userID), reviewcard.SkillID(skillID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query review card %s/%s: %w", userID, skillID, err)
	}
	return cardFromRow(row), nil
}

// All returns every card for a user, ordered by next review date.
func (r *ReviewRepo) All(ctx context.Context, userID string) ([]review.Card, error) {
	rows, err := r.client.ReviewCard.Query().
		Where(reviewcard.UserID(userID)).
		Order(ent.Asc(reviewcard.FieldNextReviewAt), ent.Asc(reviewcard.FieldSkillID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review cards for %s: %w", userID, err)
	}
	out := make([]review.Card, 0, len(rows))
	for _, row := range rows {
		out = append(out, *cardFromRow(row))
	}
	return out, nil
}

// Due returns the user's cards due at or before now.
func (r *ReviewRepo) Due(ctx context.Context, userID string, now time.Time) ([]review.Card, error) {
	rows, err := r.client.ReviewCard.Query().
		Where(reviewcard.UserID(userID), reviewcard.NextReviewAtLTE(now)).
		Order(ent.Asc(reviewcard.FieldNextReviewAt), ent.Asc(reviewcard.FieldSkillID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due cards for %s: %w", userID, err)
	}
	out := make([]review.Card, 0, len(rows))
	for _, row := range rows {
		out = append(out, *cardFromRow(row))
	}
	return out, nil
}

// Put inserts or replaces a card.
func (r *ReviewRepo) Put(ctx context.Context, c review.Card) error {
	existing, err := r.client.ReviewCard.Query().
		Where(reviewcard.UserID(c.UserID), reviewcard.SkillID(c.SkillID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.ReviewCard.Create().
			SetUserID(c.UserID).
			SetSkillID(c.SkillID).
			SetIntervalDays(c.IntervalDays).
			SetEase(c.Ease).
			SetRepetitions(c.Repetitions).
			SetLapses(c.Lapses).
			SetLastReviewAt(c.LastReviewAt).
			SetNextReviewAt(c.NextReviewAt).
			Save(ctx)
	case err == nil:
		_, err = existing.Update().
			SetIntervalDays(c.IntervalDays).
			SetEase(c.Ease).
			SetRepetitions(c.Repetitions).
			SetLapses(c.Lapses).
			SetLastReviewAt(c.LastReviewAt).
			SetNextReviewAt(c.NextReviewAt).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("store review card %s/%s: %w", c.UserID, c.SkillID, err)
	}
	return nil
}

func cardFromRow(row *ent.ReviewCard) *review.Card {
	return &review.Card{
		UserID:       row.UserID,
		SkillID:      row.SkillID,
		IntervalDays: row.IntervalDays,
		Ease:         row.Ease,
		Repetitions:  row.Repetitions,
		Lapses:       row.Lapses,
		LastReviewAt: row.LastReviewAt,
		NextReviewAt: row.NextReviewAt,
	}
}
