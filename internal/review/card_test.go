package review

import (
	"math"
	"testing"
	"time"
)

var reviewNow = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestApply_EasyOnNewCard(t *testing.T) {
	cfg := DefaultConfig()
	card := NewCard(cfg, "u1", "arrays", reviewNow)

	next := Apply(cfg, card, RatingEasy, reviewNow)
	if !approx(next.IntervalDays, 3.25) {
		t.Errorf("interval = %v, want 3.25 (1 x 2.5 x 1.3)", next.IntervalDays)
	}
	if !approx(next.Ease, 2.65) {
		t.Errorf("ease = %v, want 2.65", next.Ease)
	}

	// Second easy uses the grown ease: 3.25 x 2.65 x 1.3.
	later := reviewNow.AddDate(0, 0, 4)
	next = Apply(cfg, next, RatingEasy, later)
	if !approx(next.IntervalDays, 11.19625) {
		t.Errorf("second interval = %v, want 11.19625", next.IntervalDays)
	}
	if !approx(next.Ease, 2.8) {
		t.Errorf("ease after two easies = %v, want 2.8", next.Ease)
	}
}

func TestApply_Good(t *testing.T) {
	cfg := DefaultConfig()
	card := NewCard(cfg, "u1", "arrays", reviewNow)

	next := Apply(cfg, card, RatingGood, reviewNow)
	if !approx(next.IntervalDays, 2.5) {
		t.Errorf("interval = %v, want 2.5", next.IntervalDays)
	}
	if !approx(next.Ease, 2.5) {
		t.Errorf("good must not change ease, got %v", next.Ease)
	}
	if next.Repetitions != 1 {
		t.Errorf("repetitions = %d, want 1", next.Repetitions)
	}
}

func TestApply_Hard(t *testing.T) {
	cfg := DefaultConfig()
	card := NewCard(cfg, "u1", "arrays", reviewNow)
	card.IntervalDays = 10

	next := Apply(cfg, card, RatingHard, reviewNow)
	if !approx(next.IntervalDays, 12) {
		t.Errorf("interval = %v, want 12 (10 x 1.2)", next.IntervalDays)
	}
	if !approx(next.Ease, 2.35) {
		t.Errorf("ease = %v, want 2.35", next.Ease)
	}
}

func TestApply_AgainResetsInterval(t *testing.T) {
	cfg := DefaultConfig()
	card := NewCard(cfg, "u1", "arrays", reviewNow)
	card.IntervalDays = 20
	card.Repetitions = 4

	next := Apply(cfg, card, RatingAgain, reviewNow)
	if !approx(next.IntervalDays, cfg.InitialIntervalDays) {
		t.Errorf("interval = %v, want reset to %v", next.IntervalDays, cfg.InitialIntervalDays)
	}
	if !approx(next.Ease, 2.3) {
		t.Errorf("ease = %v, want 2.3", next.Ease)
	}
	if next.Repetitions != 0 {
		t.Errorf("repetitions = %d, want 0 after a lapse", next.Repetitions)
	}
	if next.Lapses != 1 {
		t.Errorf("lapses = %d, want 1", next.Lapses)
	}
}

func TestApply_EaseNeverBelowFloor(t *testing.T) {
	cfg := DefaultConfig()
	card := NewCard(cfg, "u1", "arrays", reviewNow)

	for i := 0; i < 20; i++ {
		card = Apply(cfg, card, RatingAgain, reviewNow)
		if card.Ease < cfg.MinEase {
			t.Fatalf("ease %v dropped below floor %v after %d lapses", card.Ease, cfg.MinEase, i+1)
		}
	}
	if !approx(card.Ease, cfg.MinEase) {
		t.Errorf("ease = %v, want pinned at %v", card.Ease, cfg.MinEase)
	}
}

func TestApply_SuccessfulIntervalsStrictlyIncrease(t *testing.T) {
	cfg := DefaultConfig()
	for _, rating := range []Rating{RatingHard, RatingGood, RatingEasy} {
		card := NewCard(cfg, "u1", "arrays", reviewNow)
		prev := card.IntervalDays
		at := reviewNow
		for i := 0; i < 10; i++ {
			card = Apply(cfg, card, rating, at)
			if card.IntervalDays <= prev {
				t.Fatalf("%s: interval %v did not grow past %v at step %d", rating, card.IntervalDays, prev, i)
			}
			prev = card.IntervalDays
			at = card.NextReviewAt
		}
	}
}

func TestApply_SetsNextReviewDate(t *testing.T) {
	cfg := DefaultConfig()
	card := NewCard(cfg, "u1", "arrays", reviewNow)

	next := Apply(cfg, card, RatingGood, reviewNow)
	want := reviewNow.Add(time.Duration(2.5 * 24 * float64(time.Hour)))
	if !next.NextReviewAt.Equal(want) {
		t.Errorf("next review at %v, want %v", next.NextReviewAt, want)
	}
	if !next.LastReviewAt.Equal(reviewNow) {
		t.Errorf("last review at %v, want %v", next.LastReviewAt, reviewNow)
	}
}

func TestNewCard_DueImmediately(t *testing.T) {
	card := NewCard(DefaultConfig(), "u1", "arrays", reviewNow)
	if !card.IsDue(reviewNow) {
		t.Error("fresh card should be due at creation time")
	}
	if card.OverdueDays(reviewNow.Add(-time.Hour)) != 0 {
		t.Error("card before its due date must report 0 overdue days")
	}
}

func TestDueCards_Ordering(t *testing.T) {
	cards := []Card{
		{SkillID: "arrays", NextReviewAt: reviewNow.AddDate(0, 0, -1)},
		{SkillID: "strings", NextReviewAt: reviewNow.AddDate(0, 0, -3)},
		{SkillID: "hashing", NextReviewAt: reviewNow.AddDate(0, 0, -1)},
		{SkillID: "heaps", NextReviewAt: reviewNow.AddDate(0, 0, 2)}, // not due
	}
	importance := func(id string) float64 {
		if id == "hashing" {
			return 2.0
		}
		return 1.0
	}

	due := DueCards(cards, importance, reviewNow)
	if len(due) != 3 {
		t.Fatalf("got %d due cards, want 3", len(due))
	}
	got := []string{due[0].SkillID, due[1].SkillID, due[2].SkillID}
	want := []string{"strings", "hashing", "arrays"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("due order = %v, want %v", got, want)
		}
	}
}

func TestRating_Valid(t *testing.T) {
	for _, r := range []Rating{RatingAgain, RatingHard, RatingGood, RatingEasy} {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if Rating("perfect").Valid() {
		t.Error("unknown rating accepted")
	}
}
