package store

import (
	"context"
	"testing"
	"time"

	"github.com/salmon302/DSATrain-sub001/internal/adapt"
	"github.com/salmon302/DSATrain-sub001/internal/catalog"
	"github.com/salmon302/DSATrain-sub001/internal/planner"
	"github.com/salmon302/DSATrain-sub001/internal/profile"
	"github.com/salmon302/DSATrain-sub001/internal/review"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMasteryRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	got, err := repo.Get(ctx, "u1", "arrays")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for an unseen skill")
	}

	now := time.Now().UTC().Truncate(time.Second)
	sm := &profile.SkillMastery{
		UserID: "u1", SkillID: "arrays",
		Mastery: 0.4, Confidence: 0.3, Trend: profile.TrendRising,
		Observations: 2, DecayedDays: 0, LastUpdated: now,
	}
	if err := repo.Put(ctx, sm); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err = repo.Get(ctx, "u1", "arrays")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Mastery != 0.4 || got.Trend != profile.TrendRising || got.Observations != 2 {
		t.Errorf("round trip = %+v", got)
	}

	// Second put replaces, not duplicates.
	sm.Mastery = 0.55
	if err := repo.Put(ctx, sm); err != nil {
		t.Fatalf("put (update): %v", err)
	}
	all, err := repo.All(ctx, "u1")
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 || all[0].Mastery != 0.55 {
		t.Errorf("all = %+v", all)
	}
}

func TestMasteryRepo_AllOrderedBySkill(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()
	now := time.Now().UTC()

	for _, id := range []string{"strings", "arrays", "hashing"} {
		err := repo.Put(ctx, &profile.SkillMastery{
			UserID: "u1", SkillID: id, Mastery: 0.1, Trend: profile.TrendFlat, LastUpdated: now,
		})
		if err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}

	all, err := repo.All(ctx, "u1")
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	want := []string{"arrays", "hashing", "strings"}
	for i, sm := range all {
		if sm.SkillID != want[i] {
			t.Errorf("all[%d] = %s, want %s", i, sm.SkillID, want[i])
		}
	}
}

func TestPlanRepo_SaveGetAndActive(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	plan := &planner.PathPlan{
		ID:            "p1",
		UserID:        "u1",
		Goal:          planner.Goal{TargetSkills: []string{"arrays"}, TargetLevel: 0.8},
		DurationWeeks: 4,
		HoursPerWeek:  5,
		Status:        planner.StatusActive,
		Assignments: []planner.Assignment{
			{ID: "a1", ItemID: "i1", SkillID: "arrays", WeekIndex: 0, Position: 0,
				Status: planner.AssignmentPending, EstimatedMins: 30, Difficulty: 2},
		},
		Milestones: []planner.Milestone{
			{ID: "m1", PlanID: "p1", FromWeek: 0, WeekIndex: 3,
				CoveredSkills: []string{"arrays"}, MasteryThreshold: 0.6,
				MinCompleted: 3, Status: planner.MilestoneAvailable},
		},
		CreatedAt: now,
	}
	if err := repo.Save(ctx, plan, now); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.UserID != "u1" || len(got.Assignments) != 1 || len(got.Milestones) != 1 {
		t.Fatalf("round trip = %+v", got)
	}
	if got.Assignments[0].ItemID != "i1" || got.Milestones[0].Status != planner.MilestoneAvailable {
		t.Errorf("JSON columns lost data: %+v", got)
	}

	active, err := repo.ActiveForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if active == nil || active.ID != "p1" {
		t.Fatalf("active = %+v", active)
	}

	// Abandoning removes it from the active lookup.
	got.Status = planner.StatusAbandoned
	if err := repo.Save(ctx, got, now.Add(time.Minute)); err != nil {
		t.Fatalf("save (update): %v", err)
	}
	active, err = repo.ActiveForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("active after abandon: %v", err)
	}
	if active != nil {
		t.Errorf("expected no active plan, got %s", active.ID)
	}
}

func TestReviewRepo_DueFiltering(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	cfg := review.DefaultConfig()
	due := review.NewCard(cfg, "u1", "arrays", now.AddDate(0, 0, -2))
	notDue := review.NewCard(cfg, "u1", "strings", now)
	notDue.NextReviewAt = now.AddDate(0, 0, 3)

	for _, c := range []review.Card{due, notDue} {
		if err := repo.Put(ctx, c); err != nil {
			t.Fatalf("put %s: %v", c.SkillID, err)
		}
	}

	cards, err := repo.Due(ctx, "u1", now)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if len(cards) != 1 || cards[0].SkillID != "arrays" {
		t.Errorf("due cards = %+v", cards)
	}
}

func TestEventRepo_AppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	for i := 0; i < 4; i++ {
		err := repo.AppendOutcome(ctx, adapt.OutcomeEvent{
			UserID: "u1", SkillID: "arrays", PlanID: "p1",
			AssignmentID: "a1", ItemID: "i1",
			Success:       i%2 == 0,
			TimeSpentMins: 20 + i,
			EstimatedMins: 30,
			Signal:        0.5,
			At:            now.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recent, err := repo.RecentOutcomes(ctx, "u1", "arrays", 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("got %d records, want 3", len(recent))
	}
	// Newest first: the last appended outcome spent 23 minutes.
	if recent[0].TimeSpentMins != 23 {
		t.Errorf("recent[0].TimeSpentMins = %d, want 23", recent[0].TimeSpentMins)
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].At.After(recent[i-1].At) {
			t.Error("records not ordered newest first")
		}
	}
}

func TestItemRepo_QueryMatchesFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	items := []catalog.Item{
		{ID: "i1", SkillTags: []string{"arrays"}, Band: catalog.BandEasy, Sublevel: 2, Quality: 85, Relevance: 80, EstimatedMins: 20},
		{ID: "i2", SkillTags: []string{"arrays", "two_pointers"}, Band: catalog.BandMedium, Sublevel: 1, Quality: 90, Relevance: 85, EstimatedMins: 35},
		{ID: "i3", SkillTags: []string{"strings"}, Band: catalog.BandEasy, Sublevel: 1, Quality: 60, Relevance: 70, EstimatedMins: 15},
	}
	if err := repo.Import(ctx, items); err != nil {
		t.Fatalf("import: %v", err)
	}

	got, err := repo.Query(ctx, catalog.Filter{SkillTags: []string{"arrays"}, MinQuality: 80})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 || got[0].ID != "i1" || got[1].ID != "i2" {
		t.Errorf("query result = %+v", got)
	}

	got, err = repo.Query(ctx, catalog.Filter{MinDifficulty: 5})
	if err != nil {
		t.Fatalf("query by difficulty: %v", err)
	}
	if len(got) != 1 || got[0].ID != "i2" {
		t.Errorf("difficulty filter = %+v", got)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
}

func TestItemRepo_ImportRejectsInvalid(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	batch := []catalog.Item{
		{ID: "ok", SkillTags: []string{"arrays"}, Band: catalog.BandEasy, Sublevel: 1, Quality: 80, Relevance: 80, EstimatedMins: 20},
		{ID: "bad", SkillTags: []string{"arrays"}, Band: "impossible", Sublevel: 2, Quality: 80, Relevance: 80, EstimatedMins: 20},
	}
	if err := repo.Import(ctx, batch); err == nil {
		t.Fatal("expected validation error for unknown band")
	}

	// The batch is one transaction: the valid item must not survive the
	// failed import.
	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("count after failed import = %d, want 0", n)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i := 1; i < len(seqs); i++ {
		if seqs[i] != seqs[i-1]+1 {
			t.Errorf("seq[%d] = %d, want %d", i, seqs[i], seqs[i-1]+1)
		}
	}
}
