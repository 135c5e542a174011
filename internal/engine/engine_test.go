package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/salmon302/DSATrain-sub001/internal/adapt"
	"github.com/salmon302/DSATrain-sub001/internal/catalog"
	"github.com/salmon302/DSATrain-sub001/internal/goal"
	"github.com/salmon302/DSATrain-sub001/internal/planner"
	"github.com/salmon302/DSATrain-sub001/internal/profile"
	"github.com/salmon302/DSATrain-sub001/internal/review"
	"github.com/salmon302/DSATrain-sub001/internal/skillgraph"
)

var engineNow = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

type memPlanStore struct {
	mu    sync.Mutex
	plans map[string]*planner.PathPlan
}

func newMemPlanStore() *memPlanStore {
	return &memPlanStore{plans: make(map[string]*planner.PathPlan)}
}

func (m *memPlanStore) Save(_ context.Context, p *planner.PathPlan, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.plans[p.ID] = &cp
	return nil
}

func (m *memPlanStore) Get(_ context.Context, planID string) (*planner.PathPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.plans[planID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (m *memPlanStore) ActiveForUser(_ context.Context, userID string) (*planner.PathPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.plans {
		if p.UserID == userID && p.Status == planner.StatusActive {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

type memReviewStore struct {
	mu    sync.Mutex
	cards map[string]review.Card // userID+"/"+skillID
}

func newMemReviewStore() *memReviewStore {
	return &memReviewStore{cards: make(map[string]review.Card)}
}

func (m *memReviewStore) Get(_ context.Context, userID, skillID string) (*review.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.cards[userID+"/"+skillID]; ok {
		return &c, nil
	}
	return nil, nil
}

func (m *memReviewStore) Due(_ context.Context, userID string, now time.Time) ([]review.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []review.Card
	for _, c := range m.cards {
		if c.UserID == userID && c.IsDue(now) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memReviewStore) Put(_ context.Context, c review.Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cards[c.UserID+"/"+c.SkillID] = c
	return nil
}

type memEventStore struct {
	mu          sync.Mutex
	outcomes    []adapt.OutcomeEvent
	adaptations []planner.AdaptationEntry
}

func (m *memEventStore) AppendOutcome(_ context.Context, e adapt.OutcomeEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, e)
	return nil
}

func (m *memEventStore) AppendAdaptation(_ context.Context, _, _ string, entry planner.AdaptationEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adaptations = append(m.adaptations, entry)
	return nil
}

// RecentOutcomes satisfies adapt.History over the in-memory event log.
func (m *memEventStore) RecentOutcomes(_ context.Context, userID, skillID string, limit int) ([]adapt.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []adapt.Record
	for i := len(m.outcomes) - 1; i >= 0 && len(out) < limit; i-- {
		e := m.outcomes[i]
		if e.UserID == userID && e.SkillID == skillID {
			out = append(out, adapt.Record{
				At:            e.At,
				Success:       e.Success,
				TimeSpentMins: e.TimeSpentMins,
				EstimatedMins: e.EstimatedMins,
			})
		}
	}
	return out, nil
}

type fixture struct {
	engine  *Engine
	plans   *memPlanStore
	reviews *memReviewStore
	events  *memEventStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	graph := skillgraph.Default()
	var items []catalog.Item
	for _, skill := range []string{"arrays", "strings", "hashing"} {
		for d := 1; d <= 8; d++ {
			band := catalog.BandForLevel(d)
			items = append(items, catalog.Item{
				ID:            skill + "-" + string(rune('a'+d)),
				SkillTags:     []string{skill},
				Band:          band,
				Sublevel:      d - band.BaseLevel(),
				Quality:       85,
				Relevance:     80,
				EstimatedMins: 30,
			})
		}
	}
	index := catalog.NewMemIndex(items)

	plans := newMemPlanStore()
	reviews := newMemReviewStore()
	events := &memEventStore{}

	estimator := profile.NewEstimator(profile.DefaultConfig(), profile.NewMemStore())
	adapter := adapt.New(adapt.DefaultConfig(), index, estimator, events)
	pl := planner.New(graph, index, planner.DefaultConfig())

	cfg := DefaultConfig()
	cfg.ReviewEntryMastery = 0.2 // graduate after the first strong outcome
	eng := New(cfg, graph, pl, estimator, adapter, review.DefaultConfig(), plans, reviews, events, zap.NewNop())

	return &fixture{engine: eng, plans: plans, reviews: reviews, events: events}
}

func validGoal() goal.Document {
	return goal.Document{
		TargetSkills:  []string{"arrays", "strings"},
		TargetLevel:   0.7,
		DurationWeeks: 3,
		HoursPerWeek:  3,
	}
}

func TestGeneratePlan_PersistsActivePlan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	plan, err := f.engine.GeneratePlan(ctx, "u1", validGoal(), engineNow)
	require.NoError(t, err)
	require.NotEmpty(t, plan.Assignments)
	assert.Equal(t, planner.StatusActive, plan.Status)

	stored, err := f.plans.ActiveForUser(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, plan.ID, stored.ID)
}

func TestGeneratePlan_AbandonsPreviousActive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.engine.GeneratePlan(ctx, "u1", validGoal(), engineNow)
	require.NoError(t, err)

	second, err := f.engine.GeneratePlan(ctx, "u1", validGoal(), engineNow.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	old, err := f.plans.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, planner.StatusAbandoned, old.Status)

	active, err := f.plans.ActiveForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
}

func TestRecordOutcome_FullFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	plan, err := f.engine.GeneratePlan(ctx, "u1", validGoal(), engineNow)
	require.NoError(t, err)
	first := plan.Week(0)[0]

	res, err := f.engine.RecordOutcome(ctx, plan.ID, first.ID,
		planner.Outcome{Success: true, TimeSpentMins: 25}, engineNow)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, res.Mastery.Mastery, 1e-9)

	// Assignment resolved in the persisted plan.
	stored, err := f.plans.Get(ctx, plan.ID)
	require.NoError(t, err)
	a, err := stored.Assignment(first.ID)
	require.NoError(t, err)
	assert.Equal(t, planner.AssignmentCompleted, a.Status)

	// One outcome event appended.
	require.Len(t, f.events.outcomes, 1)
	assert.Equal(t, first.SkillID, f.events.outcomes[0].SkillID)
	assert.True(t, f.events.outcomes[0].Success)

	// Mastery 0.25 cleared the test graduation threshold.
	card, err := f.reviews.Get(ctx, "u1", first.SkillID)
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.True(t, card.IsDue(engineNow))
}

func TestRecordOutcome_PlanNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.engine.RecordOutcome(context.Background(), "p-missing", "a1",
		planner.Outcome{Success: true, TimeSpentMins: 10}, engineNow)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestRecordOutcome_AbandonedPlanRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.engine.GeneratePlan(ctx, "u1", validGoal(), engineNow)
	require.NoError(t, err)
	_, err = f.engine.GeneratePlan(ctx, "u1", validGoal(), engineNow.AddDate(0, 0, 1))
	require.NoError(t, err)

	_, err = f.engine.RecordOutcome(ctx, first.ID, first.Week(0)[0].ID,
		planner.Outcome{Success: true, TimeSpentMins: 10}, engineNow)
	assert.ErrorIs(t, err, ErrPlanNotActive)
}

func TestRecordOutcome_SecondOutcomeRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	plan, err := f.engine.GeneratePlan(ctx, "u1", validGoal(), engineNow)
	require.NoError(t, err)
	first := plan.Week(0)[0]
	out := planner.Outcome{Success: true, TimeSpentMins: 25}

	_, err = f.engine.RecordOutcome(ctx, plan.ID, first.ID, out, engineNow)
	require.NoError(t, err)
	_, err = f.engine.RecordOutcome(ctx, plan.ID, first.ID, out, engineNow)
	assert.ErrorIs(t, err, adapt.ErrAlreadyResolved)
}

func TestSubmitReview_AdvancesCard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	plan, err := f.engine.GeneratePlan(ctx, "u1", validGoal(), engineNow)
	require.NoError(t, err)
	first := plan.Week(0)[0]
	_, err = f.engine.RecordOutcome(ctx, plan.ID, first.ID,
		planner.Outcome{Success: true, TimeSpentMins: 25}, engineNow)
	require.NoError(t, err)

	due, err := f.engine.DueReviews(ctx, "u1", 0, engineNow)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, first.SkillID, due[0].SkillID)

	card, err := f.engine.SubmitReview(ctx, "u1", first.SkillID, review.RatingGood, engineNow)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, card.IntervalDays, 1e-9)

	due, err = f.engine.DueReviews(ctx, "u1", 0, engineNow)
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestSubmitReview_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.engine.SubmitReview(ctx, "u1", "arrays", review.Rating("perfect"), engineNow)
	assert.ErrorIs(t, err, ErrUnknownRating)

	_, err = f.engine.SubmitReview(ctx, "u1", "arrays", review.RatingGood, engineNow)
	assert.ErrorIs(t, err, ErrNoReviewCard)
}

func TestMilestones_PlanNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.engine.Milestones(context.Background(), "p-missing", engineNow)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestMilestones_ReturnsPlanMilestones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	plan, err := f.engine.GeneratePlan(ctx, "u1", validGoal(), engineNow)
	require.NoError(t, err)

	ms, err := f.engine.Milestones(ctx, plan.ID, engineNow)
	require.NoError(t, err)
	assert.Len(t, ms, len(plan.Milestones))
	assert.Equal(t, planner.MilestoneAvailable, ms[0].Status)
}

func TestAcquire_ConflictAfterRetry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	lock := f.engine.userLock("u1")
	lock.Lock()
	defer lock.Unlock()

	_, err := f.engine.GeneratePlan(ctx, "u1", validGoal(), engineNow)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRunDecay_NoopWithinGrace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	plan, err := f.engine.GeneratePlan(ctx, "u1", validGoal(), engineNow)
	require.NoError(t, err)
	first := plan.Week(0)[0]
	_, err = f.engine.RecordOutcome(ctx, plan.ID, first.ID,
		planner.Outcome{Success: true, TimeSpentMins: 25}, engineNow)
	require.NoError(t, err)

	changed, err := f.engine.RunDecay(ctx, "u1", engineNow.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Empty(t, changed, "decay inside the grace period must not touch mastery")

	changed, err = f.engine.RunDecay(ctx, "u1", engineNow.AddDate(0, 0, 30))
	require.NoError(t, err)
	assert.NotEmpty(t, changed)
	assert.Less(t, changed[0].Mastery, 0.25)
}
