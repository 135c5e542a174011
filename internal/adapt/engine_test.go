package adapt

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/salmon302/DSATrain-sub001/internal/catalog"
	"github.com/salmon302/DSATrain-sub001/internal/planner"
	"github.com/salmon302/DSATrain-sub001/internal/profile"
)

var adaptNow = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

type fakeHistory struct {
	records map[string][]Record // skillID -> newest first
}

func (f *fakeHistory) RecentOutcomes(_ context.Context, _, skillID string, limit int) ([]Record, error) {
	recs := f.records[skillID]
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

func newTestEngine(items []catalog.Item, history *fakeHistory) *Engine {
	if history == nil {
		history = &fakeHistory{}
	}
	est := profile.NewEstimator(profile.DefaultConfig(), profile.NewMemStore())
	return New(DefaultConfig(), catalog.NewMemIndex(items), est, history)
}

// twoWeekPlan builds an active plan with three dynamic_programming
// assignments in week 0 and one in week 1, 2 hours per week.
func twoWeekPlan() *planner.PathPlan {
	return &planner.PathPlan{
		ID:            "plan-1",
		UserID:        "u1",
		DurationWeeks: 2,
		HoursPerWeek:  2,
		Status:        planner.StatusActive,
		Assignments: []planner.Assignment{
			{ID: "a0", ItemID: "dp-1", SkillID: "dynamic_programming", WeekIndex: 0, Position: 0, Status: planner.AssignmentPending, EstimatedMins: 30, Difficulty: 6},
			{ID: "a1", ItemID: "dp-2", SkillID: "dynamic_programming", WeekIndex: 0, Position: 1, Status: planner.AssignmentPending, EstimatedMins: 30, Difficulty: 6},
			{ID: "a2", ItemID: "dp-3", SkillID: "dynamic_programming", WeekIndex: 0, Position: 2, Status: planner.AssignmentPending, EstimatedMins: 30, Difficulty: 7},
			{ID: "a3", ItemID: "dp-4", SkillID: "dynamic_programming", WeekIndex: 1, Position: 0, Status: planner.AssignmentPending, EstimatedMins: 30, Difficulty: 7},
		},
		CreatedAt: adaptNow,
	}
}

func easierDPItems() []catalog.Item {
	return []catalog.Item{
		{ID: "dp-easy-1", SkillTags: []string{"dynamic_programming"}, Band: catalog.BandEasy, Sublevel: 3, Quality: 80, Relevance: 75, EstimatedMins: 25},
		{ID: "dp-easy-2", SkillTags: []string{"dynamic_programming"}, Band: catalog.BandEasy, Sublevel: 4, Quality: 75, Relevance: 70, EstimatedMins: 25},
		{ID: "dp-hard-1", SkillTags: []string{"dynamic_programming"}, Band: catalog.BandHard, Sublevel: 2, Quality: 90, Relevance: 90, EstimatedMins: 45},
	}
}

func TestSignal(t *testing.T) {
	e := newTestEngine(nil, nil)
	tests := []struct {
		name      string
		outcome   planner.Outcome
		estimated int
		want      float64
	}{
		{"perfect", planner.Outcome{Success: true, TimeSpentMins: 30}, 30, 1.0},
		{"slow failure", planner.Outcome{Success: false, TimeSpentMins: 60}, 30, 0.25*0.5 + 0.15},
		{"fast success with hints", planner.Outcome{Success: true, TimeSpentMins: 15, HintsUsed: 5}, 30, 0.6 + 0.25},
		{"efficiency capped at one", planner.Outcome{Success: true, TimeSpentMins: 1}, 60, 1.0},
	}
	for _, tt := range tests {
		got := e.Signal(tt.outcome, tt.estimated)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: signal = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestValidateOutcome(t *testing.T) {
	e := newTestEngine(nil, nil)
	bad := []planner.Outcome{
		{TimeSpentMins: 0, Success: true},
		{TimeSpentMins: -5, Success: true},
		{TimeSpentMins: 30, HintsUsed: -1},
		{TimeSpentMins: 30, HintsUsed: 6},
	}
	for _, out := range bad {
		if err := e.ValidateOutcome(out); !errors.Is(err, ErrInvalidOutcome) {
			t.Errorf("outcome %+v: err = %v, want ErrInvalidOutcome", out, err)
		}
	}
	if err := e.ValidateOutcome(planner.Outcome{TimeSpentMins: 30, Success: false, HintsUsed: 5}); err != nil {
		t.Errorf("valid outcome rejected: %v", err)
	}
}

func TestApply_CompletesAssignmentAndUpdatesMastery(t *testing.T) {
	e := newTestEngine(nil, nil)
	plan := twoWeekPlan()

	res, err := e.Apply(context.Background(), plan, "a0",
		planner.Outcome{Success: true, TimeSpentMins: 30}, adaptNow)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	a, _ := plan.Assignment("a0")
	if a.Status != planner.AssignmentCompleted {
		t.Errorf("status = %q, want completed", a.Status)
	}
	if a.Outcome == nil || !a.Outcome.Success {
		t.Error("outcome not stored on the assignment")
	}
	// Fresh skill, perfect signal: 0 + 0.25*(1-0) = 0.25.
	if math.Abs(res.Mastery.Mastery-0.25) > 1e-9 {
		t.Errorf("mastery = %v, want 0.25", res.Mastery.Mastery)
	}
	if res.Trigger != "" {
		t.Errorf("no trigger expected below the minimum window, got %q", res.Trigger)
	}
	if len(plan.AdaptationLog) != 0 {
		t.Errorf("adaptation log should stay empty, got %d entries", len(plan.AdaptationLog))
	}
}

func TestApply_ThreeFailuresInsertEasierItems(t *testing.T) {
	history := &fakeHistory{records: map[string][]Record{
		"dynamic_programming": {
			{At: adaptNow.Add(-time.Hour), Success: false, TimeSpentMins: 45, EstimatedMins: 30},
			{At: adaptNow.Add(-2 * time.Hour), Success: false, TimeSpentMins: 50, EstimatedMins: 30},
		},
	}}
	e := newTestEngine(easierDPItems(), history)
	plan := twoWeekPlan()

	res, err := e.Apply(context.Background(), plan, "a1",
		planner.Outcome{Success: false, TimeSpentMins: 55}, adaptNow)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if res.Trigger != TriggerLowSuccess {
		t.Fatalf("trigger = %q, want %q", res.Trigger, TriggerLowSuccess)
	}
	if len(res.InsertedItems) != 2 {
		t.Fatalf("inserted %d items, want 2", len(res.InsertedItems))
	}
	for _, id := range res.InsertedItems {
		if id == "dp-hard-1" {
			t.Error("remediation picked an item harder than the struggling one")
		}
	}

	// Inserted items sit directly after the failed assignment.
	week0 := plan.Week(0)
	anchorPos := -1
	for i, a := range week0 {
		if a.ID == "a1" {
			anchorPos = i
		}
	}
	if anchorPos == -1 {
		t.Fatal("anchor assignment left week 0")
	}
	for i := 0; i < 2; i++ {
		got := week0[anchorPos+1+i]
		if got.ItemID != res.InsertedItems[i] {
			t.Errorf("position %d after anchor holds %s, want %s", i+1, got.ItemID, res.InsertedItems[i])
		}
		if got.Status != planner.AssignmentPending {
			t.Errorf("inserted assignment %s status = %q, want pending", got.ItemID, got.Status)
		}
	}

	if len(plan.AdaptationLog) != 1 {
		t.Fatalf("adaptation log has %d entries, want 1", len(plan.AdaptationLog))
	}
	entry := plan.AdaptationLog[0]
	if entry.Trigger != TriggerLowSuccess || entry.SkillID != "dynamic_programming" {
		t.Errorf("log entry = %+v", entry)
	}
}

func TestApply_RemediationRebalancesOverflow(t *testing.T) {
	history := &fakeHistory{records: map[string][]Record{
		"dynamic_programming": {
			{Success: false, TimeSpentMins: 45, EstimatedMins: 30},
			{Success: false, TimeSpentMins: 50, EstimatedMins: 30},
		},
	}}
	e := newTestEngine(easierDPItems(), history)
	plan := twoWeekPlan() // week 0 holds 90 of 120 budget minutes

	_, err := e.Apply(context.Background(), plan, "a0",
		planner.Outcome{Success: false, TimeSpentMins: 55}, adaptNow)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	// Two 25-minute insertions push week 0 to 140 minutes; pending tail
	// work must cascade forward within the 120-minute budget.
	budget := plan.HoursPerWeek * 60
	for w := 0; w < plan.DurationWeeks; w++ {
		if mins := plan.WeekMinutes(w); mins > budget {
			t.Errorf("week %d has %d minutes after rebalance, budget %d", w, mins, budget)
		}
	}

	// Positions stay contiguous per week.
	for w := 0; w < plan.DurationWeeks; w++ {
		for i, a := range plan.Week(w) {
			if a.Position != i {
				t.Errorf("week %d position %d held by assignment with position %d", w, i, a.Position)
			}
		}
	}
}

func TestRebalance_CascadedItemsKeepRelativeOrder(t *testing.T) {
	e := newTestEngine(nil, nil)
	plan := &planner.PathPlan{
		ID:            "plan-1",
		UserID:        "u1",
		DurationWeeks: 1,
		HoursPerWeek:  1,
		Status:        planner.StatusActive,
		Assignments: []planner.Assignment{
			{ID: "a0", ItemID: "dp-1", SkillID: "dynamic_programming", WeekIndex: 0, Position: 0, Status: planner.AssignmentPending, EstimatedMins: 30},
			{ID: "a1", ItemID: "dp-2", SkillID: "dynamic_programming", WeekIndex: 0, Position: 1, Status: planner.AssignmentPending, EstimatedMins: 30},
			{ID: "a2", ItemID: "dp-3", SkillID: "dynamic_programming", WeekIndex: 0, Position: 2, Status: planner.AssignmentPending, EstimatedMins: 30},
			{ID: "a3", ItemID: "dp-4", SkillID: "dynamic_programming", WeekIndex: 0, Position: 3, Status: planner.AssignmentPending, EstimatedMins: 30},
		},
		CreatedAt: adaptNow,
	}

	e.rebalance(plan, 0)

	if plan.DurationWeeks != 2 {
		t.Fatalf("duration = %d weeks, want 2", plan.DurationWeeks)
	}
	// Both overflow items land in week 1 in the order they held in week 0.
	week1 := plan.Week(1)
	if len(week1) != 2 || week1[0].ID != "a2" || week1[1].ID != "a3" {
		t.Fatalf("week 1 = %+v, want a2 then a3", week1)
	}
	for i, a := range week1 {
		if a.Position != i {
			t.Errorf("week 1 position %d held by %s with position %d", i, a.ID, a.Position)
		}
	}
}

func TestApply_FastHighSuccessSkipsAndBoosts(t *testing.T) {
	history := &fakeHistory{records: map[string][]Record{
		"dynamic_programming": {
			{Success: true, TimeSpentMins: 20, EstimatedMins: 30},
			{Success: true, TimeSpentMins: 18, EstimatedMins: 30},
		},
	}}
	e := newTestEngine(nil, history)
	plan := twoWeekPlan()

	res, err := e.Apply(context.Background(), plan, "a0",
		planner.Outcome{Success: true, TimeSpentMins: 15}, adaptNow)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if res.Trigger != TriggerFastHighSuccess {
		t.Fatalf("trigger = %q, want %q", res.Trigger, TriggerFastHighSuccess)
	}
	// a1 shares difficulty 6; a2 and a3 are harder and must survive.
	a1, _ := plan.Assignment("a1")
	if a1.Status != planner.AssignmentSkipped {
		t.Errorf("a1 status = %q, want skipped", a1.Status)
	}
	for _, id := range []string{"a2", "a3"} {
		a, _ := plan.Assignment(id)
		if a.Status != planner.AssignmentPending {
			t.Errorf("%s status = %q, want pending (harder items stay)", id, a.Status)
		}
	}
	if plan.DifficultyBoost["dynamic_programming"] != 1 {
		t.Errorf("difficulty boost = %d, want 1", plan.DifficultyBoost["dynamic_programming"])
	}
	if len(plan.AdaptationLog) != 1 || plan.AdaptationLog[0].Trigger != TriggerFastHighSuccess {
		t.Errorf("adaptation log = %+v", plan.AdaptationLog)
	}
}

func TestApply_SlowHighSuccessDoesNotAccelerate(t *testing.T) {
	history := &fakeHistory{records: map[string][]Record{
		"dynamic_programming": {
			{Success: true, TimeSpentMins: 30, EstimatedMins: 30},
			{Success: true, TimeSpentMins: 32, EstimatedMins: 30},
		},
	}}
	e := newTestEngine(nil, history)
	plan := twoWeekPlan()

	res, err := e.Apply(context.Background(), plan, "a0",
		planner.Outcome{Success: true, TimeSpentMins: 29}, adaptNow)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if res.Trigger != "" {
		t.Errorf("success at estimated pace must not trigger, got %q", res.Trigger)
	}
}

func TestApply_RejectsResolvedAndInactive(t *testing.T) {
	e := newTestEngine(nil, nil)
	ctx := context.Background()
	out := planner.Outcome{Success: true, TimeSpentMins: 30}

	plan := twoWeekPlan()
	if _, err := e.Apply(ctx, plan, "a0", out, adaptNow); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if _, err := e.Apply(ctx, plan, "a0", out, adaptNow); !errors.Is(err, ErrAlreadyResolved) {
		t.Errorf("second apply err = %v, want ErrAlreadyResolved", err)
	}

	done := twoWeekPlan()
	done.Status = planner.StatusCompleted
	if _, err := e.Apply(ctx, done, "a0", out, adaptNow); !errors.Is(err, ErrPlanNotActive) {
		t.Errorf("completed plan err = %v, want ErrPlanNotActive", err)
	}

	invalid := twoWeekPlan()
	if _, err := e.Apply(ctx, invalid, "a0", planner.Outcome{TimeSpentMins: -1}, adaptNow); !errors.Is(err, ErrInvalidOutcome) {
		t.Errorf("invalid outcome err = %v, want ErrInvalidOutcome", err)
	}
	if a, _ := invalid.Assignment("a0"); a.Status != planner.AssignmentPending {
		t.Error("rejected outcome must not resolve the assignment")
	}
}
