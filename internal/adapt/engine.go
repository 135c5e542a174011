package adapt

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/salmon302/DSATrain-sub001/internal/catalog"
	"github.com/salmon302/DSATrain-sub001/internal/planner"
	"github.com/salmon302/DSATrain-sub001/internal/profile"
)

// Trigger names recorded in the plan's adaptation log.
const (
	TriggerLowSuccess      = "low_success_rate"
	TriggerFastHighSuccess = "fast_high_success"
)

var (
	// ErrPlanNotActive rejects outcomes against completed or abandoned plans.
	ErrPlanNotActive = errors.New("plan is not active")

	// ErrAlreadyResolved rejects a second outcome for the same assignment.
	ErrAlreadyResolved = errors.New("assignment already resolved")

	// ErrInvalidOutcome marks out-of-range outcome fields.
	ErrInvalidOutcome = errors.New("invalid outcome")
)

// Record is one historical outcome for a (user, skill) pair, as replayed
// from the event store.
type Record struct {
	At            time.Time
	Success       bool
	TimeSpentMins int
	EstimatedMins int
}

// OutcomeEvent is the full per-attempt record appended to the event log.
type OutcomeEvent struct {
	UserID        string
	SkillID       string
	PlanID        string
	AssignmentID  string
	ItemID        string
	Success       bool
	TimeSpentMins int
	EstimatedMins int
	HintsUsed     int
	Signal        float64
	At            time.Time
}

// History supplies the rolling outcome window the triggers are computed
// over. Implementations return the newest records first.
type History interface {
	RecentOutcomes(ctx context.Context, userID, skillID string, limit int) ([]Record, error)
}

// Engine folds attempt outcomes into mastery and restructures the active
// plan when the rolling window says the current difficulty is wrong.
type Engine struct {
	cfg       Config
	index     catalog.Index
	estimator *profile.Estimator
	history   History
}

func New(cfg Config, index catalog.Index, estimator *profile.Estimator, history History) *Engine {
	return &Engine{cfg: cfg, index: index, estimator: estimator, history: history}
}

// Result summarizes what recording an outcome did.
type Result struct {
	Signal        float64
	Mastery       profile.SkillMastery
	Trigger       string   // empty when no trigger fired
	InsertedItems []string // catalog item IDs inserted by remediation
	SkippedItems  []string // assignment IDs skipped by acceleration
}

// ValidateOutcome checks the outcome's fields before anything is mutated.
func (e *Engine) ValidateOutcome(out planner.Outcome) error {
	if out.TimeSpentMins < 1 {
		return fmt.Errorf("%w: time spent %d minutes", ErrInvalidOutcome, out.TimeSpentMins)
	}
	if out.HintsUsed < 0 || out.HintsUsed > e.cfg.HintCap {
		return fmt.Errorf("%w: hints used %d outside [0,%d]", ErrInvalidOutcome, out.HintsUsed, e.cfg.HintCap)
	}
	return nil
}

// Signal maps an outcome onto [0,1]: weighted success, time efficiency
// against the estimate (capped at 1 so speed cannot stack), and hint
// independence.
func (e *Engine) Signal(out planner.Outcome, estimatedMins int) float64 {
	success := 0.0
	if out.Success {
		success = 1
	}

	efficiency := 0.0
	if estimatedMins > 0 {
		efficiency = float64(estimatedMins) / float64(out.TimeSpentMins)
		if efficiency > 1 {
			efficiency = 1
		}
	}

	independence := 1 - float64(out.HintsUsed)/float64(e.cfg.HintCap)

	return e.cfg.SuccessWeight*success +
		e.cfg.EfficiencyWeight*efficiency +
		e.cfg.HintWeight*independence
}

// Apply records an outcome against a plan assignment: the assignment
// completes, mastery updates through the estimator, and the rolling window
// for the assignment's skill is checked for a struggle or acceleration
// trigger. Plan mutations happen in place; the caller persists the plan.
func (e *Engine) Apply(ctx context.Context, plan *planner.PathPlan, assignmentID string, out planner.Outcome, now time.Time) (*Result, error) {
	if !plan.Mutable() {
		return nil, fmt.Errorf("%w: plan %s is %s", ErrPlanNotActive, plan.ID, plan.Status)
	}
	a, err := plan.Assignment(assignmentID)
	if err != nil {
		return nil, err
	}
	if a.Status != planner.AssignmentPending {
		return nil, fmt.Errorf("%w: assignment %s is %s", ErrAlreadyResolved, a.ID, a.Status)
	}
	if err := e.ValidateOutcome(out); err != nil {
		return nil, err
	}

	recorded := out
	a.Status = planner.AssignmentCompleted
	a.Outcome = &recorded

	signal := e.Signal(out, a.EstimatedMins)
	mastery, err := e.estimator.ApplyOutcome(ctx, plan.UserID, a.SkillID, signal, now)
	if err != nil {
		return nil, err
	}

	res := &Result{Signal: signal, Mastery: mastery}

	window, err := e.window(ctx, plan.UserID, a.SkillID, out, a.EstimatedMins, now)
	if err != nil {
		return nil, err
	}
	if len(window) < e.cfg.MinWindow {
		return res, nil
	}

	rate, timeRatio := windowStats(window)
	switch {
	case rate < e.cfg.LowSuccessRate:
		inserted, err := e.remediate(ctx, plan, a, now)
		if err != nil {
			return nil, err
		}
		res.Trigger = TriggerLowSuccess
		res.InsertedItems = inserted
		plan.AppendLog(planner.AdaptationEntry{
			At:            now,
			SkillID:       a.SkillID,
			Trigger:       TriggerLowSuccess,
			Reason:        fmt.Sprintf("success rate %.2f over last %d attempts below %.2f", rate, len(window), e.cfg.LowSuccessRate),
			InsertedItems: inserted,
			DurationWeeks: plan.DurationWeeks,
		})
	case rate >= e.cfg.HighSuccessRate && timeRatio <= e.cfg.FastTimeRatio:
		skipped := e.accelerate(plan, a)
		res.Trigger = TriggerFastHighSuccess
		res.SkippedItems = skipped
		plan.AppendLog(planner.AdaptationEntry{
			At:           now,
			SkillID:      a.SkillID,
			Trigger:      TriggerFastHighSuccess,
			Reason:       fmt.Sprintf("success rate %.2f at %.2fx estimated time over last %d attempts", rate, timeRatio, len(window)),
			SkippedItems: skipped,
		})
	}
	return res, nil
}

// window assembles the rolling window: the outcome being recorded plus the
// most recent persisted records for the skill, newest first, capped at
// WindowSize.
func (e *Engine) window(ctx context.Context, userID, skillID string, out planner.Outcome, estimatedMins int, now time.Time) ([]Record, error) {
	prior, err := e.history.RecentOutcomes(ctx, userID, skillID, e.cfg.WindowSize-1)
	if err != nil {
		return nil, fmt.Errorf("load outcome window %s/%s: %w", userID, skillID, err)
	}
	window := append([]Record{{
		At:            now,
		Success:       out.Success,
		TimeSpentMins: out.TimeSpentMins,
		EstimatedMins: estimatedMins,
	}}, prior...)
	if len(window) > e.cfg.WindowSize {
		window = window[:e.cfg.WindowSize]
	}
	return window, nil
}

// windowStats returns the window's success rate and its mean actual/estimated
// time ratio.
func windowStats(window []Record) (rate, timeRatio float64) {
	successes := 0
	ratioSum := 0.0
	for _, r := range window {
		if r.Success {
			successes++
		}
		if r.EstimatedMins > 0 {
			ratioSum += float64(r.TimeSpentMins) / float64(r.EstimatedMins)
		} else {
			ratioSum += 1
		}
	}
	n := float64(len(window))
	return float64(successes) / n, ratioSum / n
}

// remediate inserts up to InsertCount easier items for the skill right
// after the struggling assignment, then rebalances overflowing weeks.
func (e *Engine) remediate(ctx context.Context, plan *planner.PathPlan, after *planner.Assignment, now time.Time) ([]string, error) {
	maxDifficulty := after.Difficulty - e.cfg.EasierStep
	if maxDifficulty < 1 {
		maxDifficulty = 1
	}

	exclude := make(map[string]bool, len(plan.Assignments))
	for _, a := range plan.Assignments {
		exclude[a.ItemID] = true
	}

	items, err := e.index.Query(ctx, catalog.Filter{
		SkillTags:     []string{after.SkillID},
		MaxDifficulty: maxDifficulty,
		MinQuality:    e.cfg.MinQuality,
		ExcludeIDs:    exclude,
		Limit:         e.cfg.InsertCount,
	})
	if err != nil {
		return nil, fmt.Errorf("query easier items for %s: %w", after.SkillID, err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	// Shift the rest of the week to open a gap right after the anchor.
	week, pos := after.WeekIndex, after.Position
	for i := range plan.Assignments {
		a := &plan.Assignments[i]
		if a.WeekIndex == week && a.Position > pos {
			a.Position += len(items)
		}
	}

	inserted := make([]string, 0, len(items))
	for i, it := range items {
		plan.Assignments = append(plan.Assignments, planner.Assignment{
			ID:            uuid.NewString(),
			ItemID:        it.ID,
			SkillID:       after.SkillID,
			WeekIndex:     week,
			Position:      pos + 1 + i,
			Status:        planner.AssignmentPending,
			EstimatedMins: it.EstimatedMins,
			Difficulty:    it.Difficulty(),
		})
		inserted = append(inserted, it.ID)
	}

	e.rebalance(plan, week)
	return inserted, nil
}

// rebalance pushes pending overflow out of a week into the next one,
// cascading forward and extending the plan when the final week spills.
func (e *Engine) rebalance(plan *planner.PathPlan, fromWeek int) {
	budget := plan.HoursPerWeek * 60
	for w := fromWeek; ; w++ {
		if w >= plan.DurationWeeks {
			if len(plan.Week(w)) == 0 {
				break
			}
			// Overflow past the last week extends the plan.
			plan.DurationWeeks = w + 1
		}
		// Moved items sort ahead of the next week's own items; successive
		// moves get decreasing positions so pulling from the back of this
		// week preserves their relative order there.
		nextPos := -1
		for plan.WeekMinutes(w) > budget {
			moved := false
			week := plan.Week(w)
			if countActive(week) <= 1 {
				break // a lone oversized item stays where it is
			}
			for i := len(week) - 1; i >= 0; i-- {
				if week[i].Status != planner.AssignmentPending {
					continue
				}
				a, err := plan.Assignment(week[i].ID)
				if err != nil {
					break
				}
				a.WeekIndex = w + 1
				a.Position = nextPos
				nextPos--
				moved = true
				break
			}
			if !moved {
				break // week is over budget with nothing movable
			}
		}
	}

	for w := fromWeek; w < plan.DurationWeeks; w++ {
		week := plan.Week(w)
		for p := range week {
			a, err := plan.Assignment(week[p].ID)
			if err == nil {
				a.Position = p
			}
		}
	}
}

func countActive(week []planner.Assignment) int {
	n := 0
	for _, a := range week {
		if a.Status != planner.AssignmentSkipped {
			n++
		}
	}
	return n
}

// accelerate skips the remaining pending assignments for the skill at or
// below the just-finished difficulty and raises the skill's target
// difficulty for future planning.
func (e *Engine) accelerate(plan *planner.PathPlan, after *planner.Assignment) []string {
	var skipped []string
	for i := range plan.Assignments {
		a := &plan.Assignments[i]
		if a.ID == after.ID || a.SkillID != after.SkillID {
			continue
		}
		if a.Status == planner.AssignmentPending && a.Difficulty <= after.Difficulty {
			a.Status = planner.AssignmentSkipped
			skipped = append(skipped, a.ID)
		}
	}
	sort.Strings(skipped)

	if plan.DifficultyBoost == nil {
		plan.DifficultyBoost = make(map[string]int)
	}
	plan.DifficultyBoost[after.SkillID]++
	return skipped
}
