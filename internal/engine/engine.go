package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/salmon302/DSATrain-sub001/internal/adapt"
	"github.com/salmon302/DSATrain-sub001/internal/goal"
	"github.com/salmon302/DSATrain-sub001/internal/milestone"
	"github.com/salmon302/DSATrain-sub001/internal/planner"
	"github.com/salmon302/DSATrain-sub001/internal/profile"
	"github.com/salmon302/DSATrain-sub001/internal/review"
	"github.com/salmon302/DSATrain-sub001/internal/skillgraph"
)

var (
	// ErrConflict means another mutation for the same user is in flight
	// and the retry also found the user busy.
	ErrConflict = errors.New("concurrent mutation for user")

	// ErrPlanNotFound means no plan exists with the given ID.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrPlanNotActive rejects outcome recording against a plan that has
	// been completed or abandoned.
	ErrPlanNotActive = errors.New("plan is not active")

	// ErrNoReviewCard means the skill has not graduated into the review
	// queue yet.
	ErrNoReviewCard = errors.New("no review card for skill")

	// ErrUnknownRating rejects grades outside again/hard/good/easy.
	ErrUnknownRating = errors.New("unknown review rating")
)

// PlanStore persists plans.
type PlanStore interface {
	Save(ctx context.Context, p *planner.PathPlan, now time.Time) error
	Get(ctx context.Context, planID string) (*planner.PathPlan, error)
	ActiveForUser(ctx context.Context, userID string) (*planner.PathPlan, error)
}

// ReviewStore persists spaced repetition cards.
type ReviewStore interface {
	Get(ctx context.Context, userID, skillID string) (*review.Card, error)
	Due(ctx context.Context, userID string, now time.Time) ([]review.Card, error)
	Put(ctx context.Context, c review.Card) error
}

// EventStore appends the immutable outcome and adaptation history.
type EventStore interface {
	AppendOutcome(ctx context.Context, e adapt.OutcomeEvent) error
	AppendAdaptation(ctx context.Context, userID, planID string, entry planner.AdaptationEntry) error
}

// Config carries the engine-level tunables that sit above the component
// configs.
type Config struct {
	// ReviewEntryMastery is the mastery level at which a skill graduates
	// into the spaced review queue.
	ReviewEntryMastery float64

	// LockRetry is how long a mutation waits before its single retry when
	// the user's lock is held.
	LockRetry time.Duration
}

func DefaultConfig() Config {
	return Config{
		ReviewEntryMastery: 0.6,
		LockRetry:          50 * time.Millisecond,
	}
}

// Engine is the façade over the planner, estimator, adaptation engine,
// review scheduler, and milestone tracker. Anything that may write for a
// user is serialized through a per-user lock; pure reads take no lock and
// may observe the state between two mutations, which is always consistent
// because each mutation persists the plan atomically.
type Engine struct {
	cfg       Config
	graph     *skillgraph.Graph
	planner   *planner.Planner
	estimator *profile.Estimator
	adapter   *adapt.Engine
	reviewCfg review.Config
	plans     PlanStore
	reviews   ReviewStore
	events    EventStore
	log       *zap.Logger

	mu    sync.Mutex
	users map[string]*sync.Mutex
}

// New wires the engine. The logger may not be nil; pass zap.NewNop() to
// silence it.
func New(cfg Config, graph *skillgraph.Graph, pl *planner.Planner, est *profile.Estimator, ad *adapt.Engine, reviewCfg review.Config, plans PlanStore, reviews ReviewStore, events EventStore, log *zap.Logger) *Engine {
	return &Engine{
		cfg:       cfg,
		graph:     graph,
		planner:   pl,
		estimator: est,
		adapter:   ad,
		reviewCfg: reviewCfg,
		plans:     plans,
		reviews:   reviews,
		events:    events,
		log:       log,
		users:     make(map[string]*sync.Mutex),
	}
}

// userLock returns the mutex guarding a user's mutations.
func (e *Engine) userLock(userID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	if l, ok := e.users[userID]; ok {
		return l
	}
	l := &sync.Mutex{}
	e.users[userID] = l
	return l
}

// acquire takes the user's lock, retrying once after a short backoff.
// Callers must release the returned mutex.
func (e *Engine) acquire(ctx context.Context, userID string) (*sync.Mutex, error) {
	l := e.userLock(userID)
	if l.TryLock() {
		return l, nil
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(e.cfg.LockRetry):
	}
	if l.TryLock() {
		return l, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrConflict, userID)
}

// GeneratePlan validates the goal document, builds a plan from the user's
// current mastery profile, and persists it. Any previously active plan is
// abandoned so the user has at most one active plan.
func (e *Engine) GeneratePlan(ctx context.Context, userID string, doc goal.Document, now time.Time) (*planner.PathPlan, error) {
	lock, err := e.acquire(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer lock.Unlock()

	masteries, err := e.estimator.EstimateAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	prev, err := e.plans.ActiveForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	// Difficulty boosts earned by acceleration carry over into the next plan.
	var boosts map[string]int
	if prev != nil {
		boosts = prev.DifficultyBoost
	}

	g := planner.Goal{TargetSkills: doc.TargetSkills, TargetLevel: doc.TargetLevel}
	plan, err := e.planner.Generate(ctx, userID, g, doc.DurationWeeks, doc.HoursPerWeek, masteries, boosts, now)
	if err != nil {
		return nil, err
	}

	if prev != nil {
		prev.Status = planner.StatusAbandoned
		if err := e.plans.Save(ctx, prev, now); err != nil {
			return nil, err
		}
	}

	if err := e.plans.Save(ctx, plan, now); err != nil {
		return nil, err
	}

	e.log.Info("plan generated",
		zap.String("user", userID),
		zap.String("plan", plan.ID),
		zap.Int("weeks", plan.DurationWeeks),
		zap.Int("assignments", len(plan.Assignments)),
		zap.Bool("partial", plan.Partial))
	return plan, nil
}

func (e *Engine) loadPlan(ctx context.Context, planID string) (*planner.PathPlan, error) {
	plan, err := e.plans.Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, planID)
	}
	return plan, nil
}

// RecordOutcome applies an attempt outcome to a plan: assignment
// completion, mastery update, adaptation triggers, milestone evaluation,
// review graduation, and the event log, persisted as one plan save plus
// append-only events.
func (e *Engine) RecordOutcome(ctx context.Context, planID, assignmentID string, out planner.Outcome, now time.Time) (*adapt.Result, error) {
	plan, err := e.loadPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	userID := plan.UserID

	lock, err := e.acquire(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer lock.Unlock()

	// Reload under the lock so a mutation that slipped in between the
	// first load and the acquire is not overwritten.
	plan, err = e.loadPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.Status != planner.StatusActive {
		return nil, fmt.Errorf("%w: %s is %s", ErrPlanNotActive, planID, plan.Status)
	}

	logBefore := len(plan.AdaptationLog)
	res, err := e.adapter.Apply(ctx, plan, assignmentID, out, now)
	if err != nil {
		return nil, err
	}
	a, err := plan.Assignment(assignmentID)
	if err != nil {
		return nil, err
	}

	if err := e.events.AppendOutcome(ctx, adapt.OutcomeEvent{
		UserID:        userID,
		SkillID:       a.SkillID,
		PlanID:        plan.ID,
		AssignmentID:  a.ID,
		ItemID:        a.ItemID,
		Success:       out.Success,
		TimeSpentMins: out.TimeSpentMins,
		EstimatedMins: a.EstimatedMins,
		HintsUsed:     out.HintsUsed,
		Signal:        res.Signal,
		At:            now,
	}); err != nil {
		return nil, err
	}
	for _, entry := range plan.AdaptationLog[logBefore:] {
		if err := e.events.AppendAdaptation(ctx, userID, plan.ID, entry); err != nil {
			return nil, err
		}
	}

	if err := e.graduateToReview(ctx, userID, a.SkillID, res.Mastery.Mastery, now); err != nil {
		return nil, err
	}

	masteries, err := e.estimator.EstimateAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	milestone.Evaluate(plan, masteries, plan.CurrentWeek())
	e.completeIfDone(plan)

	if err := e.plans.Save(ctx, plan, now); err != nil {
		return nil, err
	}

	e.log.Info("outcome recorded",
		zap.String("user", userID),
		zap.String("assignment", assignmentID),
		zap.String("skill", a.SkillID),
		zap.Bool("success", out.Success),
		zap.Float64("signal", res.Signal),
		zap.String("trigger", res.Trigger))
	return res, nil
}

// graduateToReview lazily creates the skill's review card once mastery
// clears the entry threshold. Existing cards are left alone: review state
// advances only through SubmitReview.
func (e *Engine) graduateToReview(ctx context.Context, userID, skillID string, mastery float64, now time.Time) error {
	if mastery < e.cfg.ReviewEntryMastery {
		return nil
	}
	existing, err := e.reviews.Get(ctx, userID, skillID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	card := review.NewCard(e.reviewCfg, userID, skillID, now)
	if err := e.reviews.Put(ctx, card); err != nil {
		return err
	}
	e.log.Info("skill graduated to review queue",
		zap.String("user", userID),
		zap.String("skill", skillID))
	return nil
}

// completeIfDone marks the plan completed once no assignment is pending.
func (e *Engine) completeIfDone(plan *planner.PathPlan) {
	for _, a := range plan.Assignments {
		if a.Status == planner.AssignmentPending {
			return
		}
	}
	plan.Status = planner.StatusCompleted
}

// DueReviews returns the user's due cards, most overdue first, with skill
// importance breaking ties. A limit <= 0 returns everything due.
// Read-only: no user lock.
func (e *Engine) DueReviews(ctx context.Context, userID string, limit int, now time.Time) ([]review.Card, error) {
	cards, err := e.reviews.Due(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	due := review.DueCards(cards, e.graph.Importance, now)
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

// SubmitReview grades a due card and persists its next state.
func (e *Engine) SubmitReview(ctx context.Context, userID, skillID string, rating review.Rating, now time.Time) (review.Card, error) {
	if !rating.Valid() {
		return review.Card{}, fmt.Errorf("%w: %q", ErrUnknownRating, rating)
	}

	lock, err := e.acquire(ctx, userID)
	if err != nil {
		return review.Card{}, err
	}
	defer lock.Unlock()

	card, err := e.reviews.Get(ctx, userID, skillID)
	if err != nil {
		return review.Card{}, err
	}
	if card == nil {
		return review.Card{}, fmt.Errorf("%w: %s/%s", ErrNoReviewCard, userID, skillID)
	}

	next := review.Apply(e.reviewCfg, *card, rating, now)
	if err := e.reviews.Put(ctx, next); err != nil {
		return review.Card{}, err
	}

	e.log.Info("review submitted",
		zap.String("user", userID),
		zap.String("skill", skillID),
		zap.String("rating", string(rating)),
		zap.Float64("interval_days", next.IntervalDays))
	return next, nil
}

// Milestones re-evaluates and returns a plan's milestones. Evaluation may
// flip statuses forward, in which case the plan is saved. Completed and
// abandoned plans are returned as stored.
func (e *Engine) Milestones(ctx context.Context, planID string, now time.Time) ([]planner.Milestone, error) {
	plan, err := e.loadPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	userID := plan.UserID

	lock, err := e.acquire(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer lock.Unlock()

	plan, err = e.loadPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	if plan.Status != planner.StatusActive {
		return plan.Milestones, nil
	}

	masteries, err := e.estimator.EstimateAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	if changes := milestone.Evaluate(plan, masteries, plan.CurrentWeek()); len(changes) > 0 {
		if err := e.plans.Save(ctx, plan, now); err != nil {
			return nil, err
		}
		for _, c := range changes {
			e.log.Info("milestone transition",
				zap.String("user", userID),
				zap.String("milestone", c.MilestoneID),
				zap.String("to", string(c.To)))
		}
	}
	return plan.Milestones, nil
}

// RunDecay applies passive mastery decay for a user, typically from a
// periodic job. Re-running within the same day is a no-op.
func (e *Engine) RunDecay(ctx context.Context, userID string, now time.Time) ([]profile.SkillMastery, error) {
	lock, err := e.acquire(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer lock.Unlock()

	changed, err := e.estimator.Decay(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	if len(changed) > 0 {
		e.log.Info("mastery decay applied",
			zap.String("user", userID),
			zap.Int("skills", len(changed)))
	}
	return changed, nil
}
