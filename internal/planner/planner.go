package planner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/salmon302/DSATrain-sub001/internal/catalog"
	"github.com/salmon302/DSATrain-sub001/internal/profile"
	"github.com/salmon302/DSATrain-sub001/internal/skillgraph"
)

// ErrInvalidGoal marks a malformed goal or plan shape. This is a
// configuration error: surfaced immediately, never retried.
var ErrInvalidGoal = errors.New("invalid goal")

// Planner turns a goal, the skill graph, and the learner's mastery profile
// into an ordered weekly curriculum. Given identical inputs and no
// intervening attempt history, output is deterministic: every tie-break is
// total-ordered and there is no hidden randomness (assignment and milestone
// IDs aside).
type Planner struct {
	graph *skillgraph.Graph
	index catalog.Index
	cfg   Config
}

// New creates a planner over the given graph and item index.
func New(graph *skillgraph.Graph, index catalog.Index, cfg Config) *Planner {
	return &Planner{graph: graph, index: index, cfg: cfg}
}

// skillGap pairs a skill with its weighted mastery shortfall.
type skillGap struct {
	id  string
	gap float64
}

// Generate builds a new plan. Weeks that cannot be filled after the full
// relaxation ladder leave the plan flagged Partial with structured reasons;
// only configuration problems produce an error. boosts carries per-skill
// target-difficulty raises earned through adaptation on earlier plans; nil
// means none.
func (p *Planner) Generate(ctx context.Context, userID string, goal Goal, weeks, hoursPerWeek int, masteries map[string]profile.SkillMastery, boosts map[string]int, now time.Time) (*PathPlan, error) {
	if err := p.validate(goal, weeks, hoursPerWeek); err != nil {
		return nil, err
	}

	masteryOf := func(id string) float64 {
		if sm, ok := masteries[id]; ok {
			return sm.Mastery
		}
		return 0
	}

	// Step 1: weighted gaps over the goal skills plus their prerequisite
	// closure (prerequisites get a target at least at the gate level so
	// they are scheduled before their dependents need them).
	targets := p.expandTargets(goal)
	gaps := make(map[string]float64, len(targets))
	var queue []skillGap
	for id, target := range targets {
		g := target - masteryOf(id)
		if g <= 0 {
			continue
		}
		weighted := g * p.graph.Importance(id)
		if weighted <= 0 {
			continue
		}
		gaps[id] = weighted
		queue = append(queue, skillGap{id: id, gap: weighted})
	}

	// Step 2: largest gap first; ties go to the more foundational skill
	// (shallower topological depth), then to the lexically smaller ID.
	sort.Slice(queue, func(i, j int) bool {
		if queue[i].gap != queue[j].gap {
			return queue[i].gap > queue[j].gap
		}
		di, dj := p.graph.Depth(queue[i].id), p.graph.Depth(queue[j].id)
		if di != dj {
			return di < dj
		}
		return queue[i].id < queue[j].id
	})

	plan := &PathPlan{
		ID:            uuid.NewString(),
		UserID:        userID,
		Goal:          goal,
		DurationWeeks: weeks,
		HoursPerWeek:  hoursPerWeek,
		Status:        StatusActive,
		CreatedAt:     now,
	}
	if len(boosts) > 0 {
		plan.DifficultyBoost = make(map[string]int, len(boosts))
		for id, b := range boosts {
			plan.DifficultyBoost[id] = b
		}
	}

	used := make(map[string]bool)              // items already placed, plan-wide
	weeksScheduled := make(map[string]int)     // weeks a skill has been scheduled so far
	firstScheduledWeek := make(map[string]int) // skill -> first week it appeared

	for w := 0; w < weeks; w++ {
		var eligible []skillGap
		for _, sg := range queue {
			if p.prereqsMet(sg.id, masteryOf, firstScheduledWeek, w) {
				eligible = append(eligible, sg)
			}
		}

		// One ladder of catalog queries per eligible skill per week keeps
		// the total query count bounded.
		pool := make(map[string][]catalog.Item, len(eligible))
		for _, sg := range eligible {
			items, reason, err := p.candidatesForSkill(ctx, sg.id, w, masteryOf(sg.id), weeksScheduled[sg.id], boosts[sg.id], used)
			if err != nil {
				return nil, err
			}
			if reason != nil {
				plan.Partial = true
				plan.PartialReasons = append(plan.PartialReasons, *reason)
			}
			if len(items) > 0 {
				pool[sg.id] = items
			}
		}

		budget := hoursPerWeek * 60
		lastSkillTag := ""
		scheduledThisWeek := make(map[string]bool)

		for position := 0; position < p.cfg.MaxWeeklyItems; position++ {
			item, skillID := p.bestCandidate(pool, eligible, gaps, masteryOf, weeksScheduled, boosts, budget, lastSkillTag)
			if item == nil {
				break
			}

			plan.Assignments = append(plan.Assignments, Assignment{
				ID:            uuid.NewString(),
				ItemID:        item.ID,
				SkillID:       skillID,
				WeekIndex:     w,
				Position:      position,
				Status:        AssignmentPending,
				EstimatedMins: item.EstimatedMins,
				Difficulty:    item.Difficulty(),
			})

			budget -= item.EstimatedMins
			used[item.ID] = true
			lastSkillTag = item.PrimarySkill()
			scheduledThisWeek[skillID] = true
			removeItem(pool, item.ID)
		}

		for id := range scheduledThisWeek {
			weeksScheduled[id]++
			if _, ok := firstScheduledWeek[id]; !ok {
				firstScheduledWeek[id] = w
			}
		}
	}

	p.insertMilestones(plan, firstScheduledWeek)
	return plan, nil
}

func (p *Planner) validate(goal Goal, weeks, hoursPerWeek int) error {
	if len(goal.TargetSkills) == 0 {
		return fmt.Errorf("%w: no target skills", ErrInvalidGoal)
	}
	if goal.TargetLevel <= 0 || goal.TargetLevel > 1 {
		return fmt.Errorf("%w: target level %f outside (0,1]", ErrInvalidGoal, goal.TargetLevel)
	}
	if weeks < 1 {
		return fmt.Errorf("%w: duration %d weeks", ErrInvalidGoal, weeks)
	}
	if hoursPerWeek < 1 {
		return fmt.Errorf("%w: %d hours per week", ErrInvalidGoal, hoursPerWeek)
	}
	for _, id := range goal.TargetSkills {
		if !p.graph.Has(id) {
			return fmt.Errorf("%w: unknown skill %q", ErrInvalidGoal, id)
		}
	}
	return nil
}

// expandTargets maps every goal skill to the goal level and pulls its
// prerequisite closure in at the gate level, keeping the higher target
// when a skill appears both ways.
func (p *Planner) expandTargets(goal Goal) map[string]float64 {
	targets := make(map[string]float64)
	for _, id := range goal.TargetSkills {
		if goal.TargetLevel > targets[id] {
			targets[id] = goal.TargetLevel
		}
		for _, anc := range p.graph.PrereqClosure(id) {
			if p.cfg.PrereqGate > targets[anc] {
				targets[anc] = p.cfg.PrereqGate
			}
		}
	}
	return targets
}

// prereqsMet reports whether a skill may be scheduled in the given week:
// every direct prerequisite either already holds gate-level mastery or was
// scheduled in an earlier week of this plan.
func (p *Planner) prereqsMet(skillID string, masteryOf func(string) float64, firstScheduledWeek map[string]int, week int) bool {
	for _, prereq := range p.graph.Prerequisites(skillID) {
		if masteryOf(prereq.ID) >= p.cfg.PrereqGate {
			continue
		}
		if fw, ok := firstScheduledWeek[prereq.ID]; ok && fw < week {
			continue
		}
		return false
	}
	return true
}

// TargetDifficulty maps a mastery level onto the 1..15 item difficulty
// scale: mastery plus the configured margin, raised by the weekly step for
// each week the skill has stayed scheduled, plus any adaptation boost.
func (c Config) TargetDifficulty(mastery float64, weeksScheduled, boost int) int {
	level := mastery + c.TargetMargin + c.WeeklyDifficultyStep*float64(weeksScheduled)
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	d := int(math.Ceil(level * float64(catalog.MaxDifficulty)))
	d += boost
	if d < 1 {
		d = 1
	}
	if d > catalog.MaxDifficulty {
		d = catalog.MaxDifficulty
	}
	return d
}

// candidatesForSkill queries the catalog for a skill's weekly candidates,
// descending the relaxation ladder when the strict query comes up empty:
// lower the quality threshold stepwise, then widen the difficulty window,
// then fall back to the skill's parent category. A non-nil reason means
// the full ladder failed.
func (p *Planner) candidatesForSkill(ctx context.Context, skillID string, week int, mastery float64, weeksScheduled, boost int, used map[string]bool) ([]catalog.Item, *RelaxationReason, error) {
	target := p.cfg.TargetDifficulty(mastery, weeksScheduled, boost)
	lo := target - p.cfg.DifficultyWindow
	if lo < 1 {
		lo = 1
	}
	hi := target + p.cfg.DifficultyWindow
	if hi > catalog.MaxDifficulty {
		hi = catalog.MaxDifficulty
	}

	base := catalog.Filter{
		SkillTags:     []string{skillID},
		MinDifficulty: lo,
		MaxDifficulty: hi,
		MinQuality:    p.cfg.MinQuality,
		ExcludeIDs:    used,
		Limit:         p.cfg.QueryLimit,
	}

	items, err := p.index.Query(ctx, base)
	if err != nil {
		return nil, nil, fmt.Errorf("query catalog for %s: %w", skillID, err)
	}
	if len(items) > 0 {
		return items, nil, nil
	}

	// Rung 1: lower the quality threshold by fixed steps.
	for q := p.cfg.MinQuality - p.cfg.QualityRelaxStep; q >= p.cfg.QualityFloor; q -= p.cfg.QualityRelaxStep {
		f := base
		f.MinQuality = q
		items, err = p.index.Query(ctx, f)
		if err != nil {
			return nil, nil, fmt.Errorf("query catalog for %s: %w", skillID, err)
		}
		if len(items) > 0 {
			return items, nil, nil
		}
	}

	// Rung 2: widen the difficulty window to the full scale.
	f := base
	f.MinQuality = p.cfg.QualityFloor
	f.MinDifficulty = 0
	f.MaxDifficulty = 0
	items, err = p.index.Query(ctx, f)
	if err != nil {
		return nil, nil, fmt.Errorf("query catalog for %s: %w", skillID, err)
	}
	if len(items) > 0 {
		return items, nil, nil
	}

	// Rung 3: fall back to the skill's parent category.
	if skill, gerr := p.graph.Get(skillID); gerr == nil {
		siblings := p.graph.ByCategory(skill.Category)
		tags := make([]string, 0, len(siblings))
		for _, s := range siblings {
			tags = append(tags, s.ID)
		}
		f = catalog.Filter{
			SkillTags:  tags,
			MinQuality: p.cfg.QualityFloor,
			ExcludeIDs: used,
			Limit:      p.cfg.QueryLimit,
		}
		items, err = p.index.Query(ctx, f)
		if err != nil {
			return nil, nil, fmt.Errorf("query catalog for category of %s: %w", skillID, err)
		}
		if len(items) > 0 {
			return items, nil, nil
		}
	}

	reason := &RelaxationReason{
		WeekIndex: week,
		SkillID:   skillID,
		Step:      RelaxExhausted,
		Detail:    "no items found after relaxing quality threshold, difficulty window, and parent category",
	}
	return nil, reason, nil
}

// bestCandidate scores every affordable pooled item and returns the winner
// together with the skill it was pooled under. Two consecutive assignments
// may not share a primary skill tag unless fewer than two qualifying skills
// remain (interleaved practice beats blocked practice).
func (p *Planner) bestCandidate(pool map[string][]catalog.Item, eligible []skillGap, gaps map[string]float64, masteryOf func(string) float64, weeksScheduled map[string]int, boosts map[string]int, budget int, lastSkillTag string) (*catalog.Item, string) {
	qualifying := 0
	for _, sg := range eligible {
		for _, it := range pool[sg.id] {
			if it.EstimatedMins <= budget {
				qualifying++
				break
			}
		}
	}

	var (
		best      *catalog.Item
		bestSkill string
		bestScore float64
	)

	for _, sg := range eligible {
		target := p.cfg.TargetDifficulty(masteryOf(sg.id), weeksScheduled[sg.id], boosts[sg.id])
		for i := range pool[sg.id] {
			it := pool[sg.id][i]
			if it.EstimatedMins > budget {
				continue
			}
			if qualifying >= 2 && lastSkillTag != "" && it.PrimarySkill() == lastSkillTag {
				continue
			}
			score := p.score(it, target, gaps)
			if best == nil || score > bestScore ||
				(score == bestScore && (it.Quality > best.Quality ||
					(it.Quality == best.Quality && it.ID < best.ID))) {
				picked := it
				best = &picked
				bestSkill = sg.id
				bestScore = score
			}
		}
	}
	return best, bestSkill
}

func (p *Planner) score(it catalog.Item, targetDifficulty int, gaps map[string]float64) float64 {
	coverage := 0.0
	for _, tag := range it.SkillTags {
		coverage += gaps[tag]
	}
	if coverage > 1 {
		coverage = 1
	}
	distance := math.Abs(float64(targetDifficulty-it.Difficulty())) / float64(catalog.MaxDifficulty)
	return p.cfg.GapWeight*coverage +
		p.cfg.RelevanceWeight*(it.Relevance/100) +
		p.cfg.QualityWeight*(it.Quality/100) -
		p.cfg.DifficultyPenalty*distance
}

// insertMilestones drops a checkpoint every ceil(weeks/4) weeks covering
// the skills introduced since the previous checkpoint. The first milestone
// starts available; the rest unlock in order.
func (p *Planner) insertMilestones(plan *PathPlan, firstScheduledWeek map[string]int) {
	interval := int(math.Ceil(float64(plan.DurationWeeks) / 4.0))
	if interval < 1 {
		interval = 1
	}

	prev := -1
	for end := interval - 1; ; end += interval {
		if end >= plan.DurationWeeks {
			end = plan.DurationWeeks - 1
		}

		var covered []string
		for id, w := range firstScheduledWeek {
			if w > prev && w <= end {
				covered = append(covered, id)
			}
		}
		sort.Strings(covered)

		m := Milestone{
			ID:               uuid.NewString(),
			PlanID:           plan.ID,
			FromWeek:         prev + 1,
			WeekIndex:        end,
			CoveredSkills:    covered,
			MasteryThreshold: p.cfg.MilestoneMastery,
			MinCompleted:     p.cfg.MilestoneMinCompleted,
			Status:           MilestoneLocked,
		}
		if len(plan.Milestones) == 0 {
			m.Status = MilestoneAvailable
		}
		plan.Milestones = append(plan.Milestones, m)

		prev = end
		if end == plan.DurationWeeks-1 {
			break
		}
	}
}

func removeItem(pool map[string][]catalog.Item, itemID string) {
	for skill, items := range pool {
		kept := items[:0]
		for _, it := range items {
			if it.ID != itemID {
				kept = append(kept, it)
			}
		}
		pool[skill] = kept
	}
}
