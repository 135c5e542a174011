package planner

import (
	"fmt"
	"sort"
	"time"
)

// Goal describes what the learner wants out of a plan: the skills to reach
// and the overall proficiency level to reach them at.
type Goal struct {
	TargetSkills []string `json:"target_skills"`
	TargetLevel  float64  `json:"target_level"` // (0,1]
}

// PlanStatus is the lifecycle state of a PathPlan.
type PlanStatus string

const (
	StatusDraft     PlanStatus = "draft"
	StatusActive    PlanStatus = "active"
	StatusCompleted PlanStatus = "completed"
	StatusAbandoned PlanStatus = "abandoned"
)

// AssignmentStatus tracks a single assignment's progress. Skipped
// assignments stay in the plan for auditability; they are never deleted.
type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentCompleted AssignmentStatus = "completed"
	AssignmentSkipped   AssignmentStatus = "skipped"
)

// Outcome captures how an attempt on an assignment went.
type Outcome struct {
	TimeSpentMins int  `json:"time_spent_minutes"`
	Success       bool `json:"success"`
	HintsUsed     int  `json:"hints_used"`
}

// Assignment is one scheduled practice item within a plan week. Position
// orders assignments within their week in a prerequisite-respecting,
// interleaved sequence.
type Assignment struct {
	ID            string           `json:"id"`
	ItemID        string           `json:"item_id"`
	SkillID       string           `json:"skill_id"` // skill the item was chosen for
	WeekIndex     int              `json:"week_index"`
	Position      int              `json:"position"`
	Status        AssignmentStatus `json:"status"`
	EstimatedMins int              `json:"estimated_minutes"`
	Difficulty    int              `json:"difficulty"` // 1..15 snapshot of the item
	Outcome       *Outcome         `json:"outcome,omitempty"`
}

// MilestoneStatus is monotonic: locked -> available -> completed.
type MilestoneStatus string

const (
	MilestoneLocked    MilestoneStatus = "locked"
	MilestoneAvailable MilestoneStatus = "available"
	MilestoneCompleted MilestoneStatus = "completed"
)

// Milestone is a checkpoint covering the skills introduced in its week
// span. It completes when every covered skill reaches the mastery
// threshold and enough assignments in the span are completed.
type Milestone struct {
	ID               string          `json:"id"`
	PlanID           string          `json:"plan_id"`
	FromWeek         int             `json:"from_week"`  // first week of the span
	WeekIndex        int             `json:"week_index"` // checkpoint week (inclusive)
	CoveredSkills    []string        `json:"covered_skills"`
	MasteryThreshold float64         `json:"mastery_threshold"`
	MinCompleted     int             `json:"min_completed"`
	Status           MilestoneStatus `json:"status"`
}

// RelaxationStep names a rung of the constraint-relaxation ladder.
type RelaxationStep string

const (
	RelaxQuality        RelaxationStep = "quality_threshold"
	RelaxWindow         RelaxationStep = "difficulty_window"
	RelaxParentCategory RelaxationStep = "parent_category"
	RelaxExhausted      RelaxationStep = "exhausted"
)

// RelaxationReason records why a plan is partial: which skill, which week,
// and how far down the ladder the planner got.
type RelaxationReason struct {
	WeekIndex int            `json:"week_index"`
	SkillID   string         `json:"skill_id"`
	Step      RelaxationStep `json:"step"`
	Detail    string         `json:"detail"`
}

// AdaptationEntry is one append-only record in a plan's adaptation log.
// Every structural change to an active plan produces an entry.
type AdaptationEntry struct {
	At            time.Time `json:"at"`
	SkillID       string    `json:"skill_id"`
	Trigger       string    `json:"trigger"`
	Reason        string    `json:"reason"`
	InsertedItems []string  `json:"inserted_items,omitempty"`
	SkippedItems  []string  `json:"skipped_items,omitempty"`
	DurationWeeks int       `json:"duration_weeks,omitempty"` // new duration if extended
}

// PathPlan is an ordered, time-boxed curriculum for one user. Once the
// status reaches completed or abandoned the plan is immutable.
type PathPlan struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	Goal            Goal               `json:"goal"`
	DurationWeeks   int                `json:"duration_weeks"`
	HoursPerWeek    int                `json:"hours_per_week"`
	Status          PlanStatus         `json:"status"`
	Partial         bool               `json:"partial"` // PARTIAL_PLAN marker
	PartialReasons  []RelaxationReason `json:"partial_reasons,omitempty"`
	Assignments     []Assignment       `json:"assignments"`
	Milestones      []Milestone        `json:"milestones"`
	AdaptationLog   []AdaptationEntry  `json:"adaptation_log"`
	DifficultyBoost map[string]int     `json:"difficulty_boost,omitempty"` // per-skill target raise from adaptation
	CreatedAt       time.Time          `json:"created_at"`
}

// Mutable reports whether the plan may still be changed.
func (p *PathPlan) Mutable() bool {
	return p.Status == StatusDraft || p.Status == StatusActive
}

// Week returns the week's assignments ordered by position.
func (p *PathPlan) Week(week int) []Assignment {
	var out []Assignment
	for _, a := range p.Assignments {
		if a.WeekIndex == week {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// WeekMinutes returns the summed estimated minutes of a week's
// non-skipped assignments.
func (p *PathPlan) WeekMinutes(week int) int {
	total := 0
	for _, a := range p.Assignments {
		if a.WeekIndex == week && a.Status != AssignmentSkipped {
			total += a.EstimatedMins
		}
	}
	return total
}

// Assignment returns a pointer to the assignment with the given ID, or an
// error if it is not part of the plan.
func (p *PathPlan) Assignment(id string) (*Assignment, error) {
	for i := range p.Assignments {
		if p.Assignments[i].ID == id {
			return &p.Assignments[i], nil
		}
	}
	return nil, fmt.Errorf("assignment %q not in plan %q", id, p.ID)
}

// CompletedInSpan counts completed assignments with week in [from, to].
func (p *PathPlan) CompletedInSpan(from, to int) int {
	n := 0
	for _, a := range p.Assignments {
		if a.WeekIndex >= from && a.WeekIndex <= to && a.Status == AssignmentCompleted {
			n++
		}
	}
	return n
}

// CurrentWeek is the plan's progress pointer: the week of the earliest
// pending assignment, or the final week when everything is resolved.
func (p *PathPlan) CurrentWeek() int {
	for w := 0; w < p.DurationWeeks; w++ {
		for _, a := range p.Assignments {
			if a.WeekIndex == w && a.Status == AssignmentPending {
				return w
			}
		}
	}
	if p.DurationWeeks == 0 {
		return 0
	}
	return p.DurationWeeks - 1
}

// AppendLog appends an adaptation entry. The log is append-only.
func (p *PathPlan) AppendLog(e AdaptationEntry) {
	p.AdaptationLog = append(p.AdaptationLog, e)
}
