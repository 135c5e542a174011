package milestone

import (
	"github.com/salmon302/DSATrain-sub001/internal/planner"
	"github.com/salmon302/DSATrain-sub001/internal/profile"
)

// Change records one milestone transition produced by an evaluation pass.
type Change struct {
	MilestoneID string
	From        planner.MilestoneStatus
	To          planner.MilestoneStatus
}

// Evaluate re-derives milestone statuses for a plan from the user's current
// mastery and progress. Transitions are strictly forward: locked becomes
// available once the previous milestone completes and the plan has reached
// the milestone's span; available becomes completed once every covered
// skill clears the mastery threshold and enough of the span's assignments
// are done. A status never moves backwards, even if mastery later decays.
func Evaluate(plan *planner.PathPlan, mastery map[string]profile.SkillMastery, currentWeek int) []Change {
	var changes []Change

	prevCompleted := true // no milestone before the first
	for i := range plan.Milestones {
		m := &plan.Milestones[i]

		if m.Status == planner.MilestoneLocked && prevCompleted && currentWeek >= m.FromWeek {
			m.Status = planner.MilestoneAvailable
			changes = append(changes, Change{MilestoneID: m.ID, From: planner.MilestoneLocked, To: planner.MilestoneAvailable})
		}

		if m.Status == planner.MilestoneAvailable && satisfied(plan, m, mastery) {
			m.Status = planner.MilestoneCompleted
			changes = append(changes, Change{MilestoneID: m.ID, From: planner.MilestoneAvailable, To: planner.MilestoneCompleted})
		}

		prevCompleted = m.Status == planner.MilestoneCompleted
	}
	return changes
}

func satisfied(plan *planner.PathPlan, m *planner.Milestone, mastery map[string]profile.SkillMastery) bool {
	for _, skillID := range m.CoveredSkills {
		if mastery[skillID].Mastery < m.MasteryThreshold {
			return false
		}
	}

	// Short spans cannot demand more completions than they hold.
	need := m.MinCompleted
	if span := spanSize(plan, m); span < need {
		need = span
	}
	return plan.CompletedInSpan(m.FromWeek, m.WeekIndex) >= need
}

func spanSize(plan *planner.PathPlan, m *planner.Milestone) int {
	n := 0
	for _, a := range plan.Assignments {
		if a.WeekIndex >= m.FromWeek && a.WeekIndex <= m.WeekIndex && a.Status != planner.AssignmentSkipped {
			n++
		}
	}
	return n
}
