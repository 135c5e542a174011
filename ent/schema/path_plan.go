package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/salmon302/DSATrain-sub001/internal/planner"
)

// PathPlan stores a complete plan as one row: the assignments, milestones,
// and adaptation log live in JSON columns so a plan is always read and
// written atomically.
type PathPlan struct {
	ent.Schema
}

func (PathPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").Unique().NotEmpty().Immutable(),
		field.String("user_id").NotEmpty().Immutable(),
		field.JSON("goal", planner.Goal{}),
		field.Int("duration_weeks").Positive(),
		field.Int("hours_per_week").Positive(),
		field.String("status").Default(string(planner.StatusActive)),
		field.Bool("partial").Default(false),
		field.JSON("partial_reasons", []planner.RelaxationReason{}).Optional(),
		field.JSON("assignments", []planner.Assignment{}),
		field.JSON("milestones", []planner.Milestone{}),
		field.JSON("adaptation_log", []planner.AdaptationEntry{}).Optional(),
		field.JSON("difficulty_boost", map[string]int{}).Optional(),
		field.Time("created_at").Immutable(),
		field.Time("updated_at"),
	}
}

func (PathPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "status"),
	}
}
