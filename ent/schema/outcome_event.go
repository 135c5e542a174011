package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OutcomeEvent is the append-only record of one attempt on an assignment.
// The adaptation engine replays these to build its rolling windows.
type OutcomeEvent struct {
	ent.Schema
}

func (OutcomeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (OutcomeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("skill_id").NotEmpty(),
		field.String("plan_id").NotEmpty(),
		field.String("assignment_id").NotEmpty(),
		field.String("item_id").NotEmpty(),
		field.Bool("success"),
		field.Int("time_spent_minutes").NonNegative(),
		field.Int("estimated_minutes").NonNegative(),
		field.Int("hints_used").NonNegative(),
		field.Float("signal").Comment("Derived outcome signal in [0,1]"),
	}
}

func (OutcomeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_id"),
		index.Fields("plan_id"),
	}
}
