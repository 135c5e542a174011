package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AdaptationEvent records one structural change the adaptation engine made
// to an active plan, mirroring the plan's in-row adaptation log for
// cross-plan analytics.
type AdaptationEvent struct {
	ent.Schema
}

func (AdaptationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AdaptationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("plan_id").NotEmpty(),
		field.String("skill_id").NotEmpty(),
		field.String("trigger").NotEmpty(),
		field.String("reason").NotEmpty(),
		field.JSON("inserted_items", []string{}).Optional(),
		field.JSON("skipped_items", []string{}).Optional(),
		field.Int("duration_weeks").NonNegative(),
	}
}

func (AdaptationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("plan_id"),
	}
}
