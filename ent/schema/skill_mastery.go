package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SkillMastery is the current mastery estimate for one (user, skill) pair.
// The estimator is the only writer.
type SkillMastery struct {
	ent.Schema
}

func (SkillMastery) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("skill_id").NotEmpty(),
		field.Float("mastery").Comment("Estimated mastery in [0,1]"),
		field.Float("confidence").Comment("Estimate confidence in [0,1]"),
		field.String("trend").Default("flat"),
		field.Int("observations").NonNegative(),
		field.Int("decayed_days").NonNegative().Default(0).
			Comment("Idle days beyond grace already decayed, keeps decay idempotent"),
		field.Time("last_updated"),
	}
}

func (SkillMastery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_id").Unique(),
	}
}
