package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewCard is the spaced repetition state for one (user, skill) pair.
type ReviewCard struct {
	ent.Schema
}

func (ReviewCard) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("skill_id").NotEmpty(),
		field.Float("interval_days").Comment("Current interval in days"),
		field.Float("ease").Comment("Ease factor, floored at the configured minimum"),
		field.Int("repetitions").NonNegative().Default(0),
		field.Int("lapses").NonNegative().Default(0),
		field.Time("last_review_at"),
		field.Time("next_review_at"),
	}
}

func (ReviewCard) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_id").Unique(),
		index.Fields("user_id", "next_review_at"),
	}
}
