package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Item is one practice problem in the catalog.
type Item struct {
	ent.Schema
}

func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").Unique().NotEmpty().Immutable(),
		field.JSON("skill_tags", []string{}),
		field.String("difficulty_band"),
		field.Int("difficulty_sublevel").Range(1, 5),
		field.Float("quality_score").Comment("Editorial quality in [0,100]"),
		field.Float("relevance_score").Comment("Interview relevance in [0,100]"),
		field.Int("estimated_minutes").Positive(),
	}
}

func (Item) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("difficulty_band"),
	}
}
