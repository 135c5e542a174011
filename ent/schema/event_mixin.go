package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin carries the fields shared by OutcomeEvent and AdaptationEvent.
// Both histories interleave on one global sequence, so replaying a user's
// attempt outcomes alongside the plan changes they triggered keeps a total
// order across the two tables.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Position in the global event order, shared across event tables"),
		field.Time("occurred_at").
			Default(time.Now).
			Immutable().
			Comment("UTC time the outcome or adaptation happened"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
		index.Fields("occurred_at"),
	}
}
