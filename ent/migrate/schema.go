// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdaptationEventsColumns holds the columns for the "adaptation_events" table.
	AdaptationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "trigger", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "inserted_items", Type: field.TypeJSON, Nullable: true},
		{Name: "skipped_items", Type: field.TypeJSON, Nullable: true},
		{Name: "duration_weeks", Type: field.TypeInt},
	}
	// AdaptationEventsTable holds the schema information for the "adaptation_events" table.
	AdaptationEventsTable = &schema.Table{
		Name:       "adaptation_events",
		Columns:    AdaptationEventsColumns,
		PrimaryKey: []*schema.Column{AdaptationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "adaptationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[1]},
			},
			{
				Name:    "adaptationevent_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[2]},
			},
			{
				Name:    "adaptationevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[3]},
			},
			{
				Name:    "adaptationevent_plan_id",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[4]},
			},
		},
	}
	// ItemsColumns holds the columns for the "items" table.
	ItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "skill_tags", Type: field.TypeJSON},
		{Name: "difficulty_band", Type: field.TypeString},
		{Name: "difficulty_sublevel", Type: field.TypeInt},
		{Name: "quality_score", Type: field.TypeFloat64},
		{Name: "relevance_score", Type: field.TypeFloat64},
		{Name: "estimated_minutes", Type: field.TypeInt},
	}
	// ItemsTable holds the schema information for the "items" table.
	ItemsTable = &schema.Table{
		Name:       "items",
		Columns:    ItemsColumns,
		PrimaryKey: []*schema.Column{ItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "item_difficulty_band",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[3]},
			},
		},
	}
	// OutcomeEventsColumns holds the columns for the "outcome_events" table.
	OutcomeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "assignment_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "success", Type: field.TypeBool},
		{Name: "time_spent_minutes", Type: field.TypeInt},
		{Name: "estimated_minutes", Type: field.TypeInt},
		{Name: "hints_used", Type: field.TypeInt},
		{Name: "signal", Type: field.TypeFloat64},
	}
	// OutcomeEventsTable holds the schema information for the "outcome_events" table.
	OutcomeEventsTable = &schema.Table{
		Name:       "outcome_events",
		Columns:    OutcomeEventsColumns,
		PrimaryKey: []*schema.Column{OutcomeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "outcomeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{OutcomeEventsColumns[1]},
			},
			{
				Name:    "outcomeevent_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{OutcomeEventsColumns[2]},
			},
			{
				Name:    "outcomeevent_user_id_skill_id",
				Unique:  false,
				Columns: []*schema.Column{OutcomeEventsColumns[3], OutcomeEventsColumns[4]},
			},
			{
				Name:    "outcomeevent_plan_id",
				Unique:  false,
				Columns: []*schema.Column{OutcomeEventsColumns[5]},
			},
		},
	}
	// PathPlansColumns holds the columns for the "path_plans" table.
	PathPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "goal", Type: field.TypeJSON},
		{Name: "duration_weeks", Type: field.TypeInt},
		{Name: "hours_per_week", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "partial", Type: field.TypeBool, Default: false},
		{Name: "partial_reasons", Type: field.TypeJSON, Nullable: true},
		{Name: "assignments", Type: field.TypeJSON},
		{Name: "milestones", Type: field.TypeJSON},
		{Name: "adaptation_log", Type: field.TypeJSON, Nullable: true},
		{Name: "difficulty_boost", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PathPlansTable holds the schema information for the "path_plans" table.
	PathPlansTable = &schema.Table{
		Name:       "path_plans",
		Columns:    PathPlansColumns,
		PrimaryKey: []*schema.Column{PathPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pathplan_user_id",
				Unique:  false,
				Columns: []*schema.Column{PathPlansColumns[2]},
			},
			{
				Name:    "pathplan_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{PathPlansColumns[2], PathPlansColumns[6]},
			},
		},
	}
	// ReviewCardsColumns holds the columns for the "review_cards" table.
	ReviewCardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "interval_days", Type: field.TypeFloat64},
		{Name: "ease", Type: field.TypeFloat64},
		{Name: "repetitions", Type: field.TypeInt, Default: 0},
		{Name: "lapses", Type: field.TypeInt, Default: 0},
		{Name: "last_review_at", Type: field.TypeTime},
		{Name: "next_review_at", Type: field.TypeTime},
	}
	// ReviewCardsTable holds the schema information for the "review_cards" table.
	ReviewCardsTable = &schema.Table{
		Name:       "review_cards",
		Columns:    ReviewCardsColumns,
		PrimaryKey: []*schema.Column{ReviewCardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewcard_user_id_skill_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewCardsColumns[1], ReviewCardsColumns[2]},
			},
			{
				Name:    "reviewcard_user_id_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewCardsColumns[1], ReviewCardsColumns[8]},
			},
		},
	}
	// SkillMasteriesColumns holds the columns for the "skill_masteries" table.
	SkillMasteriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "mastery", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "trend", Type: field.TypeString, Default: "flat"},
		{Name: "observations", Type: field.TypeInt},
		{Name: "decayed_days", Type: field.TypeInt, Default: 0},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// SkillMasteriesTable holds the schema information for the "skill_masteries" table.
	SkillMasteriesTable = &schema.Table{
		Name:       "skill_masteries",
		Columns:    SkillMasteriesColumns,
		PrimaryKey: []*schema.Column{SkillMasteriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skillmastery_user_id_skill_id",
				Unique:  true,
				Columns: []*schema.Column{SkillMasteriesColumns[1], SkillMasteriesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdaptationEventsTable,
		ItemsTable,
		OutcomeEventsTable,
		PathPlansTable,
		ReviewCardsTable,
		SkillMasteriesTable,
	}
)

func init() {
}
