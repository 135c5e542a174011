// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/salmon302/DSATrain-sub001/ent/pathplan"
	"github.com/salmon302/DSATrain-sub001/internal/planner"
)

// PathPlan is the model entity for the PathPlan schema.
type PathPlan struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PlanID holds the value of the "plan_id" field.
	PlanID string `json:"plan_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Goal holds the value of the "goal" field.
	Goal planner.Goal `json:"goal,omitempty"`
	// DurationWeeks holds the value of the "duration_weeks" field.
	DurationWeeks int `json:"duration_weeks,omitempty"`
	// HoursPerWeek holds the value of the "hours_per_week" field.
	HoursPerWeek int `json:"hours_per_week,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Partial holds the value of the "partial" field.
	Partial bool `json:"partial,omitempty"`
	// PartialReasons holds the value of the "partial_reasons" field.
	PartialReasons []planner.RelaxationReason `json:"partial_reasons,omitempty"`
	// Assignments holds the value of the "assignments" field.
	Assignments []planner.Assignment `json:"assignments,omitempty"`
	// Milestones holds the value of the "milestones" field.
	Milestones []planner.Milestone `json:"milestones,omitempty"`
	// AdaptationLog holds the value of the "adaptation_log" field.
	AdaptationLog []planner.AdaptationEntry `json:"adaptation_log,omitempty"`
	// DifficultyBoost holds the value of the "difficulty_boost" field.
	DifficultyBoost map[string]int `json:"difficulty_boost,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PathPlan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pathplan.FieldGoal, pathplan.FieldPartialReasons, pathplan.FieldAssignments, pathplan.FieldMilestones, pathplan.FieldAdaptationLog, pathplan.FieldDifficultyBoost:
			values[i] = new([]byte)
		case pathplan.FieldPartial:
			values[i] = new(sql.NullBool)
		case pathplan.FieldID, pathplan.FieldDurationWeeks, pathplan.FieldHoursPerWeek:
			values[i] = new(sql.NullInt64)
		case pathplan.FieldPlanID, pathplan.FieldUserID, pathplan.FieldStatus:
			values[i] = new(sql.NullString)
		case pathplan.FieldCreatedAt, pathplan.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PathPlan fields.
func (pp *PathPlan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pathplan.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			pp.ID = int(value.Int64)
		case pathplan.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				pp.PlanID = value.String
			}
		case pathplan.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				pp.UserID = value.String
			}
		case pathplan.FieldGoal:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field goal", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &pp.Goal); err != nil {
					return fmt.Errorf("unmarshal field goal: %w", err)
				}
			}
		case pathplan.FieldDurationWeeks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_weeks", values[i])
			} else if value.Valid {
				pp.DurationWeeks = int(value.Int64)
			}
		case pathplan.FieldHoursPerWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hours_per_week", values[i])
			} else if value.Valid {
				pp.HoursPerWeek = int(value.Int64)
			}
		case pathplan.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				pp.Status = value.String
			}
		case pathplan.FieldPartial:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field partial", values[i])
			} else if value.Valid {
				pp.Partial = value.Bool
			}
		case pathplan.FieldPartialReasons:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field partial_reasons", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &pp.PartialReasons); err != nil {
					return fmt.Errorf("unmarshal field partial_reasons: %w", err)
				}
			}
		case pathplan.FieldAssignments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field assignments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &pp.Assignments); err != nil {
					return fmt.Errorf("unmarshal field assignments: %w", err)
				}
			}
		case pathplan.FieldMilestones:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field milestones", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &pp.Milestones); err != nil {
					return fmt.Errorf("unmarshal field milestones: %w", err)
				}
			}
		case pathplan.FieldAdaptationLog:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field adaptation_log", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &pp.AdaptationLog); err != nil {
					return fmt.Errorf("unmarshal field adaptation_log: %w", err)
				}
			}
		case pathplan.FieldDifficultyBoost:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_boost", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &pp.DifficultyBoost); err != nil {
					return fmt.Errorf("unmarshal field difficulty_boost: %w", err)
				}
			}
		case pathplan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				pp.CreatedAt = value.Time
			}
		case pathplan.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				pp.UpdatedAt = value.Time
			}
		default:
			pp.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PathPlan.
// This includes values selected through modifiers, order, etc.
func (pp *PathPlan) Value(name string) (ent.Value, error) {
	return pp.selectValues.Get(name)
}

// Update returns a builder for updating this PathPlan.
// Note that you need to call PathPlan.Unwrap() before calling this method if this PathPlan
// was returned from a transaction, and the transaction was committed or rolled back.
func (pp *PathPlan) Update() *PathPlanUpdateOne {
	return NewPathPlanClient(pp.config).UpdateOne(pp)
}

// Unwrap unwraps the PathPlan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (pp *PathPlan) Unwrap() *PathPlan {
	_tx, ok := pp.config.driver.(*txDriver)
	if !ok {
		panic("ent: PathPlan is not a transactional entity")
	}
	pp.config.driver = _tx.drv
	return pp
}

// String implements the fmt.Stringer.
func (pp *PathPlan) String() string {
	var builder strings.Builder
	builder.WriteString("PathPlan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", pp.ID))
	builder.WriteString("plan_id=")
	builder.WriteString(pp.PlanID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(pp.UserID)
	builder.WriteString(", ")
	builder.WriteString("goal=")
	builder.WriteString(fmt.Sprintf("%v", pp.Goal))
	builder.WriteString(", ")
	builder.WriteString("duration_weeks=")
	builder.WriteString(fmt.Sprintf("%v", pp.DurationWeeks))
	builder.WriteString(", ")
	builder.WriteString("hours_per_week=")
	builder.WriteString(fmt.Sprintf("%v", pp.HoursPerWeek))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(pp.Status)
	builder.WriteString(", ")
	builder.WriteString("partial=")
	builder.WriteString(fmt.Sprintf("%v", pp.Partial))
	builder.WriteString(", ")
	builder.WriteString("partial_reasons=")
	builder.WriteString(fmt.Sprintf("%v", pp.PartialReasons))
	builder.WriteString(", ")
	builder.WriteString("assignments=")
	builder.WriteString(fmt.Sprintf("%v", pp.Assignments))
	builder.WriteString(", ")
	builder.WriteString("milestones=")
	builder.WriteString(fmt.Sprintf("%v", pp.Milestones))
	builder.WriteString(", ")
	builder.WriteString("adaptation_log=")
	builder.WriteString(fmt.Sprintf("%v", pp.AdaptationLog))
	builder.WriteString(", ")
	builder.WriteString("difficulty_boost=")
	builder.WriteString(fmt.Sprintf("%v", pp.DifficultyBoost))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(pp.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(pp.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PathPlans is a parsable slice of PathPlan.
type PathPlans []*PathPlan
