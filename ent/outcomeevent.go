// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/salmon302/DSATrain-sub001/ent/outcomeevent"
)

// OutcomeEvent is the model entity for the OutcomeEvent schema.
type OutcomeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the global event order, shared across event tables
	Sequence int64 `json:"sequence,omitempty"`
	// UTC time the outcome or adaptation happened
	OccurredAt time.Time `json:"occurred_at,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// PlanID holds the value of the "plan_id" field.
	PlanID string `json:"plan_id,omitempty"`
	// AssignmentID holds the value of the "assignment_id" field.
	AssignmentID string `json:"assignment_id,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID string `json:"item_id,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// TimeSpentMinutes holds the value of the "time_spent_minutes" field.
	TimeSpentMinutes int `json:"time_spent_minutes,omitempty"`
	// EstimatedMinutes holds the value of the "estimated_minutes" field.
	EstimatedMinutes int `json:"estimated_minutes,omitempty"`
	// HintsUsed holds the value of the "hints_used" field.
	HintsUsed int `json:"hints_used,omitempty"`
	// Derived outcome signal in [0,1]
	Signal       float64 `json:"signal,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OutcomeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case outcomeevent.FieldSuccess:
			values[i] = new(sql.NullBool)
		case outcomeevent.FieldSignal:
			values[i] = new(sql.NullFloat64)
		case outcomeevent.FieldID, outcomeevent.FieldSequence, outcomeevent.FieldTimeSpentMinutes, outcomeevent.FieldEstimatedMinutes, outcomeevent.FieldHintsUsed:
			values[i] = new(sql.NullInt64)
		case outcomeevent.FieldUserID, outcomeevent.FieldSkillID, outcomeevent.FieldPlanID, outcomeevent.FieldAssignmentID, outcomeevent.FieldItemID:
			values[i] = new(sql.NullString)
		case outcomeevent.FieldOccurredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OutcomeEvent fields.
func (oe *OutcomeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case outcomeevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			oe.ID = int(value.Int64)
		case outcomeevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				oe.Sequence = value.Int64
			}
		case outcomeevent.FieldOccurredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field occurred_at", values[i])
			} else if value.Valid {
				oe.OccurredAt = value.Time
			}
		case outcomeevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				oe.UserID = value.String
			}
		case outcomeevent.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				oe.SkillID = value.String
			}
		case outcomeevent.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				oe.PlanID = value.String
			}
		case outcomeevent.FieldAssignmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignment_id", values[i])
			} else if value.Valid {
				oe.AssignmentID = value.String
			}
		case outcomeevent.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				oe.ItemID = value.String
			}
		case outcomeevent.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				oe.Success = value.Bool
			}
		case outcomeevent.FieldTimeSpentMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_minutes", values[i])
			} else if value.Valid {
				oe.TimeSpentMinutes = int(value.Int64)
			}
		case outcomeevent.FieldEstimatedMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_minutes", values[i])
			} else if value.Valid {
				oe.EstimatedMinutes = int(value.Int64)
			}
		case outcomeevent.FieldHintsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hints_used", values[i])
			} else if value.Valid {
				oe.HintsUsed = int(value.Int64)
			}
		case outcomeevent.FieldSignal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field signal", values[i])
			} else if value.Valid {
				oe.Signal = value.Float64
			}
		default:
			oe.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OutcomeEvent.
// This includes values selected through modifiers, order, etc.
func (oe *OutcomeEvent) Value(name string) (ent.Value, error) {
	return oe.selectValues.Get(name)
}

// Update returns a builder for updating this OutcomeEvent.
// Note that you need to call OutcomeEvent.Unwrap() before calling this method if this OutcomeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (oe *OutcomeEvent) Update() *OutcomeEventUpdateOne {
	return NewOutcomeEventClient(oe.config).UpdateOne(oe)
}

// Unwrap unwraps the OutcomeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (oe *OutcomeEvent) Unwrap() *OutcomeEvent {
	_tx, ok := oe.config.driver.(*txDriver)
	if !ok {
		panic("ent: OutcomeEvent is not a transactional entity")
	}
	oe.config.driver = _tx.drv
	return oe
}

// String implements the fmt.Stringer.
func (oe *OutcomeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("OutcomeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", oe.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", oe.Sequence))
	builder.WriteString(", ")
	builder.WriteString("occurred_at=")
	builder.WriteString(oe.OccurredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(oe.UserID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(oe.SkillID)
	builder.WriteString(", ")
	builder.WriteString("plan_id=")
	builder.WriteString(oe.PlanID)
	builder.WriteString(", ")
	builder.WriteString("assignment_id=")
	builder.WriteString(oe.AssignmentID)
	builder.WriteString(", ")
	builder.WriteString("item_id=")
	builder.WriteString(oe.ItemID)
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", oe.Success))
	builder.WriteString(", ")
	builder.WriteString("time_spent_minutes=")
	builder.WriteString(fmt.Sprintf("%v", oe.TimeSpentMinutes))
	builder.WriteString(", ")
	builder.WriteString("estimated_minutes=")
	builder.WriteString(fmt.Sprintf("%v", oe.EstimatedMinutes))
	builder.WriteString(", ")
	builder.WriteString("hints_used=")
	builder.WriteString(fmt.Sprintf("%v", oe.HintsUsed))
	builder.WriteString(", ")
	builder.WriteString("signal=")
	builder.WriteString(fmt.Sprintf("%v", oe.Signal))
	builder.WriteByte(')')
	return builder.String()
}

// OutcomeEvents is a parsable slice of OutcomeEvent.
type OutcomeEvents []*OutcomeEvent
