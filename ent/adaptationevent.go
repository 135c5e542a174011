// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/salmon302/DSATrain-sub001/ent/adaptationevent"
)

// AdaptationEvent is the model entity for the AdaptationEvent schema.
type AdaptationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the global event order, shared across event tables
	Sequence int64 `json:"sequence,omitempty"`
	// UTC time the outcome or adaptation happened
	OccurredAt time.Time `json:"occurred_at,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// PlanID holds the value of the "plan_id" field.
	PlanID string `json:"plan_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// Trigger holds the value of the "trigger" field.
	Trigger string `json:"trigger,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// InsertedItems holds the value of the "inserted_items" field.
	InsertedItems []string `json:"inserted_items,omitempty"`
	// SkippedItems holds the value of the "skipped_items" field.
	SkippedItems []string `json:"skipped_items,omitempty"`
	// DurationWeeks holds the value of the "duration_weeks" field.
	DurationWeeks int `json:"duration_weeks,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdaptationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case adaptationevent.FieldInsertedItems, adaptationevent.FieldSkippedItems:
			values[i] = new([]byte)
		case adaptationevent.FieldID, adaptationevent.FieldSequence, adaptationevent.FieldDurationWeeks:
			values[i] = new(sql.NullInt64)
		case adaptationevent.FieldUserID, adaptationevent.FieldPlanID, adaptationevent.FieldSkillID, adaptationevent.FieldTrigger, adaptationevent.FieldReason:
			values[i] = new(sql.NullString)
		case adaptationevent.FieldOccurredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdaptationEvent fields.
func (ae *AdaptationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case adaptationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ae.ID = int(value.Int64)
		case adaptationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				ae.Sequence = value.Int64
			}
		case adaptationevent.FieldOccurredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field occurred_at", values[i])
			} else if value.Valid {
				ae.OccurredAt = value.Time
			}
		case adaptationevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				ae.UserID = value.String
			}
		case adaptationevent.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				ae.PlanID = value.String
			}
		case adaptationevent.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				ae.SkillID = value.String
			}
		case adaptationevent.FieldTrigger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value.Valid {
				ae.Trigger = value.String
			}
		case adaptationevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				ae.Reason = value.String
			}
		case adaptationevent.FieldInsertedItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field inserted_items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ae.InsertedItems); err != nil {
					return fmt.Errorf("unmarshal field inserted_items: %w", err)
				}
			}
		case adaptationevent.FieldSkippedItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skipped_items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ae.SkippedItems); err != nil {
					return fmt.Errorf("unmarshal field skipped_items: %w", err)
				}
			}
		case adaptationevent.FieldDurationWeeks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_weeks", values[i])
			} else if value.Valid {
				ae.DurationWeeks = int(value.Int64)
			}
		default:
			ae.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AdaptationEvent.
// This includes values selected through modifiers, order, etc.
func (ae *AdaptationEvent) Value(name string) (ent.Value, error) {
	return ae.selectValues.Get(name)
}

// Update returns a builder for updating this AdaptationEvent.
// Note that you need to call AdaptationEvent.Unwrap() before calling this method if this AdaptationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (ae *AdaptationEvent) Update() *AdaptationEventUpdateOne {
	return NewAdaptationEventClient(ae.config).UpdateOne(ae)
}

// Unwrap unwraps the AdaptationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ae *AdaptationEvent) Unwrap() *AdaptationEvent {
	_tx, ok := ae.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdaptationEvent is not a transactional entity")
	}
	ae.config.driver = _tx.drv
	return ae
}

// String implements the fmt.Stringer.
func (ae *AdaptationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AdaptationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ae.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", ae.Sequence))
	builder.WriteString(", ")
	builder.WriteString("occurred_at=")
	builder.WriteString(ae.OccurredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(ae.UserID)
	builder.WriteString(", ")
	builder.WriteString("plan_id=")
	builder.WriteString(ae.PlanID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(ae.SkillID)
	builder.WriteString(", ")
	builder.WriteString("trigger=")
	builder.WriteString(ae.Trigger)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(ae.Reason)
	builder.WriteString(", ")
	builder.WriteString("inserted_items=")
	builder.WriteString(fmt.Sprintf("%v", ae.InsertedItems))
	builder.WriteString(", ")
	builder.WriteString("skipped_items=")
	builder.WriteString(fmt.Sprintf("%v", ae.SkippedItems))
	builder.WriteString(", ")
	builder.WriteString("duration_weeks=")
	builder.WriteString(fmt.Sprintf("%v", ae.DurationWeeks))
	builder.WriteByte(')')
	return builder.String()
}

// AdaptationEvents is a parsable slice of AdaptationEvent.
type AdaptationEvents []*AdaptationEvent
