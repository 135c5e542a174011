// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/salmon302/DSATrain-sub001/ent/skillmastery"
)

// SkillMastery is the model entity for the SkillMastery schema.
type SkillMastery struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// Estimated mastery in [0,1]
	Mastery float64 `json:"mastery,omitempty"`
	// Estimate confidence in [0,1]
	Confidence float64 `json:"confidence,omitempty"`
	// Trend holds the value of the "trend" field.
	Trend string `json:"trend,omitempty"`
	// Observations holds the value of the "observations" field.
	Observations int `json:"observations,omitempty"`
	// Idle days beyond grace already decayed, keeps decay idempotent
	DecayedDays int `json:"decayed_days,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated  time.Time `json:"last_updated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SkillMastery) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case skillmastery.FieldMastery, skillmastery.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case skillmastery.FieldID, skillmastery.FieldObservations, skillmastery.FieldDecayedDays:
			values[i] = new(sql.NullInt64)
		case skillmastery.FieldUserID, skillmastery.FieldSkillID, skillmastery.FieldTrend:
			values[i] = new(sql.NullString)
		case skillmastery.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SkillMastery fields.
func (sm *SkillMastery) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case skillmastery.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			sm.ID = int(value.Int64)
		case skillmastery.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				sm.UserID = value.String
			}
		case skillmastery.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				sm.SkillID = value.String
			}
		case skillmastery.FieldMastery:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery", values[i])
			} else if value.Valid {
				sm.Mastery = value.Float64
			}
		case skillmastery.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				sm.Confidence = value.Float64
			}
		case skillmastery.FieldTrend:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trend", values[i])
			} else if value.Valid {
				sm.Trend = value.String
			}
		case skillmastery.FieldObservations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field observations", values[i])
			} else if value.Valid {
				sm.Observations = int(value.Int64)
			}
		case skillmastery.FieldDecayedDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field decayed_days", values[i])
			} else if value.Valid {
				sm.DecayedDays = int(value.Int64)
			}
		case skillmastery.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				sm.LastUpdated = value.Time
			}
		default:
			sm.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SkillMastery.
// This includes values selected through modifiers, order, etc.
func (sm *SkillMastery) Value(name string) (ent.Value, error) {
	return sm.selectValues.Get(name)
}

// Update returns a builder for updating this SkillMastery.
// Note that you need to call SkillMastery.Unwrap() before calling this method if this SkillMastery
// was returned from a transaction, and the transaction was committed or rolled back.
func (sm *SkillMastery) Update() *SkillMasteryUpdateOne {
	return NewSkillMasteryClient(sm.config).UpdateOne(sm)
}

// Unwrap unwraps the SkillMastery entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (sm *SkillMastery) Unwrap() *SkillMastery {
	_tx, ok := sm.config.driver.(*txDriver)
	if !ok {
		panic("ent: SkillMastery is not a transactional entity")
	}
	sm.config.driver = _tx.drv
	return sm
}

// String implements the fmt.Stringer.
func (sm *SkillMastery) String() string {
	var builder strings.Builder
	builder.WriteString("SkillMastery(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sm.ID))
	builder.WriteString("user_id=")
	builder.WriteString(sm.UserID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(sm.SkillID)
	builder.WriteString(", ")
	builder.WriteString("mastery=")
	builder.WriteString(fmt.Sprintf("%v", sm.Mastery))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", sm.Confidence))
	builder.WriteString(", ")
	builder.WriteString("trend=")
	builder.WriteString(sm.Trend)
	builder.WriteString(", ")
	builder.WriteString("observations=")
	builder.WriteString(fmt.Sprintf("%v", sm.Observations))
	builder.WriteString(", ")
	builder.WriteString("decayed_days=")
	builder.WriteString(fmt.Sprintf("%v", sm.DecayedDays))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(sm.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SkillMasteries is a parsable slice of SkillMastery.
type SkillMasteries []*SkillMastery
