// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/salmon302/DSATrain-sub001/ent/reviewcard"
)

// ReviewCard is the model entity for the ReviewCard schema.
type ReviewCard struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// Current interval in days
	IntervalDays float64 `json:"interval_days,omitempty"`
	// Ease factor, floored at the configured minimum
	Ease float64 `json:"ease,omitempty"`
	// Repetitions holds the value of the "repetitions" field.
	Repetitions int `json:"repetitions,omitempty"`
	// Lapses holds the value of the "lapses" field.
	Lapses int `json:"lapses,omitempty"`
	// LastReviewAt holds the value of the "last_review_at" field.
	LastReviewAt time.Time `json:"last_review_at,omitempty"`
	// NextReviewAt holds the value of the "next_review_at" field.
	NextReviewAt time.Time `json:"next_review_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewCard) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewcard.FieldIntervalDays, reviewcard.FieldEase:
			values[i] = new(sql.NullFloat64)
		case reviewcard.FieldID, reviewcard.FieldRepetitions, reviewcard.FieldLapses:
			values[i] = new(sql.NullInt64)
		case reviewcard.FieldUserID, reviewcard.FieldSkillID:
			values[i] = new(sql.NullString)
		case reviewcard.FieldLastReviewAt, reviewcard.FieldNextReviewAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewCard fields.
func (rc *ReviewCard) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewcard.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			rc.ID = int(value.Int64)
		case reviewcard.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				rc.UserID = value.String
			}
		case reviewcard.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				rc.SkillID = value.String
			}
		case reviewcard.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				rc.IntervalDays = value.Float64
			}
		case reviewcard.FieldEase:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease", values[i])
			} else if value.Valid {
				rc.Ease = value.Float64
			}
		case reviewcard.FieldRepetitions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetitions", values[i])
			} else if value.Valid {
				rc.Repetitions = int(value.Int64)
			}
		case reviewcard.FieldLapses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lapses", values[i])
			} else if value.Valid {
				rc.Lapses = int(value.Int64)
			}
		case reviewcard.FieldLastReviewAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_review_at", values[i])
			} else if value.Valid {
				rc.LastReviewAt = value.Time
			}
		case reviewcard.FieldNextReviewAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_at", values[i])
			} else if value.Valid {
				rc.NextReviewAt = value.Time
			}
		default:
			rc.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewCard.
// This includes values selected through modifiers, order, etc.
func (rc *ReviewCard) Value(name string) (ent.Value, error) {
	return rc.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewCard.
// Note that you need to call ReviewCard.Unwrap() before calling this method if this ReviewCard
// was returned from a transaction, and the transaction was committed or rolled back.
func (rc *ReviewCard) Update() *ReviewCardUpdateOne {
	return NewReviewCardClient(rc.config).UpdateOne(rc)
}

// Unwrap unwraps the ReviewCard entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (rc *ReviewCard) Unwrap() *ReviewCard {
	_tx, ok := rc.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewCard is not a transactional entity")
	}
	rc.config.driver = _tx.drv
	return rc
}

// String implements the fmt.Stringer.
func (rc *ReviewCard) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewCard(")
	builder.WriteString(fmt.Sprintf("id=%v, ", rc.ID))
	builder.WriteString("user_id=")
	builder.WriteString(rc.UserID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(rc.SkillID)
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", rc.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("ease=")
	builder.WriteString(fmt.Sprintf("%v", rc.Ease))
	builder.WriteString(", ")
	builder.WriteString("repetitions=")
	builder.WriteString(fmt.Sprintf("%v", rc.Repetitions))
	builder.WriteString(", ")
	builder.WriteString("lapses=")
	builder.WriteString(fmt.Sprintf("%v", rc.Lapses))
	builder.WriteString(", ")
	builder.WriteString("last_review_at=")
	builder.WriteString(rc.LastReviewAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("next_review_at=")
	builder.WriteString(rc.NextReviewAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewCards is a parsable slice of ReviewCard.
type ReviewCards []*ReviewCard
