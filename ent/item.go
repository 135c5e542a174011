// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/salmon302/DSATrain-sub001/ent/item"
)

// Item is the model entity for the Item schema.
type Item struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID string `json:"item_id,omitempty"`
	// SkillTags holds the value of the "skill_tags" field.
	SkillTags []string `json:"skill_tags,omitempty"`
	// DifficultyBand holds the value of the "difficulty_band" field.
	DifficultyBand string `json:"difficulty_band,omitempty"`
	// DifficultySublevel holds the value of the "difficulty_sublevel" field.
	DifficultySublevel int `json:"difficulty_sublevel,omitempty"`
	// Editorial quality in [0,100]
	QualityScore float64 `json:"quality_score,omitempty"`
	// Interview relevance in [0,100]
	RelevanceScore float64 `json:"relevance_score,omitempty"`
	// EstimatedMinutes holds the value of the "estimated_minutes" field.
	EstimatedMinutes int `json:"estimated_minutes,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Item) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case item.FieldSkillTags:
			values[i] = new([]byte)
		case item.FieldQualityScore, item.FieldRelevanceScore:
			values[i] = new(sql.NullFloat64)
		case item.FieldID, item.FieldDifficultySublevel, item.FieldEstimatedMinutes:
			values[i] = new(sql.NullInt64)
		case item.FieldItemID, item.FieldDifficultyBand:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Item fields.
func (i *Item) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for j := range columns {
		switch columns[j] {
		case item.FieldID:
			value, ok := values[j].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			i.ID = int(value.Int64)
		case item.FieldItemID:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[j])
			} else if value.Valid {
				i.ItemID = value.String
			}
		case item.FieldSkillTags:
			if value, ok := values[j].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skill_tags", values[j])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &i.SkillTags); err != nil {
					return fmt.Errorf("unmarshal field skill_tags: %w", err)
				}
			}
		case item.FieldDifficultyBand:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_band", values[j])
			} else if value.Valid {
				i.DifficultyBand = value.String
			}
		case item.FieldDifficultySublevel:
			if value, ok := values[j].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_sublevel", values[j])
			} else if value.Valid {
				i.DifficultySublevel = int(value.Int64)
			}
		case item.FieldQualityScore:
			if value, ok := values[j].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quality_score", values[j])
			} else if value.Valid {
				i.QualityScore = value.Float64
			}
		case item.FieldRelevanceScore:
			if value, ok := values[j].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field relevance_score", values[j])
			} else if value.Valid {
				i.RelevanceScore = value.Float64
			}
		case item.FieldEstimatedMinutes:
			if value, ok := values[j].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_minutes", values[j])
			} else if value.Valid {
				i.EstimatedMinutes = int(value.Int64)
			}
		default:
			i.selectValues.Set(columns[j], values[j])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Item.
// This includes values selected through modifiers, order, etc.
func (i *Item) Value(name string) (ent.Value, error) {
	return i.selectValues.Get(name)
}

// Update returns a builder for updating this Item.
// Note that you need to call Item.Unwrap() before calling this method if this Item
// was returned from a transaction, and the transaction was committed or rolled back.
func (i *Item) Update() *ItemUpdateOne {
	return NewItemClient(i.config).UpdateOne(i)
}

// Unwrap unwraps the Item entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (i *Item) Unwrap() *Item {
	_tx, ok := i.config.driver.(*txDriver)
	if !ok {
		panic("ent: Item is not a transactional entity")
	}
	i.config.driver = _tx.drv
	return i
}

// String implements the fmt.Stringer.
func (i *Item) String() string {
	var builder strings.Builder
	builder.WriteString("Item(")
	builder.WriteString(fmt.Sprintf("id=%v, ", i.ID))
	builder.WriteString("item_id=")
	builder.WriteString(i.ItemID)
	builder.WriteString(", ")
	builder.WriteString("skill_tags=")
	builder.WriteString(fmt.Sprintf("%v", i.SkillTags))
	builder.WriteString(", ")
	builder.WriteString("difficulty_band=")
	builder.WriteString(i.DifficultyBand)
	builder.WriteString(", ")
	builder.WriteString("difficulty_sublevel=")
	builder.WriteString(fmt.Sprintf("%v", i.DifficultySublevel))
	builder.WriteString(", ")
	builder.WriteString("quality_score=")
	builder.WriteString(fmt.Sprintf("%v", i.QualityScore))
	builder.WriteString(", ")
	builder.WriteString("relevance_score=")
	builder.WriteString(fmt.Sprintf("%v", i.RelevanceScore))
	builder.WriteString(", ")
	builder.WriteString("estimated_minutes=")
	builder.WriteString(fmt.Sprintf("%v", i.EstimatedMinutes))
	builder.WriteByte(')')
	return builder.String()
}

// Items is a parsable slice of Item.
type Items []*Item
