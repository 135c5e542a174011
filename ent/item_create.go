// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/salmon302/DSATrain-sub001/ent/item"
)

// ItemCreate is the builder for creating a Item entity.
type ItemCreate struct {
	config
	mutation *ItemMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (ic *ItemCreate) SetItemID(s string) *ItemCreate {
	ic.mutation.SetItemID(s)
	return ic
}

// SetSkillTags sets the "skill_tags" field.
func (ic *ItemCreate) SetSkillTags(s []string) *ItemCreate {
	ic.mutation.SetSkillTags(s)
	return ic
}

// SetDifficultyBand sets the "difficulty_band" field.
func (ic *ItemCreate) SetDifficultyBand(s string) *ItemCreate {
	ic.mutation.SetDifficultyBand(s)
	return ic
}

// SetDifficultySublevel sets the "difficulty_sublevel" field.
func (ic *ItemCreate) SetDifficultySublevel(i int) *ItemCreate {
	ic.mutation.SetDifficultySublevel(i)
	return ic
}

// SetQualityScore sets the "quality_score" field.
func (ic *ItemCreate) SetQualityScore(f float64) *ItemCreate {
	ic.mutation.SetQualityScore(f)
	return ic
}

// SetRelevanceScore sets the "relevance_score" field.
func (ic *ItemCreate) SetRelevanceScore(f float64) *ItemCreate {
	ic.mutation.SetRelevanceScore(f)
	return ic
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (ic *ItemCreate) SetEstimatedMinutes(i int) *ItemCreate {
	ic.mutation.SetEstimatedMinutes(i)
	return ic
}

// Mutation returns the ItemMutation object of the builder.
func (ic *ItemCreate) Mutation() *ItemMutation {
	return ic.mutation
}

// Save creates the Item in the database.
func (ic *ItemCreate) Save(ctx context.Context) (*Item, error) {
	return withHooks(ctx, ic.sqlSave, ic.mutation, ic.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ic *ItemCreate) SaveX(ctx context.Context) *Item {
	v, err := ic.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ic *ItemCreate) Exec(ctx context.Context) error {
	_, err := ic.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ic *ItemCreate) ExecX(ctx context.Context) {
	if err := ic.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ic *ItemCreate) check() error {
	if _, ok := ic.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "Item.item_id"`)}
	}
	if v, ok := ic.mutation.ItemID(); ok {
		if err := item.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Item.item_id": %w`, err)}
		}
	}
	if _, ok := ic.mutation.SkillTags(); !ok {
		return &ValidationError{Name: "skill_tags", err: errors.New(`ent: missing required field "Item.skill_tags"`)}
	}
	if _, ok := ic.mutation.DifficultyBand(); !ok {
		return &ValidationError{Name: "difficulty_band", err: errors.New(`ent: missing required field "Item.difficulty_band"`)}
	}
	if _, ok := ic.mutation.DifficultySublevel(); !ok {
		return &ValidationError{Name: "difficulty_sublevel", err: errors.New(`ent: missing required field "Item.difficulty_sublevel"`)}
	}
	if v, ok := ic.mutation.DifficultySublevel(); ok {
		if err := item.DifficultySublevelValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_sublevel", err: fmt.Errorf(`ent: validator failed for field "Item.difficulty_sublevel": %w`, err)}
		}
	}
	if _, ok := ic.mutation.QualityScore(); !ok {
		return &ValidationError{Name: "quality_score", err: errors.New(`ent: missing required field "Item.quality_score"`)}
	}
	if _, ok := ic.mutation.RelevanceScore(); !ok {
		return &ValidationError{Name: "relevance_score", err: errors.New(`ent: missing required field "Item.relevance_score"`)}
	}
	if _, ok := ic.mutation.EstimatedMinutes(); !ok {
		return &ValidationError{Name: "estimated_minutes", err: errors.New(`ent: missing required field "Item.estimated_minutes"`)}
	}
	if v, ok := ic.mutation.EstimatedMinutes(); ok {
		if err := item.EstimatedMinutesValidator(v); err != nil {
			return &ValidationError{Name: "estimated_minutes", err: fmt.Errorf(`ent: validator failed for field "Item.estimated_minutes": %w`, err)}
		}
	}
	return nil
}

func (ic *ItemCreate) sqlSave(ctx context.Context) (*Item, error) {
	if err := ic.check(); err != nil {
		return nil, err
	}
	_node, _spec := ic.createSpec()
	if err := sqlgraph.CreateNode(ctx, ic.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ic.mutation.id = &_node.ID
	ic.mutation.done = true
	return _node, nil
}

func (ic *ItemCreate) createSpec() (*Item, *sqlgraph.CreateSpec) {
	var (
		_node = &Item{config: ic.config}
		_spec = sqlgraph.NewCreateSpec(item.Table, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	)
	if value, ok := ic.mutation.ItemID(); ok {
		_spec.SetField(item.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := ic.mutation.SkillTags(); ok {
		_spec.SetField(item.FieldSkillTags, field.TypeJSON, value)
		_node.SkillTags = value
	}
	if value, ok := ic.mutation.DifficultyBand(); ok {
		_spec.SetField(item.FieldDifficultyBand, field.TypeString, value)
		_node.DifficultyBand = value
	}
	if value, ok := ic.mutation.DifficultySublevel(); ok {
		_spec.SetField(item.FieldDifficultySublevel, field.TypeInt, value)
		_node.DifficultySublevel = value
	}
	if value, ok := ic.mutation.QualityScore(); ok {
		_spec.SetField(item.FieldQualityScore, field.TypeFloat64, value)
		_node.QualityScore = value
	}
	if value, ok := ic.mutation.RelevanceScore(); ok {
		_spec.SetField(item.FieldRelevanceScore, field.TypeFloat64, value)
		_node.RelevanceScore = value
	}
	if value, ok := ic.mutation.EstimatedMinutes(); ok {
		_spec.SetField(item.FieldEstimatedMinutes, field.TypeInt, value)
		_node.EstimatedMinutes = value
	}
	return _node, _spec
}

// ItemCreateBulk is the builder for creating many Item entities in bulk.
type ItemCreateBulk struct {
	config
	err      error
	builders []*ItemCreate
}

// Save creates the Item entities in the database.
func (icb *ItemCreateBulk) Save(ctx context.Context) ([]*Item, error) {
	if icb.err != nil {
		return nil, icb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(icb.builders))
	nodes := make([]*Item, len(icb.builders))
	mutators := make([]Mutator, len(icb.builders))
	for i := range icb.builders {
		func(i int, root context.Context) {
			builder := icb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, icb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, icb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, icb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (icb *ItemCreateBulk) SaveX(ctx context.Context) []*Item {
	v, err := icb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (icb *ItemCreateBulk) Exec(ctx context.Context) error {
	_, err := icb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (icb *ItemCreateBulk) ExecX(ctx context.Context) {
	if err := icb.Exec(ctx); err != nil {
		panic(err)
	}
}
