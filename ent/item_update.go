// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/salmon302/DSATrain-sub001/ent/item"
	"github.com/salmon302/DSATrain-sub001/ent/predicate"
)

// ItemUpdate is the builder for updating Item entities.
type ItemUpdate struct {
	config
	hooks    []Hook
	mutation *ItemMutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (iu *ItemUpdate) Where(ps ...predicate.Item) *ItemUpdate {
	iu.mutation.Where(ps...)
	return iu
}

// SetSkillTags sets the "skill_tags" field.
func (iu *ItemUpdate) SetSkillTags(s []string) *ItemUpdate {
	iu.mutation.SetSkillTags(s)
	return iu
}

// AppendSkillTags appends s to the "skill_tags" field.
func (iu *ItemUpdate) AppendSkillTags(s []string) *ItemUpdate {
	iu.mutation.AppendSkillTags(s)
	return iu
}

// SetDifficultyBand sets the "difficulty_band" field.
func (iu *ItemUpdate) SetDifficultyBand(s string) *ItemUpdate {
	iu.mutation.SetDifficultyBand(s)
	return iu
}

// SetNillableDifficultyBand sets the "difficulty_band" field if the given value is not nil.
func (iu *ItemUpdate) SetNillableDifficultyBand(s *string) *ItemUpdate {
	if s != nil {
		iu.SetDifficultyBand(*s)
	}
	return iu
}

// SetDifficultySublevel sets the "difficulty_sublevel" field.
func (iu *ItemUpdate) SetDifficultySublevel(i int) *ItemUpdate {
	iu.mutation.ResetDifficultySublevel()
	iu.mutation.SetDifficultySublevel(i)
	return iu
}

// SetNillableDifficultySublevel sets the "difficulty_sublevel" field if the given value is not nil.
func (iu *ItemUpdate) SetNillableDifficultySublevel(i *int) *ItemUpdate {
	if i != nil {
		iu.SetDifficultySublevel(*i)
	}
	return iu
}

// AddDifficultySublevel adds i to the "difficulty_sublevel" field.
func (iu *ItemUpdate) AddDifficultySublevel(i int) *ItemUpdate {
	iu.mutation.AddDifficultySublevel(i)
	return iu
}

// SetQualityScore sets the "quality_score" field.
func (iu *ItemUpdate) SetQualityScore(f float64) *ItemUpdate {
	iu.mutation.ResetQualityScore()
	iu.mutation.SetQualityScore(f)
	return iu
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (iu *ItemUpdate) SetNillableQualityScore(f *float64) *ItemUpdate {
	if f != nil {
		iu.SetQualityScore(*f)
	}
	return iu
}

// AddQualityScore adds f to the "quality_score" field.
func (iu *ItemUpdate) AddQualityScore(f float64) *ItemUpdate {
	iu.mutation.AddQualityScore(f)
	return iu
}

// SetRelevanceScore sets the "relevance_score" field.
func (iu *ItemUpdate) SetRelevanceScore(f float64) *ItemUpdate {
	iu.mutation.ResetRelevanceScore()
	iu.mutation.SetRelevanceScore(f)
	return iu
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (iu *ItemUpdate) SetNillableRelevanceScore(f *float64) *ItemUpdate {
	if f != nil {
		iu.SetRelevanceScore(*f)
	}
	return iu
}

// AddRelevanceScore adds f to the "relevance_score" field.
func (iu *ItemUpdate) AddRelevanceScore(f float64) *ItemUpdate {
	iu.mutation.AddRelevanceScore(f)
	return iu
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (iu *ItemUpdate) SetEstimatedMinutes(i int) *ItemUpdate {
	iu.mutation.ResetEstimatedMinutes()
	iu.mutation.SetEstimatedMinutes(i)
	return iu
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (iu *ItemUpdate) SetNillableEstimatedMinutes(i *int) *ItemUpdate {
	if i != nil {
		iu.SetEstimatedMinutes(*i)
	}
	return iu
}

// AddEstimatedMinutes adds i to the "estimated_minutes" field.
func (iu *ItemUpdate) AddEstimatedMinutes(i int) *ItemUpdate {
	iu.mutation.AddEstimatedMinutes(i)
	return iu
}

// Mutation returns the ItemMutation object of the builder.
func (iu *ItemUpdate) Mutation() *ItemMutation {
	return iu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (iu *ItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, iu.sqlSave, iu.mutation, iu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iu *ItemUpdate) SaveX(ctx context.Context) int {
	affected, err := iu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (iu *ItemUpdate) Exec(ctx context.Context) error {
	_, err := iu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iu *ItemUpdate) ExecX(ctx context.Context) {
	if err := iu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iu *ItemUpdate) check() error {
	if v, ok := iu.mutation.DifficultySublevel(); ok {
		if err := item.DifficultySublevelValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_sublevel", err: fmt.Errorf(`ent: validator failed for field "Item.difficulty_sublevel": %w`, err)}
		}
	}
	if v, ok := iu.mutation.EstimatedMinutes(); ok {
		if err := item.EstimatedMinutesValidator(v); err != nil {
			return &ValidationError{Name: "estimated_minutes", err: fmt.Errorf(`ent: validator failed for field "Item.estimated_minutes": %w`, err)}
		}
	}
	return nil
}

func (iu *ItemUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := iu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	if ps := iu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iu.mutation.SkillTags(); ok {
		_spec.SetField(item.FieldSkillTags, field.TypeJSON, value)
	}
	if value, ok := iu.mutation.AppendedSkillTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldSkillTags, value)
		})
	}
	if value, ok := iu.mutation.DifficultyBand(); ok {
		_spec.SetField(item.FieldDifficultyBand, field.TypeString, value)
	}
	if value, ok := iu.mutation.DifficultySublevel(); ok {
		_spec.SetField(item.FieldDifficultySublevel, field.TypeInt, value)
	}
	if value, ok := iu.mutation.AddedDifficultySublevel(); ok {
		_spec.AddField(item.FieldDifficultySublevel, field.TypeInt, value)
	}
	if value, ok := iu.mutation.QualityScore(); ok {
		_spec.SetField(item.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := iu.mutation.AddedQualityScore(); ok {
		_spec.AddField(item.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := iu.mutation.RelevanceScore(); ok {
		_spec.SetField(item.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := iu.mutation.AddedRelevanceScore(); ok {
		_spec.AddField(item.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := iu.mutation.EstimatedMinutes(); ok {
		_spec.SetField(item.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := iu.mutation.AddedEstimatedMinutes(); ok {
		_spec.AddField(item.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, iu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	iu.mutation.done = true
	return n, nil
}

// ItemUpdateOne is the builder for updating a single Item entity.
type ItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemMutation
}

// SetSkillTags sets the "skill_tags" field.
func (iuo *ItemUpdateOne) SetSkillTags(s []string) *ItemUpdateOne {
	iuo.mutation.SetSkillTags(s)
	return iuo
}

// AppendSkillTags appends s to the "skill_tags" field.
func (iuo *ItemUpdateOne) AppendSkillTags(s []string) *ItemUpdateOne {
	iuo.mutation.AppendSkillTags(s)
	return iuo
}

// SetDifficultyBand sets the "difficulty_band" field.
func (iuo *ItemUpdateOne) SetDifficultyBand(s string) *ItemUpdateOne {
	iuo.mutation.SetDifficultyBand(s)
	return iuo
}

// SetNillableDifficultyBand sets the "difficulty_band" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillableDifficultyBand(s *string) *ItemUpdateOne {
	if s != nil {
		iuo.SetDifficultyBand(*s)
	}
	return iuo
}

// SetDifficultySublevel sets the "difficulty_sublevel" field.
func (iuo *ItemUpdateOne) SetDifficultySublevel(i int) *ItemUpdateOne {
	iuo.mutation.ResetDifficultySublevel()
	iuo.mutation.SetDifficultySublevel(i)
	return iuo
}

// SetNillableDifficultySublevel sets the "difficulty_sublevel" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillableDifficultySublevel(i *int) *ItemUpdateOne {
	if i != nil {
		iuo.SetDifficultySublevel(*i)
	}
	return iuo
}

// AddDifficultySublevel adds i to the "difficulty_sublevel" field.
func (iuo *ItemUpdateOne) AddDifficultySublevel(i int) *ItemUpdateOne {
	iuo.mutation.AddDifficultySublevel(i)
	return iuo
}

// SetQualityScore sets the "quality_score" field.
func (iuo *ItemUpdateOne) SetQualityScore(f float64) *ItemUpdateOne {
	iuo.mutation.ResetQualityScore()
	iuo.mutation.SetQualityScore(f)
	return iuo
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillableQualityScore(f *float64) *ItemUpdateOne {
	if f != nil {
		iuo.SetQualityScore(*f)
	}
	return iuo
}

// AddQualityScore adds f to the "quality_score" field.
func (iuo *ItemUpdateOne) AddQualityScore(f float64) *ItemUpdateOne {
	iuo.mutation.AddQualityScore(f)
	return iuo
}

// SetRelevanceScore sets the "relevance_score" field.
func (iuo *ItemUpdateOne) SetRelevanceScore(f float64) *ItemUpdateOne {
	iuo.mutation.ResetRelevanceScore()
	iuo.mutation.SetRelevanceScore(f)
	return iuo
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillableRelevanceScore(f *float64) *ItemUpdateOne {
	if f != nil {
		iuo.SetRelevanceScore(*f)
	}
	return iuo
}

// AddRelevanceScore adds f to the "relevance_score" field.
func (iuo *ItemUpdateOne) AddRelevanceScore(f float64) *ItemUpdateOne {
	iuo.mutation.AddRelevanceScore(f)
	return iuo
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (iuo *ItemUpdateOne) SetEstimatedMinutes(i int) *ItemUpdateOne {
	iuo.mutation.ResetEstimatedMinutes()
	iuo.mutation.SetEstimatedMinutes(i)
	return iuo
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillableEstimatedMinutes(i *int) *ItemUpdateOne {
	if i != nil {
		iuo.SetEstimatedMinutes(*i)
	}
	return iuo
}

// AddEstimatedMinutes adds i to the "estimated_minutes" field.
func (iuo *ItemUpdateOne) AddEstimatedMinutes(i int) *ItemUpdateOne {
	iuo.mutation.AddEstimatedMinutes(i)
	return iuo
}

// Mutation returns the ItemMutation object of the builder.
func (iuo *ItemUpdateOne) Mutation() *ItemMutation {
	return iuo.mutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (iuo *ItemUpdateOne) Where(ps ...predicate.Item) *ItemUpdateOne {
	iuo.mutation.Where(ps...)
	return iuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iuo *ItemUpdateOne) Select(field string, fields ...string) *ItemUpdateOne {
	iuo.fields = append([]string{field}, fields...)
	return iuo
}

// Save executes the query and returns the updated Item entity.
func (iuo *ItemUpdateOne) Save(ctx context.Context) (*Item, error) {
	return withHooks(ctx, iuo.sqlSave, iuo.mutation, iuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iuo *ItemUpdateOne) SaveX(ctx context.Context) *Item {
	node, err := iuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iuo *ItemUpdateOne) Exec(ctx context.Context) error {
	_, err := iuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iuo *ItemUpdateOne) ExecX(ctx context.Context) {
	if err := iuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iuo *ItemUpdateOne) check() error {
	if v, ok := iuo.mutation.DifficultySublevel(); ok {
		if err := item.DifficultySublevelValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_sublevel", err: fmt.Errorf(`ent: validator failed for field "Item.difficulty_sublevel": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.EstimatedMinutes(); ok {
		if err := item.EstimatedMinutesValidator(v); err != nil {
			return &ValidationError{Name: "estimated_minutes", err: fmt.Errorf(`ent: validator failed for field "Item.estimated_minutes": %w`, err)}
		}
	}
	return nil
}

func (iuo *ItemUpdateOne) sqlSave(ctx context.Context) (_node *Item, err error) {
	if err := iuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	id, ok := iuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Item.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, item.FieldID)
		for _, f := range fields {
			if !item.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != item.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iuo.mutation.SkillTags(); ok {
		_spec.SetField(item.FieldSkillTags, field.TypeJSON, value)
	}
	if value, ok := iuo.mutation.AppendedSkillTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldSkillTags, value)
		})
	}
	if value, ok := iuo.mutation.DifficultyBand(); ok {
		_spec.SetField(item.FieldDifficultyBand, field.TypeString, value)
	}
	if value, ok := iuo.mutation.DifficultySublevel(); ok {
		_spec.SetField(item.FieldDifficultySublevel, field.TypeInt, value)
	}
	if value, ok := iuo.mutation.AddedDifficultySublevel(); ok {
		_spec.AddField(item.FieldDifficultySublevel, field.TypeInt, value)
	}
	if value, ok := iuo.mutation.QualityScore(); ok {
		_spec.SetField(item.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := iuo.mutation.AddedQualityScore(); ok {
		_spec.AddField(item.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := iuo.mutation.RelevanceScore(); ok {
		_spec.SetField(item.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := iuo.mutation.AddedRelevanceScore(); ok {
		_spec.AddField(item.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := iuo.mutation.EstimatedMinutes(); ok {
		_spec.SetField(item.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := iuo.mutation.AddedEstimatedMinutes(); ok {
		_spec.AddField(item.FieldEstimatedMinutes, field.TypeInt, value)
	}
	_node = &Item{config: iuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iuo.mutation.done = true
	return _node, nil
}
