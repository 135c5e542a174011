// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/salmon302/DSATrain-sub001/ent/predicate"
	"github.com/salmon302/DSATrain-sub001/ent/skillmastery"
)

// SkillMasteryUpdate is the builder for updating SkillMastery entities.
type SkillMasteryUpdate struct {
	config
	hooks    []Hook
	mutation *SkillMasteryMutation
}

// Where appends a list predicates to the SkillMasteryUpdate builder.
func (smu *SkillMasteryUpdate) Where(ps ...predicate.SkillMastery) *SkillMasteryUpdate {
	smu.mutation.Where(ps...)
	return smu
}

// SetUserID sets the "user_id" field.
func (smu *SkillMasteryUpdate) SetUserID(s string) *SkillMasteryUpdate {
	smu.mutation.SetUserID(s)
	return smu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (smu *SkillMasteryUpdate) SetNillableUserID(s *string) *SkillMasteryUpdate {
	if s != nil {
		smu.SetUserID(*s)
	}
	return smu
}

// SetSkillID sets the "skill_id" field.
func (smu *SkillMasteryUpdate) SetSkillID(s string) *SkillMasteryUpdate {
	smu.mutation.SetSkillID(s)
	return smu
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (smu *SkillMasteryUpdate) SetNillableSkillID(s *string) *SkillMasteryUpdate {
	if s != nil {
		smu.SetSkillID(*s)
	}
	return smu
}

// SetMastery sets the "mastery" field.
func (smu *SkillMasteryUpdate) SetMastery(f float64) *SkillMasteryUpdate {
	smu.mutation.ResetMastery()
	smu.mutation.SetMastery(f)
	return smu
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (smu *SkillMasteryUpdate) SetNillableMastery(f *float64) *SkillMasteryUpdate {
	if f != nil {
		smu.SetMastery(*f)
	}
	return smu
}

// AddMastery adds f to the "mastery" field.
func (smu *SkillMasteryUpdate) AddMastery(f float64) *SkillMasteryUpdate {
	smu.mutation.AddMastery(f)
	return smu
}

// SetConfidence sets the "confidence" field.
func (smu *SkillMasteryUpdate) SetConfidence(f float64) *SkillMasteryUpdate {
	smu.mutation.ResetConfidence()
	smu.mutation.SetConfidence(f)
	return smu
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (smu *SkillMasteryUpdate) SetNillableConfidence(f *float64) *SkillMasteryUpdate {
	if f != nil {
		smu.SetConfidence(*f)
	}
	return smu
}

// AddConfidence adds f to the "confidence" field.
func (smu *SkillMasteryUpdate) AddConfidence(f float64) *SkillMasteryUpdate {
	smu.mutation.AddConfidence(f)
	return smu
}

// SetTrend sets the "trend" field.
func (smu *SkillMasteryUpdate) SetTrend(s string) *SkillMasteryUpdate {
	smu.mutation.SetTrend(s)
	return smu
}

// SetNillableTrend sets the "trend" field if the given value is not nil.
func (smu *SkillMasteryUpdate) SetNillableTrend(s *string) *SkillMasteryUpdate {
	if s != nil {
		smu.SetTrend(*s)
	}
	return smu
}

// SetObservations sets the "observations" field.
func (smu *SkillMasteryUpdate) SetObservations(i int) *SkillMasteryUpdate {
	smu.mutation.ResetObservations()
	smu.mutation.SetObservations(i)
	return smu
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (smu *SkillMasteryUpdate) SetNillableObservations(i *int) *SkillMasteryUpdate {
	if i != nil {
		smu.SetObservations(*i)
	}
	return smu
}

// AddObservations adds i to the "observations" field.
func (smu *SkillMasteryUpdate) AddObservations(i int) *SkillMasteryUpdate {
	smu.mutation.AddObservations(i)
	return smu
}

// SetDecayedDays sets the "decayed_days" field.
func (smu *SkillMasteryUpdate) SetDecayedDays(i int) *SkillMasteryUpdate {
	smu.mutation.ResetDecayedDays()
	smu.mutation.SetDecayedDays(i)
	return smu
}

// SetNillableDecayedDays sets the "decayed_days" field if the given value is not nil.
func (smu *SkillMasteryUpdate) SetNillableDecayedDays(i *int) *SkillMasteryUpdate {
	if i != nil {
		smu.SetDecayedDays(*i)
	}
	return smu
}

// AddDecayedDays adds i to the "decayed_days" field.
func (smu *SkillMasteryUpdate) AddDecayedDays(i int) *SkillMasteryUpdate {
	smu.mutation.AddDecayedDays(i)
	return smu
}

// SetLastUpdated sets the "last_updated" field.
func (smu *SkillMasteryUpdate) SetLastUpdated(t time.Time) *SkillMasteryUpdate {
	smu.mutation.SetLastUpdated(t)
	return smu
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (smu *SkillMasteryUpdate) SetNillableLastUpdated(t *time.Time) *SkillMasteryUpdate {
	if t != nil {
		smu.SetLastUpdated(*t)
	}
	return smu
}

// Mutation returns the SkillMasteryMutation object of the builder.
func (smu *SkillMasteryUpdate) Mutation() *SkillMasteryMutation {
	return smu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (smu *SkillMasteryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, smu.sqlSave, smu.mutation, smu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (smu *SkillMasteryUpdate) SaveX(ctx context.Context) int {
	affected, err := smu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (smu *SkillMasteryUpdate) Exec(ctx context.Context) error {
	_, err := smu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (smu *SkillMasteryUpdate) ExecX(ctx context.Context) {
	if err := smu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (smu *SkillMasteryUpdate) check() error {
	if v, ok := smu.mutation.UserID(); ok {
		if err := skillmastery.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.user_id": %w`, err)}
		}
	}
	if v, ok := smu.mutation.SkillID(); ok {
		if err := skillmastery.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.skill_id": %w`, err)}
		}
	}
	if v, ok := smu.mutation.Observations(); ok {
		if err := skillmastery.ObservationsValidator(v); err != nil {
			return &ValidationError{Name: "observations", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.observations": %w`, err)}
		}
	}
	if v, ok := smu.mutation.DecayedDays(); ok {
		if err := skillmastery.DecayedDaysValidator(v); err != nil {
			return &ValidationError{Name: "decayed_days", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.decayed_days": %w`, err)}
		}
	}
	return nil
}

func (smu *SkillMasteryUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := smu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(skillmastery.Table, skillmastery.Columns, sqlgraph.NewFieldSpec(skillmastery.FieldID, field.TypeInt))
	if ps := smu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := smu.mutation.UserID(); ok {
		_spec.SetField(skillmastery.FieldUserID, field.TypeString, value)
	}
	if value, ok := smu.mutation.SkillID(); ok {
		_spec.SetField(skillmastery.FieldSkillID, field.TypeString, value)
	}
	if value, ok := smu.mutation.Mastery(); ok {
		_spec.SetField(skillmastery.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := smu.mutation.AddedMastery(); ok {
		_spec.AddField(skillmastery.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := smu.mutation.Confidence(); ok {
		_spec.SetField(skillmastery.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := smu.mutation.AddedConfidence(); ok {
		_spec.AddField(skillmastery.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := smu.mutation.Trend(); ok {
		_spec.SetField(skillmastery.FieldTrend, field.TypeString, value)
	}
	if value, ok := smu.mutation.Observations(); ok {
		_spec.SetField(skillmastery.FieldObservations, field.TypeInt, value)
	}
	if value, ok := smu.mutation.AddedObservations(); ok {
		_spec.AddField(skillmastery.FieldObservations, field.TypeInt, value)
	}
	if value, ok := smu.mutation.DecayedDays(); ok {
		_spec.SetField(skillmastery.FieldDecayedDays, field.TypeInt, value)
	}
	if value, ok := smu.mutation.AddedDecayedDays(); ok {
		_spec.AddField(skillmastery.FieldDecayedDays, field.TypeInt, value)
	}
	if value, ok := smu.mutation.LastUpdated(); ok {
		_spec.SetField(skillmastery.FieldLastUpdated, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, smu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	smu.mutation.done = true
	return n, nil
}

// SkillMasteryUpdateOne is the builder for updating a single SkillMastery entity.
type SkillMasteryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillMasteryMutation
}

// SetUserID sets the "user_id" field.
func (smuo *SkillMasteryUpdateOne) SetUserID(s string) *SkillMasteryUpdateOne {
	smuo.mutation.SetUserID(s)
	return smuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (smuo *SkillMasteryUpdateOne) SetNillableUserID(s *string) *SkillMasteryUpdateOne {
	if s != nil {
		smuo.SetUserID(*s)
	}
	return smuo
}

// SetSkillID sets the "skill_id" field.
func (smuo *SkillMasteryUpdateOne) SetSkillID(s string) *SkillMasteryUpdateOne {
	smuo.mutation.SetSkillID(s)
	return smuo
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (smuo *SkillMasteryUpdateOne) SetNillableSkillID(s *string) *SkillMasteryUpdateOne {
	if s != nil {
		smuo.SetSkillID(*s)
	}
	return smuo
}

// SetMastery sets the "mastery" field.
func (smuo *SkillMasteryUpdateOne) SetMastery(f float64) *SkillMasteryUpdateOne {
	smuo.mutation.ResetMastery()
	smuo.mutation.SetMastery(f)
	return smuo
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (smuo *SkillMasteryUpdateOne) SetNillableMastery(f *float64) *SkillMasteryUpdateOne {
	if f != nil {
		smuo.SetMastery(*f)
	}
	return smuo
}

// AddMastery adds f to the "mastery" field.
func (smuo *SkillMasteryUpdateOne) AddMastery(f float64) *SkillMasteryUpdateOne {
	smuo.mutation.AddMastery(f)
	return smuo
}

// SetConfidence sets the "confidence" field.
func (smuo *SkillMasteryUpdateOne) SetConfidence(f float64) *SkillMasteryUpdateOne {
	smuo.mutation.ResetConfidence()
	smuo.mutation.SetConfidence(f)
	return smuo
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (smuo *SkillMasteryUpdateOne) SetNillableConfidence(f *float64) *SkillMasteryUpdateOne {
	if f != nil {
		smuo.SetConfidence(*f)
	}
	return smuo
}

// AddConfidence adds f to the "confidence" field.
func (smuo *SkillMasteryUpdateOne) AddConfidence(f float64) *SkillMasteryUpdateOne {
	smuo.mutation.AddConfidence(f)
	return smuo
}

// SetTrend sets the "trend" field.
func (smuo *SkillMasteryUpdateOne) SetTrend(s string) *SkillMasteryUpdateOne {
	smuo.mutation.SetTrend(s)
	return smuo
}

// SetNillableTrend sets the "trend" field if the given value is not nil.
func (smuo *SkillMasteryUpdateOne) SetNillableTrend(s *string) *SkillMasteryUpdateOne {
	if s != nil {
		smuo.SetTrend(*s)
	}
	return smuo
}

// SetObservations sets the "observations" field.
func (smuo *SkillMasteryUpdateOne) SetObservations(i int) *SkillMasteryUpdateOne {
	smuo.mutation.ResetObservations()
	smuo.mutation.SetObservations(i)
	return smuo
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (smuo *SkillMasteryUpdateOne) SetNillableObservations(i *int) *SkillMasteryUpdateOne {
	if i != nil {
		smuo.SetObservations(*i)
	}
	return smuo
}

// AddObservations adds i to the "observations" field.
func (smuo *SkillMasteryUpdateOne) AddObservations(i int) *SkillMasteryUpdateOne {
	smuo.mutation.AddObservations(i)
	return smuo
}

// SetDecayedDays sets the "decayed_days" field.
func (smuo *SkillMasteryUpdateOne) SetDecayedDays(i int) *SkillMasteryUpdateOne {
	smuo.mutation.ResetDecayedDays()
	smuo.mutation.SetDecayedDays(i)
	return smuo
}

// SetNillableDecayedDays sets the "decayed_days" field if the given value is not nil.
func (smuo *SkillMasteryUpdateOne) SetNillableDecayedDays(i *int) *SkillMasteryUpdateOne {
	if i != nil {
		smuo.SetDecayedDays(*i)
	}
	return smuo
}

// AddDecayedDays adds i to the "decayed_days" field.
func (smuo *SkillMasteryUpdateOne) AddDecayedDays(i int) *SkillMasteryUpdateOne {
	smuo.mutation.AddDecayedDays(i)
	return smuo
}

// SetLastUpdated sets the "last_updated" field.
func (smuo *SkillMasteryUpdateOne) SetLastUpdated(t time.Time) *SkillMasteryUpdateOne {
	smuo.mutation.SetLastUpdated(t)
	return smuo
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (smuo *SkillMasteryUpdateOne) SetNillableLastUpdated(t *time.Time) *SkillMasteryUpdateOne {
	if t != nil {
		smuo.SetLastUpdated(*t)
	}
	return smuo
}

// Mutation returns the SkillMasteryMutation object of the builder.
func (smuo *SkillMasteryUpdateOne) Mutation() *SkillMasteryMutation {
	return smuo.mutation
}

// Where appends a list predicates to the SkillMasteryUpdate builder.
func (smuo *SkillMasteryUpdateOne) Where(ps ...predicate.SkillMastery) *SkillMasteryUpdateOne {
	smuo.mutation.Where(ps...)
	return smuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (smuo *SkillMasteryUpdateOne) Select(field string, fields ...string) *SkillMasteryUpdateOne {
	smuo.fields = append([]string{field}, fields...)
	return smuo
}

// Save executes the query and returns the updated SkillMastery entity.
func (smuo *SkillMasteryUpdateOne) Save(ctx context.Context) (*SkillMastery, error) {
	return withHooks(ctx, smuo.sqlSave, smuo.mutation, smuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (smuo *SkillMasteryUpdateOne) SaveX(ctx context.Context) *SkillMastery {
	node, err := smuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (smuo *SkillMasteryUpdateOne) Exec(ctx context.Context) error {
	_, err := smuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (smuo *SkillMasteryUpdateOne) ExecX(ctx context.Context) {
	if err := smuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (smuo *SkillMasteryUpdateOne) check() error {
	if v, ok := smuo.mutation.UserID(); ok {
		if err := skillmastery.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.user_id": %w`, err)}
		}
	}
	if v, ok := smuo.mutation.SkillID(); ok {
		if err := skillmastery.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.skill_id": %w`, err)}
		}
	}
	if v, ok := smuo.mutation.Observations(); ok {
		if err := skillmastery.ObservationsValidator(v); err != nil {
			return &ValidationError{Name: "observations", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.observations": %w`, err)}
		}
	}
	if v, ok := smuo.mutation.DecayedDays(); ok {
		if err := skillmastery.DecayedDaysValidator(v); err != nil {
			return &ValidationError{Name: "decayed_days", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.decayed_days": %w`, err)}
		}
	}
	return nil
}

func (smuo *SkillMasteryUpdateOne) sqlSave(ctx context.Context) (_node *SkillMastery, err error) {
	if err := smuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skillmastery.Table, skillmastery.Columns, sqlgraph.NewFieldSpec(skillmastery.FieldID, field.TypeInt))
	id, ok := smuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SkillMastery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := smuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skillmastery.FieldID)
		for _, f := range fields {
			if !skillmastery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skillmastery.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := smuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := smuo.mutation.UserID(); ok {
		_spec.SetField(skillmastery.FieldUserID, field.TypeString, value)
	}
	if value, ok := smuo.mutation.SkillID(); ok {
		_spec.SetField(skillmastery.FieldSkillID, field.TypeString, value)
	}
	if value, ok := smuo.mutation.Mastery(); ok {
		_spec.SetField(skillmastery.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := smuo.mutation.AddedMastery(); ok {
		_spec.AddField(skillmastery.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := smuo.mutation.Confidence(); ok {
		_spec.SetField(skillmastery.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := smuo.mutation.AddedConfidence(); ok {
		_spec.AddField(skillmastery.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := smuo.mutation.Trend(); ok {
		_spec.SetField(skillmastery.FieldTrend, field.TypeString, value)
	}
	if value, ok := smuo.mutation.Observations(); ok {
		_spec.SetField(skillmastery.FieldObservations, field.TypeInt, value)
	}
	if value, ok := smuo.mutation.AddedObservations(); ok {
		_spec.AddField(skillmastery.FieldObservations, field.TypeInt, value)
	}
	if value, ok := smuo.mutation.DecayedDays(); ok {
		_spec.SetField(skillmastery.FieldDecayedDays, field.TypeInt, value)
	}
	if value, ok := smuo.mutation.AddedDecayedDays(); ok {
		_spec.AddField(skillmastery.FieldDecayedDays, field.TypeInt, value)
	}
	if value, ok := smuo.mutation.LastUpdated(); ok {
		_spec.SetField(skillmastery.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &SkillMastery{config: smuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, smuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	smuo.mutation.done = true
	return _node, nil
}
