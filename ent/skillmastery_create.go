// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/salmon302/DSATrain-sub001/ent/skillmastery"
)

// SkillMasteryCreate is the builder for creating a SkillMastery entity.
type SkillMasteryCreate struct {
	config
	mutation *SkillMasteryMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (smc *SkillMasteryCreate) SetUserID(s string) *SkillMasteryCreate {
	smc.mutation.SetUserID(s)
	return smc
}

// SetSkillID sets the "skill_id" field.
func (smc *SkillMasteryCreate) SetSkillID(s string) *SkillMasteryCreate {
	smc.mutation.SetSkillID(s)
	return smc
}

// SetMastery sets the "mastery" field.
func (smc *SkillMasteryCreate) SetMastery(f float64) *SkillMasteryCreate {
	smc.mutation.SetMastery(f)
	return smc
}

// SetConfidence sets the "confidence" field.
func (smc *SkillMasteryCreate) SetConfidence(f float64) *SkillMasteryCreate {
	smc.mutation.SetConfidence(f)
	return smc
}

// SetTrend sets the "trend" field.
func (smc *SkillMasteryCreate) SetTrend(s string) *SkillMasteryCreate {
	smc.mutation.SetTrend(s)
	return smc
}

// SetNillableTrend sets the "trend" field if the given value is not nil.
func (smc *SkillMasteryCreate) SetNillableTrend(s *string) *SkillMasteryCreate {
	if s != nil {
		smc.SetTrend(*s)
	}
	return smc
}

// SetObservations sets the "observations" field.
func (smc *SkillMasteryCreate) SetObservations(i int) *SkillMasteryCreate {
	smc.mutation.SetObservations(i)
	return smc
}

// SetDecayedDays sets the "decayed_days" field.
func (smc *SkillMasteryCreate) SetDecayedDays(i int) *SkillMasteryCreate {
	smc.mutation.SetDecayedDays(i)
	return smc
}

// SetNillableDecayedDays sets the "decayed_days" field if the given value is not nil.
func (smc *SkillMasteryCreate) SetNillableDecayedDays(i *int) *SkillMasteryCreate {
	if i != nil {
		smc.SetDecayedDays(*i)
	}
	return smc
}

// SetLastUpdated sets the "last_updated" field.
func (smc *SkillMasteryCreate) SetLastUpdated(t time.Time) *SkillMasteryCreate {
	smc.mutation.SetLastUpdated(t)
	return smc
}

// Mutation returns the SkillMasteryMutation object of the builder.
func (smc *SkillMasteryCreate) Mutation() *SkillMasteryMutation {
	return smc.mutation
}

// Save creates the SkillMastery in the database.
func (smc *SkillMasteryCreate) Save(ctx context.Context) (*SkillMastery, error) {
	smc.defaults()
	return withHooks(ctx, smc.sqlSave, smc.mutation, smc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (smc *SkillMasteryCreate) SaveX(ctx context.Context) *SkillMastery {
	v, err := smc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (smc *SkillMasteryCreate) Exec(ctx context.Context) error {
	_, err := smc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (smc *SkillMasteryCreate) ExecX(ctx context.Context) {
	if err := smc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (smc *SkillMasteryCreate) defaults() {
	if _, ok := smc.mutation.Trend(); !ok {
		v := skillmastery.DefaultTrend
		smc.mutation.SetTrend(v)
	}
	if _, ok := smc.mutation.DecayedDays(); !ok {
		v := skillmastery.DefaultDecayedDays
		smc.mutation.SetDecayedDays(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (smc *SkillMasteryCreate) check() error {
	if _, ok := smc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SkillMastery.user_id"`)}
	}
	if v, ok := smc.mutation.UserID(); ok {
		if err := skillmastery.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.user_id": %w`, err)}
		}
	}
	if _, ok := smc.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "SkillMastery.skill_id"`)}
	}
	if v, ok := smc.mutation.SkillID(); ok {
		if err := skillmastery.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.skill_id": %w`, err)}
		}
	}
	if _, ok := smc.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "SkillMastery.mastery"`)}
	}
	if _, ok := smc.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "SkillMastery.confidence"`)}
	}
	if _, ok := smc.mutation.Trend(); !ok {
		return &ValidationError{Name: "trend", err: errors.New(`ent: missing required field "SkillMastery.trend"`)}
	}
	if _, ok := smc.mutation.Observations(); !ok {
		return &ValidationError{Name: "observations", err: errors.New(`ent: missing required field "SkillMastery.observations"`)}
	}
	if v, ok := smc.mutation.Observations(); ok {
		if err := skillmastery.ObservationsValidator(v); err != nil {
			return &ValidationError{Name: "observations", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.observations": %w`, err)}
		}
	}
	if _, ok := smc.mutation.DecayedDays(); !ok {
		return &ValidationError{Name: "decayed_days", err: errors.New(`ent: missing required field "SkillMastery.decayed_days"`)}
	}
	if v, ok := smc.mutation.DecayedDays(); ok {
		if err := skillmastery.DecayedDaysValidator(v); err != nil {
			return &ValidationError{Name: "decayed_days", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.decayed_days": %w`, err)}
		}
	}
	if _, ok := smc.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "SkillMastery.last_updated"`)}
	}
	return nil
}

func (smc *SkillMasteryCreate) sqlSave(ctx context.Context) (*SkillMastery, error) {
	if err := smc.check(); err != nil {
		return nil, err
	}
	_node, _spec := smc.createSpec()
	if err := sqlgraph.CreateNode(ctx, smc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	smc.mutation.id = &_node.ID
	smc.mutation.done = true
	return _node, nil
}

func (smc *SkillMasteryCreate) createSpec() (*SkillMastery, *sqlgraph.CreateSpec) {
	var (
		_node = &SkillMastery{config: smc.config}
		_spec = sqlgraph.NewCreateSpec(skillmastery.Table, sqlgraph.NewFieldSpec(skillmastery.FieldID, field.TypeInt))
	)
	if value, ok := smc.mutation.UserID(); ok {
		_spec.SetField(skillmastery.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := smc.mutation.SkillID(); ok {
		_spec.SetField(skillmastery.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := smc.mutation.Mastery(); ok {
		_spec.SetField(skillmastery.FieldMastery, field.TypeFloat64, value)
		_node.Mastery = value
	}
	if value, ok := smc.mutation.Confidence(); ok {
		_spec.SetField(skillmastery.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := smc.mutation.Trend(); ok {
		_spec.SetField(skillmastery.FieldTrend, field.TypeString, value)
		_node.Trend = value
	}
	if value, ok := smc.mutation.Observations(); ok {
		_spec.SetField(skillmastery.FieldObservations, field.TypeInt, value)
		_node.Observations = value
	}
	if value, ok := smc.mutation.DecayedDays(); ok {
		_spec.SetField(skillmastery.FieldDecayedDays, field.TypeInt, value)
		_node.DecayedDays = value
	}
	if value, ok := smc.mutation.LastUpdated(); ok {
		_spec.SetField(skillmastery.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// SkillMasteryCreateBulk is the builder for creating many SkillMastery entities in bulk.
type SkillMasteryCreateBulk struct {
	config
	err      error
	builders []*SkillMasteryCreate
}

// Save creates the SkillMastery entities in the database.
func (smcb *SkillMasteryCreateBulk) Save(ctx context.Context) ([]*SkillMastery, error) {
	if smcb.err != nil {
		return nil, smcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(smcb.builders))
	nodes := make([]*SkillMastery, len(smcb.builders))
	mutators := make([]Mutator, len(smcb.builders))
	for i := range smcb.builders {
		func(i int, root context.Context) {
			builder := smcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillMasteryMutation)
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
					_, err = mutators[i+1].Mutate(root, smcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, smcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, smcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (smcb *SkillMasteryCreateBulk) SaveX(ctx context.Context) []*SkillMastery {
	v, err := smcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (smcb *SkillMasteryCreateBulk) Exec(ctx context.Context) error {
	_, err := smcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (smcb *SkillMasteryCreateBulk) ExecX(ctx context.Context) {
	if err := smcb.Exec(ctx); err != nil {
		panic(err)
	}
}
