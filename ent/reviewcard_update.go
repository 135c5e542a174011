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
	"github.com/salmon302/DSATrain-sub001/ent/reviewcard"
)

// ReviewCardUpdate is the builder for updating ReviewCard entities.
type ReviewCardUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewCardMutation
}

// Where appends a list predicates to the ReviewCardUpdate builder.
func (rcu *ReviewCardUpdate) Where(ps ...predicate.ReviewCard) *ReviewCardUpdate {
	rcu.mutation.Where(ps...)
	return rcu
}

// SetUserID sets the "user_id" field.
func (rcu *ReviewCardUpdate) SetUserID(s string) *ReviewCardUpdate {
	rcu.mutation.SetUserID(s)
	return rcu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (rcu *ReviewCardUpdate) SetNillableUserID(s *string) *ReviewCardUpdate {
	if s != nil {
		rcu.SetUserID(*s)
	}
	return rcu
}

// SetSkillID sets the "skill_id" field.
func (rcu *ReviewCardUpdate) SetSkillID(s string) *ReviewCardUpdate {
	rcu.mutation.SetSkillID(s)
	return rcu
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (rcu *ReviewCardUpdate) SetNillableSkillID(s *string) *ReviewCardUpdate {
	if s != nil {
		rcu.SetSkillID(*s)
	}
	return rcu
}

// SetIntervalDays sets the "interval_days" field.
func (rcu *ReviewCardUpdate) SetIntervalDays(f float64) *ReviewCardUpdate {
	rcu.mutation.ResetIntervalDays()
	rcu.mutation.SetIntervalDays(f)
	return rcu
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (rcu *ReviewCardUpdate) SetNillableIntervalDays(f *float64) *ReviewCardUpdate {
	if f != nil {
		rcu.SetIntervalDays(*f)
	}
	return rcu
}

// AddIntervalDays adds f to the "interval_days" field.
func (rcu *ReviewCardUpdate) AddIntervalDays(f float64) *ReviewCardUpdate {
	rcu.mutation.AddIntervalDays(f)
	return rcu
}

// SetEase sets the "ease" field.
func (rcu *ReviewCardUpdate) SetEase(f float64) *ReviewCardUpdate {
	rcu.mutation.ResetEase()
	rcu.mutation.SetEase(f)
	return rcu
}

// SetNillableEase sets the "ease" field if the given value is not nil.
func (rcu *ReviewCardUpdate) SetNillableEase(f *float64) *ReviewCardUpdate {
	if f != nil {
		rcu.SetEase(*f)
	}
	return rcu
}

// AddEase adds f to the "ease" field.
func (rcu *ReviewCardUpdate) AddEase(f float64) *ReviewCardUpdate {
	rcu.mutation.AddEase(f)
	return rcu
}

// SetRepetitions sets the "repetitions" field.
func (rcu *ReviewCardUpdate) SetRepetitions(i int) *ReviewCardUpdate {
	rcu.mutation.ResetRepetitions()
	rcu.mutation.SetRepetitions(i)
	return rcu
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (rcu *ReviewCardUpdate) SetNillableRepetitions(i *int) *ReviewCardUpdate {
	if i != nil {
		rcu.SetRepetitions(*i)
	}
	return rcu
}

// AddRepetitions adds i to the "repetitions" field.
func (rcu *ReviewCardUpdate) AddRepetitions(i int) *ReviewCardUpdate {
	rcu.mutation.AddRepetitions(i)
	return rcu
}

// SetLapses sets the "lapses" field.
func (rcu *ReviewCardUpdate) SetLapses(i int) *ReviewCardUpdate {
	rcu.mutation.ResetLapses()
	rcu.mutation.SetLapses(i)
	return rcu
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (rcu *ReviewCardUpdate) SetNillableLapses(i *int) *ReviewCardUpdate {
	if i != nil {
		rcu.SetLapses(*i)
	}
	return rcu
}

// AddLapses adds i to the "lapses" field.
func (rcu *ReviewCardUpdate) AddLapses(i int) *ReviewCardUpdate {
	rcu.mutation.AddLapses(i)
	return rcu
}

// SetLastReviewAt sets the "last_review_at" field.
func (rcu *ReviewCardUpdate) SetLastReviewAt(t time.Time) *ReviewCardUpdate {
	rcu.mutation.SetLastReviewAt(t)
	return rcu
}

// SetNillableLastReviewAt sets the "last_review_at" field if the given value is not nil.
func (rcu *ReviewCardUpdate) SetNillableLastReviewAt(t *time.Time) *ReviewCardUpdate {
	if t != nil {
		rcu.SetLastReviewAt(*t)
	}
	return rcu
}

// SetNextReviewAt sets the "next_review_at" field.
func (rcu *ReviewCardUpdate) SetNextReviewAt(t time.Time) *ReviewCardUpdate {
	rcu.mutation.SetNextReviewAt(t)
	return rcu
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (rcu *ReviewCardUpdate) SetNillableNextReviewAt(t *time.Time) *ReviewCardUpdate {
	if t != nil {
		rcu.SetNextReviewAt(*t)
	}
	return rcu
}

// Mutation returns the ReviewCardMutation object of the builder.
func (rcu *ReviewCardUpdate) Mutation() *ReviewCardMutation {
	return rcu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (rcu *ReviewCardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, rcu.sqlSave, rcu.mutation, rcu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (rcu *ReviewCardUpdate) SaveX(ctx context.Context) int {
	affected, err := rcu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (rcu *ReviewCardUpdate) Exec(ctx context.Context) error {
	_, err := rcu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rcu *ReviewCardUpdate) ExecX(ctx context.Context) {
	if err := rcu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rcu *ReviewCardUpdate) check() error {
	if v, ok := rcu.mutation.UserID(); ok {
		if err := reviewcard.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.user_id": %w`, err)}
		}
	}
	if v, ok := rcu.mutation.SkillID(); ok {
		if err := reviewcard.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.skill_id": %w`, err)}
		}
	}
	if v, ok := rcu.mutation.Repetitions(); ok {
		if err := reviewcard.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.repetitions": %w`, err)}
		}
	}
	if v, ok := rcu.mutation.Lapses(); ok {
		if err := reviewcard.LapsesValidator(v); err != nil {
			return &ValidationError{Name: "lapses", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.lapses": %w`, err)}
		}
	}
	return nil
}

func (rcu *ReviewCardUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := rcu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewcard.Table, reviewcard.Columns, sqlgraph.NewFieldSpec(reviewcard.FieldID, field.TypeInt))
	if ps := rcu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := rcu.mutation.UserID(); ok {
		_spec.SetField(reviewcard.FieldUserID, field.TypeString, value)
	}
	if value, ok := rcu.mutation.SkillID(); ok {
		_spec.SetField(reviewcard.FieldSkillID, field.TypeString, value)
	}
	if value, ok := rcu.mutation.IntervalDays(); ok {
		_spec.SetField(reviewcard.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := rcu.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewcard.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := rcu.mutation.Ease(); ok {
		_spec.SetField(reviewcard.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := rcu.mutation.AddedEase(); ok {
		_spec.AddField(reviewcard.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := rcu.mutation.Repetitions(); ok {
		_spec.SetField(reviewcard.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := rcu.mutation.AddedRepetitions(); ok {
		_spec.AddField(reviewcard.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := rcu.mutation.Lapses(); ok {
		_spec.SetField(reviewcard.FieldLapses, field.TypeInt, value)
	}
	if value, ok := rcu.mutation.AddedLapses(); ok {
		_spec.AddField(reviewcard.FieldLapses, field.TypeInt, value)
	}
	if value, ok := rcu.mutation.LastReviewAt(); ok {
		_spec.SetField(reviewcard.FieldLastReviewAt, field.TypeTime, value)
	}
	if value, ok := rcu.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewcard.FieldNextReviewAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, rcu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	rcu.mutation.done = true
	return n, nil
}

// ReviewCardUpdateOne is the builder for updating a single ReviewCard entity.
type ReviewCardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewCardMutation
}

// SetUserID sets the "user_id" field.
func (rcuo *ReviewCardUpdateOne) SetUserID(s string) *ReviewCardUpdateOne {
	rcuo.mutation.SetUserID(s)
	return rcuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (rcuo *ReviewCardUpdateOne) SetNillableUserID(s *string) *ReviewCardUpdateOne {
	if s != nil {
		rcuo.SetUserID(*s)
	}
	return rcuo
}

// SetSkillID sets the "skill_id" field.
func (rcuo *ReviewCardUpdateOne) SetSkillID(s string) *ReviewCardUpdateOne {
	rcuo.mutation.SetSkillID(s)
	return rcuo
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (rcuo *ReviewCardUpdateOne) SetNillableSkillID(s *string) *ReviewCardUpdateOne {
	if s != nil {
		rcuo.SetSkillID(*s)
	}
	return rcuo
}

// SetIntervalDays sets the "interval_days" field.
func (rcuo *ReviewCardUpdateOne) SetIntervalDays(f float64) *ReviewCardUpdateOne {
	rcuo.mutation.ResetIntervalDays()
	rcuo.mutation.SetIntervalDays(f)
	return rcuo
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (rcuo *ReviewCardUpdateOne) SetNillableIntervalDays(f *float64) *ReviewCardUpdateOne {
	if f != nil {
		rcuo.SetIntervalDays(*f)
	}
	return rcuo
}

// AddIntervalDays adds f to the "interval_days" field.
func (rcuo *ReviewCardUpdateOne) AddIntervalDays(f float64) *ReviewCardUpdateOne {
	rcuo.mutation.AddIntervalDays(f)
	return rcuo
}

// SetEase sets the "ease" field.
func (rcuo *ReviewCardUpdateOne) SetEase(f float64) *ReviewCardUpdateOne {
	rcuo.mutation.ResetEase()
	rcuo.mutation.SetEase(f)
	return rcuo
}

// SetNillableEase sets the "ease" field if the given value is not nil.
func (rcuo *ReviewCardUpdateOne) SetNillableEase(f *float64) *ReviewCardUpdateOne {
	if f != nil {
		rcuo.SetEase(*f)
	}
	return rcuo
}

// AddEase adds f to the "ease" field.
func (rcuo *ReviewCardUpdateOne) AddEase(f float64) *ReviewCardUpdateOne {
	rcuo.mutation.AddEase(f)
	return rcuo
}

// SetRepetitions sets the "repetitions" field.
func (rcuo *ReviewCardUpdateOne) SetRepetitions(i int) *ReviewCardUpdateOne {
	rcuo.mutation.ResetRepetitions()
	rcuo.mutation.SetRepetitions(i)
	return rcuo
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (rcuo *ReviewCardUpdateOne) SetNillableRepetitions(i *int) *ReviewCardUpdateOne {
	if i != nil {
		rcuo.SetRepetitions(*i)
	}
	return rcuo
}

// AddRepetitions adds i to the "repetitions" field.
func (rcuo *ReviewCardUpdateOne) AddRepetitions(i int) *ReviewCardUpdateOne {
	rcuo.mutation.AddRepetitions(i)
	return rcuo
}

// SetLapses sets the "lapses" field.
func (rcuo *ReviewCardUpdateOne) SetLapses(i int) *ReviewCardUpdateOne {
	rcuo.mutation.ResetLapses()
	rcuo.mutation.SetLapses(i)
	return rcuo
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (rcuo *ReviewCardUpdateOne) SetNillableLapses(i *int) *ReviewCardUpdateOne {
	if i != nil {
		rcuo.SetLapses(*i)
	}
	return rcuo
}

// AddLapses adds i to the "lapses" field.
func (rcuo *ReviewCardUpdateOne) AddLapses(i int) *ReviewCardUpdateOne {
	rcuo.mutation.AddLapses(i)
	return rcuo
}

// SetLastReviewAt sets the "last_review_at" field.
func (rcuo *ReviewCardUpdateOne) SetLastReviewAt(t time.Time) *ReviewCardUpdateOne {
	rcuo.mutation.SetLastReviewAt(t)
	return rcuo
}

// SetNillableLastReviewAt sets the "last_review_at" field if the given value is not nil.
func (rcuo *ReviewCardUpdateOne) SetNillableLastReviewAt(t *time.Time) *ReviewCardUpdateOne {
	if t != nil {
		rcuo.SetLastReviewAt(*t)
	}
	return rcuo
}

// SetNextReviewAt sets the "next_review_at" field.
func (rcuo *ReviewCardUpdateOne) SetNextReviewAt(t time.Time) *ReviewCardUpdateOne {
	rcuo.mutation.SetNextReviewAt(t)
	return rcuo
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (rcuo *ReviewCardUpdateOne) SetNillableNextReviewAt(t *time.Time) *ReviewCardUpdateOne {
	if t != nil {
		rcuo.SetNextReviewAt(*t)
	}
	return rcuo
}

// Mutation returns the ReviewCardMutation object of the builder.
func (rcuo *ReviewCardUpdateOne) Mutation() *ReviewCardMutation {
	return rcuo.mutation
}

// Where appends a list predicates to the ReviewCardUpdate builder.
func (rcuo *ReviewCardUpdateOne) Where(ps ...predicate.ReviewCard) *ReviewCardUpdateOne {
	rcuo.mutation.Where(ps...)
	return rcuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (rcuo *ReviewCardUpdateOne) Select(field string, fields ...string) *ReviewCardUpdateOne {
	rcuo.fields = append([]string{field}, fields...)
	return rcuo
}

// Save executes the query and returns the updated ReviewCard entity.
func (rcuo *ReviewCardUpdateOne) Save(ctx context.Context) (*ReviewCard, error) {
	return withHooks(ctx, rcuo.sqlSave, rcuo.mutation, rcuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (rcuo *ReviewCardUpdateOne) SaveX(ctx context.Context) *ReviewCard {
	node, err := rcuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (rcuo *ReviewCardUpdateOne) Exec(ctx context.Context) error {
	_, err := rcuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rcuo *ReviewCardUpdateOne) ExecX(ctx context.Context) {
	if err := rcuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rcuo *ReviewCardUpdateOne) check() error {
	if v, ok := rcuo.mutation.UserID(); ok {
		if err := reviewcard.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.user_id": %w`, err)}
		}
	}
	if v, ok := rcuo.mutation.SkillID(); ok {
		if err := reviewcard.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.skill_id": %w`, err)}
		}
	}
	if v, ok := rcuo.mutation.Repetitions(); ok {
		if err := reviewcard.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.repetitions": %w`, err)}
		}
	}
	if v, ok := rcuo.mutation.Lapses(); ok {
		if err := reviewcard.LapsesValidator(v); err != nil {
			return &ValidationError{Name: "lapses", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.lapses": %w`, err)}
		}
	}
	return nil
}

func (rcuo *ReviewCardUpdateOne) sqlSave(ctx context.Context) (_node *ReviewCard, err error) {
	if err := rcuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewcard.Table, reviewcard.Columns, sqlgraph.NewFieldSpec(reviewcard.FieldID, field.TypeInt))
	id, ok := rcuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewCard.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := rcuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewcard.FieldID)
		for _, f := range fields {
			if !reviewcard.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewcard.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := rcuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := rcuo.mutation.UserID(); ok {
		_spec.SetField(reviewcard.FieldUserID, field.TypeString, value)
	}
	if value, ok := rcuo.mutation.SkillID(); ok {
		_spec.SetField(reviewcard.FieldSkillID, field.TypeString, value)
	}
	if value, ok := rcuo.mutation.IntervalDays(); ok {
		_spec.SetField(reviewcard.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := rcuo.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewcard.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := rcuo.mutation.Ease(); ok {
		_spec.SetField(reviewcard.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := rcuo.mutation.AddedEase(); ok {
		_spec.AddField(reviewcard.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := rcuo.mutation.Repetitions(); ok {
		_spec.SetField(reviewcard.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := rcuo.mutation.AddedRepetitions(); ok {
		_spec.AddField(reviewcard.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := rcuo.mutation.Lapses(); ok {
		_spec.SetField(reviewcard.FieldLapses, field.TypeInt, value)
	}
	if value, ok := rcuo.mutation.AddedLapses(); ok {
		_spec.AddField(reviewcard.FieldLapses, field.TypeInt, value)
	}
	if value, ok := rcuo.mutation.LastReviewAt(); ok {
		_spec.SetField(reviewcard.FieldLastReviewAt, field.TypeTime, value)
	}
	if value, ok := rcuo.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewcard.FieldNextReviewAt, field.TypeTime, value)
	}
	_node = &ReviewCard{config: rcuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, rcuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	rcuo.mutation.done = true
	return _node, nil
}
