// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/salmon302/DSATrain-sub001/ent/predicate"
	"github.com/salmon302/DSATrain-sub001/ent/reviewcard"
)

// ReviewCardDelete is the builder for deleting a ReviewCard entity.
type ReviewCardDelete struct {
	config
	hooks    []Hook
	mutation *ReviewCardMutation
}

// Where appends a list predicates to the ReviewCardDelete builder.
func (rcd *ReviewCardDelete) Where(ps ...predicate.ReviewCard) *ReviewCardDelete {
	rcd.mutation.Where(ps...)
	return rcd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (rcd *ReviewCardDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, rcd.sqlExec, rcd.mutation, rcd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (rcd *ReviewCardDelete) ExecX(ctx context.Context) int {
	n, err := rcd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (rcd *ReviewCardDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(reviewcard.Table, sqlgraph.NewFieldSpec(reviewcard.FieldID, field.TypeInt))
	if ps := rcd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, rcd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	rcd.mutation.done = true
	return affected, err
}

// ReviewCardDeleteOne is the builder for deleting a single ReviewCard entity.
type ReviewCardDeleteOne struct {
	rcd *ReviewCardDelete
}

// Where appends a list predicates to the ReviewCardDelete builder.
func (rcdo *ReviewCardDeleteOne) Where(ps ...predicate.ReviewCard) *ReviewCardDeleteOne {
	rcdo.rcd.mutation.Where(ps...)
	return rcdo
}

// Exec executes the deletion query.
func (rcdo *ReviewCardDeleteOne) Exec(ctx context.Context) error {
	n, err := rcdo.rcd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{reviewcard.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (rcdo *ReviewCardDeleteOne) ExecX(ctx context.Context) {
	if err := rcdo.Exec(ctx); err != nil {
		panic(err)
	}
}
