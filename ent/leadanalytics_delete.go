// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ringstack/ringstack/ent/leadanalytics"
	"github.com/ringstack/ringstack/ent/predicate"
)

// LeadAnalyticsDelete is the builder for deleting a LeadAnalytics entity.
type LeadAnalyticsDelete struct {
	config
	hooks    []Hook
	mutation *LeadAnalyticsMutation
}

// Where appends a list predicates to the LeadAnalyticsDelete builder.
func (_d *LeadAnalyticsDelete) Where(ps ...predicate.LeadAnalytics) *LeadAnalyticsDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LeadAnalyticsDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LeadAnalyticsDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LeadAnalyticsDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(leadanalytics.Table, sqlgraph.NewFieldSpec(leadanalytics.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// LeadAnalyticsDeleteOne is the builder for deleting a single LeadAnalytics entity.
type LeadAnalyticsDeleteOne struct {
	_d *LeadAnalyticsDelete
}

// Where appends a list predicates to the LeadAnalyticsDelete builder.
func (_d *LeadAnalyticsDeleteOne) Where(ps ...predicate.LeadAnalytics) *LeadAnalyticsDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LeadAnalyticsDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{leadanalytics.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LeadAnalyticsDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
