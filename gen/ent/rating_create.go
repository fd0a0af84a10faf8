// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/openlabor/jobmarket/gen/ent/job"
	"github.com/openlabor/jobmarket/gen/ent/rating"
)

// RatingCreate is the builder for creating a Rating entity.
type RatingCreate struct {
	config
	mutation *RatingMutation
	hooks    []Hook
}

// SetSeq sets the "seq" field.
func (_c *RatingCreate) SetSeq(v int64) *RatingCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *RatingCreate) SetJobID(v int64) *RatingCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetRatedPerson sets the "rated_person" field.
func (_c *RatingCreate) SetRatedPerson(v string) *RatingCreate {
	_c.mutation.SetRatedPerson(v)
	return _c
}

// SetRater sets the "rater" field.
func (_c *RatingCreate) SetRater(v string) *RatingCreate {
	_c.mutation.SetRater(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *RatingCreate) SetScore(v int) *RatingCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *RatingCreate) SetRole(v string) *RatingCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetComment sets the "comment" field.
func (_c *RatingCreate) SetComment(v string) *RatingCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *RatingCreate) SetNillableComment(v *string) *RatingCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RatingCreate) SetCreatedAt(v time.Time) *RatingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RatingCreate) SetNillableCreatedAt(v *time.Time) *RatingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RatingCreate) SetID(v uuid.UUID) *RatingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RatingCreate) SetNillableID(v *uuid.UUID) *RatingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *RatingCreate) SetJob(v *Job) *RatingCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the RatingMutation object of the builder.
func (_c *RatingCreate) Mutation() *RatingMutation {
	return _c.mutation
}

// Save creates the Rating in the database.
func (_c *RatingCreate) Save(ctx context.Context) (*Rating, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RatingCreate) SaveX(ctx context.Context) *Rating {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RatingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RatingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RatingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rating.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := rating.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RatingCreate) check() error {
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "Rating.seq"`)}
	}
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "Rating.job_id"`)}
	}
	if _, ok := _c.mutation.RatedPerson(); !ok {
		return &ValidationError{Name: "rated_person", err: errors.New(`ent: missing required field "Rating.rated_person"`)}
	}
	if v, ok := _c.mutation.RatedPerson(); ok {
		if err := rating.RatedPersonValidator(v); err != nil {
			return &ValidationError{Name: "rated_person", err: fmt.Errorf(`ent: validator failed for field "Rating.rated_person": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rater(); !ok {
		return &ValidationError{Name: "rater", err: errors.New(`ent: missing required field "Rating.rater"`)}
	}
	if v, ok := _c.mutation.Rater(); ok {
		if err := rating.RaterValidator(v); err != nil {
			return &ValidationError{Name: "rater", err: fmt.Errorf(`ent: validator failed for field "Rating.rater": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Rating.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := rating.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Rating.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Rating.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := rating.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Rating.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Rating.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "Rating.job"`)}
	}
	return nil
}

func (_c *RatingCreate) sqlSave(ctx context.Context) (*Rating, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RatingCreate) createSpec() (*Rating, *sqlgraph.CreateSpec) {
	var (
		_node = &Rating{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rating.Table, sqlgraph.NewFieldSpec(rating.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(rating.FieldSeq, field.TypeInt64, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.RatedPerson(); ok {
		_spec.SetField(rating.FieldRatedPerson, field.TypeString, value)
		_node.RatedPerson = value
	}
	if value, ok := _c.mutation.Rater(); ok {
		_spec.SetField(rating.FieldRater, field.TypeString, value)
		_node.Rater = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(rating.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(rating.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(rating.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rating.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   rating.JobTable,
			Columns: []string{rating.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RatingCreateBulk is the builder for creating many Rating entities in bulk.
type RatingCreateBulk struct {
	config
	err      error
	builders []*RatingCreate
}

// Save creates the Rating entities in the database.
func (_c *RatingCreateBulk) Save(ctx context.Context) ([]*Rating, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Rating, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RatingMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RatingCreateBulk) SaveX(ctx context.Context) []*Rating {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RatingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RatingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
