// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rmaia/aprovado/ent/predictionevent"
)

// PredictionEventCreate is the builder for creating a PredictionEvent entity.
type PredictionEventCreate struct {
	config
	mutation *PredictionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PredictionEventCreate) SetSequence(v int64) *PredictionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PredictionEventCreate) SetTimestamp(v time.Time) *PredictionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PredictionEventCreate) SetNillableTimestamp(v *time.Time) *PredictionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetPredictedScore sets the "predicted_score" field.
func (_c *PredictionEventCreate) SetPredictedScore(v int) *PredictionEventCreate {
	_c.mutation.SetPredictedScore(v)
	return _c
}

// SetApprovalProbability sets the "approval_probability" field.
func (_c *PredictionEventCreate) SetApprovalProbability(v int) *PredictionEventCreate {
	_c.mutation.SetApprovalProbability(v)
	return _c
}

// SetPredictionConfidence sets the "prediction_confidence" field.
func (_c *PredictionEventCreate) SetPredictionConfidence(v int) *PredictionEventCreate {
	_c.mutation.SetPredictionConfidence(v)
	return _c
}

// SetData sets the "data" field.
func (_c *PredictionEventCreate) SetData(v map[string]interface{}) *PredictionEventCreate {
	_c.mutation.SetData(v)
	return _c
}

// Mutation returns the PredictionEventMutation object of the builder.
func (_c *PredictionEventCreate) Mutation() *PredictionEventMutation {
	return _c.mutation
}

// Save creates the PredictionEvent in the database.
func (_c *PredictionEventCreate) Save(ctx context.Context) (*PredictionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PredictionEventCreate) SaveX(ctx context.Context) *PredictionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PredictionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PredictionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PredictionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := predictionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PredictionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PredictionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PredictionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.PredictedScore(); !ok {
		return &ValidationError{Name: "predicted_score", err: errors.New(`ent: missing required field "PredictionEvent.predicted_score"`)}
	}
	if _, ok := _c.mutation.ApprovalProbability(); !ok {
		return &ValidationError{Name: "approval_probability", err: errors.New(`ent: missing required field "PredictionEvent.approval_probability"`)}
	}
	if _, ok := _c.mutation.PredictionConfidence(); !ok {
		return &ValidationError{Name: "prediction_confidence", err: errors.New(`ent: missing required field "PredictionEvent.prediction_confidence"`)}
	}
	return nil
}

func (_c *PredictionEventCreate) sqlSave(ctx context.Context) (*PredictionEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PredictionEventCreate) createSpec() (*PredictionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PredictionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(predictionevent.Table, sqlgraph.NewFieldSpec(predictionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(predictionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(predictionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.PredictedScore(); ok {
		_spec.SetField(predictionevent.FieldPredictedScore, field.TypeInt, value)
		_node.PredictedScore = value
	}
	if value, ok := _c.mutation.ApprovalProbability(); ok {
		_spec.SetField(predictionevent.FieldApprovalProbability, field.TypeInt, value)
		_node.ApprovalProbability = value
	}
	if value, ok := _c.mutation.PredictionConfidence(); ok {
		_spec.SetField(predictionevent.FieldPredictionConfidence, field.TypeInt, value)
		_node.PredictionConfidence = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(predictionevent.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// PredictionEventCreateBulk is the builder for creating many PredictionEvent entities in bulk.
type PredictionEventCreateBulk struct {
	config
	err      error
	builders []*PredictionEventCreate
}

// Save creates the PredictionEvent entities in the database.
func (_c *PredictionEventCreateBulk) Save(ctx context.Context) ([]*PredictionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PredictionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PredictionEventMutation)
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PredictionEventCreateBulk) SaveX(ctx context.Context) []*PredictionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PredictionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PredictionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
