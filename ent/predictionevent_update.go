// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rmaia/aprovado/ent/predicate"
	"github.com/rmaia/aprovado/ent/predictionevent"
)

// PredictionEventUpdate is the builder for updating PredictionEvent entities.
type PredictionEventUpdate struct {
	config
	hooks    []Hook
	mutation *PredictionEventMutation
}

// Where appends a list predicates to the PredictionEventUpdate builder.
func (_u *PredictionEventUpdate) Where(ps ...predicate.PredictionEvent) *PredictionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPredictedScore sets the "predicted_score" field.
func (_u *PredictionEventUpdate) SetPredictedScore(v int) *PredictionEventUpdate {
	_u.mutation.ResetPredictedScore()
	_u.mutation.SetPredictedScore(v)
	return _u
}

// SetNillablePredictedScore sets the "predicted_score" field if the given value is not nil.
func (_u *PredictionEventUpdate) SetNillablePredictedScore(v *int) *PredictionEventUpdate {
	if v != nil {
		_u.SetPredictedScore(*v)
	}
	return _u
}

// AddPredictedScore adds value to the "predicted_score" field.
func (_u *PredictionEventUpdate) AddPredictedScore(v int) *PredictionEventUpdate {
	_u.mutation.AddPredictedScore(v)
	return _u
}

// SetApprovalProbability sets the "approval_probability" field.
func (_u *PredictionEventUpdate) SetApprovalProbability(v int) *PredictionEventUpdate {
	_u.mutation.ResetApprovalProbability()
	_u.mutation.SetApprovalProbability(v)
	return _u
}

// SetNillableApprovalProbability sets the "approval_probability" field if the given value is not nil.
func (_u *PredictionEventUpdate) SetNillableApprovalProbability(v *int) *PredictionEventUpdate {
	if v != nil {
		_u.SetApprovalProbability(*v)
	}
	return _u
}

// AddApprovalProbability adds value to the "approval_probability" field.
func (_u *PredictionEventUpdate) AddApprovalProbability(v int) *PredictionEventUpdate {
	_u.mutation.AddApprovalProbability(v)
	return _u
}

// SetPredictionConfidence sets the "prediction_confidence" field.
func (_u *PredictionEventUpdate) SetPredictionConfidence(v int) *PredictionEventUpdate {
	_u.mutation.ResetPredictionConfidence()
	_u.mutation.SetPredictionConfidence(v)
	return _u
}

// SetNillablePredictionConfidence sets the "prediction_confidence" field if the given value is not nil.
func (_u *PredictionEventUpdate) SetNillablePredictionConfidence(v *int) *PredictionEventUpdate {
	if v != nil {
		_u.SetPredictionConfidence(*v)
	}
	return _u
}

// AddPredictionConfidence adds value to the "prediction_confidence" field.
func (_u *PredictionEventUpdate) AddPredictionConfidence(v int) *PredictionEventUpdate {
	_u.mutation.AddPredictionConfidence(v)
	return _u
}

// SetData sets the "data" field.
func (_u *PredictionEventUpdate) SetData(v map[string]interface{}) *PredictionEventUpdate {
	_u.mutation.SetData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *PredictionEventUpdate) ClearData() *PredictionEventUpdate {
	_u.mutation.ClearData()
	return _u
}

// Mutation returns the PredictionEventMutation object of the builder.
func (_u *PredictionEventUpdate) Mutation() *PredictionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PredictionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PredictionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PredictionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PredictionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PredictionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(predictionevent.Table, predictionevent.Columns, sqlgraph.NewFieldSpec(predictionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PredictedScore(); ok {
		_spec.SetField(predictionevent.FieldPredictedScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPredictedScore(); ok {
		_spec.AddField(predictionevent.FieldPredictedScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ApprovalProbability(); ok {
		_spec.SetField(predictionevent.FieldApprovalProbability, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedApprovalProbability(); ok {
		_spec.AddField(predictionevent.FieldApprovalProbability, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PredictionConfidence(); ok {
		_spec.SetField(predictionevent.FieldPredictionConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPredictionConfidence(); ok {
		_spec.AddField(predictionevent.FieldPredictionConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(predictionevent.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(predictionevent.FieldData, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{predictionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PredictionEventUpdateOne is the builder for updating a single PredictionEvent entity.
type PredictionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PredictionEventMutation
}

// SetPredictedScore sets the "predicted_score" field.
func (_u *PredictionEventUpdateOne) SetPredictedScore(v int) *PredictionEventUpdateOne {
	_u.mutation.ResetPredictedScore()
	_u.mutation.SetPredictedScore(v)
	return _u
}

// SetNillablePredictedScore sets the "predicted_score" field if the given value is not nil.
func (_u *PredictionEventUpdateOne) SetNillablePredictedScore(v *int) *PredictionEventUpdateOne {
	if v != nil {
		_u.SetPredictedScore(*v)
	}
	return _u
}

// AddPredictedScore adds value to the "predicted_score" field.
func (_u *PredictionEventUpdateOne) AddPredictedScore(v int) *PredictionEventUpdateOne {
	_u.mutation.AddPredictedScore(v)
	return _u
}

// SetApprovalProbability sets the "approval_probability" field.
func (_u *PredictionEventUpdateOne) SetApprovalProbability(v int) *PredictionEventUpdateOne {
	_u.mutation.ResetApprovalProbability()
	_u.mutation.SetApprovalProbability(v)
	return _u
}

// SetNillableApprovalProbability sets the "approval_probability" field if the given value is not nil.
func (_u *PredictionEventUpdateOne) SetNillableApprovalProbability(v *int) *PredictionEventUpdateOne {
	if v != nil {
		_u.SetApprovalProbability(*v)
	}
	return _u
}

// AddApprovalProbability adds value to the "approval_probability" field.
func (_u *PredictionEventUpdateOne) AddApprovalProbability(v int) *PredictionEventUpdateOne {
	_u.mutation.AddApprovalProbability(v)
	return _u
}

// SetPredictionConfidence sets the "prediction_confidence" field.
func (_u *PredictionEventUpdateOne) SetPredictionConfidence(v int) *PredictionEventUpdateOne {
	_u.mutation.ResetPredictionConfidence()
	_u.mutation.SetPredictionConfidence(v)
	return _u
}

// SetNillablePredictionConfidence sets the "prediction_confidence" field if the given value is not nil.
func (_u *PredictionEventUpdateOne) SetNillablePredictionConfidence(v *int) *PredictionEventUpdateOne {
	if v != nil {
		_u.SetPredictionConfidence(*v)
	}
	return _u
}

// AddPredictionConfidence adds value to the "prediction_confidence" field.
func (_u *PredictionEventUpdateOne) AddPredictionConfidence(v int) *PredictionEventUpdateOne {
	_u.mutation.AddPredictionConfidence(v)
	return _u
}

// SetData sets the "data" field.
func (_u *PredictionEventUpdateOne) SetData(v map[string]interface{}) *PredictionEventUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *PredictionEventUpdateOne) ClearData() *PredictionEventUpdateOne {
	_u.mutation.ClearData()
	return _u
}

// Mutation returns the PredictionEventMutation object of the builder.
func (_u *PredictionEventUpdateOne) Mutation() *PredictionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PredictionEventUpdate builder.
func (_u *PredictionEventUpdateOne) Where(ps ...predicate.PredictionEvent) *PredictionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PredictionEventUpdateOne) Select(field string, fields ...string) *PredictionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PredictionEvent entity.
func (_u *PredictionEventUpdateOne) Save(ctx context.Context) (*PredictionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PredictionEventUpdateOne) SaveX(ctx context.Context) *PredictionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PredictionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PredictionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PredictionEventUpdateOne) sqlSave(ctx context.Context) (_node *PredictionEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(predictionevent.Table, predictionevent.Columns, sqlgraph.NewFieldSpec(predictionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PredictionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, predictionevent.FieldID)
		for _, f := range fields {
			if !predictionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != predictionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PredictedScore(); ok {
		_spec.SetField(predictionevent.FieldPredictedScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPredictedScore(); ok {
		_spec.AddField(predictionevent.FieldPredictedScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ApprovalProbability(); ok {
		_spec.SetField(predictionevent.FieldApprovalProbability, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedApprovalProbability(); ok {
		_spec.AddField(predictionevent.FieldApprovalProbability, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PredictionConfidence(); ok {
		_spec.SetField(predictionevent.FieldPredictionConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPredictionConfidence(); ok {
		_spec.AddField(predictionevent.FieldPredictionConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(predictionevent.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(predictionevent.FieldData, field.TypeJSON)
	}
	_node = &PredictionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{predictionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
