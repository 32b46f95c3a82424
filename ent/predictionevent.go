// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rmaia/aprovado/ent/predictionevent"
)

// PredictionEvent is the model entity for the PredictionEvent schema.
type PredictionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the global event log
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock time the event was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Forecast score, 0-100
	PredictedScore int `json:"predicted_score,omitempty"`
	// Estimated approval chance, 0-100
	ApprovalProbability int `json:"approval_probability,omitempty"`
	// Meta-confidence of the forecast, 0-100
	PredictionConfidence int `json:"prediction_confidence,omitempty"`
	// Full prediction snapshot as JSON
	Data         map[string]interface{} `json:"data,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PredictionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case predictionevent.FieldData:
			values[i] = new([]byte)
		case predictionevent.FieldID, predictionevent.FieldSequence, predictionevent.FieldPredictedScore, predictionevent.FieldApprovalProbability, predictionevent.FieldPredictionConfidence:
			values[i] = new(sql.NullInt64)
		case predictionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PredictionEvent fields.
func (_m *PredictionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case predictionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case predictionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case predictionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case predictionevent.FieldPredictedScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field predicted_score", values[i])
			} else if value.Valid {
				_m.PredictedScore = int(value.Int64)
			}
		case predictionevent.FieldApprovalProbability:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field approval_probability", values[i])
			} else if value.Valid {
				_m.ApprovalProbability = int(value.Int64)
			}
		case predictionevent.FieldPredictionConfidence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prediction_confidence", values[i])
			} else if value.Valid {
				_m.PredictionConfidence = int(value.Int64)
			}
		case predictionevent.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PredictionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PredictionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PredictionEvent.
// Note that you need to call PredictionEvent.Unwrap() before calling this method if this PredictionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PredictionEvent) Update() *PredictionEventUpdateOne {
	return NewPredictionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PredictionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PredictionEvent) Unwrap() *PredictionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PredictionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PredictionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PredictionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("predicted_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.PredictedScore))
	builder.WriteString(", ")
	builder.WriteString("approval_probability=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApprovalProbability))
	builder.WriteString(", ")
	builder.WriteString("prediction_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.PredictionConfidence))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteByte(')')
	return builder.String()
}

// PredictionEvents is a parsable slice of PredictionEvent.
type PredictionEvents []*PredictionEvent
