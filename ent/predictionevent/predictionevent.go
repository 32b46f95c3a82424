// Code generated by ent, DO NOT EDIT.

package predictionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the predictionevent type in the database.
	Label = "prediction_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldPredictedScore holds the string denoting the predicted_score field in the database.
	FieldPredictedScore = "predicted_score"
	// FieldApprovalProbability holds the string denoting the approval_probability field in the database.
	FieldApprovalProbability = "approval_probability"
	// FieldPredictionConfidence holds the string denoting the prediction_confidence field in the database.
	FieldPredictionConfidence = "prediction_confidence"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// Table holds the table name of the predictionevent in the database.
	Table = "prediction_events"
)

// Columns holds all SQL columns for predictionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldPredictedScore,
	FieldApprovalProbability,
	FieldPredictionConfidence,
	FieldData,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
)

// OrderOption defines the ordering options for the PredictionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByPredictedScore orders the results by the predicted_score field.
func ByPredictedScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPredictedScore, opts...).ToFunc()
}

// ByApprovalProbability orders the results by the approval_probability field.
func ByApprovalProbability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovalProbability, opts...).ToFunc()
}

// ByPredictionConfidence orders the results by the prediction_confidence field.
func ByPredictionConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPredictionConfidence, opts...).ToFunc()
}
