// Code generated by ent, DO NOT EDIT.

package predictionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rmaia/aprovado/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// PredictedScore applies equality check predicate on the "predicted_score" field. It's identical to PredictedScoreEQ.
func PredictedScore(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldPredictedScore, v))
}

// ApprovalProbability applies equality check predicate on the "approval_probability" field. It's identical to ApprovalProbabilityEQ.
func ApprovalProbability(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldApprovalProbability, v))
}

// PredictionConfidence applies equality check predicate on the "prediction_confidence" field. It's identical to PredictionConfidenceEQ.
func PredictionConfidence(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldPredictionConfidence, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// PredictedScoreEQ applies the EQ predicate on the "predicted_score" field.
func PredictedScoreEQ(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldPredictedScore, v))
}

// PredictedScoreNEQ applies the NEQ predicate on the "predicted_score" field.
func PredictedScoreNEQ(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldPredictedScore, v))
}

// PredictedScoreIn applies the In predicate on the "predicted_score" field.
func PredictedScoreIn(vs ...int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldPredictedScore, vs...))
}

// PredictedScoreNotIn applies the NotIn predicate on the "predicted_score" field.
func PredictedScoreNotIn(vs ...int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldPredictedScore, vs...))
}

// PredictedScoreGT applies the GT predicate on the "predicted_score" field.
func PredictedScoreGT(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldPredictedScore, v))
}

// PredictedScoreGTE applies the GTE predicate on the "predicted_score" field.
func PredictedScoreGTE(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldPredictedScore, v))
}

// PredictedScoreLT applies the LT predicate on the "predicted_score" field.
func PredictedScoreLT(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldPredictedScore, v))
}

// PredictedScoreLTE applies the LTE predicate on the "predicted_score" field.
func PredictedScoreLTE(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldPredictedScore, v))
}

// ApprovalProbabilityEQ applies the EQ predicate on the "approval_probability" field.
func ApprovalProbabilityEQ(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldApprovalProbability, v))
}

// ApprovalProbabilityNEQ applies the NEQ predicate on the "approval_probability" field.
func ApprovalProbabilityNEQ(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldApprovalProbability, v))
}

// ApprovalProbabilityIn applies the In predicate on the "approval_probability" field.
func ApprovalProbabilityIn(vs ...int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldApprovalProbability, vs...))
}

// ApprovalProbabilityNotIn applies the NotIn predicate on the "approval_probability" field.
func ApprovalProbabilityNotIn(vs ...int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldApprovalProbability, vs...))
}

// ApprovalProbabilityGT applies the GT predicate on the "approval_probability" field.
func ApprovalProbabilityGT(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldApprovalProbability, v))
}

// ApprovalProbabilityGTE applies the GTE predicate on the "approval_probability" field.
func ApprovalProbabilityGTE(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldApprovalProbability, v))
}

// ApprovalProbabilityLT applies the LT predicate on the "approval_probability" field.
func ApprovalProbabilityLT(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldApprovalProbability, v))
}

// ApprovalProbabilityLTE applies the LTE predicate on the "approval_probability" field.
func ApprovalProbabilityLTE(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldApprovalProbability, v))
}

// PredictionConfidenceEQ applies the EQ predicate on the "prediction_confidence" field.
func PredictionConfidenceEQ(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldEQ(FieldPredictionConfidence, v))
}

// PredictionConfidenceNEQ applies the NEQ predicate on the "prediction_confidence" field.
func PredictionConfidenceNEQ(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNEQ(FieldPredictionConfidence, v))
}

// PredictionConfidenceIn applies the In predicate on the "prediction_confidence" field.
func PredictionConfidenceIn(vs ...int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIn(FieldPredictionConfidence, vs...))
}

// PredictionConfidenceNotIn applies the NotIn predicate on the "prediction_confidence" field.
func PredictionConfidenceNotIn(vs ...int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotIn(FieldPredictionConfidence, vs...))
}

// PredictionConfidenceGT applies the GT predicate on the "prediction_confidence" field.
func PredictionConfidenceGT(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGT(FieldPredictionConfidence, v))
}

// PredictionConfidenceGTE applies the GTE predicate on the "prediction_confidence" field.
func PredictionConfidenceGTE(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldGTE(FieldPredictionConfidence, v))
}

// PredictionConfidenceLT applies the LT predicate on the "prediction_confidence" field.
func PredictionConfidenceLT(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLT(FieldPredictionConfidence, v))
}

// PredictionConfidenceLTE applies the LTE predicate on the "prediction_confidence" field.
func PredictionConfidenceLTE(v int) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldLTE(FieldPredictionConfidence, v))
}

// DataIsNil applies the IsNil predicate on the "data" field.
func DataIsNil() predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldIsNull(FieldData))
}

// DataNotNil applies the NotNil predicate on the "data" field.
func DataNotNil() predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.FieldNotNull(FieldData))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PredictionEvent) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PredictionEvent) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PredictionEvent) predicate.PredictionEvent {
	return predicate.PredictionEvent(sql.NotPredicates(p))
}
