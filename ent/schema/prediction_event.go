package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// PredictionEvent records one score-prediction run, keeping the history
// so the learner can see the forecast evolve over time.
type PredictionEvent struct {
	ent.Schema
}

func (PredictionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PredictionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("predicted_score").
			Comment("Forecast score, 0-100"),
		field.Int("approval_probability").
			Comment("Estimated approval chance, 0-100"),
		field.Int("prediction_confidence").
			Comment("Meta-confidence of the forecast, 0-100"),
		field.JSON("data", map[string]any{}).
			Optional().
			Comment("Full prediction snapshot as JSON"),
	}
}
