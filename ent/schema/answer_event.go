package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Groups answers recorded in one sitting"),
		field.String("item_id").
			NotEmpty().
			Comment("Stable identifier of the answered question"),
		field.String("subject").
			NotEmpty().
			Comment("Syllabus subject the question belongs to"),
		field.String("topic").
			Optional().
			Comment("Finer-grained topic tag, used by the interleaver"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("quality").
			Comment("SM-2 review quality, 0-5"),
		field.Float("item_rating").
			Comment("Elo rating of the item at answer time"),
		field.Int("rating_after").
			Comment("Learner overall rating after this answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("item_id"),
		index.Fields("subject"),
		index.Fields("correct"),
	}
}
