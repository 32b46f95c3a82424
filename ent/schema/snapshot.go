package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot is a serialized copy of the whole learner state: cards,
// ratings, subjects and scheduler configuration. Startup loads the newest
// snapshot instead of replaying the event log; the stored sequence says
// which events the snapshot already folds in.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Immutable().
			Comment("Last event sequence folded into this snapshot"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("When the snapshot was taken"),
		field.JSON("data", map[string]any{}).
			Comment("Learner state, versioned JSON"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("sequence"),
	}
}
