package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/openlabor/jobmarket/constants"
)

// Review rows are write-once, like ratings.
type Review struct{ ent.Schema }

func (Review) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "reviews"},
	}
}

func (Review) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.Int64("seq").Unique().Immutable(),
		// explicit FK
		field.Int64("job_id").Immutable(),
		field.String("author").NotEmpty().Immutable(),
		field.Int("score").Range(constants.MinScore, constants.MaxScore).Immutable(),
		field.String("comment").Optional().Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Review) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("reviews").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (Review) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "seq"),
	}
}
