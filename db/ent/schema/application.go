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
)

type Application struct{ ent.Schema }

func (Application) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_applications"},
	}
}

func (Application) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.Int64("job_id").Immutable(),
		field.String("applicant").NotEmpty().Immutable(),
		field.Int("position").NonNegative().Immutable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Application) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("applications").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (Application) Indexes() []ent.Index {
	return []ent.Index{
		// one application per address per job
		index.Fields("job_id", "applicant").Unique(),
	}
}
