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
	"github.com/openlabor/jobmarket/db/ent/schema/utils"
)

// Rating rows are write-once: no update path exists anywhere in the code.
type Rating struct{ ent.Schema }

func (Rating) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ratings"},
	}
}

func (Rating) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.Int64("seq").Unique().Immutable(),
		// explicit FK
		field.Int64("job_id").Immutable(),
		field.String("rated_person").NotEmpty().Immutable(),
		field.String("rater").NotEmpty().Immutable(),
		field.Int("score").Range(constants.MinScore, constants.MaxScore).Immutable(),
		field.String("role").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.Roles()...)),
		field.String("comment").Optional().Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Rating) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("ratings").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (Rating) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("rated_person", "seq"),
	}
}
