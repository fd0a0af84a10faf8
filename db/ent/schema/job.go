package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/openlabor/jobmarket/constants"
	"github.com/openlabor/jobmarket/db/ent/schema/utils"
)

type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		// Sequential ids come from the ledger, not the database.
		field.Int64("id").Immutable(),
		field.String("employer").NotEmpty().Immutable(),
		field.String("employee").Optional().Nillable(),
		field.Int64("payment").Positive().Immutable(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.JobStatuses()...)),
		field.String("description").Immutable(),
		field.Time("deadline").Immutable(),
		field.String("work_result").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("applications", Application.Type),
		edge.To("ratings", Rating.Type),
		edge.To("reviews", Review.Type),
	}
}

func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("employer", "status"),
		index.Fields("status"),
	}
}
