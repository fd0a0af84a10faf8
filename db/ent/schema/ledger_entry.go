package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/openlabor/jobmarket/constants"
	"github.com/openlabor/jobmarket/db/ent/schema/utils"
)

// LedgerEntry is the append-only money journal. Balances are derived by
// replaying entries in seq order; nothing here is ever updated.
type LedgerEntry struct{ ent.Schema }

func (LedgerEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ledger_entries"},
	}
}

func (LedgerEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.Int64("seq").Unique().Immutable(),
		field.String("entry_type").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.EntryTypes()...)),
		field.String("account").NotEmpty().Immutable(),
		field.Int64("job_id").Optional().Nillable().Immutable(),
		field.Int64("amount").Immutable(),
		field.Int64("balance_after").Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (LedgerEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account", "seq"),
		// at most one lock and one release per job
		index.Fields("entry_type", "job_id").Unique(),
	}
}
