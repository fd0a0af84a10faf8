// Code generated by ent, DO NOT EDIT.

package application

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/openlabor/jobmarket/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v int64) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldJobID, v))
}

// Applicant applies equality check predicate on the "applicant" field. It's identical to ApplicantEQ.
func Applicant(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldApplicant, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldPosition, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v int64) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v int64) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...int64) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...int64) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldJobID, vs...))
}

// ApplicantEQ applies the EQ predicate on the "applicant" field.
func ApplicantEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldApplicant, v))
}

// ApplicantNEQ applies the NEQ predicate on the "applicant" field.
func ApplicantNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldApplicant, v))
}

// ApplicantIn applies the In predicate on the "applicant" field.
func ApplicantIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldApplicant, vs...))
}

// ApplicantNotIn applies the NotIn predicate on the "applicant" field.
func ApplicantNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldApplicant, vs...))
}

// ApplicantGT applies the GT predicate on the "applicant" field.
func ApplicantGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldApplicant, v))
}

// ApplicantGTE applies the GTE predicate on the "applicant" field.
func ApplicantGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldApplicant, v))
}

// ApplicantLT applies the LT predicate on the "applicant" field.
func ApplicantLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldApplicant, v))
}

// ApplicantLTE applies the LTE predicate on the "applicant" field.
func ApplicantLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldApplicant, v))
}

// ApplicantContains applies the Contains predicate on the "applicant" field.
func ApplicantContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldApplicant, v))
}

// ApplicantHasPrefix applies the HasPrefix predicate on the "applicant" field.
func ApplicantHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldApplicant, v))
}

// ApplicantHasSuffix applies the HasSuffix predicate on the "applicant" field.
func ApplicantHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldApplicant, v))
}

// ApplicantEqualFold applies the EqualFold predicate on the "applicant" field.
func ApplicantEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldApplicant, v))
}

// ApplicantContainsFold applies the ContainsFold predicate on the "applicant" field.
func ApplicantContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldApplicant, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldPosition, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Application) predicate.Application {
	return predicate.Application(sql.NotPredicates(p))
}
