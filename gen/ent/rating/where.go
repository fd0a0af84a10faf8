// Code generated by ent, DO NOT EDIT.

package rating

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/openlabor/jobmarket/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldID, id))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int64) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldSeq, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v int64) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldJobID, v))
}

// RatedPerson applies equality check predicate on the "rated_person" field. It's identical to RatedPersonEQ.
func RatedPerson(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldRatedPerson, v))
}

// Rater applies equality check predicate on the "rater" field. It's identical to RaterEQ.
func Rater(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldRater, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldScore, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldRole, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldComment, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldCreatedAt, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int64) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int64) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int64) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int64) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int64) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int64) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int64) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int64) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldSeq, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v int64) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v int64) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...int64) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...int64) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldJobID, vs...))
}

// RatedPersonEQ applies the EQ predicate on the "rated_person" field.
func RatedPersonEQ(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldRatedPerson, v))
}

// RatedPersonNEQ applies the NEQ predicate on the "rated_person" field.
func RatedPersonNEQ(v string) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldRatedPerson, v))
}

// RatedPersonIn applies the In predicate on the "rated_person" field.
func RatedPersonIn(vs ...string) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldRatedPerson, vs...))
}

// RatedPersonNotIn applies the NotIn predicate on the "rated_person" field.
func RatedPersonNotIn(vs ...string) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldRatedPerson, vs...))
}

// RatedPersonGT applies the GT predicate on the "rated_person" field.
func RatedPersonGT(v string) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldRatedPerson, v))
}

// RatedPersonGTE applies the GTE predicate on the "rated_person" field.
func RatedPersonGTE(v string) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldRatedPerson, v))
}

// RatedPersonLT applies the LT predicate on the "rated_person" field.
func RatedPersonLT(v string) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldRatedPerson, v))
}

// RatedPersonLTE applies the LTE predicate on the "rated_person" field.
func RatedPersonLTE(v string) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldRatedPerson, v))
}

// RatedPersonContains applies the Contains predicate on the "rated_person" field.
func RatedPersonContains(v string) predicate.Rating {
	return predicate.Rating(sql.FieldContains(FieldRatedPerson, v))
}

// RatedPersonHasPrefix applies the HasPrefix predicate on the "rated_person" field.
func RatedPersonHasPrefix(v string) predicate.Rating {
	return predicate.Rating(sql.FieldHasPrefix(FieldRatedPerson, v))
}

// RatedPersonHasSuffix applies the HasSuffix predicate on the "rated_person" field.
func RatedPersonHasSuffix(v string) predicate.Rating {
	return predicate.Rating(sql.FieldHasSuffix(FieldRatedPerson, v))
}

// RatedPersonEqualFold applies the EqualFold predicate on the "rated_person" field.
func RatedPersonEqualFold(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEqualFold(FieldRatedPerson, v))
}

// RatedPersonContainsFold applies the ContainsFold predicate on the "rated_person" field.
func RatedPersonContainsFold(v string) predicate.Rating {
	return predicate.Rating(sql.FieldContainsFold(FieldRatedPerson, v))
}

// RaterEQ applies the EQ predicate on the "rater" field.
func RaterEQ(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldRater, v))
}

// RaterNEQ applies the NEQ predicate on the "rater" field.
func RaterNEQ(v string) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldRater, v))
}

// RaterIn applies the In predicate on the "rater" field.
func RaterIn(vs ...string) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldRater, vs...))
}

// RaterNotIn applies the NotIn predicate on the "rater" field.
func RaterNotIn(vs ...string) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldRater, vs...))
}

// RaterGT applies the GT predicate on the "rater" field.
func RaterGT(v string) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldRater, v))
}

// RaterGTE applies the GTE predicate on the "rater" field.
func RaterGTE(v string) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldRater, v))
}

// RaterLT applies the LT predicate on the "rater" field.
func RaterLT(v string) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldRater, v))
}

// RaterLTE applies the LTE predicate on the "rater" field.
func RaterLTE(v string) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldRater, v))
}

// RaterContains applies the Contains predicate on the "rater" field.
func RaterContains(v string) predicate.Rating {
	return predicate.Rating(sql.FieldContains(FieldRater, v))
}

// RaterHasPrefix applies the HasPrefix predicate on the "rater" field.
func RaterHasPrefix(v string) predicate.Rating {
	return predicate.Rating(sql.FieldHasPrefix(FieldRater, v))
}

// RaterHasSuffix applies the HasSuffix predicate on the "rater" field.
func RaterHasSuffix(v string) predicate.Rating {
	return predicate.Rating(sql.FieldHasSuffix(FieldRater, v))
}

// RaterEqualFold applies the EqualFold predicate on the "rater" field.
func RaterEqualFold(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEqualFold(FieldRater, v))
}

// RaterContainsFold applies the ContainsFold predicate on the "rater" field.
func RaterContainsFold(v string) predicate.Rating {
	return predicate.Rating(sql.FieldContainsFold(FieldRater, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldScore, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.Rating {
	return predicate.Rating(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.Rating {
	return predicate.Rating(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.Rating {
	return predicate.Rating(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.Rating {
	return predicate.Rating(sql.FieldContainsFold(FieldRole, v))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.Rating {
	return predicate.Rating(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.Rating {
	return predicate.Rating(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.Rating {
	return predicate.Rating(sql.FieldHasSuffix(FieldComment, v))
}

// CommentIsNil applies the IsNil predicate on the "comment" field.
func CommentIsNil() predicate.Rating {
	return predicate.Rating(sql.FieldIsNull(FieldComment))
}

// CommentNotNil applies the NotNil predicate on the "comment" field.
func CommentNotNil() predicate.Rating {
	return predicate.Rating(sql.FieldNotNull(FieldComment))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.Rating {
	return predicate.Rating(sql.FieldContainsFold(FieldComment, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.Rating {
	return predicate.Rating(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.Rating {
	return predicate.Rating(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Rating) predicate.Rating {
	return predicate.Rating(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Rating) predicate.Rating {
	return predicate.Rating(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Rating) predicate.Rating {
	return predicate.Rating(sql.NotPredicates(p))
}
