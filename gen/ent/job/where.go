// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/openlabor/jobmarket/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// Employer applies equality check predicate on the "employer" field. It's identical to EmployerEQ.
func Employer(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldEmployer, v))
}

// Employee applies equality check predicate on the "employee" field. It's identical to EmployeeEQ.
func Employee(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldEmployee, v))
}

// Payment applies equality check predicate on the "payment" field. It's identical to PaymentEQ.
func Payment(v int64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPayment, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDescription, v))
}

// Deadline applies equality check predicate on the "deadline" field. It's identical to DeadlineEQ.
func Deadline(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDeadline, v))
}

// WorkResult applies equality check predicate on the "work_result" field. It's identical to WorkResultEQ.
func WorkResult(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldWorkResult, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmployerEQ applies the EQ predicate on the "employer" field.
func EmployerEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldEmployer, v))
}

// EmployerNEQ applies the NEQ predicate on the "employer" field.
func EmployerNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldEmployer, v))
}

// EmployerIn applies the In predicate on the "employer" field.
func EmployerIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldEmployer, vs...))
}

// EmployerNotIn applies the NotIn predicate on the "employer" field.
func EmployerNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldEmployer, vs...))
}

// EmployerGT applies the GT predicate on the "employer" field.
func EmployerGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldEmployer, v))
}

// EmployerGTE applies the GTE predicate on the "employer" field.
func EmployerGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldEmployer, v))
}

// EmployerLT applies the LT predicate on the "employer" field.
func EmployerLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldEmployer, v))
}

// EmployerLTE applies the LTE predicate on the "employer" field.
func EmployerLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldEmployer, v))
}

// EmployerContains applies the Contains predicate on the "employer" field.
func EmployerContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldEmployer, v))
}

// EmployerHasPrefix applies the HasPrefix predicate on the "employer" field.
func EmployerHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldEmployer, v))
}

// EmployerHasSuffix applies the HasSuffix predicate on the "employer" field.
func EmployerHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldEmployer, v))
}

// EmployerEqualFold applies the EqualFold predicate on the "employer" field.
func EmployerEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldEmployer, v))
}

// EmployerContainsFold applies the ContainsFold predicate on the "employer" field.
func EmployerContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldEmployer, v))
}

// EmployeeEQ applies the EQ predicate on the "employee" field.
func EmployeeEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldEmployee, v))
}

// EmployeeNEQ applies the NEQ predicate on the "employee" field.
func EmployeeNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldEmployee, v))
}

// EmployeeIn applies the In predicate on the "employee" field.
func EmployeeIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldEmployee, vs...))
}

// EmployeeNotIn applies the NotIn predicate on the "employee" field.
func EmployeeNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldEmployee, vs...))
}

// EmployeeGT applies the GT predicate on the "employee" field.
func EmployeeGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldEmployee, v))
}

// EmployeeGTE applies the GTE predicate on the "employee" field.
func EmployeeGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldEmployee, v))
}

// EmployeeLT applies the LT predicate on the "employee" field.
func EmployeeLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldEmployee, v))
}

// EmployeeLTE applies the LTE predicate on the "employee" field.
func EmployeeLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldEmployee, v))
}

// EmployeeContains applies the Contains predicate on the "employee" field.
func EmployeeContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldEmployee, v))
}

// EmployeeHasPrefix applies the HasPrefix predicate on the "employee" field.
func EmployeeHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldEmployee, v))
}

// EmployeeHasSuffix applies the HasSuffix predicate on the "employee" field.
func EmployeeHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldEmployee, v))
}

// EmployeeIsNil applies the IsNil predicate on the "employee" field.
func EmployeeIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldEmployee))
}

// EmployeeNotNil applies the NotNil predicate on the "employee" field.
func EmployeeNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldEmployee))
}

// EmployeeEqualFold applies the EqualFold predicate on the "employee" field.
func EmployeeEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldEmployee, v))
}

// EmployeeContainsFold applies the ContainsFold predicate on the "employee" field.
func EmployeeContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldEmployee, v))
}

// PaymentEQ applies the EQ predicate on the "payment" field.
func PaymentEQ(v int64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPayment, v))
}

// PaymentNEQ applies the NEQ predicate on the "payment" field.
func PaymentNEQ(v int64) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldPayment, v))
}

// PaymentIn applies the In predicate on the "payment" field.
func PaymentIn(vs ...int64) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldPayment, vs...))
}

// PaymentNotIn applies the NotIn predicate on the "payment" field.
func PaymentNotIn(vs ...int64) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldPayment, vs...))
}

// PaymentGT applies the GT predicate on the "payment" field.
func PaymentGT(v int64) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldPayment, v))
}

// PaymentGTE applies the GTE predicate on the "payment" field.
func PaymentGTE(v int64) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldPayment, v))
}

// PaymentLT applies the LT predicate on the "payment" field.
func PaymentLT(v int64) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldPayment, v))
}

// PaymentLTE applies the LTE predicate on the "payment" field.
func PaymentLTE(v int64) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldPayment, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldStatus, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldDescription, v))
}

// DeadlineEQ applies the EQ predicate on the "deadline" field.
func DeadlineEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDeadline, v))
}

// DeadlineNEQ applies the NEQ predicate on the "deadline" field.
func DeadlineNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldDeadline, v))
}

// DeadlineIn applies the In predicate on the "deadline" field.
func DeadlineIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldDeadline, vs...))
}

// DeadlineNotIn applies the NotIn predicate on the "deadline" field.
func DeadlineNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldDeadline, vs...))
}

// DeadlineGT applies the GT predicate on the "deadline" field.
func DeadlineGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldDeadline, v))
}

// DeadlineGTE applies the GTE predicate on the "deadline" field.
func DeadlineGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldDeadline, v))
}

// DeadlineLT applies the LT predicate on the "deadline" field.
func DeadlineLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldDeadline, v))
}

// DeadlineLTE applies the LTE predicate on the "deadline" field.
func DeadlineLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldDeadline, v))
}

// WorkResultEQ applies the EQ predicate on the "work_result" field.
func WorkResultEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldWorkResult, v))
}

// WorkResultNEQ applies the NEQ predicate on the "work_result" field.
func WorkResultNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldWorkResult, v))
}

// WorkResultIn applies the In predicate on the "work_result" field.
func WorkResultIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldWorkResult, vs...))
}

// WorkResultNotIn applies the NotIn predicate on the "work_result" field.
func WorkResultNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldWorkResult, vs...))
}

// WorkResultGT applies the GT predicate on the "work_result" field.
func WorkResultGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldWorkResult, v))
}

// WorkResultGTE applies the GTE predicate on the "work_result" field.
func WorkResultGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldWorkResult, v))
}

// WorkResultLT applies the LT predicate on the "work_result" field.
func WorkResultLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldWorkResult, v))
}

// WorkResultLTE applies the LTE predicate on the "work_result" field.
func WorkResultLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldWorkResult, v))
}

// WorkResultContains applies the Contains predicate on the "work_result" field.
func WorkResultContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldWorkResult, v))
}

// WorkResultHasPrefix applies the HasPrefix predicate on the "work_result" field.
func WorkResultHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldWorkResult, v))
}

// WorkResultHasSuffix applies the HasSuffix predicate on the "work_result" field.
func WorkResultHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldWorkResult, v))
}

// WorkResultIsNil applies the IsNil predicate on the "work_result" field.
func WorkResultIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldWorkResult))
}

// WorkResultNotNil applies the NotNil predicate on the "work_result" field.
func WorkResultNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldWorkResult))
}

// WorkResultEqualFold applies the EqualFold predicate on the "work_result" field.
func WorkResultEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldWorkResult, v))
}

// WorkResultContainsFold applies the ContainsFold predicate on the "work_result" field.
func WorkResultContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldWorkResult, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasApplications applies the HasEdge predicate on the "applications" edge.
func HasApplications() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ApplicationsTable, ApplicationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicationsWith applies the HasEdge predicate on the "applications" edge with a given conditions (other predicates).
func HasApplicationsWith(preds ...predicate.Application) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newApplicationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRatings applies the HasEdge predicate on the "ratings" edge.
func HasRatings() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RatingsTable, RatingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRatingsWith applies the HasEdge predicate on the "ratings" edge with a given conditions (other predicates).
func HasRatingsWith(preds ...predicate.Rating) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newRatingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReviews applies the HasEdge predicate on the "reviews" edge.
func HasReviews() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReviewsTable, ReviewsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReviewsWith applies the HasEdge predicate on the "reviews" edge with a given conditions (other predicates).
func HasReviewsWith(preds ...predicate.Review) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newReviewsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
