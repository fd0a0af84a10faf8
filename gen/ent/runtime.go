// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/openlabor/jobmarket/db/ent/schema"
	"github.com/openlabor/jobmarket/gen/ent/application"
	"github.com/openlabor/jobmarket/gen/ent/job"
	"github.com/openlabor/jobmarket/gen/ent/ledgerentry"
	"github.com/openlabor/jobmarket/gen/ent/rating"
	"github.com/openlabor/jobmarket/gen/ent/review"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	applicationFields := schema.Application{}.Fields()
	_ = applicationFields
	// applicationDescApplicant is the schema descriptor for applicant field.
	applicationDescApplicant := applicationFields[2].Descriptor()
	// application.ApplicantValidator is a validator for the "applicant" field. It is called by the builders before save.
	application.ApplicantValidator = applicationDescApplicant.Validators[0].(func(string) error)
	// applicationDescPosition is the schema descriptor for position field.
	applicationDescPosition := applicationFields[3].Descriptor()
	// application.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	application.PositionValidator = applicationDescPosition.Validators[0].(func(int) error)
	// applicationDescCreatedAt is the schema descriptor for created_at field.
	applicationDescCreatedAt := applicationFields[4].Descriptor()
	// application.DefaultCreatedAt holds the default value on creation for the created_at field.
	application.DefaultCreatedAt = applicationDescCreatedAt.Default.(func() time.Time)
	// applicationDescID is the schema descriptor for id field.
	applicationDescID := applicationFields[0].Descriptor()
	// application.DefaultID holds the default value on creation for the id field.
	application.DefaultID = applicationDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescEmployer is the schema descriptor for employer field.
	jobDescEmployer := jobFields[1].Descriptor()
	// job.EmployerValidator is a validator for the "employer" field. It is called by the builders before save.
	job.EmployerValidator = jobDescEmployer.Validators[0].(func(string) error)
	// jobDescPayment is the schema descriptor for payment field.
	jobDescPayment := jobFields[3].Descriptor()
	// job.PaymentValidator is a validator for the "payment" field. It is called by the builders before save.
	job.PaymentValidator = jobDescPayment.Validators[0].(func(int64) error)
	// jobDescStatus is the schema descriptor for status field.
	jobDescStatus := jobFields[4].Descriptor()
	// job.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	job.StatusValidator = func() func(string) error {
		validators := jobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[8].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[9].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	ledgerentryFields := schema.LedgerEntry{}.Fields()
	_ = ledgerentryFields
	// ledgerentryDescEntryType is the schema descriptor for entry_type field.
	ledgerentryDescEntryType := ledgerentryFields[2].Descriptor()
	// ledgerentry.EntryTypeValidator is a validator for the "entry_type" field. It is called by the builders before save.
	ledgerentry.EntryTypeValidator = func() func(string) error {
		validators := ledgerentryDescEntryType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(entry_type string) error {
			for _, fn := range fns {
				if err := fn(entry_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ledgerentryDescAccount is the schema descriptor for account field.
	ledgerentryDescAccount := ledgerentryFields[3].Descriptor()
	// ledgerentry.AccountValidator is a validator for the "account" field. It is called by the builders before save.
	ledgerentry.AccountValidator = ledgerentryDescAccount.Validators[0].(func(string) error)
	// ledgerentryDescCreatedAt is the schema descriptor for created_at field.
	ledgerentryDescCreatedAt := ledgerentryFields[7].Descriptor()
	// ledgerentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	ledgerentry.DefaultCreatedAt = ledgerentryDescCreatedAt.Default.(func() time.Time)
	// ledgerentryDescID is the schema descriptor for id field.
	ledgerentryDescID := ledgerentryFields[0].Descriptor()
	// ledgerentry.DefaultID holds the default value on creation for the id field.
	ledgerentry.DefaultID = ledgerentryDescID.Default.(func() uuid.UUID)
	ratingFields := schema.Rating{}.Fields()
	_ = ratingFields
	// ratingDescRatedPerson is the schema descriptor for rated_person field.
	ratingDescRatedPerson := ratingFields[3].Descriptor()
	// rating.RatedPersonValidator is a validator for the "rated_person" field. It is called by the builders before save.
	rating.RatedPersonValidator = ratingDescRatedPerson.Validators[0].(func(string) error)
	// ratingDescRater is the schema descriptor for rater field.
	ratingDescRater := ratingFields[4].Descriptor()
	// rating.RaterValidator is a validator for the "rater" field. It is called by the builders before save.
	rating.RaterValidator = ratingDescRater.Validators[0].(func(string) error)
	// ratingDescScore is the schema descriptor for score field.
	ratingDescScore := ratingFields[5].Descriptor()
	// rating.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	rating.ScoreValidator = ratingDescScore.Validators[0].(func(int) error)
	// ratingDescRole is the schema descriptor for role field.
	ratingDescRole := ratingFields[6].Descriptor()
	// rating.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	rating.RoleValidator = func() func(string) error {
		validators := ratingDescRole.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(role string) error {
			for _, fn := range fns {
				if err := fn(role); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ratingDescCreatedAt is the schema descriptor for created_at field.
	ratingDescCreatedAt := ratingFields[8].Descriptor()
	// rating.DefaultCreatedAt holds the default value on creation for the created_at field.
	rating.DefaultCreatedAt = ratingDescCreatedAt.Default.(func() time.Time)
	// ratingDescID is the schema descriptor for id field.
	ratingDescID := ratingFields[0].Descriptor()
	// rating.DefaultID holds the default value on creation for the id field.
	rating.DefaultID = ratingDescID.Default.(func() uuid.UUID)
	reviewFields := schema.Review{}.Fields()
	_ = reviewFields
	// reviewDescAuthor is the schema descriptor for author field.
	reviewDescAuthor := reviewFields[3].Descriptor()
	// review.AuthorValidator is a validator for the "author" field. It is called by the builders before save.
	review.AuthorValidator = reviewDescAuthor.Validators[0].(func(string) error)
	// reviewDescScore is the schema descriptor for score field.
	reviewDescScore := reviewFields[4].Descriptor()
	// review.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	review.ScoreValidator = reviewDescScore.Validators[0].(func(int) error)
	// reviewDescCreatedAt is the schema descriptor for created_at field.
	reviewDescCreatedAt := reviewFields[6].Descriptor()
	// review.DefaultCreatedAt holds the default value on creation for the created_at field.
	review.DefaultCreatedAt = reviewDescCreatedAt.Default.(func() time.Time)
	// reviewDescID is the schema descriptor for id field.
	reviewDescID := reviewFields[0].Descriptor()
	// review.DefaultID holds the default value on creation for the id field.
	review.DefaultID = reviewDescID.Default.(func() uuid.UUID)
}
