package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openlabor/jobmarket/gen/ent"
	"github.com/openlabor/jobmarket/internal/entity"
	"github.com/openlabor/jobmarket/internal/ledger"
)

// LedgerJournal persists every ledger state change through Ent. Rows are only
// ever inserted, except the job table whose status/employee/work_result
// columns advance along the lifecycle.
type LedgerJournal struct {
	client *ent.Client
	logger *slog.Logger
}

var _ ledger.Journal = (*LedgerJournal)(nil)

func NewLedgerJournal(client *ent.Client, logger *slog.Logger) *LedgerJournal {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerJournal{client: client, logger: logger}
}

// JobCreated writes the job row and its escrow lock entry in one transaction,
// so a job can never exist without its escrowed payment.
func (j *LedgerJournal) JobCreated(ctx context.Context, job *entity.Job, lock *entity.LedgerEntry) error {
	tx, err := j.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	_, err = tx.Job.Create().
		SetID(job.ID).
		SetEmployer(job.Employer).
		SetPayment(job.Payment).
		SetStatus(string(job.Status)).
		SetDescription(job.Description).
		SetDeadline(job.Deadline).
		SetCreatedAt(job.CreatedAt).
		SetUpdatedAt(job.UpdatedAt).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		j.logger.Error("job insert failed", "job_id", job.ID, "error", err)
		return err
	}

	if err := createEntry(ctx, tx.LedgerEntry, lock); err != nil {
		_ = tx.Rollback()
		j.logger.Error("lock entry insert failed", "job_id", job.ID, "error", err)
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit job created: %w", err)
	}
	j.logger.Info("job journaled", "job_id", job.ID, "payment", job.Payment)
	return nil
}

func (j *LedgerJournal) JobUpdated(ctx context.Context, job *entity.Job) error {
	upd := j.client.Job.UpdateOneID(job.ID).
		SetStatus(string(job.Status)).
		SetUpdatedAt(job.UpdatedAt)
	if job.Employee != "" {
		upd = upd.SetEmployee(job.Employee)
	}
	if job.WorkResult != "" {
		upd = upd.SetWorkResult(job.WorkResult)
	}
	if _, err := upd.Save(ctx); err != nil {
		j.logger.Error("job update failed", "job_id", job.ID, "status", job.Status, "error", err)
		return err
	}
	return nil
}

func (j *LedgerJournal) ApplicationAdded(ctx context.Context, app *entity.Application) error {
	_, err := j.client.Application.Create().
		SetJobID(app.JobID).
		SetApplicant(app.Applicant).
		SetPosition(app.Position).
		SetCreatedAt(app.CreatedAt).
		Save(ctx)
	if err != nil {
		j.logger.Error("application insert failed", "job_id", app.JobID, "applicant", app.Applicant, "error", err)
	}
	return err
}

func (j *LedgerJournal) RatingAdded(ctx context.Context, rating *entity.Rating) error {
	_, err := j.client.Rating.Create().
		SetSeq(rating.Seq).
		SetJobID(rating.JobID).
		SetRatedPerson(rating.RatedPerson).
		SetRater(rating.Rater).
		SetScore(rating.Score).
		SetRole(string(rating.Role)).
		SetComment(rating.Comment).
		SetCreatedAt(rating.CreatedAt).
		Save(ctx)
	if err != nil {
		j.logger.Error("rating insert failed", "job_id", rating.JobID, "error", err)
	}
	return err
}

func (j *LedgerJournal) ReviewAdded(ctx context.Context, review *entity.Review) error {
	_, err := j.client.Review.Create().
		SetSeq(review.Seq).
		SetJobID(review.JobID).
		SetAuthor(review.Author).
		SetScore(review.Score).
		SetComment(review.Comment).
		SetCreatedAt(review.CreatedAt).
		Save(ctx)
	if err != nil {
		j.logger.Error("review insert failed", "job_id", review.JobID, "error", err)
	}
	return err
}

func (j *LedgerJournal) EntryAdded(ctx context.Context, e *entity.LedgerEntry) error {
	if err := createEntry(ctx, j.client.LedgerEntry, e); err != nil {
		j.logger.Error("ledger entry insert failed", "entry_type", e.Type, "account", e.Account, "error", err)
		return err
	}
	return nil
}

func createEntry(ctx context.Context, c *ent.LedgerEntryClient, e *entity.LedgerEntry) error {
	builder := c.Create().
		SetSeq(e.Seq).
		SetEntryType(string(e.Type)).
		SetAccount(e.Account).
		SetAmount(e.Amount).
		SetBalanceAfter(e.BalanceAfter).
		SetCreatedAt(e.CreatedAt)
	if e.JobID != nil {
		builder = builder.SetJobID(*e.JobID)
	}
	_, err := builder.Save(ctx)
	return err
}
