package repository

import (
	"context"
	"log/slog"

	"github.com/openlabor/jobmarket/constants"
	"github.com/openlabor/jobmarket/gen/ent"
	"github.com/openlabor/jobmarket/gen/ent/application"
	"github.com/openlabor/jobmarket/gen/ent/job"
	"github.com/openlabor/jobmarket/gen/ent/ledgerentry"
	"github.com/openlabor/jobmarket/gen/ent/rating"
	"github.com/openlabor/jobmarket/gen/ent/review"
	"github.com/openlabor/jobmarket/internal/entity"
	"github.com/openlabor/jobmarket/internal/ledger"
)

// Restore reads the whole journal back in insertion order, producing the
// snapshot the ledger rebuilds from at boot.
func Restore(ctx context.Context, client *ent.Client, logger *slog.Logger) (*ledger.Snapshot, error) {
	snap := &ledger.Snapshot{}

	jobs, err := client.Job.Query().Order(job.ByID()).All(ctx)
	if err != nil {
		logger.Error("failed to load jobs", "error", err)
		return nil, err
	}
	for _, row := range jobs {
		snap.Jobs = append(snap.Jobs, toJob(row))
	}

	apps, err := client.Application.Query().
		Order(application.ByJobID(), application.ByPosition()).
		All(ctx)
	if err != nil {
		logger.Error("failed to load applications", "error", err)
		return nil, err
	}
	for _, row := range apps {
		snap.Applications = append(snap.Applications, &entity.Application{
			JobID:     row.JobID,
			Applicant: row.Applicant,
			Position:  row.Position,
			CreatedAt: row.CreatedAt,
		})
	}

	ratings, err := client.Rating.Query().Order(rating.BySeq()).All(ctx)
	if err != nil {
		logger.Error("failed to load ratings", "error", err)
		return nil, err
	}
	for _, row := range ratings {
		snap.Ratings = append(snap.Ratings, &entity.Rating{
			Seq:         row.Seq,
			JobID:       row.JobID,
			RatedPerson: row.RatedPerson,
			Rater:       row.Rater,
			Score:       row.Score,
			Role:        constants.Role(row.Role),
			Comment:     row.Comment,
			CreatedAt:   row.CreatedAt,
		})
	}

	reviews, err := client.Review.Query().Order(review.BySeq()).All(ctx)
	if err != nil {
		logger.Error("failed to load reviews", "error", err)
		return nil, err
	}
	for _, row := range reviews {
		snap.Reviews = append(snap.Reviews, &entity.Review{
			Seq:       row.Seq,
			JobID:     row.JobID,
			Author:    row.Author,
			Score:     row.Score,
			Comment:   row.Comment,
			CreatedAt: row.CreatedAt,
		})
	}

	entries, err := client.LedgerEntry.Query().Order(ledgerentry.BySeq()).All(ctx)
	if err != nil {
		logger.Error("failed to load ledger entries", "error", err)
		return nil, err
	}
	for _, row := range entries {
		snap.Entries = append(snap.Entries, &entity.LedgerEntry{
			Seq:          row.Seq,
			Type:         constants.EntryType(row.EntryType),
			Account:      row.Account,
			JobID:        row.JobID,
			Amount:       row.Amount,
			BalanceAfter: row.BalanceAfter,
			CreatedAt:    row.CreatedAt,
		})
	}

	logger.Info("journal loaded",
		"jobs", len(snap.Jobs),
		"applications", len(snap.Applications),
		"ratings", len(snap.Ratings),
		"reviews", len(snap.Reviews),
		"entries", len(snap.Entries),
	)
	return snap, nil
}

// CountJobs is a cheap typed query used by the health probe.
func CountJobs(ctx context.Context, client *ent.Client) (int, error) {
	return client.Job.Query().Count(ctx)
}

func toJob(row *ent.Job) *entity.Job {
	j := &entity.Job{
		ID:          row.ID,
		Employer:    row.Employer,
		Payment:     row.Payment,
		Status:      constants.JobStatus(row.Status),
		Description: row.Description,
		Deadline:    row.Deadline,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.Employee != nil {
		j.Employee = *row.Employee
	}
	if row.WorkResult != nil {
		j.WorkResult = *row.WorkResult
	}
	return j
}
