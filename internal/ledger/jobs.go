package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/openlabor/jobmarket/constants"
	"github.com/openlabor/jobmarket/internal/common"
	"github.com/openlabor/jobmarket/internal/entity"
)

// CreateJob opens a new job and escrows payment from the employer's balance
// in the same operation. Returns the sequential job id.
func (l *Ledger) CreateJob(ctx context.Context, employer string, payment int64, deadline time.Time, description string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if payment <= 0 {
		return 0, fmt.Errorf("payment must be greater than zero, got %d: %w", payment, common.ErrInvalidArgument)
	}

	id := int64(len(l.jobs))
	now := l.now()
	job := &entity.Job{
		ID:          id,
		Employer:    employer,
		Payment:     payment,
		Status:      constants.JobStatusOpen,
		Description: description,
		Deadline:    deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	lock, err := l.escrow.lockEntry(id, employer, payment)
	if err != nil {
		return 0, err
	}
	lock.CreatedAt = now

	if l.journal != nil {
		if err := l.journal.JobCreated(ctx, job, lock); err != nil {
			return 0, fmt.Errorf("journal job created: %w", err)
		}
	}
	l.jobs = append(l.jobs, job)
	l.escrow.apply(lock)

	l.logger.Info("job created", "job_id", id, "employer", employer, "payment", payment)
	return id, nil
}

// ApplyForJob appends the caller to the job's application list. The employer
// cannot apply to its own job, and a duplicate application is rejected.
func (l *Ledger) ApplyForJob(ctx context.Context, caller string, jobID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	job, err := l.jobLocked(jobID)
	if err != nil {
		return err
	}
	if caller == job.Employer {
		return fmt.Errorf("employer cannot apply to own job %d: %w", jobID, common.ErrUnauthorized)
	}
	if job.Status != constants.JobStatusOpen {
		return fmt.Errorf("job %d is %s, applications require %s: %w",
			jobID, job.Status, constants.JobStatusOpen, common.ErrInvalidState)
	}
	if l.apps.contains(jobID, caller) {
		return fmt.Errorf("address %s already applied to job %d: %w", caller, jobID, common.ErrInvalidArgument)
	}

	app := &entity.Application{
		JobID:     jobID,
		Applicant: caller,
		Position:  len(l.apps.list(jobID)),
		CreatedAt: l.now(),
	}
	if l.journal != nil {
		if err := l.journal.ApplicationAdded(ctx, app); err != nil {
			return fmt.Errorf("journal application: %w", err)
		}
	}
	l.apps.add(jobID, caller)

	l.logger.Info("application recorded", "job_id", jobID, "applicant", caller)
	return nil
}

// AssignJob selects one applicant as the employee and moves the job to
// InProgress. Only the job's employer may assign, and only to an address that
// actually applied.
func (l *Ledger) AssignJob(ctx context.Context, caller string, jobID int64, employee string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	job, err := l.jobLocked(jobID)
	if err != nil {
		return err
	}
	if caller != job.Employer {
		return fmt.Errorf("only the employer of job %d may assign it: %w", jobID, common.ErrUnauthorized)
	}
	if job.Status != constants.JobStatusOpen {
		return fmt.Errorf("job %d is %s, assignment requires %s: %w",
			jobID, job.Status, constants.JobStatusOpen, common.ErrInvalidState)
	}
	if !l.apps.contains(jobID, employee) {
		return fmt.Errorf("address %s never applied to job %d: %w", employee, jobID, common.ErrNotFound)
	}

	next := job.Clone()
	next.Employee = employee
	next.Status = constants.JobStatusInProgress
	next.UpdatedAt = l.now()
	if l.journal != nil {
		if err := l.journal.JobUpdated(ctx, next); err != nil {
			return fmt.Errorf("journal job updated: %w", err)
		}
	}
	*job = *next

	l.logger.Info("job assigned", "job_id", jobID, "employee", employee)
	return nil
}

// AskToReviewJob submits the work result and moves the job to WaitingReview.
// Only the assigned employee may submit.
func (l *Ledger) AskToReviewJob(ctx context.Context, caller string, jobID int64, workResult string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	job, err := l.jobLocked(jobID)
	if err != nil {
		return err
	}
	if job.Employee == "" || caller != job.Employee {
		return fmt.Errorf("only the assigned employee of job %d may submit work: %w", jobID, common.ErrUnauthorized)
	}
	if job.Status != constants.JobStatusInProgress {
		return fmt.Errorf("job %d is %s, submission requires %s: %w",
			jobID, job.Status, constants.JobStatusInProgress, common.ErrInvalidState)
	}

	next := job.Clone()
	next.WorkResult = workResult
	next.Status = constants.JobStatusWaitingReview
	next.UpdatedAt = l.now()
	if l.journal != nil {
		if err := l.journal.JobUpdated(ctx, next); err != nil {
			return fmt.Errorf("journal job updated: %w", err)
		}
	}
	*job = *next

	l.logger.Info("work submitted", "job_id", jobID, "employee", caller)
	return nil
}

// CompleteJob accepts the submitted work and releases the escrowed payment to
// the employee. The status transition is recorded before the funds move, so a
// re-entered release finds the job already Completed and the escrow guard
// already tripped.
func (l *Ledger) CompleteJob(ctx context.Context, caller string, jobID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	job, err := l.jobLocked(jobID)
	if err != nil {
		return err
	}
	if caller != job.Employer {
		return fmt.Errorf("only the employer of job %d may complete it: %w", jobID, common.ErrUnauthorized)
	}
	if job.Status != constants.JobStatusWaitingReview {
		return fmt.Errorf("job %d is %s, completion requires %s: %w",
			jobID, job.Status, constants.JobStatusWaitingReview, common.ErrInvalidState)
	}
	release, err := l.escrow.releaseEntry(jobID, job.Employee)
	if err != nil {
		return err
	}
	release.CreatedAt = l.now()

	// Transition first, then transfer.
	next := job.Clone()
	next.Status = constants.JobStatusCompleted
	next.UpdatedAt = release.CreatedAt
	if l.journal != nil {
		if err := l.journal.JobUpdated(ctx, next); err != nil {
			return fmt.Errorf("journal job updated: %w", err)
		}
	}
	*job = *next

	if l.journal != nil {
		if err := l.journal.EntryAdded(ctx, release); err != nil {
			// The job is durably Completed; the escrow stays held rather than
			// risking an unrecorded payout.
			l.logger.Error("journal release entry failed", "job_id", jobID, "error", err)
			return fmt.Errorf("journal release entry: %w", err)
		}
	}
	l.escrow.apply(release)

	l.logger.Info("job completed", "job_id", jobID, "employee", job.Employee, "payment", job.Payment)
	return nil
}

// GetJob returns a copy of the job record.
func (l *Ledger) GetJob(jobID int64) (*entity.Job, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	job, err := l.jobLocked(jobID)
	if err != nil {
		return nil, err
	}
	return job.Clone(), nil
}

// GetJobApplications returns the job's applicants in application order.
func (l *Ledger) GetJobApplications(jobID int64) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if _, err := l.jobLocked(jobID); err != nil {
		return nil, err
	}
	return l.apps.list(jobID), nil
}

// EscrowHeld returns the amount currently escrowed against a job id.
func (l *Ledger) EscrowHeld(jobID int64) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.escrow.heldFor(jobID)
}

func (l *Ledger) jobLocked(jobID int64) (*entity.Job, error) {
	if jobID < 0 || jobID >= int64(len(l.jobs)) {
		return nil, fmt.Errorf("job %d: %w", jobID, common.ErrNotFound)
	}
	return l.jobs[jobID], nil
}
