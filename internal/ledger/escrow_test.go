package ledger

import (
	"context"
	"testing"

	"github.com/openlabor/jobmarket/constants"
	"github.com/openlabor/jobmarket/internal/common"
	"github.com/openlabor/jobmarket/internal/entity"
)

func TestDepositCreditsBalance(t *testing.T) {
	l := New(nil, nil)

	after, err := l.Deposit(context.Background(), employer, 250)
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if after != 250 {
		t.Fatalf("balance after = %d, want 250", after)
	}
	if l.Balance(employer) != 250 {
		t.Fatalf("balance = %d, want 250", l.Balance(employer))
	}
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	l := New(nil, nil)
	_, err := l.Deposit(context.Background(), employer, 0)
	wantErr(t, err, common.ErrInvalidArgument)
	_, err = l.Deposit(context.Background(), employer, -10)
	wantErr(t, err, common.ErrInvalidArgument)
}

func TestEscrowSingleReleaseGuard(t *testing.T) {
	e := newEscrowAccount()
	e.apply(e.depositEntry(employer, 500))

	lock, err := e.lockEntry(7, employer, 200)
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	e.apply(lock)
	if e.balance(employer) != 300 {
		t.Fatalf("employer balance = %d, want 300", e.balance(employer))
	}
	if e.heldFor(7) != 200 {
		t.Fatalf("held = %d, want 200", e.heldFor(7))
	}

	release, err := e.releaseEntry(7, employee)
	if err != nil {
		t.Fatalf("release: %v", err)
	}
	e.apply(release)
	if e.balance(employee) != 200 {
		t.Fatalf("employee balance = %d, want 200", e.balance(employee))
	}

	// A retried release for the same job must trip the guard.
	if _, err := e.releaseEntry(7, employee); err == nil {
		t.Fatalf("second release allowed")
	}
	if e.balance(employee) != 200 {
		t.Fatalf("employee balance moved on retried release")
	}
}

func TestEscrowReleaseUnknownJob(t *testing.T) {
	e := newEscrowAccount()
	if _, err := e.releaseEntry(3, employee); err == nil {
		t.Fatalf("release with no escrow allowed")
	}
}

// recordingJournal captures the order of journal writes.
type recordingJournal struct {
	events []string
}

func (j *recordingJournal) JobCreated(_ context.Context, job *entity.Job, _ *entity.LedgerEntry) error {
	j.events = append(j.events, "job_created")
	return nil
}

func (j *recordingJournal) JobUpdated(_ context.Context, job *entity.Job) error {
	j.events = append(j.events, "job_updated:"+string(job.Status))
	return nil
}

func (j *recordingJournal) ApplicationAdded(_ context.Context, _ *entity.Application) error {
	j.events = append(j.events, "application")
	return nil
}

func (j *recordingJournal) RatingAdded(_ context.Context, _ *entity.Rating) error {
	j.events = append(j.events, "rating")
	return nil
}

func (j *recordingJournal) ReviewAdded(_ context.Context, _ *entity.Review) error {
	j.events = append(j.events, "review")
	return nil
}

func (j *recordingJournal) EntryAdded(_ context.Context, e *entity.LedgerEntry) error {
	j.events = append(j.events, "entry:"+string(e.Type))
	return nil
}

// The Completed transition must reach the journal before the release entry.
func TestCompleteJobJournalsTransitionBeforeRelease(t *testing.T) {
	journal := &recordingJournal{}
	l := New(journal, nil)
	ctx := context.Background()

	if _, err := l.Deposit(ctx, employer, 1000); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	id := waitingReviewJob(t, l)
	if err := l.CompleteJob(ctx, employer, id); err != nil {
		t.Fatalf("complete: %v", err)
	}

	var completedAt, releaseAt int
	for i, ev := range journal.events {
		switch ev {
		case "job_updated:" + string(constants.JobStatusCompleted):
			completedAt = i
		case "entry:" + string(constants.EntryEscrowRelease):
			releaseAt = i
		}
	}
	if completedAt == 0 || releaseAt == 0 {
		t.Fatalf("missing journal events: %v", journal.events)
	}
	if completedAt > releaseAt {
		t.Fatalf("release journaled before transition: %v", journal.events)
	}
}

func TestRestoreRebuildsState(t *testing.T) {
	journal := &capturingJournal{}
	l := New(journal, nil)
	ctx := context.Background()

	if _, err := l.Deposit(ctx, employer, 1000); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	id := waitingReviewJob(t, l)
	if err := l.CreateReview(ctx, employer, id, 4, "ref:review"); err != nil {
		t.Fatalf("review: %v", err)
	}
	if err := l.CompleteJob(ctx, employer, id); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := l.CreateRating(ctx, employer, id, employee, 5, constants.RoleEmployee, "ref:rating"); err != nil {
		t.Fatalf("rating: %v", err)
	}

	restored := New(nil, nil)
	restored.Restore(journal.snapshot())

	job, err := restored.GetJob(id)
	if err != nil {
		t.Fatalf("restored job: %v", err)
	}
	if job.Status != constants.JobStatusCompleted || job.Employee != employee {
		t.Fatalf("restored job %+v", job)
	}
	if restored.Balance(employee) != 100 {
		t.Fatalf("restored employee balance = %d, want 100", restored.Balance(employee))
	}
	if restored.Balance(employer) != 900 {
		t.Fatalf("restored employer balance = %d, want 900", restored.Balance(employer))
	}
	if karma := restored.GetKarma(employee); karma != 1 {
		t.Fatalf("restored karma = %d, want 1", karma)
	}
	reviews, err := restored.GetReviews(employee, id)
	if err != nil {
		t.Fatalf("restored reviews: %v", err)
	}
	if len(reviews) != 1 || reviews[0].Comment != "ref:review" {
		t.Fatalf("restored reviews %+v", reviews)
	}
	apps, _ := restored.GetJobApplications(id)
	if len(apps) != 1 || apps[0] != employee {
		t.Fatalf("restored applications %v", apps)
	}

	// The restored release guard still holds.
	wantErr(t, restored.CompleteJob(ctx, employer, id), common.ErrInvalidState)
}

// capturingJournal keeps full copies of every journaled record, standing in
// for the database-backed journal.
type capturingJournal struct {
	snap Snapshot
}

func (j *capturingJournal) JobCreated(_ context.Context, job *entity.Job, lock *entity.LedgerEntry) error {
	j.snap.Jobs = append(j.snap.Jobs, job.Clone())
	cp := *lock
	j.snap.Entries = append(j.snap.Entries, &cp)
	return nil
}

func (j *capturingJournal) JobUpdated(_ context.Context, job *entity.Job) error {
	for i, existing := range j.snap.Jobs {
		if existing.ID == job.ID {
			j.snap.Jobs[i] = job.Clone()
			return nil
		}
	}
	j.snap.Jobs = append(j.snap.Jobs, job.Clone())
	return nil
}

func (j *capturingJournal) ApplicationAdded(_ context.Context, app *entity.Application) error {
	cp := *app
	j.snap.Applications = append(j.snap.Applications, &cp)
	return nil
}

func (j *capturingJournal) RatingAdded(_ context.Context, rating *entity.Rating) error {
	cp := *rating
	j.snap.Ratings = append(j.snap.Ratings, &cp)
	return nil
}

func (j *capturingJournal) ReviewAdded(_ context.Context, review *entity.Review) error {
	cp := *review
	j.snap.Reviews = append(j.snap.Reviews, &cp)
	return nil
}

func (j *capturingJournal) EntryAdded(_ context.Context, e *entity.LedgerEntry) error {
	cp := *e
	j.snap.Entries = append(j.snap.Entries, &cp)
	return nil
}

func (j *capturingJournal) snapshot() *Snapshot {
	return &j.snap
}
