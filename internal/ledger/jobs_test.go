package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/openlabor/jobmarket/constants"
	"github.com/openlabor/jobmarket/internal/common"
)

const (
	employer = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	employee = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	stranger = "0xcccccccccccccccccccccccccccccccccccccccc"
)

var deadline = time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l := New(nil, nil)
	if _, err := l.Deposit(context.Background(), employer, 1000); err != nil {
		t.Fatalf("funding employer: %v", err)
	}
	return l
}

// createJob / applyForJob / assignJob / askToReviewJob fixtures, mirroring the
// lifecycle one step at a time.
func openJob(t *testing.T, l *Ledger) int64 {
	t.Helper()
	id, err := l.CreateJob(context.Background(), employer, 100, deadline, "ref:description")
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	return id
}

func appliedJob(t *testing.T, l *Ledger) int64 {
	t.Helper()
	id := openJob(t, l)
	if err := l.ApplyForJob(context.Background(), employee, id); err != nil {
		t.Fatalf("apply: %v", err)
	}
	return id
}

func assignedJob(t *testing.T, l *Ledger) int64 {
	t.Helper()
	id := appliedJob(t, l)
	if err := l.AssignJob(context.Background(), employer, id, employee); err != nil {
		t.Fatalf("assign: %v", err)
	}
	return id
}

func waitingReviewJob(t *testing.T, l *Ledger) int64 {
	t.Helper()
	id := assignedJob(t, l)
	if err := l.AskToReviewJob(context.Background(), employee, id, "ref:result"); err != nil {
		t.Fatalf("ask to review: %v", err)
	}
	return id
}

func completedJob(t *testing.T, l *Ledger) int64 {
	t.Helper()
	id := waitingReviewJob(t, l)
	if err := l.CompleteJob(context.Background(), employer, id); err != nil {
		t.Fatalf("complete: %v", err)
	}
	return id
}

func wantErr(t *testing.T, err, kind error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v, got nil", kind)
	}
	if !errors.Is(err, kind) {
		t.Fatalf("expected %v, got %v", kind, err)
	}
}

func TestCreateJobEscrowsPayment(t *testing.T) {
	l := newTestLedger(t)
	before := l.Balance(employer)

	id := openJob(t, l)

	job, err := l.GetJob(id)
	if err != nil {
		t.Fatalf("get job: %v", err)
	}
	if job.Employer != employer {
		t.Fatalf("employer = %s, want %s", job.Employer, employer)
	}
	if job.Status != constants.JobStatusOpen {
		t.Fatalf("status = %s, want %s", job.Status, constants.JobStatusOpen)
	}
	if job.Payment != 100 {
		t.Fatalf("payment = %d, want 100", job.Payment)
	}
	if job.Description != "ref:description" {
		t.Fatalf("description = %q", job.Description)
	}
	if !job.Deadline.Equal(deadline) {
		t.Fatalf("deadline = %v, want %v", job.Deadline, deadline)
	}
	if got := before - l.Balance(employer); got != 100 {
		t.Fatalf("employer debited %d, want 100", got)
	}
	if held := l.EscrowHeld(id); held != 100 {
		t.Fatalf("escrow held %d, want 100", held)
	}
}

func TestCreateJobRejectsNonPositivePayment(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.CreateJob(context.Background(), employer, 0, deadline, "ref:description")
	wantErr(t, err, common.ErrInvalidArgument)
	_, err = l.CreateJob(context.Background(), employer, -5, deadline, "ref:description")
	wantErr(t, err, common.ErrInvalidArgument)
}

func TestCreateJobRejectsInsufficientBalance(t *testing.T) {
	l := New(nil, nil)
	_, err := l.CreateJob(context.Background(), employer, 100, deadline, "ref:description")
	wantErr(t, err, common.ErrInvalidArgument)
	if l.Balance(employer) != 0 {
		t.Fatalf("balance mutated on rejected create")
	}
}

func TestJobIDsAreSequential(t *testing.T) {
	l := newTestLedger(t)
	for want := int64(0); want < 3; want++ {
		if id := openJob(t, l); id != want {
			t.Fatalf("job id = %d, want %d", id, want)
		}
	}
}

func TestApplyForJobRecordsApplicant(t *testing.T) {
	l := newTestLedger(t)
	id := appliedJob(t, l)

	apps, err := l.GetJobApplications(id)
	if err != nil {
		t.Fatalf("list applications: %v", err)
	}
	if len(apps) != 1 || apps[0] != employee {
		t.Fatalf("applications = %v, want [%s]", apps, employee)
	}
}

func TestApplyForJobByEmployerIsUnauthorized(t *testing.T) {
	l := newTestLedger(t)
	id := openJob(t, l)

	wantErr(t, l.ApplyForJob(context.Background(), employer, id), common.ErrUnauthorized)

	apps, _ := l.GetJobApplications(id)
	if len(apps) != 0 {
		t.Fatalf("applications = %v, want empty", apps)
	}
}

func TestApplyForJobRejectsDuplicate(t *testing.T) {
	l := newTestLedger(t)
	id := appliedJob(t, l)

	wantErr(t, l.ApplyForJob(context.Background(), employee, id), common.ErrInvalidArgument)

	apps, _ := l.GetJobApplications(id)
	if len(apps) != 1 {
		t.Fatalf("duplicate application recorded: %v", apps)
	}
}

func TestApplyForJobRequiresOpenStatus(t *testing.T) {
	l := newTestLedger(t)
	id := assignedJob(t, l)
	wantErr(t, l.ApplyForJob(context.Background(), stranger, id), common.ErrInvalidState)
}

func TestApplyForJobUnknownJob(t *testing.T) {
	l := newTestLedger(t)
	wantErr(t, l.ApplyForJob(context.Background(), employee, 42), common.ErrNotFound)
}

func TestAssignJobSetsEmployeeAndStatus(t *testing.T) {
	l := newTestLedger(t)
	id := assignedJob(t, l)

	job, _ := l.GetJob(id)
	if job.Employee != employee {
		t.Fatalf("employee = %s, want %s", job.Employee, employee)
	}
	if job.Status != constants.JobStatusInProgress {
		t.Fatalf("status = %s, want %s", job.Status, constants.JobStatusInProgress)
	}
}

func TestAssignJobByNonEmployerIsUnauthorized(t *testing.T) {
	l := newTestLedger(t)
	id := appliedJob(t, l)

	// Includes the employee attempting self-assignment.
	wantErr(t, l.AssignJob(context.Background(), employee, id, employee), common.ErrUnauthorized)
	wantErr(t, l.AssignJob(context.Background(), stranger, id, employee), common.ErrUnauthorized)

	job, _ := l.GetJob(id)
	if job.Status != constants.JobStatusOpen {
		t.Fatalf("status mutated on rejected assign: %s", job.Status)
	}
}

func TestAssignJobRequiresApplication(t *testing.T) {
	l := newTestLedger(t)
	id := openJob(t, l)
	wantErr(t, l.AssignJob(context.Background(), employer, id, stranger), common.ErrNotFound)
}

func TestAssignJobRequiresOpenStatus(t *testing.T) {
	l := newTestLedger(t)
	id := assignedJob(t, l)
	wantErr(t, l.AssignJob(context.Background(), employer, id, employee), common.ErrInvalidState)
}

func TestAskToReviewJobSetsWorkResult(t *testing.T) {
	l := newTestLedger(t)
	id := waitingReviewJob(t, l)

	job, _ := l.GetJob(id)
	if job.Status != constants.JobStatusWaitingReview {
		t.Fatalf("status = %s, want %s", job.Status, constants.JobStatusWaitingReview)
	}
	if job.WorkResult != "ref:result" {
		t.Fatalf("work result = %q", job.WorkResult)
	}
}

func TestAskToReviewJobByEmployerIsUnauthorized(t *testing.T) {
	l := newTestLedger(t)
	id := assignedJob(t, l)

	wantErr(t, l.AskToReviewJob(context.Background(), employer, id, "ref:result"), common.ErrUnauthorized)

	job, _ := l.GetJob(id)
	if job.Status != constants.JobStatusInProgress {
		t.Fatalf("status mutated on rejected submit: %s", job.Status)
	}
}

func TestAskToReviewJobRequiresInProgress(t *testing.T) {
	l := newTestLedger(t)
	id := waitingReviewJob(t, l)
	wantErr(t, l.AskToReviewJob(context.Background(), employee, id, "ref:other"), common.ErrInvalidState)
}

func TestCompleteJobReleasesPaymentOnce(t *testing.T) {
	l := newTestLedger(t)
	id := waitingReviewJob(t, l)
	before := l.Balance(employee)

	if err := l.CompleteJob(context.Background(), employer, id); err != nil {
		t.Fatalf("complete: %v", err)
	}

	job, _ := l.GetJob(id)
	if job.Status != constants.JobStatusCompleted {
		t.Fatalf("status = %s, want %s", job.Status, constants.JobStatusCompleted)
	}
	if got := l.Balance(employee) - before; got != 100 {
		t.Fatalf("employee credited %d, want 100", got)
	}
	if held := l.EscrowHeld(id); held != 0 {
		t.Fatalf("escrow still holds %d after release", held)
	}

	// A retried completion must not pay twice.
	wantErr(t, l.CompleteJob(context.Background(), employer, id), common.ErrInvalidState)
	if got := l.Balance(employee) - before; got != 100 {
		t.Fatalf("employee credited %d after retry, want 100", got)
	}
}

func TestCompleteJobByEmployeeIsUnauthorized(t *testing.T) {
	l := newTestLedger(t)
	id := waitingReviewJob(t, l)

	wantErr(t, l.CompleteJob(context.Background(), employee, id), common.ErrUnauthorized)

	job, _ := l.GetJob(id)
	if job.Status != constants.JobStatusWaitingReview {
		t.Fatalf("status mutated on rejected complete: %s", job.Status)
	}
}

func TestCompleteJobRequiresWaitingReview(t *testing.T) {
	l := newTestLedger(t)
	id := assignedJob(t, l)
	wantErr(t, l.CompleteJob(context.Background(), employer, id), common.ErrInvalidState)
}

func TestStatusNeverRegresses(t *testing.T) {
	l := newTestLedger(t)
	id := completedJob(t, l)

	// Every mutating operation against a terminal job is rejected and the
	// status stays Completed.
	wantErr(t, l.ApplyForJob(context.Background(), stranger, id), common.ErrInvalidState)
	wantErr(t, l.AssignJob(context.Background(), employer, id, employee), common.ErrInvalidState)
	wantErr(t, l.AskToReviewJob(context.Background(), employee, id, "ref:again"), common.ErrInvalidState)
	wantErr(t, l.CompleteJob(context.Background(), employer, id), common.ErrInvalidState)

	job, _ := l.GetJob(id)
	if job.Status != constants.JobStatusCompleted {
		t.Fatalf("status = %s, want %s", job.Status, constants.JobStatusCompleted)
	}
}

func TestGetJobUnknownID(t *testing.T) {
	l := newTestLedger(t)
	if _, err := l.GetJob(7); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := l.GetJob(-1); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestEndToEndLifecycle(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	id, err := l.CreateJob(ctx, employer, 100, deadline, "ref:description")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := l.ApplyForJob(ctx, employee, id); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := l.AssignJob(ctx, employer, id, employee); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := l.AskToReviewJob(ctx, employee, id, "ref:result"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := l.CompleteJob(ctx, employer, id); err != nil {
		t.Fatalf("complete: %v", err)
	}

	job, _ := l.GetJob(id)
	if job.Status != constants.JobStatusCompleted {
		t.Fatalf("status = %s, want %s", job.Status, constants.JobStatusCompleted)
	}
	if l.Balance(employee) != 100 {
		t.Fatalf("employee balance = %d, want 100", l.Balance(employee))
	}

	if err := l.CreateRating(ctx, employer, id, employee, 5, constants.RoleEmployee, "ref:comment"); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if karma := l.GetKarma(employee); karma != 1 {
		t.Fatalf("karma = %d, want 1", karma)
	}
}
