package ledger

import (
	"context"
	"testing"

	"github.com/openlabor/jobmarket/internal/common"
)

func TestCreateReviewAndEmployeeReads(t *testing.T) {
	l := newTestLedger(t)
	id := waitingReviewJob(t, l)

	if err := l.CreateReview(context.Background(), employer, id, 5, "ref:comment"); err != nil {
		t.Fatalf("review: %v", err)
	}

	reviews, err := l.GetReviews(employee, id)
	if err != nil {
		t.Fatalf("get reviews: %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("reviews = %d, want 1", len(reviews))
	}
	if reviews[0].Score != 5 || reviews[0].Comment != "ref:comment" || reviews[0].Author != employer {
		t.Fatalf("unexpected review %+v", reviews[0])
	}
}

func TestCreateReviewByEmployeeIsUnauthorized(t *testing.T) {
	l := newTestLedger(t)
	id := waitingReviewJob(t, l)

	wantErr(t, l.CreateReview(context.Background(), employee, id, 5, "ref:comment"), common.ErrUnauthorized)
	wantErr(t, l.CreateReview(context.Background(), stranger, id, 5, "ref:comment"), common.ErrUnauthorized)
}

func TestCreateReviewRequiresWaitingReview(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	open := openJob(t, l)
	wantErr(t, l.CreateReview(ctx, employer, open, 5, "ref:comment"), common.ErrInvalidState)

	completed := completedJob(t, l)
	wantErr(t, l.CreateReview(ctx, employer, completed, 5, "ref:comment"), common.ErrInvalidState)
}

func TestCreateReviewRejectsOutOfRangeScore(t *testing.T) {
	l := newTestLedger(t)
	id := waitingReviewJob(t, l)
	wantErr(t, l.CreateReview(context.Background(), employer, id, 0, "ref:comment"), common.ErrInvalidArgument)
}

// The employer authored the review but may never read it back; access is
// write-only for the author, read-only for the subject.
func TestGetReviewsIsEmployeeOnly(t *testing.T) {
	l := newTestLedger(t)
	id := waitingReviewJob(t, l)

	if err := l.CreateReview(context.Background(), employer, id, 4, "ref:comment"); err != nil {
		t.Fatalf("review: %v", err)
	}

	if _, err := l.GetReviews(employer, id); err == nil {
		t.Fatalf("employer read its own review")
	} else {
		wantErr(t, err, common.ErrUnauthorized)
	}
	_, err := l.GetReviews(stranger, id)
	wantErr(t, err, common.ErrUnauthorized)
}

func TestGetReviewsUnassignedJob(t *testing.T) {
	l := newTestLedger(t)
	id := openJob(t, l)
	_, err := l.GetReviews(employee, id)
	wantErr(t, err, common.ErrUnauthorized)
}

func TestReviewsAppendInOrder(t *testing.T) {
	l := newTestLedger(t)
	id := waitingReviewJob(t, l)
	ctx := context.Background()

	if err := l.CreateReview(ctx, employer, id, 2, "ref:first"); err != nil {
		t.Fatalf("first review: %v", err)
	}
	if err := l.CreateReview(ctx, employer, id, 4, "ref:second"); err != nil {
		t.Fatalf("second review: %v", err)
	}

	reviews, err := l.GetReviews(employee, id)
	if err != nil {
		t.Fatalf("get reviews: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("reviews = %d, want 2", len(reviews))
	}
	if reviews[0].Comment != "ref:first" || reviews[1].Comment != "ref:second" {
		t.Fatalf("reviews out of order: %+v", reviews)
	}
}
